package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	flagOutputDir string
	flagPDF       bool
	flagDoc       bool
	flagConfig    string
)

var rootCmd = &cobra.Command{
	Use:   "deckgen",
	Short: "Generate the Agentic Workflow Reviewer pitch deck",
	Long: `deckgen builds the fixed five-slide Agentic Workflow Reviewer
presentation (title, problem statement, architecture, features, closing)
and writes it as a .pptx file. Optional flags add a PDF handout and a
Word speaker outline rendered from the same deck.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runGenerate()
	},
}

func init() {
	rootCmd.Flags().StringVarP(&flagOutputDir, "output", "o", "", "output directory (default from config, else current directory)")
	rootCmd.Flags().BoolVar(&flagPDF, "pdf", false, "also write a PDF handout")
	rootCmd.Flags().BoolVar(&flagDoc, "doc", false, "also write a Word speaker outline")
	rootCmd.Flags().StringVar(&flagConfig, "config", "deckgen.json", "path to the optional JSON config")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
