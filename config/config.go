package config

import (
	"encoding/json"
	"fmt"
	"os"
)

// Config structure
type Config struct {
	OutputDir   string `json:"outputDir"`   // Directory for generated artifacts
	BaseName    string `json:"baseName"`    // Artifact file name without extension
	PDFHandout  bool   `json:"pdfHandout"`  // Also emit a PDF handout
	WordOutline bool   `json:"wordOutline"` // Also emit a Word speaker outline
	LogDir      string `json:"logDir"`      // Directory for run logs, empty disables logging
}

// Default returns the built-in configuration: everything lands in the
// current working directory and only the .pptx is produced.
func Default() Config {
	return Config{
		OutputDir: ".",
		BaseName:  "Agentic_Workflow_Reviewer_Presentation",
	}
}

// Load reads a JSON config from path, filling missing fields from Default.
// A missing file is not an error; the defaults are returned.
func Load(path string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return cfg, nil
	}
	if err != nil {
		return cfg, fmt.Errorf("failed to read config file: %w", err)
	}

	if err := json.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("failed to parse config file %s: %w", path, err)
	}

	if cfg.OutputDir == "" {
		cfg.OutputDir = "."
	}
	if cfg.BaseName == "" {
		cfg.BaseName = Default().BaseName
	}
	return cfg, nil
}
