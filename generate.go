package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/jamdmasud/ai-agentic-workflow-reviewer/config"
	"github.com/jamdmasud/ai-agentic-workflow-reviewer/deck"
	"github.com/jamdmasud/ai-agentic-workflow-reviewer/logger"
)

// runGenerate performs the whole generation in one linear pass: load config,
// build the deck spec, serialize every requested format, write each artifact
// with a single write. There is no partial output: a failure before a write
// leaves nothing behind.
func runGenerate() error {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return err
	}
	if flagOutputDir != "" {
		cfg.OutputDir = flagOutputDir
	}
	if flagPDF {
		cfg.PDFHandout = true
	}
	if flagDoc {
		cfg.WordOutline = true
	}

	log := logger.NewLogger()
	if cfg.LogDir != "" {
		if err := log.Init(cfg.LogDir); err != nil {
			return err
		}
		defer log.Close()
	}

	if err := checkOutputDir(cfg.OutputDir); err != nil {
		return err
	}

	spec := reviewerDeck()
	if err := spec.Validate(); err != nil {
		return err
	}
	log.Logf("Deck spec validated: %d slides", len(spec.Slides))

	pptPath := filepath.Join(cfg.OutputDir, cfg.BaseName+".pptx")
	pptService := deck.NewPPTDeckService()
	if err := pptService.WriteDeckFile(spec, pptPath); err != nil {
		log.Logf("PPT generation failed: %v", err)
		return err
	}
	log.Logf("Presentation written: %s", pptPath)
	fmt.Printf("Presentation created: %s (%d slides)\n", pptPath, len(spec.Slides))

	if cfg.PDFHandout {
		pdfPath := filepath.Join(cfg.OutputDir, cfg.BaseName+"_Handout.pdf")
		pdfBytes, err := deck.NewPDFHandoutService().ExportHandout(spec)
		if err != nil {
			log.Logf("PDF handout failed: %v", err)
			return err
		}
		if err := os.WriteFile(pdfPath, pdfBytes, 0644); err != nil {
			return fmt.Errorf("failed to write PDF handout: %w", err)
		}
		log.Logf("Handout written: %s (%d bytes)", pdfPath, len(pdfBytes))
		fmt.Printf("Handout created: %s\n", pdfPath)
	}

	if cfg.WordOutline {
		docPath := filepath.Join(cfg.OutputDir, cfg.BaseName+"_Outline.docx")
		docBytes, err := deck.NewOutlineService().ExportOutline(spec)
		if err != nil {
			log.Logf("Word outline failed: %v", err)
			return err
		}
		if err := os.WriteFile(docPath, docBytes, 0644); err != nil {
			return fmt.Errorf("failed to write Word outline: %w", err)
		}
		log.Logf("Outline written: %s (%d bytes)", docPath, len(docBytes))
		fmt.Printf("Outline created: %s\n", docPath)
	}

	return nil
}

// checkOutputDir verifies the output directory exists and is writable before
// any document is built, so the failure message carries guidance instead of
// a bare I/O error after the work is done.
func checkOutputDir(dir string) error {
	info, err := os.Stat(dir)
	if os.IsNotExist(err) {
		return fmt.Errorf("output directory %s does not exist; create it or pass --output", dir)
	}
	if err != nil {
		return fmt.Errorf("cannot access output directory %s: %w", dir, err)
	}
	if !info.IsDir() {
		return fmt.Errorf("output path %s is not a directory", dir)
	}

	probe, err := os.CreateTemp(dir, ".deckgen-*")
	if err != nil {
		return fmt.Errorf("output directory %s is not writable; pick another with --output: %w", dir, err)
	}
	probe.Close()
	os.Remove(probe.Name())
	return nil
}
