package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	ppt "github.com/VantageDataChat/GoPPT"

	"github.com/jamdmasud/ai-agentic-workflow-reviewer/deck"
)

func TestReviewerDeckStructure(t *testing.T) {
	spec := reviewerDeck()

	if err := spec.Validate(); err != nil {
		t.Fatalf("reviewer deck spec invalid: %v", err)
	}
	if len(spec.Slides) != 5 {
		t.Fatalf("expected 5 slides, got %d", len(spec.Slides))
	}

	titles := []string{
		"Agentic Workflow Reviewer",
		"Problem Statement & Vision",
		"Multi-Agent System Architecture",
		"Kiro Features Leveraged (30% of Grade)",
		"Thank You & Q&A",
	}
	for i, want := range titles {
		slide := spec.Slides[i]
		if slide.Title == nil {
			t.Fatalf("slide %d has no title", i+1)
		}
		if slide.Title.Text != want {
			t.Errorf("slide %d title = %q, want %q", i+1, slide.Title.Text, want)
		}
		if slide.Background != colorBlue {
			t.Errorf("slide %d background = %q, want %q", i+1, slide.Background, colorBlue)
		}
	}
}

func TestProblemSlideBulletContent(t *testing.T) {
	slide := reviewerDeck().Slides[1]
	if len(slide.Regions) != 2 {
		t.Fatalf("expected 2 bullet groups, got %d regions", len(slide.Regions))
	}

	challenges, ok := slide.Regions[0].(deck.BulletGroup)
	if !ok {
		t.Fatalf("first region is %T, want BulletGroup", slide.Regions[0])
	}
	solutions, ok := slide.Regions[1].(deck.BulletGroup)
	if !ok {
		t.Fatalf("second region is %T, want BulletGroup", slide.Regions[1])
	}

	if len(challenges.Items) != 4 {
		t.Errorf("challenge list has %d items, want 4", len(challenges.Items))
	}
	if len(solutions.Items) != 4 {
		t.Errorf("solution list has %d items, want 4", len(solutions.Items))
	}
	if challenges.Heading != "The Challenge" {
		t.Errorf("challenge heading = %q", challenges.Heading)
	}
	if solutions.Heading != "Why Agents + Kiro?" {
		t.Errorf("solution heading = %q", solutions.Heading)
	}
	if challenges.Items[0] != "DevOps teams struggle with complex workflow optimization" {
		t.Errorf("unexpected first challenge: %q", challenges.Items[0])
	}
}

func TestArchitectureSlideDiagram(t *testing.T) {
	slide := reviewerDeck().Slides[2]
	if len(slide.Regions) != 1 {
		t.Fatalf("expected 1 region, got %d", len(slide.Regions))
	}
	block, ok := slide.Regions[0].(deck.MonoBlock)
	if !ok {
		t.Fatalf("region is %T, want MonoBlock", slide.Regions[0])
	}
	if !strings.Contains(block.Text, "Agent Orchestration Layer") {
		t.Error("diagram missing orchestration layer")
	}
	if !strings.Contains(block.Text, "Parser Agent") {
		t.Error("diagram missing parser agent")
	}
}

func TestGenerateWritesFiveSlideDeck(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "reviewer.pptx")

	spec := reviewerDeck()
	if err := deck.NewPPTDeckService().WriteDeckFile(spec, path); err != nil {
		t.Fatalf("failed to write deck: %v", err)
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 1 {
		t.Fatalf("expected exactly one output file, got %d", len(entries))
	}

	reader := &ppt.PPTXReader{}
	pres, err := reader.Read(path)
	if err != nil {
		t.Fatalf("failed to read generated deck: %v", err)
	}

	slides := pres.GetAllSlides()
	if len(slides) != 5 {
		t.Fatalf("generated deck has %d slides, want 5", len(slides))
	}

	// Title slide primary text must be the literal deck title.
	found := false
	for _, shape := range slides[0].GetShapes() {
		rts, ok := shape.(*ppt.RichTextShape)
		if !ok {
			continue
		}
		for _, para := range rts.GetParagraphs() {
			for _, elem := range para.GetElements() {
				if run, ok := elem.(*ppt.TextRun); ok && run.GetText() == deckTitle {
					found = true
				}
			}
		}
	}
	if !found {
		t.Errorf("title slide does not contain %q", deckTitle)
	}
}

func TestGenerateDeterministicAcrossRuns(t *testing.T) {
	dir := t.TempDir()
	svc := deck.NewPPTDeckService()
	spec := reviewerDeck()

	pathA := filepath.Join(dir, "a.pptx")
	pathB := filepath.Join(dir, "b.pptx")
	if err := svc.WriteDeckFile(spec, pathA); err != nil {
		t.Fatal(err)
	}
	if err := svc.WriteDeckFile(spec, pathB); err != nil {
		t.Fatal(err)
	}

	reader := &ppt.PPTXReader{}
	presA, err := reader.Read(pathA)
	if err != nil {
		t.Fatal(err)
	}
	presB, err := reader.Read(pathB)
	if err != nil {
		t.Fatal(err)
	}

	slidesA := presA.GetAllSlides()
	slidesB := presB.GetAllSlides()
	if len(slidesA) != len(slidesB) {
		t.Fatalf("slide counts differ: %d vs %d", len(slidesA), len(slidesB))
	}
	for i := range slidesA {
		if a, b := len(slidesA[i].GetShapes()), len(slidesB[i].GetShapes()); a != b {
			t.Errorf("slide %d shape counts differ: %d vs %d", i+1, a, b)
		}
	}
}
