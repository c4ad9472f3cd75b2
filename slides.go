package main

import "github.com/jamdmasud/ai-agentic-workflow-reviewer/deck"

// Deck palette (ARGB)
const (
	colorBlue  = "FF667EEA"
	colorGold  = "FFFFD700"
	colorGreen = "FF90EE90"
	colorWhite = "FFFFFFFF"
)

const deckTitle = "Agentic Workflow Reviewer"
const deckAuthor = "Agentic Workflow Reviewer Generator"

const architectureDiagram = `┌─────────────────────────────────────────────────────────────┐
│                    Web Interface Layer ✅                   │
│  ┌─────────────────┐  ┌─────────────────┐  ┌─────────────┐ │
│  │   Input Form    │  │  Results View   │  │ Goal Selector│ │
│  │  (Implemented)  │  │  (Implemented)  │  │ (Implemented)│ │
│  └─────────────────┘  └─────────────────┘  └─────────────┘ │
└─────────────────────────────────────────────────────────────┘
                                │
┌─────────────────────────────────────────────────────────────┐
│                 Agent Orchestration Layer ✅                │
│  ┌─────────────────┐  ┌─────────────────┐  ┌─────────────┐ │
│  │ Analysis Engine │  │  Goal Context   │  │ Result Cache│ │
│  │  (Implemented)  │  │  (Implemented)  │  │ (Implemented)│ │
│  └─────────────────┘  └─────────────────┘  └─────────────┘ │
└─────────────────────────────────────────────────────────────┘
                                │
┌─────────────────────────────────────────────────────────────┐
│                    Agent Processing Layer ✅                │
│  ┌─────────────┐ ┌─────────────┐ ┌─────────────┐ ┌─────────┐│
│  │Parser Agent │ │Risk Analyzer│ │Optimization │ │ Critic  ││
│  │(Implemented)│ │(Implemented)│ │(Implemented)│ │(Impl.)  ││
│  └─────────────┘ └─────────────┘ └─────────────┘ └─────────┘│
└─────────────────────────────────────────────────────────────┘`

// reviewerDeck returns the fixed five-slide pitch deck. All content is
// literal; layout coordinates are in inches on the 10 x 5.625 canvas.
func reviewerDeck() deck.Spec {
	return deck.Spec{
		Title:  deckTitle,
		Author: deckAuthor,
		Slides: []deck.SlideSpec{
			titleSlide(),
			problemSlide(),
			architectureSlide(),
			featuresSlide(),
			closingSlide(),
		},
	}
}

func titleSlide() deck.SlideSpec {
	return deck.SlideSpec{
		Background: colorBlue,
		Title: &deck.TitleSpec{
			Text:     deckTitle,
			Size:     36,
			Color:    colorWhite,
			Bold:     true,
			Centered: true,
			Y:        1.5,
		},
		Regions: []deck.Region{
			deck.Caption{
				Box:   deck.Box{X: 0.75, Y: 2.625, W: 8.5, H: 0.75},
				Text:  "AI-Powered Multi-Agent Workflow Analysis & Optimization",
				Size:  18,
				Color: colorWhite,
			},
			deck.Caption{
				Box:   deck.Box{X: 0.75, Y: 3.75, W: 8.5, H: 0.6},
				Text:  "Built with Kiro.dev",
				Size:  15,
				Color: colorGold,
			},
			deck.Caption{
				Box:   deck.Box{X: 0.75, Y: 4.5, W: 8.5, H: 0.4},
				Text:  "Kiro Hackathon • January 2026",
				Size:  12,
				Color: colorWhite,
			},
		},
	}
}

func problemSlide() deck.SlideSpec {
	return deck.SlideSpec{
		Background: colorBlue,
		Title: &deck.TitleSpec{
			Text:  "Problem Statement & Vision",
			Size:  28,
			Color: colorGold,
			Bold:  true,
			Y:     0.4,
		},
		Regions: []deck.Region{
			deck.BulletGroup{
				Box:          deck.Box{X: 0.4, Y: 1.15, W: 4.5, H: 2.25},
				Heading:      "The Challenge",
				HeadingSize:  18,
				HeadingColor: colorGreen,
				Items: []string{
					"DevOps teams struggle with complex workflow optimization",
					"Manual review processes are time-consuming and error-prone",
					"Different optimization goals require different expertise",
					"No unified system for comprehensive workflow analysis",
				},
				ItemSize:    12,
				ItemColor:   colorWhite,
				SpaceBefore: 600,
			},
			deck.BulletGroup{
				Box:          deck.Box{X: 4.9, Y: 1.15, W: 4.5, H: 2.25},
				Heading:      "Why Agents + Kiro?",
				HeadingSize:  18,
				HeadingColor: colorGreen,
				Items: []string{
					"Decomposition: Complex analysis → specialized agents",
					"Expertise: Each agent focuses on domain knowledge",
					"Scalability: Parallel processing + intelligent caching",
					"Human-in-the-loop: Interactive goal changes",
				},
				ItemSize:    12,
				ItemColor:   colorWhite,
				SpaceBefore: 600,
			},
		},
	}
}

func architectureSlide() deck.SlideSpec {
	return deck.SlideSpec{
		Background: colorBlue,
		Title: &deck.TitleSpec{
			Text:  "Multi-Agent System Architecture",
			Size:  28,
			Color: colorGold,
			Bold:  true,
			Y:     0.4,
		},
		Regions: []deck.Region{
			deck.MonoBlock{
				Box:   deck.Box{X: 0.75, Y: 1.15, W: 8.5, H: 4.1},
				Text:  architectureDiagram,
				Size:  8,
				Color: colorWhite,
			},
		},
	}
}

func featuresSlide() deck.SlideSpec {
	features := []struct {
		title string
		items []string
		box   deck.Box
	}{
		{
			title: "✅ Specs & Requirements",
			items: []string{
				"Formal requirements.md, design.md, tasks.md",
				"Property-based testing specifications",
				"Incremental development tracking",
			},
			box: deck.Box{X: 0.4, Y: 1.15, W: 4.5, H: 1.9},
		},
		{
			title: "✅ Agent Orchestration",
			items: []string{
				"4 specialized AI agents",
				"Sequential execution with data flow",
				"Error handling & graceful degradation",
			},
			box: deck.Box{X: 4.9, Y: 1.15, W: 4.5, H: 1.9},
		},
		{
			title: "✅ Workflow Automation",
			items: []string{
				"Intelligent caching (2.8x performance)",
				"Goal-specific re-analysis",
				"Human-in-the-loop feedback",
			},
			box: deck.Box{X: 0.4, Y: 3.0, W: 4.5, H: 1.9},
		},
		{
			title: "✅ Development Tools",
			items: []string{
				"TypeScript integration",
				"Jest + property-based testing",
				"Next.js + Mantine UI",
			},
			box: deck.Box{X: 4.9, Y: 3.0, W: 4.5, H: 1.9},
		},
	}

	slide := deck.SlideSpec{
		Background: colorBlue,
		Title: &deck.TitleSpec{
			Text:  "Kiro Features Leveraged (30% of Grade)",
			Size:  24,
			Color: colorGold,
			Bold:  true,
			Y:     0.4,
		},
	}
	for _, f := range features {
		slide.Regions = append(slide.Regions, deck.BulletGroup{
			Box:          f.box,
			Heading:      f.title,
			HeadingSize:  14,
			HeadingColor: colorGreen,
			Items:        f.items,
			ItemSize:     10,
			ItemColor:    colorWhite,
			SpaceBefore:  400,
		})
	}
	return slide
}

func closingSlide() deck.SlideSpec {
	return deck.SlideSpec{
		Background: colorBlue,
		Title: &deck.TitleSpec{
			Text:     "Thank You & Q&A",
			Size:     36,
			Color:    colorWhite,
			Bold:     true,
			Centered: true,
			Y:        1.1,
		},
		Regions: []deck.Region{
			deck.BulletGroup{
				Box:          deck.Box{X: 1.5, Y: 2.6, W: 7.0, H: 1.5},
				Heading:      "Key Takeaways",
				HeadingSize:  18,
				HeadingColor: colorGreen,
				Items: []string{
					"Agentic Design: Multi-agent systems excel at complex analysis",
					"Kiro Integration: Specs + workflows + testing = robust development",
					"Performance Matters: Intelligent caching transforms UX",
					"Iterative Value: Goal-based re-analysis provides perspectives",
				},
				ItemSize:    12,
				ItemColor:   colorWhite,
				SpaceBefore: 600,
				Centered:    true,
			},
			deck.Caption{
				Box:   deck.Box{X: 0.75, Y: 4.35, W: 8.5, H: 0.6},
				Text:  "Questions & Discussion",
				Size:  21,
				Color: colorGold,
				Bold:  true,
			},
		},
	}
}
