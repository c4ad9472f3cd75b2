package deck

import (
	"fmt"
	"strings"

	goword "github.com/VantageDataChat/GoWord"
	"github.com/VantageDataChat/GoWord/style"
)

// OutlineService exports the deck spec as a Word speaker outline using
// GoWord (pure Go).
type OutlineService struct{}

// NewOutlineService creates a new outline service.
func NewOutlineService() *OutlineService {
	return &OutlineService{}
}

// ExportOutline renders the spec as a .docx outline and returns its bytes.
func (s *OutlineService) ExportOutline(spec Spec) ([]byte, error) {
	if err := spec.Validate(); err != nil {
		return nil, fmt.Errorf("invalid deck spec: %w", err)
	}

	doc := goword.New()
	doc.Properties.Title = spec.Title
	doc.Properties.Creator = spec.Author
	doc.Properties.Description = fmt.Sprintf("Speaker outline for %s", spec.Title)

	sec := doc.AddSection()
	sec.AddTitle(spec.Title, 1)

	for i, slide := range spec.Slides {
		heading := fmt.Sprintf("Slide %d", i+1)
		if slide.Title != nil {
			heading = fmt.Sprintf("Slide %d: %s", i+1, slide.Title.Text)
		}
		sec.AddTitle(heading, 2)

		for _, region := range slide.Regions {
			switch r := region.(type) {
			case BulletGroup:
				if r.Heading != "" {
					sec.AddText(r.Heading,
						&style.FontStyle{Bold: true, Size: 12, Color: "475569"},
						nil)
				}
				for _, item := range r.Items {
					sec.AddText("• "+item,
						&style.FontStyle{Size: 11, Color: "334155"},
						&style.ParagraphStyle{Indent: 360})
				}
			case MonoBlock:
				for _, line := range strings.Split(r.Text, "\n") {
					if strings.TrimSpace(line) == "" {
						sec.AddTextBreak(1)
						continue
					}
					sec.AddText(line,
						&style.FontStyle{Size: 8, Color: "334155"},
						nil)
				}
			case Caption:
				sec.AddText(r.Text,
					&style.FontStyle{Size: 11, Color: "475569"},
					&style.ParagraphStyle{Alignment: style.AlignCenter})
			}
		}

		sec.AddTextBreak(1)
	}

	sec.AddText(fmt.Sprintf("Generated by %s", spec.Author),
		&style.FontStyle{Size: 9, Color: "94A3B8"},
		&style.ParagraphStyle{Alignment: style.AlignCenter})

	data, err := doc.ToBytes()
	if err != nil {
		return nil, fmt.Errorf("failed to write Word outline: %w", err)
	}

	return data, nil
}
