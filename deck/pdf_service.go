package deck

import (
	"fmt"
	"strings"

	"github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontfamily"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"
)

// PDFHandoutService renders the deck spec as a printable handout using
// maroto, one section per slide.
type PDFHandoutService struct{}

// NewPDFHandoutService creates a new PDF handout service.
func NewPDFHandoutService() *PDFHandoutService {
	return &PDFHandoutService{}
}

var (
	handoutTitleColor   = &props.Color{Red: 102, Green: 126, Blue: 234}
	handoutHeadingColor = &props.Color{Red: 71, Green: 85, Blue: 105}
	handoutMutedColor   = &props.Color{Red: 148, Green: 163, Blue: 184}
)

// ExportHandout renders the spec to PDF and returns the document bytes.
func (s *PDFHandoutService) ExportHandout(spec Spec) ([]byte, error) {
	if err := spec.Validate(); err != nil {
		return nil, fmt.Errorf("invalid deck spec: %w", err)
	}

	cfg := config.NewBuilder().
		WithPageNumber().
		WithLeftMargin(15).
		WithTopMargin(15).
		WithRightMargin(15).
		WithDefaultFont(&props.Font{
			Family: fontfamily.Arial,
			Size:   10,
		}).
		Build()

	m := maroto.New(cfg)

	s.addHeader(m, spec.Title)
	for i, slide := range spec.Slides {
		s.addSlideSection(m, i+1, slide)
	}
	s.addFooter(m, spec.Author)

	document, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("failed to generate handout PDF: %w", err)
	}

	return document.GetBytes(), nil
}

// addHeader adds the handout title row.
func (s *PDFHandoutService) addHeader(m core.Maroto, title string) {
	m.AddRow(16,
		col.New(12).Add(
			text.New(title, props.Text{
				Family: fontfamily.Arial,
				Size:   18,
				Style:  fontstyle.Bold,
				Align:  align.Center,
				Color:  handoutTitleColor,
			}),
		),
	)
	m.AddRow(5)
}

// addSlideSection adds one slide's content as handout rows.
func (s *PDFHandoutService) addSlideSection(m core.Maroto, num int, slide SlideSpec) {
	heading := fmt.Sprintf("Slide %d", num)
	if slide.Title != nil {
		heading = fmt.Sprintf("Slide %d — %s", num, slide.Title.Text)
	}
	m.AddRow(9,
		col.New(12).Add(
			text.New(heading, props.Text{
				Family: fontfamily.Arial,
				Size:   12,
				Style:  fontstyle.Bold,
				Color:  handoutTitleColor,
			}),
		),
	)

	for _, region := range slide.Regions {
		switch r := region.(type) {
		case BulletGroup:
			if r.Heading != "" {
				m.AddRow(7,
					col.New(12).Add(
						text.New(r.Heading, props.Text{
							Family: fontfamily.Arial,
							Size:   10,
							Style:  fontstyle.Bold,
							Color:  handoutHeadingColor,
						}),
					),
				)
			}
			for _, item := range r.Items {
				m.AddRow(6,
					col.New(12).Add(
						text.New("• "+item, props.Text{
							Family: fontfamily.Arial,
							Size:   9,
							Left:   4,
						}),
					),
				)
			}
		case MonoBlock:
			for _, line := range strings.Split(r.Text, "\n") {
				m.AddRow(3.5,
					col.New(12).Add(
						text.New(line, props.Text{
							Family: fontfamily.Courier,
							Size:   6,
						}),
					),
				)
			}
		case Caption:
			m.AddRow(6,
				col.New(12).Add(
					text.New(r.Text, props.Text{
						Family: fontfamily.Arial,
						Size:   9,
						Align:  align.Center,
						Color:  handoutHeadingColor,
					}),
				),
			)
		}
	}

	m.AddRow(4)
}

// addFooter adds the handout footer row.
func (s *PDFHandoutService) addFooter(m core.Maroto, author string) {
	m.AddRow(8,
		col.New(12).Add(
			text.New(fmt.Sprintf("Generated by %s", author), props.Text{
				Family: fontfamily.Arial,
				Size:   8,
				Align:  align.Center,
				Color:  handoutMutedColor,
			}),
		),
	)
}
