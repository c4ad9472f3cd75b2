package deck

import (
	"bytes"
	"fmt"
	"os"
	"strings"

	ppt "github.com/VantageDataChat/GoPPT"
)

// PPTDeckService turns a declarative deck Spec into a .pptx file using
// GoPPT (pure Go, zero dependencies).
type PPTDeckService struct{}

// NewPPTDeckService creates a new PPT deck service.
func NewPPTDeckService() *PPTDeckService {
	return &PPTDeckService{}
}

const monoFontName = "Courier New"

// helper: create a solid fill
func solidFill(argb string) *ppt.Fill {
	return ppt.NewFill().SetSolid(ppt.NewColor(argb))
}

// helper: set paragraph alignment to center
func alignCenter(p *ppt.Paragraph) {
	p.SetAlignment(ppt.NewAlignment().SetHorizontal(ppt.HorizontalCenter))
}

// BuildDeck builds the presentation described by spec and returns the
// serialized .pptx bytes. The spec is validated first; nothing is emitted
// for an invalid spec.
func (s *PPTDeckService) BuildDeck(spec Spec) ([]byte, error) {
	if err := spec.Validate(); err != nil {
		return nil, fmt.Errorf("invalid deck spec: %w", err)
	}

	p := ppt.New()
	p.GetDocumentProperties().Title = spec.Title
	p.GetDocumentProperties().Creator = spec.Author

	for i, slideSpec := range spec.Slides {
		var slide *ppt.Slide
		if i == 0 {
			slide = p.GetActiveSlide()
		} else {
			slide = p.CreateSlide()
		}
		s.addBackground(slide, slideSpec.Background)
		if slideSpec.Title != nil {
			s.addTitle(slide, *slideSpec.Title)
		}
		for _, region := range slideSpec.Regions {
			switch r := region.(type) {
			case BulletGroup:
				s.addBullets(slide, r)
			case MonoBlock:
				s.addBlock(slide, r)
			case Caption:
				s.addCaption(slide, r)
			default:
				return nil, fmt.Errorf("slide %d: unsupported region type %T", i+1, region)
			}
		}
	}

	w, err := ppt.NewWriter(p, ppt.WriterPowerPoint2007)
	if err != nil {
		return nil, fmt.Errorf("failed to create PPT writer: %w", err)
	}

	var buf bytes.Buffer
	if err := w.(*ppt.PPTXWriter).WriteTo(&buf); err != nil {
		return nil, fmt.Errorf("failed to save PPT: %w", err)
	}

	return buf.Bytes(), nil
}

// WriteDeckFile builds the deck and writes it to path in a single write, so
// a failed build never leaves a partial file behind.
func (s *PPTDeckService) WriteDeckFile(spec Spec, path string) error {
	data, err := s.BuildDeck(spec)
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write deck file: %w", err)
	}
	return nil
}

// addBackground inserts a full-canvas rectangle with a solid fill and no
// outline as the first shape of the slide.
func (s *PPTDeckService) addBackground(slide *ppt.Slide, argb string) {
	bg := slide.CreateRichTextShape()
	bg.SetOffsetX(0).SetOffsetY(0)
	bg.SetWidth(int64(CanvasWidth * emuPerInch)).SetHeight(int64(CanvasHeight * emuPerInch))
	bg.SetFill(solidFill(argb))
}

// addTitle inserts a title text box in the standard band near the top.
func (s *PPTDeckService) addTitle(slide *ppt.Slide, t TitleSpec) {
	shape := slide.CreateRichTextShape()
	shape.SetOffsetX(int64(marginLeft * emuPerInch)).SetOffsetY(int64(t.Y * emuPerInch))
	shape.SetWidth(int64(contentWidth * emuPerInch)).SetHeight(int64(titleBoxHeight * emuPerInch))
	tr := shape.CreateTextRun(t.Text)
	tr.GetFont().SetSize(t.Size).SetBold(t.Bold).SetColor(ppt.NewColor(t.Color))
	if t.Centered {
		alignCenter(shape.GetActiveParagraph())
	}
}

// addBullets inserts a text box whose first paragraph is the heading and
// each following paragraph one bullet-prefixed item.
func (s *PPTDeckService) addBullets(slide *ppt.Slide, g BulletGroup) {
	shape := slide.CreateRichTextShape()
	shape.SetOffsetX(g.Box.emuX()).SetOffsetY(g.Box.emuY())
	shape.SetWidth(g.Box.emuW()).SetHeight(g.Box.emuH())

	first := true
	if g.Heading != "" {
		tr := shape.CreateTextRun(g.Heading)
		tr.GetFont().SetSize(g.HeadingSize).SetBold(true).SetColor(ppt.NewColor(g.HeadingColor))
		if g.Centered {
			alignCenter(shape.GetActiveParagraph())
		}
		first = false
	}

	for _, item := range g.Items {
		var para *ppt.Paragraph
		if first {
			para = shape.GetActiveParagraph()
			first = false
		} else {
			para = shape.CreateParagraph()
		}
		if g.SpaceBefore > 0 {
			para.SetSpaceBefore(g.SpaceBefore)
		}
		if g.Centered {
			alignCenter(para)
		}
		tr := para.CreateTextRun("• " + item)
		tr.GetFont().SetSize(g.ItemSize).SetColor(ppt.NewColor(g.ItemColor))
	}
}

// addBlock inserts preformatted text one paragraph per line in a monospace
// face, so box-drawing diagrams keep their column alignment.
func (s *PPTDeckService) addBlock(slide *ppt.Slide, m MonoBlock) {
	shape := slide.CreateRichTextShape()
	shape.SetOffsetX(m.Box.emuX()).SetOffsetY(m.Box.emuY())
	shape.SetWidth(m.Box.emuW()).SetHeight(m.Box.emuH())
	shape.SetWordWrap(false)

	for i, line := range strings.Split(m.Text, "\n") {
		var para *ppt.Paragraph
		if i == 0 {
			para = shape.GetActiveParagraph()
		} else {
			para = shape.CreateParagraph()
		}
		text := line
		if text == "" {
			text = " "
		}
		tr := para.CreateTextRun(text)
		tr.GetFont().SetName(monoFontName).SetSize(m.Size).SetColor(ppt.NewColor(m.Color))
	}
}

// addCaption inserts a single centered line of text.
func (s *PPTDeckService) addCaption(slide *ppt.Slide, c Caption) {
	shape := slide.CreateRichTextShape()
	shape.SetOffsetX(c.Box.emuX()).SetOffsetY(c.Box.emuY())
	shape.SetWidth(c.Box.emuW()).SetHeight(c.Box.emuH())
	tr := shape.CreateTextRun(c.Text)
	tr.GetFont().SetSize(c.Size).SetBold(c.Bold).SetColor(ppt.NewColor(c.Color))
	alignCenter(shape.GetActiveParagraph())
}
