package deck

import "fmt"

// Canvas constants - 16:9 widescreen, coordinates in inches
const (
	emuPerInch = 914400

	CanvasWidth  = 10.0
	CanvasHeight = 5.625

	// Side margins and the fixed title band (inches)
	marginLeft     = 0.4
	contentWidth   = 9.2
	titleBoxHeight = 1.0
)

// Box is a positioned rectangle on the slide canvas, in inches.
type Box struct {
	X float64
	Y float64
	W float64
	H float64
}

func (b Box) emuX() int64 { return int64(b.X * emuPerInch) }
func (b Box) emuY() int64 { return int64(b.Y * emuPerInch) }
func (b Box) emuW() int64 { return int64(b.W * emuPerInch) }
func (b Box) emuH() int64 { return int64(b.H * emuPerInch) }

// inCanvas reports whether the box lies entirely within the slide canvas.
func (b Box) inCanvas() bool {
	return b.X >= 0 && b.Y >= 0 && b.W > 0 && b.H > 0 &&
		b.X+b.W <= CanvasWidth+1e-9 && b.Y+b.H <= CanvasHeight+1e-9
}

// Region is one positioned content block on a slide.
type Region interface {
	Bounds() Box
}

// BulletGroup is a heading followed by bullet-prefixed items in one text box.
type BulletGroup struct {
	Box          Box
	Heading      string
	HeadingSize  int
	HeadingColor string // ARGB, e.g. "FF90EE90"
	Items        []string
	ItemSize     int
	ItemColor    string
	SpaceBefore  int // hundredths of a point between items
	Centered     bool
}

func (g BulletGroup) Bounds() Box { return g.Box }

// MonoBlock is preformatted text rendered line-by-line in a monospace face.
type MonoBlock struct {
	Box   Box
	Text  string
	Size  int
	Color string
}

func (m MonoBlock) Bounds() Box { return m.Box }

// Caption is a single centered line of styled text.
type Caption struct {
	Box   Box
	Text  string
	Size  int
	Color string
	Bold  bool
}

func (c Caption) Bounds() Box { return c.Box }

// TitleSpec places a title run in the standard title band.
type TitleSpec struct {
	Text     string
	Size     int
	Color    string
	Bold     bool
	Centered bool
	Y        float64 // top offset in inches
}

// SlideSpec describes one slide: a solid background, an optional title and
// zero or more content regions, layered in that order.
type SlideSpec struct {
	Background string // ARGB fill for the full-canvas backdrop
	Title      *TitleSpec
	Regions    []Region
}

// Spec is the declarative description of a whole deck.
type Spec struct {
	Title  string
	Author string
	Slides []SlideSpec
}

// Validate checks that every shape the spec will produce fits the canvas.
// The underlying library does not enforce bounds, so we do it here before
// any shape is created.
func (s Spec) Validate() error {
	if len(s.Slides) == 0 {
		return fmt.Errorf("deck %q has no slides", s.Title)
	}
	for i, slide := range s.Slides {
		if slide.Background == "" {
			return fmt.Errorf("slide %d: missing background color", i+1)
		}
		if t := slide.Title; t != nil {
			band := Box{X: marginLeft, Y: t.Y, W: contentWidth, H: titleBoxHeight}
			if !band.inCanvas() {
				return fmt.Errorf("slide %d: title band at y=%.2f exceeds canvas", i+1, t.Y)
			}
		}
		for j, r := range slide.Regions {
			if b := r.Bounds(); !b.inCanvas() {
				return fmt.Errorf("slide %d: region %d (%.2f,%.2f %.2fx%.2f) exceeds canvas %gx%g",
					i+1, j+1, b.X, b.Y, b.W, b.H, CanvasWidth, CanvasHeight)
			}
		}
	}
	return nil
}
