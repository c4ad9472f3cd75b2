package deck

import (
	"testing"

	"pgregory.net/rapid"
)

// randomInBoundsBox draws a box that lies entirely within the canvas.
func randomInBoundsBox(t *rapid.T) Box {
	w := rapid.Float64Range(0.1, CanvasWidth).Draw(t, "w")
	h := rapid.Float64Range(0.1, CanvasHeight).Draw(t, "h")
	x := rapid.Float64Range(0, CanvasWidth-w).Draw(t, "x")
	y := rapid.Float64Range(0, CanvasHeight-h).Draw(t, "y")
	return Box{X: x, Y: y, W: w, H: h}
}

func specWithRegion(r Region) Spec {
	return Spec{
		Title: "prop",
		Slides: []SlideSpec{
			{Background: "FF667EEA", Regions: []Region{r}},
		},
	}
}

func TestValidateAcceptsInBoundsRegions(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		spec := specWithRegion(Caption{
			Box: randomInBoundsBox(t), Text: "x", Size: 12, Color: "FFFFFFFF",
		})
		if err := spec.Validate(); err != nil {
			t.Fatalf("in-bounds spec rejected: %v", err)
		}
	})
}

func TestValidateRejectsOutOfBoundsRegions(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		box := randomInBoundsBox(t)
		// Push the box past one canvas edge.
		switch rapid.IntRange(0, 3).Draw(t, "edge") {
		case 0:
			box.X = CanvasWidth - box.W + rapid.Float64Range(0.01, 5).Draw(t, "dx")
		case 1:
			box.Y = CanvasHeight - box.H + rapid.Float64Range(0.01, 5).Draw(t, "dy")
		case 2:
			box.X = -rapid.Float64Range(0.01, 5).Draw(t, "nx")
		case 3:
			box.Y = -rapid.Float64Range(0.01, 5).Draw(t, "ny")
		}

		spec := specWithRegion(MonoBlock{Box: box, Text: "x", Size: 8, Color: "FFFFFFFF"})
		if err := spec.Validate(); err == nil {
			t.Fatalf("out-of-bounds box %+v accepted", box)
		}
	})
}

func TestValidateRequiresBackgroundAndSlides(t *testing.T) {
	if err := (Spec{Title: "empty"}).Validate(); err == nil {
		t.Fatal("deck with no slides accepted")
	}
	spec := Spec{Title: "bg", Slides: []SlideSpec{{}}}
	if err := spec.Validate(); err == nil {
		t.Fatal("slide without background accepted")
	}
}
