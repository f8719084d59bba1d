// MODUL: augment_test
// ZWECK: Tests fuer die Augmentierungs-Transformationen
// INPUT: Synthetische Testbilder
// OUTPUT: Testresultate
// NEBENEFFEKTE: keine
// ABHAENGIGKEITEN: testing, vision
// HINWEISE: Determinismus ueber festen Augmentor-Seed

package augment

import (
	"image"
	"image/color"
	"testing"

	"github.com/thorascan/thorascan/vision"
)

func testImage(w, h int, v uint8) *vision.ImageInput {
	rgba := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			rgba.Set(x, y, color.RGBA{v, v, v, 255})
		}
	}
	return vision.FromRGBA(rgba, vision.FormatPNG)
}

func TestTypesComplete(t *testing.T) {
	types := Types()
	if len(types) != 9 {
		t.Fatalf("Anzahl Typen = %d, erwartet 9", len(types))
	}
	if types[0] != "rotation" || types[8] != "elastic" {
		t.Errorf("Reihenfolge unerwartet: %v", types)
	}
}

func TestValid(t *testing.T) {
	if !Valid("brightness") {
		t.Error("brightness muss gueltig sein")
	}
	if Valid("sharpen") {
		t.Error("sharpen darf nicht gueltig sein")
	}
}

func TestApplyUnknownTypeReturnsInput(t *testing.T) {
	a := NewAugmentor(1)
	img := testImage(8, 8, 100)

	got := a.Apply(img, "sharpen", 0.5)
	if got != img {
		t.Error("Unbekannter Typ muss das Eingabebild unveraendert zurueckgeben")
	}
}

func TestApplyPreservesDimensions(t *testing.T) {
	a := NewAugmentor(2)
	img := testImage(40, 30, 128)

	for _, augType := range Types() {
		got := a.Apply(img, augType, 0.5)
		if got.Width != 40 || got.Height != 30 {
			t.Errorf("%s: Groesse = %dx%d, erwartet 40x30", augType, got.Width, got.Height)
		}
	}
}

func TestBrightnessScaling(t *testing.T) {
	a := NewAugmentor(3)
	img := testImage(4, 4, 100)

	// intensity 1.0 -> Faktor 1.5
	brighter := a.Apply(img, "brightness", 1.0)
	if got := brighter.Image.RGBAAt(0, 0).R; got != 150 {
		t.Errorf("Pixel = %d, erwartet 150", got)
	}

	// intensity 0.0 -> Faktor 0.5
	darker := a.Apply(img, "brightness", 0.0)
	if got := darker.Image.RGBAAt(0, 0).R; got != 50 {
		t.Errorf("Pixel = %d, erwartet 50", got)
	}
}

func TestBrightnessClamps(t *testing.T) {
	a := NewAugmentor(4)
	img := testImage(4, 4, 200)

	got := a.Apply(img, "brightness", 1.0).Image.RGBAAt(1, 1).R
	if got != 255 {
		t.Errorf("Pixel = %d, erwartet Clamp auf 255", got)
	}
}

func TestContrastAroundMidGray(t *testing.T) {
	a := NewAugmentor(5)

	// Mittelgrau bleibt bei jeder Kontraststaerke unveraendert
	mid := testImage(4, 4, 128)
	if got := a.Apply(mid, "contrast", 1.0).Image.RGBAAt(0, 0).R; got != 128 {
		t.Errorf("Mittelgrau = %d, erwartet 128", got)
	}

	// (200-128)*1.5+128 = 236
	bright := testImage(4, 4, 200)
	if got := a.Apply(bright, "contrast", 1.0).Image.RGBAAt(0, 0).R; got != 236 {
		t.Errorf("Pixel = %d, erwartet 236", got)
	}
}

func TestNoiseZeroIntensityIsIdentity(t *testing.T) {
	a := NewAugmentor(6)
	img := testImage(8, 8, 77)

	got := a.Apply(img, "noise", 0)
	for y := 0; y < 8; y++ {
		for x := 0; x < 8; x++ {
			if got.Image.RGBAAt(x, y).R != 77 {
				t.Fatalf("Pixel (%d,%d) veraendert ohne Rauschen", x, y)
			}
		}
	}
}

func TestFlipDeterministicWithSeed(t *testing.T) {
	img := testImage(8, 8, 10)
	img.Image.SetRGBA(0, 0, color.RGBA{250, 250, 250, 255})

	a := NewAugmentor(7)
	b := NewAugmentor(7)

	got1 := a.Apply(img, "flip", 0.5)
	got2 := b.Apply(img, "flip", 0.5)

	for y := 0; y < 8; y++ {
		for x := 0; x < 8; x++ {
			if got1.Image.RGBAAt(x, y) != got2.Image.RGBAAt(x, y) {
				t.Fatalf("Flip mit gleichem Seed nicht deterministisch")
			}
		}
	}
}

func TestZoomOutPadsWithBlack(t *testing.T) {
	a := NewAugmentor(8)
	img := testImage(100, 100, 255)

	// intensity 0 -> Faktor 0.8, Rand muss schwarz sein
	got := a.Apply(img, "zoom", 0)
	corner := got.Image.RGBAAt(0, 0)
	if corner.R != 0 || corner.G != 0 || corner.B != 0 {
		t.Errorf("Ecke = %v, erwartet schwarz", corner)
	}

	center := got.Image.RGBAAt(50, 50)
	if center.R != 255 {
		t.Errorf("Zentrum = %v, erwartet weiss", center)
	}
}

func TestRotationKeepsUniformImage(t *testing.T) {
	a := NewAugmentor(9)
	img := testImage(32, 32, 90)

	// Einfarbige Bilder bleiben unter Rotation mit Spiegelrand einfarbig
	got := a.Apply(img, "rotation", 1.0)
	if px := got.Image.RGBAAt(0, 0); px.R != 90 {
		t.Errorf("Pixel = %v, erwartet 90", px)
	}
	if px := got.Image.RGBAAt(16, 16); px.R != 90 {
		t.Errorf("Zentrum = %v, erwartet 90", px)
	}
}

func TestPipelineAppliesAllSteps(t *testing.T) {
	a := NewAugmentor(10)
	img := testImage(16, 16, 100)

	got := a.Pipeline(img, []Step{
		{Type: "brightness", Intensity: 1.0}, // 100 -> 150
		{Type: "contrast", Intensity: 1.0},   // (150-128)*1.5+128 = 161
	})

	if px := got.Image.RGBAAt(8, 8).R; px != 161 {
		t.Errorf("Pixel = %d, erwartet 161", px)
	}
}

func TestPreviews(t *testing.T) {
	a := NewAugmentor(11)
	img := testImage(16, 16, 100)

	previews := a.Previews(img, 4)
	if len(previews) != 4 {
		t.Fatalf("Anzahl Vorschauen = %d, erwartet 4", len(previews))
	}

	want := []string{"rotation", "flip", "brightness", "contrast"}
	for i, p := range previews {
		if p.Type != want[i] {
			t.Errorf("Vorschau %d: Typ = %q, erwartet %q", i, p.Type, want[i])
		}
		if p.Image == nil {
			t.Errorf("Vorschau %d: Bild fehlt", i)
		}
	}
}

func TestPreviewsCappedAtTypeCount(t *testing.T) {
	a := NewAugmentor(12)
	img := testImage(8, 8, 100)

	previews := a.Previews(img, 50)
	if len(previews) != len(Types()) {
		t.Errorf("Anzahl Vorschauen = %d, erwartet %d", len(previews), len(Types()))
	}
}
