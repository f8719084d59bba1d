// MODUL: image_test
// ZWECK: Tests fuer Bild-Lade- und Verarbeitungsfunktionen
// INPUT: Synthetische Bilder und PNG-Bytes
// OUTPUT: Testresultate
// NEBENEFFEKTE: keine
// ABHAENGIGKEITEN: testing, image, image/png, bytes
// HINWEISE: Testet Resize, Crop, Invert und Aspect-Padding

package vision

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"testing"
)

// createPNGBytes erzeugt PNG-Bytes aus einem einfarbigen Testbild
func createPNGBytes(w, h int, c color.Color) []byte {
	rgba := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			rgba.Set(x, y, c)
		}
	}

	var buf bytes.Buffer
	_ = png.Encode(&buf, rgba)
	return buf.Bytes()
}

// createTestImage erzeugt ein ImageInput direkt ohne Kodierung
func createTestImage(w, h int, c color.Color) *ImageInput {
	rgba := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			rgba.Set(x, y, c)
		}
	}
	return FromRGBA(rgba, FormatPNG)
}

func TestLoadImageFromBytes(t *testing.T) {
	pngData := createPNGBytes(100, 50, color.RGBA{255, 0, 0, 255})

	img, err := LoadImageFromBytes(pngData)
	if err != nil {
		t.Fatalf("LoadImageFromBytes() error = %v", err)
	}

	if img.Width != 100 || img.Height != 50 {
		t.Errorf("Groesse = %dx%d, erwartet 100x50", img.Width, img.Height)
	}

	if img.Format != FormatPNG {
		t.Errorf("Format = %v, erwartet %v", img.Format, FormatPNG)
	}
}

func TestLoadImageFromBytesInvalid(t *testing.T) {
	invalidData := []byte{0x00, 0x00, 0x00, 0x00}

	_, err := LoadImageFromBytes(invalidData)
	if err == nil {
		t.Error("Erwartet Fehler bei ungueltigem Format")
	}
}

func TestResizeImage(t *testing.T) {
	img := createTestImage(100, 50, color.White)

	resized, err := ResizeImage(img, 224, 224)
	if err != nil {
		t.Fatalf("ResizeImage() error = %v", err)
	}

	if resized.Width != 224 || resized.Height != 224 {
		t.Errorf("Groesse = %dx%d, erwartet 224x224", resized.Width, resized.Height)
	}
}

func TestResizeImageInvalidSize(t *testing.T) {
	img := createTestImage(10, 10, color.White)

	if _, err := ResizeImage(img, 0, 10); err == nil {
		t.Error("Erwartet Fehler bei Breite 0")
	}
}

func TestResizeWithAspectPads(t *testing.T) {
	img := createTestImage(200, 100, color.White)

	resized, err := ResizeWithAspect(img, 100, 100)
	if err != nil {
		t.Fatalf("ResizeWithAspect() error = %v", err)
	}

	if resized.Width != 100 || resized.Height != 100 {
		t.Fatalf("Groesse = %dx%d, erwartet 100x100", resized.Width, resized.Height)
	}

	// Oben und unten muss schwarzer Rand liegen (Seitenverhaeltnis 2:1)
	top := resized.Image.RGBAAt(50, 5)
	if top.R != 0 || top.G != 0 || top.B != 0 {
		t.Errorf("Randpixel = %v, erwartet schwarz", top)
	}

	center := resized.Image.RGBAAt(50, 50)
	if center.R != 255 {
		t.Errorf("Zentrum = %v, erwartet weiss", center)
	}
}

func TestCenterCrop(t *testing.T) {
	img := createTestImage(100, 100, color.White)

	cropped, err := CenterCrop(img, 50, 40)
	if err != nil {
		t.Fatalf("CenterCrop() error = %v", err)
	}

	if cropped.Width != 50 || cropped.Height != 40 {
		t.Errorf("Groesse = %dx%d, erwartet 50x40", cropped.Width, cropped.Height)
	}
}

func TestCenterCropTooLarge(t *testing.T) {
	img := createTestImage(10, 10, color.White)

	if _, err := CenterCrop(img, 20, 20); err == nil {
		t.Error("Erwartet Fehler wenn Crop groesser als Bild")
	}
}

func TestInvert(t *testing.T) {
	img := createTestImage(4, 4, color.RGBA{10, 20, 30, 255})

	inverted := Invert(img)

	got := inverted.Image.RGBAAt(0, 0)
	want := color.RGBA{245, 235, 225, 255}
	if got != want {
		t.Errorf("Pixel = %v, erwartet %v", got, want)
	}
}

func TestToGray(t *testing.T) {
	img := createTestImage(8, 8, color.RGBA{255, 255, 255, 255})

	gray := ToGray(img)
	if gray.GrayAt(4, 4).Y != 255 {
		t.Errorf("Grauwert = %d, erwartet 255", gray.GrayAt(4, 4).Y)
	}
}
