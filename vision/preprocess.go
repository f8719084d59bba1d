// MODUL: preprocess
// ZWECK: Vorverarbeitung von Roentgenbildern fuer die Modell-Eingabe
// INPUT: ImageInput in beliebiger Groesse
// OUTPUT: Tensor mit ImageNet-Normalisierung, kontrastverbesserte Bilder
// NEBENEFFEKTE: keine
// ABHAENGIGKEITEN: image (stdlib), normalize.go, filter.go
// HINWEISE: Modelle erwarten 224x224 RGB, Kontrast via Histogramm-Ausgleich

package vision

import (
	"image"
	"image/color"
)

// ModelInputSize ist die Kantenlaenge der Modell-Eingabe
const ModelInputSize = 224

// Tensor ist ein float32-Bild im HWC Layout fuer die Modell-Eingabe
type Tensor struct {
	Data     []float32
	Height   int
	Width    int
	Channels int
}

// PreprocessForModel bereitet ein Bild fuer die Klassifikation vor:
// Skalierung auf 224x224, [0,1]-Skalierung, ImageNet-Normalisierung
func PreprocessForModel(img *ImageInput) (*Tensor, error) {
	resized, err := ResizeImage(img, ModelInputSize, ModelInputSize)
	if err != nil {
		return nil, err
	}

	return &Tensor{
		Data:     NormalizeRGBToHWC(resized, ImageNetMean, ImageNetStd),
		Height:   ModelInputSize,
		Width:    ModelInputSize,
		Channels: 3,
	}, nil
}

// EqualizeHist fuehrt einen Histogramm-Ausgleich auf dem Graubild aus
func EqualizeHist(gray *image.Gray) *image.Gray {
	bounds := gray.Bounds()
	total := bounds.Dx() * bounds.Dy()
	if total == 0 {
		return gray
	}

	var hist [256]int
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			hist[gray.GrayAt(x, y).Y]++
		}
	}

	// Kumulative Verteilung auf [0,255] abbilden
	var lut [256]uint8
	cum := 0
	for i, count := range hist {
		cum += count
		lut[i] = uint8(cum * 255 / total)
	}

	dst := image.NewGray(bounds)
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			dst.SetGray(x, y, color.Gray{Y: lut[gray.GrayAt(x, y).Y]})
		}
	}

	return dst
}

// EnhanceContrast verbessert den Kontrast ueber die Luminanz
// Das Ergebnis ist ein Graubild in RGBA-Form
func EnhanceContrast(img *ImageInput) *ImageInput {
	equalized := EqualizeHist(ToGray(img))
	return FromRGBA(toRGBA(equalized), img.Format)
}

// XRayEffect invertiert das Bild und verbessert danach den Kontrast
func XRayEffect(img *ImageInput) *ImageInput {
	return EnhanceContrast(Invert(img))
}
