// MODUL: normalize
// ZWECK: Normalisierung und Tensor-Konvertierung fuer die Modell-Eingabe
// INPUT: ImageInput, Normalisierungs-Parameter (mean, std)
// OUTPUT: float32-Tensoren in verschiedenen Layouts
// NEBENEFFEKTE: keine
// ABHAENGIGKEITEN: keine (nur Standardbibliothek)
// HINWEISE: Unterstuetzt HWC und CHW Layouts, ImageNet Presets

package vision

// Standard-Normalisierungswerte fuer verschiedene Modelle
var (
	// ImageNet Default (VGG, ResNet, EfficientNet, etc.)
	ImageNetMean = [3]float32{0.485, 0.456, 0.406}
	ImageNetStd  = [3]float32{0.229, 0.224, 0.225}

	// Keine Normalisierung (nur Skalierung auf [0,1])
	NoNormMean = [3]float32{0.0, 0.0, 0.0}
	NoNormStd  = [3]float32{1.0, 1.0, 1.0}
)

// NormalizeRGB normalisiert ein Bild mit gegebenen mean/std Werten
// Gibt einen float32-Slice im CHW Format zurueck (Channel-First)
func NormalizeRGB(img *ImageInput, mean, std [3]float32) []float32 {
	bounds := img.Image.Bounds()
	h := bounds.Dy()
	w := bounds.Dx()
	size := h * w

	// Pre-allozieren fuer CHW Layout
	result := make([]float32, size*3)
	rOffset := 0
	gOffset := size
	bOffset := size * 2

	idx := 0
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			r, g, b := extractRGB(img, x, y)

			// Normalisierung anwenden
			result[rOffset+idx] = (r - mean[0]) / std[0]
			result[gOffset+idx] = (g - mean[1]) / std[1]
			result[bOffset+idx] = (b - mean[2]) / std[2]
			idx++
		}
	}

	return result
}

// extractRGB holt RGB-Werte als float32 im Bereich [0,1]
func extractRGB(img *ImageInput, x, y int) (float32, float32, float32) {
	c := img.Image.RGBAAt(x, y)
	return float32(c.R) / 255.0, float32(c.G) / 255.0, float32(c.B) / 255.0
}

// ToFloat32Tensor konvertiert ein Bild zu einem float32-Slice im HWC Format
// Werte werden auf [0,1] skaliert ohne Normalisierung
func ToFloat32Tensor(img *ImageInput) []float32 {
	bounds := img.Image.Bounds()
	h := bounds.Dy()
	w := bounds.Dx()

	// HWC Layout: Height x Width x Channels
	result := make([]float32, h*w*3)
	idx := 0

	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			r, g, b := extractRGB(img, x, y)
			result[idx] = r
			result[idx+1] = g
			result[idx+2] = b
			idx += 3
		}
	}

	return result
}

// NormalizeRGBToHWC normalisiert und gibt HWC Layout zurueck
func NormalizeRGBToHWC(img *ImageInput, mean, std [3]float32) []float32 {
	bounds := img.Image.Bounds()
	h := bounds.Dy()
	w := bounds.Dx()

	result := make([]float32, h*w*3)
	idx := 0

	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			r, g, b := extractRGB(img, x, y)

			result[idx] = (r - mean[0]) / std[0]
			result[idx+1] = (g - mean[1]) / std[1]
			result[idx+2] = (b - mean[2]) / std[2]
			idx += 3
		}
	}

	return result
}

// Dimensions gibt die Bild-Dimensionen als (H, W, C) zurueck
func (img *ImageInput) Dimensions() (int, int, int) {
	return img.Height, img.Width, 3
}

// TensorShape gibt die Tensor-Form fuer ein gegebenes Layout zurueck
func (img *ImageInput) TensorShape(channelFirst bool) []int {
	if channelFirst {
		return []int{3, img.Height, img.Width}
	}
	return []int{img.Height, img.Width, 3}
}
