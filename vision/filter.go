// MODUL: filter
// ZWECK: Faltungs- und Filteroperationen auf Graustufen-Ebenen
// INPUT: Graustufenbild oder float64-Ebene mit Breite/Hoehe
// OUTPUT: Gefilterte float64-Ebene
// NEBENEFFEKTE: keine
// ABHAENGIGKEITEN: math, gonum.org/v1/gonum/stat (extern)
// HINWEISE: Randbehandlung durch Spiegelung (reflect), Sigma der
// Gauss-Kernel wird wie ueblich aus der Kernelgroesse abgeleitet

package vision

import (
	"image"
	"math"

	"gonum.org/v1/gonum/stat"
)

// GrayToPlane konvertiert ein Graubild in eine float64-Ebene [0,255]
func GrayToPlane(gray *image.Gray) ([]float64, int, int) {
	bounds := gray.Bounds()
	w := bounds.Dx()
	h := bounds.Dy()

	plane := make([]float64, w*h)
	idx := 0
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			plane[idx] = float64(gray.GrayAt(x, y).Y)
			idx++
		}
	}

	return plane, w, h
}

// reflectIndex spiegelt einen Index in den Bereich [0, n)
func reflectIndex(i, n int) int {
	if i < 0 {
		i = -i
	}
	if i >= n {
		i = 2*n - 2 - i
	}
	if i < 0 || i >= n {
		// Entartet nur bei n == 1
		return 0
	}
	return i
}

// Convolve2D faltet eine Ebene mit einem quadratischen Kernel
// kSize muss ungerade sein, Raender werden gespiegelt
func Convolve2D(src []float64, w, h int, kernel []float64, kSize int) []float64 {
	half := kSize / 2
	dst := make([]float64, len(src))

	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			var sum float64
			for ky := 0; ky < kSize; ky++ {
				sy := reflectIndex(y+ky-half, h)
				for kx := 0; kx < kSize; kx++ {
					sx := reflectIndex(x+kx-half, w)
					sum += src[sy*w+sx] * kernel[ky*kSize+kx]
				}
			}
			dst[y*w+x] = sum
		}
	}

	return dst
}

// GaussianKernel erzeugt einen normierten quadratischen Gauss-Kernel
func GaussianKernel(size int) []float64 {
	if size%2 == 0 {
		size++
	}

	// Sigma-Heuristik wie in gaengigen CV-Bibliotheken
	sigma := 0.3*(float64(size-1)*0.5-1) + 0.8

	half := size / 2
	kernel := make([]float64, size*size)
	var sum float64
	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			dx := float64(x - half)
			dy := float64(y - half)
			v := math.Exp(-(dx*dx + dy*dy) / (2 * sigma * sigma))
			kernel[y*size+x] = v
			sum += v
		}
	}
	for i := range kernel {
		kernel[i] /= sum
	}

	return kernel
}

// GaussianBlur glaettet eine Ebene mit einem Gauss-Kernel
func GaussianBlur(src []float64, w, h, kSize int) []float64 {
	return Convolve2D(src, w, h, GaussianKernel(kSize), kSize)
}

// 3x3 Standard-Kernel fuer Kantendetektion
var (
	laplacianKernel = []float64{0, 1, 0, 1, -4, 1, 0, 1, 0}
	sobelXKernel    = []float64{-1, 0, 1, -2, 0, 2, -1, 0, 1}
	sobelYKernel    = []float64{-1, -2, -1, 0, 0, 0, 1, 2, 1}
)

// Laplacian berechnet den Laplace-Operator einer Ebene
func Laplacian(src []float64, w, h int) []float64 {
	return Convolve2D(src, w, h, laplacianKernel, 3)
}

// SobelMagnitude berechnet die Gradientenstaerke via Sobel-Operator
func SobelMagnitude(src []float64, w, h int) []float64 {
	gx := Convolve2D(src, w, h, sobelXKernel, 3)
	gy := Convolve2D(src, w, h, sobelYKernel, 3)

	dst := make([]float64, len(src))
	for i := range dst {
		dst[i] = math.Hypot(gx[i], gy[i])
	}
	return dst
}

// LaplacianVariance ist das Schaerfemass eines Graubildes
func LaplacianVariance(gray *image.Gray) float64 {
	plane, w, h := GrayToPlane(gray)
	if len(plane) == 0 {
		return 0
	}
	return stat.PopVariance(Laplacian(plane, w, h), nil)
}

// PlaneStats gibt Mittelwert und Populations-Standardabweichung zurueck
func PlaneStats(plane []float64) (mean, std float64) {
	if len(plane) == 0 {
		return 0, 0
	}
	mean = stat.Mean(plane, nil)
	std = math.Sqrt(stat.PopVariance(plane, nil))
	return mean, std
}
