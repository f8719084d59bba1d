// MODUL: filter_test
// ZWECK: Tests fuer Faltung, Gauss-Kernel und Kantenoperatoren
package vision

import (
	"image/color"
	"math"
	"testing"
)

func TestGaussianKernelNormalized(t *testing.T) {
	for _, size := range []int{3, 5, 15} {
		kernel := GaussianKernel(size)
		if len(kernel) != size*size {
			t.Fatalf("Kernelgroesse = %d, erwartet %d", len(kernel), size*size)
		}

		var sum float64
		for _, v := range kernel {
			sum += v
		}
		if math.Abs(sum-1.0) > 1e-9 {
			t.Errorf("Kernelsumme(%d) = %f, erwartet 1.0", size, sum)
		}
	}
}

func TestGaussianKernelEvenSizeBumped(t *testing.T) {
	kernel := GaussianKernel(4)
	if len(kernel) != 5*5 {
		t.Errorf("Kernelgroesse bei geradem Input = %d, erwartet 25", len(kernel))
	}
}

func TestConvolve2DIdentity(t *testing.T) {
	src := []float64{1, 2, 3, 4, 5, 6, 7, 8, 9}
	identity := []float64{0, 0, 0, 0, 1, 0, 0, 0, 0}

	dst := Convolve2D(src, 3, 3, identity, 3)
	for i := range src {
		if math.Abs(dst[i]-src[i]) > 1e-12 {
			t.Fatalf("Identitaetsfaltung an %d: %f != %f", i, dst[i], src[i])
		}
	}
}

func TestSobelMagnitudeFlatPlane(t *testing.T) {
	src := make([]float64, 16)
	for i := range src {
		src[i] = 100
	}

	mag := SobelMagnitude(src, 4, 4)
	for i, v := range mag {
		if v != 0 {
			t.Fatalf("Gradient auf flacher Ebene an %d = %f, erwartet 0", i, v)
		}
	}
}

func TestLaplacianVarianceCheckerboard(t *testing.T) {
	// Schachbrett: jeder Pixel hat vier gegensaetzliche Nachbarn
	img := createTestImage(8, 8, color.Black)
	for y := 0; y < 8; y++ {
		for x := 0; x < 8; x++ {
			v := uint8(0)
			if (x+y)%2 == 0 {
				v = 255
			}
			img.Image.Pix[y*img.Image.Stride+x*4] = v
			img.Image.Pix[y*img.Image.Stride+x*4+1] = v
			img.Image.Pix[y*img.Image.Stride+x*4+2] = v
			img.Image.Pix[y*img.Image.Stride+x*4+3] = 255
		}
	}

	variance := LaplacianVariance(ToGray(img))
	if variance < 100 {
		t.Errorf("LaplacianVariance(Schachbrett) = %f, erwartet scharfes Bild", variance)
	}

	flat := createTestImage(8, 8, color.Gray{Y: 128})
	if v := LaplacianVariance(ToGray(flat)); v != 0 {
		t.Errorf("LaplacianVariance(flach) = %f, erwartet 0", v)
	}
}

func TestPlaneStats(t *testing.T) {
	plane := []float64{0, 0, 100, 100}

	mean, std := PlaneStats(plane)
	if mean != 50 {
		t.Errorf("mean = %f, erwartet 50", mean)
	}
	if std != 50 {
		t.Errorf("std = %f, erwartet 50", std)
	}
}
