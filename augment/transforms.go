// MODUL: transforms
// ZWECK: Implementierung der einzelnen Augmentierungs-Transformationen
// INPUT: ImageInput und Intensitaet [0,1]
// OUTPUT: Neues ImageInput, Eingabe bleibt unveraendert
// NEBENEFFEKTE: RNG-Zustand des Augmentors
// ABHAENGIGKEITEN: vision, image (stdlib), math
// HINWEISE: Geometrische Transformationen nutzen bilineare Interpolation
// mit gespiegeltem Rand (Reflect-101), Zoom fuellt mit Schwarz auf

package augment

import (
	"image"
	"image/color"
	"math"

	"github.com/thorascan/thorascan/vision"
)

// rotate dreht das Bild um die Bildmitte
// intensity 0..1 entspricht -30 bis +30 Grad
func (a *Augmentor) rotate(img *vision.ImageInput, intensity float64) *vision.ImageInput {
	angle := (intensity - 0.5) * 60 * math.Pi / 180

	cx := float64(img.Width) / 2
	cy := float64(img.Height) / 2
	sin, cos := math.Sincos(angle)

	dst := image.NewRGBA(image.Rect(0, 0, img.Width, img.Height))
	for y := 0; y < img.Height; y++ {
		for x := 0; x < img.Width; x++ {
			// Inverse Rotation: Zielpixel auf Quellkoordinate abbilden
			dx := float64(x) - cx
			dy := float64(y) - cy
			sx := cx + dx*cos + dy*sin
			sy := cy - dx*sin + dy*cos
			dst.SetRGBA(x, y, bilinearSample(img.Image, sx, sy))
		}
	}

	return vision.FromRGBA(dst, img.Format)
}

// flip spiegelt horizontal oder vertikal (zufaellige Wahl)
func (a *Augmentor) flip(img *vision.ImageInput) *vision.ImageInput {
	horizontal := a.rng.Float64() < 0.5

	dst := image.NewRGBA(image.Rect(0, 0, img.Width, img.Height))
	for y := 0; y < img.Height; y++ {
		for x := 0; x < img.Width; x++ {
			if horizontal {
				dst.SetRGBA(x, y, img.Image.RGBAAt(img.Width-1-x, y))
			} else {
				dst.SetRGBA(x, y, img.Image.RGBAAt(x, img.Height-1-y))
			}
		}
	}

	return vision.FromRGBA(dst, img.Format)
}

// brightness skaliert die Helligkeit
// intensity 0..1 entspricht Faktor 0.5 bis 1.5
func (a *Augmentor) brightness(img *vision.ImageInput, intensity float64) *vision.ImageInput {
	factor := 0.5 + intensity
	return mapPixels(img, func(v float64) float64 {
		return v * factor
	})
}

// contrast streckt die Werte um den Mittelgrauwert 128
// intensity 0..1 entspricht Faktor 0.5 bis 1.5
func (a *Augmentor) contrast(img *vision.ImageInput, intensity float64) *vision.ImageInput {
	factor := 0.5 + intensity
	return mapPixels(img, func(v float64) float64 {
		return (v-128)*factor + 128
	})
}

// noise addiert Gauss-Rauschen mit Sigma bis 25
func (a *Augmentor) noise(img *vision.ImageInput, intensity float64) *vision.ImageInput {
	sigma := intensity * 25
	return mapPixels(img, func(v float64) float64 {
		return v + a.rng.NormFloat64()*sigma
	})
}

// blur glaettet mit einem Gauss-Kernel der Groesse 1 bis 5
func (a *Augmentor) blur(img *vision.ImageInput, intensity float64) *vision.ImageInput {
	kSize := int(1 + intensity*4)
	if kSize%2 == 0 {
		kSize++
	}
	if kSize < 3 {
		return vision.FromRGBA(cloneRGBA(img.Image), img.Format)
	}

	r, g, b := rgbaToPlanes(img.Image)
	r = vision.GaussianBlur(r, img.Width, img.Height, kSize)
	g = vision.GaussianBlur(g, img.Width, img.Height, kSize)
	b = vision.GaussianBlur(b, img.Width, img.Height, kSize)

	return vision.FromRGBA(planesToRGBA(r, g, b, img.Width, img.Height), img.Format)
}

// zoom skaliert um Faktor 0.8 bis 1.2
// Beim Hineinzoomen wird zentriert beschnitten, beim Herauszoomen
// mit Schwarz aufgefuellt
func (a *Augmentor) zoom(img *vision.ImageInput, intensity float64) *vision.ImageInput {
	factor := 0.8 + intensity*0.4

	newW := int(float64(img.Width) * factor)
	newH := int(float64(img.Height) * factor)
	if newW < 1 || newH < 1 {
		return img
	}

	resized, err := vision.ResizeImage(img, newW, newH)
	if err != nil {
		return img
	}

	if factor > 1 {
		startX := (newW - img.Width) / 2
		startY := (newH - img.Height) / 2
		cropped, err := vision.Crop(resized, image.Rect(startX, startY, startX+img.Width, startY+img.Height))
		if err != nil {
			return img
		}
		return cropped
	}

	dst := image.NewRGBA(image.Rect(0, 0, img.Width, img.Height))
	startX := (img.Width - newW) / 2
	startY := (img.Height - newH) / 2
	for y := 0; y < newH; y++ {
		for x := 0; x < newW; x++ {
			dst.SetRGBA(startX+x, startY+y, resized.Image.RGBAAt(x, y))
		}
	}

	return vision.FromRGBA(dst, img.Format)
}

// translate verschiebt um bis zu 20% der kleineren Bildkante
func (a *Augmentor) translate(img *vision.ImageInput, intensity float64) *vision.ImageInput {
	minSide := img.Width
	if img.Height < minSide {
		minSide = img.Height
	}

	maxShift := int(intensity * float64(minSide) * 0.2)
	if maxShift == 0 {
		return vision.FromRGBA(cloneRGBA(img.Image), img.Format)
	}

	tx := a.rng.Intn(2*maxShift+1) - maxShift
	ty := a.rng.Intn(2*maxShift+1) - maxShift

	dst := image.NewRGBA(image.Rect(0, 0, img.Width, img.Height))
	for y := 0; y < img.Height; y++ {
		for x := 0; x < img.Width; x++ {
			sx := reflect101(x-tx, img.Width)
			sy := reflect101(y-ty, img.Height)
			dst.SetRGBA(x, y, img.Image.RGBAAt(sx, sy))
		}
	}

	return vision.FromRGBA(dst, img.Format)
}

// elastic verformt das Bild mit geglaetteten Zufalls-Verschiebungsfeldern
func (a *Augmentor) elastic(img *vision.ImageInput, intensity float64) *vision.ImageInput {
	alpha := intensity * 100

	n := img.Width * img.Height
	dx := make([]float64, n)
	dy := make([]float64, n)
	for i := 0; i < n; i++ {
		dx[i] = a.rng.NormFloat64() * alpha
		dy[i] = a.rng.NormFloat64() * alpha
	}

	dx = vision.GaussianBlur(dx, img.Width, img.Height, 11)
	dy = vision.GaussianBlur(dy, img.Width, img.Height, 11)

	dst := image.NewRGBA(image.Rect(0, 0, img.Width, img.Height))
	for y := 0; y < img.Height; y++ {
		for x := 0; x < img.Width; x++ {
			idx := y*img.Width + x
			sx := float64(x) + dx[idx]
			sy := float64(y) + dy[idx]
			dst.SetRGBA(x, y, bilinearSample(img.Image, sx, sy))
		}
	}

	return vision.FromRGBA(dst, img.Format)
}

// mapPixels wendet eine Funktion auf alle RGB-Kanaele an (geclampt)
func mapPixels(img *vision.ImageInput, fn func(float64) float64) *vision.ImageInput {
	dst := image.NewRGBA(image.Rect(0, 0, img.Width, img.Height))
	for y := 0; y < img.Height; y++ {
		for x := 0; x < img.Width; x++ {
			p := img.Image.RGBAAt(x, y)
			dst.SetRGBA(x, y, color.RGBA{
				R: clampByte(fn(float64(p.R))),
				G: clampByte(fn(float64(p.G))),
				B: clampByte(fn(float64(p.B))),
				A: p.A,
			})
		}
	}
	return vision.FromRGBA(dst, img.Format)
}

func clampByte(v float64) uint8 {
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return uint8(v + 0.5)
}

// reflect101 spiegelt einen Index ohne Randwiederholung in [0, n)
func reflect101(i, n int) int {
	if n == 1 {
		return 0
	}
	for i < 0 || i >= n {
		if i < 0 {
			i = -i
		}
		if i >= n {
			i = 2*n - 2 - i
		}
	}
	return i
}

// bilinearSample liest einen Subpixel-Wert mit gespiegeltem Rand
func bilinearSample(img *image.RGBA, x, y float64) color.RGBA {
	x0 := int(math.Floor(x))
	y0 := int(math.Floor(y))
	fx := x - float64(x0)
	fy := y - float64(y0)

	w := img.Bounds().Dx()
	h := img.Bounds().Dy()

	p00 := img.RGBAAt(reflect101(x0, w), reflect101(y0, h))
	p10 := img.RGBAAt(reflect101(x0+1, w), reflect101(y0, h))
	p01 := img.RGBAAt(reflect101(x0, w), reflect101(y0+1, h))
	p11 := img.RGBAAt(reflect101(x0+1, w), reflect101(y0+1, h))

	lerp2 := func(a, b, c, d uint8) uint8 {
		top := float64(a)*(1-fx) + float64(b)*fx
		bottom := float64(c)*(1-fx) + float64(d)*fx
		return uint8(top*(1-fy) + bottom*fy + 0.5)
	}

	return color.RGBA{
		R: lerp2(p00.R, p10.R, p01.R, p11.R),
		G: lerp2(p00.G, p10.G, p01.G, p11.G),
		B: lerp2(p00.B, p10.B, p01.B, p11.B),
		A: 255,
	}
}

// rgbaToPlanes trennt ein RGBA-Bild in drei float64-Ebenen
func rgbaToPlanes(img *image.RGBA) (r, g, b []float64) {
	bounds := img.Bounds()
	w := bounds.Dx()
	h := bounds.Dy()

	r = make([]float64, w*h)
	g = make([]float64, w*h)
	b = make([]float64, w*h)

	idx := 0
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			p := img.RGBAAt(x, y)
			r[idx] = float64(p.R)
			g[idx] = float64(p.G)
			b[idx] = float64(p.B)
			idx++
		}
	}
	return r, g, b
}

// planesToRGBA setzt drei float64-Ebenen zu einem RGBA-Bild zusammen
func planesToRGBA(r, g, b []float64, w, h int) *image.RGBA {
	dst := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			idx := y*w + x
			dst.SetRGBA(x, y, color.RGBA{
				R: clampByte(r[idx]),
				G: clampByte(g[idx]),
				B: clampByte(b[idx]),
				A: 255,
			})
		}
	}
	return dst
}

// cloneRGBA kopiert ein RGBA-Bild
func cloneRGBA(img *image.RGBA) *image.RGBA {
	dst := image.NewRGBA(img.Bounds())
	copy(dst.Pix, img.Pix)
	return dst
}
