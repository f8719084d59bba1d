// MODUL: colormap
// ZWECK: Einfaerbung von Aufmerksamkeitskarten und Overlay-Erzeugung
// INPUT: Map und optional ein Originalbild
// OUTPUT: PNG als Base64-Data-URL oder ueberblendetes RGBA-Bild
// NEBENEFFEKTE: keine
// ABHAENGIGKEITEN: image/png, encoding/base64, vision
// HINWEISE: Jet-Farbpalette (blau -> cyan -> gelb -> rot) wie in
// gaengigen Visualisierungsbibliotheken

package heatmap

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"image"
	"image/color"
	"image/png"
)

// jetColor bildet einen Wert aus [0,1] auf die Jet-Palette ab
func jetColor(v float64) color.RGBA {
	if v < 0 {
		v = 0
	} else if v > 1 {
		v = 1
	}

	channel := func(x float64) uint8 {
		x = 1.5 - 4*absF(x)
		if x < 0 {
			x = 0
		} else if x > 1 {
			x = 1
		}
		return uint8(x*255 + 0.5)
	}

	return color.RGBA{
		R: channel(v - 0.75),
		G: channel(v - 0.5),
		B: channel(v - 0.25),
		A: 255,
	}
}

func absF(x float64) float64 {
	if x < 0 {
		return -x
	}
	return x
}

// Render faerbt die Karte mit der Jet-Palette ein
func Render(m Map) *image.RGBA {
	rgba := image.NewRGBA(image.Rect(0, 0, m.Width, m.Height))
	for y := 0; y < m.Height; y++ {
		for x := 0; x < m.Width; x++ {
			rgba.SetRGBA(x, y, jetColor(m.Data[y*m.Width+x]))
		}
	}
	return rgba
}

// DataURL kodiert die eingefaerbte Karte als PNG-Data-URL
func DataURL(m Map) (string, error) {
	if m.Width == 0 || m.Height == 0 {
		return "", fmt.Errorf("empty attention map")
	}

	var buf bytes.Buffer
	if err := png.Encode(&buf, Render(m)); err != nil {
		return "", fmt.Errorf("encoding heatmap: %w", err)
	}

	return "data:image/png;base64," + base64.StdEncoding.EncodeToString(buf.Bytes()), nil
}

// Overlay blendet die eingefaerbte Karte ueber das Originalbild
// alpha gewichtet die Karte, 1-alpha das Original
func Overlay(img *image.RGBA, m Map, alpha float64) *image.RGBA {
	if alpha < 0 {
		alpha = 0
	} else if alpha > 1 {
		alpha = 1
	}
	if len(m.Data) == 0 {
		return img
	}

	bounds := img.Bounds()
	out := image.NewRGBA(bounds)

	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			src := img.RGBAAt(x, y)

			// Karte bei Bedarf per Nearest-Neighbor auf die Bildgroesse skalieren
			mx := (x - bounds.Min.X) * m.Width / bounds.Dx()
			my := (y - bounds.Min.Y) * m.Height / bounds.Dy()
			heat := jetColor(m.Data[my*m.Width+mx])

			out.SetRGBA(x, y, color.RGBA{
				R: blend(src.R, heat.R, alpha),
				G: blend(src.G, heat.G, alpha),
				B: blend(src.B, heat.B, alpha),
				A: 255,
			})
		}
	}

	return out
}

func blend(a, b uint8, alpha float64) uint8 {
	return uint8(float64(a)*(1-alpha) + float64(b)*alpha + 0.5)
}
