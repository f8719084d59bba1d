// MODUL: attention
// ZWECK: Simulierte Grad-CAM Aufmerksamkeitskarten pro Modellarchitektur
// INPUT: ImageInput und Modellname
// OUTPUT: Normalisierte Aufmerksamkeitskarte im Bereich [0,1]
// NEBENEFFEKTE: keine (RNG-Zustand des Generators bei unbekannten Modellen)
// ABHAENGIGKEITEN: vision, math/rand
// HINWEISE: Jede Architektur hat eine eigene Heuristik: VGG16 Kanten,
// ResNet50 Laplace-Kontrast, MobileNetV2 Sobel-Gradienten, EfficientNet
// mehrskalige Glaettung. Unbekannte Modelle erhalten eine zufaellige
// Karte mit verstaerktem Zentrum.

package heatmap

import (
	"math"
	"math/rand"

	"github.com/thorascan/thorascan/vision"
)

// Map ist eine Aufmerksamkeitskarte als float64-Ebene
type Map struct {
	Data   []float64
	Width  int
	Height int
}

// Generator erzeugt Aufmerksamkeitskarten
// Der RNG wird nur fuer unbekannte Modellnamen benoetigt
type Generator struct {
	rng *rand.Rand
}

// NewGenerator erstellt einen Generator mit festem Seed
func NewGenerator(seed int64) *Generator {
	return &Generator{rng: rand.New(rand.NewSource(seed))}
}

// Generate berechnet die Karte fuer ein Bild und normalisiert sie auf [0,1]
func (g *Generator) Generate(img *vision.ImageInput, modelName string) Map {
	gray := vision.ToGray(img)
	plane, w, h := vision.GrayToPlane(gray)
	if len(plane) == 0 {
		return Map{Data: nil, Width: 0, Height: 0}
	}

	var data []float64
	switch modelName {
	case "vgg16":
		data = edgeAttention(plane, w, h)
	case "resnet50":
		data = contrastAttention(plane, w, h)
	case "mobilenetv2":
		data = gradientAttention(plane, w, h)
	case "efficientnet":
		data = multiScaleAttention(plane, w, h)
	default:
		data = g.centerWeightedNoise(w, h)
	}

	m := Map{Data: data, Width: w, Height: h}
	m.normalize()
	return m
}

// edgeAttention hebt Kanten und Texturen hervor (VGG16)
func edgeAttention(plane []float64, w, h int) []float64 {
	edges := vision.SobelMagnitude(plane, w, h)
	// Schwache Gradienten unterdruecken, damit nur echte Kanten bleiben
	for i, v := range edges {
		if v < 50 {
			edges[i] = 0
		} else {
			edges[i] = 255
		}
	}
	return vision.GaussianBlur(edges, w, h, 15)
}

// contrastAttention hebt kontrastreiche Bereiche hervor (ResNet50)
func contrastAttention(plane []float64, w, h int) []float64 {
	lap := vision.Laplacian(plane, w, h)
	for i, v := range lap {
		lap[i] = math.Abs(v)
	}
	return vision.GaussianBlur(lap, w, h, 21)
}

// gradientAttention hebt Intensitaetsuebergaenge hervor (MobileNetV2)
func gradientAttention(plane []float64, w, h int) []float64 {
	return vision.GaussianBlur(vision.SobelMagnitude(plane, w, h), w, h, 17)
}

// multiScaleAttention mittelt Glaettungen mehrerer Skalen (EfficientNet)
func multiScaleAttention(plane []float64, w, h int) []float64 {
	fine := vision.GaussianBlur(plane, w, h, 5)
	mid := vision.GaussianBlur(plane, w, h, 15)
	coarse := vision.GaussianBlur(plane, w, h, 25)

	data := make([]float64, len(plane))
	for i := range data {
		data[i] = (fine[i] + mid[i] + coarse[i]) / 3
	}
	return data
}

// centerWeightedNoise erzeugt Rauschen mit verdoppeltem Zentrum
func (g *Generator) centerWeightedNoise(w, h int) []float64 {
	data := make([]float64, w*h)
	for i := range data {
		data[i] = g.rng.Float64()
	}

	cx, cy := w/2, h/2
	radius := min(w, h) / 3
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			dx, dy := x-cx, y-cy
			if dx*dx+dy*dy < radius*radius {
				data[y*w+x] *= 2
			}
		}
	}
	return data
}

// normalize skaliert die Karte auf [0,1]
// Konstante Karten werden auf Null gesetzt
func (m *Map) normalize() {
	if len(m.Data) == 0 {
		return
	}

	minV, maxV := m.Data[0], m.Data[0]
	for _, v := range m.Data[1:] {
		if v < minV {
			minV = v
		}
		if v > maxV {
			maxV = v
		}
	}

	if maxV == minV {
		for i := range m.Data {
			m.Data[i] = 0
		}
		return
	}

	span := maxV - minV
	for i, v := range m.Data {
		m.Data[i] = (v - minV) / span
	}
}

// Stats gibt Maximum, Mittelwert und Standardabweichung zurueck
func (m Map) Stats() (maxAttention, meanAttention, std float64) {
	if len(m.Data) == 0 {
		return 0, 0, 0
	}

	for _, v := range m.Data {
		if v > maxAttention {
			maxAttention = v
		}
		meanAttention += v
	}
	meanAttention /= float64(len(m.Data))

	for _, v := range m.Data {
		d := v - meanAttention
		std += d * d
	}
	std = math.Sqrt(std / float64(len(m.Data)))
	return maxAttention, meanAttention, std
}
