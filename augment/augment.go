// MODUL: augment
// ZWECK: Daten-Augmentierung fuer Roentgenbilder
// INPUT: ImageInput, Augmentierungstyp und Intensitaet [0,1]
// OUTPUT: Augmentiertes ImageInput
// NEBENEFFEKTE: RNG-Zustand des Augmentors
// ABHAENGIGKEITEN: vision, math/rand
// HINWEISE: Unbekannte Typen geben das Eingabebild unveraendert zurueck
// und werden nur geloggt, damit Batch-Pipelines nicht abbrechen

package augment

import (
	"log/slog"
	"math/rand"

	"github.com/thorascan/thorascan/vision"
)

// DefaultIntensity wird verwendet wenn der Aufrufer keine Intensitaet angibt
const DefaultIntensity = 0.5

// Typen in stabiler Reihenfolge, u.a. fuer die Vorschau
var augmentationTypes = []string{
	"rotation",
	"flip",
	"brightness",
	"contrast",
	"noise",
	"blur",
	"zoom",
	"translation",
	"elastic",
}

// Augmentor wendet Transformationen auf Bilder an
// Der RNG steuert flip-Richtung, Translation, Rauschen und Elastik
type Augmentor struct {
	rng *rand.Rand
}

// NewAugmentor erstellt einen Augmentor mit festem Seed
func NewAugmentor(seed int64) *Augmentor {
	return &Augmentor{rng: rand.New(rand.NewSource(seed))}
}

// Types gibt alle unterstuetzten Augmentierungstypen zurueck
func Types() []string {
	out := make([]string, len(augmentationTypes))
	copy(out, augmentationTypes)
	return out
}

// Valid prueft ob ein Augmentierungstyp unterstuetzt wird
func Valid(augType string) bool {
	for _, t := range augmentationTypes {
		if t == augType {
			return true
		}
	}
	return false
}

// Apply wendet eine einzelne Augmentierung an
// intensity wird auf [0,1] begrenzt
func (a *Augmentor) Apply(img *vision.ImageInput, augType string, intensity float64) *vision.ImageInput {
	if intensity < 0 {
		intensity = 0
	} else if intensity > 1 {
		intensity = 1
	}

	switch augType {
	case "rotation":
		return a.rotate(img, intensity)
	case "flip":
		return a.flip(img)
	case "brightness":
		return a.brightness(img, intensity)
	case "contrast":
		return a.contrast(img, intensity)
	case "noise":
		return a.noise(img, intensity)
	case "blur":
		return a.blur(img, intensity)
	case "zoom":
		return a.zoom(img, intensity)
	case "translation":
		return a.translate(img, intensity)
	case "elastic":
		return a.elastic(img, intensity)
	default:
		slog.Warn("unknown augmentation type", "type", augType)
		return img
	}
}

// ApplyRandom wendet n zufaellig gewaehlte Augmentierungen nacheinander an
// Die Intensitaet wird je Schritt aus [0.3, 0.7] gezogen
func (a *Augmentor) ApplyRandom(img *vision.ImageInput, n int) *vision.ImageInput {
	result := img
	for i := 0; i < n; i++ {
		augType := augmentationTypes[a.rng.Intn(len(augmentationTypes))]
		intensity := 0.3 + a.rng.Float64()*0.4
		result = a.Apply(result, augType, intensity)
	}
	return result
}

// Step ist ein Schritt einer Augmentierungs-Pipeline
type Step struct {
	Type      string
	Intensity float64
}

// Pipeline wendet mehrere Schritte nacheinander an
func (a *Augmentor) Pipeline(img *vision.ImageInput, steps []Step) *vision.ImageInput {
	result := img
	for _, step := range steps {
		result = a.Apply(result, step.Type, step.Intensity)
	}
	return result
}

// Preview ist eine Augmentierungs-Vorschau mit Typbezeichnung
type Preview struct {
	Type  string
	Image *vision.ImageInput
}

// Previews erzeugt Vorschauen der ersten n Augmentierungstypen
// mit Standard-Intensitaet
func (a *Augmentor) Previews(img *vision.ImageInput, n int) []Preview {
	if n > len(augmentationTypes) {
		n = len(augmentationTypes)
	}

	previews := make([]Preview, 0, n)
	for i := 0; i < n; i++ {
		augType := augmentationTypes[i]
		previews = append(previews, Preview{
			Type:  augType,
			Image: a.Apply(img, augType, DefaultIntensity),
		})
	}
	return previews
}
