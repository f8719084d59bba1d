// MODUL: predict
// ZWECK: Simulierte Klassifikation von Roentgenbildern
// INPUT: Vorverarbeiteter Tensor und Modellname
// OUTPUT: Prediction mit Konfidenz und Klassenwahrscheinlichkeiten
// NEBENEFFEKTE: RNG-Zustand des Managers
// ABHAENGIGKEITEN: vision, gonum.org/v1/gonum/stat (extern)
// HINWEISE: Die Konfidenz ergibt sich aus Modell-Bias plus
// Bildstatistik-Heuristik plus Gauss-Rauschen, geclampt auf [0.1, 0.9]

package model

import (
	"fmt"
	"math"
	"math/rand"

	"gonum.org/v1/gonum/stat"

	"github.com/thorascan/thorascan/vision"
)

// DefaultModel wird verwendet wenn der Aufrufer kein Modell angibt
const DefaultModel = "efficientnet"

// Modellspezifische Grundkonfidenz der Simulation
var modelBiases = map[string]float64{
	"vgg16":        0.3,
	"resnet50":     0.5,
	"mobilenetv2":  0.4,
	"efficientnet": 0.6,
}

// Prediction ist das Ergebnis einer Klassifikation
type Prediction struct {
	Prediction     string             `json:"prediction"`
	Confidence     float64            `json:"confidence"`
	Probabilities  map[string]float64 `json:"probabilities"`
	ProcessingTime float64            `json:"processing_time"`
	ModelUsed      string             `json:"model_used"`
	IsMock         bool               `json:"is_mock"`
}

// ComparisonEntry ist ein Eintrag des Modellvergleichs
// Bei Fehlern ist nur Error gesetzt
type ComparisonEntry struct {
	*Prediction
	Error string `json:"error,omitempty"`
}

// Manager fuehrt simulierte Vorhersagen aus
type Manager struct {
	rng *rand.Rand
}

// NewManager erstellt einen Manager mit festem Seed
func NewManager(seed int64) *Manager {
	return &Manager{rng: rand.New(rand.NewSource(seed))}
}

// Predict klassifiziert einen Tensor mit dem angegebenen Modell
func (m *Manager) Predict(tensor *vision.Tensor, modelName string) (*Prediction, error) {
	if !Known(modelName) {
		return nil, fmt.Errorf("model %s not available", modelName)
	}

	base := modelBiases[modelName]
	confidence := base + statAdjustment(tensor)

	// Simuliertes Modellrauschen
	confidence += m.rng.NormFloat64() * 0.1
	confidence = clamp(confidence, 0.1, 0.9)

	predicted := "Normal"
	if confidence > 0.5 {
		predicted = "Pneumonia"
	}

	return &Prediction{
		Prediction: predicted,
		Confidence: round2(confidence * 100),
		Probabilities: map[string]float64{
			"Normal":    round2((1 - confidence) * 100),
			"Pneumonia": round2(confidence * 100),
		},
		ProcessingTime: round3(0.1 + m.rng.Float64()*0.4),
		ModelUsed:      modelName,
		IsMock:         true,
	}, nil
}

// Compare fuehrt alle registrierten Modelle auf demselben Tensor aus
// Fehler einzelner Modelle brechen den Vergleich nicht ab
func (m *Manager) Compare(tensor *vision.Tensor) map[string]ComparisonEntry {
	results := make(map[string]ComparisonEntry, len(modelOrder))
	for _, name := range modelOrder {
		pred, err := m.Predict(tensor, name)
		if err != nil {
			results[name] = ComparisonEntry{Error: err.Error()}
			continue
		}
		results[name] = ComparisonEntry{Prediction: pred}
	}
	return results
}

// statAdjustment leitet eine Konfidenz-Korrektur aus der Bildstatistik ab
// Dunkle Bilder erhoehen, kontrastreiche senken die Konfidenz
func statAdjustment(tensor *vision.Tensor) float64 {
	if tensor == nil || len(tensor.Data) == 0 {
		return 0
	}

	values := make([]float64, len(tensor.Data))
	for i, v := range tensor.Data {
		values[i] = float64(v)
	}

	mean := stat.Mean(values, nil)
	std := math.Sqrt(stat.PopVariance(values, nil))

	switch {
	case mean < 0.3:
		return 0.2
	case std > 0.3:
		return -0.1
	default:
		return 0
	}
}

func clamp(v, lo, hi float64) float64 {
	return math.Min(math.Max(v, lo), hi)
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

func round3(v float64) float64 {
	return math.Round(v*1000) / 1000
}
