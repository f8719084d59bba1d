// MODUL: metrics
// ZWECK: Modell-Metriken und Verbesserungsberechnung fuer die Optimierung
// INPUT: ModelInfo mit optionalen Feldern
// OUTPUT: ModelMetrics mit Defaults, Improvements aus Metrik-Paaren
// NEBENEFFEKTE: keine
// ABHAENGIGKEITEN: math (nur Standardbibliothek)
// HINWEISE: Prozentwerte auf 2 Stellen gerundet, accuracy_change auf 4

package optimize

import "math"

// Default-Metriken fuer fehlende Felder in ModelInfo
const (
	DefaultSizeMB          = 100.0
	DefaultInferenceTimeMS = 500.0
	DefaultAccuracy        = 0.92
	DefaultMemoryUsageMB   = 200.0
	DefaultParameters      = 1_000_000
)

// ModelInfo beschreibt ein Modell aus Sicht des Aufrufers
// Nil-Felder werden bei der Extraktion durch Defaults ersetzt
type ModelInfo struct {
	Name            string   `json:"name,omitempty"`
	Description     string   `json:"description,omitempty"`
	SizeMB          *float64 `json:"size_mb,omitempty"`
	InferenceTimeMS *float64 `json:"inference_time_ms,omitempty"`
	Accuracy        *float64 `json:"accuracy,omitempty"`
	MemoryUsageMB   *float64 `json:"memory_usage_mb,omitempty"`
	Parameters      *int64   `json:"parameters,omitempty"`
}

// ModelMetrics ist der unveraenderliche Metrik-Schnappschuss eines Modells
type ModelMetrics struct {
	SizeMB          float64 `json:"size_mb"`
	InferenceTimeMS float64 `json:"inference_time_ms"`
	Accuracy        float64 `json:"accuracy"`
	MemoryUsageMB   float64 `json:"memory_usage_mb"`
	Parameters      int64   `json:"parameters"`
}

// Improvements enthaelt die Verbesserung eines Metrik-Paares
// Prozent-Felder fehlen, wenn der Originalwert nicht positiv war
type Improvements struct {
	SizeMBImprovementPercent          *float64 `json:"size_mb_improvement_percent,omitempty"`
	InferenceTimeMSImprovementPercent *float64 `json:"inference_time_ms_improvement_percent,omitempty"`
	MemoryUsageMBImprovementPercent   *float64 `json:"memory_usage_mb_improvement_percent,omitempty"`
	AccuracyChange                    float64  `json:"accuracy_change"`
}

// ExtractMetrics bildet ModelInfo auf ModelMetrics ab
// Fehlende Felder werden feldweise durch Defaults ersetzt, schlaegt nie fehl
func ExtractMetrics(info ModelInfo) ModelMetrics {
	m := ModelMetrics{
		SizeMB:          DefaultSizeMB,
		InferenceTimeMS: DefaultInferenceTimeMS,
		Accuracy:        DefaultAccuracy,
		MemoryUsageMB:   DefaultMemoryUsageMB,
		Parameters:      DefaultParameters,
	}

	if info.SizeMB != nil {
		m.SizeMB = *info.SizeMB
	}
	if info.InferenceTimeMS != nil {
		m.InferenceTimeMS = *info.InferenceTimeMS
	}
	if info.Accuracy != nil {
		m.Accuracy = *info.Accuracy
	}
	if info.MemoryUsageMB != nil {
		m.MemoryUsageMB = *info.MemoryUsageMB
	}
	if info.Parameters != nil {
		m.Parameters = *info.Parameters
	}

	return m
}

// computeImprovements berechnet die Verbesserung von original zu optimized
// Prozentwerte nur bei positivem Originalwert, sonst bleibt das Feld leer
func computeImprovements(original, optimized ModelMetrics) Improvements {
	imp := Improvements{
		AccuracyChange: roundTo(optimized.Accuracy-original.Accuracy, 4),
	}

	if original.SizeMB > 0 {
		imp.SizeMBImprovementPercent = ptr(roundTo((original.SizeMB-optimized.SizeMB)/original.SizeMB*100, 2))
	}
	if original.InferenceTimeMS > 0 {
		imp.InferenceTimeMSImprovementPercent = ptr(roundTo((original.InferenceTimeMS-optimized.InferenceTimeMS)/original.InferenceTimeMS*100, 2))
	}
	if original.MemoryUsageMB > 0 {
		imp.MemoryUsageMBImprovementPercent = ptr(roundTo((original.MemoryUsageMB-optimized.MemoryUsageMB)/original.MemoryUsageMB*100, 2))
	}

	return imp
}

// roundTo rundet auf n Nachkommastellen
func roundTo(v float64, n int) float64 {
	scale := math.Pow(10, float64(n))
	return math.Round(v*scale) / scale
}

// ptr ist ein Helfer fuer optionale float64-Felder
func ptr(v float64) *float64 {
	return &v
}
