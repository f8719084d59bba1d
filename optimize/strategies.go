// MODUL: strategies
// ZWECK: Simulierte Transformationen der vier Optimierungsstrategien
// INPUT: Original-ModelMetrics und Zielgroesse in MB
// OUTPUT: OptimizedMetrics mit strategie-spezifischem Zusatzfeld
// NEBENEFFEKTE: keine
// ABHAENGIGKEITEN: math (nur Standardbibliothek)
// HINWEISE: Ratios werden nicht bei 0 gekappt; ist die Zielgroesse
// groesser als das Original, verschlechtern sich die Metriken bewusst

package optimize

import "math"

// Strategy bezeichnet eine der vier Optimierungsstrategien
type Strategy string

const (
	Pruning      Strategy = "pruning"
	Quantization Strategy = "quantization"
	Distillation Strategy = "distillation"
	GraphOpt     Strategy = "optimization"
)

// strategyOrder ist die Auswertungs- und Tie-Break-Reihenfolge
var strategyOrder = []Strategy{Pruning, Quantization, Distillation, GraphOpt}

// Strategies gibt alle Strategien in Auswertungsreihenfolge zurueck
func Strategies() []Strategy {
	return append([]Strategy(nil), strategyOrder...)
}

// Valid prueft ob die Strategie bekannt ist
func (s Strategy) Valid() bool {
	switch s {
	case Pruning, Quantization, Distillation, GraphOpt:
		return true
	}
	return false
}

// OptimizedMetrics sind ModelMetrics plus strategie-spezifischem Feld
type OptimizedMetrics struct {
	ModelMetrics
	PruningRatio        *float64 `json:"pruning_ratio,omitempty"`
	QuantizationLevel   string   `json:"quantization_level,omitempty"`
	DistillationRatio   *float64 `json:"distillation_ratio,omitempty"`
	OptimizationApplied *bool    `json:"optimization_applied,omitempty"`
}

// applyPruning simuliert strukturiertes Pruning
// Groesse, Speicher und Parameter schrumpfen mit der Pruning-Ratio,
// Laufzeit mit 30% und Genauigkeit mit 5% der Ratio
func applyPruning(original ModelMetrics, targetSizeMB float64) OptimizedMetrics {
	if original.SizeMB == 0 {
		// Vorbedingung verletzt, unveraendert zurueckgeben
		return OptimizedMetrics{ModelMetrics: original}
	}

	ratio := math.Min(0.7, 1-targetSizeMB/original.SizeMB)

	return OptimizedMetrics{
		ModelMetrics: ModelMetrics{
			SizeMB:          original.SizeMB * (1 - ratio),
			InferenceTimeMS: original.InferenceTimeMS * (1 - ratio*0.3),
			Accuracy:        original.Accuracy * (1 - ratio*0.05),
			MemoryUsageMB:   original.MemoryUsageMB * (1 - ratio),
			Parameters:      int64(float64(original.Parameters) * (1 - ratio)),
		},
		PruningRatio: ptr(ratio),
	}
}

// Quantisierungs-Stufen: Schwelle relativ zur Originalgroesse,
// Reduktion, Beschleunigung und additiver Genauigkeitsverlust
var quantizationTiers = []struct {
	threshold     float64 // target < threshold * original.SizeMB
	level         string
	sizeReduction float64
	speedup       float64
	accuracyDrop  float64
}{
	{0.25, "int8", 0.75, 0.40, 0.02},
	{0.50, "int16", 0.50, 0.20, 0.01},
}

// applyQuantization simuliert Quantisierung in drei festen Stufen
// Parameterzahl bleibt unveraendert, Genauigkeitsverlust ist additiv
func applyQuantization(original ModelMetrics, targetSizeMB float64) OptimizedMetrics {
	level := "float16"
	sizeReduction := 0.25
	speedup := 0.10
	accuracyDrop := 0.005

	for _, tier := range quantizationTiers {
		if targetSizeMB < original.SizeMB*tier.threshold {
			level = tier.level
			sizeReduction = tier.sizeReduction
			speedup = tier.speedup
			accuracyDrop = tier.accuracyDrop
			break
		}
	}

	return OptimizedMetrics{
		ModelMetrics: ModelMetrics{
			SizeMB:          original.SizeMB * (1 - sizeReduction),
			InferenceTimeMS: original.InferenceTimeMS * (1 - speedup),
			Accuracy:        original.Accuracy - accuracyDrop,
			MemoryUsageMB:   original.MemoryUsageMB * (1 - sizeReduction),
			Parameters:      original.Parameters,
		},
		QuantizationLevel: level,
	}
}

// applyDistillation simuliert Knowledge Distillation
// Das Student-Modell behaelt 98% der Genauigkeit unabhaengig von der Ratio
func applyDistillation(original ModelMetrics, targetSizeMB float64) OptimizedMetrics {
	if original.SizeMB == 0 {
		// Vorbedingung verletzt, unveraendert zurueckgeben
		return OptimizedMetrics{ModelMetrics: original}
	}

	reduction := math.Min(0.6, 1-targetSizeMB/original.SizeMB)

	return OptimizedMetrics{
		ModelMetrics: ModelMetrics{
			SizeMB:          original.SizeMB * (1 - reduction),
			InferenceTimeMS: original.InferenceTimeMS * (1 - reduction*0.5),
			Accuracy:        original.Accuracy * 0.98,
			MemoryUsageMB:   original.MemoryUsageMB * (1 - reduction),
			Parameters:      int64(float64(original.Parameters) * (1 - reduction)),
		},
		DistillationRatio: ptr(reduction),
	}
}

// graphOptimizationFactor ist die feste Reduktion der Graph-Optimierung
const graphOptimizationFactor = 0.15

// applyGraphOptimization simuliert Graph-Optimierung
// Fester Faktor auf Groesse, Laufzeit und Speicher, Genauigkeit unveraendert
func applyGraphOptimization(original ModelMetrics, _ float64) OptimizedMetrics {
	applied := true
	return OptimizedMetrics{
		ModelMetrics: ModelMetrics{
			SizeMB:          original.SizeMB * (1 - graphOptimizationFactor),
			InferenceTimeMS: original.InferenceTimeMS * (1 - graphOptimizationFactor),
			Accuracy:        original.Accuracy,
			MemoryUsageMB:   original.MemoryUsageMB * (1 - graphOptimizationFactor),
			Parameters:      original.Parameters,
		},
		OptimizationApplied: &applied,
	}
}

// applyStrategy fuehrt die benannte Transformation aus
func applyStrategy(s Strategy, original ModelMetrics, targetSizeMB float64) OptimizedMetrics {
	switch s {
	case Pruning:
		return applyPruning(original, targetSizeMB)
	case Quantization:
		return applyQuantization(original, targetSizeMB)
	case Distillation:
		return applyDistillation(original, targetSizeMB)
	default:
		return applyGraphOptimization(original, targetSizeMB)
	}
}
