// MODUL: comparator
// ZWECK: Vergleich der vier Optimierungsstrategien und Bestenauswahl
// INPUT: ModelInfo und Zielgroesse in MB
// OUTPUT: StrategyResult pro Strategie, ComparisonReport mit Empfehlung
// NEBENEFFEKTE: keine
// ABHAENGIGKEITEN: fmt, math (nur Standardbibliothek)
// HINWEISE: Fehler einer Strategie brechen die anderen nicht ab,
// Score-Gewichte 0.4/0.3/0.3 fuer Groesse/Geschwindigkeit/Genauigkeit

package optimize

import (
	"fmt"
	"math"
)

// DefaultTargetSizeMB ist die Zielgroesse, wenn der Aufrufer keine nennt
const DefaultTargetSizeMB = 10.0

// StrategyResult ist das Ergebnis einer einzelnen Strategie
// Bei Fehlern ist nur Error und OptimizationApplied=false gesetzt
type StrategyResult struct {
	OptimizationType    Strategy          `json:"optimization_type"`
	OriginalMetrics     *ModelMetrics     `json:"original_metrics,omitempty"`
	OptimizedMetrics    *OptimizedMetrics `json:"optimized_metrics,omitempty"`
	Improvements        *Improvements     `json:"improvements,omitempty"`
	OptimizationApplied bool              `json:"optimization_applied"`
	Error               string            `json:"error,omitempty"`
}

// ComparisonReport fasst alle Strategie-Ergebnisse zusammen
type ComparisonReport struct {
	Strategies     map[Strategy]StrategyResult `json:"strategies"`
	BestStrategy   Strategy                    `json:"best_strategy"`
	Recommendation string                      `json:"recommendation"`
}

// Score-Gewichte fuer die Bestenauswahl
const (
	weightSize     = 0.4
	weightSpeed    = 0.3
	weightAccuracy = 0.3
)

// recommendations enthaelt die statischen Empfehlungstexte je Strategie
var recommendations = map[Strategy]string{
	Pruning:      "Pruning is recommended for significant size reduction with minimal accuracy loss. Best for edge deployment.",
	Quantization: "Quantization provides good balance of size reduction and speed improvement. Best for general deployment.",
	Distillation: "Knowledge distillation creates a smaller student model. Best when you have a large teacher model.",
	GraphOpt:     "Graph optimization provides moderate improvements without accuracy loss. Best for production systems.",
}

const fallbackRecommendation = "Consider the trade-offs between size, speed, and accuracy."

// OptimizeModel wendet eine einzelne Strategie auf das Modell an
// Unbekannte Strategien liefern ein Ergebnis mit Error-Feld, keinen Fehler
func OptimizeModel(info ModelInfo, optimizationType Strategy, targetSizeMB float64) StrategyResult {
	if !optimizationType.Valid() {
		return StrategyResult{
			OptimizationType:    optimizationType,
			Error:               fmt.Sprintf("Unknown optimization type: %s", optimizationType),
			OptimizationApplied: false,
		}
	}

	original := ExtractMetrics(info)
	optimized := applyStrategy(optimizationType, original, targetSizeMB)
	improvements := computeImprovements(original, optimized.ModelMetrics)

	return StrategyResult{
		OptimizationType:    optimizationType,
		OriginalMetrics:     &original,
		OptimizedMetrics:    &optimized,
		Improvements:        &improvements,
		OptimizationApplied: true,
	}
}

// CompareStrategies wertet alle vier Strategien unabhaengig aus
func CompareStrategies(info ModelInfo, targetSizeMB float64) ComparisonReport {
	results := make(map[Strategy]StrategyResult, len(strategyOrder))
	for _, s := range strategyOrder {
		results[s] = OptimizeModel(info, s, targetSizeMB)
	}

	best := findBestStrategy(results)

	recommendation, ok := recommendations[best]
	if !ok {
		recommendation = fallbackRecommendation
	}

	return ComparisonReport{
		Strategies:     results,
		BestStrategy:   best,
		Recommendation: recommendation,
	}
}

// findBestStrategy waehlt die Strategie mit dem hoechsten Composite-Score
// Auswertung in fester Reihenfolge, Gleichstand gewinnt der fruehere Eintrag
// Sind alle Ergebnisse fehlerhaft, faellt die Auswahl auf Quantisierung
func findBestStrategy(results map[Strategy]StrategyResult) Strategy {
	bestScore := -1.0
	best := Quantization

	for _, s := range strategyOrder {
		result, ok := results[s]
		if !ok || result.Error != "" {
			continue
		}

		if score := compositeScore(result); score > bestScore {
			bestScore = score
			best = s
		}
	}

	return best
}

// compositeScore gewichtet Groesse, Geschwindigkeit und Genauigkeit
func compositeScore(result StrategyResult) float64 {
	var sizeScore, speedScore, accuracyChange float64
	if imp := result.Improvements; imp != nil {
		if imp.SizeMBImprovementPercent != nil {
			sizeScore = *imp.SizeMBImprovementPercent / 100
		}
		if imp.InferenceTimeMSImprovementPercent != nil {
			speedScore = *imp.InferenceTimeMSImprovementPercent / 100
		}
		accuracyChange = imp.AccuracyChange
	}

	// Genauigkeitsverlust wird bestraft, Gewinn belohnt
	accuracyScore := math.Max(0, accuracyChange+1)

	return sizeScore*weightSize + speedScore*weightSpeed + accuracyScore*weightAccuracy
}
