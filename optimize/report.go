// MODUL: report
// ZWECK: Zusammenbau des vollstaendigen Optimierungsberichts
// INPUT: ModelInfo und Zielgroesse in MB
// OUTPUT: OptimizationReport mit Vergleich, Summary und Next-Steps
// NEBENEFFEKTE: keine
// ABHAENGIGKEITEN: math (nur Standardbibliothek)
// HINWEISE: Erreichbare Groesse folgt einer vierstufigen Treppenfunktion
// relativ zur Originalgroesse (0.8x, 0.5x, 0.25x, max(target, 0.1x))

package optimize

import "math"

// Summary fasst den Bericht fuer den Aufrufer zusammen
type Summary struct {
	TotalStrategiesTested int      `json:"total_strategies_tested"`
	BestStrategy          Strategy `json:"best_strategy"`
	AchievableSizeMB      float64  `json:"achievable_size_mb"`
	Recommendation        string   `json:"recommendation"`
}

// OptimizationReport ist das Top-Level-Objekt fuer den Aufrufer
// Reine Lese-Sicht, nach dem Zusammenbau nicht mehr veraendert
type OptimizationReport struct {
	ModelInfo              ModelInfo        `json:"model_info"`
	TargetSizeMB           float64          `json:"target_size_mb"`
	OptimizationComparison ComparisonReport `json:"optimization_comparison"`
	Summary                Summary          `json:"summary"`
	NextSteps              []string         `json:"next_steps"`
}

// nextSteps enthaelt die statischen Umsetzungs-Checklisten je Strategie
var nextSteps = map[Strategy][]string{
	Pruning: {
		"Implement structured pruning to remove entire filters",
		"Fine-tune the pruned model to recover accuracy",
		"Validate performance on test dataset",
		"Deploy and monitor model performance",
	},
	Quantization: {
		"Convert model to quantized format (int8/int16)",
		"Validate accuracy on test dataset",
		"Optimize quantization parameters",
		"Deploy quantized model and monitor performance",
	},
	Distillation: {
		"Train student model using teacher model outputs",
		"Validate student model performance",
		"Compare student vs teacher model metrics",
		"Deploy student model and monitor performance",
	},
	GraphOpt: {
		"Apply graph optimization techniques",
		"Optimize model execution graph",
		"Validate optimized model performance",
		"Deploy optimized model and monitor performance",
	},
}

var fallbackNextSteps = []string{
	"Implement optimization strategy",
	"Validate performance",
	"Deploy model",
}

// Report erstellt den vollstaendigen Optimierungsbericht
// Identische Eingaben liefern bitidentische Berichte
func Report(info ModelInfo, targetSizeMB float64) OptimizationReport {
	comparison := CompareStrategies(info, targetSizeMB)

	steps, ok := nextSteps[comparison.BestStrategy]
	if !ok {
		steps = fallbackNextSteps
	}

	return OptimizationReport{
		ModelInfo:              info,
		TargetSizeMB:           targetSizeMB,
		OptimizationComparison: comparison,
		Summary: Summary{
			TotalStrategiesTested: len(comparison.Strategies),
			BestStrategy:          comparison.BestStrategy,
			AchievableSizeMB:      achievableSize(info, targetSizeMB),
			Recommendation:        comparison.Recommendation,
		},
		NextSteps: append([]string(nil), steps...),
	}
}

// achievableSize schaetzt die erreichbare Modellgroesse nach Optimierung
func achievableSize(info ModelInfo, targetSizeMB float64) float64 {
	originalSize := DefaultSizeMB
	if info.SizeMB != nil {
		originalSize = *info.SizeMB
	}

	switch {
	case targetSizeMB >= originalSize*0.8:
		return originalSize * 0.8
	case targetSizeMB >= originalSize*0.5:
		return originalSize * 0.5
	case targetSizeMB >= originalSize*0.25:
		return originalSize * 0.25
	default:
		return math.Max(targetSizeMB, originalSize*0.1)
	}
}
