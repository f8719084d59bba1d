// MODUL: strategies_test
// ZWECK: Tests fuer die vier Strategie-Transformationen
// INPUT: Synthetische ModelMetrics
// OUTPUT: Testresultate
// NEBENEFFEKTE: keine
// ABHAENGIGKEITEN: testing, math
// HINWEISE: Testet auch die dokumentierte Negativ-Ratio bei zu grosser
// Zielgroesse sowie die exakten Quantisierungs-Stufengrenzen

package optimize

import (
	"math"
	"testing"
)

// baseMetrics liefert ein typisches Metrik-Set fuer Transform-Tests
func baseMetrics() ModelMetrics {
	return ModelMetrics{
		SizeMB:          100,
		InferenceTimeMS: 500,
		Accuracy:        0.92,
		MemoryUsageMB:   200,
		Parameters:      1_000_000,
	}
}

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func TestApplyPruning(t *testing.T) {
	got := applyPruning(baseMetrics(), 50)

	// ratio = min(0.7, 1 - 50/100) = 0.5
	if got.PruningRatio == nil || !almostEqual(*got.PruningRatio, 0.5) {
		t.Fatalf("PruningRatio = %v, erwartet 0.5", got.PruningRatio)
	}

	if !almostEqual(got.SizeMB, 50) {
		t.Errorf("SizeMB = %v, erwartet 50", got.SizeMB)
	}
	if !almostEqual(got.InferenceTimeMS, 500*(1-0.5*0.3)) {
		t.Errorf("InferenceTimeMS = %v, erwartet %v", got.InferenceTimeMS, 500*(1-0.5*0.3))
	}
	if !almostEqual(got.Accuracy, 0.92*(1-0.5*0.05)) {
		t.Errorf("Accuracy = %v, erwartet %v", got.Accuracy, 0.92*(1-0.5*0.05))
	}
	if got.Parameters != 500_000 {
		t.Errorf("Parameters = %d, erwartet 500000", got.Parameters)
	}
}

func TestApplyPruningRatioCap(t *testing.T) {
	got := applyPruning(baseMetrics(), 5)

	// 1 - 5/100 = 0.95 wird auf 0.7 gekappt
	if got.PruningRatio == nil || !almostEqual(*got.PruningRatio, 0.7) {
		t.Fatalf("PruningRatio = %v, erwartet Kappung auf 0.7", got.PruningRatio)
	}
}

// Die Ratio wird bewusst nicht bei 0 gekappt: eine Zielgroesse ueber der
// Originalgroesse vergroessert die Metriken statt sie zu verbessern
func TestApplyPruningNegativeRatio(t *testing.T) {
	m := baseMetrics()
	m.SizeMB = 50

	got := applyPruning(m, 100)

	if got.PruningRatio == nil || !almostEqual(*got.PruningRatio, -1) {
		t.Fatalf("PruningRatio = %v, erwartet -1", got.PruningRatio)
	}
	if !almostEqual(got.SizeMB, 100) {
		t.Errorf("SizeMB = %v, erwartet 100 (Verschlechterung)", got.SizeMB)
	}
	if got.Accuracy <= m.Accuracy {
		t.Errorf("Accuracy = %v, erwartet Anstieg ueber %v", got.Accuracy, m.Accuracy)
	}
}

func TestApplyPruningZeroSizeDegrades(t *testing.T) {
	m := baseMetrics()
	m.SizeMB = 0

	got := applyPruning(m, 10)

	if got.ModelMetrics != m {
		t.Errorf("Metriken = %+v, erwartet unveraendertes Original", got.ModelMetrics)
	}
	if got.PruningRatio != nil {
		t.Errorf("PruningRatio = %v, erwartet kein Zusatzfeld", *got.PruningRatio)
	}
}

// Die Stufengrenzen sind strikt: target < 0.25*size bzw. < 0.5*size
func TestQuantizationTierBoundaries(t *testing.T) {
	cases := []struct {
		target float64
		level  string
	}{
		{24.9, "int8"},
		{25.0, "int16"},
		{49.9, "int16"},
		{50.0, "float16"},
	}

	for _, tc := range cases {
		got := applyQuantization(baseMetrics(), tc.target)
		if got.QuantizationLevel != tc.level {
			t.Errorf("target %.1f: Level = %q, erwartet %q", tc.target, got.QuantizationLevel, tc.level)
		}
	}
}

func TestApplyQuantizationInt8(t *testing.T) {
	got := applyQuantization(baseMetrics(), 10)

	if got.QuantizationLevel != "int8" {
		t.Fatalf("Level = %q, erwartet int8", got.QuantizationLevel)
	}
	if !almostEqual(got.SizeMB, 25) {
		t.Errorf("SizeMB = %v, erwartet 25", got.SizeMB)
	}
	if !almostEqual(got.InferenceTimeMS, 300) {
		t.Errorf("InferenceTimeMS = %v, erwartet 300", got.InferenceTimeMS)
	}
	// Genauigkeitsverlust ist additiv, nicht multiplikativ
	if !almostEqual(got.Accuracy, 0.90) {
		t.Errorf("Accuracy = %v, erwartet 0.90", got.Accuracy)
	}
	if got.Parameters != 1_000_000 {
		t.Errorf("Parameters = %d, erwartet unveraendert", got.Parameters)
	}
}

func TestApplyDistillation(t *testing.T) {
	got := applyDistillation(baseMetrics(), 30)

	// reduction = min(0.6, 1 - 30/100) = 0.6
	if got.DistillationRatio == nil || !almostEqual(*got.DistillationRatio, 0.6) {
		t.Fatalf("DistillationRatio = %v, erwartet 0.6", got.DistillationRatio)
	}
	if !almostEqual(got.SizeMB, 40) {
		t.Errorf("SizeMB = %v, erwartet 40", got.SizeMB)
	}
	if !almostEqual(got.InferenceTimeMS, 500*(1-0.6*0.5)) {
		t.Errorf("InferenceTimeMS = %v, erwartet %v", got.InferenceTimeMS, 500*(1-0.6*0.5))
	}
	// Fester Faktor 0.98, unabhaengig von der Reduktion
	if !almostEqual(got.Accuracy, 0.92*0.98) {
		t.Errorf("Accuracy = %v, erwartet %v", got.Accuracy, 0.92*0.98)
	}
	if got.Parameters != 400_000 {
		t.Errorf("Parameters = %d, erwartet 400000", got.Parameters)
	}
}

// Graph-Optimierung liefert fuer jede positive Eingabe exakt 15%
// Reduktion auf Groesse, Laufzeit und Speicher bei gleicher Genauigkeit
func TestApplyGraphOptimization(t *testing.T) {
	for _, m := range []ModelMetrics{
		baseMetrics(),
		{SizeMB: 14, InferenceTimeMS: 150, Accuracy: 0.85, MemoryUsageMB: 40, Parameters: 3_400_000},
	} {
		got := applyGraphOptimization(m, 10)

		if !almostEqual(got.SizeMB, m.SizeMB*0.85) {
			t.Errorf("SizeMB = %v, erwartet %v", got.SizeMB, m.SizeMB*0.85)
		}
		if !almostEqual(got.InferenceTimeMS, m.InferenceTimeMS*0.85) {
			t.Errorf("InferenceTimeMS = %v, erwartet %v", got.InferenceTimeMS, m.InferenceTimeMS*0.85)
		}
		if !almostEqual(got.MemoryUsageMB, m.MemoryUsageMB*0.85) {
			t.Errorf("MemoryUsageMB = %v, erwartet %v", got.MemoryUsageMB, m.MemoryUsageMB*0.85)
		}
		if got.Accuracy != m.Accuracy {
			t.Errorf("Accuracy = %v, erwartet unveraendert %v", got.Accuracy, m.Accuracy)
		}
		if got.OptimizationApplied == nil || !*got.OptimizationApplied {
			t.Error("OptimizationApplied fehlt oder false")
		}
	}
}

func TestExtractMetricsDefaults(t *testing.T) {
	got := ExtractMetrics(ModelInfo{})

	want := ModelMetrics{
		SizeMB:          100.0,
		InferenceTimeMS: 500.0,
		Accuracy:        0.92,
		MemoryUsageMB:   200.0,
		Parameters:      1_000_000,
	}
	if got != want {
		t.Errorf("ExtractMetrics(leer) = %+v, erwartet Defaults %+v", got, want)
	}
}

func TestExtractMetricsPartial(t *testing.T) {
	size := 98.0
	params := int64(25_000_000)

	got := ExtractMetrics(ModelInfo{SizeMB: &size, Parameters: &params})

	if got.SizeMB != 98 || got.Parameters != 25_000_000 {
		t.Errorf("gesetzte Felder nicht uebernommen: %+v", got)
	}
	if got.Accuracy != 0.92 || got.InferenceTimeMS != 500 {
		t.Errorf("fehlende Felder nicht mit Defaults belegt: %+v", got)
	}
}

// Bei Originalwert 0 fehlt der Prozent-Schluessel komplett,
// es darf kein Division-durch-Null-Fehler entstehen
func TestComputeImprovementsOmitsZeroKeys(t *testing.T) {
	original := ModelMetrics{SizeMB: 0, InferenceTimeMS: 500, Accuracy: 0.92, MemoryUsageMB: 0}
	optimized := ModelMetrics{SizeMB: 0, InferenceTimeMS: 250, Accuracy: 0.90, MemoryUsageMB: 0}

	got := computeImprovements(original, optimized)

	if got.SizeMBImprovementPercent != nil {
		t.Errorf("SizeMBImprovementPercent = %v, erwartet fehlend", *got.SizeMBImprovementPercent)
	}
	if got.MemoryUsageMBImprovementPercent != nil {
		t.Errorf("MemoryUsageMBImprovementPercent = %v, erwartet fehlend", *got.MemoryUsageMBImprovementPercent)
	}
	if got.InferenceTimeMSImprovementPercent == nil || *got.InferenceTimeMSImprovementPercent != 50 {
		t.Errorf("InferenceTimeMSImprovementPercent = %v, erwartet 50", got.InferenceTimeMSImprovementPercent)
	}
	if got.AccuracyChange != -0.02 {
		t.Errorf("AccuracyChange = %v, erwartet -0.02", got.AccuracyChange)
	}
}

func TestComputeImprovementsRounding(t *testing.T) {
	original := ModelMetrics{SizeMB: 3, InferenceTimeMS: 3, Accuracy: 0.123456, MemoryUsageMB: 3}
	optimized := ModelMetrics{SizeMB: 1, InferenceTimeMS: 1, Accuracy: 0.2, MemoryUsageMB: 1}

	got := computeImprovements(original, optimized)

	// (3-1)/3*100 = 66.666... wird auf 2 Stellen gerundet
	if *got.SizeMBImprovementPercent != 66.67 {
		t.Errorf("SizeMBImprovementPercent = %v, erwartet 66.67", *got.SizeMBImprovementPercent)
	}
	// accuracy_change auf 4 Stellen
	if got.AccuracyChange != 0.0765 {
		t.Errorf("AccuracyChange = %v, erwartet 0.0765", got.AccuracyChange)
	}
}
