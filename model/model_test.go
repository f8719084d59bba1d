// MODUL: model_test
// ZWECK: Tests fuer Registry, Vorhersage und Kennzahlen
// INPUT: Synthetische Tensoren
// OUTPUT: Testresultate
// NEBENEFFEKTE: keine
// ABHAENGIGKEITEN: testing, vision
// HINWEISE: Determinismus ueber festen Manager-Seed

package model

import (
	"testing"

	"github.com/thorascan/thorascan/vision"
)

// flatTensor erzeugt einen Tensor mit konstantem Wert
func flatTensor(v float32) *vision.Tensor {
	data := make([]float32, 224*224*3)
	for i := range data {
		data[i] = v
	}
	return &vision.Tensor{Data: data, Height: 224, Width: 224, Channels: 3}
}

func TestAvailableOrder(t *testing.T) {
	got := Available()
	want := []string{"vgg16", "resnet50", "mobilenetv2", "efficientnet"}

	if len(got) != len(want) {
		t.Fatalf("Anzahl Modelle = %d, erwartet %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Modell %d = %q, erwartet %q", i, got[i], want[i])
		}
	}
}

func TestGetInfo(t *testing.T) {
	info, err := GetInfo("resnet50")
	if err != nil {
		t.Fatalf("GetInfo() error = %v", err)
	}

	if info.Description != "ResNet50 - Residual Network with 50 layers" {
		t.Errorf("Description = %q", info.Description)
	}
	if info.InputShape != (InputShape{224, 224, 3}) {
		t.Errorf("InputShape = %v", info.InputShape)
	}
	if !info.IsLoaded {
		t.Error("IsLoaded muss true sein")
	}
	if info.Parameters != 25_636_712 {
		t.Errorf("Parameters = %d", info.Parameters)
	}
}

func TestGetInfoUnknown(t *testing.T) {
	if _, err := GetInfo("alexnet"); err == nil {
		t.Error("Erwartet Fehler bei unbekanntem Modell")
	}
}

func TestPredictUnknownModel(t *testing.T) {
	m := NewManager(1)

	if _, err := m.Predict(flatTensor(0), "alexnet"); err == nil {
		t.Error("Erwartet Fehler bei unbekanntem Modell")
	}
}

func TestPredictConfidenceRange(t *testing.T) {
	m := NewManager(2)

	for _, name := range Available() {
		pred, err := m.Predict(flatTensor(0.5), name)
		if err != nil {
			t.Fatalf("%s: Predict() error = %v", name, err)
		}

		if pred.Confidence < 10 || pred.Confidence > 90 {
			t.Errorf("%s: Konfidenz %f ausserhalb [10,90]", name, pred.Confidence)
		}
		if pred.ModelUsed != name {
			t.Errorf("ModelUsed = %q, erwartet %q", pred.ModelUsed, name)
		}
		if !pred.IsMock {
			t.Errorf("%s: IsMock muss true sein", name)
		}
	}
}

func TestPredictProbabilitiesSum(t *testing.T) {
	m := NewManager(3)

	pred, err := m.Predict(flatTensor(0.2), "efficientnet")
	if err != nil {
		t.Fatalf("Predict() error = %v", err)
	}

	sum := pred.Probabilities["Normal"] + pred.Probabilities["Pneumonia"]
	if sum < 99.99 || sum > 100.01 {
		t.Errorf("Wahrscheinlichkeitssumme = %f, erwartet 100", sum)
	}
}

func TestPredictLabelMatchesConfidence(t *testing.T) {
	m := NewManager(4)

	for i := 0; i < 20; i++ {
		pred, err := m.Predict(flatTensor(0.5), "resnet50")
		if err != nil {
			t.Fatalf("Predict() error = %v", err)
		}

		if pred.Confidence > 50 && pred.Prediction != "Pneumonia" {
			t.Errorf("Konfidenz %f aber Label %q", pred.Confidence, pred.Prediction)
		}
		if pred.Confidence <= 50 && pred.Prediction != "Normal" {
			t.Errorf("Konfidenz %f aber Label %q", pred.Confidence, pred.Prediction)
		}
	}
}

func TestPredictDeterministicWithSeed(t *testing.T) {
	a, _ := NewManager(7).Predict(flatTensor(0.5), "vgg16")
	b, _ := NewManager(7).Predict(flatTensor(0.5), "vgg16")

	if a.Confidence != b.Confidence {
		t.Errorf("Konfidenz %f != %f bei gleichem Seed", a.Confidence, b.Confidence)
	}
}

func TestStatAdjustment(t *testing.T) {
	// Dunkles Bild: Mittelwert unter 0.3 -> +0.2
	if got := statAdjustment(flatTensor(0.1)); got != 0.2 {
		t.Errorf("Dunkel: Korrektur = %f, erwartet 0.2", got)
	}

	// Mittelwert und Streuung unauffaellig -> 0
	if got := statAdjustment(flatTensor(0.5)); got != 0 {
		t.Errorf("Neutral: Korrektur = %f, erwartet 0", got)
	}

	// Hoher Kontrast -> -0.1
	data := make([]float32, 1000)
	for i := range data {
		if i%2 == 0 {
			data[i] = 0.4
		} else {
			data[i] = 1.4
		}
	}
	high := &vision.Tensor{Data: data, Height: 10, Width: 10, Channels: 10}
	if got := statAdjustment(high); got != -0.1 {
		t.Errorf("Kontrast: Korrektur = %f, erwartet -0.1", got)
	}
}

func TestCompareCoversAllModels(t *testing.T) {
	m := NewManager(5)

	results := m.Compare(flatTensor(0.5))
	if len(results) != 4 {
		t.Fatalf("Anzahl Ergebnisse = %d, erwartet 4", len(results))
	}

	for _, name := range Available() {
		entry, ok := results[name]
		if !ok {
			t.Errorf("Ergebnis fuer %s fehlt", name)
			continue
		}
		if entry.Error != "" {
			t.Errorf("%s: unerwarteter Fehler %q", name, entry.Error)
		}
		if entry.Prediction == nil {
			t.Errorf("%s: Vorhersage fehlt", name)
		}
	}
}

func TestPerformanceMetricsTable(t *testing.T) {
	metrics := PerformanceMetrics()
	if len(metrics) != 4 {
		t.Fatalf("Anzahl Eintraege = %d, erwartet 4", len(metrics))
	}

	eff, ok := PerformanceFor("efficientnet")
	if !ok {
		t.Fatal("efficientnet fehlt in der Tabelle")
	}
	if eff.Accuracy != 0.94 || eff.SizeMB != 29 || eff.ModelSize != "29MB" {
		t.Errorf("efficientnet-Kennzahlen unerwartet: %+v", eff)
	}

	if _, ok := PerformanceFor("alexnet"); ok {
		t.Error("alexnet darf keine Kennzahlen haben")
	}
}
