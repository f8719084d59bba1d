// MODUL: registry
// ZWECK: Verwaltung der simulierten CNN-Architekturen
// INPUT: Modellname
// OUTPUT: Modellbeschreibung und Eingabeform
// NEBENEFFEKTE: keine
// ABHAENGIGKEITEN: keine
// HINWEISE: Die vier Architekturen entsprechen gaengigen
// Transfer-Learning-Basismodellen fuer die Pneumonie-Erkennung

package model

import "fmt"

// InputShape beschreibt die erwartete Eingabe (Hoehe, Breite, Kanaele)
type InputShape [3]int

// Config beschreibt eine registrierte Architektur
type Config struct {
	Name        string
	Description string
	InputShape  InputShape
	Parameters  int64
}

// Info ist die API-Sicht auf ein Modell
type Info struct {
	Name        string     `json:"name"`
	Description string     `json:"description"`
	InputShape  InputShape `json:"input_shape"`
	IsLoaded    bool       `json:"is_loaded"`
	Parameters  int64      `json:"parameters"`
}

// Reihenfolge ist stabil, u.a. fuer Modellvergleiche
var modelOrder = []string{"vgg16", "resnet50", "mobilenetv2", "efficientnet"}

var configs = map[string]Config{
	"vgg16": {
		Name:        "vgg16",
		Description: "VGG16 - Deep CNN with 16 layers",
		InputShape:  InputShape{224, 224, 3},
		Parameters:  138_357_544,
	},
	"resnet50": {
		Name:        "resnet50",
		Description: "ResNet50 - Residual Network with 50 layers",
		InputShape:  InputShape{224, 224, 3},
		Parameters:  25_636_712,
	},
	"mobilenetv2": {
		Name:        "mobilenetv2",
		Description: "MobileNetV2 - Lightweight CNN for mobile devices",
		InputShape:  InputShape{224, 224, 3},
		Parameters:  3_538_984,
	},
	"efficientnet": {
		Name:        "efficientnet",
		Description: "EfficientNet-B0 - Efficient CNN with compound scaling",
		InputShape:  InputShape{224, 224, 3},
		Parameters:  5_330_571,
	},
}

// Available gibt alle registrierten Modellnamen in stabiler Reihenfolge zurueck
func Available() []string {
	out := make([]string, len(modelOrder))
	copy(out, modelOrder)
	return out
}

// Known prueft ob ein Modellname registriert ist
func Known(name string) bool {
	_, ok := configs[name]
	return ok
}

// GetInfo gibt die Modellinformationen zurueck
// Unbekannte Namen liefern einen Fehler
func GetInfo(name string) (Info, error) {
	cfg, ok := configs[name]
	if !ok {
		return Info{}, fmt.Errorf("model %s not available", name)
	}

	return Info{
		Name:        cfg.Name,
		Description: cfg.Description,
		InputShape:  cfg.InputShape,
		IsLoaded:    true,
		Parameters:  cfg.Parameters,
	}, nil
}
