// MODUL: quality
// ZWECK: Qualitaetspruefung eingehender Roentgenbilder
// INPUT: ImageInput
// OUTPUT: QualityReport mit Befunden und Score
// NEBENEFFEKTE: keine
// ABHAENGIGKEITEN: filter.go, gonum (indirekt ueber PlaneStats)
// HINWEISE: Schwellen entsprechen dem urspruenglichen Backend
// (Aufloesung 100px, Helligkeit 30..225, Kontrast 20, Schaerfe 100)

package vision

import "math"

// QualityReport beschreibt die Eignung eines Bildes fuer die Analyse
type QualityReport struct {
	IsValid      bool     `json:"is_valid"`
	Issues       []string `json:"issues"`
	QualityScore float64  `json:"quality_score"`
}

// ValidateQuality prueft Aufloesung, Helligkeit, Kontrast und Schaerfe
func ValidateQuality(img *ImageInput) QualityReport {
	var issues []string

	if img.Height < 100 || img.Width < 100 {
		issues = append(issues, "Image resolution too low")
	}

	gray := ToGray(img)
	plane, _, _ := GrayToPlane(gray)
	mean, std := PlaneStats(plane)

	if mean < 30 {
		issues = append(issues, "Image too dark")
	} else if mean > 225 {
		issues = append(issues, "Image too bright")
	}

	if std < 20 {
		issues = append(issues, "Low contrast image")
	}

	sharpness := LaplacianVariance(gray)
	if sharpness < 100 {
		issues = append(issues, "Image appears blurred")
	}

	return QualityReport{
		IsValid:      len(issues) == 0,
		Issues:       issues,
		QualityScore: qualityScore(sharpness, std),
	}
}

// qualityScore mittelt normierte Schaerfe- und Kontrastwerte
func qualityScore(sharpness, contrast float64) float64 {
	sharpnessScore := math.Min(sharpness/1000, 1.0)
	contrastScore := math.Min(contrast/100, 1.0)

	score := (sharpnessScore + contrastScore) / 2
	return math.Min(math.Max(score, 0), 1)
}
