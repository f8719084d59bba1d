// MODUL: explain
// ZWECK: Textuelle Erklaerung der Modell-Aufmerksamkeit
// INPUT: Map, Vorhersage-Label und Konfidenz in Prozent
// OUTPUT: Explanation mit Aufmerksamkeitslevel, Regionenzahl und Texten
// NEBENEFFEKTE: keine
// ABHAENGIGKEITEN: attention.go
// HINWEISE: Regionen sind zusammenhaengende Flaechen ueber dem
// Schwellwert Mittelwert+Standardabweichung (4er-Nachbarschaft)

package heatmap

// Stats fasst die Kennzahlen einer Aufmerksamkeitskarte zusammen
type MapStats struct {
	MaxAttention  float64 `json:"max_attention"`
	MeanAttention float64 `json:"mean_attention"`
	AttentionStd  float64 `json:"attention_std"`
}

// Explanation ist die aufbereitete Interpretation einer Karte
type Explanation struct {
	AttentionLevel string   `json:"attention_level"`
	RegionsCount   int      `json:"regions_count"`
	Explanations   []string `json:"explanations"`
	HeatmapStats   MapStats `json:"heatmap_stats"`
}

// Explain analysiert die Karte und erzeugt die Erklaerungstexte
func Explain(m Map, prediction string, confidence float64) Explanation {
	maxAttention, meanAttention, std := m.Stats()

	threshold := meanAttention + std
	regions := countRegions(m, threshold)

	var explanations []string

	if maxAttention > 0.8 {
		explanations = append(explanations, "High attention detected in specific lung regions")
	} else if maxAttention > 0.6 {
		explanations = append(explanations, "Moderate attention focused on lung areas")
	} else {
		explanations = append(explanations, "Distributed attention across the image")
	}

	if regions > 3 {
		explanations = append(explanations, "Multiple regions of interest identified")
	} else if regions > 1 {
		explanations = append(explanations, "Several focal areas detected")
	} else {
		explanations = append(explanations, "Single region of primary interest")
	}

	if prediction == "Pneumonia" && confidence > 70 {
		explanations = append(explanations, "Model confidence suggests potential pathology")
	} else if prediction == "Normal" && confidence > 70 {
		explanations = append(explanations, "Model confidence suggests normal lung appearance")
	} else {
		explanations = append(explanations, "Model shows moderate confidence in diagnosis")
	}

	return Explanation{
		AttentionLevel: attentionLevel(maxAttention),
		RegionsCount:   regions,
		Explanations:   explanations,
		HeatmapStats: MapStats{
			MaxAttention:  maxAttention,
			MeanAttention: meanAttention,
			AttentionStd:  std,
		},
	}
}

func attentionLevel(maxAttention float64) string {
	switch {
	case maxAttention > 0.7:
		return "high"
	case maxAttention > 0.4:
		return "moderate"
	default:
		return "low"
	}
}

// countRegions zaehlt zusammenhaengende Flaechen ueber dem Schwellwert
func countRegions(m Map, threshold float64) int {
	if len(m.Data) == 0 {
		return 0
	}

	w := m.Width
	visited := make([]bool, len(m.Data))
	count := 0

	queue := make([]int, 0, 256)
	for start, v := range m.Data {
		if v <= threshold || visited[start] {
			continue
		}

		count++
		queue = append(queue[:0], start)
		visited[start] = true
		for len(queue) > 0 {
			idx := queue[len(queue)-1]
			queue = queue[:len(queue)-1]

			y := idx / w
			for _, n := range [4]int{idx - 1, idx + 1, idx - w, idx + w} {
				if n < 0 || n >= len(m.Data) {
					continue
				}
				if (n == idx-1 || n == idx+1) && n/w != y {
					continue
				}
				if m.Data[n] > threshold && !visited[n] {
					visited[n] = true
					queue = append(queue, n)
				}
			}
		}
	}

	return count
}
