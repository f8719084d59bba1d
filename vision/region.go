// MODUL: region
// ZWECK: Lokalisierung der Lungenregion in Roentgenbildern
// INPUT: ImageInput
// OUTPUT: Binaermaske und Bounding-Box der groessten Region
// NEBENEFFEKTE: keine
// ABHAENGIGKEITEN: image (stdlib), filter.go
// HINWEISE: Otsu-Schwellwert auf geglaettetem Graubild, die groesste
// zusammenhaengende Vordergrundflaeche gilt als Lungenregion

package vision

import "image"

// LungRegion beschreibt das Ergebnis der Regionssuche
type LungRegion struct {
	Mask  *image.Gray
	Box   image.Rectangle
	Found bool
}

// DetectLungRegion sucht die groesste zusammenhaengende Region
// Ohne Vordergrund wird das gesamte Bild als Region zurueckgegeben
func DetectLungRegion(img *ImageInput) LungRegion {
	gray := ToGray(img)
	plane, w, h := GrayToPlane(gray)
	if len(plane) == 0 {
		return LungRegion{Mask: gray, Box: gray.Bounds(), Found: false}
	}

	blurred := GaussianBlur(plane, w, h, 5)
	threshold := otsuThreshold(blurred)

	binary := make([]bool, len(blurred))
	for i, v := range blurred {
		binary[i] = v > threshold
	}

	box, area := largestComponent(binary, w, h)
	if area == 0 {
		// Kein Vordergrund: volle Flaeche als Fallback
		full := image.NewGray(image.Rect(0, 0, w, h))
		for i := range full.Pix {
			full.Pix[i] = 255
		}
		return LungRegion{Mask: full, Box: full.Bounds(), Found: false}
	}

	mask := image.NewGray(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			if binary[y*w+x] {
				mask.Pix[y*mask.Stride+x] = 255
			}
		}
	}

	return LungRegion{Mask: mask, Box: box, Found: true}
}

// CropToLungRegion schneidet das Bild auf die Lungenregion zu
// padding ist der relative Rand um die Bounding-Box (z.B. 0.1)
func CropToLungRegion(img *ImageInput, padding float64) *ImageInput {
	region := DetectLungRegion(img)
	if !region.Found {
		return img
	}

	padX := int(float64(region.Box.Dx()) * padding)
	padY := int(float64(region.Box.Dy()) * padding)

	rect := image.Rect(
		region.Box.Min.X-padX,
		region.Box.Min.Y-padY,
		region.Box.Max.X+padX,
		region.Box.Max.Y+padY,
	)

	cropped, err := Crop(img, rect)
	if err != nil {
		return img
	}
	return cropped
}

// otsuThreshold berechnet den Otsu-Schwellwert einer [0,255]-Ebene
func otsuThreshold(plane []float64) float64 {
	var hist [256]int
	for _, v := range plane {
		idx := int(v)
		if idx < 0 {
			idx = 0
		} else if idx > 255 {
			idx = 255
		}
		hist[idx]++
	}

	total := len(plane)
	var sum float64
	for i, count := range hist {
		sum += float64(i) * float64(count)
	}

	var sumBack, weightBack float64
	var maxVariance, best float64

	for i, count := range hist {
		weightBack += float64(count)
		if weightBack == 0 {
			continue
		}
		weightFore := float64(total) - weightBack
		if weightFore == 0 {
			break
		}

		sumBack += float64(i) * float64(count)
		meanBack := sumBack / weightBack
		meanFore := (sum - sumBack) / weightFore

		variance := weightBack * weightFore * (meanBack - meanFore) * (meanBack - meanFore)
		if variance > maxVariance {
			maxVariance = variance
			best = float64(i)
		}
	}

	return best
}

// largestComponent sucht die groesste 4er-Nachbarschafts-Komponente
// Gibt deren Bounding-Box und Flaeche zurueck
func largestComponent(binary []bool, w, h int) (image.Rectangle, int) {
	visited := make([]bool, len(binary))
	var bestBox image.Rectangle
	bestArea := 0

	queue := make([]int, 0, 1024)
	for start := range binary {
		if !binary[start] || visited[start] {
			continue
		}

		// Flood-Fill ueber die Komponente
		minX, minY := w, h
		maxX, maxY := 0, 0
		area := 0

		queue = append(queue[:0], start)
		visited[start] = true
		for len(queue) > 0 {
			idx := queue[len(queue)-1]
			queue = queue[:len(queue)-1]

			x := idx % w
			y := idx / w
			area++
			if x < minX {
				minX = x
			}
			if x > maxX {
				maxX = x
			}
			if y < minY {
				minY = y
			}
			if y > maxY {
				maxY = y
			}

			for _, n := range [4]int{idx - 1, idx + 1, idx - w, idx + w} {
				if n < 0 || n >= len(binary) {
					continue
				}
				// Zeilenumbruch bei horizontalen Nachbarn ausschliessen
				if (n == idx-1 || n == idx+1) && n/w != y {
					continue
				}
				if binary[n] && !visited[n] {
					visited[n] = true
					queue = append(queue, n)
				}
			}
		}

		if area > bestArea {
			bestArea = area
			bestBox = image.Rect(minX, minY, maxX+1, maxY+1)
		}
	}

	return bestBox, bestArea
}
