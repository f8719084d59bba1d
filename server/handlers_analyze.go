// handlers_analyze.go - Bild-Endpunkte (Analyse, Modellvergleich, Augmentierung)
// Inklusive Upload-Validierung und Persistierung der Originalbilder
package server

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"image/png"
	"io"
	"log/slog"
	"net/http"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/thorascan/thorascan/api"
	"github.com/thorascan/thorascan/augment"
	"github.com/thorascan/thorascan/envconfig"
	"github.com/thorascan/thorascan/heatmap"
	"github.com/thorascan/thorascan/vision"
)

// readUpload liest und validiert die hochgeladene Bilddatei
// Gibt Bytes, Original-Dateinamen und eine Fehlermeldung fuer den Client zurueck
func (s *Server) readUpload(c *gin.Context) ([]byte, string, string) {
	fileHeader, err := c.FormFile("image")
	if err != nil {
		return nil, "", "No image file provided"
	}

	if fileHeader.Filename == "" {
		return nil, "", "No image file selected"
	}

	if !vision.AllowedExtension(fileHeader.Filename) {
		return nil, "", "Invalid file type. Only image files are allowed."
	}

	maxBytes := envconfig.MaxUploadBytes()
	if fileHeader.Size > maxBytes {
		return nil, "", fmt.Sprintf("File too large. Maximum %dMB allowed.", maxBytes/(1024*1024))
	}

	file, err := fileHeader.Open()
	if err != nil {
		return nil, "", fmt.Sprintf("Invalid image file: %s", err)
	}
	defer file.Close()

	data, err := io.ReadAll(io.LimitReader(file, maxBytes+1))
	if err != nil {
		return nil, "", fmt.Sprintf("Invalid image file: %s", err)
	}
	if int64(len(data)) > maxBytes {
		return nil, "", fmt.Sprintf("File too large. Maximum %dMB allowed.", maxBytes/(1024*1024))
	}

	return data, fileHeader.Filename, ""
}

// decodeUpload prueft Magic-Bytes und Abmessungen und dekodiert das Bild
func decodeUpload(data []byte) (*vision.ImageInput, string) {
	img, err := vision.LoadImageFromBytes(data)
	if err != nil {
		return nil, fmt.Sprintf("Invalid image file: %s", err)
	}

	maxDim := envconfig.MaxImageDimension()
	if img.Width > maxDim || img.Height > maxDim {
		return nil, fmt.Sprintf("Image dimensions too large. Maximum %dx%d pixels allowed.", maxDim, maxDim)
	}

	return img, ""
}

// saveUpload persistiert das Originalbild unter Zeitstempel+UUID
func (s *Server) saveUpload(data []byte, format vision.ImageFormat) string {
	filename := fmt.Sprintf("xray_%s_%s%s",
		time.Now().Format("20060102_150405"),
		uuid.New().String()[:8],
		format.Extension(),
	)

	if err := os.WriteFile(filepath.Join(s.uploads, filename), data, 0o644); err != nil {
		slog.Error("saving upload", "filename", filename, "error", err)
		return ""
	}

	return filename
}

// AnalyzeHandler beantwortet POST /api/analyze
func (s *Server) AnalyzeHandler(c *gin.Context) {
	data, _, errMsg := s.readUpload(c)
	if errMsg != "" {
		abortError(c, http.StatusBadRequest, errMsg)
		return
	}

	img, errMsg := decodeUpload(data)
	if errMsg != "" {
		abortError(c, http.StatusBadRequest, errMsg)
		return
	}

	modelType := c.PostForm("model_type")
	if modelType == "" {
		modelType = envconfig.DefaultModel()
	}

	tensor, err := vision.PreprocessForModel(img)
	if err != nil {
		abortError(c, http.StatusInternalServerError, fmt.Sprintf("Analysis failed: %s", err))
		return
	}

	prediction, err := s.models.Predict(tensor, modelType)
	if err != nil {
		abortError(c, http.StatusBadRequest, err.Error())
		return
	}

	attention := s.heatmaps.Generate(img, modelType)
	heatmapURL, err := heatmap.DataURL(attention)
	if err != nil {
		abortError(c, http.StatusInternalServerError, fmt.Sprintf("Analysis failed: %s", err))
		return
	}

	explanation := heatmap.Explain(attention, prediction.Prediction, prediction.Confidence)

	filename := s.saveUpload(data, img.Format)

	c.JSON(http.StatusOK, api.AnalyzeResponse{
		Success: true,
		Analysis: api.Analysis{
			Prediction:     prediction.Prediction,
			Confidence:     prediction.Confidence,
			Probabilities:  prediction.Probabilities,
			ModelUsed:      modelType,
			ProcessingTime: prediction.ProcessingTime,
		},
		Heatmap:     heatmapURL,
		Explanation: explanation,
		ImageInfo: api.ImageInfo{
			Filename:   filename,
			Dimensions: [2]int{img.Width, img.Height},
			FileSize:   len(data),
		},
		Timestamp: time.Now().Format(time.RFC3339),
	})
}

// CompareModelsHandler beantwortet POST /api/compare-models
func (s *Server) CompareModelsHandler(c *gin.Context) {
	data, _, errMsg := s.readUpload(c)
	if errMsg != "" {
		abortError(c, http.StatusBadRequest, errMsg)
		return
	}

	img, errMsg := decodeUpload(data)
	if errMsg != "" {
		abortError(c, http.StatusBadRequest, errMsg)
		return
	}

	tensor, err := vision.PreprocessForModel(img)
	if err != nil {
		abortError(c, http.StatusInternalServerError, fmt.Sprintf("Model comparison failed: %s", err))
		return
	}

	c.JSON(http.StatusOK, api.CompareModelsResponse{
		Success:    true,
		Comparison: s.models.Compare(tensor),
		Timestamp:  time.Now().Format(time.RFC3339),
	})
}

// AugmentHandler beantwortet POST /api/augment
func (s *Server) AugmentHandler(c *gin.Context) {
	data, _, errMsg := s.readUpload(c)
	if errMsg != "" {
		abortError(c, http.StatusBadRequest, errMsg)
		return
	}

	img, errMsg := decodeUpload(data)
	if errMsg != "" {
		abortError(c, http.StatusBadRequest, errMsg)
		return
	}

	augType := c.PostForm("type")
	if augType == "" {
		augType = "rotation"
	}

	intensity := augment.DefaultIntensity
	if raw := c.PostForm("intensity"); raw != "" {
		parsed, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			abortError(c, http.StatusBadRequest, fmt.Sprintf("Invalid intensity: %s", raw))
			return
		}
		intensity = parsed
	}

	augmented := s.augmentor.Apply(img, augType, intensity)

	dataURL, err := pngDataURL(augmented)
	if err != nil {
		abortError(c, http.StatusInternalServerError, fmt.Sprintf("Augmentation failed: %s", err))
		return
	}

	c.JSON(http.StatusOK, api.AugmentResponse{
		Success:          true,
		AugmentedImage:   dataURL,
		AugmentationType: augType,
		Timestamp:        time.Now().Format(time.RFC3339),
	})
}

// pngDataURL kodiert ein Bild als PNG-Data-URL
func pngDataURL(img *vision.ImageInput) (string, error) {
	var buf bytes.Buffer
	if err := png.Encode(&buf, img.Image); err != nil {
		return "", err
	}
	return "data:image/png;base64," + base64.StdEncoding.EncodeToString(buf.Bytes()), nil
}
