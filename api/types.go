// types.go - Core API Types (Fehler, Envelopes, Request/Response-Typen)
// Enthaelt: StatusError sowie die JSON-Formen aller Endpunkte
package api

import (
	"fmt"

	"github.com/thorascan/thorascan/heatmap"
	"github.com/thorascan/thorascan/model"
	"github.com/thorascan/thorascan/optimize"
)

// StatusError is an error with an HTTP status code and message.
type StatusError struct {
	StatusCode   int
	Status       string
	ErrorMessage string `json:"error"`
}

func (e StatusError) Error() string {
	switch {
	case e.Status != "" && e.ErrorMessage != "":
		return fmt.Sprintf("%s: %s", e.Status, e.ErrorMessage)
	case e.Status != "":
		return e.Status
	case e.ErrorMessage != "":
		return e.ErrorMessage
	default:
		// this should not happen
		return "something went wrong, please see the thorascan server logs for details"
	}
}

// ErrorResponse ist der JSON-Envelope fuer fehlgeschlagene Anfragen
type ErrorResponse struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
}

// HealthResponse beschreibt GET /api/health
type HealthResponse struct {
	Status    string `json:"status"`
	Timestamp string `json:"timestamp"`
	Version   string `json:"version"`
}

// ModelsResponse beschreibt GET /api/models
type ModelsResponse struct {
	Success bool     `json:"success"`
	Models  []string `json:"models"`
}

// ModelInfoResponse beschreibt GET /api/models/:model
type ModelInfoResponse struct {
	Success bool       `json:"success"`
	Model   model.Info `json:"model"`
}

// Analysis ist der Kernbefund einer Bildanalyse
type Analysis struct {
	Prediction     string             `json:"prediction"`
	Confidence     float64            `json:"confidence"`
	Probabilities  map[string]float64 `json:"probabilities"`
	ModelUsed      string             `json:"model_used"`
	ProcessingTime float64            `json:"processing_time"`
}

// ImageInfo beschreibt das gespeicherte Originalbild
type ImageInfo struct {
	Filename   string `json:"filename"`
	Dimensions [2]int `json:"dimensions"`
	FileSize   int    `json:"file_size"`
}

// AnalyzeResponse beschreibt POST /api/analyze
type AnalyzeResponse struct {
	Success     bool                `json:"success"`
	Analysis    Analysis            `json:"analysis"`
	Heatmap     string              `json:"heatmap"`
	Explanation heatmap.Explanation `json:"explanation"`
	ImageInfo   ImageInfo           `json:"image_info"`
	Timestamp   string              `json:"timestamp"`
}

// CompareModelsResponse beschreibt POST /api/compare-models
type CompareModelsResponse struct {
	Success    bool                             `json:"success"`
	Comparison map[string]model.ComparisonEntry `json:"comparison"`
	Timestamp  string                           `json:"timestamp"`
}

// AugmentResponse beschreibt POST /api/augment
type AugmentResponse struct {
	Success          bool   `json:"success"`
	AugmentedImage   string `json:"augmented_image"`
	AugmentationType string `json:"augmentation_type"`
	Timestamp        string `json:"timestamp"`
}

// UploadedImage ist ein Eintrag der Upload-Liste
type UploadedImage struct {
	Filename string `json:"filename"`
	Size     int64  `json:"size"`
	Modified string `json:"modified"`
}

// UploadedImagesResponse beschreibt GET /api/uploaded-images
type UploadedImagesResponse struct {
	Success bool            `json:"success"`
	Images  []UploadedImage `json:"images"`
}

// OptimizeRequest ist der Body von POST /api/optimize-model
type OptimizeRequest struct {
	ModelType        string  `json:"model_type"`
	OptimizationType string  `json:"optimization_type"`
	TargetSizeMB     float64 `json:"target_size_mb"`
}

// OptimizeResponse beschreibt POST /api/optimize-model
type OptimizeResponse struct {
	Success            bool                    `json:"success"`
	OptimizationResult optimize.StrategyResult `json:"optimization_result"`
}

// CompareOptimizationsRequest ist der Body von POST /api/compare-optimizations
type CompareOptimizationsRequest struct {
	ModelType    string  `json:"model_type"`
	TargetSizeMB float64 `json:"target_size_mb"`
}

// CompareOptimizationsResponse beschreibt POST /api/compare-optimizations
type CompareOptimizationsResponse struct {
	Success          bool                      `json:"success"`
	ComparisonResult optimize.ComparisonReport `json:"comparison_result"`
}

// ReportRequest ist der Body von POST /api/optimization-report
type ReportRequest struct {
	ModelType    string  `json:"model_type"`
	TargetSizeMB float64 `json:"target_size_mb"`
}

// ReportResponse beschreibt POST /api/optimization-report
type ReportResponse struct {
	Success bool                        `json:"success"`
	Report  optimize.OptimizationReport `json:"report"`
}
