// client_api.go - Endpunkt-Methoden des API-Clients
// Eine Methode pro REST-Endpunkt, alle mit context.Context
package api

import (
	"context"
	"net/http"
	"strconv"
)

// Health prueft die Erreichbarkeit des Servers
func (c *Client) Health(ctx context.Context) (*HealthResponse, error) {
	var resp HealthResponse
	if err := c.do(ctx, http.MethodGet, "/api/health", nil, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// Models listet die verfuegbaren Modelle auf
func (c *Client) Models(ctx context.Context) (*ModelsResponse, error) {
	var resp ModelsResponse
	if err := c.do(ctx, http.MethodGet, "/api/models", nil, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// ModelInfo gibt die Details eines Modells zurueck
func (c *Client) ModelInfo(ctx context.Context, name string) (*ModelInfoResponse, error) {
	var resp ModelInfoResponse
	if err := c.do(ctx, http.MethodGet, "/api/models/"+name, nil, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// Analyze klassifiziert ein Roentgenbild mit dem angegebenen Modell
func (c *Client) Analyze(ctx context.Context, filename string, imageData []byte, modelType string) (*AnalyzeResponse, error) {
	fields := map[string]string{}
	if modelType != "" {
		fields["model_type"] = modelType
	}

	var resp AnalyzeResponse
	if err := c.doMultipart(ctx, "/api/analyze", filename, imageData, fields, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// CompareModels klassifiziert ein Bild mit allen Modellen
func (c *Client) CompareModels(ctx context.Context, filename string, imageData []byte) (*CompareModelsResponse, error) {
	var resp CompareModelsResponse
	if err := c.doMultipart(ctx, "/api/compare-models", filename, imageData, nil, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// Augment wendet eine Augmentierung auf ein Bild an
func (c *Client) Augment(ctx context.Context, filename string, imageData []byte, augType string, intensity float64) (*AugmentResponse, error) {
	fields := map[string]string{}
	if augType != "" {
		fields["type"] = augType
	}
	if intensity > 0 {
		fields["intensity"] = strconv.FormatFloat(intensity, 'f', -1, 64)
	}

	var resp AugmentResponse
	if err := c.doMultipart(ctx, "/api/augment", filename, imageData, fields, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// UploadedImages listet die gespeicherten Bilder auf
func (c *Client) UploadedImages(ctx context.Context) (*UploadedImagesResponse, error) {
	var resp UploadedImagesResponse
	if err := c.do(ctx, http.MethodGet, "/api/uploaded-images", nil, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// Optimize wendet eine einzelne Optimierungsstrategie an
func (c *Client) Optimize(ctx context.Context, req *OptimizeRequest) (*OptimizeResponse, error) {
	var resp OptimizeResponse
	if err := c.do(ctx, http.MethodPost, "/api/optimize-model", req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// CompareOptimizations vergleicht alle Optimierungsstrategien
func (c *Client) CompareOptimizations(ctx context.Context, req *CompareOptimizationsRequest) (*CompareOptimizationsResponse, error) {
	var resp CompareOptimizationsResponse
	if err := c.do(ctx, http.MethodPost, "/api/compare-optimizations", req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// OptimizationReport erzeugt den vollstaendigen Optimierungsbericht
func (c *Client) OptimizationReport(ctx context.Context, req *ReportRequest) (*ReportResponse, error) {
	var resp ReportResponse
	if err := c.do(ctx, http.MethodPost, "/api/optimization-report", req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}
