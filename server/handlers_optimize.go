// handlers_optimize.go - Optimierungs-Endpunkte
// Verbindet Modell-Kennzahlen mit der Strategie-Analyse
package server

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/thorascan/thorascan/api"
	"github.com/thorascan/thorascan/model"
	"github.com/thorascan/thorascan/optimize"
)

// optimizationModelInfo baut die Optimierer-Eingabe aus Registry und Kennzahlen
// Die Inferenzzeit der Kennzahlentabelle ist in Sekunden und wird in ms umgerechnet
func optimizationModelInfo(name string) (optimize.ModelInfo, error) {
	info, err := model.GetInfo(name)
	if err != nil {
		return optimize.ModelInfo{}, err
	}

	params := info.Parameters
	result := optimize.ModelInfo{
		Name:        info.Name,
		Description: info.Description,
		Parameters:  &params,
	}

	if perf, ok := model.PerformanceFor(name); ok {
		size := perf.SizeMB
		accuracy := perf.Accuracy
		inferenceMS := perf.InferenceTime * 1000

		result.SizeMB = &size
		result.Accuracy = &accuracy
		result.InferenceTimeMS = &inferenceMS
	}

	return result, nil
}

// OptimizeModelHandler beantwortet POST /api/optimize-model
func (s *Server) OptimizeModelHandler(c *gin.Context) {
	req := api.OptimizeRequest{
		ModelType:        "efficientnet",
		OptimizationType: "quantization",
		TargetSizeMB:     optimize.DefaultTargetSizeMB,
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		abortError(c, http.StatusBadRequest, err.Error())
		return
	}

	info, err := optimizationModelInfo(req.ModelType)
	if err != nil {
		abortError(c, http.StatusBadRequest, fmt.Sprintf("Model %s not found", req.ModelType))
		return
	}

	result := optimize.OptimizeModel(info, optimize.Strategy(req.OptimizationType), req.TargetSizeMB)

	c.JSON(http.StatusOK, api.OptimizeResponse{
		Success:            true,
		OptimizationResult: result,
	})
}

// CompareOptimizationsHandler beantwortet POST /api/compare-optimizations
func (s *Server) CompareOptimizationsHandler(c *gin.Context) {
	req := api.CompareOptimizationsRequest{
		ModelType:    "efficientnet",
		TargetSizeMB: optimize.DefaultTargetSizeMB,
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		abortError(c, http.StatusBadRequest, err.Error())
		return
	}

	info, err := optimizationModelInfo(req.ModelType)
	if err != nil {
		abortError(c, http.StatusBadRequest, fmt.Sprintf("Model %s not found", req.ModelType))
		return
	}

	c.JSON(http.StatusOK, api.CompareOptimizationsResponse{
		Success:          true,
		ComparisonResult: optimize.CompareStrategies(info, req.TargetSizeMB),
	})
}

// OptimizationReportHandler beantwortet POST /api/optimization-report
func (s *Server) OptimizationReportHandler(c *gin.Context) {
	req := api.ReportRequest{
		ModelType:    "efficientnet",
		TargetSizeMB: optimize.DefaultTargetSizeMB,
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		abortError(c, http.StatusBadRequest, err.Error())
		return
	}

	info, err := optimizationModelInfo(req.ModelType)
	if err != nil {
		abortError(c, http.StatusBadRequest, fmt.Sprintf("Model %s not found", req.ModelType))
		return
	}

	c.JSON(http.StatusOK, api.ReportResponse{
		Success: true,
		Report:  optimize.Report(info, req.TargetSizeMB),
	})
}
