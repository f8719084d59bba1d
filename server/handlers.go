// handlers.go - Basis-Endpunkte (Health, Modelle, Upload-Liste)
package server

import (
	"log/slog"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/thorascan/thorascan/api"
	"github.com/thorascan/thorascan/model"
	"github.com/thorascan/thorascan/version"
	"github.com/thorascan/thorascan/vision"
)

// abortError beendet die Anfrage mit dem JSON-Fehler-Envelope
func abortError(c *gin.Context, status int, message string) {
	c.AbortWithStatusJSON(status, api.ErrorResponse{Success: false, Error: message})
}

// HealthHandler beantwortet GET /api/health
func (s *Server) HealthHandler(c *gin.Context) {
	c.JSON(http.StatusOK, api.HealthResponse{
		Status:    "healthy",
		Timestamp: time.Now().Format(time.RFC3339),
		Version:   version.Version,
	})
}

// ModelsHandler beantwortet GET /api/models
func (s *Server) ModelsHandler(c *gin.Context) {
	c.JSON(http.StatusOK, api.ModelsResponse{
		Success: true,
		Models:  model.Available(),
	})
}

// ModelInfoHandler beantwortet GET /api/models/:model
func (s *Server) ModelInfoHandler(c *gin.Context) {
	name := c.Param("model")

	info, err := model.GetInfo(name)
	if err != nil {
		abortError(c, http.StatusNotFound, err.Error())
		return
	}

	c.JSON(http.StatusOK, api.ModelInfoResponse{Success: true, Model: info})
}

// UploadedImagesHandler beantwortet GET /api/uploaded-images
func (s *Server) UploadedImagesHandler(c *gin.Context) {
	entries, err := os.ReadDir(s.uploads)
	if err != nil {
		slog.Error("reading uploads dir", "dir", s.uploads, "error", err)
		abortError(c, http.StatusInternalServerError, err.Error())
		return
	}

	images := make([]api.UploadedImage, 0, len(entries))
	for _, entry := range entries {
		if entry.IsDir() || !vision.AllowedExtension(entry.Name()) {
			continue
		}

		stat, err := os.Stat(filepath.Join(s.uploads, entry.Name()))
		if err != nil {
			continue
		}

		images = append(images, api.UploadedImage{
			Filename: entry.Name(),
			Size:     stat.Size(),
			Modified: stat.ModTime().Format(time.RFC3339),
		})
	}

	c.JSON(http.StatusOK, api.UploadedImagesResponse{Success: true, Images: images})
}
