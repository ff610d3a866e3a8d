package controllers

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/fonuzi/NutriTrack/services"
)

type AnalysisController struct {
	Vision *services.VisionClient
}

func NewAnalysisController(vision *services.VisionClient) *AnalysisController {
	return &AnalysisController{Vision: vision}
}

// AnalyzeFood handles POST /api/analyze-food. The upstream call is made at
// most once per request and is never retried here; the caller decides
// whether to re-trigger the capture.
func (ac *AnalysisController) AnalyzeFood(c *gin.Context) {
	var req struct {
		ImageBase64 string `json:"imageBase64"`
	}
	if err := c.ShouldBindJSON(&req); err != nil || req.ImageBase64 == "" {
		c.JSON(http.StatusBadRequest, gin.H{"message": "imageBase64 is required"})
		return
	}

	payload, err := services.NormalizeImage(req.ImageBase64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "invalid image data"})
		return
	}

	if !ac.Vision.Configured() {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Could not process food image. Please ensure OPENAI_API_KEY is configured."})
		return
	}

	result, err := ac.Vision.AnalyzeFoodImage(c.Request.Context(), payload)
	if err != nil {
		// Upstream, empty and malformed responses all surface as one
		// "analysis failed" condition.
		log.Printf("food analysis failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to analyze food"})
		return
	}

	c.JSON(http.StatusOK, result)
}
