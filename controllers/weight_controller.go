package controllers

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/fonuzi/NutriTrack/models"
	"github.com/fonuzi/NutriTrack/storage"
)

type WeightController struct {
	Store storage.Store
}

func NewWeightController(store storage.Store) *WeightController {
	return &WeightController{Store: store}
}

// GetWeight handles GET /api/weight/:id.
func (wc *WeightController) GetWeight(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"message": "invalid weight id"})
		return
	}
	weight, err := wc.Store.GetWeight(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"message": "Weight not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"message": err.Error()})
		return
	}
	c.JSON(http.StatusOK, weight)
}

// GetWeightsByRange handles GET /api/weights/range.
func (wc *WeightController) GetWeightsByRange(c *gin.Context) {
	start := queryDate(c, "startDate", time.Now())
	end := queryDate(c, "endDate", time.Now())
	weights, err := wc.Store.GetWeightsByDateRange(c.Request.Context(), start, end, queryUint(c, "gymId"), queryUint(c, "userId"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": err.Error()})
		return
	}
	c.JSON(http.StatusOK, weights)
}

// CreateWeight handles POST /api/weight.
func (wc *WeightController) CreateWeight(c *gin.Context) {
	var weight models.Weight
	if err := c.ShouldBindJSON(&weight); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "invalid weight payload"})
		return
	}
	weight.ID = 0
	if weight.Date.IsZero() {
		weight.Date = time.Now()
	}
	if err := wc.Store.CreateWeight(c.Request.Context(), &weight); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, weight)
}
