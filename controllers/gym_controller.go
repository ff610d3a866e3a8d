package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/fonuzi/NutriTrack/models"
	"github.com/fonuzi/NutriTrack/storage"
)

type GymController struct {
	Store storage.Store
}

func NewGymController(store storage.Store) *GymController {
	return &GymController{Store: store}
}

// GetGym handles GET /api/gym/:id.
func (gc *GymController) GetGym(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"message": "invalid gym id"})
		return
	}
	gym, err := gc.Store.GetGym(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"message": "Gym not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"message": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gym)
}

// UpdateGym handles PUT /api/gym/:id with merge semantics.
func (gc *GymController) UpdateGym(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"message": "invalid gym id"})
		return
	}
	gym, err := gc.Store.GetGym(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"message": "Gym not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"message": err.Error()})
		return
	}
	if err := c.ShouldBindJSON(gym); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "invalid gym payload"})
		return
	}
	gym.ID = id
	if err := gc.Store.UpdateGym(c.Request.Context(), gym); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gym)
}

// CreateGym handles POST /api/gym.
func (gc *GymController) CreateGym(c *gin.Context) {
	var gym models.Gym
	if err := c.ShouldBindJSON(&gym); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "invalid gym payload"})
		return
	}
	gym.ID = 0
	if err := gc.Store.CreateGym(c.Request.Context(), &gym); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, gym)
}
