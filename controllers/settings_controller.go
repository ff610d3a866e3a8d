package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/fonuzi/NutriTrack/models"
	"github.com/fonuzi/NutriTrack/storage"
)

type SettingsController struct {
	Store storage.Store
}

func NewSettingsController(store storage.Store) *SettingsController {
	return &SettingsController{Store: store}
}

// GetSettings handles GET /api/settings/:userId.
func (sc *SettingsController) GetSettings(c *gin.Context) {
	userID, ok := pathID(c, "userId")
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"message": "invalid user id"})
		return
	}
	settings, err := sc.Store.GetUserSettings(c.Request.Context(), userID)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"message": "Settings not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"message": err.Error()})
		return
	}
	c.JSON(http.StatusOK, settings)
}

// UpdateSettings handles PUT /api/settings/:userId with merge semantics.
func (sc *SettingsController) UpdateSettings(c *gin.Context) {
	userID, ok := pathID(c, "userId")
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"message": "invalid user id"})
		return
	}
	settings, err := sc.Store.GetUserSettings(c.Request.Context(), userID)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"message": "Settings not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"message": err.Error()})
		return
	}
	id := settings.ID
	if err := c.ShouldBindJSON(settings); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "invalid settings payload"})
		return
	}
	settings.ID = id
	settings.UserID = userID
	if err := sc.Store.UpdateUserSettings(c.Request.Context(), settings); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": err.Error()})
		return
	}
	c.JSON(http.StatusOK, settings)
}

// CreateSettings handles POST /api/settings.
func (sc *SettingsController) CreateSettings(c *gin.Context) {
	var settings models.UserSettings
	if err := c.ShouldBindJSON(&settings); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "invalid settings payload"})
		return
	}
	settings.ID = 0
	if err := sc.Store.CreateUserSettings(c.Request.Context(), &settings); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, settings)
}
