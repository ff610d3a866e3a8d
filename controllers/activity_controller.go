package controllers

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/fonuzi/NutriTrack/models"
	"github.com/fonuzi/NutriTrack/services"
	"github.com/fonuzi/NutriTrack/storage"
)

type ActivityController struct {
	Store    storage.Store
	Activity *services.ActivityService
}

func NewActivityController(store storage.Store, activity *services.ActivityService) *ActivityController {
	return &ActivityController{Store: store, Activity: activity}
}

// GetActivity handles GET /api/activity/:id.
func (ac *ActivityController) GetActivity(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"message": "invalid activity id"})
		return
	}
	activity, err := ac.Store.GetActivity(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"message": "Activity not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"message": err.Error()})
		return
	}
	c.JSON(http.StatusOK, activity)
}

// GetActivitiesByRange handles GET /api/activities/range.
func (ac *ActivityController) GetActivitiesByRange(c *gin.Context) {
	start := queryDate(c, "startDate", time.Now())
	end := queryDate(c, "endDate", time.Now())
	activities, err := ac.Store.GetActivitiesByDateRange(c.Request.Context(), start, end, queryUint(c, "gymId"), queryUint(c, "userId"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": err.Error()})
		return
	}
	c.JSON(http.StatusOK, activities)
}

// CreateActivity handles POST /api/activity. The burn figure is always
// derived from steps server-side; a client-supplied value is ignored.
func (ac *ActivityController) CreateActivity(c *gin.Context) {
	var activity models.Activity
	if err := c.ShouldBindJSON(&activity); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "invalid activity payload"})
		return
	}
	activity.ID = 0
	activity.CaloriesBurned = services.CaloriesForSteps(activity.Steps)
	if activity.Date.IsZero() {
		activity.Date = time.Now()
	}
	if err := ac.Store.CreateActivity(c.Request.Context(), &activity); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, activity)
}

// UpdateActivity handles PUT /api/activity/:id with merge semantics.
func (ac *ActivityController) UpdateActivity(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"message": "invalid activity id"})
		return
	}
	activity, err := ac.Store.GetActivity(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"message": "Activity not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"message": err.Error()})
		return
	}
	if err := c.ShouldBindJSON(activity); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "invalid activity payload"})
		return
	}
	activity.ID = id
	activity.CaloriesBurned = services.CaloriesForSteps(activity.Steps)
	if err := ac.Store.UpdateActivity(c.Request.Context(), activity); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": err.Error()})
		return
	}
	c.JSON(http.StatusOK, activity)
}

// UpdateSteps handles POST /api/activities/steps: the day-upsert fed by the
// device step counter.
func (ac *ActivityController) UpdateSteps(c *gin.Context) {
	var req struct {
		Steps  int  `json:"steps"`
		GymID  uint `json:"gymId"`
		UserID uint `json:"userId"`
	}
	if err := c.ShouldBindJSON(&req); err != nil || req.Steps < 0 {
		c.JSON(http.StatusBadRequest, gin.H{"message": "invalid steps payload"})
		return
	}
	activity, err := ac.Activity.UpdateSteps(c.Request.Context(), req.GymID, req.UserID, req.Steps)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": err.Error()})
		return
	}
	c.JSON(http.StatusOK, activity)
}

// StepsStats handles GET /api/activities/stats?gymId=&userId=.
func (ac *ActivityController) StepsStats(c *gin.Context) {
	stats, err := ac.Activity.StepsStats(c.Request.Context(), queryUint(c, "gymId"), queryUint(c, "userId"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": err.Error()})
		return
	}
	c.JSON(http.StatusOK, stats)
}
