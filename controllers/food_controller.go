package controllers

import (
	"errors"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/fonuzi/NutriTrack/models"
	"github.com/fonuzi/NutriTrack/services"
	"github.com/fonuzi/NutriTrack/storage"
	"github.com/fonuzi/NutriTrack/utils"
)

type FoodController struct {
	Store    storage.Store
	Diary    *services.DiaryService
	Uploader *utils.ImageUploader // nil when S3 is not configured
}

func NewFoodController(store storage.Store, diary *services.DiaryService, uploader *utils.ImageUploader) *FoodController {
	return &FoodController{Store: store, Diary: diary, Uploader: uploader}
}

// GetFood handles GET /api/food/:id.
func (fc *FoodController) GetFood(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"message": "invalid food id"})
		return
	}
	food, err := fc.Store.GetFood(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"message": "Food not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"message": err.Error()})
		return
	}
	c.JSON(http.StatusOK, food)
}

// GetFoodsByDate handles GET /api/foods/date?date=&gymId=&userId=.
func (fc *FoodController) GetFoodsByDate(c *gin.Context) {
	date := queryDate(c, "date", time.Now())
	foods, err := fc.Diary.FoodsByDate(c.Request.Context(), date, queryUint(c, "gymId"), queryUint(c, "userId"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": err.Error()})
		return
	}
	c.JSON(http.StatusOK, foods)
}

// GetRecentFoods handles GET /api/foods/recent?limit=&gymId=&userId=.
func (fc *FoodController) GetRecentFoods(c *gin.Context) {
	limit := queryInt(c, "limit", 5)
	foods, err := fc.Store.GetRecentFoods(c.Request.Context(), limit, queryUint(c, "gymId"), queryUint(c, "userId"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": err.Error()})
		return
	}
	c.JSON(http.StatusOK, foods)
}

// CreateFood handles POST /api/food: the save step after the user confirms
// an analysis result.
func (fc *FoodController) CreateFood(c *gin.Context) {
	var food models.Food
	if err := c.ShouldBindJSON(&food); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "invalid food payload"})
		return
	}
	food.ID = 0

	if fc.Uploader != nil && strings.HasPrefix(food.ImageURL, "data:") {
		url, err := fc.Uploader.UploadBase64Image(c.Request.Context(), food.ImageURL, "meals")
		if err != nil {
			// Keep the data URI rather than losing the meal over a CDN hiccup.
			log.Printf("meal image upload failed: %v", err)
		} else {
			food.ImageURL = url
		}
	}

	if err := fc.Diary.SaveMeal(c.Request.Context(), &food); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, food)
}

// UpdateFood handles PUT /api/food/:id with merge semantics: fields absent
// from the body keep their stored values.
func (fc *FoodController) UpdateFood(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"message": "invalid food id"})
		return
	}
	food, err := fc.Store.GetFood(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"message": "Food not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"message": err.Error()})
		return
	}
	if err := c.ShouldBindJSON(food); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "invalid food payload"})
		return
	}
	food.ID = id
	if err := fc.Store.UpdateFood(c.Request.Context(), food); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": err.Error()})
		return
	}
	c.JSON(http.StatusOK, food)
}

// DeleteFood handles DELETE /api/food/:id.
func (fc *FoodController) DeleteFood(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"message": "invalid food id"})
		return
	}
	if err := fc.Store.DeleteFood(c.Request.Context(), id); err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"message": "Food not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"message": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}

// DailySummary handles GET /api/summary/daily?date=&gymId=&userId=.
func (fc *FoodController) DailySummary(c *gin.Context) {
	date := queryDate(c, "date", time.Now())
	summary, err := fc.Diary.DailySummary(c.Request.Context(), date, queryUint(c, "gymId"), queryUint(c, "userId"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": err.Error()})
		return
	}
	c.JSON(http.StatusOK, summary)
}
