package storage

import (
	"context"
	"errors"
	"time"

	"github.com/fonuzi/NutriTrack/models"
)

// ErrNotFound is returned when a record id does not exist.
var ErrNotFound = errors.New("record not found")

// Store is the persistence collaborator for all collections. Ids are
// assigned monotonically by the implementation and never reused. A gymID or
// userID of 0 in a query means "no filter".
type Store interface {
	// Gym operations
	GetGym(ctx context.Context, id uint) (*models.Gym, error)
	CreateGym(ctx context.Context, gym *models.Gym) error
	UpdateGym(ctx context.Context, gym *models.Gym) error

	// Food operations
	GetFood(ctx context.Context, id uint) (*models.Food, error)
	GetFoodsByDate(ctx context.Context, date time.Time, gymID, userID uint) ([]models.Food, error)
	GetRecentFoods(ctx context.Context, limit int, gymID, userID uint) ([]models.Food, error)
	CreateFood(ctx context.Context, food *models.Food) error
	UpdateFood(ctx context.Context, food *models.Food) error
	DeleteFood(ctx context.Context, id uint) error

	// Activity operations
	GetActivity(ctx context.Context, id uint) (*models.Activity, error)
	GetActivitiesByDateRange(ctx context.Context, start, end time.Time, gymID, userID uint) ([]models.Activity, error)
	CreateActivity(ctx context.Context, activity *models.Activity) error
	UpdateActivity(ctx context.Context, activity *models.Activity) error

	// Weight operations
	GetWeight(ctx context.Context, id uint) (*models.Weight, error)
	GetWeightsByDateRange(ctx context.Context, start, end time.Time, gymID, userID uint) ([]models.Weight, error)
	CreateWeight(ctx context.Context, weight *models.Weight) error

	// User settings operations
	GetUserSettings(ctx context.Context, userID uint) (*models.UserSettings, error)
	CreateUserSettings(ctx context.Context, settings *models.UserSettings) error
	UpdateUserSettings(ctx context.Context, settings *models.UserSettings) error
}

// DayWindow returns the local-calendar-day window containing t. The whole
// server tracks days by server-local date, not a rolling 24h window.
func DayWindow(t time.Time) (start, end time.Time) {
	tt := t.In(time.Local)
	start = time.Date(tt.Year(), tt.Month(), tt.Day(), 0, 0, 0, 0, time.Local)
	return start, start.Add(24 * time.Hour)
}
