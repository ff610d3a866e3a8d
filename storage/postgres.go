package storage

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/fonuzi/NutriTrack/models"
)

// GormStore is the Postgres-backed Store. Query semantics mirror MemStore so
// the aggregation services never care which one they run on.
type GormStore struct {
	db *gorm.DB
}

func NewGormStore(dsn string) (*GormStore, error) {
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("connect to database: %w", err)
	}

	err = db.AutoMigrate(
		&models.Gym{},
		&models.Food{},
		&models.Activity{},
		&models.Weight{},
		&models.UserSettings{},
	)
	if err != nil {
		return nil, fmt.Errorf("auto-migrate: %w", err)
	}

	return &GormStore{db: db}, nil
}

func notFound(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotFound
	}
	return err
}

func tenantScope(q *gorm.DB, gymID, userID uint) *gorm.DB {
	if gymID != 0 {
		q = q.Where("gym_id = ?", gymID)
	}
	if userID != 0 {
		q = q.Where("user_id = ?", userID)
	}
	return q
}

// Gym operations

func (s *GormStore) GetGym(ctx context.Context, id uint) (*models.Gym, error) {
	var gym models.Gym
	if err := s.db.WithContext(ctx).First(&gym, id).Error; err != nil {
		return nil, notFound(err)
	}
	return &gym, nil
}

func (s *GormStore) CreateGym(ctx context.Context, gym *models.Gym) error {
	return s.db.WithContext(ctx).Create(gym).Error
}

func (s *GormStore) UpdateGym(ctx context.Context, gym *models.Gym) error {
	res := s.db.WithContext(ctx).Model(&models.Gym{ID: gym.ID}).Updates(gym)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// Food operations

func (s *GormStore) GetFood(ctx context.Context, id uint) (*models.Food, error) {
	var food models.Food
	if err := s.db.WithContext(ctx).First(&food, id).Error; err != nil {
		return nil, notFound(err)
	}
	return &food, nil
}

func (s *GormStore) GetFoodsByDate(ctx context.Context, date time.Time, gymID, userID uint) ([]models.Food, error) {
	start, end := DayWindow(date)
	var foods []models.Food
	q := s.db.WithContext(ctx).Where("date >= ? AND date < ?", start, end)
	if err := tenantScope(q, gymID, userID).Order("date asc").Find(&foods).Error; err != nil {
		return nil, err
	}
	return foods, nil
}

func (s *GormStore) GetRecentFoods(ctx context.Context, limit int, gymID, userID uint) ([]models.Food, error) {
	var foods []models.Food
	q := tenantScope(s.db.WithContext(ctx), gymID, userID).Order("date desc")
	if limit > 0 {
		q = q.Limit(limit)
	}
	if err := q.Find(&foods).Error; err != nil {
		return nil, err
	}
	return foods, nil
}

func (s *GormStore) CreateFood(ctx context.Context, food *models.Food) error {
	return s.db.WithContext(ctx).Create(food).Error
}

func (s *GormStore) UpdateFood(ctx context.Context, food *models.Food) error {
	res := s.db.WithContext(ctx).Save(food)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *GormStore) DeleteFood(ctx context.Context, id uint) error {
	res := s.db.WithContext(ctx).Delete(&models.Food{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// Activity operations

func (s *GormStore) GetActivity(ctx context.Context, id uint) (*models.Activity, error) {
	var activity models.Activity
	if err := s.db.WithContext(ctx).First(&activity, id).Error; err != nil {
		return nil, notFound(err)
	}
	return &activity, nil
}

func (s *GormStore) GetActivitiesByDateRange(ctx context.Context, start, end time.Time, gymID, userID uint) ([]models.Activity, error) {
	var activities []models.Activity
	q := s.db.WithContext(ctx).Where("date >= ? AND date <= ?", start, end)
	if err := tenantScope(q, gymID, userID).Order("date asc").Find(&activities).Error; err != nil {
		return nil, err
	}
	return activities, nil
}

func (s *GormStore) CreateActivity(ctx context.Context, activity *models.Activity) error {
	return s.db.WithContext(ctx).Create(activity).Error
}

func (s *GormStore) UpdateActivity(ctx context.Context, activity *models.Activity) error {
	res := s.db.WithContext(ctx).Save(activity)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// Weight operations

func (s *GormStore) GetWeight(ctx context.Context, id uint) (*models.Weight, error) {
	var weight models.Weight
	if err := s.db.WithContext(ctx).First(&weight, id).Error; err != nil {
		return nil, notFound(err)
	}
	return &weight, nil
}

func (s *GormStore) GetWeightsByDateRange(ctx context.Context, start, end time.Time, gymID, userID uint) ([]models.Weight, error) {
	var weights []models.Weight
	q := s.db.WithContext(ctx).Where("date >= ? AND date <= ?", start, end)
	if err := tenantScope(q, gymID, userID).Order("date asc").Find(&weights).Error; err != nil {
		return nil, err
	}
	return weights, nil
}

func (s *GormStore) CreateWeight(ctx context.Context, weight *models.Weight) error {
	return s.db.WithContext(ctx).Create(weight).Error
}

// User settings operations

func (s *GormStore) GetUserSettings(ctx context.Context, userID uint) (*models.UserSettings, error) {
	var settings models.UserSettings
	if err := s.db.WithContext(ctx).Where("user_id = ?", userID).First(&settings).Error; err != nil {
		return nil, notFound(err)
	}
	return &settings, nil
}

func (s *GormStore) CreateUserSettings(ctx context.Context, settings *models.UserSettings) error {
	return s.db.WithContext(ctx).Create(settings).Error
}

func (s *GormStore) UpdateUserSettings(ctx context.Context, settings *models.UserSettings) error {
	res := s.db.WithContext(ctx).Save(settings)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
