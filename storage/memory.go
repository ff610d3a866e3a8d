package storage

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/fonuzi/NutriTrack/models"
)

// MemStore keeps every collection in a map keyed by an auto-incrementing id.
// Filtering is a linear scan. The original deployment ran single-writer; the
// mutex makes the same semantics hold under concurrent handlers.
type MemStore struct {
	mu sync.RWMutex

	gyms       map[uint]models.Gym
	foods      map[uint]models.Food
	activities map[uint]models.Activity
	weights    map[uint]models.Weight
	settings   map[uint]models.UserSettings

	gymID      uint
	foodID     uint
	activityID uint
	weightID   uint
	settingsID uint
}

// NewMemStore seeds a default gym and default settings so a fresh install
// renders without any setup, matching the app's onboarding expectations.
func NewMemStore() *MemStore {
	s := &MemStore{
		gyms:       make(map[uint]models.Gym),
		foods:      make(map[uint]models.Food),
		activities: make(map[uint]models.Activity),
		weights:    make(map[uint]models.Weight),
		settings:   make(map[uint]models.UserSettings),
	}

	s.gymID++
	gym := models.Gym{
		ID:           s.gymID,
		Name:         "FitTrack",
		Logo:         "https://images.unsplash.com/photo-1571902943202-507ec2618e8f?auto=format&fit=crop&w=100&h=100&q=80",
		PrimaryColor: "#6366F1",
		OwnerID:      1,
	}
	s.gyms[gym.ID] = gym

	s.settingsID++
	settings := models.DefaultUserSettings(1)
	settings.ID = s.settingsID
	settings.CalorieGoal = 2100
	settings.ProteinGoal = 140
	settings.GymID = gym.ID
	s.settings[settings.ID] = settings

	return s
}

func matchTenant(gymID, userID, wantGym, wantUser uint) bool {
	if wantGym != 0 && gymID != wantGym {
		return false
	}
	if wantUser != 0 && userID != wantUser {
		return false
	}
	return true
}

// Gym operations

func (s *MemStore) GetGym(ctx context.Context, id uint) (*models.Gym, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	gym, ok := s.gyms[id]
	if !ok {
		return nil, ErrNotFound
	}
	return &gym, nil
}

func (s *MemStore) CreateGym(ctx context.Context, gym *models.Gym) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.gymID++
	gym.ID = s.gymID
	s.gyms[gym.ID] = *gym
	return nil
}

func (s *MemStore) UpdateGym(ctx context.Context, gym *models.Gym) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.gyms[gym.ID]; !ok {
		return ErrNotFound
	}
	s.gyms[gym.ID] = *gym
	return nil
}

// Food operations

func (s *MemStore) GetFood(ctx context.Context, id uint) (*models.Food, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	food, ok := s.foods[id]
	if !ok {
		return nil, ErrNotFound
	}
	return &food, nil
}

func (s *MemStore) GetFoodsByDate(ctx context.Context, date time.Time, gymID, userID uint) ([]models.Food, error) {
	start, end := DayWindow(date)

	s.mu.RLock()
	defer s.mu.RUnlock()
	foods := make([]models.Food, 0)
	for _, food := range s.foods {
		if food.Date.Before(start) || !food.Date.Before(end) {
			continue
		}
		if !matchTenant(food.GymID, food.UserID, gymID, userID) {
			continue
		}
		foods = append(foods, food)
	}
	sort.Slice(foods, func(i, j int) bool { return foods[i].Date.Before(foods[j].Date) })
	return foods, nil
}

func (s *MemStore) GetRecentFoods(ctx context.Context, limit int, gymID, userID uint) ([]models.Food, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	foods := make([]models.Food, 0)
	for _, food := range s.foods {
		if matchTenant(food.GymID, food.UserID, gymID, userID) {
			foods = append(foods, food)
		}
	}
	sort.Slice(foods, func(i, j int) bool { return foods[i].Date.After(foods[j].Date) })
	if limit > 0 && len(foods) > limit {
		foods = foods[:limit]
	}
	return foods, nil
}

func (s *MemStore) CreateFood(ctx context.Context, food *models.Food) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.foodID++
	food.ID = s.foodID
	s.foods[food.ID] = *food
	return nil
}

func (s *MemStore) UpdateFood(ctx context.Context, food *models.Food) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.foods[food.ID]; !ok {
		return ErrNotFound
	}
	s.foods[food.ID] = *food
	return nil
}

func (s *MemStore) DeleteFood(ctx context.Context, id uint) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.foods[id]; !ok {
		return ErrNotFound
	}
	delete(s.foods, id)
	return nil
}

// Activity operations

func (s *MemStore) GetActivity(ctx context.Context, id uint) (*models.Activity, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	activity, ok := s.activities[id]
	if !ok {
		return nil, ErrNotFound
	}
	return &activity, nil
}

func (s *MemStore) GetActivitiesByDateRange(ctx context.Context, start, end time.Time, gymID, userID uint) ([]models.Activity, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	activities := make([]models.Activity, 0)
	for _, activity := range s.activities {
		if activity.Date.Before(start) || activity.Date.After(end) {
			continue
		}
		if !matchTenant(activity.GymID, activity.UserID, gymID, userID) {
			continue
		}
		activities = append(activities, activity)
	}
	sort.Slice(activities, func(i, j int) bool { return activities[i].Date.Before(activities[j].Date) })
	return activities, nil
}

func (s *MemStore) CreateActivity(ctx context.Context, activity *models.Activity) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.activityID++
	activity.ID = s.activityID
	s.activities[activity.ID] = *activity
	return nil
}

func (s *MemStore) UpdateActivity(ctx context.Context, activity *models.Activity) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.activities[activity.ID]; !ok {
		return ErrNotFound
	}
	s.activities[activity.ID] = *activity
	return nil
}

// Weight operations

func (s *MemStore) GetWeight(ctx context.Context, id uint) (*models.Weight, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	weight, ok := s.weights[id]
	if !ok {
		return nil, ErrNotFound
	}
	return &weight, nil
}

func (s *MemStore) GetWeightsByDateRange(ctx context.Context, start, end time.Time, gymID, userID uint) ([]models.Weight, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	weights := make([]models.Weight, 0)
	for _, weight := range s.weights {
		if weight.Date.Before(start) || weight.Date.After(end) {
			continue
		}
		if !matchTenant(weight.GymID, weight.UserID, gymID, userID) {
			continue
		}
		weights = append(weights, weight)
	}
	sort.Slice(weights, func(i, j int) bool { return weights[i].Date.Before(weights[j].Date) })
	return weights, nil
}

func (s *MemStore) CreateWeight(ctx context.Context, weight *models.Weight) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.weightID++
	weight.ID = s.weightID
	s.weights[weight.ID] = *weight
	return nil
}

// User settings operations

func (s *MemStore) GetUserSettings(ctx context.Context, userID uint) (*models.UserSettings, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, settings := range s.settings {
		if settings.UserID == userID {
			out := settings
			return &out, nil
		}
	}
	return nil, ErrNotFound
}

func (s *MemStore) CreateUserSettings(ctx context.Context, settings *models.UserSettings) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.settingsID++
	settings.ID = s.settingsID
	s.settings[settings.ID] = *settings
	return nil
}

func (s *MemStore) UpdateUserSettings(ctx context.Context, settings *models.UserSettings) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.settings[settings.ID]; !ok {
		return ErrNotFound
	}
	s.settings[settings.ID] = *settings
	return nil
}
