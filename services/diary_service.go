package services

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/fonuzi/NutriTrack/models"
	"github.com/fonuzi/NutriTrack/storage"
)

// recentMealsLimit bounds the in-memory most-recent-meals view.
const recentMealsLimit = 5

// DiaryService persists confirmed meals and derives the day's nutrition
// summary. Summaries are always recomputed from the full set of the day's
// records rather than drifted incrementally, so a missed update can never
// compound.
type DiaryService struct {
	store storage.Store
	hub   *RealtimeHub

	mu     sync.Mutex
	recent []models.Food
}

func NewDiaryService(store storage.Store, hub *RealtimeHub) *DiaryService {
	return &DiaryService{store: store, hub: hub}
}

// SaveMeal stamps the record, persists it, and refreshes the derived views.
// A failed save leaves the recent list and the prior summary untouched.
func (s *DiaryService) SaveMeal(ctx context.Context, food *models.Food) error {
	if food.Date.IsZero() {
		food.Date = time.Now()
	}
	if food.Items == nil {
		food.Items = []models.FoodItem{}
	}

	if err := s.store.CreateFood(ctx, food); err != nil {
		return fmt.Errorf("save meal: %w", err)
	}

	s.mu.Lock()
	s.recent = append([]models.Food{*food}, s.recent...)
	if len(s.recent) > recentMealsLimit {
		s.recent = s.recent[:recentMealsLimit]
	}
	s.mu.Unlock()

	if s.hub != nil {
		if summary, err := s.DailySummary(ctx, food.Date, food.GymID, food.UserID); err == nil {
			s.hub.BroadcastSummary(food.UserID, "dailySummary", summary)
		}
	}
	return nil
}

// RecentMeals returns the bounded in-memory list, most recent first.
func (s *DiaryService) RecentMeals() []models.Food {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]models.Food, len(s.recent))
	copy(out, s.recent)
	return out
}

// FoodsByDate lists the meals saved on the given server-local calendar day.
func (s *DiaryService) FoodsByDate(ctx context.Context, date time.Time, gymID, userID uint) ([]models.Food, error) {
	return s.store.GetFoodsByDate(ctx, date, gymID, userID)
}

// DailySummary re-scans the day's foods and pairs the totals with the
// user's configured goals (schema defaults when none are stored).
func (s *DiaryService) DailySummary(ctx context.Context, date time.Time, gymID, userID uint) (*models.DailySummary, error) {
	settings, err := s.store.GetUserSettings(ctx, userID)
	if err != nil {
		if !errors.Is(err, storage.ErrNotFound) {
			return nil, fmt.Errorf("load settings: %w", err)
		}
		defaults := models.DefaultUserSettings(userID)
		settings = &defaults
	}

	foods, err := s.store.GetFoodsByDate(ctx, date, gymID, userID)
	if err != nil {
		return nil, fmt.Errorf("load foods: %w", err)
	}

	summary := &models.DailySummary{
		CaloriesGoal: settings.CalorieGoal,
		ProteinGoal:  settings.ProteinGoal,
		CarbsGoal:    settings.CarbsGoal,
		FatGoal:      settings.FatGoal,
		Water:        "0.0",
		WaterGoal:    formatLiters(settings.WaterGoal),
	}
	for _, food := range foods {
		summary.Calories += food.Calories
		summary.Protein += food.Protein
		summary.Carbs += food.Carbs
		summary.Fat += food.Fat
	}

	summary.Progress = map[string]float64{
		"calories": pct(summary.Calories, summary.CaloriesGoal),
		"protein":  pct(summary.Protein, summary.ProteinGoal),
		"carbs":    pct(summary.Carbs, summary.CarbsGoal),
		"fat":      pct(summary.Fat, summary.FatGoal),
	}
	return summary, nil
}

func pct(consumed, goal int) float64 {
	if goal <= 0 {
		return 0
	}
	p := float64(consumed) / float64(goal)
	if p > 1 {
		return 1
	}
	return p
}

func formatLiters(ml int) string {
	return fmt.Sprintf("%.1f", float64(ml)/1000)
}
