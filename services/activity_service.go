package services

import (
	"context"
	"fmt"
	"math"
	"time"

	"github.com/fonuzi/NutriTrack/models"
	"github.com/fonuzi/NutriTrack/storage"
)

// caloriesPerStep is the fixed linear estimate used everywhere a burn figure
// is derived from a step count.
const caloriesPerStep = 0.04

// statsWindowDays is the trailing lookback for StepsStats.
const statsWindowDays = 7

// CaloriesForSteps derives the burn estimate for a step count.
func CaloriesForSteps(steps int) int {
	return int(math.Floor(float64(steps) * caloriesPerStep))
}

// ActivityService maintains one step record per calendar day per user and
// the rolling statistics over the trailing week.
type ActivityService struct {
	store storage.Store
	hub   *RealtimeHub
}

func NewActivityService(store storage.Store, hub *RealtimeHub) *ActivityService {
	return &ActivityService{store: store, hub: hub}
}

// UpdateSteps upserts today's record: calling it twice in a day overwrites
// the day's total, it never accumulates. CaloriesBurned is recomputed from
// the new total on every call.
func (s *ActivityService) UpdateSteps(ctx context.Context, gymID, userID uint, steps int) (*models.Activity, error) {
	start, end := storage.DayWindow(time.Now())

	existing, err := s.store.GetActivitiesByDateRange(ctx, start, end.Add(-time.Nanosecond), gymID, userID)
	if err != nil {
		return nil, fmt.Errorf("load today's activity: %w", err)
	}

	var activity *models.Activity
	if len(existing) > 0 {
		activity = &existing[0]
		activity.Steps = steps
		activity.CaloriesBurned = CaloriesForSteps(steps)
		if err := s.store.UpdateActivity(ctx, activity); err != nil {
			return nil, fmt.Errorf("update activity: %w", err)
		}
	} else {
		activity = &models.Activity{
			Steps:          steps,
			CaloriesBurned: CaloriesForSteps(steps),
			Date:           time.Now(),
			GymID:          gymID,
			UserID:         userID,
		}
		if err := s.store.CreateActivity(ctx, activity); err != nil {
			return nil, fmt.Errorf("create activity: %w", err)
		}
	}

	if s.hub != nil {
		s.hub.BroadcastSummary(userID, "stepsUpdated", activity)
	}
	return activity, nil
}

// StepsStats recomputes the trailing-window view from scratch: total steps,
// summed burn, and the average over days that actually have records.
func (s *ActivityService) StepsStats(ctx context.Context, gymID, userID uint) (*models.StepsStats, error) {
	end := time.Now()
	start := end.AddDate(0, 0, -statsWindowDays)

	activities, err := s.store.GetActivitiesByDateRange(ctx, start, end, gymID, userID)
	if err != nil {
		return nil, fmt.Errorf("load activities: %w", err)
	}

	stats := &models.StepsStats{}
	days := make(map[string]struct{})
	for _, activity := range activities {
		stats.Total += activity.Steps
		stats.CaloriesBurned += activity.CaloriesBurned
		days[activity.Date.In(time.Local).Format("2006-01-02")] = struct{}{}
	}

	divisor := len(days)
	if divisor < 1 {
		divisor = 1
	}
	stats.DailyAverage = stats.Total / divisor
	return stats, nil
}
