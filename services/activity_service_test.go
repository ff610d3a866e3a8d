package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/fonuzi/NutriTrack/models"
	"github.com/fonuzi/NutriTrack/services"
	"github.com/fonuzi/NutriTrack/storage"
)

func TestUpdateStepsUpsertsNotAccumulates(t *testing.T) {
	t.Parallel()

	store := storage.NewMemStore()
	svc := services.NewActivityService(store, nil)

	if _, err := svc.UpdateSteps(context.Background(), 1, 1, 500); err != nil {
		t.Fatalf("first update: %v", err)
	}
	activity, err := svc.UpdateSteps(context.Background(), 1, 1, 800)
	if err != nil {
		t.Fatalf("second update: %v", err)
	}
	if activity.Steps != 800 {
		t.Fatalf("expected steps overwritten to 800, got %d", activity.Steps)
	}

	start, end := storage.DayWindow(time.Now())
	today, err := store.GetActivitiesByDateRange(context.Background(), start, end, 1, 1)
	if err != nil {
		t.Fatalf("range query: %v", err)
	}
	if len(today) != 1 {
		t.Fatalf("expected exactly one record for today, got %d", len(today))
	}
	if today[0].Steps != 800 {
		t.Fatalf("expected 800 steps, got %d (accumulated?)", today[0].Steps)
	}
}

func TestCaloriesBurnedDeterminism(t *testing.T) {
	t.Parallel()

	cases := []struct {
		steps int
		want  int
	}{
		{0, 0},
		{100, 4},
		{333, 13},  // floor(13.32)
		{800, 32},
		{10000, 400},
	}
	for _, tc := range cases {
		if got := services.CaloriesForSteps(tc.steps); got != tc.want {
			t.Fatalf("CaloriesForSteps(%d) = %d, want %d", tc.steps, got, tc.want)
		}
	}

	store := storage.NewMemStore()
	svc := services.NewActivityService(store, nil)
	activity, err := svc.UpdateSteps(context.Background(), 1, 1, 333)
	if err != nil {
		t.Fatalf("update steps: %v", err)
	}
	if activity.CaloriesBurned != 13 {
		t.Fatalf("expected 13 calories burned, got %d", activity.CaloriesBurned)
	}
}

func TestStepsStatsTrailingWindow(t *testing.T) {
	t.Parallel()

	store := storage.NewMemStore()
	svc := services.NewActivityService(store, nil)

	seed := []struct {
		daysAgo int
		steps   int
	}{
		{0, 6000},
		{1, 8000},
		{2, 10000},
	}
	for _, s := range seed {
		activity := models.Activity{
			Steps:          s.steps,
			CaloriesBurned: services.CaloriesForSteps(s.steps),
			Date:           time.Now().AddDate(0, 0, -s.daysAgo),
			GymID:          1,
			UserID:         1,
		}
		if err := store.CreateActivity(context.Background(), &activity); err != nil {
			t.Fatalf("seed activity: %v", err)
		}
	}
	// Outside the 7-day lookback; must not count.
	stale := models.Activity{
		Steps:          99999,
		CaloriesBurned: services.CaloriesForSteps(99999),
		Date:           time.Now().AddDate(0, 0, -10),
		GymID:          1,
		UserID:         1,
	}
	if err := store.CreateActivity(context.Background(), &stale); err != nil {
		t.Fatalf("seed stale activity: %v", err)
	}

	stats, err := svc.StepsStats(context.Background(), 1, 1)
	if err != nil {
		t.Fatalf("steps stats: %v", err)
	}
	if stats.Total != 24000 {
		t.Fatalf("expected total 24000, got %d", stats.Total)
	}
	if stats.DailyAverage != 8000 {
		t.Fatalf("expected average 8000 over 3 recorded days, got %d", stats.DailyAverage)
	}
	wantBurn := services.CaloriesForSteps(6000) + services.CaloriesForSteps(8000) + services.CaloriesForSteps(10000)
	if stats.CaloriesBurned != wantBurn {
		t.Fatalf("expected %d calories burned, got %d", wantBurn, stats.CaloriesBurned)
	}
}

func TestStepsStatsEmptyWindow(t *testing.T) {
	t.Parallel()

	svc := services.NewActivityService(storage.NewMemStore(), nil)
	stats, err := svc.StepsStats(context.Background(), 1, 1)
	if err != nil {
		t.Fatalf("steps stats: %v", err)
	}
	if stats.Total != 0 || stats.DailyAverage != 0 || stats.CaloriesBurned != 0 {
		t.Fatalf("expected zero stats, got %+v", stats)
	}
}
