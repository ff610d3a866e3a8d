package storage_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/fonuzi/NutriTrack/models"
	"github.com/fonuzi/NutriTrack/storage"
)

func TestMemStoreSeedsDefaults(t *testing.T) {
	t.Parallel()

	store := storage.NewMemStore()

	gym, err := store.GetGym(context.Background(), 1)
	if err != nil {
		t.Fatalf("get seeded gym: %v", err)
	}
	if gym.Name != "FitTrack" || gym.PrimaryColor != "#6366F1" {
		t.Fatalf("unexpected seed gym: %+v", gym)
	}

	settings, err := store.GetUserSettings(context.Background(), 1)
	if err != nil {
		t.Fatalf("get seeded settings: %v", err)
	}
	if settings.CalorieGoal != 2100 || settings.StepsGoal != 10000 {
		t.Fatalf("unexpected seed settings: %+v", settings)
	}
}

func TestMemStoreAssignsMonotonicIDs(t *testing.T) {
	t.Parallel()

	store := storage.NewMemStore()
	ctx := context.Background()

	first := models.Food{Name: "A", MealType: "snack", Date: time.Now()}
	second := models.Food{Name: "B", MealType: "snack", Date: time.Now()}
	if err := store.CreateFood(ctx, &first); err != nil {
		t.Fatalf("create: %v", err)
	}
	if err := store.CreateFood(ctx, &second); err != nil {
		t.Fatalf("create: %v", err)
	}
	if second.ID != first.ID+1 {
		t.Fatalf("ids not monotonic: %d then %d", first.ID, second.ID)
	}

	// Deleted ids are never reused.
	if err := store.DeleteFood(ctx, second.ID); err != nil {
		t.Fatalf("delete: %v", err)
	}
	third := models.Food{Name: "C", MealType: "snack", Date: time.Now()}
	if err := store.CreateFood(ctx, &third); err != nil {
		t.Fatalf("create: %v", err)
	}
	if third.ID != second.ID+1 {
		t.Fatalf("id reused after delete: %d", third.ID)
	}
}

func TestMemStoreNotFound(t *testing.T) {
	t.Parallel()

	store := storage.NewMemStore()
	ctx := context.Background()

	if _, err := store.GetFood(ctx, 99); !errors.Is(err, storage.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
	if err := store.UpdateFood(ctx, &models.Food{ID: 99}); !errors.Is(err, storage.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
	if err := store.DeleteFood(ctx, 99); !errors.Is(err, storage.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
	if _, err := store.GetUserSettings(ctx, 99); !errors.Is(err, storage.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestMemStoreFoodsByDateWindow(t *testing.T) {
	t.Parallel()

	store := storage.NewMemStore()
	ctx := context.Background()
	now := time.Now()

	today := models.Food{Name: "Today", MealType: "lunch", UserID: 1, Date: now}
	lateYesterday := models.Food{Name: "Yesterday", MealType: "dinner", UserID: 1, Date: now.AddDate(0, 0, -1)}
	for _, f := range []*models.Food{&today, &lateYesterday} {
		if err := store.CreateFood(ctx, f); err != nil {
			t.Fatalf("create: %v", err)
		}
	}

	foods, err := store.GetFoodsByDate(ctx, now, 0, 1)
	if err != nil {
		t.Fatalf("by date: %v", err)
	}
	if len(foods) != 1 || foods[0].Name != "Today" {
		t.Fatalf("expected only today's record, got %+v", foods)
	}
}

func TestMemStoreTenantFilters(t *testing.T) {
	t.Parallel()

	store := storage.NewMemStore()
	ctx := context.Background()
	now := time.Now()

	mine := models.Food{Name: "Mine", MealType: "lunch", GymID: 1, UserID: 1, Date: now}
	theirs := models.Food{Name: "Theirs", MealType: "lunch", GymID: 1, UserID: 2, Date: now}
	otherGym := models.Food{Name: "OtherGym", MealType: "lunch", GymID: 2, UserID: 1, Date: now}
	for _, f := range []*models.Food{&mine, &theirs, &otherGym} {
		if err := store.CreateFood(ctx, f); err != nil {
			t.Fatalf("create: %v", err)
		}
	}

	foods, err := store.GetFoodsByDate(ctx, now, 1, 1)
	if err != nil {
		t.Fatalf("by date: %v", err)
	}
	if len(foods) != 1 || foods[0].Name != "Mine" {
		t.Fatalf("tenant filter failed: %+v", foods)
	}

	// Zero means no filter.
	all, err := store.GetFoodsByDate(ctx, now, 0, 0)
	if err != nil {
		t.Fatalf("by date: %v", err)
	}
	if len(all) != 3 {
		t.Fatalf("expected all 3 records, got %d", len(all))
	}
}

func TestMemStoreRecentFoodsOrderAndLimit(t *testing.T) {
	t.Parallel()

	store := storage.NewMemStore()
	ctx := context.Background()
	base := time.Now().Add(-time.Hour)

	for i := 0; i < 7; i++ {
		f := models.Food{Name: string(rune('A' + i)), MealType: "snack", UserID: 1, Date: base.Add(time.Duration(i) * time.Minute)}
		if err := store.CreateFood(ctx, &f); err != nil {
			t.Fatalf("create: %v", err)
		}
	}

	recent, err := store.GetRecentFoods(ctx, 5, 0, 1)
	if err != nil {
		t.Fatalf("recent: %v", err)
	}
	if len(recent) != 5 {
		t.Fatalf("expected 5, got %d", len(recent))
	}
	if recent[0].Name != "G" || recent[4].Name != "C" {
		t.Fatalf("unexpected order: %+v", recent)
	}
}

func TestMemStoreUpdateMergePersists(t *testing.T) {
	t.Parallel()

	store := storage.NewMemStore()
	ctx := context.Background()

	food := models.Food{Name: "Before", MealType: "lunch", Calories: 100, Date: time.Now()}
	if err := store.CreateFood(ctx, &food); err != nil {
		t.Fatalf("create: %v", err)
	}
	food.Name = "After"
	food.Calories = 250
	if err := store.UpdateFood(ctx, &food); err != nil {
		t.Fatalf("update: %v", err)
	}

	got, err := store.GetFood(ctx, food.ID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got.Name != "After" || got.Calories != 250 {
		t.Fatalf("update not persisted: %+v", got)
	}
}
