package main

import (
	"context"
	"log"

	"github.com/fonuzi/NutriTrack/config"
	"github.com/fonuzi/NutriTrack/controllers"
	"github.com/fonuzi/NutriTrack/routes"
	"github.com/fonuzi/NutriTrack/services"
	"github.com/fonuzi/NutriTrack/storage"
	"github.com/fonuzi/NutriTrack/utils"
)

func main() {
	cfg := config.Load()

	var store storage.Store
	if cfg.DatabaseURL != "" {
		gormStore, err := storage.NewGormStore(cfg.DatabaseURL)
		if err != nil {
			log.Fatalf("failed to open database: %v", err)
		}
		store = gormStore
	} else {
		log.Printf("DATABASE_URL not set, using in-memory storage")
		store = storage.NewMemStore()
	}

	var uploader *utils.ImageUploader
	if cfg.S3Bucket != "" {
		up, err := utils.NewImageUploader(context.Background(), cfg.AWSRegion, cfg.S3Bucket, cfg.CloudFrontURL)
		if err != nil {
			log.Fatalf("failed to init S3 uploader: %v", err)
		}
		uploader = up
	}

	vision := services.NewVisionClient(cfg.OpenAIAPIKey)
	vision.BaseURL = cfg.OpenAIBaseURL

	hub := services.NewRealtimeHub()
	diary := services.NewDiaryService(store, hub)
	activity := services.NewActivityService(store, hub)

	r := routes.SetupRouter(routes.Controllers{
		Analysis: controllers.NewAnalysisController(vision),
		Food:     controllers.NewFoodController(store, diary, uploader),
		Activity: controllers.NewActivityController(store, activity),
		Weight:   controllers.NewWeightController(store),
		Settings: controllers.NewSettingsController(store),
		Gym:      controllers.NewGymController(store),
		Realtime: controllers.NewRealtimeController(hub),
	})

	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatalf("server exited: %v", err)
	}
}
