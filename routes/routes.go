package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/fonuzi/NutriTrack/controllers"
	"github.com/fonuzi/NutriTrack/middlewares"
)

// Controllers bundles everything the router mounts.
type Controllers struct {
	Analysis *controllers.AnalysisController
	Food     *controllers.FoodController
	Activity *controllers.ActivityController
	Weight   *controllers.WeightController
	Settings *controllers.SettingsController
	Gym      *controllers.GymController
	Realtime *controllers.RealtimeController
}

func SetupRouter(ctrl Controllers) *gin.Engine {
	r := gin.Default()
	r.Use(middlewares.CORSMiddleware())

	api := r.Group("/api")
	{
		api.POST("/analyze-food", ctrl.Analysis.AnalyzeFood)

		api.GET("/food/:id", ctrl.Food.GetFood)
		api.POST("/food", ctrl.Food.CreateFood)
		api.PUT("/food/:id", ctrl.Food.UpdateFood)
		api.DELETE("/food/:id", ctrl.Food.DeleteFood)
		api.GET("/foods/date", ctrl.Food.GetFoodsByDate)
		api.GET("/foods/recent", ctrl.Food.GetRecentFoods)
		api.GET("/summary/daily", ctrl.Food.DailySummary)

		api.GET("/activity/:id", ctrl.Activity.GetActivity)
		api.POST("/activity", ctrl.Activity.CreateActivity)
		api.PUT("/activity/:id", ctrl.Activity.UpdateActivity)
		api.GET("/activities/range", ctrl.Activity.GetActivitiesByRange)
		api.POST("/activities/steps", ctrl.Activity.UpdateSteps)
		api.GET("/activities/stats", ctrl.Activity.StepsStats)

		api.GET("/weight/:id", ctrl.Weight.GetWeight)
		api.POST("/weight", ctrl.Weight.CreateWeight)
		api.GET("/weights/range", ctrl.Weight.GetWeightsByRange)

		api.GET("/settings/:userId", ctrl.Settings.GetSettings)
		api.PUT("/settings/:userId", ctrl.Settings.UpdateSettings)
		api.POST("/settings", ctrl.Settings.CreateSettings)

		api.GET("/gym/:id", ctrl.Gym.GetGym)
		api.PUT("/gym/:id", ctrl.Gym.UpdateGym)
		api.POST("/gym", ctrl.Gym.CreateGym)

		api.GET("/ws", ctrl.Realtime.SummaryWS)
	}

	return r
}
