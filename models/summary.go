package models

// DailySummary is derived, never persisted: the sum of a user's foods for
// one calendar day plus the configured goals. Water has no write path in
// this slice and stays display-only.
type DailySummary struct {
	Calories     int    `json:"calories"`
	CaloriesGoal int    `json:"caloriesGoal"`
	Protein      int    `json:"protein"`
	ProteinGoal  int    `json:"proteinGoal"`
	Carbs        int    `json:"carbs"`
	CarbsGoal    int    `json:"carbsGoal"`
	Fat          int    `json:"fat"`
	FatGoal      int    `json:"fatGoal"`
	Water        string `json:"water"`     // liters
	WaterGoal    string `json:"waterGoal"` // liters

	// Progress maps each macro to consumed/goal, capped at 1.
	Progress map[string]float64 `json:"progress"`
}
