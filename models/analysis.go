package models

// FoodAnalysisResult is the normalized output of one vision analysis call.
// After coercion every numeric field is finite and >= 0 and Items is never
// nil, regardless of what the upstream model returned.
type FoodAnalysisResult struct {
	Name     string     `json:"name"`
	Calories float64    `json:"calories"`
	Protein  float64    `json:"protein"`
	Carbs    float64    `json:"carbs"`
	Fat      float64    `json:"fat"`
	Items    []FoodItem `json:"items"`
}
