package services

import (
	"math"
	"strconv"

	"github.com/fonuzi/NutriTrack/models"
)

// Placeholders substituted when the model omits a field.
const (
	unknownFood   = "Unknown Food"
	unknownItem   = "Unknown Item"
	unknownAmount = "Unknown Amount"
)

// CoerceAnalysis converts the raw, possibly malformed JSON object returned
// by the vision model into a fully populated FoodAnalysisResult. It is a
// total function: whatever the upstream sent, the worst case is a result of
// zeros and placeholders, never an error.
func CoerceAnalysis(raw map[string]any) *models.FoodAnalysisResult {
	result := &models.FoodAnalysisResult{
		Name:     coerceString(raw["name"], unknownFood),
		Calories: coerceNumber(raw["calories"]),
		Protein:  coerceNumber(raw["protein"]),
		Carbs:    coerceNumber(raw["carbs"]),
		Fat:      coerceNumber(raw["fat"]),
		Items:    []models.FoodItem{},
	}

	items, ok := raw["items"].([]any)
	if !ok {
		return result
	}
	for _, entry := range items {
		item, _ := entry.(map[string]any)
		result.Items = append(result.Items, models.FoodItem{
			Name:     coerceString(item["name"], unknownItem),
			Amount:   coerceString(item["amount"], unknownAmount),
			Calories: int(coerceNumber(item["calories"])),
		})
	}
	return result
}

func coerceString(v any, fallback string) string {
	if s, ok := v.(string); ok && s != "" {
		return s
	}
	return fallback
}

// coerceNumber accepts JSON numbers and numeric strings; everything else,
// along with NaN, infinities and negatives, collapses to 0.
func coerceNumber(v any) float64 {
	var n float64
	switch t := v.(type) {
	case float64:
		n = t
	case int:
		n = float64(t)
	case string:
		parsed, err := strconv.ParseFloat(t, 64)
		if err != nil {
			return 0
		}
		n = parsed
	default:
		return 0
	}
	if math.IsNaN(n) || math.IsInf(n, 0) || n < 0 {
		return 0
	}
	return n
}
