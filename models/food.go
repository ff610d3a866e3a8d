package models

import (
	"time"

	"gorm.io/datatypes"
)

// FoodItem is one identified component of a meal. Items are informational;
// the top-level macro fields on Food stay authoritative.
type FoodItem struct {
	Name     string `json:"name"`
	Amount   string `json:"amount"` // free-text portion, e.g. "1 cup"
	Calories int    `json:"calories"`
}

// Food is a confirmed, saved meal record.
type Food struct {
	ID       uint                         `gorm:"primaryKey" json:"id"`
	ImageURL string                       `json:"imageUrl"`
	MealType string                       `gorm:"not null" json:"mealType"` // breakfast, lunch, dinner, snack
	Name     string                       `gorm:"not null" json:"name"`
	Calories int                          `gorm:"not null" json:"calories"`
	Protein  int                          `gorm:"not null" json:"protein"`
	Carbs    int                          `gorm:"not null" json:"carbs"`
	Fat      int                          `gorm:"not null" json:"fat"`
	Date     time.Time                    `gorm:"index;not null" json:"date"`
	GymID    uint                         `gorm:"index" json:"gymId"`
	UserID   uint                         `gorm:"index" json:"userId"`
	Items    datatypes.JSONSlice[FoodItem] `json:"items"`
}
