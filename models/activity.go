package models

import "time"

// Activity is one step record per calendar day per user. CaloriesBurned is
// always derived from Steps, never set by a client.
type Activity struct {
	ID             uint      `gorm:"primaryKey" json:"id"`
	Steps          int       `gorm:"not null;default:0" json:"steps"`
	CaloriesBurned int       `gorm:"not null;default:0" json:"caloriesBurned"`
	Date           time.Time `gorm:"index;not null" json:"date"`
	GymID          uint      `gorm:"index" json:"gymId"`
	UserID         uint      `gorm:"index" json:"userId"`
}

// StepsStats is the rolling view over the trailing 7-day window.
type StepsStats struct {
	DailyAverage   int `json:"dailyAverage"`
	Total          int `json:"total"`
	CaloriesBurned int `json:"caloriesBurned"`
}
