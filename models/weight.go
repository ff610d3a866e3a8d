package models

import "time"

type Weight struct {
	ID     uint      `gorm:"primaryKey" json:"id"`
	Weight int       `gorm:"not null" json:"weight"` // grams, for precision
	Date   time.Time `gorm:"index;not null" json:"date"`
	GymID  uint      `gorm:"index" json:"gymId"`
	UserID uint      `gorm:"index" json:"userId"`
}
