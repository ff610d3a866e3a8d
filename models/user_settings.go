package models

// UserSettings holds each user's goals and app preferences.
type UserSettings struct {
	ID                   uint   `gorm:"primaryKey" json:"id"`
	CalorieGoal          int    `gorm:"not null;default:2000" json:"calorieGoal"`
	ProteinGoal          int    `gorm:"not null;default:100" json:"proteinGoal"`
	CarbsGoal            int    `gorm:"not null;default:250" json:"carbsGoal"`
	FatGoal              int    `gorm:"not null;default:70" json:"fatGoal"`
	StepsGoal            int    `gorm:"not null;default:10000" json:"stepsGoal"`
	WaterGoal            int    `gorm:"not null;default:2500" json:"waterGoal"` // ml
	PreferredUnits       string `gorm:"not null;default:'imperial'" json:"preferredUnits"`
	NotificationsEnabled bool   `gorm:"not null;default:true" json:"notificationsEnabled"`
	HealthKitEnabled     bool   `gorm:"not null;default:true" json:"healthKitEnabled"`
	DataBackupEnabled    bool   `gorm:"not null;default:false" json:"dataBackupEnabled"`
	GymID                uint   `gorm:"index" json:"gymId"`
	UserID               uint   `gorm:"index" json:"userId"`
}

// DefaultUserSettings returns the goal set used before a user has saved any.
func DefaultUserSettings(userID uint) UserSettings {
	return UserSettings{
		CalorieGoal:          2000,
		ProteinGoal:          100,
		CarbsGoal:            250,
		FatGoal:              70,
		StepsGoal:            10000,
		WaterGoal:            2500,
		PreferredUnits:       "imperial",
		NotificationsEnabled: true,
		HealthKitEnabled:     true,
		UserID:               userID,
	}
}
