package models

// Gym holds per-gym branding shown in the apps.
type Gym struct {
	ID           uint   `gorm:"primaryKey" json:"id"`
	Name         string `gorm:"not null" json:"name"`
	Logo         string `gorm:"not null" json:"logo"`
	PrimaryColor string `gorm:"not null;default:'#6366F1'" json:"primaryColor"`
	OwnerID      uint   `json:"ownerId"`
}
