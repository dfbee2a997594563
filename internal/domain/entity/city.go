package entity

import "time"

// City represents a province/city pair where doctors practice.
type City struct {
	ID        uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	Province  string    `gorm:"type:varchar(60);not null;index" json:"province"`
	City      string    `gorm:"type:varchar(60)" json:"city,omitempty"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (City) TableName() string {
	return "cities"
}
