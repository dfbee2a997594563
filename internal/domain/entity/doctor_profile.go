package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// DoctorProfile represents doctor-specific profile data
type DoctorProfile struct {
	UserID      uuid.UUID `gorm:"type:uuid;primaryKey" json:"user_id"`
	MedicalCode string    `gorm:"type:varchar(50);uniqueIndex;not null" json:"medical_code"`
	SpecialtyID *uint     `gorm:"index" json:"specialty_id,omitempty"`
	CityID      *uint     `gorm:"index" json:"city_id,omitempty"`
	VisitCost   int64     `gorm:"not null;default:0" json:"visit_cost"`
	Biography   string    `gorm:"type:text" json:"biography,omitempty"`

	// Relationships
	User       User              `gorm:"foreignKey:UserID" json:"user,omitempty"`
	Specialty  *Specialty        `gorm:"foreignKey:SpecialtyID" json:"specialty,omitempty"`
	City       *City             `gorm:"foreignKey:CityID" json:"city,omitempty"`
	Address    *DoctorAddress    `gorm:"foreignKey:DoctorID" json:"address,omitempty"`
	Telephones []Telephone       `gorm:"foreignKey:DoctorID" json:"telephones,omitempty"`
	Schedules  []WeekdaySchedule `gorm:"foreignKey:DoctorID" json:"schedules,omitempty"`
}

func (DoctorProfile) TableName() string {
	return "doctor_profiles"
}

// DoctorAddress holds the practice address of a doctor.
type DoctorAddress struct {
	ID        uint            `gorm:"primaryKey;autoIncrement" json:"id"`
	DoctorID  uuid.UUID       `gorm:"type:uuid;uniqueIndex;not null" json:"doctor_id"`
	Address   string          `gorm:"type:text" json:"address,omitempty"`
	Lat       decimal.Decimal `gorm:"type:decimal(9,6)" json:"lat"`
	Lng       decimal.Decimal `gorm:"type:decimal(9,6)" json:"lng"`
	CreatedAt time.Time       `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time       `gorm:"autoUpdateTime" json:"updated_at"`
}

func (DoctorAddress) TableName() string {
	return "doctor_addresses"
}

// Telephone is a contact number attached to a doctor's practice.
type Telephone struct {
	ID         uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	DoctorID   uuid.UUID `gorm:"type:uuid;not null;index" json:"doctor_id"`
	CallNumber string    `gorm:"type:varchar(20);uniqueIndex;not null" json:"call_number"`
	CreatedAt  time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt  time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (Telephone) TableName() string {
	return "telephones"
}
