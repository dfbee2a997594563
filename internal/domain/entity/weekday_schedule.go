package entity

import (
	"time"

	"github.com/google/uuid"
)

// Weekday labels stored on schedules. Lowercase English names, matching
// time.Weekday via WeekdayFromDate.
const (
	WeekdayMonday    = "monday"
	WeekdayTuesday   = "tuesday"
	WeekdayWednesday = "wednesday"
	WeekdayThursday  = "thursday"
	WeekdayFriday    = "friday"
	WeekdaySaturday  = "saturday"
	WeekdaySunday    = "sunday"
)

var weekdayNames = map[time.Weekday]string{
	time.Monday:    WeekdayMonday,
	time.Tuesday:   WeekdayTuesday,
	time.Wednesday: WeekdayWednesday,
	time.Thursday:  WeekdayThursday,
	time.Friday:    WeekdayFriday,
	time.Saturday:  WeekdaySaturday,
	time.Sunday:    WeekdaySunday,
}

// WeekdayFromDate returns the weekday label for a calendar date.
func WeekdayFromDate(date time.Time) string {
	return weekdayNames[date.Weekday()]
}

// IsValidWeekday reports whether s is one of the seven weekday labels.
func IsValidWeekday(s string) bool {
	for _, name := range weekdayNames {
		if name == s {
			return true
		}
	}
	return false
}

// WeekdaySchedule groups the shift slots a doctor offers on one weekday.
// A doctor may have multiple schedules for the same weekday; their slots
// are additive capacity for that day.
type WeekdaySchedule struct {
	ID        uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	DoctorID  uuid.UUID `gorm:"type:uuid;not null;index" json:"doctor_id"`
	Weekday   string    `gorm:"type:varchar(10);not null;index" json:"weekday"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`

	// Relationships
	Doctor DoctorProfile `gorm:"foreignKey:DoctorID;references:UserID" json:"doctor,omitempty"`
	Slots  []ShiftSlot   `gorm:"foreignKey:ScheduleID" json:"slots,omitempty"`
}

func (WeekdaySchedule) TableName() string {
	return "weekday_schedules"
}
