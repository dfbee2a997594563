package entity

import "time"

// ShiftSlot is a recurring weekly time window with bounded seat capacity.
// Occupancy for a concrete date is derived from non-cancelled appointments,
// never stored on the slot.
type ShiftSlot struct {
	ID         uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	ScheduleID uint      `gorm:"not null;index" json:"schedule_id"`
	StartTime  string    `gorm:"type:time;not null" json:"start_time"`
	EndTime    string    `gorm:"type:time;not null" json:"end_time"`
	Capacity   int       `gorm:"not null" json:"capacity"`
	CreatedAt  time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt  time.Time `gorm:"autoUpdateTime" json:"updated_at"`

	// Relationships
	Schedule     WeekdaySchedule `gorm:"foreignKey:ScheduleID" json:"schedule,omitempty"`
	Appointments []Appointment   `gorm:"foreignKey:SlotID" json:"appointments,omitempty"`
}

func (ShiftSlot) TableName() string {
	return "shift_slots"
}
