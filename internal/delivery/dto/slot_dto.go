package dto

import "time"

// Request DTOs

type DefineSlotRequest struct {
	Weekday   string `json:"weekday" validate:"required,oneof=monday tuesday wednesday thursday friday saturday sunday"`
	StartTime string `json:"start_time" validate:"required"` // Format: HH:MM
	EndTime   string `json:"end_time" validate:"required"`   // Format: HH:MM
	Capacity  int    `json:"capacity" validate:"required"`
}

// Response DTOs

type SlotResponse struct {
	ID         uint      `json:"id"`
	ScheduleID uint      `json:"schedule_id"`
	Weekday    string    `json:"weekday,omitempty"`
	StartTime  string    `json:"start_time"`
	EndTime    string    `json:"end_time"`
	Capacity   int       `json:"capacity"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

type SlotListResponse struct {
	Slots []SlotResponse `json:"slots"`
	Total int            `json:"total"`
}

// AvailabilityResponse reports free_capacity as capacity minus the live
// non-cancelled count; bookable further requires a future on-schedule date.
type AvailabilityResponse struct {
	SlotID       uint   `json:"slot_id"`
	Date         string `json:"date"`
	Bookable     bool   `json:"bookable"`
	Capacity     int    `json:"capacity"`
	FreeCapacity int    `json:"free_capacity"`
}
