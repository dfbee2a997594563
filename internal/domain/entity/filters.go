package entity

import (
	"time"

	"github.com/google/uuid"
)

// DoctorFilter is a domain-level filter for the doctor directory.
// Used by repository layer to avoid coupling with delivery DTOs.
type DoctorFilter struct {
	Name      string // Filter by doctor full name (ILIKE)
	Specialty string // Filter by specialty name (ILIKE)
	Province  string // Filter by city province (ILIKE)
	City      string // Filter by city name (ILIKE)
	Page      int
	Limit     int
}

// ReportFilter selects appointments for a doctor's report.
type ReportFilter struct {
	DoctorID uuid.UUID
	From     time.Time // inclusive
	To       time.Time // inclusive
	Status   AppointmentStatus
}
