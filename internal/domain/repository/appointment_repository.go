package repository

import (
	"time"

	"medibook/internal/domain/entity"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type AppointmentRepository interface {
	Create(db *gorm.DB, appointment *entity.Appointment) error
	FindByID(db *gorm.DB, id uuid.UUID) (*entity.Appointment, error)
	FindByPatientID(db *gorm.DB, patientID uuid.UUID, status entity.AppointmentStatus) ([]entity.Appointment, error)
	// LockSlotDate serializes concurrent bookings on the same (slot, date)
	// pair. Must be called inside a transaction before CountActive.
	LockSlotDate(db *gorm.DB, slotID uint, date time.Time) error
	// CountActive returns the number of non-cancelled appointments for a
	// (slot, date) pair.
	CountActive(db *gorm.DB, slotID uint, date time.Time) (int64, error)
	// CountActiveFuture returns the number of non-cancelled appointments
	// referencing the slot on date from or later.
	CountActiveFuture(db *gorm.DB, slotID uint, from time.Time) (int64, error)
	UpdateStatus(db *gorm.DB, id uuid.UUID, status entity.AppointmentStatus) error
	MarkPaid(db *gorm.DB, id uuid.UUID) error
	// FindForReport returns a doctor's appointments in an inclusive date
	// range, ordered by date then slot start time.
	FindForReport(db *gorm.DB, filter *entity.ReportFilter) ([]entity.Appointment, error)
}
