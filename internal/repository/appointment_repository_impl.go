package repository

import (
	"errors"
	"fmt"
	"time"

	"medibook/internal/domain/entity"
	domainRepo "medibook/internal/domain/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type appointmentRepository struct{}

func NewAppointmentRepository() domainRepo.AppointmentRepository {
	return &appointmentRepository{}
}

func (r *appointmentRepository) Create(db *gorm.DB, appointment *entity.Appointment) error {
	return db.Create(appointment).Error
}

func (r *appointmentRepository) FindByID(db *gorm.DB, id uuid.UUID) (*entity.Appointment, error) {
	var appointment entity.Appointment
	err := db.
		Preload("Slot.Schedule").
		Preload("Doctor.User").
		Preload("Patient.User").
		Where("id = ?", id).
		First(&appointment).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &appointment, nil
}

func (r *appointmentRepository) FindByPatientID(db *gorm.DB, patientID uuid.UUID, status entity.AppointmentStatus) ([]entity.Appointment, error) {
	query := db.Where("patient_id = ?", patientID)
	if status != "" {
		query = query.Where("status = ?", status)
	}

	var appointments []entity.Appointment
	err := query.
		Preload("Slot").
		Preload("Doctor.User").
		Order("date DESC, created_at DESC").
		Find(&appointments).Error
	if err != nil {
		return nil, err
	}
	return appointments, nil
}

// LockSlotDate takes a Postgres advisory transaction lock keyed on the
// (slot, date) pair. The lock is released automatically at commit/rollback,
// so the count-then-insert sequence inside the booking transaction cannot
// interleave with another booking of the same slot and date. Unrelated
// (slot, date) pairs are not serialized against each other.
func (r *appointmentRepository) LockSlotDate(db *gorm.DB, slotID uint, date time.Time) error {
	// Advisory locks are postgres-only; SQLite (tests) serializes writers.
	if db.Dialector.Name() != "postgres" {
		return nil
	}
	key := fmt.Sprintf("appointments:%d:%s", slotID, date.Format("2006-01-02"))
	return db.Exec("SELECT pg_advisory_xact_lock(hashtext(?))", key).Error
}

func (r *appointmentRepository) CountActive(db *gorm.DB, slotID uint, date time.Time) (int64, error) {
	var count int64
	err := db.Model(&entity.Appointment{}).
		Where("slot_id = ? AND date = ? AND status != ?", slotID, date, entity.AppointmentStatusCancelled).
		Count(&count).Error
	return count, err
}

func (r *appointmentRepository) CountActiveFuture(db *gorm.DB, slotID uint, from time.Time) (int64, error) {
	var count int64
	err := db.Model(&entity.Appointment{}).
		Where("slot_id = ? AND date >= ? AND status != ?", slotID, from, entity.AppointmentStatusCancelled).
		Count(&count).Error
	return count, err
}

func (r *appointmentRepository) UpdateStatus(db *gorm.DB, id uuid.UUID, status entity.AppointmentStatus) error {
	return db.Model(&entity.Appointment{}).
		Where("id = ?", id).
		Update("status", status).Error
}

func (r *appointmentRepository) MarkPaid(db *gorm.DB, id uuid.UUID) error {
	return db.Model(&entity.Appointment{}).
		Where("id = ?", id).
		Update("paid", true).Error
}

func (r *appointmentRepository) FindForReport(db *gorm.DB, filter *entity.ReportFilter) ([]entity.Appointment, error) {
	query := db.
		Joins("JOIN shift_slots ON shift_slots.id = appointments.slot_id").
		Where("appointments.doctor_id = ?", filter.DoctorID).
		Where("appointments.date >= ? AND appointments.date <= ?", filter.From, filter.To)

	if filter.Status != "" {
		query = query.Where("appointments.status = ?", filter.Status)
	}

	var appointments []entity.Appointment
	err := query.
		Preload("Slot").
		Preload("Patient.User").
		Order("appointments.date ASC, shift_slots.start_time ASC").
		Find(&appointments).Error
	if err != nil {
		return nil, err
	}
	return appointments, nil
}
