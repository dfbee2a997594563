package repository

import (
	"medibook/internal/domain/entity"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ShiftSlotRepository interface {
	// FindOrCreateSchedule returns the first weekday schedule a doctor has
	// for the given weekday, creating one if none exists yet.
	FindOrCreateSchedule(db *gorm.DB, doctorID uuid.UUID, weekday string) (*entity.WeekdaySchedule, error)
	CreateSlot(db *gorm.DB, slot *entity.ShiftSlot) error
	// FindSlotByID loads a slot with its schedule, or nil if absent.
	FindSlotByID(db *gorm.DB, id uint) (*entity.ShiftSlot, error)
	// FindSlotsByDoctorAndWeekday returns all slots across the doctor's
	// schedules for that weekday, ordered by start time ascending.
	FindSlotsByDoctorAndWeekday(db *gorm.DB, doctorID uuid.UUID, weekday string) ([]entity.ShiftSlot, error)
	FindSlotsByDoctor(db *gorm.DB, doctorID uuid.UUID) ([]entity.ShiftSlot, error)
	DeleteSlot(db *gorm.DB, id uint) (int64, error)
}
