package repository

import (
	"errors"

	"medibook/internal/domain/entity"
	domainRepo "medibook/internal/domain/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type shiftSlotRepository struct{}

func NewShiftSlotRepository() domainRepo.ShiftSlotRepository {
	return &shiftSlotRepository{}
}

func (r *shiftSlotRepository) FindOrCreateSchedule(db *gorm.DB, doctorID uuid.UUID, weekday string) (*entity.WeekdaySchedule, error) {
	var schedule entity.WeekdaySchedule
	err := db.Where("doctor_id = ? AND weekday = ?", doctorID, weekday).
		Order("id ASC").
		First(&schedule).Error
	if err == nil {
		return &schedule, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	schedule = entity.WeekdaySchedule{DoctorID: doctorID, Weekday: weekday}
	if err := db.Create(&schedule).Error; err != nil {
		return nil, err
	}
	return &schedule, nil
}

func (r *shiftSlotRepository) CreateSlot(db *gorm.DB, slot *entity.ShiftSlot) error {
	return db.Create(slot).Error
}

func (r *shiftSlotRepository) FindSlotByID(db *gorm.DB, id uint) (*entity.ShiftSlot, error) {
	var slot entity.ShiftSlot
	err := db.Preload("Schedule").Where("id = ?", id).First(&slot).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &slot, nil
}

func (r *shiftSlotRepository) FindSlotsByDoctorAndWeekday(db *gorm.DB, doctorID uuid.UUID, weekday string) ([]entity.ShiftSlot, error) {
	var slots []entity.ShiftSlot
	err := db.
		Joins("JOIN weekday_schedules ON weekday_schedules.id = shift_slots.schedule_id").
		Where("weekday_schedules.doctor_id = ? AND weekday_schedules.weekday = ?", doctorID, weekday).
		Order("shift_slots.start_time ASC").
		Preload("Schedule").
		Find(&slots).Error
	if err != nil {
		return nil, err
	}
	return slots, nil
}

func (r *shiftSlotRepository) FindSlotsByDoctor(db *gorm.DB, doctorID uuid.UUID) ([]entity.ShiftSlot, error) {
	var slots []entity.ShiftSlot
	err := db.
		Joins("JOIN weekday_schedules ON weekday_schedules.id = shift_slots.schedule_id").
		Where("weekday_schedules.doctor_id = ?", doctorID).
		Order("weekday_schedules.weekday ASC, shift_slots.start_time ASC").
		Preload("Schedule").
		Find(&slots).Error
	if err != nil {
		return nil, err
	}
	return slots, nil
}

func (r *shiftSlotRepository) DeleteSlot(db *gorm.DB, id uint) (int64, error) {
	result := db.Where("id = ?", id).Delete(&entity.ShiftSlot{})
	return result.RowsAffected, result.Error
}
