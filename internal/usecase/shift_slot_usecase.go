package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"medibook/internal/converter"
	"medibook/internal/delivery/dto"
	"medibook/internal/domain/entity"
	"medibook/internal/domain/repository"
	"medibook/internal/service"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

var (
	ErrInvalidTimeFormat = errors.New("invalid time format, use HH:MM")
	ErrInvalidWeekday    = errors.New("unknown weekday")
	ErrInvalidRange      = errors.New("start time must be before end time")
	ErrInvalidCapacity   = errors.New("capacity must be at least 1")
	ErrSlotNotFound      = errors.New("slot not found")
	ErrSlotInUse         = errors.New("slot has active appointments and cannot be removed")
)

type ShiftSlotUsecase interface {
	DefineSlot(ctx context.Context, doctorID uuid.UUID, req *dto.DefineSlotRequest) (*dto.SlotResponse, error)
	ListSlots(ctx context.Context, doctorID uuid.UUID, weekday string) (*dto.SlotListResponse, error)
	RemoveSlot(ctx context.Context, doctorID uuid.UUID, slotID uint) error
}

type shiftSlotUsecase struct {
	db              *gorm.DB
	log             *logrus.Logger
	slotRepo        repository.ShiftSlotRepository
	appointmentRepo repository.AppointmentRepository
	auditService    service.AuditService
}

func NewShiftSlotUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	slotRepo repository.ShiftSlotRepository,
	appointmentRepo repository.AppointmentRepository,
	auditService service.AuditService,
) ShiftSlotUsecase {
	return &shiftSlotUsecase{
		db:              db,
		log:             log,
		slotRepo:        slotRepo,
		appointmentRepo: appointmentRepo,
		auditService:    auditService,
	}
}

func (u *shiftSlotUsecase) DefineSlot(ctx context.Context, doctorID uuid.UUID, req *dto.DefineSlotRequest) (*dto.SlotResponse, error) {
	start, err := parseClock(req.StartTime)
	if err != nil {
		return nil, ErrInvalidTimeFormat
	}
	end, err := parseClock(req.EndTime)
	if err != nil {
		return nil, ErrInvalidTimeFormat
	}
	if !start.Before(end) {
		return nil, ErrInvalidRange
	}
	if req.Capacity < 1 {
		return nil, ErrInvalidCapacity
	}

	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	schedule, err := u.slotRepo.FindOrCreateSchedule(tx, doctorID, req.Weekday)
	if err != nil {
		u.log.Warnf("Failed to resolve weekday schedule: %+v", err)
		return nil, err
	}

	slot := &entity.ShiftSlot{
		ScheduleID: schedule.ID,
		StartTime:  start.Format("15:04"),
		EndTime:    end.Format("15:04"),
		Capacity:   req.Capacity,
	}

	if err := u.slotRepo.CreateSlot(tx, slot); err != nil {
		u.log.Warnf("Failed to create slot: %+v", err)
		return nil, err
	}

	if err := u.auditService.LogCreate(ctx, tx, &doctorID, entity.AuditActionSlotDefine, "shift_slot", fmt.Sprint(slot.ID), map[string]interface{}{
		"weekday":    req.Weekday,
		"start_time": slot.StartTime,
		"end_time":   slot.EndTime,
		"capacity":   slot.Capacity,
	}); err != nil {
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	slot.Schedule = *schedule
	return converter.SlotToResponse(slot), nil
}

func (u *shiftSlotUsecase) ListSlots(ctx context.Context, doctorID uuid.UUID, weekday string) (*dto.SlotListResponse, error) {
	db := u.db.WithContext(ctx)

	var slots []entity.ShiftSlot
	var err error
	if weekday != "" {
		if !entity.IsValidWeekday(weekday) {
			return nil, ErrInvalidWeekday
		}
		slots, err = u.slotRepo.FindSlotsByDoctorAndWeekday(db, doctorID, weekday)
	} else {
		slots, err = u.slotRepo.FindSlotsByDoctor(db, doctorID)
	}
	if err != nil {
		u.log.Warnf("Failed to list slots: %+v", err)
		return nil, err
	}

	return &dto.SlotListResponse{
		Slots: converter.SlotsToResponses(slots),
		Total: len(slots),
	}, nil
}

func (u *shiftSlotUsecase) RemoveSlot(ctx context.Context, doctorID uuid.UUID, slotID uint) error {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	slot, err := u.slotRepo.FindSlotByID(tx, slotID)
	if err != nil {
		u.log.Warnf("Failed to find slot: %+v", err)
		return err
	}
	if slot == nil || slot.Schedule.DoctorID != doctorID {
		return ErrSlotNotFound
	}

	// Removal is blocked while any future date still carries a live booking.
	today := time.Now().Truncate(24 * time.Hour)
	active, err := u.appointmentRepo.CountActiveFuture(tx, slotID, today)
	if err != nil {
		u.log.Warnf("Failed to count active appointments: %+v", err)
		return err
	}
	if active > 0 {
		return ErrSlotInUse
	}

	deleted, err := u.slotRepo.DeleteSlot(tx, slotID)
	if err != nil {
		u.log.Warnf("Failed to delete slot: %+v", err)
		return err
	}
	if deleted == 0 {
		return ErrSlotNotFound
	}

	if err := u.auditService.LogDelete(ctx, tx, &doctorID, entity.AuditActionSlotRemove, "shift_slot", fmt.Sprint(slotID), map[string]interface{}{
		"weekday":    slot.Schedule.Weekday,
		"start_time": slot.StartTime,
		"end_time":   slot.EndTime,
	}); err != nil {
		return err
	}

	return tx.Commit().Error
}

// parseClock accepts HH:MM wall clock times.
func parseClock(s string) (time.Time, error) {
	return time.Parse("15:04", s)
}
