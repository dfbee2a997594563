package usecase

import (
	"context"
	"time"

	"medibook/internal/delivery/dto"
	"medibook/internal/domain/entity"
	"medibook/internal/domain/repository"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// AvailabilityUsecase answers "can this slot take one more booking on that
// date". Read-only and advisory: the answer may be stale by the time a
// booking is attempted, the booking transaction re-checks under lock.
type AvailabilityUsecase interface {
	Check(ctx context.Context, slotID uint, date string) (*dto.AvailabilityResponse, error)
}

type availabilityUsecase struct {
	db              *gorm.DB
	log             *logrus.Logger
	slotRepo        repository.ShiftSlotRepository
	appointmentRepo repository.AppointmentRepository
}

func NewAvailabilityUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	slotRepo repository.ShiftSlotRepository,
	appointmentRepo repository.AppointmentRepository,
) AvailabilityUsecase {
	return &availabilityUsecase{
		db:              db,
		log:             log,
		slotRepo:        slotRepo,
		appointmentRepo: appointmentRepo,
	}
}

func (u *availabilityUsecase) Check(ctx context.Context, slotID uint, date string) (*dto.AvailabilityResponse, error) {
	parsed, err := time.Parse("2006-01-02", date)
	if err != nil {
		return nil, ErrInvalidDateFormat
	}

	db := u.db.WithContext(ctx)

	slot, err := u.slotRepo.FindSlotByID(db, slotID)
	if err != nil {
		u.log.Warnf("Failed to find slot: %+v", err)
		return nil, err
	}
	if slot == nil {
		return nil, ErrSlotNotFound
	}

	booked, err := u.appointmentRepo.CountActive(db, slot.ID, parsed)
	if err != nil {
		u.log.Warnf("Failed to count appointments: %+v", err)
		return nil, err
	}

	// Free capacity is derived from the ledger alone; bookable additionally
	// requires a future date on the schedule's weekday.
	free := slot.Capacity - int(booked)
	if free < 0 {
		free = 0
	}

	today := time.Now().Truncate(24 * time.Hour)
	bookable := free > 0 &&
		!parsed.Before(today) &&
		entity.WeekdayFromDate(parsed) == slot.Schedule.Weekday

	return &dto.AvailabilityResponse{
		SlotID:       slot.ID,
		Date:         date,
		Capacity:     slot.Capacity,
		FreeCapacity: free,
		Bookable:     bookable,
	}, nil
}
