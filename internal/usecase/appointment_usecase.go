package usecase

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
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
	ErrWeekdayMismatch     = errors.New("date does not fall on the slot's weekday")
	ErrPastDate            = errors.New("cannot book a past date")
	ErrSlotFull            = errors.New("slot is fully booked for that date")
	ErrAppointmentNotFound = errors.New("appointment not found")
	ErrAlreadyCancelled    = errors.New("appointment is already cancelled")
	ErrInvalidTransition   = errors.New("status transition not allowed")
	ErrInvalidStatus       = errors.New("unknown appointment status")
)

type AppointmentUsecase interface {
	Book(ctx context.Context, patientID uuid.UUID, req *dto.BookAppointmentRequest) (*dto.AppointmentResponse, error)
	Cancel(ctx context.Context, patientID, appointmentID uuid.UUID) (*dto.AppointmentResponse, error)
	SetStatus(ctx context.Context, doctorID, appointmentID uuid.UUID, status string) (*dto.AppointmentResponse, error)
	SetPaid(ctx context.Context, doctorID, appointmentID uuid.UUID) (*dto.AppointmentResponse, error)
	History(ctx context.Context, patientID uuid.UUID, status string) (*dto.AppointmentListResponse, error)
}

type appointmentUsecase struct {
	db              *gorm.DB
	log             *logrus.Logger
	appointmentRepo repository.AppointmentRepository
	slotRepo        repository.ShiftSlotRepository
	auditService    service.AuditService
}

func NewAppointmentUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	appointmentRepo repository.AppointmentRepository,
	slotRepo repository.ShiftSlotRepository,
	auditService service.AuditService,
) AppointmentUsecase {
	return &appointmentUsecase{
		db:              db,
		log:             log,
		appointmentRepo: appointmentRepo,
		slotRepo:        slotRepo,
		auditService:    auditService,
	}
}

// Book inserts a ledger entry for (patient, slot, date). Capacity is checked
// inside a transaction while holding an advisory lock on the (slot, date)
// pair, so two concurrent bookings for the last seat cannot both succeed.
func (u *appointmentUsecase) Book(ctx context.Context, patientID uuid.UUID, req *dto.BookAppointmentRequest) (*dto.AppointmentResponse, error) {
	date, err := time.Parse("2006-01-02", req.Date)
	if err != nil {
		return nil, ErrInvalidDateFormat
	}

	// The slot is resolved before any date semantics so a bogus slot
	// reports not-found even when the date is also wrong.
	slot, err := u.slotRepo.FindSlotByID(u.db.WithContext(ctx), req.SlotID)
	if err != nil {
		u.log.Warnf("Failed to find slot: %+v", err)
		return nil, err
	}
	if slot == nil || slot.Schedule.DoctorID != req.DoctorID {
		return nil, ErrSlotNotFound
	}
	if entity.WeekdayFromDate(date) != slot.Schedule.Weekday {
		return nil, ErrWeekdayMismatch
	}

	today := time.Now().Truncate(24 * time.Hour)
	if date.Before(today) {
		return nil, ErrPastDate
	}

	var appointment *entity.Appointment
	err = u.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := u.appointmentRepo.LockSlotDate(tx, slot.ID, date); err != nil {
			return err
		}

		booked, err := u.appointmentRepo.CountActive(tx, slot.ID, date)
		if err != nil {
			return err
		}
		if booked >= int64(slot.Capacity) {
			return ErrSlotFull
		}

		appointment = &entity.Appointment{
			PatientID:   patientID,
			DoctorID:    req.DoctorID,
			SlotID:      slot.ID,
			Date:        date,
			Status:      entity.AppointmentStatusPending,
			BookingCode: generateBookingCode(date),
		}
		if err := u.appointmentRepo.Create(tx, appointment); err != nil {
			return err
		}

		return u.auditService.LogCreate(ctx, tx, &patientID, entity.AuditActionAppointmentBook, "appointment", appointment.ID.String(), map[string]interface{}{
			"slot_id":      slot.ID,
			"date":         req.Date,
			"booking_code": appointment.BookingCode,
		})
	})
	if err != nil {
		if errors.Is(err, ErrSlotFull) {
			return nil, ErrSlotFull
		}
		u.log.Warnf("Failed to book appointment: %+v", err)
		return nil, err
	}

	appointment.Slot = *slot
	return converter.AppointmentToResponse(appointment), nil
}

// Cancel releases the seat. Occupancy is derived, so no counter to decrement:
// the next capacity check simply no longer sees this entry.
func (u *appointmentUsecase) Cancel(ctx context.Context, patientID, appointmentID uuid.UUID) (*dto.AppointmentResponse, error) {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	appointment, err := u.appointmentRepo.FindByID(tx, appointmentID)
	if err != nil {
		u.log.Warnf("Failed to find appointment: %+v", err)
		return nil, err
	}
	if appointment == nil || appointment.PatientID != patientID {
		return nil, ErrAppointmentNotFound
	}
	if appointment.IsCancelled() {
		return nil, ErrAlreadyCancelled
	}
	if !appointment.Status.CanTransitionTo(entity.AppointmentStatusCancelled) {
		return nil, ErrInvalidTransition
	}

	if err := u.appointmentRepo.UpdateStatus(tx, appointmentID, entity.AppointmentStatusCancelled); err != nil {
		u.log.Warnf("Failed to cancel appointment: %+v", err)
		return nil, err
	}

	if err := u.auditService.LogUpdate(ctx, tx, &patientID, entity.AuditActionAppointmentCancel, "appointment", appointmentID.String(),
		string(appointment.Status), string(entity.AppointmentStatusCancelled)); err != nil {
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	appointment.Status = entity.AppointmentStatusCancelled
	return converter.AppointmentToResponse(appointment), nil
}

// SetStatus moves an appointment through its lifecycle. Only the owning
// doctor may do this, and only along allowed transitions.
func (u *appointmentUsecase) SetStatus(ctx context.Context, doctorID, appointmentID uuid.UUID, status string) (*dto.AppointmentResponse, error) {
	next := entity.AppointmentStatus(status)
	if !next.IsValid() {
		return nil, ErrInvalidStatus
	}

	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	appointment, err := u.appointmentRepo.FindByID(tx, appointmentID)
	if err != nil {
		u.log.Warnf("Failed to find appointment: %+v", err)
		return nil, err
	}
	if appointment == nil || appointment.DoctorID != doctorID {
		return nil, ErrAppointmentNotFound
	}
	if !appointment.Status.CanTransitionTo(next) {
		return nil, ErrInvalidTransition
	}

	if err := u.appointmentRepo.UpdateStatus(tx, appointmentID, next); err != nil {
		u.log.Warnf("Failed to update appointment status: %+v", err)
		return nil, err
	}

	if err := u.auditService.LogUpdate(ctx, tx, &doctorID, entity.AuditActionAppointmentStatus, "appointment", appointmentID.String(),
		string(appointment.Status), string(next)); err != nil {
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	appointment.Status = next
	return converter.AppointmentToResponse(appointment), nil
}

// SetPaid flags the visit fee as settled. Idempotent.
func (u *appointmentUsecase) SetPaid(ctx context.Context, doctorID, appointmentID uuid.UUID) (*dto.AppointmentResponse, error) {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	appointment, err := u.appointmentRepo.FindByID(tx, appointmentID)
	if err != nil {
		u.log.Warnf("Failed to find appointment: %+v", err)
		return nil, err
	}
	if appointment == nil || appointment.DoctorID != doctorID {
		return nil, ErrAppointmentNotFound
	}

	if !appointment.Paid {
		if err := u.appointmentRepo.MarkPaid(tx, appointmentID); err != nil {
			u.log.Warnf("Failed to mark appointment paid: %+v", err)
			return nil, err
		}
		if err := u.auditService.LogUpdate(ctx, tx, &doctorID, entity.AuditActionAppointmentPaid, "appointment", appointmentID.String(), false, true); err != nil {
			return nil, err
		}
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	appointment.Paid = true
	return converter.AppointmentToResponse(appointment), nil
}

func (u *appointmentUsecase) History(ctx context.Context, patientID uuid.UUID, status string) (*dto.AppointmentListResponse, error) {
	var filter entity.AppointmentStatus
	if status != "" {
		filter = entity.AppointmentStatus(status)
		if !filter.IsValid() {
			return nil, ErrInvalidStatus
		}
	}

	appointments, err := u.appointmentRepo.FindByPatientID(u.db.WithContext(ctx), patientID, filter)
	if err != nil {
		u.log.Warnf("Failed to list appointments: %+v", err)
		return nil, err
	}

	return &dto.AppointmentListResponse{
		Appointments: converter.AppointmentsToResponses(appointments),
		Total:        len(appointments),
	}, nil
}

// generateBookingCode returns a human-readable reference like AP-20250301-4F7K2M.
func generateBookingCode(date time.Time) string {
	const charset = "ABCDEFGHJKLMNPQRSTUVWXYZ23456789"
	suffix := make([]byte, 6)
	for i := range suffix {
		suffix[i] = charset[rand.Intn(len(charset))]
	}
	return fmt.Sprintf("AP-%s-%s", date.Format("20060102"), suffix)
}
