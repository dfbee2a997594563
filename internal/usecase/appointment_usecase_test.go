package usecase

import (
	"testing"
	"time"

	"medibook/internal/delivery/dto"
	"medibook/internal/domain/entity"
	"medibook/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newAppointmentUsecase(db *gorm.DB) AppointmentUsecase {
	return NewAppointmentUsecase(db, newTestLogger(), repository.NewAppointmentRepository(), repository.NewShiftSlotRepository(), newTestAuditService(db))
}

func TestBookUntilFullThenCancelFreesSeat(t *testing.T) {
	db := newTestDB(t)
	uc := newAppointmentUsecase(db)
	doctorID := seedDoctor(t, db, "capacity@clinic.test")
	slot := seedSlot(t, db, doctorID, entity.WeekdayMonday, "09:00", "12:00", 2)
	date := nextWeekday(entity.WeekdayMonday).Format("2006-01-02")

	patientA := seedPatient(t, db, "a@mail.test")
	patientB := seedPatient(t, db, "b@mail.test")
	patientC := seedPatient(t, db, "c@mail.test")

	req := &dto.BookAppointmentRequest{DoctorID: doctorID, SlotID: slot.ID, Date: date}

	first, err := uc.Book(testCtx(), patientA, req)
	require.NoError(t, err)
	assert.Equal(t, string(entity.AppointmentStatusPending), first.Status)
	assert.False(t, first.Paid)
	assert.NotEmpty(t, first.BookingCode)

	_, err = uc.Book(testCtx(), patientB, req)
	require.NoError(t, err)

	// Third booking exceeds capacity 2.
	_, err = uc.Book(testCtx(), patientC, req)
	assert.ErrorIs(t, err, ErrSlotFull)

	// Cancelling one frees exactly one seat.
	cancelled, err := uc.Cancel(testCtx(), patientA, first.ID)
	require.NoError(t, err)
	assert.Equal(t, string(entity.AppointmentStatusCancelled), cancelled.Status)

	_, err = uc.Book(testCtx(), patientC, req)
	require.NoError(t, err)

	// And the slot is full again.
	patientD := seedPatient(t, db, "d@mail.test")
	_, err = uc.Book(testCtx(), patientD, req)
	assert.ErrorIs(t, err, ErrSlotFull)
}

func TestBookWeekdayMismatch(t *testing.T) {
	db := newTestDB(t)
	uc := newAppointmentUsecase(db)
	doctorID := seedDoctor(t, db, "weekday@clinic.test")
	slot := seedSlot(t, db, doctorID, entity.WeekdayMonday, "09:00", "12:00", 2)
	patientID := seedPatient(t, db, "pw@mail.test")

	tuesday := nextWeekday(entity.WeekdayTuesday).Format("2006-01-02")
	_, err := uc.Book(testCtx(), patientID, &dto.BookAppointmentRequest{
		DoctorID: doctorID,
		SlotID:   slot.ID,
		Date:     tuesday,
	})
	assert.ErrorIs(t, err, ErrWeekdayMismatch)
}

func TestBookPastDate(t *testing.T) {
	db := newTestDB(t)
	uc := newAppointmentUsecase(db)
	doctorID := seedDoctor(t, db, "past@clinic.test")
	slot := seedSlot(t, db, doctorID, entity.WeekdayMonday, "09:00", "12:00", 2)
	patientID := seedPatient(t, db, "pp@mail.test")

	past := time.Now().UTC().AddDate(0, 0, -14)
	for entity.WeekdayFromDate(past) != entity.WeekdayMonday {
		past = past.AddDate(0, 0, -1)
	}

	_, err := uc.Book(testCtx(), patientID, &dto.BookAppointmentRequest{
		DoctorID: doctorID,
		SlotID:   slot.ID,
		Date:     past.Format("2006-01-02"),
	})
	assert.ErrorIs(t, err, ErrPastDate)
}

func TestBookUnknownSlot(t *testing.T) {
	db := newTestDB(t)
	uc := newAppointmentUsecase(db)
	doctorID := seedDoctor(t, db, "noslot@clinic.test")
	patientID := seedPatient(t, db, "pn@mail.test")

	_, err := uc.Book(testCtx(), patientID, &dto.BookAppointmentRequest{
		DoctorID: doctorID,
		SlotID:   9999,
		Date:     nextWeekday(entity.WeekdayMonday).Format("2006-01-02"),
	})
	assert.ErrorIs(t, err, ErrSlotNotFound)

	// An unknown slot wins over a past date.
	_, err = uc.Book(testCtx(), patientID, &dto.BookAppointmentRequest{
		DoctorID: doctorID,
		SlotID:   9999,
		Date:     "2020-01-06",
	})
	assert.ErrorIs(t, err, ErrSlotNotFound)
}

func TestBookSlotOfAnotherDoctor(t *testing.T) {
	db := newTestDB(t)
	uc := newAppointmentUsecase(db)
	owner := seedDoctor(t, db, "slotowner@clinic.test")
	other := seedDoctor(t, db, "notowner@clinic.test")
	slot := seedSlot(t, db, owner, entity.WeekdayMonday, "09:00", "12:00", 2)
	patientID := seedPatient(t, db, "po@mail.test")

	_, err := uc.Book(testCtx(), patientID, &dto.BookAppointmentRequest{
		DoctorID: other,
		SlotID:   slot.ID,
		Date:     nextWeekday(entity.WeekdayMonday).Format("2006-01-02"),
	})
	assert.ErrorIs(t, err, ErrSlotNotFound)
}

func TestCancelAlreadyCancelled(t *testing.T) {
	db := newTestDB(t)
	uc := newAppointmentUsecase(db)
	doctorID := seedDoctor(t, db, "cancel@clinic.test")
	slot := seedSlot(t, db, doctorID, entity.WeekdayMonday, "09:00", "12:00", 2)
	patientID := seedPatient(t, db, "pc@mail.test")

	booked, err := uc.Book(testCtx(), patientID, &dto.BookAppointmentRequest{
		DoctorID: doctorID,
		SlotID:   slot.ID,
		Date:     nextWeekday(entity.WeekdayMonday).Format("2006-01-02"),
	})
	require.NoError(t, err)

	_, err = uc.Cancel(testCtx(), patientID, booked.ID)
	require.NoError(t, err)

	_, err = uc.Cancel(testCtx(), patientID, booked.ID)
	assert.ErrorIs(t, err, ErrAlreadyCancelled)
}

func TestCancelRollsBackWhenAuditWriteFails(t *testing.T) {
	db := newTestDB(t)
	uc := newAppointmentUsecase(db)
	doctorID := seedDoctor(t, db, "audit@clinic.test")
	slot := seedSlot(t, db, doctorID, entity.WeekdayMonday, "09:00", "12:00", 2)
	patientID := seedPatient(t, db, "pa@mail.test")

	booked, err := uc.Book(testCtx(), patientID, &dto.BookAppointmentRequest{
		DoctorID: doctorID,
		SlotID:   slot.ID,
		Date:     nextWeekday(entity.WeekdayMonday).Format("2006-01-02"),
	})
	require.NoError(t, err)

	// With the audit table gone every trail insert fails, and the status
	// change must fail with it.
	require.NoError(t, db.Migrator().DropTable(&entity.AuditLog{}))

	_, err = uc.Cancel(testCtx(), patientID, booked.ID)
	require.Error(t, err)

	var stored entity.Appointment
	require.NoError(t, db.First(&stored, "id = ?", booked.ID).Error)
	assert.Equal(t, entity.AppointmentStatusPending, stored.Status)
}

func TestCancelForeignAppointment(t *testing.T) {
	db := newTestDB(t)
	uc := newAppointmentUsecase(db)
	doctorID := seedDoctor(t, db, "foreign@clinic.test")
	slot := seedSlot(t, db, doctorID, entity.WeekdayMonday, "09:00", "12:00", 2)
	owner := seedPatient(t, db, "mine@mail.test")
	intruder := seedPatient(t, db, "yours@mail.test")

	booked, err := uc.Book(testCtx(), owner, &dto.BookAppointmentRequest{
		DoctorID: doctorID,
		SlotID:   slot.ID,
		Date:     nextWeekday(entity.WeekdayMonday).Format("2006-01-02"),
	})
	require.NoError(t, err)

	_, err = uc.Cancel(testCtx(), intruder, booked.ID)
	assert.ErrorIs(t, err, ErrAppointmentNotFound)
}

func TestSetStatusTransitions(t *testing.T) {
	db := newTestDB(t)
	uc := newAppointmentUsecase(db)
	doctorID := seedDoctor(t, db, "status@clinic.test")
	slot := seedSlot(t, db, doctorID, entity.WeekdayMonday, "09:00", "12:00", 2)
	patientID := seedPatient(t, db, "ps@mail.test")

	booked, err := uc.Book(testCtx(), patientID, &dto.BookAppointmentRequest{
		DoctorID: doctorID,
		SlotID:   slot.ID,
		Date:     nextWeekday(entity.WeekdayMonday).Format("2006-01-02"),
	})
	require.NoError(t, err)

	// pending -> completed skips confirmation and is rejected.
	_, err = uc.SetStatus(testCtx(), doctorID, booked.ID, string(entity.AppointmentStatusCompleted))
	assert.ErrorIs(t, err, ErrInvalidTransition)

	confirmed, err := uc.SetStatus(testCtx(), doctorID, booked.ID, string(entity.AppointmentStatusConfirmed))
	require.NoError(t, err)
	assert.Equal(t, string(entity.AppointmentStatusConfirmed), confirmed.Status)

	completed, err := uc.SetStatus(testCtx(), doctorID, booked.ID, string(entity.AppointmentStatusCompleted))
	require.NoError(t, err)
	assert.Equal(t, string(entity.AppointmentStatusCompleted), completed.Status)

	// completed is terminal.
	_, err = uc.SetStatus(testCtx(), doctorID, booked.ID, string(entity.AppointmentStatusCancelled))
	assert.ErrorIs(t, err, ErrInvalidTransition)

	_, err = uc.SetStatus(testCtx(), doctorID, booked.ID, "nonsense")
	assert.ErrorIs(t, err, ErrInvalidStatus)
}

func TestSetStatusWrongDoctor(t *testing.T) {
	db := newTestDB(t)
	uc := newAppointmentUsecase(db)
	doctorID := seedDoctor(t, db, "right@clinic.test")
	stranger := seedDoctor(t, db, "wrong@clinic.test")
	slot := seedSlot(t, db, doctorID, entity.WeekdayMonday, "09:00", "12:00", 2)
	patientID := seedPatient(t, db, "pr@mail.test")

	booked, err := uc.Book(testCtx(), patientID, &dto.BookAppointmentRequest{
		DoctorID: doctorID,
		SlotID:   slot.ID,
		Date:     nextWeekday(entity.WeekdayMonday).Format("2006-01-02"),
	})
	require.NoError(t, err)

	_, err = uc.SetStatus(testCtx(), stranger, booked.ID, string(entity.AppointmentStatusConfirmed))
	assert.ErrorIs(t, err, ErrAppointmentNotFound)
}

func TestSetPaidIdempotent(t *testing.T) {
	db := newTestDB(t)
	uc := newAppointmentUsecase(db)
	doctorID := seedDoctor(t, db, "paid@clinic.test")
	slot := seedSlot(t, db, doctorID, entity.WeekdayMonday, "09:00", "12:00", 2)
	patientID := seedPatient(t, db, "pm@mail.test")

	booked, err := uc.Book(testCtx(), patientID, &dto.BookAppointmentRequest{
		DoctorID: doctorID,
		SlotID:   slot.ID,
		Date:     nextWeekday(entity.WeekdayMonday).Format("2006-01-02"),
	})
	require.NoError(t, err)
	assert.False(t, booked.Paid)

	paid, err := uc.SetPaid(testCtx(), doctorID, booked.ID)
	require.NoError(t, err)
	assert.True(t, paid.Paid)

	again, err := uc.SetPaid(testCtx(), doctorID, booked.ID)
	require.NoError(t, err)
	assert.True(t, again.Paid)
}

func TestHistoryFiltersByStatus(t *testing.T) {
	db := newTestDB(t)
	uc := newAppointmentUsecase(db)
	doctorID := seedDoctor(t, db, "history@clinic.test")
	slot := seedSlot(t, db, doctorID, entity.WeekdayMonday, "09:00", "12:00", 3)
	patientID := seedPatient(t, db, "ph@mail.test")
	date := nextWeekday(entity.WeekdayMonday).Format("2006-01-02")

	first, err := uc.Book(testCtx(), patientID, &dto.BookAppointmentRequest{DoctorID: doctorID, SlotID: slot.ID, Date: date})
	require.NoError(t, err)
	_, err = uc.Book(testCtx(), patientID, &dto.BookAppointmentRequest{DoctorID: doctorID, SlotID: slot.ID, Date: date})
	require.NoError(t, err)

	_, err = uc.Cancel(testCtx(), patientID, first.ID)
	require.NoError(t, err)

	all, err := uc.History(testCtx(), patientID, "")
	require.NoError(t, err)
	assert.Equal(t, 2, all.Total)

	cancelled, err := uc.History(testCtx(), patientID, string(entity.AppointmentStatusCancelled))
	require.NoError(t, err)
	assert.Equal(t, 1, cancelled.Total)

	_, err = uc.History(testCtx(), patientID, "bogus")
	assert.ErrorIs(t, err, ErrInvalidStatus)
}

func TestBookingCodeFormat(t *testing.T) {
	date := time.Date(2025, 3, 3, 0, 0, 0, 0, time.UTC)
	code := generateBookingCode(date)
	assert.Regexp(t, `^AP-20250303-[A-Z2-9]{6}$`, code)
}
