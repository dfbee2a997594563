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

func newAvailabilityUsecase(db *gorm.DB) AvailabilityUsecase {
	return NewAvailabilityUsecase(db, newTestLogger(), repository.NewShiftSlotRepository(), repository.NewAppointmentRepository())
}

func TestAvailabilityReflectsBookingsAndCancellations(t *testing.T) {
	db := newTestDB(t)
	availability := newAvailabilityUsecase(db)
	ledger := newAppointmentUsecase(db)

	doctorID := seedDoctor(t, db, "avail@clinic.test")
	slot := seedSlot(t, db, doctorID, entity.WeekdayMonday, "09:00", "12:00", 2)
	date := nextWeekday(entity.WeekdayMonday).Format("2006-01-02")
	patientID := seedPatient(t, db, "pa@mail.test")

	check, err := availability.Check(testCtx(), slot.ID, date)
	require.NoError(t, err)
	assert.True(t, check.Bookable)
	assert.Equal(t, 2, check.Capacity)
	assert.Equal(t, 2, check.FreeCapacity)

	booked, err := ledger.Book(testCtx(), patientID, &dto.BookAppointmentRequest{DoctorID: doctorID, SlotID: slot.ID, Date: date})
	require.NoError(t, err)

	check, err = availability.Check(testCtx(), slot.ID, date)
	require.NoError(t, err)
	assert.True(t, check.Bookable)
	assert.Equal(t, 1, check.FreeCapacity)

	patientB := seedPatient(t, db, "pb@mail.test")
	_, err = ledger.Book(testCtx(), patientB, &dto.BookAppointmentRequest{DoctorID: doctorID, SlotID: slot.ID, Date: date})
	require.NoError(t, err)

	check, err = availability.Check(testCtx(), slot.ID, date)
	require.NoError(t, err)
	assert.False(t, check.Bookable)
	assert.Equal(t, 0, check.FreeCapacity)

	// Cancellation restores one seat; nothing is stored, the count is live.
	_, err = ledger.Cancel(testCtx(), patientID, booked.ID)
	require.NoError(t, err)

	check, err = availability.Check(testCtx(), slot.ID, date)
	require.NoError(t, err)
	assert.True(t, check.Bookable)
	assert.Equal(t, 1, check.FreeCapacity)
}

func TestAvailabilityWrongWeekdayNotBookable(t *testing.T) {
	db := newTestDB(t)
	availability := newAvailabilityUsecase(db)

	doctorID := seedDoctor(t, db, "availwd@clinic.test")
	slot := seedSlot(t, db, doctorID, entity.WeekdayMonday, "09:00", "12:00", 2)
	tuesday := nextWeekday(entity.WeekdayTuesday).Format("2006-01-02")

	check, err := availability.Check(testCtx(), slot.ID, tuesday)
	require.NoError(t, err)
	assert.False(t, check.Bookable)
	// Free capacity stays the plain ledger count even off-schedule.
	assert.Equal(t, 2, check.FreeCapacity)
}

func TestAvailabilityPastDateNotBookable(t *testing.T) {
	db := newTestDB(t)
	availability := newAvailabilityUsecase(db)

	doctorID := seedDoctor(t, db, "availpast@clinic.test")
	slot := seedSlot(t, db, doctorID, entity.WeekdayMonday, "09:00", "12:00", 2)

	past := time.Now().UTC().AddDate(0, 0, -14)
	for entity.WeekdayFromDate(past) != entity.WeekdayMonday {
		past = past.AddDate(0, 0, -1)
	}

	check, err := availability.Check(testCtx(), slot.ID, past.Format("2006-01-02"))
	require.NoError(t, err)
	assert.False(t, check.Bookable)
	assert.Equal(t, 2, check.FreeCapacity)
}

func TestAvailabilityUnknownSlot(t *testing.T) {
	db := newTestDB(t)
	availability := newAvailabilityUsecase(db)

	_, err := availability.Check(testCtx(), 424242, nextWeekday(entity.WeekdayMonday).Format("2006-01-02"))
	assert.ErrorIs(t, err, ErrSlotNotFound)
}
