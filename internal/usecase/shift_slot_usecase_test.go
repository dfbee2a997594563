package usecase

import (
	"testing"

	"medibook/internal/delivery/dto"
	"medibook/internal/domain/entity"
	"medibook/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefineSlot(t *testing.T) {
	db := newTestDB(t)
	uc := NewShiftSlotUsecase(db, newTestLogger(), repository.NewShiftSlotRepository(), repository.NewAppointmentRepository(), newTestAuditService(db))
	doctorID := seedDoctor(t, db, "define@clinic.test")

	slot, err := uc.DefineSlot(testCtx(), doctorID, &dto.DefineSlotRequest{
		Weekday:   entity.WeekdayMonday,
		StartTime: "09:00",
		EndTime:   "12:00",
		Capacity:  2,
	})
	require.NoError(t, err)
	assert.NotZero(t, slot.ID)
	assert.Equal(t, "09:00", slot.StartTime)
	assert.Equal(t, "12:00", slot.EndTime)
	assert.Equal(t, 2, slot.Capacity)
	assert.Equal(t, entity.WeekdayMonday, slot.Weekday)
}

func TestDefineSlotValidation(t *testing.T) {
	db := newTestDB(t)
	uc := NewShiftSlotUsecase(db, newTestLogger(), repository.NewShiftSlotRepository(), repository.NewAppointmentRepository(), newTestAuditService(db))
	doctorID := seedDoctor(t, db, "validate@clinic.test")

	cases := []struct {
		name string
		req  dto.DefineSlotRequest
		want error
	}{
		{"start after end", dto.DefineSlotRequest{Weekday: entity.WeekdayMonday, StartTime: "14:00", EndTime: "09:00", Capacity: 1}, ErrInvalidRange},
		{"start equals end", dto.DefineSlotRequest{Weekday: entity.WeekdayMonday, StartTime: "09:00", EndTime: "09:00", Capacity: 1}, ErrInvalidRange},
		{"zero capacity", dto.DefineSlotRequest{Weekday: entity.WeekdayMonday, StartTime: "09:00", EndTime: "12:00", Capacity: 0}, ErrInvalidCapacity},
		{"negative capacity", dto.DefineSlotRequest{Weekday: entity.WeekdayMonday, StartTime: "09:00", EndTime: "12:00", Capacity: -3}, ErrInvalidCapacity},
		{"bad start time", dto.DefineSlotRequest{Weekday: entity.WeekdayMonday, StartTime: "9 am", EndTime: "12:00", Capacity: 1}, ErrInvalidTimeFormat},
		{"bad end time", dto.DefineSlotRequest{Weekday: entity.WeekdayMonday, StartTime: "09:00", EndTime: "25:99", Capacity: 1}, ErrInvalidTimeFormat},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := uc.DefineSlot(testCtx(), doctorID, &tc.req)
			assert.ErrorIs(t, err, tc.want)
		})
	}
}

func TestListSlotsOrderedByStartTime(t *testing.T) {
	db := newTestDB(t)
	uc := NewShiftSlotUsecase(db, newTestLogger(), repository.NewShiftSlotRepository(), repository.NewAppointmentRepository(), newTestAuditService(db))
	doctorID := seedDoctor(t, db, "list@clinic.test")

	for _, w := range []struct{ start, end string }{
		{"14:00", "17:00"},
		{"08:00", "11:00"},
		{"11:00", "13:00"},
	} {
		_, err := uc.DefineSlot(testCtx(), doctorID, &dto.DefineSlotRequest{
			Weekday:   entity.WeekdayTuesday,
			StartTime: w.start,
			EndTime:   w.end,
			Capacity:  1,
		})
		require.NoError(t, err)
	}

	list, err := uc.ListSlots(testCtx(), doctorID, entity.WeekdayTuesday)
	require.NoError(t, err)
	require.Equal(t, 3, list.Total)
	assert.Equal(t, "08:00", list.Slots[0].StartTime)
	assert.Equal(t, "11:00", list.Slots[1].StartTime)
	assert.Equal(t, "14:00", list.Slots[2].StartTime)
}

func TestListSlotsUnknownWeekday(t *testing.T) {
	db := newTestDB(t)
	uc := NewShiftSlotUsecase(db, newTestLogger(), repository.NewShiftSlotRepository(), repository.NewAppointmentRepository(), newTestAuditService(db))
	doctorID := seedDoctor(t, db, "badday@clinic.test")

	_, err := uc.ListSlots(testCtx(), doctorID, "someday")
	assert.ErrorIs(t, err, ErrInvalidWeekday)
}

func TestRemoveSlot(t *testing.T) {
	db := newTestDB(t)
	uc := NewShiftSlotUsecase(db, newTestLogger(), repository.NewShiftSlotRepository(), repository.NewAppointmentRepository(), newTestAuditService(db))
	doctorID := seedDoctor(t, db, "remove@clinic.test")
	slot := seedSlot(t, db, doctorID, entity.WeekdayWednesday, "09:00", "12:00", 2)

	require.NoError(t, uc.RemoveSlot(testCtx(), doctorID, slot.ID))

	list, err := uc.ListSlots(testCtx(), doctorID, entity.WeekdayWednesday)
	require.NoError(t, err)
	assert.Zero(t, list.Total)
}

func TestRemoveSlotNotOwned(t *testing.T) {
	db := newTestDB(t)
	uc := NewShiftSlotUsecase(db, newTestLogger(), repository.NewShiftSlotRepository(), repository.NewAppointmentRepository(), newTestAuditService(db))
	owner := seedDoctor(t, db, "owner@clinic.test")
	other := seedDoctor(t, db, "other@clinic.test")
	slot := seedSlot(t, db, owner, entity.WeekdayThursday, "09:00", "12:00", 1)

	err := uc.RemoveSlot(testCtx(), other, slot.ID)
	assert.ErrorIs(t, err, ErrSlotNotFound)
}

func TestRemoveSlotWithActiveAppointments(t *testing.T) {
	db := newTestDB(t)
	uc := NewShiftSlotUsecase(db, newTestLogger(), repository.NewShiftSlotRepository(), repository.NewAppointmentRepository(), newTestAuditService(db))
	doctorID := seedDoctor(t, db, "busy@clinic.test")
	patientID := seedPatient(t, db, "p1@mail.test")
	slot := seedSlot(t, db, doctorID, entity.WeekdayFriday, "09:00", "12:00", 2)

	appointment := &entity.Appointment{
		PatientID:   patientID,
		DoctorID:    doctorID,
		SlotID:      slot.ID,
		Date:        nextWeekday(entity.WeekdayFriday),
		Status:      entity.AppointmentStatusPending,
		BookingCode: "AP-TEST-REMOVE1",
	}
	require.NoError(t, db.Create(appointment).Error)

	err := uc.RemoveSlot(testCtx(), doctorID, slot.ID)
	assert.ErrorIs(t, err, ErrSlotInUse)

	// Cancelled bookings no longer block removal.
	require.NoError(t, db.Model(appointment).Update("status", entity.AppointmentStatusCancelled).Error)
	require.NoError(t, uc.RemoveSlot(testCtx(), doctorID, slot.ID))
}
