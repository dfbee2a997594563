package usecase

import (
	"testing"

	"medibook/internal/delivery/dto"
	"medibook/internal/domain/entity"
	"medibook/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDoctorReport(t *testing.T) {
	db := newTestDB(t)
	reports := NewReportUsecase(db, newTestLogger(), repository.NewAppointmentRepository())
	ledger := newAppointmentUsecase(db)

	doctorID := seedDoctor(t, db, "report@clinic.test")
	otherDoctor := seedDoctor(t, db, "other-report@clinic.test")
	morning := seedSlot(t, db, doctorID, entity.WeekdayMonday, "09:00", "12:00", 3)
	afternoon := seedSlot(t, db, doctorID, entity.WeekdayMonday, "14:00", "17:00", 3)
	otherSlot := seedSlot(t, db, otherDoctor, entity.WeekdayMonday, "09:00", "12:00", 3)

	patientID := seedPatient(t, db, "preport@mail.test")
	date := nextWeekday(entity.WeekdayMonday)
	dateStr := date.Format("2006-01-02")

	// Insert afternoon first to prove ordering is by slot start time.
	_, err := ledger.Book(testCtx(), patientID, &dto.BookAppointmentRequest{DoctorID: doctorID, SlotID: afternoon.ID, Date: dateStr})
	require.NoError(t, err)
	_, err = ledger.Book(testCtx(), patientID, &dto.BookAppointmentRequest{DoctorID: doctorID, SlotID: morning.ID, Date: dateStr})
	require.NoError(t, err)
	_, err = ledger.Book(testCtx(), patientID, &dto.BookAppointmentRequest{DoctorID: otherDoctor, SlotID: otherSlot.ID, Date: dateStr})
	require.NoError(t, err)

	report, err := reports.DoctorReport(testCtx(), doctorID, dateStr, dateStr, "")
	require.NoError(t, err)
	require.Equal(t, 2, report.Total)

	assert.Equal(t, "09:00", report.Rows[0].StartTime)
	assert.Equal(t, "14:00", report.Rows[1].StartTime)
	assert.Equal(t, "Patient preport@mail.test", report.Rows[0].PatientFullName)
	assert.Equal(t, dateStr, report.Rows[0].Date)
	assert.False(t, report.Rows[0].Paid)
}

func TestDoctorReportStatusFilter(t *testing.T) {
	db := newTestDB(t)
	reports := NewReportUsecase(db, newTestLogger(), repository.NewAppointmentRepository())
	ledger := newAppointmentUsecase(db)

	doctorID := seedDoctor(t, db, "filter@clinic.test")
	slot := seedSlot(t, db, doctorID, entity.WeekdayMonday, "09:00", "12:00", 3)
	patientID := seedPatient(t, db, "pfilter@mail.test")
	dateStr := nextWeekday(entity.WeekdayMonday).Format("2006-01-02")

	first, err := ledger.Book(testCtx(), patientID, &dto.BookAppointmentRequest{DoctorID: doctorID, SlotID: slot.ID, Date: dateStr})
	require.NoError(t, err)
	_, err = ledger.Book(testCtx(), patientID, &dto.BookAppointmentRequest{DoctorID: doctorID, SlotID: slot.ID, Date: dateStr})
	require.NoError(t, err)

	_, err = ledger.Cancel(testCtx(), patientID, first.ID)
	require.NoError(t, err)

	cancelled, err := reports.DoctorReport(testCtx(), doctorID, dateStr, dateStr, string(entity.AppointmentStatusCancelled))
	require.NoError(t, err)
	assert.Equal(t, 1, cancelled.Total)

	pending, err := reports.DoctorReport(testCtx(), doctorID, dateStr, dateStr, string(entity.AppointmentStatusPending))
	require.NoError(t, err)
	assert.Equal(t, 1, pending.Total)
}

func TestDoctorReportValidation(t *testing.T) {
	db := newTestDB(t)
	reports := NewReportUsecase(db, newTestLogger(), repository.NewAppointmentRepository())
	doctorID := seedDoctor(t, db, "validation@clinic.test")

	_, err := reports.DoctorReport(testCtx(), doctorID, "03-03-2025", "2025-03-04", "")
	assert.ErrorIs(t, err, ErrInvalidDateFormat)

	_, err = reports.DoctorReport(testCtx(), doctorID, "2025-03-10", "2025-03-03", "")
	assert.ErrorIs(t, err, ErrInvalidDateRange)

	_, err = reports.DoctorReport(testCtx(), doctorID, "2025-03-03", "2025-03-10", "bogus")
	assert.ErrorIs(t, err, ErrInvalidStatus)
}
