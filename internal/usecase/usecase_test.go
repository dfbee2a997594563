package usecase

import (
	"context"
	"io"
	"testing"
	"time"

	"medibook/internal/domain/entity"
	"medibook/internal/repository"
	"medibook/internal/service"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open("file::memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	// A single connection keeps every session on the same in-memory database.
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(
		&entity.Role{},
		&entity.User{},
		&entity.Specialty{},
		&entity.City{},
		&entity.DoctorProfile{},
		&entity.DoctorAddress{},
		&entity.Telephone{},
		&entity.PatientProfile{},
		&entity.WeekdaySchedule{},
		&entity.ShiftSlot{},
		&entity.Appointment{},
		&entity.AuditLog{},
	))

	roles := []entity.Role{
		{ID: entity.RoleIDAdmin, RoleName: entity.RoleAdmin},
		{ID: entity.RoleIDDoctor, RoleName: entity.RoleDoctor},
		{ID: entity.RoleIDPatient, RoleName: entity.RolePatient},
	}
	require.NoError(t, db.Create(&roles).Error)

	return db
}

func newTestLogger() *logrus.Logger {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return log
}

func newTestAuditService(db *gorm.DB) service.AuditService {
	return service.NewAuditService(db, newTestLogger(), repository.NewAuditLogRepository())
}

func seedDoctor(t *testing.T, db *gorm.DB, email string) uuid.UUID {
	t.Helper()

	user := &entity.User{
		RoleID:   entity.RoleIDDoctor,
		Email:    email,
		Password: "hashed",
		FullName: "Dr. " + email,
	}
	require.NoError(t, db.Create(user).Error)

	profile := &entity.DoctorProfile{
		UserID:      user.ID,
		MedicalCode: "MC-" + user.ID.String()[:8],
	}
	require.NoError(t, db.Create(profile).Error)

	return user.ID
}

func seedPatient(t *testing.T, db *gorm.DB, email string) uuid.UUID {
	t.Helper()

	user := &entity.User{
		RoleID:   entity.RoleIDPatient,
		Email:    email,
		Password: "hashed",
		FullName: "Patient " + email,
	}
	require.NoError(t, db.Create(user).Error)

	profile := &entity.PatientProfile{UserID: user.ID}
	require.NoError(t, db.Create(profile).Error)

	return user.ID
}

func seedSlot(t *testing.T, db *gorm.DB, doctorID uuid.UUID, weekday, start, end string, capacity int) *entity.ShiftSlot {
	t.Helper()

	schedule := &entity.WeekdaySchedule{DoctorID: doctorID, Weekday: weekday}
	require.NoError(t, db.Create(schedule).Error)

	slot := &entity.ShiftSlot{
		ScheduleID: schedule.ID,
		StartTime:  start,
		EndTime:    end,
		Capacity:   capacity,
	}
	require.NoError(t, db.Create(slot).Error)

	slot.Schedule = *schedule
	return slot
}

// nextWeekday returns the next calendar date on the given weekday, at least
// one week out so the past-date guard never interferes.
func nextWeekday(label string) time.Time {
	d := time.Now().UTC().Truncate(24 * time.Hour).AddDate(0, 0, 7)
	for entity.WeekdayFromDate(d) != label {
		d = d.AddDate(0, 0, 1)
	}
	return d
}

func testCtx() context.Context {
	return context.Background()
}

// The phone column is nullable with a unique index, so any number of users
// may omit it while real numbers still cannot repeat.
func TestPhoneNumberNullableButUnique(t *testing.T) {
	db := newTestDB(t)

	first := seedPatient(t, db, "nophone1@mail.test")
	second := seedPatient(t, db, "nophone2@mail.test")
	assert.NotEqual(t, first, second)

	phone := "09120000000"
	withPhone := &entity.User{
		RoleID:      entity.RoleIDPatient,
		Email:       "phoned@mail.test",
		Password:    "hashed",
		FullName:    "Phoned",
		PhoneNumber: &phone,
	}
	require.NoError(t, db.Create(withPhone).Error)

	duplicate := &entity.User{
		RoleID:      entity.RoleIDPatient,
		Email:       "phoned2@mail.test",
		Password:    "hashed",
		FullName:    "Phoned Twin",
		PhoneNumber: &phone,
	}
	assert.Error(t, db.Create(duplicate).Error)
}
