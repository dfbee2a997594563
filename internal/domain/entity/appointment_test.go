package entity

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestAppointmentStatusTransitions(t *testing.T) {
	cases := []struct {
		from    AppointmentStatus
		to      AppointmentStatus
		allowed bool
	}{
		{AppointmentStatusPending, AppointmentStatusConfirmed, true},
		{AppointmentStatusPending, AppointmentStatusCancelled, true},
		{AppointmentStatusPending, AppointmentStatusCompleted, false},
		{AppointmentStatusConfirmed, AppointmentStatusCompleted, true},
		{AppointmentStatusConfirmed, AppointmentStatusCancelled, true},
		{AppointmentStatusConfirmed, AppointmentStatusPending, false},
		{AppointmentStatusCompleted, AppointmentStatusPending, false},
		{AppointmentStatusCompleted, AppointmentStatusCancelled, false},
		{AppointmentStatusCancelled, AppointmentStatusPending, false},
		{AppointmentStatusCancelled, AppointmentStatusConfirmed, false},
	}

	for _, tc := range cases {
		got := tc.from.CanTransitionTo(tc.to)
		assert.Equal(t, tc.allowed, got, "%s -> %s", tc.from, tc.to)
	}
}

func TestAppointmentStatusIsValid(t *testing.T) {
	assert.True(t, AppointmentStatusPending.IsValid())
	assert.True(t, AppointmentStatusConfirmed.IsValid())
	assert.True(t, AppointmentStatusCompleted.IsValid())
	assert.True(t, AppointmentStatusCancelled.IsValid())
	assert.False(t, AppointmentStatus("unknown").IsValid())
	assert.False(t, AppointmentStatus("").IsValid())
}

func TestWeekdayFromDate(t *testing.T) {
	// 2025-03-03 is a Monday
	monday := time.Date(2025, 3, 3, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, WeekdayMonday, WeekdayFromDate(monday))
	assert.Equal(t, WeekdayTuesday, WeekdayFromDate(monday.AddDate(0, 0, 1)))
	assert.Equal(t, WeekdaySunday, WeekdayFromDate(monday.AddDate(0, 0, 6)))
}

func TestIsValidWeekday(t *testing.T) {
	for _, name := range []string{
		WeekdayMonday, WeekdayTuesday, WeekdayWednesday, WeekdayThursday,
		WeekdayFriday, WeekdaySaturday, WeekdaySunday,
	} {
		assert.True(t, IsValidWeekday(name), name)
	}
	assert.False(t, IsValidWeekday("Monday"))
	assert.False(t, IsValidWeekday("funday"))
	assert.False(t, IsValidWeekday(""))
}

func TestAppointmentStateHelpers(t *testing.T) {
	a := &Appointment{Status: AppointmentStatusPending}
	assert.True(t, a.IsPending())
	assert.False(t, a.IsCancelled())

	a.Status = AppointmentStatusCancelled
	assert.False(t, a.IsPending())
	assert.True(t, a.IsCancelled())
}
