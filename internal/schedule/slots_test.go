package schedule

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/MBL-AppointmentService/internal/domain"
	"github.com/m04kA/MBL-AppointmentService/pkg/types"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func appt(id, customerID int64, day time.Time, start types.TimeString, status domain.AppointmentStatus) *domain.Appointment {
	return &domain.Appointment{
		ID:         id,
		CustomerID: customerID,
		Date:       day,
		StartTime:  start,
		Status:     status,
	}
}

func TestGenerateSlots(t *testing.T) {
	slots := GenerateSlots()

	require.Len(t, slots, 18)
	assert.Equal(t, types.TimeString("09:00"), slots[0])
	assert.Equal(t, types.TimeString("09:30"), slots[1])
	assert.Equal(t, types.TimeString("17:30"), slots[17])

	// Детерминизм: повторный вызов дает идентичный результат
	assert.Equal(t, slots, GenerateSlots())

	// Слоты строго упорядочены с шагом 30 минут
	for i := 1; i < len(slots); i++ {
		assert.True(t, slots[i-1].IsBefore(slots[i]), "slot %d is not ordered", i)
	}
}

func TestIsBookableSlot(t *testing.T) {
	assert.True(t, IsBookableSlot("09:00"))
	assert.True(t, IsBookableSlot("17:30"))
	assert.True(t, IsBookableSlot("14:30:00"), "seconds suffix must normalize")

	assert.False(t, IsBookableSlot("18:00"), "closing time is not a slot")
	assert.False(t, IsBookableSlot("08:30"))
	assert.False(t, IsBookableSlot("10:15"), "off-grid time is not a slot")
	assert.False(t, IsBookableSlot(""))
}

func TestResolveAvailability_EmptyCollection(t *testing.T) {
	result := ResolveAvailability(date(2025, 6, 10), nil)

	require.Len(t, result, 18, "one entry per generated slot")
	for _, sa := range result {
		assert.True(t, sa.Available)
	}
}

func TestResolveAvailability_ActiveAppointmentTakesSlot(t *testing.T) {
	day := date(2025, 6, 10)
	appointments := []*domain.Appointment{
		appt(1, 100, day, "10:00", domain.StatusPending),
		appt(2, 101, day, "14:30", domain.StatusConfirmed),
	}

	result := ResolveAvailability(day, appointments)
	require.Len(t, result, 18)

	for _, sa := range result {
		switch sa.StartTime {
		case "10:00", "14:30":
			assert.False(t, sa.Available, "slot %s must be taken", sa.StartTime)
		default:
			assert.True(t, sa.Available, "slot %s must be free", sa.StartTime)
		}
	}
}

func TestResolveAvailability_CancelledDoesNotTakeSlot(t *testing.T) {
	day := date(2025, 6, 10)
	appointments := []*domain.Appointment{
		appt(1, 100, day, "10:00", domain.StatusCancelled),
	}

	for _, sa := range ResolveAvailability(day, appointments) {
		assert.True(t, sa.Available)
	}
}

func TestResolveAvailability_FiltersByDate(t *testing.T) {
	day := date(2025, 6, 10)
	otherDay := date(2025, 6, 11)
	appointments := []*domain.Appointment{
		appt(1, 100, otherDay, "10:00", domain.StatusConfirmed),
	}

	// Запись на другую дату не влияет на доступность
	for _, sa := range ResolveAvailability(day, appointments) {
		assert.True(t, sa.Available)
	}
}

func TestResolveAvailability_NormalizesSecondsSuffix(t *testing.T) {
	day := date(2025, 6, 10)
	appointments := []*domain.Appointment{
		// Значение в формате БД "HH:MM:SS"
		appt(1, 100, day, "09:00:00", domain.StatusConfirmed),
	}

	result := ResolveAvailability(day, appointments)
	assert.Equal(t, types.TimeString("09:00"), result[0].StartTime)
	assert.False(t, result[0].Available)
}

func TestSlotTakenBy(t *testing.T) {
	day := date(2025, 6, 10)
	taken := appt(1, 100, day, "10:00", domain.StatusPending)
	appointments := []*domain.Appointment{taken}

	assert.Equal(t, taken, SlotTakenBy(day, "10:00", appointments))
	assert.Equal(t, taken, SlotTakenBy(day, "10:00:00", appointments))
	assert.Nil(t, SlotTakenBy(day, "10:30", appointments))
	assert.Nil(t, SlotTakenBy(date(2025, 6, 11), "10:00", appointments))
}

func TestIsDateInPast(t *testing.T) {
	now := time.Date(2025, 6, 10, 15, 30, 0, 0, time.UTC)

	assert.True(t, IsDateInPast(date(2025, 6, 9), now))
	assert.False(t, IsDateInPast(date(2025, 6, 10), now), "today is not in the past")
	assert.False(t, IsDateInPast(date(2025, 6, 11), now))
}

func TestIsDateInPast_SameDayWestOfUTC(t *testing.T) {
	// Дата визита - полночь UTC, сервер в зоне UTC-5: утром по серверному
	// времени сегодняшний день не должен считаться прошедшим
	westZone := time.FixedZone("UTC-5", -5*60*60)
	now := time.Date(2025, 6, 10, 9, 0, 0, 0, westZone)

	assert.False(t, IsDateInPast(date(2025, 6, 10), now), "same-day booking must not be rejected")
	assert.True(t, IsDateInPast(date(2025, 6, 9), now))
	assert.False(t, IsDateInPast(date(2025, 6, 11), now))
}

func TestIsDateInPast_SameDayEastOfUTC(t *testing.T) {
	eastZone := time.FixedZone("UTC+9", 9*60*60)
	now := time.Date(2025, 6, 10, 23, 30, 0, 0, eastZone)

	assert.False(t, IsDateInPast(date(2025, 6, 10), now))
	assert.True(t, IsDateInPast(date(2025, 6, 9), now))
}
