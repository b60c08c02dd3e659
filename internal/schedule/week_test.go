package schedule

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/MBL-AppointmentService/internal/domain"
)

func TestWeekBounds(t *testing.T) {
	// 2025-06-11 - среда; неделя с воскресенья 2025-06-08 по субботу 2025-06-14
	start, end := WeekBounds(date(2025, 6, 11))
	assert.Equal(t, date(2025, 6, 8), start)
	assert.Equal(t, date(2025, 6, 14), end)

	// Воскресенье - начало своей же недели
	start, end = WeekBounds(date(2025, 6, 8))
	assert.Equal(t, date(2025, 6, 8), start)
	assert.Equal(t, date(2025, 6, 14), end)

	// Суббота - конец своей недели
	start, end = WeekBounds(date(2025, 6, 14))
	assert.Equal(t, date(2025, 6, 8), start)
	assert.Equal(t, date(2025, 6, 14), end)
}

func TestFindWeeklyConflict_SameWeek(t *testing.T) {
	// Запись в среду блокирует любой день той же недели
	wednesday := appt(1, 100, date(2025, 6, 11), "14:00", domain.StatusConfirmed)
	appointments := []*domain.Appointment{wednesday}

	// Понедельник той же недели
	conflict := FindWeeklyConflict(100, date(2025, 6, 9), appointments)
	require.NotNil(t, conflict)
	assert.Equal(t, wednesday.ID, conflict.ID)

	// Суббота той же недели
	assert.NotNil(t, FindWeeklyConflict(100, date(2025, 6, 14), appointments))

	// Сама дата записи
	assert.NotNil(t, FindWeeklyConflict(100, date(2025, 6, 11), appointments))
}

func TestFindWeeklyConflict_NextWeekAllowed(t *testing.T) {
	wednesday := appt(1, 100, date(2025, 6, 11), "14:00", domain.StatusConfirmed)
	appointments := []*domain.Appointment{wednesday}

	// Понедельник следующей недели (2025-06-16) - конфликта нет
	assert.Nil(t, FindWeeklyConflict(100, date(2025, 6, 16), appointments))

	// Суббота предыдущей недели (2025-06-07) - конфликта нет
	assert.Nil(t, FindWeeklyConflict(100, date(2025, 6, 7), appointments))
}

func TestFindWeeklyConflict_IgnoresCancelledAndOtherCustomers(t *testing.T) {
	day := date(2025, 6, 11)
	appointments := []*domain.Appointment{
		appt(1, 100, day, "14:00", domain.StatusCancelled),
		appt(2, 200, day, "15:00", domain.StatusConfirmed),
	}

	assert.Nil(t, FindWeeklyConflict(100, date(2025, 6, 9), appointments))
}

func TestFindWeeklyConflict_MultipleWeeksAllowed(t *testing.T) {
	// Клиент может держать записи в разных неделях
	appointments := []*domain.Appointment{
		appt(1, 100, date(2025, 6, 11), "14:00", domain.StatusConfirmed),
		appt(2, 100, date(2025, 6, 18), "14:00", domain.StatusPending),
	}

	// Третья неделя свободна
	assert.Nil(t, FindWeeklyConflict(100, date(2025, 6, 25), appointments))

	// Обе занятые недели конфликтуют
	assert.NotNil(t, FindWeeklyConflict(100, date(2025, 6, 9), appointments))
	assert.NotNil(t, FindWeeklyConflict(100, date(2025, 6, 20), appointments))
}

func TestWeekBounds_AgreesWithGrid(t *testing.T) {
	// Недельное окно проверки лимита и окно сетки обязаны совпадать
	anchor := date(2025, 6, 11)
	start, _ := WeekBounds(anchor)
	grid := BuildWeekGrid(anchor, nil)
	assert.True(t, start.Equal(grid.WeekStart))
}

func TestWeekBounds_PreservesLocation(t *testing.T) {
	loc, err := time.LoadLocation("Europe/Moscow")
	require.NoError(t, err)

	d := time.Date(2025, 6, 11, 13, 45, 0, 0, loc)
	start, end := WeekBounds(d)
	assert.Equal(t, loc, start.Location())
	assert.Equal(t, loc, end.Location())
}
