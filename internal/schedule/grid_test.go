package schedule

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/MBL-AppointmentService/internal/domain"
	"github.com/m04kA/MBL-AppointmentService/pkg/types"
)

func TestBuildWeekGrid_Dimensions(t *testing.T) {
	grid := BuildWeekGrid(date(2025, 6, 11), nil)

	assert.Equal(t, date(2025, 6, 8), grid.WeekStart)
	assert.Len(t, grid.Slots, 18)
	for day := 0; day < 7; day++ {
		assert.Equal(t, date(2025, 6, 8+day), grid.Days[day])
		require.Len(t, grid.Cells[day], 18)
	}
}

func TestBuildWeekGrid_PlacesAppointments(t *testing.T) {
	// Сценарий из стори персонала: confirmed в 14:30 виден, cancelled в 09:00 нет
	appointments := []*domain.Appointment{
		appt(1, 100, date(2025, 6, 11), "14:30", domain.StatusConfirmed),
		appt(2, 200, date(2025, 6, 11), "09:00", domain.StatusCancelled),
	}

	grid := BuildWeekGrid(date(2025, 6, 11), appointments)

	occupied := 0
	for day := 0; day < 7; day++ {
		for _, cell := range grid.Cells[day] {
			occupied += len(cell.Appointments)
		}
	}
	assert.Equal(t, 1, occupied, "exactly one occupied cell")

	// 2025-06-11 - среда, индекс дня 3; слот 14:30 - индекс 11
	wednesday := 3
	slot1430 := slotIndexOf(t, grid.Slots, "14:30")
	require.Len(t, grid.Cells[wednesday][slot1430].Appointments, 1)
	assert.Equal(t, int64(1), grid.Cells[wednesday][slot1430].Appointments[0].ID)

	slot0900 := slotIndexOf(t, grid.Slots, "09:00")
	assert.Empty(t, grid.Cells[wednesday][slot0900].Appointments)
}

func TestBuildWeekGrid_ShowsDoubleBooking(t *testing.T) {
	// Остаточная гонка может породить две активные записи в одном слоте;
	// сетка обязана показать обе
	day := date(2025, 6, 10)
	appointments := []*domain.Appointment{
		appt(1, 100, day, "10:00", domain.StatusPending),
		appt(2, 200, day, "10:00", domain.StatusPending),
	}

	grid := BuildWeekGrid(day, appointments)
	tuesday := 2
	cell := grid.Cells[tuesday][slotIndexOf(t, grid.Slots, "10:00")]
	assert.Len(t, cell.Appointments, 2)
}

func TestBuildWeekGrid_DropsOutOfWindowAppointments(t *testing.T) {
	appointments := []*domain.Appointment{
		appt(1, 100, date(2025, 6, 20), "10:00", domain.StatusConfirmed), // следующая неделя
		appt(2, 200, date(2025, 6, 5), "10:00", domain.StatusConfirmed),  // предыдущая неделя
	}

	grid := BuildWeekGrid(date(2025, 6, 11), appointments)
	for day := 0; day < 7; day++ {
		for _, cell := range grid.Cells[day] {
			assert.Empty(t, cell.Appointments)
		}
	}
}

func TestBuildWeekGrid_NormalizesStoredTimes(t *testing.T) {
	appointments := []*domain.Appointment{
		appt(1, 100, date(2025, 6, 10), "11:00:00", domain.StatusConfirmed),
	}

	grid := BuildWeekGrid(date(2025, 6, 10), appointments)
	cell := grid.Cells[2][slotIndexOf(t, grid.Slots, "11:00")]
	assert.Len(t, cell.Appointments, 1)
}

func TestBuildWeekGrid_SpringForwardWeek(t *testing.T) {
	// Неделя с перевода часов: воскресенье длится 23 часа, разность
	// моментов недосчитала бы колонку. Индекс дня должен оставаться
	// календарным.
	loc, err := time.LoadLocation("America/New_York")
	if err != nil {
		t.Skipf("tzdata unavailable: %v", err)
	}

	// 2025-03-09 - воскресенье перевода часов в США, неделя 03-09 .. 03-15
	wednesday := time.Date(2025, 3, 12, 0, 0, 0, 0, loc)
	appointments := []*domain.Appointment{
		appt(1, 100, wednesday, "10:00", domain.StatusConfirmed),
	}

	grid := BuildWeekGrid(time.Date(2025, 3, 9, 0, 0, 0, 0, loc), appointments)

	cell := grid.Cells[3][slotIndexOf(t, grid.Slots, "10:00")]
	require.Len(t, cell.Appointments, 1)
	assert.Equal(t, int64(1), cell.Appointments[0].ID)

	// Остальные дни недели пустые - запись не съехала в соседнюю колонку
	for day := 0; day < 7; day++ {
		if day == 3 {
			continue
		}
		for _, c := range grid.Cells[day] {
			assert.Empty(t, c.Appointments)
		}
	}
}

func slotIndexOf(t *testing.T, slots []types.TimeString, want types.TimeString) int {
	t.Helper()
	for i, s := range slots {
		if s == want {
			return i
		}
	}
	t.Fatalf("slot %s not found", want)
	return -1
}
