package schedule

import (
	"time"

	"github.com/m04kA/MBL-AppointmentService/internal/domain"
	"github.com/m04kA/MBL-AppointmentService/pkg/types"
)

// WeekGrid календарная сетка недели: 7 дней на len(Slots) слотов.
// Cells[day][slot] содержит активные записи в этой ячейке. Ячейка с двумя
// записями - признак двойного бронирования; сетка его не скрывает, чтобы
// персонал видел конфликт и мог разрешить его вручную.
type WeekGrid struct {
	WeekStart time.Time
	Days      [7]time.Time
	Slots     []types.TimeString
	Cells     [7][]GridCell
}

// GridCell одна ячейка сетки
type GridCell struct {
	StartTime    types.TimeString
	Appointments []*domain.Appointment
}

// BuildWeekGrid строит календарную сетку недели, содержащей anchor.
// Чистая проекция: использует тот же набор слотов и то же недельное окно,
// что и проверки доступности. Отмененные записи в сетку не попадают;
// записи вне недельного окна отбрасываются.
func BuildWeekGrid(anchor time.Time, appointments []*domain.Appointment) WeekGrid {
	weekStart, _ := WeekBounds(anchor)
	slots := GenerateSlots()

	grid := WeekGrid{
		WeekStart: weekStart,
		Slots:     slots,
	}

	for day := 0; day < 7; day++ {
		grid.Days[day] = weekStart.AddDate(0, 0, day)
		grid.Cells[day] = make([]GridCell, len(slots))
		for i, slot := range slots {
			grid.Cells[day][i] = GridCell{StartTime: slot}
		}
	}

	for _, appt := range appointments {
		if !appt.IsActive() {
			continue
		}

		day, ok := dayIndex(weekStart, appt.Date)
		if !ok {
			continue
		}

		slot, ok := slotIndex(slots, appt.StartTime)
		if !ok {
			continue
		}

		cell := &grid.Cells[day][slot]
		cell.Appointments = append(cell.Appointments, appt)
	}

	return grid
}

// dayIndex возвращает индекс дня записи внутри недели [0..6].
// Сравнение календарное, а не через разность моментов: день перевода
// часов длится не 24 часа, и деление часов на 24 сдвинуло бы колонку.
func dayIndex(weekStart time.Time, date time.Time) (int, bool) {
	for day := 0; day < 7; day++ {
		if isSameDay(weekStart.AddDate(0, 0, day), date) {
			return day, true
		}
	}
	return 0, false
}

// slotIndex возвращает индекс слота с нормализацией суффикса секунд
func slotIndex(slots []types.TimeString, t types.TimeString) (int, bool) {
	for i, slot := range slots {
		if slot.Equal(t) {
			return i, true
		}
	}
	return 0, false
}
