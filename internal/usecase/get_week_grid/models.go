package get_week_grid

import (
	"time"

	"github.com/m04kA/MBL-AppointmentService/internal/domain"
	"github.com/m04kA/MBL-AppointmentService/pkg/types"
)

// Request модель запроса календарной сетки недели
type Request struct {
	AnchorDate time.Time // Любая дата внутри интересующей недели
}

// Response модель ответа с календарной сеткой недели.
// Cells[day][slot] соответствует Days[day] и Slots[slot].
type Response struct {
	WeekStart time.Time          // Воскресенье - начало недели
	WeekEnd   time.Time          // Суббота - конец недели
	Days      [7]time.Time       // Дни недели по порядку
	Slots     []types.TimeString // Слоты дня в каноническом порядке
	Cells     [7][]Cell          // Ячейки сетки
}

// Cell одна ячейка сетки. Len(Appointments) > 1 - признак двойного
// бронирования, которое персонал разрешает вручную.
type Cell struct {
	StartTime    types.TimeString
	Appointments []CellAppointment
}

// CellAppointment запись внутри ячейки сетки
type CellAppointment struct {
	ID         int64
	CustomerID int64
	Status     domain.AppointmentStatus
	Notes      *string
}
