package get_week_grid

import (
	"github.com/m04kA/MBL-AppointmentService/internal/domain"
	getWeekGrid "github.com/m04kA/MBL-AppointmentService/internal/usecase/get_week_grid"
)

// WeekGridResponse HTTP response model: сетка 7 дней на полный набор слотов
type WeekGridResponse struct {
	WeekStart string        `json:"weekStart"` // "2025-06-08"
	WeekEnd   string        `json:"weekEnd"`   // "2025-06-14"
	Days      []DayResponse `json:"days"`
	Slots     []string      `json:"slots"`
}

// DayResponse один день сетки
type DayResponse struct {
	Date  string         `json:"date"`
	Cells []CellResponse `json:"cells"`
}

// CellResponse одна ячейка сетки.
// Appointments заполняется только для сотрудников; клиенты видят занятость
type CellResponse struct {
	StartTime    string                `json:"startTime"`
	Occupied     bool                  `json:"occupied"`
	Appointments []AppointmentResponse `json:"appointments,omitempty"`
}

// AppointmentResponse запись внутри ячейки (только для сотрудников)
type AppointmentResponse struct {
	ID         int64   `json:"id"`
	CustomerID int64   `json:"customerId"`
	Status     string  `json:"status"`
	Notes      *string `json:"notes,omitempty"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response.
// Для сотрудника ячейки содержат записи с данными клиента, для клиента -
// только признак занятости. Обе формы строятся из одной сетки.
func FromUseCaseResponse(resp *getWeekGrid.Response, staffView bool) *WeekGridResponse {
	out := &WeekGridResponse{
		WeekStart: resp.WeekStart.Format(domain.DateFormat),
		WeekEnd:   resp.WeekEnd.Format(domain.DateFormat),
		Days:      make([]DayResponse, len(resp.Days)),
		Slots:     make([]string, len(resp.Slots)),
	}

	for i, slot := range resp.Slots {
		out.Slots[i] = slot.String()
	}

	for day := range resp.Days {
		dayResp := DayResponse{
			Date:  resp.Days[day].Format(domain.DateFormat),
			Cells: make([]CellResponse, len(resp.Cells[day])),
		}

		for i, cell := range resp.Cells[day] {
			cellResp := CellResponse{
				StartTime: cell.StartTime.String(),
				Occupied:  len(cell.Appointments) > 0,
			}

			if staffView {
				for _, appt := range cell.Appointments {
					cellResp.Appointments = append(cellResp.Appointments, AppointmentResponse{
						ID:         appt.ID,
						CustomerID: appt.CustomerID,
						Status:     string(appt.Status),
						Notes:      appt.Notes,
					})
				}
			}

			dayResp.Cells[i] = cellResp
		}

		out.Days[day] = dayResp
	}

	return out
}
