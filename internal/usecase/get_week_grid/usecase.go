package get_week_grid

import (
	"context"
	"fmt"

	"github.com/m04kA/MBL-AppointmentService/internal/domain"
	"github.com/m04kA/MBL-AppointmentService/internal/schedule"
)

// UseCase use case построения календарной сетки недели.
//
// Сетка строится на том же наборе слотов и том же недельном окне, что и
// проверки при создании записи, поэтому обе проекции всегда согласованы.
type UseCase struct {
	appointmentRepo AppointmentRepository
	logger          Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(appointmentRepo AppointmentRepository, logger Logger) *UseCase {
	return &UseCase{
		appointmentRepo: appointmentRepo,
		logger:          logger,
	}
}

// Execute строит сетку недели, содержащей AnchorDate: 7 дней на полный
// набор слотов. Отмененные записи в сетку не попадают.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	if req.AnchorDate.IsZero() {
		return nil, fmt.Errorf("%w: anchor date is required", ErrInvalidInput)
	}

	weekStart, weekEnd := schedule.WeekBounds(req.AnchorDate)

	uc.logger.Info("GetWeekGrid: week %s - %s",
		weekStart.Format(domain.DateFormat), weekEnd.Format(domain.DateFormat))

	appointments, err := uc.appointmentRepo.GetByDateRange(ctx, domain.RangeAppointmentsFilter{
		StartDate: weekStart,
		EndDate:   weekEnd,
	})
	if err != nil {
		uc.logger.Error("GetWeekGrid: failed to get appointments: %v", err)
		return nil, fmt.Errorf("%w: failed to get appointments: %v", ErrInternal, err)
	}

	grid := schedule.BuildWeekGrid(req.AnchorDate, appointments)

	resp := &Response{
		WeekStart: grid.WeekStart,
		WeekEnd:   weekEnd,
		Days:      grid.Days,
		Slots:     grid.Slots,
	}

	for day := range grid.Cells {
		resp.Cells[day] = make([]Cell, len(grid.Cells[day]))
		for i, cell := range grid.Cells[day] {
			out := Cell{StartTime: cell.StartTime}
			for _, appt := range cell.Appointments {
				out.Appointments = append(out.Appointments, CellAppointment{
					ID:         appt.ID,
					CustomerID: appt.CustomerID,
					Status:     appt.Status,
					Notes:      appt.Notes,
				})
			}
			resp.Cells[day][i] = out
		}
	}

	uc.logger.Info("GetWeekGrid: built grid for week %s with %d appointments",
		weekStart.Format(domain.DateFormat), len(appointments))

	return resp, nil
}
