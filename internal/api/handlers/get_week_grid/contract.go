package get_week_grid

import (
	"context"

	getWeekGrid "github.com/m04kA/MBL-AppointmentService/internal/usecase/get_week_grid"
)

type GetWeekGridUseCase interface {
	Execute(ctx context.Context, req *getWeekGrid.Request) (*getWeekGrid.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
