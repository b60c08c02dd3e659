package get_availability

import (
	"context"
	"fmt"

	"github.com/m04kA/MBL-AppointmentService/internal/domain"
	"github.com/m04kA/MBL-AppointmentService/internal/schedule"
)

// UseCase use case получения доступности слотов на дату.
//
// Доступность вычисляется и для прошедших дат - отказ по прошедшей дате
// входит только в создание записи. UI использует это для просмотра истории.
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

// Execute возвращает доступность каждого слота дня: ровно по одной записи
// на каждый канонический слот, в порядке слотов
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GetAvailability: date=%s", req.Date.Format(domain.DateFormat))

	if req.Date.IsZero() {
		return nil, fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	// Один снимок записей дня; из него же строится календарная сетка,
	// чтобы обе проекции видели согласованное состояние
	appointments, err := uc.appointmentRepo.GetByDate(ctx, domain.DayAppointmentsFilter{Date: req.Date})
	if err != nil {
		uc.logger.Error("GetAvailability: failed to get appointments: %v", err)
		return nil, fmt.Errorf("%w: failed to get appointments: %v", ErrInternal, err)
	}

	availability := schedule.ResolveAvailability(req.Date, appointments)

	slots := make([]Slot, len(availability))
	for i, sa := range availability {
		slots[i] = Slot{
			StartTime: sa.StartTime,
			Available: sa.Available,
		}
	}

	uc.logger.Info("GetAvailability: resolved %d slots for date=%s",
		len(slots), req.Date.Format(domain.DateFormat))

	return &Response{
		Date:  req.Date,
		Slots: slots,
	}, nil
}
