package create_appointment

import (
	"fmt"
	"time"

	"github.com/m04kA/MBL-AppointmentService/internal/domain"
	"github.com/m04kA/MBL-AppointmentService/internal/schedule"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.CustomerID <= 0 {
		return fmt.Errorf("%w: customerID must be positive", ErrInvalidInput)
	}

	if req.Date.IsZero() {
		return fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	if req.StartTime.IsZero() {
		return fmt.Errorf("%w: startTime is required", ErrInvalidInput)
	}

	if err := req.StartTime.Validate(); err != nil {
		return fmt.Errorf("%w: invalid startTime format: %v", ErrInvalidInput, err)
	}

	switch req.Source {
	case SourceCustomer:
		// Сотрудник не участвует
	case SourceStaff:
		if req.StaffID <= 0 {
			return fmt.Errorf("%w: staffID must be positive for staff bookings", ErrInvalidInput)
		}
	default:
		return fmt.Errorf("%w: unknown source %q", ErrInvalidInput, req.Source)
	}

	if req.Notes != nil && len(*req.Notes) > domain.MaxNotesLength {
		return fmt.Errorf("%w: notes exceed %d characters", ErrInvalidInput, domain.MaxNotesLength)
	}

	return nil
}

// checkConflicts выполняет обе бизнес-проверки над снимком записей:
// недельный лимит клиента, затем занятость слота. Порядок фиксирован -
// при одновременном нарушении обоих инвариантов клиент получает
// ErrWeeklyLimit, потому что менять время в рамках той же недели ему
// все равно нельзя.
//
// Вызывается дважды: на предварительной проверке и на повторной проверке
// непосредственно перед записью (см. Execute).
func checkConflicts(req *Request, dayAppointments, weekAppointments []*domain.Appointment) error {
	if conflict := schedule.FindWeeklyConflict(req.CustomerID, req.Date, weekAppointments); conflict != nil {
		return fmt.Errorf("%w: existing appointment on %s", ErrWeeklyLimit, conflict.Date.Format(domain.DateFormat))
	}

	if taken := schedule.SlotTakenBy(req.Date, req.StartTime, dayAppointments); taken != nil {
		return fmt.Errorf("%w: %s %s", ErrSlotTaken, req.Date.Format(domain.DateFormat), req.StartTime)
	}

	return nil
}

// weekFilter фильтр записей клиента за календарную неделю, содержащую date
func weekFilter(customerID int64, date time.Time) domain.CustomerAppointmentsFilter {
	weekStart, weekEnd := schedule.WeekBounds(date)
	return domain.CustomerAppointmentsFilter{
		CustomerID: customerID,
		StartDate:  &weekStart,
		EndDate:    &weekEnd,
	}
}
