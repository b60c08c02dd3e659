package schedule

import (
	"time"

	"github.com/m04kA/MBL-AppointmentService/internal/domain"
)

// WeekBounds возвращает границы календарной недели, содержащей date.
// Неделя считается с воскресенья: start = date - weekday дней,
// end = start + 6 дней. Обе границы включительные, время обнулено.
//
// Недельный лимит и календарная сетка обязаны использовать одно и то же
// правило начала недели - менять его нужно только здесь.
func WeekBounds(date time.Time) (time.Time, time.Time) {
	dateOnly := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, date.Location())
	start := dateOnly.AddDate(0, 0, -int(dateOnly.Weekday()))
	end := start.AddDate(0, 0, 6)
	return start, end
}

// FindWeeklyConflict возвращает первую активную запись клиента, дата которой
// попадает в календарную неделю, содержащую date, или nil, если такой нет.
//
// Проверка сравнивает недельные окна, а не точные даты: запись в среду
// блокирует бронирование на понедельник той же недели. Отмененные записи
// не учитываются; записи других клиентов не учитываются.
func FindWeeklyConflict(customerID int64, date time.Time, appointments []*domain.Appointment) *domain.Appointment {
	weekStart, weekEnd := WeekBounds(date)

	for _, appt := range appointments {
		if appt.CustomerID != customerID {
			continue
		}
		if !appt.IsActive() {
			continue
		}

		apptDate := time.Date(appt.Date.Year(), appt.Date.Month(), appt.Date.Day(), 0, 0, 0, 0, appt.Date.Location())
		if apptDate.Before(weekStart) || apptDate.After(weekEnd) {
			continue
		}

		return appt
	}

	return nil
}

// HasWeeklyConflict возвращает true, если у клиента уже есть активная запись
// в календарной неделе, содержащей date
func HasWeeklyConflict(customerID int64, date time.Time, appointments []*domain.Appointment) bool {
	return FindWeeklyConflict(customerID, date, appointments) != nil
}
