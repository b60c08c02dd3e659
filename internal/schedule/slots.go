// Package schedule чистая логика расписания шоурума: генерация слотов,
// вычисление доступности, недельное окно и календарная сетка.
// Пакет не выполняет I/O; все функции детерминированы относительно входа.
package schedule

import (
	"time"

	"github.com/m04kA/MBL-AppointmentService/internal/domain"
	"github.com/m04kA/MBL-AppointmentService/pkg/types"
)

// SlotAvailability доступность одного слота
type SlotAvailability struct {
	StartTime types.TimeString
	Available bool
}

// GenerateSlots возвращает канонический упорядоченный набор слотов рабочего
// дня: от открытия (включительно) до закрытия (исключительно) с шагом
// domain.SlotDurationMinutes. Для часов 09:00-18:00 это 18 значений
// "09:00".."17:30".
func GenerateSlots() []types.TimeString {
	open := types.TimeString(domain.BusinessOpenTime)
	close := types.TimeString(domain.BusinessCloseTime)

	slots := make([]types.TimeString, 0, 18)
	current := open

	for current.IsBefore(close) {
		slots = append(slots, current)

		next, err := current.AddMinutes(domain.SlotDurationMinutes)
		if err != nil {
			// Рабочие часы - константы, сюда можно попасть только при их порче
			break
		}
		current = next
	}

	return slots
}

// IsBookableSlot проверяет принадлежность времени каноническому набору слотов.
// Значения с суффиксом секунд ("09:00:00") нормализуются перед сравнением.
func IsBookableSlot(t types.TimeString) bool {
	for _, slot := range GenerateSlots() {
		if slot.Equal(t) {
			return true
		}
	}
	return false
}

// ResolveAvailability вычисляет доступность каждого слота на дату date.
// Возвращает ровно по одной записи на каждый сгенерированный слот, в порядке
// слотов. Слот занят, если на эту дату существует активная (pending или
// confirmed) запись с совпадающим временем; отмененные записи слот не
// занимают. Фильтрация по дате выполняется здесь - вызывающий код может
// передать надмножество записей.
func ResolveAvailability(date time.Time, appointments []*domain.Appointment) []SlotAvailability {
	slots := GenerateSlots()
	result := make([]SlotAvailability, len(slots))

	for i, slot := range slots {
		result[i] = SlotAvailability{
			StartTime: slot,
			Available: !slotTaken(date, slot, appointments),
		}
	}

	return result
}

// SlotTakenBy возвращает активную запись, занимающую слот (date, t),
// или nil, если слот свободен
func SlotTakenBy(date time.Time, t types.TimeString, appointments []*domain.Appointment) *domain.Appointment {
	for _, appt := range appointments {
		if !appt.IsActive() {
			continue
		}
		if !isSameDay(appt.Date, date) {
			continue
		}
		if appt.StartTime.Equal(t) {
			return appt
		}
	}
	return nil
}

func slotTaken(date time.Time, t types.TimeString, appointments []*domain.Appointment) bool {
	return SlotTakenBy(date, t, appointments) != nil
}

// isSameDay проверяет, что две даты относятся к одному и тому же дню
func isSameDay(date1, date2 time.Time) bool {
	y1, m1, d1 := date1.Date()
	y2, m2, d2 := date2.Date()
	return y1 == y2 && m1 == m2 && d1 == d2
}

// IsDateInPast проверяет, что дата раньше сегодняшнего дня.
// Дата визита приходит полночью UTC, а now - в зоне сервера; сравнение
// моментов отбраковывало бы сегодняшний день в зонах западнее UTC.
// Поэтому now приводится к локации даты и сравниваются только
// календарные компоненты.
func IsDateInPast(date, now time.Time) bool {
	nowLocal := now.In(date.Location())

	y, m, d := date.Date()
	ny, nm, nd := nowLocal.Date()

	if y != ny {
		return y < ny
	}
	if m != nm {
		return m < nm
	}
	return d < nd
}
