package domain

import (
	"time"

	"github.com/m04kA/MBL-AppointmentService/pkg/types"
)

// AppointmentStatus represents the status of a showroom appointment
type AppointmentStatus string

const (
	StatusPending   AppointmentStatus = "pending"
	StatusConfirmed AppointmentStatus = "confirmed"
	StatusCancelled AppointmentStatus = "cancelled"
)

// Appointment represents a scheduled showroom visit
type Appointment struct {
	ID         int64
	CustomerID int64
	Date       time.Time        // День визита (без времени)
	StartTime  types.TimeString // Слот визита, например "10:00"
	Status     AppointmentStatus

	// Staff member who created the appointment directly (nil for customer bookings)
	CreatedByStaffID *int64

	Notes              *string
	CancellationReason *string
	CancelledAt        *time.Time

	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsActive returns true if the appointment occupies its slot and counts
// toward the weekly limit (pending or confirmed)
func (a *Appointment) IsActive() bool {
	for _, status := range ActiveStatuses {
		if a.Status == status {
			return true
		}
	}
	return false
}

// IsCancelled returns true if the appointment has been cancelled
func (a *Appointment) IsCancelled() bool {
	return a.Status == StatusCancelled
}

// CanTransitionTo returns true if the status change is allowed by the
// appointment state machine:
//
//	pending   -> confirmed
//	pending   -> cancelled
//	confirmed -> cancelled
//
// cancelled is terminal.
func (a *Appointment) CanTransitionTo(next AppointmentStatus) bool {
	switch a.Status {
	case StatusPending:
		return next == StatusConfirmed || next == StatusCancelled
	case StatusConfirmed:
		return next == StatusCancelled
	default:
		return false
	}
}

// CanBeCancelled returns true if the appointment can still be cancelled
func (a *Appointment) CanBeCancelled() bool {
	return a.CanTransitionTo(StatusCancelled)
}

// DayAppointmentsFilter фильтр бронирований на конкретную дату
type DayAppointmentsFilter struct {
	Date            time.Time
	IncludeInactive bool // Включать ли отмененные записи
}

// RangeAppointmentsFilter фильтр бронирований за период (все клиенты)
type RangeAppointmentsFilter struct {
	StartDate       time.Time
	EndDate         time.Time
	IncludeInactive bool
}

// CustomerAppointmentsFilter фильтр бронирований клиента
type CustomerAppointmentsFilter struct {
	CustomerID      int64
	StartDate       *time.Time         // Начало периода (опционально)
	EndDate         *time.Time         // Конец периода (опционально)
	Status          *AppointmentStatus // Фильтр по статусу (опционально)
	IncludeInactive bool               // Включать ли отмененные записи
}
