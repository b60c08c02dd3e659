package get_availability

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/MBL-AppointmentService/internal/domain"
	"github.com/m04kA/MBL-AppointmentService/pkg/types"
)

type fakeRepo struct {
	appointments []*domain.Appointment
	err          error
}

func (r *fakeRepo) GetByDate(_ context.Context, filter domain.DayAppointmentsFilter) ([]*domain.Appointment, error) {
	if r.err != nil {
		return nil, r.err
	}
	var result []*domain.Appointment
	for _, a := range r.appointments {
		if a.Date.Equal(filter.Date) && (filter.IncludeInactive || a.IsActive()) {
			result = append(result, a)
		}
	}
	return result, nil
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func TestExecute_EmptyDayAllSlotsAvailable(t *testing.T) {
	uc := NewUseCase(&fakeRepo{}, nopLogger{})

	resp, err := uc.Execute(context.Background(), &Request{
		Date: time.Date(2025, 6, 10, 0, 0, 0, 0, time.UTC),
	})

	require.NoError(t, err)
	require.Len(t, resp.Slots, 18)
	assert.Equal(t, types.TimeString("09:00"), resp.Slots[0].StartTime)
	assert.Equal(t, types.TimeString("17:30"), resp.Slots[17].StartTime)
	for _, slot := range resp.Slots {
		assert.True(t, slot.Available)
	}
}

func TestExecute_TakenSlotMarkedUnavailable(t *testing.T) {
	day := time.Date(2025, 6, 10, 0, 0, 0, 0, time.UTC)
	repo := &fakeRepo{appointments: []*domain.Appointment{
		{ID: 1, CustomerID: 100, Date: day, StartTime: "10:00", Status: domain.StatusConfirmed},
	}}
	uc := NewUseCase(repo, nopLogger{})

	resp, err := uc.Execute(context.Background(), &Request{Date: day})
	require.NoError(t, err)

	unavailable := 0
	for _, slot := range resp.Slots {
		if !slot.Available {
			unavailable++
			assert.Equal(t, types.TimeString("10:00"), slot.StartTime)
		}
	}
	assert.Equal(t, 1, unavailable)
}

func TestExecute_PastDateResolvesNormally(t *testing.T) {
	uc := NewUseCase(&fakeRepo{}, nopLogger{})

	// Отказ по прошедшей дате - зона ответственности создания записи
	resp, err := uc.Execute(context.Background(), &Request{
		Date: time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC),
	})
	require.NoError(t, err)
	assert.Len(t, resp.Slots, 18)
}

func TestExecute_ZeroDateRejected(t *testing.T) {
	uc := NewUseCase(&fakeRepo{}, nopLogger{})

	_, err := uc.Execute(context.Background(), &Request{})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestExecute_RepositoryErrorWrapped(t *testing.T) {
	uc := NewUseCase(&fakeRepo{err: errors.New("connection refused")}, nopLogger{})

	_, err := uc.Execute(context.Background(), &Request{
		Date: time.Date(2025, 6, 10, 0, 0, 0, 0, time.UTC),
	})
	assert.ErrorIs(t, err, ErrInternal)
}
