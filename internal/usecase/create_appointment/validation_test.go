package create_appointment

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/MBL-AppointmentService/internal/domain"
	"github.com/m04kA/MBL-AppointmentService/pkg/ptr"
)

func validRequest() *Request {
	return &Request{
		CustomerID: 100,
		Date:       time.Date(2025, 6, 10, 0, 0, 0, 0, time.UTC),
		StartTime:  "10:00",
		Source:     SourceCustomer,
	}
}

func TestValidateRequest(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Request)
		ok     bool
	}{
		{name: "valid customer request", mutate: func(*Request) {}, ok: true},
		{name: "valid staff request", mutate: func(r *Request) { r.Source = SourceStaff; r.StaffID = 7 }, ok: true},
		{name: "zero customer", mutate: func(r *Request) { r.CustomerID = 0 }},
		{name: "zero date", mutate: func(r *Request) { r.Date = time.Time{} }},
		{name: "empty time", mutate: func(r *Request) { r.StartTime = "" }},
		{name: "malformed time", mutate: func(r *Request) { r.StartTime = "ten o'clock" }},
		{name: "staff source without staff id", mutate: func(r *Request) { r.Source = SourceStaff }},
		{name: "unknown source", mutate: func(r *Request) { r.Source = "robot" }},
		{name: "oversized notes", mutate: func(r *Request) {
			r.Notes = ptr.Ptr(strings.Repeat("x", domain.MaxNotesLength+1))
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := validRequest()
			tt.mutate(req)

			err := validateRequest(req)
			if tt.ok {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, ErrInvalidInput)
			}
		})
	}
}

func TestCheckConflicts_WeeklyLimitWinsOverSlotTaken(t *testing.T) {
	day := time.Date(2025, 6, 10, 0, 0, 0, 0, time.UTC)
	req := &Request{CustomerID: 100, Date: day, StartTime: "10:00", Source: SourceCustomer}

	// Слот занят чужой записью, и у клиента уже есть запись на этой неделе
	dayAppointments := []*domain.Appointment{
		{ID: 1, CustomerID: 200, Date: day, StartTime: "10:00", Status: domain.StatusPending},
	}
	weekAppointments := []*domain.Appointment{
		{ID: 2, CustomerID: 100, Date: day.AddDate(0, 0, 1), StartTime: "12:00", Status: domain.StatusConfirmed},
	}

	err := checkConflicts(req, dayAppointments, weekAppointments)
	require.ErrorIs(t, err, ErrWeeklyLimit)
	assert.NotErrorIs(t, err, ErrSlotTaken)
}

func TestWeekFilter(t *testing.T) {
	// 2025-06-11 - среда
	filter := weekFilter(100, time.Date(2025, 6, 11, 0, 0, 0, 0, time.UTC))

	assert.Equal(t, int64(100), filter.CustomerID)
	require.NotNil(t, filter.StartDate)
	require.NotNil(t, filter.EndDate)
	assert.Equal(t, time.Date(2025, 6, 8, 0, 0, 0, 0, time.UTC), *filter.StartDate)
	assert.Equal(t, time.Date(2025, 6, 14, 0, 0, 0, 0, time.UTC), *filter.EndDate)
}
