package create_appointment

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/MBL-AppointmentService/internal/domain"
	appointmentRepo "github.com/m04kA/MBL-AppointmentService/internal/infra/storage/appointment"
	"github.com/m04kA/MBL-AppointmentService/internal/integrations/identityservice"
	"github.com/m04kA/MBL-AppointmentService/pkg/types"
)

// Фейки для изоляции usecase от хранилища и внешних сервисов

type fakeRepo struct {
	appointments []*domain.Appointment
	nextID       int64

	// onTxRead вызывается перед чтениями внутри транзакции - имитация
	// конкурентной записи между предварительной и повторной проверкой
	onTxRead func(r *fakeRepo)

	createErr error
	inTx      bool
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{nextID: 1}
}

func (r *fakeRepo) add(appt *domain.Appointment) *domain.Appointment {
	appt.ID = r.nextID
	r.nextID++
	if appt.CreatedAt.IsZero() {
		appt.CreatedAt = time.Now()
		appt.UpdatedAt = appt.CreatedAt
	}
	r.appointments = append(r.appointments, appt)
	return appt
}

func (r *fakeRepo) Create(_ context.Context, appt *domain.Appointment) (*domain.Appointment, error) {
	if r.createErr != nil {
		return nil, r.createErr
	}
	return r.add(appt), nil
}

func (r *fakeRepo) GetByDate(_ context.Context, filter domain.DayAppointmentsFilter) ([]*domain.Appointment, error) {
	r.fireTxHook()
	var result []*domain.Appointment
	for _, a := range r.appointments {
		if !sameDay(a.Date, filter.Date) {
			continue
		}
		if !filter.IncludeInactive && !a.IsActive() {
			continue
		}
		result = append(result, a)
	}
	return result, nil
}

func (r *fakeRepo) GetByCustomer(_ context.Context, filter domain.CustomerAppointmentsFilter) ([]*domain.Appointment, error) {
	var result []*domain.Appointment
	for _, a := range r.appointments {
		if a.CustomerID != filter.CustomerID {
			continue
		}
		if filter.StartDate != nil && a.Date.Before(*filter.StartDate) {
			continue
		}
		if filter.EndDate != nil && a.Date.After(*filter.EndDate) {
			continue
		}
		if !filter.IncludeInactive && filter.Status == nil && !a.IsActive() {
			continue
		}
		result = append(result, a)
	}
	return result, nil
}

func (r *fakeRepo) fireTxHook() {
	if r.inTx && r.onTxRead != nil {
		hook := r.onTxRead
		r.onTxRead = nil
		hook(r)
	}
}

func sameDay(a, b time.Time) bool {
	y1, m1, d1 := a.Date()
	y2, m2, d2 := b.Date()
	return y1 == y2 && m1 == m2 && d1 == d2
}

type fakeTxManager struct {
	repo *fakeRepo
}

func (m *fakeTxManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	if m.repo != nil {
		m.repo.inTx = true
		defer func() { m.repo.inTx = false }()
	}
	return fn(ctx)
}

type fakeIdentity struct {
	users map[int64]*identityservice.User
}

func (c *fakeIdentity) GetUser(_ context.Context, userID int64) (*identityservice.User, error) {
	user, ok := c.users[userID]
	if !ok {
		return nil, identityservice.ErrUserNotFound
	}
	return user, nil
}

type fixedTime struct {
	now time.Time
}

func (p *fixedTime) Now() time.Time {
	return p.now
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func newTestUseCase(repo *fakeRepo, identity *fakeIdentity, now time.Time) *UseCase {
	if identity == nil {
		identity = &fakeIdentity{users: map[int64]*identityservice.User{}}
	}
	uc := NewUseCase(repo, identity, &fakeTxManager{repo: repo}, nopLogger{})
	uc.timeProvider = &fixedTime{now: now}
	return uc
}

func TestExecute_CustomerBookingSucceeds(t *testing.T) {
	repo := newFakeRepo()
	uc := newTestUseCase(repo, nil, date(2025, 6, 1))

	resp, err := uc.Execute(context.Background(), &Request{
		CustomerID: 100,
		Date:       date(2025, 6, 10),
		StartTime:  "10:00",
		Source:     SourceCustomer,
	})

	require.NoError(t, err)
	assert.Equal(t, string(domain.StatusPending), resp.Status)
	assert.Equal(t, int64(100), resp.CustomerID)
	assert.Nil(t, resp.CreatedByStaffID)
	assert.NotZero(t, resp.ID)
}

func TestExecute_DoubleBookingPrevented(t *testing.T) {
	repo := newFakeRepo()
	uc := newTestUseCase(repo, nil, date(2025, 6, 1))

	_, err := uc.Execute(context.Background(), &Request{
		CustomerID: 100,
		Date:       date(2025, 6, 10),
		StartTime:  "10:00",
		Source:     SourceCustomer,
	})
	require.NoError(t, err)

	// Второй клиент на тот же слот
	_, err = uc.Execute(context.Background(), &Request{
		CustomerID: 200,
		Date:       date(2025, 6, 10),
		StartTime:  "10:00",
		Source:     SourceCustomer,
	})
	assert.ErrorIs(t, err, ErrSlotTaken)
}

func TestExecute_PastDateRejected(t *testing.T) {
	repo := newFakeRepo()
	uc := newTestUseCase(repo, nil, date(2025, 6, 10))

	_, err := uc.Execute(context.Background(), &Request{
		CustomerID: 100,
		Date:       date(2025, 6, 9),
		StartTime:  "09:00",
		Source:     SourceCustomer,
	})
	assert.ErrorIs(t, err, ErrPastDate)
	assert.Empty(t, repo.appointments, "no partial writes on validation failure")
}

func TestExecute_InvalidSlotRejected(t *testing.T) {
	repo := newFakeRepo()
	uc := newTestUseCase(repo, nil, date(2025, 6, 1))

	for _, slot := range []types.TimeString{"08:30", "18:00", "10:15"} {
		_, err := uc.Execute(context.Background(), &Request{
			CustomerID: 100,
			Date:       date(2025, 6, 10),
			StartTime:  slot,
			Source:     SourceCustomer,
		})
		assert.ErrorIs(t, err, ErrInvalidSlot, "slot %s", slot)
	}
}

func TestExecute_WeeklyLimitSameWeek(t *testing.T) {
	repo := newFakeRepo()
	// Подтвержденная запись в среду 2025-06-11
	repo.add(&domain.Appointment{
		CustomerID: 100,
		Date:       date(2025, 6, 11),
		StartTime:  "14:00",
		Status:     domain.StatusConfirmed,
	})
	uc := newTestUseCase(repo, nil, date(2025, 6, 1))

	// Понедельник той же недели - отказ с датой конфликта в тексте
	_, err := uc.Execute(context.Background(), &Request{
		CustomerID: 100,
		Date:       date(2025, 6, 9),
		StartTime:  "10:00",
		Source:     SourceCustomer,
	})
	require.ErrorIs(t, err, ErrWeeklyLimit)
	assert.Contains(t, err.Error(), "2025-06-11")

	// Понедельник следующей недели - успех
	resp, err := uc.Execute(context.Background(), &Request{
		CustomerID: 100,
		Date:       date(2025, 6, 16),
		StartTime:  "10:00",
		Source:     SourceCustomer,
	})
	require.NoError(t, err)
	assert.Equal(t, string(domain.StatusPending), resp.Status)
}

func TestExecute_CancelledAppointmentDoesNotBlock(t *testing.T) {
	repo := newFakeRepo()
	repo.add(&domain.Appointment{
		CustomerID: 100,
		Date:       date(2025, 6, 11),
		StartTime:  "14:00",
		Status:     domain.StatusCancelled,
	})
	repo.add(&domain.Appointment{
		CustomerID: 200,
		Date:       date(2025, 6, 10),
		StartTime:  "10:00",
		Status:     domain.StatusCancelled,
	})
	uc := newTestUseCase(repo, nil, date(2025, 6, 1))

	// Та же неделя, тот же слот, что и у отмененных записей
	_, err := uc.Execute(context.Background(), &Request{
		CustomerID: 100,
		Date:       date(2025, 6, 10),
		StartTime:  "10:00",
		Source:     SourceCustomer,
	})
	assert.NoError(t, err)
}

func TestExecute_RecheckCatchesConcurrentBooking(t *testing.T) {
	repo := newFakeRepo()
	// Конкурент занимает слот между предварительной и повторной проверкой
	repo.onTxRead = func(r *fakeRepo) {
		r.add(&domain.Appointment{
			CustomerID: 999,
			Date:       date(2025, 6, 10),
			StartTime:  "10:00",
			Status:     domain.StatusPending,
		})
	}
	uc := newTestUseCase(repo, nil, date(2025, 6, 1))

	_, err := uc.Execute(context.Background(), &Request{
		CustomerID: 100,
		Date:       date(2025, 6, 10),
		StartTime:  "10:00",
		Source:     SourceCustomer,
	})
	assert.ErrorIs(t, err, ErrSlotTaken)

	// Записалась только конкурентная запись
	require.Len(t, repo.appointments, 1)
	assert.Equal(t, int64(999), repo.appointments[0].CustomerID)
}

func TestExecute_StoreUniqueViolationMapsToSlotTaken(t *testing.T) {
	repo := newFakeRepo()
	repo.createErr = appointmentRepo.ErrSlotTaken
	uc := newTestUseCase(repo, nil, date(2025, 6, 1))

	_, err := uc.Execute(context.Background(), &Request{
		CustomerID: 100,
		Date:       date(2025, 6, 10),
		StartTime:  "10:00",
		Source:     SourceCustomer,
	})
	assert.ErrorIs(t, err, ErrSlotTaken)
}

func TestExecute_StaffBookingCreatesConfirmed(t *testing.T) {
	repo := newFakeRepo()
	identity := &fakeIdentity{users: map[int64]*identityservice.User{
		7: {ID: 7, Name: "Olga", Role: "staff"},
	}}
	uc := newTestUseCase(repo, identity, date(2025, 6, 1))

	resp, err := uc.Execute(context.Background(), &Request{
		CustomerID: 100,
		Date:       date(2025, 6, 10),
		StartTime:  "11:30",
		Source:     SourceStaff,
		StaffID:    7,
	})

	require.NoError(t, err)
	assert.Equal(t, string(domain.StatusConfirmed), resp.Status)
	require.NotNil(t, resp.CreatedByStaffID)
	assert.Equal(t, int64(7), *resp.CreatedByStaffID)
}

func TestExecute_StaffBookingDeniedForNonStaff(t *testing.T) {
	repo := newFakeRepo()
	identity := &fakeIdentity{users: map[int64]*identityservice.User{
		8: {ID: 8, Name: "Ivan", Role: "customer"},
	}}
	uc := newTestUseCase(repo, identity, date(2025, 6, 1))

	// Обычный пользователь
	_, err := uc.Execute(context.Background(), &Request{
		CustomerID: 100,
		Date:       date(2025, 6, 10),
		StartTime:  "11:30",
		Source:     SourceStaff,
		StaffID:    8,
	})
	assert.ErrorIs(t, err, ErrAccessDenied)

	// Неизвестный пользователь
	_, err = uc.Execute(context.Background(), &Request{
		CustomerID: 100,
		Date:       date(2025, 6, 10),
		StartTime:  "11:30",
		Source:     SourceStaff,
		StaffID:    404,
	})
	assert.ErrorIs(t, err, ErrAccessDenied)
}

func TestExecute_StaffBookingRunsSameValidation(t *testing.T) {
	repo := newFakeRepo()
	repo.add(&domain.Appointment{
		CustomerID: 100,
		Date:       date(2025, 6, 11),
		StartTime:  "14:00",
		Status:     domain.StatusConfirmed,
	})
	identity := &fakeIdentity{users: map[int64]*identityservice.User{
		7: {ID: 7, Name: "Olga", Role: "staff"},
	}}
	uc := newTestUseCase(repo, identity, date(2025, 6, 1))

	// Сотрудник тоже не может нарушить недельный лимит клиента
	_, err := uc.Execute(context.Background(), &Request{
		CustomerID: 100,
		Date:       date(2025, 6, 9),
		StartTime:  "10:00",
		Source:     SourceStaff,
		StaffID:    7,
	})
	assert.ErrorIs(t, err, ErrWeeklyLimit)
}
