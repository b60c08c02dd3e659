package create_appointment

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/MBL-AppointmentService/internal/domain"
	appointmentRepo "github.com/m04kA/MBL-AppointmentService/internal/infra/storage/appointment"
	identityClient "github.com/m04kA/MBL-AppointmentService/internal/integrations/identityservice"
	"github.com/m04kA/MBL-AppointmentService/internal/schedule"
)

// UseCase use case создания записи на визит в шоурум.
//
// Это единственная точка, создающая записи: клиентский поток (pending)
// и прямое создание сотрудником (confirmed) проходят одни и те же
// проверки. Разрозненных проверок на уровне обработчиков нет.
type UseCase struct {
	appointmentRepo AppointmentRepository
	identityClient  IdentityServiceClient
	txManager       TransactionManager
	timeProvider    TimeProvider
	logger          Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	appointmentRepo AppointmentRepository,
	identityClient IdentityServiceClient,
	txManager TransactionManager,
	logger Logger,
) *UseCase {
	return &UseCase{
		appointmentRepo: appointmentRepo,
		identityClient:  identityClient,
		txManager:       txManager,
		timeProvider:    &RealTimeProvider{},
		logger:          logger,
	}
}

// Execute выполняет создание записи по схеме "проверка, затем повторная
// проверка перед записью":
//
//  1. Валидация входа, отказ по прошедшей дате и некорректному слоту.
//  2. Предварительная проверка по обычному чтению - быстрый отказ до
//     открытия транзакции.
//  3. Повторная проверка по свежему чтению и запись в сериализуемой
//     транзакции (чтения дня и недели берут FOR UPDATE). Между повторной
//     проверкой и записью никакого другого I/O нет.
//
// Повторная проверка сужает окно гонки, но не устраняет его полностью;
// последней линией служит частичный уникальный индекс по (visit_date,
// start_time) в хранилище - его нарушение возвращается как ErrSlotTaken,
// неотличимо от провала обычной проверки. Недельный лимит индексом не
// покрыт, поэтому возможный дубль недели разрешается персоналом через
// календарную сетку, которая двойные записи не скрывает.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateAppointment: customer=%d, date=%s, time=%s, source=%s",
		req.CustomerID, req.Date.Format(domain.DateFormat), req.StartTime, req.Source)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreateAppointment: validation failed: %v", err)
		return nil, err
	}

	// 2. Получаем текущее время
	now := uc.timeProvider.Now()

	// 3. Запись в прошлое запрещена (проверка относительно времени запроса)
	if schedule.IsDateInPast(req.Date, now) {
		uc.logger.Warn("CreateAppointment: past date %s for customer=%d",
			req.Date.Format(domain.DateFormat), req.CustomerID)
		return nil, ErrPastDate
	}

	// 4. Время должно входить в канонический набор слотов
	if !schedule.IsBookableSlot(req.StartTime) {
		uc.logger.Warn("CreateAppointment: invalid slot %s for customer=%d", req.StartTime, req.CustomerID)
		return nil, ErrInvalidSlot
	}

	// 5. Прямое создание доступно только сотрудникам
	if req.Source == SourceStaff {
		if err := uc.checkStaffRole(ctx, req.StaffID); err != nil {
			return nil, err
		}
	}

	// 6. Предварительная проверка конфликтов по обычному чтению
	if err := uc.runConflictChecks(ctx, req); err != nil {
		uc.logger.Warn("CreateAppointment: pre-check failed for customer=%d: %v", req.CustomerID, err)
		return nil, err
	}

	status := domain.StatusPending
	var createdBy *int64
	if req.Source == SourceStaff {
		status = domain.StatusConfirmed
		createdBy = &req.StaffID
	}

	var result *domain.Appointment

	// 7. Повторная проверка и запись в сериализуемой транзакции
	err := uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		if err := uc.runConflictChecks(txCtx, req); err != nil {
			return err
		}

		appt := &domain.Appointment{
			CustomerID:       req.CustomerID,
			Date:             req.Date,
			StartTime:        req.StartTime,
			Status:           status,
			CreatedByStaffID: createdBy,
			Notes:            req.Notes,
		}

		created, err := uc.appointmentRepo.Create(txCtx, appt)
		if err != nil {
			if errors.Is(err, appointmentRepo.ErrSlotTaken) {
				// Нарушение уникального индекса хранилища - конкурент успел
				// первым; для вызывающего это обычный занятый слот
				return fmt.Errorf("%w: %s %s", ErrSlotTaken, req.Date.Format(domain.DateFormat), req.StartTime)
			}
			uc.logger.Error("CreateAppointment: failed to create appointment: %v", err)
			return fmt.Errorf("%w: failed to create appointment: %v", ErrInternal, err)
		}

		result = created
		return nil
	})

	if err != nil {
		if errors.Is(err, ErrWeeklyLimit) || errors.Is(err, ErrSlotTaken) {
			uc.logger.Warn("CreateAppointment: re-check failed for customer=%d: %v", req.CustomerID, err)
		}
		return nil, err
	}

	uc.logger.Info("CreateAppointment: successfully created appointment id=%d, status=%s",
		result.ID, result.Status)

	return &Response{
		ID:               result.ID,
		CustomerID:       result.CustomerID,
		Date:             result.Date,
		StartTime:        result.StartTime,
		Status:           string(result.Status),
		CreatedByStaffID: result.CreatedByStaffID,
		Notes:            result.Notes,
		CreatedAt:        result.CreatedAt,
		UpdatedAt:        result.UpdatedAt,
	}, nil
}

// runConflictChecks читает записи дня и недели и прогоняет бизнес-проверки.
// Внутри транзакции репозиторий сам добавляет FOR UPDATE к чтениям.
func (uc *UseCase) runConflictChecks(ctx context.Context, req *Request) error {
	dayAppointments, err := uc.appointmentRepo.GetByDate(ctx, domain.DayAppointmentsFilter{Date: req.Date})
	if err != nil {
		uc.logger.Error("CreateAppointment: failed to get day appointments: %v", err)
		return fmt.Errorf("%w: failed to get day appointments: %v", ErrInternal, err)
	}

	weekAppointments, err := uc.appointmentRepo.GetByCustomer(ctx, weekFilter(req.CustomerID, req.Date))
	if err != nil {
		uc.logger.Error("CreateAppointment: failed to get week appointments: %v", err)
		return fmt.Errorf("%w: failed to get week appointments: %v", ErrInternal, err)
	}

	return checkConflicts(req, dayAppointments, weekAppointments)
}

// checkStaffRole проверяет через IdentityService, что пользователь - сотрудник
func (uc *UseCase) checkStaffRole(ctx context.Context, staffID int64) error {
	user, err := uc.identityClient.GetUser(ctx, staffID)
	if err != nil {
		if errors.Is(err, identityClient.ErrUserNotFound) {
			uc.logger.Warn("CreateAppointment: staff user id=%d not found", staffID)
			return ErrAccessDenied
		}
		uc.logger.Error("CreateAppointment: failed to get user id=%d: %v", staffID, err)
		return fmt.Errorf("%w: failed to get user: %v", ErrInternal, err)
	}

	if !user.IsStaff() {
		uc.logger.Warn("CreateAppointment: user id=%d is not staff", staffID)
		return ErrAccessDenied
	}

	return nil
}
