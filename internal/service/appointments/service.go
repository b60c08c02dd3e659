package appointments

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/MBL-AppointmentService/internal/domain"
	appointmentRepo "github.com/m04kA/MBL-AppointmentService/internal/infra/storage/appointment"
	identityClient "github.com/m04kA/MBL-AppointmentService/internal/integrations/identityservice"
	"github.com/m04kA/MBL-AppointmentService/internal/service/appointments/models"
)

// Service сервис для работы с записями на посещение шоурума
type Service struct {
	appointmentRepo AppointmentRepository
	identityClient  IdentityServiceClient
	logger          Logger
}

// NewService создает новый экземпляр сервиса записей
func NewService(
	appointmentRepo AppointmentRepository,
	identityClient IdentityServiceClient,
	logger Logger,
) *Service {
	return &Service{
		appointmentRepo: appointmentRepo,
		identityClient:  identityClient,
		logger:          logger,
	}
}

// GetByID получает запись по ID
// Проверяет права доступа - клиент может видеть только свою запись,
// сотрудник может видеть любую
func (s *Service) GetByID(ctx context.Context, id int64, actorID int64) (*models.AppointmentResponse, error) {
	s.logger.Info("GetByID: fetching appointment id=%d for user=%d", id, actorID)

	appointment, err := s.appointmentRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, appointmentRepo.ErrAppointmentNotFound) {
			s.logger.Warn("GetByID: appointment id=%d not found", id)
			return nil, ErrAppointmentNotFound
		}
		s.logger.Error("GetByID: repository error for appointment id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}

	// Проверяем права доступа
	if err := s.checkActorAccess(ctx, appointment, actorID); err != nil {
		s.logger.Warn("GetByID: access denied for user=%d to appointment id=%d", actorID, id)
		return nil, err
	}

	s.logger.Info("GetByID: successfully fetched appointment id=%d", id)
	return models.FromDomainAppointment(appointment), nil
}

// GetCustomerAppointments получает историю записей клиента
// Клиент видит только свои записи, сотрудник - записи любого клиента.
// Поддерживает фильтрацию по периоду, статусу и включению отменённых записей
func (s *Service) GetCustomerAppointments(ctx context.Context, req *models.GetCustomerAppointmentsRequest) (*models.AppointmentListResponse, error) {
	s.logger.Info("GetCustomerAppointments: fetching appointments for customer=%d, actor=%d",
		req.CustomerID, req.ActorID)

	// Клиент запрашивает чужие записи - требуется роль сотрудника
	if req.ActorID != req.CustomerID {
		if err := s.checkStaffAccess(ctx, req.ActorID); err != nil {
			s.logger.Warn("GetCustomerAppointments: access denied for actor=%d to customer=%d",
				req.ActorID, req.CustomerID)
			return nil, err
		}
	}

	filter, err := req.ToDomainFilter()
	if err != nil {
		s.logger.Warn("GetCustomerAppointments: invalid filter for customer=%d: %v", req.CustomerID, err)
		return nil, fmt.Errorf("%w: invalid filter", ErrInvalidInput)
	}

	appointments, err := s.appointmentRepo.GetByCustomer(ctx, filter)
	if err != nil {
		s.logger.Error("GetCustomerAppointments: repository error for customer=%d: %v", req.CustomerID, err)
		return nil, fmt.Errorf("%w: GetCustomerAppointments - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("GetCustomerAppointments: successfully fetched %d appointments for customer=%d",
		len(appointments), req.CustomerID)
	return models.FromDomainAppointmentList(appointments), nil
}

// UpdateStatus обновляет статус записи
// Доступно только сотрудникам. Переход проверяется машиной состояний:
// pending -> confirmed, pending/confirmed -> cancelled, cancelled - терминальный
func (s *Service) UpdateStatus(ctx context.Context, appointmentID int64, req *models.UpdateStatusRequest) error {
	s.logger.Info("UpdateStatus: updating appointment id=%d to status=%s by user=%d",
		appointmentID, req.Status, req.ActorID)

	// Проверяем права доступа (только сотрудник)
	if err := s.checkStaffAccess(ctx, req.ActorID); err != nil {
		return err
	}

	appointment, err := s.appointmentRepo.GetByID(ctx, appointmentID)
	if err != nil {
		if errors.Is(err, appointmentRepo.ErrAppointmentNotFound) {
			s.logger.Warn("UpdateStatus: appointment id=%d not found", appointmentID)
			return ErrAppointmentNotFound
		}
		s.logger.Error("UpdateStatus: repository error for appointment id=%d: %v", appointmentID, err)
		return fmt.Errorf("%w: UpdateStatus - repository error: %v", ErrInternal, err)
	}

	// Валидируем и конвертируем статус
	newStatus, err := models.ToDomainAppointmentStatus(req.Status)
	if err != nil {
		s.logger.Warn("UpdateStatus: invalid status=%s for appointment id=%d", req.Status, appointmentID)
		return fmt.Errorf("%w: invalid status", ErrInvalidInput)
	}

	if !appointment.CanTransitionTo(newStatus) {
		s.logger.Warn("UpdateStatus: transition %s -> %s not allowed for appointment id=%d",
			appointment.Status, newStatus, appointmentID)
		return ErrInvalidTransition
	}

	if err := s.appointmentRepo.UpdateStatus(ctx, appointmentID, newStatus); err != nil {
		if errors.Is(err, appointmentRepo.ErrAppointmentNotFound) {
			s.logger.Warn("UpdateStatus: appointment id=%d not found during update", appointmentID)
			return ErrAppointmentNotFound
		}
		s.logger.Error("UpdateStatus: repository error for appointment id=%d: %v", appointmentID, err)
		return fmt.Errorf("%w: UpdateStatus - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("UpdateStatus: successfully updated appointment id=%d to status=%s", appointmentID, newStatus)
	return nil
}

// Cancel отменяет запись
// Клиент может отменить только свою запись, сотрудник - любую.
// Отмена освобождает слот и снимает запись с недельного лимита клиента
func (s *Service) Cancel(ctx context.Context, appointmentID int64, req *models.CancelAppointmentRequest) error {
	s.logger.Info("Cancel: cancelling appointment id=%d by user=%d", appointmentID, req.ActorID)

	// Валидация до любых чтений - колонка причины ограничена по длине
	if len(req.CancellationReason) > domain.MaxCancellationReasonLength {
		s.logger.Warn("Cancel: cancellation reason too long for appointment id=%d (%d chars)",
			appointmentID, len(req.CancellationReason))
		return fmt.Errorf("%w: cancellation reason exceeds %d characters",
			ErrInvalidInput, domain.MaxCancellationReasonLength)
	}

	appointment, err := s.appointmentRepo.GetByID(ctx, appointmentID)
	if err != nil {
		if errors.Is(err, appointmentRepo.ErrAppointmentNotFound) {
			s.logger.Warn("Cancel: appointment id=%d not found", appointmentID)
			return ErrAppointmentNotFound
		}
		s.logger.Error("Cancel: repository error for appointment id=%d: %v", appointmentID, err)
		return fmt.Errorf("%w: Cancel - repository error: %v", ErrInternal, err)
	}

	// Проверяем права доступа
	if appointment.CustomerID != req.ActorID {
		if err := s.checkStaffAccess(ctx, req.ActorID); err != nil {
			s.logger.Warn("Cancel: access denied for user=%d to cancel appointment id=%d",
				req.ActorID, appointmentID)
			return ErrAccessDenied
		}
	}

	// Повторная отмена - недопустимый переход
	if !appointment.CanBeCancelled() {
		s.logger.Warn("Cancel: appointment id=%d cannot be cancelled, status=%s",
			appointmentID, appointment.Status)
		return ErrCannotCancel
	}

	if err := s.appointmentRepo.Cancel(ctx, appointmentID, req.CancellationReason); err != nil {
		if errors.Is(err, appointmentRepo.ErrAppointmentNotFound) {
			s.logger.Warn("Cancel: appointment id=%d not found during cancellation", appointmentID)
			return ErrAppointmentNotFound
		}
		s.logger.Error("Cancel: repository error for appointment id=%d: %v", appointmentID, err)
		return fmt.Errorf("%w: Cancel - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Cancel: successfully cancelled appointment id=%d", appointmentID)
	return nil
}

// Delete удаляет запись физически
// Доступно только сотрудникам, для служебных сценариев (ошибочно созданные
// записи). Обычный путь - отмена через Cancel
func (s *Service) Delete(ctx context.Context, appointmentID int64, actorID int64) error {
	s.logger.Info("Delete: deleting appointment id=%d by user=%d", appointmentID, actorID)

	if err := s.checkStaffAccess(ctx, actorID); err != nil {
		s.logger.Warn("Delete: access denied for user=%d to delete appointment id=%d", actorID, appointmentID)
		return err
	}

	if err := s.appointmentRepo.Delete(ctx, appointmentID); err != nil {
		if errors.Is(err, appointmentRepo.ErrAppointmentNotFound) {
			s.logger.Warn("Delete: appointment id=%d not found", appointmentID)
			return ErrAppointmentNotFound
		}
		s.logger.Error("Delete: repository error for appointment id=%d: %v", appointmentID, err)
		return fmt.Errorf("%w: Delete - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Delete: successfully deleted appointment id=%d", appointmentID)
	return nil
}

// Вспомогательные методы

// checkActorAccess проверяет, что пользователь имеет доступ к записи
// Пользователь может видеть свою запись или если он сотрудник
func (s *Service) checkActorAccess(ctx context.Context, appointment *domain.Appointment, actorID int64) error {
	// Владелец записи - доступ разрешён
	if appointment.CustomerID == actorID {
		return nil
	}

	if err := s.checkStaffAccess(ctx, actorID); err != nil {
		// Ошибка уже залогирована в checkStaffAccess
		return ErrAccessDenied
	}

	return nil
}

// checkStaffAccess проверяет, что пользователь является сотрудником
func (s *Service) checkStaffAccess(ctx context.Context, userID int64) error {
	user, err := s.identityClient.GetUser(ctx, userID)
	if err != nil {
		if errors.Is(err, identityClient.ErrUserNotFound) {
			s.logger.Warn("checkStaffAccess: user id=%d not found", userID)
			return ErrAccessDenied
		}
		s.logger.Error("checkStaffAccess: failed to get user id=%d: %v", userID, err)
		return fmt.Errorf("%w: checkStaffAccess - failed to get user: %v", ErrInternal, err)
	}

	if !user.IsStaff() {
		s.logger.Warn("checkStaffAccess: user id=%d is not a staff member", userID)
		return ErrAccessDenied
	}

	return nil
}
