package staff_create_appointment

import (
	"errors"
	"net/http"

	"github.com/m04kA/MBL-AppointmentService/internal/api/handlers"
	"github.com/m04kA/MBL-AppointmentService/internal/api/middleware"
	createAppointment "github.com/m04kA/MBL-AppointmentService/internal/usecase/create_appointment"
	"github.com/m04kA/MBL-AppointmentService/pkg/types"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidDate        = "некорректный формат даты визита, ожидается YYYY-MM-DD"
	msgInvalidTime        = "некорректный формат времени начала, ожидается HH:MM"
	msgMissingUserID      = "отсутствует ID пользователя"
	msgForbidden          = "доступ запрещен"
	msgPastDate           = "дата визита уже прошла"
	msgInvalidSlot        = "выбранное время не входит в расписание шоурума"
	msgWeeklyLimit        = "у клиента уже есть запись на этой неделе"
	msgSlotTaken          = "выбранный слот уже занят"
	msgInvalidInput       = "некорректные данные записи"
)

type Handler struct {
	useCase CreateAppointmentUseCase
	logger  Logger
}

func NewHandler(useCase CreateAppointmentUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/staff/appointments
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	staffID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("POST /staff/appointments - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	var req StaffCreateAppointmentRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /staff/appointments - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	useCaseReq, err := req.ToUseCaseRequest(staffID)
	if err != nil {
		h.logger.Warn("POST /staff/appointments - Failed to parse request: %v", err)
		if errors.Is(err, types.ErrInvalidTimeFormat) {
			handlers.RespondBadRequest(w, msgInvalidTime)
		} else {
			handlers.RespondBadRequest(w, msgInvalidDate)
		}
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, createAppointment.ErrAccessDenied):
			h.logger.Warn("POST /staff/appointments - Access denied: staff_id=%d", staffID)
			handlers.RespondForbidden(w, msgForbidden)

		case errors.Is(err, createAppointment.ErrPastDate):
			h.logger.Warn("POST /staff/appointments - Past date: staff_id=%d, date=%s", staffID, req.VisitDate)
			handlers.RespondBadRequest(w, msgPastDate)

		case errors.Is(err, createAppointment.ErrInvalidSlot):
			h.logger.Warn("POST /staff/appointments - Invalid slot: staff_id=%d, time=%s", staffID, req.StartTime)
			handlers.RespondBadRequest(w, msgInvalidSlot)

		case errors.Is(err, createAppointment.ErrWeeklyLimit):
			h.logger.Warn("POST /staff/appointments - Weekly limit: customer_id=%d, date=%s",
				req.CustomerID, req.VisitDate)
			handlers.RespondConflict(w, msgWeeklyLimit)

		case errors.Is(err, createAppointment.ErrSlotTaken):
			h.logger.Warn("POST /staff/appointments - Slot taken: customer_id=%d, date=%s, time=%s",
				req.CustomerID, req.VisitDate, req.StartTime)
			handlers.RespondConflict(w, msgSlotTaken)

		case errors.Is(err, createAppointment.ErrInvalidInput):
			h.logger.Warn("POST /staff/appointments - Invalid input: staff_id=%d: %v", staffID, err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("POST /staff/appointments - Failed to create appointment: staff_id=%d, customer_id=%d, error=%v",
				staffID, req.CustomerID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	response := FromUseCaseResponse(result)

	h.logger.Info("POST /staff/appointments - Appointment created successfully: appointment_id=%d, customer_id=%d, staff_id=%d",
		result.ID, req.CustomerID, staffID)
	handlers.RespondJSON(w, http.StatusCreated, response)
}
