package get_week_grid

import (
	"errors"
	"net/http"
	"time"

	"github.com/m04kA/MBL-AppointmentService/internal/api/handlers"
	"github.com/m04kA/MBL-AppointmentService/internal/api/middleware"
	"github.com/m04kA/MBL-AppointmentService/internal/domain"
	getWeekGrid "github.com/m04kA/MBL-AppointmentService/internal/usecase/get_week_grid"
)

const (
	msgMissingDate   = "отсутствует параметр date"
	msgInvalidDate   = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgMissingUserID = "отсутствует ID пользователя"
)

type Handler struct {
	useCase GetWeekGridUseCase
	logger  Logger
}

func NewHandler(useCase GetWeekGridUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/calendar/week?date=YYYY-MM-DD
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	if _, ok := middleware.GetUserID(r.Context()); !ok {
		h.logger.Warn("GET /calendar/week - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	dateStr := r.URL.Query().Get("date")
	if dateStr == "" {
		h.logger.Warn("GET /calendar/week - Missing date parameter")
		handlers.RespondBadRequest(w, msgMissingDate)
		return
	}

	anchorDate, err := time.Parse(domain.DateFormat, dateStr)
	if err != nil {
		h.logger.Warn("GET /calendar/week - Invalid date: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	result, err := h.useCase.Execute(r.Context(), &getWeekGrid.Request{AnchorDate: anchorDate})
	if err != nil {
		switch {
		case errors.Is(err, getWeekGrid.ErrInvalidInput):
			h.logger.Warn("GET /calendar/week - Invalid input: date=%s: %v", dateStr, err)
			handlers.RespondBadRequest(w, msgInvalidDate)

		default:
			h.logger.Error("GET /calendar/week - Failed to build grid: date=%s, error=%v", dateStr, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	// Сотрудник видит записи с данными клиентов, клиент - только занятость
	role, _ := middleware.GetUserRole(r.Context())
	staffView := role == domain.RoleStaff

	h.logger.Info("GET /calendar/week - Grid built: week=%s, staff_view=%t",
		result.WeekStart.Format(domain.DateFormat), staffView)
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result, staffView))
}
