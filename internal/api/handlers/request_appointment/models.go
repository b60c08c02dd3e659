package request_appointment

import (
	"time"

	"github.com/m04kA/MBL-AppointmentService/internal/domain"
	createAppointment "github.com/m04kA/MBL-AppointmentService/internal/usecase/create_appointment"
	"github.com/m04kA/MBL-AppointmentService/pkg/types"
)

// RequestAppointmentRequest HTTP request model
type RequestAppointmentRequest struct {
	VisitDate string  `json:"visitDate"` // "2025-06-10"
	StartTime string  `json:"startTime"` // "10:00"
	Notes     *string `json:"notes,omitempty"`
}

// AppointmentResponse HTTP response model
type AppointmentResponse struct {
	ID               int64   `json:"id"`
	CustomerID       int64   `json:"customerId"`
	VisitDate        string  `json:"visitDate"`
	StartTime        string  `json:"startTime"`
	Status           string  `json:"status"`
	CreatedByStaffID *int64  `json:"createdByStaffId,omitempty"`
	Notes            *string `json:"notes,omitempty"`
	CreatedAt        string  `json:"createdAt"`
	UpdatedAt        string  `json:"updatedAt"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *RequestAppointmentRequest) ToUseCaseRequest(customerID int64) (*createAppointment.Request, error) {
	visitDate, err := time.Parse(domain.DateFormat, r.VisitDate)
	if err != nil {
		return nil, err
	}

	startTime, err := types.NewTimeStringFromString(r.StartTime)
	if err != nil {
		return nil, err
	}

	return &createAppointment.Request{
		CustomerID: customerID,
		Date:       visitDate,
		StartTime:  startTime,
		Notes:      r.Notes,
		Source:     createAppointment.SourceCustomer,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *createAppointment.Response) *AppointmentResponse {
	return &AppointmentResponse{
		ID:               resp.ID,
		CustomerID:       resp.CustomerID,
		VisitDate:        resp.Date.Format(domain.DateFormat),
		StartTime:        resp.StartTime.String(),
		Status:           resp.Status,
		CreatedByStaffID: resp.CreatedByStaffID,
		Notes:            resp.Notes,
		CreatedAt:        resp.CreatedAt.Format(time.RFC3339),
		UpdatedAt:        resp.UpdatedAt.Format(time.RFC3339),
	}
}
