package get_availability

import (
	"github.com/m04kA/MBL-AppointmentService/internal/domain"
	getAvailability "github.com/m04kA/MBL-AppointmentService/internal/usecase/get_availability"
)

// AvailabilityResponse HTTP response model
type AvailabilityResponse struct {
	Date  string         `json:"date"` // "2025-06-10"
	Slots []SlotResponse `json:"slots"`
}

// SlotResponse доступность одного слота
type SlotResponse struct {
	StartTime string `json:"startTime"` // "10:00"
	Available bool   `json:"available"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *getAvailability.Response) *AvailabilityResponse {
	out := &AvailabilityResponse{
		Date:  resp.Date.Format(domain.DateFormat),
		Slots: make([]SlotResponse, len(resp.Slots)),
	}
	for i, slot := range resp.Slots {
		out.Slots[i] = SlotResponse{
			StartTime: slot.StartTime.String(),
			Available: slot.Available,
		}
	}
	return out
}
