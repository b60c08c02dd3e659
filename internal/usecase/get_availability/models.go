package get_availability

import (
	"time"

	"github.com/m04kA/MBL-AppointmentService/pkg/types"
)

// Request модель запроса доступности слотов
type Request struct {
	Date time.Time // Дата, на которую запрашивается доступность
}

// Response модель ответа с доступностью каждого слота дня
type Response struct {
	Date  time.Time // Дата, на которую вычислена доступность
	Slots []Slot    // Все слоты дня в каноническом порядке
}

// Slot доступность одного слота
type Slot struct {
	StartTime types.TimeString // Время начала слота, например "10:00"
	Available bool             // Свободен ли слот
}
