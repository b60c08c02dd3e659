package create_appointment

import (
	"time"

	"github.com/m04kA/MBL-AppointmentService/pkg/types"
)

// Source источник запроса на создание записи
type Source string

const (
	// SourceCustomer запись создает сам клиент - стартовый статус pending
	SourceCustomer Source = "customer"

	// SourceStaff запись создает сотрудник за клиента - стартовый статус confirmed
	SourceStaff Source = "staff"
)

// Request модель запроса на создание записи
type Request struct {
	CustomerID int64            // ID клиента, на которого создается запись
	Date       time.Time        // Дата визита (без времени)
	StartTime  types.TimeString // Слот визита, например "10:00"
	Notes      *string          // Дополнительные пожелания (опционально)
	Source     Source           // Кто создает запись
	StaffID    int64            // ID сотрудника (только для SourceStaff)
}

// Response модель ответа с созданной записью
type Response struct {
	ID               int64            // ID созданной записи
	CustomerID       int64            // ID клиента
	Date             time.Time        // Дата визита
	StartTime        types.TimeString // Слот визита
	Status           string           // Статус записи
	CreatedByStaffID *int64           // ID сотрудника, если запись создана напрямую
	Notes            *string          // Пожелания

	CreatedAt time.Time // Время создания
	UpdatedAt time.Time // Время обновления
}
