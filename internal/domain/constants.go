package domain

// Showroom business hours. Slots are enumerated start-inclusive,
// end-exclusive: the last bookable slot starts at 17:30.
const (
	BusinessOpenTime    = "09:00"
	BusinessCloseTime   = "18:00"
	SlotDurationMinutes = 30
)

// Business validation constants
const (
	MaxNotesLength              = 500
	MaxCancellationReasonLength = 500
)

// DateFormat формат дат в API и логах
const DateFormat = "2006-01-02" // YYYY-MM-DD

// ActiveStatuses статусы, занимающие слот и учитываемые в недельном лимите
var ActiveStatuses = []AppointmentStatus{
	StatusPending,
	StatusConfirmed,
}

// InactiveStatuses статусы, не занимающие слот
var InactiveStatuses = []AppointmentStatus{
	StatusCancelled,
}

// Staff roles supplied by the identity service
const (
	RoleCustomer = "customer"
	RoleStaff    = "staff"
)
