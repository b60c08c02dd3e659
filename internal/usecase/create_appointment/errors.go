package create_appointment

import "errors"

var (
	// ErrPastDate возвращается при попытке записаться на прошедшую дату
	ErrPastDate = errors.New("create_appointment: date is in the past")

	// ErrInvalidSlot возвращается, когда время не входит в канонический набор слотов
	ErrInvalidSlot = errors.New("create_appointment: time is not a bookable slot")

	// ErrWeeklyLimit возвращается, когда у клиента уже есть активная запись
	// на этой календарной неделе. Текст ошибки содержит дату конфликтующей
	// записи - UI предлагает выбрать другую неделю.
	ErrWeeklyLimit = errors.New("create_appointment: customer already has an appointment this week")

	// ErrSlotTaken возвращается, когда слот занят активной записью.
	// Отличается от ErrWeeklyLimit - UI предлагает другое время того же дня.
	ErrSlotTaken = errors.New("create_appointment: slot is already taken")

	// ErrAccessDenied возвращается, когда прямое создание записи запрошено
	// не сотрудником шоурума
	ErrAccessDenied = errors.New("create_appointment: access denied")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("create_appointment: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("create_appointment: internal error")
)
