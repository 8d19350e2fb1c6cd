package plan_booking

import "errors"

var (
	// ErrAccessDenied возвращается при непроверенной или чужой ссылке
	ErrAccessDenied = errors.New("plan_booking: access denied")

	// ErrGrantExpired возвращается, когда срок действия ссылки истёк
	ErrGrantExpired = errors.New("plan_booking: grant expired")

	// ErrAlreadyBooked возвращается, когда по тикету уже есть бронирование
	ErrAlreadyBooked = errors.New("plan_booking: ticket already booked")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("plan_booking: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("plan_booking: internal error")
)
