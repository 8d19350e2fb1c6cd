package grants

import "errors"

var (
	// ErrAccessDenied ссылка некорректна, неполна или принадлежит другому пользователю
	ErrAccessDenied = errors.New("grants service: access denied")

	// ErrGrantExpired срок действия ссылки истёк
	ErrGrantExpired = errors.New("grants service: grant expired")

	// ErrAlreadyBooked по тикету уже есть активное бронирование
	ErrAlreadyBooked = errors.New("grants service: ticket already booked")

	// ErrSessionNotFound сессия с таким токеном не проходила проверку
	ErrSessionNotFound = errors.New("grants service: session not found")

	// ErrGrantNotUsable сессия не в состоянии, допускающем бронирование
	ErrGrantNotUsable = errors.New("grants service: grant not usable")

	// ErrInternal внутренняя ошибка сервиса
	ErrInternal = errors.New("grants service: internal error")
)
