package grantservice

import "errors"

var (
	// ErrGrantExpired возвращается, когда срок действия ссылки на бронирование истёк
	ErrGrantExpired = errors.New("grantservice client: grant expired")

	// ErrAlreadyBooked возвращается, когда по тикету уже есть активное бронирование
	// (не отменённое и не завершённое)
	ErrAlreadyBooked = errors.New("grantservice client: ticket already has an active booking")

	// ErrAccessDenied возвращается при некорректной или чужой ссылке
	ErrAccessDenied = errors.New("grantservice client: access denied")

	// ErrInternal возвращается при внутренних ошибках клиента
	ErrInternal = errors.New("grantservice client: internal error")

	// ErrInvalidResponse возвращается при некорректном ответе от сервиса
	ErrInvalidResponse = errors.New("grantservice client: invalid response")
)
