package create_consultation

import "errors"

var (
	// ErrAccessDenied возвращается при непроверенной или чужой ссылке
	ErrAccessDenied = errors.New("create_consultation: access denied")

	// ErrGrantExpired возвращается, когда срок действия ссылки истёк
	ErrGrantExpired = errors.New("create_consultation: grant expired")

	// ErrAlreadyBooked возвращается, когда грант уже потреблён
	ErrAlreadyBooked = errors.New("create_consultation: ticket already booked")

	// ErrSlotNotAvailable возвращается, когда выбранный слот занят или отсутствует
	// Сессия остаётся проверенной, посетитель может выбрать другой слот
	ErrSlotNotAvailable = errors.New("create_consultation: slot is not available")

	// ErrSlotConflict возвращается, когда календарь отклонил событие из-за
	// пересечения. Сессия остаётся проверенной, попытку можно повторить
	ErrSlotConflict = errors.New("create_consultation: slot conflict in calendar")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("create_consultation: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("create_consultation: internal error")
)
