package calendarservice

import "errors"

var (
	// ErrSlotConflict возвращается, когда календарный сервис обнаружил
	// конкурирующее бронирование на тот же интервал
	ErrSlotConflict = errors.New("calendarservice client: slot already taken")

	// ErrInvalidEvent возвращается, когда сервис отклонил событие как некорректное
	ErrInvalidEvent = errors.New("calendarservice client: invalid event payload")

	// ErrInternal возвращается при внутренних ошибках клиента
	ErrInternal = errors.New("calendarservice client: internal error")

	// ErrInvalidResponse возвращается при некорректном ответе от сервиса
	ErrInvalidResponse = errors.New("calendarservice client: invalid response")
)
