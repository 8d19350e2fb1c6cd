package availability

import "errors"

var (
	// ErrInvalidConfig возвращается при нарушении инвариантов конфигурации слотов
	ErrInvalidConfig = errors.New("availability: invalid slot config")

	// ErrInvalidSlotRange возвращается при некорректном интервале слота
	ErrInvalidSlotRange = errors.New("availability: invalid slot time range")

	// ErrSlotOverlap возвращается, когда слот пересекается с существующим
	ErrSlotOverlap = errors.New("availability: slot overlaps an existing slot")

	// ErrSlotNotFound возвращается, когда слот не найден
	ErrSlotNotFound = errors.New("availability: slot not found")

	// ErrSlotBooked возвращается при попытке изменить забронированный слот
	ErrSlotBooked = errors.New("availability: slot is booked")

	// ErrDayNotFound возвращается, когда дата вне просматриваемого месяца
	ErrDayNotFound = errors.New("availability: day not found")

	// ErrDayNotCustomized возвращается при сбросе неизменённого дня
	ErrDayNotCustomized = errors.New("availability: day is not customized")

	// ErrNothingToUndo возвращается, когда нет ожидающего снапшота копирования
	ErrNothingToUndo = errors.New("availability: nothing to undo")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("availability: invalid input data")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("availability: internal error")
)
