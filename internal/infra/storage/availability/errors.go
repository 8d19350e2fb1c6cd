package availability

import "errors"

var (
	// ErrConfigNotFound возвращается, когда конфигурация слотов не найдена
	ErrConfigNotFound = errors.New("availability.repository: slot config not found")

	// ErrDayNotFound возвращается, когда день не найден
	ErrDayNotFound = errors.New("availability.repository: day not found")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("availability.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("availability.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("availability.repository: failed to scan row")

	// ErrMarshalSlots возвращается при ошибке сериализации списка слотов
	ErrMarshalSlots = errors.New("availability.repository: failed to marshal slots")

	// ErrUnmarshalSlots возвращается при ошибке десериализации списка слотов
	ErrUnmarshalSlots = errors.New("availability.repository: failed to unmarshal slots")
)
