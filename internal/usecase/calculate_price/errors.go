package calculate_price

import "errors"

var (
	// ErrCourtNotFound возвращается, когда корт не найден
	ErrCourtNotFound = errors.New("calculate_price: court not found")

	// ErrCoachNotFound возвращается, когда тренер не найден
	ErrCoachNotFound = errors.New("calculate_price: coach not found")

	// ErrCoachNotAvailable возвращается, когда тренер недоступен для найма
	ErrCoachNotAvailable = errors.New("calculate_price: coach is not available")

	// ErrInvalidTimeFormat возвращается при некорректном формате времени слота
	ErrInvalidTimeFormat = errors.New("calculate_price: invalid time format")

	// ErrInvalidResourceCount возвращается при отрицательном количестве инвентаря
	ErrInvalidResourceCount = errors.New("calculate_price: resource count must be non-negative")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("calculate_price: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("calculate_price: internal error")
)
