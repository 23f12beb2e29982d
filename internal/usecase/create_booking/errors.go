package create_booking

import "errors"

var (
	// ErrCourtNotFound возвращается, когда корт не найден
	ErrCourtNotFound = errors.New("create_booking: court not found")

	// ErrCoachNotFound возвращается, когда тренер не найден
	ErrCoachNotFound = errors.New("create_booking: coach not found")

	// ErrCoachNotAvailable возвращается, когда тренер недоступен для найма
	ErrCoachNotAvailable = errors.New("create_booking: coach is not available")

	// ErrSlotNotAvailable возвращается, когда слот уже занят
	ErrSlotNotAvailable = errors.New("create_booking: slot is not available")

	// ErrInsufficientStock возвращается, когда запрошенного инвентаря нет в наличии
	ErrInsufficientStock = errors.New("create_booking: insufficient equipment stock")

	// ErrInvalidDate возвращается при дате бронирования в прошлом
	ErrInvalidDate = errors.New("create_booking: invalid booking date")

	// ErrDateTooFarInFuture возвращается, когда дата превышает горизонт бронирования
	ErrDateTooFarInFuture = errors.New("create_booking: date is too far in the future")

	// ErrInvalidTimeSlot возвращается, когда время начала вне сетки слотов клуба
	ErrInvalidTimeSlot = errors.New("create_booking: invalid time slot")

	// ErrInvalidTimeFormat возвращается при некорректном формате времени слота
	ErrInvalidTimeFormat = errors.New("create_booking: invalid time format")

	// ErrInvalidResourceCount возвращается при отрицательном количестве инвентаря
	ErrInvalidResourceCount = errors.New("create_booking: resource count must be non-negative")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("create_booking: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("create_booking: internal error")
)
