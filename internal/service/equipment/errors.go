package equipment

import "errors"

var (
	// ErrEquipmentNotFound возвращается, когда позиция инвентаря не найдена
	ErrEquipmentNotFound = errors.New("equipment not found")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("service: internal error")
)
