package get_time_slots

import (
	"time"
)

// Request модель запроса сетки слотов
type Request struct {
	CourtID int64     // ID корта
	Date    time.Time // Дата, на которую запрашивается сетка
}

// Slot один слот сетки
type Slot struct {
	StartTime string `json:"startTime"` // "06:00"
	EndTime   string `json:"endTime"`   // "07:00"
	Available bool   `json:"available"`
	Price     int    `json:"price"` // Цена превью, округлённая до целого
}

// Response модель ответа с дневной сеткой слотов корта
type Response struct {
	CourtID int64  `json:"courtId"`
	Date    string `json:"date"` // YYYY-MM-DD
	Slots   []Slot `json:"slots"`
}
