package domain

// Pricing constants
const (
	// PremiumCourtPriceThreshold минимальная базовая цена indoor корта,
	// с которой применяется premium надбавка
	PremiumCourtPriceThreshold = 25.0
)

// Facility schedule constants
const (
	// FirstSlotHour час начала первого слота дня
	FirstSlotHour = 6
	// LastSlotHour час начала последнего слота дня
	LastSlotHour = 21
	// SlotDurationMinutes длительность одного слота
	SlotDurationMinutes = 60
)

// Business validation constants
const (
	MinRuleHour                 = 0
	MaxRuleHour                 = 23
	MinWeekdayIndex             = 0 // Воскресенье
	MaxWeekdayIndex             = 6 // Суббота
	MaxAdvanceBookingDays       = 30
	MaxNotesLength              = 500
	MaxCancellationReasonLength = 500
)

// Time format constants
const (
	TimeFormat = "15:04"      // HH:MM
	DateFormat = "2006-01-02" // YYYY-MM-DD
)

// InactiveStatuses список статусов неактивных бронирований
// Используется для фильтрации при подсчёте занятости слотов
var InactiveStatuses = []BookingStatus{
	StatusCancelledByUser,
	StatusCancelledByFacility,
	StatusNoShow,
}

// ActiveStatuses список статусов активных бронирований
var ActiveStatuses = []BookingStatus{
	StatusPending,
	StatusConfirmed,
	StatusCompleted,
}
