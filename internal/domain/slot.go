package domain

import "github.com/m04kA/SMC-CourtBookingService/pkg/types"

// TimeSlot represents one hour of the court's daily grid with a preview price
// Цена превью вычисляется тем же расчётом, что и итоговая цена
// (с пустым выбором ресурсов), и округляется до целого
type TimeSlot struct {
	StartTime types.TimeString
	EndTime   types.TimeString
	Available bool
	Price     int
}
