package domain

// EquipmentType represents the category of rentable equipment
type EquipmentType string

const (
	EquipmentTypeRacket      EquipmentType = "racket"
	EquipmentTypeShoes       EquipmentType = "shoes"
	EquipmentTypeShuttlecock EquipmentType = "shuttlecock"
)

// IsValid returns true if the equipment type is one of the known values
func (t EquipmentType) IsValid() bool {
	return t == EquipmentTypeRacket || t == EquipmentTypeShoes || t == EquipmentTypeShuttlecock
}

// Equipment represents a rentable equipment item in the catalog
type Equipment struct {
	ID             int64
	Name           string
	Type           EquipmentType
	PricePerHour   float64
	TotalStock     int
	AvailableStock int
}

// HasStock returns true if at least count items are available for rent
func (e *Equipment) HasStock(count int) bool {
	return count <= e.AvailableStock
}

// EquipmentPrices цены аренды по типам оборудования
// Снимок каталога для одного вычисления цены; отсутствующий тип даёт нулевую стоимость
type EquipmentPrices map[EquipmentType]float64
