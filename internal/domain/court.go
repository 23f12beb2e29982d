package domain

// CourtType represents the kind of court surface
type CourtType string

const (
	CourtTypeIndoor  CourtType = "indoor"
	CourtTypeOutdoor CourtType = "outdoor"
)

// IsValid returns true if the court type is one of the known values
func (t CourtType) IsValid() bool {
	return t == CourtTypeIndoor || t == CourtTypeOutdoor
}

// Court represents a badminton court in the facility catalog
type Court struct {
	ID        int64
	Name      string
	Type      CourtType
	BasePrice float64 // Базовая цена за час, неотрицательная
	Amenities []string
}

// IsPremium returns true if the court qualifies for the premium court surcharge:
// indoor and base price at or above the premium threshold
func (c *Court) IsPremium() bool {
	return c.Type == CourtTypeIndoor && c.BasePrice >= PremiumCourtPriceThreshold
}
