package domain

// Coach represents a coach available for hire with a booking
type Coach struct {
	ID         int64
	Name       string
	Specialty  string
	HourlyRate float64
	Rating     float64
	Available  bool
}
