package create_booking

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-CourtBookingService/internal/domain"
)

func TestValidateDate_SameDayIgnoresTimeOfDay(t *testing.T) {
	// now содержит время суток, дата бронирования - полночь того же дня
	now := time.Date(2025, time.October, 17, 15, 42, 11, 0, time.UTC)
	bookingDate := time.Date(2025, time.October, 17, 0, 0, 0, 0, time.UTC)

	assert.NoError(t, validateDate(bookingDate, now))
}

func TestValidateDate_Yesterday(t *testing.T) {
	now := time.Date(2025, time.October, 17, 8, 0, 0, 0, time.UTC)
	bookingDate := now.AddDate(0, 0, -1)

	assert.ErrorIs(t, validateDate(bookingDate, now), ErrInvalidDate)
}

func TestValidateDate_HorizonBoundary(t *testing.T) {
	now := time.Date(2025, time.October, 17, 8, 0, 0, 0, time.UTC)

	onHorizon := now.AddDate(0, 0, domain.MaxAdvanceBookingDays)
	require.NoError(t, validateDate(onHorizon, now))

	beyondHorizon := now.AddDate(0, 0, domain.MaxAdvanceBookingDays+1)
	assert.ErrorIs(t, validateDate(beyondHorizon, now), ErrDateTooFarInFuture)
}

func TestTruncateToDay(t *testing.T) {
	in := time.Date(2025, time.October, 17, 23, 59, 59, 123, time.UTC)
	assert.Equal(t, time.Date(2025, time.October, 17, 0, 0, 0, 0, time.UTC), truncateToDay(in))
}
