package types_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-CourtBookingService/pkg/types"
)

func TestNewTimeStringFromString(t *testing.T) {
	tests := []struct {
		input   string
		wantErr bool
	}{
		{"10:00", false},
		{"00:00", false},
		{"23:59", false},
		{"24:00", true},
		{"10:60", true},
		{"7:00", true}, // Без ведущего нуля
		{"07:0", true},
		{"7:0", true},
		{"abc", true},
		{"", true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			_, err := types.NewTimeStringFromString(tt.input)
			if tt.wantErr {
				assert.ErrorIs(t, err, types.ErrInvalidTimeFormat)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestTimeString_Hour(t *testing.T) {
	ts, err := types.NewTimeStringFromString("19:30")
	require.NoError(t, err)

	hour, err := ts.Hour()
	require.NoError(t, err)
	assert.Equal(t, 19, hour)

	_, err = types.TimeString("xx:yy").Hour()
	assert.ErrorIs(t, err, types.ErrInvalidTimeFormat)
}

func TestTimeString_AddMinutes(t *testing.T) {
	ts := types.TimeString("10:00")

	added, err := ts.AddMinutes(90)
	require.NoError(t, err)
	assert.Equal(t, types.TimeString("11:30"), added)

	// Переход через полночь оборачивается
	late := types.TimeString("23:30")
	wrapped, err := late.AddMinutes(60)
	require.NoError(t, err)
	assert.Equal(t, types.TimeString("00:30"), wrapped)
}

func TestTimeString_Comparison(t *testing.T) {
	early := types.TimeString("09:00")
	late := types.TimeString("18:00")

	assert.True(t, early.IsBefore(late))
	assert.False(t, late.IsBefore(early))
	assert.True(t, late.IsAfter(early))
	assert.False(t, early.IsBefore(early))
	assert.False(t, early.IsAfter(early))
}

func TestTimeString_ComparisonRequiresPadding(t *testing.T) {
	// Лексикографический порядок корректен только для HH:MM с ведущими нулями,
	// поэтому Validate отклоняет невыровненные значения
	unpadded := types.TimeString("7:00")

	assert.False(t, unpadded.IsBefore(types.TimeString("10:00")))
	assert.ErrorIs(t, unpadded.Validate(), types.ErrInvalidTimeFormat)
}

func TestTimeString_Scan(t *testing.T) {
	var ts types.TimeString

	// Колонки TIME приходят со значением секунд
	require.NoError(t, ts.Scan("19:00:00"))
	assert.Equal(t, types.TimeString("19:00"), ts)

	require.NoError(t, ts.Scan([]byte("08:30:00")))
	assert.Equal(t, types.TimeString("08:30"), ts)

	require.NoError(t, ts.Scan(time.Date(2025, 10, 18, 14, 15, 0, 0, time.UTC)))
	assert.Equal(t, types.TimeString("14:15"), ts)

	require.NoError(t, ts.Scan(nil))
	assert.True(t, ts.IsZero())
}

func TestNewTimeString(t *testing.T) {
	ts := types.NewTimeString(time.Date(2025, 10, 18, 7, 5, 59, 0, time.UTC))
	assert.Equal(t, types.TimeString("07:05"), ts)
}
