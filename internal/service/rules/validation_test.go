package rules

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-CourtBookingService/internal/domain"
	"github.com/m04kA/SMC-CourtBookingService/internal/service/rules/models"
	"github.com/m04kA/SMC-CourtBookingService/pkg/ptr"
)

func TestBuildRuleParams_TimeRule(t *testing.T) {
	params, err := buildRuleParams("time", models.RulePayload{
		StartHour:  ptr.Ptr(18),
		EndHour:    ptr.Ptr(21),
		Multiplier: ptr.Ptr(1.5),
	})

	require.NoError(t, err)
	assert.Equal(t, domain.TimeRuleParams{StartHour: 18, EndHour: 21, Multiplier: 1.5}, params)
}

func TestBuildRuleParams_TimeRuleInvalid(t *testing.T) {
	tests := []struct {
		name    string
		payload models.RulePayload
	}{
		{
			name:    "missing fields",
			payload: models.RulePayload{StartHour: ptr.Ptr(18)},
		},
		{
			name: "start after end",
			payload: models.RulePayload{
				StartHour:  ptr.Ptr(21),
				EndHour:    ptr.Ptr(18),
				Multiplier: ptr.Ptr(1.5),
			},
		},
		{
			name: "hour out of range",
			payload: models.RulePayload{
				StartHour:  ptr.Ptr(-1),
				EndHour:    ptr.Ptr(21),
				Multiplier: ptr.Ptr(1.5),
			},
		},
		{
			name: "non-positive multiplier",
			payload: models.RulePayload{
				StartHour:  ptr.Ptr(18),
				EndHour:    ptr.Ptr(21),
				Multiplier: ptr.Ptr(0.0),
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := buildRuleParams("time", tt.payload)
			assert.ErrorIs(t, err, ErrInvalidInput)
		})
	}
}

func TestBuildRuleParams_DayRule(t *testing.T) {
	params, err := buildRuleParams("day", models.RulePayload{
		Days:      ptr.Ptr([]int{0, 6}),
		Surcharge: ptr.Ptr(10.0),
	})

	require.NoError(t, err)
	assert.Equal(t, domain.DayRuleParams{Days: []int{0, 6}, Surcharge: 10}, params)
}

func TestBuildRuleParams_DayRuleInvalid(t *testing.T) {
	tests := []struct {
		name    string
		payload models.RulePayload
	}{
		{
			name:    "empty days",
			payload: models.RulePayload{Days: ptr.Ptr([]int{}), Surcharge: ptr.Ptr(10.0)},
		},
		{
			name:    "weekday out of range",
			payload: models.RulePayload{Days: ptr.Ptr([]int{7}), Surcharge: ptr.Ptr(10.0)},
		},
		{
			name:    "negative surcharge",
			payload: models.RulePayload{Days: ptr.Ptr([]int{0}), Surcharge: ptr.Ptr(-1.0)},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := buildRuleParams("day", tt.payload)
			assert.ErrorIs(t, err, ErrInvalidInput)
		})
	}
}

func TestBuildRuleParams_PremiumRule(t *testing.T) {
	params, err := buildRuleParams("premium", models.RulePayload{
		Surcharge: ptr.Ptr(5.0),
	})

	require.NoError(t, err)
	assert.Equal(t, domain.PremiumRuleParams{Surcharge: 5}, params)
}

func TestBuildRuleParams_UnknownType(t *testing.T) {
	_, err := buildRuleParams("holiday", models.RulePayload{Surcharge: ptr.Ptr(5.0)})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestMergePayload_PartialTimePatch(t *testing.T) {
	current := domain.TimeRuleParams{StartHour: 18, EndHour: 21, Multiplier: 1.5}

	merged := mergePayload(current, models.RulePayload{Multiplier: ptr.Ptr(1.2)})

	require.NotNil(t, merged.StartHour)
	require.NotNil(t, merged.EndHour)
	require.NotNil(t, merged.Multiplier)
	assert.Equal(t, 18, *merged.StartHour)
	assert.Equal(t, 21, *merged.EndHour)
	assert.Equal(t, 1.2, *merged.Multiplier)
}

func TestMergePayload_DayPatchKeepsSurcharge(t *testing.T) {
	current := domain.DayRuleParams{Days: []int{0, 6}, Surcharge: 10}

	merged := mergePayload(current, models.RulePayload{Days: ptr.Ptr([]int{5, 6})})

	require.NotNil(t, merged.Days)
	require.NotNil(t, merged.Surcharge)
	assert.Equal(t, []int{5, 6}, *merged.Days)
	assert.Equal(t, 10.0, *merged.Surcharge)
}
