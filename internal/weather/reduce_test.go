package weather

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReduce(t *testing.T) {
	tests := []struct {
		name        string
		days        []Day
		expectedMin float64
		expectedMax float64
		expectedAvg float64
	}{
		{
			name: "three days",
			days: []Day{
				{TempMin: 10, TempMax: 20, Temp: 15},
				{TempMin: 5, TempMax: 25, Temp: 18},
				{TempMin: 12, TempMax: 22, Temp: 16},
			},
			expectedMin: 5,
			expectedMax: 25,
			expectedAvg: 49.0 / 3.0,
		},
		{
			name:        "single day",
			days:        []Day{{TempMin: -3.5, TempMax: 4.2, Temp: 0.1}},
			expectedMin: -3.5,
			expectedMax: 4.2,
			expectedAvg: 0.1,
		},
		{
			name: "all negative temperatures",
			days: []Day{
				{TempMin: -20, TempMax: -10, Temp: -15},
				{TempMin: -25, TempMax: -12, Temp: -18},
			},
			expectedMin: -25,
			expectedMax: -10,
			expectedAvg: -16.5,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			summary, err := Reduce(tt.days)
			require.NoError(t, err)

			assert.Equal(t, tt.expectedMin, summary.Min)
			assert.Equal(t, tt.expectedMax, summary.Max)
			assert.InDelta(t, tt.expectedAvg, summary.Avg, 1e-9)

			assert.LessOrEqual(t, summary.Min, summary.Avg)
			assert.LessOrEqual(t, summary.Avg, summary.Max)
		})
	}
}

func TestReduce_EmptyWindow(t *testing.T) {
	_, err := Reduce(nil)
	assert.ErrorIs(t, err, ErrEmptyWindow)

	_, err = Reduce([]Day{})
	assert.ErrorIs(t, err, ErrEmptyWindow)
}
