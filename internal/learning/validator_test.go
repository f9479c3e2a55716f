package learning

import (
	"math/rand/v2"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

var baseTime = time.Date(2026, 3, 14, 10, 0, 0, 0, time.UTC)

// evenlySpaced builds n timestamps separated by gap
func evenlySpaced(n int, gap time.Duration) []time.Time {
	timestamps := make([]time.Time, n)
	for i := range timestamps {
		timestamps[i] = baseTime.Add(time.Duration(i) * gap)
	}
	return timestamps
}

// fromGaps builds timestamps from the gaps between consecutive checks
func fromGaps(gaps ...time.Duration) []time.Time {
	timestamps := []time.Time{baseTime}
	for _, gap := range gaps {
		timestamps = append(timestamps, timestamps[len(timestamps)-1].Add(gap))
	}
	return timestamps
}

func repeat(gap time.Duration, n int) []time.Duration {
	gaps := make([]time.Duration, n)
	for i := range gaps {
		gaps[i] = gap
	}
	return gaps
}

func TestValidateSequence(t *testing.T) {
	tests := []struct {
		name       string
		timestamps []time.Time
		expected   bool
	}{
		{
			name:       "no items",
			timestamps: nil,
			expected:   false,
		},
		{
			name:       "four items spread over an hour",
			timestamps: evenlySpaced(4, 20*time.Minute),
			expected:   false,
		},
		{
			name:       "ten items four seconds apart",
			timestamps: evenlySpaced(10, 4*time.Second),
			expected:   false,
		},
		{
			name:       "average gap under five seconds",
			timestamps: evenlySpaced(20, 3700*time.Millisecond),
			expected:   false,
		},
		{
			name:       "one minute walk is too short",
			timestamps: evenlySpaced(5, 15*time.Second),
			expected:   false,
		},
		{
			name:       "average gap under fifteen seconds",
			timestamps: evenlySpaced(30, 7*time.Second),
			expected:   false,
		},
		{
			name:       "three minute walk with fifteen second gaps",
			timestamps: evenlySpaced(13, 15*time.Second),
			expected:   true,
		},
		{
			name:       "majority of instant double taps",
			timestamps: fromGaps(append(repeat(time.Second, 6), repeat(time.Minute, 4)...)...),
			expected:   false,
		},
		{
			name:       "exactly half instant double taps",
			timestamps: fromGaps(append(repeat(time.Second, 5), repeat(time.Minute, 5)...)...),
			expected:   true,
		},
		{
			name: "unordered input is sorted first",
			timestamps: []time.Time{
				baseTime.Add(4 * time.Minute),
				baseTime,
				baseTime.Add(2 * time.Minute),
				baseTime.Add(time.Minute),
				baseTime.Add(3 * time.Minute),
			},
			expected: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, ValidateSequence(tt.timestamps))
		})
	}
}

func TestValidateSequence_TooFewItemsAlwaysInvalid(t *testing.T) {
	rng := rand.New(rand.NewPCG(1, 2))
	for range 200 {
		n := rng.IntN(MinSequenceItems)
		gaps := make([]time.Duration, max(n-1, 0))
		for i := range gaps {
			gaps[i] = time.Duration(rng.IntN(600)) * time.Second
		}
		timestamps := fromGaps(gaps...)[:n]
		assert.False(t, ValidateSequence(timestamps))
	}
}

func TestValidateSequence_OrganicWalksAlwaysValid(t *testing.T) {
	rng := rand.New(rand.NewPCG(3, 4))
	for range 200 {
		n := MinSequenceItems + rng.IntN(30)
		gaps := make([]time.Duration, n-1)
		for i := range gaps {
			gaps[i] = 15*time.Second + time.Duration(rng.IntN(120))*time.Second
		}
		timestamps := fromGaps(gaps...)
		if timestamps[len(timestamps)-1].Sub(timestamps[0]) < 3*time.Minute {
			continue
		}
		assert.True(t, ValidateSequence(timestamps))
	}
}
