package availability

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func clockInterval(t *testing.T, from, to string) Interval[Clock] {
	t.Helper()
	start, err := ParseClock(from)
	require.NoError(t, err)
	end, err := ParseClock(to)
	require.NoError(t, err)
	iv, err := NewInterval(start, end)
	require.NoError(t, err)
	return iv
}

func TestNewInterval_RejectsEmptyAndInverted(t *testing.T) {
	_, err := NewInterval(Clock(600), Clock(600))
	assert.ErrorIs(t, err, ErrInvalidInterval)

	_, err = NewInterval(Clock(660), Clock(600))
	assert.ErrorIs(t, err, ErrInvalidInterval)

	iv, err := NewInterval(Clock(600), Clock(601))
	require.NoError(t, err)
	assert.Equal(t, Clock(600), iv.Start())
	assert.Equal(t, Clock(601), iv.End())
}

func TestInterval_Overlaps(t *testing.T) {
	tests := []struct {
		name     string
		a, b     [2]string
		expected bool
	}{
		{name: "partial overlap", a: [2]string{"10:00", "12:00"}, b: [2]string{"11:00", "13:00"}, expected: true},
		{name: "touching end to start", a: [2]string{"10:00", "11:00"}, b: [2]string{"11:00", "12:00"}, expected: false},
		{name: "disjoint", a: [2]string{"08:00", "09:00"}, b: [2]string{"10:00", "11:00"}, expected: false},
		{name: "containment", a: [2]string{"09:00", "18:00"}, b: [2]string{"10:00", "11:00"}, expected: true},
		{name: "identical", a: [2]string{"10:00", "11:00"}, b: [2]string{"10:00", "11:00"}, expected: true},
		{name: "same start", a: [2]string{"10:00", "10:30"}, b: [2]string{"10:00", "12:00"}, expected: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := clockInterval(t, tt.a[0], tt.a[1])
			b := clockInterval(t, tt.b[0], tt.b[1])

			assert.Equal(t, tt.expected, a.Overlaps(b))
			assert.Equal(t, a.Overlaps(b), b.Overlaps(a), "overlap must be symmetric")
		})
	}
}

func TestInterval_OverlapsIsSymmetricExhaustive(t *testing.T) {
	// every pair of intervals on a small grid
	var all []Interval[Clock]
	for s := 0; s < 8; s++ {
		for e := s + 1; e <= 8; e++ {
			iv, err := NewInterval(Clock(s*30), Clock(e*30))
			require.NoError(t, err)
			all = append(all, iv)
		}
	}

	for _, a := range all {
		for _, b := range all {
			assert.Equal(t, a.Overlaps(b), b.Overlaps(a), "%v vs %v", a, b)
		}
	}
}

func TestInterval_ContainsIsHalfOpen(t *testing.T) {
	iv := clockInterval(t, "10:00", "11:00")

	assert.True(t, iv.Contains(Clock(600)))
	assert.True(t, iv.Contains(Clock(659)))
	assert.False(t, iv.Contains(Clock(660)))
	assert.False(t, iv.Contains(Clock(599)))
}

func TestInterval_Covers(t *testing.T) {
	window := clockInterval(t, "09:00", "18:00")

	assert.True(t, window.Covers(clockInterval(t, "09:00", "18:00")))
	assert.True(t, window.Covers(clockInterval(t, "10:00", "11:00")))
	assert.False(t, window.Covers(clockInterval(t, "08:30", "10:00")))
	assert.False(t, window.Covers(clockInterval(t, "17:00", "18:30")))
}

func TestInterval_CompareOrdersByStartThenEnd(t *testing.T) {
	a := clockInterval(t, "10:00", "11:00")
	b := clockInterval(t, "10:00", "12:00")
	c := clockInterval(t, "09:00", "13:00")

	assert.Negative(t, a.Compare(b))
	assert.Positive(t, a.Compare(c))
	assert.Zero(t, a.Compare(clockInterval(t, "10:00", "11:00")))
}

func TestInterval_WorksWithAbsoluteTimestamps(t *testing.T) {
	base := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

	existing, err := NewInterval(base.Add(10*time.Hour), base.Add(12*time.Hour))
	require.NoError(t, err)
	requested, err := NewInterval(base.Add(11*time.Hour), base.Add(13*time.Hour))
	require.NoError(t, err)

	assert.True(t, existing.Overlaps(requested))

	_, err = NewInterval(base, base)
	assert.ErrorIs(t, err, ErrInvalidInterval)
}
