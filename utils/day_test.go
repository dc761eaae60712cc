package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeDayEquivalence(t *testing.T) {
	noon := time.Date(2024, 3, 5, 12, 0, 0, 0, time.UTC)

	byString := NormalizeDay("2024-03-05T10:00:00Z")
	byLateString := NormalizeDay("2024-03-05T23:59:59Z")
	bySeconds := NormalizeDay(map[string]any{"seconds": noon.Unix()})
	byLegacySeconds := NormalizeDay(map[string]any{"_seconds": float64(noon.Unix())})
	byTime := NormalizeDay(noon)
	byBare := NormalizeDay("2024-03-05")

	assert.Equal(t, "2024-03-05", byString)
	assert.Equal(t, byString, byLateString)
	assert.Equal(t, byString, bySeconds)
	assert.Equal(t, byString, byLegacySeconds)
	assert.Equal(t, byString, byTime)
	assert.Equal(t, byString, byBare)
}

func TestNormalizeDayCrossesUTCBoundary(t *testing.T) {
	// 23:30 in UTC-3 is already the next day in UTC.
	assert.Equal(t, "2024-03-06", NormalizeDay("2024-03-05T23:30:00-03:00"))
}

func TestNormalizeDayRejectsGarbage(t *testing.T) {
	assert.Equal(t, "", NormalizeDay("not-a-date"))
	assert.Equal(t, "", NormalizeDay(nil))
	assert.Equal(t, "", NormalizeDay(42))
	assert.Equal(t, "", NormalizeDay(map[string]any{"nanos": 5}))
	assert.Equal(t, "", NormalizeDay(map[string]any{"seconds": "soon"}))
	assert.Equal(t, "", NormalizeDay(time.Time{}))

	// The empty result must never equal a valid day.
	assert.NotEqual(t, NormalizeDay("2024-03-05"), NormalizeDay("not-a-date"))
}

func TestRounding(t *testing.T) {
	assert.Equal(t, 37.5, Round2(37.499999999999996))
	assert.Equal(t, 1.67, Round2(1.665000001))
	assert.Equal(t, 0.325, Round3(0.32499999))
}
