package model

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTimestampUnmarshal(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want time.Time
	}{
		{"rfc3339", `"2025-06-05T09:00:00Z"`, time.Date(2025, 6, 5, 9, 0, 0, 0, time.UTC)},
		{"rfc3339 with millis", `"2025-06-05T09:00:00.123Z"`, time.Date(2025, 6, 5, 9, 0, 0, 123000000, time.UTC)},
		{"bare date", `"2025-06-05"`, time.Date(2025, 6, 5, 0, 0, 0, 0, time.UTC)},
		{"garbage", `"not-a-date"`, time.Time{}},
		{"null", `null`, time.Time{}},
		{"number", `1717578000`, time.Time{}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			var ts Timestamp
			require.NoError(t, json.Unmarshal([]byte(tc.in), &ts))
			assert.True(t, ts.Equal(tc.want), "got %v, want %v", ts.Time, tc.want)
		})
	}
}

func TestEmployeeUnmarshal(t *testing.T) {
	t.Run("bare id string", func(t *testing.T) {
		var e Employee
		require.NoError(t, json.Unmarshal([]byte(`"emp-1"`), &e))
		assert.Equal(t, "emp-1", e.ID)
		assert.Empty(t, e.FullName)
	})

	t.Run("object with mongo id", func(t *testing.T) {
		var e Employee
		require.NoError(t, json.Unmarshal([]byte(`{"_id": "emp-1", "fullName": "Alice"}`), &e))
		assert.Equal(t, "emp-1", e.ID)
		assert.Equal(t, "Alice", e.FullName)
	})

	t.Run("plain id wins over mongo id", func(t *testing.T) {
		var e Employee
		require.NoError(t, json.Unmarshal([]byte(`{"id": "a", "_id": "b"}`), &e))
		assert.Equal(t, "a", e.ID)
	})
}

func TestShiftSwapRequestMongoIDFallback(t *testing.T) {
	var req ShiftSwapRequest
	require.NoError(t, json.Unmarshal([]byte(`{"_id": "r1", "status": "pending"}`), &req))
	assert.Equal(t, "r1", req.ID)
	assert.True(t, req.Status.IsOpen())
}

func TestSameDay(t *testing.T) {
	morning := time.Date(2025, 6, 5, 1, 0, 0, 0, time.UTC)
	night := time.Date(2025, 6, 5, 23, 59, 0, 0, time.UTC)
	nextDay := time.Date(2025, 6, 6, 0, 0, 0, 0, time.UTC)

	assert.True(t, SameDay(morning, night))
	assert.False(t, SameDay(night, nextDay))
}
