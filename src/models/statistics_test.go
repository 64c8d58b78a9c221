package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRateMarshalJSON(t *testing.T) {
	t.Run("UndefinedIsANumber", func(t *testing.T) {
		raw, err := json.Marshal(Rate{})
		require.NoError(t, err)
		assert.Equal(t, "0", string(raw))
	})

	t.Run("DefinedZeroIsAString", func(t *testing.T) {
		raw, err := json.Marshal(NewRate(0))
		require.NoError(t, err)
		assert.Equal(t, `"0.00"`, string(raw))
	})

	t.Run("DefinedIsATwoDecimalString", func(t *testing.T) {
		for value, expected := range map[float64]string{
			70:    `"70.00"`,
			50:    `"50.00"`,
			66.67: `"66.67"`,
			100:   `"100.00"`,
		} {
			raw, err := json.Marshal(NewRate(value))
			require.NoError(t, err)
			assert.Equal(t, expected, string(raw))
		}
	})

	t.Run("InsideAStruct", func(t *testing.T) {
		stats := AttendanceStats{TotalParticipants: 10, TotalSignIns: 7, AttendanceRate: NewRate(70)}
		raw, err := json.Marshal(stats)
		require.NoError(t, err)
		assert.JSONEq(t, `{"totalParticipants":10,"totalSignIns":7,"attendanceRate":"70.00"}`, string(raw))
	})
}

func TestStatusCountsSum(t *testing.T) {
	counts := StatusCounts{Planned: 1, InProgress: 2, Completed: 3, Cancelled: 4}
	assert.Equal(t, 10, counts.Sum())
	assert.Equal(t, 0, StatusCounts{}.Sum())
}
