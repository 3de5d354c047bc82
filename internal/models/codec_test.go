package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseCompactDate(t *testing.T) {
	got, err := ParseCompactDate("20240312")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2024, 3, 12, 0, 0, 0, 0, time.UTC), got)
}

func TestParseCompactDate_Invalid(t *testing.T) {
	cases := []string{
		"",
		"2024031",
		"202403120",
		"2024-03-12",
		"20240230", // не существует в календаре
		"20241332",
		"abcdefgh",
	}
	for _, input := range cases {
		_, err := ParseCompactDate(input)
		assert.ErrorIs(t, err, ErrMalformedDate, "input %q", input)
	}
}

func TestParseCompactDateTime(t *testing.T) {
	got, err := ParseCompactDateTime("20240312T1745")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2024, 3, 12, 17, 45, 0, 0, time.UTC), got)
}

func TestParseCompactDateTime_Invalid(t *testing.T) {
	cases := []string{
		"",
		"20240312",
		"20240312T174500",
		"20240312 1745",
		"20240312T2545",
	}
	for _, input := range cases {
		_, err := ParseCompactDateTime(input)
		assert.ErrorIs(t, err, ErrMalformedDateTime, "input %q", input)
	}
}

func TestDate_DeferredParse(t *testing.T) {
	var d Date
	require.NoError(t, d.UnmarshalJSON([]byte(`"20231101"`)))
	require.False(t, d.IsZero())
	require.NoError(t, d.parse())
	assert.Equal(t, time.Date(2023, 11, 1, 0, 0, 0, 0, time.UTC), d.Time())
}

func TestDate_NonStringLiteral(t *testing.T) {
	var d Date
	require.NoError(t, d.UnmarshalJSON([]byte(`true`)))
	assert.ErrorIs(t, d.parse(), ErrMalformedDate)
}
