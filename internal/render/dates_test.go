package render

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatShortDate(t *testing.T) {
	date := time.Date(2024, time.March, 5, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, "5/3/2024", FormatShortDate(&date))

	endOfYear := time.Date(2023, time.December, 31, 23, 59, 0, 0, time.UTC)
	assert.Equal(t, "31/12/2023", FormatShortDate(&endOfYear))

	assert.Equal(t, "No disponible", FormatShortDate(nil))
}

func TestFormatLongDate(t *testing.T) {
	date := time.Date(2024, time.March, 5, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, "05 de marzo de 2024", FormatLongDate(&date))

	date = time.Date(2021, time.December, 25, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, "25 de diciembre de 2021", FormatLongDate(&date))

	assert.Equal(t, "No disponible", FormatLongDate(nil))
}

func TestParseDate(t *testing.T) {
	cases := []struct {
		input string
		want  time.Time
	}{
		{"2024-03-05", time.Date(2024, time.March, 5, 0, 0, 0, 0, time.UTC)},
		{"2024-03-05T10:30:00Z", time.Date(2024, time.March, 5, 10, 30, 0, 0, time.UTC)},
		{"2024-03-05 10:30:00", time.Date(2024, time.March, 5, 10, 30, 0, 0, time.UTC)},
		{"05/03/2024", time.Date(2024, time.March, 5, 0, 0, 0, 0, time.UTC)},
	}

	for _, tc := range cases {
		parsed, err := ParseDate(tc.input)
		require.NoError(t, err, tc.input)
		assert.True(t, parsed.Equal(tc.want), tc.input)
	}

	_, err := ParseDate("yesterday")
	assert.Error(t, err)
}
