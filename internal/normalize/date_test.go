package normalize

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDateDayFirst(t *testing.T) {
	got, err := ParseDate("03/04/2024", true)
	require.NoError(t, err)
	assert.Equal(t, time.Date(2024, 4, 3, 0, 0, 0, 0, time.UTC), got)

	// ISO dates are unambiguous and parse either way.
	got, err = ParseDate("2024-04-03", true)
	require.NoError(t, err)
	assert.Equal(t, time.Date(2024, 4, 3, 0, 0, 0, 0, time.UTC), got)

	got, err = ParseDate("3 Apr 2024", true)
	require.NoError(t, err)
	assert.Equal(t, time.Date(2024, 4, 3, 0, 0, 0, 0, time.UTC), got)
}

func TestParseDateMonthFirst(t *testing.T) {
	got, err := ParseDate("03/04/2024", false)
	require.NoError(t, err)
	assert.Equal(t, time.Date(2024, 3, 4, 0, 0, 0, 0, time.UTC), got)
}

func TestParseDateErrors(t *testing.T) {
	for _, raw := range []string{"", "yesterday", "13/13/2024"} {
		_, err := ParseDate(raw, true)
		assert.Error(t, err, "%q", raw)
	}
}

func TestLooksDate(t *testing.T) {
	assert.True(t, LooksDate("15/01/2024"))
	assert.False(t, LooksDate("TESCO"))
}
