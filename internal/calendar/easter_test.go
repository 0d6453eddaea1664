package calendar

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEaster_Gregorian(t *testing.T) {
	greg := lookup(t, testCatalog(t), "gregorian")

	tests := []struct {
		year int
		want string
	}{
		{1818, "1818-03-22"},
		{1961, "1961-04-02"},
		{2000, "2000-04-23"},
		{2019, "2019-04-21"},
		{2024, "2024-03-31"},
		{2025, "2025-04-20"},
		{2038, "2038-04-25"},
	}

	for _, tt := range tests {
		got, err := Easter(greg, tt.year)
		require.NoError(t, err)
		assert.Equal(t, tt.want, got.String(), "year %d", tt.year)
	}
}

func TestEaster_Julian(t *testing.T) {
	c := testCatalog(t)
	jul := lookup(t, c, "julian")
	greg := lookup(t, c, "gregorian")

	got, err := Easter(jul, 2024)
	require.NoError(t, err)
	assert.Equal(t, "2024-04-22", got.String())

	got, err = Easter(jul, 2025)
	require.NoError(t, err)
	assert.Equal(t, "2025-04-07", got.String())

	// 2025 is a year both computations agree on.
	g, err := got.ConvertTo(greg)
	require.NoError(t, err)
	western, err := Easter(greg, 2025)
	require.NoError(t, err)
	assert.True(t, western.Equal(g))
}

func TestEaster_AlwaysSunday(t *testing.T) {
	c := testCatalog(t)
	for _, id := range []string{"gregorian", "julian"} {
		s := lookup(t, c, id)
		for y := 1583; y <= 2200; y++ {
			e, err := Easter(s, y)
			require.NoError(t, err)
			require.Equal(t, time.Sunday, e.DayOfWeek(), "%s easter %d", id, y)
		}
	}
}

func TestEaster_Unsupported(t *testing.T) {
	_, err := Easter(lookup(t, testCatalog(t), "coptic"), 1740)
	assert.True(t, errors.Is(err, ErrNoEaster))
}

func TestFeasts(t *testing.T) {
	greg := lookup(t, testCatalog(t), "gregorian")

	f, err := Feasts(greg, 2024)
	require.NoError(t, err)
	assert.Equal(t, "2024-02-14", f.AshWednesday.String())
	assert.Equal(t, "2024-03-31", f.Easter.String())
	assert.Equal(t, "2024-05-09", f.Ascension.String())
	assert.Equal(t, "2024-05-19", f.Pentecost.String())
	assert.Equal(t, "2024-12-01", f.Advent.String())

	assert.Equal(t, time.Wednesday, f.AshWednesday.DayOfWeek())
	assert.Equal(t, time.Thursday, f.Ascension.DayOfWeek())
	assert.Equal(t, time.Sunday, f.Advent.DayOfWeek())
}
