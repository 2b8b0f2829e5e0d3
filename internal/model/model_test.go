package model

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatStartTime(t *testing.T) {
	ts := time.Date(2021, time.March, 4, 7, 5, 0, 0, time.UTC)
	assert.Equal(t, "03/04/2021, 07:05", FormatStartTime(ts))

	evening := time.Date(2022, time.December, 31, 21, 30, 0, 0, time.UTC)
	assert.Equal(t, "12/31/2022, 21:30", FormatStartTime(evening))
}

func TestIsValidGenre(t *testing.T) {
	assert.True(t, IsValidGenre("Jazz"))
	assert.True(t, IsValidGenre("R&B"))
	assert.True(t, IsValidGenre("Rock n Roll"))
	assert.False(t, IsValidGenre("jazz"))
	assert.False(t, IsValidGenre("Polka"))
	assert.False(t, IsValidGenre(""))
}

func TestIsValidState(t *testing.T) {
	assert.True(t, IsValidState("CA"))
	assert.True(t, IsValidState("DC"))
	assert.False(t, IsValidState("ca"))
	assert.False(t, IsValidState("XX"))
}

func TestGenresValueAndScan(t *testing.T) {
	v, err := Genres{"Jazz", "Hip-Hop"}.Value()
	require.NoError(t, err)
	assert.Equal(t, `["Jazz","Hip-Hop"]`, v)

	v, err = Genres(nil).Value()
	require.NoError(t, err)
	assert.Equal(t, "[]", v)

	var g Genres
	require.NoError(t, g.Scan([]byte(`["Folk","Soul"]`)))
	assert.Equal(t, Genres{"Folk", "Soul"}, g)

	require.NoError(t, g.Scan(nil))
	assert.Empty(t, g)

	assert.Error(t, g.Scan(42))
	assert.Error(t, g.Scan("not json"))
}
