package util

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDuration(t *testing.T) {
	d, err := ParseDuration("PT1H30M")
	require.NoError(t, err)
	assert.Equal(t, 90*time.Minute, d)

	d, err = ParseDuration("")
	require.NoError(t, err)
	assert.Zero(t, d)

	_, err = ParseDuration("1h")
	assert.Error(t, err)

	_, err = ParseDuration("P1D")
	assert.Error(t, err, "day components are not time components")
}

func TestFormatMinutes(t *testing.T) {
	assert.Equal(t, "7h 05m", FormatMinutes(425))
	assert.Equal(t, "0h 00m", FormatMinutes(0))
	assert.Equal(t, "-1h 30m", FormatMinutes(-90))
}

func TestStdDev(t *testing.T) {
	assert.Zero(t, StdDev(nil))
	assert.Zero(t, StdDev([]int{450, 450, 450}))
	// population, not sample: mean 5, squared diffs 9+1+1+9 / 4 = 5
	assert.InDelta(t, 2.2360, StdDev([]int{2, 4, 6, 8}), 0.001)
}

func TestRound(t *testing.T) {
	assert.Equal(t, 7.5, Round(7.5, 2))
	assert.Equal(t, 0.33, Round(1.0/3.0, 2))
	assert.Equal(t, 1.5, Round(1.4999, 1))
	assert.Equal(t, 1.0, Round(1.005, 2))
	assert.Equal(t, 2.68, Round(2.675, 2))
	assert.Equal(t, 0.13, Round(0.125, 2))
	assert.Equal(t, -0.13, Round(-0.125, 2))
	assert.Equal(t, 8.0, Round(7.5, 0))
}

func TestGroupByKeepsOrder(t *testing.T) {
	keys, groups := GroupBy([]string{"b1", "a1", "b2", "c1", "a2"}, func(s string) byte { return s[0] })
	assert.Equal(t, []byte{'b', 'a', 'c'}, keys)
	assert.Equal(t, []string{"b1", "b2"}, groups['b'])
	assert.Equal(t, []string{"a1", "a2"}, groups['a'])
}
