package lfsr

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseTaps(t *testing.T) {
	taps, err := ParseTaps("0,2")
	assert.NoError(t, err)
	assert.Equal(t, []int{0, 2}, taps)

	taps, err = ParseTaps(" 4 , 1,1 ")
	assert.NoError(t, err)
	assert.Equal(t, []int{4, 1, 1}, taps)

	taps, err = ParseTaps("  ")
	assert.NoError(t, err)
	assert.Len(t, taps, 0)
}

func TestParseTaps_Neg(t *testing.T) {
	_, err := ParseTaps("0,,2")
	assert.Error(t, err)
	_, err = ParseTaps("a")
	assert.Error(t, err)
}

func TestFormatTaps(t *testing.T) {
	assert.Equal(t, "0,2,4", FormatTaps([]int{0, 2, 4}))
	assert.Equal(t, "", FormatTaps(nil))
}
