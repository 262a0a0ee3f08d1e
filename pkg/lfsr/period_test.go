package lfsr

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegister_Period(t *testing.T) {
	r, err := NewFromString("101", []int{0})
	require.NoError(t, err)
	start, length, err := r.Period(8)
	assert.NoError(t, err)
	assert.Equal(t, 0, start)
	assert.Equal(t, 3, length)
	// Period doesn't advance the register.
	assert.Equal(t, "101", r.String())

	out := r.Generate(9)
	assert.Equal(t, out[:3], out[3:6])
	assert.Equal(t, out[:3], out[6:])
}

func TestRegister_Period_Bound(t *testing.T) {
	for seed := 0; seed < 8; seed++ {
		r, err := NewFromString(fmt.Sprintf("%03b", seed), []int{0})
		require.NoError(t, err)
		start, length, err := r.Period(1 << r.Len())
		assert.NoError(t, err)
		assert.LessOrEqual(t, start+length, 8)
	}

	r, err := NewFromString("10101", []int{0, 2})
	require.NoError(t, err)
	_, _, err = r.Period(1 << r.Len())
	assert.NoError(t, err)
}

func TestRegister_Period_Tail(t *testing.T) {
	r, err := NewFromString("100", nil)
	require.NoError(t, err)
	start, length, err := r.Period(8)
	assert.NoError(t, err)
	assert.Equal(t, 3, start)
	assert.Equal(t, 1, length)
}

func TestRegister_Period_Neg(t *testing.T) {
	r, err := NewFromString("101", []int{0})
	require.NoError(t, err)
	_, _, err = r.Period(1)
	assert.ErrorIs(t, err, ErrNoCycle)
}
