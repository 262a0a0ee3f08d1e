package lfsr

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegister_MarshalBinary(t *testing.T) {
	r, err := NewFromString("1011001", []int{0, 5, 6})
	require.NoError(t, err)
	r.Generate(11)

	data, err := r.MarshalBinary()
	require.NoError(t, err)

	restored := new(Register)
	require.NoError(t, restored.UnmarshalBinary(data))
	assert.Equal(t, r.State(), restored.State())
	assert.Equal(t, r.Taps(), restored.Taps())
	assert.Equal(t, r.Generate(50), restored.Generate(50))
}

func TestRegister_UnmarshalBinary_Neg(t *testing.T) {
	r, err := NewFromString("101", []int{0})
	require.NoError(t, err)
	data, err := r.MarshalBinary()
	require.NoError(t, err)

	restored := new(Register)
	assert.ErrorIs(t, restored.UnmarshalBinary(nil), ErrInvalidSnapshot)
	assert.ErrorIs(t, restored.UnmarshalBinary(data[:len(data)-1]), ErrInvalidSnapshot)

	badMagic := append([]byte{}, data...)
	badMagic[0] = 0
	assert.ErrorIs(t, restored.UnmarshalBinary(badMagic), ErrInvalidSnapshot)

	badTap := append([]byte{}, data...)
	badTap[len(badTap)-1] = 3
	assert.ErrorIs(t, restored.UnmarshalBinary(badTap), ErrInvalidTapPosition)

	badCell := append([]byte{}, data...)
	// The cells follow the 2 magic bytes and two 8-byte counts.
	badCell[18] = 2
	assert.Error(t, restored.UnmarshalBinary(badCell))
}
