package stream

import (
	"testing"

	"github.com/saylorsolutions/lfsrx/pkg/bits"
	"github.com/saylorsolutions/lfsrx/pkg/lfsr"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCombine(t *testing.T) {
	out, err := Combine(bits.MustParse("01000001"), bits.MustParse("1"))
	assert.NoError(t, err)
	assert.Equal(t, "10111110", out.String())

	out, err = Combine(bits.MustParse("1111"), bits.MustParse("10"))
	assert.NoError(t, err)
	assert.Equal(t, "0101", out.String())

	out, err = Combine(nil, bits.MustParse("10"))
	assert.NoError(t, err)
	assert.Len(t, out, 0)
}

func TestCombine_Neg(t *testing.T) {
	_, err := Combine(bits.MustParse("0101"), nil)
	assert.ErrorIs(t, err, ErrEmptyKeystream)

	_, err = Combine(bits.Sequence{0, 3}, bits.MustParse("1"))
	assert.ErrorIs(t, err, bits.ErrInvalidBitSymbol)

	_, err = Combine(bits.MustParse("01"), bits.Sequence{5})
	assert.ErrorIs(t, err, bits.ErrInvalidBitSymbol)
}

func TestCombine_SelfInverse(t *testing.T) {
	reg, err := lfsr.NewFromString("10011", []int{0, 3})
	require.NoError(t, err)
	input := bits.MustParse("0110100111010001110")

	for _, keyLen := range []int{1, 3, 7, 19, 40} {
		key := reg.Generate(keyLen)
		screened, err := Combine(input, key)
		assert.NoError(t, err)
		assert.Len(t, screened, len(input))

		restored, err := Combine(screened, key)
		assert.NoError(t, err)
		assert.Equal(t, input, restored)
	}
}

func TestCombine_TextRoundTrip(t *testing.T) {
	plain, err := bits.EncodeText("A")
	require.NoError(t, err)
	assert.Equal(t, "01000001", plain.String())

	reg, err := lfsr.NewFromString("10101", []int{0, 2})
	require.NoError(t, err)
	key := reg.Generate(len(plain))

	cipher, err := Combine(plain, key)
	require.NoError(t, err)
	decrypted, err := Combine(cipher, key)
	require.NoError(t, err)

	text, err := bits.DecodeText(decrypted)
	assert.NoError(t, err)
	assert.Equal(t, "A", text)
}

func TestCombineOffset(t *testing.T) {
	out, err := CombineOffset(bits.MustParse("0000"), bits.MustParse("100"), 1)
	assert.NoError(t, err)
	assert.Equal(t, "0010", out.String())

	_, err = CombineOffset(bits.MustParse("0000"), bits.MustParse("100"), 3)
	assert.Error(t, err)
}
