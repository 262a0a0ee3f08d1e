package bits

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParse(t *testing.T) {
	seq, err := Parse("10101")
	assert.NoError(t, err)
	assert.Equal(t, Sequence{One, Zero, One, Zero, One}, seq)
	assert.Equal(t, "10101", seq.String())

	empty, err := Parse("")
	assert.NoError(t, err)
	assert.Len(t, empty, 0)
}

func TestParse_Neg(t *testing.T) {
	_, err := Parse("10201")
	assert.ErrorIs(t, err, ErrInvalidBitSymbol)
	assert.Contains(t, err.Error(), "position 2")

	_, err = Parse("1 0")
	assert.ErrorIs(t, err, ErrInvalidBitSymbol)

	assert.Panics(t, func() {
		MustParse("abc")
	})
}

func TestValidate(t *testing.T) {
	assert.NoError(t, Validate(MustParse("0110")))
	assert.NoError(t, Validate(nil))

	err := Validate(Sequence{One, 2, Zero})
	assert.True(t, errors.Is(err, ErrInvalidBitSymbol))
}

func TestBit_String(t *testing.T) {
	assert.Equal(t, "0", Zero.String())
	assert.Equal(t, "1", One.String())
	assert.Equal(t, "Bit(7)", Bit(7).String())
	assert.False(t, Bit(7).Valid())
}

func TestBit_Xor(t *testing.T) {
	assert.Equal(t, Zero, Zero.Xor(Zero))
	assert.Equal(t, One, Zero.Xor(One))
	assert.Equal(t, One, One.Xor(Zero))
	assert.Equal(t, Zero, One.Xor(One))
}

func TestSequence_Equal(t *testing.T) {
	a := MustParse("0011")
	assert.True(t, a.Equal(MustParse("0011")))
	assert.False(t, a.Equal(MustParse("0010")))
	assert.False(t, a.Equal(MustParse("001")))
}

func TestSequence_Clone(t *testing.T) {
	a := MustParse("0011")
	b := a.Clone()
	b[0] = One
	assert.Equal(t, "0011", a.String())
	assert.Nil(t, Sequence(nil).Clone())
}
