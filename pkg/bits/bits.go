package bits

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrInvalidBitSymbol = errors.New("invalid bit symbol")
	ErrPartialByte      = errors.New("bit count is not a multiple of 8")
	ErrUnencodable      = errors.New("character cannot be encoded in 8 bits")
)

// Bit is a single binary digit. The only valid values are Zero and One.
type Bit byte

const (
	Zero Bit = 0
	One  Bit = 1
)

// Valid reports whether b is Zero or One.
func (b Bit) Valid() bool {
	return b == Zero || b == One
}

func (b Bit) String() string {
	switch b {
	case Zero:
		return "0"
	case One:
		return "1"
	default:
		return fmt.Sprintf("Bit(%d)", byte(b))
	}
}

// Xor returns the exclusive or of two bits.
func (b Bit) Xor(other Bit) Bit {
	return b ^ other
}

// Sequence is an ordered run of bits, read front-to-back.
type Sequence []Bit

// Parse reads a Sequence from text containing only '0' and '1'.
// An empty string yields an empty Sequence.
func Parse(s string) (Sequence, error) {
	seq := make(Sequence, 0, len(s))
	for i, r := range s {
		switch r {
		case '0':
			seq = append(seq, Zero)
		case '1':
			seq = append(seq, One)
		default:
			return nil, fmt.Errorf("%w: %q at position %d", ErrInvalidBitSymbol, r, i)
		}
	}
	return seq, nil
}

// MustParse is like Parse, but panics if s is not valid bit text.
func MustParse(s string) Sequence {
	seq, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return seq
}

// Validate returns an error wrapping ErrInvalidBitSymbol if any element of seq is not Zero or One.
func Validate(seq Sequence) error {
	for i, b := range seq {
		if !b.Valid() {
			return fmt.Errorf("%w: value %d at position %d", ErrInvalidBitSymbol, byte(b), i)
		}
	}
	return nil
}

func (s Sequence) String() string {
	var buf strings.Builder
	buf.Grow(len(s))
	for _, b := range s {
		buf.WriteString(b.String())
	}
	return buf.String()
}

func (s Sequence) Equal(other Sequence) bool {
	if len(s) != len(other) {
		return false
	}
	for i := range s {
		if s[i] != other[i] {
			return false
		}
	}
	return true
}

func (s Sequence) Clone() Sequence {
	if s == nil {
		return nil
	}
	out := make(Sequence, len(s))
	copy(out, s)
	return out
}
