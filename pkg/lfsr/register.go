package lfsr

import (
	"errors"
	"fmt"
	"iter"

	"github.com/saylorsolutions/lfsrx/pkg/bits"
)

var (
	ErrEmptySeed          = errors.New("cannot use an empty seed")
	ErrInvalidTapPosition = errors.New("invalid tap position")
)

// Register is a linear feedback shift register.
// The register cells are kept in a ring buffer, so shifting never reallocates.
type Register struct {
	cells []bits.Bit
	head  int
	taps  []int
}

// New creates a Register from the given seed and tap positions.
// Every tap must address a cell of the register, so 0 <= tap < len(seed).
func New(seed bits.Sequence, taps []int) (*Register, error) {
	if len(seed) == 0 {
		return nil, ErrEmptySeed
	}
	if err := bits.Validate(seed); err != nil {
		return nil, err
	}
	for _, tap := range taps {
		if tap < 0 || tap >= len(seed) {
			return nil, fmt.Errorf("%w: tap %d is out of range for a register of length %d", ErrInvalidTapPosition, tap, len(seed))
		}
	}
	r := &Register{
		cells: seed.Clone(),
		taps:  make([]int, len(taps)),
	}
	copy(r.taps, taps)
	return r, nil
}

// NewFromString parses seed as bit text and calls New.
func NewFromString(seed string, taps []int) (*Register, error) {
	seq, err := bits.Parse(seed)
	if err != nil {
		return nil, err
	}
	return New(seq, taps)
}

// Len returns the fixed length of the register.
func (r *Register) Len() int {
	return len(r.cells)
}

// Taps returns a copy of the tap positions.
func (r *Register) Taps() []int {
	taps := make([]int, len(r.taps))
	copy(taps, r.taps)
	return taps
}

// State returns a copy of the register contents, front-to-back.
func (r *Register) State() bits.Sequence {
	state := make(bits.Sequence, len(r.cells))
	for i := range state {
		state[i] = r.at(i)
	}
	return state
}

func (r *Register) String() string {
	return r.State().String()
}

// at returns the bit at front-to-back index i.
func (r *Register) at(i int) bits.Bit {
	return r.cells[(r.head+i)%len(r.cells)]
}

// NextBit computes the feedback bit for the current state without changing it.
func (r *Register) NextBit() bits.Bit {
	feedback := bits.Zero
	last := len(r.cells) - 1
	for _, tap := range r.taps {
		feedback ^= r.at(last - tap)
	}
	return feedback
}

// Advance pushes bit onto the front of the register, dropping the tail bit.
func (r *Register) Advance(bit bits.Bit) {
	r.head = (r.head - 1 + len(r.cells)) % len(r.cells)
	r.cells[r.head] = bit
}

// Step computes the next feedback bit, shifts it in, and returns it.
func (r *Register) Step() bits.Bit {
	bit := r.NextBit()
	r.Advance(bit)
	return bit
}

// Stream returns a lazy sequence of at most length bits.
// The returned sequence can't be restarted: bits yielded by an earlier range are not produced again, and the register advances once per yielded bit.
func (r *Register) Stream(length int) iter.Seq[bits.Bit] {
	remaining := max(length, 0)
	return func(yield func(bits.Bit) bool) {
		for remaining > 0 {
			remaining--
			if !yield(r.Step()) {
				return
			}
		}
	}
}

// Generate produces the next length bits of the register's output.
func (r *Register) Generate(length int) bits.Sequence {
	out := make(bits.Sequence, 0, max(length, 0))
	for bit := range r.Stream(length) {
		out = append(out, bit)
	}
	return out
}

// Clone returns an independent copy of the register in its current state.
func (r *Register) Clone() *Register {
	return &Register{
		cells: r.State(),
		taps:  r.Taps(),
	}
}
