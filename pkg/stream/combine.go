package stream

import (
	"github.com/saylorsolutions/lfsrx/pkg/bits"
)

// Combine XORs every bit of input with the keystream bit at the same position, reusing the keystream from the start when it's shorter than the input.
// The result has the same length as input.
// Combining the result with the same keystream again yields the original input.
func Combine(input, keystream bits.Sequence) (bits.Sequence, error) {
	return CombineOffset(input, keystream, 0)
}

// CombineOffset is like Combine, but the first input bit is paired with keystream[offset].
func CombineOffset(input, keystream bits.Sequence, offset int) (bits.Sequence, error) {
	scr, err := newKeyScreen(keystream, offset)
	if err != nil {
		return nil, err
	}
	if err := bits.Validate(input); err != nil {
		return nil, err
	}
	out := make(bits.Sequence, len(input))
	for i, b := range input {
		out[i] = b ^ scr.next()
	}
	return out, nil
}
