package bits

import (
	"fmt"
	"strings"
)

// FromBytes expands each byte into 8 bits, most significant bit first.
func FromBytes(data []byte) Sequence {
	seq := make(Sequence, 0, len(data)*8)
	for _, b := range data {
		seq = appendByte(seq, b)
	}
	return seq
}

// Bytes packs the Sequence back into bytes, 8 bits per byte with the first bit as the most significant.
// The Sequence length must be a multiple of 8.
func (s Sequence) Bytes() ([]byte, error) {
	if len(s)%8 != 0 {
		return nil, fmt.Errorf("%w: have %d bits", ErrPartialByte, len(s))
	}
	if err := Validate(s); err != nil {
		return nil, err
	}
	out := make([]byte, len(s)/8)
	for i := range out {
		out[i] = packByte(s[i*8 : i*8+8])
	}
	return out, nil
}

// EncodeText converts text to its 8-bit-per-character binary form.
func EncodeText(text string) (Sequence, error) {
	seq := make(Sequence, 0, len(text)*8)
	for _, r := range text {
		if r < 0 || r > 0xFF {
			return nil, fmt.Errorf("%w: %q (U+%04X)", ErrUnencodable, r, r)
		}
		seq = appendByte(seq, byte(r))
	}
	return seq, nil
}

// DecodeText reverses EncodeText, rebuilding one character from each 8-bit group.
func DecodeText(seq Sequence) (string, error) {
	if len(seq)%8 != 0 {
		return "", fmt.Errorf("%w: have %d bits", ErrPartialByte, len(seq))
	}
	if err := Validate(seq); err != nil {
		return "", err
	}
	var buf strings.Builder
	for i := 0; i < len(seq); i += 8 {
		buf.WriteRune(rune(packByte(seq[i : i+8])))
	}
	return buf.String(), nil
}

func appendByte(seq Sequence, b byte) Sequence {
	for i := 7; i >= 0; i-- {
		seq = append(seq, Bit((b>>uint(i))&1))
	}
	return seq
}

func packByte(group Sequence) byte {
	var b byte
	for _, bit := range group {
		b = b<<1 | byte(bit)
	}
	return b
}
