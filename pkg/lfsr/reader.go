package lfsr

import "io"

var (
	_ io.Reader     = (*Register)(nil)
	_ io.ByteReader = (*Register)(nil)
)

// ReadByte packs the next 8 generated bits into a byte, first bit most significant.
// It never returns an error.
func (r *Register) ReadByte() (byte, error) {
	var b byte
	for i := 0; i < 8; i++ {
		b = b<<1 | byte(r.Step())
	}
	return b, nil
}

// Read fills out with generated bytes, as ReadByte. It always fills the whole slice.
func (r *Register) Read(out []byte) (int, error) {
	for i := range out {
		out[i], _ = r.ReadByte()
	}
	return len(out), nil
}
