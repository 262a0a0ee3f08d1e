package lfsr

import (
	"bytes"
	"encoding"
	"encoding/binary"
	"errors"
	"fmt"

	bin "github.com/saylorsolutions/binmap"
	"github.com/saylorsolutions/lfsrx/pkg/bits"
)

const (
	magicHigh uint8 = 0x1f
	magicLow  uint8 = 0x5b

	maxSnapshotCells = 1 << 16
)

var (
	ErrInvalidSnapshot = errors.New("invalid register snapshot")
)

var (
	_ encoding.BinaryMarshaler   = (*Register)(nil)
	_ encoding.BinaryUnmarshaler = (*Register)(nil)
)

type snapshotHeader struct {
	magicHigh uint8
	magicLow  uint8
	length    uint64
	numTaps   uint64
}

func (h *snapshotHeader) mapper() bin.Mapper {
	return bin.MapSequence(
		bin.Byte(&h.magicHigh),
		bin.Byte(&h.magicLow),
		bin.Int(&h.length),
		bin.Int(&h.numTaps),
	)
}

func bodyMapper(cells bits.Sequence, taps []uint64) bin.Mapper {
	mappers := make([]bin.Mapper, 0, len(cells)+len(taps))
	for i := range cells {
		mappers = append(mappers, bin.Byte((*uint8)(&cells[i])))
	}
	for i := range taps {
		mappers = append(mappers, bin.Int(&taps[i]))
	}
	return bin.MapSequence(mappers...)
}

// MarshalBinary captures the register state and taps so the register can be restored later with UnmarshalBinary.
func (r *Register) MarshalBinary() ([]byte, error) {
	var buf bytes.Buffer
	hdr := snapshotHeader{
		magicHigh: magicHigh,
		magicLow:  magicLow,
		length:    uint64(r.Len()),
		numTaps:   uint64(len(r.taps)),
	}
	if err := hdr.mapper().Write(&buf, binary.BigEndian); err != nil {
		return nil, err
	}
	taps := make([]uint64, len(r.taps))
	for i, tap := range r.taps {
		taps[i] = uint64(tap)
	}
	if err := bodyMapper(r.State(), taps).Write(&buf, binary.BigEndian); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// UnmarshalBinary restores a register from a snapshot produced by MarshalBinary.
// The restored configuration is validated the same way as New.
func (r *Register) UnmarshalBinary(data []byte) error {
	var hdr snapshotHeader
	in := bytes.NewReader(data)
	if err := hdr.mapper().Read(in, binary.BigEndian); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidSnapshot, err)
	}
	if hdr.magicHigh != magicHigh || hdr.magicLow != magicLow {
		return fmt.Errorf("%w: unrecognized header", ErrInvalidSnapshot)
	}
	if hdr.length == 0 || hdr.length > maxSnapshotCells || hdr.numTaps > maxSnapshotCells {
		return fmt.Errorf("%w: register of length %d with %d taps", ErrInvalidSnapshot, hdr.length, hdr.numTaps)
	}
	cells := make(bits.Sequence, hdr.length)
	rawTaps := make([]uint64, hdr.numTaps)
	if err := bodyMapper(cells, rawTaps).Read(in, binary.BigEndian); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidSnapshot, err)
	}
	taps := make([]int, len(rawTaps))
	for i, tap := range rawTaps {
		if tap >= hdr.length {
			return fmt.Errorf("%w: tap %d is out of range for a register of length %d", ErrInvalidTapPosition, tap, hdr.length)
		}
		taps[i] = int(tap)
	}
	restored, err := New(cells, taps)
	if err != nil {
		return err
	}
	*r = *restored
	return nil
}
