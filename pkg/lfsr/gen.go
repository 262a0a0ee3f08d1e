package lfsr

import (
	"crypto/rand"
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"slices"

	"github.com/saylorsolutions/lfsrx/pkg/bits"
)

// GenSeed will generate a random seed with the given length.
// The seed always contains at least one One bit.
func GenSeed(length int) (bits.Sequence, error) {
	if length <= 0 {
		return nil, errors.New("asked to generate a 0-length seed")
	}
	buf := make([]byte, (length+7)/8)
	for {
		n, err := rand.Read(buf)
		if n < len(buf) {
			return nil, fmt.Errorf("failed to read requested bytes: %v", err)
		}
		seed := bits.FromBytes(buf)[:length]
		if slices.Contains(seed, bits.One) {
			return seed, nil
		}
	}
}

// GenTaps will choose count distinct random tap positions for a register of the given length, in ascending order.
func GenTaps(length, count int) ([]int, error) {
	return ChooseTaps(length, count, rand.Reader)
}

// ChooseTaps will choose count distinct tap positions for a register of the given length, in ascending order.
// The choice is driven by bytes read from src, so the same source bytes always choose the same taps.
func ChooseTaps(length, count int, src io.Reader) ([]int, error) {
	if length <= 0 {
		return nil, errors.New("asked to generate taps for a 0-length register")
	}
	if count < 0 || count > length {
		return nil, fmt.Errorf("cannot choose %d distinct taps from a register of length %d", count, length)
	}
	positions := make([]int, length)
	for i := range positions {
		positions[i] = i
	}
	buf := make([]byte, 4)
	for i := 0; i < count; i++ {
		if _, err := io.ReadFull(src, buf); err != nil {
			return nil, fmt.Errorf("failed to read tap selection bytes: %w", err)
		}
		j := i + int(binary.BigEndian.Uint32(buf)%uint32(length-i))
		positions[i], positions[j] = positions[j], positions[i]
	}
	taps := positions[:count]
	slices.Sort(taps)
	return taps, nil
}

// GenRegister creates a Register with a random seed and count random taps.
func GenRegister(length, count int) (*Register, error) {
	seed, err := GenSeed(length)
	if err != nil {
		return nil, err
	}
	taps, err := GenTaps(length, count)
	if err != nil {
		return nil, err
	}
	return New(seed, taps)
}
