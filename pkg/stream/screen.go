package stream

import (
	"errors"
	"fmt"

	"github.com/saylorsolutions/lfsrx/pkg/bits"
	"github.com/saylorsolutions/lfsrx/pkg/lfsr"
)

var (
	ErrEmptyKeystream = errors.New("cannot use an empty keystream")
)

// keystream supplies key bits one at a time, and can rewind to where it started.
type keystream interface {
	next() bits.Bit
	reset()
}

var (
	_ keystream = (*keyScreen)(nil)
	_ keystream = (*registerScreen)(nil)
)

type keyScreen struct {
	key  bits.Sequence
	init int
	cur  int
}

func newKeyScreen(key bits.Sequence, offset ...int) (*keyScreen, error) {
	if len(key) == 0 {
		return nil, ErrEmptyKeystream
	}
	if err := bits.Validate(key); err != nil {
		return nil, err
	}
	s := &keyScreen{
		key: key,
	}
	if len(offset) > 0 {
		if offset[0] < 0 || offset[0] >= len(key) {
			return nil, fmt.Errorf("offset %d out of range for provided keystream of len %d", offset[0], len(key))
		}
		s.init = offset[0]
		s.cur = s.init
	}
	return s, nil
}

func (s *keyScreen) next() bits.Bit {
	b := s.key[s.cur]
	s.cur = (s.cur + 1) % len(s.key)
	return b
}

func (s *keyScreen) reset() {
	s.cur = s.init
}

type registerScreen struct {
	init *lfsr.Register
	cur  *lfsr.Register
}

func newRegisterScreen(reg *lfsr.Register) *registerScreen {
	return &registerScreen{
		init: reg.Clone(),
		cur:  reg.Clone(),
	}
}

func (s *registerScreen) next() bits.Bit {
	return s.cur.Step()
}

func (s *registerScreen) reset() {
	s.cur = s.init.Clone()
}

func screenByte(ks keystream, b byte) byte {
	for i := 7; i >= 0; i-- {
		b ^= byte(ks.next()) << uint(i)
	}
	return b
}
