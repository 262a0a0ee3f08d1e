package seedphrase

import (
	"bytes"
	"crypto/rand"
	"encoding"
	"encoding/binary"
	"errors"
	"fmt"

	bin "github.com/saylorsolutions/binmap"
	"github.com/saylorsolutions/lfsrx/pkg/bits"
	"github.com/saylorsolutions/lfsrx/pkg/lfsr"
	"golang.org/x/crypto/scrypt"
)

const (
	DefaultLargeIterations       uint64 = 1 << 20
	DefaultInteractiveIterations uint64 = 1 << 15
	DefaultRelBlockSize          uint8  = 8
	DefaultCpuCost               uint8  = 1
	DefaultRegisterLength        uint8  = 16
	DefaultTapCount              uint8  = 4
	SaltSize                            = 16

	magicHigh uint8 = 0x1f
	magicLow  uint8 = 0xf5
)

var (
	ErrEmptyPassPhrase = errors.New("cannot use an empty passphrase")
	ErrInvalidSalt     = errors.New("unable to use salt")
	ErrInvalidHeader   = errors.New("invalid KeyGenerator header")
)

// Salt is a slice of secure random bytes that is used with scrypt to derive a register from a Passphrase.
type Salt []byte

// Passphrase is a human-readable string used to derive a register.
type Passphrase []byte

var (
	_ encoding.BinaryMarshaler   = (*KeyGenerator)(nil)
	_ encoding.BinaryUnmarshaler = (*KeyGenerator)(nil)
)

type KeyGenerator struct {
	iterations        uint64
	relativeBlockSize uint8
	cpuCost           uint8
	registerLength    uint8
	tapCount          uint8
}

func (g *KeyGenerator) mapper() bin.Mapper {
	return bin.MapSequence(
		bin.Int(&g.iterations),
		bin.Byte(&g.relativeBlockSize),
		bin.Byte(&g.cpuCost),
		bin.Byte(&g.registerLength),
		bin.Byte(&g.tapCount),
	)
}

type GeneratorOpt = func(*KeyGenerator) error

// SetLongDelayIterations sets a higher iteration count. This is sufficient for infrequent derivation.
func SetLongDelayIterations() GeneratorOpt {
	return func(gen *KeyGenerator) error {
		gen.iterations = DefaultLargeIterations
		return nil
	}
}

// SetShortDelayIterations sets a lower iteration count, and is the default.
// This is appropriate for interactive use where a shorter delay is desired.
func SetShortDelayIterations() GeneratorOpt {
	return func(gen *KeyGenerator) error {
		gen.iterations = DefaultInteractiveIterations
		return nil
	}
}

// SetIterations allows the caller to customize the iteration count.
// Only use this option if you know what you're doing.
func SetIterations(iterations uint64) GeneratorOpt {
	return func(gen *KeyGenerator) error {
		if iterations <= 1 {
			return errors.New("iterations cannot be <= 1")
		}
		if iterations&(iterations-1) != 0 {
			return errors.New("iterations must be a power of 2")
		}
		gen.iterations = iterations
		return nil
	}
}

// SetCPUCost sets the parallelism factor for derivation from the default of 1.
// Only use this option if you know what you're doing.
func SetCPUCost(cost uint8) GeneratorOpt {
	return func(gen *KeyGenerator) error {
		if cost < DefaultCpuCost {
			return errors.New("cpu cost must be at least 1")
		}
		gen.cpuCost = cost
		return nil
	}
}

// SetRelativeBlockSize sets the relative block size.
// Only use this option if you know what you're doing.
func SetRelativeBlockSize(size uint8) GeneratorOpt {
	return func(gen *KeyGenerator) error {
		if size < DefaultRelBlockSize {
			return errors.New("relative block size must be at least 8")
		}
		gen.relativeBlockSize = size
		return nil
	}
}

// SetRegisterLength sets the length of derived registers, which defaults to DefaultRegisterLength.
func SetRegisterLength(length uint8) GeneratorOpt {
	return func(gen *KeyGenerator) error {
		if length == 0 {
			return errors.New("register length must be at least 1")
		}
		gen.registerLength = length
		return nil
	}
}

// SetTapCount sets how many distinct taps derived registers have, which defaults to DefaultTapCount.
func SetTapCount(count uint8) GeneratorOpt {
	return func(gen *KeyGenerator) error {
		gen.tapCount = count
		return nil
	}
}

// NewKeyGenerator creates a new KeyGenerator using the options provided as zero or more GeneratorOpt.
// By default, the generator derives a 16 bit register with 4 taps using DefaultInteractiveIterations.
func NewKeyGenerator(opts ...GeneratorOpt) (*KeyGenerator, error) {
	gen := &KeyGenerator{
		iterations:        DefaultInteractiveIterations,
		relativeBlockSize: DefaultRelBlockSize,
		cpuCost:           DefaultCpuCost,
		registerLength:    DefaultRegisterLength,
		tapCount:          DefaultTapCount,
	}

	for _, opt := range opts {
		if err := opt(gen); err != nil {
			return nil, err
		}
	}
	if gen.tapCount > gen.registerLength {
		return nil, fmt.Errorf("cannot choose %d distinct taps from a register of length %d", gen.tapCount, gen.registerLength)
	}
	return gen, nil
}

// GenerateRegister will generate a random salt and derive a register from it and the passphrase.
func (g *KeyGenerator) GenerateRegister(pass Passphrase) (*lfsr.Register, Salt, error) {
	if len(pass) == 0 {
		return nil, nil, ErrEmptyPassPhrase
	}
	salt := make(Salt, SaltSize)
	if _, err := rand.Read(salt); err != nil {
		return nil, nil, err
	}
	reg, err := g.DeriveRegister(pass, salt)
	if err != nil {
		return nil, nil, err
	}
	return reg, salt, nil
}

// DeriveRegister will recover the register for the given passphrase and salt.
// This doesn't ensure that the given passphrase is the *correct* passphrase, it always derives some register.
func (g *KeyGenerator) DeriveRegister(pass Passphrase, salt Salt) (*lfsr.Register, error) {
	if len(pass) == 0 {
		return nil, ErrEmptyPassPhrase
	}
	if len(salt) == 0 {
		return nil, fmt.Errorf("%w: salt is empty", ErrInvalidSalt)
	}
	seedBytes := (int(g.registerLength) + 7) / 8
	key, err := scrypt.Key(pass, salt, int(g.iterations), int(g.relativeBlockSize), int(g.cpuCost), seedBytes+4*int(g.tapCount))
	if err != nil {
		return nil, err
	}
	seed := bits.FromBytes(key[:seedBytes])[:g.registerLength]
	nudgeZeroSeed(seed)
	taps, err := lfsr.ChooseTaps(int(g.registerLength), int(g.tapCount), bytes.NewReader(key[seedBytes:]))
	if err != nil {
		return nil, err
	}
	return lfsr.New(seed, taps)
}

// nudgeZeroSeed sets the tail bit of an all-zero seed, since an all-zero register never leaves that state.
func nudgeZeroSeed(seed bits.Sequence) {
	for _, b := range seed {
		if b == bits.One {
			return
		}
	}
	seed[len(seed)-1] = bits.One
}

// MarshalBinary encodes the generator settings, so the same derivation can be repeated elsewhere.
func (g *KeyGenerator) MarshalBinary() ([]byte, error) {
	var (
		buf       bytes.Buffer
		high, low = magicHigh, magicLow
	)
	if err := bin.MapSequence(bin.Byte(&high), bin.Byte(&low), g.mapper()).Write(&buf, binary.BigEndian); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// UnmarshalBinary decodes generator settings produced by MarshalBinary.
func (g *KeyGenerator) UnmarshalBinary(data []byte) error {
	var (
		high, low uint8
		read      KeyGenerator
	)
	r := bytes.NewReader(data)
	if err := bin.MapSequence(bin.Byte(&high), bin.Byte(&low)).Read(r, binary.BigEndian); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidHeader, err)
	}
	if high != magicHigh || low != magicLow {
		return fmt.Errorf("%w: unrecognized magic bytes", ErrInvalidHeader)
	}
	if err := read.mapper().Read(r, binary.BigEndian); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidHeader, err)
	}
	validated, err := NewKeyGenerator(
		SetIterations(read.iterations),
		SetCPUCost(read.cpuCost),
		SetRelativeBlockSize(read.relativeBlockSize),
		SetRegisterLength(read.registerLength),
		SetTapCount(read.tapCount),
	)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidHeader, err)
	}
	*g = *validated
	return nil
}
