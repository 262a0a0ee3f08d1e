package seedphrase

import (
	"bytes"
	"encoding/binary"
	"testing"

	"github.com/saylorsolutions/lfsrx/pkg/bits"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fastGen keeps scrypt cheap enough for tests.
func fastGen(t *testing.T, opts ...GeneratorOpt) *KeyGenerator {
	t.Helper()
	gen, err := NewKeyGenerator(append([]GeneratorOpt{SetIterations(1 << 4)}, opts...)...)
	require.NoError(t, err)
	return gen
}

func TestNewKeyGenerator(t *testing.T) {
	gen, err := NewKeyGenerator()
	assert.NoError(t, err)
	assert.NotNil(t, gen)
	assert.Equal(t, DefaultInteractiveIterations, gen.iterations)
	assert.Equal(t, DefaultCpuCost, gen.cpuCost)
	assert.Equal(t, DefaultRelBlockSize, gen.relativeBlockSize)
	assert.Equal(t, DefaultRegisterLength, gen.registerLength)
	assert.Equal(t, DefaultTapCount, gen.tapCount)
}

func TestNewKeyGenerator_Custom(t *testing.T) {
	gen, err := NewKeyGenerator(
		SetIterations(2),
		SetLongDelayIterations(),
		SetShortDelayIterations(),
		SetCPUCost(2),
		SetRelativeBlockSize(16),
		SetRegisterLength(5),
		SetTapCount(2),
	)
	assert.NoError(t, err)
	assert.Equal(t, DefaultInteractiveIterations, gen.iterations)
	assert.Equal(t, uint8(2), gen.cpuCost)
	assert.Equal(t, uint8(16), gen.relativeBlockSize)
	assert.Equal(t, uint8(5), gen.registerLength)
	assert.Equal(t, uint8(2), gen.tapCount)
}

func TestNewKeyGenerator_Neg(t *testing.T) {
	_, err := NewKeyGenerator(SetIterations(1))
	assert.Error(t, err)
	_, err = NewKeyGenerator(SetIterations(6))
	assert.Error(t, err)
	_, err = NewKeyGenerator(SetCPUCost(0))
	assert.Error(t, err)
	_, err = NewKeyGenerator(SetRelativeBlockSize(4))
	assert.Error(t, err)
	_, err = NewKeyGenerator(SetRegisterLength(0))
	assert.Error(t, err)
	_, err = NewKeyGenerator(SetRegisterLength(3), SetTapCount(4))
	assert.Error(t, err)
}

func TestGenerateRegister(t *testing.T) {
	gen := fastGen(t)
	reg, salt, err := gen.GenerateRegister([]byte("a test password"))
	require.NoError(t, err)
	assert.Len(t, salt, SaltSize)
	assert.Equal(t, int(DefaultRegisterLength), reg.Len())
	assert.Len(t, reg.Taps(), int(DefaultTapCount))

	derived, err := gen.DeriveRegister([]byte("a test password"), salt)
	require.NoError(t, err)
	assert.Equal(t, reg.State(), derived.State())
	assert.Equal(t, reg.Taps(), derived.Taps())
	assert.Equal(t, reg.Generate(64), derived.Generate(64))
}

func TestDeriveRegister_DifferentPassphrase(t *testing.T) {
	gen := fastGen(t, SetRegisterLength(64), SetTapCount(8))
	salt := Salt("0123456789abcdef")
	a, err := gen.DeriveRegister([]byte("first"), salt)
	require.NoError(t, err)
	b, err := gen.DeriveRegister([]byte("second"), salt)
	require.NoError(t, err)
	assert.NotEqual(t, a.State(), b.State())
}

func TestDeriveRegister_Neg(t *testing.T) {
	gen := fastGen(t)
	_, err := gen.DeriveRegister(nil, Salt("salt"))
	assert.ErrorIs(t, err, ErrEmptyPassPhrase)
	_, err = gen.DeriveRegister([]byte("pass"), nil)
	assert.ErrorIs(t, err, ErrInvalidSalt)
	_, _, err = gen.GenerateRegister(nil)
	assert.ErrorIs(t, err, ErrEmptyPassPhrase)
}

func TestNudgeZeroSeed(t *testing.T) {
	seed := bits.MustParse("0000")
	nudgeZeroSeed(seed)
	assert.Equal(t, "0001", seed.String())

	seed = bits.MustParse("0100")
	nudgeZeroSeed(seed)
	assert.Equal(t, "0100", seed.String())
}

func TestKeyGenerator_mapper(t *testing.T) {
	var buf bytes.Buffer
	gen := fastGen(t, SetRegisterLength(9), SetTapCount(3))
	assert.NoError(t, gen.mapper().Write(&buf, binary.BigEndian))

	updated, err := NewKeyGenerator(SetCPUCost(4), SetRelativeBlockSize(128))
	require.NoError(t, err)
	assert.NoError(t, updated.mapper().Read(&buf, binary.BigEndian))
	assert.Equal(t, uint64(1<<4), updated.iterations)
	assert.Equal(t, DefaultCpuCost, updated.cpuCost)
	assert.Equal(t, DefaultRelBlockSize, updated.relativeBlockSize)
	assert.Equal(t, uint8(9), updated.registerLength)
	assert.Equal(t, uint8(3), updated.tapCount)
}

func TestKeyGenerator_MarshalBinary(t *testing.T) {
	gen := fastGen(t, SetRegisterLength(12), SetTapCount(2))
	data, err := gen.MarshalBinary()
	require.NoError(t, err)

	restored := new(KeyGenerator)
	require.NoError(t, restored.UnmarshalBinary(data))
	assert.Equal(t, gen, restored)

	salt := Salt("some salt value")
	a, err := gen.DeriveRegister([]byte("shared"), salt)
	require.NoError(t, err)
	b, err := restored.DeriveRegister([]byte("shared"), salt)
	require.NoError(t, err)
	assert.Equal(t, a.State(), b.State())
}

func TestKeyGenerator_UnmarshalBinary_Neg(t *testing.T) {
	gen := fastGen(t)
	data, err := gen.MarshalBinary()
	require.NoError(t, err)

	restored := new(KeyGenerator)
	assert.ErrorIs(t, restored.UnmarshalBinary(nil), ErrInvalidHeader)
	assert.ErrorIs(t, restored.UnmarshalBinary(data[:5]), ErrInvalidHeader)

	bad := append([]byte{}, data...)
	bad[1] = 0
	assert.ErrorIs(t, restored.UnmarshalBinary(bad), ErrInvalidHeader)

	bad = append([]byte{}, data...)
	// iterations follow the 2 magic bytes; 3 isn't a power of 2.
	bad[9] = 3
	assert.ErrorIs(t, restored.UnmarshalBinary(bad), ErrInvalidHeader)
}
