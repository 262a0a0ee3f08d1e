package main

import (
	"encoding/hex"
	"errors"
	"fmt"
	"io"

	"github.com/saylorsolutions/lfsrx/cmd/internal"
	"github.com/saylorsolutions/lfsrx/pkg/bits"
	"github.com/saylorsolutions/lfsrx/pkg/lfsr"
	"github.com/saylorsolutions/lfsrx/pkg/seedphrase"
	"github.com/spf13/viper"
)

var (
	ErrSeedTooLong   = errors.New("seed is too long")
	ErrMissingConfig = errors.New("missing register configuration")
)

// settings is the register configuration shared by every command.
type settings struct {
	Seed       string
	Taps       string
	MaxSeedLen int
	Passphrase string
	Salt       string
	Iterations uint64
}

func loadSettings(v *viper.Viper) settings {
	return settings{
		Seed:       v.GetString("seed"),
		Taps:       v.GetString("taps"),
		MaxSeedLen: v.GetInt("max-seed-len"),
		Passphrase: v.GetString("passphrase"),
		Salt:       v.GetString("salt"),
		Iterations: v.GetUint64("iterations"),
	}
}

// configured reports whether the register can be built without asking for anything.
func (s settings) configured() bool {
	return len(s.Seed) > 0 || len(s.Passphrase) > 0
}

// register builds the configured register.
// When a passphrase is used without a salt, the generated salt is reported to stderr.
func (s settings) register(stderr io.Writer) (*lfsr.Register, error) {
	if len(s.Passphrase) > 0 {
		return s.passphraseRegister(stderr)
	}
	if len(s.Seed) == 0 {
		return nil, fmt.Errorf("%w: set --seed or --passphrase", ErrMissingConfig)
	}
	seed, err := parseSeed(s.Seed, s.MaxSeedLen)
	if err != nil {
		return nil, err
	}
	taps, err := lfsr.ParseTaps(s.Taps)
	if err != nil {
		return nil, err
	}
	return lfsr.New(seed, taps)
}

func (s settings) passphraseRegister(stderr io.Writer) (*lfsr.Register, error) {
	var opts []seedphrase.GeneratorOpt
	if s.Iterations > 0 {
		opts = append(opts, seedphrase.SetIterations(s.Iterations))
	}
	gen, err := seedphrase.NewKeyGenerator(opts...)
	if err != nil {
		return nil, err
	}
	if len(s.Salt) == 0 {
		reg, salt, err := gen.GenerateRegister(seedphrase.Passphrase(s.Passphrase))
		if err != nil {
			return nil, err
		}
		internal.EchoTo(stderr, "Salt: %x", []byte(salt))
		return reg, nil
	}
	salt, err := hex.DecodeString(s.Salt)
	if err != nil {
		return nil, fmt.Errorf("%w: salt must be a hex string: %v", seedphrase.ErrInvalidSalt, err)
	}
	return gen.DeriveRegister(seedphrase.Passphrase(s.Passphrase), salt)
}

// parseSeed parses seed text, enforcing the optional length cap.
// The cap is a user interface policy, the register itself accepts any non-empty seed.
func parseSeed(text string, maxLen int) (bits.Sequence, error) {
	seed, err := bits.Parse(text)
	if err != nil {
		return nil, err
	}
	if len(seed) == 0 {
		return nil, lfsr.ErrEmptySeed
	}
	if maxLen > 0 && len(seed) > maxLen {
		return nil, fmt.Errorf("%w: %d bits given, at most %d allowed", ErrSeedTooLong, len(seed), maxLen)
	}
	return seed, nil
}
