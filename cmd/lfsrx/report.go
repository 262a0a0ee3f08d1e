package main

import (
	"fmt"
	"io"

	"github.com/saylorsolutions/lfsrx/pkg/bits"
	"github.com/saylorsolutions/lfsrx/pkg/lfsr"
	"github.com/saylorsolutions/lfsrx/pkg/stream"
)

// cipherReport holds every stage of a text round trip through the stream cipher.
type cipherReport struct {
	Plain     bits.Sequence
	Keystream bits.Sequence
	Cipher    bits.Sequence
	Decrypted bits.Sequence
	Text      string
}

// keystreamLen picks the keystream length for a message of n bits.
// A zero request means one keystream bit per message bit.
func keystreamLen(requested, n int) int {
	if requested > 0 {
		return requested
	}
	return n
}

func encryptText(reg *lfsr.Register, text string, keyLen int) (*cipherReport, error) {
	plain, err := bits.EncodeText(text)
	if err != nil {
		return nil, err
	}
	rep := &cipherReport{
		Plain:     plain,
		Keystream: reg.Generate(keystreamLen(keyLen, len(plain))),
	}
	if rep.Cipher, err = stream.Combine(rep.Plain, rep.Keystream); err != nil {
		return nil, err
	}
	if rep.Decrypted, err = stream.Combine(rep.Cipher, rep.Keystream); err != nil {
		return nil, err
	}
	if rep.Text, err = bits.DecodeText(rep.Decrypted); err != nil {
		return nil, err
	}
	return rep, nil
}

func (r *cipherReport) write(out io.Writer) {
	_, _ = fmt.Fprintln(out, "Plaintext in Binary:", r.Plain)
	_, _ = fmt.Fprintln(out, "Keystream:", r.Keystream)
	_, _ = fmt.Fprintln(out, "Ciphertext:", r.Cipher)
	_, _ = fmt.Fprintln(out, "Decryption:", r.Decrypted)
	_, _ = fmt.Fprintln(out, "Decrypted Text:", r.Text)
}
