package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/saylorsolutions/lfsrx/pkg/bits"
	"github.com/saylorsolutions/lfsrx/pkg/lfsr"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"golang.org/x/term"
)

func newDemoCmd(v *viper.Viper) *cobra.Command {
	var (
		length int
		text   string
	)
	cmd := &cobra.Command{
		Use:   "demo",
		Short: "Walk through sequence generation and a cipher round trip",
		Long: `Generate a bit sequence, then screen a message and recover it with the same keystream.
Anything not given by flags, environment, or config is asked for on stdin.
When stdin is a terminal an invalid seed is asked for again, otherwise it's an error.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			d := &demo{
				settings: loadSettings(v),
				prompt:   newPrompter(cmd.InOrStdin(), cmd.OutOrStdout()),
				out:      cmd.OutOrStdout(),
				stderr:   cmd.ErrOrStderr(),
			}
			if cmd.Flags().Changed("text") {
				d.text = &text
			}
			return d.run(length)
		},
	}
	cmd.Flags().IntVarP(&length, "length", "n", defaultSequenceLen, "Number of bits to generate in the first part.")
	cmd.Flags().StringVar(&text, "text", "", "Plain text for the cipher part.")
	return cmd
}

type demo struct {
	settings settings
	prompt   *prompter
	out      io.Writer
	stderr   io.Writer
	text     *string
}

func (d *demo) run(length int) error {
	_, _ = fmt.Fprintln(d.out, "LFSR Pseudorandom Sequence Generation will be generated now")
	reg, err := d.register()
	if err != nil {
		return err
	}
	// Configured registers are reused for the cipher part instead of asking again.
	initial := reg.Clone()
	_, _ = fmt.Fprintf(d.out, "Generated Sequence (%d bits): %s\n", length, reg.Generate(length))

	_, _ = fmt.Fprintln(d.out, "\nStream Cipher will be generated now")
	var text string
	if d.text != nil {
		text = *d.text
	} else if text, err = d.prompt.ask("Enter plain text: "); err != nil {
		return err
	}
	if d.settings.configured() {
		reg = initial
	} else if reg, err = d.register(); err != nil {
		return err
	}
	rep, err := encryptText(reg, text, 0)
	if err != nil {
		return err
	}
	rep.write(d.out)
	return nil
}

// register builds a fresh register from settings, or asks for the seed and taps.
func (d *demo) register() (*lfsr.Register, error) {
	if d.settings.configured() {
		return d.settings.register(d.stderr)
	}
	seed, err := d.prompt.askSeed(d.settings.MaxSeedLen)
	if err != nil {
		return nil, err
	}
	for {
		answer, err := d.prompt.ask("Enter tap positions as comma-separated integers: ")
		if err != nil {
			return nil, err
		}
		var reg *lfsr.Register
		taps, err := lfsr.ParseTaps(answer)
		if err == nil {
			if reg, err = lfsr.New(seed, taps); err == nil {
				return reg, nil
			}
		}
		if !d.prompt.interactive {
			return nil, err
		}
		_, _ = fmt.Fprintf(d.out, "Invalid tap positions! %v\n", err)
	}
}

type prompter struct {
	in          *bufio.Scanner
	out         io.Writer
	interactive bool
}

func newPrompter(in io.Reader, out io.Writer) *prompter {
	p := &prompter{
		in:  bufio.NewScanner(in),
		out: out,
	}
	if f, ok := in.(*os.File); ok {
		p.interactive = term.IsTerminal(int(f.Fd()))
	}
	return p
}

func (p *prompter) ask(question string) (string, error) {
	_, _ = fmt.Fprint(p.out, question)
	if !p.in.Scan() {
		if err := p.in.Err(); err != nil {
			return "", err
		}
		return "", io.ErrUnexpectedEOF
	}
	return strings.TrimSpace(p.in.Text()), nil
}

func (p *prompter) askSeed(maxLen int) (bits.Sequence, error) {
	question := "Enter the seed in binary: "
	if maxLen > 0 {
		question = fmt.Sprintf("Enter the seed in binary (at most %d characters): ", maxLen)
	}
	for {
		answer, err := p.ask(question)
		if err != nil {
			return nil, err
		}
		seed, err := parseSeed(answer, maxLen)
		if err == nil {
			return seed, nil
		}
		if !p.interactive {
			return nil, err
		}
		_, _ = fmt.Fprintf(p.out, "Invalid seed! %v\n", err)
	}
}
