package main

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/rivo/tview"
	"github.com/saylorsolutions/lfsrx/pkg/lfsr"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"golang.org/x/term"
)

const (
	seedLabel = "Seed"
	tapsLabel = "Taps"
	textLabel = "Text"
)

func newTUICmd(v *viper.Viper) *cobra.Command {
	return &cobra.Command{
		Use:   "tui",
		Short: "Interactive form for trying seeds, taps, and messages",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !term.IsTerminal(int(os.Stdout.Fd())) {
				return errors.New("tui requires a terminal")
			}
			s := loadSettings(v)
			return newCipherForm(s.Seed, s.Taps, s.MaxSeedLen).run()
		},
	}
}

type cipherForm struct {
	app        *tview.Application
	form       *tview.Form
	output     *tview.TextView
	maxSeedLen int
}

func newCipherForm(seed, taps string, maxSeedLen int) *cipherForm {
	f := &cipherForm{
		app:        tview.NewApplication(),
		form:       tview.NewForm(),
		output:     tview.NewTextView(),
		maxSeedLen: maxSeedLen,
	}
	f.output.SetDynamicColors(true).SetWrap(true)
	f.output.SetBorder(true).SetTitle(" Result ")

	f.form.
		AddInputField(seedLabel, seed, 40, acceptBitText, nil).
		AddInputField(tapsLabel, taps, 40, acceptTapText, nil).
		AddInputField(textLabel, "", 60, nil, nil).
		AddButton("Run", f.refresh).
		AddButton("Quit", f.app.Stop)
	f.form.SetBorder(true).SetTitle(" lfsrx ")
	return f
}

func (f *cipherForm) run() error {
	layout := tview.NewFlex().
		SetDirection(tview.FlexRow).
		AddItem(f.form, 11, 0, true).
		AddItem(f.output, 0, 1, false)
	return f.app.SetRoot(layout, true).EnableMouse(true).Run()
}

func (f *cipherForm) field(label string) string {
	if item, ok := f.form.GetFormItemByLabel(label).(*tview.InputField); ok {
		return item.GetText()
	}
	return ""
}

func (f *cipherForm) refresh() {
	f.output.SetText(renderForm(f.field(seedLabel), f.field(tapsLabel), f.field(textLabel), f.maxSeedLen))
}

// renderForm runs the cipher round trip for the form values, and formats the result or error for display.
func renderForm(seedText, tapText, text string, maxSeedLen int) string {
	seed, err := parseSeed(seedText, maxSeedLen)
	if err != nil {
		return renderError(err)
	}
	taps, err := lfsr.ParseTaps(tapText)
	if err != nil {
		return renderError(err)
	}
	reg, err := lfsr.New(seed, taps)
	if err != nil {
		return renderError(err)
	}
	sequence := reg.Clone().Generate(defaultSequenceLen)
	var buf strings.Builder
	_, _ = fmt.Fprintf(&buf, "[yellow]Generated Sequence (%d bits):[-] %s\n", defaultSequenceLen, sequence)
	if len(text) == 0 {
		return buf.String()
	}
	rep, err := encryptText(reg, text, 0)
	if err != nil {
		return buf.String() + renderError(err)
	}
	_, _ = fmt.Fprintf(&buf, "[yellow]Plaintext in Binary:[-] %s\n", rep.Plain)
	_, _ = fmt.Fprintf(&buf, "[yellow]Keystream:[-] %s\n", rep.Keystream)
	_, _ = fmt.Fprintf(&buf, "[yellow]Ciphertext:[-] %s\n", rep.Cipher)
	_, _ = fmt.Fprintf(&buf, "[yellow]Decrypted Text:[-] %s\n", tview.Escape(rep.Text))
	return buf.String()
}

func renderError(err error) string {
	return fmt.Sprintf("[red]%s[-]\n", tview.Escape(err.Error()))
}

func acceptBitText(text string, last rune) bool {
	return last == '0' || last == '1'
}

func acceptTapText(text string, last rune) bool {
	return (last >= '0' && last <= '9') || last == ',' || last == ' '
}
