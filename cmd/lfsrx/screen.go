package main

import (
	"fmt"
	"io"
	"os"

	"github.com/saylorsolutions/lfsrx/pkg/stream"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func newScreenCmd(v *viper.Viper) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "screen IN OUT",
		Short: "XOR screen a file with the register keystream",
		Long: `Screen every byte of IN with the register keystream and write the result to OUT.
Running screen again on OUT with the same settings recovers IN. Either path may be - for stdin or stdout, For example:
  lfsrx screen --passphrase="correct horse" notes.txt notes.bin
  lfsrx screen --passphrase="correct horse" --salt=<printed salt> notes.bin -`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			reg, err := loadSettings(v).register(cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			in, closeIn, err := openInput(cmd, args[0])
			if err != nil {
				return err
			}
			defer closeIn()
			out, closeOut, err := openOutput(cmd, args[1])
			if err != nil {
				return err
			}
			w := stream.NewRegisterWriter(out, reg)
			if _, err := io.Copy(w, in); err != nil {
				_ = closeOut()
				return fmt.Errorf("failed to screen data: %w", err)
			}
			return closeOut()
		},
	}
	return cmd
}

func openInput(cmd *cobra.Command, path string) (io.Reader, func(), error) {
	if path == "-" {
		return cmd.InOrStdin(), func() {}, nil
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, err
	}
	return f, func() {
		_ = f.Close()
	}, nil
}

func openOutput(cmd *cobra.Command, path string) (io.Writer, func() error, error) {
	if path == "-" {
		return cmd.OutOrStdout(), func() error { return nil }, nil
	}
	f, err := os.Create(path)
	if err != nil {
		return nil, nil, err
	}
	return f, f.Close, nil
}
