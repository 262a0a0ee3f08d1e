package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

const (
	defaultSequenceLen = 100
	maxPeriodSearchLen = 24
)

func newGenerateCmd(v *viper.Viper) *cobra.Command {
	var (
		length int
		period bool
	)
	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Print a generated bit sequence",
		Long: `Print the next bits generated by the register, For example:
  lfsrx generate --seed=10101 --taps=0,2
  lfsrx generate --seed=101 --taps=0 --length=12 --period`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if length < 0 {
				return fmt.Errorf("length cannot be negative: %d", length)
			}
			reg, err := loadSettings(v).register(cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			if period {
				if reg.Len() > maxPeriodSearchLen {
					return fmt.Errorf("period search is limited to registers of at most %d bits", maxPeriodSearchLen)
				}
				start, cycle, err := reg.Period(1 << reg.Len())
				if err != nil {
					return err
				}
				_, _ = fmt.Fprintf(out, "Cycle: starts at step %d, repeats every %d bits\n", start, cycle)
			}
			_, _ = fmt.Fprintf(out, "Generated Sequence (%d bits): %s\n", length, reg.Generate(length))
			return nil
		},
	}
	cmd.Flags().IntVarP(&length, "length", "n", defaultSequenceLen, "Number of bits to generate.")
	cmd.Flags().BoolVar(&period, "period", false, "Also report where the output starts repeating.")
	return cmd
}
