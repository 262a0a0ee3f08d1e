package main

import (
	"errors"
	"fmt"
	"strings"

	homedir "github.com/mitchellh/go-homedir"
	"github.com/saylorsolutions/lfsrx/pkg/seedphrase"
	"github.com/spf13/cobra"
	flag "github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const (
	configName = ".lfsrx"
	envPrefix  = "LFSRX"
)

func newRootCmd() *cobra.Command {
	var (
		cfgFile string
		v       = viper.New()
	)
	rootCmd := &cobra.Command{
		Use:   "lfsrx",
		Short: "LFSR keystream generation and XOR stream screening.",
		Long: `lfsrx generates pseudorandom bit sequences with a linear feedback shift register (LFSR), and uses them as the keystream of an XOR stream cipher.

Tap positions are counted from the rightmost bit of the seed, starting at 0. For example:
  lfsrx generate --seed=10101 --taps=0,2 --length=20
  lfsrx encrypt --seed=10101 --taps=0,2 "Hello"
  lfsrx decrypt --seed=10101 --taps=0,2 1010...

Settings may also come from environment variables (LFSRX_SEED, LFSRX_TAPS, ...) or a config file, $HOME/.lfsrx.yaml by default.

SECURITY:
    This is not encryption, this is obfuscation! An LFSR keystream is linear, and easily recovered from a little known plain text.`,
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return initConfig(v, cfgFile)
		},
	}

	flags := rootCmd.PersistentFlags()
	flags.StringVar(&cfgFile, "config", "", "Config file (default is $HOME/.lfsrx.yaml).")
	flags.StringP("seed", "s", "", "Register seed as a binary string, like 10101.")
	flags.StringP("taps", "t", "", "Comma separated tap positions, counted from the rightmost seed bit.")
	flags.Int("max-seed-len", 0, "Reject seeds longer than this many bits. 0 means no limit.")
	flags.StringP("passphrase", "p", "", "Derive the seed and taps from a passphrase instead.")
	flags.String("salt", "", "Hex encoded salt for --passphrase. A random salt is generated and printed when empty.")
	flags.Uint64("iterations", seedphrase.DefaultInteractiveIterations, "Scrypt iterations for --passphrase, must be a power of 2.")
	if err := bindFlags(v, flags, "seed", "taps", "max-seed-len", "passphrase", "salt", "iterations"); err != nil {
		panic(err)
	}

	rootCmd.AddCommand(
		newGenerateCmd(v),
		newEncryptCmd(v),
		newDecryptCmd(v),
		newDemoCmd(v),
		newScreenCmd(v),
		newTUICmd(v),
	)
	return rootCmd
}

func bindFlags(v *viper.Viper, flags *flag.FlagSet, names ...string) error {
	for _, name := range names {
		if err := v.BindPFlag(name, flags.Lookup(name)); err != nil {
			return fmt.Errorf("failed to bind flag '%s': %w", name, err)
		}
	}
	return nil
}

// initConfig reads in config file and ENV variables if set.
func initConfig(v *viper.Viper, cfgFile string) error {
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
		if err := v.ReadInConfig(); err != nil {
			return fmt.Errorf("failed to read config file '%s': %w", cfgFile, err)
		}
		return nil
	}

	home, err := homedir.Dir()
	if err != nil {
		// No home directory just means no default config file.
		return nil
	}
	v.AddConfigPath(home)
	v.SetConfigName(configName)
	v.SetConfigType("yaml")
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) {
			return nil
		}
		return fmt.Errorf("failed to read config file: %w", err)
	}
	return nil
}
