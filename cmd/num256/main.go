// Command num256 is a small calculator for 256-bit unsigned integers with
// wraparound semantics.
//
// Usage:
//
//	num256 add 0xffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffff 1
//	num256 --radix 16 lsh 1 255
//	num256 --endian le bytes 1
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/davecgh/go-spew/spew"
	"github.com/fatih/color"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	num "github.com/shabbyrobe/go-num256"
)

// session is the state shared by every subcommand once the persistent flags
// and config file have been resolved.
type session struct {
	cfg    config
	log    zerolog.Logger
	out    io.Writer
	result *color.Color
	dump   *spew.ConfigState
}

func newRootCmd() *cobra.Command {
	s := &session{}

	rootCmd := &cobra.Command{
		Use:   "num256",
		Short: "256-bit unsigned integer calculator",
		Long: `num256 evaluates a single 256-bit operation and prints the result.

Operands are decimal or 0x-prefixed hex. Every operation wraps modulo 2^256.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return s.init(cmd)
		},
	}

	rootCmd.PersistentFlags().String("config", "", "path to a TOML config file")
	rootCmd.PersistentFlags().Int("radix", 10, "output radix (10|16)")
	rootCmd.PersistentFlags().String("endian", "be", "byte order for bytes/frombytes (le|be)")
	rootCmd.PersistentFlags().String("color", "auto", "colorize output (auto|on|off)")
	rootCmd.PersistentFlags().String("loglevel", "warn", "log level (trace|debug|info|warn|error)")
	rootCmd.PersistentFlags().Bool("dump", false, "dump the raw limbs of each result")

	addCommands(rootCmd, s)
	return rootCmd
}

func (s *session) init(cmd *cobra.Command) error {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}
	s.cfg = cfg

	lvl, err := zerolog.ParseLevel(cfg.LogLevel)
	if err != nil {
		return fmt.Errorf("invalid log level %q: %w", cfg.LogLevel, err)
	}

	useColor := cfg.Color == "on" || (cfg.Color == "auto" && !color.NoColor)

	s.log = zerolog.New(zerolog.ConsoleWriter{
		Out:     cmd.ErrOrStderr(),
		NoColor: !useColor,
	}).Level(lvl).With().Timestamp().Str("cmd", cmd.Name()).Logger()

	s.out = cmd.OutOrStdout()
	s.result = color.New(color.FgGreen, color.Bold)
	if useColor {
		s.result.EnableColor()
	} else {
		s.result.DisableColor()
	}
	s.dump = &spew.ConfigState{Indent: "  ", DisableMethods: true, DisablePointerAddresses: true}

	s.log.Debug().
		Int("radix", cfg.Radix).
		Str("endian", cfg.Endian).
		Str("color", cfg.Color).
		Msg("config resolved")
	return nil
}

// printU256 writes u in the configured radix, followed by a limb dump if
// --dump is set.
func (s *session) printU256(u num.U256) error {
	var text string
	if s.cfg.Radix == 16 {
		text = "0x" + u.Text(16)
	} else {
		text = u.Text(10)
	}
	if err := s.println(text); err != nil {
		return err
	}
	if s.cfg.Dump {
		hi, hm, lm, lo := u.Raw()
		s.dump.Fdump(s.out, struct{ Hi, HM, LM, Lo uint64 }{hi, hm, lm, lo})
	}
	return nil
}

func (s *session) println(v interface{}) error {
	_, err := s.result.Fprintln(s.out, v)
	return err
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "num256:", err)
		os.Exit(1)
	}
}
