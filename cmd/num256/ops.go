package main

import (
	"encoding/hex"
	"fmt"
	"math/big"
	"strconv"
	"strings"

	"fortio.org/safecast"
	"github.com/spf13/cobra"

	num "github.com/shabbyrobe/go-num256"
)

type (
	unaryOp  func(a num.U256) num.U256
	binaryOp func(a, b num.U256) num.U256
	countOp  func(a num.U256) uint
)

var unaryOps = []struct {
	name, short string
	fn          unaryOp
}{
	{"neg", "two's complement negation", num.U256.Neg},
	{"not", "bitwise complement", num.U256.Not},
	{"inc", "add one", num.U256.Inc},
	{"dec", "subtract one", num.U256.Dec},
}

var binaryOps = []struct {
	name, short string
	fn          binaryOp
}{
	{"add", "wrapping addition", num.U256.Add},
	{"sub", "wrapping subtraction", num.U256.Sub},
	{"and", "bitwise and", num.U256.And},
	{"or", "bitwise or", num.U256.Or},
	{"xor", "bitwise xor", num.U256.Xor},
	{"andnot", "bitwise and-not", num.U256.AndNot},
}

var countOps = []struct {
	name, short string
	fn          countOp
}{
	{"popcnt", "count set bits", num.U256.OnesCount},
	{"clz", "count leading zero bits (256 for zero)", num.U256.LeadingZeros},
	{"ctz", "count trailing zero bits (256 for zero)", num.U256.TrailingZeros},
	{"bitlen", "minimum bits required to represent the value", num.U256.BitLen},
}

func addCommands(root *cobra.Command, s *session) {
	for _, op := range unaryOps {
		op := op
		root.AddCommand(&cobra.Command{
			Use:   op.name + " <a>",
			Short: op.short,
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				a, err := parseU256(args[0])
				if err != nil {
					return err
				}
				s.log.Debug().Str("a", a.String()).Msg(op.name)
				return s.printU256(op.fn(a))
			},
		})
	}

	for _, op := range binaryOps {
		op := op
		root.AddCommand(&cobra.Command{
			Use:   op.name + " <a> <b>",
			Short: op.short,
			Args:  cobra.ExactArgs(2),
			RunE: func(cmd *cobra.Command, args []string) error {
				a, b, err := parseU256Pair(args)
				if err != nil {
					return err
				}
				s.log.Debug().Str("a", a.String()).Str("b", b.String()).Msg(op.name)
				return s.printU256(op.fn(a, b))
			},
		})
	}

	for _, op := range countOps {
		op := op
		root.AddCommand(&cobra.Command{
			Use:   op.name + " <a>",
			Short: op.short,
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				a, err := parseU256(args[0])
				if err != nil {
					return err
				}
				return s.println(op.fn(a))
			},
		})
	}

	root.AddCommand(
		shiftCmd(s, "rsh", "logical right shift, amount wrapped into [0, 255]", num.U256.Rsh),
		shiftCmd(s, "lsh", "left shift, amount wrapped into [0, 255]", num.U256.Lsh),
		cmpCmd(s),
		bytesCmd(s),
		fromBytesCmd(s),
	)
}

func shiftCmd(s *session, name, short string, fn func(num.U256, uint) num.U256) *cobra.Command {
	long := short + `.

Negative amounts wrap, so -1 shifts by 255. Put them after "--" so they are
not read as flags:

	num256 ` + name + ` 1 -- -1`

	return &cobra.Command{
		Use:   name + " <a> <n>",
		Short: short,
		Long:  long,
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := parseU256(args[0])
			if err != nil {
				return err
			}
			n, err := parseShift(args[1])
			if err != nil {
				return err
			}
			if strconv.FormatUint(uint64(n), 10) != args[1] {
				s.log.Info().Str("n", args[1]).Uint("effective", n).Msg("shift amount reduced mod 256")
			}
			return s.printU256(fn(a, n))
		},
	}
}

func cmpCmd(s *session) *cobra.Command {
	return &cobra.Command{
		Use:   "cmp <a> <b>",
		Short: "compare two values, printing -1, 0 or 1",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, b, err := parseU256Pair(args)
			if err != nil {
				return err
			}
			return s.println(a.Cmp(b))
		},
	}
}

func bytesCmd(s *session) *cobra.Command {
	return &cobra.Command{
		Use:   "bytes <a>",
		Short: "print the 32-byte encoding as hex",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := parseU256(args[0])
			if err != nil {
				return err
			}
			var b [32]byte
			if s.cfg.Endian == "le" {
				b = a.BytesLE()
			} else {
				b = a.BytesBE()
			}
			return s.println(hex.EncodeToString(b[:]))
		},
	}
}

func fromBytesCmd(s *session) *cobra.Command {
	return &cobra.Command{
		Use:   "frombytes <hex>",
		Short: "decode a hex encoded byte string (a multiple of 32 bytes)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			raw, err := hex.DecodeString(strings.TrimPrefix(args[0], "0x"))
			if err != nil {
				return fmt.Errorf("invalid hex %q: %w", args[0], err)
			}
			var u num.U256
			if s.cfg.Endian == "le" {
				u, err = num.U256FromBytesLE(raw)
			} else {
				u, err = num.U256FromBytesBE(raw)
			}
			if err != nil {
				return err
			}
			if len(raw) > 32 {
				s.log.Warn().Int("len", len(raw)).Msg("only the first 32 bytes were decoded")
			}
			return s.printU256(u)
		},
	}
}

// parseU256 accepts any literal big.Int accepts with base 0 ("0x", "0b",
// "0o" prefixes, underscores) as long as it fits in 256 unsigned bits.
func parseU256(s string) (num.U256, error) {
	b, ok := new(big.Int).SetString(s, 0)
	if !ok {
		return num.U256{}, fmt.Errorf("invalid operand %q", s)
	}
	u, accurate := num.U256FromBigInt(b)
	if !accurate {
		return num.U256{}, fmt.Errorf("operand %q does not fit in 256 unsigned bits", s)
	}
	return u, nil
}

func parseU256Pair(args []string) (a, b num.U256, err error) {
	if a, err = parseU256(args[0]); err != nil {
		return a, b, err
	}
	if b, err = parseU256(args[1]); err != nil {
		return a, b, err
	}
	return a, b, nil
}

// parseShift reads a signed shift amount and wraps it into [0, 255], so -1
// shifts by 255.
func parseShift(s string) (uint, error) {
	n, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid shift amount %q: %w", s, err)
	}
	sh, err := safecast.Conv[uint](n & 255)
	if err != nil {
		return 0, fmt.Errorf("invalid shift amount %q: %w", s, err)
	}
	return sh, nil
}
