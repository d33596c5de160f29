package main

import (
	"encoding/hex"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/holiman/uint256"
	"go.uber.org/zap"
	"golang.org/x/term"

	contractabi "github.com/wippyai/contract-abi"
	"github.com/wippyai/contract-abi/codec"
	"github.com/wippyai/contract-abi/sig"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4"))

	typeStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#87CEEB"))

	valueStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#98FB98"))

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF6B6B"))
)

func main() {
	var (
		sigStr  = flag.String("sig", "", "Function signature, e.g. transfer(address,uint256)")
		dataStr = flag.String("data", "", "Hex calldata, 0x prefix optional")
		legacy  = flag.Bool("legacy", false, "Decode with the legacy lenient policy")
		exact   = flag.Bool("exact", false, "Reject trailing bytes (strict policy only)")
		selOnly = flag.Bool("selector", false, "Print the 4-byte selector and exit")
		bare    = flag.Bool("bare", false, "Calldata carries no selector prefix")
		verbose = flag.Bool("v", false, "Enable debug logging")
	)
	flag.Parse()

	if *sigStr == "" {
		fmt.Fprintln(os.Stderr, "Usage: abidump -sig 'transfer(address,uint256)' -selector")
		fmt.Fprintln(os.Stderr, "       abidump -sig 'transfer(address,uint256)' -data 0xa9059cbb...")
		fmt.Fprintln(os.Stderr, "       abidump -sig ... -data ... -legacy   (lenient decoding)")
		os.Exit(1)
	}

	if *verbose {
		logger, err := zap.NewDevelopment()
		if err == nil {
			codec.SetLogger(logger)
			defer logger.Sync()
		}
	}

	if !term.IsTerminal(int(os.Stdout.Fd())) {
		plain := lipgloss.NewStyle()
		titleStyle, typeStyle, valueStyle, errorStyle = plain, plain, plain, plain
	}

	if err := run(*sigStr, *dataStr, *legacy, *exact, *selOnly, *bare); err != nil {
		fmt.Fprintf(os.Stderr, "%s\n", errorStyle.Render("Error: "+err.Error()))
		os.Exit(1)
	}
}

func run(sigStr, dataStr string, legacy, exact, selOnly, bare bool) error {
	method, err := sig.ParseMethod(sigStr)
	if err != nil {
		return err
	}

	sel := method.Selector()
	fmt.Printf("%s\n", titleStyle.Render(" "+method.Signature()+" "))
	fmt.Printf("Selector: 0x%s\n", hex.EncodeToString(sel[:]))

	if selOnly {
		return nil
	}
	if dataStr == "" {
		return fmt.Errorf("no calldata: pass -data or -selector")
	}

	data, err := hex.DecodeString(strings.TrimPrefix(dataStr, "0x"))
	if err != nil {
		return fmt.Errorf("bad hex calldata: %w", err)
	}

	pol := codec.Strict()
	if legacy {
		pol = codec.Legacy()
	}
	pol.ExactLength = exact

	dec := codec.NewDecoder()
	var args []any
	if bare {
		args, err = dec.DecodeArgs(method.Inputs, data, pol)
	} else {
		args, err = method.DecodeCall(dec, data, pol)
	}
	if err != nil {
		return err
	}

	fmt.Printf("Policy: %s\n\nArguments:\n", pol.Mode)
	for i, t := range method.Inputs {
		fmt.Printf("  [%d] %s = %s\n", i, typeStyle.Render(t.String()), renderValue(t, args[i]))
	}
	return nil
}

// renderValue formats a decoded value the way the type reads, recursing
// through aggregates.
func renderValue(t *codec.Type, v any) string {
	switch t.Kind {
	case codec.KindAddress:
		return valueStyle.Render(v.(contractabi.Address).String())

	case codec.KindBytes, codec.KindFixedBytes:
		return valueStyle.Render("0x" + hex.EncodeToString(v.([]byte)))

	case codec.KindString:
		return valueStyle.Render(fmt.Sprintf("%q", v))

	case codec.KindInt:
		if u, ok := v.(*uint256.Int); ok {
			return valueStyle.Render(signedDecimal(u))
		}
		return valueStyle.Render(fmt.Sprintf("%d", v))

	case codec.KindUint:
		if u, ok := v.(*uint256.Int); ok {
			return valueStyle.Render(u.Dec())
		}
		return valueStyle.Render(fmt.Sprintf("%d", v))

	case codec.KindArray, codec.KindFixedArray:
		elems := v.([]any)
		parts := make([]string, len(elems))
		for i, e := range elems {
			parts[i] = renderValue(t.Elem, e)
		}
		return "[" + strings.Join(parts, ", ") + "]"

	case codec.KindTuple:
		vals := v.([]any)
		parts := make([]string, len(vals))
		for i, f := range t.Fields {
			parts[i] = renderValue(f.Type, vals[i])
		}
		return "(" + strings.Join(parts, ", ") + ")"

	default:
		return valueStyle.Render(fmt.Sprintf("%v", v))
	}
}

func signedDecimal(u *uint256.Int) string {
	if u.Sign() < 0 {
		neg := new(uint256.Int).Neg(u)
		return "-" + neg.Dec()
	}
	return u.Dec()
}
