package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/term"

	"github.com/tbramble/namecheap-go/internal/domain"
)

type outputFormat int

const (
	formatTable outputFormat = iota
	formatNDJSON
	formatJSON
	formatPlain
)

func resolveFormat(flagVal string, stdout *os.File) outputFormat {
	switch strings.ToLower(strings.TrimSpace(flagVal)) {
	case "table":
		return formatTable
	case "ndjson":
		return formatNDJSON
	case "json":
		return formatJSON
	case "plain":
		return formatPlain
	case "auto", "":
	default:
		// Unknown format: fall back to auto.
	}

	if term.IsTerminal(int(stdout.Fd())) {
		return formatTable
	}
	return formatNDJSON
}

// writeRows renders a list-shaped result. line produces one tab-separated
// record per row, used for both the table and the stable plain format.
func writeRows[T any](w io.Writer, format outputFormat, rows []T, header string, line func(T) string) error {
	switch format {
	case formatNDJSON:
		enc := json.NewEncoder(w)
		for _, r := range rows {
			if err := enc.Encode(r); err != nil {
				return err
			}
		}
		return nil
	case formatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(rows)
	case formatPlain:
		for _, r := range rows {
			if _, err := fmt.Fprintln(w, line(r)); err != nil {
				return err
			}
		}
		return nil
	case formatTable:
		fallthrough
	default:
		tw := domain.NewTabWriter(w)
		fmt.Fprintln(tw, header)
		for _, r := range rows {
			fmt.Fprintln(tw, line(r))
		}
		return tw.Flush()
	}
}

// writeObject renders a single-value result. fields lists label/value pairs
// in display order.
func writeObject(w io.Writer, format outputFormat, v any, fields [][2]string) error {
	switch format {
	case formatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(v)
	case formatNDJSON:
		return json.NewEncoder(w).Encode(v)
	case formatPlain:
		for _, f := range fields {
			if _, err := fmt.Fprintf(w, "%s\t%s\n", f[0], f[1]); err != nil {
				return err
			}
		}
		return nil
	case formatTable:
		fallthrough
	default:
		tw := domain.NewTabWriter(w)
		for _, f := range fields {
			fmt.Fprintf(tw, "%s\t%s\n", f[0], f[1])
		}
		return tw.Flush()
	}
}

func yesNo(v bool) string {
	if v {
		return "yes"
	}
	return "no"
}
