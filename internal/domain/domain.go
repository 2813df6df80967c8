package domain

import (
	"bufio"
	"fmt"
	"io"
	"net/url"
	"strings"
	"text/tabwriter"

	"golang.org/x/net/idna"
)

// Normalize turns user input into an ASCII domain name suitable for registrar
// API calls. It is permissive about the input shape (full URLs, trailing dots,
// ports) but strict about the resulting name: letters/digits/hyphens only,
// labels of at most 63 octets, total length between 3 and 253, and at least
// one dot.
func Normalize(input string) (string, error) {
	s := strings.TrimSpace(input)
	if s == "" {
		return "", fmt.Errorf("empty domain")
	}

	if strings.Contains(s, "://") {
		if u, err := url.Parse(s); err == nil && u.Host != "" {
			s = u.Host
		}
	}

	// Strip path-ish suffixes and a trailing :port if present.
	if i := strings.IndexAny(s, "/?#"); i >= 0 {
		s = s[:i]
	}
	if i := strings.LastIndexByte(s, ':'); i > 0 && i < len(s)-1 && isAllDigits(s[i+1:]) {
		s = s[:i]
	}

	s = strings.TrimSuffix(s, ".")
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" {
		return "", fmt.Errorf("empty domain")
	}

	ascii, err := idna.Lookup.ToASCII(s)
	if err != nil {
		return "", fmt.Errorf("idna: %w", err)
	}

	// Single-label names are not registrable.
	if !strings.Contains(ascii, ".") {
		return "", fmt.Errorf("domain must contain a dot: %q", input)
	}

	if err := validateASCII(ascii); err != nil {
		return "", fmt.Errorf("invalid domain %q: %w", input, err)
	}

	return ascii, nil
}

func validateASCII(s string) error {
	if len(s) < 3 || len(s) > 253 {
		return fmt.Errorf("length %d out of range [3,253]", len(s))
	}
	if strings.HasPrefix(s, ".") || strings.HasSuffix(s, ".") {
		return fmt.Errorf("empty label")
	}
	for _, label := range strings.Split(s, ".") {
		if len(label) < 1 || len(label) > 63 {
			return fmt.Errorf("label %q length out of range [1,63]", label)
		}
		if label[0] == '-' || label[len(label)-1] == '-' {
			return fmt.Errorf("label %q starts or ends with hyphen", label)
		}
		for i := 0; i < len(label); i++ {
			c := label[i]
			if (c >= 'a' && c <= 'z') || (c >= '0' && c <= '9') || c == '-' {
				continue
			}
			return fmt.Errorf("label %q contains %q", label, c)
		}
	}
	return nil
}

func isAllDigits(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}

// ReadLines returns the non-empty trimmed lines of r, typically os.Stdin.
func ReadLines(r io.Reader) ([]string, error) {
	sc := bufio.NewScanner(r)
	var out []string
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" {
			continue
		}
		out = append(out, line)
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

func NewTabWriter(w io.Writer) *tabwriter.Writer {
	return tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
}
