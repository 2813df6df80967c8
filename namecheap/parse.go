package namecheap

import (
	"strconv"
	"strings"
	"time"
)

// The API renders attributes inconsistently ("true"/"True", empty strings for
// absent fees). Attribute extraction is therefore permissive: missing or
// malformed values resolve to zero values instead of failing the whole
// result. Dates are the exception; a present-but-unparseable date is a
// *ParseError.

// dateLayout is the provider's textual date format, e.g. "02/15/2022".
const dateLayout = "01/02/2006"

func attrBool(s string) bool {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "true", "yes", "1", "enabled":
		return true
	default:
		return false
	}
}

func attrFloat(s string) float64 {
	f, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return 0
	}
	return f
}

func attrInt(s string) int {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0
	}
	return n
}

func parseDate(field, s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, nil
	}
	t, err := time.Parse(dateLayout, s)
	if err != nil {
		return time.Time{}, &ParseError{Field: field, Err: err}
	}
	return t, nil
}
