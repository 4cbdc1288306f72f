package ticker

import "strings"

// Selection is what the user picked in the dashboard: either one ticker or
// several. Callers only ever look at Symbols.
type Selection interface {
	Symbols() []string
	isSelection()
}

// Single is a selection of exactly one ticker.
type Single string

// Multi is a selection of any number of tickers, in display order.
type Multi []string

func (s Single) Symbols() []string {
	if sym := Normalize(string(s)); sym != "" {
		return []string{sym}
	}
	return nil
}

// Symbols returns the normalized tickers with blanks and repeats removed.
func (m Multi) Symbols() []string {
	seen := make(map[string]struct{}, len(m))
	out := make([]string, 0, len(m))
	for _, raw := range m {
		sym := Normalize(raw)
		if sym == "" {
			continue
		}
		if _, ok := seen[sym]; ok {
			continue
		}
		seen[sym] = struct{}{}
		out = append(out, sym)
	}
	return out
}

func (Single) isSelection() {}
func (Multi) isSelection()  {}

// ParseSelection builds a Selection from raw form or query values. Each value
// may itself be a comma separated list.
func ParseSelection(values []string) Selection {
	var parts []string
	for _, v := range values {
		parts = append(parts, strings.Split(v, ",")...)
	}
	if len(parts) == 1 {
		return Single(parts[0])
	}
	return Multi(parts)
}

// Normalize trims and upper-cases a ticker symbol.
func Normalize(symbol string) string {
	return strings.ToUpper(strings.TrimSpace(symbol))
}
