package news

import (
	"fmt"
	"regexp"
	"strings"
)

// Symbol is a validated market-prefixed ticker code, e.g. "sh600000"
// (Shanghai) or "sz000001" (Shenzhen). Only ParseSymbol produces one.
type Symbol string

var symbolPattern = regexp.MustCompile(`^(sh|sz)\d{6}$`)

// ParseSymbol trims and lowercases raw input, then checks it against
// the sh/sz + 6 digits format. It returns ErrInvalidSymbol otherwise.
func ParseSymbol(raw string) (Symbol, error) {
	s := strings.ToLower(strings.TrimSpace(raw))
	if !symbolPattern.MatchString(s) {
		return "", fmt.Errorf("%w: %q, expected sh600000 or sz000001 format", ErrInvalidSymbol, raw)
	}
	return Symbol(s), nil
}

func (s Symbol) String() string {
	return string(s)
}
