package types

import "fmt"

// Boolean literals accepted for the played and completed flags.
const (
	LiteralTrue  = "True"
	LiteralFalse = "False"
)

// ParseBool accepts exactly "True" or "False". Any other input, including
// other spellings, returns an error wrapping ErrInvalidBool.
func ParseBool(s string) (bool, error) {
	switch s {
	case LiteralTrue:
		return true, nil
	case LiteralFalse:
		return false, nil
	default:
		return false, fmt.Errorf("%q: %w", s, ErrInvalidBool)
	}
}

// FormatBool returns the literal ParseBool accepts for b.
func FormatBool(b bool) string {
	if b {
		return LiteralTrue
	}
	return LiteralFalse
}
