package form

import (
	"fmt"
	"strings"
)

// Check is the answer recorded on a 処方 or 変更 line.
// The two UI controls (あり/なし) write this one value, so they are exclusive.
type Check int

const (
	CheckUnset Check = iota
	CheckYes
	CheckNo
)

// Label returns the text the report prints after the line value.
func (c Check) Label() string {
	switch c {
	case CheckYes:
		return "あり"
	case CheckNo:
		return "なし"
	default:
		return ""
	}
}

// String returns the file representation of the check.
func (c Check) String() string {
	switch c {
	case CheckYes:
		return "yes"
	case CheckNo:
		return "no"
	default:
		return ""
	}
}

// ParseCheck parses the file representation of a check.
// Both the English words and the Japanese labels are accepted.
func ParseCheck(s string) (Check, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "":
		return CheckUnset, nil
	case "yes", "1", "あり":
		return CheckYes, nil
	case "no", "0", "なし":
		return CheckNo, nil
	default:
		return CheckUnset, fmt.Errorf("invalid check %q (valid: yes, no, あり, なし or empty)", s)
	}
}

// MarshalText implements encoding.TextMarshaler.
func (c Check) MarshalText() ([]byte, error) {
	return []byte(c.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (c *Check) UnmarshalText(text []byte) error {
	parsed, err := ParseCheck(string(text))
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}

// transition moves a consultation line into the given check state.
// Entering CheckNo empties the paired value; every other transition keeps it.
func (f ConsultationField) transition(to Check) ConsultationField {
	f.Check = to
	if to == CheckNo {
		f.Value = ""
	}
	return f
}
