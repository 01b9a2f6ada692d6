package classify

import (
	"fmt"
	"strings"
)

// Kind is the classification of a single line.
type Kind int

// Line kinds, in the order they are reported in summaries.
const (
	KindText Kind = iota
	KindBlank
	KindRule
	KindFenceOpen
	KindCode
	KindFenceClose
)

//nolint:gochecknoglobals // Read-only lookup table.
var kindNames = [...]string{
	KindText:       "text",
	KindBlank:      "blank",
	KindRule:       "rule",
	KindFenceOpen:  "fence-open",
	KindCode:       "code",
	KindFenceClose: "fence-close",
}

// AllKinds returns every kind in report order.
func AllKinds() []Kind {
	return []Kind{KindText, KindBlank, KindRule, KindFenceOpen, KindCode, KindFenceClose}
}

// KindNames returns the names accepted by ParseKind, in report order.
func KindNames() []string {
	return append([]string(nil), kindNames[:]...)
}

// String returns the kind's name.
func (k Kind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return fmt.Sprintf("kind(%d)", int(k))
	}
	return kindNames[k]
}

// ParseKind looks up a kind by name, case-insensitively.
func ParseKind(name string) (Kind, bool) {
	name = strings.ToLower(strings.TrimSpace(name))
	for i, n := range kindNames {
		if n == name {
			return Kind(i), true
		}
	}
	return 0, false
}

// MarshalText implements encoding.TextMarshaler so kinds serialize by name,
// including as JSON map keys.
func (k Kind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (k *Kind) UnmarshalText(text []byte) error {
	parsed, ok := ParseKind(string(text))
	if !ok {
		return fmt.Errorf("unknown line kind %q", text)
	}
	*k = parsed
	return nil
}
