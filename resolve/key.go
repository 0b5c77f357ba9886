package resolve

import (
	"strconv"
	"strings"

	"github.com/viant/lintrule/unit"
)

const (
	// Placeholder is the source name used by ad-hoc and unit-test invocations
	Placeholder = "n/a"
	delimiter   = "-"
)

// Key identifies a compilation unit as visited under a source name
type Key string

// Deriver computes resolution keys
type Deriver struct {
	placeholders map[string]bool
}

// Derive returns the unit key, false means the unit has no stable identity and has to be resolved on every visit
func (d *Deriver) Derive(source string, aUnit *unit.Unit) (Key, bool) {
	source = strings.TrimSpace(source)
	if source == "" || d.placeholders[source] || aUnit == nil {
		return "", false
	}
	return Key(source + delimiter + strconv.FormatUint(aUnit.Fingerprint(), 16)), true
}

// NewDeriver creates a deriver, Placeholder is used when no placeholder is supplied
func NewDeriver(placeholders ...string) *Deriver {
	if len(placeholders) == 0 {
		placeholders = []string{Placeholder}
	}
	ret := &Deriver{placeholders: make(map[string]bool, len(placeholders))}
	for _, placeholder := range placeholders {
		ret.placeholders[strings.TrimSpace(placeholder)] = true
	}
	return ret
}
