// Package dateparse adapts araddon/dateparse as a layout-agnostic date
// parser for publish-date candidates.
package dateparse

import (
	"strings"
	"time"

	"github.com/araddon/dateparse"
	"github.com/awalczak/presskit"
)

// Ensure Parser implements presskit.DateParser at compile time.
var _ presskit.DateParser = (*Parser)(nil)

// Parser parses date strings without knowing their layout in advance.
type Parser struct{}

// NewParser creates a new Parser.
func NewParser() *Parser {
	return &Parser{}
}

// Parse parses value and returns the result in UTC. Dates without an
// explicit zone are treated as UTC rather than local time so results
// are stable across machines.
func (p *Parser) Parse(value string) (time.Time, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return time.Time{}, presskit.Errorf(presskit.EINVALID, "empty date value")
	}

	t, err := dateparse.ParseIn(value, time.UTC)
	if err != nil {
		return time.Time{}, presskit.Errorf(presskit.EINVALID, "unparseable date %q", value)
	}
	return t.UTC(), nil
}
