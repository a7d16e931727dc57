// Package report carries the non-fatal warnings raised while converting,
// projecting and searching tensors. Warnings never change computed values;
// a Reporter only decides whether and where they are shown.
package report

import (
	"fmt"
	"io"
	"log"
	"os"
	"sync"
)

type Code uint8

const (
	MissingForm Code = iota + 1
	MissingSymmetry
	UnknownSymmetry
	ClassDefaulted
	DegenerateProjection
	AsymmetricInput
)

func (c Code) String() string {
	switch c {
	case MissingForm:
		return "MissingForm"
	case MissingSymmetry:
		return "MissingSymmetry"
	case UnknownSymmetry:
		return "UnknownSymmetry"
	case ClassDefaulted:
		return "ClassDefaulted"
	case DegenerateProjection:
		return "DegenerateProjection"
	case AsymmetricInput:
		return "AsymmetricInput"
	default:
		return fmt.Sprintf("Code(%d)", uint8(c))
	}
}

// Warning is one structured, recoverable diagnostic.
type Warning struct {
	Code    Code
	Kind    string // tensor kind name, empty when not kind specific
	Label   string // symmetry label involved, if any
	Message string
}

func (w Warning) String() string {
	s := w.Code.String()
	if w.Kind != "" {
		s += " [" + w.Kind + "]"
	}
	if w.Label != "" {
		s += " " + w.Label
	}
	return s + ": " + w.Message
}

// Reporter receives warnings. Implementations must be safe for concurrent
// use since the rotation search may run labels in parallel.
type Reporter interface {
	Warn(w Warning)
}

// New returns the reporter for a verbosity switch: a stderr logger when
// verbose, a discarding reporter otherwise.
func New(verbose bool) Reporter {
	if verbose {
		return NewLogger(os.Stderr)
	}
	return Discard
}

// Or returns r, or Discard when r is nil.
func Or(r Reporter) Reporter {
	if r == nil {
		return Discard
	}
	return r
}

type discard struct{}

func (discard) Warn(Warning) {}

// Discard drops every warning.
var Discard Reporter = discard{}

// Logger writes warnings through a standard library logger.
type Logger struct {
	mu  sync.Mutex
	log *log.Logger
}

func NewLogger(w io.Writer) *Logger {
	return &Logger{log: log.New(w, "tensym: ", log.LstdFlags)}
}

func (l *Logger) Warn(w Warning) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.log.Printf("warning: %s", w)
}

// Collector keeps warnings in memory, mostly for tests and for callers
// that render diagnostics themselves.
type Collector struct {
	mu       sync.Mutex
	warnings []Warning
}

func (c *Collector) Warn(w Warning) {
	c.mu.Lock()
	c.warnings = append(c.warnings, w)
	c.mu.Unlock()
}

// Warnings returns a copy of everything collected so far.
func (c *Collector) Warnings() []Warning {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]Warning, len(c.warnings))
	copy(out, c.warnings)
	return out
}

// Has reports whether at least one warning with the given code was seen.
func (c *Collector) Has(code Code) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	for _, w := range c.warnings {
		if w.Code == code {
			return true
		}
	}
	return false
}

func (c *Collector) Reset() {
	c.mu.Lock()
	c.warnings = nil
	c.mu.Unlock()
}
