// Package config reads search settings and symmetry lists from gcfg
// (INI-style) files.
//
// Example:
//
//	[Search]
//	Tolerance = 1e-12
//	MaxEvaluations = 20000
//	Parallel = true
//	Form = d
//	Start = 0 0 0
//	Start = 45 0 45
//
//	[Symmetries]
//	Elastic = iso cub hex
//	Elastic = ort
//	Piezoelectric = -43m 6mm
package config

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/notargets/tensym/report"
	"github.com/notargets/tensym/rotation"
	"github.com/notargets/tensym/search"
	"github.com/notargets/tensym/symmetry"
	"github.com/notargets/tensym/tensor"
	"gopkg.in/gcfg.v1"
)

var ErrInvalid = errors.New("config: invalid value")

type SearchConfig struct {
	Tolerance      float64
	Window         int
	MaxIterations  int
	MaxEvaluations int
	SimplexSize    float64
	Parallel       bool
	Verbose        bool
	// Form is the piezoelectric form, "e" or "d".
	Form string
	// Start holds extra starting orientations, "tx ty tz" in degrees.
	Start []string
}

// SymmetriesConfig holds the labels scanned per kind. Each line may list
// several labels separated by blanks; an empty list means the default.
type SymmetriesConfig struct {
	Piezoelectric []string
	Elastic       []string
	Lattice       []string
}

type Config struct {
	Search     SearchConfig
	Symmetries SymmetriesConfig

	starts []rotation.Angles
}

// Default returns the configuration used when no file is given.
func Default() *Config {
	c := &Config{}
	if err := c.CheckInit(); err != nil {
		panic(err)
	}
	return c
}

func ReadFile(fname string) (*Config, error) {
	c := &Config{}
	if err := gcfg.ReadFileInto(c, fname); err != nil {
		return nil, fmt.Errorf("config: reading %s: %w", fname, err)
	}
	if err := c.CheckInit(); err != nil {
		return nil, fmt.Errorf("%s: %w", fname, err)
	}
	return c, nil
}

func ReadString(s string) (*Config, error) {
	c := &Config{}
	if err := gcfg.ReadStringInto(c, s); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	if err := c.CheckInit(); err != nil {
		return nil, err
	}
	return c, nil
}

// CheckInit validates the values read and fills in defaults for the ones
// left unset.
func (c *Config) CheckInit() error {
	s := &c.Search
	switch {
	case s.Tolerance < 0:
		return fmt.Errorf("Tolerance must be positive, but is %g: %w", s.Tolerance, ErrInvalid)
	case s.Window < 0:
		return fmt.Errorf("Window must be positive, but is %d: %w", s.Window, ErrInvalid)
	case s.MaxIterations < 0:
		return fmt.Errorf("MaxIterations must be positive, but is %d: %w", s.MaxIterations, ErrInvalid)
	case s.MaxEvaluations < 0:
		return fmt.Errorf("MaxEvaluations must be positive, but is %d: %w", s.MaxEvaluations, ErrInvalid)
	case s.SimplexSize < 0:
		return fmt.Errorf("SimplexSize must be positive, but is %g: %w", s.SimplexSize, ErrInvalid)
	}

	if s.Tolerance == 0 {
		s.Tolerance = search.DefaultTolerance
	}
	if s.Window == 0 {
		s.Window = search.DefaultWindow
	}
	if s.MaxIterations == 0 {
		s.MaxIterations = search.DefaultMaxIterations
	}
	if s.MaxEvaluations == 0 {
		s.MaxEvaluations = search.DefaultMaxEvaluations
	}
	if s.SimplexSize == 0 {
		s.SimplexSize = search.DefaultSimplexSize
	}

	if s.Form != "" && tensor.ParseForm(s.Form) == tensor.FormUnset {
		return fmt.Errorf("Form must be \"e\" or \"d\", but is %q: %w", s.Form, ErrInvalid)
	}

	c.starts = c.starts[:0]
	for _, str := range s.Start {
		a, err := parseAngles(str)
		if err != nil {
			return err
		}
		c.starts = append(c.starts, a)
	}
	return nil
}

func parseAngles(s string) (a rotation.Angles, err error) {
	fields := strings.Fields(s)
	if len(fields) != 3 {
		return a, fmt.Errorf("Start %q needs three angles: %w", s, ErrInvalid)
	}
	for i, f := range fields {
		if a[i], err = strconv.ParseFloat(f, 64); err != nil {
			return a, fmt.Errorf("Start %q: %v: %w", s, err, ErrInvalid)
		}
	}
	return a, nil
}

// Form returns the configured piezoelectric form, FormUnset when none.
func (c *Config) Form() tensor.Form {
	return tensor.ParseForm(c.Search.Form)
}

// Starts returns the extra starting orientations.
func (c *Config) Starts() []rotation.Angles {
	return append([]rotation.Angles(nil), c.starts...)
}

// Reporter returns the reporter matching the Verbose switch.
func (c *Config) Reporter() report.Reporter {
	return report.New(c.Search.Verbose)
}

// SearchOptions converts the [Search] section. A nil reporter selects one
// from the Verbose switch.
func (c *Config) SearchOptions(r report.Reporter) search.Options {
	if r == nil {
		r = c.Reporter()
	}
	return search.Options{
		Tolerance:      c.Search.Tolerance,
		Window:         c.Search.Window,
		MaxIterations:  c.Search.MaxIterations,
		MaxEvaluations: c.Search.MaxEvaluations,
		SimplexSize:    c.Search.SimplexSize,
		Starts:         c.Starts(),
		Parallel:       c.Search.Parallel,
		Reporter:       r,
	}
}

// Labels returns the symmetry labels to scan for a kind, the kind's
// default list when the file names none.
func (c *Config) Labels(k tensor.Kind) []string {
	var lines []string
	switch k {
	case tensor.Piezoelectric:
		lines = c.Symmetries.Piezoelectric
	case tensor.Elastic:
		lines = c.Symmetries.Elastic
	default:
		lines = c.Symmetries.Lattice
	}
	var out []string
	for _, l := range lines {
		out = append(out, strings.Fields(l)...)
	}
	if len(out) == 0 {
		return symmetry.DefaultSymmetries(k)
	}
	return out
}
