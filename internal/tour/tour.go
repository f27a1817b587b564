// Package tour walks through one language construct per section and prints
// illustrative values for each.
//
// Sections run top to bottom in a fixed order:
//
//	record    struct with a method satisfying an interface
//	enum      tagged union modelled as a sealed interface
//	generic   type parameters
//	match     switch with a default case
//	module    calling an exported function from another package
//	drawable  dynamic dispatch over an interface slice
//	async     blocking on a job run by an executor goroutine
//	platform  build constraints (linux only)
//	derive    value copies and %+v debug formatting
package tour

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/fatih/color"
)

// ErrUnknownSection is returned when a section name does not exist.
var ErrUnknownSection = errors.New("unknown section")

// env is what every demo receives.
type env struct {
	ctx    context.Context
	w      io.Writer
	logger *log.Logger
}

// Section is one named demo of the tour.
type Section struct {
	Name  string
	Title string
	run   func(e env) error
}

var sections = []Section{
	{Name: "record", Title: "Struct + method set", run: demoRecord},
	{Name: "enum", Title: "Tagged union (sealed interface)", run: demoEnum},
	{Name: "generic", Title: "Generics", run: demoGeneric},
	{Name: "match", Title: "switch with default", run: demoMatch},
	{Name: "module", Title: "Packages and exported names", run: demoModule},
	{Name: "drawable", Title: "Dynamic dispatch through an interface", run: demoDrawable},
	{Name: "async", Title: "Async job, blocked on until done", run: demoAsync},
	{Name: "platform", Title: "Build constraints", run: demoPlatform},
	{Name: "derive", Title: "Value copies and debug formatting", run: demoDerive},
}

// Sections returns the tour sections in run order.
func Sections() []Section {
	out := make([]Section, len(sections))
	copy(out, sections)
	return out
}

// Options controls a tour run.
type Options struct {
	// Only restricts the run to the named sections. Empty means all.
	Only []string

	// Headers prints a "━━━ title ━━━" line before each section.
	Headers bool

	// Logger receives debug output. If nil, output is discarded.
	Logger *log.Logger
}

var header = color.New(color.FgCyan, color.Bold).FprintfFunc()

// Run executes the selected sections in tour order, writing to w.
func Run(ctx context.Context, w io.Writer, opts Options) error {
	logger := opts.Logger
	if logger == nil {
		logger = log.NewWithOptions(io.Discard, log.Options{})
	}

	selected, err := selectSections(opts.Only)
	if err != nil {
		return err
	}

	e := env{ctx: ctx, w: w, logger: logger}
	for _, s := range selected {
		if err := ctx.Err(); err != nil {
			return err
		}
		if opts.Headers {
			header(w, "\n━━━ %s ━━━\n", s.Title)
		}
		logger.Debug("running section", "section", s.Name)
		if err := s.run(e); err != nil {
			return fmt.Errorf("section %s: %w", s.Name, err)
		}
	}
	return nil
}

// selectSections keeps tour order regardless of the order names were given.
func selectSections(only []string) ([]Section, error) {
	if len(only) == 0 {
		return sections, nil
	}

	want := make(map[string]bool, len(only))
	for _, name := range only {
		name = strings.TrimSpace(name)
		if _, ok := Lookup(name); !ok {
			return nil, fmt.Errorf("%w: %q", ErrUnknownSection, name)
		}
		want[name] = true
	}

	var out []Section
	for _, s := range sections {
		if want[s.Name] {
			out = append(out, s)
		}
	}
	return out, nil
}

// Lookup finds a section by name.
func Lookup(name string) (Section, bool) {
	for _, s := range sections {
		if s.Name == name {
			return s, true
		}
	}
	return Section{}, false
}
