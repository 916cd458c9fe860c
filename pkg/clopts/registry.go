// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package clopts

import (
	"errors"
	"fmt"
	"io"
	"os"
	"reflect"
	"slices"
	"strings"

	"github.com/yeetrun/clopts/pkg/tui"
)

// Registry holds the declared options and dependency rules of a program and
// parses its arguments.
//
// Build the Registry before parsing. Parse does not modify the Registry, so
// concurrent Parse calls are safe as long as Output is safe for concurrent
// writes whenever Parse may write to it: with Summary set, or when the
// arguments include --options. Each summary is written with a single Write.
// Add and AddDependency must not run concurrently with Parse.
type Registry struct {
	// Layout selects how arguments are split into option/value pairs.
	Layout Layout
	// Summary makes a successful Parse print the options whose value differs
	// from their default.
	Summary bool
	// Output receives the --options listing and the summary. Nil means
	// os.Stdout. Concurrent Parse calls share it.
	Output io.Writer
	// Color overrides colour detection for Output when non-nil.
	Color *tui.Colorizer

	options map[string]*Option
	order   []string
	rules   []Rule
}

// New returns an empty Registry using LayoutDefault with the summary
// enabled.
func New(opts ...*Option) *Registry {
	r := &Registry{Summary: true}
	for _, o := range opts {
		r.Add(o)
	}
	return r
}

// Add registers o and returns it. An option with the same name replaces the
// earlier one but keeps its position in listings.
func (r *Registry) Add(o *Option) *Option {
	if r.options == nil {
		r.options = make(map[string]*Option)
	}
	if _, ok := r.options[o.name]; !ok {
		r.order = append(r.order, o.name)
	}
	r.options[o.name] = o
	return o
}

// AddDependency lets a and b stand in for each other in the required check.
// Both must already be registered.
func (r *Registry) AddDependency(a, b *Option) error {
	for _, o := range []*Option{a, b} {
		if o == nil {
			return errors.New("dependency on nil option")
		}
		if _, ok := r.options[o.name]; !ok {
			return fmt.Errorf("dependency on unregistered option %q", o.name)
		}
	}
	r.rules = append(r.rules, Rule{A: a.name, B: b.name})
	return nil
}

// Lookup returns the option registered under name.
func (r *Registry) Lookup(name string) (*Option, bool) {
	o, ok := r.options[name]
	return o, ok
}

// Options returns the registered options in declaration order.
func (r *Registry) Options() []*Option {
	out := make([]*Option, 0, len(r.order))
	for _, name := range r.order {
		out = append(out, r.options[name])
	}
	return out
}

// Names returns the registered option names in declaration order.
func (r *Registry) Names() []string {
	return slices.Clone(r.order)
}

// Rules returns the dependency rules in declaration order.
func (r *Registry) Rules() []Rule {
	return slices.Clone(r.rules)
}

func (r *Registry) output() io.Writer {
	if r.Output != nil {
		return r.Output
	}
	return os.Stdout
}

func (r *Registry) colorizer() tui.Colorizer {
	if r.Color != nil {
		return *r.Color
	}
	return tui.ForWriter(r.output())
}

// Parse parses args (without the program name) into a Result.
//
// If args contains --options, the description of every option is written to
// Output first; when it was the only argument Parse returns ErrOptionsShown.
// Any other failure is an *Error.
func (r *Registry) Parse(args []string) (*Result, error) {
	args, listOptions := stripOptionsFlag(args)
	if listOptions {
		if _, err := io.WriteString(r.output(), r.describe(r.colorizer())); err != nil {
			return nil, err
		}
		if len(args) == 0 {
			return nil, ErrOptionsShown
		}
	}

	pairs, err := r.Layout.Tokenize(args)
	if err != nil {
		return nil, err
	}

	res := &Result{
		values:   make(map[string]any, len(r.order)),
		defaults: make(map[string]any, len(r.order)),
		order:    slices.Clone(r.order),
		supplied: make(map[string]bool),
	}
	for _, name := range r.order {
		def := r.options[name].def
		res.values[name] = def
		res.defaults[name] = def
	}
	for _, p := range pairs {
		o, ok := r.options[p.Key]
		if !ok {
			return nil, &Error{Kind: InvalidOption, Option: p.Key, Valid: r.Names()}
		}
		v, err := o.Convert(p.Value)
		if err != nil {
			return nil, err
		}
		res.values[o.name] = v
		res.supplied[o.name] = true
	}

	var missing []string
	for _, name := range r.order {
		if r.options[name].Required() && !res.supplied[name] {
			missing = append(missing, name)
		}
	}
	missing = relax(missing, r.rules)
	if len(missing) > 0 {
		return nil, &Error{Kind: MissingRequiredOption, Missing: missing}
	}

	if r.Summary {
		if s := r.summary(res, r.colorizer()); s != "" {
			if _, err := io.WriteString(r.output(), s); err != nil {
				return nil, err
			}
		}
	}
	return res, nil
}

// Run parses os.Args[1:]. It exits the process with status 0 after an
// --options listing and with status 1, after printing the error to stderr,
// when parsing fails.
func (r *Registry) Run() *Result {
	res, err := r.Parse(os.Args[1:])
	if errors.Is(err, ErrOptionsShown) {
		os.Exit(0)
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	return res
}

// Describe returns the description of every option, in declaration order,
// without colour.
func (r *Registry) Describe() string {
	return r.describe(tui.Colorizer{})
}

func (r *Registry) describe(c tui.Colorizer) string {
	blocks := make([]string, 0, len(r.order))
	for _, o := range r.Options() {
		blocks = append(blocks, o.Describe(c))
	}
	return strings.Join(blocks, "\n")
}

// SummaryText returns the description and value of every option in res
// whose value differs from its default, without colour.
func (r *Registry) SummaryText(res *Result) string {
	return r.summary(res, tui.Colorizer{})
}

func (r *Registry) summary(res *Result, c tui.Colorizer) string {
	var blocks []string
	for _, name := range res.Changed() {
		o, ok := r.options[name]
		if !ok {
			continue
		}
		blocks = append(blocks, o.Describe(c)+fmt.Sprintf("\tValue: %s\n", c.Wrap(tui.Cyan, FormatValue(res.values[name]))))
	}
	return strings.Join(blocks, "\n")
}

// Result is the outcome of a successful Parse.
type Result struct {
	values   map[string]any
	defaults map[string]any
	order    []string
	supplied map[string]bool
}

// Map returns a copy of the name → value mapping. Every declared option is
// present; options that were not supplied hold their default, and required
// options excused by a dependency rule hold nil.
func (res *Result) Map() map[string]any {
	out := make(map[string]any, len(res.values))
	for k, v := range res.values {
		out[k] = v
	}
	return out
}

// Names returns the option names in declaration order.
func (res *Result) Names() []string {
	return slices.Clone(res.order)
}

// Get returns the value of name and whether name is a declared option.
func (res *Result) Get(name string) (any, bool) {
	v, ok := res.values[name]
	return v, ok
}

// Supplied reports whether name was given on the command line.
func (res *Result) Supplied(name string) bool {
	return res.supplied[name]
}

// Changed returns, in declaration order, the options whose value differs
// from their default.
func (res *Result) Changed() []string {
	var out []string
	for _, name := range res.order {
		if !reflect.DeepEqual(res.values[name], res.defaults[name]) {
			out = append(out, name)
		}
	}
	return out
}

func (res *Result) GetString(name string) string {
	v, _ := res.values[name].(string)
	return v
}

func (res *Result) GetInt(name string) int {
	v, _ := res.values[name].(int)
	return v
}

func (res *Result) GetFloat(name string) float64 {
	v, _ := res.values[name].(float64)
	return v
}

func (res *Result) GetBool(name string) bool {
	v, _ := res.values[name].(bool)
	return v
}

func (res *Result) GetStrings(name string) []string {
	v, _ := res.values[name].([]string)
	return v
}

func (res *Result) GetInts(name string) []int {
	v, _ := res.values[name].([]int)
	return v
}

func (res *Result) GetFloats(name string) []float64 {
	v, _ := res.values[name].([]float64)
	return v
}

func (res *Result) GetBools(name string) []bool {
	v, _ := res.values[name].([]bool)
	return v
}
