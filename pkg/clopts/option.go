// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package clopts

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/yeetrun/clopts/pkg/tui"
)

// Pattern presets for common values.
const (
	PatternAny          = `.*`
	PatternSimpleString = `\w*`
	PatternInt          = `\d*`
	PatternFloat        = `[-+]?(\d+\.?\d*|\.\d+)([eE][-+]?\d+)?`
	PatternBool         = `(?i:true|false)`
	PatternDate         = `\d{4}[\-\/\s]?((((0[13578])|(1[02]))[\-\/\s]?(([0-2][0-9])|(3[01])))|(((0[469])|(11))[\-\/\s]?(([0-2][0-9])|(30)))|(02[\-\/\s]?[0-2][0-9]))`
)

// Option declares one command-line option. Options are immutable once
// built; use NewOption or MustOption.
type Option struct {
	name        string
	pattern     string
	re          *regexp.Regexp
	def         any
	typ         ValueType
	description string
}

// OptionFunc configures an Option in NewOption.
type OptionFunc func(*Option)

// WithPattern sets the regular expression a raw value must match in full.
// The default is PatternAny.
func WithPattern(pattern string) OptionFunc {
	return func(o *Option) { o.pattern = pattern }
}

// WithDefault sets the value used when the option is not supplied. Its Go
// type must match the option's ValueType (see Coerce). Options without a
// default are required.
func WithDefault(v any) OptionFunc {
	return func(o *Option) { o.def = v }
}

// WithDescription sets the help text.
func WithDescription(desc string) OptionFunc {
	return func(o *Option) { o.description = desc }
}

// NewOption builds an Option. It fails with an InvalidReturnType *Error if
// typ is not a supported ValueType or the default has the wrong Go type.
func NewOption(name string, typ ValueType, opts ...OptionFunc) (*Option, error) {
	if !validName(name) {
		return nil, fmt.Errorf("invalid option name %q", name)
	}
	o := &Option{
		name:    name,
		pattern: PatternAny,
		typ:     typ,
	}
	for _, fn := range opts {
		fn(o)
	}
	if !typ.Valid() {
		return nil, &Error{Kind: InvalidReturnType, Option: name, Type: typ}
	}
	if o.def != nil && !typ.matchesDefault(o.def) {
		return nil, &Error{
			Kind:   InvalidReturnType,
			Option: name,
			Type:   typ,
			Err:    fmt.Errorf("default %v has type %T, want %s", o.def, o.def, typ),
		}
	}
	if o.pattern == "" {
		o.pattern = PatternAny
	}
	re, err := regexp.Compile(`^(?:` + o.pattern + `)$`)
	if err != nil {
		return nil, fmt.Errorf("option %s: invalid pattern: %w", name, err)
	}
	o.re = re
	return o, nil
}

// MustOption is like NewOption but panics on error. It is meant for
// package-level declarations.
func MustOption(name string, typ ValueType, opts ...OptionFunc) *Option {
	o, err := NewOption(name, typ, opts...)
	if err != nil {
		panic(err)
	}
	return o
}

func (o *Option) Name() string        { return o.name }
func (o *Option) Pattern() string     { return o.pattern }
func (o *Option) Default() any        { return o.def }
func (o *Option) Type() ValueType     { return o.typ }
func (o *Option) Description() string { return o.description }

// Required reports whether the option has no default.
func (o *Option) Required() bool { return o.def == nil }

// Match reports whether raw satisfies the option's pattern.
func (o *Option) Match(raw string) bool {
	return o.re.MatchString(raw)
}

// Convert validates raw against the pattern and coerces it to the option's
// type.
func (o *Option) Convert(raw string) (any, error) {
	if !o.Match(raw) {
		return nil, &Error{Kind: InvalidArgument, Option: o.name, Value: raw, Pattern: o.pattern}
	}
	v, err := Coerce(o.typ, raw)
	if err != nil {
		cause := err
		if ce, ok := err.(*Error); ok {
			cause = ce.Err
		}
		return nil, &Error{Kind: InvalidArgumentType, Option: o.name, Value: raw, Pattern: o.pattern, Type: o.typ, Err: cause}
	}
	return v, nil
}

// OptionInfo is a plain description of an Option for export.
type OptionInfo struct {
	Name        string `json:"name" yaml:"name" toml:"name"`
	Pattern     string `json:"pattern" yaml:"pattern" toml:"pattern"`
	Default     any    `json:"default,omitempty" yaml:"default,omitempty" toml:"default,omitempty"`
	Type        string `json:"type" yaml:"type" toml:"type"`
	Required    bool   `json:"required" yaml:"required" toml:"required"`
	Description string `json:"description,omitempty" yaml:"description,omitempty" toml:"description,omitempty"`
}

// Info returns the option's declaration as an OptionInfo.
func (o *Option) Info() OptionInfo {
	return OptionInfo{
		Name:        o.name,
		Pattern:     o.pattern,
		Default:     o.def,
		Type:        o.typ.String(),
		Required:    o.Required(),
		Description: o.description,
	}
}

// String returns the uncoloured description block.
func (o *Option) String() string {
	return o.Describe(tui.Colorizer{})
}

// Describe renders the option's description, pattern, default, type and
// required flag, one per line.
func (o *Option) Describe(c tui.Colorizer) string {
	var b strings.Builder
	b.WriteString(c.Bold(o.name))
	if o.description != "" {
		b.WriteString(" - ")
		b.WriteString(o.description)
	}
	b.WriteString("\n")
	fmt.Fprintf(&b, "\tMust match: %s\n", c.Wrap(tui.Blue, o.pattern))
	fmt.Fprintf(&b, "\tDefault: %s\n", c.Wrap(tui.Yellow, FormatValue(o.def)))
	fmt.Fprintf(&b, "\tReturns a %s\n", c.Wrap(tui.Magenta, o.typ.String()))
	reqColor := tui.Red
	if o.Required() {
		reqColor = tui.Green
	}
	fmt.Fprintf(&b, "\tRequired: %s\n", c.Wrap(reqColor, fmt.Sprint(o.Required())))
	return b.String()
}
