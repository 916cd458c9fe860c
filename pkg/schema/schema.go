// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package schema declares clopts options in TOML or YAML files.
package schema

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/Masterminds/semver/v3"
	"github.com/yeetrun/clopts/pkg/clopts"
	"gopkg.in/yaml.v3"
)

// SupportedVersions is the range of schema versions this package reads.
const SupportedVersions = ">= 1, < 2"

type Format string

const (
	FormatTOML Format = "toml"
	FormatYAML Format = "yaml"
)

// Schema is the file representation of a clopts.Registry.
type Schema struct {
	Version string   `toml:"version,omitempty" yaml:"version,omitempty"`
	Layout  string   `toml:"layout,omitempty" yaml:"layout,omitempty"`
	Summary *bool    `toml:"summary,omitempty" yaml:"summary,omitempty"`
	Options []Option `toml:"options" yaml:"options"`
	Rules   []Rule   `toml:"rules,omitempty" yaml:"rules,omitempty"`
}

type Option struct {
	Name        string `toml:"name" yaml:"name"`
	Type        string `toml:"type" yaml:"type"`
	Pattern     string `toml:"pattern,omitempty" yaml:"pattern,omitempty"`
	Default     any    `toml:"default,omitempty" yaml:"default,omitempty"`
	Description string `toml:"description,omitempty" yaml:"description,omitempty"`
}

// Rule names two options that may stand in for each other.
type Rule struct {
	A string `toml:"a" yaml:"a"`
	B string `toml:"b" yaml:"b"`
}

// FormatForPath picks the format from the file extension.
func FormatForPath(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		return FormatTOML, nil
	case ".yaml", ".yml":
		return FormatYAML, nil
	}
	return "", fmt.Errorf("unsupported schema file %q (want .toml, .yaml or .yml)", path)
}

// Load reads and decodes the schema at path.
func Load(path string) (*Schema, error) {
	format, err := FormatForPath(path)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	s, err := Decode(data, format)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return s, nil
}

// Decode parses data in the given format and checks its version.
func Decode(data []byte, format Format) (*Schema, error) {
	var s Schema
	switch format {
	case FormatTOML:
		md, err := toml.NewDecoder(bytes.NewReader(data)).Decode(&s)
		if err != nil {
			return nil, fmt.Errorf("failed to decode toml: %w", err)
		}
		if undecoded := md.Undecoded(); len(undecoded) > 0 {
			return nil, fmt.Errorf("unknown schema key %q", undecoded[0].String())
		}
	case FormatYAML:
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		if err := dec.Decode(&s); err != nil {
			return nil, fmt.Errorf("failed to decode yaml: %w", err)
		}
	default:
		return nil, fmt.Errorf("unknown schema format %q", format)
	}
	if err := s.checkVersion(); err != nil {
		return nil, err
	}
	return &s, nil
}

func (s *Schema) checkVersion() error {
	if s.Version == "" {
		return nil
	}
	v, err := semver.NewVersion(s.Version)
	if err != nil {
		return fmt.Errorf("invalid schema version %q: %w", s.Version, err)
	}
	c, err := semver.NewConstraint(SupportedVersions)
	if err != nil {
		return err
	}
	if !c.Check(v) {
		return fmt.Errorf("schema version %s is not supported (want %s)", v, SupportedVersions)
	}
	return nil
}

// Registry builds a clopts.Registry from the schema.
func (s *Schema) Registry() (*clopts.Registry, error) {
	reg := clopts.New()
	layout, err := clopts.ParseLayout(s.Layout)
	if err != nil {
		return nil, err
	}
	reg.Layout = layout
	if s.Summary != nil {
		reg.Summary = *s.Summary
	}
	for _, o := range s.Options {
		opt, err := o.build()
		if err != nil {
			return nil, err
		}
		reg.Add(opt)
	}
	for _, r := range s.Rules {
		a, okA := reg.Lookup(r.A)
		b, okB := reg.Lookup(r.B)
		if !okA || !okB {
			return nil, fmt.Errorf("rule %s/%s refers to an undeclared option", r.A, r.B)
		}
		if err := reg.AddDependency(a, b); err != nil {
			return nil, err
		}
	}
	return reg, nil
}

func (o Option) build() (*clopts.Option, error) {
	if o.Name == "" {
		return nil, errors.New("option without a name")
	}
	typ, err := clopts.ParseValueType(o.Type)
	if err != nil {
		return nil, fmt.Errorf("option %s: %w", o.Name, err)
	}
	opts := []clopts.OptionFunc{
		clopts.WithPattern(o.Pattern),
		clopts.WithDescription(o.Description),
	}
	if o.Default != nil {
		def, err := convertDefault(typ, o.Default)
		if err != nil {
			return nil, fmt.Errorf("option %s: default: %w", o.Name, err)
		}
		opts = append(opts, clopts.WithDefault(def))
	}
	return clopts.NewOption(o.Name, typ, opts...)
}

// convertDefault turns a decoded TOML/YAML value into the Go type used for
// typ by rendering it as command-line text and running it through
// clopts.Coerce. Lists are converted element by element, so elements may
// contain commas.
func convertDefault(typ clopts.ValueType, v any) (any, error) {
	if list, ok := v.([]any); ok && typ.IsList() {
		return convertList(typ, list)
	}
	text, err := defaultText(v)
	if err != nil {
		return nil, err
	}
	return clopts.Coerce(typ, text)
}

func convertList(typ clopts.ValueType, list []any) (any, error) {
	switch typ {
	case clopts.StringList:
		out := make([]string, 0, len(list))
		for _, e := range list {
			text, err := defaultText(e)
			if err != nil {
				return nil, err
			}
			out = append(out, text)
		}
		return out, nil
	case clopts.IntList:
		return convertElems[int](typ, list)
	case clopts.FloatList:
		return convertElems[float64](typ, list)
	case clopts.BoolList:
		return convertElems[bool](typ, list)
	}
	return nil, &clopts.Error{Kind: clopts.InvalidReturnType, Type: typ}
}

// convertElems coerces each element of list on its own as a value of the
// list type typ.
func convertElems[T any](typ clopts.ValueType, list []any) ([]T, error) {
	out := make([]T, 0, len(list))
	for _, e := range list {
		text, err := defaultText(e)
		if err != nil {
			return nil, err
		}
		v, err := clopts.Coerce(typ, text)
		if err != nil {
			return nil, err
		}
		out = append(out, v.([]T)...)
	}
	return out, nil
}

func defaultText(v any) (string, error) {
	switch v := v.(type) {
	case string:
		return v, nil
	case bool:
		return strconv.FormatBool(v), nil
	case int:
		return strconv.Itoa(v), nil
	case int64:
		return strconv.FormatInt(v, 10), nil
	case uint64:
		return strconv.FormatUint(v, 10), nil
	case float64:
		return strconv.FormatFloat(v, 'g', -1, 64), nil
	case []any:
		parts := make([]string, 0, len(v))
		for _, e := range v {
			s, err := defaultText(e)
			if err != nil {
				return "", err
			}
			parts = append(parts, s)
		}
		return strings.Join(parts, ","), nil
	}
	return "", fmt.Errorf("unsupported default value %v (%T)", v, v)
}
