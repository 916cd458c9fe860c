// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package schema

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/yeetrun/clopts/pkg/clopts"
)

const tomlSchema = `
version = "1.2"
layout = "dash"
summary = false

[[options]]
name = "name"
type = "string"
pattern = '\w+'
description = "Who to greet"

[[options]]
name = "count"
type = "int"
pattern = '\d+'
default = 3

[[options]]
name = "ratio"
type = "float"
default = 0.5

[[options]]
name = "ports"
type = "[]int"
default = [80, 443]

[[options]]
name = "tags"
type = "list[str]"
default = []

[[options]]
name = "token"
type = "string"

[[rules]]
a = "name"
b = "token"
`

const yamlSchema = `
layout: default
options:
  - name: name
    type: string
    description: Who to greet
  - name: loud
    type: bool
    default: true
  - name: weights
    type: "[]float"
    default: "1.5,2"
  - name: token
    type: string
rules:
  - a: name
    b: token
`

func TestDecodeTOML(t *testing.T) {
	s, err := Decode([]byte(tomlSchema), FormatTOML)
	if err != nil {
		t.Fatal(err)
	}
	reg, err := s.Registry()
	if err != nil {
		t.Fatal(err)
	}
	if reg.Layout != clopts.LayoutDash {
		t.Errorf("Layout = %v, want dash", reg.Layout)
	}
	if reg.Summary {
		t.Error("Summary = true, want false")
	}
	if diff := cmp.Diff([]string{"name", "count", "ratio", "ports", "tags", "token"}, reg.Names()); diff != "" {
		t.Errorf("Names mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]clopts.Rule{{A: "name", B: "token"}}, reg.Rules()); diff != "" {
		t.Errorf("Rules mismatch (-want +got):\n%s", diff)
	}

	reg.Output = &bytes.Buffer{}
	res, err := reg.Parse([]string{"--token", "abc"})
	if err != nil {
		t.Fatal(err)
	}
	want := map[string]any{
		"name":  nil,
		"count": 3,
		"ratio": 0.5,
		"ports": []int{80, 443},
		"tags":  []string{},
		"token": "abc",
	}
	if diff := cmp.Diff(want, res.Map()); diff != "" {
		t.Errorf("Map mismatch (-want +got):\n%s", diff)
	}
}

func TestDecodeYAML(t *testing.T) {
	s, err := Decode([]byte(yamlSchema), FormatYAML)
	if err != nil {
		t.Fatal(err)
	}
	reg, err := s.Registry()
	if err != nil {
		t.Fatal(err)
	}
	if !reg.Summary {
		t.Error("Summary should default to true")
	}
	reg.Summary = false
	res, err := reg.Parse([]string{"name=Ann"})
	if err != nil {
		t.Fatal(err)
	}
	want := map[string]any{
		"name":    "Ann",
		"loud":    true,
		"weights": []float64{1.5, 2},
		"token":   nil,
	}
	if diff := cmp.Diff(want, res.Map()); diff != "" {
		t.Errorf("Map mismatch (-want +got):\n%s", diff)
	}
	o, _ := reg.Lookup("name")
	if o.Description() != "Who to greet" {
		t.Errorf("Description = %q", o.Description())
	}
}

func TestDecodeErrors(t *testing.T) {
	tests := []struct {
		name    string
		format  Format
		data    string
		wantErr string
	}{
		{"unknown toml key", FormatTOML, "colour = 1\n", "unknown schema key"},
		{"unknown yaml key", FormatYAML, "colour: 1\n", "colour"},
		{"bad toml", FormatTOML, "options = [", "toml"},
		{"unsupported version", FormatTOML, "version = \"2.0.0\"\n", "not supported"},
		{"invalid version", FormatYAML, "version: banana\n", "invalid schema version"},
		{"unknown format", Format("ini"), "", "unknown schema format"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Decode([]byte(tt.data), tt.format)
			if err == nil {
				t.Fatal("Decode succeeded, want error")
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("error %q does not contain %q", err, tt.wantErr)
			}
		})
	}
}

func TestRegistryErrors(t *testing.T) {
	tests := []struct {
		name   string
		schema Schema
		check  func(error) bool
	}{
		{
			name:   "bad type",
			schema: Schema{Options: []Option{{Name: "x", Type: "map"}}},
			check:  func(err error) bool { return errors.Is(err, clopts.ErrInvalidReturnType) },
		},
		{
			name:   "default not coercible",
			schema: Schema{Options: []Option{{Name: "x", Type: "int", Default: "abc"}}},
			check:  func(err error) bool { return errors.Is(err, clopts.ErrInvalidArgumentType) },
		},
		{
			name:   "unknown rule option",
			schema: Schema{Options: []Option{{Name: "x", Type: "int"}}, Rules: []Rule{{A: "x", B: "y"}}},
			check:  func(err error) bool { return strings.Contains(err.Error(), "undeclared") },
		},
		{
			name:   "bad layout",
			schema: Schema{Layout: "parens"},
			check:  func(err error) bool { return strings.Contains(err.Error(), "layout") },
		},
		{
			name:   "missing name",
			schema: Schema{Options: []Option{{Type: "int"}}},
			check:  func(err error) bool { return err != nil },
		},
		{
			name:   "unsupported default",
			schema: Schema{Options: []Option{{Name: "x", Type: "string", Default: map[string]any{"a": 1}}}},
			check:  func(err error) bool { return strings.Contains(err.Error(), "unsupported default") },
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := tt.schema.Registry()
			if err == nil || !tt.check(err) {
				t.Errorf("Registry() error = %v", err)
			}
		})
	}
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "opts.yml")
	if err := os.WriteFile(path, []byte(yamlSchema), 0o644); err != nil {
		t.Fatal(err)
	}
	s, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if len(s.Options) != 4 {
		t.Errorf("len(Options) = %d, want 4", len(s.Options))
	}

	if _, err := Load(filepath.Join(dir, "opts.json")); err == nil {
		t.Error("Load(.json) succeeded, want error")
	}
	if _, err := Load(filepath.Join(dir, "missing.toml")); !errors.Is(err, os.ErrNotExist) {
		t.Errorf("Load(missing) error = %v, want ErrNotExist", err)
	}
}

func TestDefaultText(t *testing.T) {
	tests := []struct {
		in   any
		want string
	}{
		{"a", "a"},
		{true, "true"},
		{7, "7"},
		{int64(8), "8"},
		{uint64(9), "9"},
		{1.25, "1.25"},
		{[]any{int64(1), int64(2)}, "1,2"},
		{[]any{"a", true}, "a,true"},
	}
	for _, tt := range tests {
		got, err := defaultText(tt.in)
		if err != nil {
			t.Errorf("defaultText(%#v) error: %v", tt.in, err)
			continue
		}
		if got != tt.want {
			t.Errorf("defaultText(%#v) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestListDefaults(t *testing.T) {
	tests := []struct {
		name string
		data string
		want any
	}{
		{
			name: "string elements keep commas",
			data: "[[options]]\nname = \"x\"\ntype = \"[]string\"\ndefault = ['a,b', 'c']\n",
			want: []string{"a,b", "c"},
		},
		{
			name: "empty",
			data: "[[options]]\nname = \"x\"\ntype = \"[]int\"\ndefault = []\n",
			want: []int{},
		},
		{
			name: "floats",
			data: "[[options]]\nname = \"x\"\ntype = \"[]float\"\ndefault = [1, 2.5]\n",
			want: []float64{1, 2.5},
		},
		{
			name: "bools",
			data: "[[options]]\nname = \"x\"\ntype = \"[]bool\"\ndefault = [true, false]\n",
			want: []bool{true, false},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, err := Decode([]byte(tt.data), FormatTOML)
			if err != nil {
				t.Fatal(err)
			}
			reg, err := s.Registry()
			if err != nil {
				t.Fatal(err)
			}
			reg.Summary = false
			res, err := reg.Parse(nil)
			if err != nil {
				t.Fatal(err)
			}
			got, _ := res.Get("x")
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("default mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestListDefaultErrors(t *testing.T) {
	for _, data := range []string{
		"[[options]]\nname = \"x\"\ntype = \"[]bool\"\ndefault = [true, 'yes']\n",
		"[[options]]\nname = \"x\"\ntype = \"[]int\"\ndefault = [1, 'two']\n",
		"[[options]]\nname = \"x\"\ntype = \"float\"\ndefault = nan\n",
	} {
		s, err := Decode([]byte(data), FormatTOML)
		if err != nil {
			t.Fatal(err)
		}
		if _, err := s.Registry(); !errors.Is(err, clopts.ErrInvalidArgumentType) {
			t.Errorf("Registry() error = %v, want InvalidArgumentType for\n%s", err, data)
		}
	}
}
