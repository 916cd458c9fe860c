// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package clopts

import (
	"fmt"
	"strings"
)

// Layout selects how raw arguments are split into option/value pairs.
type Layout int

const (
	// LayoutDefault expects every argument to be name=value or name:value.
	LayoutDefault Layout = iota
	// LayoutDash expects alternating --name value arguments.
	LayoutDash
)

const (
	dashPrefix  = "--"
	optionsFlag = "--options"
)

func (l Layout) String() string {
	switch l {
	case LayoutDefault:
		return "option(=, :)argument"
	case LayoutDash:
		return "--option argument"
	}
	return fmt.Sprintf("Layout(%d)", int(l))
}

// ParseLayout returns the Layout named by s ("default" or "dash").
func ParseLayout(s string) (Layout, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "default":
		return LayoutDefault, nil
	case "dash":
		return LayoutDash, nil
	}
	return 0, fmt.Errorf("unknown layout %q (want default or dash)", s)
}

// Pair is one option/value pair taken from the command line.
type Pair struct {
	Key   string
	Value string
}

// Tokenize splits args according to l.
func (l Layout) Tokenize(args []string) ([]Pair, error) {
	switch l {
	case LayoutDefault:
		return TokenizeDefault(args)
	case LayoutDash:
		return TokenizeDash(args)
	}
	return nil, fmt.Errorf("unknown layout %d", int(l))
}

// TokenizeDefault splits every argument at its first '=' or ':'. The part
// before the separator must be a valid option name; the rest, which may be
// empty or contain more separators, is the value.
func TokenizeDefault(args []string) ([]Pair, error) {
	pairs := make([]Pair, 0, len(args))
	for _, arg := range args {
		idx := strings.IndexAny(arg, "=:")
		if idx <= 0 || !validName(arg[:idx]) {
			return nil, &Error{Kind: InvalidLayout, Arg: arg, Layout: LayoutDefault}
		}
		pairs = append(pairs, Pair{Key: arg[:idx], Value: arg[idx+1:]})
	}
	return pairs, nil
}

// TokenizeDash consumes args as --name value pairs. A value may start with a
// single '-' (e.g. "-5") but not with "--".
func TokenizeDash(args []string) ([]Pair, error) {
	pairs := make([]Pair, 0, len(args)/2)
	for i := 0; i < len(args); i++ {
		arg := args[i]
		name, ok := strings.CutPrefix(arg, dashPrefix)
		if !ok || !validName(name) {
			return nil, &Error{Kind: InvalidLayout, Arg: arg, Layout: LayoutDash}
		}
		if i+1 >= len(args) || strings.HasPrefix(args[i+1], dashPrefix) {
			return nil, &Error{Kind: InvalidLayout, Arg: arg, Layout: LayoutDash}
		}
		pairs = append(pairs, Pair{Key: name, Value: args[i+1]})
		i++
	}
	return pairs, nil
}

// stripOptionsFlag removes every --options argument from args and reports
// whether one was present.
func stripOptionsFlag(args []string) ([]string, bool) {
	out := make([]string, 0, len(args))
	found := false
	for _, arg := range args {
		if arg == optionsFlag {
			found = true
			continue
		}
		out = append(out, arg)
	}
	return out, found
}

// validName reports whether s can be used as an option name: non-empty,
// letters, digits, '_' and '-', not starting with '-'.
func validName(s string) bool {
	if s == "" || s[0] == '-' {
		return false
	}
	for _, r := range s {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '_', r == '-':
		default:
			return false
		}
	}
	return true
}
