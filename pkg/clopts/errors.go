// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package clopts

import (
	"errors"
	"fmt"
	"strings"
)

// ErrorKind classifies an *Error.
type ErrorKind int

const (
	// InvalidLayout means a raw argument does not have the shape the
	// registry's Layout expects.
	InvalidLayout ErrorKind = iota + 1
	// InvalidOption means an argument names an option that is not registered.
	InvalidOption
	// InvalidArgument means a value does not match the option's pattern.
	InvalidArgument
	// InvalidArgumentType means a value matched the pattern but could not be
	// converted to the option's type.
	InvalidArgumentType
	// MissingRequiredOption means required options were left without a value.
	MissingRequiredOption
	// InvalidReturnType is a declaration error: the option's type is not one
	// of the supported ValueTypes, or its default does not have that type.
	InvalidReturnType
)

func (k ErrorKind) String() string {
	switch k {
	case InvalidLayout:
		return "InvalidLayout"
	case InvalidOption:
		return "InvalidOption"
	case InvalidArgument:
		return "InvalidArgument"
	case InvalidArgumentType:
		return "InvalidArgumentType"
	case MissingRequiredOption:
		return "MissingRequiredOption"
	case InvalidReturnType:
		return "InvalidReturnType"
	}
	return fmt.Sprintf("ErrorKind(%d)", int(k))
}

// Sentinel errors, one per kind. errors.Is(err, ErrInvalidArgument) is true
// for any *Error of kind InvalidArgument regardless of its payload.
var (
	ErrInvalidLayout         = &Error{Kind: InvalidLayout}
	ErrInvalidOption         = &Error{Kind: InvalidOption}
	ErrInvalidArgument       = &Error{Kind: InvalidArgument}
	ErrInvalidArgumentType   = &Error{Kind: InvalidArgumentType}
	ErrMissingRequiredOption = &Error{Kind: MissingRequiredOption}
	ErrInvalidReturnType     = &Error{Kind: InvalidReturnType}
)

// ErrOptionsShown is returned by Parse when --options was the only argument.
// The option listing has already been written; callers should exit
// successfully.
var ErrOptionsShown = errors.New("options listing shown")

// Error is the single error type returned by this package. Which fields are
// set depends on Kind.
type Error struct {
	Kind ErrorKind

	Arg     string    // InvalidLayout: the offending raw argument
	Layout  Layout    // InvalidLayout: the layout that was expected
	Option  string    // name of the option involved, if any
	Value   string    // InvalidArgument, InvalidArgumentType: the raw value
	Pattern string    // InvalidArgument, InvalidArgumentType: the option's pattern
	Type    ValueType // InvalidArgumentType, InvalidReturnType: the declared type
	Valid   []string  // InvalidOption: all registered option names
	Missing []string  // MissingRequiredOption: names still missing
	Err     error     // underlying cause, if any
}

func (e *Error) Error() string {
	switch e.Kind {
	case InvalidLayout:
		if e.Arg == "" {
			return fmt.Sprintf("options must be given in the form %s", e.Layout)
		}
		return fmt.Sprintf("invalid argument %q: options must be given in the form %s", e.Arg, e.Layout)
	case InvalidOption:
		return fmt.Sprintf("%s is not a valid option; accepted options are: %s", e.Option, strings.Join(e.Valid, ", "))
	case InvalidArgument:
		return fmt.Sprintf("%q did not match %s's pattern: %s", e.Value, e.Option, e.Pattern)
	case InvalidArgumentType:
		return fmt.Sprintf("value %q for %s cannot be converted to %s (pattern: %s)", e.Value, e.Option, e.Type, e.Pattern)
	case MissingRequiredOption:
		return fmt.Sprintf("missing required option(s): %s", strings.Join(e.Missing, ", "))
	case InvalidReturnType:
		msg := fmt.Sprintf("type must be one of %s, got %s", typeList(), e.describeType())
		if e.Err != nil {
			msg = e.Err.Error()
		}
		if e.Option != "" {
			return fmt.Sprintf("option %s: %s", e.Option, msg)
		}
		return msg
	}
	if e.Err != nil {
		return e.Err.Error()
	}
	return e.Kind.String()
}

func (e *Error) describeType() string {
	if e.Value != "" {
		return fmt.Sprintf("%q", e.Value)
	}
	return e.Type.String()
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Is reports whether target is an *Error of the same kind.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return t.Kind == e.Kind
}

func typeList() string {
	names := make([]string, 0, len(valueTypeNames))
	for t := String; t <= BoolList; t++ {
		names = append(names, t.String())
	}
	return "[" + strings.Join(names, ", ") + "]"
}
