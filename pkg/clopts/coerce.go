// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package clopts

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// listSeparator splits the elements of list-typed values.
const listSeparator = ","

// Coerce converts raw to the Go representation of typ:
//
//	String     string     raw as-is
//	Int        int        ASCII digits only (no sign)
//	Float      float64    finite values strconv.ParseFloat accepts
//	Bool       bool       true iff raw is "true" in any case; never fails
//	StringList []string   split on ","
//	IntList    []int      split on ",", each element as Int
//	FloatList  []float64  split on ",", each element as Float
//	BoolList   []bool     split on ",", each element "true" or "false" in any case
//
// Failures are returned as *Error of kind InvalidArgumentType with Value and
// Type set; callers fill in the option details.
func Coerce(typ ValueType, raw string) (any, error) {
	switch typ {
	case String:
		return raw, nil
	case Int:
		return parseDigits(typ, raw)
	case Float:
		return parseFloat(typ, raw)
	case Bool:
		return strings.EqualFold(raw, "true"), nil
	case StringList:
		return strings.Split(raw, listSeparator), nil
	case IntList:
		parts := strings.Split(raw, listSeparator)
		out := make([]int, 0, len(parts))
		for _, p := range parts {
			n, err := parseDigits(typ, p)
			if err != nil {
				return nil, err
			}
			out = append(out, n)
		}
		return out, nil
	case FloatList:
		parts := strings.Split(raw, listSeparator)
		out := make([]float64, 0, len(parts))
		for _, p := range parts {
			f, err := parseFloat(typ, p)
			if err != nil {
				return nil, err
			}
			out = append(out, f)
		}
		return out, nil
	case BoolList:
		parts := strings.Split(raw, listSeparator)
		out := make([]bool, 0, len(parts))
		for _, p := range parts {
			switch {
			case strings.EqualFold(p, "true"):
				out = append(out, true)
			case strings.EqualFold(p, "false"):
				out = append(out, false)
			default:
				return nil, &Error{
					Kind:  InvalidArgumentType,
					Value: raw,
					Type:  typ,
					Err:   fmt.Errorf("invalid bool value %q", p),
				}
			}
		}
		return out, nil
	}
	return nil, &Error{Kind: InvalidReturnType, Type: typ}
}

func parseDigits(typ ValueType, s string) (int, error) {
	if !isDigits(s) {
		return 0, &Error{
			Kind:  InvalidArgumentType,
			Value: s,
			Type:  typ,
			Err:   fmt.Errorf("invalid int value %q", s),
		}
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, &Error{Kind: InvalidArgumentType, Value: s, Type: typ, Err: err}
	}
	return n, nil
}

var errNotFinite = errors.New("value is not a finite number")

func parseFloat(typ ValueType, s string) (float64, error) {
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, &Error{Kind: InvalidArgumentType, Value: s, Type: typ, Err: err}
	}
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, &Error{Kind: InvalidArgumentType, Value: s, Type: typ, Err: errNotFinite}
	}
	return f, nil
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}

// FormatValue renders a typed value the way it would be written on the
// command line.
func FormatValue(v any) string {
	switch v := v.(type) {
	case nil:
		return "none"
	case string:
		return v
	case float64:
		return strconv.FormatFloat(v, 'g', -1, 64)
	case []string:
		return strings.Join(v, listSeparator)
	case []int:
		parts := make([]string, len(v))
		for i, n := range v {
			parts[i] = strconv.Itoa(n)
		}
		return strings.Join(parts, listSeparator)
	case []float64:
		parts := make([]string, len(v))
		for i, f := range v {
			parts[i] = strconv.FormatFloat(f, 'g', -1, 64)
		}
		return strings.Join(parts, listSeparator)
	case []bool:
		parts := make([]string, len(v))
		for i, b := range v {
			parts[i] = strconv.FormatBool(b)
		}
		return strings.Join(parts, listSeparator)
	}
	return fmt.Sprint(v)
}
