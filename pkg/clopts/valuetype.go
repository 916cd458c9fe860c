// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package clopts

import (
	"fmt"
	"strings"
)

// ValueType is the declared type of an option's value.
type ValueType int

const (
	String ValueType = iota + 1
	Int
	Float
	Bool
	StringList
	IntList
	FloatList
	BoolList
)

var valueTypeNames = map[ValueType]string{
	String:     "string",
	Int:        "int",
	Float:      "float",
	Bool:       "bool",
	StringList: "[]string",
	IntList:    "[]int",
	FloatList:  "[]float",
	BoolList:   "[]bool",
}

// Valid reports whether t is one of the supported value types.
func (t ValueType) Valid() bool {
	_, ok := valueTypeNames[t]
	return ok
}

// IsList reports whether values of type t are comma separated lists.
func (t ValueType) IsList() bool {
	switch t {
	case StringList, IntList, FloatList, BoolList:
		return true
	}
	return false
}

func (t ValueType) String() string {
	if name, ok := valueTypeNames[t]; ok {
		return name
	}
	return fmt.Sprintf("ValueType(%d)", int(t))
}

// ParseValueType returns the ValueType named by s. It accepts the names
// printed by ValueType.String as well as "str" and "list[T]" spellings.
func ParseValueType(s string) (ValueType, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	if inner, ok := strings.CutPrefix(name, "list["); ok {
		if elem, ok := strings.CutSuffix(inner, "]"); ok {
			name = "[]" + elem
		}
	}
	switch name {
	case "str":
		name = "string"
	case "[]str":
		name = "[]string"
	case "float64":
		name = "float"
	case "[]float64":
		name = "[]float"
	}
	for t, n := range valueTypeNames {
		if n == name {
			return t, nil
		}
	}
	return 0, &Error{Kind: InvalidReturnType, Value: s}
}

// matchesDefault reports whether v has the Go type that values of type t
// are represented with.
func (t ValueType) matchesDefault(v any) bool {
	switch t {
	case String:
		_, ok := v.(string)
		return ok
	case Int:
		_, ok := v.(int)
		return ok
	case Float:
		_, ok := v.(float64)
		return ok
	case Bool:
		_, ok := v.(bool)
		return ok
	case StringList:
		_, ok := v.([]string)
		return ok
	case IntList:
		_, ok := v.([]int)
		return ok
	case FloatList:
		_, ok := v.([]float64)
		return ok
	case BoolList:
		_, ok := v.([]bool)
		return ok
	}
	return false
}
