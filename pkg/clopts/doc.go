// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package clopts parses flat command-line options into typed values.
//
// A program declares its options up front, each with a value type, a
// validation pattern, an optional default and a description. Options
// without a default are required.
//
//	reg := clopts.New()
//	name := reg.Add(clopts.MustOption("name", clopts.String,
//	    clopts.WithPattern(clopts.PatternSimpleString),
//	    clopts.WithDescription("Who to greet")))
//	count := reg.Add(clopts.MustOption("count", clopts.Int,
//	    clopts.WithPattern(clopts.PatternInt),
//	    clopts.WithDefault(1)))
//	_ = count
//
//	res, err := reg.Parse(os.Args[1:])
//	if errors.Is(err, clopts.ErrOptionsShown) {
//	    return
//	}
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(res.GetString(name.Name()), res.GetInt("count"))
//
// # Layouts
//
// With LayoutDefault (the zero value) every argument is name=value or
// name:value, split at the first separator:
//
//	prog name=Alice count:3
//
// With LayoutDash arguments come in --name value pairs:
//
//	prog --name Alice --count 3
//
// A repeated option keeps its last value. The pseudo-argument --options, in
// either layout, prints every option's description; given alone it ends
// parsing with ErrOptionsShown.
//
// # Values
//
// A raw value must first match the option's pattern in full, otherwise
// parsing fails with an InvalidArgument error. It is then converted by
// Coerce; a value that cannot be converted fails with InvalidArgumentType.
// List types split the value on commas.
//
// # Dependencies
//
// AddDependency(a, b) lets two required options stand in for each other:
// when exactly one of them is missing after all arguments are read, the
// missing one is excused. When both are missing both are reported. Rules
// are applied once each, in the order they were added.
//
// # Errors
//
// Every failure is an *Error whose Kind tells what went wrong. Use errors.Is
// with the ErrInvalidLayout, ErrInvalidOption, ErrInvalidArgument,
// ErrInvalidArgumentType, ErrMissingRequiredOption and ErrInvalidReturnType
// sentinels, or errors.As to read the payload.
package clopts
