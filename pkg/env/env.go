// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package env writes parse results as shell variable assignments.
package env

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/kballard/go-shellquote"
	"github.com/yeetrun/clopts/pkg/clopts"
)

// Name returns the variable name for an option: prefix and option joined,
// upper cased, with dashes turned into underscores.
func Name(prefix, option string) string {
	return strings.ToUpper(strings.ReplaceAll(prefix+option, "-", "_"))
}

// Write writes one NAME=value line per option in res, in declaration order,
// quoted for a POSIX shell. Options without a value are assigned the empty
// string.
func Write(w io.Writer, prefix string, res *clopts.Result) error {
	var b strings.Builder
	for _, name := range res.Names() {
		var val string
		if v, _ := res.Get(name); v != nil {
			val = clopts.FormatValue(v)
		}
		fmt.Fprintf(&b, "%s=%s\n", Name(prefix, name), shellquote.Join(val))
	}
	_, err := io.WriteString(w, b.String())
	return err
}

// WriteFile writes the assignments for res to the file name, replacing it.
func WriteFile(name, prefix string, res *clopts.Result) error {
	f, err := os.OpenFile(name, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0644)
	if err != nil {
		return fmt.Errorf("failed to create file: %w", err)
	}
	defer f.Close()
	if err := Write(f, prefix, res); err != nil {
		return fmt.Errorf("failed to write env: %w", err)
	}
	return f.Close()
}
