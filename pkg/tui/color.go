// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package tui

import (
	"io"
	"os"

	"github.com/fatih/color"
	"golang.org/x/term"
)

const (
	Red     = color.FgRed
	Green   = color.FgGreen
	Yellow  = color.FgYellow
	Blue    = color.FgBlue
	Magenta = color.FgMagenta
	Cyan    = color.FgCyan
	Dim     = color.FgHiBlack
)

var isTerminalFn = term.IsTerminal

// Colorizer wraps text in ANSI colour codes when Enabled.
// The zero value never colours.
type Colorizer struct {
	Enabled bool
}

func NewColorizer(enabled bool) Colorizer {
	if !enabled {
		return Colorizer{}
	}
	if os.Getenv("NO_COLOR") != "" {
		return Colorizer{}
	}
	if t := os.Getenv("TERM"); t == "" || t == "dumb" {
		return Colorizer{}
	}
	return Colorizer{Enabled: true}
}

// ForWriter returns a Colorizer that is enabled only when w is a terminal
// and the environment allows colour.
func ForWriter(w io.Writer) Colorizer {
	f, ok := w.(*os.File)
	if !ok {
		return Colorizer{}
	}
	return NewColorizer(isTerminalFn(int(f.Fd())))
}

func (c Colorizer) Wrap(attr color.Attribute, text string) string {
	if !c.Enabled {
		return text
	}
	col := color.New(attr)
	col.EnableColor()
	return col.Sprint(text)
}

func (c Colorizer) Bold(text string) string {
	return c.Wrap(color.Bold, text)
}
