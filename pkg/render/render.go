// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package render writes clopts option listings and parse results in human
// and machine readable formats.
package render

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
	"github.com/yeetrun/clopts/pkg/clopts"
	"github.com/yeetrun/clopts/pkg/env"
	"github.com/yeetrun/clopts/pkg/tui"
	"gopkg.in/yaml.v3"
)

type Format string

const (
	FormatText  Format = "text"
	FormatTable Format = "table"
	FormatJSON  Format = "json"
	FormatYAML  Format = "yaml"
	FormatTOML  Format = "toml"
	FormatEnv   Format = "env" // shell assignments, for eval in scripts
)

var formats = []Format{FormatText, FormatTable, FormatJSON, FormatYAML, FormatTOML, FormatEnv}

// ParseFormat returns the Format named by s. The empty string is FormatText.
func ParseFormat(s string) (Format, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" {
		return FormatText, nil
	}
	if s == "yml" {
		return FormatYAML, nil
	}
	for _, f := range formats {
		if string(f) == s {
			return f, nil
		}
	}
	names := make([]string, len(formats))
	for i, f := range formats {
		names[i] = string(f)
	}
	return "", fmt.Errorf("unknown format %q (want one of %s)", s, strings.Join(names, ", "))
}

// Machine reports whether f is meant for programs rather than people.
func (f Format) Machine() bool {
	return f == FormatJSON || f == FormatYAML || f == FormatTOML || f == FormatEnv
}

// Options writes the declaration of every option in reg.
func Options(w io.Writer, reg *clopts.Registry, f Format, c tui.Colorizer) error {
	opts := reg.Options()
	switch f {
	case FormatText:
		blocks := make([]string, 0, len(opts))
		for _, o := range opts {
			blocks = append(blocks, o.Describe(c))
		}
		_, err := io.WriteString(w, strings.Join(blocks, "\n"))
		return err
	case FormatTable:
		_, err := fmt.Fprintln(w, optionsTable(opts).Render())
		return err
	case FormatEnv:
		return fmt.Errorf("format %s only applies to parse results", f)
	}
	infos := make([]clopts.OptionInfo, 0, len(opts))
	for _, o := range opts {
		infos = append(infos, o.Info())
	}
	return encode(w, f, struct {
		Options []clopts.OptionInfo `json:"options" yaml:"options" toml:"options"`
	}{infos})
}

func optionsTable(opts []*clopts.Option) table.Writer {
	tw := table.NewWriter()
	tw.AppendHeader(table.Row{"Name", "Type", "Pattern", "Default", "Required", "Description"})
	for _, o := range opts {
		tw.AppendRow(table.Row{
			o.Name(),
			o.Type().String(),
			o.Pattern(),
			clopts.FormatValue(o.Default()),
			strconv.FormatBool(o.Required()),
			o.Description(),
		})
	}
	tw.SetColumnConfigs([]table.ColumnConfig{
		{Number: 1, Align: text.AlignLeft},
		{Number: 2, Align: text.AlignLeft},
		{Number: 3, Align: text.AlignLeft},
		{Number: 4, Align: text.AlignLeft},
		{Number: 5, Align: text.AlignCenter},
		{Number: 6, Align: text.AlignLeft},
	})
	tw.SetStyle(table.StyleLight)
	return tw
}

// Result writes the values held by res. The text format is one
// name=value line per option, which the default layout reads back.
func Result(w io.Writer, res *clopts.Result, f Format) error {
	switch f {
	case FormatText:
		var b strings.Builder
		for _, name := range res.Names() {
			v, _ := res.Get(name)
			fmt.Fprintf(&b, "%s=%s\n", name, clopts.FormatValue(v))
		}
		_, err := io.WriteString(w, b.String())
		return err
	case FormatTable:
		tw := table.NewWriter()
		tw.AppendHeader(table.Row{"Name", "Value", "Supplied"})
		for _, name := range res.Names() {
			v, _ := res.Get(name)
			tw.AppendRow(table.Row{name, clopts.FormatValue(v), strconv.FormatBool(res.Supplied(name))})
		}
		tw.SetStyle(table.StyleLight)
		_, err := fmt.Fprintln(w, tw.Render())
		return err
	case FormatTOML:
		// TOML has no null.
		m := res.Map()
		for k, v := range m {
			if v == nil {
				delete(m, k)
			}
		}
		return encode(w, f, m)
	case FormatEnv:
		return env.Write(w, "", res)
	}
	return encode(w, f, res.Map())
}

func encode(w io.Writer, f Format, v any) error {
	switch f {
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(v)
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(v); err != nil {
			return err
		}
		return enc.Close()
	case FormatTOML:
		return toml.NewEncoder(w).Encode(v)
	}
	return fmt.Errorf("unknown format %q", f)
}
