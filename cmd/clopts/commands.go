// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"context"
	"errors"
	"fmt"
	"log"

	"github.com/shayne/yargs"
	"github.com/yeetrun/clopts/pkg/clopts"
	"github.com/yeetrun/clopts/pkg/env"
	"github.com/yeetrun/clopts/pkg/render"
	"github.com/yeetrun/clopts/pkg/schema"
	"github.com/yeetrun/clopts/pkg/tui"
)

type describeFlagsParsed struct {
	Schema string `flag:"schema" short:"s" help:"Option schema (.toml, .yaml or .yml)"`
	Format string `flag:"format" short:"f" help:"Output format: text, table, json, yaml or toml"`
}

func handleDescribe(_ context.Context, args []string) error {
	if len(args) > 0 && args[0] == "describe" {
		args = args[1:]
	}
	result, err := yargs.ParseFlags[describeFlagsParsed](args)
	if err != nil {
		return err
	}
	format, err := render.ParseFormat(result.Flags.Format)
	if err != nil {
		return err
	}
	reg, err := loadRegistry(result.Flags.Schema, result.Args)
	if err != nil {
		return err
	}
	return render.Options(stdout, reg, format, tui.ForWriter(stdout))
}

type parseFlagsParsed struct {
	Schema  string `flag:"schema" short:"s" help:"Option schema (.toml, .yaml or .yml)"`
	Format  string `flag:"format" short:"f" help:"Output format: text, table, json, yaml, toml or env"`
	Dash    bool   `flag:"dash" help:"Read arguments as --option value pairs, overriding the schema layout"`
	Prefix  string `flag:"prefix" help:"Prefix for variable names in env output"`
	EnvFile string `flag:"env-file" help:"Also write the values as shell assignments to this file"`
}

func handleParse(_ context.Context, args []string) error {
	if len(args) > 0 && args[0] == "parse" {
		args = args[1:]
	}
	result, err := yargs.ParseFlags[parseFlagsParsed](args)
	if err != nil {
		return err
	}
	format, err := render.ParseFormat(result.Flags.Format)
	if err != nil {
		return err
	}
	reg, err := loadRegistry(result.Flags.Schema, result.Args)
	if err != nil {
		return err
	}
	if result.Flags.Dash {
		reg.Layout = clopts.LayoutDash
	}
	reg.Output = stdout
	if format.Machine() {
		// Keep stdout decodable.
		reg.Output = stderr
		reg.Summary = false
	}

	res, err := reg.Parse(result.RemainingArgs)
	if errors.Is(err, clopts.ErrOptionsShown) {
		return nil
	}
	if err != nil {
		return err
	}
	log.Printf("%d options, %d changed from their defaults", len(res.Names()), len(res.Changed()))
	if path := result.Flags.EnvFile; path != "" {
		if err := env.WriteFile(path, result.Flags.Prefix, res); err != nil {
			return err
		}
		log.Printf("wrote %s", path)
	}
	if format == render.FormatEnv {
		return env.Write(stdout, result.Flags.Prefix, res)
	}
	return render.Result(stdout, res, format)
}

func handleVersion(_ context.Context, args []string) error {
	if len(args) > 0 && args[0] == "version" {
		args = args[1:]
	}
	if len(args) > 0 {
		return fmt.Errorf("version takes no arguments")
	}
	fmt.Fprintf(stdout, "clopts %s\n", Version())
	fmt.Fprintf(stdout, "schema versions %s\n", schema.SupportedVersions)
	return nil
}
