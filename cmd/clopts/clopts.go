// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command clopts describes and parses command lines against an option
// schema file, so shell scripts can use clopts without writing Go.
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/shayne/yargs"
	"github.com/yeetrun/clopts/pkg/clopts"
	"github.com/yeetrun/clopts/pkg/schema"
)

var (
	stdout io.Writer = os.Stdout
	stderr io.Writer = os.Stderr
)

type globalFlagsParsed struct {
	Verbose bool `flag:"verbose" short:"v" help:"Log diagnostics to stderr"`
}

func parseGlobalFlags(args []string) (globalFlagsParsed, []string, error) {
	result, err := yargs.ParseKnownFlags[globalFlagsParsed](args, yargs.KnownFlagsOptions{})
	if err != nil {
		return globalFlagsParsed{}, nil, err
	}
	return result.Flags, result.RemainingArgs, nil
}

func main() {
	log.SetFlags(0)
	log.SetPrefix("clopts: ")

	globalFlags, args, err := parseGlobalFlags(os.Args[1:])
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	if !globalFlags.Verbose {
		log.SetOutput(io.Discard)
	}
	if err := run(context.Background(), args); err != nil {
		printCLIError(os.Stderr, err)
		os.Exit(1)
	}
}

func run(ctx context.Context, args []string) error {
	handlers := map[string]yargs.SubcommandHandler{
		"describe": handleDescribe,
		"parse":    handleParse,
		"version":  handleVersion,
	}
	return yargs.RunSubcommandsWithGroups(ctx, args, buildHelpConfig(), globalFlagsParsed{}, handlers, nil)
}

func buildHelpConfig() yargs.HelpConfig {
	return yargs.HelpConfig{
		Command: yargs.CommandInfo{
			Name:        "clopts",
			Description: "Describe and parse command-line options declared in a TOML or YAML schema.",
			Examples: []string{
				"clopts describe -s opts.toml",
				"clopts parse -s opts.toml -- count=3 name=ann",
				"clopts parse -s opts.yaml --dash -f json -- --count 3",
				"eval \"$(clopts parse -s opts.toml -f env --prefix opt_ -- \"$@\")\"",
			},
		},
		SubCommands: map[string]yargs.SubCommandInfo{
			"describe": {
				Name:        "describe",
				Description: "List the options declared in a schema",
				Usage:       "--schema FILE [--format text|table|json|yaml|toml]",
				Examples:    []string{"clopts describe -s opts.toml -f table"},
			},
			"parse": {
				Name:        "parse",
				Description: "Parse the arguments after -- against a schema and print the values",
				Usage:       "--schema FILE [--format FORMAT] [--dash] [--prefix P] [--env-file FILE] -- ARGS...",
				Examples: []string{
					"clopts parse -s opts.toml -- name=ann",
					"clopts parse -s opts.toml --env-file opts.env -- name=ann",
				},
			},
			"version": {
				Name:        "version",
				Description: "Print the clopts version and the schema versions it reads",
			},
		},
	}
}

// loadRegistry builds the registry declared by the schema at path. If path
// is empty the first positional argument is used. Any other positional
// argument is an error.
func loadRegistry(path string, positional []string) (*clopts.Registry, error) {
	if path == "" && len(positional) > 0 {
		path, positional = positional[0], positional[1:]
	}
	if len(positional) > 0 {
		return nil, fmt.Errorf("unexpected argument %q; pass the arguments to parse after --", positional[0])
	}
	if path == "" {
		return nil, errors.New("a schema file is required (--schema FILE)")
	}
	s, err := schema.Load(path)
	if err != nil {
		return nil, fmt.Errorf("failed to load schema: %w", err)
	}
	reg, err := s.Registry()
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	log.Printf("loaded %d options and %d rules from %s", len(reg.Options()), len(reg.Rules()), path)
	return reg, nil
}

func printCLIError(w io.Writer, err error) {
	if err == nil {
		return
	}
	var cerr *clopts.Error
	if errors.As(err, &cerr) {
		fmt.Fprintf(w, "%s: ", cerr.Kind)
	}
	fmt.Fprintln(w, err)
}
