// SPDX-License-Identifier: AGPL-3.0-or-later
// Copyright (C) 2026 aPlane Authors

// pdaderive derives program-derived addresses for EVM entities.
//
// Usage:
//
//	pdaderive [-d path] [-c config.yaml] [-program id] [-json] <command> [args...]
//	pdaderive shell
//
// Settings come from config.yaml in the data directory and are fixed for the
// life of the process.
package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/neonlabsorg/neonpda/internal/command"
	"github.com/neonlabsorg/neonpda/internal/util"
	"github.com/neonlabsorg/neonpda/internal/version"
)

// options are the command-line settings that override config.yaml.
type options struct {
	dataDir    string
	configPath string
	programID  string
	jsonOut    bool
	noColor    bool
}

func main() {
	// Handle early-exit flags before any other processing
	for _, arg := range os.Args[1:] {
		if arg == "--version" || arg == "-version" {
			fmt.Printf("pdaderive %s\n", version.String())
			os.Exit(0)
		}
	}

	util.InitLogger()
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(argv []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("pdaderive", flag.ContinueOnError)
	fs.SetOutput(stderr)

	var opts options
	fs.StringVar(&opts.dataDir, "d", "", "Data directory (or set PDADERIVE_DATA env var)")
	fs.StringVar(&opts.configPath, "c", "", "Config file (default <data dir>/config.yaml)")
	fs.StringVar(&opts.programID, "program", "", "Owning program id (overrides program_id)")
	fs.BoolVar(&opts.jsonOut, "json", false, "Emit JSON")
	fs.BoolVar(&opts.noColor, "no-color", false, "Disable coloured output")
	fs.Usage = func() { usage(stderr, fs) }

	if err := fs.Parse(argv); err != nil {
		return 2
	}
	if fs.NArg() == 0 {
		usage(stderr, fs)
		return 2
	}

	ctx, err := newContext(opts, stdout)
	if err != nil {
		_, _ = fmt.Fprintf(stderr, "Error: %v\n", err)
		return 1
	}

	registry := newRegistry()
	name, args := fs.Arg(0), fs.Args()[1:]

	if name == "shell" {
		startShell(registry, ctx, util.GetDataDir(opts.dataDir))
		return 0
	}

	if err := registry.Execute(name, args, ctx); err != nil {
		_, _ = fmt.Fprintf(stderr, "Error: %v\n", err)
		return 1
	}
	return 0
}

func newContext(opts options, stdout io.Writer) (*command.Context, error) {
	path := opts.configPath
	if path == "" {
		path = util.GetConfigPath(util.GetDataDir(opts.dataDir))
	}

	cfg, err := util.LoadConfigFromPath(path)
	if err != nil {
		return nil, err
	}
	if opts.programID != "" {
		cfg.ProgramID = opts.programID
	}

	deriver, err := cfg.Deriver()
	if err != nil {
		return nil, err
	}
	util.Debug("configuration loaded",
		"path", path,
		"program_id", cfg.ProgramID,
		"seed_version", cfg.SeedVersion,
		"treasury_pool_seed", cfg.TreasuryPoolSeed,
		"chain_id", cfg.ChainID)

	color := cfg.Color && !opts.noColor && !opts.jsonOut
	if f, ok := stdout.(*os.File); ok {
		color = color && util.SupportsColor(f)
	} else {
		color = false
	}

	return &command.Context{
		Deriver: deriver,
		ChainID: cfg.ChainID,
		JSON:    opts.jsonOut,
		Color:   color,
		Out:     stdout,
	}, nil
}

func usage(w io.Writer, fs *flag.FlagSet) {
	_, _ = fmt.Fprintf(w, "pdaderive - program-derived address calculator\n\n")
	_, _ = fmt.Fprintf(w, "Usage:\n")
	_, _ = fmt.Fprintf(w, "  pdaderive [options] authority\n")
	_, _ = fmt.Fprintf(w, "  pdaderive [options] contract <address>\n")
	_, _ = fmt.Fprintf(w, "  pdaderive [options] balance <address> [chain-id]\n")
	_, _ = fmt.Fprintf(w, "  pdaderive [options] token <address> <seed>\n")
	_, _ = fmt.Fprintf(w, "  pdaderive [options] transfer <address> <seed>\n")
	_, _ = fmt.Fprintf(w, "  pdaderive [options] treasury <index>\n")
	_, _ = fmt.Fprintf(w, "  pdaderive [options] main-treasury\n")
	_, _ = fmt.Fprintf(w, "  pdaderive [options] shell\n")
	_, _ = fmt.Fprintf(w, "\nOptions:\n")
	fs.PrintDefaults()
	_, _ = fmt.Fprintf(w, "\nExamples:\n")
	_, _ = fmt.Fprintf(w, "  pdaderive contract 0x5f0155d08eF4aaE2B500AefB64A3419dA8bB611a\n")
	_, _ = fmt.Fprintf(w, "  pdaderive -json balance 0x5f0155d08eF4aaE2B500AefB64A3419dA8bB611a 245022934\n")
}
