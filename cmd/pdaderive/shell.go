// SPDX-License-Identifier: AGPL-3.0-or-later
// Copyright (C) 2026 aPlane Authors

package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/chzyer/readline"

	"github.com/neonlabsorg/neonpda/internal/command"
)

// errExit ends the shell loop.
var errExit = errors.New("exit")

// dispatchLine runs one shell input line.
func dispatchLine(registry *command.Registry, ctx *command.Context, line string) error {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return nil
	}
	switch fields[0] {
	case "quit", "exit":
		return errExit
	}
	return registry.Execute(fields[0], fields[1:], ctx)
}

func startBasicShell(registry *command.Registry, ctx *command.Context, in io.Reader) {
	fmt.Println("Running in basic mode (no history/completion)")
	scanner := bufio.NewScanner(in)
	for {
		fmt.Print("pda> ")
		if !scanner.Scan() {
			break
		}
		if err := dispatchLine(registry, ctx, scanner.Text()); err != nil {
			if errors.Is(err, errExit) {
				break
			}
			fmt.Printf("Error: %v\n", err)
		}
	}
}

func startShell(registry *command.Registry, ctx *command.Context, dataDir string) {
	fmt.Println("pdaderive shell")
	fmt.Printf("Program: %s  seed version: %d\n", ctx.Deriver.ProgramID(), ctx.Deriver.Composer().Version())
	fmt.Println("Type 'help' for available commands or 'quit' to exit")

	items := make([]readline.PrefixCompleterInterface, 0)
	for _, name := range registry.Names() {
		items = append(items, readline.PcItem(name))
	}

	historyFile := ""
	if dataDir != "" {
		if err := os.MkdirAll(dataDir, 0700); err == nil {
			historyFile = filepath.Join(dataDir, "history")
		}
	}

	rl, err := readline.NewEx(&readline.Config{
		Prompt:            "\033[32mpda>\033[0m ",
		HistoryFile:       historyFile,
		HistoryLimit:      1000,
		AutoComplete:      readline.NewPrefixCompleter(items...),
		InterruptPrompt:   "^C",
		EOFPrompt:         "exit",
		HistorySearchFold: true,
	})
	if err != nil {
		fmt.Printf("Failed to create readline instance, falling back to basic input: %v\n", err)
		startBasicShell(registry, ctx, os.Stdin)
		return
	}
	defer func() { _ = rl.Close() }()

	for {
		line, err := rl.Readline()
		if errors.Is(err, readline.ErrInterrupt) {
			if len(line) == 0 {
				break
			}
			continue
		}
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			break
		}

		if err := dispatchLine(registry, ctx, line); err != nil {
			if errors.Is(err, errExit) {
				break
			}
			fmt.Printf("Error: %v\n", err)
		}
	}
}
