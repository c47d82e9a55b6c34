// SPDX-License-Identifier: AGPL-3.0-or-later
// Copyright (C) 2026 aPlane Authors

package main

import (
	"bytes"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/neonlabsorg/neonpda/internal/command"
	"github.com/neonlabsorg/neonpda/internal/util"
)

const usdt = "0x5f0155d08eF4aaE2B500AefB64A3419dA8bB611a"

// runCLI runs pdaderive against an empty data directory.
func runCLI(t *testing.T, args ...string) (int, string, string) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	argv := append([]string{"-d", t.TempDir()}, args...)
	code := run(argv, &stdout, &stderr)
	return code, stdout.String(), stderr.String()
}

func TestRunDerivations(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want string
	}{
		{"authority", []string{"authority"}, "CUU8HLwbSc2zFEDenmauiEJbCGCNy4eAHAmznZcjB6Nn"},
		{"deposit alias", []string{"deposit"}, "CUU8HLwbSc2zFEDenmauiEJbCGCNy4eAHAmznZcjB6Nn"},
		{"contract", []string{"contract", usdt}, "GHuABgXXF37MqV9WyqJXwvzA2eLkcxKf2t8WbiVzBLnU"},
		{"token", []string{"token", usdt, "0x35B6C40e3873F361c43c073154BF8b37C1f34Cd7"}, "12HWB2U31J5AMgDTaaXBdNGN8jAeJNiwpgkewCNVNKyU"},
		{"transfer", []string{"transfer", usdt, "0x35B6C40e3873F361c43c073154BF8b37C1f34Cd7"}, "99EvWNCZ6JdvBAhpkqoaht8mV3s4NkCMKBEyY5gLnxmJ"},
		{"balance default chain", []string{"balance", usdt}, "3vvzJMFNp2qTYbzzJnzcFaw7L62Gqb7Th94sQLiHBw8b"},
		{"balance explicit chain", []string{"balance", usdt, "245022934"}, "3vvzJMFNp2qTYbzzJnzcFaw7L62Gqb7Th94sQLiHBw8b"},
		{"treasury", []string{"treasury", "7"}, "Fy1kSwvoRb6NsQT8ihamZP8JZtrL3iAjYRD1sPJU7SA7"},
		{"main treasury", []string{"main-treasury"}, "FVyh61ZZyKmREegYAYbnctwfL1utuUCfKaEqBRxMGdqn"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			code, out, errOut := runCLI(t, tt.args...)
			if code != 0 {
				t.Fatalf("exit code %d, stderr: %s", code, errOut)
			}
			if !strings.Contains(out, tt.want) {
				t.Errorf("output missing %s:\n%s", tt.want, out)
			}
			if strings.Contains(out, "\033[") {
				t.Error("output to a buffer must not be coloured")
			}
		})
	}
}

func TestRunJSON(t *testing.T) {
	code, out, errOut := runCLI(t, "-json", "contract", usdt)
	if code != 0 {
		t.Fatalf("exit code %d, stderr: %s", code, errOut)
	}

	var got derivedOutput
	if err := json.Unmarshal([]byte(out), &got); err != nil {
		t.Fatalf("json.Unmarshal failed: %v\n%s", err, out)
	}
	if got.Address != "GHuABgXXF37MqV9WyqJXwvzA2eLkcxKf2t8WbiVzBLnU" || got.Bump != 255 {
		t.Errorf("got %+v", got)
	}
	if got.ProgramID != util.DefaultProgramID {
		t.Errorf("ProgramID = %s", got.ProgramID)
	}
	want := []string{"03", "5f0155d08ef4aae2b500aefb64a3419da8bb611a", "ff"}
	if strings.Join(got.Seeds, ",") != strings.Join(want, ",") {
		t.Errorf("Seeds = %v, want %v", got.Seeds, want)
	}
}

func TestRunErrors(t *testing.T) {
	tests := []struct {
		name     string
		args     []string
		wantCode int
		wantErr  string
	}{
		{"no command", nil, 2, "Usage:"},
		{"unknown command", []string{"nope"}, 1, "unknown command"},
		{"missing address", []string{"contract"}, 1, "usage: contract <address>"},
		{"bad address", []string{"contract", "0x1234"}, 1, "malformed identifier"},
		{"bad chain id", []string{"balance", usdt, "abc"}, 1, "chain id"},
		{"bad treasury index", []string{"treasury", "4294967296"}, 1, "treasury index"},
		{"bad program id", []string{"-program", "xyz0", "authority"}, 1, "program_id"},
		{"bad flag", []string{"-bogus"}, 2, "flag provided but not defined"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			code, _, errOut := runCLI(t, tt.args...)
			if code != tt.wantCode {
				t.Errorf("exit code = %d, want %d", code, tt.wantCode)
			}
			if !strings.Contains(errOut, tt.wantErr) {
				t.Errorf("stderr missing %q:\n%s", tt.wantErr, errOut)
			}
		})
	}
}

func TestRunConfigFile(t *testing.T) {
	dir := t.TempDir()
	cfg := "chain_id: 111\ncolor: false\n"
	if err := os.WriteFile(filepath.Join(dir, "config.yaml"), []byte(cfg), 0600); err != nil {
		t.Fatalf("WriteFile failed: %v", err)
	}

	var fromConfig, explicit, stderr bytes.Buffer
	if code := run([]string{"-d", dir, "balance", usdt}, &fromConfig, &stderr); code != 0 {
		t.Fatalf("exit code %d: %s", code, stderr.String())
	}
	if code := run([]string{"-d", dir, "balance", usdt, "111"}, &explicit, &stderr); code != 0 {
		t.Fatalf("exit code %d: %s", code, stderr.String())
	}
	if fromConfig.String() != explicit.String() {
		t.Errorf("config chain id not applied:\n%s\nvs\n%s", fromConfig.String(), explicit.String())
	}
	if strings.Contains(fromConfig.String(), "3vvzJMFNp2qTYbzzJnzcFaw7L62Gqb7Th94sQLiHBw8b") {
		t.Error("chain 111 should not derive the mainnet balance address")
	}
}

func TestHelpAndVersion(t *testing.T) {
	code, out, _ := runCLI(t, "help")
	if code != 0 {
		t.Fatalf("help exit code %d", code)
	}
	for _, want := range []string{command.CategoryAccounts, command.CategoryTreasury, "main-treasury", "Program: " + util.DefaultProgramID} {
		if !strings.Contains(out, want) {
			t.Errorf("help output missing %q", want)
		}
	}

	code, out, _ = runCLI(t, "help", "balance")
	if code != 0 || !strings.Contains(out, "32-byte big-endian") {
		t.Errorf("help balance: code %d\n%s", code, out)
	}

	code, out, _ = runCLI(t, "version")
	if code != 0 || !strings.Contains(out, "seed version: 3") {
		t.Errorf("version: code %d\n%s", code, out)
	}
}

func TestDispatchLine(t *testing.T) {
	var buf bytes.Buffer
	ctx, err := newContext(options{dataDir: t.TempDir()}, &buf)
	if err != nil {
		t.Fatalf("newContext failed: %v", err)
	}
	registry := newRegistry()

	if err := dispatchLine(registry, ctx, "   "); err != nil {
		t.Errorf("blank line: %v", err)
	}
	if err := dispatchLine(registry, ctx, "contract "+usdt); err != nil {
		t.Fatalf("contract: %v", err)
	}
	if !strings.Contains(buf.String(), "GHuABgXXF37MqV9WyqJXwvzA2eLkcxKf2t8WbiVzBLnU") {
		t.Errorf("output:\n%s", buf.String())
	}
	for _, line := range []string{"quit", "exit"} {
		if err := dispatchLine(registry, ctx, line); !errors.Is(err, errExit) {
			t.Errorf("%s: err = %v, want errExit", line, err)
		}
	}
}
