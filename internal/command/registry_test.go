// SPDX-License-Identifier: AGPL-3.0-or-later
// Copyright (C) 2026 aPlane Authors

package command

import (
	"bytes"
	"errors"
	"strings"
	"testing"
)

// MockHandler implements Handler interface for testing
type MockHandler struct {
	executeFunc func(args []string, ctx *Context) error
}

func (h *MockHandler) Execute(args []string, ctx *Context) error {
	if h.executeFunc != nil {
		return h.executeFunc(args, ctx)
	}
	return nil
}

func TestNewRegistry(t *testing.T) {
	r := NewRegistry()
	if r == nil {
		t.Fatal("NewRegistry() returned nil")
	}
	if r.commands == nil {
		t.Error("NewRegistry() commands map is nil")
	}
	if r.primary == nil {
		t.Error("NewRegistry() primary slice is nil")
	}
}

func TestRegistry_Register(t *testing.T) {
	r := NewRegistry()

	cmd := &Command{
		Name:        "test",
		Aliases:     []string{"t"},
		Usage:       "test [args]",
		Description: "Test command",
		Category:    CategoryAccounts,
		Handler:     &MockHandler{},
	}

	err := r.Register(cmd)
	if err != nil {
		t.Fatalf("Register() error = %v", err)
	}

	// Verify command is registered by name
	got, ok := r.Lookup("test")
	if !ok {
		t.Error("Register() command not found by name")
	}
	if got.Name != "test" {
		t.Errorf("Register() name = %v, want test", got.Name)
	}

	// Verify command is registered by alias
	got, ok = r.Lookup("t")
	if !ok {
		t.Error("Register() command not found by alias")
	}
	if got.Name != "test" {
		t.Errorf("Register() alias lookup name = %v, want test", got.Name)
	}
}

func TestRegistry_Register_Duplicate(t *testing.T) {
	r := NewRegistry()

	cmd1 := &Command{
		Name:    "test",
		Handler: &MockHandler{},
	}
	cmd2 := &Command{
		Name:    "test",
		Handler: &MockHandler{},
	}

	_ = r.Register(cmd1)
	err := r.Register(cmd2)
	if err == nil {
		t.Error("Register() expected error for duplicate command name")
	}
}

func TestRegistry_Register_AliasConflict(t *testing.T) {
	r := NewRegistry()

	cmd1 := &Command{
		Name:    "test",
		Aliases: []string{"t"},
		Handler: &MockHandler{},
	}
	cmd2 := &Command{
		Name:    "other",
		Aliases: []string{"t"}, // Conflicts with cmd1's alias
		Handler: &MockHandler{},
	}

	_ = r.Register(cmd1)
	err := r.Register(cmd2)
	if err == nil {
		t.Error("Register() expected error for conflicting alias")
	}
}

func TestRegistry_Lookup(t *testing.T) {
	r := NewRegistry()

	cmd := &Command{
		Name:    "test",
		Aliases: []string{"t", "tst"},
		Handler: &MockHandler{},
	}
	_ = r.Register(cmd)

	tests := []struct {
		name    string
		lookup  string
		wantOK  bool
		wantCmd string
	}{
		{"by name", "test", true, "test"},
		{"by alias t", "t", true, "test"},
		{"by alias tst", "tst", true, "test"},
		{"not found", "notexist", false, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := r.Lookup(tt.lookup)
			if ok != tt.wantOK {
				t.Errorf("Lookup() ok = %v, want %v", ok, tt.wantOK)
			}
			if ok && got.Name != tt.wantCmd {
				t.Errorf("Lookup() name = %v, want %v", got.Name, tt.wantCmd)
			}
		})
	}
}

func TestRegistry_All(t *testing.T) {
	r := NewRegistry()

	cmd1 := &Command{Name: "alpha", Handler: &MockHandler{}}
	cmd2 := &Command{Name: "beta", Handler: &MockHandler{}}
	cmd3 := &Command{Name: "gamma", Handler: &MockHandler{}}

	_ = r.Register(cmd1)
	_ = r.Register(cmd2)
	_ = r.Register(cmd3)

	all := r.All()
	if len(all) != 3 {
		t.Errorf("All() count = %v, want 3", len(all))
	}
}

func TestRegistry_ByCategory(t *testing.T) {
	r := NewRegistry()

	cmd1 := &Command{Name: "treasury", Category: CategoryTreasury, Handler: &MockHandler{}}
	cmd2 := &Command{Name: "version", Category: CategoryInfo, Handler: &MockHandler{}}
	cmd3 := &Command{Name: "help", Category: CategoryInfo, Handler: &MockHandler{}}

	_ = r.Register(cmd1)
	_ = r.Register(cmd2)
	_ = r.Register(cmd3)

	categories := r.ByCategory()

	if len(categories[CategoryTreasury]) != 1 {
		t.Errorf("ByCategory() Treasury count = %v, want 1", len(categories[CategoryTreasury]))
	}
	if len(categories[CategoryInfo]) != 2 {
		t.Errorf("ByCategory() Info count = %v, want 2", len(categories[CategoryInfo]))
	}

	// Verify sorting within category
	infoCmds := categories[CategoryInfo]
	if len(infoCmds) >= 2 && infoCmds[0].Name > infoCmds[1].Name {
		t.Error("ByCategory() commands should be sorted alphabetically within category")
	}
}

func TestRegistry_Register_AliasConflictLeavesRegistryUnchanged(t *testing.T) {
	r := NewRegistry()
	_ = r.Register(&Command{Name: "contract", Aliases: []string{"c"}, Handler: &MockHandler{}})

	err := r.Register(&Command{Name: "balance", Aliases: []string{"b", "c"}, Handler: &MockHandler{}})
	if err == nil {
		t.Fatal("Register() expected error for conflicting alias")
	}
	if _, ok := r.Lookup("balance"); ok {
		t.Error("rejected command should not be registered")
	}
	if _, ok := r.Lookup("b"); ok {
		t.Error("rejected command's aliases should not be registered")
	}
}

func TestRegistry_Execute(t *testing.T) {
	r := NewRegistry()
	wantErr := errors.New("boom")

	var gotArgs []string
	_ = r.Register(&Command{
		Name:    "contract",
		Aliases: []string{"c"},
		Handler: NewInternalHandler(func(args []string, ctx *Context) error {
			gotArgs = args
			return wantErr
		}),
	})

	err := r.Execute("c", []string{"0xabc"}, &Context{})
	if !errors.Is(err, wantErr) {
		t.Fatalf("Execute() error = %v, want %v", err, wantErr)
	}
	if len(gotArgs) != 1 || gotArgs[0] != "0xabc" {
		t.Errorf("Execute() args = %v", gotArgs)
	}

	if err := r.Execute("nope", nil, &Context{}); err == nil || !strings.Contains(err.Error(), "unknown command") {
		t.Errorf("Execute(nope) error = %v", err)
	}
}

func TestRegistry_Names(t *testing.T) {
	r := NewRegistry()
	_ = r.Register(&Command{Name: "treasury", Aliases: []string{"t"}, Handler: &MockHandler{}})
	_ = r.Register(&Command{Name: "authority", Handler: &MockHandler{}})

	got := strings.Join(r.Names(), ",")
	if got != "authority,t,treasury" {
		t.Errorf("Names() = %s", got)
	}
}

func TestShowHelp(t *testing.T) {
	r := NewRegistry()
	_ = r.Register(&Command{Name: "contract", Usage: "contract <address>", Description: "Contract account", Category: CategoryAccounts, Handler: &MockHandler{}})
	_ = r.Register(&Command{Name: "version", Usage: "version", Description: "Show version", Category: CategoryInfo, Aliases: []string{"v"}, Handler: &MockHandler{}})

	var buf bytes.Buffer
	ShowHelp(&buf, r, "NeonVMyRX5GbCrsAHnUwx1nYYoJAtskU1bWUo6JGNyG")
	out := buf.String()

	for _, want := range []string{CategoryAccounts + ":", CategoryInfo + ":", "contract <address>", "(aliases: v)", "Program: NeonVMy"} {
		if !strings.Contains(out, want) {
			t.Errorf("ShowHelp output missing %q:\n%s", want, out)
		}
	}
	if strings.Index(out, CategoryAccounts) > strings.Index(out, CategoryInfo) {
		t.Error("categories out of order")
	}

	buf.Reset()
	cmd, _ := r.Lookup("contract")
	ShowCommandHelp(&buf, cmd)
	if !strings.Contains(buf.String(), "Usage: contract <address>") {
		t.Errorf("ShowCommandHelp output:\n%s", buf.String())
	}
}

func TestContext_Writer(t *testing.T) {
	ctx := &Context{}
	if ctx.Writer() == nil {
		t.Fatal("Writer() should default to stdout")
	}
	var buf bytes.Buffer
	ctx.Out = &buf
	if ctx.Writer() != &buf {
		t.Error("Writer() should return Out when set")
	}
}
