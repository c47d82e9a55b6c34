// SPDX-License-Identifier: AGPL-3.0-or-later
// Copyright (C) 2026 aPlane Authors

package command

// Command represents a pdaderive command with metadata
type Command struct {
	Name        string   // Primary command name
	Aliases     []string // Alternative names (e.g., "h" for "help")
	Usage       string   // Usage string: "contract <address>"
	Description string   // One-line description
	LongHelp    string   // Multi-line detailed help (optional)
	Category    string   // "Account Derivation", "Information", etc.
	Handler     Handler  // Command execution handler
}

// Handler is the interface all command handlers must implement
type Handler interface {
	Execute(args []string, ctx *Context) error
}

// Category constants for organizing commands
const (
	CategoryAccounts = "Account Derivation"
	CategoryTreasury = "Treasury"
	CategoryInfo     = "Information"
)

// categoryOrder is the order categories appear in help output.
var categoryOrder = []string{
	CategoryAccounts,
	CategoryTreasury,
	CategoryInfo,
}
