// SPDX-License-Identifier: AGPL-3.0-or-later
// Copyright (C) 2026 aPlane Authors

package command

import (
	"io"
	"os"

	"github.com/neonlabsorg/neonpda/pda"
)

// Context provides command handlers with the derivation settings fixed at startup.
type Context struct {
	Deriver *pda.Deriver
	ChainID uint64 // default chain id for balance accounts

	JSON  bool // emit JSON instead of text
	Color bool // colour text output

	Out io.Writer
}

// Writer returns the output writer, defaulting to stdout.
func (ctx *Context) Writer() io.Writer {
	if ctx.Out == nil {
		return os.Stdout
	}
	return ctx.Out
}
