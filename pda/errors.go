// SPDX-License-Identifier: AGPL-3.0-or-later
// Copyright (C) 2026 aPlane Authors

package pda

import (
	"errors"
	"fmt"
)

var (
	// ErrSeedOverflow indicates a seed set that exceeds the host limits.
	// Composers only emit bounded seeds, so this is a programming error.
	ErrSeedOverflow = errors.New("seed set exceeds host derivation limits")

	// ErrBumpExhausted indicates that no bump in 255..0 produced an off-curve address.
	ErrBumpExhausted = errors.New("no viable bump seed found (all addresses are on the ed25519 curve)")

	// ErrMalformedInput indicates an identifier of the wrong width or encoding.
	ErrMalformedInput = errors.New("malformed identifier")

	// ErrOnCurve indicates that a single derivation attempt landed on the curve.
	ErrOnCurve = errors.New("derived address lies on the ed25519 curve")
)

// SeedError describes which seed broke the host limits.
type SeedError struct {
	Index  int // -1 when the seed count itself is too large
	Length int
}

func (e *SeedError) Error() string {
	if e.Index < 0 {
		return fmt.Sprintf("%v: %d seeds, max %d", ErrSeedOverflow, e.Length, MaxSeeds)
	}
	return fmt.Sprintf("%v: seed %d is %d bytes, max %d", ErrSeedOverflow, e.Index, e.Length, MaxSeedLength)
}

func (e *SeedError) Unwrap() error {
	return ErrSeedOverflow
}
