// SPDX-License-Identifier: AGPL-3.0-or-later
// Copyright (C) 2026 aPlane Authors

package pda

import (
	"crypto/sha256"

	"filippo.io/edwards25519"
	"github.com/gagliardetto/solana-go"
)

const (
	// MaxSeeds is the maximum number of seeds in one derivation, bump included.
	MaxSeeds = 16

	// MaxSeedLength is the maximum length of a single seed in bytes.
	MaxSeedLength = 32
)

// pdaMarker is the protocol salt appended after the program id.
var pdaMarker = []byte("ProgramDerivedAddress")

// DerivedAddress is the result of a canonical derivation.
type DerivedAddress struct {
	Address solana.PublicKey
	Bump    uint8
	Seeds   [][]byte // input seeds followed by []byte{Bump}
}

// SignerSeeds returns the seeds wrapped for a signed invocation.
func (d DerivedAddress) SignerSeeds() [][][]byte {
	return [][][]byte{cloneSeeds(d.Seeds)}
}

// CreateProgramAddress runs the host derivation primitive for one fully
// specified seed set (bump included). It fails with ErrOnCurve when the
// result is a valid ed25519 point.
func CreateProgramAddress(seeds [][]byte, programID solana.PublicKey) (solana.PublicKey, error) {
	if err := validateSeeds(seeds); err != nil {
		return solana.PublicKey{}, err
	}
	addr := hashSeeds(seeds, programID)
	if IsOnCurve(addr[:]) {
		return solana.PublicKey{}, ErrOnCurve
	}
	return addr, nil
}

// FindProgramAddress returns the canonical address for seeds under programID:
// the one produced by the largest bump for which the address is off curve.
func FindProgramAddress(seeds [][]byte, programID solana.PublicKey) (solana.PublicKey, uint8, error) {
	bump := []byte{0}
	withBump := make([][]byte, 0, len(seeds)+1)
	withBump = append(withBump, seeds...)
	withBump = append(withBump, bump)

	if err := validateSeeds(withBump); err != nil {
		return solana.PublicKey{}, 0, err
	}

	// Strictly descending: the first hit is the canonical bump.
	for b := 255; b >= 0; b-- {
		bump[0] = byte(b)
		addr := hashSeeds(withBump, programID)
		if !IsOnCurve(addr[:]) {
			return addr, uint8(b), nil
		}
	}

	return solana.PublicKey{}, 0, ErrBumpExhausted
}

// FindProgramAddressWithSeeds is FindProgramAddress that also returns the
// complete seed list, bump included, needed to sign for the account later.
func FindProgramAddressWithSeeds(seeds [][]byte, programID solana.PublicKey) (DerivedAddress, error) {
	addr, bump, err := FindProgramAddress(seeds, programID)
	if err != nil {
		return DerivedAddress{}, err
	}

	full := cloneSeeds(seeds)
	full = append(full, []byte{bump})

	return DerivedAddress{
		Address: addr,
		Bump:    bump,
		Seeds:   full,
	}, nil
}

// IsOnCurve returns true if the 32-byte value decodes to a valid edwards25519
// curve point (i.e., could be an ed25519 public key), and false otherwise.
func IsOnCurve(b []byte) bool {
	_, err := new(edwards25519.Point).SetBytes(b)
	return err == nil
}

func validateSeeds(seeds [][]byte) error {
	if len(seeds) > MaxSeeds {
		return &SeedError{Index: -1, Length: len(seeds)}
	}
	for i, s := range seeds {
		if len(s) > MaxSeedLength {
			return &SeedError{Index: i, Length: len(s)}
		}
	}
	return nil
}

func hashSeeds(seeds [][]byte, programID solana.PublicKey) solana.PublicKey {
	h := sha256.New()
	for _, s := range seeds {
		h.Write(s)
	}
	h.Write(programID[:])
	h.Write(pdaMarker)

	var out solana.PublicKey
	copy(out[:], h.Sum(nil))
	return out
}

func cloneSeeds(seeds [][]byte) [][]byte {
	out := make([][]byte, len(seeds), len(seeds)+1)
	for i, s := range seeds {
		out[i] = append([]byte(nil), s...)
	}
	return out
}
