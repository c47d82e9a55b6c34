// SPDX-License-Identifier: AGPL-3.0-or-later
// Copyright (C) 2026 aPlane Authors

package pda

import (
	"encoding/binary"
	"encoding/hex"
	"fmt"
	"strings"
)

// Seed32 is a fixed-width 32-byte seed (a big-endian 256-bit word).
type Seed32 [32]byte

// Seed32FromBytes left-pads b with zeros to 32 bytes.
func Seed32FromBytes(b []byte) (Seed32, error) {
	var s Seed32
	if len(b) > len(s) {
		return s, fmt.Errorf("%w: seed must be at most %d bytes, got %d", ErrMalformedInput, len(s), len(b))
	}
	copy(s[len(s)-len(b):], b)
	return s, nil
}

// Seed32FromAddress left-pads an entity address to a 32-byte word.
func Seed32FromAddress(a EntityAddress) Seed32 {
	var s Seed32
	copy(s[len(s)-EntityAddressLength:], a[:])
	return s
}

// ParseSeed32 parses up to 64 hex digits (optional 0x) as a left-padded word.
func ParseSeed32(str string) (Seed32, error) {
	hexPart := strings.TrimPrefix(strings.TrimPrefix(strings.TrimSpace(str), "0x"), "0X")
	if len(hexPart)%2 == 1 {
		hexPart = "0" + hexPart
	}
	raw, err := hex.DecodeString(hexPart)
	if err != nil {
		return Seed32{}, fmt.Errorf("%w: %v", ErrMalformedInput, err)
	}
	return Seed32FromBytes(raw)
}

// ChainIDSeed encodes a chain id as a 32-byte big-endian word.
func ChainIDSeed(chainID uint64) []byte {
	out := make([]byte, 32)
	binary.BigEndian.PutUint64(out[24:], chainID)
	return out
}

// TreasuryIndexSeed encodes a treasury pool index as 4 little-endian bytes.
func TreasuryIndexSeed(index uint32) []byte {
	out := make([]byte, 4)
	binary.LittleEndian.PutUint32(out, index)
	return out
}
