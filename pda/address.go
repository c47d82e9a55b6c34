// SPDX-License-Identifier: AGPL-3.0-or-later
// Copyright (C) 2026 aPlane Authors

package pda

import (
	"encoding/hex"
	"fmt"
	"strings"

	"github.com/gagliardetto/solana-go"
	"golang.org/x/crypto/sha3"
)

// EntityAddressLength is the width of an EVM entity address in bytes.
const EntityAddressLength = 20

// EntityAddress is a 20-byte EVM address. It is an opaque key here.
type EntityAddress [EntityAddressLength]byte

// EntityAddressFromBytes copies b into an EntityAddress.
func EntityAddressFromBytes(b []byte) (EntityAddress, error) {
	var a EntityAddress
	if len(b) != EntityAddressLength {
		return a, fmt.Errorf("%w: address must be %d bytes, got %d", ErrMalformedInput, EntityAddressLength, len(b))
	}
	copy(a[:], b)
	return a, nil
}

// ParseEntityAddress parses a hex address with optional 0x prefix.
// Mixed-case input must carry a valid EIP-55 checksum.
func ParseEntityAddress(s string) (EntityAddress, error) {
	var a EntityAddress

	hexPart := strings.TrimPrefix(strings.TrimPrefix(strings.TrimSpace(s), "0x"), "0X")
	if len(hexPart) != EntityAddressLength*2 {
		return a, fmt.Errorf("%w: address must be %d hex digits, got %d", ErrMalformedInput, EntityAddressLength*2, len(hexPart))
	}

	raw, err := hex.DecodeString(hexPart)
	if err != nil {
		return a, fmt.Errorf("%w: %v", ErrMalformedInput, err)
	}
	copy(a[:], raw)

	lower := strings.ToLower(hexPart)
	upper := strings.ToUpper(hexPart)
	if hexPart != lower && hexPart != upper {
		if want := a.checksumHex(); want != hexPart {
			return EntityAddress{}, fmt.Errorf("%w: bad EIP-55 checksum (expected 0x%s)", ErrMalformedInput, want)
		}
	}

	return a, nil
}

// MustParseEntityAddress is ParseEntityAddress that panics on error.
func MustParseEntityAddress(s string) EntityAddress {
	a, err := ParseEntityAddress(s)
	if err != nil {
		panic(err)
	}
	return a
}

// Bytes returns a copy of the address bytes.
func (a EntityAddress) Bytes() []byte {
	return append([]byte(nil), a[:]...)
}

// String returns the EIP-55 checksummed form.
func (a EntityAddress) String() string {
	return "0x" + a.checksumHex()
}

func (a EntityAddress) checksumHex() string {
	hexPart := hex.EncodeToString(a[:])

	hash := sha3.NewLegacyKeccak256()
	_, _ = hash.Write([]byte(hexPart))
	sum := hash.Sum(nil)

	out := []byte(hexPart)
	for i, ch := range out {
		if ch < 'a' || ch > 'f' {
			continue
		}
		nibble := sum[i/2] >> 4
		if i%2 == 1 {
			nibble = sum[i/2] & 0x0f
		}
		if nibble >= 8 {
			out[i] = ch - 'a' + 'A'
		}
	}
	return string(out)
}

// ParseProgramID parses a base58 program id.
func ParseProgramID(s string) (solana.PublicKey, error) {
	pk, err := solana.PublicKeyFromBase58(strings.TrimSpace(s))
	if err != nil {
		return solana.PublicKey{}, fmt.Errorf("%w: program id %q: %v", ErrMalformedInput, s, err)
	}
	return pk, nil
}
