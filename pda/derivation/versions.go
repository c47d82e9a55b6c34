// SPDX-License-Identifier: AGPL-3.0-or-later
// Copyright (C) 2026 aPlane Authors

// Package derivation pins the seed versions used for program-derived addresses.
//
// Every account seed set starts with the account seed version byte. Changing it
// moves every balance, contract, token-delegation and transfer-authorization
// account to a new address, so a version is never edited once deployed; a new
// one is added instead.
//
// Version History:
//   - 3: current mainnet/devnet deployment
//
// Treasury pools are addressed in their own namespace and do not carry the
// account seed version.
package derivation

// CurrentSeedVersion is the account seed version used for new derivations.
const CurrentSeedVersion byte = 3

// TreasuryPoolSeed is the fixed tag leading every treasury pool seed set.
const TreasuryPoolSeed = "treasury_pool"

// SupportedSeedVersions returns all account seed versions this build can derive.
func SupportedSeedVersions() []byte {
	return []byte{3}
}

// IsSupported reports whether v is a known account seed version.
func IsSupported(v byte) bool {
	for _, s := range SupportedSeedVersions() {
		if s == v {
			return true
		}
	}
	return false
}
