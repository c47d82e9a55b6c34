// SPDX-License-Identifier: AGPL-3.0-or-later
// Copyright (C) 2026 aPlane Authors

package pda

import (
	"github.com/neonlabsorg/neonpda/pda/derivation"
)

// Fixed tags. Part of the address contract; never edit.
var (
	authoritySeed       = []byte("Deposit")
	tokenDelegationSeed = []byte("ContractData")
	transferAuthSeed    = []byte("AUTH")
)

// DefaultComposer builds seeds for the current deployment.
var DefaultComposer = NewComposer(derivation.CurrentSeedVersion, derivation.TreasuryPoolSeed)

// Composer builds the ordered seed sets for each account kind. A Composer is
// an immutable value; every method returns freshly allocated slices.
type Composer struct {
	version      byte
	treasuryPool string
}

// NewComposer returns a Composer for one account seed version and treasury
// pool tag. The tag must fit in a single seed.
func NewComposer(version byte, treasuryPoolSeed string) Composer {
	if len(treasuryPoolSeed) > MaxSeedLength {
		panic(&SeedError{Index: 0, Length: len(treasuryPoolSeed)})
	}
	return Composer{version: version, treasuryPool: treasuryPoolSeed}
}

// Version returns the account seed version byte.
func (c Composer) Version() byte {
	return c.version
}

// TreasuryPoolSeed returns the treasury pool tag.
func (c Composer) TreasuryPoolSeed() string {
	return c.treasuryPool
}

func (c Composer) versionSeed() []byte {
	return []byte{c.version}
}

func (c Composer) poolSeed() []byte {
	return []byte(c.treasuryPool)
}

// AuthoritySeeds returns the seeds of the fixed deposit authority account.
func AuthoritySeeds() [][]byte {
	return [][]byte{clone(authoritySeed)}
}

// BalanceAccountSeeds returns [version, address, chainID].
func (c Composer) BalanceAccountSeeds(addr EntityAddress, chainID []byte) [][]byte {
	return [][]byte{c.versionSeed(), addr.Bytes(), clone(chainID)}
}

// BalanceAccountSeedsWithBump returns [version, address, chainID, bump].
func (c Composer) BalanceAccountSeedsWithBump(addr EntityAddress, chainID []byte, bump uint8) [][]byte {
	return append(c.BalanceAccountSeeds(addr, chainID), []byte{bump})
}

// ContractAccountSeeds returns [version, address].
func (c Composer) ContractAccountSeeds(addr EntityAddress) [][]byte {
	return [][]byte{c.versionSeed(), addr.Bytes()}
}

// ContractAccountSeedsWithBump returns [version, address, bump].
func (c Composer) ContractAccountSeedsWithBump(addr EntityAddress, bump uint8) [][]byte {
	return append(c.ContractAccountSeeds(addr), []byte{bump})
}

// ContractAccountSignerSeeds wraps ContractAccountSeedsWithBump for a signed invocation.
func (c Composer) ContractAccountSignerSeeds(addr EntityAddress, bump uint8) [][][]byte {
	return [][][]byte{c.ContractAccountSeedsWithBump(addr, bump)}
}

// TokenDelegationSeeds returns [version, "ContractData", address, seed].
func (c Composer) TokenDelegationSeeds(addr EntityAddress, seed Seed32) [][]byte {
	return [][]byte{c.versionSeed(), clone(tokenDelegationSeed), addr.Bytes(), clone(seed[:])}
}

// TransferAuthoritySeeds returns [version, "AUTH", address, seed].
func (c Composer) TransferAuthoritySeeds(addr EntityAddress, seed Seed32) [][]byte {
	return [][]byte{c.versionSeed(), clone(transferAuthSeed), addr.Bytes(), clone(seed[:])}
}

// TreasurySeeds returns [pool tag, index]. No version byte: treasury pools
// are versioned through the tag.
func (c Composer) TreasurySeeds(index []byte) [][]byte {
	return [][]byte{c.poolSeed(), clone(index)}
}

// TreasurySeedsWithBump returns [pool tag, index, bump].
func (c Composer) TreasurySeedsWithBump(index []byte, bump uint8) [][]byte {
	return append(c.TreasurySeeds(index), []byte{bump})
}

// MainTreasurySeeds returns [pool tag].
func (c Composer) MainTreasurySeeds() [][]byte {
	return [][]byte{c.poolSeed()}
}

// MainTreasurySeedsWithBump returns [pool tag, bump].
func (c Composer) MainTreasurySeedsWithBump(bump uint8) [][]byte {
	return append(c.MainTreasurySeeds(), []byte{bump})
}

func clone(b []byte) []byte {
	return append([]byte(nil), b...)
}
