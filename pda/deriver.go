// SPDX-License-Identifier: AGPL-3.0-or-later
// Copyright (C) 2026 aPlane Authors

package pda

import (
	"fmt"

	"github.com/gagliardetto/solana-go"
)

// Kind names an account kind.
type Kind string

const (
	KindAuthority         Kind = "authority"
	KindBalance           Kind = "balance"
	KindContract          Kind = "contract"
	KindTokenDelegation   Kind = "token"
	KindTransferAuthority Kind = "transfer"
	KindTreasury          Kind = "treasury"
	KindMainTreasury      Kind = "main-treasury"
)

// Deriver derives addresses for every account kind under one program id.
type Deriver struct {
	programID solana.PublicKey
	composer  Composer
}

// NewDeriver returns a Deriver for programID using composer's seed layout.
func NewDeriver(programID solana.PublicKey, composer Composer) *Deriver {
	return &Deriver{programID: programID, composer: composer}
}

// ProgramID returns the owning program id.
func (d *Deriver) ProgramID() solana.PublicKey {
	return d.programID
}

// Composer returns the seed composer.
func (d *Deriver) Composer() Composer {
	return d.composer
}

// Authority derives the deposit authority account.
func (d *Deriver) Authority() (DerivedAddress, error) {
	return d.find(KindAuthority, AuthoritySeeds())
}

// BalanceAccount derives the balance account of addr on chainID.
func (d *Deriver) BalanceAccount(addr EntityAddress, chainID uint64) (DerivedAddress, error) {
	return d.find(KindBalance, d.composer.BalanceAccountSeeds(addr, ChainIDSeed(chainID)))
}

// ContractAccount derives the contract (storage) account of addr.
func (d *Deriver) ContractAccount(addr EntityAddress) (DerivedAddress, error) {
	return d.find(KindContract, d.composer.ContractAccountSeeds(addr))
}

// TokenDelegation derives the token-delegation account of addr for seed.
func (d *Deriver) TokenDelegation(addr EntityAddress, seed Seed32) (DerivedAddress, error) {
	return d.find(KindTokenDelegation, d.composer.TokenDelegationSeeds(addr, seed))
}

// TransferAuthority derives the transfer-authorization account of addr for seed.
func (d *Deriver) TransferAuthority(addr EntityAddress, seed Seed32) (DerivedAddress, error) {
	return d.find(KindTransferAuthority, d.composer.TransferAuthoritySeeds(addr, seed))
}

// Treasury derives the treasury pool account with the given index.
func (d *Deriver) Treasury(index uint32) (DerivedAddress, error) {
	return d.find(KindTreasury, d.composer.TreasurySeeds(TreasuryIndexSeed(index)))
}

// MainTreasury derives the main treasury account.
func (d *Deriver) MainTreasury() (DerivedAddress, error) {
	return d.find(KindMainTreasury, d.composer.MainTreasurySeeds())
}

func (d *Deriver) find(kind Kind, seeds [][]byte) (DerivedAddress, error) {
	res, err := FindProgramAddressWithSeeds(seeds, d.programID)
	if err != nil {
		return DerivedAddress{}, fmt.Errorf("derive %s account: %w", kind, err)
	}
	return res, nil
}
