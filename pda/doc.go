// SPDX-License-Identifier: AGPL-3.0-or-later
// Copyright (C) 2026 aPlane Authors

// Package pda derives program-derived addresses for EVM entities hosted on a
// Solana-family ledger.
//
// Addresses are a pure function of (program id, seeds). The seeds for each
// account kind are built by a Composer; FindProgramAddress then searches for
// the canonical bump, starting at 255 and walking down until the hashed
// address falls off the ed25519 curve.
//
// The seed layouts are an on-chain contract. On-ledger program logic and
// off-ledger clients must agree on them byte for byte, for every deployed
// seed version, forever. The golden vectors in vectors_test.go guard them.
//
// Nothing in this package holds mutable state; all functions are safe for
// concurrent use.
package pda
