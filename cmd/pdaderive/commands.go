// SPDX-License-Identifier: AGPL-3.0-or-later
// Copyright (C) 2026 aPlane Authors

package main

import (
	"encoding/hex"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/neonlabsorg/neonpda/internal/command"
	"github.com/neonlabsorg/neonpda/internal/util"
	"github.com/neonlabsorg/neonpda/internal/version"
	"github.com/neonlabsorg/neonpda/pda"
)

// derivedOutput is the JSON form of a derivation.
type derivedOutput struct {
	Kind      pda.Kind `json:"kind"`
	ProgramID string   `json:"program_id"`
	Address   string   `json:"address"`
	Bump      uint8    `json:"bump"`
	Seeds     []string `json:"seeds"`
}

func newRegistry() *command.Registry {
	r := command.NewRegistry()

	cmds := []*command.Command{
		{
			Name:        "authority",
			Aliases:     []string{"deposit"},
			Usage:       "authority",
			Description: "Derive the deposit authority account",
			Category:    command.CategoryAccounts,
			Handler:     command.NewInternalHandler(cmdAuthority),
		},
		{
			Name:        "contract",
			Aliases:     []string{"storage"},
			Usage:       "contract <address>",
			Description: "Derive the contract/storage account of an EVM address",
			Category:    command.CategoryAccounts,
			Handler:     command.NewInternalHandler(cmdContract),
		},
		{
			Name:        "balance",
			Usage:       "balance <address> [chain-id]",
			Description: "Derive the balance account of an EVM address on a chain",
			LongHelp:    "The chain id defaults to chain_id from config.yaml. It is encoded\nas a 32-byte big-endian word.",
			Category:    command.CategoryAccounts,
			Handler:     command.NewInternalHandler(cmdBalance),
		},
		{
			Name:        "token",
			Usage:       "token <address> <seed>",
			Description: "Derive a token-delegation account",
			LongHelp:    "seed is up to 32 bytes of hex, left-padded with zeros.\nAn EVM address may be given directly.",
			Category:    command.CategoryAccounts,
			Handler:     command.NewInternalHandler(cmdToken),
		},
		{
			Name:        "transfer",
			Aliases:     []string{"auth"},
			Usage:       "transfer <address> <seed>",
			Description: "Derive a transfer-authorization account",
			LongHelp:    "seed is up to 32 bytes of hex, left-padded with zeros.",
			Category:    command.CategoryAccounts,
			Handler:     command.NewInternalHandler(cmdTransfer),
		},
		{
			Name:        "treasury",
			Usage:       "treasury <index>",
			Description: "Derive a treasury pool account",
			Category:    command.CategoryTreasury,
			Handler:     command.NewInternalHandler(cmdTreasury),
		},
		{
			Name:        "main-treasury",
			Usage:       "main-treasury",
			Description: "Derive the main treasury account",
			Category:    command.CategoryTreasury,
			Handler:     command.NewInternalHandler(cmdMainTreasury),
		},
		{
			Name:        "version",
			Usage:       "version",
			Description: "Show build and seed version",
			Category:    command.CategoryInfo,
			Handler: command.NewInternalHandler(func(args []string, ctx *command.Context) error {
				_, err := fmt.Fprintf(ctx.Writer(), "pdaderive %s\n", version.String())
				return err
			}),
		},
	}

	help := &command.Command{
		Name:        "help",
		Aliases:     []string{"h", "?"},
		Usage:       "help [command]",
		Description: "Show available commands",
		Category:    command.CategoryInfo,
	}
	help.Handler = command.NewInternalHandler(func(args []string, ctx *command.Context) error {
		if len(args) > 0 {
			cmd, ok := r.Lookup(args[0])
			if !ok {
				return fmt.Errorf("unknown command %q", args[0])
			}
			command.ShowCommandHelp(ctx.Writer(), cmd)
			return nil
		}
		command.ShowHelp(ctx.Writer(), r, ctx.Deriver.ProgramID().String())
		return nil
	})
	cmds = append(cmds, help)

	for _, c := range cmds {
		if err := r.Register(c); err != nil {
			panic(err)
		}
	}
	return r
}

func expectArgs(args []string, min, max int, usage string) error {
	if len(args) < min || len(args) > max {
		return fmt.Errorf("usage: %s", usage)
	}
	return nil
}

func cmdAuthority(args []string, ctx *command.Context) error {
	if err := expectArgs(args, 0, 0, "authority"); err != nil {
		return err
	}
	res, err := ctx.Deriver.Authority()
	return emit(ctx, pda.KindAuthority, res, err)
}

func cmdContract(args []string, ctx *command.Context) error {
	if err := expectArgs(args, 1, 1, "contract <address>"); err != nil {
		return err
	}
	addr, err := pda.ParseEntityAddress(args[0])
	if err != nil {
		return err
	}
	res, err := ctx.Deriver.ContractAccount(addr)
	return emit(ctx, pda.KindContract, res, err)
}

func cmdBalance(args []string, ctx *command.Context) error {
	if err := expectArgs(args, 1, 2, "balance <address> [chain-id]"); err != nil {
		return err
	}
	addr, err := pda.ParseEntityAddress(args[0])
	if err != nil {
		return err
	}
	chainID := ctx.ChainID
	if len(args) == 2 {
		chainID, err = strconv.ParseUint(args[1], 0, 64)
		if err != nil {
			return fmt.Errorf("%w: chain id %q: %v", pda.ErrMalformedInput, args[1], err)
		}
	}
	res, err := ctx.Deriver.BalanceAccount(addr, chainID)
	return emit(ctx, pda.KindBalance, res, err)
}

func parseAddressAndSeed(args []string, usage string) (pda.EntityAddress, pda.Seed32, error) {
	if err := expectArgs(args, 2, 2, usage); err != nil {
		return pda.EntityAddress{}, pda.Seed32{}, err
	}
	addr, err := pda.ParseEntityAddress(args[0])
	if err != nil {
		return pda.EntityAddress{}, pda.Seed32{}, err
	}
	seed, err := pda.ParseSeed32(args[1])
	if err != nil {
		return pda.EntityAddress{}, pda.Seed32{}, err
	}
	return addr, seed, nil
}

func cmdToken(args []string, ctx *command.Context) error {
	addr, seed, err := parseAddressAndSeed(args, "token <address> <seed>")
	if err != nil {
		return err
	}
	res, err := ctx.Deriver.TokenDelegation(addr, seed)
	return emit(ctx, pda.KindTokenDelegation, res, err)
}

func cmdTransfer(args []string, ctx *command.Context) error {
	addr, seed, err := parseAddressAndSeed(args, "transfer <address> <seed>")
	if err != nil {
		return err
	}
	res, err := ctx.Deriver.TransferAuthority(addr, seed)
	return emit(ctx, pda.KindTransferAuthority, res, err)
}

func cmdTreasury(args []string, ctx *command.Context) error {
	if err := expectArgs(args, 1, 1, "treasury <index>"); err != nil {
		return err
	}
	index, err := strconv.ParseUint(args[0], 0, 32)
	if err != nil {
		return fmt.Errorf("%w: treasury index %q: %v", pda.ErrMalformedInput, args[0], err)
	}
	res, err := ctx.Deriver.Treasury(uint32(index))
	return emit(ctx, pda.KindTreasury, res, err)
}

func cmdMainTreasury(args []string, ctx *command.Context) error {
	if err := expectArgs(args, 0, 0, "main-treasury"); err != nil {
		return err
	}
	res, err := ctx.Deriver.MainTreasury()
	return emit(ctx, pda.KindMainTreasury, res, err)
}

func emit(ctx *command.Context, kind pda.Kind, res pda.DerivedAddress, err error) error {
	if err != nil {
		return err
	}

	seeds := make([]string, len(res.Seeds))
	for i, s := range res.Seeds {
		seeds[i] = hex.EncodeToString(s)
	}
	util.Debug("derived address", "kind", kind, "address", res.Address.String(), "bump", res.Bump, "seeds", strings.Join(seeds, ","))

	w := ctx.Writer()
	if ctx.JSON {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(derivedOutput{
			Kind:      kind,
			ProgramID: ctx.Deriver.ProgramID().String(),
			Address:   res.Address.String(),
			Bump:      res.Bump,
			Seeds:     seeds,
		})
	}

	_, err = fmt.Fprintf(w, "%-8s %s\n%-8s %s\n%-8s %s\n%-8s %s\n",
		"kind:", kind,
		"address:", util.Colorize(res.Address.String(), util.ColorAddress, ctx.Color),
		"bump:", util.Colorize(strconv.Itoa(int(res.Bump)), util.ColorBump, ctx.Color),
		"seeds:", strings.Join(seeds, " "))
	return err
}
