// SPDX-License-Identifier: AGPL-3.0-or-later
// Copyright (C) 2026 aPlane Authors

package util

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/neonlabsorg/neonpda/pda"
	"github.com/neonlabsorg/neonpda/pda/derivation"
)

// DefaultProgramID is the mainnet EVM loader program.
const DefaultProgramID = "NeonVMyRX5GbCrsAHnUwx1nYYoJAtskU1bWUo6JGNyG"

// DefaultChainID is the mainnet chain id used for balance accounts.
const DefaultChainID = 245022934

// Config holds pdaderive configuration settings
type Config struct {
	ProgramID        string `yaml:"program_id" description:"Owning program id (base58)" default:"NeonVMyRX5GbCrsAHnUwx1nYYoJAtskU1bWUo6JGNyG"`
	SeedVersion      int    `yaml:"seed_version" description:"Account seed version byte prefixed to account seeds" default:"3"`
	TreasuryPoolSeed string `yaml:"treasury_pool_seed" description:"Tag leading treasury pool seeds" default:"treasury_pool"`
	ChainID          uint64 `yaml:"chain_id" description:"Default chain id for balance accounts" default:"245022934"`
	Color            bool   `yaml:"color" description:"Colour derived addresses when stdout is a terminal" default:"true"`
}

// DefaultConfig returns the default configuration for runtime use.
func DefaultConfig() Config {
	return Config{
		ProgramID:        DefaultProgramID,
		SeedVersion:      int(derivation.CurrentSeedVersion),
		TreasuryPoolSeed: derivation.TreasuryPoolSeed,
		ChainID:          DefaultChainID,
		Color:            true,
	}
}

// GetDataDir returns the pdaderive data directory.
// Resolution order: -d flag > PDADERIVE_DATA env var > ~/.pdaderive
func GetDataDir(flagValue string) string {
	if flagValue != "" {
		return flagValue
	}
	if envDir := os.Getenv("PDADERIVE_DATA"); envDir != "" {
		return envDir
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".pdaderive")
}

// GetConfigPath returns the path to the config file in the data directory.
// Returns empty string if dataDir is empty.
func GetConfigPath(dataDir string) string {
	if dataDir == "" {
		return ""
	}
	return filepath.Join(dataDir, "config.yaml")
}

// LoadConfigFromPath loads configuration from the specified path.
// If path is empty or the file doesn't exist, returns default config.
func LoadConfigFromPath(path string) (Config, error) {
	if path == "" {
		return DefaultConfig(), nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return DefaultConfig(), nil
		}
		return Config{}, fmt.Errorf("failed to read config file: %w", err)
	}

	// Start with defaults, then overlay config file values
	config := DefaultConfig()
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&config); err != nil && !errors.Is(err, io.EOF) {
		return Config{}, fmt.Errorf("failed to parse config file: %w", err)
	}

	if err := config.Validate(); err != nil {
		return Config{}, err
	}
	return config, nil
}

// Validate checks that the configuration can build a Deriver.
func (c Config) Validate() error {
	if _, err := pda.ParseProgramID(c.ProgramID); err != nil {
		return fmt.Errorf("invalid program_id in config: %w", err)
	}
	if c.SeedVersion < 0 || c.SeedVersion > 255 || !derivation.IsSupported(byte(c.SeedVersion)) {
		return fmt.Errorf("unsupported seed_version %d (supported: %v)", c.SeedVersion, derivation.SupportedSeedVersions())
	}
	if c.TreasuryPoolSeed == "" {
		return fmt.Errorf("treasury_pool_seed must not be empty")
	}
	if len(c.TreasuryPoolSeed) > pda.MaxSeedLength {
		return fmt.Errorf("treasury_pool_seed is %d bytes, max %d", len(c.TreasuryPoolSeed), pda.MaxSeedLength)
	}
	return nil
}

// Deriver builds the Deriver described by the configuration.
// The result is fixed for the life of the process.
func (c Config) Deriver() (*pda.Deriver, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}
	programID, err := pda.ParseProgramID(c.ProgramID)
	if err != nil {
		return nil, err
	}
	return pda.NewDeriver(programID, pda.NewComposer(byte(c.SeedVersion), c.TreasuryPoolSeed)), nil
}
