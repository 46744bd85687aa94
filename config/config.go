// Copyright 2026 The Meridian Authors
//
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file or at
// https://opensource.org/licenses/MIT.

package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml"
	"github.com/spf13/viper"
	"gitlab.com/meridianledger/meridian/protocol"
)

const (
	configDir  = "config"
	configFile = "meridian.toml"
	dataDir    = "data"
)

type StorageType string

const (
	MemoryStorage StorageType = "memory"
	BadgerStorage StorageType = "badger"
)

type Storage struct {
	Type StorageType `toml:"type" mapstructure:"type"`
	Path string      `toml:"path" mapstructure:"path"`
}

// Config is the deployment policy of the accounting core. The root
// authority and the mint ceiling are policy values, not intrinsic to the
// algorithm, so they live here.
type Config struct {
	RootAuthority string  `toml:"root-authority" mapstructure:"root-authority"`
	MintCeiling   uint64  `toml:"mint-ceiling" mapstructure:"mint-ceiling"`
	LogLevel      string  `toml:"log-level" mapstructure:"log-level"`
	Storage       Storage `toml:"storage" mapstructure:"storage"`
}

func Default() *Config {
	return &Config{
		RootAuthority: protocol.DefaultRootAuthority.String(),
		MintCeiling:   protocol.MaxMintAmount,
		LogLevel:      "info",
		Storage:       Storage{Type: BadgerStorage, Path: dataDir},
	}
}

func (c *Config) Validate() error {
	_, err := protocol.ParseAddress(c.RootAuthority)
	if err != nil {
		return fmt.Errorf("root-authority: %v", err)
	}
	if c.MintCeiling > protocol.MaxMintAmount {
		return fmt.Errorf("mint-ceiling %d exceeds the protocol maximum %d", c.MintCeiling, protocol.MaxMintAmount)
	}
	switch c.Storage.Type {
	case MemoryStorage, BadgerStorage:
	default:
		return fmt.Errorf("unknown storage type %q", c.Storage.Type)
	}
	return nil
}

// StoragePath returns the storage path resolved against the work directory.
func (c *Config) StoragePath(dir string) string {
	if filepath.IsAbs(c.Storage.Path) {
		return c.Storage.Path
	}
	return filepath.Join(dir, c.Storage.Path)
}

func Load(dir string) (*Config, error) {
	file := filepath.Join(dir, configDir, configFile)
	v := viper.New()
	v.SetConfigFile(file)
	err := v.ReadInConfig()
	if err != nil {
		return nil, fmt.Errorf("read %s: %v", file, err)
	}

	c := new(Config)
	err = v.Unmarshal(c)
	if err != nil {
		return nil, fmt.Errorf("unmarshal %s: %v", file, err)
	}

	err = c.Validate()
	if err != nil {
		return nil, err
	}
	return c, nil
}

func Store(dir string, c *Config) error {
	err := os.MkdirAll(filepath.Join(dir, configDir), 0700)
	if err != nil {
		return err
	}

	f, err := os.Create(filepath.Join(dir, configDir, configFile))
	if err != nil {
		return err
	}
	defer f.Close()

	return toml.NewEncoder(f).Encode(c)
}
