// Copyright 2026 The Meridian Authors
//
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file or at
// https://opensource.org/licenses/MIT.

package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"gitlab.com/meridianledger/meridian/config"
	"gitlab.com/meridianledger/meridian/protocol"
)

var cmdInit = &cobra.Command{
	Use:   "init",
	Short: "Write a default configuration to the working directory",
	Args:  cobra.NoArgs,
	Run:   initNode,
}

var flagInit struct {
	RootAuthority string
	MintCeiling   uint64
	Storage       string
	LogLevel      string
}

func init() {
	cmdMain.AddCommand(cmdInit)
	cmdInit.Flags().StringVar(&flagInit.RootAuthority, "root-authority", protocol.DefaultRootAuthority.String(), "Address of the registrar account")
	cmdInit.Flags().Uint64Var(&flagInit.MintCeiling, "mint-ceiling", protocol.MaxMintAmount, "Per-call mint ceiling")
	cmdInit.Flags().StringVar(&flagInit.Storage, "storage", string(config.BadgerStorage), "Storage backend, memory or badger")
	cmdInit.Flags().StringVar(&flagInit.LogLevel, "log-level", "info", "Log level")
}

func initNode(*cobra.Command, []string) {
	c := config.Default()
	c.RootAuthority = flagInit.RootAuthority
	c.MintCeiling = flagInit.MintCeiling
	c.Storage.Type = config.StorageType(flagInit.Storage)
	c.LogLevel = flagInit.LogLevel
	check(c.Validate())

	check(config.Store(flagMain.WorkDir, c))
	fmt.Printf("Wrote configuration to %s\n", flagMain.WorkDir)
}
