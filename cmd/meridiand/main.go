// Copyright 2026 The Meridian Authors
//
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file or at
// https://opensource.org/licenses/MIT.

package main

import (
	"fmt"
	"log"
	"os"
	"os/user"
	"path/filepath"

	"github.com/spf13/cobra"
	"gitlab.com/meridianledger/meridian/config"
	"gitlab.com/meridianledger/meridian/internal/chain"
	"gitlab.com/meridianledger/meridian/internal/database"
	"gitlab.com/meridianledger/meridian/internal/database/keyvalue"
	"gitlab.com/meridianledger/meridian/internal/database/keyvalue/badger"
	"gitlab.com/meridianledger/meridian/internal/database/keyvalue/memory"
	"gitlab.com/meridianledger/meridian/internal/logging"
	"gitlab.com/meridianledger/meridian/protocol"
)

var currentUser = func() *user.User {
	usr, err := user.Current()
	if err != nil {
		log.Fatal(err)
	}
	return usr
}()

var defaultWorkDir = filepath.Join(currentUser.HomeDir, ".meridian")

var cmdMain = &cobra.Command{
	Use:   "meridiand",
	Short: "Meridian currency accounting daemon tooling",
	Run:   printUsageAndExit1,
}

var flagMain struct {
	WorkDir string
}

func init() {
	cmdMain.PersistentFlags().StringVarP(&flagMain.WorkDir, "work-dir", "w", defaultWorkDir, "Working directory for configuration and data")
}

func main() {
	_ = cmdMain.Execute()
}

func printUsageAndExit1(cmd *cobra.Command, args []string) {
	_ = cmd.Usage()
	os.Exit(1)
}

func fatalf(format string, args ...interface{}) {
	fmt.Fprintf(os.Stderr, "Error: "+format+"\n", args...)
	os.Exit(1)
}

func check(err error) {
	if err != nil {
		fatalf("%v", err)
	}
}

func checkf(err error, format string, otherArgs ...interface{}) {
	if err != nil {
		fatalf(format+": %v", append(otherArgs, err)...)
	}
}

// loadExecutor loads the configuration and opens the configured store.
// Close the returned database when done.
func loadExecutor() (*chain.Executor, *database.Database) {
	c, err := config.Load(flagMain.WorkDir)
	checkf(err, "load configuration")

	logger, err := logging.New(logging.NewConsoleWriter(), c.LogLevel)
	checkf(err, "configure logging")

	var store keyvalue.Store
	switch c.Storage.Type {
	case config.MemoryStorage:
		store = memory.New()
	case config.BadgerStorage:
		store, err = badger.New(c.StoragePath(flagMain.WorkDir), logger)
		checkf(err, "open storage")
	}

	db := database.New(store, logger)
	root, err := protocol.ParseAddress(c.RootAuthority)
	checkf(err, "root authority")

	x := chain.NewExecutor(db, chain.Options{
		RootAuthority: root,
		MintCeiling:   c.MintCeiling,
		Logger:        logger,
	})
	return x, db
}

// principal resolves the --as flag, defaulting to the root authority.
func principal(x *chain.Executor, as string) protocol.Address {
	if as == "" {
		return x.RootAuthority()
	}
	addr, err := protocol.ParseAddress(as)
	checkf(err, "principal")
	return addr
}

func parseToken(s string) protocol.Token {
	token := protocol.Token(s)
	check(token.Valid())
	return token
}

func parseAddress(s string) protocol.Address {
	addr, err := protocol.ParseAddress(s)
	check(err)
	return addr
}
