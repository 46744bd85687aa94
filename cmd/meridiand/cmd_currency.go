// Copyright 2026 The Meridian Authors
//
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file or at
// https://opensource.org/licenses/MIT.

package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
	"gitlab.com/meridianledger/meridian/protocol"
)

var cmdRegister = &cobra.Command{
	Use:   "register <token>",
	Short: "Register a currency as the root authority",
	Args:  cobra.ExactArgs(1),
	Run:   registerCurrency,
}

var cmdCreateQueue = &cobra.Command{
	Use:   "create-queue <token> <account>",
	Short: "Create a preburn queue for an account",
	Args:  cobra.ExactArgs(2),
	Run:   createQueue,
}

var cmdMint = &cobra.Command{
	Use:   "mint <token> <amount> --to <account>",
	Short: "Mint tokens and escrow them in an account's preburn queue",
	Long: "Mint tokens as the authority holder and place them in the target " +
		"account's preburn queue. Minted value must land somewhere; with no " +
		"surrounding ledger attached, the preburn queue is the only place " +
		"that can hold it.",
	Args: cobra.ExactArgs(2),
	Run:  mintTokens,
}

var cmdBurn = &cobra.Command{
	Use:   "burn <token> <account>",
	Short: "Burn the oldest preburn request of an account",
	Args:  cobra.ExactArgs(2),
	Run:   burnTokens,
}

var cmdCancelBurn = &cobra.Command{
	Use:   "cancel-burn <token> <account>",
	Short: "Return the oldest preburn request of an account to its holder",
	Args:  cobra.ExactArgs(2),
	Run:   cancelBurn,
}

var flagOp struct {
	As string
	To string
}

func init() {
	cmdMain.AddCommand(cmdRegister, cmdCreateQueue, cmdMint, cmdBurn, cmdCancelBurn)
	for _, cmd := range []*cobra.Command{cmdMint, cmdBurn, cmdCancelBurn} {
		cmd.Flags().StringVar(&flagOp.As, "as", "", "Principal address (default: the root authority)")
	}
	cmdMint.Flags().StringVar(&flagOp.To, "to", "", "Account whose preburn queue receives the minted value")
	check(cmdMint.MarkFlagRequired("to"))
}

func registerCurrency(_ *cobra.Command, args []string) {
	x, db := loadExecutor()
	defer db.Close()

	_, err := x.Execute(x.RootAuthority(), &protocol.RegisterCurrency{Token: parseToken(args[0])})
	check(err)
	fmt.Printf("Registered %s\n", args[0])
}

func createQueue(_ *cobra.Command, args []string) {
	x, db := loadExecutor()
	defer db.Close()

	account := parseAddress(args[1])
	_, err := x.Execute(account, &protocol.CreatePreburnQueue{Token: parseToken(args[0])})
	check(err)
	fmt.Printf("Created preburn queue for %s\n", account)
}

func mintTokens(_ *cobra.Command, args []string) {
	x, db := loadExecutor()
	defer db.Close()

	token := parseToken(args[0])
	amount, err := strconv.ParseUint(args[1], 10, 64)
	checkf(err, "amount")
	to := parseAddress(flagOp.To)

	// Verify the escrow destination before any value exists
	_, err = x.Queue(to, token)
	checkf(err, "escrow destination")

	r, err := x.Execute(principal(x, flagOp.As), &protocol.MintTokens{Token: token, Amount: amount})
	check(err)
	unit := r.(*protocol.MintResult).Funds

	_, err = x.Execute(to, &protocol.PreburnTokens{Token: token, Unit: unit})
	checkf(err, "escrow minted value")
	fmt.Printf("Minted %s %s into the preburn queue of %s\n", args[1], token, to)
}

func burnTokens(_ *cobra.Command, args []string) {
	x, db := loadExecutor()
	defer db.Close()

	token := parseToken(args[0])
	account := parseAddress(args[1])
	_, err := x.Execute(principal(x, flagOp.As), &protocol.BurnTokens{Token: token, Account: account})
	check(err)
	fmt.Printf("Burned the oldest preburn request of %s\n", account)
}

func cancelBurn(_ *cobra.Command, args []string) {
	x, db := loadExecutor()
	defer db.Close()

	token := parseToken(args[0])
	account := parseAddress(args[1])
	r, err := x.Execute(principal(x, flagOp.As), &protocol.CancelBurn{Token: token, Account: account})
	check(err)
	unit := r.(*protocol.CancelBurnResult).Funds
	fmt.Printf("Returned a unit of %d %s to the holder\n", unit.Value(), token)
}
