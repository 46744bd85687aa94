// Copyright 2026 The Meridian Authors
//
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file or at
// https://opensource.org/licenses/MIT.

package main

import (
	"fmt"
	"math/big"

	"github.com/dustin/go-humanize"
	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

func comma(v uint64) string {
	return humanize.BigComma(new(big.Int).SetUint64(v))
}

var cmdStatus = &cobra.Command{
	Use:   "status <token> [account...]",
	Short: "Show supply counters and preburn queues",
	Args:  cobra.MinimumNArgs(1),
	Run:   showStatus,
}

func init() {
	cmdMain.AddCommand(cmdStatus)
}

func showStatus(_ *cobra.Command, args []string) {
	x, db := loadExecutor()
	defer db.Close()

	token := parseToken(args[0])
	ledger, err := x.Supply(token)
	check(err)

	heading := color.New(color.Bold)
	heading.Printf("%s supply\n", token)
	fmt.Printf("  issued   %s\n", humanize.BigComma(ledger.Issued))
	fmt.Printf("  preburn  %s\n", comma(ledger.PreburnValue))

	for _, arg := range args[1:] {
		account := parseAddress(arg)
		queue, err := x.Queue(account, token)
		check(err)

		heading.Printf("%s preburn queue\n", account)
		if queue.Empty() {
			fmt.Println("  empty")
			continue
		}
		for i, amount := range queue.Requests {
			fmt.Printf("  %d: %s\n", i, comma(amount))
		}
	}
}
