// Copyright 2026 The Meridian Authors
//
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file or at
// https://opensource.org/licenses/MIT.

package chain_test

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/require"
	"gitlab.com/meridianledger/meridian/internal/chain"
	"gitlab.com/meridianledger/meridian/internal/database"
	"gitlab.com/meridianledger/meridian/internal/database/keyvalue/memory"
	"gitlab.com/meridianledger/meridian/pkg/errors"
	"gitlab.com/meridianledger/meridian/protocol"
)

const mrd = protocol.Token("MRD")
const root = protocol.DefaultRootAuthority
const alice = protocol.Address("0xa11ce")
const bob = protocol.Address("0xb0b")

func newExecutor(t *testing.T) *chain.Executor {
	t.Helper()
	db := database.New(memory.New(), nil)
	return chain.NewExecutor(db, chain.Options{})
}

// register registers MRD and returns an executor ready to mint.
func register(t *testing.T) *chain.Executor {
	t.Helper()
	x := newExecutor(t)
	_, err := x.Execute(root, &protocol.RegisterCurrency{Token: mrd})
	require.NoError(t, err)
	return x
}

func mint(t *testing.T, x *chain.Executor, amount uint64) *protocol.Funds {
	t.Helper()
	r, err := x.Execute(root, &protocol.MintTokens{Token: mrd, Amount: amount})
	require.NoError(t, err)
	return r.(*protocol.MintResult).Funds
}

func createQueue(t *testing.T, x *chain.Executor, account protocol.Address) {
	t.Helper()
	_, err := x.Execute(account, &protocol.CreatePreburnQueue{Token: mrd})
	require.NoError(t, err)
}

func preburn(t *testing.T, x *chain.Executor, account protocol.Address, unit *protocol.Funds) {
	t.Helper()
	_, err := x.Execute(account, &protocol.PreburnTokens{Token: mrd, Unit: unit})
	require.NoError(t, err)
}

func TestRegisterAndMint(t *testing.T) {
	x := register(t)

	unit := mint(t, x, 100)
	require.Equal(t, uint64(100), unit.Value())

	ledger, err := x.Supply(mrd)
	require.NoError(t, err)
	require.Equal(t, big.NewInt(100), ledger.Issued)
	require.Zero(t, ledger.PreburnValue)
}

func TestRegisterRequiresRoot(t *testing.T) {
	x := newExecutor(t)
	_, err := x.Execute(alice, &protocol.RegisterCurrency{Token: mrd})
	require.True(t, errors.Is(err, errors.Unauthorized))
}

func TestRegisterTwice(t *testing.T) {
	x := register(t)
	_, err := x.Execute(root, &protocol.RegisterCurrency{Token: mrd})
	require.True(t, errors.Is(err, errors.Conflict))
}

func TestMintRequiresAuthority(t *testing.T) {
	x := register(t)
	_, err := x.Execute(alice, &protocol.MintTokens{Token: mrd, Amount: 1})
	require.True(t, errors.Is(err, errors.Unauthorized))
}

func TestMintUnregistered(t *testing.T) {
	x := newExecutor(t)
	_, err := x.Execute(root, &protocol.MintTokens{Token: mrd, Amount: 1})
	require.True(t, errors.Is(err, errors.Unauthorized))
}

func TestMintCeiling(t *testing.T) {
	x := register(t)
	_, err := x.Execute(root, &protocol.MintTokens{Token: mrd, Amount: protocol.MaxMintAmount + 1})
	require.True(t, errors.Is(err, errors.LimitExceeded))

	// The failed mint must leave the supply untouched
	ledger, err := x.Supply(mrd)
	require.NoError(t, err)
	require.Zero(t, ledger.Issued.Sign())
}

func TestPreburnAndBurn(t *testing.T) {
	x := register(t)
	createQueue(t, x, alice)

	preburn(t, x, alice, mint(t, x, 50))

	ledger, err := x.Supply(mrd)
	require.NoError(t, err)
	require.Equal(t, uint64(50), ledger.PreburnValue)
	require.Equal(t, big.NewInt(50), ledger.Issued)

	_, err = x.Execute(root, &protocol.BurnTokens{Token: mrd, Account: alice})
	require.NoError(t, err)

	ledger, err = x.Supply(mrd)
	require.NoError(t, err)
	require.Zero(t, ledger.PreburnValue)
	require.Zero(t, ledger.Issued.Sign())

	queue, err := x.Queue(alice, mrd)
	require.NoError(t, err)
	require.True(t, queue.Empty())
}

func TestCancelBurnFIFO(t *testing.T) {
	x := register(t)
	createQueue(t, x, alice)

	preburn(t, x, alice, mint(t, x, 10))
	preburn(t, x, alice, mint(t, x, 20))

	r, err := x.Execute(root, &protocol.CancelBurn{Token: mrd, Account: alice})
	require.NoError(t, err)
	unit := r.(*protocol.CancelBurnResult).Funds
	require.Equal(t, uint64(10), unit.Value())

	ledger, err := x.Supply(mrd)
	require.NoError(t, err)
	require.Equal(t, uint64(20), ledger.PreburnValue)
	require.Equal(t, big.NewInt(30), ledger.Issued)

	queue, err := x.Queue(alice, mrd)
	require.NoError(t, err)
	require.Equal(t, []uint64{20}, queue.Requests)
}

func TestBurnResolvesInArrivalOrder(t *testing.T) {
	x := register(t)
	createQueue(t, x, alice)

	for _, amount := range []uint64{7, 11, 13} {
		preburn(t, x, alice, mint(t, x, amount))
	}

	_, err := x.Execute(root, &protocol.BurnTokens{Token: mrd, Account: alice})
	require.NoError(t, err)

	queue, err := x.Queue(alice, mrd)
	require.NoError(t, err)
	require.Equal(t, []uint64{11, 13}, queue.Requests)
}

func TestBurnEmptyQueue(t *testing.T) {
	x := register(t)
	createQueue(t, x, alice)
	_, err := x.Execute(root, &protocol.BurnTokens{Token: mrd, Account: alice})
	require.True(t, errors.Is(err, errors.EmptyQueue))
}

func TestBurnMissingQueue(t *testing.T) {
	x := register(t)
	_, err := x.Execute(root, &protocol.BurnTokens{Token: mrd, Account: bob})
	require.True(t, errors.Is(err, errors.NotFound))
}

func TestPreburnWithoutQueue(t *testing.T) {
	x := register(t)
	unit := mint(t, x, 5)
	_, err := x.Execute(alice, &protocol.PreburnTokens{Token: mrd, Unit: unit})
	require.True(t, errors.Is(err, errors.NotFound))

	// The failed preburn must not consume the unit
	require.False(t, unit.Spent())
	require.Equal(t, uint64(5), unit.Value())
}

func TestConservation(t *testing.T) {
	x := register(t)
	createQueue(t, x, alice)
	createQueue(t, x, bob)

	// A mix of mints, splits, preburns, burns and cancels must leave the
	// supply equal to minted minus burned
	a := mint(t, x, 1000)
	b := mint(t, x, 500)

	rest, cut, err := a.Split(300)
	require.NoError(t, err)

	preburn(t, x, alice, cut)  // escrow 300
	preburn(t, x, bob, b)      // escrow 500
	preburn(t, x, alice, rest) // escrow 700

	_, err = x.Execute(root, &protocol.BurnTokens{Token: mrd, Account: alice}) // burn 300
	require.NoError(t, err)
	r, err := x.Execute(root, &protocol.CancelBurn{Token: mrd, Account: bob}) // release 500
	require.NoError(t, err)
	returned := r.(*protocol.CancelBurnResult).Funds
	require.Equal(t, uint64(500), returned.Value())

	ledger, err := x.Supply(mrd)
	require.NoError(t, err)
	require.Equal(t, big.NewInt(1200), ledger.Issued)
	require.Equal(t, uint64(700), ledger.PreburnValue)

	// Escrow bound: preburn_value never exceeds total
	require.True(t, new(big.Int).SetUint64(ledger.PreburnValue).Cmp(ledger.Issued) <= 0)
}

func TestQueueLifecycle(t *testing.T) {
	x := register(t)
	createQueue(t, x, alice)

	// A second queue for the same account conflicts
	_, err := x.Execute(alice, &protocol.CreatePreburnQueue{Token: mrd})
	require.True(t, errors.Is(err, errors.Conflict))

	// Remove, then publish elsewhere: a move, not a copy
	r, err := x.Execute(alice, &protocol.RemovePreburnQueue{Token: mrd})
	require.NoError(t, err)
	queue := r.(*protocol.RemovePreburnQueueResult).Queue

	_, err = x.Execute(alice, &protocol.RemovePreburnQueue{Token: mrd})
	require.True(t, errors.Is(err, errors.NotFound))

	_, err = x.Execute(bob, &protocol.PublishPreburnQueue{Token: mrd, Queue: queue})
	require.NoError(t, err)

	got, err := x.Queue(bob, mrd)
	require.NoError(t, err)
	require.Equal(t, bob, got.Account)

	_, err = x.Queue(alice, mrd)
	require.True(t, errors.Is(err, errors.NotFound))
}

func TestQueueCreateUnregistered(t *testing.T) {
	x := newExecutor(t)
	_, err := x.Execute(alice, &protocol.CreatePreburnQueue{Token: mrd})
	require.True(t, errors.Is(err, errors.NotRegistered))
}

func TestAuthorityRelocation(t *testing.T) {
	x := register(t)

	r, err := x.Execute(root, &protocol.RemoveMintAuthority{Token: mrd})
	require.NoError(t, err)
	authority := r.(*protocol.RemoveMintAuthorityResult).Authority

	// Without the authority the root can no longer mint
	_, err = x.Execute(root, &protocol.MintTokens{Token: mrd, Amount: 1})
	require.True(t, errors.Is(err, errors.Unauthorized))

	_, err = x.Execute(alice, &protocol.PublishMintAuthority{Token: mrd, Authority: authority})
	require.NoError(t, err)

	// The new holder mints and resolves burns
	r, err = x.Execute(alice, &protocol.MintTokens{Token: mrd, Amount: 7})
	require.NoError(t, err)
	require.Equal(t, uint64(7), r.(*protocol.MintResult).Funds.Value())

	// Publishing a second copy at the old holder conflicts
	_, err = x.Execute(alice, &protocol.PublishMintAuthority{Token: mrd, Authority: authority})
	require.True(t, errors.Is(err, errors.Conflict))
}

func TestAuthorityHandleSingleUse(t *testing.T) {
	x := register(t)

	r, err := x.Execute(root, &protocol.RemoveMintAuthority{Token: mrd})
	require.NoError(t, err)
	authority := r.(*protocol.RemoveMintAuthorityResult).Authority

	_, err = x.Execute(alice, &protocol.PublishMintAuthority{Token: mrd, Authority: authority})
	require.NoError(t, err)
	require.True(t, authority.Published())

	// A consumed handle cannot install the capability at a second account
	_, err = x.Execute(bob, &protocol.PublishMintAuthority{Token: mrd, Authority: authority})
	require.True(t, errors.Is(err, errors.BadRequest))

	_, err = x.Execute(bob, &protocol.MintTokens{Token: mrd, Amount: 1})
	require.True(t, errors.Is(err, errors.Unauthorized))
}

func TestQueueHandleSingleUse(t *testing.T) {
	x := register(t)
	createQueue(t, x, alice)
	preburn(t, x, alice, mint(t, x, 50))

	r, err := x.Execute(alice, &protocol.RemovePreburnQueue{Token: mrd})
	require.NoError(t, err)
	queue := r.(*protocol.RemovePreburnQueueResult).Queue

	_, err = x.Execute(alice, &protocol.PublishPreburnQueue{Token: mrd, Queue: queue})
	require.NoError(t, err)

	// A consumed handle cannot install the queue at a second account
	_, err = x.Execute(bob, &protocol.PublishPreburnQueue{Token: mrd, Queue: queue})
	require.True(t, errors.Is(err, errors.BadRequest))

	_, err = x.Queue(bob, mrd)
	require.True(t, errors.Is(err, errors.NotFound))

	// The escrow counter still matches the single stored queue
	ledger, err := x.Supply(mrd)
	require.NoError(t, err)
	require.Equal(t, uint64(50), ledger.PreburnValue)
}

func TestFailedPublishLeavesHandleLive(t *testing.T) {
	x := register(t)
	createQueue(t, x, alice)
	createQueue(t, x, bob)

	r, err := x.Execute(alice, &protocol.RemovePreburnQueue{Token: mrd})
	require.NoError(t, err)
	queue := r.(*protocol.RemovePreburnQueueResult).Queue

	// The destination is occupied, so the publish conflicts without
	// consuming or relabeling the handle
	_, err = x.Execute(bob, &protocol.PublishPreburnQueue{Token: mrd, Queue: queue})
	require.True(t, errors.Is(err, errors.Conflict))
	require.Equal(t, alice, queue.Account)
	require.False(t, queue.Published())

	_, err = x.Execute(alice, &protocol.PublishPreburnQueue{Token: mrd, Queue: queue})
	require.NoError(t, err)
}

func TestApprovalFlagIsNotEnforced(t *testing.T) {
	x := register(t)
	createQueue(t, x, alice)

	queue, err := x.Queue(alice, mrd)
	require.NoError(t, err)
	require.False(t, queue.IsApproved)

	// Preburn succeeds on an unapproved queue
	preburn(t, x, alice, mint(t, x, 5))
}

func TestZeroFunds(t *testing.T) {
	x := newExecutor(t)
	_, err := x.ZeroFunds(mrd)
	require.True(t, errors.Is(err, errors.NotRegistered))

	x = register(t)
	unit, err := x.ZeroFunds(mrd)
	require.NoError(t, err)
	require.Zero(t, unit.Value())
	require.NoError(t, unit.DestroyZero())
}

func TestIndependentAccounts(t *testing.T) {
	x := register(t)
	createQueue(t, x, alice)
	createQueue(t, x, bob)

	preburn(t, x, alice, mint(t, x, 10))
	preburn(t, x, bob, mint(t, x, 20))

	// Resolving bob leaves alice's queue untouched
	_, err := x.Execute(root, &protocol.BurnTokens{Token: mrd, Account: bob})
	require.NoError(t, err)

	queue, err := x.Queue(alice, mrd)
	require.NoError(t, err)
	require.Equal(t, []uint64{10}, queue.Requests)
}
