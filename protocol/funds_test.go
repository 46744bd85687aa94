// Copyright 2026 The Meridian Authors
//
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file or at
// https://opensource.org/licenses/MIT.

package protocol

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
	"gitlab.com/meridianledger/meridian/pkg/errors"
)

const mrd = Token("MRD")

func TestWithdraw(t *testing.T) {
	unit := newFunds(mrd, 100)

	got, err := unit.Withdraw(30)
	require.NoError(t, err)
	require.Equal(t, uint64(70), unit.Value())
	require.Equal(t, uint64(30), got.Value())

	// Withdrawing more than the balance must fail and leave the unit
	// untouched
	_, err = unit.Withdraw(150)
	require.True(t, errors.Is(err, errors.InsufficientFunds))
	require.Equal(t, uint64(70), unit.Value())
}

func TestSplitConsumesSource(t *testing.T) {
	unit := newFunds(mrd, 100)
	remainder, withdrawn, err := unit.Split(30)
	require.NoError(t, err)
	require.Equal(t, uint64(70), remainder.Value())
	require.Equal(t, uint64(30), withdrawn.Value())
	require.True(t, unit.Spent())

	_, _, err = unit.Split(1)
	require.True(t, errors.Is(err, errors.BadRequest))
}

func TestDeposit(t *testing.T) {
	a := newFunds(mrd, 60)
	b := newFunds(mrd, 40)
	require.NoError(t, a.Deposit(b))
	require.Equal(t, uint64(100), a.Value())
	require.True(t, b.Spent())

	// A spent unit cannot be deposited twice
	err := a.Deposit(b)
	require.True(t, errors.Is(err, errors.BadRequest))
	require.Equal(t, uint64(100), a.Value())
}

func TestDepositOverflow(t *testing.T) {
	a := newFunds(mrd, math.MaxUint64-1)
	b := newFunds(mrd, 2)
	err := a.Deposit(b)
	require.True(t, errors.Is(err, errors.Overflow))
	require.Equal(t, uint64(math.MaxUint64-1), a.Value())
	require.False(t, b.Spent())
}

func TestDepositTokenMismatch(t *testing.T) {
	a := newFunds(mrd, 1)
	b := newFunds(Token("XYZ"), 1)
	err := a.Deposit(b)
	require.True(t, errors.Is(err, errors.BadRequest))
	require.False(t, b.Spent())
}

func TestJoinSplitRoundTrip(t *testing.T) {
	a := newFunds(mrd, 25)
	b := newFunds(mrd, 75)
	av := a.Value()

	joined, err := Join(a, b)
	require.NoError(t, err)
	require.Equal(t, uint64(100), joined.Value())
	require.True(t, a.Spent())
	require.True(t, b.Spent())

	a2, b2, err := joined.Split(joined.Value() - av)
	require.NoError(t, err)
	require.Equal(t, uint64(25), a2.Value())
	require.Equal(t, uint64(75), b2.Value())
}

func TestDestroyZero(t *testing.T) {
	require.NoError(t, Zero(mrd).DestroyZero())

	unit := newFunds(mrd, 5)
	err := unit.DestroyZero()
	require.True(t, errors.Is(err, errors.NonZeroDestruction))
	require.Equal(t, uint64(5), unit.Value())

	// Draining a unit makes it destroyable
	_, err = unit.Withdraw(5)
	require.NoError(t, err)
	require.NoError(t, unit.DestroyZero())
}

func TestSelfDeposit(t *testing.T) {
	a := newFunds(mrd, 10)
	err := a.Deposit(a)
	require.True(t, errors.Is(err, errors.BadRequest))
	require.Equal(t, uint64(10), a.Value())
}
