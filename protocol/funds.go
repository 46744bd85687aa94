// Copyright 2026 The Meridian Authors
//
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file or at
// https://opensource.org/licenses/MIT.

package protocol

import (
	"math"

	"gitlab.com/meridianledger/meridian/pkg/errors"
)

// Funds is a non-duplicable unit of currency. A Funds object is created by
// SupplyLedger.Issue, Zero, Withdraw/Split, or by cancelling a burn, and is
// destroyed only by Deposit/Join (absorbed into another unit), DestroyZero,
// or burn resolution. Consuming operations mark the source spent; every
// subsequent use of a spent unit fails. There is no way to discard a
// non-zero unit outside the burn path.
type Funds struct {
	token  Token
	amount uint64
	spent  bool
}

func newFunds(token Token, amount uint64) *Funds {
	return &Funds{token: token, amount: amount}
}

// Zero returns a zero-valued unit. Zero units exist to serve as algebraic
// identities and placeholders; they carry no value and so need no issuance.
func Zero(token Token) *Funds { return newFunds(token, 0) }

// Token returns the currency type of the unit.
func (f *Funds) Token() Token { return f.token }

// Value returns the amount held by the unit.
func (f *Funds) Value() uint64 { return f.amount }

// Spent returns true if the unit has been consumed.
func (f *Funds) Spent() bool { return f.spent }

// use verifies the unit is live.
func (f *Funds) use() error {
	if f == nil {
		return errors.BadRequest.With("nil unit")
	}
	if f.spent {
		return errors.BadRequest.With("unit has already been spent")
	}
	return nil
}

// consume marks the unit spent and strips its value.
func (f *Funds) consume() uint64 {
	v := f.amount
	f.amount = 0
	f.spent = true
	return v
}

// Withdraw removes amount from the unit in place and returns a new unit
// holding exactly that amount.
func (f *Funds) Withdraw(amount uint64) (*Funds, error) {
	if err := f.use(); err != nil {
		return nil, err
	}
	if f.amount < amount {
		return nil, errors.InsufficientFunds.WithFormat("cannot withdraw %d from a unit of %d", amount, f.amount)
	}
	f.amount -= amount
	return newFunds(f.token, amount), nil
}

// Split consumes the unit and returns the remainder and the withdrawn
// amount as two new units.
func (f *Funds) Split(amount uint64) (remainder, withdrawn *Funds, err error) {
	withdrawn, err = f.Withdraw(amount)
	if err != nil {
		return nil, nil, err
	}
	remainder = newFunds(f.token, f.consume())
	return remainder, withdrawn, nil
}

// Deposit consumes other, adding its amount into the unit.
func (f *Funds) Deposit(other *Funds) error {
	if err := f.use(); err != nil {
		return err
	}
	if err := other.use(); err != nil {
		return err
	}
	if f == other {
		return errors.BadRequest.With("cannot deposit a unit into itself")
	}
	if f.token != other.token {
		return errors.BadRequest.WithFormat("cannot deposit %s into %s", other.token, f.token)
	}
	if other.amount > math.MaxUint64-f.amount {
		return errors.Overflow.WithFormat("depositing %d into %d overflows", other.amount, f.amount)
	}
	f.amount += other.consume()
	return nil
}

// Join consumes both units and returns a single unit holding their sum.
func Join(a, b *Funds) (*Funds, error) {
	err := a.Deposit(b)
	if err != nil {
		return nil, err
	}
	return newFunds(a.token, a.consume()), nil
}

// DestroyZero consumes a zero-valued unit. This is the only legal way to
// discard a unit without burning it.
func (f *Funds) DestroyZero() error {
	if err := f.use(); err != nil {
		return err
	}
	if f.amount != 0 {
		return errors.NonZeroDestruction.WithFormat("cannot destroy a unit of %d", f.amount)
	}
	f.consume()
	return nil
}
