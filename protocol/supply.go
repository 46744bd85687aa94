// Copyright 2026 The Meridian Authors
//
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file or at
// https://opensource.org/licenses/MIT.

package protocol

import (
	"math"
	"math/big"

	"gitlab.com/meridianledger/meridian/pkg/errors"
)

// SupplyLedger tracks the global counters of one currency: the total value
// in existence and the value held in preburn escrow. PreburnValue never
// exceeds Issued. There is exactly one ledger per currency, owned by the
// root authority.
type SupplyLedger struct {
	Token        Token
	Issued       *big.Int
	PreburnValue uint64
}

func NewSupplyLedger(token Token) *SupplyLedger {
	return &SupplyLedger{Token: token, Issued: new(big.Int)}
}

// Issue adds amount to the total supply and returns a new unit holding it.
// Issue is the only creation path for non-zero value other than splitting
// an existing unit.
func (s *SupplyLedger) Issue(amount uint64) (*Funds, error) {
	sum := new(big.Int).Add(s.Issued, new(big.Int).SetUint64(amount))
	if sum.Cmp(maxIssued) > 0 {
		return nil, errors.Overflow.WithFormat("issuing %d overflows the supply counter", amount)
	}
	s.Issued = sum
	return newFunds(s.Token, amount), nil
}

// Escrow records amount as pending destruction.
func (s *SupplyLedger) Escrow(amount uint64) error {
	if amount > math.MaxUint64-s.PreburnValue {
		return errors.Overflow.WithFormat("escrowing %d overflows the preburn counter", amount)
	}
	s.PreburnValue += amount
	return nil
}

// Retire removes amount from escrow and from the total supply. It fails
// with an internal error if either counter cannot cover the amount, which
// indicates corrupted state.
func (s *SupplyLedger) Retire(amount uint64) error {
	if s.PreburnValue < amount {
		return errors.InternalError.WithFormat("preburn counter %d does not cover burn of %d", s.PreburnValue, amount)
	}
	amt := new(big.Int).SetUint64(amount)
	if s.Issued.Cmp(amt) < 0 {
		return errors.InternalError.WithFormat("supply counter %v does not cover burn of %d", s.Issued, amount)
	}
	s.PreburnValue -= amount
	s.Issued = new(big.Int).Sub(s.Issued, amt)
	return nil
}

// Release removes amount from escrow without touching the total supply,
// for a cancelled burn.
func (s *SupplyLedger) Release(amount uint64) error {
	if s.PreburnValue < amount {
		return errors.InternalError.WithFormat("preburn counter %d does not cover release of %d", s.PreburnValue, amount)
	}
	s.PreburnValue -= amount
	return nil
}
