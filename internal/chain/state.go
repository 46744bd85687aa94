// Copyright 2026 The Meridian Authors
//
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file or at
// https://opensource.org/licenses/MIT.

package chain

import (
	"gitlab.com/meridianledger/meridian/internal/database"
	"gitlab.com/meridianledger/meridian/internal/logging"
	"gitlab.com/meridianledger/meridian/pkg/errors"
	"gitlab.com/meridianledger/meridian/protocol"
)

// StateManager carries one operation's context: the batch it mutates, the
// invoking principal, and the deployment policy.
type StateManager struct {
	Principal     protocol.Address
	RootAuthority protocol.Address
	MintCeiling   uint64

	batch  *database.Batch
	logger logging.Logger
}

func (st *StateManager) Batch() *database.Batch { return st.batch }

// requireMintAuthority verifies the principal holds the mint authority for
// token. Holding the record is the authorization; there is no identity
// check beyond registration.
func (st *StateManager) requireMintAuthority(token protocol.Token) error {
	ok, err := st.batch.HasMintAuthority(st.Principal, token)
	if err != nil {
		return err
	}
	if !ok {
		return errors.Unauthorized.WithFormat("%s does not hold the mint authority for %s", st.Principal, token)
	}
	return nil
}

// supplyLedger loads the currency's supply ledger from the root authority
// account.
func (st *StateManager) supplyLedger(token protocol.Token) (*protocol.SupplyLedger, error) {
	return st.batch.SupplyLedger(st.RootAuthority, token)
}

func (st *StateManager) putSupplyLedger(ledger *protocol.SupplyLedger) error {
	return st.batch.PutSupplyLedger(st.RootAuthority, ledger)
}
