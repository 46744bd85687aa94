// Copyright 2026 The Meridian Authors
//
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file or at
// https://opensource.org/licenses/MIT.

package chain

import (
	"gitlab.com/meridianledger/meridian/pkg/errors"
	"gitlab.com/meridianledger/meridian/protocol"
)

type MintTokens struct{}

func (MintTokens) Type() protocol.OperationType { return protocol.OperationTypeMintTokens }

func (x MintTokens) Execute(st *StateManager, op protocol.OperationBody) (protocol.OperationResult, error) {
	body, ok := op.(*protocol.MintTokens)
	if !ok {
		return nil, errors.InternalError.WithFormat("invalid payload: want %v, got %v", x.Type(), op.Type())
	}

	err := st.requireMintAuthority(body.Token)
	if err != nil {
		return nil, err
	}

	if body.Amount > st.MintCeiling {
		return nil, errors.LimitExceeded.WithFormat("cannot mint %d, the ceiling is %d", body.Amount, st.MintCeiling)
	}

	ledger, err := st.supplyLedger(body.Token)
	if err != nil {
		return nil, err
	}

	funds, err := ledger.Issue(body.Amount)
	if err != nil {
		return nil, err
	}

	err = st.putSupplyLedger(ledger)
	if err != nil {
		return nil, err
	}

	mTokensMinted.WithLabelValues(body.Token.String()).Add(float64(body.Amount))
	st.logger.Info("Minted tokens", "token", body.Token, "amount", body.Amount, "issued", ledger.Issued)
	return &protocol.MintResult{Funds: funds}, nil
}
