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

type RegisterCurrency struct{}

func (RegisterCurrency) Type() protocol.OperationType { return protocol.OperationTypeRegisterCurrency }

// Execute publishes a fresh mint authority and a zeroed supply ledger at
// the root authority address. This is the only place a mint authority is
// originally created, and it happens once per currency.
func (x RegisterCurrency) Execute(st *StateManager, op protocol.OperationBody) (protocol.OperationResult, error) {
	body, ok := op.(*protocol.RegisterCurrency)
	if !ok {
		return nil, errors.InternalError.WithFormat("invalid payload: want %v, got %v", x.Type(), op.Type())
	}

	if st.Principal != st.RootAuthority {
		return nil, errors.Unauthorized.WithFormat("%s is not the root authority", st.Principal)
	}

	err := st.batch.CreateMintAuthority(st.RootAuthority, protocol.NewMintAuthority(body.Token))
	if err != nil {
		return nil, errors.UnknownError.WithFormat("register %s: %w", body.Token, err)
	}

	err = st.batch.CreateSupplyLedger(st.RootAuthority, protocol.NewSupplyLedger(body.Token))
	if err != nil {
		return nil, errors.UnknownError.WithFormat("register %s: %w", body.Token, err)
	}

	st.logger.Info("Registered currency", "token", body.Token)
	return &protocol.EmptyResult{OperationType: x.Type()}, nil
}
