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

type CancelBurn struct{}

func (CancelBurn) Type() protocol.OperationType { return protocol.OperationTypeCancelBurn }

// Execute removes the oldest entry of the target account's preburn queue
// and returns it intact to the principal. The total supply is unaffected;
// only the escrow counter decreases.
func (x CancelBurn) Execute(st *StateManager, op protocol.OperationBody) (protocol.OperationResult, error) {
	body, ok := op.(*protocol.CancelBurn)
	if !ok {
		return nil, errors.InternalError.WithFormat("invalid payload: want %v, got %v", x.Type(), op.Type())
	}

	err := st.requireMintAuthority(body.Token)
	if err != nil {
		return nil, err
	}

	queue, err := st.batch.PreburnQueue(body.Account, body.Token)
	if errors.Is(err, errors.NotFound) {
		return nil, errors.NotFound.WithFormat("%s has no preburn queue for %s", body.Account, body.Token)
	}
	if err != nil {
		return nil, err
	}

	ledger, err := st.supplyLedger(body.Token)
	if err != nil {
		return nil, err
	}

	amount, err := queue.Front()
	if err != nil {
		return nil, err
	}

	err = ledger.Release(amount)
	if err != nil {
		return nil, err
	}
	funds, err := queue.ReleaseFront()
	if err != nil {
		return nil, err
	}

	err = st.putSupplyLedger(ledger)
	if err != nil {
		return nil, err
	}
	err = st.batch.PutPreburnQueue(queue)
	if err != nil {
		return nil, err
	}

	st.logger.Info("Cancelled burn", "token", body.Token, "account", body.Account, "amount", amount, "pending", queue.Len())
	return &protocol.CancelBurnResult{Funds: funds}, nil
}
