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

type PreburnTokens struct{}

func (PreburnTokens) Type() protocol.OperationType { return protocol.OperationTypePreburnTokens }

// Execute moves the unit into the principal's own preburn queue. The unit
// is consumed; its amount reappears only when the burn is resolved or
// cancelled by the authority holder.
func (x PreburnTokens) Execute(st *StateManager, op protocol.OperationBody) (protocol.OperationResult, error) {
	body, ok := op.(*protocol.PreburnTokens)
	if !ok {
		return nil, errors.InternalError.WithFormat("invalid payload: want %v, got %v", x.Type(), op.Type())
	}
	if body.Unit == nil {
		return nil, errors.BadRequest.With("missing unit")
	}
	if body.Unit.Token() != body.Token {
		return nil, errors.BadRequest.WithFormat("unit is %s, not %s", body.Unit.Token(), body.Token)
	}

	queue, err := st.batch.PreburnQueue(st.Principal, body.Token)
	if errors.Is(err, errors.NotFound) {
		return nil, errors.NotFound.WithFormat("%s has no preburn queue for %s", st.Principal, body.Token)
	}
	if err != nil {
		return nil, err
	}

	ledger, err := st.supplyLedger(body.Token)
	if err != nil {
		return nil, err
	}

	amount := body.Unit.Value()
	err = ledger.Escrow(amount)
	if err != nil {
		return nil, err
	}

	// Push consumes the unit, so it must be the last fallible step
	err = queue.Push(body.Unit)
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

	mTokensPreburned.WithLabelValues(body.Token.String()).Add(float64(amount))
	st.logger.Info("Preburned tokens", "token", body.Token, "account", st.Principal, "amount", amount, "pending", queue.Len())
	return &protocol.EmptyResult{OperationType: x.Type()}, nil
}
