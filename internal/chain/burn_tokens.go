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

type BurnTokens struct{}

func (BurnTokens) Type() protocol.OperationType { return protocol.OperationTypeBurnTokens }

// Execute destroys the oldest entry of the target account's preburn queue,
// removing its amount from circulation. Requests are resolved strictly in
// arrival order; this is the sole path by which value is permanently
// destroyed.
func (x BurnTokens) Execute(st *StateManager, op protocol.OperationBody) (protocol.OperationResult, error) {
	body, ok := op.(*protocol.BurnTokens)
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

	// Retire verifies both counters cover the amount
	err = ledger.Retire(amount)
	if err != nil {
		return nil, err
	}
	_, err = queue.BurnFront()
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

	mTokensBurned.WithLabelValues(body.Token.String()).Add(float64(amount))
	st.logger.Info("Burned tokens", "token", body.Token, "account", body.Account, "amount", amount, "issued", ledger.Issued)
	return &protocol.EmptyResult{OperationType: x.Type()}, nil
}
