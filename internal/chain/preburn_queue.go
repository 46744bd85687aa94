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

type CreatePreburnQueue struct{}

func (CreatePreburnQueue) Type() protocol.OperationType {
	return protocol.OperationTypeCreatePreburnQueue
}

// Execute publishes a fresh, unapproved queue for the principal. The
// currency must be registered first.
func (x CreatePreburnQueue) Execute(st *StateManager, op protocol.OperationBody) (protocol.OperationResult, error) {
	body, ok := op.(*protocol.CreatePreburnQueue)
	if !ok {
		return nil, errors.InternalError.WithFormat("invalid payload: want %v, got %v", x.Type(), op.Type())
	}

	registered, err := st.batch.HasSupplyLedger(st.RootAuthority, body.Token)
	if err != nil {
		return nil, err
	}
	if !registered {
		return nil, errors.NotRegistered.WithFormat("%s is not registered", body.Token)
	}

	queue := protocol.NewPreburnQueue(st.Principal, body.Token)
	err = st.batch.CreatePreburnQueue(queue)
	if err != nil {
		return nil, err
	}

	// Installing the record consumes the handle
	err = queue.Publish()
	if err != nil {
		return nil, err
	}

	st.logger.Debug("Created preburn queue", "token", body.Token, "account", st.Principal)
	return &protocol.EmptyResult{OperationType: x.Type()}, nil
}

type RemovePreburnQueue struct{}

func (RemovePreburnQueue) Type() protocol.OperationType {
	return protocol.OperationTypeRemovePreburnQueue
}

// Execute removes the principal's queue from its account and returns it.
// The queue object keeps its pending requests; destroying it requires it
// to be empty.
func (x RemovePreburnQueue) Execute(st *StateManager, op protocol.OperationBody) (protocol.OperationResult, error) {
	body, ok := op.(*protocol.RemovePreburnQueue)
	if !ok {
		return nil, errors.InternalError.WithFormat("invalid payload: want %v, got %v", x.Type(), op.Type())
	}

	queue, err := st.batch.PreburnQueue(st.Principal, body.Token)
	if errors.Is(err, errors.NotFound) {
		return nil, errors.NotFound.WithFormat("%s has no preburn queue for %s", st.Principal, body.Token)
	}
	if err != nil {
		return nil, err
	}

	err = st.batch.RemovePreburnQueue(st.Principal, body.Token)
	if err != nil {
		return nil, err
	}

	st.logger.Debug("Removed preburn queue", "token", body.Token, "account", st.Principal)
	return &protocol.RemovePreburnQueueResult{Queue: queue}, nil
}

type PublishPreburnQueue struct{}

func (PublishPreburnQueue) Type() protocol.OperationType {
	return protocol.OperationTypePublishPreburnQueue
}

// Execute relocates a removed queue into the principal's account. The
// source location lost its copy when the queue was removed, so publish and
// remove together move the queue without duplicating it.
func (x PublishPreburnQueue) Execute(st *StateManager, op protocol.OperationBody) (protocol.OperationResult, error) {
	body, ok := op.(*protocol.PublishPreburnQueue)
	if !ok {
		return nil, errors.InternalError.WithFormat("invalid payload: want %v, got %v", x.Type(), op.Type())
	}
	if body.Queue == nil {
		return nil, errors.BadRequest.With("missing queue")
	}
	if body.Queue.Token != body.Token {
		return nil, errors.BadRequest.WithFormat("queue is for %s, not %s", body.Queue.Token, body.Token)
	}

	// Creating the record relabels the handle's account, so any conflict at
	// the destination must surface before the handle is touched
	exists, err := st.batch.HasPreburnQueue(st.Principal, body.Token)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, errors.Conflict.WithFormat("%s already has a preburn queue for %s", st.Principal, body.Token)
	}

	// The destination is clear, so the handle can be consumed
	err = body.Queue.Publish()
	if err != nil {
		return nil, err
	}

	body.Queue.Account = st.Principal
	err = st.batch.CreatePreburnQueue(body.Queue)
	if err != nil {
		return nil, err
	}

	st.logger.Debug("Published preburn queue", "token", body.Token, "account", st.Principal, "pending", body.Queue.Len())
	return &protocol.EmptyResult{OperationType: x.Type()}, nil
}
