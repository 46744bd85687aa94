// Copyright 2026 The Meridian Authors
//
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file or at
// https://opensource.org/licenses/MIT.

// Package chain implements the operation layer of the accounting core:
// registration, minting, the preburn/burn protocol, and the lifecycle of
// queues and mint authorities. Every operation executes atomically against
// a database batch and commits only on success.
package chain

import (
	"github.com/sasha-s/go-deadlock"
	"gitlab.com/meridianledger/meridian/internal/database"
	"gitlab.com/meridianledger/meridian/internal/logging"
	"gitlab.com/meridianledger/meridian/pkg/errors"
	"gitlab.com/meridianledger/meridian/protocol"
)

// OperationExecutor executes one type of operation.
type OperationExecutor interface {
	Type() protocol.OperationType
	Execute(st *StateManager, body protocol.OperationBody) (protocol.OperationResult, error)
}

// Options configures an Executor. RootAuthority and MintCeiling are
// deployment policy; zero values fall back to the protocol defaults.
type Options struct {
	RootAuthority protocol.Address
	MintCeiling   uint64
	Logger        logging.Logger
}

// Executor dispatches operations to their executors, serializing all
// operations of one currency behind a per-token lock.
type Executor struct {
	db            *database.Database
	logger        logging.Logger
	rootAuthority protocol.Address
	mintCeiling   uint64
	executors     map[protocol.OperationType]OperationExecutor

	mu    deadlock.Mutex
	locks map[protocol.Token]*deadlock.Mutex
}

func NewExecutor(db *database.Database, opts Options) *Executor {
	x := new(Executor)
	x.db = db
	x.rootAuthority = opts.RootAuthority
	if x.rootAuthority == "" {
		x.rootAuthority = protocol.DefaultRootAuthority
	}
	x.mintCeiling = opts.MintCeiling
	if x.mintCeiling == 0 || x.mintCeiling > protocol.MaxMintAmount {
		x.mintCeiling = protocol.MaxMintAmount
	}
	x.logger = opts.Logger
	if x.logger == nil {
		x.logger = logging.NullLogger{}
	}
	x.logger = x.logger.With("module", "executor")
	x.locks = map[protocol.Token]*deadlock.Mutex{}

	x.executors = map[protocol.OperationType]OperationExecutor{}
	for _, op := range []OperationExecutor{
		RegisterCurrency{},
		MintTokens{},
		PreburnTokens{},
		BurnTokens{},
		CancelBurn{},
		CreatePreburnQueue{},
		RemovePreburnQueue{},
		PublishPreburnQueue{},
		PublishMintAuthority{},
		RemoveMintAuthority{},
	} {
		x.executors[op.Type()] = op
	}
	return x
}

// Execute runs one operation as principal. The operation either fully
// commits its state changes or commits none.
func (x *Executor) Execute(principal protocol.Address, body protocol.OperationBody) (protocol.OperationResult, error) {
	if body == nil {
		return nil, errors.BadRequest.With("missing operation body")
	}
	if err := principal.Valid(); err != nil {
		return nil, err
	}

	exec, ok := x.executors[body.Type()]
	if !ok {
		return nil, errors.BadRequest.WithFormat("unsupported operation %v", body.Type())
	}

	token := tokenOf(body)
	if err := token.Valid(); err != nil {
		return nil, err
	}

	lock := x.tokenLock(token)
	lock.Lock()
	defer lock.Unlock()

	batch := x.db.Begin()
	defer batch.Discard()

	st := &StateManager{
		batch:         batch,
		Principal:     principal,
		RootAuthority: x.rootAuthority,
		MintCeiling:   x.mintCeiling,
		logger:        x.logger,
	}

	result, err := exec.Execute(st, body)
	if err != nil {
		mOperations.WithLabelValues(body.Type().String(), "failed").Inc()
		x.logger.Debug("Operation failed", "type", body.Type(), "principal", principal, "token", token, "error", err)
		return nil, err
	}

	err = batch.Commit()
	if err != nil {
		mOperations.WithLabelValues(body.Type().String(), "failed").Inc()
		return nil, errors.UnknownError.WithFormat("commit: %w", err)
	}

	mOperations.WithLabelValues(body.Type().String(), "executed").Inc()
	return result, nil
}

// ZeroFunds returns a zero-valued unit of a registered currency.
func (x *Executor) ZeroFunds(token protocol.Token) (*protocol.Funds, error) {
	if err := token.Valid(); err != nil {
		return nil, err
	}

	batch := x.db.Begin()
	defer batch.Discard()

	ok, err := batch.HasSupplyLedger(x.rootAuthority, token)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, errors.NotRegistered.WithFormat("%s is not registered", token)
	}
	return protocol.Zero(token), nil
}

// Supply returns a read-only copy of the currency's supply ledger.
func (x *Executor) Supply(token protocol.Token) (*protocol.SupplyLedger, error) {
	batch := x.db.Begin()
	defer batch.Discard()
	return batch.SupplyLedger(x.rootAuthority, token)
}

// Queue returns a read-only copy of an account's preburn queue.
func (x *Executor) Queue(account protocol.Address, token protocol.Token) (*protocol.PreburnQueue, error) {
	batch := x.db.Begin()
	defer batch.Discard()
	return batch.PreburnQueue(account, token)
}

// RootAuthority returns the configured registrar address.
func (x *Executor) RootAuthority() protocol.Address { return x.rootAuthority }

func (x *Executor) tokenLock(token protocol.Token) *deadlock.Mutex {
	x.mu.Lock()
	defer x.mu.Unlock()
	lock, ok := x.locks[token]
	if !ok {
		lock = new(deadlock.Mutex)
		x.locks[token] = lock
	}
	return lock
}

func tokenOf(body protocol.OperationBody) protocol.Token {
	switch body := body.(type) {
	case *protocol.RegisterCurrency:
		return body.Token
	case *protocol.MintTokens:
		return body.Token
	case *protocol.PreburnTokens:
		return body.Token
	case *protocol.BurnTokens:
		return body.Token
	case *protocol.CancelBurn:
		return body.Token
	case *protocol.CreatePreburnQueue:
		return body.Token
	case *protocol.RemovePreburnQueue:
		return body.Token
	case *protocol.PublishPreburnQueue:
		return body.Token
	case *protocol.PublishMintAuthority:
		return body.Token
	case *protocol.RemoveMintAuthority:
		return body.Token
	default:
		return ""
	}
}
