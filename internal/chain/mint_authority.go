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

type PublishMintAuthority struct{}

func (PublishMintAuthority) Type() protocol.OperationType {
	return protocol.OperationTypePublishMintAuthority
}

// Execute relocates a removed mint authority into the principal's account.
func (x PublishMintAuthority) Execute(st *StateManager, op protocol.OperationBody) (protocol.OperationResult, error) {
	body, ok := op.(*protocol.PublishMintAuthority)
	if !ok {
		return nil, errors.InternalError.WithFormat("invalid payload: want %v, got %v", x.Type(), op.Type())
	}
	if body.Authority == nil {
		return nil, errors.BadRequest.With("missing authority")
	}
	if body.Authority.Token != body.Token {
		return nil, errors.BadRequest.WithFormat("authority is for %s, not %s", body.Authority.Token, body.Token)
	}

	err := st.batch.CreateMintAuthority(st.Principal, body.Authority)
	if err != nil {
		return nil, err
	}

	// Publish consumes the handle, so it must be the last fallible step
	err = body.Authority.Publish()
	if err != nil {
		return nil, err
	}

	st.logger.Info("Published mint authority", "token", body.Token, "account", st.Principal)
	return &protocol.EmptyResult{OperationType: x.Type()}, nil
}

type RemoveMintAuthority struct{}

func (RemoveMintAuthority) Type() protocol.OperationType {
	return protocol.OperationTypeRemoveMintAuthority
}

// Execute removes the mint authority from the principal's account and
// returns it.
func (x RemoveMintAuthority) Execute(st *StateManager, op protocol.OperationBody) (protocol.OperationResult, error) {
	body, ok := op.(*protocol.RemoveMintAuthority)
	if !ok {
		return nil, errors.InternalError.WithFormat("invalid payload: want %v, got %v", x.Type(), op.Type())
	}

	authority, err := st.batch.MintAuthority(st.Principal, body.Token)
	if errors.Is(err, errors.NotFound) {
		return nil, errors.NotFound.WithFormat("%s does not hold the mint authority for %s", st.Principal, body.Token)
	}
	if err != nil {
		return nil, err
	}

	err = st.batch.RemoveMintAuthority(st.Principal, body.Token)
	if err != nil {
		return nil, err
	}

	st.logger.Info("Removed mint authority", "token", body.Token, "account", st.Principal)
	return &protocol.RemoveMintAuthorityResult{Authority: authority}, nil
}
