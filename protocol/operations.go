// Copyright 2026 The Meridian Authors
//
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file or at
// https://opensource.org/licenses/MIT.

package protocol

// OperationType identifies an operation of the accounting core.
type OperationType uint64

const (
	OperationTypeUnknown OperationType = iota
	OperationTypeRegisterCurrency
	OperationTypeMintTokens
	OperationTypePreburnTokens
	OperationTypeBurnTokens
	OperationTypeCancelBurn
	OperationTypeCreatePreburnQueue
	OperationTypeRemovePreburnQueue
	OperationTypePublishPreburnQueue
	OperationTypePublishMintAuthority
	OperationTypeRemoveMintAuthority
)

func (t OperationType) String() string {
	switch t {
	case OperationTypeRegisterCurrency:
		return "register-currency"
	case OperationTypeMintTokens:
		return "mint-tokens"
	case OperationTypePreburnTokens:
		return "preburn-tokens"
	case OperationTypeBurnTokens:
		return "burn-tokens"
	case OperationTypeCancelBurn:
		return "cancel-burn"
	case OperationTypeCreatePreburnQueue:
		return "create-preburn-queue"
	case OperationTypeRemovePreburnQueue:
		return "remove-preburn-queue"
	case OperationTypePublishPreburnQueue:
		return "publish-preburn-queue"
	case OperationTypePublishMintAuthority:
		return "publish-mint-authority"
	case OperationTypeRemoveMintAuthority:
		return "remove-mint-authority"
	default:
		return "unknown"
	}
}

// OperationBody is the payload of an operation.
type OperationBody interface {
	Type() OperationType
}

// OperationResult is the value returned by a successful operation.
type OperationResult interface {
	Type() OperationType
}

// RegisterCurrency publishes a fresh mint authority and a zeroed supply
// ledger for Token at the root authority address. Root authority only.
type RegisterCurrency struct {
	Token Token
}

// MintTokens creates Amount new units of Token. The principal must hold
// the mint authority.
type MintTokens struct {
	Token  Token
	Amount uint64
}

// PreburnTokens moves Unit into the principal's own preburn queue.
type PreburnTokens struct {
	Token Token
	Unit  *Funds
}

// BurnTokens destroys the oldest entry of Account's preburn queue. The
// principal must hold the mint authority.
type BurnTokens struct {
	Token   Token
	Account Address
}

// CancelBurn returns the oldest entry of Account's preburn queue to the
// principal intact. The principal must hold the mint authority.
type CancelBurn struct {
	Token   Token
	Account Address
}

// CreatePreburnQueue publishes a fresh empty queue for the principal.
type CreatePreburnQueue struct {
	Token Token
}

// RemovePreburnQueue removes the principal's queue from its account and
// returns it. The queue must be empty to be destroyed afterwards.
type RemovePreburnQueue struct {
	Token Token
}

// PublishPreburnQueue relocates a removed queue into the principal's
// account.
type PublishPreburnQueue struct {
	Token Token
	Queue *PreburnQueue
}

// PublishMintAuthority relocates a removed mint authority into the
// principal's account.
type PublishMintAuthority struct {
	Token     Token
	Authority *MintAuthority
}

// RemoveMintAuthority removes the mint authority from the principal's
// account and returns it.
type RemoveMintAuthority struct {
	Token Token
}

func (RegisterCurrency) Type() OperationType     { return OperationTypeRegisterCurrency }
func (MintTokens) Type() OperationType           { return OperationTypeMintTokens }
func (PreburnTokens) Type() OperationType        { return OperationTypePreburnTokens }
func (BurnTokens) Type() OperationType           { return OperationTypeBurnTokens }
func (CancelBurn) Type() OperationType           { return OperationTypeCancelBurn }
func (CreatePreburnQueue) Type() OperationType   { return OperationTypeCreatePreburnQueue }
func (RemovePreburnQueue) Type() OperationType   { return OperationTypeRemovePreburnQueue }
func (PublishPreburnQueue) Type() OperationType  { return OperationTypePublishPreburnQueue }
func (PublishMintAuthority) Type() OperationType { return OperationTypePublishMintAuthority }
func (RemoveMintAuthority) Type() OperationType  { return OperationTypeRemoveMintAuthority }

// EmptyResult is returned by operations that produce no value.
type EmptyResult struct {
	OperationType OperationType
}

func (r *EmptyResult) Type() OperationType { return r.OperationType }

// MintResult carries the freshly minted unit.
type MintResult struct {
	Funds *Funds
}

func (*MintResult) Type() OperationType { return OperationTypeMintTokens }

// CancelBurnResult carries the returned unit of a cancelled burn.
type CancelBurnResult struct {
	Funds *Funds
}

func (*CancelBurnResult) Type() OperationType { return OperationTypeCancelBurn }

// RemovePreburnQueueResult carries the removed queue.
type RemovePreburnQueueResult struct {
	Queue *PreburnQueue
}

func (*RemovePreburnQueueResult) Type() OperationType { return OperationTypeRemovePreburnQueue }

// RemoveMintAuthorityResult carries the removed authority.
type RemoveMintAuthorityResult struct {
	Authority *MintAuthority
}

func (*RemoveMintAuthorityResult) Type() OperationType { return OperationTypeRemoveMintAuthority }
