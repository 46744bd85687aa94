// Copyright 2026 The Meridian Authors
//
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file or at
// https://opensource.org/licenses/MIT.

package database

import (
	"gitlab.com/meridianledger/meridian/internal/database/keyvalue"
	"gitlab.com/meridianledger/meridian/pkg/errors"
	"gitlab.com/meridianledger/meridian/protocol"
)

func supplyLedgerKey(addr protocol.Address, token protocol.Token) keyvalue.Key {
	return keyvalue.NewKey("account", addr.String(), "supply-ledger", token.String())
}

func mintAuthorityKey(addr protocol.Address, token protocol.Token) keyvalue.Key {
	return keyvalue.NewKey("account", addr.String(), "mint-authority", token.String())
}

func preburnQueueKey(addr protocol.Address, token protocol.Token) keyvalue.Key {
	return keyvalue.NewKey("account", addr.String(), "preburn-queue", token.String())
}

// SupplyLedger loads the supply ledger of token at addr.
func (b *Batch) SupplyLedger(addr protocol.Address, token protocol.Token) (*protocol.SupplyLedger, error) {
	ledger := new(protocol.SupplyLedger)
	err := b.load(supplyLedgerKey(addr, token), ledger)
	if errors.Is(err, errors.NotFound) {
		return nil, errors.NotRegistered.WithFormat("%s is not registered", token)
	}
	if err != nil {
		return nil, err
	}
	return ledger, nil
}

func (b *Batch) PutSupplyLedger(addr protocol.Address, ledger *protocol.SupplyLedger) error {
	return b.put(supplyLedgerKey(addr, ledger.Token), ledger)
}

func (b *Batch) CreateSupplyLedger(addr protocol.Address, ledger *protocol.SupplyLedger) error {
	return b.create(supplyLedgerKey(addr, ledger.Token), ledger)
}

func (b *Batch) HasSupplyLedger(addr protocol.Address, token protocol.Token) (bool, error) {
	return b.exists(supplyLedgerKey(addr, token))
}

// MintAuthority loads the mint authority of token at addr.
func (b *Batch) MintAuthority(addr protocol.Address, token protocol.Token) (*protocol.MintAuthority, error) {
	authority := new(protocol.MintAuthority)
	err := b.load(mintAuthorityKey(addr, token), authority)
	if err != nil {
		return nil, err
	}
	return authority, nil
}

func (b *Batch) CreateMintAuthority(addr protocol.Address, authority *protocol.MintAuthority) error {
	return b.create(mintAuthorityKey(addr, authority.Token), authority)
}

func (b *Batch) RemoveMintAuthority(addr protocol.Address, token protocol.Token) error {
	return b.remove(mintAuthorityKey(addr, token))
}

func (b *Batch) HasMintAuthority(addr protocol.Address, token protocol.Token) (bool, error) {
	return b.exists(mintAuthorityKey(addr, token))
}

// PreburnQueue loads the preburn queue of token at addr.
func (b *Batch) PreburnQueue(addr protocol.Address, token protocol.Token) (*protocol.PreburnQueue, error) {
	queue := new(protocol.PreburnQueue)
	err := b.load(preburnQueueKey(addr, token), queue)
	if err != nil {
		return nil, err
	}
	return queue, nil
}

func (b *Batch) PutPreburnQueue(queue *protocol.PreburnQueue) error {
	return b.put(preburnQueueKey(queue.Account, queue.Token), queue)
}

func (b *Batch) CreatePreburnQueue(queue *protocol.PreburnQueue) error {
	return b.create(preburnQueueKey(queue.Account, queue.Token), queue)
}

func (b *Batch) RemovePreburnQueue(addr protocol.Address, token protocol.Token) error {
	return b.remove(preburnQueueKey(addr, token))
}

func (b *Batch) HasPreburnQueue(addr protocol.Address, token protocol.Token) (bool, error) {
	return b.exists(preburnQueueKey(addr, token))
}
