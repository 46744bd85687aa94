// Copyright 2026 The Meridian Authors
//
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file or at
// https://opensource.org/licenses/MIT.

package protocol

import (
	"gitlab.com/meridianledger/meridian/pkg/errors"
)

// PreburnQueue holds one account's value pending destruction, in arrival
// order. Requests are appended at the back and resolved strictly from the
// front: the authority holder cannot selectively resolve a later entry
// first.
//
// IsApproved is reserved for an approval gate on new queues. The check is
// currently bypassed pending automation of the approval flow; the field is
// kept and serialized so existing state remains valid when the gate is
// enabled.
type PreburnQueue struct {
	Account    Address
	Token      Token
	Requests   []uint64
	IsApproved bool

	published bool
}

func NewPreburnQueue(account Address, token Token) *PreburnQueue {
	return &PreburnQueue{Account: account, Token: token}
}

// Published returns true if the handle has been consumed by a publish.
func (q *PreburnQueue) Published() bool { return q.published }

// Publish consumes the queue handle. A removed queue installs at exactly
// one account; duplicating a queue would detach the stored queues from the
// ledger's escrow counter.
func (q *PreburnQueue) Publish() error {
	if q == nil {
		return errors.BadRequest.With("nil queue")
	}
	if q.published {
		return errors.BadRequest.With("queue handle has already been published")
	}
	q.published = true
	return nil
}

// Push consumes unit and appends its amount to the back of the queue.
func (q *PreburnQueue) Push(unit *Funds) error {
	if err := unit.use(); err != nil {
		return err
	}
	if unit.token != q.Token {
		return errors.BadRequest.WithFormat("cannot preburn %s into a %s queue", unit.token, q.Token)
	}
	q.Requests = append(q.Requests, unit.consume())
	return nil
}

// Front returns the amount of the oldest request.
func (q *PreburnQueue) Front() (uint64, error) {
	if len(q.Requests) == 0 {
		return 0, errors.EmptyQueue.WithFormat("preburn queue of %s is empty", q.Account)
	}
	return q.Requests[0], nil
}

// BurnFront removes the oldest request and returns the amount destroyed.
func (q *PreburnQueue) BurnFront() (uint64, error) {
	amount, err := q.Front()
	if err != nil {
		return 0, err
	}
	q.Requests = q.Requests[1:]
	return amount, nil
}

// ReleaseFront removes the oldest request and returns it as a live unit.
func (q *PreburnQueue) ReleaseFront() (*Funds, error) {
	amount, err := q.BurnFront()
	if err != nil {
		return nil, err
	}
	return newFunds(q.Token, amount), nil
}

func (q *PreburnQueue) Len() int    { return len(q.Requests) }
func (q *PreburnQueue) Empty() bool { return len(q.Requests) == 0 }

// Destroy consumes the queue. Only an empty queue may be destroyed.
func (q *PreburnQueue) Destroy() error {
	if !q.Empty() {
		return errors.NonZeroDestruction.WithFormat("preburn queue of %s holds %d pending requests", q.Account, q.Len())
	}
	q.Requests = nil
	return nil
}
