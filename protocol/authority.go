// Copyright 2026 The Meridian Authors
//
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file or at
// https://opensource.org/licenses/MIT.

package protocol

import (
	"gitlab.com/meridianledger/meridian/pkg/errors"
)

// MintAuthority is the capability to mint and to resolve burns for one
// currency. It carries no data beyond the currency it governs: holding the
// record is the authorization. Exactly one authority exists per (address,
// token) at a time; it can be relocated with publish/remove but never
// copied.
type MintAuthority struct {
	Token Token

	published bool
}

func NewMintAuthority(token Token) *MintAuthority {
	return &MintAuthority{Token: token}
}

// Published returns true if the handle has been consumed by a publish.
func (a *MintAuthority) Published() bool { return a.published }

// Publish consumes the handle. A removed authority installs at exactly one
// account; every later publish of the same handle fails.
func (a *MintAuthority) Publish() error {
	if a == nil {
		return errors.BadRequest.With("nil authority")
	}
	if a.published {
		return errors.BadRequest.With("authority handle has already been published")
	}
	a.published = true
	return nil
}
