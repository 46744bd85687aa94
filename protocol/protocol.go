// Copyright 2026 The Meridian Authors
//
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file or at
// https://opensource.org/licenses/MIT.

package protocol

import (
	"math/big"
	"regexp"
	"strings"

	"gitlab.com/meridianledger/meridian/pkg/errors"
)

// Well known constants
const (
	// MaxMintAmount is the default per-call mint ceiling, a safety bound
	// against runaway issuance. Deployments may lower it via configuration.
	MaxMintAmount uint64 = 1_000_000_000 * 1_000_000

	// DefaultRootAuthority is the default registrar address. Only the root
	// authority may register a currency.
	DefaultRootAuthority Address = "0xa550c18"
)

// maxIssued is the bound on SupplyLedger.Issued, 2^128-1.
var maxIssued = new(big.Int).Sub(new(big.Int).Lsh(big.NewInt(1), 128), big.NewInt(1))

// Token identifies a currency type, e.g. "MRD".
type Token string

var reToken = regexp.MustCompile(`^[A-Z][A-Z0-9]{0,9}$`)

// Valid returns an error if the token symbol is malformed.
func (t Token) Valid() error {
	if !reToken.MatchString(string(t)) {
		return errors.BadRequest.WithFormat("invalid token symbol %q", string(t))
	}
	return nil
}

func (t Token) String() string { return string(t) }

// Address identifies an account. Addresses are lower-case 0x-prefixed hex
// strings; the surrounding ledger runtime is responsible for resolving them.
type Address string

var reAddress = regexp.MustCompile(`^0x[0-9a-f]{1,40}$`)

// ParseAddress normalizes and validates an account address.
func ParseAddress(s string) (Address, error) {
	s = strings.ToLower(s)
	if !reAddress.MatchString(s) {
		return "", errors.BadRequest.WithFormat("invalid address %q", s)
	}
	return Address(s), nil
}

func (a Address) String() string { return string(a) }

// Valid returns an error if the address is malformed.
func (a Address) Valid() error {
	_, err := ParseAddress(string(a))
	return err
}
