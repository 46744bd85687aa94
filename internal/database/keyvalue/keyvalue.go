// Copyright 2026 The Meridian Authors
//
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file or at
// https://opensource.org/licenses/MIT.

package keyvalue

import "strings"

// Key identifies a stored record.
type Key string

// NewKey joins parts into a key.
func NewKey(parts ...string) Key {
	return Key(strings.Join(parts, "\x00"))
}

func (k Key) String() string {
	return strings.ReplaceAll(string(k), "\x00", "/")
}

// Entry is a pending write: a value to store or a key to delete.
type Entry struct {
	Key    Key
	Value  []byte
	Delete bool
}

// Store is a key-value store. Get returns errors.NotFound for a missing
// key. Commit applies a set of entries as a single atomic write.
type Store interface {
	Get(key Key) ([]byte, error)
	Commit(entries []Entry) error
	Close() error
}
