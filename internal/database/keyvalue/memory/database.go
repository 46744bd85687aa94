// Copyright 2026 The Meridian Authors
//
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file or at
// https://opensource.org/licenses/MIT.

package memory

import (
	"sync"

	"gitlab.com/meridianledger/meridian/internal/database/keyvalue"
	"gitlab.com/meridianledger/meridian/pkg/errors"
)

// Database is an in-memory key-value store, for tests and simulation.
type Database struct {
	mu      sync.RWMutex
	entries map[keyvalue.Key][]byte
}

var _ keyvalue.Store = (*Database)(nil)

func New() *Database {
	return &Database{entries: map[keyvalue.Key][]byte{}}
}

func (d *Database) Get(key keyvalue.Key) ([]byte, error) {
	d.mu.RLock()
	defer d.mu.RUnlock()
	value, ok := d.entries[key]
	if !ok {
		return nil, errors.NotFound.WithFormat("%v not found", key)
	}
	// Copy so the caller cannot mutate the stored value
	v := make([]byte, len(value))
	copy(v, value)
	return v, nil
}

func (d *Database) Commit(entries []keyvalue.Entry) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	for _, e := range entries {
		if e.Delete {
			delete(d.entries, e.Key)
		} else {
			v := make([]byte, len(e.Value))
			copy(v, e.Value)
			d.entries[e.Key] = v
		}
	}
	return nil
}

func (d *Database) Close() error { return nil }

// Len returns the number of stored entries. Len is not part of the Store
// interface; it exists for tests.
func (d *Database) Len() int {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return len(d.entries)
}
