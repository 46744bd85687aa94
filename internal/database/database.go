// Copyright 2026 The Meridian Authors
//
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file or at
// https://opensource.org/licenses/MIT.

// Package database layers typed, account-keyed records on top of a
// key-value store. Each (address, token) holds at most one supply ledger,
// one mint authority, and one preburn queue; creates and removes are
// exclusive.
package database

import (
	"encoding"

	"gitlab.com/meridianledger/meridian/internal/database/keyvalue"
	"gitlab.com/meridianledger/meridian/internal/logging"
	"gitlab.com/meridianledger/meridian/pkg/errors"
)

type Database struct {
	store  keyvalue.Store
	logger logging.Logger
}

func New(store keyvalue.Store, logger logging.Logger) *Database {
	if logger == nil {
		logger = logging.NullLogger{}
	}
	return &Database{store: store, logger: logger.With("module", "database")}
}

func (d *Database) Close() error { return d.store.Close() }

// Begin starts a batch. Writes are buffered in the batch and hit the store
// only on Commit; Discard drops them. Reads see the batch's own writes.
func (d *Database) Begin() *Batch {
	return &Batch{
		store:   d.store,
		logger:  d.logger,
		pending: map[keyvalue.Key]keyvalue.Entry{},
	}
}

type Batch struct {
	store   keyvalue.Store
	logger  logging.Logger
	pending map[keyvalue.Key]keyvalue.Entry
	order   []keyvalue.Key
	done    bool
}

func (b *Batch) getValue(key keyvalue.Key) ([]byte, error) {
	if b.done {
		return nil, errors.InternalError.With("batch is closed")
	}
	if e, ok := b.pending[key]; ok {
		if e.Delete {
			return nil, errors.NotFound.WithFormat("%v not found", key)
		}
		return e.Value, nil
	}
	return b.store.Get(key)
}

func (b *Batch) putValue(key keyvalue.Key, value []byte) {
	b.setEntry(keyvalue.Entry{Key: key, Value: value})
}

func (b *Batch) deleteValue(key keyvalue.Key) {
	b.setEntry(keyvalue.Entry{Key: key, Delete: true})
}

func (b *Batch) setEntry(e keyvalue.Entry) {
	if _, ok := b.pending[e.Key]; !ok {
		b.order = append(b.order, e.Key)
	}
	b.pending[e.Key] = e
}

// Commit applies the batch's writes to the store atomically.
func (b *Batch) Commit() error {
	if b.done {
		return errors.InternalError.With("batch is closed")
	}
	b.done = true

	entries := make([]keyvalue.Entry, 0, len(b.order))
	for _, key := range b.order {
		entries = append(entries, b.pending[key])
	}
	b.logger.Debug("Committing batch", "entries", len(entries))
	return b.store.Commit(entries)
}

// Discard drops the batch's writes.
func (b *Batch) Discard() {
	b.done = true
	b.pending = nil
	b.order = nil
}

// load reads a record into v.
func (b *Batch) load(key keyvalue.Key, v encoding.BinaryUnmarshaler) error {
	data, err := b.getValue(key)
	if err != nil {
		return err
	}
	err = v.UnmarshalBinary(data)
	if err != nil {
		return errors.EncodingError.WithFormat("unmarshal %v: %w", key, err)
	}
	return nil
}

// put writes a record, replacing any existing value.
func (b *Batch) put(key keyvalue.Key, v encoding.BinaryMarshaler) error {
	data, err := v.MarshalBinary()
	if err != nil {
		return errors.EncodingError.WithFormat("marshal %v: %w", key, err)
	}
	b.putValue(key, data)
	return nil
}

// create writes a record only if the key does not exist.
func (b *Batch) create(key keyvalue.Key, v encoding.BinaryMarshaler) error {
	_, err := b.getValue(key)
	switch {
	case err == nil:
		return errors.Conflict.WithFormat("%v already exists", key)
	case !errors.Is(err, errors.NotFound):
		return err
	}
	return b.put(key, v)
}

// remove deletes a record only if the key exists.
func (b *Batch) remove(key keyvalue.Key) error {
	_, err := b.getValue(key)
	if err != nil {
		return err
	}
	b.deleteValue(key)
	return nil
}

// exists checks for the key without decoding the record.
func (b *Batch) exists(key keyvalue.Key) (bool, error) {
	_, err := b.getValue(key)
	switch {
	case err == nil:
		return true, nil
	case errors.Is(err, errors.NotFound):
		return false, nil
	default:
		return false, err
	}
}
