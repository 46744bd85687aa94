// Copyright 2026 The Meridian Authors
//
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file or at
// https://opensource.org/licenses/MIT.

package badger

import (
	"os"
	"sync"
	"time"

	"github.com/dgraph-io/badger"
	"gitlab.com/meridianledger/meridian/internal/database/keyvalue"
	"gitlab.com/meridianledger/meridian/internal/logging"
	"gitlab.com/meridianledger/meridian/pkg/errors"
)

// Database is a Badger-backed key-value store for persistent deployments.
type Database struct {
	badger *badger.DB
	logger logging.Logger
	ready  bool
	mu     sync.RWMutex
}

var _ keyvalue.Store = (*Database)(nil)

func New(filepath string, logger logging.Logger) (*Database, error) {
	// Make sure all directories exist
	err := os.MkdirAll(filepath, 0700)
	if err != nil {
		return nil, errors.UnknownError.WithFormat("open badger: create %q: %w", filepath, err)
	}

	if logger == nil {
		logger = logging.NullLogger{}
	}
	opts := badger.DefaultOptions(filepath)
	opts = opts.WithLogger(badgerLogger{logger})

	d := new(Database)
	d.logger = logger
	d.ready = true

	d.badger, err = badger.Open(opts)
	if err != nil {
		return nil, err
	}

	// Run GC every hour
	go d.gc()

	return d, nil
}

func (d *Database) Get(key keyvalue.Key) ([]byte, error) {
	l, err := d.lock(false)
	if err != nil {
		return nil, err
	}
	defer l.Unlock()

	var value []byte
	err = d.badger.View(func(txn *badger.Txn) error {
		item, err := txn.Get([]byte(key))
		if err != nil {
			return err
		}
		value, err = item.ValueCopy(nil)
		return err
	})
	switch {
	case err == nil:
		return value, nil
	case errors.Is(err, badger.ErrKeyNotFound):
		return nil, errors.NotFound.WithFormat("%v not found", key)
	default:
		return nil, errors.UnknownError.WithFormat("get %v: %w", key, err)
	}
}

func (d *Database) Commit(entries []keyvalue.Entry) error {
	l, err := d.lock(false)
	if err != nil {
		return err
	}
	defer l.Unlock()

	// Use a write batch to work around Badger's transaction size limits
	wr := d.badger.NewWriteBatch()
	defer wr.Cancel()

	for _, e := range entries {
		if e.Delete {
			err = wr.Delete([]byte(e.Key))
		} else {
			err = wr.Set([]byte(e.Key), e.Value)
		}
		if err != nil {
			return err
		}
	}

	return wr.Flush()
}

func (d *Database) Close() error {
	if l, err := d.lock(true); err != nil {
		return err
	} else {
		defer l.Unlock()
	}

	d.ready = false
	return d.badger.Close()
}

func (d *Database) gc() {
	for {
		// GC every hour
		time.Sleep(time.Hour)

		// Still open?
		l, err := d.lock(false)
		if err != nil {
			return
		}

		// Run GC if 50% space could be reclaimed
		err = d.badger.RunValueLogGC(0.5)
		if err != nil && !errors.Is(err, badger.ErrNoRewrite) {
			d.logger.Error("Badger GC failed", "error", err, "module", "badger")
		}

		l.Unlock()
	}
}

// lock acquires a lock on the ready mutex and checks for readiness. This
// prevents race conditions between Get/Commit and Close, which can cause
// panics.
func (d *Database) lock(closing bool) (sync.Locker, error) {
	var l sync.Locker = &d.mu
	if !closing {
		l = d.mu.RLocker()
	}

	l.Lock()
	if !d.ready {
		l.Unlock()
		return nil, errors.InternalError.With("database not open")
	}

	return l, nil
}
