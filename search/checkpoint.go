// File: checkpoint.go
// Role: ResumableSearch persistence (spec.md §6 "Checkpoint files").
// Backs the spec's one-file-per-puzzle-id contract with a single embedded
// Badger store (one key per puzzle id) instead of bespoke files, so a
// batch run's checkpoints live in one on-disk directory.

package search

import (
	"bytes"
	"encoding/gob"

	"github.com/dgraph-io/badger/v4"
	"github.com/klauspost/compress/s2"
	pkgerrors "github.com/pkg/errors"
)

// CheckpointStore wraps a Badger database of puzzle-id -> compressed,
// gob-encoded CheckpointState.
type CheckpointStore struct {
	db *badger.DB
}

// OpenCheckpointStore opens (creating if absent) a Badger store rooted at
// dir.
func OpenCheckpointStore(dir string) (*CheckpointStore, error) {
	opts := badger.DefaultOptions(dir)
	db, err := badger.Open(opts)
	if err != nil {
		return nil, pkgerrors.Wrap(err, "search: open checkpoint store")
	}
	return &CheckpointStore{db: db}, nil
}

// Close releases the underlying Badger database.
func (s *CheckpointStore) Close() error {
	return pkgerrors.Wrap(s.db.Close(), "search: close checkpoint store")
}

// Save gob-encodes and S2-compresses state, storing it under puzzleID,
// overwriting any prior checkpoint for that id.
func (s *CheckpointStore) Save(puzzleID string, state CheckpointState) error {
	var buf bytes.Buffer
	if err := gob.NewEncoder(&buf).Encode(state); err != nil {
		return pkgerrors.Wrapf(err, "search: encode checkpoint %q", puzzleID)
	}
	compressed := s2.Encode(nil, buf.Bytes())

	err := s.db.Update(func(txn *badger.Txn) error {
		return txn.Set([]byte(puzzleID), compressed)
	})
	if err != nil {
		return pkgerrors.Wrapf(err, "search: write checkpoint %q", puzzleID)
	}
	return nil
}

// Load looks up and decodes the checkpoint for puzzleID. found is false
// (with a nil error) when no checkpoint exists for that id.
func (s *CheckpointStore) Load(puzzleID string) (state CheckpointState, found bool, err error) {
	txnErr := s.db.View(func(txn *badger.Txn) error {
		item, getErr := txn.Get([]byte(puzzleID))
		if getErr == badger.ErrKeyNotFound {
			return nil
		}
		if getErr != nil {
			return getErr
		}
		found = true
		return item.Value(func(val []byte) error {
			decompressed, decErr := s2.Decode(nil, val)
			if decErr != nil {
				return decErr
			}
			return gob.NewDecoder(bytes.NewReader(decompressed)).Decode(&state)
		})
	})
	if txnErr != nil {
		return CheckpointState{}, false, pkgerrors.Wrapf(txnErr, "search: load checkpoint %q", puzzleID)
	}
	return state, found, nil
}

// Delete removes any checkpoint stored for puzzleID; a no-op if none
// exists.
func (s *CheckpointStore) Delete(puzzleID string) error {
	err := s.db.Update(func(txn *badger.Txn) error {
		return txn.Delete([]byte(puzzleID))
	})
	if err != nil {
		return pkgerrors.Wrapf(err, "search: delete checkpoint %q", puzzleID)
	}
	return nil
}
