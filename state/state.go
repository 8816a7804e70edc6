// Copyright (c) 2025 The nftstake developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package state

import (
	"bytes"
	"fmt"

	"github.com/ethereum/go-ethereum/rlp"

	"github.com/custodyard/nftstake/kv"
	"github.com/custodyard/nftstake/nftstake"
	"github.com/custodyard/nftstake/stackedmap"
)

// Error is the error caused by state access failure.
type Error struct {
	cause error
}

func (e *Error) Error() string {
	return fmt.Sprintf("state: %v", e.cause)
}

// Unwrap returns the underlying cause.
func (e *Error) Unwrap() error {
	return e.cause
}

type storageKey struct {
	addr nftstake.Address
	key  nftstake.Bytes32
}

// State manages the ledger state.
//
// All mutations are journaled and only reach the backing store when a Stage is
// committed. Checkpoints allow reverting every mutation of an aborted
// operation, which is what makes the staking operations all-or-nothing.
type State struct {
	store kv.Store
	sm    *stackedmap.StackedMap
}

// New creates a state object backed by the given store.
func New(store kv.Store) *State {
	state := &State{store: store}
	state.sm = stackedmap.New(func(key any) (any, bool, error) {
		k := key.(storageKey)
		raw, err := store.Get(persistKey(k))
		if err != nil {
			if store.IsNotFound(err) {
				return rlp.RawValue(nil), true, nil
			}
			return nil, false, err
		}
		return rlp.RawValue(raw), true, nil
	})
	// base layer collecting journal entries until staged
	state.sm.Push()
	return state
}

// persistKey flattens (addr, key) into the backing store key space.
func persistKey(k storageKey) []byte {
	return append(k.addr.Bytes(), k.key.Bytes()...)
}

// GetStorage returns the storage value for the given address and key.
func (s *State) GetStorage(addr nftstake.Address, key nftstake.Bytes32) (nftstake.Bytes32, error) {
	raw, err := s.GetRawStorage(addr, key)
	if err != nil {
		return nftstake.Bytes32{}, err
	}
	if len(raw) == 0 {
		return nftstake.Bytes32{}, nil
	}
	_, content, _, err := rlp.Split(raw)
	if err != nil {
		return nftstake.Bytes32{}, &Error{err}
	}
	return nftstake.BytesToBytes32(content), nil
}

// SetStorage sets the storage value for the given address and key.
func (s *State) SetStorage(addr nftstake.Address, key, value nftstake.Bytes32) {
	if value.IsZero() {
		s.SetRawStorage(addr, key, nil)
		return
	}
	v, _ := rlp.EncodeToBytes(bytes.TrimLeft(value[:], "\x00"))
	s.SetRawStorage(addr, key, v)
}

// GetRawStorage returns the storage value in rlp raw for the given address and key.
func (s *State) GetRawStorage(addr nftstake.Address, key nftstake.Bytes32) (rlp.RawValue, error) {
	data, _, err := s.sm.Get(storageKey{addr, key})
	if err != nil {
		return nil, &Error{err}
	}
	return data.(rlp.RawValue), nil
}

// SetRawStorage sets the storage value in rlp raw.
// An empty raw value deletes the entry.
func (s *State) SetRawStorage(addr nftstake.Address, key nftstake.Bytes32, raw rlp.RawValue) {
	s.sm.Put(storageKey{addr, key}, raw)
}

// EncodeStorage sets the storage value encoded by the given enc method.
// A nil encoding deletes the entry.
func (s *State) EncodeStorage(addr nftstake.Address, key nftstake.Bytes32, enc func() ([]byte, error)) error {
	raw, err := enc()
	if err != nil {
		return &Error{err}
	}
	s.SetRawStorage(addr, key, raw)
	return nil
}

// DecodeStorage gets and decodes the storage value.
func (s *State) DecodeStorage(addr nftstake.Address, key nftstake.Bytes32, dec func([]byte) error) error {
	raw, err := s.GetRawStorage(addr, key)
	if err != nil {
		return err
	}
	if err := dec(raw); err != nil {
		return &Error{err}
	}
	return nil
}

// NewCheckpoint makes a checkpoint of the current state.
// It returns the revision of the checkpoint.
func (s *State) NewCheckpoint() int {
	return s.sm.Push()
}

// RevertTo reverts to the checkpoint specified by revision.
func (s *State) RevertTo(revision int) {
	s.sm.PopTo(revision)
}

// Stage collects all journaled changes into a batch ready to be committed to
// the backing store.
func (s *State) Stage() *Stage {
	changes := make(map[storageKey]rlp.RawValue)
	s.sm.Journal(func(k, v any) bool {
		// last write wins
		changes[k.(storageKey)] = v.(rlp.RawValue)
		return true
	})

	batch := s.store.NewBatch()
	for k, raw := range changes {
		if len(raw) == 0 {
			_ = batch.Delete(persistKey(k))
		} else {
			_ = batch.Put(persistKey(k), raw)
		}
	}
	return &Stage{batch: batch}
}
