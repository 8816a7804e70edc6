// Copyright (c) 2025 The nftstake developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package storage_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/custodyard/nftstake/kv"
	"github.com/custodyard/nftstake/nftstake"
	"github.com/custodyard/nftstake/state"
	"github.com/custodyard/nftstake/storage"
)

type entry struct {
	Owner nftstake.Address
	Count uint64
}

func newContext() *storage.Context {
	st := state.New(kv.NewMem())
	return storage.NewContext(nftstake.BytesToAddress([]byte("prim")), st)
}

func TestMapping(t *testing.T) {
	sctx := newContext()
	m := storage.NewMapping[nftstake.Bytes32, *entry](sctx, nftstake.BytesToBytes32([]byte("entries")))

	key := nftstake.Blake2b([]byte("k"))

	// missing entry yields zero value
	got, err := m.Get(key)
	assert.NoError(t, err)
	assert.Equal(t, &entry{}, got)

	want := &entry{Owner: nftstake.BytesToAddress([]byte("owner")), Count: 7}
	assert.NoError(t, m.Set(key, want))

	got, err = m.Get(key)
	assert.NoError(t, err)
	assert.Equal(t, want, got)

	assert.NoError(t, m.Delete(key))
	got, err = m.Get(key)
	assert.NoError(t, err)
	assert.Equal(t, &entry{}, got)
}

func TestMappingIsolation(t *testing.T) {
	sctx := newContext()
	m1 := storage.NewMapping[nftstake.Bytes32, uint64](sctx, nftstake.BytesToBytes32([]byte("m1")))
	m2 := storage.NewMapping[nftstake.Bytes32, uint64](sctx, nftstake.BytesToBytes32([]byte("m2")))

	key := nftstake.Blake2b([]byte("k"))
	assert.NoError(t, m1.Set(key, 1))

	got, err := m2.Get(key)
	assert.NoError(t, err)
	assert.Equal(t, uint64(0), got)
}
