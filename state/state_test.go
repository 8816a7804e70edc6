// Copyright (c) 2025 The nftstake developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package state

import (
	"testing"

	"github.com/ethereum/go-ethereum/rlp"
	"github.com/stretchr/testify/assert"

	"github.com/custodyard/nftstake/kv"
	"github.com/custodyard/nftstake/nftstake"
)

func TestStorage(t *testing.T) {
	store := kv.NewMem()
	defer store.Close()
	st := New(store)

	addr := nftstake.BytesToAddress([]byte("addr"))
	key := nftstake.Blake2b([]byte("key"))
	value := nftstake.Blake2b([]byte("value"))

	got, err := st.GetStorage(addr, key)
	assert.NoError(t, err)
	assert.True(t, got.IsZero())

	st.SetStorage(addr, key, value)
	got, err = st.GetStorage(addr, key)
	assert.NoError(t, err)
	assert.Equal(t, value, got)

	// zero value deletes
	st.SetStorage(addr, key, nftstake.Bytes32{})
	raw, err := st.GetRawStorage(addr, key)
	assert.NoError(t, err)
	assert.Len(t, raw, 0)
}

func TestEncodeDecodeStorage(t *testing.T) {
	store := kv.NewMem()
	defer store.Close()
	st := New(store)

	addr := nftstake.BytesToAddress([]byte("addr"))
	key := nftstake.Blake2b([]byte("key"))

	assert.NoError(t, st.EncodeStorage(addr, key, func() ([]byte, error) {
		return rlp.EncodeToBytes(uint64(42))
	}))

	var n uint64
	assert.NoError(t, st.DecodeStorage(addr, key, func(raw []byte) error {
		return rlp.DecodeBytes(raw, &n)
	}))
	assert.Equal(t, uint64(42), n)
}

func TestCheckpointRevert(t *testing.T) {
	store := kv.NewMem()
	defer store.Close()
	st := New(store)

	addr := nftstake.BytesToAddress([]byte("addr"))
	key := nftstake.Blake2b([]byte("key"))
	v1 := nftstake.Blake2b([]byte("v1"))
	v2 := nftstake.Blake2b([]byte("v2"))

	st.SetStorage(addr, key, v1)

	chk := st.NewCheckpoint()
	st.SetStorage(addr, key, v2)
	got, _ := st.GetStorage(addr, key)
	assert.Equal(t, v2, got)

	st.RevertTo(chk)
	got, _ = st.GetStorage(addr, key)
	assert.Equal(t, v1, got)
}

func TestStageCommit(t *testing.T) {
	store := kv.NewMem()
	defer store.Close()

	addr := nftstake.BytesToAddress([]byte("addr"))
	key := nftstake.Blake2b([]byte("key"))
	value := nftstake.Blake2b([]byte("value"))

	st := New(store)
	st.SetStorage(addr, key, value)

	// not yet persisted
	fresh := New(store)
	got, err := fresh.GetStorage(addr, key)
	assert.NoError(t, err)
	assert.True(t, got.IsZero())

	stage := st.Stage()
	assert.Equal(t, 1, stage.Len())
	assert.NoError(t, stage.Commit())

	// visible to a state reopened over the same store
	fresh = New(store)
	got, err = fresh.GetStorage(addr, key)
	assert.NoError(t, err)
	assert.Equal(t, value, got)
}

func TestStageLastWriteWins(t *testing.T) {
	store := kv.NewMem()
	defer store.Close()

	addr := nftstake.BytesToAddress([]byte("addr"))
	key := nftstake.Blake2b([]byte("key"))
	v1 := nftstake.Blake2b([]byte("v1"))
	v2 := nftstake.Blake2b([]byte("v2"))

	st := New(store)
	st.SetStorage(addr, key, v1)
	st.NewCheckpoint()
	st.SetStorage(addr, key, v2)

	assert.NoError(t, st.Stage().Commit())

	fresh := New(store)
	got, _ := fresh.GetStorage(addr, key)
	assert.Equal(t, v2, got)
}
