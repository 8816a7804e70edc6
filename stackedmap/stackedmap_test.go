// Copyright (c) 2025 The nftstake developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package stackedmap_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/custodyard/nftstake/stackedmap"
)

func TestStackedMap(t *testing.T) {
	src := make(map[string]string)
	src["base"] = "from-src"

	sm := stackedmap.New(func(key any) (any, bool, error) {
		v, ok := src[key.(string)]
		return v, ok, nil
	})

	sm.Push()
	sm.Put("k1", "v1")

	v, ok, err := sm.Get("k1")
	assert.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "v1", v)

	// falls through to source
	v, ok, err = sm.Get("base")
	assert.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "from-src", v)

	// deeper level shadows
	depth := sm.Push()
	sm.Put("k1", "v1'")
	v, _, _ = sm.Get("k1")
	assert.Equal(t, "v1'", v)

	// revert restores the shadowed value
	sm.PopTo(depth)
	v, _, _ = sm.Get("k1")
	assert.Equal(t, "v1", v)

	sm.Pop()
	_, ok, _ = sm.Get("k1")
	assert.False(t, ok)
	assert.Equal(t, 0, sm.Depth())
}

func TestStackedMapJournal(t *testing.T) {
	sm := stackedmap.New(func(_ any) (any, bool, error) {
		return nil, false, nil
	})

	sm.Push()
	sm.Put("k1", "v1")
	sm.Push()
	sm.Put("k1", "v2")
	sm.Put("k2", "v3")

	var got []string
	sm.Journal(func(k, v any) bool {
		got = append(got, k.(string)+"="+v.(string))
		return true
	})
	assert.Equal(t, []string{"k1=v1", "k1=v2", "k2=v3"}, got)

	// popped levels drop out of the journal
	sm.Pop()
	got = got[:0]
	sm.Journal(func(k, v any) bool {
		got = append(got, k.(string)+"="+v.(string))
		return true
	})
	assert.Equal(t, []string{"k1=v1"}, got)
}
