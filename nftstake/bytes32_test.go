// Copyright (c) 2025 The nftstake developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package nftstake

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseBytes32(t *testing.T) {
	b := Blake2b([]byte("main"))

	parsed, err := ParseBytes32(b.String())
	assert.NoError(t, err)
	assert.Equal(t, b, parsed)

	parsed, err = ParseBytes32(b.String()[2:])
	assert.NoError(t, err)
	assert.Equal(t, b, parsed)

	_, err = ParseBytes32("0x12")
	assert.Error(t, err)

	_, err = ParseBytes32("1x" + b.String()[2:])
	assert.Error(t, err)
}

func TestBytesToBytes32(t *testing.T) {
	assert.True(t, BytesToBytes32(nil).IsZero())
	assert.Equal(t, byte(0x7), BytesToBytes32([]byte{0x7})[31])
}

func TestParseAddress(t *testing.T) {
	addr := BytesToAddress([]byte("owner"))

	parsed, err := ParseAddress(addr.String())
	assert.NoError(t, err)
	assert.Equal(t, addr, *parsed)

	_, err = ParseAddress("0xqq")
	assert.Error(t, err)
}
