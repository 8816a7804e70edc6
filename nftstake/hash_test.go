// Copyright (c) 2025 The nftstake developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package nftstake

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBlake2b(t *testing.T) {
	// multi-part hashing equals hashing the concatenation
	assert.Equal(t, Blake2b([]byte("ab"), []byte("cd")), Blake2b([]byte("abcd")))
	assert.NotEqual(t, Blake2b([]byte("ab")), Blake2b([]byte("cd")))
	assert.False(t, Blake2b([]byte{}).IsZero())
}

func TestKeccak256(t *testing.T) {
	assert.Equal(t, Keccak256([]byte("ab"), []byte("cd")), Keccak256([]byte("abcd")))
	assert.NotEqual(t, Keccak256([]byte("ab")), Blake2b([]byte("ab")))
}

func TestCreateAssociatedAddress(t *testing.T) {
	owner := BytesToAddress([]byte("owner"))
	mint := BytesToAddress([]byte("mint"))

	// deterministic and sensitive to both inputs
	assert.Equal(t, CreateAssociatedAddress(owner, mint), CreateAssociatedAddress(owner, mint))
	assert.NotEqual(t, CreateAssociatedAddress(owner, mint), CreateAssociatedAddress(mint, owner))
	assert.NotEqual(t, CreateAssociatedAddress(owner, mint), CreateAssociatedAddress(owner, owner))
}
