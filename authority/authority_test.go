// Copyright (c) 2025 The nftstake developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package authority_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/custodyard/nftstake/authority"
	"github.com/custodyard/nftstake/nftstake"
)

func TestDerive(t *testing.T) {
	program := nftstake.BytesToAddress([]byte("program"))

	id1, proof1 := authority.Derive(nftstake.SeedCustodyAuthority, program)
	id2, _ := authority.Derive(nftstake.SeedCustodyAuthority, program)
	assert.Equal(t, id1, id2, "same seed material derives the same identity")
	assert.False(t, id1.IsZero())

	mintID, _ := authority.Derive(nftstake.SeedRewardMint, program)
	assert.NotEqual(t, id1, mintID, "distinct labels derive distinct identities")

	otherID, _ := authority.Derive(nftstake.SeedCustodyAuthority, nftstake.BytesToAddress([]byte("other")))
	assert.NotEqual(t, id1, otherID, "distinct programs derive distinct identities")

	assert.Equal(t, id1, proof1.Identity())
}

func TestProofVerify(t *testing.T) {
	program := nftstake.BytesToAddress([]byte("program"))
	id, proof := authority.Derive(nftstake.SeedCustodyAuthority, program)

	assert.NoError(t, proof.Verify(id))

	other := nftstake.BytesToAddress([]byte("intruder"))
	assert.ErrorIs(t, proof.Verify(other), authority.ErrProofMismatch)

	forged := authority.Proof{Label: nftstake.SeedRewardMint, Program: program}
	assert.ErrorIs(t, forged.Verify(id), authority.ErrProofMismatch)
}
