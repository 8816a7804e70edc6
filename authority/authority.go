// Copyright (c) 2025 The nftstake developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

// Package authority implements program-derived signing identities.
//
// An identity is computed from a fixed, public seed label and the deriving
// program's address. It has no private key; a holder authorizes an action by
// presenting the derivation proof, and the verifier re-derives the identity
// from the same public material. Only operations executed by the program that
// owns the derivation can legitimately present a matching proof, the same way
// a program-derived account authorizes without ever signing.
package authority

import (
	"github.com/pkg/errors"

	"github.com/custodyard/nftstake/nftstake"
)

// ErrProofMismatch means a proof does not derive the claimed identity.
var ErrProofMismatch = errors.New("authority: proof does not derive identity")

// Proof is the structural stand-in for a signature: the public material an
// identity was derived from.
type Proof struct {
	Label   string
	Program nftstake.Address
}

// Derive deterministically yields the signing identity for the given seed
// label and program, together with its proof. Calling it twice with the same
// inputs always yields the same identity.
func Derive(label string, program nftstake.Address) (nftstake.Address, Proof) {
	proof := Proof{Label: label, Program: program}
	return proof.Identity(), proof
}

// Identity recomputes the identity this proof derives.
func (p Proof) Identity() nftstake.Address {
	h := nftstake.Blake2b([]byte(p.Label), p.Program.Bytes())
	return nftstake.BytesToAddress(h.Bytes()[12:])
}

// Verify checks that the proof derives the claimed identity.
func (p Proof) Verify(identity nftstake.Address) error {
	if p.Identity() != identity {
		return ErrProofMismatch
	}
	return nil
}
