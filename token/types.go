// Copyright (c) 2025 The nftstake developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package token

import (
	"github.com/ethereum/go-ethereum/rlp"

	"github.com/custodyard/nftstake/nftstake"
)

type (
	// Account is a holding of one mint's tokens by one owner. A unique asset
	// is just an account whose mint has a supply of one.
	Account struct {
		Owner           nftstake.Address
		Mint            nftstake.Address
		Balance         uint64
		Delegate        *nftstake.Address `rlp:"nil"`
		DelegatedAmount uint64
		Frozen          bool
	}

	// Mint is the issuing record of one token kind.
	Mint struct {
		Authority nftstake.Address
		Supply    uint64
	}
)

// IsEmpty returns whether the account has never been created.
func (a *Account) IsEmpty() bool {
	return a.Owner.IsZero() && a.Mint.IsZero()
}

// IsDelegatedTo returns whether the account is currently delegated to the
// given identity.
func (a *Account) IsDelegatedTo(delegate nftstake.Address) bool {
	return a.Delegate != nil && *a.Delegate == delegate
}

// IsEmpty returns whether the mint has never been created.
func (m *Mint) IsEmpty() bool {
	return m.Authority.IsZero()
}

func (a *Account) Encode() ([]byte, error) {
	if a.IsEmpty() {
		return nil, nil
	}
	return rlp.EncodeToBytes(a)
}

func (a *Account) Decode(data []byte) error {
	if len(data) == 0 {
		*a = Account{}
		return nil
	}
	return rlp.DecodeBytes(data, a)
}

func (m *Mint) Encode() ([]byte, error) {
	if m.IsEmpty() {
		return nil, nil
	}
	return rlp.EncodeToBytes(m)
}

func (m *Mint) Decode(data []byte) error {
	if len(data) == 0 {
		*m = Mint{}
		return nil
	}
	return rlp.DecodeBytes(data, m)
}
