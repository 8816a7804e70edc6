// Copyright (c) 2025 The nftstake developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

// Package custody implements the asset custody authority: freezing and
// thawing delegated asset accounts on behalf of a derived custody identity.
package custody

import (
	"github.com/pkg/errors"

	"github.com/custodyard/nftstake/authority"
	"github.com/custodyard/nftstake/log"
	"github.com/custodyard/nftstake/nftstake"
	"github.com/custodyard/nftstake/token"
)

var (
	// ErrMissingEdition means the asset's edition reference was not supplied.
	ErrMissingEdition = errors.New("custody: missing edition reference")

	logger = log.WithContext("pkg", "custody")
)

// Authority freezes and thaws asset accounts. It holds no state of its own;
// the frozen flag lives on the token account, and authorization is proven
// structurally by the caller's derivation proof.
type Authority struct {
	tokens *token.Ledger
}

// New creates an authority operating on the given token ledger.
func New(tokens *token.Ledger) *Authority {
	return &Authority{tokens: tokens}
}

// Freeze makes the asset's custody account non-transferable. The account must
// currently be delegated to the identity the proof derives, and must not
// already be frozen. The edition and mint references identify the asset's
// provenance; they are required but consumed opaquely.
func (a *Authority) Freeze(assetAccount nftstake.Address, edition nftstake.Bytes32, mint nftstake.Address, proof authority.Proof) error {
	if edition.IsZero() {
		return ErrMissingEdition
	}
	delegate := proof.Identity()
	if err := a.tokens.FreezeAccount(assetAccount, delegate); err != nil {
		return errors.Wrap(err, "freeze delegated account")
	}
	logger.Debug("froze asset account", "account", assetAccount, "mint", mint, "delegate", delegate)
	return nil
}

// Thaw makes the asset's custody account transferable again. The same
// authentication as Freeze applies, and the account must currently be frozen.
func (a *Authority) Thaw(assetAccount nftstake.Address, edition nftstake.Bytes32, mint nftstake.Address, proof authority.Proof) error {
	if edition.IsZero() {
		return ErrMissingEdition
	}
	delegate := proof.Identity()
	if err := a.tokens.ThawAccount(assetAccount, delegate); err != nil {
		return errors.Wrap(err, "thaw delegated account")
	}
	logger.Debug("thawed asset account", "account", assetAccount, "mint", mint, "delegate", delegate)
	return nil
}
