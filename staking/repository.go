// Copyright (c) 2025 The nftstake developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package staking

import (
	"github.com/pkg/errors"

	"github.com/custodyard/nftstake/nftstake"
	"github.com/custodyard/nftstake/storage"
)

var slotRecords = nftstake.BytesToBytes32([]byte("stake-records"))

// Repository persists stake records, addressed deterministically by
// (owner, asset account). The record seed identity is mixed into every key,
// binding the address space to this program's derivation scheme so a record
// can never be looked up under an alternate key.
type Repository struct {
	records *storage.Mapping[nftstake.Bytes32, *Record]
	seed    nftstake.Address
}

// NewRepository creates a repository within the given storage context.
func NewRepository(sctx *storage.Context, seed nftstake.Address) *Repository {
	return &Repository{
		records: storage.NewMapping[nftstake.Bytes32, *Record](sctx, slotRecords),
		seed:    seed,
	}
}

// Key derives the record address for the (owner, asset account) pair.
func (r *Repository) Key(owner, assetAccount nftstake.Address) nftstake.Bytes32 {
	return nftstake.Blake2b(owner.Bytes(), assetAccount.Bytes(), r.seed.Bytes())
}

// Get loads the record for the pair. A never-staked pair yields an empty record.
func (r *Repository) Get(owner, assetAccount nftstake.Address) (*Record, error) {
	rec, err := r.records.Get(r.Key(owner, assetAccount))
	if err != nil {
		return nil, errors.Wrap(err, "get stake record")
	}
	return rec, nil
}

// Set persists the record for the pair.
func (r *Repository) Set(owner, assetAccount nftstake.Address, rec *Record) error {
	if err := r.records.Set(r.Key(owner, assetAccount), rec); err != nil {
		return errors.Wrap(err, "set stake record")
	}
	return nil
}
