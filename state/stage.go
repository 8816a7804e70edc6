// Copyright (c) 2025 The nftstake developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package state

import "github.com/custodyard/nftstake/kv"

// Stage abstracts the process of committing state changes to the backing
// store. All changes land in one batch write.
type Stage struct {
	batch kv.Batch
}

// Commit commits the batch to the store.
func (s *Stage) Commit() error {
	if err := s.batch.Write(); err != nil {
		return &Error{err}
	}
	return nil
}

// Len returns the number of pending writes.
func (s *Stage) Len() int {
	return s.batch.Len()
}
