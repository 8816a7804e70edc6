// Copyright (c) 2025 The nftstake developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package datagen

import (
	"crypto/rand"

	"github.com/custodyard/nftstake/nftstake"
)

func RandAddress() (addr nftstake.Address) {
	rand.Read(addr[:])
	return
}

func RandBytes32() (b nftstake.Bytes32) {
	rand.Read(b[:])
	return
}
