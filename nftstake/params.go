// Copyright (c) 2025 The nftstake developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package nftstake

// Protocol constants. These are fixed properties of the staking protocol, not
// tunable configuration.
const (
	// RewardRatePerSecond is the amount of reward-token base units accrued per
	// second a staked asset spends in custody.
	RewardRatePerSecond = uint64(1_000_000)

	// SeedCustodyAuthority is the public seed label of the derived identity
	// that holds the custody delegation over staked assets.
	SeedCustodyAuthority = "authority"

	// SeedRewardMint is the public seed label of the derived identity
	// authorized to mint reward tokens.
	SeedRewardMint = "mint"

	// SeedStakeRecord is the public seed label mixed into stake record keys,
	// binding every record address to this program's derivation scheme.
	SeedStakeRecord = "stake-record"
)
