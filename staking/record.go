// Copyright (c) 2025 The nftstake developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package staking

import (
	"github.com/ethereum/go-ethereum/common/math"

	"github.com/custodyard/nftstake/nftstake"
)

// Status of a stake record.
type Status uint8

const (
	StatusUnstaked = Status(iota) // 0 -> default value
	StatusStaked
)

// Record is the per-(owner, asset) stake ledger entry.
type Record struct {
	AssetAccount nftstake.Address // the custody account holding the asset, set once
	Owner        nftstake.Address // the asset's owner, set once
	Status       Status
	StakeStart   uint64 // unix seconds of the latest transition into staked
	LastRedeem   uint64 // unix seconds of the latest reward settlement
	Initialized  bool   // false until the first stake, never reverts
}

// IsEmpty returns whether the record has never been staked.
func (r *Record) IsEmpty() bool {
	return !r.Initialized && r.Owner.IsZero() && r.AssetAccount.IsZero()
}

// IsStaked returns whether the record is currently staking.
func (r *Record) IsStaked() bool {
	return r.Initialized && r.Status == StatusStaked
}

// Accrued computes the reward earned between the last redemption and now.
// The amount is linear in elapsed seconds; zero elapsed time earns zero.
func (r *Record) Accrued(now uint64) (uint64, error) {
	elapsed, underflow := math.SafeSub(now, r.LastRedeem)
	if underflow {
		return 0, ErrTimestampRegression
	}
	reward, overflow := math.SafeMul(elapsed, nftstake.RewardRatePerSecond)
	if overflow {
		return 0, ErrArithmeticOverflow
	}
	return reward, nil
}

// stake (re)initializes the record as staked at now, resetting both clocks.
func (r *Record) stake(owner, assetAccount nftstake.Address, now uint64) {
	r.AssetAccount = assetAccount
	r.Owner = owner
	r.Status = StatusStaked
	r.StakeStart = now
	r.LastRedeem = now
	r.Initialized = true
}

// unstake flips the record to unstaked. Clocks are left untouched; a stale
// LastRedeem is unreachable until the next stake resets it.
func (r *Record) unstake() {
	r.Status = StatusUnstaked
}

// redeem advances the settlement clock to now.
func (r *Record) redeem(now uint64) {
	r.LastRedeem = now
}
