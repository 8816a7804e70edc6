// Copyright (c) 2025 The nftstake developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package staking

import "github.com/pkg/errors"

var (
	// ErrAlreadyInitialized is reserved: staking an already-initialized record
	// currently resets it instead of being rejected, so this is never returned.
	ErrAlreadyInitialized = errors.New("staking: account already initialized")

	// ErrUninitializedAccount means unstake or redeem was attempted on a
	// record that was never staked.
	ErrUninitializedAccount = errors.New("staking: account not initialized")

	// ErrInvalidStakeState means unstake or redeem was attempted while the
	// record is not staking anything.
	ErrInvalidStakeState = errors.New("staking: account is not staking anything")

	// ErrUnauthorizedOwner means the caller or the supplied asset account does
	// not match what the record binds.
	ErrUnauthorizedOwner = errors.New("staking: unauthorized owner")

	// ErrArithmeticOverflow means the reward amount exceeds the representable
	// range.
	ErrArithmeticOverflow = errors.New("staking: reward amount overflows")

	// ErrTimestampRegression means the supplied time precedes the last
	// recorded redemption.
	ErrTimestampRegression = errors.New("staking: time precedes last redemption")
)
