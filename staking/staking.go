// Copyright (c) 2025 The nftstake developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

// Package staking implements the stake ledger and custody state machine: the
// per-asset record tracking custody, and the stake/unstake/redeem operations
// orchestrating the token ledger, the custody authority and the reward mint
// against it.
package staking

import (
	"github.com/pkg/errors"

	"github.com/custodyard/nftstake/authority"
	"github.com/custodyard/nftstake/custody"
	"github.com/custodyard/nftstake/log"
	"github.com/custodyard/nftstake/metrics"
	"github.com/custodyard/nftstake/nftstake"
	"github.com/custodyard/nftstake/state"
	"github.com/custodyard/nftstake/storage"
	"github.com/custodyard/nftstake/token"
)

var logger = log.WithContext("pkg", "staking")

func countOp(op, outcome string) {
	metrics.CounterVec("staking_ops_total", []string{"op", "outcome"}).
		AddWithLabel(1, map[string]string{"op": op, "outcome": outcome})
}

func stakedGauge() metrics.GaugeMeter {
	return metrics.Gauge("staking_staked_records")
}

// Staking orchestrates the staking lifecycle of unique assets.
//
// Every operation executes as one atomic unit: a state checkpoint is taken on
// entry and every mutation is reverted if any step fails, so the record and
// the collaborating primitives can never disagree about custody.
type Staking struct {
	program    nftstake.Address
	state      *state.State
	repo       *Repository
	tokens     *token.Ledger
	custodian  *custody.Authority
	rewardMint nftstake.Address

	custodyAuthority nftstake.Address
	custodyProof     authority.Proof
	mintAuthority    nftstake.Address
	mintProof        authority.Proof
}

// New creates a staking instance for the program at the given address.
func New(
	program nftstake.Address,
	st *state.State,
	tokens *token.Ledger,
	custodian *custody.Authority,
	rewardMint nftstake.Address,
) *Staking {
	custodyAuthority, custodyProof := authority.Derive(nftstake.SeedCustodyAuthority, program)
	mintAuthority, mintProof := authority.Derive(nftstake.SeedRewardMint, program)
	recordSeed, _ := authority.Derive(nftstake.SeedStakeRecord, program)

	return &Staking{
		program:    program,
		state:      st,
		repo:       NewRepository(storage.NewContext(program, st), recordSeed),
		tokens:     tokens,
		custodian:  custodian,
		rewardMint: rewardMint,

		custodyAuthority: custodyAuthority,
		custodyProof:     custodyProof,
		mintAuthority:    mintAuthority,
		mintProof:        mintProof,
	}
}

// CustodyAuthority returns the derived identity holding custody delegations.
func (s *Staking) CustodyAuthority() nftstake.Address {
	return s.custodyAuthority
}

// RewardMintAuthority returns the derived identity authorized to mint rewards.
func (s *Staking) RewardMintAuthority() nftstake.Address {
	return s.mintAuthority
}

// InitializeRewardMint registers the reward mint under the derived mint
// authority. It must be called once before the first redeem.
func (s *Staking) InitializeRewardMint() error {
	return s.tokens.CreateMint(s.rewardMint, s.mintAuthority)
}

//
// Getters - no state change
//

// Get returns the stake record for the pair. A never-staked pair yields an
// empty record.
func (s *Staking) Get(owner, assetAccount nftstake.Address) (*Record, error) {
	return s.repo.Get(owner, assetAccount)
}

// IsStaked returns whether the pair is currently staking.
func (s *Staking) IsStaked(owner, assetAccount nftstake.Address) (bool, error) {
	rec, err := s.repo.Get(owner, assetAccount)
	if err != nil {
		return false, err
	}
	return rec.IsStaked(), nil
}

// Accrued returns the reward claimable at now without settling it.
func (s *Staking) Accrued(owner, assetAccount nftstake.Address, now uint64) (uint64, error) {
	rec, err := s.repo.Get(owner, assetAccount)
	if err != nil {
		return 0, err
	}
	if !rec.IsStaked() {
		return 0, nil
	}
	return rec.Accrued(now)
}

//
// Setters - state change
//

// Stake places the asset into custody and marks the record staked at now.
//
// The custody delegate is approved for exactly one unit of the asset, the
// custody account is frozen under the derived authority, and the record's
// clocks are both set to now. Staking a pair whose record already exists
// resets the record; there is no re-initialization rejection.
func (s *Staking) Stake(
	owner nftstake.Address,
	assetAccount nftstake.Address,
	assetMint nftstake.Address,
	edition nftstake.Bytes32,
	now uint64,
) (err error) {
	logger.Debug("staking asset", "owner", owner, "account", assetAccount)

	checkpoint := s.state.NewCheckpoint()
	defer func() {
		if err != nil {
			s.state.RevertTo(checkpoint)
			logger.Info("stake failed", "owner", owner, "account", assetAccount, "error", err)
			countOp("stake", "rejected")
		}
	}()

	acct, err := s.tokens.GetAccount(assetAccount)
	if err != nil {
		return err
	}
	if acct.IsEmpty() {
		return errors.Wrap(token.ErrUnknownAccount, "stake")
	}
	if acct.Owner != owner {
		return ErrUnauthorizedOwner
	}

	// scoped, single-unit delegation
	if err = s.tokens.ApproveDelegate(assetAccount, s.custodyAuthority, owner, 1); err != nil {
		return errors.Wrap(err, "approve custody delegate")
	}

	if err = s.custodian.Freeze(assetAccount, edition, assetMint, s.custodyProof); err != nil {
		return err
	}

	prev, err := s.repo.Get(owner, assetAccount)
	if err != nil {
		return err
	}

	rec := &Record{}
	rec.stake(owner, assetAccount, now)
	if err = s.repo.Set(owner, assetAccount, rec); err != nil {
		return err
	}

	if !prev.IsStaked() {
		stakedGauge().Add(1)
	}
	logger.Info("staked asset", "owner", owner, "account", assetAccount, "start", now)
	countOp("stake", "ok")
	return nil
}

// Unstake releases the asset from custody and marks the record unstaked.
//
// Reward accrued since the last redemption is not settled; it becomes
// unreachable once the record leaves the staked state.
func (s *Staking) Unstake(
	owner nftstake.Address,
	assetAccount nftstake.Address,
	assetMint nftstake.Address,
	edition nftstake.Bytes32,
) (err error) {
	logger.Debug("unstaking asset", "owner", owner, "account", assetAccount)

	checkpoint := s.state.NewCheckpoint()
	defer func() {
		if err != nil {
			s.state.RevertTo(checkpoint)
			logger.Info("unstake failed", "owner", owner, "account", assetAccount, "error", err)
			countOp("unstake", "rejected")
		}
	}()

	rec, err := s.guardedRecord(owner, assetAccount)
	if err != nil {
		return err
	}

	if err = s.custodian.Thaw(assetAccount, edition, assetMint, s.custodyProof); err != nil {
		return err
	}

	if err = s.tokens.RevokeDelegate(assetAccount, owner); err != nil {
		return errors.Wrap(err, "revoke custody delegate")
	}

	rec.unstake()
	if err = s.repo.Set(owner, assetAccount, rec); err != nil {
		return err
	}

	stakedGauge().Add(-1)
	logger.Info("unstaked asset", "owner", owner, "account", assetAccount)
	countOp("unstake", "ok")
	return nil
}

// Redeem settles the reward accrued since the last redemption, minting it to
// the owner's reward-token account, and advances the settlement clock to now.
// It returns the minted amount. Redeeming with zero elapsed time mints zero.
func (s *Staking) Redeem(
	owner nftstake.Address,
	assetAccount nftstake.Address,
	now uint64,
) (amount uint64, err error) {
	logger.Debug("redeeming reward", "owner", owner, "account", assetAccount, "now", now)

	checkpoint := s.state.NewCheckpoint()
	defer func() {
		if err != nil {
			s.state.RevertTo(checkpoint)
			logger.Info("redeem failed", "owner", owner, "account", assetAccount, "error", err)
			countOp("redeem", "rejected")
		}
	}()

	rec, err := s.guardedRecord(owner, assetAccount)
	if err != nil {
		return 0, err
	}

	if amount, err = rec.Accrued(now); err != nil {
		return 0, err
	}

	dest, err := s.tokens.GetOrCreateAssociated(owner, s.rewardMint)
	if err != nil {
		return 0, errors.Wrap(err, "reward account")
	}

	if err = s.tokens.MintTo(s.rewardMint, dest, amount, s.mintProof); err != nil {
		return 0, errors.Wrap(err, "mint reward")
	}

	rec.redeem(now)
	if err = s.repo.Set(owner, assetAccount, rec); err != nil {
		return 0, err
	}

	logger.Info("redeemed reward", "owner", owner, "account", assetAccount, "amount", amount)
	countOp("redeem", "ok")
	return amount, nil
}

// guardedRecord loads the record for the pair and applies the shared
// unstake/redeem preconditions: the record must have been staked at least
// once, must bind the supplied owner and asset account, and must currently be
// staked.
func (s *Staking) guardedRecord(owner, assetAccount nftstake.Address) (*Record, error) {
	rec, err := s.repo.Get(owner, assetAccount)
	if err != nil {
		return nil, err
	}
	if rec.IsEmpty() || !rec.Initialized {
		// distinguish a caller reaching for someone else's asset from a
		// record that simply was never staked
		acct, aerr := s.tokens.GetAccount(assetAccount)
		if aerr != nil {
			return nil, aerr
		}
		if !acct.IsEmpty() && acct.Owner != owner {
			return nil, ErrUnauthorizedOwner
		}
		return nil, ErrUninitializedAccount
	}
	if rec.Owner != owner || rec.AssetAccount != assetAccount {
		return nil, ErrUnauthorizedOwner
	}
	if rec.Status != StatusStaked {
		return nil, ErrInvalidStakeState
	}
	return rec, nil
}
