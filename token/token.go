// Copyright (c) 2025 The nftstake developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

// Package token implements the token ledger primitive: mints, token accounts,
// scoped delegation and authorized minting.
package token

import (
	"github.com/ethereum/go-ethereum/common/math"
	"github.com/pkg/errors"

	"github.com/custodyard/nftstake/authority"
	"github.com/custodyard/nftstake/nftstake"
	"github.com/custodyard/nftstake/state"
)

var (
	ErrMintExists     = errors.New("token: mint already exists")
	ErrUnknownMint    = errors.New("token: unknown mint")
	ErrAccountExists  = errors.New("token: account already exists")
	ErrUnknownAccount = errors.New("token: unknown account")
	ErrNotOwner       = errors.New("token: caller is not the account owner")
	ErrWrongMint      = errors.New("token: account belongs to another mint")
	ErrFrozen         = errors.New("token: account is frozen")
	ErrNotFrozen      = errors.New("token: account is not frozen")
	ErrNotDelegated   = errors.New("token: account is not delegated to caller")
	ErrOverflow       = errors.New("token: amount overflows")
)

func accountKey(addr nftstake.Address) nftstake.Bytes32 {
	return nftstake.BytesToBytes32(append([]byte("a"), addr.Bytes()...))
}

func mintKey(addr nftstake.Address) nftstake.Bytes32 {
	return nftstake.BytesToBytes32(append([]byte("m"), addr.Bytes()...))
}

// Ledger implements the token ledger over state-backed storage.
type Ledger struct {
	addr  nftstake.Address
	state *state.State
}

// New creates a ledger instance rooted at the given address.
func New(addr nftstake.Address, state *state.State) *Ledger {
	return &Ledger{addr, state}
}

func (l *Ledger) getAccount(addr nftstake.Address) (*Account, error) {
	var acc Account
	if err := l.state.DecodeStorage(l.addr, accountKey(addr), acc.Decode); err != nil {
		return nil, err
	}
	return &acc, nil
}

func (l *Ledger) setAccount(addr nftstake.Address, acc *Account) error {
	return l.state.EncodeStorage(l.addr, accountKey(addr), acc.Encode)
}

func (l *Ledger) getAndSetAccount(addr nftstake.Address, cb func(*Account) error) error {
	acc, err := l.getAccount(addr)
	if err != nil {
		return err
	}
	if acc.IsEmpty() {
		return errors.WithMessage(ErrUnknownAccount, addr.String())
	}
	if err := cb(acc); err != nil {
		return err
	}
	return l.setAccount(addr, acc)
}

func (l *Ledger) getMint(addr nftstake.Address) (*Mint, error) {
	var m Mint
	if err := l.state.DecodeStorage(l.addr, mintKey(addr), m.Decode); err != nil {
		return nil, err
	}
	return &m, nil
}

func (l *Ledger) setMint(addr nftstake.Address, m *Mint) error {
	return l.state.EncodeStorage(l.addr, mintKey(addr), m.Encode)
}

// CreateMint registers a new mint whose supply can only be grown by the given
// authority.
func (l *Ledger) CreateMint(mint nftstake.Address, auth nftstake.Address) error {
	existing, err := l.getMint(mint)
	if err != nil {
		return err
	}
	if !existing.IsEmpty() {
		return ErrMintExists
	}
	return l.setMint(mint, &Mint{Authority: auth})
}

// GetMint returns the mint record. An unknown mint yields an empty record.
func (l *Ledger) GetMint(mint nftstake.Address) (*Mint, error) {
	return l.getMint(mint)
}

// CreateAccount provisions an empty token account for owner under the given mint.
func (l *Ledger) CreateAccount(acct, owner, mint nftstake.Address) error {
	m, err := l.getMint(mint)
	if err != nil {
		return err
	}
	if m.IsEmpty() {
		return ErrUnknownMint
	}
	existing, err := l.getAccount(acct)
	if err != nil {
		return err
	}
	if !existing.IsEmpty() {
		return ErrAccountExists
	}
	return l.setAccount(acct, &Account{Owner: owner, Mint: mint})
}

// GetOrCreateAssociated resolves the canonical account holding the given
// owner's tokens of the given mint, provisioning it on first use.
func (l *Ledger) GetOrCreateAssociated(owner, mint nftstake.Address) (nftstake.Address, error) {
	acct := nftstake.CreateAssociatedAddress(owner, mint)
	existing, err := l.getAccount(acct)
	if err != nil {
		return nftstake.Address{}, err
	}
	if existing.IsEmpty() {
		if err := l.CreateAccount(acct, owner, mint); err != nil {
			return nftstake.Address{}, err
		}
	}
	return acct, nil
}

// GetAccount returns the token account. An unknown account yields an empty record.
func (l *Ledger) GetAccount(acct nftstake.Address) (*Account, error) {
	return l.getAccount(acct)
}

// ApproveDelegate authorizes the delegate to act on up to amount units of the
// account on the owner's behalf. Only the account owner may approve, and a
// frozen account cannot change delegation.
func (l *Ledger) ApproveDelegate(acct, delegate, owner nftstake.Address, amount uint64) error {
	return l.getAndSetAccount(acct, func(acc *Account) error {
		if acc.Owner != owner {
			return ErrNotOwner
		}
		if acc.Frozen {
			return ErrFrozen
		}
		acc.Delegate = &delegate
		acc.DelegatedAmount = amount
		return nil
	})
}

// RevokeDelegate removes any standing delegation from the account.
func (l *Ledger) RevokeDelegate(acct, owner nftstake.Address) error {
	return l.getAndSetAccount(acct, func(acc *Account) error {
		if acc.Owner != owner {
			return ErrNotOwner
		}
		if acc.Frozen {
			return ErrFrozen
		}
		acc.Delegate = nil
		acc.DelegatedAmount = 0
		return nil
	})
}

// MintTo mints amount units to the destination account, authenticated as the
// mint authority by derivation proof. Minting zero units is legal.
func (l *Ledger) MintTo(mint, dest nftstake.Address, amount uint64, proof authority.Proof) error {
	m, err := l.getMint(mint)
	if err != nil {
		return err
	}
	if m.IsEmpty() {
		return ErrUnknownMint
	}
	if err := proof.Verify(m.Authority); err != nil {
		return err
	}

	supply, overflow := math.SafeAdd(m.Supply, amount)
	if overflow {
		return ErrOverflow
	}

	if err := l.getAndSetAccount(dest, func(acc *Account) error {
		if acc.Mint != mint {
			return ErrWrongMint
		}
		balance, overflow := math.SafeAdd(acc.Balance, amount)
		if overflow {
			return ErrOverflow
		}
		acc.Balance = balance
		return nil
	}); err != nil {
		return err
	}

	m.Supply = supply
	return l.setMint(mint, m)
}

// FreezeAccount makes the account non-transferable. The caller authenticates
// as the account's current delegate.
func (l *Ledger) FreezeAccount(acct, delegate nftstake.Address) error {
	return l.getAndSetAccount(acct, func(acc *Account) error {
		if !acc.IsDelegatedTo(delegate) {
			return ErrNotDelegated
		}
		if acc.Frozen {
			return ErrFrozen
		}
		acc.Frozen = true
		return nil
	})
}

// ThawAccount lifts the freeze. The caller authenticates as the account's
// current delegate.
func (l *Ledger) ThawAccount(acct, delegate nftstake.Address) error {
	return l.getAndSetAccount(acct, func(acc *Account) error {
		if !acc.IsDelegatedTo(delegate) {
			return ErrNotDelegated
		}
		if !acc.Frozen {
			return ErrNotFrozen
		}
		acc.Frozen = false
		return nil
	})
}
