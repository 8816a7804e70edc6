// Copyright (c) 2025 The nftstake developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package storage

import (
	"github.com/custodyard/nftstake/nftstake"
	"github.com/custodyard/nftstake/state"
)

// Context scopes storage access to one primitive's address space, so that two
// primitives sharing a state cannot collide on slots.
type Context struct {
	address nftstake.Address
	state   *state.State
}

// NewContext creates a storage context for the primitive at the given address.
func NewContext(address nftstake.Address, state *state.State) *Context {
	return &Context{
		address: address,
		state:   state,
	}
}

// Address returns the primitive's address.
func (c *Context) Address() nftstake.Address {
	return c.address
}

// State returns the underlying state.
func (c *Context) State() *state.State {
	return c.state
}
