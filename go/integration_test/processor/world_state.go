// Copyright (c) 2024 Fantom Foundation
//
// Use of this software is governed by the Business Source License included
// in the LICENSE file and at fantom.foundation/bsl11.
//
// Change Date: 2028-4-16
//
// On the date above, in accordance with the Business Source License, use of
// this software will be governed by the GNU Lesser General Public License v3.

package processor

import (
	"math/big"
	"testing"

	"github.com/Fantom-foundation/MockVM/go/mockvm"
	"github.com/Fantom-foundation/MockVM/go/world"
)

// ----------------------------------------------------------------------------
// WorldState
// ----------------------------------------------------------------------------

// WorldState provides a compact way of describing the world state of a
// chain for testing. It is mainly intended to be used to define pre/post
// states of test scenarios for transaction processors.
type WorldState map[mockvm.Address]Account

// Build creates the world state described by s.
func (s WorldState) Build(t *testing.T) *world.State {
	t.Helper()
	state := world.NewState()
	for address, account := range s {
		if err := state.AddAccount(account.build(t, address)); err != nil {
			t.Fatalf("failed to add account %v: %v", address, err)
		}
	}
	return state
}

// ----------------------------------------------------------------------------
// Account
// ----------------------------------------------------------------------------

// Account describes an account in a WorldState. Token instances with a
// non-zero nonce get semi-fungible metadata created by the account owner,
// or by the account itself if it has no owner.
type Account struct {
	Balance          int64
	Nonce            uint64
	Code             string
	Owner            *mockvm.Address
	Storage          map[string][]byte
	Tokens           []Token
	Roles            map[string][]string
	DeveloperRewards int64
}

// Token is the balance of one token instance.
type Token struct {
	ID     string
	Nonce  uint64
	Amount int64
}

func (a *Account) build(t *testing.T, address mockvm.Address) *world.Account {
	t.Helper()
	res := world.NewAccount(address)
	res.Balance = big.NewInt(a.Balance)
	res.Nonce = a.Nonce
	res.DeveloperRewards = big.NewInt(a.DeveloperRewards)
	if a.Code != "" {
		res.Code = []byte(a.Code)
	}
	if a.Owner != nil {
		owner := *a.Owner
		res.ContractOwner = &owner
	}
	for key, value := range a.Storage {
		res.SetStorage([]byte(key), value)
	}
	for _, token := range a.Tokens {
		var metadata *world.TokenMetadata
		if token.Nonce != 0 {
			creator := address
			if a.Owner != nil {
				creator = *a.Owner
			}
			metadata = &world.TokenMetadata{Creator: creator, Hash: []byte("hash"), Type: world.SemiFungible}
		}
		if err := res.IncreaseESDTBalance([]byte(token.ID), token.Nonce, big.NewInt(token.Amount), metadata); err != nil {
			t.Fatalf("failed to add tokens to %v: %v", address, err)
		}
	}
	for id, roles := range a.Roles {
		for _, role := range roles {
			res.SetRole([]byte(id), role, true)
		}
	}
	return res
}
