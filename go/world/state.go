// Copyright (c) 2024 Fantom Foundation
//
// Use of this software is governed by the Business Source License included
// in the LICENSE file and at fantom.foundation/bsl11.
//
// Change Date: 2028-4-16
//
// On the date above, in accordance with the Business Source License, use of
// this software will be governed by the GNU Lesser General Public License v3.

// Package world provides the in-memory world state of the mock chain:
// accounts with their native and token balances, storage, contract code,
// and the block information visible to contracts.
package world

import (
	"bytes"
	"fmt"
	"math/big"
	"sort"
	"sync"

	"github.com/Fantom-foundation/MockVM/go/mockvm"
)

// CreatorNonce identifies a deploy by its creator and the creator's nonce
// at the time of the deploy.
type CreatorNonce struct {
	Creator mockvm.Address
	Nonce   uint64
}

// State is the world state. All methods are safe for concurrent use;
// transactions executed against the same state are serialized by its lock.
type State struct {
	mu           sync.Mutex
	accounts     map[mockvm.Address]*Account
	newAddresses map[CreatorNonce]mockvm.Address
	blockInfo    mockvm.BlockchainInfo
}

func NewState() *State {
	return &State{
		accounts:     map[mockvm.Address]*Account{},
		newAddresses: map[CreatorNonce]mockvm.Address{},
	}
}

// GetAccount returns a snapshot of the account at the given address. The
// snapshot may be freely modified by the caller.
func (s *State) GetAccount(address mockvm.Address) (*Account, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	account, found := s.accounts[address]
	if !found {
		return nil, false
	}
	return account.Clone(), true
}

// MutateAccount applies f to an existing account. The change is only
// applied if f succeeds and the result satisfies the account invariants.
func (s *State) MutateAccount(address mockvm.Address, f func(*Account) error) error {
	return s.mutate(address, false, f)
}

// MutateOrCreateAccount is like MutateAccount but starts from an empty
// account if the address is not yet known.
func (s *State) MutateOrCreateAccount(address mockvm.Address, f func(*Account) error) error {
	return s.mutate(address, true, f)
}

func (s *State) mutate(address mockvm.Address, create bool, f func(*Account) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	account, found := s.accounts[address]
	if !found {
		if !create {
			return fmt.Errorf("%w: %v", ErrAccountNotFound, address)
		}
		account = NewAccount(address)
	}
	updated := account.Clone()
	if err := f(updated); err != nil {
		return err
	}
	if err := updated.Validate(); err != nil {
		return err
	}
	s.accounts[address] = updated
	return nil
}

// AddAccount inserts a new account. It fails if the address is taken or the
// account violates an invariant.
func (s *State) AddAccount(account *Account) error {
	normalized := account.Clone()
	if normalized.Balance == nil {
		normalized.Balance = new(big.Int)
	}
	if err := normalized.Validate(); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, found := s.accounts[account.Address]; found {
		return fmt.Errorf("%w: %v", ErrAccountExists, account.Address)
	}
	s.accounts[account.Address] = normalized
	return nil
}

// ReserveDeployAddress registers the address to be used by the deploy of
// the given creator at the given nonce.
func (s *State) ReserveDeployAddress(creator mockvm.Address, nonce uint64, address mockvm.Address) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.newAddresses[CreatorNonce{creator, nonce}] = address
}

// ReservedAddress looks up a reservation without consuming it.
func (s *State) ReservedAddress(creator mockvm.Address, nonce uint64) (mockvm.Address, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	res, found := s.newAddresses[CreatorNonce{creator, nonce}]
	return res, found
}

// ConsumeReservedAddress returns and removes a reservation.
func (s *State) ConsumeReservedAddress(creator mockvm.Address, nonce uint64) (mockvm.Address, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	key := CreatorNonce{creator, nonce}
	res, found := s.newAddresses[key]
	delete(s.newAddresses, key)
	return res, found
}

// ApplyAccounts commits a batch of account states and consumes the listed
// address reservations. Either all accounts are written or none.
func (s *State) ApplyAccounts(accounts []*Account, consumed []CreatorNonce) error {
	for _, account := range accounts {
		if err := account.Validate(); err != nil {
			return err
		}
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, account := range accounts {
		s.accounts[account.Address] = account.Clone()
	}
	for _, key := range consumed {
		delete(s.newAddresses, key)
	}
	return nil
}

func (s *State) SetCurrentBlockInfo(info mockvm.BlockInfo) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.blockInfo.Current = info
}

func (s *State) SetPreviousBlockInfo(info mockvm.BlockInfo) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.blockInfo.Previous = info
}

func (s *State) BlockchainInfo() mockvm.BlockchainInfo {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.blockInfo
}

// Addresses lists all known addresses in ascending order.
func (s *State) Addresses() []mockvm.Address {
	s.mu.Lock()
	defer s.mu.Unlock()
	res := make([]mockvm.Address, 0, len(s.accounts))
	for address := range s.accounts {
		res = append(res, address)
	}
	sort.Slice(res, func(i, j int) bool {
		return bytes.Compare(res[i][:], res[j][:]) < 0
	})
	return res
}

// SumNativeBalances totals the native currency held by all accounts.
func (s *State) SumNativeBalances() *big.Int {
	s.mu.Lock()
	defer s.mu.Unlock()
	res := new(big.Int)
	for _, account := range s.accounts {
		res.Add(res, account.Balance)
	}
	return res
}

// Clone creates an independent deep copy of the state.
func (s *State) Clone() *State {
	s.mu.Lock()
	defer s.mu.Unlock()
	res := NewState()
	for address, account := range s.accounts {
		res.accounts[address] = account.Clone()
	}
	for key, address := range s.newAddresses {
		res.newAddresses[key] = address
	}
	res.blockInfo = s.blockInfo
	return res
}

func (s *State) Equal(other *State) bool {
	return len(s.Diff(other)) == 0
}

// Diff lists the differences between the accounts of two states. Accounts
// only holding default values are ignored.
func (s *State) Diff(other *State) []string {
	a, b := s.snapshot(), other.snapshot()
	return diffMaps("", a, b, func(address mockvm.Address, x, y *Account) []string {
		if x == nil {
			x = NewAccount(address)
		}
		if y == nil {
			y = NewAccount(address)
		}
		return x.Diff(fmt.Sprintf("%v/", address), y)
	})
}

func (s *State) snapshot() map[mockvm.Address]*Account {
	s.mu.Lock()
	defer s.mu.Unlock()
	res := make(map[mockvm.Address]*Account, len(s.accounts))
	for address, account := range s.accounts {
		res[address] = account.Clone()
	}
	return res
}
