// Copyright (c) 2024 Fantom Foundation
//
// Use of this software is governed by the Business Source License included
// in the LICENSE file and at fantom.foundation/bsl11.
//
// Change Date: 2028-4-16
//
// On the date above, in accordance with the Business Source License, use of
// this software will be governed by the GNU Lesser General Public License v3.

// Package txcache implements the transactional overlay over the world state
// in which a (sub)invocation makes its changes. Overlays can be stacked:
// the cache of a nested call reads through the cache of its caller and is
// merged into it only if the nested call succeeds.
package txcache

import (
	"bytes"
	"encoding/binary"
	"math/big"
	"sort"

	"github.com/Fantom-foundation/MockVM/go/mockvm"
	"github.com/Fantom-foundation/MockVM/go/world"
	"github.com/ethereum/go-ethereum/crypto"
)

// Source is the state a cache reads through to. Implemented by the world
// state and by caches themselves.
type Source interface {
	GetAccount(mockvm.Address) (*world.Account, bool)
	ReservedAddress(creator mockvm.Address, nonce uint64) (mockvm.Address, bool)
	BlockchainInfo() mockvm.BlockchainInfo
}

// Target is the state updates of a cache are committed to.
type Target interface {
	ApplyAccounts(accounts []*world.Account, consumed []world.CreatorNonce) error
}

// Cache buffers the reads and writes of one invocation. It is not safe for
// concurrent use.
type Cache struct {
	source   Source
	accounts map[mockvm.Address]*world.Account
	consumed map[world.CreatorNonce]bool
}

func New(source Source) *Cache {
	return &Cache{
		source:   source,
		accounts: map[mockvm.Address]*world.Account{},
		consumed: map[world.CreatorNonce]bool{},
	}
}

// Source returns the state this cache reads through to.
func (c *Cache) Source() Source {
	return c.source
}

// GetAccount returns a snapshot of the current state of an account.
func (c *Cache) GetAccount(address mockvm.Address) (*world.Account, bool) {
	if account, found := c.accounts[address]; found {
		return account.Clone(), true
	}
	return c.source.GetAccount(address)
}

func (c *Cache) ReservedAddress(creator mockvm.Address, nonce uint64) (mockvm.Address, bool) {
	if c.consumed[world.CreatorNonce{Creator: creator, Nonce: nonce}] {
		return mockvm.Address{}, false
	}
	return c.source.ReservedAddress(creator, nonce)
}

func (c *Cache) BlockchainInfo() mockvm.BlockchainInfo {
	return c.source.BlockchainInfo()
}

// ApplyAccounts integrates the updates of a nested cache.
func (c *Cache) ApplyAccounts(accounts []*world.Account, consumed []world.CreatorNonce) error {
	for _, account := range accounts {
		c.accounts[account.Address] = account.Clone()
	}
	for _, key := range consumed {
		c.consumed[key] = true
	}
	return nil
}

// WithAccount runs f on a snapshot of an existing account.
func (c *Cache) WithAccount(address mockvm.Address, f func(*world.Account)) error {
	account, found := c.GetAccount(address)
	if !found {
		return UserError(MsgAccountNotFound)
	}
	f(account)
	return nil
}

// WithAccountMut runs f on an existing account. Changes are kept only if f
// succeeds and the account stays valid.
func (c *Cache) WithAccountMut(address mockvm.Address, f func(*world.Account) error) error {
	account, found := c.GetAccount(address)
	if !found {
		return UserError(MsgAccountNotFound)
	}
	return c.update(account, f)
}

// WithAccountOrCreate is like WithAccountMut but starts from an empty account
// for unknown addresses.
func (c *Cache) WithAccountOrCreate(address mockvm.Address, f func(*world.Account) error) error {
	account, found := c.GetAccount(address)
	if !found {
		account = world.NewAccount(address)
	}
	return c.update(account, f)
}

func (c *Cache) update(account *world.Account, f func(*world.Account) error) error {
	if err := f(account); err != nil {
		return err
	}
	if err := account.Validate(); err != nil {
		return VMError(err.Error())
	}
	c.accounts[account.Address] = account
	return nil
}

// InsertAccount adds a new account; it fails if the address is in use.
func (c *Cache) InsertAccount(account *world.Account) error {
	if _, found := c.GetAccount(account.Address); found {
		return VMError("account already exists")
	}
	return c.update(account.Clone(), func(*world.Account) error { return nil })
}

func (c *Cache) IncreaseEGLDBalance(address mockvm.Address, amount *big.Int) error {
	return c.WithAccountOrCreate(address, func(account *world.Account) error {
		return account.IncreaseBalance(amount)
	})
}

// SubtractEGLDBalance debits native currency; a debit from an unknown
// account or below zero fails with insufficient funds.
func (c *Cache) SubtractEGLDBalance(address mockvm.Address, amount *big.Int) error {
	if amount.Sign() == 0 {
		return nil
	}
	account, found := c.GetAccount(address)
	if !found {
		return VMError(MsgFailedTransfer)
	}
	return c.update(account, func(account *world.Account) error {
		if err := account.SubtractBalance(amount); err != nil {
			return AsTxPanic(err)
		}
		return nil
	})
}

// TransferEGLD moves native currency between accounts.
func (c *Cache) TransferEGLD(from, to mockvm.Address, amount *big.Int) error {
	if err := c.SubtractEGLDBalance(from, amount); err != nil {
		return err
	}
	return c.IncreaseEGLDBalance(to, amount)
}

// IncreaseESDTBalance credits a token instance. Metadata, if given, is used
// to create a missing instance or merged into a compatible existing one.
func (c *Cache) IncreaseESDTBalance(to mockvm.Address, tokenID []byte, nonce uint64, amount *big.Int, metadata *world.TokenMetadata) error {
	return c.WithAccountOrCreate(to, func(account *world.Account) error {
		if err := account.IncreaseESDTBalance(tokenID, nonce, amount, metadata); err != nil {
			return VMError(err.Error())
		}
		return nil
	})
}

// SubtractESDTBalance debits a token instance and returns the debited
// instance, carrying its metadata.
func (c *Cache) SubtractESDTBalance(from mockvm.Address, tokenID []byte, nonce uint64, amount *big.Int) (*world.TokenInstance, error) {
	var res *world.TokenInstance
	account, found := c.GetAccount(from)
	if !found {
		return nil, VMError(MsgFailedTransfer)
	}
	err := c.update(account, func(account *world.Account) error {
		instance, err := account.SubtractESDTBalance(tokenID, nonce, amount)
		if err != nil {
			return AsTxPanic(err)
		}
		res = instance
		return nil
	})
	return res, err
}

// TransferESDT moves tokens between accounts. Metadata travels with the
// tokens.
func (c *Cache) TransferESDT(from, to mockvm.Address, tokenID []byte, nonce uint64, amount *big.Int) error {
	instance, err := c.SubtractESDTBalance(from, tokenID, nonce, amount)
	if err != nil {
		return err
	}
	var metadata *world.TokenMetadata
	if nonce != 0 {
		metadata = &instance.Metadata
	}
	return c.IncreaseESDTBalance(to, tokenID, nonce, amount, metadata)
}

func (c *Cache) IncreaseAccountNonce(address mockvm.Address) error {
	return c.WithAccountMut(address, func(account *world.Account) error {
		account.Nonce++
		return nil
	})
}

// SubtractTxGas pre-charges the gas fee of a transaction to its sender.
func (c *Cache) SubtractTxGas(address mockvm.Address, fee *big.Int) error {
	account, found := c.GetAccount(address)
	if !found {
		return UserError(MsgInsufficientFunds)
	}
	return c.update(account, func(account *world.Account) error {
		if account.SubtractBalance(fee) != nil {
			return UserError(MsgInsufficientFunds)
		}
		return nil
	})
}

// ReserveNewAddress determines the address of a contract deployed by the
// creator at the given nonce. A reservation registered for the pair is
// consumed; otherwise the address is derived from the pair.
func (c *Cache) ReserveNewAddress(creator mockvm.Address, nonce uint64) mockvm.Address {
	if address, found := c.ReservedAddress(creator, nonce); found {
		c.consumed[world.CreatorNonce{Creator: creator, Nonce: nonce}] = true
		return address
	}
	return DeriveContractAddress(creator, nonce)
}

// DeriveContractAddress computes keccak256(creator || nonce) and shapes it
// into a contract address: zero prefix, hash body, and the last two bytes
// of the creator to keep the shard of the creator.
func DeriveContractAddress(creator mockvm.Address, nonce uint64) mockvm.Address {
	var nonceBytes [8]byte
	binary.LittleEndian.PutUint64(nonceBytes[:], nonce)
	hash := crypto.Keccak256(creator[:], nonceBytes[:])

	var res mockvm.Address
	copy(res[mockvm.NumInitZeroBytesForSCAddress:], hash[mockvm.NumInitZeroBytesForSCAddress:mockvm.AddressLength-2])
	copy(res[mockvm.AddressLength-2:], creator[mockvm.AddressLength-2:])
	return res
}

// Updates is the frozen content of a cache, ready to be committed.
type Updates struct {
	accounts []*world.Account
	consumed []world.CreatorNonce
}

// IntoUpdates freezes the overlay. The cache must not be used afterwards.
func (c *Cache) IntoUpdates() *Updates {
	res := &Updates{}
	for _, account := range c.accounts {
		res.accounts = append(res.accounts, account)
	}
	sort.Slice(res.accounts, func(i, j int) bool {
		return bytes.Compare(res.accounts[i].Address[:], res.accounts[j].Address[:]) < 0
	})
	for key := range c.consumed {
		res.consumed = append(res.consumed, key)
	}
	c.accounts = nil
	c.consumed = nil
	return res
}

// Accounts lists the accounts touched by the update.
func (u *Updates) Accounts() []mockvm.Address {
	res := make([]mockvm.Address, 0, len(u.accounts))
	for _, account := range u.accounts {
		res = append(res, account.Address)
	}
	return res
}

// Apply commits the updates to the target.
func (u *Updates) Apply(target Target) error {
	return target.ApplyAccounts(u.accounts, u.consumed)
}

// Commit is a shortcut for committing the content of a cache to a target.
func (c *Cache) Commit(target Target) error {
	return c.IntoUpdates().Apply(target)
}
