// Copyright (c) 2024 Fantom Foundation
//
// Use of this software is governed by the Business Source License included
// in the LICENSE file and at fantom.foundation/bsl11.
//
// Change Date: 2028-4-16
//
// On the date above, in accordance with the Business Source License, use of
// this software will be governed by the GNU Lesser General Public License v3.

package world

import (
	"bytes"
	"fmt"
	"math/big"
	"sort"

	"github.com/Fantom-foundation/MockVM/go/mockvm"
	"golang.org/x/exp/maps"
)

// Account is the state of a single address.
type Account struct {
	Address          mockvm.Address
	Nonce            uint64
	Balance          *big.Int
	ESDT             map[string]*TokenData
	Storage          map[string][]byte
	Username         []byte
	Code             []byte
	CodeMetadata     []byte
	ContractOwner    *mockvm.Address
	DeveloperRewards *big.Int
}

// NewAccount creates an empty account for the given address.
func NewAccount(address mockvm.Address) *Account {
	return &Account{
		Address:          address,
		Balance:          new(big.Int),
		ESDT:             map[string]*TokenData{},
		Storage:          map[string][]byte{},
		DeveloperRewards: new(big.Int),
	}
}

// IsContract reports whether the account holds contract code.
func (a *Account) IsContract() bool {
	return len(a.Code) > 0
}

// Validate checks the invariants every stored account has to satisfy.
func (a *Account) Validate() error {
	if a.Balance != nil && a.Balance.Sign() < 0 {
		return fmt.Errorf("%w of %v", ErrNegativeBalance, a.Address)
	}
	if len(a.Code) > 0 && !a.Address.IsSmartContract() {
		return fmt.Errorf("%w: %v", ErrCodeOnUserAddress, a.Address)
	}
	if a.ContractOwner != nil && len(a.Code) == 0 {
		return fmt.Errorf("%w: %v", ErrOwnerWithoutCode, a.Address)
	}
	for id, data := range a.ESDT {
		for nonce, instance := range data.Instances {
			if instance.Balance.Sign() < 0 {
				return fmt.Errorf("%w of %s/%d at %v", ErrNegativeBalance, id, nonce, a.Address)
			}
		}
	}
	return nil
}

// GetStorage returns the value stored under the given key. Absent keys
// yield an empty value.
func (a *Account) GetStorage(key []byte) []byte {
	return a.Storage[string(key)]
}

// SetStorage stores a value. Storing an empty value removes the key.
func (a *Account) SetStorage(key, value []byte) {
	if a.Storage == nil {
		a.Storage = map[string][]byte{}
	}
	if len(value) == 0 {
		delete(a.Storage, string(key))
		return
	}
	a.Storage[string(key)] = append([]byte{}, value...)
}

// SubtractBalance removes the given amount of native currency.
func (a *Account) SubtractBalance(amount *big.Int) error {
	if amount.Sign() < 0 {
		return ErrNegativeAmount
	}
	if a.Balance.Cmp(amount) < 0 {
		return &InsufficientFundsError{
			Address: a.Address,
			Have:    new(big.Int).Set(a.Balance),
			Want:    new(big.Int).Set(amount),
		}
	}
	a.Balance = new(big.Int).Sub(a.Balance, amount)
	return nil
}

// IncreaseBalance adds the given amount of native currency.
func (a *Account) IncreaseBalance(amount *big.Int) error {
	if amount.Sign() < 0 {
		return ErrNegativeAmount
	}
	a.Balance = new(big.Int).Add(a.Balance, amount)
	return nil
}

func (a *Account) Clone() *Account {
	if a == nil {
		return nil
	}
	res := &Account{
		Address:          a.Address,
		Nonce:            a.Nonce,
		Balance:          cloneBig(a.Balance),
		ESDT:             make(map[string]*TokenData, len(a.ESDT)),
		Storage:          make(map[string][]byte, len(a.Storage)),
		Username:         cloneBytes(a.Username),
		Code:             cloneBytes(a.Code),
		CodeMetadata:     cloneBytes(a.CodeMetadata),
		DeveloperRewards: cloneBig(a.DeveloperRewards),
	}
	for id, data := range a.ESDT {
		res.ESDT[id] = data.Clone()
	}
	for k, v := range a.Storage {
		res.Storage[k] = cloneBytes(v)
	}
	if a.ContractOwner != nil {
		owner := *a.ContractOwner
		res.ContractOwner = &owner
	}
	return res
}

func (a *Account) Equal(other *Account) bool {
	return len(a.Diff("", other)) == 0
}

// Diff lists the differences between two accounts. Zero balances and empty
// storage values are treated as absent.
func (a *Account) Diff(prefix string, other *Account) []string {
	if a == nil {
		a = NewAccount(other.Address)
	}
	if other == nil {
		other = NewAccount(a.Address)
	}
	var res []string
	if bigOrZero(a.Balance).Cmp(bigOrZero(other.Balance)) != 0 {
		res = append(res, fmt.Sprintf("different balance: %v != %v", a.Balance, other.Balance))
	}
	if a.Nonce != other.Nonce {
		res = append(res, fmt.Sprintf("different nonce: %v != %v", a.Nonce, other.Nonce))
	}
	if !bytes.Equal(a.Code, other.Code) {
		res = append(res, fmt.Sprintf("different code: 0x%x != 0x%x", a.Code, other.Code))
	}
	if !bytes.Equal(a.Username, other.Username) {
		res = append(res, fmt.Sprintf("different username: %q != %q", a.Username, other.Username))
	}
	if !equalOwner(a.ContractOwner, other.ContractOwner) {
		res = append(res, fmt.Sprintf("different owner: %v != %v", a.ContractOwner, other.ContractOwner))
	}
	if bigOrZero(a.DeveloperRewards).Cmp(bigOrZero(other.DeveloperRewards)) != 0 {
		res = append(res, fmt.Sprintf("different developer rewards: %v != %v", a.DeveloperRewards, other.DeveloperRewards))
	}
	res = append(res, diffMaps("Storage/", a.Storage, other.Storage, func(k string, x, y []byte) []string {
		if bytes.Equal(x, y) {
			return nil
		}
		return []string{fmt.Sprintf("different value for key 0x%x: 0x%x != 0x%x", k, x, y)}
	})...)
	res = append(res, diffMaps("ESDT/", a.ESDT, other.ESDT, func(id string, x, y *TokenData) []string {
		return x.Diff(id+"/", y)
	})...)
	for i, diff := range res {
		res[i] = prefix + diff
	}
	return res
}

func (a *Account) String() string {
	return fmt.Sprintf("%v{nonce=%d balance=%v tokens=%v storage=%d}",
		a.Address, a.Nonce, a.Balance, sortedKeys(a.ESDT), len(a.Storage))
}

func equalOwner(a, b *mockvm.Address) bool {
	if a == nil || b == nil {
		return a == b
	}
	return *a == *b
}

func bigOrZero(v *big.Int) *big.Int {
	if v == nil {
		return new(big.Int)
	}
	return v
}

func cloneBig(v *big.Int) *big.Int {
	return new(big.Int).Set(bigOrZero(v))
}

func cloneBytes(data []byte) []byte {
	if data == nil {
		return nil
	}
	return append([]byte{}, data...)
}

func sortedKeys[V any](m map[string]V) []string {
	keys := maps.Keys(m)
	sort.Strings(keys)
	return keys
}

// diffMaps compares two maps and returns a list of differences. Missing
// entries are compared against the zero value.
func diffMaps[K comparable, V any](prefix string, a, b map[K]V, diff func(K, V, V) []string) []string {
	var diffs []string
	for k, v := range a {
		diffs = append(diffs, diff(k, v, b[k])...)
	}
	for k, v := range b {
		if _, overlap := a[k]; !overlap {
			diffs = append(diffs, diff(k, a[k], v)...)
		}
	}
	sort.Strings(diffs)
	for i, diff := range diffs {
		diffs[i] = prefix + diff
	}
	return diffs
}
