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
)

// TokenType is the kind of a token instance.
type TokenType int

const (
	Fungible TokenType = iota
	SemiFungible
	NonFungible
	Meta
)

func (t TokenType) String() string {
	switch t {
	case Fungible:
		return "fungible"
	case SemiFungible:
		return "semi-fungible"
	case NonFungible:
		return "non-fungible"
	case Meta:
		return "meta"
	default:
		return fmt.Sprintf("unknown(%d)", int(t))
	}
}

// TokenMetadata is attached to every token instance. Everything but the
// attributes and URIs is fixed once the instance is created.
type TokenMetadata struct {
	Creator    mockvm.Address
	Royalties  uint64
	Hash       []byte
	Name       []byte
	Attributes []byte
	URIs       [][]byte
	Frozen     bool
	Type       TokenType
}

func (m *TokenMetadata) Clone() TokenMetadata {
	res := *m
	res.Hash = cloneBytes(m.Hash)
	res.Name = cloneBytes(m.Name)
	res.Attributes = cloneBytes(m.Attributes)
	res.URIs = mockvm.CloneArgs(m.URIs)
	return res
}

// CompatibleWith reports whether two metadata records may describe the
// same instance.
func (m *TokenMetadata) CompatibleWith(other *TokenMetadata) bool {
	return m.Creator == other.Creator && bytes.Equal(m.Hash, other.Hash)
}

func (m *TokenMetadata) Equal(other *TokenMetadata) bool {
	if !m.CompatibleWith(other) {
		return false
	}
	if m.Royalties != other.Royalties || m.Frozen != other.Frozen || m.Type != other.Type {
		return false
	}
	if !bytes.Equal(m.Name, other.Name) || !bytes.Equal(m.Attributes, other.Attributes) {
		return false
	}
	if len(m.URIs) != len(other.URIs) {
		return false
	}
	for i := range m.URIs {
		if !bytes.Equal(m.URIs[i], other.URIs[i]) {
			return false
		}
	}
	return true
}

// TokenInstance is the balance of one (token id, nonce) pair.
type TokenInstance struct {
	Nonce    uint64
	Balance  *big.Int
	Metadata TokenMetadata
}

func (i *TokenInstance) Clone() *TokenInstance {
	return &TokenInstance{
		Nonce:    i.Nonce,
		Balance:  cloneBig(i.Balance),
		Metadata: i.Metadata.Clone(),
	}
}

// TokenData groups everything an account knows about one token id.
type TokenData struct {
	Instances map[uint64]*TokenInstance
	Roles     map[string]bool
	LastNonce uint64
	Frozen    bool
}

func NewTokenData() *TokenData {
	return &TokenData{
		Instances: map[uint64]*TokenInstance{},
		Roles:     map[string]bool{},
	}
}

func (d *TokenData) Clone() *TokenData {
	if d == nil {
		return nil
	}
	res := NewTokenData()
	for nonce, instance := range d.Instances {
		res.Instances[nonce] = instance.Clone()
	}
	for role, set := range d.Roles {
		res.Roles[role] = set
	}
	res.LastNonce = d.LastNonce
	res.Frozen = d.Frozen
	return res
}

// isEmpty is true if the data carries no information beyond defaults.
func (d *TokenData) isEmpty() bool {
	if d == nil {
		return true
	}
	for _, instance := range d.Instances {
		if instance.Balance.Sign() != 0 {
			return false
		}
	}
	for _, set := range d.Roles {
		if set {
			return false
		}
	}
	return d.LastNonce == 0 && !d.Frozen
}

// Diff lists differences between two token records; zero balances are
// treated as absent instances.
func (d *TokenData) Diff(prefix string, other *TokenData) []string {
	if d.isEmpty() && other.isEmpty() {
		return nil
	}
	if d == nil {
		d = NewTokenData()
	}
	if other == nil {
		other = NewTokenData()
	}
	var res []string
	res = append(res, diffMaps("", d.Instances, other.Instances, func(nonce uint64, a, b *TokenInstance) []string {
		balanceA, balanceB := new(big.Int), new(big.Int)
		if a != nil {
			balanceA = a.Balance
		}
		if b != nil {
			balanceB = b.Balance
		}
		if balanceA.Sign() == 0 && balanceB.Sign() == 0 {
			return nil
		}
		if balanceA.Cmp(balanceB) != 0 {
			return []string{fmt.Sprintf("different balance for nonce %d: %v != %v", nonce, balanceA, balanceB)}
		}
		if !a.Metadata.Equal(&b.Metadata) {
			return []string{fmt.Sprintf("different metadata for nonce %d", nonce)}
		}
		return nil
	})...)
	if rolesA, rolesB := d.RoleNames(), other.RoleNames(); fmt.Sprint(rolesA) != fmt.Sprint(rolesB) {
		res = append(res, fmt.Sprintf("different roles: %v != %v", rolesA, rolesB))
	}
	if d.LastNonce != other.LastNonce {
		res = append(res, fmt.Sprintf("different last nonce: %d != %d", d.LastNonce, other.LastNonce))
	}
	if d.Frozen != other.Frozen {
		res = append(res, fmt.Sprintf("different frozen flag: %v != %v", d.Frozen, other.Frozen))
	}
	for i, diff := range res {
		res[i] = prefix + diff
	}
	return res
}

// RoleNames lists the set roles in a deterministic order.
func (d *TokenData) RoleNames() []string {
	res := []string{}
	for role, set := range d.Roles {
		if set {
			res = append(res, role)
		}
	}
	sort.Strings(res)
	return res
}

// GetESDTBalance returns the balance of the given token instance, zero if
// the instance does not exist.
func (a *Account) GetESDTBalance(tokenID []byte, nonce uint64) *big.Int {
	if instance := a.GetTokenInstance(tokenID, nonce); instance != nil {
		return new(big.Int).Set(instance.Balance)
	}
	return new(big.Int)
}

// GetTokenInstance returns the instance of the given token, nil if absent.
func (a *Account) GetTokenInstance(tokenID []byte, nonce uint64) *TokenInstance {
	data, found := a.ESDT[string(tokenID)]
	if !found {
		return nil
	}
	return data.Instances[nonce]
}

// GetTokenData returns the token record for the given id, creating an
// empty one if necessary.
func (a *Account) GetTokenData(tokenID []byte) *TokenData {
	if a.ESDT == nil {
		a.ESDT = map[string]*TokenData{}
	}
	data, found := a.ESDT[string(tokenID)]
	if !found {
		data = NewTokenData()
		a.ESDT[string(tokenID)] = data
	}
	return data
}

// IncreaseESDTBalance credits a token instance. A missing instance is
// created with the given metadata. If the instance exists and metadata is
// provided, it must be compatible with the stored one; non-empty
// attributes, name and URIs of the new metadata replace the stored ones.
func (a *Account) IncreaseESDTBalance(tokenID []byte, nonce uint64, amount *big.Int, metadata *TokenMetadata) error {
	if amount.Sign() < 0 {
		return ErrNegativeAmount
	}
	data := a.GetTokenData(tokenID)
	instance, found := data.Instances[nonce]
	if !found {
		instance = &TokenInstance{Nonce: nonce, Balance: new(big.Int)}
		if metadata != nil {
			instance.Metadata = metadata.Clone()
		} else if nonce == 0 {
			instance.Metadata.Type = Fungible
		} else {
			instance.Metadata.Type = SemiFungible
		}
		data.Instances[nonce] = instance
	} else if metadata != nil {
		if !instance.Metadata.CompatibleWith(metadata) {
			return fmt.Errorf("%w for %s/%d", ErrIncompatibleMetadata, tokenID, nonce)
		}
		if len(metadata.Attributes) > 0 {
			instance.Metadata.Attributes = cloneBytes(metadata.Attributes)
		}
		if len(metadata.Name) > 0 {
			instance.Metadata.Name = cloneBytes(metadata.Name)
		}
		if len(metadata.URIs) > 0 {
			instance.Metadata.URIs = mockvm.CloneArgs(metadata.URIs)
		}
	}
	instance.Balance = new(big.Int).Add(instance.Balance, amount)
	return nil
}

// SubtractESDTBalance debits a token instance. Debiting an instance the
// account does not hold is an insufficient funds failure. Instances whose
// balance drops to zero are pruned, unless they are fungible.
func (a *Account) SubtractESDTBalance(tokenID []byte, nonce uint64, amount *big.Int) (*TokenInstance, error) {
	if amount.Sign() < 0 {
		return nil, ErrNegativeAmount
	}
	instance := a.GetTokenInstance(tokenID, nonce)
	have := new(big.Int)
	if instance != nil {
		have = instance.Balance
	}
	if instance == nil || have.Cmp(amount) < 0 {
		return nil, &InsufficientFundsError{
			Address:         a.Address,
			TokenIdentifier: cloneBytes(tokenID),
			Nonce:           nonce,
			Have:            new(big.Int).Set(have),
			Want:            new(big.Int).Set(amount),
		}
	}
	instance.Balance = new(big.Int).Sub(instance.Balance, amount)
	res := instance.Clone()
	if instance.Balance.Sign() == 0 && nonce != 0 {
		delete(a.ESDT[string(tokenID)].Instances, nonce)
	}
	return res, nil
}
