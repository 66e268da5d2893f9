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
	"errors"
	"math/big"
	"testing"

	"github.com/Fantom-foundation/MockVM/go/mockvm"
)

var (
	alice = mockvm.NamedAddress("alice")
	bob   = mockvm.NamedAddress("bob")
	adder = mockvm.NamedContractAddress("adder")
)

func TestState_AddAccountFailsForExistingAccount(t *testing.T) {
	state := NewState()
	if err := state.AddAccount(NewAccount(alice)); err != nil {
		t.Fatalf("failed to add account: %v", err)
	}
	if err := state.AddAccount(NewAccount(alice)); !errors.Is(err, ErrAccountExists) {
		t.Errorf("unexpected error, wanted %v, got %v", ErrAccountExists, err)
	}
}

func TestState_CodeRequiresContractAddress(t *testing.T) {
	state := NewState()
	account := NewAccount(alice)
	account.Code = []byte("adder")
	if err := state.AddAccount(account); !errors.Is(err, ErrCodeOnUserAddress) {
		t.Errorf("unexpected error, wanted %v, got %v", ErrCodeOnUserAddress, err)
	}

	contract := NewAccount(adder)
	contract.Code = []byte("adder")
	contract.ContractOwner = &alice
	if err := state.AddAccount(contract); err != nil {
		t.Errorf("failed to add contract: %v", err)
	}
}

func TestState_GetAccountReturnsSnapshot(t *testing.T) {
	state := NewState()
	account := NewAccount(alice)
	account.Balance = big.NewInt(100)
	if err := state.AddAccount(account); err != nil {
		t.Fatalf("failed to add account: %v", err)
	}

	snapshot, found := state.GetAccount(alice)
	if !found {
		t.Fatalf("account not found")
	}
	snapshot.Balance.SetInt64(5)
	snapshot.SetStorage([]byte("key"), []byte("value"))

	current, _ := state.GetAccount(alice)
	if want, got := int64(100), current.Balance.Int64(); want != got {
		t.Errorf("snapshot modification leaked into state, wanted %d, got %d", want, got)
	}
	if len(current.Storage) != 0 {
		t.Errorf("snapshot modification leaked into storage")
	}
}

func TestState_MutateAccountIsAtomic(t *testing.T) {
	state := NewState()
	account := NewAccount(alice)
	account.Balance = big.NewInt(10)
	if err := state.AddAccount(account); err != nil {
		t.Fatalf("failed to add account: %v", err)
	}

	err := state.MutateAccount(alice, func(a *Account) error {
		a.Nonce++
		return a.SubtractBalance(big.NewInt(30))
	})
	if !errors.Is(err, ErrInsufficientFunds) {
		t.Fatalf("unexpected error, wanted %v, got %v", ErrInsufficientFunds, err)
	}
	var typed *InsufficientFundsError
	if !errors.As(err, &typed) || typed.Have.Int64() != 10 || typed.Want.Int64() != 30 {
		t.Errorf("unexpected error details: %v", err)
	}

	current, _ := state.GetAccount(alice)
	if current.Nonce != 0 || current.Balance.Int64() != 10 {
		t.Errorf("failed mutation was partially applied: %v", current)
	}
}

func TestState_MutateAccountRequiresExistingAccount(t *testing.T) {
	state := NewState()
	err := state.MutateAccount(bob, func(a *Account) error { return nil })
	if !errors.Is(err, ErrAccountNotFound) {
		t.Errorf("unexpected error, wanted %v, got %v", ErrAccountNotFound, err)
	}
	err = state.MutateOrCreateAccount(bob, func(a *Account) error {
		return a.IncreaseBalance(big.NewInt(3))
	})
	if err != nil {
		t.Fatalf("failed to create account: %v", err)
	}
	if account, found := state.GetAccount(bob); !found || account.Balance.Int64() != 3 {
		t.Errorf("account was not created correctly: %v", account)
	}
}

func TestState_ReservedAddressesAreConsumedOnUse(t *testing.T) {
	state := NewState()
	state.ReserveDeployAddress(alice, 1, adder)

	if got, found := state.ConsumeReservedAddress(alice, 2); found {
		t.Errorf("unexpected reservation for wrong nonce: %v", got)
	}
	got, found := state.ConsumeReservedAddress(alice, 1)
	if !found || got != adder {
		t.Errorf("unexpected reservation, wanted %v, got %v", adder, got)
	}
	if _, found := state.ConsumeReservedAddress(alice, 1); found {
		t.Errorf("reservation was not consumed")
	}
}

func TestAccount_TokenTransferOfMissingNonceIsInsufficientFunds(t *testing.T) {
	account := NewAccount(alice)
	if err := account.IncreaseESDTBalance([]byte("NFT-aaaaaa"), 1, big.NewInt(1), nil); err != nil {
		t.Fatalf("failed to increase balance: %v", err)
	}
	_, err := account.SubtractESDTBalance([]byte("NFT-aaaaaa"), 2, big.NewInt(1))
	if !errors.Is(err, ErrInsufficientFunds) {
		t.Errorf("unexpected error, wanted %v, got %v", ErrInsufficientFunds, err)
	}
}

func TestAccount_EmptiedNFTInstancesArePruned(t *testing.T) {
	account := NewAccount(alice)
	id := []byte("NFT-aaaaaa")
	if err := account.IncreaseESDTBalance(id, 7, big.NewInt(2), nil); err != nil {
		t.Fatalf("failed to increase balance: %v", err)
	}
	if _, err := account.SubtractESDTBalance(id, 7, big.NewInt(2)); err != nil {
		t.Fatalf("failed to subtract balance: %v", err)
	}
	if instance := account.GetTokenInstance(id, 7); instance != nil {
		t.Errorf("empty instance was not pruned: %v", instance)
	}
	if !account.Equal(NewAccount(alice)) {
		t.Errorf("account with pruned instance should equal an empty account: %v", account.Diff("", NewAccount(alice)))
	}
}

func TestAccount_IncreaseWithIncompatibleMetadataFails(t *testing.T) {
	account := NewAccount(alice)
	id := []byte("NFT-aaaaaa")
	first := &TokenMetadata{Creator: alice, Hash: []byte{1}, Attributes: []byte("a")}
	if err := account.IncreaseESDTBalance(id, 1, big.NewInt(1), first); err != nil {
		t.Fatalf("failed to create instance: %v", err)
	}

	compatible := &TokenMetadata{Creator: alice, Hash: []byte{1}, Attributes: []byte("b")}
	if err := account.IncreaseESDTBalance(id, 1, big.NewInt(1), compatible); err != nil {
		t.Fatalf("compatible metadata rejected: %v", err)
	}
	instance := account.GetTokenInstance(id, 1)
	if instance.Balance.Int64() != 2 || string(instance.Metadata.Attributes) != "b" {
		t.Errorf("metadata was not merged: %v", instance)
	}

	incompatible := &TokenMetadata{Creator: bob, Hash: []byte{1}}
	if err := account.IncreaseESDTBalance(id, 1, big.NewInt(1), incompatible); !errors.Is(err, ErrIncompatibleMetadata) {
		t.Errorf("unexpected error, wanted %v, got %v", ErrIncompatibleMetadata, err)
	}
}

func TestAccount_RoleFlags(t *testing.T) {
	account := NewAccount(alice)
	id := []byte("FOO-aaaaaa")
	account.SetRole(id, RoleLocalMint, true)
	account.SetRole(id, RoleNFTCreate, true)
	if want, got := uint64(1|4), account.RoleFlags(id); want != got {
		t.Errorf("unexpected role flags, wanted %b, got %b", want, got)
	}
	account.SetRole(id, RoleLocalMint, false)
	if account.HasRole(id, RoleLocalMint) {
		t.Errorf("role was not revoked")
	}
}

func TestState_DiffReportsDifferences(t *testing.T) {
	a := NewState()
	if err := a.AddAccount(&Account{Address: alice, Balance: big.NewInt(1)}); err != nil {
		t.Fatalf("failed to add account: %v", err)
	}
	b := a.Clone()
	if !a.Equal(b) {
		t.Fatalf("clone should be equal: %v", a.Diff(b))
	}
	if err := b.MutateAccount(alice, func(a *Account) error {
		a.SetStorage([]byte("k"), []byte("v"))
		return nil
	}); err != nil {
		t.Fatalf("failed to mutate: %v", err)
	}
	if diff := a.Diff(b); len(diff) != 1 {
		t.Errorf("unexpected diff: %v", diff)
	}

	// empty accounts are ignored
	c := a.Clone()
	if err := c.AddAccount(NewAccount(bob)); err != nil {
		t.Fatalf("failed to add account: %v", err)
	}
	if !a.Equal(c) {
		t.Errorf("empty account should be ignored: %v", a.Diff(c))
	}
}

func TestState_SumNativeBalances(t *testing.T) {
	state := NewState()
	for i, address := range []mockvm.Address{alice, bob} {
		if err := state.AddAccount(&Account{Address: address, Balance: big.NewInt(int64(10 * (i + 1)))}); err != nil {
			t.Fatalf("failed to add account: %v", err)
		}
	}
	if want, got := int64(30), state.SumNativeBalances().Int64(); want != got {
		t.Errorf("unexpected sum, wanted %d, got %d", want, got)
	}
}
