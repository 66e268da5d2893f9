// Copyright (c) 2024 Fantom Foundation
//
// Use of this software is governed by the Business Source License included
// in the LICENSE file and at fantom.foundation/bsl11.
//
// Change Date: 2028-4-16
//
// On the date above, in accordance with the Business Source License, use of
// this software will be governed by the GNU Lesser General Public License v3.

package builtin

import (
	"math/big"
	"testing"

	"github.com/Fantom-foundation/MockVM/go/mockvm"
	"github.com/Fantom-foundation/MockVM/go/world"
)

func ownedContract(owner mockvm.Address) *world.Account {
	account := holder(contract, 0)
	account.Code = []byte("code")
	account.ContractOwner = &owner
	return account
}

func TestSetUserName_CanOnlyBeSetOnce(t *testing.T) {
	cache := newCache(t, holder(alice, 0))
	registry := newRegistry(t)

	res := registry.Execute(input(alice, alice, mockvm.BuiltInSetUserName, []byte("alice.elrond")), cache, nil)
	expectSuccess(t, res)
	if account, _ := cache.GetAccount(alice); string(account.Username) != "alice.elrond" {
		t.Errorf("user name not set: %q", account.Username)
	}
	expectLog(t, res, mockvm.Log{
		Address:  alice,
		Endpoint: mockvm.BuiltInSetUserName,
		Topics:   [][]byte{[]byte("alice.elrond")},
	})

	res = registry.Execute(input(alice, alice, mockvm.BuiltInSetUserName, []byte("other")), cache, nil)
	expectFailure(t, res, mockvm.UserError, ErrUserNameAlreadySet.Error())
}

func TestESDTSetRole_GrantsAndRevokesRoles(t *testing.T) {
	cache := newCache(t, holder(alice, 0))
	registry := newRegistry(t)

	res := registry.Execute(input(ESDTSystemAddress, alice, mockvm.BuiltInESDTSetRole,
		fooID, []byte(world.RoleLocalMint), []byte(world.RoleLocalBurn)), cache, nil)
	expectSuccess(t, res)
	account, _ := cache.GetAccount(alice)
	if !account.HasRole(fooID, world.RoleLocalMint) || !account.HasRole(fooID, world.RoleLocalBurn) {
		t.Errorf("roles not granted: %v", account.GetTokenData(fooID).RoleNames())
	}
	expectLog(t, res, mockvm.Log{
		Address:  alice,
		Endpoint: mockvm.BuiltInESDTSetRole,
		Topics:   [][]byte{fooID, nil, nil, []byte(world.RoleLocalMint), []byte(world.RoleLocalBurn)},
	})

	res = registry.Execute(input(ESDTSystemAddress, alice, mockvm.BuiltInESDTUnSetRole, fooID, []byte(world.RoleLocalMint)), cache, nil)
	expectSuccess(t, res)
	account, _ = cache.GetAccount(alice)
	if account.HasRole(fooID, world.RoleLocalMint) || !account.HasRole(fooID, world.RoleLocalBurn) {
		t.Errorf("unexpected roles: %v", account.GetTokenData(fooID).RoleNames())
	}
}

func TestESDTSetRole_IsRestricted(t *testing.T) {
	cache := newCache(t, holder(alice, 0))
	registry := newRegistry(t)

	res := registry.Execute(input(alice, alice, mockvm.BuiltInESDTSetRole, fooID, []byte(world.RoleLocalMint)), cache, nil)
	expectFailure(t, res, mockvm.UserError, ErrActionNotAllowed.Error())

	res = registry.Execute(input(ESDTSystemAddress, alice, mockvm.BuiltInESDTSetRole, fooID, []byte("ESDTRoleEverything")), cache, nil)
	expectFailure(t, res, mockvm.ExecutionFailed, ErrInvalidRole.Error())
}

func TestChangeOwnerAddress_OnlyByOwner(t *testing.T) {
	cache := newCache(t, holder(alice, 0), ownedContract(alice))
	registry := newRegistry(t)

	res := registry.Execute(input(bob, contract, mockvm.BuiltInChangeOwnerAddress, bob[:]), cache, nil)
	expectFailure(t, res, mockvm.UserError, ErrActionNotAllowed.Error())

	res = registry.Execute(input(alice, contract, mockvm.BuiltInChangeOwnerAddress, bob[:]), cache, nil)
	expectSuccess(t, res)
	account, _ := cache.GetAccount(contract)
	if account.ContractOwner == nil || *account.ContractOwner != bob {
		t.Errorf("owner not changed: %v", account.ContractOwner)
	}
	expectLog(t, res, mockvm.Log{
		Address:  contract,
		Endpoint: mockvm.BuiltInChangeOwnerAddress,
		Topics:   [][]byte{bob[:]},
	})
}

func TestChangeOwnerAddress_RequiresContract(t *testing.T) {
	cache := newCache(t, holder(alice, 0), holder(bob, 0))
	res := newRegistry(t).Execute(input(alice, bob, mockvm.BuiltInChangeOwnerAddress, alice[:]), cache, nil)
	expectFailure(t, res, mockvm.UserError, ErrNotAContract.Error())
}

func TestClaimDeveloperRewards_PaysOwner(t *testing.T) {
	target := ownedContract(alice)
	target.DeveloperRewards = big.NewInt(70)
	cache := newCache(t, holder(alice, 5), target)

	res := newRegistry(t).Execute(input(alice, contract, mockvm.BuiltInClaimDeveloperRewards), cache, nil)
	expectSuccess(t, res)
	owner, _ := cache.GetAccount(alice)
	if owner.Balance.Int64() != 75 {
		t.Errorf("unexpected owner balance: %v", owner.Balance)
	}
	updated, _ := cache.GetAccount(contract)
	if updated.DeveloperRewards.Sign() != 0 {
		t.Errorf("rewards not reset: %v", updated.DeveloperRewards)
	}
	if len(res.ResultValues) != 1 || res.ResultValues[0][0] != 70 {
		t.Errorf("unexpected result: %x", res.ResultValues)
	}
}

func TestUpgradeContract_ReplacesCodeAndRunsUpgrade(t *testing.T) {
	cache := newCache(t, holder(alice, 100), ownedContract(alice))

	var received *mockvm.TxInput
	call := func(in *mockvm.TxInput) mockvm.TxResult {
		received = in
		return mockvm.TxResult{GasUsed: 10}
	}
	in := input(alice, contract, mockvm.BuiltInUpgradeContract, []byte("new code"), []byte{1, 0}, []byte{9})
	in.EGLDValue = big.NewInt(40)
	res := newRegistry(t).Execute(in, cache, call)
	expectSuccess(t, res)

	account, _ := cache.GetAccount(contract)
	if string(account.Code) != "new code" || account.Balance.Int64() != 40 {
		t.Errorf("contract not upgraded: %v", account)
	}
	if received == nil || received.FuncName != mockvm.UpgradeFunctionName || len(received.Args) != 1 {
		t.Fatalf("upgrade endpoint not called properly: %v", received)
	}
	if received.GetEGLDValue().Int64() != 40 {
		t.Errorf("upgrade endpoint did not see the value: %v", received.EGLDValue)
	}
	if res.GasUsed != DefaultGasCost+10 {
		t.Errorf("unexpected gas used: %d", res.GasUsed)
	}
}

func TestUpgradeContract_FailsForStrangers(t *testing.T) {
	cache := newCache(t, holder(bob, 0), ownedContract(alice))
	res := newRegistry(t).Execute(input(bob, contract, mockvm.BuiltInUpgradeContract, []byte("new code"), nil), cache, nil)
	expectFailure(t, res, mockvm.UserError, ErrActionNotAllowed.Error())
}
