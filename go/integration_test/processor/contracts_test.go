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
	"bytes"
	"testing"

	"github.com/Fantom-foundation/MockVM/go/examples"
	"github.com/Fantom-foundation/MockVM/go/mockvm"
	"github.com/Fantom-foundation/MockVM/go/processor/driver"
	"github.com/Fantom-foundation/MockVM/go/txcache"
)

var (
	contractX = mockvm.NamedContractAddress("X")
	contractY = mockvm.NamedContractAddress("Y")
	adder     = mockvm.NamedContractAddress("adder")
)

func sumOf(t *testing.T, p *driver.Processor, address mockvm.Address) []byte {
	t.Helper()
	account, found := p.State().GetAccount(address)
	if !found {
		t.Fatalf("contract %v not found", address)
	}
	return account.GetStorage([]byte(examples.SumKey))
}

func TestProcessor_DeployThenCall(t *testing.T) {
	state := WorldState{userA: Account{Balance: 1_000_000, Nonce: 1}}.Build(t)
	p := newProcessor(t, driver.DefaultConfig(), state)

	deploy := &mockvm.TxInput{
		From:     userA,
		FuncName: mockvm.InitFunctionName,
		Args:     [][]byte{{0, 0, 0, 5}},
		GasLimit: 100_000,
		GasPrice: 1,
	}
	res := p.Deploy(deploy, []byte(examples.AdderCode), nil)
	if res.Failed() {
		t.Fatalf("deployment failed: %v", res)
	}
	address := txcache.DeriveContractAddress(userA, 1)
	if res.NewDeployedAddress == nil || *res.NewDeployedAddress != address {
		t.Fatalf("unexpected contract address, wanted %v, got %v", address, res.NewDeployedAddress)
	}
	if want, got := []byte{0x05}, sumOf(t, p, address); !bytes.Equal(want, got) {
		t.Errorf("unexpected sum after init, wanted %x, got %x", want, got)
	}

	add := &mockvm.TxInput{
		From:     userA,
		To:       address,
		FuncName: "add",
		Args:     [][]byte{{0, 0, 0, 3}},
		GasLimit: 100_000,
		GasPrice: 1,
	}
	if res := p.Execute(add); res.Failed() {
		t.Fatalf("call failed: %v", res)
	}
	if want, got := []byte{0x08}, sumOf(t, p, address); !bytes.Equal(want, got) {
		t.Errorf("unexpected sum after add, wanted %x, got %x", want, got)
	}
}

func TestProcessor_DeployAddressesAreDeterministic(t *testing.T) {
	reserved := mockvm.NamedContractAddress("reserved")
	for name, reserve := range map[string]bool{"derived": false, "reserved": true} {
		t.Run(name, func(t *testing.T) {
			var addresses []mockvm.Address
			for i := 0; i < 2; i++ {
				state := WorldState{userA: Account{Balance: 1_000_000, Nonce: 3}}.Build(t)
				if reserve {
					state.ReserveDeployAddress(userA, 3, reserved)
				}
				p := newProcessor(t, driver.DefaultConfig(), state)
				res := p.Deploy(&mockvm.TxInput{From: userA, Args: [][]byte{{1}}, GasLimit: 100_000}, []byte(examples.AdderCode), nil)
				if res.Failed() || res.NewDeployedAddress == nil {
					t.Fatalf("deployment failed: %v", res)
				}
				addresses = append(addresses, *res.NewDeployedAddress)
				if _, found := state.ReservedAddress(userA, 3); found {
					t.Errorf("reservation was not consumed")
				}
			}
			if addresses[0] != addresses[1] {
				t.Errorf("deployments produced different addresses: %v", addresses)
			}
			if reserve && addresses[0] != reserved {
				t.Errorf("reservation was ignored, got %v", addresses[0])
			}
		})
	}
}

func TestProcessor_AsyncCallWithCallback(t *testing.T) {
	state := WorldState{
		userA:     Account{Balance: 1_000_000},
		contractX: Account{Code: examples.ForwarderCode, Owner: &userA, Tokens: []Token{{ID: fooID, Amount: 100}}},
		contractY: Account{Code: examples.ReceiverCode, Owner: &userA},
	}.Build(t)
	p := newProcessor(t, driver.DefaultConfig(), state)

	res := p.Execute(&mockvm.TxInput{
		From:     userA,
		To:       contractX,
		FuncName: "forward",
		Args:     [][]byte{contractY[:], []byte(fooID), {42}, []byte("accept")},
		GasLimit: 100_000,
		GasPrice: 1,
	})
	if res.Failed() {
		t.Fatalf("transaction failed: %v", res)
	}

	want := []struct {
		address  mockvm.Address
		endpoint string
	}{
		{contractX, "forward"},
		{contractX, mockvm.BuiltInESDTTransfer},
		{contractY, "accept"},
		{contractX, "cb"},
	}
	if len(res.ResultLogs) != len(want) {
		t.Fatalf("unexpected logs: %v", res.ResultLogs)
	}
	for i, w := range want {
		if got := res.ResultLogs[i]; got.Address != w.address || got.Endpoint != w.endpoint {
			t.Errorf("unexpected log %d, wanted %s at %v, got %v", i, w.endpoint, w.address, got)
		}
	}
	transfer := res.ResultLogs[1]
	if !transfer.Equal(mockvm.Log{
		Address:  contractX,
		Endpoint: mockvm.BuiltInESDTTransfer,
		Topics:   [][]byte{[]byte(fooID), {}, {42}, contractY[:]},
	}) {
		t.Errorf("unexpected transfer log: %v", transfer)
	}
	callback := res.ResultLogs[3]
	if len(callback.Topics) != 2 || !bytes.Equal(callback.Topics[0], []byte{0x00}) || !bytes.Equal(callback.Topics[1], []byte{0x01}) {
		t.Errorf("unexpected callback arguments: %x", callback.Topics)
	}

	x, _ := state.GetAccount(contractX)
	y, _ := state.GetAccount(contractY)
	if want, got := int64(58), x.GetESDTBalance([]byte(fooID), 0).Int64(); want != got {
		t.Errorf("unexpected balance of X, wanted %d, got %d", want, got)
	}
	if want, got := int64(42), y.GetESDTBalance([]byte(fooID), 0).Int64(); want != got {
		t.Errorf("unexpected balance of Y, wanted %d, got %d", want, got)
	}
}

func TestProcessor_SyncCallLogsAppearInline(t *testing.T) {
	state := WorldState{
		userA:     Account{Balance: 1_000_000},
		contractX: Account{Code: examples.ForwarderCode, Owner: &userA},
		adder:     Account{Code: examples.AdderCode, Owner: &userA, Storage: map[string][]byte{examples.SumKey: {1}}},
	}.Build(t)
	p := newProcessor(t, driver.DefaultConfig(), state)

	res := p.Execute(&mockvm.TxInput{
		From:     userA,
		To:       contractX,
		FuncName: "call",
		Args:     [][]byte{adder[:], []byte("add"), {2}},
		GasLimit: 100_000,
		GasPrice: 1,
	})
	if res.Failed() {
		t.Fatalf("transaction failed: %v", res)
	}
	want := []mockvm.Log{
		{Address: contractX, Endpoint: "call", Topics: [][]byte{[]byte("call"), []byte("add")}},
		{Address: adder, Endpoint: "add", Topics: [][]byte{[]byte("add")}, Data: []byte{2}},
		{Address: contractX, Endpoint: "call", Topics: [][]byte{[]byte("return")}},
	}
	if len(res.ResultLogs) != len(want) {
		t.Fatalf("unexpected logs: %v", res.ResultLogs)
	}
	for i := range want {
		if !want[i].Equal(res.ResultLogs[i]) {
			t.Errorf("unexpected log %d\nwant %v\ngot  %v", i, want[i], res.ResultLogs[i])
		}
	}
	if want, got := []byte{3}, sumOf(t, p, adder); !bytes.Equal(want, got) {
		t.Errorf("unexpected sum, wanted %x, got %x", want, got)
	}
}
