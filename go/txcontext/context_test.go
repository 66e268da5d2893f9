// Copyright (c) 2024 Fantom Foundation
//
// Use of this software is governed by the Business Source License included
// in the LICENSE file and at fantom.foundation/bsl11.
//
// Change Date: 2028-4-16
//
// On the date above, in accordance with the Business Source License, use of
// this software will be governed by the GNU Lesser General Public License v3.

package txcontext

import (
	"errors"
	"math/big"
	"testing"

	"github.com/Fantom-foundation/MockVM/go/managed"
	"github.com/Fantom-foundation/MockVM/go/mockvm"
	"github.com/Fantom-foundation/MockVM/go/txcache"
	"github.com/Fantom-foundation/MockVM/go/world"
	"go.uber.org/mock/gomock"
)

var (
	alice    = mockvm.NamedAddress("alice")
	contract = mockvm.NamedContractAddress("contract")
)

func newContext(t *testing.T, input *mockvm.TxInput) *TxContext {
	t.Helper()
	state := world.NewState()
	if err := state.AddAccount(&world.Account{Address: alice, Balance: big.NewInt(100)}); err != nil {
		t.Fatalf("failed to add account: %v", err)
	}
	return New(input, txcache.New(state), nil, managed.NewHandleSource())
}

func TestTxContext_CallValueIsBoundToStaticHandles(t *testing.T) {
	ctx := newContext(t, &mockvm.TxInput{
		From:      alice,
		To:        contract,
		EGLDValue: big.NewInt(7),
		ESDTValues: []mockvm.TokenTransfer{
			{TokenIdentifier: []byte("FOO-aaaaaa"), Nonce: 0, Value: big.NewInt(42)},
		},
	})

	value, err := ctx.Arena().BigInt(managed.ConstHandleCallValueEGLD)
	if err != nil {
		t.Fatalf("call value not bound: %v", err)
	}
	if want, got := int64(7), value.Int64(); want != got {
		t.Errorf("unexpected call value, wanted %d, got %d", want, got)
	}

	payments, err := ctx.Arena().ReadESDTPayments(managed.ConstHandleCallValueESDT)
	if err != nil {
		t.Fatalf("payments not bound: %v", err)
	}
	if len(payments) != 1 || string(payments[0].TokenIdentifier) != "FOO-aaaaaa" || payments[0].Value.Int64() != 42 {
		t.Errorf("unexpected payments: %v", payments)
	}
}

func TestTxContext_UseGasWithoutInstance(t *testing.T) {
	ctx := newContext(t, &mockvm.TxInput{GasLimit: 100})

	if err := ctx.UseGas(60); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if want, got := uint64(40), ctx.GasLeft(); want != got {
		t.Errorf("unexpected gas left, wanted %d, got %d", want, got)
	}
	if err := ctx.UseGas(41); !errors.Is(err, ErrNotEnoughGas) {
		t.Errorf("expected out of gas, got %v", err)
	}
	if want, got := uint64(100), ctx.GasUsed(); want != got {
		t.Errorf("exhausting gas should consume everything, wanted %d, got %d", want, got)
	}

	ctx.RestoreGas(30)
	if want, got := uint64(30), ctx.GasLeft(); want != got {
		t.Errorf("unexpected gas left after restore, wanted %d, got %d", want, got)
	}
}

func TestTxContext_GasIsMeteredThroughBoundInstance(t *testing.T) {
	ctrl := gomock.NewController(t)
	instance := NewMockInstance(ctrl)

	ctx := newContext(t, &mockvm.TxInput{GasLimit: 100})
	if err := ctx.UseGas(10); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	gomock.InOrder(
		instance.EXPECT().SetPointsUsed(uint64(10)),
		instance.EXPECT().GetPointsUsed().Return(uint64(10)).Times(2),
		instance.EXPECT().SetPointsUsed(uint64(15)),
		instance.EXPECT().GetPointsUsed().Return(uint64(25)),
	)

	ctx.BindInstance(instance)
	if err := ctx.UseGas(5); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	ctx.UnbindInstance()

	if want, got := uint64(25), ctx.GasUsed(); want != got {
		t.Errorf("gas used by instance not retained, wanted %d, got %d", want, got)
	}
}

func TestTxContext_HarvestResultReportsGas(t *testing.T) {
	ctx := newContext(t, &mockvm.TxInput{GasLimit: 50})
	if err := ctx.UseGas(20); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	ctx.Finish([]byte{1})
	ctx.AppendLog(mockvm.Log{Address: contract, Endpoint: "test"})

	res := ctx.HarvestResult()
	if res.GasUsed != 20 || res.GasRefund != 30 {
		t.Errorf("unexpected gas figures: used %d, refund %d", res.GasUsed, res.GasRefund)
	}
	if len(res.ResultValues) != 1 || len(res.ResultLogs) != 1 {
		t.Errorf("unexpected result: %v", res)
	}
}

func TestTxContext_FailKeepsLogs(t *testing.T) {
	ctx := newContext(t, &mockvm.TxInput{})
	ctx.AppendLog(mockvm.Log{Address: contract})
	ctx.Fail(mockvm.UserError, "boom")

	res := ctx.HarvestResult()
	if res.ResultStatus != mockvm.UserError || res.ResultMessage != "boom" {
		t.Errorf("unexpected status: %v", res)
	}
	if len(res.ResultLogs) != 1 {
		t.Errorf("logs should be kept on failure, got %d", len(res.ResultLogs))
	}
}

func TestDummy_StateAccessPanics(t *testing.T) {
	tests := map[string]func(*TxContext){
		"cache":      func(c *TxContext) { c.Cache() },
		"dispatcher": func(c *TxContext) { c.Dispatcher() },
	}
	for name, access := range tests {
		t.Run(name, func(t *testing.T) {
			defer func() {
				if r := recover(); r != ErrDummyContext {
					t.Errorf("expected dummy context panic, got %v", r)
				}
			}()
			access(Dummy())
		})
	}
}

func TestDummy_ProvidesEmptyInput(t *testing.T) {
	ctx := Dummy()
	if !ctx.IsDummy() {
		t.Fatalf("dummy context not marked as such")
	}
	if ctx.Input().GetEGLDValue().Sign() != 0 {
		t.Errorf("dummy context should carry no value")
	}
	if ctx.GasLeft() != 0 {
		t.Errorf("dummy context should have no gas")
	}
}
