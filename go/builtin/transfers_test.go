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
	"bytes"
	"math/big"
	"testing"

	"github.com/Fantom-foundation/MockVM/go/mockvm"
)

func TestESDTTransfer_MovesTokensAndLogs(t *testing.T) {
	cache := newCache(t, withTokens(t, holder(alice, 0), fooID, 0, 100))
	res := newRegistry(t).Execute(input(alice, bob, mockvm.BuiltInESDTTransfer, fooID, []byte{42}), cache, nil)
	expectSuccess(t, res)

	if got := balanceOf(t, cache, alice, fooID, 0); got != 58 {
		t.Errorf("unexpected sender balance: %d", got)
	}
	if got := balanceOf(t, cache, bob, fooID, 0); got != 42 {
		t.Errorf("unexpected receiver balance: %d", got)
	}
	expectLog(t, res, mockvm.Log{
		Address:  alice,
		Endpoint: mockvm.BuiltInESDTTransfer,
		Topics:   [][]byte{fooID, {}, {42}, bob[:]},
	})
}

func TestESDTTransfer_RejectsInvalidInput(t *testing.T) {
	tests := map[string]struct {
		args    [][]byte
		value   int64
		status  mockvm.ReturnCode
		message string
	}{
		"missing amount": {
			args:    [][]byte{fooID},
			status:  mockvm.ExecutionFailed,
			message: ErrInvalidArguments.Error(),
		},
		"zero amount": {
			args:    [][]byte{fooID, {}},
			status:  mockvm.UserError,
			message: ErrNegativeValue.Error(),
		},
		"with value": {
			args:    [][]byte{fooID, {1}},
			value:   1,
			status:  mockvm.UserError,
			message: ErrCallWithValue.Error(),
		},
		"insufficient funds": {
			args:    [][]byte{fooID, {101}},
			status:  mockvm.ExecutionFailed,
			message: "failed transfer (insufficient funds)",
		},
	}

	for name, test := range tests {
		t.Run(name, func(t *testing.T) {
			cache := newCache(t, withTokens(t, holder(alice, 10), fooID, 0, 100))
			in := input(alice, bob, mockvm.BuiltInESDTTransfer, test.args...)
			in.EGLDValue = big.NewInt(test.value)
			res := newRegistry(t).Execute(in, cache, nil)
			expectFailure(t, res, test.status, test.message)
			if len(res.ResultLogs) != 0 {
				t.Errorf("failed transfer produced logs: %v", res.ResultLogs)
			}
		})
	}
}

func TestESDTTransfer_FrozenTokensCannotMove(t *testing.T) {
	sender := withTokens(t, holder(alice, 0), fooID, 0, 100)
	sender.GetTokenData(fooID).Frozen = true
	cache := newCache(t, sender)
	res := newRegistry(t).Execute(input(alice, bob, mockvm.BuiltInESDTTransfer, fooID, []byte{1}), cache, nil)
	expectFailure(t, res, mockvm.UserError, ErrFrozenToken.Error())
}

func TestESDTTransfer_ExecutesEndpointOfContract(t *testing.T) {
	target := holder(contract, 0)
	target.Code = []byte("code")
	cache := newCache(t, withTokens(t, holder(alice, 0), fooID, 0, 100), target)

	var received *mockvm.TxInput
	call := func(in *mockvm.TxInput) mockvm.TxResult {
		received = in
		return mockvm.TxResult{
			ResultValues: [][]byte{{7}},
			ResultLogs:   []mockvm.Log{{Address: contract, Endpoint: "deposit"}},
			GasUsed:      30,
		}
	}
	in := input(alice, contract, mockvm.BuiltInESDTTransfer, fooID, []byte{5}, []byte("deposit"), []byte{1})
	res := newRegistry(t).Execute(in, cache, call)
	expectSuccess(t, res)

	if received == nil {
		t.Fatalf("endpoint was not called")
	}
	if received.FuncName != "deposit" || len(received.Args) != 1 || received.CallType != mockvm.ESDTTransferAndExecute {
		t.Errorf("unexpected onward input: %v", received)
	}
	if received.GasLimit != in.GasLimit-DefaultGasCost {
		t.Errorf("endpoint should get all remaining gas, got %d", received.GasLimit)
	}
	if len(received.ESDTValues) != 1 || !bytes.Equal(received.ESDTValues[0].TokenIdentifier, fooID) {
		t.Errorf("endpoint did not see the payment: %v", received.ESDTValues)
	}
	if len(res.ResultLogs) != 2 || res.ResultLogs[0].Endpoint != mockvm.BuiltInESDTTransfer || res.ResultLogs[1].Endpoint != "deposit" {
		t.Errorf("unexpected log order: %v", res.ResultLogs)
	}
	if len(res.ResultValues) != 1 || res.ResultValues[0][0] != 7 {
		t.Errorf("endpoint results not forwarded: %x", res.ResultValues)
	}
	if res.GasUsed != DefaultGasCost+30 {
		t.Errorf("unexpected gas used: %d", res.GasUsed)
	}
}

func TestESDTTransfer_FailingEndpointFailsTransfer(t *testing.T) {
	target := holder(contract, 0)
	target.Code = []byte("code")
	cache := newCache(t, withTokens(t, holder(alice, 0), fooID, 0, 100), target)
	call := func(*mockvm.TxInput) mockvm.TxResult {
		return mockvm.NewErrorResult(mockvm.UserError, "rejected")
	}
	in := input(alice, contract, mockvm.BuiltInESDTTransfer, fooID, []byte{5}, []byte("deposit"))
	res := newRegistry(t).Execute(in, cache, call)
	expectFailure(t, res, mockvm.UserError, "rejected")
	if len(res.ResultLogs) != 1 {
		t.Errorf("log of the transfer should be kept: %v", res.ResultLogs)
	}
}

func TestESDTTransfer_UserReceiverIgnoresEndpoint(t *testing.T) {
	cache := newCache(t, withTokens(t, holder(alice, 0), fooID, 0, 100))
	call := func(*mockvm.TxInput) mockvm.TxResult {
		t.Errorf("user accounts have no endpoints")
		return mockvm.TxResult{}
	}
	in := input(alice, bob, mockvm.BuiltInESDTTransfer, fooID, []byte{5}, []byte("deposit"))
	expectSuccess(t, newRegistry(t).Execute(in, cache, call))
}

func TestESDTNFTTransfer_MovesInstanceWithMetadata(t *testing.T) {
	cache := newCache(t, withTokens(t, holder(alice, 0), nftID, 3, 1))
	in := input(alice, alice, mockvm.BuiltInESDTNFTTransfer, nftID, []byte{3}, []byte{1}, bob[:])
	res := newRegistry(t).Execute(in, cache, nil)
	expectSuccess(t, res)

	account, _ := cache.GetAccount(bob)
	instance := account.GetTokenInstance(nftID, 3)
	if instance == nil || instance.Metadata.Creator != alice {
		t.Fatalf("instance not moved with metadata: %v", instance)
	}
	if sender, _ := cache.GetAccount(alice); sender.GetTokenInstance(nftID, 3) != nil {
		t.Errorf("emptied instance should be removed from sender")
	}
	expectLog(t, res, mockvm.Log{
		Address:  alice,
		Endpoint: mockvm.BuiltInESDTNFTTransfer,
		Topics:   [][]byte{nftID, {3}, {1}, bob[:]},
	})
}

func TestESDTNFTTransfer_MustBeSentToSelf(t *testing.T) {
	cache := newCache(t, withTokens(t, holder(alice, 0), nftID, 3, 1))
	in := input(alice, bob, mockvm.BuiltInESDTNFTTransfer, nftID, []byte{3}, []byte{1}, bob[:])
	res := newRegistry(t).Execute(in, cache, nil)
	expectFailure(t, res, mockvm.UserError, ErrInvalidReceiver.Error())
}

func TestMultiESDTNFTTransfer_MovesAllPayments(t *testing.T) {
	sender := withTokens(t, holder(alice, 0), fooID, 0, 100)
	withTokens(t, sender, nftID, 3, 2)
	cache := newCache(t, sender)

	in := input(alice, alice, mockvm.BuiltInMultiESDTNFTTransfer,
		bob[:], []byte{2},
		fooID, nil, []byte{10},
		nftID, []byte{3}, []byte{2},
	)
	res := newRegistry(t).Execute(in, cache, nil)
	expectSuccess(t, res)

	if got := balanceOf(t, cache, bob, fooID, 0); got != 10 {
		t.Errorf("unexpected fungible balance: %d", got)
	}
	if got := balanceOf(t, cache, bob, nftID, 3); got != 2 {
		t.Errorf("unexpected NFT balance: %d", got)
	}
	expectLog(t, res, mockvm.Log{
		Address:  alice,
		Endpoint: mockvm.BuiltInMultiESDTNFTTransfer,
		Topics:   [][]byte{fooID, {}, {10}, nftID, {3}, {2}, bob[:]},
	})
}

func TestMultiESDTNFTTransfer_RejectsMissingPayments(t *testing.T) {
	cache := newCache(t, withTokens(t, holder(alice, 0), fooID, 0, 100))
	in := input(alice, alice, mockvm.BuiltInMultiESDTNFTTransfer, bob[:], []byte{2}, fooID, nil, []byte{10})
	res := newRegistry(t).Execute(in, cache, nil)
	expectFailure(t, res, mockvm.ExecutionFailed, ErrInvalidArguments.Error())

	in = input(alice, alice, mockvm.BuiltInMultiESDTNFTTransfer, bob[:], []byte{0})
	res = newRegistry(t).Execute(in, cache, nil)
	expectFailure(t, res, mockvm.ExecutionFailed, ErrInvalidTokenCount.Error())
}

func TestMultiESDTNFTTransfer_PaymentsReachEndpoint(t *testing.T) {
	target := holder(contract, 0)
	target.Code = []byte("code")
	cache := newCache(t, withTokens(t, holder(alice, 0), fooID, 0, 100), target)

	var payments []mockvm.TokenTransfer
	call := func(in *mockvm.TxInput) mockvm.TxResult {
		payments = in.ESDTValues
		return mockvm.TxResult{}
	}
	in := input(alice, alice, mockvm.BuiltInMultiESDTNFTTransfer, contract[:], []byte{1}, fooID, nil, []byte{10}, []byte("pay"))
	expectSuccess(t, newRegistry(t).Execute(in, cache, call))
	if len(payments) != 1 || payments[0].Value.Int64() != 10 {
		t.Errorf("unexpected payments: %v", payments)
	}
}
