// Copyright (c) 2024 Fantom Foundation
//
// Use of this software is governed by the Business Source License included
// in the LICENSE file and at fantom.foundation/bsl11.
//
// Change Date: 2028-4-16
//
// On the date above, in accordance with the Business Source License, use of
// this software will be governed by the GNU Lesser General Public License v3.

package vmhooks

import (
	"math/big"

	"github.com/Fantom-foundation/MockVM/go/managed"
	"github.com/Fantom-foundation/MockVM/go/mockvm"
	"github.com/Fantom-foundation/MockVM/go/txcache"
	"github.com/Fantom-foundation/MockVM/go/txcontext"
)

// budget carves the gas of a nested call out of the remaining gas of the
// caller. Requests are capped at all but one 64th of what is left, so the
// caller can still react to a failed callee that used up its budget.
func budget(ctx *txcontext.TxContext, gas int64) uint64 {
	if gas < 0 {
		failExecution(ctx, ErrArgumentOutOfRange)
	}
	limit := uint64(gas)
	if available := maxForwardedGas(ctx.GasLeft()); limit > available {
		limit = available
	}
	charge(ctx, limit)
	return limit
}

func maxForwardedGas(left uint64) uint64 {
	return left - left/64
}

// settle returns the unused part of a budget to the caller.
func settle(ctx *txcontext.TxContext, limit uint64, res *mockvm.TxResult) {
	if res.GasUsed < limit {
		ctx.RestoreGas(limit - res.GasUsed)
	}
}

func nestedInput(ctx *txcontext.TxContext, to mockvm.Address, value *big.Int, function string, args [][]byte, gas uint64) *mockvm.TxInput {
	return &mockvm.TxInput{
		From:           ctx.Input().To,
		To:             to,
		EGLDValue:      value,
		FuncName:       function,
		Args:           args,
		GasLimit:       gas,
		GasPrice:       ctx.Input().GasPrice,
		TxHash:         ctx.Input().TxHash,
		OriginalTxHash: originalTxHash(ctx),
		CallType:       mockvm.DirectCall,
	}
}

// failWith aborts the caller with the failure of a nested call.
func failWith(ctx *txcontext.TxContext, res *mockvm.TxResult) {
	failExecution(ctx, &txcache.TxPanic{Status: res.ResultStatus, Message: res.ResultMessage})
}

// ManagedExecuteOnDestContext runs a contract endpoint synchronously. The
// return values of the callee are written as a buffer list to the result
// handle; a failed callee is reported with 1 and leaves no trace.
func (h *Hooks) ManagedExecuteOnDestContext(gas int64, addressHandle int32, valueHandle int32, functionHandle int32, argumentsHandle int32, resultHandle int32) int32 {
	ctx := h.use(h.gas.ExecuteOnDest)
	to := bufferAddress(ctx, addressHandle)
	value := bigInt(ctx, valueHandle)
	function := string(buffer(ctx, functionHandle))
	args := bufferList(ctx, argumentsHandle)

	limit := budget(ctx, gas)
	res := ctx.Dispatcher().ExecuteSyncCall(ctx, nestedInput(ctx, to, value, function, args, limit))
	settle(ctx, limit, &res)
	if res.Failed() {
		ctx.Arena().WriteBufferList(managed.Handle(resultHandle), nil)
		return 1
	}
	ctx.Result().MergeAfterSyncCall(&res)
	ctx.Arena().WriteBufferList(managed.Handle(resultHandle), res.ResultValues)
	return 0
}

// ManagedTransferValueExecute sends value to an address, optionally
// calling one of its endpoints. Failures abort the caller.
func (h *Hooks) ManagedTransferValueExecute(dstHandle int32, valueHandle int32, gasLimit int64, functionHandle int32, argumentsHandle int32) int32 {
	ctx := h.use(h.gas.TransferValue)
	to := bufferAddress(ctx, dstHandle)
	value := bigInt(ctx, valueHandle)
	function := string(buffer(ctx, functionHandle))
	args := bufferList(ctx, argumentsHandle)

	var limit uint64
	if function != "" {
		limit = budget(ctx, gasLimit)
	}
	res := ctx.Dispatcher().ExecuteSyncCall(ctx, nestedInput(ctx, to, value, function, args, limit))
	settle(ctx, limit, &res)
	if res.Failed() {
		failWith(ctx, &res)
	}
	ctx.Result().MergeAfterSyncCall(&res)
	return 0
}

// ManagedMultiTransferESDTNFTExecute sends tokens to an address through
// the multi transfer built-in, optionally calling one of its endpoints.
func (h *Hooks) ManagedMultiTransferESDTNFTExecute(dstHandle int32, tokenTransfersHandle int32, gasLimit int64, functionHandle int32, argumentsHandle int32) int32 {
	ctx := h.use(h.gas.TransferValue)
	to := bufferAddress(ctx, dstHandle)
	payments, err := ctx.Arena().ReadESDTPayments(managed.Handle(tokenTransfersHandle))
	check(ctx, err)
	function := buffer(ctx, functionHandle)
	args := bufferList(ctx, argumentsHandle)

	builtInArgs := [][]byte{to[:], mockvm.EncodeUint64Minimal(uint64(len(payments)))}
	for _, payment := range payments {
		builtInArgs = append(builtInArgs,
			payment.TokenIdentifier,
			mockvm.EncodeUint64Minimal(payment.Nonce),
			mockvm.EncodeBigIntUnsigned(payment.Value),
		)
	}
	if len(function) > 0 {
		builtInArgs = append(builtInArgs, function)
		builtInArgs = append(builtInArgs, args...)
	}

	limit := budget(ctx, gasLimit)
	input := nestedInput(ctx, ctx.Input().To, nil, mockvm.BuiltInMultiESDTNFTTransfer, builtInArgs, limit)
	res := ctx.Dispatcher().ExecuteSyncCall(ctx, input)
	settle(ctx, limit, &res)
	if res.Failed() {
		failWith(ctx, &res)
	}
	ctx.Result().MergeAfterSyncCall(&res)
	return 0
}

// ManagedAsyncCall registers the legacy async call of this invocation and
// ends its execution. All remaining gas is handed to the call and its
// callback.
func (h *Hooks) ManagedAsyncCall(destHandle int32, valueHandle int32, functionHandle int32, argumentsHandle int32) {
	ctx := h.use(h.gas.AsyncCall)
	to := bufferAddress(ctx, destHandle)
	value := bigInt(ctx, valueHandle)
	function := string(buffer(ctx, functionHandle))
	args := bufferList(ctx, argumentsHandle)
	for _, call := range ctx.Result().PendingCalls {
		if call.Legacy {
			failExecution(ctx, ErrLegacyAsyncCallRegistered)
		}
	}

	gas := ctx.GasLeft()
	charge(ctx, gas)
	ctx.AddAsyncCall(mockvm.AsyncCall{
		From:      ctx.Input().To,
		To:        to,
		CallValue: value,
		Endpoint:  function,
		Args:      args,
		TxHash:    ctx.Input().TxHash,
		GasLimit:  gas,
		Legacy:    true,
	})
	exit(ctx, mockvm.BreakpointAsyncCall, mockvm.Ok, "")
}

// ManagedCreateAsyncCall registers a promise: an async call with its own
// gas, optional success and error callbacks and a closure handed to them.
func (h *Hooks) ManagedCreateAsyncCall(destHandle int32, valueHandle int32, functionHandle int32, argumentsHandle int32, successOffset int32, successLength int32, errorOffset int32, errorLength int32, gas int64, extraGasForCallback int64, callbackClosureHandle int32) int32 {
	ctx := h.use(h.gas.AsyncCall)
	to := bufferAddress(ctx, destHandle)
	value := bigInt(ctx, valueHandle)
	function := string(buffer(ctx, functionHandle))
	args := bufferList(ctx, argumentsHandle)
	success := string(h.load(ctx, successOffset, successLength))
	failure := string(h.load(ctx, errorOffset, errorLength))
	closure := buffer(ctx, callbackClosureHandle)

	if gas < 0 || extraGasForCallback < 0 {
		failExecution(ctx, ErrArgumentOutOfRange)
	}
	total := uint64(gas) + uint64(extraGasForCallback)
	if total > ctx.GasLeft() {
		failExecution(ctx, ErrNotEnoughGas)
	}
	charge(ctx, total)
	ctx.AddAsyncCall(mockvm.AsyncCall{
		From:                ctx.Input().To,
		To:                  to,
		CallValue:           value,
		Endpoint:            function,
		Args:                args,
		TxHash:              ctx.Input().TxHash,
		GasLimit:            uint64(gas),
		SuccessCallback:     success,
		ErrorCallback:       failure,
		CallbackClosure:     closure,
		ExtraGasForCallback: uint64(extraGasForCallback),
	})
	return 0
}

func (h *Hooks) deploy(ctx *txcontext.TxContext, gas int64, value *big.Int, code, codeMetadata []byte, args [][]byte, resultAddressHandle, resultHandle int32) int32 {
	limit := budget(ctx, gas)
	input := nestedInput(ctx, mockvm.Address{}, value, mockvm.InitFunctionName, args, limit)
	res := ctx.Dispatcher().DeployContract(ctx, input, code, codeMetadata)
	settle(ctx, limit, &res)
	if res.Failed() || res.NewDeployedAddress == nil {
		ctx.Arena().SetBuffer(managed.Handle(resultAddressHandle), nil)
		ctx.Arena().WriteBufferList(managed.Handle(resultHandle), nil)
		return 1
	}
	ctx.Result().MergeAfterSyncCall(&res)
	setAddress(ctx, resultAddressHandle, *res.NewDeployedAddress)
	ctx.Arena().WriteBufferList(managed.Handle(resultHandle), res.ResultValues)
	return 0
}

func (h *Hooks) ManagedCreateContract(gas int64, valueHandle int32, codeHandle int32, codeMetadataHandle int32, argumentsHandle int32, resultAddressHandle int32, resultHandle int32) int32 {
	ctx := h.use(h.gas.CreateContract)
	value := bigInt(ctx, valueHandle)
	code := buffer(ctx, codeHandle)
	codeMetadata := buffer(ctx, codeMetadataHandle)
	args := bufferList(ctx, argumentsHandle)
	return h.deploy(ctx, gas, value, code, codeMetadata, args, resultAddressHandle, resultHandle)
}

func (h *Hooks) ManagedDeployFromSourceContract(gas int64, valueHandle int32, addressHandle int32, codeMetadataHandle int32, argumentsHandle int32, resultAddressHandle int32, resultHandle int32) int32 {
	ctx := h.use(h.gas.CreateContract)
	value := bigInt(ctx, valueHandle)
	code := sourceCode(ctx, bufferAddress(ctx, addressHandle))
	codeMetadata := buffer(ctx, codeMetadataHandle)
	args := bufferList(ctx, argumentsHandle)
	return h.deploy(ctx, gas, value, code, codeMetadata, args, resultAddressHandle, resultHandle)
}

func (h *Hooks) upgrade(ctx *txcontext.TxContext, to mockvm.Address, gas int64, value *big.Int, code, codeMetadata []byte, args [][]byte, resultHandle int32) {
	limit := budget(ctx, gas)
	input := nestedInput(ctx, to, value, mockvm.UpgradeFunctionName, args, limit)
	res := ctx.Dispatcher().UpgradeContract(ctx, input, code, codeMetadata)
	settle(ctx, limit, &res)
	if res.Failed() {
		failWith(ctx, &res)
	}
	ctx.Result().MergeAfterSyncCall(&res)
	ctx.Arena().WriteBufferList(managed.Handle(resultHandle), res.ResultValues)
}

func (h *Hooks) ManagedUpgradeContract(destHandle int32, gas int64, valueHandle int32, codeHandle int32, codeMetadataHandle int32, argumentsHandle int32, resultHandle int32) {
	ctx := h.use(h.gas.CreateContract)
	to := bufferAddress(ctx, destHandle)
	value := bigInt(ctx, valueHandle)
	code := buffer(ctx, codeHandle)
	codeMetadata := buffer(ctx, codeMetadataHandle)
	args := bufferList(ctx, argumentsHandle)
	h.upgrade(ctx, to, gas, value, code, codeMetadata, args, resultHandle)
}

func (h *Hooks) ManagedUpgradeFromSourceContract(destHandle int32, gas int64, valueHandle int32, addressHandle int32, codeMetadataHandle int32, argumentsHandle int32, resultHandle int32) {
	ctx := h.use(h.gas.CreateContract)
	to := bufferAddress(ctx, destHandle)
	value := bigInt(ctx, valueHandle)
	code := sourceCode(ctx, bufferAddress(ctx, addressHandle))
	codeMetadata := buffer(ctx, codeMetadataHandle)
	args := bufferList(ctx, argumentsHandle)
	h.upgrade(ctx, to, gas, value, code, codeMetadata, args, resultHandle)
}

func sourceCode(ctx *txcontext.TxContext, address mockvm.Address) []byte {
	account, found := ctx.Cache().GetAccount(address)
	if !found || !account.IsContract() {
		failExecution(ctx, ErrMissingCode)
	}
	return account.Code
}
