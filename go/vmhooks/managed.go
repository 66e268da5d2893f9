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
	"github.com/Fantom-foundation/MockVM/go/world"
)

func (h *Hooks) ManagedSCAddress(destinationHandle int32) {
	ctx := h.use(h.gas.BaseOp)
	setAddress(ctx, destinationHandle, ctx.Input().To)
}

func (h *Hooks) ManagedOwnerAddress(destinationHandle int32) {
	ctx := h.use(h.gas.BaseOp)
	setAddress(ctx, destinationHandle, ownerOf(ctx, ctx.Input().To))
}

func (h *Hooks) ManagedCaller(destinationHandle int32) {
	ctx := h.use(h.gas.BaseOp)
	setAddress(ctx, destinationHandle, ctx.Input().From)
}

func (h *Hooks) ManagedSignalError(errHandle int32) {
	ctx := h.use(h.gas.BaseOp)
	signalError(ctx, string(buffer(ctx, errHandle)))
}

func (h *Hooks) ManagedWriteLog(topicsHandle int32, dataHandle int32) {
	ctx := h.use(h.gas.BaseOp)
	topics := bufferList(ctx, topicsHandle)
	h.writeLog(ctx, topics, buffer(ctx, dataHandle))
}

func (h *Hooks) ManagedGetOriginalTxHash(resultHandle int32) {
	ctx := h.use(h.gas.BaseOp)
	hash := originalTxHash(ctx)
	ctx.Arena().SetBuffer(managed.Handle(resultHandle), hash[:])
}

func (h *Hooks) ManagedGetBlockRandomSeed(resultHandle int32) {
	ctx := h.use(h.gas.BaseOp)
	seed := ctx.BlockchainInfo().Current.RandomSeed
	ctx.Arena().SetBuffer(managed.Handle(resultHandle), seed[:])
}

func (h *Hooks) ManagedGetPrevBlockRandomSeed(resultHandle int32) {
	ctx := h.use(h.gas.BaseOp)
	seed := ctx.BlockchainInfo().Previous.RandomSeed
	ctx.Arena().SetBuffer(managed.Handle(resultHandle), seed[:])
}

func (h *Hooks) ManagedGetMultiESDTCallValue(multiCallValueHandle int32) {
	ctx := h.use(h.gas.BaseOp)
	ctx.Arena().WriteESDTPayments(managed.Handle(multiCallValueHandle), ctx.Input().ESDTValues)
}

func (h *Hooks) ManagedGetESDTBalance(addressHandle int32, tokenIDHandle int32, nonce int64, valueHandle int32) {
	ctx := h.use(h.gas.BaseOp)
	address := bufferAddress(ctx, addressHandle)
	tokenID := buffer(ctx, tokenIDHandle)
	ctx.Arena().SetBigInt(managed.Handle(valueHandle), esdtBalance(ctx, address, tokenID, uint64(nonce)))
}

// ManagedGetESDTTokenData writes balance and metadata of a token instance
// into the given handles. Unknown instances report zero values.
func (h *Hooks) ManagedGetESDTTokenData(addressHandle int32, tokenIDHandle int32, nonce int64, valueHandle int32, propertiesHandle int32, hashHandle int32, nameHandle int32, attributesHandle int32, creatorHandle int32, royaltiesHandle int32, urisHandle int32) {
	ctx := h.use(h.gas.BaseOp)
	address := bufferAddress(ctx, addressHandle)
	tokenID := buffer(ctx, tokenIDHandle)

	var instance *world.TokenInstance
	var frozen bool
	if account, found := ctx.Cache().GetAccount(address); found {
		instance = account.GetTokenInstance(tokenID, uint64(nonce))
		if data, found := account.ESDT[string(tokenID)]; found {
			frozen = data.Frozen
		}
	}
	if instance == nil {
		instance = &world.TokenInstance{Nonce: uint64(nonce), Balance: new(big.Int)}
	}

	arena := ctx.Arena()
	properties := []byte{0, 0}
	if frozen || instance.Metadata.Frozen {
		properties[0] = 1
	}
	arena.SetBigInt(managed.Handle(valueHandle), instance.Balance)
	arena.SetBuffer(managed.Handle(propertiesHandle), properties)
	arena.SetBuffer(managed.Handle(hashHandle), instance.Metadata.Hash)
	arena.SetBuffer(managed.Handle(nameHandle), instance.Metadata.Name)
	arena.SetBuffer(managed.Handle(attributesHandle), instance.Metadata.Attributes)
	setAddress(ctx, creatorHandle, instance.Metadata.Creator)
	arena.SetBigInt(managed.Handle(royaltiesHandle), new(big.Int).SetUint64(instance.Metadata.Royalties))
	arena.WriteBufferList(managed.Handle(urisHandle), instance.Metadata.URIs)
}

func (h *Hooks) ManagedIsESDTFrozen(addressHandle int32, tokenIDHandle int32, nonce int64) int32 {
	ctx := h.use(h.gas.BaseOp)
	address := bufferAddress(ctx, addressHandle)
	tokenID := buffer(ctx, tokenIDHandle)
	account, found := ctx.Cache().GetAccount(address)
	if !found {
		return 0
	}
	if data, found := account.ESDT[string(tokenID)]; found && data.Frozen {
		return 1
	}
	instance := account.GetTokenInstance(tokenID, uint64(nonce))
	return boolToInt32(instance != nil && instance.Metadata.Frozen)
}

func (h *Hooks) ManagedGetCodeMetadata(addressHandle int32, responseHandle int32) {
	ctx := h.use(h.gas.BaseOp)
	address := bufferAddress(ctx, addressHandle)
	account, found := ctx.Cache().GetAccount(address)
	if !found {
		failExecution(ctx, ErrInvalidAddress)
	}
	ctx.Arena().SetBuffer(managed.Handle(responseHandle), account.CodeMetadata)
}

// ManagedGetCallbackClosure provides the closure registered with the
// promise whose callback is executing.
func (h *Hooks) ManagedGetCallbackClosure(callbackClosureHandle int32) {
	ctx := h.use(h.gas.BaseOp)
	if ctx.Input().CallType != mockvm.AsyncCallback {
		failExecution(ctx, ErrNoCallbackClosure)
	}
	ctx.Arena().SetBuffer(managed.Handle(callbackClosureHandle), ctx.Input().PromiseCallbackClosure)
}
