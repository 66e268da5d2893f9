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
	"encoding/binary"
	"errors"

	"github.com/Fantom-foundation/MockVM/go/managed"
	"github.com/Fantom-foundation/MockVM/go/mockvm"
	"golang.org/x/crypto/sha3"
	"pgregory.net/rand"
)

func (h *Hooks) MBufferNew() int32 {
	ctx := h.use(h.gas.BufferOp)
	return int32(ctx.Arena().NewBuffer(nil))
}

func (h *Hooks) MBufferNewFromBytes(dataOffset int32, dataLength int32) int32 {
	ctx := h.use(h.gas.BufferOp)
	return int32(ctx.Arena().NewBuffer(h.load(ctx, dataOffset, dataLength)))
}

func (h *Hooks) MBufferGetLength(mBufferHandle int32) int32 {
	ctx := h.use(h.gas.BufferOp)
	length, err := ctx.Arena().MBLen(managed.Handle(mBufferHandle))
	check(ctx, err)
	return int32(length)
}

func (h *Hooks) MBufferGetBytes(mBufferHandle int32, resultOffset int32) int32 {
	ctx := h.use(h.gas.BufferOp)
	h.store(ctx, resultOffset, buffer(ctx, mBufferHandle))
	return 0
}

func (h *Hooks) MBufferGetByteSlice(sourceHandle int32, startingPosition int32, sliceLength int32, resultOffset int32) int32 {
	ctx := h.use(h.gas.BufferOp)
	slice, err := ctx.Arena().MBLoadSlice(managed.Handle(sourceHandle), int(startingPosition), int(sliceLength))
	if errors.Is(err, managed.ErrInvalidSlice) {
		return 1
	}
	check(ctx, err)
	h.store(ctx, resultOffset, slice)
	return 0
}

func (h *Hooks) MBufferCopyByteSlice(sourceHandle int32, startingPosition int32, sliceLength int32, destinationHandle int32) int32 {
	ctx := h.use(h.gas.BufferOp)
	err := ctx.Arena().MBSlice(managed.Handle(sourceHandle), int(startingPosition), int(sliceLength), managed.Handle(destinationHandle))
	if errors.Is(err, managed.ErrInvalidSlice) {
		return 1
	}
	check(ctx, err)
	return 0
}

func (h *Hooks) MBufferEq(mBufferHandle1 int32, mBufferHandle2 int32) int32 {
	ctx := h.use(h.gas.BufferOp)
	equal, err := ctx.Arena().MBEqual(managed.Handle(mBufferHandle1), managed.Handle(mBufferHandle2))
	check(ctx, err)
	return boolToInt32(equal)
}

func (h *Hooks) MBufferSetBytes(mBufferHandle int32, dataOffset int32, dataLength int32) int32 {
	ctx := h.use(h.gas.BufferOp)
	ctx.Arena().SetBuffer(managed.Handle(mBufferHandle), h.load(ctx, dataOffset, dataLength))
	return 0
}

func (h *Hooks) MBufferSetByteSlice(mBufferHandle int32, startingPosition int32, dataLength int32, dataOffset int32) int32 {
	ctx := h.use(h.gas.BufferOp)
	data := h.load(ctx, dataOffset, dataLength)
	err := ctx.Arena().MBSetSlice(managed.Handle(mBufferHandle), int(startingPosition), data)
	if errors.Is(err, managed.ErrInvalidSlice) {
		return 1
	}
	check(ctx, err)
	return 0
}

func (h *Hooks) MBufferAppend(accumulatorHandle int32, dataHandle int32) int32 {
	ctx := h.use(h.gas.BufferOp)
	check(ctx, ctx.Arena().MBAppendBuffer(managed.Handle(accumulatorHandle), managed.Handle(dataHandle)))
	return 0
}

func (h *Hooks) MBufferAppendBytes(accumulatorHandle int32, dataOffset int32, dataLength int32) int32 {
	ctx := h.use(h.gas.BufferOp)
	check(ctx, ctx.Arena().MBAppend(managed.Handle(accumulatorHandle), h.load(ctx, dataOffset, dataLength)))
	return 0
}

func (h *Hooks) MBufferToBigIntUnsigned(mBufferHandle int32, bigIntHandle int32) int32 {
	ctx := h.use(h.gas.BufferOp)
	ctx.Arena().BigIntFromBytesUnsigned(managed.Handle(bigIntHandle), buffer(ctx, mBufferHandle))
	return 0
}

func (h *Hooks) MBufferToBigIntSigned(mBufferHandle int32, bigIntHandle int32) int32 {
	ctx := h.use(h.gas.BufferOp)
	ctx.Arena().BigIntFromBytesSigned(managed.Handle(bigIntHandle), buffer(ctx, mBufferHandle))
	return 0
}

func (h *Hooks) MBufferFromBigIntUnsigned(mBufferHandle int32, bigIntHandle int32) int32 {
	ctx := h.use(h.gas.BufferOp)
	ctx.Arena().SetBuffer(managed.Handle(mBufferHandle), mockvm.EncodeBigIntUnsigned(bigInt(ctx, bigIntHandle)))
	return 0
}

func (h *Hooks) MBufferFromBigIntSigned(mBufferHandle int32, bigIntHandle int32) int32 {
	ctx := h.use(h.gas.BufferOp)
	ctx.Arena().SetBuffer(managed.Handle(mBufferHandle), mockvm.EncodeBigIntSigned(bigInt(ctx, bigIntHandle)))
	return 0
}

func (h *Hooks) MBufferToBigFloat(mBufferHandle int32, bigFloatHandle int32) int32 {
	ctx := h.use(h.gas.BufferOp)
	check(ctx, ctx.Arena().BigFloatDecode(managed.Handle(bigFloatHandle), buffer(ctx, mBufferHandle)))
	return 0
}

func (h *Hooks) MBufferFromBigFloat(mBufferHandle int32, bigFloatHandle int32) int32 {
	ctx := h.use(h.gas.BufferOp)
	data, err := ctx.Arena().BigFloatEncode(managed.Handle(bigFloatHandle))
	check(ctx, err)
	ctx.Arena().SetBuffer(managed.Handle(mBufferHandle), data)
	return 0
}

func (h *Hooks) MBufferStorageStore(keyHandle int32, sourceHandle int32) int32 {
	ctx := h.use(h.gas.BufferOp)
	key := buffer(ctx, keyHandle)
	h.storageStore(ctx, key, buffer(ctx, sourceHandle))
	return 0
}

func (h *Hooks) MBufferStorageLoad(keyHandle int32, destinationHandle int32) int32 {
	ctx := h.use(h.gas.StorageLoad)
	data := storageLoad(ctx, ctx.Input().To, buffer(ctx, keyHandle))
	ctx.Arena().SetBuffer(managed.Handle(destinationHandle), data)
	return 0
}

func (h *Hooks) MBufferStorageLoadFromAddress(addressHandle int32, keyHandle int32, destinationHandle int32) {
	ctx := h.use(h.gas.StorageLoad)
	address := bufferAddress(ctx, addressHandle)
	data := storageLoad(ctx, address, buffer(ctx, keyHandle))
	ctx.Arena().SetBuffer(managed.Handle(destinationHandle), data)
}

func (h *Hooks) MBufferGetArgument(id int32, destinationHandle int32) int32 {
	ctx := h.use(h.gas.BufferOp)
	ctx.Arena().SetBuffer(managed.Handle(destinationHandle), argument(ctx, id))
	return 0
}

func (h *Hooks) MBufferFinish(sourceHandle int32) int32 {
	ctx := h.use(h.gas.BufferOp)
	ctx.Finish(buffer(ctx, sourceHandle))
	return 0
}

// MBufferSetRandom fills a buffer with pseudo random bytes. The generator
// is seeded from the transaction hash and the block seed, so replays of a
// transaction observe the same bytes.
func (h *Hooks) MBufferSetRandom(destinationHandle int32, length int32) int32 {
	ctx := h.use(h.gas.BufferOp)
	if length < 0 {
		failExecution(ctx, ErrNegativeLength)
	}
	h.chargeBytes(ctx, int(length))
	if h.random == nil {
		h.random = newRandom(ctx.Input().TxHash, ctx.BlockchainInfo().Current.RandomSeed)
	}
	data := make([]byte, length)
	_, _ = h.random.Read(data)
	ctx.Arena().SetBuffer(managed.Handle(destinationHandle), data)
	return 0
}

func newRandom(txHash mockvm.Hash, seed [48]byte) *rand.Rand {
	hasher := sha3.NewLegacyKeccak256()
	hasher.Write(txHash[:])
	hasher.Write(seed[:])
	digest := hasher.Sum(nil)
	// the generator takes at most three seed words
	return rand.New(
		binary.BigEndian.Uint64(digest[0:]),
		binary.BigEndian.Uint64(digest[8:]),
		binary.BigEndian.Uint64(digest[16:])^binary.BigEndian.Uint64(digest[24:]),
	)
}

// --- managed maps ---

func (h *Hooks) ManagedMapNew() int32 {
	ctx := h.use(h.gas.MapOp)
	return int32(ctx.Arena().NewMap())
}

func (h *Hooks) ManagedMapPut(mMapHandle int32, keyHandle int32, valueHandle int32) int32 {
	ctx := h.use(h.gas.MapOp)
	key := buffer(ctx, keyHandle)
	value := buffer(ctx, valueHandle)
	check(ctx, ctx.Arena().MapPut(managed.Handle(mMapHandle), key, value))
	return 0
}

func (h *Hooks) ManagedMapGet(mMapHandle int32, keyHandle int32, outValueHandle int32) int32 {
	ctx := h.use(h.gas.MapOp)
	value, err := ctx.Arena().MapGet(managed.Handle(mMapHandle), buffer(ctx, keyHandle))
	check(ctx, err)
	ctx.Arena().SetBuffer(managed.Handle(outValueHandle), value)
	return 0
}

func (h *Hooks) ManagedMapRemove(mMapHandle int32, keyHandle int32, outValueHandle int32) int32 {
	ctx := h.use(h.gas.MapOp)
	value, err := ctx.Arena().MapRemove(managed.Handle(mMapHandle), buffer(ctx, keyHandle))
	check(ctx, err)
	ctx.Arena().SetBuffer(managed.Handle(outValueHandle), value)
	return 0
}

func (h *Hooks) ManagedMapContains(mMapHandle int32, keyHandle int32) int32 {
	ctx := h.use(h.gas.MapOp)
	found, err := ctx.Arena().MapContains(managed.Handle(mMapHandle), buffer(ctx, keyHandle))
	check(ctx, err)
	return boolToInt32(found)
}
