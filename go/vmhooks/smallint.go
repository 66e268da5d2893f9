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

import "github.com/Fantom-foundation/MockVM/go/mockvm"

func (h *Hooks) SmallIntGetUnsignedArgument(id int32) int64 {
	ctx := h.use(h.gas.BaseOp)
	value, ok := mockvm.DecodeUint64(argument(ctx, id))
	if !ok {
		failExecution(ctx, ErrArgumentOutOfRange)
	}
	return int64(value)
}

func (h *Hooks) SmallIntGetSignedArgument(id int32) int64 {
	ctx := h.use(h.gas.BaseOp)
	value := mockvm.DecodeBigIntSigned(argument(ctx, id))
	if !value.IsInt64() {
		failExecution(ctx, ErrArgumentOutOfRange)
	}
	return value.Int64()
}

func (h *Hooks) SmallIntFinishUnsigned(value int64) {
	ctx := h.use(h.gas.BaseOp)
	ctx.Finish(mockvm.EncodeUint64Minimal(uint64(value)))
}

func (h *Hooks) SmallIntFinishSigned(value int64) {
	ctx := h.use(h.gas.BaseOp)
	ctx.Finish(mockvm.EncodeInt64Minimal(value))
}

func (h *Hooks) SmallIntStorageStoreUnsigned(keyOffset int32, keyLength int32, value int64) int32 {
	ctx := h.use(h.gas.BaseOp)
	key := h.load(ctx, keyOffset, keyLength)
	return h.storageStore(ctx, key, mockvm.EncodeUint64Minimal(uint64(value)))
}

func (h *Hooks) SmallIntStorageStoreSigned(keyOffset int32, keyLength int32, value int64) int32 {
	ctx := h.use(h.gas.BaseOp)
	key := h.load(ctx, keyOffset, keyLength)
	return h.storageStore(ctx, key, mockvm.EncodeInt64Minimal(value))
}

func (h *Hooks) SmallIntStorageLoadUnsigned(keyOffset int32, keyLength int32) int64 {
	ctx := h.use(h.gas.StorageLoad)
	key := h.load(ctx, keyOffset, keyLength)
	value, ok := mockvm.DecodeUint64(storageLoad(ctx, ctx.Input().To, key))
	if !ok {
		failExecution(ctx, ErrArgumentOutOfRange)
	}
	return int64(value)
}

func (h *Hooks) SmallIntStorageLoadSigned(keyOffset int32, keyLength int32) int64 {
	ctx := h.use(h.gas.StorageLoad)
	key := h.load(ctx, keyOffset, keyLength)
	value := mockvm.DecodeBigIntSigned(storageLoad(ctx, ctx.Input().To, key))
	if !value.IsInt64() {
		failExecution(ctx, ErrArgumentOutOfRange)
	}
	return value.Int64()
}
