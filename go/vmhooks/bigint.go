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
	"github.com/Fantom-foundation/MockVM/go/txcontext"
)

func (h *Hooks) BigIntNew(smallValue int64) int32 {
	ctx := h.use(h.gas.BigIntOp)
	return int32(ctx.Arena().NewBigInt(big.NewInt(smallValue)))
}

func (h *Hooks) BigIntUnsignedByteLength(reference int32) int32 {
	ctx := h.use(h.gas.BigIntOp)
	data, err := ctx.Arena().BigIntToBytesUnsigned(managed.Handle(reference))
	check(ctx, err)
	return int32(len(data))
}

func (h *Hooks) BigIntSignedByteLength(reference int32) int32 {
	ctx := h.use(h.gas.BigIntOp)
	data, err := ctx.Arena().BigIntToBytesSigned(managed.Handle(reference))
	check(ctx, err)
	return int32(len(data))
}

func (h *Hooks) BigIntGetUnsignedBytes(reference int32, byteOffset int32) int32 {
	ctx := h.use(h.gas.BigIntOp)
	data, err := ctx.Arena().BigIntToBytesUnsigned(managed.Handle(reference))
	check(ctx, err)
	h.store(ctx, byteOffset, data)
	return int32(len(data))
}

func (h *Hooks) BigIntGetSignedBytes(reference int32, byteOffset int32) int32 {
	ctx := h.use(h.gas.BigIntOp)
	data, err := ctx.Arena().BigIntToBytesSigned(managed.Handle(reference))
	check(ctx, err)
	h.store(ctx, byteOffset, data)
	return int32(len(data))
}

func (h *Hooks) BigIntSetUnsignedBytes(destination int32, byteOffset int32, byteLength int32) {
	ctx := h.use(h.gas.BigIntOp)
	ctx.Arena().BigIntFromBytesUnsigned(managed.Handle(destination), h.load(ctx, byteOffset, byteLength))
}

func (h *Hooks) BigIntSetSignedBytes(destination int32, byteOffset int32, byteLength int32) {
	ctx := h.use(h.gas.BigIntOp)
	ctx.Arena().BigIntFromBytesSigned(managed.Handle(destination), h.load(ctx, byteOffset, byteLength))
}

func (h *Hooks) BigIntIsInt64(destination int32) int32 {
	ctx := h.use(h.gas.BigIntOp)
	return boolToInt32(bigInt(ctx, destination).IsInt64())
}

func (h *Hooks) BigIntGetInt64(destination int32) int64 {
	ctx := h.use(h.gas.BigIntOp)
	value, err := ctx.Arena().BigIntInt64(managed.Handle(destination))
	check(ctx, err)
	return value
}

func (h *Hooks) BigIntSetInt64(destination int32, value int64) {
	ctx := h.use(h.gas.BigIntOp)
	ctx.Arena().SetBigInt(managed.Handle(destination), big.NewInt(value))
}

// binary runs an arena operation of the form dest = op(x, y).
func (h *Hooks) binary(op func(a *managed.Arena, dest, x, y managed.Handle) error, dest, x, y int32) {
	ctx := h.use(h.gas.BigIntOp)
	check(ctx, op(ctx.Arena(), managed.Handle(dest), managed.Handle(x), managed.Handle(y)))
}

func (h *Hooks) unary(op func(a *managed.Arena, dest, x managed.Handle) error, dest, x int32) {
	ctx := h.use(h.gas.BigIntOp)
	check(ctx, op(ctx.Arena(), managed.Handle(dest), managed.Handle(x)))
}

func (h *Hooks) BigIntAdd(destination int32, op1 int32, op2 int32) {
	h.binary((*managed.Arena).BigIntAdd, destination, op1, op2)
}

func (h *Hooks) BigIntSub(destination int32, op1 int32, op2 int32) {
	h.binary((*managed.Arena).BigIntSub, destination, op1, op2)
}

func (h *Hooks) BigIntMul(destination int32, op1 int32, op2 int32) {
	ctx := h.use(h.gas.BigIntOp)
	h.chargeResultBits(ctx, managed.MulResultBits(bigInt(ctx, op1), bigInt(ctx, op2)))
	check(ctx, ctx.Arena().BigIntMul(managed.Handle(destination), managed.Handle(op1), managed.Handle(op2)))
}

func (h *Hooks) BigIntTDiv(destination int32, op1 int32, op2 int32) {
	h.binary((*managed.Arena).BigIntTDiv, destination, op1, op2)
}

func (h *Hooks) BigIntTMod(destination int32, op1 int32, op2 int32) {
	h.binary((*managed.Arena).BigIntTMod, destination, op1, op2)
}

func (h *Hooks) BigIntEDiv(destination int32, op1 int32, op2 int32) {
	h.binary((*managed.Arena).BigIntEDiv, destination, op1, op2)
}

func (h *Hooks) BigIntEMod(destination int32, op1 int32, op2 int32) {
	h.binary((*managed.Arena).BigIntEMod, destination, op1, op2)
}

func (h *Hooks) BigIntPow(destination int32, op1 int32, op2 int32) {
	ctx := h.use(h.gas.BigIntOp)
	h.chargeResultBits(ctx, managed.PowResultBits(bigInt(ctx, op1), bigInt(ctx, op2)))
	check(ctx, ctx.Arena().BigIntPow(managed.Handle(destination), managed.Handle(op1), managed.Handle(op2)))
}

func (h *Hooks) BigIntSqrt(destination int32, op int32) {
	h.unary((*managed.Arena).BigIntSqrt, destination, op)
}

func (h *Hooks) BigIntLog2(op int32) int32 {
	ctx := h.use(h.gas.BigIntOp)
	res, err := ctx.Arena().BigIntLog2(managed.Handle(op))
	check(ctx, err)
	return res
}

func (h *Hooks) BigIntAbs(destination int32, op int32) {
	h.unary((*managed.Arena).BigIntAbs, destination, op)
}

func (h *Hooks) BigIntNeg(destination int32, op int32) {
	h.unary((*managed.Arena).BigIntNeg, destination, op)
}

func (h *Hooks) BigIntSign(op int32) int32 {
	ctx := h.use(h.gas.BigIntOp)
	res, err := ctx.Arena().BigIntSign(managed.Handle(op))
	check(ctx, err)
	return res
}

func (h *Hooks) BigIntCmp(op1 int32, op2 int32) int32 {
	ctx := h.use(h.gas.BigIntOp)
	res, err := ctx.Arena().BigIntCmp(managed.Handle(op1), managed.Handle(op2))
	check(ctx, err)
	return res
}

func (h *Hooks) BigIntNot(destination int32, op int32) {
	h.unary((*managed.Arena).BigIntNot, destination, op)
}

func (h *Hooks) BigIntAnd(destination int32, op1 int32, op2 int32) {
	h.binary((*managed.Arena).BigIntAnd, destination, op1, op2)
}

func (h *Hooks) BigIntOr(destination int32, op1 int32, op2 int32) {
	h.binary((*managed.Arena).BigIntOr, destination, op1, op2)
}

func (h *Hooks) BigIntXor(destination int32, op1 int32, op2 int32) {
	h.binary((*managed.Arena).BigIntXor, destination, op1, op2)
}

func (h *Hooks) BigIntShr(destination int32, op int32, bits int32) {
	ctx := h.use(h.gas.BigIntOp)
	check(ctx, ctx.Arena().BigIntShr(managed.Handle(destination), managed.Handle(op), bits))
}

func (h *Hooks) BigIntShl(destination int32, op int32, bits int32) {
	ctx := h.use(h.gas.BigIntOp)
	h.chargeResultBits(ctx, uint64(bigInt(ctx, op).BitLen())+uint64(max(bits, 0)))
	check(ctx, ctx.Arena().BigIntShl(managed.Handle(destination), managed.Handle(op), bits))
}

// chargeResultBits charges for a result of the given size. Oversized
// results are rejected by the arena without being computed.
func (h *Hooks) chargeResultBits(ctx *txcontext.TxContext, bits uint64) {
	if ctx.IsDummy() || bits > managed.MaxBigIntBits {
		return
	}
	charge(ctx, h.gas.BigIntPerWord*((bits+63)/64))
}

func (h *Hooks) BigIntFinishUnsigned(reference int32) {
	ctx := h.use(h.gas.BigIntOp)
	ctx.Finish(mockvm.EncodeBigIntUnsigned(bigInt(ctx, reference)))
}

func (h *Hooks) BigIntFinishSigned(reference int32) {
	ctx := h.use(h.gas.BigIntOp)
	ctx.Finish(mockvm.EncodeBigIntSigned(bigInt(ctx, reference)))
}

func (h *Hooks) BigIntGetUnsignedArgument(id int32, destination int32) {
	ctx := h.use(h.gas.BigIntOp)
	ctx.Arena().BigIntFromBytesUnsigned(managed.Handle(destination), argument(ctx, id))
}

func (h *Hooks) BigIntGetSignedArgument(id int32, destination int32) {
	ctx := h.use(h.gas.BigIntOp)
	ctx.Arena().BigIntFromBytesSigned(managed.Handle(destination), argument(ctx, id))
}

func (h *Hooks) BigIntStorageStoreUnsigned(keyOffset int32, keyLength int32, source int32) int32 {
	ctx := h.use(h.gas.BigIntOp)
	key := h.load(ctx, keyOffset, keyLength)
	return h.storageStore(ctx, key, mockvm.EncodeBigIntUnsigned(bigInt(ctx, source)))
}

func (h *Hooks) BigIntStorageLoadUnsigned(keyOffset int32, keyLength int32, destination int32) int32 {
	ctx := h.use(h.gas.StorageLoad)
	key := h.load(ctx, keyOffset, keyLength)
	data := storageLoad(ctx, ctx.Input().To, key)
	ctx.Arena().BigIntFromBytesUnsigned(managed.Handle(destination), data)
	return int32(len(data))
}

func (h *Hooks) BigIntGetCallValue(destination int32) {
	ctx := h.use(h.gas.BigIntOp)
	ctx.Arena().SetBigInt(managed.Handle(destination), ctx.Input().GetEGLDValue())
}

func (h *Hooks) BigIntGetESDTCallValue(destination int32) {
	h.BigIntGetESDTCallValueByIndex(destination, 0)
}

func (h *Hooks) BigIntGetESDTCallValueByIndex(destination int32, index int32) {
	ctx := h.use(h.gas.BigIntOp)
	payments := ctx.Input().ESDTValues
	if index < 0 || int(index) >= len(payments) {
		failExecution(ctx, ErrInvalidTokenIndex)
	}
	ctx.Arena().SetBigInt(managed.Handle(destination), payments[index].Value)
}

func (h *Hooks) BigIntGetExternalBalance(addressOffset int32, result int32) {
	ctx := h.use(h.gas.BigIntOp)
	address := h.loadAddress(ctx, addressOffset)
	balance := new(big.Int)
	if account, found := ctx.Cache().GetAccount(address); found {
		balance = account.Balance
	}
	ctx.Arena().SetBigInt(managed.Handle(result), balance)
}

func (h *Hooks) BigIntGetESDTExternalBalance(addressOffset int32, tokenIDOffset int32, tokenIDLen int32, nonce int64, result int32) {
	ctx := h.use(h.gas.BigIntOp)
	address := h.loadAddress(ctx, addressOffset)
	tokenID := h.load(ctx, tokenIDOffset, tokenIDLen)
	ctx.Arena().SetBigInt(managed.Handle(result), esdtBalance(ctx, address, tokenID, uint64(nonce)))
}

// BigIntToString writes the decimal representation of a big int into a
// buffer.
func (h *Hooks) BigIntToString(bigIntHandle int32, destination int32) {
	ctx := h.use(h.gas.BigIntOp)
	ctx.Arena().SetBuffer(managed.Handle(destination), []byte(bigInt(ctx, bigIntHandle).String()))
}
