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

import "github.com/Fantom-foundation/MockVM/go/managed"

func (h *Hooks) BigFloatNewFromParts(integralPart int32, fractionalPart int32, exponent int32) int32 {
	ctx := h.use(h.gas.BigFloatOp)
	res, err := ctx.Arena().BigFloatNewFromParts(integralPart, fractionalPart, exponent)
	check(ctx, err)
	return int32(res)
}

func (h *Hooks) BigFloatNewFromFrac(numerator int64, denominator int64) int32 {
	ctx := h.use(h.gas.BigFloatOp)
	res, err := ctx.Arena().BigFloatNewFromFrac(numerator, denominator)
	check(ctx, err)
	return int32(res)
}

func (h *Hooks) BigFloatNewFromSci(significand int64, exponent int64) int32 {
	ctx := h.use(h.gas.BigFloatOp)
	res, err := ctx.Arena().BigFloatNewFromSci(significand, exponent)
	check(ctx, err)
	return int32(res)
}

func (h *Hooks) floatBinary(op func(a *managed.Arena, dest, x, y managed.Handle) error, dest, x, y int32) {
	ctx := h.use(h.gas.BigFloatOp)
	check(ctx, op(ctx.Arena(), managed.Handle(dest), managed.Handle(x), managed.Handle(y)))
}

func (h *Hooks) floatUnary(op func(a *managed.Arena, dest, x managed.Handle) error, dest, x int32) {
	ctx := h.use(h.gas.BigFloatOp)
	check(ctx, op(ctx.Arena(), managed.Handle(dest), managed.Handle(x)))
}

func (h *Hooks) BigFloatAdd(destination int32, op1 int32, op2 int32) {
	h.floatBinary((*managed.Arena).BigFloatAdd, destination, op1, op2)
}

func (h *Hooks) BigFloatSub(destination int32, op1 int32, op2 int32) {
	h.floatBinary((*managed.Arena).BigFloatSub, destination, op1, op2)
}

func (h *Hooks) BigFloatMul(destination int32, op1 int32, op2 int32) {
	h.floatBinary((*managed.Arena).BigFloatMul, destination, op1, op2)
}

func (h *Hooks) BigFloatDiv(destination int32, op1 int32, op2 int32) {
	h.floatBinary((*managed.Arena).BigFloatDiv, destination, op1, op2)
}

func (h *Hooks) BigFloatNeg(destination int32, op int32) {
	h.floatUnary((*managed.Arena).BigFloatNeg, destination, op)
}

func (h *Hooks) BigFloatClone(destination int32, op int32) {
	h.floatUnary((*managed.Arena).BigFloatClone, destination, op)
}

func (h *Hooks) BigFloatCmp(op1 int32, op2 int32) int32 {
	ctx := h.use(h.gas.BigFloatOp)
	res, err := ctx.Arena().BigFloatCmp(managed.Handle(op1), managed.Handle(op2))
	check(ctx, err)
	return res
}

func (h *Hooks) BigFloatAbs(destination int32, op int32) {
	h.floatUnary((*managed.Arena).BigFloatAbs, destination, op)
}

func (h *Hooks) BigFloatSign(op int32) int32 {
	ctx := h.use(h.gas.BigFloatOp)
	res, err := ctx.Arena().BigFloatSign(managed.Handle(op))
	check(ctx, err)
	return res
}

func (h *Hooks) BigFloatSqrt(destination int32, op int32) {
	h.floatUnary((*managed.Arena).BigFloatSqrt, destination, op)
}

func (h *Hooks) BigFloatPow(destination int32, op int32, exponent int32) {
	ctx := h.use(h.gas.BigFloatOp)
	check(ctx, ctx.Arena().BigFloatPow(managed.Handle(destination), managed.Handle(op), exponent))
}

func (h *Hooks) BigFloatFloor(destBigInt int32, op int32) {
	h.floatUnary((*managed.Arena).BigFloatFloor, destBigInt, op)
}

func (h *Hooks) BigFloatCeil(destBigInt int32, op int32) {
	h.floatUnary((*managed.Arena).BigFloatCeil, destBigInt, op)
}

func (h *Hooks) BigFloatTruncate(destBigInt int32, op int32) {
	h.floatUnary((*managed.Arena).BigFloatTruncate, destBigInt, op)
}

func (h *Hooks) BigFloatSetInt64(destination int32, value int64) {
	ctx := h.use(h.gas.BigFloatOp)
	ctx.Arena().BigFloatSetInt64(managed.Handle(destination), value)
}

func (h *Hooks) BigFloatIsInt(op int32) int32 {
	ctx := h.use(h.gas.BigFloatOp)
	res, err := ctx.Arena().BigFloatIsInt(managed.Handle(op))
	check(ctx, err)
	return boolToInt32(res)
}

func (h *Hooks) BigFloatSetBigInt(destination int32, bigIntHandle int32) {
	h.floatUnary((*managed.Arena).BigFloatSetBigInt, destination, bigIntHandle)
}

func (h *Hooks) BigFloatGetConstPi(destination int32) {
	ctx := h.use(h.gas.BigFloatOp)
	ctx.Arena().BigFloatConstPi(managed.Handle(destination))
}

func (h *Hooks) BigFloatGetConstE(destination int32) {
	ctx := h.use(h.gas.BigFloatOp)
	ctx.Arena().BigFloatConstE(managed.Handle(destination))
}
