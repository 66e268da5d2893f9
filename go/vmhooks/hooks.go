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
	"bytes"
	"math/big"

	"github.com/Fantom-foundation/MockVM/go/managed"
	"github.com/Fantom-foundation/MockVM/go/mockvm"
	"github.com/Fantom-foundation/MockVM/go/txcontext"
	"github.com/Fantom-foundation/MockVM/go/world"
	"pgregory.net/rand"
)

// ReservedStoragePrefix marks storage keys only the protocol may write.
const ReservedStoragePrefix = "ELROND"

// Storage write outcomes reported by the storage store hooks.
const (
	StorageUnchanged int32 = iota
	StorageModified
	StorageAdded
	StorageDeleted
)

// Hooks implements VMHooks on top of the context stack of one transaction.
type Hooks struct {
	stack  *txcontext.Stack
	gas    GasSchedule
	random *rand.Rand
}

var _ VMHooks = (*Hooks)(nil)

func New(stack *txcontext.Stack, gas GasSchedule) *Hooks {
	return &Hooks{stack: stack, gas: gas}
}

// Stack returns the context stack the hooks operate on.
func (h *Hooks) Stack() *txcontext.Stack {
	return h.stack
}

func (h *Hooks) GasSchedule() GasSchedule {
	return h.gas
}

// use returns the active context after charging the given cost. Outside of
// a transaction nothing is charged.
func (h *Hooks) use(cost uint64) *txcontext.TxContext {
	ctx := h.stack.Peek()
	if !ctx.IsDummy() {
		charge(ctx, cost)
	}
	return ctx
}

func charge(ctx *txcontext.TxContext, cost uint64) {
	if cost == 0 {
		return
	}
	if err := ctx.UseGas(cost); err != nil {
		failExecution(ctx, err)
	}
}

func (h *Hooks) chargeBytes(ctx *txcontext.TxContext, n int) {
	if !ctx.IsDummy() {
		charge(ctx, h.gas.PerByte*uint64(n))
	}
}

func check(ctx *txcontext.TxContext, err error) {
	if err != nil {
		failExecution(ctx, err)
	}
}

// --- linear memory ---

func (h *Hooks) load(ctx *txcontext.TxContext, offset, length int32) []byte {
	if offset < 0 || length < 0 {
		failExecution(ctx, ErrBadBounds)
	}
	instance := ctx.Instance()
	if instance == nil {
		failExecution(ctx, ErrNoInstance)
	}
	h.chargeBytes(ctx, int(length))
	data, err := instance.MemLoad(uint32(offset), uint32(length))
	if err != nil {
		failExecution(ctx, ErrBadBounds)
	}
	return data
}

func (h *Hooks) store(ctx *txcontext.TxContext, offset int32, data []byte) {
	if offset < 0 {
		failExecution(ctx, ErrBadBounds)
	}
	instance := ctx.Instance()
	if instance == nil {
		failExecution(ctx, ErrNoInstance)
	}
	h.chargeBytes(ctx, len(data))
	if err := instance.MemStore(uint32(offset), data); err != nil {
		failExecution(ctx, ErrBadBounds)
	}
}

func (h *Hooks) loadAddress(ctx *txcontext.TxContext, offset int32) mockvm.Address {
	address, err := mockvm.AddressFromBytes(h.load(ctx, offset, int32(len(mockvm.Address{}))))
	check(ctx, err)
	return address
}

// --- managed values ---

func bigInt(ctx *txcontext.TxContext, handle int32) *big.Int {
	value, err := ctx.Arena().BigInt(managed.Handle(handle))
	check(ctx, err)
	return value
}

func bigFloat(ctx *txcontext.TxContext, handle int32) *big.Float {
	value, err := ctx.Arena().BigFloat(managed.Handle(handle))
	check(ctx, err)
	return value
}

func buffer(ctx *txcontext.TxContext, handle int32) []byte {
	data, err := ctx.Arena().Buffer(managed.Handle(handle))
	check(ctx, err)
	return data
}

func bufferAddress(ctx *txcontext.TxContext, handle int32) mockvm.Address {
	address, err := mockvm.AddressFromBytes(buffer(ctx, handle))
	if err != nil {
		failExecution(ctx, ErrInvalidAddress)
	}
	return address
}

func bufferList(ctx *txcontext.TxContext, handle int32) [][]byte {
	list, err := ctx.Arena().ReadBufferList(managed.Handle(handle))
	check(ctx, err)
	return list
}

// --- arguments ---

func argument(ctx *txcontext.TxContext, id int32) []byte {
	args := ctx.Input().Args
	if id < 0 || int(id) >= len(args) {
		failExecution(ctx, ErrArgIndexOutOfRange)
	}
	return args[id]
}

// --- storage ---

func storageLoad(ctx *txcontext.TxContext, address mockvm.Address, key []byte) []byte {
	account, found := ctx.Cache().GetAccount(address)
	if !found {
		return nil
	}
	return account.GetStorage(key)
}

func (h *Hooks) storageStore(ctx *txcontext.TxContext, key, value []byte) int32 {
	if bytes.HasPrefix(key, []byte(ReservedStoragePrefix)) {
		failExecution(ctx, ErrStoreReservedKey)
	}
	charge(ctx, h.gas.StorageStore+h.gas.PerStoredByte*uint64(len(value)))

	address := ctx.Input().To
	old := storageLoad(ctx, address, key)
	status := StorageModified
	switch {
	case bytes.Equal(old, value):
		return StorageUnchanged
	case len(old) == 0:
		status = StorageAdded
	case len(value) == 0:
		status = StorageDeleted
	}
	check(ctx, ctx.Cache().WithAccountOrCreate(address, func(account *world.Account) error {
		account.SetStorage(key, value)
		return nil
	}))
	return status
}

func boolToInt32(b bool) int32 {
	if b {
		return 1
	}
	return 0
}
