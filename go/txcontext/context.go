// Copyright (c) 2024 Fantom Foundation
//
// Use of this software is governed by the Business Source License included
// in the LICENSE file and at fantom.foundation/bsl11.
//
// Change Date: 2028-4-16
//
// On the date above, in accordance with the Business Source License, use of
// this software will be governed by the GNU Lesser General Public License v3.

// Package txcontext bundles everything one contract invocation works on:
// its input, the state overlay, the managed value arena, the result being
// built, and the view of the chain. It also provides the stack through which
// host functions find the invocation they are serving.
package txcontext

import (
	"math/big"

	"github.com/Fantom-foundation/MockVM/go/managed"
	"github.com/Fantom-foundation/MockVM/go/mockvm"
	"github.com/Fantom-foundation/MockVM/go/txcache"
)

//go:generate mockgen -source context.go -destination context_mock.go -package txcontext

const (
	ErrNotEnoughGas = mockvm.ConstError("not enough gas")
	ErrDummyContext = mockvm.ConstError("operation requires an active transaction")
)

// Instance is the view of an executing contract instance the host needs
// while serving hook calls: its linear memory, its gas meter and the
// breakpoint value used to unwind it.
type Instance interface {
	MemLoad(offset uint32, length uint32) ([]byte, error)
	MemStore(offset uint32, data []byte) error
	GetPointsUsed() uint64
	SetPointsUsed(points uint64)
	GetBreakpointValue() mockvm.BreakpointValue
	SetBreakpointValue(value mockvm.BreakpointValue)
}

// Dispatcher runs nested invocations on behalf of host functions. It is
// implemented by the execution driver.
type Dispatcher interface {
	// ExecuteSyncCall runs the given call to completion on top of the
	// caller's state and returns its result.
	ExecuteSyncCall(caller *TxContext, input *mockvm.TxInput) mockvm.TxResult
	// DeployContract deploys new code from within a contract.
	DeployContract(caller *TxContext, input *mockvm.TxInput, code, codeMetadata []byte) mockvm.TxResult
	// UpgradeContract replaces the code of an existing contract.
	UpgradeContract(caller *TxContext, input *mockvm.TxInput, code, codeMetadata []byte) mockvm.TxResult
}

// TxContext is the state of one (sub)invocation. Only the context on top
// of the stack is modified at any time.
type TxContext struct {
	input      *mockvm.TxInput
	cache      *txcache.Cache
	arena      *managed.Arena
	result     mockvm.TxResult
	blockchain mockvm.BlockchainInfo
	dispatcher Dispatcher
	instance   Instance
	gasUsed    uint64
	depth      int
	dummy      bool
}

// New creates the context of an invocation. The arena issues handles from
// the given source, which is shared among all contexts of one transaction.
func New(input *mockvm.TxInput, cache *txcache.Cache, dispatcher Dispatcher, handles *managed.HandleSource) *TxContext {
	res := &TxContext{
		input:      input,
		cache:      cache,
		arena:      managed.NewArena(handles),
		blockchain: cache.BlockchainInfo(),
		dispatcher: dispatcher,
	}
	res.arena.SetBigInt(managed.ConstHandleCallValueEGLD, input.GetEGLDValue())
	res.arena.WriteESDTPayments(managed.ConstHandleCallValueESDT, input.ESDTValues)
	if input.PromiseCallbackClosure != nil {
		res.arena.SetBuffer(managed.ConstHandleCallbackClosure, input.PromiseCallbackClosure)
	}
	return res
}

// Dummy creates a context not belonging to any transaction. It offers an
// empty input and arena; everything requiring state fails.
func Dummy() *TxContext {
	return &TxContext{
		input: &mockvm.TxInput{EGLDValue: new(big.Int)},
		arena: managed.NewArena(nil),
		dummy: true,
	}
}

func (c *TxContext) IsDummy() bool {
	return c.dummy
}

func (c *TxContext) Input() *mockvm.TxInput {
	return c.input
}

// Cache returns the state overlay of the invocation. Dummy contexts have no
// state and panic.
func (c *TxContext) Cache() *txcache.Cache {
	if c.dummy {
		panic(ErrDummyContext)
	}
	return c.cache
}

func (c *TxContext) Arena() *managed.Arena {
	return c.arena
}

func (c *TxContext) BlockchainInfo() mockvm.BlockchainInfo {
	return c.blockchain
}

// Dispatcher returns the driver for nested calls. Dummy contexts panic.
func (c *TxContext) Dispatcher() Dispatcher {
	if c.dummy || c.dispatcher == nil {
		panic(ErrDummyContext)
	}
	return c.dispatcher
}

// Depth is the number of invocations below this one on the call stack.
func (c *TxContext) Depth() int {
	return c.depth
}

func (c *TxContext) SetDepth(depth int) {
	c.depth = depth
}

// --- executing instance ---

// BindInstance attaches the instance executing this invocation. While an
// instance is bound, gas is metered through its points counter.
func (c *TxContext) BindInstance(instance Instance) {
	if instance != nil {
		instance.SetPointsUsed(c.gasUsed)
	}
	c.instance = instance
}

// UnbindInstance detaches the instance, retaining the gas it consumed.
func (c *TxContext) UnbindInstance() {
	if c.instance != nil {
		c.gasUsed = c.instance.GetPointsUsed()
	}
	c.instance = nil
}

// Instance returns the bound instance, nil if there is none.
func (c *TxContext) Instance() Instance {
	return c.instance
}

// --- gas ---

func (c *TxContext) GasLimit() uint64 {
	return c.input.GasLimit
}

func (c *TxContext) GasUsed() uint64 {
	if c.instance != nil {
		return c.instance.GetPointsUsed()
	}
	return c.gasUsed
}

func (c *TxContext) GasLeft() uint64 {
	used := c.GasUsed()
	if used >= c.GasLimit() {
		return 0
	}
	return c.GasLimit() - used
}

func (c *TxContext) setGasUsed(used uint64) {
	if c.instance != nil {
		c.instance.SetPointsUsed(used)
		return
	}
	c.gasUsed = used
}

// UseGas consumes gas. If not enough gas is left, all remaining gas is
// consumed and ErrNotEnoughGas is returned.
func (c *TxContext) UseGas(amount uint64) error {
	if amount > c.GasLeft() {
		c.setGasUsed(c.GasLimit())
		return ErrNotEnoughGas
	}
	c.setGasUsed(c.GasUsed() + amount)
	return nil
}

// RestoreGas gives back previously consumed gas, e.g. the unused part of a
// budget handed to a nested call.
func (c *TxContext) RestoreGas(amount uint64) {
	used := c.GasUsed()
	if amount > used {
		amount = used
	}
	c.setGasUsed(used - amount)
}

// --- result ---

// Result gives access to the result being built.
func (c *TxContext) Result() *mockvm.TxResult {
	return &c.result
}

func (c *TxContext) AppendLog(log mockvm.Log) {
	c.result.ResultLogs = append(c.result.ResultLogs, log)
}

// Finish appends a return value.
func (c *TxContext) Finish(value []byte) {
	c.result.ResultValues = append(c.result.ResultValues, append([]byte{}, value...))
}

// Fail marks the invocation as failed; logs collected so far are kept.
func (c *TxContext) Fail(status mockvm.ReturnCode, message string) {
	c.result.ResultStatus = status
	c.result.ResultMessage = message
}

// AddAsyncCall registers a call to be executed once this invocation ends.
func (c *TxContext) AddAsyncCall(call mockvm.AsyncCall) {
	c.result.PendingCalls = append(c.result.PendingCalls, call)
}

// HarvestResult returns the final result, including the gas figures.
func (c *TxContext) HarvestResult() mockvm.TxResult {
	res := c.result
	res.GasUsed = c.GasUsed()
	if res.GasUsed < c.GasLimit() {
		res.GasRefund = c.GasLimit() - res.GasUsed
	}
	return res
}
