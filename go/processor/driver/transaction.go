// Copyright (c) 2024 Fantom Foundation
//
// Use of this software is governed by the Business Source License included
// in the LICENSE file and at fantom.foundation/bsl11.
//
// Change Date: 2028-4-16
//
// On the date above, in accordance with the Business Source License, use of
// this software will be governed by the GNU Lesser General Public License v3.

package driver

import (
	"bytes"

	"github.com/Fantom-foundation/MockVM/go/managed"
	"github.com/Fantom-foundation/MockVM/go/mockvm"
	"github.com/Fantom-foundation/MockVM/go/txcache"
	"github.com/Fantom-foundation/MockVM/go/txcontext"
	"github.com/Fantom-foundation/MockVM/go/vmhooks"
	"github.com/Fantom-foundation/MockVM/go/world"
)

// transaction carries what all invocations of one top-level transaction
// share: the context stack, the hooks operating on it and the source of
// managed handles.
type transaction struct {
	processor *Processor
	input     *mockvm.TxInput
	stack     *txcontext.Stack
	hooks     *vmhooks.Hooks
	handles   *managed.HandleSource
}

var _ txcontext.Dispatcher = (*transaction)(nil)

func (p *Processor) newTransaction(input *mockvm.TxInput) *transaction {
	stack := txcontext.NewStack()
	return &transaction{
		processor: p,
		input:     input,
		stack:     stack,
		hooks:     vmhooks.New(stack, p.config.GasSchedule),
		handles:   managed.NewHandleSource(),
	}
}

// invoke runs one invocation on the given cache. Built-in functions move
// value themselves; for everything else the value is transferred before
// the code of the receiver runs.
func (t *transaction) invoke(cache *txcache.Cache, input *mockvm.TxInput) mockvm.TxResult {
	if t.processor.builtIns.IsBuiltIn(input.FuncName) {
		res := t.processor.builtIns.Execute(input, cache, func(in *mockvm.TxInput) mockvm.TxResult {
			return t.execute(cache, in)
		})
		t.processor.metrics.builtIn(input.FuncName, &res)
		return res
	}
	if err := cache.TransferEGLD(input.From, input.To, input.GetEGLDValue()); err != nil {
		return txcache.ToResult(err)
	}
	return t.execute(cache, input)
}

// execute runs the endpoint named by the input on the code of the
// receiver. Receivers without code and inputs without endpoint leave
// nothing to run.
func (t *transaction) execute(cache *txcache.Cache, input *mockvm.TxInput) mockvm.TxResult {
	account, found := cache.GetAccount(input.To)
	if input.FuncName == "" || !found || !account.IsContract() {
		return mockvm.TxResult{GasRefund: input.GasLimit}
	}
	if t.stack.Depth() >= t.processor.config.MaxCallDepth {
		return mockvm.NewErrorResult(mockvm.ExecutionFailed, ErrMaxCallDepth.Error())
	}

	ctx := txcontext.New(input, cache, t, t.handles)
	t.stack.Push(ctx)
	res := t.processor.adapter.Run(ctx, t.hooks, account.Code, input.FuncName)
	t.stack.Pop(ctx)

	t.processor.logger.Debug("contract executed",
		"endpoint", input.FuncName,
		"to", input.To,
		"depth", ctx.Depth(),
		"status", res.ResultStatus,
		"gas", res.GasUsed,
	)
	return res
}

// deploy creates a contract owned by the sender of the input at the
// address reserved for the sender and nonce, then runs its init endpoint.
func (t *transaction) deploy(cache *txcache.Cache, input *mockvm.TxInput, code, codeMetadata []byte, nonce uint64) mockvm.TxResult {
	if len(code) == 0 {
		return mockvm.NewErrorResult(mockvm.ContractInvalid, ErrEmptyCode.Error())
	}
	address := cache.ReserveNewAddress(input.From, nonce)
	owner := input.From
	account := world.NewAccount(address)
	account.Code = bytes.Clone(code)
	account.CodeMetadata = bytes.Clone(codeMetadata)
	account.ContractOwner = &owner
	if err := cache.InsertAccount(account); err != nil {
		return txcache.ToResult(err)
	}

	call := input.Clone()
	call.To = address
	call.FuncName = mockvm.InitFunctionName
	res := t.invoke(cache, call)
	if res.Succeeded() {
		res.NewDeployedAddress = &address
	}
	return res
}

// nested runs f on a cache layered on top of the given one. The layer is
// committed if f succeeds; otherwise the failure is charged to the caller
// according to the configured policy.
func (t *transaction) nested(parent *txcache.Cache, input *mockvm.TxInput, f func(*txcache.Cache) mockvm.TxResult) mockvm.TxResult {
	child := txcache.New(parent)
	res := f(child)
	if res.Succeeded() {
		if err := child.Commit(parent); err != nil {
			res = txcache.ToResult(err)
		} else {
			return res
		}
	}
	if t.processor.config.SyncCallFailure == SyncCallConsume {
		res.GasUsed = input.GasLimit
	}
	return res
}

func (t *transaction) ExecuteSyncCall(caller *txcontext.TxContext, input *mockvm.TxInput) mockvm.TxResult {
	return t.nested(caller.Cache(), input, func(cache *txcache.Cache) mockvm.TxResult {
		return t.invoke(cache, input)
	})
}

// DeployContract deploys a contract from within a contract. The address is
// derived from the nonce of the deploying contract, which is incremented.
func (t *transaction) DeployContract(caller *txcontext.TxContext, input *mockvm.TxInput, code, codeMetadata []byte) mockvm.TxResult {
	return t.nested(caller.Cache(), input, func(cache *txcache.Cache) mockvm.TxResult {
		creator, found := cache.GetAccount(input.From)
		if !found {
			return txcache.ToResult(txcache.UserError(txcache.MsgAccountNotFound))
		}
		if err := cache.IncreaseAccountNonce(input.From); err != nil {
			return txcache.ToResult(err)
		}
		return t.deploy(cache, input, code, codeMetadata, creator.Nonce)
	})
}

// UpgradeContract routes an upgrade requested by a contract through the
// upgrade built-in function, which checks the ownership.
func (t *transaction) UpgradeContract(caller *txcontext.TxContext, input *mockvm.TxInput, code, codeMetadata []byte) mockvm.TxResult {
	upgrade := input.Clone()
	upgrade.FuncName = mockvm.BuiltInUpgradeContract
	upgrade.Args = append([][]byte{code, codeMetadata}, upgrade.Args...)
	return t.ExecuteSyncCall(caller, upgrade)
}
