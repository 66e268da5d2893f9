// Copyright (c) 2024 Fantom Foundation
//
// Use of this software is governed by the Business Source License included
// in the LICENSE file and at fantom.foundation/bsl11.
//
// Change Date: 2028-4-16
//
// On the date above, in accordance with the Business Source License, use of
// this software will be governed by the GNU Lesser General Public License v3.

package executor

import (
	"errors"
	"log/slog"

	"github.com/Fantom-foundation/MockVM/go/mockvm"
	"github.com/Fantom-foundation/MockVM/go/txcontext"
	"github.com/Fantom-foundation/MockVM/go/vmhooks"
)

const (
	ErrInvalidContract  = mockvm.ConstError("invalid contract code")
	ErrFunctionNotFound = mockvm.ConstError("invalid function (not found)")
	ErrExecutionFailed  = mockvm.ConstError("execution failed")
	ErrNoExecutor       = mockvm.ConstError("no executor for code")

	ErrFunctionWrongSignature = mockvm.ConstError("function has wrong signature")
	ErrMemoryLimit            = mockvm.ConstError("memory limit reached")
)

// Adapter runs contract code on an executor in the scope of a transaction
// context. It is the only place where executor outcomes are turned into
// result status codes.
type Adapter struct {
	executor Executor
	options  CompilationOptions
	logger   *slog.Logger
}

func NewAdapter(executor Executor, options CompilationOptions, logger *slog.Logger) *Adapter {
	if logger == nil {
		logger = slog.Default()
	}
	return &Adapter{
		executor: executor,
		options:  options,
		logger:   logger,
	}
}

// Run executes the given function of the code. The context must be the one
// on top of the context stack the hooks operate on. Logs collected before a
// failure are retained on the result.
func (a *Adapter) Run(ctx *txcontext.TxContext, hooks vmhooks.VMHooks, code []byte, function string) mockvm.TxResult {
	options := a.options
	options.GasLimit = ctx.GasLeft()
	instance, err := a.executor.NewInstance(hooks, code, options)
	if err != nil {
		a.logger.Debug("contract rejected", "to", ctx.Input().To, "err", err)
		ctx.Fail(mockvm.ContractInvalid, ErrInvalidContract.Error())
		return ctx.HarvestResult()
	}
	defer instance.Clean()

	if !instance.HasFunction(function) {
		ctx.Fail(mockvm.FunctionNotFound, ErrFunctionNotFound.Error())
		return ctx.HarvestResult()
	}

	instance.SetPointsLimit(ctx.GasLimit())
	instance.SetBreakpointValue(mockvm.BreakpointNone)
	ctx.BindInstance(instance)
	err = call(instance, function)
	ctx.UnbindInstance()
	if err != nil {
		a.fail(ctx, instance.GetBreakpointValue(), err)
	}
	return ctx.HarvestResult()
}

// call runs the function, turning panics escaping the executor into errors.
func call(instance Instance, function string) (err error) {
	defer func() {
		if r := recover(); r != nil {
			if exit, ok := vmhooks.AsEarlyExit(r); ok {
				err = exit
				return
			}
			err = &ContractPanic{Value: r}
		}
	}()
	return instance.Call(function)
}

func (a *Adapter) fail(ctx *txcontext.TxContext, breakpoint mockvm.BreakpointValue, err error) {
	var contractPanic *ContractPanic
	var executorError *ExecutorError
	if exit, ok := vmhooks.AsEarlyExit(err); ok {
		if exit.Status == mockvm.Ok {
			return
		}
		// Hooks record their failure before unwinding.
		if ctx.Result().Succeeded() {
			ctx.Fail(statusOf(breakpoint), exit.Message)
		}
		return
	}
	switch {
	case errors.Is(err, ErrFunctionWrongSignature):
		ctx.Fail(mockvm.FunctionWrongSignature, ErrFunctionWrongSignature.Error())
	case errors.As(err, &contractPanic):
		ctx.Fail(mockvm.UserError, contractPanic.Error())
	case errors.As(err, &executorError):
		a.logger.Warn("executor failure", "to", ctx.Input().To, "endpoint", ctx.Input().FuncName, "err", err)
		ctx.Fail(mockvm.ExecutionFailed, ErrExecutionFailed.Error())
	default:
		a.logger.Debug("contract trapped", "to", ctx.Input().To, "endpoint", ctx.Input().FuncName, "err", err)
		ctx.Fail(statusOf(breakpoint), ErrExecutionFailed.Error())
	}
}

func statusOf(breakpoint mockvm.BreakpointValue) mockvm.ReturnCode {
	switch breakpoint {
	case mockvm.BreakpointSignalError:
		return mockvm.UserError
	case mockvm.BreakpointOutOfGas:
		return mockvm.OutOfGas
	default:
		return mockvm.ExecutionFailed
	}
}

// Dispatcher is an Executor choosing between a WebAssembly executor and an
// executor for native Go contracts based on the code.
type Dispatcher struct {
	wasm   Executor
	native Executor
}

var _ Executor = (*Dispatcher)(nil)

func NewDispatcher(wasm, native Executor) *Dispatcher {
	return &Dispatcher{wasm: wasm, native: native}
}

func (d *Dispatcher) NewInstance(hooks vmhooks.VMHooks, code []byte, options CompilationOptions) (Instance, error) {
	executor := d.native
	if IsWASM(code) {
		executor = d.wasm
	}
	if executor == nil {
		return nil, &ExecutorError{Op: "dispatch", Err: ErrNoExecutor}
	}
	return executor.NewInstance(hooks, code, options)
}
