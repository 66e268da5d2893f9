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
	"fmt"

	"github.com/Fantom-foundation/MockVM/go/mockvm"
	"github.com/Fantom-foundation/MockVM/go/vmhooks"
)

//go:generate mockgen -source executor.go -destination executor_mock.go -package executor

// Executor is a component capable of running contract code. Contracts reach
// the VM exclusively through the given hooks.
// To obtain an Executor, client code should use NewExecutor() provided by
// the registry file in this package.
type Executor interface {
	// NewInstance prepares the given code for execution. Errors are
	// reported for code the executor cannot load; the contract is then
	// considered invalid.
	NewInstance(hooks vmhooks.VMHooks, code []byte, options CompilationOptions) (Instance, error)
}

// CompilationOptions are the settings an instance is prepared with.
type CompilationOptions struct {
	GasLimit           uint64
	UnmeteredLocals    uint64
	MaxMemoryGrow      uint64
	MaxMemoryGrowDelta uint64
	OpcodeTrace        bool
	Metering           bool
	RuntimeBreakpoints bool
}

// Instance is a loaded contract. Instances are not thread-safe; they are
// used by a single invocation at a time.
type Instance interface {
	// Call runs the exported function of the given name. Early exits raised
	// by hooks are reported as *vmhooks.EarlyExit errors.
	Call(function string) error
	HasFunction(function string) bool
	GetExportedFunctionNames() []string

	SetPointsLimit(limit uint64)
	GetPointsLimit() uint64
	SetPointsUsed(points uint64)
	GetPointsUsed() uint64

	GetBreakpointValue() mockvm.BreakpointValue
	SetBreakpointValue(value mockvm.BreakpointValue)

	// Reset restores the instance to its freshly loaded state. The result
	// is false if the instance cannot be reset and must be recreated.
	Reset() bool

	MemLoad(offset uint32, length uint32) ([]byte, error)
	MemStore(offset uint32, data []byte) error
	MemLength() uint32
	MemGrow(pages uint32) error

	// Clean releases all resources held by the instance.
	Clean()
}

// ExecutorError is a failure of the executor itself, as opposed to a
// failure of the executed contract.
type ExecutorError struct {
	Op  string
	Err error
}

func (e *ExecutorError) Error() string {
	return fmt.Sprintf("executor: %s: %v", e.Op, e.Err)
}

func (e *ExecutorError) Unwrap() error {
	return e.Err
}

// ContractPanic is reported by executors running Go code when the contract
// panicked without going through a hook.
type ContractPanic struct {
	Value any
}

func (p *ContractPanic) Error() string {
	return fmt.Sprint(p.Value)
}

// IsWASM reports whether the code is a WebAssembly binary.
func IsWASM(code []byte) bool {
	return len(code) >= len(wasmMagic) && string(code[:len(wasmMagic)]) == wasmMagic
}

const wasmMagic = "\x00asm"
