// Copyright (c) 2024 Fantom Foundation
//
// Use of this software is governed by the Business Source License included
// in the LICENSE file and at fantom.foundation/bsl11.
//
// Change Date: 2028-4-16
//
// On the date above, in accordance with the Business Source License, use of
// this software will be governed by the GNU Lesser General Public License v3.

// Package native runs contracts written as Go functions. Such contracts
// see the VM exactly like WebAssembly contracts do: through the hooks and
// a private linear memory.
package native

import (
	"fmt"
	"slices"
	"sync"

	"github.com/Fantom-foundation/MockVM/go/executor"
	"github.com/Fantom-foundation/MockVM/go/mockvm"
	"github.com/Fantom-foundation/MockVM/go/vmhooks"
	"golang.org/x/exp/maps"
)

const (
	ErrUnknownContract = mockvm.ConstError("unknown native contract")
	ErrDuplicateCode   = mockvm.ConstError("code already bound to a contract")
)

// PageSize is the granularity of the linear memory.
const PageSize = 1 << 16

// Endpoint is an exported function of a native contract.
type Endpoint func(env *Env)

// Contract maps endpoint names to their implementation.
type Contract map[string]Endpoint

func init() {
	executor.MustRegisterExecutorFactory("native", func(config any) (executor.Executor, error) {
		res := New()
		if config == nil {
			return res, nil
		}
		contracts, ok := config.(map[string]Contract)
		if !ok {
			return nil, fmt.Errorf("invalid configuration type %T", config)
		}
		for code, contract := range contracts {
			if err := res.Register(code, contract); err != nil {
				return nil, err
			}
		}
		return res, nil
	})
}

// Executor runs native contracts identified by their code, which stands in
// for the binary of a contract.
type Executor struct {
	contracts map[string]Contract
	mutex     sync.RWMutex
}

var _ executor.Executor = (*Executor)(nil)

func New() *Executor {
	return &Executor{contracts: map[string]Contract{}}
}

// Register binds a contract to the given code.
func (e *Executor) Register(code string, contract Contract) error {
	e.mutex.Lock()
	defer e.mutex.Unlock()
	if _, found := e.contracts[code]; found {
		return fmt.Errorf("%w: %q", ErrDuplicateCode, code)
	}
	e.contracts[code] = contract
	return nil
}

func (e *Executor) NewInstance(hooks vmhooks.VMHooks, code []byte, options executor.CompilationOptions) (executor.Instance, error) {
	e.mutex.RLock()
	contract, found := e.contracts[string(code)]
	e.mutex.RUnlock()
	if !found {
		return nil, ErrUnknownContract
	}
	return &Instance{
		contract: contract,
		hooks:    hooks,
		options:  options,
		memory:   make([]byte, PageSize),
	}, nil
}

// Instance is a native contract bound to the hooks of one invocation.
type Instance struct {
	contract Contract
	hooks    vmhooks.VMHooks
	options  executor.CompilationOptions
	memory   []byte

	pointsLimit uint64
	pointsUsed  uint64
	breakpoint  mockvm.BreakpointValue
}

var _ executor.Instance = (*Instance)(nil)

func (i *Instance) Call(function string) (err error) {
	endpoint, found := i.contract[function]
	if !found {
		return &executor.ExecutorError{Op: "call " + function, Err: executor.ErrFunctionNotFound}
	}
	defer func() {
		if r := recover(); r != nil {
			if exit, ok := vmhooks.AsEarlyExit(r); ok {
				err = exit
				return
			}
			err = &executor.ContractPanic{Value: r}
		}
	}()
	endpoint(&Env{hooks: i.hooks, instance: i})
	return nil
}

func (i *Instance) HasFunction(function string) bool {
	_, found := i.contract[function]
	return found
}

func (i *Instance) GetExportedFunctionNames() []string {
	names := maps.Keys(i.contract)
	slices.Sort(names)
	return names
}

func (i *Instance) SetPointsLimit(limit uint64) {
	i.pointsLimit = limit
}

func (i *Instance) GetPointsLimit() uint64 {
	return i.pointsLimit
}

func (i *Instance) SetPointsUsed(points uint64) {
	i.pointsUsed = points
}

func (i *Instance) GetPointsUsed() uint64 {
	return i.pointsUsed
}

func (i *Instance) GetBreakpointValue() mockvm.BreakpointValue {
	return i.breakpoint
}

func (i *Instance) SetBreakpointValue(value mockvm.BreakpointValue) {
	i.breakpoint = value
}

func (i *Instance) Reset() bool {
	i.memory = make([]byte, PageSize)
	i.pointsUsed = 0
	i.breakpoint = mockvm.BreakpointNone
	return true
}

func (i *Instance) MemLoad(offset uint32, length uint32) ([]byte, error) {
	end := uint64(offset) + uint64(length)
	if end > uint64(len(i.memory)) {
		return nil, vmhooks.ErrBadBounds
	}
	return slices.Clone(i.memory[offset:end]), nil
}

func (i *Instance) MemStore(offset uint32, data []byte) error {
	if uint64(offset)+uint64(len(data)) > uint64(len(i.memory)) {
		return vmhooks.ErrBadBounds
	}
	copy(i.memory[offset:], data)
	return nil
}

func (i *Instance) MemLength() uint32 {
	return uint32(len(i.memory))
}

func (i *Instance) MemGrow(pages uint32) error {
	if delta := i.options.MaxMemoryGrowDelta; delta > 0 && uint64(pages) > delta {
		i.breakpoint = mockvm.BreakpointMemoryLimit
		return executor.ErrMemoryLimit
	}
	if limit := i.options.MaxMemoryGrow; limit > 0 && uint64(len(i.memory)/PageSize)+uint64(pages) > limit {
		i.breakpoint = mockvm.BreakpointMemoryLimit
		return executor.ErrMemoryLimit
	}
	i.memory = append(i.memory, make([]byte, int(pages)*PageSize)...)
	return nil
}

func (i *Instance) Clean() {
	i.memory = nil
}
