// Copyright (c) 2024 Fantom Foundation
//
// Use of this software is governed by the Business Source License included
// in the LICENSE file and at fantom.foundation/bsl11.
//
// Change Date: 2028-4-16
//
// On the date above, in accordance with the Business Source License, use of
// this software will be governed by the GNU Lesser General Public License v3.

// Package wazero runs WebAssembly contracts on the tetratelabs/wazero
// runtime. Contracts import the VM hooks from the "env" module.
package wazero

import (
	"context"
	"fmt"
	"slices"

	"github.com/Fantom-foundation/MockVM/go/executor"
	"github.com/Fantom-foundation/MockVM/go/mockvm"
	"github.com/Fantom-foundation/MockVM/go/vmhooks"
	"github.com/ethereum/go-ethereum/crypto"
	lru "github.com/hashicorp/golang-lru/v2"
	"github.com/tetratelabs/wazero"
	"github.com/tetratelabs/wazero/api"
	"golang.org/x/exp/maps"
)

const (
	ErrNoHooks  = mockvm.ConstError("no hooks attached to the call")
	ErrNoMemory = mockvm.ConstError("contract exports no memory")
)

// DefaultModuleCacheSize is the number of compiled modules retained when
// no size is configured.
const DefaultModuleCacheSize = 128

// Config is the configuration accepted by the "wazero" executor factory.
type Config struct {
	ModuleCacheSize int
	// MaxMemoryPages limits the memory of every instance, 0 for the runtime
	// default.
	MaxMemoryPages uint32
}

func init() {
	executor.MustRegisterExecutorFactory("wazero", func(config any) (executor.Executor, error) {
		if config == nil {
			return New(Config{})
		}
		c, ok := config.(Config)
		if !ok {
			return nil, fmt.Errorf("invalid configuration type %T", config)
		}
		return New(c)
	})
}

// Executor compiles and instantiates WebAssembly contracts. Compiled
// modules are cached by the hash of their code.
type Executor struct {
	runtime wazero.Runtime
	modules *lru.Cache[mockvm.Hash, wazero.CompiledModule]
}

var _ executor.Executor = (*Executor)(nil)

func New(config Config) (*Executor, error) {
	ctx := context.Background()
	runtimeConfig := wazero.NewRuntimeConfig()
	if config.MaxMemoryPages > 0 {
		runtimeConfig = runtimeConfig.WithMemoryLimitPages(config.MaxMemoryPages)
	}
	runtime := wazero.NewRuntimeWithConfig(ctx, runtimeConfig)

	env := runtime.NewHostModuleBuilder("env")
	exportHooks(env)
	if _, err := env.Instantiate(ctx); err != nil {
		runtime.Close(ctx)
		return nil, &executor.ExecutorError{Op: "instantiate env", Err: err}
	}

	size := config.ModuleCacheSize
	if size <= 0 {
		size = DefaultModuleCacheSize
	}
	modules, err := lru.NewWithEvict(size, func(_ mockvm.Hash, module wazero.CompiledModule) {
		module.Close(context.Background())
	})
	if err != nil {
		runtime.Close(ctx)
		return nil, err
	}
	return &Executor{
		runtime: runtime,
		modules: modules,
	}, nil
}

// Close releases the runtime and all modules compiled by it.
func (e *Executor) Close() error {
	e.modules.Purge()
	return e.runtime.Close(context.Background())
}

func (e *Executor) NewInstance(hooks vmhooks.VMHooks, code []byte, options executor.CompilationOptions) (executor.Instance, error) {
	compiled, err := e.compile(code)
	if err != nil {
		return nil, err
	}
	res := &Instance{
		runtime:  e.runtime,
		compiled: compiled,
		hooks:    hooks,
		options:  options,
	}
	if res.module, err = res.instantiate(); err != nil {
		return nil, err
	}
	return res, nil
}

func (e *Executor) compile(code []byte) (wazero.CompiledModule, error) {
	key := mockvm.Hash(crypto.Keccak256Hash(code))
	if module, found := e.modules.Get(key); found {
		return module, nil
	}
	module, err := e.runtime.CompileModule(context.Background(), code)
	if err != nil {
		return nil, err
	}
	e.modules.Add(key, module)
	return module, nil
}

// Instance is an instantiated contract module.
type Instance struct {
	runtime  wazero.Runtime
	compiled wazero.CompiledModule
	module   api.Module
	hooks    vmhooks.VMHooks
	options  executor.CompilationOptions

	pointsLimit uint64
	pointsUsed  uint64
	breakpoint  mockvm.BreakpointValue
}

var _ executor.Instance = (*Instance)(nil)

func (i *Instance) instantiate() (api.Module, error) {
	// Anonymous modules may be instantiated any number of times; no start
	// function is run.
	config := wazero.NewModuleConfig().WithName("").WithStartFunctions()
	return i.runtime.InstantiateModule(context.Background(), i.compiled, config)
}

func (i *Instance) Call(function string) error {
	fn := i.module.ExportedFunction(function)
	if fn == nil {
		return &executor.ExecutorError{Op: "call " + function, Err: executor.ErrFunctionNotFound}
	}
	definition := fn.Definition()
	if len(definition.ParamTypes()) != 0 || len(definition.ResultTypes()) != 0 {
		return &executor.ExecutorError{Op: "call " + function, Err: executor.ErrFunctionWrongSignature}
	}
	_, err := fn.Call(withHooks(context.Background(), i.hooks))
	return err
}

func (i *Instance) HasFunction(function string) bool {
	return i.module.ExportedFunction(function) != nil
}

func (i *Instance) GetExportedFunctionNames() []string {
	names := maps.Keys(i.compiled.ExportedFunctions())
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
	module, err := i.instantiate()
	if err != nil {
		return false
	}
	i.module.Close(context.Background())
	i.module = module
	i.pointsUsed = 0
	i.breakpoint = mockvm.BreakpointNone
	return true
}

func (i *Instance) memory() (api.Memory, error) {
	memory := i.module.Memory()
	if memory == nil {
		return nil, &executor.ExecutorError{Op: "memory", Err: ErrNoMemory}
	}
	return memory, nil
}

func (i *Instance) MemLoad(offset uint32, length uint32) ([]byte, error) {
	memory, err := i.memory()
	if err != nil {
		return nil, err
	}
	data, ok := memory.Read(offset, length)
	if !ok {
		return nil, vmhooks.ErrBadBounds
	}
	// Read returns a view on the memory.
	return slices.Clone(data), nil
}

func (i *Instance) MemStore(offset uint32, data []byte) error {
	memory, err := i.memory()
	if err != nil {
		return err
	}
	if !memory.Write(offset, data) {
		return vmhooks.ErrBadBounds
	}
	return nil
}

func (i *Instance) MemLength() uint32 {
	memory, err := i.memory()
	if err != nil {
		return 0
	}
	return memory.Size()
}

func (i *Instance) MemGrow(pages uint32) error {
	memory, err := i.memory()
	if err != nil {
		return err
	}
	if delta := i.options.MaxMemoryGrowDelta; delta > 0 && uint64(pages) > delta {
		i.breakpoint = mockvm.BreakpointMemoryLimit
		return executor.ErrMemoryLimit
	}
	if _, ok := memory.Grow(pages); !ok {
		i.breakpoint = mockvm.BreakpointMemoryLimit
		return executor.ErrMemoryLimit
	}
	return nil
}

func (i *Instance) Clean() {
	i.module.Close(context.Background())
}

type hooksKey struct{}

func withHooks(ctx context.Context, hooks vmhooks.VMHooks) context.Context {
	return context.WithValue(ctx, hooksKey{}, hooks)
}

// hooksOf returns the hooks of the call the given context belongs to.
func hooksOf(ctx context.Context) vmhooks.VMHooks {
	hooks, ok := ctx.Value(hooksKey{}).(vmhooks.VMHooks)
	if !ok {
		panic(ErrNoHooks)
	}
	return hooks
}
