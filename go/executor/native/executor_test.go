// Copyright (c) 2024 Fantom Foundation
//
// Use of this software is governed by the Business Source License included
// in the LICENSE file and at fantom.foundation/bsl11.
//
// Change Date: 2028-4-16
//
// On the date above, in accordance with the Business Source License, use of
// this software will be governed by the GNU Lesser General Public License v3.

package native

import (
	"bytes"
	"errors"
	"slices"
	"testing"

	"github.com/Fantom-foundation/MockVM/go/executor"
	"github.com/Fantom-foundation/MockVM/go/mockvm"
	"github.com/Fantom-foundation/MockVM/go/txcache"
	"github.com/Fantom-foundation/MockVM/go/txcontext"
	"github.com/Fantom-foundation/MockVM/go/vmhooks"
	"github.com/Fantom-foundation/MockVM/go/world"
)

var counter = Contract{
	"increment": func(env *Env) {
		h := env.Hooks()
		key, keyLength := env.WriteString("counter")
		value := h.SmallIntStorageLoadUnsigned(key, keyLength)
		h.SmallIntStorageStoreUnsigned(key, keyLength, value+1)
		h.SmallIntFinishUnsigned(value + 1)
	},
	"echo": func(env *Env) {
		env.Finish(env.Argument(0))
	},
	"fail": func(env *Env) {
		env.SignalError("counter is broken")
	},
	"panic": func(env *Env) {
		panic("oops")
	},
	"roundtrip": func(env *Env) {
		env.Finish(env.Bytes(env.NewBuffer([]byte("data"))))
	},
}

type run struct {
	state *world.State
	exec  *Executor
}

func newRun(t *testing.T) *run {
	t.Helper()
	exec := New()
	if err := exec.Register("counter", counter); err != nil {
		t.Fatalf("failed to register contract: %v", err)
	}
	return &run{state: world.NewState(), exec: exec}
}

func (r *run) call(code string, function string, args ...[]byte) mockvm.TxResult {
	input := &mockvm.TxInput{
		To:       mockvm.NamedContractAddress("counter"),
		FuncName: function,
		Args:     args,
		GasLimit: 10_000,
	}
	cache := txcache.New(r.state)
	ctx := txcontext.New(input, cache, nil, nil)
	stack := txcontext.NewStack()
	stack.Push(ctx)
	defer stack.Pop(ctx)
	hooks := vmhooks.New(stack, vmhooks.DefaultGasSchedule())
	res := executor.NewAdapter(r.exec, executor.CompilationOptions{}, nil).Run(ctx, hooks, []byte(code), function)
	if res.Succeeded() {
		if err := cache.Commit(r.state); err != nil {
			panic(err)
		}
	}
	return res
}

func TestExecutor_EndpointsUseHooks(t *testing.T) {
	r := newRun(t)
	for i := byte(1); i <= 3; i++ {
		res := r.call("counter", "increment")
		if res.Failed() {
			t.Fatalf("unexpected failure: %v", res)
		}
		if want, got := [][]byte{{i}}, res.ResultValues; len(got) != 1 || !bytes.Equal(want[0], got[0]) {
			t.Errorf("unexpected result, wanted %x, got %x", want, got)
		}
	}
}

func TestExecutor_ArgumentsAndResults(t *testing.T) {
	r := newRun(t)
	res := r.call("counter", "echo", []byte("hello"))
	if len(res.ResultValues) != 1 || string(res.ResultValues[0]) != "hello" {
		t.Errorf("unexpected result: %v", res)
	}
	res = r.call("counter", "roundtrip")
	if len(res.ResultValues) != 1 || string(res.ResultValues[0]) != "data" {
		t.Errorf("unexpected result: %v", res)
	}
}

func TestExecutor_FailuresAreReported(t *testing.T) {
	tests := map[string]struct {
		code     string
		function string
		status   mockvm.ReturnCode
		message  string
	}{
		"signal error":     {"counter", "fail", mockvm.UserError, "counter is broken"},
		"panic":            {"counter", "panic", mockvm.UserError, "oops"},
		"missing argument": {"counter", "echo", mockvm.ExecutionFailed, vmhooks.ErrArgIndexOutOfRange.Error()},
		"unknown function": {"counter", "decrement", mockvm.FunctionNotFound, executor.ErrFunctionNotFound.Error()},
		"unknown code":     {"other", "increment", mockvm.ContractInvalid, executor.ErrInvalidContract.Error()},
	}
	for name, test := range tests {
		t.Run(name, func(t *testing.T) {
			res := newRun(t).call(test.code, test.function)
			if want, got := test.status, res.ResultStatus; want != got {
				t.Errorf("unexpected status, wanted %v, got %v", want, got)
			}
			if want, got := test.message, res.ResultMessage; want != got {
				t.Errorf("unexpected message, wanted %q, got %q", want, got)
			}
		})
	}
}

func TestExecutor_FailedCallsLeaveNoState(t *testing.T) {
	r := newRun(t)
	r.call("counter", "increment")
	before := r.state.Clone()
	r.call("counter", "fail")
	if diff := before.Diff(r.state); len(diff) != 0 {
		t.Errorf("unexpected state change: %v", diff)
	}
}

func TestExecutor_CodeCanOnlyBeRegisteredOnce(t *testing.T) {
	exec := New()
	if err := exec.Register("counter", counter); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := exec.Register("counter", counter); !errors.Is(err, ErrDuplicateCode) {
		t.Errorf("unexpected error: %v", err)
	}
}

func TestExecutor_IsRegistered(t *testing.T) {
	exec, err := executor.NewExecutor("native", map[string]Contract{"counter": counter})
	if err != nil {
		t.Fatalf("failed to create executor: %v", err)
	}
	instance, err := exec.NewInstance(nil, []byte("counter"), executor.CompilationOptions{})
	if err != nil {
		t.Fatalf("failed to create instance: %v", err)
	}
	want := []string{"echo", "fail", "increment", "panic", "roundtrip"}
	if got := instance.GetExportedFunctionNames(); !slices.Equal(want, got) {
		t.Errorf("unexpected functions, wanted %v, got %v", want, got)
	}
}

func TestInstance_MemoryGrowth(t *testing.T) {
	instance := &Instance{
		memory:  make([]byte, PageSize),
		options: executor.CompilationOptions{MaxMemoryGrow: 3, MaxMemoryGrowDelta: 2},
	}
	if err := instance.MemGrow(2); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if want, got := uint32(3*PageSize), instance.MemLength(); want != got {
		t.Errorf("unexpected memory size, wanted %d, got %d", want, got)
	}
	if err := instance.MemGrow(1); !errors.Is(err, executor.ErrMemoryLimit) {
		t.Errorf("unexpected error: %v", err)
	}
	if want, got := mockvm.BreakpointMemoryLimit, instance.GetBreakpointValue(); want != got {
		t.Errorf("unexpected breakpoint, wanted %v, got %v", want, got)
	}
	if _, err := instance.MemLoad(3*PageSize-1, 2); !errors.Is(err, vmhooks.ErrBadBounds) {
		t.Errorf("unexpected error: %v", err)
	}
}
