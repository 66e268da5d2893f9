// Copyright (c) 2024 Fantom Foundation
//
// Use of this software is governed by the Business Source License included
// in the LICENSE file and at fantom.foundation/bsl11.
//
// Change Date: 2028-4-16
//
// On the date above, in accordance with the Business Source License, use of
// this software will be governed by the GNU Lesser General Public License v3.

// Package examples provides native contracts used by tests, benchmarks and
// the driver tool. Each contract is registered under the code it is
// deployed with.
package examples

import (
	"github.com/Fantom-foundation/MockVM/go/executor/native"
	"github.com/Fantom-foundation/MockVM/go/mockvm"
)

// Codes of the example contracts.
const (
	AdderCode     = "adder"
	ForwarderCode = "forwarder"
	ReceiverCode  = "receiver"
)

// SumKey is the storage key the adder keeps its sum under.
const SumKey = "sum"

// Gas handed to async calls registered by the forwarder and reserved for
// their callbacks.
const (
	AsyncCallGas     = 5_000
	AsyncCallbackGas = 2_000
)

// Contracts returns all example contracts keyed by code.
func Contracts() map[string]native.Contract {
	return map[string]native.Contract{
		AdderCode:     Adder(),
		ForwarderCode: Forwarder(),
		ReceiverCode:  Receiver(),
	}
}

// Adder keeps a sum in storage. Its constructor takes the initial value,
// "add" increments it and logs the increment, "getSum" returns it.
func Adder() native.Contract {
	store := func(env *native.Env, value int32) {
		key, keyLength := env.WriteString(SumKey)
		env.Hooks().BigIntStorageStoreUnsigned(key, keyLength, value)
	}
	load := func(env *native.Env) int32 {
		h := env.Hooks()
		sum := h.BigIntNew(0)
		key, keyLength := env.WriteString(SumKey)
		h.BigIntStorageLoadUnsigned(key, keyLength, sum)
		return sum
	}
	argument := func(env *native.Env) int32 {
		h := env.Hooks()
		if h.GetNumArguments() != 1 {
			env.SignalError("wrong number of arguments")
		}
		value := h.BigIntNew(0)
		h.BigIntGetUnsignedArgument(0, value)
		return value
	}
	return native.Contract{
		mockvm.InitFunctionName: func(env *native.Env) {
			store(env, argument(env))
		},
		mockvm.UpgradeFunctionName: func(env *native.Env) {},
		"add": func(env *native.Env) {
			h := env.Hooks()
			sum := load(env)
			h.BigIntAdd(sum, sum, argument(env))
			store(env, sum)
			h.ManagedWriteLog(env.NewBufferList([]byte("add")), env.NewBuffer(env.Argument(0)))
		},
		"getSum": func(env *native.Env) {
			env.Hooks().BigIntFinishUnsigned(load(env))
		},
	}
}

// Forwarder sends tokens to other contracts through async calls and
// records what its callbacks receive.
//
// Its "forward" endpoint takes a destination, a token identifier, an
// amount and the endpoint to call along with the transfer. It registers an
// async ESDTTransfer with "cb" as callback. "forwardLegacy" does the same
// through the legacy async call, which calls back into "callBack". Both
// callbacks log their arguments as topics.
//
// The "call" endpoint performs a synchronous call to the destination and
// endpoint given as first two arguments, passing on the rest, and returns
// the results of the callee. It logs before and after the call. "recurse"
// calls itself until its argument, decremented on every level, reaches
// zero.
func Forwarder() native.Contract {
	logArguments := func(env *native.Env) {
		h := env.Hooks()
		args := make([][]byte, 0, h.GetNumArguments())
		for i := int32(0); i < h.GetNumArguments(); i++ {
			args = append(args, env.Argument(i))
		}
		h.ManagedWriteLog(env.NewBufferList(args...), env.NewBuffer(nil))
	}
	return native.Contract{
		mockvm.InitFunctionName: func(env *native.Env) {},
		"forward": func(env *native.Env) {
			h := env.Hooks()
			destination := env.Argument(0)
			h.ManagedWriteLog(env.NewBufferList([]byte("forward"), destination), env.NewBuffer(nil))

			// ESDTTransfer [token, amount, endpoint]
			function := env.NewBuffer([]byte(mockvm.BuiltInESDTTransfer))
			args := env.NewBufferList(env.Argument(1), env.Argument(2), env.Argument(3))
			success, successLength := env.WriteString("cb")
			failure, failureLength := env.WriteString("cb")
			h.ManagedCreateAsyncCall(
				env.NewBuffer(destination), h.BigIntNew(0), function, args,
				success, successLength, failure, failureLength,
				AsyncCallGas, AsyncCallbackGas, env.NewBuffer([]byte("closure")),
			)
		},
		"forwardLegacy": func(env *native.Env) {
			h := env.Hooks()
			destination := env.Argument(0)
			h.ManagedWriteLog(env.NewBufferList([]byte("forward"), destination), env.NewBuffer(nil))
			function := env.NewBuffer([]byte(mockvm.BuiltInESDTTransfer))
			args := env.NewBufferList(env.Argument(1), env.Argument(2), env.Argument(3))
			h.ManagedAsyncCall(env.NewBuffer(destination), h.BigIntNew(0), function, args)
		},
		"cb":                              logArguments,
		mockvm.LegacyCallbackFunctionName: logArguments,
		"call": func(env *native.Env) {
			h := env.Hooks()
			n := h.GetNumArguments()
			if n < 2 {
				env.SignalError("wrong number of arguments")
			}
			rest := make([][]byte, 0, n-2)
			for i := int32(2); i < n; i++ {
				rest = append(rest, env.Argument(i))
			}
			h.ManagedWriteLog(env.NewBufferList([]byte("call"), env.Argument(1)), env.NewBuffer(nil))
			result := h.MBufferNew()
			status := h.ManagedExecuteOnDestContext(
				h.GetGasLeft(), env.NewBuffer(env.Argument(0)), h.BigIntNew(0),
				env.NewBuffer(env.Argument(1)), env.NewBufferList(rest...), result,
			)
			if status != 0 {
				env.SignalError("call failed")
			}
			h.ManagedWriteLog(env.NewBufferList([]byte("return")), env.NewBuffer(nil))
			for _, value := range env.BufferList(result) {
				env.Finish(value)
			}
		},
		"recurse": func(env *native.Env) {
			h := env.Hooks()
			depth := h.SmallIntGetUnsignedArgument(0)
			h.SmallIntFinishUnsigned(depth)
			if depth == 0 {
				return
			}
			self := h.MBufferNew()
			h.ManagedSCAddress(self)
			next := mockvm.EncodeUint64Minimal(uint64(depth - 1))
			result := h.MBufferNew()
			status := h.ManagedExecuteOnDestContext(
				h.GetGasLeft(), self, h.BigIntNew(0),
				env.NewBuffer([]byte("recurse")), env.NewBufferList(next), result,
			)
			if status != 0 {
				env.SignalError("nested call failed")
			}
		},
	}
}

// Receiver accepts transfers. Its "accept" endpoint logs the received
// payments and returns 0x01; "reject" always fails.
func Receiver() native.Contract {
	return native.Contract{
		mockvm.InitFunctionName: func(env *native.Env) {},
		"accept": func(env *native.Env) {
			h := env.Hooks()
			payments := h.MBufferNew()
			h.ManagedGetMultiESDTCallValue(payments)
			h.ManagedWriteLog(env.NewBufferList([]byte("accept")), payments)
			env.Finish([]byte{0x01})
		},
		"reject": func(env *native.Env) {
			env.SignalError("transfer rejected")
		},
	}
}
