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
	"github.com/Fantom-foundation/MockVM/go/mockvm"
	"github.com/Fantom-foundation/MockVM/go/txcache"
)

// runAsync executes the async calls registered by a successful invocation
// in registration order. Each call is followed by its callback before the
// next call starts; calls registered by async calls and callbacks are
// queued behind the pending ones. A failing callback fails the result.
// The unused part of the gas handed to async calls is given back.
func (t *transaction) runAsync(cache *txcache.Cache, res mockvm.TxResult) mockvm.TxResult {
	queue := res.PendingCalls
	res.PendingCalls = nil
	for len(queue) > 0 && res.Succeeded() {
		call := queue[0]
		queue = queue[1:]
		budget := call.GasLimit + call.ExtraGasForCallback

		step := t.step(cache, &mockvm.TxInput{
			From:           call.From,
			To:             call.To,
			EGLDValue:      call.CallValue,
			FuncName:       call.Endpoint,
			Args:           call.Args,
			GasLimit:       call.GasLimit,
			GasPrice:       t.input.GasPrice,
			TxHash:         call.TxHash,
			CallType:       mockvm.AsyncCallType,
			OriginalTxHash: t.input.TxHash,
		})
		// logs of a reverted call are dropped along with its changes
		if step.Succeeded() {
			res.MergeAsyncStep(&step, false)
			queue = append(queue, step.PendingCalls...)
		}
		spent := min(step.GasUsed, call.GasLimit)

		if name := call.CallbackName(step.ResultStatus); name != "" {
			args := [][]byte{step.ResultStatus.Bytes()}
			if step.Succeeded() {
				args = append(args, step.ResultValues...)
			} else {
				args = append(args, []byte(step.ResultMessage))
			}
			callback := t.step(cache, &mockvm.TxInput{
				From:                   call.To,
				To:                     call.From,
				FuncName:               name,
				Args:                   args,
				GasLimit:               budget - spent,
				GasPrice:               t.input.GasPrice,
				TxHash:                 call.TxHash,
				CallType:               mockvm.AsyncCallback,
				OriginalTxHash:         t.input.TxHash,
				PromiseCallbackClosure: call.CallbackClosure,
			})
			// contracts using the legacy API need not implement callBack
			if call.Legacy && callback.ResultStatus == mockvm.FunctionNotFound {
				callback = mockvm.TxResult{}
			}
			res.MergeAsyncStep(&callback, true)
			if callback.Succeeded() {
				queue = append(queue, callback.PendingCalls...)
			}
			spent += min(callback.GasUsed, budget-spent)
		}

		if spent < budget {
			res.GasUsed -= min(budget-spent, res.GasUsed)
		}
	}
	return res
}

// step runs an async call or callback on its own layer of the cache.
func (t *transaction) step(cache *txcache.Cache, input *mockvm.TxInput) mockvm.TxResult {
	res := t.nested(cache, input, func(child *txcache.Cache) mockvm.TxResult {
		return t.invoke(child, input)
	})
	t.processor.metrics.asyncStep(input.CallType.String(), &res)
	return res
}
