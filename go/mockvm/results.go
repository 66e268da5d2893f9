// Copyright (c) 2024 Fantom Foundation
//
// Use of this software is governed by the Business Source License included
// in the LICENSE file and at fantom.foundation/bsl11.
//
// Change Date: 2028-4-16
//
// On the date above, in accordance with the Business Source License, use of
// this software will be governed by the GNU Lesser General Public License v3.

package mockvm

import (
	"bytes"
	"fmt"
	"math/big"
)

// Log is an event emitted by a contract or a built-in function.
type Log struct {
	Address  Address
	Endpoint string
	Topics   [][]byte
	Data     []byte
}

func (l Log) Equal(other Log) bool {
	if l.Address != other.Address || l.Endpoint != other.Endpoint {
		return false
	}
	if !bytes.Equal(l.Data, other.Data) || len(l.Topics) != len(other.Topics) {
		return false
	}
	for i := range l.Topics {
		if !bytes.Equal(l.Topics[i], other.Topics[i]) {
			return false
		}
	}
	return true
}

func (l Log) String() string {
	return fmt.Sprintf("%v %s topics=%x data=%x", l.Address, l.Endpoint, l.Topics, l.Data)
}

// AsyncCall is a deferred call registered by a contract during its
// execution. It is executed by the driver once the registering invocation
// has finished, followed by the registered callback.
type AsyncCall struct {
	From      Address
	To        Address
	CallValue *big.Int
	Endpoint  string
	Args      [][]byte
	TxHash    Hash
	GasLimit  uint64

	// Legacy calls always call back into "callBack". Promises name their
	// own success and error callbacks; empty names disable the callback.
	Legacy              bool
	SuccessCallback     string
	ErrorCallback       string
	CallbackClosure     []byte
	ExtraGasForCallback uint64
}

// LegacyCallbackFunctionName is the callback invoked for async calls
// registered through the legacy asyncCall hook.
const LegacyCallbackFunctionName = "callBack"

// CallbackName returns the callback to run for an async call that finished
// with the given status.
func (c *AsyncCall) CallbackName(status ReturnCode) string {
	if c.Legacy {
		return LegacyCallbackFunctionName
	}
	if status == Ok {
		return c.SuccessCallback
	}
	return c.ErrorCallback
}

// TxResult is the outcome of one (sub)invocation.
type TxResult struct {
	ResultStatus  ReturnCode
	ResultMessage string
	ResultValues  [][]byte
	ResultLogs    []Log
	GasUsed       uint64
	GasRefund     uint64
	PendingCalls  []AsyncCall

	NewDeployedAddress *Address
}

// NewErrorResult creates a failed result with the given status and message.
func NewErrorResult(status ReturnCode, message string) TxResult {
	return TxResult{
		ResultStatus:  status,
		ResultMessage: message,
	}
}

func (r *TxResult) Succeeded() bool {
	return r.ResultStatus == Ok
}

func (r *TxResult) Failed() bool {
	return r.ResultStatus != Ok
}

// MergeAfterSyncCall integrates the result of a successful synchronous call
// into this result. The callee's logs become part of this result at the
// current position; its return values are not appended since the caller
// receives them through a managed buffer. Pending async calls registered by
// the callee are carried over.
func (r *TxResult) MergeAfterSyncCall(child *TxResult) {
	r.ResultLogs = append(r.ResultLogs, child.ResultLogs...)
	r.PendingCalls = append(r.PendingCalls, child.PendingCalls...)
}

// MergeAsyncStep appends the result of an executed async call or callback.
// A failed callback overrides the status and message of this result.
func (r *TxResult) MergeAsyncStep(step *TxResult, isCallback bool) {
	r.ResultLogs = append(r.ResultLogs, step.ResultLogs...)
	if !isCallback {
		return
	}
	r.ResultValues = append(r.ResultValues, step.ResultValues...)
	if step.Failed() {
		r.ResultStatus = step.ResultStatus
		r.ResultMessage = step.ResultMessage
	}
}

func (r TxResult) String() string {
	return fmt.Sprintf("status=%v message=%q values=%x logs=%d gas=%d",
		r.ResultStatus, r.ResultMessage, r.ResultValues, len(r.ResultLogs), r.GasUsed)
}

// BlockInfo describes a block as seen by the contracts.
type BlockInfo struct {
	Timestamp  uint64
	Nonce      uint64
	Round      uint64
	Epoch      uint64
	RandomSeed [48]byte
}

// BlockchainInfo is the view of the chain a contract gets: the block it is
// executed in and the one before.
type BlockchainInfo struct {
	Previous BlockInfo
	Current  BlockInfo
}
