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

import "fmt"

// ReturnCode is the status of a finished invocation. The numeric values are
// part of the protocol and must not change.
type ReturnCode uint64

const (
	Ok                     ReturnCode = 0
	UserError              ReturnCode = 1
	ExecutionFailed        ReturnCode = 4
	OutOfGas               ReturnCode = 5
	FunctionNotFound       ReturnCode = 10
	FunctionWrongSignature ReturnCode = 11
	ContractInvalid        ReturnCode = 14
	VMQueryError           ReturnCode = 16
)

func (c ReturnCode) String() string {
	switch c {
	case Ok:
		return "ok"
	case UserError:
		return "user error"
	case ExecutionFailed:
		return "execution failed"
	case OutOfGas:
		return "out of gas"
	case FunctionNotFound:
		return "function not found"
	case FunctionWrongSignature:
		return "function wrong signature"
	case ContractInvalid:
		return "contract invalid"
	case VMQueryError:
		return "vm query error"
	default:
		return fmt.Sprintf("unknown(%d)", uint64(c))
	}
}

// Bytes encodes the code as a single status byte, the form in which it is
// passed to callbacks.
func (c ReturnCode) Bytes() []byte {
	if c == Ok {
		return []byte{0}
	}
	return EncodeUint64Minimal(uint64(c))
}

// BreakpointValue is the reason a contract execution was interrupted by the
// host. It is stored on the executor instance while unwinding.
type BreakpointValue uint64

const (
	BreakpointNone BreakpointValue = iota
	BreakpointExecutionFailed
	BreakpointSignalError
	BreakpointOutOfGas
	BreakpointMemoryLimit
	BreakpointAsyncCall
)

func (b BreakpointValue) String() string {
	switch b {
	case BreakpointNone:
		return "none"
	case BreakpointExecutionFailed:
		return "execution failed"
	case BreakpointSignalError:
		return "signal error"
	case BreakpointOutOfGas:
		return "out of gas"
	case BreakpointMemoryLimit:
		return "memory limit"
	case BreakpointAsyncCall:
		return "async call"
	default:
		return fmt.Sprintf("unknown(%d)", uint64(b))
	}
}
