// Copyright (c) 2024 Fantom Foundation
//
// Use of this software is governed by the Business Source License included
// in the LICENSE file and at fantom.foundation/bsl11.
//
// Change Date: 2028-4-16
//
// On the date above, in accordance with the Business Source License, use of
// this software will be governed by the GNU Lesser General Public License v3.

package vmhooks

import (
	"errors"
	"fmt"

	"github.com/Fantom-foundation/MockVM/go/managed"
	"github.com/Fantom-foundation/MockVM/go/mockvm"
	"github.com/Fantom-foundation/MockVM/go/txcache"
	"github.com/Fantom-foundation/MockVM/go/txcontext"
)

// Error messages reported to contracts. Contracts and tooling match on
// these texts, so they must not change.
const (
	ErrBadBounds                 = mockvm.ConstError("bad bounds")
	ErrInvalidSignature          = mockvm.ConstError("invalid signature")
	ErrActionNotAllowed          = mockvm.ConstError("action is not allowed")
	ErrNonPayable                = mockvm.ConstError("function does not accept EGLD payment")
	ErrNonPayableESDT            = mockvm.ConstError("function does not accept ESDT payment")
	ErrTooFewArguments           = mockvm.ConstError("too few arguments")
	ErrArgumentOutOfRange        = mockvm.ConstError("argument out of range")
	ErrArgIndexOutOfRange        = mockvm.ConstError("argument index out of range")
	ErrInvalidTokenIndex         = mockvm.ConstError("invalid token index")
	ErrMaxCallDepth              = mockvm.ConstError("max call depth reached")
	ErrStoreReservedKey          = mockvm.ConstError("cannot write to storage under reserved key")
	ErrNotEnoughGas              = mockvm.ConstError("not enough gas")
	ErrInvalidAddress            = mockvm.ConstError("invalid address")
	ErrBLSNotSupported           = mockvm.ConstError("BLS signature verification is not supported")
	ErrNoInstance                = mockvm.ConstError("no executing contract instance")
	ErrLegacyAsyncCallRegistered = mockvm.ConstError("only one legacy async call allowed")
	ErrNoCallbackClosure         = mockvm.ConstError("no callback closure outside of a callback")
	ErrMissingCode               = mockvm.ConstError("missing code at source address")
	ErrNegativeLength            = mockvm.ConstError("negative length")
)

// EarlyExit is the signal a hook raises to stop the executing instance.
// The failure has already been recorded on the context when it is raised;
// executors recover it at the instance boundary.
type EarlyExit struct {
	Breakpoint mockvm.BreakpointValue
	Status     mockvm.ReturnCode
	Message    string
}

func (e *EarlyExit) Error() string {
	return fmt.Sprintf("early exit (%v): %s", e.Breakpoint, e.Message)
}

// AsEarlyExit extracts an early exit from a recovered panic value or an
// error returned by an executor.
func AsEarlyExit(value any) (*EarlyExit, bool) {
	switch v := value.(type) {
	case *EarlyExit:
		return v, true
	case error:
		var exit *EarlyExit
		if errors.As(v, &exit) {
			return exit, true
		}
	}
	return nil, false
}

// exit records the failure on the context, sets the breakpoint of the
// bound instance and unwinds.
func exit(ctx *txcontext.TxContext, breakpoint mockvm.BreakpointValue, status mockvm.ReturnCode, message string) {
	if status != mockvm.Ok {
		ctx.Fail(status, message)
	}
	if instance := ctx.Instance(); instance != nil {
		instance.SetBreakpointValue(breakpoint)
	}
	panic(&EarlyExit{Breakpoint: breakpoint, Status: status, Message: message})
}

// signalError aborts with a contract-level failure.
func signalError(ctx *txcontext.TxContext, message string) {
	exit(ctx, mockvm.BreakpointSignalError, mockvm.UserError, message)
}

// failExecution aborts because of an error in a hook. Cache failures keep
// their own status; everything else fails the execution.
func failExecution(ctx *txcontext.TxContext, err error) {
	var txPanic *txcache.TxPanic
	switch {
	case errors.Is(err, ErrNotEnoughGas), errors.Is(err, txcontext.ErrNotEnoughGas):
		exit(ctx, mockvm.BreakpointOutOfGas, mockvm.OutOfGas, ErrNotEnoughGas.Error())
	case errors.As(err, &txPanic):
		if txPanic.Status == mockvm.UserError {
			exit(ctx, mockvm.BreakpointSignalError, txPanic.Status, txPanic.Message)
		}
		exit(ctx, mockvm.BreakpointExecutionFailed, txPanic.Status, txPanic.Message)
	case errors.Is(err, managed.ErrInvalidHandle), errors.Is(err, managed.ErrInvalidSlice):
		exit(ctx, mockvm.BreakpointExecutionFailed, mockvm.ExecutionFailed, err.Error())
	default:
		exit(ctx, mockvm.BreakpointExecutionFailed, mockvm.ExecutionFailed, txcache.AsTxPanic(err).Message)
	}
}
