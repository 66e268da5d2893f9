// Copyright (c) 2024 Fantom Foundation
//
// Use of this software is governed by the Business Source License included
// in the LICENSE file and at fantom.foundation/bsl11.
//
// Change Date: 2028-4-16
//
// On the date above, in accordance with the Business Source License, use of
// this software will be governed by the GNU Lesser General Public License v3.

package txcache

import (
	"errors"
	"fmt"

	"github.com/Fantom-foundation/MockVM/go/mockvm"
	"github.com/Fantom-foundation/MockVM/go/world"
)

// Messages of failures produced by cache operations.
const (
	MsgInsufficientFunds = "insufficient funds"
	MsgFailedTransfer    = "failed transfer (insufficient funds)"
	MsgAccountNotFound   = "account not found"
)

// TxPanic is a failure of a cache operation. It carries the status and
// message the failing invocation reports.
type TxPanic struct {
	Status  mockvm.ReturnCode
	Message string
}

func (p *TxPanic) Error() string {
	return fmt.Sprintf("%v: %s", p.Status, p.Message)
}

func UserError(message string) *TxPanic {
	return &TxPanic{Status: mockvm.UserError, Message: message}
}

func VMError(message string) *TxPanic {
	return &TxPanic{Status: mockvm.ExecutionFailed, Message: message}
}

// AsTxPanic converts any error into a TxPanic. Insufficient funds become
// failed transfers, everything else an execution failure with the error
// text as message.
func AsTxPanic(err error) *TxPanic {
	if err == nil {
		return nil
	}
	var txPanic *TxPanic
	if errors.As(err, &txPanic) {
		return txPanic
	}
	if errors.Is(err, world.ErrInsufficientFunds) {
		return VMError(MsgFailedTransfer)
	}
	return VMError(err.Error())
}

// ToResult creates the failed result matching a cache failure.
func ToResult(err error) mockvm.TxResult {
	txPanic := AsTxPanic(err)
	return mockvm.NewErrorResult(txPanic.Status, txPanic.Message)
}
