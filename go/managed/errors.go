// Copyright (c) 2024 Fantom Foundation
//
// Use of this software is governed by the Business Source License included
// in the LICENSE file and at fantom.foundation/bsl11.
//
// Change Date: 2028-4-16
//
// On the date above, in accordance with the Business Source License, use of
// this software will be governed by the GNU Lesser General Public License v3.

package managed

import (
	"fmt"

	"github.com/Fantom-foundation/MockVM/go/mockvm"
)

const (
	ErrInvalidHandle = mockvm.ConstError("invalid handle")
	ErrInvalidSlice  = mockvm.ConstError("invalid slice")

	ErrDivisionByZero   = mockvm.ConstError("division by 0")
	ErrBitwiseNegative  = mockvm.ConstError("bitwise operations only allowed on positive integers")
	ErrShiftNegative    = mockvm.ConstError("bitwise shift operations only allowed on positive integers and by a positive amount")
	ErrNegativeExponent = mockvm.ConstError("negative exponent")
	ErrBadLowerBounds   = mockvm.ConstError("bad bounds (lower)")
	ErrNotInt64         = mockvm.ConstError("big int cannot be represented as int64")
	ErrBigIntTooLarge   = mockvm.ConstError("big int result exceeds size limit")
	ErrInfinity         = mockvm.ConstError("infinity operations are not allowed")
	ErrExponentRange    = mockvm.ConstError("exponent is either too small or too big")
	ErrWrongPrecision   = mockvm.ConstError("precision of the big float must be 53")
)

// Kind names one of the value tables of an arena.
type Kind int

const (
	KindBigInt Kind = iota
	KindBigFloat
	KindBuffer
	KindMap
)

// InvalidHandleError is reported when reading a handle that is not bound
// in the table of the requested kind. The messages are the ones a chain VM
// reports for the same situation.
type InvalidHandleError struct {
	Kind   Kind
	Handle Handle
}

func (e *InvalidHandleError) Error() string {
	switch e.Kind {
	case KindBigInt:
		return "no bigInt under the given handle"
	case KindBigFloat:
		return "no bigFloat under the given handle"
	case KindBuffer:
		return "no managed buffer under the given handle"
	case KindMap:
		return "no managed map under the given handle"
	}
	return fmt.Sprintf("invalid handle %d", e.Handle)
}

func (e *InvalidHandleError) Is(target error) bool {
	return target == ErrInvalidHandle
}
