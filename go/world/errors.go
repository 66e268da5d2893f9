// Copyright (c) 2024 Fantom Foundation
//
// Use of this software is governed by the Business Source License included
// in the LICENSE file and at fantom.foundation/bsl11.
//
// Change Date: 2028-4-16
//
// On the date above, in accordance with the Business Source License, use of
// this software will be governed by the GNU Lesser General Public License v3.

package world

import (
	"fmt"
	"math/big"

	"github.com/Fantom-foundation/MockVM/go/mockvm"
)

const (
	ErrAccountNotFound      = mockvm.ConstError("account not found")
	ErrAccountExists        = mockvm.ConstError("account already exists")
	ErrCodeOnUserAddress    = mockvm.ConstError("contract code can only be set on contract addresses")
	ErrOwnerWithoutCode     = mockvm.ConstError("only contracts can have an owner")
	ErrNegativeBalance      = mockvm.ConstError("negative balance")
	ErrInsufficientFunds    = mockvm.ConstError("insufficient funds")
	ErrIncompatibleMetadata = mockvm.ConstError("token metadata mismatch")
	ErrNegativeAmount       = mockvm.ConstError("negative amount")
)

// InsufficientFundsError is produced by all subtractions that would make a
// balance negative. A nil token identifier denotes the native currency.
type InsufficientFundsError struct {
	Address         mockvm.Address
	TokenIdentifier []byte
	Nonce           uint64
	Have            *big.Int
	Want            *big.Int
}

func (e *InsufficientFundsError) Error() string {
	if e.TokenIdentifier == nil {
		return fmt.Sprintf("insufficient funds: %v has %v, needs %v", e.Address, e.Have, e.Want)
	}
	return fmt.Sprintf("insufficient funds: %v has %v of %s/%d, needs %v",
		e.Address, e.Have, e.TokenIdentifier, e.Nonce, e.Want)
}

func (e *InsufficientFundsError) Is(target error) bool {
	return target == ErrInsufficientFunds
}
