// Copyright (c) 2024 Fantom Foundation
//
// Use of this software is governed by the Business Source License included
// in the LICENSE file and at fantom.foundation/bsl11.
//
// Change Date: 2028-4-16
//
// On the date above, in accordance with the Business Source License, use of
// this software will be governed by the GNU Lesser General Public License v3.

package builtin

import (
	"github.com/Fantom-foundation/MockVM/go/mockvm"
	"github.com/Fantom-foundation/MockVM/go/txcache"
)

const (
	ErrUnknownFunction     = mockvm.ConstError("invalid built-in function")
	ErrNotEnoughGas        = mockvm.ConstError("not enough gas")
	ErrInvalidArguments    = mockvm.ConstError("invalid arguments to process built-in function")
	ErrCallWithValue       = mockvm.ConstError("built in function called with tx value is not allowed")
	ErrNegativeValue       = mockvm.ConstError("negative value")
	ErrInvalidReceiver     = mockvm.ConstError("invalid receiver address")
	ErrActionNotAllowed    = mockvm.ConstError("action is not allowed")
	ErrInvalidRole         = mockvm.ConstError("invalid role")
	ErrInvalidRoyalties    = mockvm.ConstError("invalid royalties value")
	ErrNFTExists           = mockvm.ConstError("NFT already exists")
	ErrNFTNotFound         = mockvm.ConstError("new NFT data on sender")
	ErrUserNameAlreadySet  = mockvm.ConstError("user name already set")
	ErrNotAContract        = mockvm.ConstError("destination is not a smart contract")
	ErrNothingToUpgrade    = mockvm.ConstError("empty contract code")
	ErrFrozenToken         = mockvm.ConstError("ESDT is frozen")
	ErrInvalidTokenCount   = mockvm.ConstError("invalid number of token transfers")
	ErrInvalidNonce        = mockvm.ConstError("invalid nonce")
	ErrInvalidAmountFormat = mockvm.ConstError("invalid amount")
)

// userError marks a failure caused by the transaction rather than the VM.
func userError(err error) error {
	return txcache.UserError(err.Error())
}

func vmError(err error) error {
	return txcache.VMError(err.Error())
}
