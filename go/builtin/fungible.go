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
	"math/big"

	"github.com/Fantom-foundation/MockVM/go/mockvm"
	"github.com/Fantom-foundation/MockVM/go/world"
)

// esdtLocalMint creates fungible tokens on the sender: ESDTLocalMint@id@amount.
func esdtLocalMint(c *call) error {
	tokenID, amount, err := c.localArgs(world.RoleLocalMint)
	if err != nil {
		return err
	}
	if err := c.cache.IncreaseESDTBalance(c.input.From, tokenID, 0, amount, nil); err != nil {
		return err
	}
	c.log(c.input.From, tokenID, mockvm.EncodeUint64Minimal(0), mockvm.EncodeBigIntUnsigned(amount))
	return nil
}

// esdtLocalBurn destroys fungible tokens of the sender: ESDTLocalBurn@id@amount.
func esdtLocalBurn(c *call) error {
	tokenID, amount, err := c.localArgs(world.RoleLocalBurn)
	if err != nil {
		return err
	}
	if _, err := c.cache.SubtractESDTBalance(c.input.From, tokenID, 0, amount); err != nil {
		return err
	}
	c.log(c.input.From, tokenID, mockvm.EncodeUint64Minimal(0), mockvm.EncodeBigIntUnsigned(amount))
	return nil
}

func (c *call) localArgs(role string) ([]byte, *big.Int, error) {
	if err := c.requireArgs(2); err != nil {
		return nil, nil, err
	}
	if err := c.requireNoValue(); err != nil {
		return nil, nil, err
	}
	if err := c.requireSelf(); err != nil {
		return nil, nil, err
	}
	args := c.args()
	if err := c.requireRole(c.input.From, args[0], role); err != nil {
		return nil, nil, err
	}
	amount, err := amountArg(args[1])
	if err != nil {
		return nil, nil, err
	}
	return args[0], amount, nil
}
