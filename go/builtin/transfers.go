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
)

// esdtTransfer moves fungible tokens from the sender to the receiver of the
// transaction: ESDTTransfer@id@amount[@function@args...].
func esdtTransfer(c *call) error {
	if err := c.requireArgs(2); err != nil {
		return err
	}
	if err := c.requireNoValue(); err != nil {
		return err
	}
	args := c.args()
	tokenID := args[0]
	amount, err := amountArg(args[1])
	if err != nil {
		return err
	}
	if err := c.transfer(c.input.From, c.input.To, tokenID, 0, amount); err != nil {
		return err
	}
	c.log(c.input.From, tokenID, mockvm.EncodeUint64Minimal(0), mockvm.EncodeBigIntUnsigned(amount), c.input.To[:])
	payments := []mockvm.TokenTransfer{{TokenIdentifier: tokenID, Value: amount}}
	return c.execute(c.input.To, payments, args[2:])
}

// esdtNFTTransfer moves a single token instance; it is sent by the owner of
// the tokens to itself: ESDTNFTTransfer@id@nonce@amount@dest[@function@args...].
func esdtNFTTransfer(c *call) error {
	if err := c.requireArgs(4); err != nil {
		return err
	}
	if err := c.requireNoValue(); err != nil {
		return err
	}
	if err := c.requireSelf(); err != nil {
		return err
	}
	args := c.args()
	tokenID := args[0]
	nonce, err := nonceArg(args[1])
	if err != nil {
		return err
	}
	amount, err := amountArg(args[2])
	if err != nil {
		return err
	}
	dest, err := addressArg(args[3])
	if err != nil {
		return err
	}
	if err := c.transfer(c.input.From, dest, tokenID, nonce, amount); err != nil {
		return err
	}
	c.log(c.input.From, tokenID, mockvm.EncodeUint64Minimal(nonce), mockvm.EncodeBigIntUnsigned(amount), dest[:])
	payments := []mockvm.TokenTransfer{{TokenIdentifier: tokenID, Nonce: nonce, Value: amount}}
	return c.execute(dest, payments, args[4:])
}

// multiESDTNFTTransfer moves several token instances at once:
// MultiESDTNFTTransfer@dest@n@(id@nonce@amount)*n[@function@args...].
func multiESDTNFTTransfer(c *call) error {
	if err := c.requireArgs(2); err != nil {
		return err
	}
	if err := c.requireNoValue(); err != nil {
		return err
	}
	if err := c.requireSelf(); err != nil {
		return err
	}
	args := c.args()
	dest, err := addressArg(args[0])
	if err != nil {
		return err
	}
	count, ok := mockvm.DecodeUint64(args[1])
	if !ok || count == 0 || count > uint64(len(args)) {
		return vmError(ErrInvalidTokenCount)
	}
	end := 2 + 3*int(count)
	if err := c.requireArgs(end); err != nil {
		return err
	}

	payments := make([]mockvm.TokenTransfer, 0, count)
	topics := make([][]byte, 0, 3*count+1)
	for i := 2; i < end; i += 3 {
		tokenID := args[i]
		nonce, err := nonceArg(args[i+1])
		if err != nil {
			return err
		}
		amount, err := amountArg(args[i+2])
		if err != nil {
			return err
		}
		if err := c.transfer(c.input.From, dest, tokenID, nonce, amount); err != nil {
			return err
		}
		payments = append(payments, mockvm.TokenTransfer{TokenIdentifier: tokenID, Nonce: nonce, Value: amount})
		topics = append(topics, tokenID, mockvm.EncodeUint64Minimal(nonce), mockvm.EncodeBigIntUnsigned(amount))
	}
	c.log(c.input.From, append(topics, dest[:])...)
	return c.execute(dest, payments, args[end:])
}
