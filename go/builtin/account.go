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
	"bytes"
	"math/big"

	"github.com/Fantom-foundation/MockVM/go/mockvm"
	"github.com/Fantom-foundation/MockVM/go/world"
)

// ESDTSystemAddress is the only sender allowed to manage token roles.
var ESDTSystemAddress = mockvm.Address{
	9:  0x01,
	29: 0x02, 30: 0xff, 31: 0xff,
}

// setUserName assigns a user name to the receiver, once: SetUserName@name.
func setUserName(c *call) error {
	if err := c.requireArgs(1); err != nil {
		return err
	}
	if err := c.requireNoValue(); err != nil {
		return err
	}
	name := c.args()[0]
	if len(name) == 0 {
		return vmError(ErrInvalidArguments)
	}
	err := c.cache.WithAccountOrCreate(c.input.To, func(account *world.Account) error {
		if len(account.Username) > 0 {
			return userError(ErrUserNameAlreadySet)
		}
		account.Username = bytes.Clone(name)
		return nil
	})
	if err != nil {
		return err
	}
	c.log(c.input.To, name)
	return nil
}

func esdtSetRole(c *call) error {
	return c.setRoles(true)
}

func esdtUnSetRole(c *call) error {
	return c.setRoles(false)
}

// setRoles grants or revokes roles of the receiver for a token:
// ESDTSetRole@id@role[@role...].
func (c *call) setRoles(set bool) error {
	if err := c.requireArgs(2); err != nil {
		return err
	}
	if err := c.requireNoValue(); err != nil {
		return err
	}
	if c.input.From != ESDTSystemAddress {
		return userError(ErrActionNotAllowed)
	}
	args := c.args()
	tokenID := args[0]
	roles := args[1:]
	for _, role := range roles {
		if !world.IsKnownRole(string(role)) {
			return vmError(ErrInvalidRole)
		}
	}
	err := c.cache.WithAccountOrCreate(c.input.To, func(account *world.Account) error {
		for _, role := range roles {
			account.SetRole(tokenID, string(role), set)
		}
		return nil
	})
	if err != nil {
		return err
	}
	c.log(c.input.To, append([][]byte{tokenID, nil, nil}, roles...)...)
	return nil
}

// ownedContract returns the receiver if it is a contract owned by the
// sender.
func (c *call) ownedContract() (*world.Account, error) {
	account, found := c.cache.GetAccount(c.input.To)
	if !found || !account.IsContract() {
		return nil, userError(ErrNotAContract)
	}
	if account.ContractOwner == nil || *account.ContractOwner != c.input.From {
		return nil, userError(ErrActionNotAllowed)
	}
	return account, nil
}

// changeOwnerAddress hands a contract over to a new owner:
// ChangeOwnerAddress@owner.
func changeOwnerAddress(c *call) error {
	if err := c.requireArgs(1); err != nil {
		return err
	}
	if err := c.requireNoValue(); err != nil {
		return err
	}
	owner, err := addressArg(c.args()[0])
	if err != nil {
		return err
	}
	if _, err := c.ownedContract(); err != nil {
		return err
	}
	err = c.cache.WithAccountMut(c.input.To, func(account *world.Account) error {
		account.ContractOwner = &owner
		return nil
	})
	if err != nil {
		return err
	}
	c.log(c.input.To, owner[:])
	return nil
}

// claimDeveloperRewards pays the accumulated rewards of a contract to its
// owner and returns the paid amount.
func claimDeveloperRewards(c *call) error {
	if err := c.requireNoValue(); err != nil {
		return err
	}
	if _, err := c.ownedContract(); err != nil {
		return err
	}
	rewards := new(big.Int)
	err := c.cache.WithAccountMut(c.input.To, func(account *world.Account) error {
		if account.DeveloperRewards != nil {
			rewards.Set(account.DeveloperRewards)
		}
		account.DeveloperRewards = new(big.Int)
		return nil
	})
	if err != nil {
		return err
	}
	if err := c.cache.IncreaseEGLDBalance(c.input.From, rewards); err != nil {
		return err
	}
	encoded := mockvm.EncodeBigIntUnsigned(rewards)
	c.log(c.input.To, encoded, c.input.From[:])
	c.result.ResultValues = append(c.result.ResultValues, encoded)
	return nil
}

// upgradeContract replaces the code of a contract owned by the sender and
// runs its upgrade endpoint: upgradeContract@code@metadata[@args...]. The
// value of the transaction is handed to the contract.
func upgradeContract(c *call) error {
	if err := c.requireArgs(2); err != nil {
		return err
	}
	args := c.args()
	code, metadata := args[0], args[1]
	if len(code) == 0 {
		return userError(ErrNothingToUpgrade)
	}
	if _, err := c.ownedContract(); err != nil {
		return err
	}
	err := c.cache.WithAccountMut(c.input.To, func(account *world.Account) error {
		account.Code = bytes.Clone(code)
		account.CodeMetadata = bytes.Clone(metadata)
		return nil
	})
	if err != nil {
		return err
	}
	value := c.input.GetEGLDValue()
	if err := c.cache.TransferEGLD(c.input.From, c.input.To, value); err != nil {
		return err
	}
	c.log(c.input.To, c.input.To[:], c.input.From[:])
	if c.contract == nil {
		return nil
	}
	res := c.contract(&mockvm.TxInput{
		From:           c.input.From,
		To:             c.input.To,
		EGLDValue:      value,
		FuncName:       mockvm.UpgradeFunctionName,
		Args:           args[2:],
		GasLimit:       c.gasLeft,
		GasPrice:       c.input.GasPrice,
		TxHash:         c.input.TxHash,
		CallType:       c.input.CallType,
		OriginalTxHash: c.input.OriginalTxHash,
	})
	return c.settle(&res)
}
