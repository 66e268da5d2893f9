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
	"github.com/Fantom-foundation/MockVM/go/txcache"
)

// call is the state of a single built-in function execution.
type call struct {
	input    *mockvm.TxInput
	cache    *txcache.Cache
	contract ContractCall
	options  *Options
	gasLeft  uint64
	result   mockvm.TxResult
}

func (c *call) args() [][]byte {
	return c.input.Args
}

func (c *call) requireArgs(n int) error {
	if len(c.input.Args) < n {
		return vmError(ErrInvalidArguments)
	}
	return nil
}

func (c *call) requireNoValue() error {
	if c.input.GetEGLDValue().Sign() != 0 {
		return userError(ErrCallWithValue)
	}
	return nil
}

// requireSelf checks that the function was sent by an account to itself,
// as required for functions acting on the tokens of the sender.
func (c *call) requireSelf() error {
	if c.input.From != c.input.To {
		return userError(ErrInvalidReceiver)
	}
	return nil
}

func (c *call) requireRole(address mockvm.Address, tokenID []byte, role string) error {
	account, found := c.cache.GetAccount(address)
	if !found || !account.HasRole(tokenID, role) {
		return userError(ErrActionNotAllowed)
	}
	return nil
}

// log records the single event of this function.
func (c *call) log(address mockvm.Address, topics ...[]byte) {
	c.result.ResultLogs = append(c.result.ResultLogs, mockvm.Log{
		Address:  address,
		Endpoint: c.input.FuncName,
		Topics:   topics,
	})
}

func nonceArg(data []byte) (uint64, error) {
	nonce, ok := mockvm.DecodeUint64(data)
	if !ok {
		return 0, vmError(ErrInvalidNonce)
	}
	return nonce, nil
}

// amountArg decodes a strictly positive token amount.
func amountArg(data []byte) (*big.Int, error) {
	amount := mockvm.DecodeBigIntUnsigned(data)
	if amount.Sign() <= 0 {
		return nil, userError(ErrNegativeValue)
	}
	return amount, nil
}

func addressArg(data []byte) (mockvm.Address, error) {
	address, err := mockvm.AddressFromBytes(data)
	if err != nil {
		return mockvm.Address{}, vmError(ErrInvalidArguments)
	}
	return address, nil
}

func (c *call) isFrozen(address mockvm.Address, tokenID []byte) bool {
	account, found := c.cache.GetAccount(address)
	if !found {
		return false
	}
	data, found := account.ESDT[string(tokenID)]
	return found && data.Frozen
}

// transfer moves tokens between two accounts; frozen tokens can neither be
// sent nor received.
func (c *call) transfer(from, to mockvm.Address, tokenID []byte, nonce uint64, amount *big.Int) error {
	if c.isFrozen(from, tokenID) || c.isFrozen(to, tokenID) {
		return userError(ErrFrozenToken)
	}
	return c.cache.TransferESDT(from, to, tokenID, nonce, amount)
}

// execute runs the endpoint named by args[0] on the receiver of a transfer
// with the remaining arguments. Transfers without endpoint or to user
// accounts end here. A failing endpoint fails the whole function.
func (c *call) execute(to mockvm.Address, payments []mockvm.TokenTransfer, args [][]byte) error {
	if len(args) == 0 || c.contract == nil {
		return nil
	}
	account, found := c.cache.GetAccount(to)
	if !found || !account.IsContract() {
		return nil
	}
	callType := mockvm.ESDTTransferAndExecute
	if c.input.CallType != mockvm.DirectCall {
		callType = c.input.CallType
	}
	res := c.contract(&mockvm.TxInput{
		From:                   c.input.From,
		To:                     to,
		EGLDValue:              new(big.Int),
		ESDTValues:             payments,
		FuncName:               string(args[0]),
		Args:                   args[1:],
		GasLimit:               c.gasLeft,
		GasPrice:               c.input.GasPrice,
		TxHash:                 c.input.TxHash,
		CallType:               callType,
		OriginalTxHash:         c.input.OriginalTxHash,
		PromiseCallbackClosure: c.input.PromiseCallbackClosure,
	})
	return c.settle(&res)
}

// settle accounts for the gas and outcome of an onward contract call.
func (c *call) settle(res *mockvm.TxResult) error {
	c.gasLeft -= min(res.GasUsed, c.gasLeft)
	c.result.GasUsed += res.GasUsed
	c.result.MergeAfterSyncCall(res)
	if res.Failed() {
		return &txcache.TxPanic{Status: res.ResultStatus, Message: res.ResultMessage}
	}
	c.result.ResultValues = append(c.result.ResultValues, res.ResultValues...)
	return nil
}
