// Copyright (c) 2024 Fantom Foundation
//
// Use of this software is governed by the Business Source License included
// in the LICENSE file and at fantom.foundation/bsl11.
//
// Change Date: 2028-4-16
//
// On the date above, in accordance with the Business Source License, use of
// this software will be governed by the GNU Lesser General Public License v3.

// Package builtin implements the functions the protocol executes on behalf
// of transactions instead of contract code: token transfers, token
// management and account administration.
package builtin

import (
	"fmt"
	"sort"

	"github.com/Fantom-foundation/MockVM/go/mockvm"
	"github.com/Fantom-foundation/MockVM/go/txcache"
)

// DefaultGasCost is the gas charged for the execution of any built-in
// function, not including the gas of an onward contract call.
const DefaultGasCost = 100

// NFTCreatePolicy decides how ESDTNFTCreate treats a nonce that is already
// in use.
type NFTCreatePolicy string

const (
	// NFTCreateFail rejects the creation.
	NFTCreateFail NFTCreatePolicy = "fail"
	// NFTCreateMerge adds the quantity to the existing instance if the
	// metadata is compatible.
	NFTCreateMerge NFTCreatePolicy = "merge"
)

func (p NFTCreatePolicy) Validate() error {
	switch p {
	case NFTCreateFail, NFTCreateMerge:
		return nil
	}
	return fmt.Errorf("unknown NFT create policy %q", string(p))
}

type Options struct {
	GasCost         uint64
	NFTCreatePolicy NFTCreatePolicy
}

func DefaultOptions() Options {
	return Options{
		GasCost:         DefaultGasCost,
		NFTCreatePolicy: NFTCreateFail,
	}
}

// ContractCall runs the code of input.To on the state the built-in function
// operates on. Value and tokens named by the input are already transferred
// when it is called.
type ContractCall func(input *mockvm.TxInput) mockvm.TxResult

type function func(c *call) error

// Registry maps the names of built-in functions to their implementation.
type Registry struct {
	options   Options
	functions map[string]function
}

func NewRegistry(options Options) (*Registry, error) {
	if err := options.NFTCreatePolicy.Validate(); err != nil {
		return nil, err
	}
	return &Registry{
		options: options,
		functions: map[string]function{
			mockvm.BuiltInESDTTransfer:            esdtTransfer,
			mockvm.BuiltInESDTNFTTransfer:         esdtNFTTransfer,
			mockvm.BuiltInMultiESDTNFTTransfer:    multiESDTNFTTransfer,
			mockvm.BuiltInESDTNFTCreate:           esdtNFTCreate,
			mockvm.BuiltInESDTNFTAddQuantity:      esdtNFTAddQuantity,
			mockvm.BuiltInESDTNFTBurn:             esdtNFTBurn,
			mockvm.BuiltInESDTNFTAddURI:           esdtNFTAddURI,
			mockvm.BuiltInESDTNFTUpdateAttributes: esdtNFTUpdateAttributes,
			mockvm.BuiltInESDTLocalMint:           esdtLocalMint,
			mockvm.BuiltInESDTLocalBurn:           esdtLocalBurn,
			mockvm.BuiltInSetUserName:             setUserName,
			mockvm.BuiltInESDTSetRole:             esdtSetRole,
			mockvm.BuiltInESDTUnSetRole:           esdtUnSetRole,
			mockvm.BuiltInChangeOwnerAddress:      changeOwnerAddress,
			mockvm.BuiltInClaimDeveloperRewards:   claimDeveloperRewards,
			mockvm.BuiltInUpgradeContract:         upgradeContract,
		},
	}, nil
}

// IsBuiltIn reports whether the named function is executed by this
// registry.
func (r *Registry) IsBuiltIn(name string) bool {
	_, found := r.functions[name]
	return found
}

// Names lists all built-in functions in alphabetical order.
func (r *Registry) Names() []string {
	res := make([]string, 0, len(r.functions))
	for name := range r.functions {
		res = append(res, name)
	}
	sort.Strings(res)
	return res
}

// Execute runs the built-in function named by the input on the given cache.
// A failed function consumes all of its gas; the cache may then hold partial
// updates and has to be discarded by the caller. The logs produced before
// the failure are reported nevertheless.
func (r *Registry) Execute(input *mockvm.TxInput, cache *txcache.Cache, contract ContractCall) mockvm.TxResult {
	f, found := r.functions[input.FuncName]
	if !found {
		return mockvm.NewErrorResult(mockvm.FunctionNotFound, ErrUnknownFunction.Error())
	}
	if input.GasLimit < r.options.GasCost {
		res := mockvm.NewErrorResult(mockvm.OutOfGas, ErrNotEnoughGas.Error())
		res.GasUsed = input.GasLimit
		return res
	}
	c := &call{
		input:    input,
		cache:    cache,
		contract: contract,
		options:  &r.options,
		gasLeft:  input.GasLimit - r.options.GasCost,
	}
	c.result.GasUsed = r.options.GasCost
	if err := f(c); err != nil {
		res := txcache.ToResult(err)
		res.ResultLogs = c.result.ResultLogs
		res.GasUsed = input.GasLimit
		return res
	}
	c.result.GasRefund = input.GasLimit - c.result.GasUsed
	return c.result
}
