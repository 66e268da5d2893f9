// Copyright (c) 2024 Fantom Foundation
//
// Use of this software is governed by the Business Source License included
// in the LICENSE file and at fantom.foundation/bsl11.
//
// Change Date: 2028-4-16
//
// On the date above, in accordance with the Business Source License, use of
// this software will be governed by the GNU Lesser General Public License v3.

package main

import (
	"encoding/hex"
	"fmt"
	"math/big"
	"os"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/Fantom-foundation/MockVM/go/mockvm"
	"github.com/Fantom-foundation/MockVM/go/world"
)

// Plan is a world state and a sequence of transactions to run on it, as
// read from a TOML file.
//
// Addresses are given as 0x-prefixed hex strings of 32 bytes, as plain
// names for user accounts or as names prefixed by "sc:" for contracts.
// Arguments are hex strings. Code is the name of a native contract or the
// path of a WebAssembly file ending in ".wasm".
type Plan struct {
	Accounts     []PlanAccount     `toml:"accounts"`
	Transactions []PlanTransaction `toml:"transactions"`
}

type PlanAccount struct {
	Address string            `toml:"address"`
	Balance string            `toml:"balance"`
	Nonce   uint64            `toml:"nonce"`
	Code    string            `toml:"code"`
	Owner   string            `toml:"owner"`
	Storage map[string]string `toml:"storage"`
	Tokens  []PlanToken       `toml:"tokens"`
}

type PlanToken struct {
	ID     string   `toml:"id"`
	Nonce  uint64   `toml:"nonce"`
	Amount string   `toml:"amount"`
	Roles  []string `toml:"roles"`
}

type PlanTransaction struct {
	From     string   `toml:"from"`
	To       string   `toml:"to"`
	Value    string   `toml:"value"`
	Function string   `toml:"function"`
	Args     []string `toml:"args"`
	GasLimit uint64   `toml:"gas_limit"`
	GasPrice uint64   `toml:"gas_price"`
	// Deploy, if set, names the code of a contract to be deployed by the
	// transaction; To is ignored then.
	Deploy string `toml:"deploy"`
	Query  bool   `toml:"query"`
}

func LoadPlan(path string) (*Plan, error) {
	var plan Plan
	meta, err := toml.DecodeFile(path, &plan)
	if err != nil {
		return nil, err
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		return nil, fmt.Errorf("unknown keys in plan: %v", undecoded)
	}
	return &plan, nil
}

// State builds the world state described by the plan.
func (p *Plan) State() (*world.State, error) {
	state := world.NewState()
	for i, a := range p.Accounts {
		account, err := a.build()
		if err != nil {
			return nil, fmt.Errorf("account %d: %w", i, err)
		}
		if err := state.AddAccount(account); err != nil {
			return nil, fmt.Errorf("account %d: %w", i, err)
		}
	}
	return state, nil
}

func (a *PlanAccount) build() (*world.Account, error) {
	address, err := parseAddress(a.Address)
	if err != nil {
		return nil, err
	}
	res := world.NewAccount(address)
	res.Nonce = a.Nonce
	if res.Balance, err = parseAmount(a.Balance); err != nil {
		return nil, err
	}
	if a.Code != "" {
		if res.Code, err = loadCode(a.Code); err != nil {
			return nil, err
		}
	}
	if a.Owner != "" {
		owner, err := parseAddress(a.Owner)
		if err != nil {
			return nil, err
		}
		res.ContractOwner = &owner
	}
	for key, value := range a.Storage {
		data, err := parseBytes(value)
		if err != nil {
			return nil, fmt.Errorf("storage %q: %w", key, err)
		}
		res.SetStorage([]byte(key), data)
	}
	for _, token := range a.Tokens {
		amount, err := parseAmount(token.Amount)
		if err != nil {
			return nil, fmt.Errorf("token %s: %w", token.ID, err)
		}
		var metadata *world.TokenMetadata
		if token.Nonce != 0 {
			metadata = &world.TokenMetadata{Creator: address, Type: world.SemiFungible}
		}
		if err := res.IncreaseESDTBalance([]byte(token.ID), token.Nonce, amount, metadata); err != nil {
			return nil, fmt.Errorf("token %s: %w", token.ID, err)
		}
		for _, role := range token.Roles {
			if !world.IsKnownRole(role) {
				return nil, fmt.Errorf("token %s: unknown role %q", token.ID, role)
			}
			res.SetRole([]byte(token.ID), role, true)
		}
	}
	return res, nil
}

// Input converts the transaction into the input of the processor; its
// hash is derived from its position in the plan.
func (t *PlanTransaction) Input(position int) (*mockvm.TxInput, error) {
	from, err := parseAddress(t.From)
	if err != nil {
		return nil, fmt.Errorf("sender: %w", err)
	}
	var to mockvm.Address
	if t.Deploy == "" {
		if to, err = parseAddress(t.To); err != nil {
			return nil, fmt.Errorf("receiver: %w", err)
		}
	}
	value, err := parseAmount(t.Value)
	if err != nil {
		return nil, fmt.Errorf("value: %w", err)
	}
	args := make([][]byte, 0, len(t.Args))
	for _, arg := range t.Args {
		data, err := parseBytes(arg)
		if err != nil {
			return nil, fmt.Errorf("argument %q: %w", arg, err)
		}
		args = append(args, data)
	}
	var hash mockvm.Hash
	hash[0] = byte(position >> 8)
	hash[1] = byte(position)
	return &mockvm.TxInput{
		From:      from,
		To:        to,
		EGLDValue: value,
		FuncName:  t.Function,
		Args:      args,
		GasLimit:  t.GasLimit,
		GasPrice:  t.GasPrice,
		TxHash:    hash,
	}, nil
}

func parseAddress(text string) (mockvm.Address, error) {
	switch {
	case strings.HasPrefix(text, "0x"):
		data, err := hex.DecodeString(text[2:])
		if err != nil {
			return mockvm.Address{}, err
		}
		return mockvm.AddressFromBytes(data)
	case strings.HasPrefix(text, "sc:"):
		return mockvm.NamedContractAddress(text[3:]), nil
	case text == "":
		return mockvm.Address{}, fmt.Errorf("missing address")
	default:
		return mockvm.NamedAddress(text), nil
	}
}

func parseAmount(text string) (*big.Int, error) {
	if text == "" {
		return new(big.Int), nil
	}
	res, ok := new(big.Int).SetString(text, 0)
	if !ok || res.Sign() < 0 {
		return nil, fmt.Errorf("invalid amount %q", text)
	}
	return res, nil
}

func parseBytes(text string) ([]byte, error) {
	return hex.DecodeString(strings.TrimPrefix(text, "0x"))
}

func loadCode(code string) ([]byte, error) {
	if strings.HasSuffix(code, ".wasm") {
		return os.ReadFile(code)
	}
	return []byte(code), nil
}
