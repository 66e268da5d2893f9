// Copyright (c) 2024 Fantom Foundation
//
// Use of this software is governed by the Business Source License included
// in the LICENSE file and at fantom.foundation/bsl11.
//
// Change Date: 2028-4-16
//
// On the date above, in accordance with the Business Source License, use of
// this software will be governed by the GNU Lesser General Public License v3.

// Package mockvm contains the public types shared by all components of the
// mock WASM virtual machine: addresses, transaction inputs and results, logs,
// status codes and the big integer codecs used at the contract boundary.
package mockvm

import (
	"encoding/hex"
	"fmt"
	"math/big"
	"strings"
)

// AddressLength is the length of all account addresses in bytes.
const AddressLength = 32

// NumInitZeroBytesForSCAddress is the number of leading zero bytes marking
// an address as a smart contract address.
const NumInitZeroBytesForSCAddress = 10

type Address [AddressLength]byte

type Hash [32]byte

// IsSmartContract reports whether the address has the shape of a contract
// address.
func (a Address) IsSmartContract() bool {
	for _, b := range a[:NumInitZeroBytesForSCAddress] {
		if b != 0 {
			return false
		}
	}
	return true
}

func (a Address) IsZero() bool {
	return a == Address{}
}

func (a Address) String() string {
	return fmt.Sprintf("0x%x", a[:])
}

func (a Address) MarshalText() ([]byte, error) {
	return bytesToText(a[:])
}

func (a *Address) UnmarshalText(data []byte) error {
	return textToBytes(a[:], data)
}

// AddressFromBytes converts a byte string into an address. It fails if the
// input does not have exactly AddressLength bytes.
func AddressFromBytes(data []byte) (Address, error) {
	var res Address
	if len(data) != AddressLength {
		return res, fmt.Errorf("invalid address length: %d", len(data))
	}
	copy(res[:], data)
	return res, nil
}

// NamedAddress builds a deterministic user address from a readable name by
// padding it with underscores. Names longer than an address are truncated.
// Mostly used by tests and tooling.
func NamedAddress(name string) Address {
	var res Address
	for i := range res {
		res[i] = '_'
	}
	copy(res[:], name)
	return res
}

// NamedContractAddress is like NamedAddress but produces an address in the
// contract address range.
func NamedContractAddress(name string) Address {
	res := NamedAddress("")
	for i := 0; i < NumInitZeroBytesForSCAddress; i++ {
		res[i] = 0
	}
	copy(res[NumInitZeroBytesForSCAddress:], name)
	return res
}

func (h Hash) String() string {
	return fmt.Sprintf("0x%x", h[:])
}

func (h Hash) MarshalText() ([]byte, error) {
	return bytesToText(h[:])
}

func (h *Hash) UnmarshalText(data []byte) error {
	return textToBytes(h[:], data)
}

// TokenTransfer describes a single token payment attached to a transaction.
// A nonce of zero denotes a fungible token.
type TokenTransfer struct {
	TokenIdentifier []byte
	Nonce           uint64
	Value           *big.Int
}

func (t TokenTransfer) String() string {
	return fmt.Sprintf("%s/%d:%v", t.TokenIdentifier, t.Nonce, t.Value)
}

// CallType distinguishes the ways a contract endpoint can be entered.
type CallType int

const (
	DirectCall CallType = iota
	AsyncCallType
	AsyncCallback
	ESDTTransferAndExecute
	UpgradeFromSource
)

func (c CallType) String() string {
	switch c {
	case DirectCall:
		return "direct"
	case AsyncCallType:
		return "async"
	case AsyncCallback:
		return "callback"
	case ESDTTransferAndExecute:
		return "transfer_execute"
	case UpgradeFromSource:
		return "upgrade"
	default:
		return "unknown"
	}
}

// TxInput is the immutable input of one (sub)invocation.
type TxInput struct {
	From       Address
	To         Address
	EGLDValue  *big.Int
	ESDTValues []TokenTransfer
	FuncName   string
	Args       [][]byte
	GasLimit   uint64
	GasPrice   uint64
	TxHash     Hash

	CallType               CallType
	OriginalTxHash         Hash
	PromiseCallbackClosure []byte
}

// GetEGLDValue returns the native value of the input, never nil.
func (i *TxInput) GetEGLDValue() *big.Int {
	if i.EGLDValue == nil {
		return new(big.Int)
	}
	return i.EGLDValue
}

// Clone creates a deep copy of the input.
func (i *TxInput) Clone() *TxInput {
	res := *i
	res.EGLDValue = new(big.Int).Set(i.GetEGLDValue())
	res.ESDTValues = make([]TokenTransfer, len(i.ESDTValues))
	for j, t := range i.ESDTValues {
		res.ESDTValues[j] = TokenTransfer{
			TokenIdentifier: cloneBytes(t.TokenIdentifier),
			Nonce:           t.Nonce,
			Value:           new(big.Int).Set(t.Value),
		}
	}
	res.Args = CloneArgs(i.Args)
	res.PromiseCallbackClosure = cloneBytes(i.PromiseCallbackClosure)
	return &res
}

func (i *TxInput) String() string {
	args := make([]string, 0, len(i.Args))
	for _, arg := range i.Args {
		args = append(args, hex.EncodeToString(arg))
	}
	return fmt.Sprintf("%v -> %v: %s(%s) value=%v esdt=%v gas=%d",
		i.From, i.To, i.FuncName, strings.Join(args, ","), i.GetEGLDValue(), i.ESDTValues, i.GasLimit)
}

// CloneArgs creates a deep copy of an argument list.
func CloneArgs(args [][]byte) [][]byte {
	if args == nil {
		return nil
	}
	res := make([][]byte, len(args))
	for i, arg := range args {
		res[i] = cloneBytes(arg)
	}
	return res
}

func cloneBytes(data []byte) []byte {
	if data == nil {
		return nil
	}
	return append([]byte{}, data...)
}

func bytesToText(data []byte) ([]byte, error) {
	return []byte(fmt.Sprintf("0x%x", data)), nil
}

func textToBytes(trg []byte, data []byte) error {
	s := string(data)
	if !strings.HasPrefix(s, "0x") {
		return fmt.Errorf("invalid format, does not start with 0x: %v", s)
	}
	data, err := hex.DecodeString(s[2:])
	if err != nil {
		return err
	}
	if want, got := len(trg), len(data); want != got {
		return fmt.Errorf("invalid format, wanted %d bytes, got %d", want, got)
	}
	copy(trg[:], data)
	return nil
}
