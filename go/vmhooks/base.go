// Copyright (c) 2024 Fantom Foundation
//
// Use of this software is governed by the Business Source License included
// in the LICENSE file and at fantom.foundation/bsl11.
//
// Change Date: 2028-4-16
//
// On the date above, in accordance with the Business Source License, use of
// this software will be governed by the GNU Lesser General Public License v3.

package vmhooks

import (
	"encoding/binary"
	"math/big"

	"github.com/Fantom-foundation/MockVM/go/managed"
	"github.com/Fantom-foundation/MockVM/go/mockvm"
	"github.com/Fantom-foundation/MockVM/go/txcontext"
)

func (h *Hooks) GetNumArguments() int32 {
	ctx := h.use(h.gas.BaseOp)
	return int32(len(ctx.Input().Args))
}

func (h *Hooks) GetArgumentLength(id int32) int32 {
	ctx := h.use(h.gas.BaseOp)
	return int32(len(argument(ctx, id)))
}

func (h *Hooks) GetArgument(id int32, argOffset int32) int32 {
	ctx := h.use(h.gas.BaseOp)
	arg := argument(ctx, id)
	h.store(ctx, argOffset, arg)
	return int32(len(arg))
}

func (h *Hooks) GetFunction(functionOffset int32) int32 {
	ctx := h.use(h.gas.BaseOp)
	name := []byte(ctx.Input().FuncName)
	h.store(ctx, functionOffset, name)
	return int32(len(name))
}

func (h *Hooks) Finish(pointer int32, length int32) {
	ctx := h.use(h.gas.BaseOp)
	ctx.Finish(h.load(ctx, pointer, length))
}

func (h *Hooks) SignalError(messageOffset int32, messageLength int32) {
	ctx := h.use(h.gas.BaseOp)
	signalError(ctx, string(h.load(ctx, messageOffset, messageLength)))
}

func (h *Hooks) StorageStore(keyOffset int32, keyLength int32, dataOffset int32, dataLength int32) int32 {
	ctx := h.use(h.gas.BaseOp)
	key := h.load(ctx, keyOffset, keyLength)
	return h.storageStore(ctx, key, h.load(ctx, dataOffset, dataLength))
}

func (h *Hooks) StorageLoadLength(keyOffset int32, keyLength int32) int32 {
	ctx := h.use(h.gas.StorageLoad)
	key := h.load(ctx, keyOffset, keyLength)
	return int32(len(storageLoad(ctx, ctx.Input().To, key)))
}

func (h *Hooks) StorageLoad(keyOffset int32, keyLength int32, dataOffset int32) int32 {
	ctx := h.use(h.gas.StorageLoad)
	key := h.load(ctx, keyOffset, keyLength)
	data := storageLoad(ctx, ctx.Input().To, key)
	h.store(ctx, dataOffset, data)
	return int32(len(data))
}

func (h *Hooks) StorageLoadFromAddress(addressOffset int32, keyOffset int32, keyLength int32, dataOffset int32) int32 {
	ctx := h.use(h.gas.StorageLoad)
	address := h.loadAddress(ctx, addressOffset)
	key := h.load(ctx, keyOffset, keyLength)
	data := storageLoad(ctx, address, key)
	h.store(ctx, dataOffset, data)
	return int32(len(data))
}

func (h *Hooks) GetCaller(resultOffset int32) {
	ctx := h.use(h.gas.BaseOp)
	h.store(ctx, resultOffset, ctx.Input().From[:])
}

func (h *Hooks) GetSCAddress(resultOffset int32) {
	ctx := h.use(h.gas.BaseOp)
	h.store(ctx, resultOffset, ctx.Input().To[:])
}

func (h *Hooks) GetOwnerAddress(resultOffset int32) {
	ctx := h.use(h.gas.BaseOp)
	owner := ownerOf(ctx, ctx.Input().To)
	h.store(ctx, resultOffset, owner[:])
}

func (h *Hooks) GetCallValue(resultOffset int32) int32 {
	ctx := h.use(h.gas.BaseOp)
	value := mockvm.EncodeBigIntUnsigned(ctx.Input().GetEGLDValue())
	h.store(ctx, resultOffset, value)
	return int32(len(value))
}

func (h *Hooks) GetGasLeft() int64 {
	ctx := h.use(h.gas.BaseOp)
	return int64(ctx.GasLeft())
}

func (h *Hooks) GetBlockTimestamp() int64 {
	return int64(h.use(h.gas.BaseOp).BlockchainInfo().Current.Timestamp)
}

func (h *Hooks) GetBlockNonce() int64 {
	return int64(h.use(h.gas.BaseOp).BlockchainInfo().Current.Nonce)
}

func (h *Hooks) GetBlockRound() int64 {
	return int64(h.use(h.gas.BaseOp).BlockchainInfo().Current.Round)
}

func (h *Hooks) GetBlockEpoch() int64 {
	return int64(h.use(h.gas.BaseOp).BlockchainInfo().Current.Epoch)
}

func (h *Hooks) GetBlockRandomSeed(pointer int32) {
	ctx := h.use(h.gas.BaseOp)
	seed := ctx.BlockchainInfo().Current.RandomSeed
	h.store(ctx, pointer, seed[:])
}

func (h *Hooks) GetPrevBlockTimestamp() int64 {
	return int64(h.use(h.gas.BaseOp).BlockchainInfo().Previous.Timestamp)
}

func (h *Hooks) GetPrevBlockNonce() int64 {
	return int64(h.use(h.gas.BaseOp).BlockchainInfo().Previous.Nonce)
}

func (h *Hooks) GetPrevBlockRound() int64 {
	return int64(h.use(h.gas.BaseOp).BlockchainInfo().Previous.Round)
}

func (h *Hooks) GetPrevBlockEpoch() int64 {
	return int64(h.use(h.gas.BaseOp).BlockchainInfo().Previous.Epoch)
}

func (h *Hooks) GetPrevBlockRandomSeed(pointer int32) {
	ctx := h.use(h.gas.BaseOp)
	seed := ctx.BlockchainInfo().Previous.RandomSeed
	h.store(ctx, pointer, seed[:])
}

func (h *Hooks) GetOriginalTxHash(dataOffset int32) {
	ctx := h.use(h.gas.BaseOp)
	hash := originalTxHash(ctx)
	h.store(ctx, dataOffset, hash[:])
}

func (h *Hooks) GetNumESDTTransfers() int32 {
	ctx := h.use(h.gas.BaseOp)
	return int32(len(ctx.Input().ESDTValues))
}

// CheckNoPayment aborts if the invocation received any payment.
func (h *Hooks) CheckNoPayment() {
	ctx := h.use(h.gas.BaseOp)
	if ctx.Input().GetEGLDValue().Sign() > 0 {
		failExecution(ctx, ErrNonPayable)
	}
	if len(ctx.Input().ESDTValues) > 0 {
		failExecution(ctx, ErrNonPayableESDT)
	}
}

func (h *Hooks) IsSmartContract(addressOffset int32) int32 {
	ctx := h.use(h.gas.BaseOp)
	address := h.loadAddress(ctx, addressOffset)
	account, found := ctx.Cache().GetAccount(address)
	return boolToInt32(found && account.IsContract())
}

// WriteEventLog emits a log whose topics are laid out consecutively in
// memory; their lengths are given as little-endian 32 bit integers.
func (h *Hooks) WriteEventLog(numTopics int32, topicLengthsOffset int32, topicOffset int32, dataOffset int32, dataLength int32) {
	ctx := h.use(h.gas.BaseOp)
	if numTopics < 0 {
		failExecution(ctx, ErrNegativeLength)
	}
	lengths := h.load(ctx, topicLengthsOffset, numTopics*4)
	topics := make([][]byte, 0, numTopics)
	offset := topicOffset
	for i := int32(0); i < numTopics; i++ {
		length := int32(binary.LittleEndian.Uint32(lengths[i*4:]))
		topics = append(topics, h.load(ctx, offset, length))
		offset += length
	}
	h.writeLog(ctx, topics, h.load(ctx, dataOffset, dataLength))
}

func (h *Hooks) ValidateTokenIdentifier(tokenIDHandle int32) int32 {
	ctx := h.use(h.gas.BaseOp)
	return boolToInt32(ValidateToken(buffer(ctx, tokenIDHandle)))
}

// GetESDTLocalRoles returns the roles of the executing contract for a
// token as bit flags.
func (h *Hooks) GetESDTLocalRoles(tokenIDHandle int32) int64 {
	ctx := h.use(h.gas.BaseOp)
	tokenID := buffer(ctx, tokenIDHandle)
	account, found := ctx.Cache().GetAccount(ctx.Input().To)
	if !found {
		return 0
	}
	return int64(account.RoleFlags(tokenID))
}

// --- shared helpers ---

func (h *Hooks) writeLog(ctx *txcontext.TxContext, topics [][]byte, data []byte) {
	size := len(data)
	for _, topic := range topics {
		size += len(topic)
	}
	charge(ctx, h.gas.Log+h.gas.PerLogByte*uint64(size))
	ctx.AppendLog(mockvm.Log{
		Address:  ctx.Input().To,
		Endpoint: ctx.Input().FuncName,
		Topics:   topics,
		Data:     data,
	})
}

func ownerOf(ctx *txcontext.TxContext, address mockvm.Address) mockvm.Address {
	account, found := ctx.Cache().GetAccount(address)
	if !found || account.ContractOwner == nil {
		return mockvm.Address{}
	}
	return *account.ContractOwner
}

func originalTxHash(ctx *txcontext.TxContext) mockvm.Hash {
	if input := ctx.Input(); input.OriginalTxHash != (mockvm.Hash{}) {
		return input.OriginalTxHash
	}
	return ctx.Input().TxHash
}

func esdtBalance(ctx *txcontext.TxContext, address mockvm.Address, tokenID []byte, nonce uint64) *big.Int {
	account, found := ctx.Cache().GetAccount(address)
	if !found {
		return new(big.Int)
	}
	return account.GetESDTBalance(tokenID, nonce)
}

func setAddress(ctx *txcontext.TxContext, handle int32, address mockvm.Address) {
	ctx.Arena().SetBuffer(managed.Handle(handle), address[:])
}
