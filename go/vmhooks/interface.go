// Copyright (c) 2024 Fantom Foundation
//
// Use of this software is governed by the Business Source License included
// in the LICENSE file and at fantom.foundation/bsl11.
//
// Change Date: 2028-4-16
//
// On the date above, in accordance with the Business Source License, use of
// this software will be governed by the GNU Lesser General Public License v3.

// Package vmhooks implements the host functions a contract calls into.
// Contracts know managed values only by handle and exchange raw bytes
// through their linear memory; offsets and lengths are 32 bit.
//
// Every hook looks up the invocation it serves on the context stack,
// charges its gas, validates its inputs and only then modifies anything.
// Failures abort the executing instance through an EarlyExit.
package vmhooks

// VMHooks is the set of functions exported to contracts. The exported name
// of a hook is its method name with a lower case first letter.
type VMHooks interface {
	BigIntHooks
	BigFloatHooks
	ManagedBufferHooks
	ManagedMapHooks
	SmallIntHooks
	BaseHooks
	ManagedHooks
	CallHooks
	CryptoHooks
}

type BigIntHooks interface {
	BigIntNew(smallValue int64) int32
	BigIntUnsignedByteLength(reference int32) int32
	BigIntSignedByteLength(reference int32) int32
	BigIntGetUnsignedBytes(reference int32, byteOffset int32) int32
	BigIntGetSignedBytes(reference int32, byteOffset int32) int32
	BigIntSetUnsignedBytes(destination int32, byteOffset int32, byteLength int32)
	BigIntSetSignedBytes(destination int32, byteOffset int32, byteLength int32)
	BigIntIsInt64(destination int32) int32
	BigIntGetInt64(destination int32) int64
	BigIntSetInt64(destination int32, value int64)
	BigIntAdd(destination int32, op1 int32, op2 int32)
	BigIntSub(destination int32, op1 int32, op2 int32)
	BigIntMul(destination int32, op1 int32, op2 int32)
	BigIntTDiv(destination int32, op1 int32, op2 int32)
	BigIntTMod(destination int32, op1 int32, op2 int32)
	BigIntEDiv(destination int32, op1 int32, op2 int32)
	BigIntEMod(destination int32, op1 int32, op2 int32)
	BigIntPow(destination int32, op1 int32, op2 int32)
	BigIntSqrt(destination int32, op int32)
	BigIntLog2(op int32) int32
	BigIntAbs(destination int32, op int32)
	BigIntNeg(destination int32, op int32)
	BigIntSign(op int32) int32
	BigIntCmp(op1 int32, op2 int32) int32
	BigIntNot(destination int32, op int32)
	BigIntAnd(destination int32, op1 int32, op2 int32)
	BigIntOr(destination int32, op1 int32, op2 int32)
	BigIntXor(destination int32, op1 int32, op2 int32)
	BigIntShr(destination int32, op int32, bits int32)
	BigIntShl(destination int32, op int32, bits int32)
	BigIntFinishUnsigned(reference int32)
	BigIntFinishSigned(reference int32)
	BigIntGetUnsignedArgument(id int32, destination int32)
	BigIntGetSignedArgument(id int32, destination int32)
	BigIntStorageStoreUnsigned(keyOffset int32, keyLength int32, source int32) int32
	BigIntStorageLoadUnsigned(keyOffset int32, keyLength int32, destination int32) int32
	BigIntGetCallValue(destination int32)
	BigIntGetESDTCallValue(destination int32)
	BigIntGetESDTCallValueByIndex(destination int32, index int32)
	BigIntGetExternalBalance(addressOffset int32, result int32)
	BigIntGetESDTExternalBalance(addressOffset int32, tokenIDOffset int32, tokenIDLen int32, nonce int64, result int32)
	BigIntToString(bigIntHandle int32, destination int32)
}

type BigFloatHooks interface {
	BigFloatNewFromParts(integralPart int32, fractionalPart int32, exponent int32) int32
	BigFloatNewFromFrac(numerator int64, denominator int64) int32
	BigFloatNewFromSci(significand int64, exponent int64) int32
	BigFloatAdd(destination int32, op1 int32, op2 int32)
	BigFloatSub(destination int32, op1 int32, op2 int32)
	BigFloatMul(destination int32, op1 int32, op2 int32)
	BigFloatDiv(destination int32, op1 int32, op2 int32)
	BigFloatNeg(destination int32, op int32)
	BigFloatClone(destination int32, op int32)
	BigFloatCmp(op1 int32, op2 int32) int32
	BigFloatAbs(destination int32, op int32)
	BigFloatSign(op int32) int32
	BigFloatSqrt(destination int32, op int32)
	BigFloatPow(destination int32, op int32, exponent int32)
	BigFloatFloor(destBigInt int32, op int32)
	BigFloatCeil(destBigInt int32, op int32)
	BigFloatTruncate(destBigInt int32, op int32)
	BigFloatSetInt64(destination int32, value int64)
	BigFloatIsInt(op int32) int32
	BigFloatSetBigInt(destination int32, bigIntHandle int32)
	BigFloatGetConstPi(destination int32)
	BigFloatGetConstE(destination int32)
}

type ManagedBufferHooks interface {
	MBufferNew() int32
	MBufferNewFromBytes(dataOffset int32, dataLength int32) int32
	MBufferGetLength(mBufferHandle int32) int32
	MBufferGetBytes(mBufferHandle int32, resultOffset int32) int32
	MBufferGetByteSlice(sourceHandle int32, startingPosition int32, sliceLength int32, resultOffset int32) int32
	MBufferCopyByteSlice(sourceHandle int32, startingPosition int32, sliceLength int32, destinationHandle int32) int32
	MBufferEq(mBufferHandle1 int32, mBufferHandle2 int32) int32
	MBufferSetBytes(mBufferHandle int32, dataOffset int32, dataLength int32) int32
	MBufferSetByteSlice(mBufferHandle int32, startingPosition int32, dataLength int32, dataOffset int32) int32
	MBufferAppend(accumulatorHandle int32, dataHandle int32) int32
	MBufferAppendBytes(accumulatorHandle int32, dataOffset int32, dataLength int32) int32
	MBufferToBigIntUnsigned(mBufferHandle int32, bigIntHandle int32) int32
	MBufferToBigIntSigned(mBufferHandle int32, bigIntHandle int32) int32
	MBufferFromBigIntUnsigned(mBufferHandle int32, bigIntHandle int32) int32
	MBufferFromBigIntSigned(mBufferHandle int32, bigIntHandle int32) int32
	MBufferToBigFloat(mBufferHandle int32, bigFloatHandle int32) int32
	MBufferFromBigFloat(mBufferHandle int32, bigFloatHandle int32) int32
	MBufferStorageStore(keyHandle int32, sourceHandle int32) int32
	MBufferStorageLoad(keyHandle int32, destinationHandle int32) int32
	MBufferStorageLoadFromAddress(addressHandle int32, keyHandle int32, destinationHandle int32)
	MBufferGetArgument(id int32, destinationHandle int32) int32
	MBufferFinish(sourceHandle int32) int32
	MBufferSetRandom(destinationHandle int32, length int32) int32
}

type ManagedMapHooks interface {
	ManagedMapNew() int32
	ManagedMapPut(mMapHandle int32, keyHandle int32, valueHandle int32) int32
	ManagedMapGet(mMapHandle int32, keyHandle int32, outValueHandle int32) int32
	ManagedMapRemove(mMapHandle int32, keyHandle int32, outValueHandle int32) int32
	ManagedMapContains(mMapHandle int32, keyHandle int32) int32
}

type SmallIntHooks interface {
	SmallIntGetUnsignedArgument(id int32) int64
	SmallIntGetSignedArgument(id int32) int64
	SmallIntFinishUnsigned(value int64)
	SmallIntFinishSigned(value int64)
	SmallIntStorageStoreUnsigned(keyOffset int32, keyLength int32, value int64) int32
	SmallIntStorageStoreSigned(keyOffset int32, keyLength int32, value int64) int32
	SmallIntStorageLoadUnsigned(keyOffset int32, keyLength int32) int64
	SmallIntStorageLoadSigned(keyOffset int32, keyLength int32) int64
}

type BaseHooks interface {
	GetNumArguments() int32
	GetArgumentLength(id int32) int32
	GetArgument(id int32, argOffset int32) int32
	GetFunction(functionOffset int32) int32
	Finish(pointer int32, length int32)
	SignalError(messageOffset int32, messageLength int32)
	StorageStore(keyOffset int32, keyLength int32, dataOffset int32, dataLength int32) int32
	StorageLoadLength(keyOffset int32, keyLength int32) int32
	StorageLoad(keyOffset int32, keyLength int32, dataOffset int32) int32
	StorageLoadFromAddress(addressOffset int32, keyOffset int32, keyLength int32, dataOffset int32) int32
	GetCaller(resultOffset int32)
	GetSCAddress(resultOffset int32)
	GetOwnerAddress(resultOffset int32)
	GetCallValue(resultOffset int32) int32
	GetGasLeft() int64
	GetBlockTimestamp() int64
	GetBlockNonce() int64
	GetBlockRound() int64
	GetBlockEpoch() int64
	GetBlockRandomSeed(pointer int32)
	GetPrevBlockTimestamp() int64
	GetPrevBlockNonce() int64
	GetPrevBlockRound() int64
	GetPrevBlockEpoch() int64
	GetPrevBlockRandomSeed(pointer int32)
	GetOriginalTxHash(dataOffset int32)
	GetNumESDTTransfers() int32
	CheckNoPayment()
	IsSmartContract(addressOffset int32) int32
	WriteEventLog(numTopics int32, topicLengthsOffset int32, topicOffset int32, dataOffset int32, dataLength int32)
	ValidateTokenIdentifier(tokenIDHandle int32) int32
	GetESDTLocalRoles(tokenIDHandle int32) int64
}

type ManagedHooks interface {
	ManagedSCAddress(destinationHandle int32)
	ManagedOwnerAddress(destinationHandle int32)
	ManagedCaller(destinationHandle int32)
	ManagedSignalError(errHandle int32)
	ManagedWriteLog(topicsHandle int32, dataHandle int32)
	ManagedGetOriginalTxHash(resultHandle int32)
	ManagedGetBlockRandomSeed(resultHandle int32)
	ManagedGetPrevBlockRandomSeed(resultHandle int32)
	ManagedGetMultiESDTCallValue(multiCallValueHandle int32)
	ManagedGetESDTBalance(addressHandle int32, tokenIDHandle int32, nonce int64, valueHandle int32)
	ManagedGetESDTTokenData(addressHandle int32, tokenIDHandle int32, nonce int64, valueHandle int32, propertiesHandle int32, hashHandle int32, nameHandle int32, attributesHandle int32, creatorHandle int32, royaltiesHandle int32, urisHandle int32)
	ManagedIsESDTFrozen(addressHandle int32, tokenIDHandle int32, nonce int64) int32
	ManagedGetCodeMetadata(addressHandle int32, responseHandle int32)
	ManagedGetCallbackClosure(callbackClosureHandle int32)
}

type CallHooks interface {
	ManagedExecuteOnDestContext(gas int64, addressHandle int32, valueHandle int32, functionHandle int32, argumentsHandle int32, resultHandle int32) int32
	ManagedTransferValueExecute(dstHandle int32, valueHandle int32, gasLimit int64, functionHandle int32, argumentsHandle int32) int32
	ManagedMultiTransferESDTNFTExecute(dstHandle int32, tokenTransfersHandle int32, gasLimit int64, functionHandle int32, argumentsHandle int32) int32
	ManagedAsyncCall(destHandle int32, valueHandle int32, functionHandle int32, argumentsHandle int32)
	ManagedCreateAsyncCall(destHandle int32, valueHandle int32, functionHandle int32, argumentsHandle int32, successOffset int32, successLength int32, errorOffset int32, errorLength int32, gas int64, extraGasForCallback int64, callbackClosureHandle int32) int32
	ManagedCreateContract(gas int64, valueHandle int32, codeHandle int32, codeMetadataHandle int32, argumentsHandle int32, resultAddressHandle int32, resultHandle int32) int32
	ManagedDeployFromSourceContract(gas int64, valueHandle int32, addressHandle int32, codeMetadataHandle int32, argumentsHandle int32, resultAddressHandle int32, resultHandle int32) int32
	ManagedUpgradeContract(destHandle int32, gas int64, valueHandle int32, codeHandle int32, codeMetadataHandle int32, argumentsHandle int32, resultHandle int32)
	ManagedUpgradeFromSourceContract(destHandle int32, gas int64, valueHandle int32, addressHandle int32, codeMetadataHandle int32, argumentsHandle int32, resultHandle int32)
}

type CryptoHooks interface {
	Sha256(dataOffset int32, length int32, resultOffset int32) int32
	Keccak256(dataOffset int32, length int32, resultOffset int32) int32
	ManagedSha256(inputHandle int32, outputHandle int32) int32
	ManagedKeccak256(inputHandle int32, outputHandle int32) int32
	ManagedRipemd160(inputHandle int32, outputHandle int32) int32
	ManagedVerifyEd25519(keyHandle int32, messageHandle int32, sigHandle int32) int32
	ManagedVerifySecp256k1(keyHandle int32, messageHandle int32, sigHandle int32) int32
	ManagedVerifyBLS(keyHandle int32, messageHandle int32, sigHandle int32) int32
}
