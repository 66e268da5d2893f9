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
	"crypto/sha256"

	"github.com/Fantom-foundation/MockVM/go/managed"
	"github.com/Fantom-foundation/MockVM/go/txcontext"
	"github.com/ethereum/go-ethereum/crypto"
	"golang.org/x/crypto/ed25519"
	"golang.org/x/crypto/ripemd160"
	"golang.org/x/crypto/sha3"
)

func keccak256(data []byte) []byte {
	hasher := sha3.NewLegacyKeccak256()
	hasher.Write(data)
	return hasher.Sum(nil)
}

func sha256Sum(data []byte) []byte {
	digest := sha256.Sum256(data)
	return digest[:]
}

func ripemd160Sum(data []byte) []byte {
	hasher := ripemd160.New()
	hasher.Write(data)
	return hasher.Sum(nil)
}

func (h *Hooks) hashMemory(hash func([]byte) []byte, dataOffset, length, resultOffset int32) int32 {
	ctx := h.use(h.gas.Hash)
	h.store(ctx, resultOffset, hash(h.load(ctx, dataOffset, length)))
	return 0
}

func (h *Hooks) hashBuffer(hash func([]byte) []byte, inputHandle, outputHandle int32) int32 {
	ctx := h.use(h.gas.Hash)
	input := buffer(ctx, inputHandle)
	h.chargeBytes(ctx, len(input))
	ctx.Arena().SetBuffer(managed.Handle(outputHandle), hash(input))
	return 0
}

func (h *Hooks) Sha256(dataOffset int32, length int32, resultOffset int32) int32 {
	return h.hashMemory(sha256Sum, dataOffset, length, resultOffset)
}

func (h *Hooks) Keccak256(dataOffset int32, length int32, resultOffset int32) int32 {
	return h.hashMemory(keccak256, dataOffset, length, resultOffset)
}

func (h *Hooks) ManagedSha256(inputHandle int32, outputHandle int32) int32 {
	return h.hashBuffer(sha256Sum, inputHandle, outputHandle)
}

func (h *Hooks) ManagedKeccak256(inputHandle int32, outputHandle int32) int32 {
	return h.hashBuffer(keccak256, inputHandle, outputHandle)
}

func (h *Hooks) ManagedRipemd160(inputHandle int32, outputHandle int32) int32 {
	return h.hashBuffer(ripemd160Sum, inputHandle, outputHandle)
}

func (h *Hooks) signatureInputs(keyHandle, messageHandle, sigHandle int32) (*txcontext.TxContext, []byte, []byte, []byte) {
	ctx := h.use(h.gas.VerifySig)
	key := buffer(ctx, keyHandle)
	message := buffer(ctx, messageHandle)
	sig := buffer(ctx, sigHandle)
	return ctx, key, message, sig
}

func (h *Hooks) ManagedVerifyEd25519(keyHandle int32, messageHandle int32, sigHandle int32) int32 {
	ctx, key, message, sig := h.signatureInputs(keyHandle, messageHandle, sigHandle)
	if len(key) != ed25519.PublicKeySize || !ed25519.Verify(key, message, sig) {
		failExecution(ctx, ErrInvalidSignature)
	}
	return 0
}

// ManagedVerifySecp256k1 checks a 64 byte [R || S] signature of the
// sha256 digest of the message against a compressed or uncompressed key.
func (h *Hooks) ManagedVerifySecp256k1(keyHandle int32, messageHandle int32, sigHandle int32) int32 {
	ctx, key, message, sig := h.signatureInputs(keyHandle, messageHandle, sigHandle)
	if len(sig) == crypto.SignatureLength {
		sig = sig[:crypto.SignatureLength-1]
	}
	if len(sig) != crypto.SignatureLength-1 || !crypto.VerifySignature(key, sha256Sum(message), sig) {
		failExecution(ctx, ErrInvalidSignature)
	}
	return 0
}

func (h *Hooks) ManagedVerifyBLS(keyHandle int32, messageHandle int32, sigHandle int32) int32 {
	ctx, _, _, _ := h.signatureInputs(keyHandle, messageHandle, sigHandle)
	failExecution(ctx, ErrBLSNotSupported)
	return -1
}
