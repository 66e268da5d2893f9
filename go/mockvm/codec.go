// Copyright (c) 2024 Fantom Foundation
//
// Use of this software is governed by the Business Source License included
// in the LICENSE file and at fantom.foundation/bsl11.
//
// Change Date: 2028-4-16
//
// On the date above, in accordance with the Business Source License, use of
// this software will be governed by the GNU Lesser General Public License v3.

package mockvm

import "math/big"

// This file provides the integer encodings used at the contract boundary.
// Signed values use minimal two's-complement big-endian, unsigned values
// minimal big-endian. In both cases zero is the empty byte string.

// EncodeBigIntUnsigned encodes a non-negative value. The sign of negative
// inputs is dropped.
func EncodeBigIntUnsigned(value *big.Int) []byte {
	if value == nil || value.Sign() == 0 {
		return []byte{}
	}
	return new(big.Int).Abs(value).Bytes()
}

// DecodeBigIntUnsigned decodes a big-endian unsigned value.
func DecodeBigIntUnsigned(data []byte) *big.Int {
	return new(big.Int).SetBytes(data)
}

// EncodeBigIntSigned encodes a value in minimal two's-complement form.
func EncodeBigIntSigned(value *big.Int) []byte {
	switch value.Sign() {
	case 0:
		return []byte{}
	case 1:
		res := value.Bytes()
		if res[0]&0x80 != 0 {
			res = append([]byte{0}, res...)
		}
		return res
	}
	// For negative x the encoding is the one of 2^(8n) + x where n is the
	// smallest byte count keeping the sign bit set.
	abs := new(big.Int).Neg(value)
	n := (abs.BitLen() + 7) / 8
	modulus := new(big.Int).Lsh(big.NewInt(1), uint(8*n))
	twos := new(big.Int).Add(modulus, value)
	res := twos.FillBytes(make([]byte, n))
	if res[0]&0x80 == 0 {
		res = append([]byte{0xff}, res...)
	}
	return res
}

// DecodeBigIntSigned decodes a two's-complement big-endian value.
func DecodeBigIntSigned(data []byte) *big.Int {
	res := new(big.Int).SetBytes(data)
	if len(data) > 0 && data[0]&0x80 != 0 {
		modulus := new(big.Int).Lsh(big.NewInt(1), uint(8*len(data)))
		res.Sub(res, modulus)
	}
	return res
}

// EncodeUint64Minimal encodes a value as big-endian without leading zeros.
func EncodeUint64Minimal(value uint64) []byte {
	res := []byte{}
	for value > 0 {
		res = append([]byte{byte(value)}, res...)
		value >>= 8
	}
	return res
}

// DecodeUint64 decodes a big-endian value of at most 8 bytes.
func DecodeUint64(data []byte) (uint64, bool) {
	if len(data) > 8 {
		return 0, false
	}
	var res uint64
	for _, b := range data {
		res = res<<8 | uint64(b)
	}
	return res, true
}

// EncodeInt64Minimal encodes a signed value in minimal two's-complement form.
func EncodeInt64Minimal(value int64) []byte {
	return EncodeBigIntSigned(big.NewInt(value))
}
