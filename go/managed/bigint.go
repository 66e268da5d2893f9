// Copyright (c) 2024 Fantom Foundation
//
// Use of this software is governed by the Business Source License included
// in the LICENSE file and at fantom.foundation/bsl11.
//
// Change Date: 2028-4-16
//
// On the date above, in accordance with the Business Source License, use of
// this software will be governed by the GNU Lesser General Public License v3.

package managed

import (
	"math"
	"math/big"

	"github.com/Fantom-foundation/MockVM/go/mockvm"
)

// MaxBigIntBits bounds the size of the results of multiplications,
// exponentiations and left shifts.
const MaxBigIntBits = 1 << 20

// MulResultBits is an upper bound of the bit length of x*y.
func MulResultBits(x, y *big.Int) uint64 {
	return uint64(x.BitLen()) + uint64(y.BitLen())
}

// PowResultBits is an upper bound of the bit length of x**y for a
// non-negative y. It saturates instead of overflowing.
func PowResultBits(x, y *big.Int) uint64 {
	if y.Sign() <= 0 || x.BitLen() <= 1 {
		return 1
	}
	if !y.IsUint64() {
		return math.MaxUint64
	}
	bits, exponent := uint64(x.BitLen()), y.Uint64()
	if exponent > math.MaxUint64/bits {
		return math.MaxUint64
	}
	return bits * exponent
}

func (a *Arena) bigIntOperands(x, y Handle) (*big.Int, *big.Int, error) {
	first, err := a.BigInt(x)
	if err != nil {
		return nil, nil, err
	}
	second, err := a.BigInt(y)
	if err != nil {
		return nil, nil, err
	}
	return first, second, nil
}

// bigIntBinary evaluates op on the values of x and y and binds the result
// to dest.
func (a *Arena) bigIntBinary(dest, x, y Handle, op func(x, y *big.Int) (*big.Int, error)) error {
	first, second, err := a.bigIntOperands(x, y)
	if err != nil {
		return err
	}
	res, err := op(first, second)
	if err != nil {
		return err
	}
	a.SetBigInt(dest, res)
	return nil
}

func (a *Arena) bigIntUnary(dest, x Handle, op func(x *big.Int) (*big.Int, error)) error {
	value, err := a.BigInt(x)
	if err != nil {
		return err
	}
	res, err := op(value)
	if err != nil {
		return err
	}
	a.SetBigInt(dest, res)
	return nil
}

func (a *Arena) BigIntAdd(dest, x, y Handle) error {
	return a.bigIntBinary(dest, x, y, func(x, y *big.Int) (*big.Int, error) {
		return x.Add(x, y), nil
	})
}

func (a *Arena) BigIntSub(dest, x, y Handle) error {
	return a.bigIntBinary(dest, x, y, func(x, y *big.Int) (*big.Int, error) {
		return x.Sub(x, y), nil
	})
}

func (a *Arena) BigIntMul(dest, x, y Handle) error {
	return a.bigIntBinary(dest, x, y, func(x, y *big.Int) (*big.Int, error) {
		if MulResultBits(x, y) > MaxBigIntBits {
			return nil, ErrBigIntTooLarge
		}
		return x.Mul(x, y), nil
	})
}

// BigIntTDiv is the truncated division, rounding towards zero.
func (a *Arena) BigIntTDiv(dest, x, y Handle) error {
	return a.bigIntBinary(dest, x, y, func(x, y *big.Int) (*big.Int, error) {
		if y.Sign() == 0 {
			return nil, ErrDivisionByZero
		}
		return x.Quo(x, y), nil
	})
}

// BigIntTMod is the remainder of the truncated division.
func (a *Arena) BigIntTMod(dest, x, y Handle) error {
	return a.bigIntBinary(dest, x, y, func(x, y *big.Int) (*big.Int, error) {
		if y.Sign() == 0 {
			return nil, ErrDivisionByZero
		}
		return x.Rem(x, y), nil
	})
}

// BigIntEDiv is the Euclidean division.
func (a *Arena) BigIntEDiv(dest, x, y Handle) error {
	return a.bigIntBinary(dest, x, y, func(x, y *big.Int) (*big.Int, error) {
		if y.Sign() == 0 {
			return nil, ErrDivisionByZero
		}
		return x.Div(x, y), nil
	})
}

// BigIntEMod is the Euclidean modulus, never negative.
func (a *Arena) BigIntEMod(dest, x, y Handle) error {
	return a.bigIntBinary(dest, x, y, func(x, y *big.Int) (*big.Int, error) {
		if y.Sign() == 0 {
			return nil, ErrDivisionByZero
		}
		return x.Mod(x, y), nil
	})
}

func (a *Arena) BigIntPow(dest, x, y Handle) error {
	return a.bigIntBinary(dest, x, y, func(x, y *big.Int) (*big.Int, error) {
		if y.Sign() < 0 {
			return nil, ErrNegativeExponent
		}
		if PowResultBits(x, y) > MaxBigIntBits {
			return nil, ErrBigIntTooLarge
		}
		return x.Exp(x, y, nil), nil
	})
}

func (a *Arena) BigIntSqrt(dest, x Handle) error {
	return a.bigIntUnary(dest, x, func(x *big.Int) (*big.Int, error) {
		if x.Sign() < 0 {
			return nil, ErrBadLowerBounds
		}
		return x.Sqrt(x), nil
	})
}

// BigIntLog2 returns the integer base 2 logarithm, -1 for zero.
func (a *Arena) BigIntLog2(x Handle) (int32, error) {
	value, err := a.BigInt(x)
	if err != nil {
		return 0, err
	}
	if value.Sign() < 0 {
		return 0, ErrBadLowerBounds
	}
	return int32(value.BitLen() - 1), nil
}

func (a *Arena) BigIntAbs(dest, x Handle) error {
	return a.bigIntUnary(dest, x, func(x *big.Int) (*big.Int, error) {
		return x.Abs(x), nil
	})
}

func (a *Arena) BigIntNeg(dest, x Handle) error {
	return a.bigIntUnary(dest, x, func(x *big.Int) (*big.Int, error) {
		return x.Neg(x), nil
	})
}

func (a *Arena) BigIntSign(x Handle) (int32, error) {
	value, err := a.BigInt(x)
	if err != nil {
		return 0, err
	}
	return int32(value.Sign()), nil
}

func (a *Arena) BigIntCmp(x, y Handle) (int32, error) {
	first, second, err := a.bigIntOperands(x, y)
	if err != nil {
		return 0, err
	}
	return int32(first.Cmp(second)), nil
}

func (a *Arena) BigIntNot(dest, x Handle) error {
	return a.bigIntUnary(dest, x, func(x *big.Int) (*big.Int, error) {
		if x.Sign() < 0 {
			return nil, ErrBitwiseNegative
		}
		return x.Not(x), nil
	})
}

func (a *Arena) bitwise(dest, x, y Handle, op func(z, x, y *big.Int) *big.Int) error {
	return a.bigIntBinary(dest, x, y, func(x, y *big.Int) (*big.Int, error) {
		if x.Sign() < 0 || y.Sign() < 0 {
			return nil, ErrBitwiseNegative
		}
		return op(x, x, y), nil
	})
}

func (a *Arena) BigIntAnd(dest, x, y Handle) error {
	return a.bitwise(dest, x, y, (*big.Int).And)
}

func (a *Arena) BigIntOr(dest, x, y Handle) error {
	return a.bitwise(dest, x, y, (*big.Int).Or)
}

func (a *Arena) BigIntXor(dest, x, y Handle) error {
	return a.bitwise(dest, x, y, (*big.Int).Xor)
}

func (a *Arena) BigIntShr(dest, x Handle, bits int32) error {
	return a.bigIntUnary(dest, x, func(x *big.Int) (*big.Int, error) {
		if x.Sign() < 0 || bits < 0 {
			return nil, ErrShiftNegative
		}
		return x.Rsh(x, uint(bits)), nil
	})
}

func (a *Arena) BigIntShl(dest, x Handle, bits int32) error {
	return a.bigIntUnary(dest, x, func(x *big.Int) (*big.Int, error) {
		if x.Sign() < 0 || bits < 0 {
			return nil, ErrShiftNegative
		}
		if uint64(x.BitLen())+uint64(bits) > MaxBigIntBits {
			return nil, ErrBigIntTooLarge
		}
		return x.Lsh(x, uint(bits)), nil
	})
}

// BigIntToBytesUnsigned returns the big-endian magnitude of a value.
func (a *Arena) BigIntToBytesUnsigned(x Handle) ([]byte, error) {
	value, err := a.BigInt(x)
	if err != nil {
		return nil, err
	}
	return mockvm.EncodeBigIntUnsigned(value), nil
}

// BigIntToBytesSigned returns the minimal two's-complement encoding.
func (a *Arena) BigIntToBytesSigned(x Handle) ([]byte, error) {
	value, err := a.BigInt(x)
	if err != nil {
		return nil, err
	}
	return mockvm.EncodeBigIntSigned(value), nil
}

func (a *Arena) BigIntFromBytesUnsigned(dest Handle, data []byte) {
	a.SetBigInt(dest, mockvm.DecodeBigIntUnsigned(data))
}

func (a *Arena) BigIntFromBytesSigned(dest Handle, data []byte) {
	a.SetBigInt(dest, mockvm.DecodeBigIntSigned(data))
}

// BigIntInt64 returns the value as int64 if it fits.
func (a *Arena) BigIntInt64(x Handle) (int64, error) {
	value, err := a.BigInt(x)
	if err != nil {
		return 0, err
	}
	if !value.IsInt64() {
		return 0, ErrNotInt64
	}
	return value.Int64(), nil
}
