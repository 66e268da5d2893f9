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
)

const (
	// maxFloatExponent bounds the binary exponent of stored floats.
	maxFloatExponent = 65_025
	// minSciExponent is the smallest decimal exponent accepted by
	// BigFloatNewFromSci.
	minSciExponent = -400
)

// checkFloat validates a computed float before it is stored.
func checkFloat(f *big.Float) error {
	if f.IsInf() {
		return ErrInfinity
	}
	if f.Sign() == 0 {
		return nil
	}
	if exp := f.MantExp(nil); exp > maxFloatExponent || exp < -maxFloatExponent {
		return ErrExponentRange
	}
	return nil
}

func (a *Arena) setCheckedFloat(dest Handle, f *big.Float) error {
	if err := checkFloat(f); err != nil {
		return err
	}
	a.SetBigFloat(dest, f)
	return nil
}

func (a *Arena) floatOperands(x, y Handle) (*big.Float, *big.Float, error) {
	first, err := a.BigFloat(x)
	if err != nil {
		return nil, nil, err
	}
	second, err := a.BigFloat(y)
	if err != nil {
		return nil, nil, err
	}
	return first, second, nil
}

func (a *Arena) BigFloatAdd(dest, x, y Handle) error {
	first, second, err := a.floatOperands(x, y)
	if err != nil {
		return err
	}
	return a.setCheckedFloat(dest, newFloat().Add(first, second))
}

func (a *Arena) BigFloatSub(dest, x, y Handle) error {
	first, second, err := a.floatOperands(x, y)
	if err != nil {
		return err
	}
	return a.setCheckedFloat(dest, newFloat().Sub(first, second))
}

func (a *Arena) BigFloatMul(dest, x, y Handle) error {
	first, second, err := a.floatOperands(x, y)
	if err != nil {
		return err
	}
	return a.setCheckedFloat(dest, newFloat().Mul(first, second))
}

func (a *Arena) BigFloatDiv(dest, x, y Handle) error {
	first, second, err := a.floatOperands(x, y)
	if err != nil {
		return err
	}
	if second.Sign() == 0 {
		return ErrDivisionByZero
	}
	return a.setCheckedFloat(dest, newFloat().Quo(first, second))
}

func (a *Arena) BigFloatNeg(dest, x Handle) error {
	value, err := a.BigFloat(x)
	if err != nil {
		return err
	}
	a.SetBigFloat(dest, value.Neg(value))
	return nil
}

func (a *Arena) BigFloatAbs(dest, x Handle) error {
	value, err := a.BigFloat(x)
	if err != nil {
		return err
	}
	a.SetBigFloat(dest, value.Abs(value))
	return nil
}

func (a *Arena) BigFloatClone(dest, x Handle) error {
	value, err := a.BigFloat(x)
	if err != nil {
		return err
	}
	a.SetBigFloat(dest, value)
	return nil
}

func (a *Arena) BigFloatCmp(x, y Handle) (int32, error) {
	first, second, err := a.floatOperands(x, y)
	if err != nil {
		return 0, err
	}
	return int32(first.Cmp(second)), nil
}

func (a *Arena) BigFloatSign(x Handle) (int32, error) {
	value, err := a.BigFloat(x)
	if err != nil {
		return 0, err
	}
	return int32(value.Sign()), nil
}

func (a *Arena) BigFloatIsInt(x Handle) (bool, error) {
	value, err := a.BigFloat(x)
	if err != nil {
		return false, err
	}
	return value.IsInt(), nil
}

func (a *Arena) BigFloatSqrt(dest, x Handle) error {
	value, err := a.BigFloat(x)
	if err != nil {
		return err
	}
	if value.Sign() < 0 {
		return ErrBadLowerBounds
	}
	return a.setCheckedFloat(dest, newFloat().Sqrt(value))
}

// BigFloatPow raises x to a non-negative integer power.
func (a *Arena) BigFloatPow(dest, x Handle, exponent int32) error {
	value, err := a.BigFloat(x)
	if err != nil {
		return err
	}
	if exponent < 0 {
		return ErrNegativeExponent
	}
	res := newFloat().SetInt64(1)
	base := newFloat().Set(value)
	for e := exponent; e > 0; e >>= 1 {
		if e&1 == 1 {
			res.Mul(res, base)
			if err := checkFloat(res); err != nil {
				return err
			}
		}
		if e > 1 {
			base.Mul(base, base)
			if err := checkFloat(base); err != nil {
				return err
			}
		}
	}
	a.SetBigFloat(dest, res)
	return nil
}

// rounding of floats into big integer destinations

func (a *Arena) BigFloatFloor(destBigInt, x Handle) error {
	return a.floatToInt(destBigInt, x, func(f *big.Float, i *big.Int) {
		if f.Sign() < 0 && !f.IsInt() {
			i.Sub(i, big.NewInt(1))
		}
	})
}

func (a *Arena) BigFloatCeil(destBigInt, x Handle) error {
	return a.floatToInt(destBigInt, x, func(f *big.Float, i *big.Int) {
		if f.Sign() > 0 && !f.IsInt() {
			i.Add(i, big.NewInt(1))
		}
	})
}

func (a *Arena) BigFloatTruncate(destBigInt, x Handle) error {
	return a.floatToInt(destBigInt, x, func(*big.Float, *big.Int) {})
}

func (a *Arena) floatToInt(dest, x Handle, adjust func(*big.Float, *big.Int)) error {
	value, err := a.BigFloat(x)
	if err != nil {
		return err
	}
	res, _ := value.Int(nil)
	adjust(value, res)
	a.SetBigInt(dest, res)
	return nil
}

func (a *Arena) BigFloatSetInt64(dest Handle, value int64) {
	a.SetBigFloat(dest, newFloat().SetInt64(value))
}

func (a *Arena) BigFloatSetBigInt(dest, x Handle) error {
	value, err := a.BigInt(x)
	if err != nil {
		return err
	}
	return a.setCheckedFloat(dest, newFloat().SetInt(value))
}

// BigFloatNewFromParts creates integral.fractional * 10^exponent, where the
// fractional part is read as decimal digits and exponent must not be
// positive.
func (a *Arena) BigFloatNewFromParts(integral, fractional, exponent int32) (Handle, error) {
	if exponent > 0 || exponent < minSciExponent {
		return 0, ErrExponentRange
	}
	if fractional < 0 {
		return 0, ErrBadLowerBounds
	}
	value := newFloat().SetInt64(int64(integral))
	if fractional > 0 {
		digits := int32(math.Floor(math.Log10(float64(fractional)))) + 1
		frac := newFloat().SetInt64(int64(fractional))
		frac.Quo(frac, pow10(int(digits)))
		if integral < 0 {
			frac.Neg(frac)
		}
		value.Add(value, frac)
	}
	value.Mul(value, newFloat().Quo(newFloat().SetInt64(1), pow10(int(-exponent))))
	if err := checkFloat(value); err != nil {
		return 0, err
	}
	return a.NewBigFloat(value), nil
}

func (a *Arena) BigFloatNewFromFrac(numerator, denominator int64) (Handle, error) {
	if denominator == 0 {
		return 0, ErrDivisionByZero
	}
	value := newFloat().Quo(newFloat().SetInt64(numerator), newFloat().SetInt64(denominator))
	return a.NewBigFloat(value), nil
}

// BigFloatNewFromSci creates significand * 10^exponent.
func (a *Arena) BigFloatNewFromSci(significand, exponent int64) (Handle, error) {
	if exponent > 0 || exponent < minSciExponent {
		return 0, ErrExponentRange
	}
	value := newFloat().SetInt64(significand)
	value.Quo(value, pow10(int(-exponent)))
	if err := checkFloat(value); err != nil {
		return 0, err
	}
	return a.NewBigFloat(value), nil
}

func pow10(n int) *big.Float {
	res := new(big.Int).Exp(big.NewInt(10), big.NewInt(int64(n)), nil)
	return newFloat().SetInt(res)
}

// Constants as reported to contracts.
func (a *Arena) BigFloatConstPi(dest Handle) {
	a.SetBigFloat(dest, newFloat().SetFloat64(math.Pi))
}

func (a *Arena) BigFloatConstE(dest Handle) {
	a.SetBigFloat(dest, newFloat().SetFloat64(math.E))
}

// BigFloatEncode serializes a float with the big.Float gob encoding so it
// can travel through a managed buffer.
func (a *Arena) BigFloatEncode(x Handle) ([]byte, error) {
	value, err := a.BigFloat(x)
	if err != nil {
		return nil, err
	}
	return value.GobEncode()
}

// BigFloatDecode is the inverse of BigFloatEncode.
func (a *Arena) BigFloatDecode(dest Handle, data []byte) error {
	value := newFloat()
	if err := value.GobDecode(data); err != nil {
		return err
	}
	if value.Prec() != FloatPrecision {
		return ErrWrongPrecision
	}
	return a.setCheckedFloat(dest, value)
}
