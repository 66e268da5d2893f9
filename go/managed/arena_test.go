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
	"bytes"
	"errors"
	"math/big"
	"testing"

	"github.com/Fantom-foundation/MockVM/go/mockvm"
	"pgregory.net/rand"
)

func TestArena_NewHandlesAreDescending(t *testing.T) {
	arena := NewArena(nil)
	first := arena.NewBigInt(big.NewInt(1))
	second := arena.NewBuffer([]byte{1})
	if want, got := NewHandleSentinel, first; want != got {
		t.Errorf("unexpected first handle, wanted %d, got %d", want, got)
	}
	if second >= first {
		t.Errorf("handles not descending: %d, %d", first, second)
	}
}

func TestArena_StaticHandlesAreBound(t *testing.T) {
	arena := NewArena(nil)
	for _, h := range []Handle{ConstHandleBigIntZero, ConstHandleCallValueEGLD, ConstHandleBigIntTemporary1, ConstHandleBigIntTemporary2} {
		if _, err := arena.BigInt(h); err != nil {
			t.Errorf("static big int handle %d not bound: %v", h, err)
		}
	}
	for _, h := range []Handle{ConstHandleMBufferEmpty, ConstHandleCallValueESDT, ConstHandleMBufferTemp1, ConstHandleCallbackClosure} {
		if _, err := arena.Buffer(h); err != nil {
			t.Errorf("static buffer handle %d not bound: %v", h, err)
		}
	}
}

func TestArena_UnknownHandlesAreInvalid(t *testing.T) {
	arena := NewArena(nil)
	tests := map[string]func() error{
		"big int":   func() error { _, err := arena.BigInt(5); return err },
		"big float": func() error { _, err := arena.BigFloat(5); return err },
		"buffer":    func() error { _, err := arena.Buffer(5); return err },
		"map":       func() error { _, err := arena.MapGet(5, nil); return err },
		"append":    func() error { return arena.MBAppend(5, []byte{1}) },
	}
	for name, test := range tests {
		t.Run(name, func(t *testing.T) {
			if err := test(); !errors.Is(err, ErrInvalidHandle) {
				t.Errorf("unexpected error, wanted %v, got %v", ErrInvalidHandle, err)
			}
		})
	}
}

func TestArena_SiblingArenasDoNotShareHandles(t *testing.T) {
	source := NewHandleSource()
	first := NewArena(source)
	second := NewArena(source)

	h := first.NewBigInt(big.NewInt(42))
	if _, err := second.BigInt(h); !errors.Is(err, ErrInvalidHandle) {
		t.Errorf("handle of sibling arena should be invalid, got %v", err)
	}
	other := second.NewBigInt(big.NewInt(1))
	if other == h {
		t.Errorf("sibling arenas issued the same handle %d", h)
	}
}

func TestArena_BigIntArithmeticSupportsAliasing(t *testing.T) {
	arena := NewArena(nil)
	x := arena.NewBigInt(big.NewInt(7))
	if err := arena.BigIntAdd(x, x, x); err != nil {
		t.Fatalf("failed to add: %v", err)
	}
	if err := arena.BigIntMul(x, x, x); err != nil {
		t.Fatalf("failed to multiply: %v", err)
	}
	got, _ := arena.BigInt(x)
	if want := int64(196); got.Int64() != want {
		t.Errorf("unexpected result, wanted %d, got %v", want, got)
	}
}

func TestArena_BigIntOperations(t *testing.T) {
	tests := map[string]struct {
		op      func(a *Arena, dest, x, y Handle) error
		x, y    int64
		want    int64
		wantErr error
	}{
		"sub":           {(*Arena).BigIntSub, 5, 7, -2, nil},
		"tdiv":          {(*Arena).BigIntTDiv, -7, 2, -3, nil},
		"tmod":          {(*Arena).BigIntTMod, -7, 2, -1, nil},
		"ediv":          {(*Arena).BigIntEDiv, -7, 2, -4, nil},
		"emod":          {(*Arena).BigIntEMod, -7, 2, 1, nil},
		"div by zero":   {(*Arena).BigIntTDiv, 1, 0, 0, ErrDivisionByZero},
		"mod by zero":   {(*Arena).BigIntEMod, 1, 0, 0, ErrDivisionByZero},
		"pow":           {(*Arena).BigIntPow, 3, 4, 81, nil},
		"negative pow":  {(*Arena).BigIntPow, 3, -1, 0, ErrNegativeExponent},
		"and":           {(*Arena).BigIntAnd, 6, 3, 2, nil},
		"or":            {(*Arena).BigIntOr, 6, 3, 7, nil},
		"xor":           {(*Arena).BigIntXor, 6, 3, 5, nil},
		"negative and":  {(*Arena).BigIntAnd, -6, 3, 0, ErrBitwiseNegative},
		"shift left":    {func(a *Arena, d, x, y Handle) error { return a.BigIntShl(d, x, 3) }, 1, 0, 8, nil},
		"shift right":   {func(a *Arena, d, x, y Handle) error { return a.BigIntShr(d, x, 1) }, 9, 0, 4, nil},
		"neg shift":     {func(a *Arena, d, x, y Handle) error { return a.BigIntShr(d, x, 1) }, -9, 0, 0, ErrShiftNegative},
		"sqrt":          {func(a *Arena, d, x, y Handle) error { return a.BigIntSqrt(d, x) }, 17, 0, 4, nil},
		"negative sqrt": {func(a *Arena, d, x, y Handle) error { return a.BigIntSqrt(d, x) }, -1, 0, 0, ErrBadLowerBounds},
		"abs":           {func(a *Arena, d, x, y Handle) error { return a.BigIntAbs(d, x) }, -3, 0, 3, nil},
		"neg":           {func(a *Arena, d, x, y Handle) error { return a.BigIntNeg(d, x) }, 3, 0, -3, nil},
	}

	for name, test := range tests {
		t.Run(name, func(t *testing.T) {
			arena := NewArena(nil)
			x := arena.NewBigInt(big.NewInt(test.x))
			y := arena.NewBigInt(big.NewInt(test.y))
			dest := arena.NewBigInt(nil)
			err := test.op(arena, dest, x, y)
			if test.wantErr != nil {
				if !errors.Is(err, test.wantErr) {
					t.Fatalf("unexpected error, wanted %v, got %v", test.wantErr, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			got, _ := arena.BigInt(dest)
			if got.Int64() != test.want {
				t.Errorf("unexpected result, wanted %d, got %v", test.want, got)
			}
		})
	}
}

func TestArena_BigIntBytesRoundTrip(t *testing.T) {
	arena := NewArena(nil)
	rnd := rand.New(0)
	h := arena.NewBigInt(nil)
	for i := 0; i < 1000; i++ {
		value := big.NewInt(rnd.Int63())
		if rnd.Intn(2) == 0 {
			value.Neg(value)
		}
		arena.SetBigInt(h, value)
		data, err := arena.BigIntToBytesSigned(h)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		arena.BigIntFromBytesSigned(h, data)
		if got, _ := arena.BigInt(h); got.Cmp(value) != 0 {
			t.Fatalf("round trip failed, wanted %v, got %v", value, got)
		}
	}
}

func TestArena_BufferSlicing(t *testing.T) {
	arena := NewArena(nil)
	src := arena.NewBuffer([]byte("hello world"))
	dest := arena.NewBuffer(nil)

	if err := arena.MBSlice(src, 6, 5, dest); err != nil {
		t.Fatalf("failed to slice: %v", err)
	}
	if got, _ := arena.Buffer(dest); string(got) != "world" {
		t.Errorf("unexpected slice, got %q", got)
	}

	for _, bounds := range [][2]int{{-1, 1}, {0, 12}, {11, 1}, {12, 0}, {3, -1}} {
		if err := arena.MBSlice(src, bounds[0], bounds[1], dest); !errors.Is(err, ErrInvalidSlice) {
			t.Errorf("slice %v should be invalid, got %v", bounds, err)
		}
	}
	if err := arena.MBSlice(src, 11, 0, dest); err != nil {
		t.Errorf("empty slice at end should be valid, got %v", err)
	}

	// in place
	if err := arena.MBSlice(src, 0, 5, src); err != nil {
		t.Fatalf("failed to slice in place: %v", err)
	}
	if got, _ := arena.Buffer(src); string(got) != "hello" {
		t.Errorf("unexpected in place slice, got %q", got)
	}
}

func TestArena_BufferAppendAndSetSlice(t *testing.T) {
	arena := NewArena(nil)
	h := arena.NewBuffer([]byte("ab"))
	if err := arena.MBAppendBuffer(h, h); err != nil {
		t.Fatalf("failed to append: %v", err)
	}
	if err := arena.MBSetSlice(h, 1, []byte("XY")); err != nil {
		t.Fatalf("failed to set slice: %v", err)
	}
	if got, _ := arena.Buffer(h); string(got) != "aXYb" {
		t.Errorf("unexpected content, got %q", got)
	}
	if err := arena.MBSetSlice(h, 3, []byte("XY")); !errors.Is(err, ErrInvalidSlice) {
		t.Errorf("out of range write should fail, got %v", err)
	}
}

func TestArena_Maps(t *testing.T) {
	arena := NewArena(nil)
	m := arena.NewMap()
	if err := arena.MapPut(m, []byte("k"), []byte("v")); err != nil {
		t.Fatalf("failed to put: %v", err)
	}
	if found, _ := arena.MapContains(m, []byte("k")); !found {
		t.Errorf("key not found")
	}
	value, _ := arena.MapRemove(m, []byte("k"))
	if string(value) != "v" {
		t.Errorf("unexpected removed value %q", value)
	}
	if found, _ := arena.MapContains(m, []byte("k")); found {
		t.Errorf("key not removed")
	}
}

func TestArena_BigFloatRounding(t *testing.T) {
	tests := map[string]struct {
		num, denom           int64
		floor, ceil, truncat int64
	}{
		"positive": {7, 2, 3, 4, 3},
		"negative": {-7, 2, -4, -3, -3},
		"integral": {6, 2, 3, 3, 3},
	}
	for name, test := range tests {
		t.Run(name, func(t *testing.T) {
			arena := NewArena(nil)
			f, err := arena.BigFloatNewFromFrac(test.num, test.denom)
			if err != nil {
				t.Fatalf("failed to create float: %v", err)
			}
			dest := arena.NewBigInt(nil)
			for _, step := range []struct {
				op   func(Handle, Handle) error
				want int64
			}{
				{arena.BigFloatFloor, test.floor},
				{arena.BigFloatCeil, test.ceil},
				{arena.BigFloatTruncate, test.truncat},
			} {
				if err := step.op(dest, f); err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				if got, _ := arena.BigInt(dest); got.Int64() != step.want {
					t.Errorf("unexpected result, wanted %d, got %v", step.want, got)
				}
			}
		})
	}
}

func TestArena_BigFloatErrors(t *testing.T) {
	arena := NewArena(nil)
	zero, _ := arena.BigFloatNewFromFrac(0, 1)
	one, _ := arena.BigFloatNewFromFrac(1, 1)
	minus, _ := arena.BigFloatNewFromFrac(-1, 1)
	dest := arena.NewBigFloat(nil)

	if err := arena.BigFloatDiv(dest, one, zero); !errors.Is(err, ErrDivisionByZero) {
		t.Errorf("unexpected error for division by zero: %v", err)
	}
	if err := arena.BigFloatSqrt(dest, minus); !errors.Is(err, ErrBadLowerBounds) {
		t.Errorf("unexpected error for negative sqrt: %v", err)
	}
	if _, err := arena.BigFloatNewFromFrac(1, 0); !errors.Is(err, ErrDivisionByZero) {
		t.Errorf("unexpected error for zero denominator: %v", err)
	}
	if _, err := arena.BigFloatNewFromSci(1, 1); !errors.Is(err, ErrExponentRange) {
		t.Errorf("unexpected error for positive exponent: %v", err)
	}
}

func TestArena_BigFloatPowAndSci(t *testing.T) {
	arena := NewArena(nil)
	h, err := arena.BigFloatNewFromSci(15, -1)
	if err != nil {
		t.Fatalf("failed to create float: %v", err)
	}
	if err := arena.BigFloatPow(h, h, 2); err != nil {
		t.Fatalf("failed to compute power: %v", err)
	}
	got, _ := arena.BigFloat(h)
	if f, _ := got.Float64(); f < 2.2499 || f > 2.2501 {
		t.Errorf("unexpected power, wanted 2.25, got %v", f)
	}

	parts, err := arena.BigFloatNewFromParts(1, 25, 0)
	if err != nil {
		t.Fatalf("failed to create float: %v", err)
	}
	got, _ = arena.BigFloat(parts)
	if f, _ := got.Float64(); f != 1.25 {
		t.Errorf("unexpected value, wanted 1.25, got %v", f)
	}
}

func TestArena_BigFloatEncodingRoundTrip(t *testing.T) {
	arena := NewArena(nil)
	h, _ := arena.BigFloatNewFromFrac(1, 3)
	data, err := arena.BigFloatEncode(h)
	if err != nil {
		t.Fatalf("failed to encode: %v", err)
	}
	dest := arena.NewBigFloat(nil)
	if err := arena.BigFloatDecode(dest, data); err != nil {
		t.Fatalf("failed to decode: %v", err)
	}
	if cmp, _ := arena.BigFloatCmp(h, dest); cmp != 0 {
		t.Errorf("round trip changed value")
	}
}

func TestArena_ESDTPaymentEncoding(t *testing.T) {
	arena := NewArena(nil)
	payments := []mockvm.TokenTransfer{
		{TokenIdentifier: []byte("FOO-aaaaaa"), Value: big.NewInt(42)},
		{TokenIdentifier: []byte("NFT-bbbbbb"), Nonce: 7, Value: big.NewInt(1)},
	}
	h := arena.NewBuffer(nil)
	arena.WriteESDTPayments(h, payments)
	if n, _ := arena.MBLen(h); n != 2*ESDTPaymentSize {
		t.Fatalf("unexpected encoded size %d", n)
	}
	got, err := arena.ReadESDTPayments(h)
	if err != nil {
		t.Fatalf("failed to decode payments: %v", err)
	}
	for i := range payments {
		if !bytes.Equal(payments[i].TokenIdentifier, got[i].TokenIdentifier) ||
			payments[i].Nonce != got[i].Nonce || payments[i].Value.Cmp(got[i].Value) != 0 {
			t.Errorf("unexpected payment %d, wanted %v, got %v", i, payments[i], got[i])
		}
	}
}

func TestArena_BufferListRoundTrip(t *testing.T) {
	arena := NewArena(nil)
	list := [][]byte{[]byte("a"), {}, []byte("ccc")}
	h := arena.NewBuffer(nil)
	arena.WriteBufferList(h, list)
	got, err := arena.ReadBufferList(h)
	if err != nil {
		t.Fatalf("failed to read list: %v", err)
	}
	if len(got) != len(list) {
		t.Fatalf("unexpected list length %d", len(got))
	}
	for i := range list {
		if !bytes.Equal(list[i], got[i]) {
			t.Errorf("unexpected element %d: %q", i, got[i])
		}
	}
}

func TestArena_GrowingBigIntOperationsAreBounded(t *testing.T) {
	huge := new(big.Int).Lsh(big.NewInt(1), MaxBigIntBits-1)
	tests := map[string]struct {
		op   func(a *Arena, dest, x, y Handle) error
		x, y *big.Int
	}{
		"pow with huge exponent": {(*Arena).BigIntPow, big.NewInt(3), big.NewInt(1 << 40)},
		"pow beyond uint64":      {(*Arena).BigIntPow, big.NewInt(2), new(big.Int).Lsh(big.NewInt(1), 70)},
		"mul of huge values":     {(*Arena).BigIntMul, huge, huge},
		"shl of huge value": {func(a *Arena, d, x, y Handle) error {
			return a.BigIntShl(d, x, 2)
		}, huge, big.NewInt(0)},
	}
	for name, test := range tests {
		t.Run(name, func(t *testing.T) {
			arena := NewArena(nil)
			x := arena.NewBigInt(test.x)
			y := arena.NewBigInt(test.y)
			if err := test.op(arena, x, x, y); !errors.Is(err, ErrBigIntTooLarge) {
				t.Errorf("unexpected error, wanted %v, got %v", ErrBigIntTooLarge, err)
			}
			if got, _ := arena.BigInt(x); got.Cmp(test.x) != 0 {
				t.Errorf("destination was modified by a rejected operation")
			}
		})
	}
}

func TestArena_PowOfTrivialBasesIgnoresExponentSize(t *testing.T) {
	for _, base := range []int64{-1, 0, 1} {
		arena := NewArena(nil)
		x := arena.NewBigInt(big.NewInt(base))
		y := arena.NewBigInt(big.NewInt(1 << 40))
		if err := arena.BigIntPow(x, x, y); err != nil {
			t.Fatalf("unexpected error for base %d: %v", base, err)
		}
		got, _ := arena.BigInt(x)
		if want := base * base; got.Int64() != want {
			t.Errorf("unexpected result for base %d, wanted %d, got %v", base, want, got)
		}
	}
}

func TestResultBits_AreUpperBounds(t *testing.T) {
	rnd := rand.New(1)
	for i := 0; i < 100; i++ {
		x := big.NewInt(int64(rnd.Uint64n(1 << 20)))
		y := big.NewInt(int64(rnd.Uint64n(40)))
		if got := new(big.Int).Mul(x, y).BitLen(); uint64(got) > MulResultBits(x, y) {
			t.Errorf("product of %v and %v has %d bits, bound is %d", x, y, got, MulResultBits(x, y))
		}
		if got := new(big.Int).Exp(x, y, nil).BitLen(); uint64(got) > PowResultBits(x, y) {
			t.Errorf("%v**%v has %d bits, bound is %d", x, y, got, PowResultBits(x, y))
		}
	}
}
