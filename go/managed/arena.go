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
	"math/big"
)

// FloatPrecision is the mantissa precision of all big floats.
const FloatPrecision = 53

// Arena owns the managed values of one transaction context. Values are
// stored as private copies; getters return copies as well, so callers may
// pass the same handle as source and destination of an operation.
type Arena struct {
	handles   *HandleSource
	bigInts   map[Handle]*big.Int
	bigFloats map[Handle]*big.Float
	buffers   map[Handle][]byte
	maps      map[Handle]map[string][]byte
}

// NewArena creates an arena issuing handles from the given source. A nil
// source gives the arena a source of its own.
func NewArena(handles *HandleSource) *Arena {
	if handles == nil {
		handles = NewHandleSource()
	}
	res := &Arena{
		handles:   handles,
		bigInts:   map[Handle]*big.Int{},
		bigFloats: map[Handle]*big.Float{},
		buffers:   map[Handle][]byte{},
		maps:      map[Handle]map[string][]byte{},
	}
	res.bigInts[ConstHandleBigIntZero] = new(big.Int)
	res.bigInts[ConstHandleCallValueEGLD] = new(big.Int)
	res.bigInts[ConstHandleBigIntTemporary1] = new(big.Int)
	res.bigInts[ConstHandleBigIntTemporary2] = new(big.Int)
	res.bigFloats[ConstHandleBigFloatTemp] = newFloat()
	res.buffers[ConstHandleMBufferEmpty] = []byte{}
	res.buffers[ConstHandleCallValueESDT] = []byte{}
	res.buffers[ConstHandleMBufferTemp1] = []byte{}
	res.buffers[ConstHandleMBufferTemp2] = []byte{}
	res.buffers[ConstHandleCallbackClosure] = []byte{}
	return res
}

// Handles returns the handle source of the arena, to be shared with arenas
// of nested contexts.
func (a *Arena) Handles() *HandleSource {
	return a.handles
}

// NewHandle issues a fresh handle without binding it.
func (a *Arena) NewHandle() Handle {
	return a.handles.Next()
}

// --- big integers ---

func (a *Arena) NewBigInt(value *big.Int) Handle {
	h := a.NewHandle()
	a.SetBigInt(h, value)
	return h
}

func (a *Arena) BigInt(h Handle) (*big.Int, error) {
	value, found := a.bigInts[h]
	if !found {
		return nil, &InvalidHandleError{Kind: KindBigInt, Handle: h}
	}
	return new(big.Int).Set(value), nil
}

// SetBigInt binds the handle to a copy of the value, creating the binding
// if needed.
func (a *Arena) SetBigInt(h Handle, value *big.Int) {
	if value == nil {
		value = new(big.Int)
	}
	a.bigInts[h] = new(big.Int).Set(value)
}

// --- big floats ---

func newFloat() *big.Float {
	return new(big.Float).SetPrec(FloatPrecision)
}

func (a *Arena) NewBigFloat(value *big.Float) Handle {
	h := a.NewHandle()
	a.SetBigFloat(h, value)
	return h
}

func (a *Arena) BigFloat(h Handle) (*big.Float, error) {
	value, found := a.bigFloats[h]
	if !found {
		return nil, &InvalidHandleError{Kind: KindBigFloat, Handle: h}
	}
	return newFloat().Set(value), nil
}

func (a *Arena) SetBigFloat(h Handle, value *big.Float) {
	res := newFloat()
	if value != nil {
		res.Set(value)
	}
	a.bigFloats[h] = res
}

// --- buffers ---

func (a *Arena) NewBuffer(data []byte) Handle {
	h := a.NewHandle()
	a.SetBuffer(h, data)
	return h
}

func (a *Arena) Buffer(h Handle) ([]byte, error) {
	data, found := a.buffers[h]
	if !found {
		return nil, &InvalidHandleError{Kind: KindBuffer, Handle: h}
	}
	return append([]byte{}, data...), nil
}

// SetBuffer replaces the content of a buffer, creating it if needed.
func (a *Arena) SetBuffer(h Handle, data []byte) {
	a.buffers[h] = append([]byte{}, data...)
}

// --- maps ---

func (a *Arena) NewMap() Handle {
	h := a.NewHandle()
	a.maps[h] = map[string][]byte{}
	return h
}

func (a *Arena) getMap(h Handle) (map[string][]byte, error) {
	m, found := a.maps[h]
	if !found {
		return nil, &InvalidHandleError{Kind: KindMap, Handle: h}
	}
	return m, nil
}

// MapPut stores a value under a key. Storing an empty value removes the key.
func (a *Arena) MapPut(h Handle, key, value []byte) error {
	m, err := a.getMap(h)
	if err != nil {
		return err
	}
	if len(value) == 0 {
		delete(m, string(key))
		return nil
	}
	m[string(key)] = append([]byte{}, value...)
	return nil
}

// MapGet returns the value stored under a key, empty if absent.
func (a *Arena) MapGet(h Handle, key []byte) ([]byte, error) {
	m, err := a.getMap(h)
	if err != nil {
		return nil, err
	}
	return append([]byte{}, m[string(key)]...), nil
}

// MapRemove deletes a key and returns the value it had.
func (a *Arena) MapRemove(h Handle, key []byte) ([]byte, error) {
	m, err := a.getMap(h)
	if err != nil {
		return nil, err
	}
	res := append([]byte{}, m[string(key)]...)
	delete(m, string(key))
	return res, nil
}

func (a *Arena) MapContains(h Handle, key []byte) (bool, error) {
	m, err := a.getMap(h)
	if err != nil {
		return false, err
	}
	_, found := m[string(key)]
	return found, nil
}
