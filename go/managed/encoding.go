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
	"encoding/binary"
	"math/big"

	"github.com/Fantom-foundation/MockVM/go/mockvm"
)

// Lists of managed values are passed to and from contracts as buffers of
// concatenated big-endian 4 byte handles.

const handleSize = 4

// ESDTPaymentSize is the size of one encoded token payment: token id handle,
// 8 byte nonce and amount handle.
const ESDTPaymentSize = handleSize + 8 + handleSize

// ReadHandleList decodes a buffer holding a list of handles.
func (a *Arena) ReadHandleList(h Handle) ([]Handle, error) {
	data, err := a.Buffer(h)
	if err != nil {
		return nil, err
	}
	if len(data)%handleSize != 0 {
		return nil, ErrInvalidSlice
	}
	res := make([]Handle, 0, len(data)/handleSize)
	for i := 0; i < len(data); i += handleSize {
		res = append(res, Handle(binary.BigEndian.Uint32(data[i:])))
	}
	return res, nil
}

// WriteHandleList encodes a list of handles into the given buffer.
func (a *Arena) WriteHandleList(h Handle, handles []Handle) {
	data := make([]byte, 0, len(handles)*handleSize)
	for _, cur := range handles {
		data = binary.BigEndian.AppendUint32(data, uint32(cur))
	}
	a.SetBuffer(h, data)
}

// ReadBufferList returns the contents of all buffers listed in a handle
// list buffer.
func (a *Arena) ReadBufferList(h Handle) ([][]byte, error) {
	handles, err := a.ReadHandleList(h)
	if err != nil {
		return nil, err
	}
	res := make([][]byte, 0, len(handles))
	for _, cur := range handles {
		data, err := a.Buffer(cur)
		if err != nil {
			return nil, err
		}
		res = append(res, data)
	}
	return res, nil
}

// WriteBufferList binds every element to a fresh buffer and writes the
// list of those handles into h.
func (a *Arena) WriteBufferList(h Handle, list [][]byte) {
	handles := make([]Handle, 0, len(list))
	for _, data := range list {
		handles = append(handles, a.NewBuffer(data))
	}
	a.WriteHandleList(h, handles)
}

// WriteESDTPayments encodes token payments into a buffer.
func (a *Arena) WriteESDTPayments(h Handle, payments []mockvm.TokenTransfer) {
	data := make([]byte, 0, len(payments)*ESDTPaymentSize)
	for _, payment := range payments {
		id := a.NewBuffer(payment.TokenIdentifier)
		amount := a.NewBigInt(payment.Value)
		data = binary.BigEndian.AppendUint32(data, uint32(id))
		data = binary.BigEndian.AppendUint64(data, payment.Nonce)
		data = binary.BigEndian.AppendUint32(data, uint32(amount))
	}
	a.SetBuffer(h, data)
}

// ReadESDTPayments decodes token payments from a buffer.
func (a *Arena) ReadESDTPayments(h Handle) ([]mockvm.TokenTransfer, error) {
	data, err := a.Buffer(h)
	if err != nil {
		return nil, err
	}
	if len(data)%ESDTPaymentSize != 0 {
		return nil, ErrInvalidSlice
	}
	res := make([]mockvm.TokenTransfer, 0, len(data)/ESDTPaymentSize)
	for i := 0; i < len(data); i += ESDTPaymentSize {
		id, err := a.Buffer(Handle(binary.BigEndian.Uint32(data[i:])))
		if err != nil {
			return nil, err
		}
		nonce := binary.BigEndian.Uint64(data[i+handleSize:])
		amount, err := a.BigInt(Handle(binary.BigEndian.Uint32(data[i+handleSize+8:])))
		if err != nil {
			return nil, err
		}
		res = append(res, mockvm.TokenTransfer{
			TokenIdentifier: id,
			Nonce:           nonce,
			Value:           new(big.Int).Set(amount),
		})
	}
	return res, nil
}
