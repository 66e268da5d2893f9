// Copyright (c) 2024 Fantom Foundation
//
// Use of this software is governed by the Business Source License included
// in the LICENSE file and at fantom.foundation/bsl11.
//
// Change Date: 2028-4-16
//
// On the date above, in accordance with the Business Source License, use of
// this software will be governed by the GNU Lesser General Public License v3.

package native

import (
	"encoding/binary"

	"github.com/Fantom-foundation/MockVM/go/mockvm"
	"github.com/Fantom-foundation/MockVM/go/vmhooks"
)

// Env is what a native endpoint works with: the hooks and a scratch area
// in the linear memory of its instance for passing bytes to them.
type Env struct {
	hooks    vmhooks.VMHooks
	instance *Instance
	next     uint32
}

func (e *Env) Hooks() vmhooks.VMHooks {
	return e.hooks
}

// alloc reserves n bytes of memory, growing it when needed.
func (e *Env) alloc(n int) int32 {
	offset := e.next
	end := uint64(offset) + uint64(n)
	if missing := int64(end) - int64(len(e.instance.memory)); missing > 0 {
		pages := (missing + PageSize - 1) / PageSize
		if err := e.instance.MemGrow(uint32(pages)); err != nil {
			panic(&vmhooks.EarlyExit{
				Breakpoint: mockvm.BreakpointMemoryLimit,
				Status:     mockvm.ExecutionFailed,
				Message:    err.Error(),
			})
		}
	}
	e.next = uint32(end)
	return int32(offset)
}

// Write copies data into memory and returns its location.
func (e *Env) Write(data []byte) (offset int32, length int32) {
	offset = e.alloc(len(data))
	copy(e.instance.memory[offset:], data)
	return offset, int32(len(data))
}

// WriteString is Write for strings.
func (e *Env) WriteString(data string) (offset int32, length int32) {
	return e.Write([]byte(data))
}

// Read returns a copy of a memory range.
func (e *Env) Read(offset, length int32) []byte {
	data, err := e.instance.MemLoad(uint32(offset), uint32(length))
	if err != nil {
		panic(&vmhooks.EarlyExit{
			Breakpoint: mockvm.BreakpointExecutionFailed,
			Status:     mockvm.ExecutionFailed,
			Message:    vmhooks.ErrBadBounds.Error(),
		})
	}
	return data
}

// NewBuffer creates a managed buffer holding data.
func (e *Env) NewBuffer(data []byte) int32 {
	return e.hooks.MBufferNewFromBytes(e.Write(data))
}

// Bytes returns the content of a managed buffer.
func (e *Env) Bytes(handle int32) []byte {
	length := e.hooks.MBufferGetLength(handle)
	offset := e.alloc(int(length))
	e.hooks.MBufferGetBytes(handle, offset)
	return e.Read(offset, length)
}

// NewBufferList creates a managed buffer holding a list of new buffers, the
// encoding of argument and result lists.
func (e *Env) NewBufferList(items ...[]byte) int32 {
	list := e.hooks.MBufferNew()
	for _, item := range items {
		offset, length := e.Write(binary.BigEndian.AppendUint32(nil, uint32(e.NewBuffer(item))))
		e.hooks.MBufferAppendBytes(list, offset, length)
	}
	return list
}

// SignalError aborts the endpoint with a user error.
func (e *Env) SignalError(message string) {
	e.hooks.SignalError(e.WriteString(message))
}

// Finish appends a return value.
func (e *Env) Finish(data []byte) {
	e.hooks.Finish(e.Write(data))
}

// Argument returns the raw bytes of an argument.
func (e *Env) Argument(id int32) []byte {
	length := e.hooks.GetArgumentLength(id)
	offset := e.alloc(int(length))
	e.hooks.GetArgument(id, offset)
	return e.Read(offset, length)
}

// BufferList returns the contents of the buffers listed in a managed
// buffer list.
func (e *Env) BufferList(handle int32) [][]byte {
	encoded := e.Bytes(handle)
	res := make([][]byte, 0, len(encoded)/4)
	for i := 0; i+4 <= len(encoded); i += 4 {
		res = append(res, e.Bytes(int32(binary.BigEndian.Uint32(encoded[i:]))))
	}
	return res
}
