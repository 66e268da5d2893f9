// Copyright (c) 2024 Fantom Foundation
//
// Use of this software is governed by the Business Source License included
// in the LICENSE file and at fantom.foundation/bsl11.
//
// Change Date: 2028-4-16
//
// On the date above, in accordance with the Business Source License, use of
// this software will be governed by the GNU Lesser General Public License v3.

// Package managed implements the arena of VM owned values a contract refers
// to by integer handles: big integers, big floats, byte buffers and maps of
// byte buffers.
package managed

import "math"

// Handle identifies a value in an arena.
type Handle = int32

// Statically reserved handles. They are bound in every arena, so contracts
// may use them without allocating.
const (
	ConstHandleBigIntZero       Handle = -10
	ConstHandleCallValueEGLD    Handle = -11
	ConstHandleCallValueESDT    Handle = -12
	ConstHandleBigIntTemporary1 Handle = -13
	ConstHandleBigIntTemporary2 Handle = -14
	ConstHandleBigFloatTemp     Handle = -15
	ConstHandleMBufferEmpty     Handle = -20
	ConstHandleMBufferTemp1     Handle = -25
	ConstHandleMBufferTemp2     Handle = -26
	ConstHandleCallbackClosure  Handle = -60
)

// NewHandleSentinel is the first handle issued by a fresh HandleSource.
// Handles are issued in descending order from here.
const NewHandleSentinel Handle = math.MaxInt32

// HandleSource issues fresh handles. All arenas created within one top
// level transaction share a source, so a handle issued for one context is
// never issued for another one. Not safe for concurrent use.
type HandleSource struct {
	next Handle
}

func NewHandleSource() *HandleSource {
	return &HandleSource{next: NewHandleSentinel}
}

// Next returns a fresh handle.
func (s *HandleSource) Next() Handle {
	res := s.next
	s.next--
	return res
}
