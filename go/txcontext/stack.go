// Copyright (c) 2024 Fantom Foundation
//
// Use of this software is governed by the Business Source License included
// in the LICENSE file and at fantom.foundation/bsl11.
//
// Change Date: 2028-4-16
//
// On the date above, in accordance with the Business Source License, use of
// this software will be governed by the GNU Lesser General Public License v3.

package txcontext

import "fmt"

// Stack is the LIFO of the active contexts of one transaction. Host
// functions have no parameter through which the current context could be
// passed, so they look it up on the stack of the transaction they serve.
// A stack is used by a single goroutine at a time.
type Stack struct {
	frames []*TxContext
	dummy  *TxContext
}

func NewStack() *Stack {
	return &Stack{}
}

// Push makes the given context the active one.
func (s *Stack) Push(ctx *TxContext) {
	ctx.SetDepth(len(s.frames))
	s.frames = append(s.frames, ctx)
}

// Pop removes the active context, which must be the given one. A mismatch
// is an internal error of the VM and causes a panic.
func (s *Stack) Pop(expected *TxContext) *TxContext {
	if len(s.frames) == 0 {
		panic("context stack underflow")
	}
	top := s.frames[len(s.frames)-1]
	if top != expected {
		panic(fmt.Sprintf("context stack imbalance at depth %d", len(s.frames)-1))
	}
	s.frames[len(s.frames)-1] = nil
	s.frames = s.frames[:len(s.frames)-1]
	return top
}

// Peek returns the active context. Outside of any invocation a dummy
// context is returned.
func (s *Stack) Peek() *TxContext {
	if len(s.frames) == 0 {
		if s.dummy == nil {
			s.dummy = Dummy()
		}
		return s.dummy
	}
	return s.frames[len(s.frames)-1]
}

func (s *Stack) Depth() int {
	return len(s.frames)
}
