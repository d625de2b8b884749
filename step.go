// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package ghost

import (
	"code.hybscloud.com/kont"
)

// Step evaluates a cursor protocol until the first effect suspension.
// Returns (result, nil) on completion, or (zero, suspension) if pending.
func Step[R any](protocol kont.Expr[R]) (R, *kont.Suspension[R]) {
	return kont.StepExpr(protocol)
}

// Advance dispatches the suspended cursor operation on the session.
// Advance is non-blocking: it returns iox.ErrWouldBlock when a token of
// the list's brand is held elsewhere, and ErrSessionInvalidated when the
// list changed since the previous step.
//
// On success (nil error), the suspension is consumed and the protocol
// advances to the next effect or completion.
// On error, the suspension is unconsumed; after iox.ErrWouldBlock it may
// be retried once the token is released.
func Advance[V, R any](s *Session[V], susp *kont.Suspension[R]) (R, *kont.Suspension[R], error) {
	cop, ok := susp.Op().(cursorDispatcher)
	if !ok {
		panic("ghost: unhandled effect in Advance")
	}
	var v kont.Resumed
	if err := s.step(func(c *CursorMut[V]) { v = cop.DispatchCursor(c) }); err != nil {
		var zero R
		return zero, susp, err
	}
	result, next := susp.Resume(v)
	return result, next, nil
}
