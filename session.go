// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package ghost

import (
	"errors"

	"code.hybscloud.com/kont"
)

// ErrSessionInvalidated indicates that the list of a stepping Session was
// modified outside the session between two steps, so the saved cursor
// position can no longer be trusted.
var ErrSessionInvalidated = errors.New("ghost: list modified outside the session")

// cursorDispatcher is the structural interface for cursor operations.
// DispatchCursor never blocks: token acquisition happens before dispatch.
type cursorDispatcher interface {
	DispatchCursor(c navigator) kont.Resumed
}

// cursorHandler implements kont.Handler for cursor effects.
// Value type: passed to evalFrames on the stack, avoiding heap allocation.
type cursorHandler[V, R any] struct {
	c *CursorMut[V]
}

// Dispatch implements kont.Handler via structural interface assertion.
func (h cursorHandler[V, R]) Dispatch(op kont.Operation) (kont.Resumed, bool) {
	cop, ok := op.(cursorDispatcher)
	if !ok {
		panic("ghost: unhandled effect in cursorHandler")
	}
	return cop.DispatchCursor(h.c), true
}

// holdWait acquires an exclusive token of l's brand, waiting with
// iox.Backoff while another token is live, and runs f with a fresh
// cursor bound to it. The token is released when f returns or panics.
func holdWait[V, R any](l *List[V], f func(c *CursorMut[V]) R) R {
	st := l.st
	st.acquireWait(Exclusive)
	t := &ExclusiveToken{b: st}
	defer func() {
		t.b = nil
		st.release(Exclusive)
	}()
	return f(l.CursorMut(t))
}

// Session is a cursor over a list that survives between steps of a
// stepped protocol. Each Advance takes an exclusive token of the list's
// brand for one dispatch only, so other code may use the list between
// steps; any structural change made there invalidates the session.
type Session[V any] struct {
	c       CursorMut[V]
	version uint64
}

// NewSession creates a session positioned before the first element of l.
func NewSession[V any](l *List[V]) *Session[V] {
	return &Session[V]{
		c:       CursorMut[V]{cursor: cursor[V]{l: l, index: -1}},
		version: l.version,
	}
}

// List returns the list the session walks.
func (s *Session[V]) List() *List[V] {
	return s.c.l
}

// Index returns the last known cursor index: -1 before the first
// element, Len() after the last.
func (s *Session[V]) Index() int {
	return s.c.index
}

// step runs f with the session cursor bound to a fresh exclusive token.
// Non-blocking: returns iox.ErrWouldBlock when another token of the
// brand is live.
func (s *Session[V]) step(f func(c *CursorMut[V])) error {
	l := s.c.l
	if err := l.st.tryAcquire(Exclusive); err != nil {
		return err
	}
	t := &ExclusiveToken{b: l.st}
	defer func() {
		t.b = nil
		s.c.t, s.c.x = nil, nil
		l.st.release(Exclusive)
	}()
	if l.version != s.version {
		return ErrSessionInvalidated
	}
	s.c.t, s.c.x = t, t
	f(&s.c)
	s.version = l.version
	return nil
}
