// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package ghost

// Kind distinguishes shared (read) from exclusive (read/write) tokens.
type Kind uint8

const (
	// Shared tokens authorize read views. Any number may be live at once.
	Shared Kind = iota
	// Exclusive tokens authorize read and write views. At most one may be
	// live, and never together with a shared token of the same brand.
	Exclusive
)

func (k Kind) String() string {
	switch k {
	case Shared:
		return "shared"
	case Exclusive:
		return "exclusive"
	}
	return "invalid"
}

// Token is the capability presented to read cells of a brand.
// It is implemented by *SharedToken and *ExclusiveToken only.
type Token interface {
	// Brand returns the brand the token was issued for.
	Brand() Brand
	// Kind returns Shared or Exclusive.
	Kind() Kind

	live() *brand
}

// SharedToken authorizes read views of cells of one brand.
// It is valid only inside the body of the WithShared call that issued it.
type SharedToken struct {
	b *brand
}

func (t *SharedToken) Brand() Brand { return Brand{b: t.live()} }

func (t *SharedToken) Kind() Kind { return Shared }

func (t *SharedToken) live() *brand {
	if t == nil || t.b == nil {
		panic("ghost: token used outside its scope")
	}
	return t.b
}

// ExclusiveToken authorizes read and write views of cells of one brand.
// It is valid only inside the body of the WithExclusive call that issued it.
type ExclusiveToken struct {
	b *brand
}

func (t *ExclusiveToken) Brand() Brand { return Brand{b: t.live()} }

func (t *ExclusiveToken) Kind() Kind { return Exclusive }

func (t *ExclusiveToken) live() *brand {
	if t == nil || t.b == nil {
		panic("ghost: token used outside its scope")
	}
	return t.b
}

// check panics unless t is live and was issued for b.
func check(t Token, b *brand) {
	if t.live() != b {
		panic("ghost: token brand mismatch")
	}
}

// WithExclusive issues an exclusive token for b, invokes body with it and
// invalidates the token when body returns or panics.
// Panics if any other token of b is live.
func WithExclusive[R any](b Brand, body func(*ExclusiveToken) R) R {
	st := b.mustState()
	if st.tryAcquire(Exclusive) != nil {
		panic("ghost: brand already borrowed")
	}
	t := &ExclusiveToken{b: st}
	defer func() {
		t.b = nil
		st.release(Exclusive)
	}()
	return body(t)
}

// WithShared issues a shared token for b, invokes body with it and
// invalidates the token when body returns or panics.
// Panics if an exclusive token of b is live.
func WithShared[R any](b Brand, body func(*SharedToken) R) R {
	st := b.mustState()
	if st.tryAcquire(Shared) != nil {
		panic("ghost: brand already borrowed exclusively")
	}
	t := &SharedToken{b: st}
	defer func() {
		t.b = nil
		st.release(Shared)
	}()
	return body(t)
}

// WithToken issues a token of kind k for b and invokes body with it.
func WithToken[R any](b Brand, k Kind, body func(Token) R) R {
	if k == Exclusive {
		return WithExclusive(b, func(t *ExclusiveToken) R { return body(t) })
	}
	return WithShared(b, func(t *SharedToken) R { return body(t) })
}

// TryWithExclusive is the non-blocking form of WithExclusive.
// Returns iox.ErrWouldBlock without invoking body when another token of b is live.
func TryWithExclusive[R any](b Brand, body func(*ExclusiveToken) R) (R, error) {
	st := b.mustState()
	if err := st.tryAcquire(Exclusive); err != nil {
		var zero R
		return zero, err
	}
	t := &ExclusiveToken{b: st}
	defer func() {
		t.b = nil
		st.release(Exclusive)
	}()
	return body(t), nil
}

// TryWithShared is the non-blocking form of WithShared.
// Returns iox.ErrWouldBlock without invoking body when an exclusive token of b is live.
func TryWithShared[R any](b Brand, body func(*SharedToken) R) (R, error) {
	st := b.mustState()
	if err := st.tryAcquire(Shared); err != nil {
		var zero R
		return zero, err
	}
	t := &SharedToken{b: st}
	defer func() {
		t.b = nil
		st.release(Shared)
	}()
	return body(t), nil
}

// exclusive runs f under a fresh exclusive token of st.
func exclusive(st *brand, f func(t *ExclusiveToken)) {
	if st.tryAcquire(Exclusive) != nil {
		panic("ghost: brand already borrowed")
	}
	t := &ExclusiveToken{b: st}
	defer func() {
		t.b = nil
		st.release(Exclusive)
	}()
	f(t)
}

// shared runs f under a fresh shared token of st.
func shared(st *brand, f func(t *SharedToken)) {
	if st.tryAcquire(Shared) != nil {
		panic("ghost: brand already borrowed exclusively")
	}
	t := &SharedToken{b: st}
	defer func() {
		t.b = nil
		st.release(Shared)
	}()
	f(t)
}
