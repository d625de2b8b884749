// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package ghost

import (
	"code.hybscloud.com/atomix"
	"code.hybscloud.com/iox"
)

// Guard word layout: the low 16 bits count live shared tokens,
// a live exclusive token sets exclusiveUnit.
const (
	exclusiveUnit uint32 = 1 << 16
	sharedUnit    uint32 = 1
	sharedMax            = exclusiveUnit - 1
)

// brand is the shared state behind a Brand handle.
type brand struct {
	serial Serial
	guard  atomix.Uint32
}

// Brand is an unforgeable identity scoping a family of cells.
// Two brands compare equal only if they come from the same NewBrand call.
// The zero Brand is invalid.
type Brand struct {
	b *brand
}

// NewBrand returns a brand distinct from every other brand of the process.
func NewBrand() Brand {
	return Brand{b: &brand{serial: nextSerial()}}
}

// Serial returns the serial number assigned to the brand.
func (b Brand) Serial() Serial {
	return b.mustState().serial
}

// IsZero reports whether b is the invalid zero Brand.
func (b Brand) IsZero() bool {
	return b.b == nil
}

func (b Brand) mustState() *brand {
	if b.b == nil {
		panic("ghost: use of zero Brand")
	}
	return b.b
}

// tryAcquire registers a token of kind k on the guard word.
// Non-blocking: returns iox.ErrWouldBlock when a token of a conflicting
// kind is live. The word only changes on success, so a failed attempt is
// never observed by other acquirers.
func (b *brand) tryAcquire(k Kind) error {
	for {
		v := b.guard.Load()
		next := v + sharedUnit
		switch {
		case k == Exclusive && v != 0:
			return iox.ErrWouldBlock
		case k == Exclusive:
			next = exclusiveUnit
		case v >= exclusiveUnit || v == sharedMax:
			return iox.ErrWouldBlock
		}
		if b.guard.CompareAndSwap(v, next) {
			return nil
		}
	}
}

// acquireWait blocks until a token of kind k can be registered,
// backing off on iox.ErrWouldBlock with iox.Backoff.
func (b *brand) acquireWait(k Kind) {
	var bo iox.Backoff
	for b.tryAcquire(k) != nil {
		bo.Wait()
	}
}

// release unregisters a token of kind k.
func (b *brand) release(k Kind) {
	if k == Exclusive {
		b.guard.Sub(exclusiveUnit)
		return
	}
	b.guard.Sub(sharedUnit)
}
