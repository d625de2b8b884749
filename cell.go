// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package ghost

// Cell holds one value that is accessible only through a live token of
// the cell's brand. Read views need any token kind; write views need an
// exclusive token.
//
// A view obtained from a cell must not be retained past the scope of the
// token that produced it.
type Cell[T any] struct {
	b     *brand
	value T
}

// NewCell creates a cell branded with b.
// Creating a cell requires no token: nothing else can reach it yet.
func NewCell[T any](b Brand, value T) *Cell[T] {
	return &Cell[T]{b: b.mustState(), value: value}
}

// Brand returns the brand of the cell.
func (c *Cell[T]) Brand() Brand {
	return Brand{b: c.b}
}

// Get returns a copy of the value. Panics unless t is live and of the cell's brand.
func (c *Cell[T]) Get(t Token) T {
	check(t, c.b)
	return c.value
}

// GetMut returns a write view of the value. The view is valid while t
// is live and, for a cell behind a Ptr, until the cell is freed.
// Panics unless t is live and of the cell's brand.
func (c *Cell[T]) GetMut(t *ExclusiveToken) *T {
	check(t, c.b)
	return &c.value
}

// Set replaces the value and returns the previous one.
func (c *Cell[T]) Set(t *ExclusiveToken, value T) T {
	check(t, c.b)
	old := c.value
	c.value = value
	return old
}
