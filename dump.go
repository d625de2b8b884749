// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package ghost

import (
	"errors"
	"fmt"
	"io"
)

// ErrCorrupt indicates that Validate found a broken list invariant.
var ErrCorrupt = errors.New("ghost: corrupt list")

// Validate checks the list invariants under a shared token:
// head, tail and length agree on emptiness; length counts the nodes
// reachable from head; every backward link targets the forward
// predecessor; every node is of the list's brand; and the two halves
// reaching each node sum to its full ownership.
func (l *List[V]) Validate() (err error) {
	shared(l.st, func(t *SharedToken) { err = l.validate() })
	return
}

func (l *List[V]) validate() error {
	if (l.head == nil) != (l.tail == nil) || (l.head == nil) != (l.length == 0) {
		return fmt.Errorf("%w: head=%t tail=%t len=%d", ErrCorrupt, l.head != nil, l.tail != nil, l.length)
	}
	var prev *Ptr[node[V]]
	count := 0
	for fwd := l.head; fwd != nil; count++ {
		if count >= l.length {
			return fmt.Errorf("%w: more than %d nodes reachable", ErrCorrupt, l.length)
		}
		s := fwd.slot()
		if s.cell.b != l.st {
			return fmt.Errorf("%w: node %d has brand #%d", ErrCorrupt, count, s.cell.b.serial)
		}
		n := &s.cell.value
		switch {
		case prev == nil && n.prev != nil:
			return fmt.Errorf("%w: head has a backward link", ErrCorrupt)
		case prev != nil && (n.prev == nil || !n.prev.Same(prev)):
			return fmt.Errorf("%w: node %d backward link does not target node %d", ErrCorrupt, count, count-1)
		}
		bwd := l.tail
		if n.next != nil {
			bwd = view(n.next).prev
		}
		if bwd == nil || !bwd.Same(fwd) {
			return fmt.Errorf("%w: node %d is not reached back from its successor", ErrCorrupt, count)
		}
		if fwd.frac+bwd.frac != s.total {
			return fmt.Errorf("%w: node %d fractions %d+%d of %d", ErrCorrupt, count, fwd.frac, bwd.frac, s.total)
		}
		prev = fwd
		fwd = n.next
	}
	if count != l.length {
		return fmt.Errorf("%w: %d nodes reachable, length %d", ErrCorrupt, count, l.length)
	}
	return nil
}

// Dump writes the link structure of the list to w, one node per line.
// It is a debugging aid with no effect on the list.
func (l *List[V]) Dump(w io.Writer) (err error) {
	shared(l.st, func(t *SharedToken) {
		if _, err = fmt.Fprintf(w, "list brand=#%d len=%d\n", l.st.serial, l.length); err != nil {
			return
		}
		i := 0
		for p := l.head; p != nil; i++ {
			n := view(p)
			bwd := l.tail
			if n.next != nil {
				bwd = view(n.next).prev
			}
			if _, err = fmt.Fprintf(w, "  [%d] %v prev=%s next=%s own=%d+%d/%d\n",
				i, n.value, linkLabel(n.prev, i-1), linkLabel(n.next, i+1), p.frac, fracOf(bwd), p.slot().total); err != nil {
				return
			}
			p = n.next
		}
	})
	return
}

func linkLabel[V any](p *Ptr[node[V]], i int) string {
	if p == nil {
		return "-"
	}
	return fmt.Sprintf("[%d]", i)
}

func fracOf[V any](p *Ptr[node[V]]) uint32 {
	if p == nil {
		return 0
	}
	return p.frac
}
