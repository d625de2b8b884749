// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package ghost

import (
	"code.hybscloud.com/kont"
)

// Exec runs a Cont-world cursor protocol over l with one exclusive token
// held for the whole run. Waits with adaptive backoff (iox.Backoff) while
// another token of the brand is live, without spawning goroutines.
func Exec[V, R any](l *List[V], protocol kont.Eff[R]) R {
	return holdWait(l, func(c *CursorMut[V]) R {
		h := cursorHandler[V, R]{c: c}
		return kont.Handle(protocol, h)
	})
}

// ExecExpr runs an Expr-world cursor protocol over l with one exclusive
// token held for the whole run. Waits with adaptive backoff (iox.Backoff)
// while another token of the brand is live, without spawning goroutines.
func ExecExpr[V, R any](l *List[V], protocol kont.Expr[R]) R {
	return holdWait(l, func(c *CursorMut[V]) R {
		h := cursorHandler[V, R]{c: c}
		return kont.HandleExpr(protocol, h)
	})
}
