// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package ghost

import (
	"code.hybscloud.com/kont"
)

// Pre-allocated erased operations and frames to eliminate heap escapes
// when boxing empty structs into any/kont.Frame during Expr-world execution.
var (
	exprReturnFrame kont.Frame  = kont.ReturnFrame{}
	exprMoveNext    kont.Erased = MoveNext{}
	exprMovePrev    kont.Erased = MovePrev{}
)

// identityResume is the identity resume function for EffectFrame construction.
// Named function produces a static function value, consistent with kont convention.
func identityResume(v kont.Erased) kont.Erased { return v }

func bindUnwind[T, B any](data, _, _ kont.Erased, current kont.Erased) (kont.Erased, kont.Frame) {
	f := data.(func(T) kont.Expr[B])
	result := f(current.(T))
	return kont.Erased(result.Value), result.Frame
}

// exprPerformBind performs op and passes its resumption value to f.
func exprPerformBind[T, B any](op kont.Erased, f func(T) kont.Expr[B]) kont.Expr[B] {
	bf := kont.AcquireUnwindFrame()
	bf.Data1 = f
	bf.Unwind = bindUnwind[T, B]
	ef := kont.AcquireEffectFrame()
	ef.Operation = op
	ef.Resume = identityResume
	ef.Next = bf
	return kont.ExprSuspend[B](ef)
}

// exprPerformThen performs op, discards its resumption value and
// continues with next.
func exprPerformThen[B any](op kont.Erased, next kont.Expr[B]) kont.Expr[B] {
	tf := kont.AcquireThenFrame()
	tf.Second = kont.Expr[kont.Erased]{Value: kont.Erased(next.Value), Frame: next.Frame}
	tf.Next = exprReturnFrame
	ef := kont.AcquireEffectFrame()
	ef.Operation = op
	ef.Resume = identityResume
	ef.Next = tf
	return kont.ExprSuspend[B](ef)
}

// ExprMoveNextBind advances the cursor and passes whether it landed on an
// element to f. Fuses ExprPerform(MoveNext{}) + ExprBind.
func ExprMoveNextBind[B any](f func(bool) kont.Expr[B]) kont.Expr[B] {
	return exprPerformBind(exprMoveNext, f)
}

// ExprMovePrevBind moves the cursor back and passes whether it landed on
// an element to f. Fuses ExprPerform(MovePrev{}) + ExprBind.
func ExprMovePrevBind[B any](f func(bool) kont.Expr[B]) kont.Expr[B] {
	return exprPerformBind(exprMovePrev, f)
}

// ExprCurrentBind reads the current element and passes it to f.
// Fuses ExprPerform(Current[V]{}) + ExprBind.
func ExprCurrentBind[V, B any](f func(kont.Either[error, V]) kont.Expr[B]) kont.Expr[B] {
	return exprPerformBind(Current[V]{}, f)
}

// ExprRemoveBind unlinks the current element and passes it to f.
// Fuses ExprPerform(RemoveCurrent[V]{}) + ExprBind.
func ExprRemoveBind[V, B any](f func(kont.Either[error, V]) kont.Expr[B]) kont.Expr[B] {
	return exprPerformBind(RemoveCurrent[V]{}, f)
}

// ExprInsertAfterThen inserts v after the cursor and continues with next.
// Fuses ExprPerform(InsertAfter[V]{Value: v}) + ExprThen.
func ExprInsertAfterThen[V, B any](v V, next kont.Expr[B]) kont.Expr[B] {
	return exprPerformThen(InsertAfter[V]{Value: v}, next)
}

// ExprInsertBeforeThen inserts v before the cursor and continues with next.
// Fuses ExprPerform(InsertBefore[V]{Value: v}) + ExprThen.
func ExprInsertBeforeThen[V, B any](v V, next kont.Expr[B]) kont.Expr[B] {
	return exprPerformThen(InsertBefore[V]{Value: v}, next)
}
