// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package ghost

import (
	"code.hybscloud.com/kont"
)

// MoveNextBind advances the cursor and passes whether it landed on an
// element to f. Fuses Perform(MoveNext{}) + Bind.
func MoveNextBind[B any](f func(bool) kont.Eff[B]) kont.Eff[B] {
	return kont.Bind(kont.Perform(MoveNext{}), f)
}

// MovePrevBind moves the cursor back and passes whether it landed on an
// element to f. Fuses Perform(MovePrev{}) + Bind.
func MovePrevBind[B any](f func(bool) kont.Eff[B]) kont.Eff[B] {
	return kont.Bind(kont.Perform(MovePrev{}), f)
}

// CurrentBind reads the current element and passes it to f.
// Fuses Perform(Current[V]{}) + Bind.
func CurrentBind[V, B any](f func(kont.Either[error, V]) kont.Eff[B]) kont.Eff[B] {
	return kont.Bind(kont.Perform(Current[V]{}), f)
}

// RemoveBind unlinks the current element and passes it to f.
// Fuses Perform(RemoveCurrent[V]{}) + Bind.
func RemoveBind[V, B any](f func(kont.Either[error, V]) kont.Eff[B]) kont.Eff[B] {
	return kont.Bind(kont.Perform(RemoveCurrent[V]{}), f)
}

// InsertAfterThen inserts v after the cursor and continues with next.
// Fuses Perform(InsertAfter[V]{Value: v}) + Then.
func InsertAfterThen[V, B any](v V, next kont.Eff[B]) kont.Eff[B] {
	return kont.Then(kont.Perform(InsertAfter[V]{Value: v}), next)
}

// InsertBeforeThen inserts v before the cursor and continues with next.
// Fuses Perform(InsertBefore[V]{Value: v}) + Then.
func InsertBeforeThen[V, B any](v V, next kont.Eff[B]) kont.Eff[B] {
	return kont.Then(kont.Perform(InsertBefore[V]{Value: v}), next)
}
