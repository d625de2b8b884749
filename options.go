// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package ghost

// options configures a List.
type options struct {
	poolSize int
	retag    bool
}

func defaultOptions() options {
	return options{poolSize: defaultPoolSize, retag: true}
}

// Option configures a List created by New.
type Option func(*options)

// WithPoolSize sets the capacity of the ring recycling freed nodes.
// Zero or a negative size disables recycling; a size of one is raised
// to two, the smallest ring. The ring rounds its capacity up to a power
// of two.
func WithPoolSize(n int) Option {
	return func(o *options) { o.poolSize = n }
}

// WithoutRetag makes Append and Prepend refuse lists of another brand
// with ErrIncompatibleBrand instead of retagging their nodes.
func WithoutRetag() Option {
	return func(o *options) { o.retag = false }
}
