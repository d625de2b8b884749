// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package main

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"code.hybscloud.com/ghost"
	"code.hybscloud.com/kont"
)

// ErrBadOp indicates a script operation that could not be parsed.
var ErrBadOp = errors.New("ghostlist: bad operation")

// opSpec describes one script operation: whether it takes an argument.
var opSpec = map[string]bool{
	"push_back":     true,
	"push_front":    true,
	"pop_front":     false,
	"pop_back":      false,
	"next":          false,
	"prev":          false,
	"insert_after":  true,
	"insert_before": true,
	"remove":        false,
	"current":       false,
	"clear":         false,
	"append":        true,
}

// op is one parsed script operation.
type op struct {
	name string
	arg  string
}

func (o op) String() string {
	if o.arg == "" {
		return o.name
	}
	return o.name + ":" + o.arg
}

// parseOps parses name or name:arg tokens.
func parseOps(args []string) ([]op, error) {
	ops := make([]op, 0, len(args))
	for _, a := range args {
		name, arg, hasArg := strings.Cut(a, ":")
		needs, known := opSpec[name]
		switch {
		case !known:
			return nil, fmt.Errorf("%w: unknown %q", ErrBadOp, name)
		case needs && !hasArg:
			return nil, fmt.Errorf("%w: %s needs an argument", ErrBadOp, name)
		case !needs && hasArg:
			return nil, fmt.Errorf("%w: %s takes no argument", ErrBadOp, name)
		}
		ops = append(ops, op{name: name, arg: arg})
	}
	return ops, nil
}

func newRunCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "run OP...",
		Short: "Execute list and cursor operations",
		Long: `Execute operations left to right on an empty list of strings.

List operations: push_back:x push_front:x pop_front pop_back clear
                 append:x,y,... (splices a list of another brand)
Cursor operations: next prev insert_after:x insert_before:x remove current

The cursor starts before the first element. List operations reset it
there; cursor operations keep their position between steps.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ops, err := parseOps(args)
			if err != nil {
				return err
			}
			s := newScript(cmd.OutOrStdout(), listOptions(a.cfg)...)
			for _, o := range ops {
				if err := s.exec(o); err != nil {
					return fmt.Errorf("%s: %w", o, err)
				}
			}
			return s.finish(a.cfg.GetBool(cfgKeyDump))
		},
	}
	cmd.Flags().Bool("dump", false, "print the link structure of the final list")
	cmd.Flags().Int("pool-size", defaultPoolSize, "capacity of the node recycling ring, 0 disables it")
	cmd.Flags().Bool("retag", true, "allow appending lists of another brand")

	cmd.PreRunE = func(cmd *cobra.Command, args []string) error {
		// Flags set on the command line override ghostlist.yaml.
		for key, flag := range map[string]string{
			cfgKeyDump:     "dump",
			cfgKeyPoolSize: "pool-size",
			cfgKeyRetag:    "retag",
		} {
			if err := a.cfg.BindPFlag(key, cmd.Flags().Lookup(flag)); err != nil {
				return err
			}
		}
		return nil
	}
	return cmd
}

// script is the state of one run: the list, the options used for
// auxiliary lists, and the stepping session that carries the cursor.
type script struct {
	out  io.Writer
	opts []ghost.Option
	list *ghost.List[string]
	sess *ghost.Session[string]
}

func newScript(out io.Writer, opts ...ghost.Option) *script {
	l := ghost.New[string](ghost.NewBrand(), opts...)
	return &script{out: out, opts: opts, list: l, sess: ghost.NewSession(l)}
}

func (s *script) exec(o op) error {
	switch o.name {
	case "push_back":
		s.list.PushBack(o.arg)
	case "push_front":
		s.list.PushFront(o.arg)
	case "pop_front":
		s.print(s.list.PopFront())
	case "pop_back":
		s.print(s.list.PopBack())
	case "clear":
		s.list.Clear()
	case "append":
		other := ghost.New[string](ghost.NewBrand(), s.opts...)
		for v := range strings.SplitSeq(o.arg, ",") {
			other.PushBack(v)
		}
		if err := s.list.Append(other); err != nil {
			return err
		}
	case "next":
		_, err := step(s.sess, ghost.ExprMoveNextBind(func(ok bool) kont.Expr[bool] {
			return kont.ExprReturn(ok)
		}))
		return err
	case "prev":
		_, err := step(s.sess, ghost.ExprMovePrevBind(func(ok bool) kont.Expr[bool] {
			return kont.ExprReturn(ok)
		}))
		return err
	case "insert_after":
		_, err := step(s.sess, ghost.ExprInsertAfterThen(o.arg, kont.ExprReturn(struct{}{})))
		return err
	case "insert_before":
		_, err := step(s.sess, ghost.ExprInsertBeforeThen(o.arg, kont.ExprReturn(struct{}{})))
		return err
	case "remove":
		return s.printEither(step(s.sess, ghost.ExprRemoveBind[string](either)))
	case "current":
		return s.printEither(step(s.sess, ghost.ExprCurrentBind[string](either)))
	}
	// List operations invalidate the session; start a fresh one.
	s.sess = ghost.NewSession(s.list)
	return nil
}

func either(e kont.Either[error, string]) kont.Expr[kont.Either[error, string]] {
	return kont.ExprReturn(e)
}

// step drives one cursor protocol on the session to completion.
func step[R any](sess *ghost.Session[string], protocol kont.Expr[R]) (R, error) {
	result, susp := ghost.Step(protocol)
	for susp != nil {
		var err error
		result, susp, err = ghost.Advance(sess, susp)
		if err != nil {
			susp.Discard()
			return result, err
		}
	}
	return result, nil
}

func (s *script) print(v string, ok bool) {
	if !ok {
		fmt.Fprintln(s.out, "(empty)")
		return
	}
	fmt.Fprintln(s.out, v)
}

func (s *script) printEither(e kont.Either[error, string], err error) error {
	if err != nil {
		return err
	}
	if v, ok := e.GetRight(); ok {
		s.print(v, true)
		return nil
	}
	s.print("", false)
	return nil
}

// finish prints the final list and, when dump is set, its link structure.
func (s *script) finish(dump bool) error {
	items := ghost.WithShared(s.list.Brand(), func(t *ghost.SharedToken) []string {
		var items []string
		for v := range s.list.Values(t) {
			items = append(items, v)
		}
		return items
	})
	fmt.Fprintf(s.out, "[%s]\n", strings.Join(items, " "))
	if dump {
		return s.list.Dump(s.out)
	}
	return nil
}
