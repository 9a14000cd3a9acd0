package errorutil_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/ghettovoice/weburl/internal/errorutil"
)

const errSentinel errorutil.Error = "sentinel"

func TestNewWrapperError(t *testing.T) {
	t.Parallel()

	errInner := errors.New("inner")

	cases := []struct {
		name    string
		args    []any
		wantMsg string
		wantIs  []error
	}{
		{"no args", nil, "sentinel", []error{errSentinel}},
		{"error arg", []any{errInner}, "sentinel: inner", []error{errSentinel, errInner}},
		{"already wrapped", []any{fmt.Errorf("outer: %w", errSentinel)}, "outer: sentinel", []error{errSentinel}},
		{"string arg", []any{"context"}, "sentinel: context", []error{errSentinel}},
		{"format args", []any{"bad value %q", "x"}, `sentinel: bad value "x"`, []error{errSentinel}},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			t.Parallel()

			err := errorutil.NewWrapperError(errSentinel, c.args...)
			if got := err.Error(); got != c.wantMsg {
				t.Errorf("err.Error() = %q, want %q", got, c.wantMsg)
			}
			for _, target := range c.wantIs {
				if !errors.Is(err, target) {
					t.Errorf("errors.Is(err, %v) = false, want true", target)
				}
			}
		})
	}
}

func TestNewInvalidArgumentError(t *testing.T) {
	t.Parallel()

	err := errorutil.NewInvalidArgumentError("missing %s", "name")
	if !errors.Is(err, errorutil.ErrInvalidArgument) {
		t.Errorf("errors.Is(err, errorutil.ErrInvalidArgument) = false, want true")
	}
	if got, want := err.Error(), "invalid argument: missing name"; got != want {
		t.Errorf("err.Error() = %q, want %q", got, want)
	}
}

type grammarErr string

func (e grammarErr) Error() string { return string(e) }

func (grammarErr) Grammar() bool { return true }

func TestIsGrammarErr(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name string
		err  error
		want bool
	}{
		{"nil", nil, false},
		{"plain", errors.New("qwe"), false},
		{"grammar", grammarErr("bad input"), true},
		{"wrapped grammar", fmt.Errorf("parse: %w", grammarErr("bad input")), true},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			t.Parallel()

			if got := errorutil.IsGrammarErr(c.err); got != c.want {
				t.Errorf("errorutil.IsGrammarErr(%v) = %v, want %v", c.err, got, c.want)
			}
		})
	}
}
