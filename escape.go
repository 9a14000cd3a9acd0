package weburl

import (
	"braces.dev/errtrace"

	"github.com/ghettovoice/weburl/internal/errorutil"
	"github.com/ghettovoice/weburl/internal/grammar"
)

func shouldEscapePathChar(c byte) bool { return !grammar.IsPathSafeChar(c) }

// PathEscape escapes s so that it can be safely placed inside a URL path.
// Each byte outside the path safe set becomes a "%XX" sequence; "/" is kept
// as a segment separator and existing valid escapes pass through unchanged.
func PathEscape(s string) string {
	return grammar.Escape(s, shouldEscapePathChar)
}

// PathUnescape does the inverse transformation of [PathEscape].
// It fails with [ErrInvalidEscape] when any "%" is not followed by
// two hexadecimal digits.
func PathUnescape(s string) (string, error) {
	s2, err := grammar.Unescape(s)
	if err != nil {
		return "", errtrace.Wrap(errorutil.NewWrapperError(ErrInvalidEscape, err))
	}
	return s2, nil
}
