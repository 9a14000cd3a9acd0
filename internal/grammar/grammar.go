// Package grammar implements the URL grammar: a single-pass scanner,
// character class rules and the percent-escape codec.
package grammar

//go:generate go tool errtrace -w .

import (
	"net"
	"strings"

	"github.com/ghettovoice/weburl/internal/constraints"
	"github.com/ghettovoice/weburl/internal/errorutil"
)

// Error is a grammar error.
type Error string

func (e Error) Error() string { return string(e) }

func (Error) Grammar() bool { return true }

const (
	ErrEmptyInput     Error = "empty input"
	ErrMalformedInput Error = "malformed input"
	ErrBadEscape      Error = "malformed escape"
)

func newMalformedInputErr(args ...any) error {
	return errorutil.NewWrapperError(ErrMalformedInput, args...) //errtrace:skip
}

func newBadEscapeErr(args ...any) error {
	return errorutil.NewWrapperError(ErrBadEscape, args...) //errtrace:skip
}

// IsScheme reports whether s is a valid URL scheme:
// a letter followed by any number of letters, digits, "+", "-" or ".".
func IsScheme[T constraints.Byteseq](s T) bool {
	if len(s) == 0 || !IsAlphaChar(s[0]) {
		return false
	}
	for i := 1; i < len(s); i++ {
		if !IsSchemeChar(s[i]) {
			return false
		}
	}
	return true
}

// IsHost reports whether s is a valid unbracketed host:
// a registered name, an IPv4 literal or an IPv6 literal.
func IsHost[T constraints.Byteseq](s T) bool {
	if len(s) == 0 {
		return false
	}
	str := string(s)
	if strings.ContainsRune(str, ':') {
		return net.ParseIP(str) != nil
	}
	for i := 0; i < len(str); i++ {
		if !IsHostChar(str[i]) {
			return false
		}
	}
	return true
}
