package weburl

import "github.com/ghettovoice/weburl/internal/errorutil"

// Parse errors.
const (
	ErrInvalidArgument = errorutil.ErrInvalidArgument

	// ErrInvalidURL is returned when an input does not match the URL grammar.
	ErrInvalidURL Error = "invalid url"
	// ErrInvalidEscape is returned when a percent escape is malformed.
	// Parse failures caused by a bad escape match both [ErrInvalidEscape]
	// and [ErrInvalidURL].
	ErrInvalidEscape Error = "invalid escape"
)

// Error represents a URL error.
// See [errorutil.Error].
type Error = errorutil.Error

// NewInvalidArgumentError creates a new error with [ErrInvalidArgument] or
// wraps provided error with [ErrInvalidArgument].
func NewInvalidArgumentError(args ...any) error {
	return errorutil.NewInvalidArgumentError(args...) //errtrace:skip
}
