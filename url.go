package weburl

//go:generate go tool errtrace -w .

import (
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"braces.dev/errtrace"

	"github.com/ghettovoice/weburl/internal/constraints"
	"github.com/ghettovoice/weburl/internal/errorutil"
	"github.com/ghettovoice/weburl/internal/grammar"
	"github.com/ghettovoice/weburl/internal/ioutil"
	"github.com/ghettovoice/weburl/internal/util"
)

// URL represents a parsed URL as an immutable value.
//
// The zero value is the empty URL: every component is empty and the
// effective port is 0. Once constructed a URL is never mutated, so any
// number of goroutines may read a shared value without synchronization.
type URL struct {
	scheme   string // lower case
	userInfo string // verbatim
	host     string // IPv6 literal body is stored without brackets
	ipv6     bool
	port     string // port as written, "" when absent
	portNum  uint16
	path     string // path as written, still escaped
	pathDec  string
	query    string // verbatim
	fragment string // verbatim
}

// Parse parses a URL from the given input src (string or []byte).
//
// The input must match the form
//
//	scheme:[//[user-info@]host[:port]][path][?query][#fragment]
//
// where the scheme is mandatory. There is no partial success: on failure
// Parse returns a nil URL and an error matching [ErrInvalidURL]; when the
// failure is a malformed percent escape in the path, the error matches
// [ErrInvalidEscape] as well.
func Parse[T constraints.Byteseq](src T) (*URL, error) {
	p, err := grammar.ParseURL(src)
	if err != nil {
		return nil, errtrace.Wrap(newInvalidURLErr(err))
	}
	return &URL{
		scheme:   p.Scheme,
		userInfo: p.UserInfo,
		host:     p.Host,
		ipv6:     p.IPv6,
		port:     p.Port,
		portNum:  p.PortNum,
		path:     p.Path,
		pathDec:  p.PathDec,
		query:    p.Query,
		fragment: p.Fragment,
	}, nil
}

// MustParse is like [Parse] but panics when the input cannot be parsed.
func MustParse[T constraints.Byteseq](src T) *URL {
	return util.Must2(Parse(src))
}

func newInvalidURLErr(err error) error {
	if errors.Is(err, grammar.ErrBadEscape) {
		err = errorutil.NewWrapperError(ErrInvalidEscape, err)
	}
	return errorutil.NewWrapperError(ErrInvalidURL, err) //errtrace:skip
}

// Protocol returns the URL scheme in lower case.
func (u *URL) Protocol() string {
	if u == nil {
		return ""
	}
	return u.scheme
}

// UserInfo returns the user information part of the URL authority,
// everything before the last "@", exactly as written.
func (u *URL) UserInfo() string {
	if u == nil {
		return ""
	}
	return u.userInfo
}

// Host returns the URL host. An IPv6 literal is returned without brackets,
// see [URL.IsIPv6].
func (u *URL) Host() string {
	if u == nil {
		return ""
	}
	return u.host
}

// IsIPv6 reports whether the host is an IPv6 literal.
func (u *URL) IsIPv6() bool {
	return u != nil && u.ipv6
}

// Port returns the effective port of the URL: the explicit port when
// present, otherwise the default port of the protocol, otherwise 0.
// See [DefaultPort].
func (u *URL) Port() uint16 {
	if u == nil {
		return 0
	}
	if u.port != "" {
		return u.portNum
	}
	return DefaultPort(u.scheme)
}

// Path returns the decoded URL path.
// The escaped form is available through [URL.Render] with [ComponentPath].
func (u *URL) Path() string {
	if u == nil {
		return ""
	}
	return u.pathDec
}

// Filename returns the part of the decoded path after the last "/",
// "" when the path is empty or ends with "/".
func (u *URL) Filename() string {
	if u == nil {
		return ""
	}
	if i := strings.LastIndexByte(u.pathDec, '/'); i >= 0 {
		return u.pathDec[i+1:]
	}
	return u.pathDec
}

// Query returns the URL query without the leading "?", exactly as written.
func (u *URL) Query() string {
	if u == nil {
		return ""
	}
	return u.query
}

// Fragment returns the URL fragment without the leading "#", exactly as written.
func (u *URL) Fragment() string {
	if u == nil {
		return ""
	}
	return u.fragment
}

// RenderTo writes the URL components selected by opts to the provided writer.
//
// Components come out in the fixed order protocol, user info, host, port,
// path, query, fragment; each is emitted only when selected and non-empty,
// together with the punctuation it owns. Dropping a component from the set
// never leaves orphaned punctuation behind. The port comes out exactly as
// written in the parsed input, a default port is never synthesized.
func (u *URL) RenderTo(w io.Writer, opts *RenderOptions) (num int, err error) {
	if u == nil {
		return 0, nil
	}

	cs := opts.components()
	userPart := cs.Has(ComponentUserInfo) && u.userInfo != ""
	hostPart := cs.Has(ComponentHost) && u.host != ""

	cw := ioutil.GetCountingWriter(w)
	defer ioutil.FreeCountingWriter(cw)
	if cs.Has(ComponentProtocol) && u.scheme != "" {
		cw.Fprint(u.scheme, ":")
		if userPart || hostPart {
			cw.Fprint("//")
		}
	}
	if userPart {
		cw.Fprint(u.userInfo)
		if hostPart {
			cw.Fprint("@")
		}
	}
	if hostPart {
		if u.ipv6 {
			cw.Fprint("[", u.host, "]")
		} else {
			cw.Fprint(u.host)
		}
	}
	if cs.Has(ComponentPort) && u.port != "" {
		cw.Fprint(":", u.port)
	}
	if cs.Has(ComponentPath) && u.path != "" {
		cw.Fprint(u.path)
	}
	if cs.Has(ComponentQuery) && u.query != "" {
		cw.Fprint("?", u.query)
	}
	if cs.Has(ComponentFragment) && u.fragment != "" {
		cw.Fprint("#", u.fragment)
	}
	return errtrace.Wrap2(cw.Result())
}

// Render returns the string representation of the URL components selected by opts.
func (u *URL) Render(opts *RenderOptions) string {
	if u == nil {
		return ""
	}
	sb := util.GetStringBuilder()
	defer util.FreeStringBuilder(sb)
	u.RenderTo(sb, opts) //nolint:errcheck
	return sb.String()
}

// String returns the string representation of the URL.
func (u *URL) String() string {
	if u == nil {
		return ""
	}
	return u.Render(nil)
}

// Format implements fmt.Formatter for custom formatting of the URL.
func (u *URL) Format(f fmt.State, verb rune) {
	switch verb {
	case 's':
		if f.Flag('+') {
			u.RenderTo(f, nil) //nolint:errcheck
			return
		}
		fmt.Fprint(f, u.String())
		return
	case 'q':
		fmt.Fprint(f, strconv.Quote(u.String()))
		return
	default:
		type hideMethods URL
		type URL hideMethods
		fmt.Fprintf(f, fmt.FormatString(f, verb), (*URL)(u))
		return
	}
}

// Equal compares this URL with another for equality, accepting URL and *URL.
// Two URLs are equal when all seven components match exactly.
// Two zero URLs are equal.
func (u *URL) Equal(val any) bool {
	var other *URL
	switch v := val.(type) {
	case URL:
		other = &v
	case *URL:
		other = v
	default:
		return false
	}

	if u == other {
		return true
	} else if u == nil || other == nil {
		return false
	}

	return u.scheme == other.scheme &&
		u.userInfo == other.userInfo &&
		u.host == other.host &&
		u.port == other.port &&
		u.path == other.path &&
		u.query == other.query &&
		u.fragment == other.fragment
}

// Compare compares two URLs lexicographically over the component tuple
// (protocol, user info, host, port, path, query, fragment), short-circuiting
// on the first difference. The port and the path compare in their written
// form. The result is a strict total order suitable for sorting and for
// ordered containers:
//
//	-1 when u sorts before other
//	 0 when u equals other
//	+1 when u sorts after other
//
// A nil URL sorts before any non-nil URL.
func (u *URL) Compare(other *URL) int {
	if u == other {
		return 0
	} else if u == nil {
		return -1
	} else if other == nil {
		return 1
	}

	if c := strings.Compare(u.scheme, other.scheme); c != 0 {
		return c
	}
	if c := strings.Compare(u.userInfo, other.userInfo); c != 0 {
		return c
	}
	if c := strings.Compare(u.host, other.host); c != 0 {
		return c
	}
	if c := strings.Compare(u.port, other.port); c != 0 {
		return c
	}
	if c := strings.Compare(u.path, other.path); c != 0 {
		return c
	}
	if c := strings.Compare(u.query, other.query); c != 0 {
		return c
	}
	return strings.Compare(u.fragment, other.fragment)
}

// Clone returns a copy of the URL.
func (u *URL) Clone() *URL {
	if u == nil {
		return nil
	}
	u2 := *u
	return &u2
}

// IsValid checks whether the URL is syntactically valid:
// the scheme is well-formed and the host, when present, is a registered
// name, an IPv4 literal or an IPv6 literal.
func (u *URL) IsValid() bool {
	return u != nil && grammar.IsScheme(u.scheme) && (u.host == "" || grammar.IsHost(u.host))
}

// IsZero checks whether the URL is empty.
func (u *URL) IsZero() bool {
	return u == nil || *u == (URL{})
}

// MarshalText implements [encoding.TextMarshaler].
func (u *URL) MarshalText() ([]byte, error) {
	return []byte(u.String()), nil
}

// UnmarshalText implements [encoding.TextUnmarshaler].
// Empty text yields the zero URL.
func (u *URL) UnmarshalText(text []byte) error {
	u1, err := Parse(text)
	if err != nil {
		*u = URL{}
		if errors.Is(err, grammar.ErrEmptyInput) {
			return nil
		}
		return errtrace.Wrap(err)
	}
	*u = *u1
	return nil
}
