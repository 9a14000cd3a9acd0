package grammar

import (
	"net"
	"strconv"
	"strings"

	"braces.dev/errtrace"

	"github.com/ghettovoice/weburl/internal/constraints"
	"github.com/ghettovoice/weburl/internal/util"
)

// Parts holds URL components split out by [ParseURL].
// The scheme is folded to lower case, the host is stored without
// IPv6 brackets, all other components keep their written form.
type Parts struct {
	Scheme   string
	UserInfo string
	Host     string
	IPv6     bool
	Port     string
	PortNum  uint16
	Path     string
	PathDec  string
	Query    string
	Fragment string
}

// ParseURL splits src into URL components in a single forward pass:
//
//	scheme ":" [ "//" authority ] [ path ] [ "?" query ] [ "#" fragment ]
//
// The scheme and the authority are validated against the grammar rules,
// path escapes are decoded eagerly, query and fragment are taken verbatim.
func ParseURL[T constraints.Byteseq](src T) (Parts, error) {
	var p Parts

	s := string(src)
	if len(s) == 0 {
		return p, errtrace.Wrap(ErrEmptyInput)
	}
	for i := 0; i < len(s); i++ {
		if IsCtlChar(s[i]) {
			return p, errtrace.Wrap(newMalformedInputErr("control character 0x%02x at offset %d", s[i], i))
		}
	}

	rest, err := scanScheme(s, &p)
	if err != nil {
		return Parts{}, errtrace.Wrap(err)
	}
	if strings.HasPrefix(rest, "//") {
		if rest, err = scanAuthority(rest[2:], &p); err != nil {
			return Parts{}, errtrace.Wrap(err)
		}
	}
	if rest, err = scanPath(rest, &p); err != nil {
		return Parts{}, errtrace.Wrap(err)
	}
	scanFragment(scanQuery(rest, &p), &p)
	return p, nil
}

func scanScheme(s string, p *Parts) (string, error) {
	if !IsAlphaChar(s[0]) {
		return "", errtrace.Wrap(newMalformedInputErr("scheme must start with a letter, got %q", s[0]))
	}
	i := 1
	for i < len(s) && IsSchemeChar(s[i]) {
		i++
	}
	if i == len(s) || s[i] != ':' {
		return "", errtrace.Wrap(newMalformedInputErr("missing scheme terminator ':'"))
	}
	p.Scheme = util.LCase(s[:i])
	return s[i+1:], nil
}

// scanAuthority consumes "[ userinfo "@" ] host [ ":" port ]" from the
// start of s up to the first "/", "?" or "#". User info spans up to the
// LAST "@", so it may itself contain "@" and ":".
func scanAuthority(s string, p *Parts) (string, error) {
	end := len(s)
	for i := 0; i < len(s); i++ {
		if c := s[i]; c == '/' || c == '?' || c == '#' {
			end = i
			break
		}
	}
	auth, rest := s[:end], s[end:]
	if auth == "" {
		return rest, nil
	}

	hostport := auth
	if i := strings.LastIndexByte(auth, '@'); i >= 0 {
		p.UserInfo = auth[:i]
		hostport = auth[i+1:]
	}
	if err := splitHostPort(hostport, p); err != nil {
		return "", errtrace.Wrap(err)
	}
	return rest, nil
}

func splitHostPort(s string, p *Parts) error {
	if s == "" {
		return errtrace.Wrap(newMalformedInputErr("missing host"))
	}

	if s[0] == '[' {
		end := strings.IndexByte(s, ']')
		if end < 0 {
			return errtrace.Wrap(newMalformedInputErr("unterminated IPv6 literal %q", s))
		}
		host := s[1:end]
		if ip := net.ParseIP(host); ip == nil || !strings.ContainsRune(host, ':') {
			return errtrace.Wrap(newMalformedInputErr("bad IPv6 literal %q", host))
		}
		p.Host, p.IPv6 = host, true
		rest := s[end+1:]
		switch {
		case rest == "":
			return nil
		case rest[0] == ':':
			return errtrace.Wrap(scanPort(rest[1:], p))
		default:
			return errtrace.Wrap(newMalformedInputErr("unexpected %q after IPv6 literal", rest))
		}
	}

	host, port := s, ""
	hasPort := false
	if i := strings.IndexByte(s, ':'); i >= 0 {
		host, port, hasPort = s[:i], s[i+1:], true
	}
	if host == "" {
		return errtrace.Wrap(newMalformedInputErr("missing host"))
	}
	for i := 0; i < len(host); i++ {
		if !IsHostChar(host[i]) {
			return errtrace.Wrap(newMalformedInputErr("invalid host %q", host))
		}
	}
	p.Host = host
	if hasPort {
		return errtrace.Wrap(scanPort(port, p))
	}
	return nil
}

func scanPort(s string, p *Parts) error {
	if s == "" {
		return errtrace.Wrap(newMalformedInputErr("empty port"))
	}
	for i := 0; i < len(s); i++ {
		if !IsDigitChar(s[i]) {
			return errtrace.Wrap(newMalformedInputErr("bad port %q", s))
		}
	}
	n, err := strconv.ParseUint(s, 10, 16)
	if err != nil {
		return errtrace.Wrap(newMalformedInputErr("port %q out of range", s))
	}
	p.Port, p.PortNum = s, uint16(n)
	return nil
}

func scanPath(s string, p *Parts) (string, error) {
	end := len(s)
	for i := 0; i < len(s); i++ {
		if c := s[i]; c == '?' || c == '#' {
			end = i
			break
		}
	}
	raw, rest := s[:end], s[end:]
	if raw == "" {
		return rest, nil
	}
	dec, err := Unescape(raw)
	if err != nil {
		return "", errtrace.Wrap(err)
	}
	p.Path, p.PathDec = raw, dec
	return rest, nil
}

func scanQuery(s string, p *Parts) string {
	if s == "" || s[0] != '?' {
		return s
	}
	s = s[1:]
	end := len(s)
	if i := strings.IndexByte(s, '#'); i >= 0 {
		end = i
	}
	p.Query = s[:end]
	return s[end:]
}

func scanFragment(s string, p *Parts) {
	if s == "" || s[0] != '#' {
		return
	}
	p.Fragment = s[1:]
}
