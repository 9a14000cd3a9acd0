package weburl

import (
	"strings"

	"braces.dev/errtrace"

	"github.com/ghettovoice/weburl/internal/util"
)

// Components is a set of URL components used to select which parts of a
// URL the serializer emits.
type Components uint8

// Component flags, combinable with the bitwise OR.
const (
	ComponentProtocol Components = 1 << iota
	ComponentUserInfo
	ComponentHost
	ComponentPort
	ComponentPath
	ComponentQuery
	ComponentFragment

	// ComponentsAll selects every URL component.
	ComponentsAll = ComponentProtocol | ComponentUserInfo | ComponentHost |
		ComponentPort | ComponentPath | ComponentQuery | ComponentFragment
)

// Has reports whether every component of c is in the set.
func (cs Components) Has(c Components) bool { return cs&c == c }

var componentNames = []struct {
	c    Components
	name string
}{
	{ComponentProtocol, "protocol"},
	{ComponentUserInfo, "user-info"},
	{ComponentHost, "host"},
	{ComponentPort, "port"},
	{ComponentPath, "path"},
	{ComponentQuery, "query"},
	{ComponentFragment, "fragment"},
}

// String returns the set as "|"-joined component names,
// "all" for the full set and "" for the empty set.
func (cs Components) String() string {
	switch {
	case cs == 0:
		return ""
	case cs.Has(ComponentsAll):
		return "all"
	}

	sb := util.GetStringBuilder()
	defer util.FreeStringBuilder(sb)
	for _, e := range componentNames {
		if !cs.Has(e.c) {
			continue
		}
		if sb.Len() > 0 {
			sb.WriteByte('|')
		}
		sb.WriteString(e.name)
	}
	return sb.String()
}

// ParseComponents parses a component set from "|" or "," separated names
// as produced by [Components.String]. Names are matched case-insensitively,
// surrounding whitespace is ignored. An unknown name or an empty set fails
// with [ErrInvalidArgument].
func ParseComponents(s string) (Components, error) {
	var cs Components
	for _, name := range strings.FieldsFunc(s, isComponentSep) {
		switch util.LCase(util.TrimSP(name)) {
		case "protocol":
			cs |= ComponentProtocol
		case "user-info", "userinfo":
			cs |= ComponentUserInfo
		case "host":
			cs |= ComponentHost
		case "port":
			cs |= ComponentPort
		case "path":
			cs |= ComponentPath
		case "query":
			cs |= ComponentQuery
		case "fragment":
			cs |= ComponentFragment
		case "all":
			cs |= ComponentsAll
		default:
			return 0, errtrace.Wrap(NewInvalidArgumentError("unknown component %q", name))
		}
	}
	if cs == 0 {
		return 0, errtrace.Wrap(NewInvalidArgumentError("empty component set %q", s))
	}
	return cs, nil
}

func isComponentSep(r rune) bool { return r == '|' || r == ',' }

// RenderOptions contains options for rendering URLs.
//
// The zero value is a valid configuration.
type RenderOptions struct {
	// Components selects the URL components to render.
	// The zero value is equivalent to [ComponentsAll].
	Components Components
}

func (o *RenderOptions) components() Components {
	if o == nil || o.Components == 0 {
		return ComponentsAll
	}
	return o.Components
}
