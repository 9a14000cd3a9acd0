package grammar_test

import (
	"testing"

	"github.com/ghettovoice/weburl/internal/grammar"
)

func TestIsScheme(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name string
		str  string
		want bool
	}{
		{"empty", "", false},
		{"single letter", "a", true},
		{"common", "https", true},
		{"with extras", "x-proto+v1.2", true},
		{"leading digit", "1http", false},
		{"bad char", "ht~tp", false},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			t.Parallel()

			if got := grammar.IsScheme(c.str); got != c.want {
				t.Errorf("grammar.IsScheme(%q) = %v, want %v", c.str, got, c.want)
			}
		})
	}
}

func TestIsHost(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name string
		str  string
		want bool
	}{
		{"empty", "", false},
		{"reg name", "example-1.com", true},
		{"ipv4", "127.0.0.1", true},
		{"ipv6", "2001:db8::1", true},
		{"bad ipv6", "2001:db8::zz", false},
		{"underscore", "ho_st", false},
		{"space", "ho st", false},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			t.Parallel()

			if got := grammar.IsHost(c.str); got != c.want {
				t.Errorf("grammar.IsHost(%q) = %v, want %v", c.str, got, c.want)
			}
		})
	}
}
