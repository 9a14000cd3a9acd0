package weburl_test

import (
	"testing"

	"github.com/ghettovoice/weburl"
)

func TestDefaultPort(t *testing.T) {
	t.Parallel()

	cases := []struct {
		protocol string
		want     uint16
	}{
		{"http", 80},
		{"https", 443},
		{"ftp", 21},
		{"HTTP", 80},
		{"FtP", 21},
		{"", 0},
		{"gopher", 0},
		{"ssh", 0},
	}

	for _, c := range cases {
		if got := weburl.DefaultPort(c.protocol); got != c.want {
			t.Errorf("weburl.DefaultPort(%q) = %d, want %d", c.protocol, got, c.want)
		}
	}
}
