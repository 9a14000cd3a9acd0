package weburl

import "github.com/ghettovoice/weburl/internal/util"

var defaultPorts = map[string]uint16{
	"http":  80,
	"https": 443,
	"ftp":   21,
}

// DefaultPort returns the well-known port of the given protocol:
// 80 for "http", 443 for "https", 21 for "ftp" and 0 for anything else.
// The lookup is case-insensitive.
func DefaultPort(protocol string) uint16 {
	return defaultPorts[util.LCase(protocol)]
}
