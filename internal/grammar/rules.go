package grammar

// IsAlphaChar checks ALPHA rule.
func IsAlphaChar(c byte) bool {
	return 'a' <= c && c <= 'z' || 'A' <= c && c <= 'Z'
}

// IsDigitChar checks DIGIT rule.
func IsDigitChar(c byte) bool {
	return '0' <= c && c <= '9'
}

// IsAlphanumChar checks alphanum rule.
func IsAlphanumChar(c byte) bool {
	return IsAlphaChar(c) || IsDigitChar(c)
}

var schemeExtraChars = map[byte]bool{
	'+': true,
	'-': true,
	'.': true,
}

// IsSchemeChar reports whether c may appear in a scheme after the leading letter.
func IsSchemeChar(c byte) bool {
	return schemeExtraChars[c] || IsAlphanumChar(c)
}

var hostExtraChars = map[byte]bool{
	'-': true,
	'.': true,
}

// IsHostChar reports whether c may appear in a registered name or IPv4 literal.
func IsHostChar(c byte) bool {
	return hostExtraChars[c] || IsAlphanumChar(c)
}

var unreservedChars = map[byte]bool{
	'-':  true,
	'_':  true,
	'.':  true,
	'!':  true,
	'~':  true,
	'*':  true,
	'\'': true,
	'(':  true,
	')':  true,
}

// IsCharUnreserved checks on unreserved rule.
func IsCharUnreserved(c byte) bool {
	return unreservedChars[c] || IsAlphanumChar(c)
}

var pathSafeChars = map[byte]bool{
	'$': true,
	'&': true,
	'+': true,
	',': true,
	'/': true,
	':': true,
	';': true,
	'=': true,
	'@': true,
}

// IsPathSafeChar reports whether c may appear unescaped inside a URL path.
func IsPathSafeChar(c byte) bool {
	return pathSafeChars[c] || IsCharUnreserved(c)
}

// IsCtlChar reports whether c is an ASCII control byte.
func IsCtlChar(c byte) bool {
	return c < 0x20 || c == 0x7f
}
