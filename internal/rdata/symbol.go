package rdata

// appendSymbol writes c the way it appears inside a quoted
// character-string: printable ASCII as is, '"' and '\' with a backslash,
// everything else as \DDD.
func appendSymbol(dst []byte, c byte) []byte {
	switch {
	case c == '"' || c == '\\':
		return append(dst, '\\', c)
	case c < 0x20 || c > 0x7e:
		return append(dst, '\\', '0'+c/100, '0'+c/10%10, '0'+c%10)
	default:
		return append(dst, c)
	}
}

func appendQuoted(dst []byte, s []byte) []byte {
	dst = append(dst, '"')
	for _, c := range s {
		dst = appendSymbol(dst, c)
	}
	return append(dst, '"')
}
