package dname

// FromString parses a name in presentation form. The trailing dot is
// optional, "" and "." are the root. \X and \DDD escapes are supported.
func FromString(s string) (Name, error) {
	var b Builder
	if err := parseText(&b, s); err != nil {
		return nil, err
	}
	return b.Name(), nil
}

// MustFromString is FromString that panics on error.
func MustFromString(s string) Name {
	n, err := FromString(s)
	if err != nil {
		panic("dname: " + s + ": " + err.Error())
	}
	return n
}

func parseText[T ~string | ~[]byte](b *Builder, s T) error {
	b.Reset()
	if len(s) == 0 || (len(s) == 1 && s[0] == '.') {
		return nil
	}

	var label [63]byte
	ll := 0
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch c {
		case '.':
			if ll == 0 {
				return errZeroSegLen
			}
			if err := b.AppendLabel(label[:ll]); err != nil {
				return err
			}
			ll = 0
			continue
		case '\\':
			i++
			if i >= len(s) {
				return errBadEscape
			}
			c = s[i]
			if isDigit(c) {
				if i+2 >= len(s) || !isDigit(s[i+1]) || !isDigit(s[i+2]) {
					return errBadEscape
				}
				v := int(c-'0')*100 + int(s[i+1]-'0')*10 + int(s[i+2]-'0')
				if v > 255 {
					return errBadEscape
				}
				c = byte(v)
				i += 2
			}
		}
		if ll == len(label) {
			return errSegTooLong
		}
		label[ll] = c
		ll++
	}
	if ll > 0 {
		return b.AppendLabel(label[:ll])
	}
	return nil
}

func isDigit(c byte) bool {
	return '0' <= c && c <= '9'
}

func appendEscapedLabel(dst []byte, label []byte) []byte {
	for _, c := range label {
		switch {
		case isSpecial(c):
			dst = append(dst, '\\', c)
		case c < 0x21 || c > 0x7e:
			dst = append(dst, '\\', '0'+c/100, '0'+c/10%10, '0'+c%10)
		default:
			dst = append(dst, c)
		}
	}
	return dst
}

func isSpecial(c byte) bool {
	switch c {
	case '.', ' ', '\'', '@', ';', '(', ')', '"', '\\':
		return true
	}
	return false
}
