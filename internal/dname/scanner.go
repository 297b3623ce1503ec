package dname

// Scanner walks the labels of an uncompressed wire name.
type Scanner struct {
	n   []byte
	off int
	err error

	label    []byte
	labelOff int
}

func NewScanner(n []byte) Scanner {
	return Scanner{n: n}
}

// Scan moves to the next label. It returns false at the root label or
// on error.
func (s *Scanner) Scan() bool {
	s.label = nil
	if len(s.n) > MaxLen {
		s.err = errNameTooLong
		return false
	}
	if s.off >= len(s.n) {
		s.err = errInvalidName // missing root label
		return false
	}

	labelLen := int(s.n[s.off])
	if labelLen == 0 {
		if s.off != len(s.n)-1 {
			s.err = errInvalidName
		}
		return false
	}
	if labelLen > 63 {
		s.err = errSegTooLong
		return false
	}

	labelStart := s.off + 1
	labelEnd := labelStart + labelLen
	if labelEnd > len(s.n) {
		s.err = errInvalidName
		return false
	}

	s.label = s.n[labelStart:labelEnd]
	s.labelOff = s.off
	s.off = labelEnd
	return true
}

// Label returns the current label without its length octet.
func (s *Scanner) Label() []byte {
	return s.label
}

// LabelOff returns the offset of the current label's length octet.
func (s *Scanner) LabelOff() int {
	return s.labelOff
}

func (s *Scanner) Err() error {
	return s.err
}
