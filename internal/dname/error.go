package dname

import "errors"

var (
	errReserved    = errors.New("segment prefix is reserved")
	errTooManyPtr  = errors.New("too many pointers (>10)")
	errInvalidPtr  = errors.New("invalid pointer")
	errSegTooLong  = errors.New("segment length too long")
	errNameTooLong = errors.New("name too long")
	errZeroSegLen  = errors.New("zero length segment")
	errBadEscape   = errors.New("bad escape sequence")
	errInvalidName = errors.New("invalid wire name")
)
