package octets

import "errors"

// ErrShortBuf is returned when a write would go beyond the capacity of
// its target. It carries no detail, the limit belongs to the target.
var ErrShortBuf = errors.New("unexpected end of buffer")
