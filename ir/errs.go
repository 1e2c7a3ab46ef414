package ir

import (
	"errors"
	"fmt"
)

var (
	ErrMalformed  = errors.New("malformed node")
	ErrUnknownTag = errors.New("unknown tag")
	ErrDupKey     = fmt.Errorf("%w: duplicate mapping key", ErrMalformed)
)
