package parse

import (
	"errors"
	"fmt"
)

var (
	ErrParse       = errors.New("parse error")
	ErrEmptyDoc    = fmt.Errorf("%w: empty document", ErrParse)
	ErrUnknownTag  = fmt.Errorf("%w: unknown tag", ErrParse)
	ErrUnsupported = fmt.Errorf("%w: unsupported", ErrParse)
	ErrTaggedValue = fmt.Errorf("%w: tagged node inside a list", ErrParse)
)
