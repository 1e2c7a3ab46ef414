package flatten

import (
	"errors"
	"fmt"
	"strings"

	"github.com/signadot/pegfold/ir"
)

var (
	// ErrInternal marks contract violations by the tree's producer.
	ErrInternal           = errors.New("internal flatten error")
	ErrUnrecognizedTag    = fmt.Errorf("%w: unrecognized tag", ErrInternal)
	ErrUnhandledMergeCase = fmt.Errorf("%w: unhandled merge case", ErrInternal)

	// ErrMerge marks results the grammar must disambiguate with more names.
	ErrMerge                    = errors.New("merge error")
	ErrDuplicateUnmergeableKeys = fmt.Errorf("%w: duplicate unmergeable keys", ErrMerge)
	ErrUnmergeableKeys          = fmt.Errorf("%w: unmergeable keys", ErrMerge)
)

// DuplicateKeysError reports mappings that conflict on Keys and cannot be
// turned into a repetition because one of them has more than one entry.
type DuplicateKeysError struct {
	Keys        []string
	Left, Right *ir.Node
}

func (e *DuplicateKeysError) Unwrap() error {
	return ErrDuplicateUnmergeableKeys
}

func (e *DuplicateKeysError) Error() string {
	return fmt.Sprintf("%s %s merging %s and %s: name the sub-results apart",
		ErrDuplicateUnmergeableKeys.Error(), strings.Join(e.Keys, ", "), e.Left, e.Right)
}
