package flatten

import "github.com/signadot/pegfold/ir"

// As implements a named capture: child is flattened in named context and
// the result is stored under key.
func As(key string, child *ir.Node, opts ...Option) (*ir.Node, error) {
	res, err := Flatten(child, true, opts...)
	if err != nil {
		return nil, err
	}
	if res == nil {
		res = ir.Absent()
	}
	return ir.Single(key, res), nil
}
