package ir

import (
	"encoding/json"
	"fmt"
)

type irBase Node

func (y *Node) UnmarshalJSON(d []byte) error {
	tmp := &irBase{}
	if err := json.Unmarshal(d, tmp); err != nil {
		return err
	}
	*y = Node(*tmp)
	return y.validate()
}

func (y *Node) validate() error {
	for i, v := range y.Values {
		if v == nil {
			return fmt.Errorf("%w: null value at index %d of %s", ErrMalformed, i, y.Type)
		}
	}
	switch y.Type {
	case AbsentType, AtomType:
		if len(y.Values) != 0 || len(y.Fields) != 0 {
			return fmt.Errorf("%w: %s with children", ErrMalformed, y.Type)
		}
	case ListType:
		if len(y.Fields) != 0 {
			return fmt.Errorf("%w: list with fields", ErrMalformed)
		}
	case MappingType:
		if len(y.Fields) != len(y.Values) {
			return fmt.Errorf("%w: %d fields for %d values", ErrMalformed, len(y.Fields), len(y.Values))
		}
		seen := make(map[string]bool, len(y.Fields))
		for _, f := range y.Fields {
			if seen[f] {
				return fmt.Errorf("%w %q", ErrDupKey, f)
			}
			seen[f] = true
		}
	case AccumulatorType:
		if len(y.Fields) != 1 {
			return fmt.Errorf("%w: accumulator with %d keys", ErrMalformed, len(y.Fields))
		}
	case TaggedType:
		if !y.Tag.Valid() {
			return fmt.Errorf("%w: tagged node without tag", ErrMalformed)
		}
	default:
		return fmt.Errorf("%w: type %s", ErrMalformed, y.Type)
	}
	if y.Type != TaggedType && y.Tag != NoTag {
		return fmt.Errorf("%w: tag %s on %s", ErrMalformed, y.Tag, y.Type)
	}
	return nil
}

func ToJSON(y *Node) ([]byte, error) {
	return json.Marshal(y)
}

func FromJSON(d []byte) (*Node, error) {
	res := &Node{}
	if err := json.Unmarshal(d, res); err != nil {
		return nil, err
	}
	return res, nil
}
