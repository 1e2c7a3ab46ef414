package main

import (
	"io"

	"github.com/goccy/go-yaml"

	"github.com/signadot/pegfold/ir"
)

// toYAML converts a result to values go-yaml encodes in order.
func toYAML(y *ir.Node) any {
	if y == nil {
		return nil
	}
	switch y.Type {
	case ir.AtomType:
		return y.Text
	case ir.ListType:
		res := make([]any, len(y.Values))
		for i, v := range y.Values {
			res[i] = toYAML(v)
		}
		return res
	case ir.MappingType:
		kvs := y.KeyVals()
		res := make(yaml.MapSlice, len(kvs))
		for i, kv := range kvs {
			res[i] = yaml.MapItem{Key: kv.Key, Value: toYAML(kv.Val)}
		}
		return res
	case ir.AccumulatorType:
		return toYAML(y.Materialize())
	}
	return nil
}

func marshal(y *ir.Node, asJSON bool) ([]byte, error) {
	if asJSON {
		return yaml.MarshalWithOptions(toYAML(y), yaml.JSON())
	}
	return yaml.Marshal(toYAML(y))
}

func writeResult(w io.Writer, y *ir.Node, asJSON bool) error {
	d, err := marshal(y, asJSON)
	if err != nil {
		return err
	}
	_, err = w.Write(d)
	return err
}
