package interop

import (
	"fmt"
	"time"

	"github.com/goccy/go-yaml"
	"github.com/liabri/zmerald/ir"
)

// FromYAML decodes a YAML document into a value with ordered maps.
func FromYAML(data []byte) (ir.Value, error) {
	var x any
	if err := yaml.UnmarshalWithOptions(data, &x, yaml.UseOrderedMap()); err != nil {
		return ir.Value{}, fmt.Errorf("could not decode yaml: %w", err)
	}
	return fromYAML(x)
}

func fromYAML(x any) (ir.Value, error) {
	switch t := x.(type) {
	case yaml.MapSlice:
		m := ir.NewOrderedMap()
		for _, item := range t {
			k, err := fromYAML(item.Key)
			if err != nil {
				return ir.Value{}, err
			}
			v, err := fromYAML(item.Value)
			if err != nil {
				return ir.Value{}, err
			}
			m.Insert(k, v)
		}
		return ir.FromMap(m), nil
	case []any:
		seq := make([]ir.Value, len(t))
		for i := range t {
			v, err := fromYAML(t[i])
			if err != nil {
				return ir.Value{}, err
			}
			seq[i] = v
		}
		return ir.FromSeq(seq), nil
	case time.Time:
		return ir.FromString(t.Format(time.RFC3339Nano)), nil
	}
	return ir.FromInterface(x)
}

// ToYAML encodes v as block style YAML.
func ToYAML(v ir.Value) ([]byte, error) {
	return yaml.MarshalWithOptions(yamlData(v), yaml.Indent(2), yaml.IndentSequence(true))
}

func yamlData(v ir.Value) any {
	switch v.Type {
	case ir.MapType:
		res := make(yaml.MapSlice, 0, v.Map.Len())
		for k, val := range v.Map.All() {
			var key any = k.KeyString()
			if k.Type == ir.NumberType || k.Type == ir.BoolType {
				key = k.Interface()
			}
			res = append(res, yaml.MapItem{Key: key, Value: yamlData(val)})
		}
		return res
	case ir.SeqType:
		res := make([]any, len(v.Seq))
		for i := range v.Seq {
			res[i] = yamlData(v.Seq[i])
		}
		return res
	case ir.OptionType:
		if v.Option != nil {
			return yamlData(*v.Option)
		}
	}
	return v.Interface()
}
