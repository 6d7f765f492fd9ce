package interop

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/liabri/zmerald/ir"
)

// FromJSON decodes a JSON document. Integers that fit in 64 bits stay
// integers.
func FromJSON(data []byte) (ir.Value, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	var x any
	if err := dec.Decode(&x); err != nil {
		return ir.Value{}, fmt.Errorf("could not decode json: %w", err)
	}
	if dec.More() {
		return ir.Value{}, fmt.Errorf("could not decode json: trailing data at offset %d", dec.InputOffset())
	}
	return ir.FromInterface(x)
}

// ToJSON encodes v as JSON, keeping the order of ordered maps. A non-empty
// indent produces indented output.
func ToJSON(v ir.Value, indent string) ([]byte, error) {
	d, err := json.Marshal(jsonData(v))
	if err != nil {
		return nil, err
	}
	if indent == "" {
		return d, nil
	}
	var buf bytes.Buffer
	if err := json.Indent(&buf, d, "", indent); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func jsonData(v ir.Value) any {
	switch v.Type {
	case ir.MapType:
		return jsonMap{v.Map}
	case ir.SeqType:
		res := make([]any, len(v.Seq))
		for i := range v.Seq {
			res[i] = jsonData(v.Seq[i])
		}
		return res
	case ir.OptionType:
		if v.Option != nil {
			return jsonData(*v.Option)
		}
	}
	return v.Interface()
}

type jsonMap struct{ m *ir.Map }

func (j jsonMap) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	i := 0
	for k, v := range j.m.All() {
		if i > 0 {
			buf.WriteByte(',')
		}
		i++
		kd, err := json.Marshal(k.KeyString())
		if err != nil {
			return nil, err
		}
		buf.Write(kd)
		buf.WriteByte(':')
		vd, err := json.Marshal(jsonData(v))
		if err != nil {
			return nil, err
		}
		buf.Write(vd)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}
