package present

import (
	"bytes"
	"fmt"

	json "github.com/goccy/go-json"
	yaml "gopkg.in/yaml.v3"

	"purl/part"
)

type field struct {
	key   string
	value any
}

// fields keeps part fields in their original order for structured encoders,
// nested parts become nested mappings.
type fields []field

func fieldsOf(p part.Part) fields {
	data := p.Data()
	res := make(fields, 0, data.Len())
	for el := data.Front(); el != nil; el = el.Next() {
		v := el.Value
		if sub, ok := v.(part.Part); ok {
			v = fieldsOf(sub)
		}
		res = append(res, field{key: el.Key, value: v})
	}
	return res
}

func (f fields) MarshalJSON() ([]byte, error) {
	buf := new(bytes.Buffer)
	if err := f.appendJSON(buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// appendJSON writes object directly. Leaf values never reach encoder as
// custom marshalers, so nothing in the output is HTML escaped.
func (f fields) appendJSON(buf *bytes.Buffer) error {
	buf.WriteByte('{')
	for i, fl := range f {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.MarshalNoEscape(fl.key)
		if err != nil {
			return err
		}
		buf.Write(key)
		buf.WriteByte(':')

		switch v := fl.value.(type) {
		case fields:
			if err := v.appendJSON(buf); err != nil {
				return err
			}
			continue
		case fmt.Stringer:
			fl.value = v.String()
		}
		val, err := json.MarshalNoEscape(fl.value)
		if err != nil {
			return err
		}
		buf.Write(val)
	}
	buf.WriteByte('}')
	return nil
}

func (f fields) MarshalYAML() (any, error) {
	node := &yaml.Node{Kind: yaml.MappingNode}
	for _, fl := range f {
		val := new(yaml.Node)
		if err := val.Encode(fl.value); err != nil {
			return nil, err
		}
		node.Content = append(node.Content, &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: fl.key}, val)
	}
	return node, nil
}
