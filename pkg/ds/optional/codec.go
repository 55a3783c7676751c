package optional

import (
	"bytes"
	"encoding/json"

	"gopkg.in/yaml.v3"
)

var jsonNull = []byte("null")

// MarshalJSON encodes the payload, or null when absent. A present payload
// that itself encodes as null decodes back as absent.
func (o Optional[T]) MarshalJSON() ([]byte, error) {
	if !o.hasValue {
		return jsonNull, nil
	}
	return json.Marshal(o.value)
}

func (o *Optional[T]) UnmarshalJSON(data []byte) error {
	if bytes.Equal(bytes.TrimSpace(data), jsonNull) {
		*o = Empty[T]()
		return nil
	}
	var v T
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	*o = Of(v)
	return nil
}

func (o Optional[T]) MarshalYAML() (interface{}, error) {
	if !o.hasValue {
		return nil, nil
	}
	return o.value, nil
}

func (o *Optional[T]) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind == yaml.ScalarNode && value.ShortTag() == "!!null" {
		*o = Empty[T]()
		return nil
	}
	var v T
	if err := value.Decode(&v); err != nil {
		return err
	}
	*o = Of(v)
	return nil
}
