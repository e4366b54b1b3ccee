package business

import (
	"bytes"
	"encoding/json"

	"github.com/pkg/errors"
)

// CategoryValue is a single category label with its numeric value.
type CategoryValue struct {
	Label string  `json:"label"`
	Value float64 `json:"value"`
}

// CategoryValues is a category -> value mapping that keeps the order in which
// categories were given. On the wire it is a plain JSON object.
type CategoryValues []CategoryValue

// Labels returns the category labels in order.
func (cv CategoryValues) Labels() []string {
	labels := make([]string, len(cv))
	for i, v := range cv {
		labels[i] = v.Label
	}
	return labels
}

// Values returns the numeric values in order.
func (cv CategoryValues) Values() []float64 {
	values := make([]float64, len(cv))
	for i, v := range cv {
		values[i] = v.Value
	}
	return values
}

// Sum adds up every value.
func (cv CategoryValues) Sum() float64 {
	var total float64
	for _, v := range cv {
		total += v.Value
	}
	return total
}

// UnmarshalJSON decodes a JSON object keeping key order. A repeated key keeps
// its first position and takes the last value.
func (cv *CategoryValues) UnmarshalJSON(data []byte) error {
	dec := json.NewDecoder(bytes.NewReader(data))

	tok, err := dec.Token()
	if err != nil {
		return errors.Wrap(err, "failed to read category values")
	}
	if tok == nil {
		*cv = nil
		return nil
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return errors.New("category values must be a JSON object")
	}

	out := CategoryValues{}
	positions := make(map[string]int)
	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return errors.Wrap(err, "failed to read category name")
		}
		label, ok := keyTok.(string)
		if !ok {
			return errors.Errorf("unexpected category name token %v", keyTok)
		}

		var value float64
		if err := dec.Decode(&value); err != nil {
			return errors.Wrapf(err, "invalid value for category %q", label)
		}

		if i, seen := positions[label]; seen {
			out[i].Value = value
			continue
		}
		positions[label] = len(out)
		out = append(out, CategoryValue{Label: label, Value: value})
	}

	if _, err := dec.Token(); err != nil {
		return errors.Wrap(err, "failed to read end of category values")
	}

	*cv = out
	return nil
}

// MarshalJSON encodes the values as a JSON object in order.
func (cv CategoryValues) MarshalJSON() ([]byte, error) {
	if cv == nil {
		return []byte("null"), nil
	}

	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, v := range cv {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(v.Label)
		if err != nil {
			return nil, err
		}
		value, err := json.Marshal(v.Value)
		if err != nil {
			return nil, errors.Wrapf(err, "invalid value for category %q", v.Label)
		}
		buf.Write(key)
		buf.WriteByte(':')
		buf.Write(value)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}
