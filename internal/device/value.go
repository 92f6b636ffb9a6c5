package device

import (
	"bytes"
	"encoding/json"
	"fmt"
)

type Kind uint8

const (
	KindInvalid Kind = iota
	KindString
	KindNumber
	KindBool
)

func (k Kind) String() string {
	switch k {
	case KindString:
		return "string"
	case KindNumber:
		return "number"
	case KindBool:
		return "bool"
	default:
		return "invalid"
	}
}

// Value is a single scalar reading or setting. The zero Value is invalid.
type Value struct {
	kind Kind
	str  string
	num  float64
	b    bool
}

func String(s string) Value  { return Value{kind: KindString, str: s} }
func Number(n float64) Value { return Value{kind: KindNumber, num: n} }
func Bool(b bool) Value      { return Value{kind: KindBool, b: b} }

func (v Value) Kind() Kind    { return v.kind }
func (v Value) IsValid() bool { return v.kind != KindInvalid }

func (v Value) AsString() (string, bool) { return v.str, v.kind == KindString }
func (v Value) AsNumber() (float64, bool) { return v.num, v.kind == KindNumber }
func (v Value) AsBool() (bool, bool)      { return v.b, v.kind == KindBool }

func (v Value) String() string {
	switch v.kind {
	case KindString:
		return v.str
	case KindNumber:
		return fmt.Sprintf("%g", v.num)
	case KindBool:
		return fmt.Sprintf("%t", v.b)
	default:
		return "<invalid>"
	}
}

func (v Value) MarshalJSON() ([]byte, error) {
	switch v.kind {
	case KindString:
		return json.Marshal(v.str)
	case KindNumber:
		return json.Marshal(v.num)
	case KindBool:
		return json.Marshal(v.b)
	default:
		return nil, fmt.Errorf("%w: cannot encode invalid value", ErrValidation)
	}
}

func (v *Value) UnmarshalJSON(data []byte) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	var raw any
	if err := dec.Decode(&raw); err != nil {
		return fmt.Errorf("%w: %w", ErrValidation, err)
	}
	switch t := raw.(type) {
	case string:
		*v = String(t)
	case bool:
		*v = Bool(t)
	case json.Number:
		n, err := t.Float64()
		if err != nil {
			return fmt.Errorf("%w: number %s: %w", ErrValidation, t, err)
		}
		*v = Number(n)
	default:
		return fmt.Errorf("%w: payload values must be string, number or bool, got %s", ErrValidation, describe(raw))
	}
	return nil
}

func describe(raw any) string {
	switch raw.(type) {
	case nil:
		return "null"
	case map[string]any:
		return "object"
	case []any:
		return "array"
	default:
		return fmt.Sprintf("%T", raw)
	}
}
