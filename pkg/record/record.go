package record

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"reflect"
	"strings"
)

// Record maps field names to values for a single data row. Related records
// are stored as nested maps keyed by relationship name. A nil Record stands
// for "no record loaded".
type Record map[string]any

// Value is the outcome of a record lookup. The zero Value is absent, which is
// distinct from a present entry that holds nil.
type Value struct {
	raw     any
	present bool
}

// Absent returns the absent Value.
func Absent() Value {
	return Value{}
}

// Present wraps raw as a present Value. Passing nil yields a present null.
func Present(raw any) Value {
	return Value{raw: raw, present: true}
}

// IsPresent reports whether the lookup found an own entry.
func (v Value) IsPresent() bool {
	return v.present
}

// IsNull reports whether the entry exists but holds nil.
func (v Value) IsNull() bool {
	return v.present && v.raw == nil
}

// Raw returns the underlying value, or nil when absent.
func (v Value) Raw() any {
	if !v.present {
		return nil
	}
	return v.raw
}

// Equal compares two Values by presence and raw content. Nested records and
// slices compare by their JSON encoding, or deeply when they cannot be
// encoded (channels, funcs).
func (v Value) Equal(other Value) bool {
	if v.present != other.present {
		return false
	}
	if !v.present {
		return true
	}
	if isComparable(v.raw) && isComparable(other.raw) {
		return v.raw == other.raw
	}
	left, errLeft := json.Marshal(v.raw)
	right, errRight := json.Marshal(other.raw)
	if errLeft != nil || errRight != nil {
		return reflect.DeepEqual(v.raw, other.raw)
	}
	return bytes.Equal(left, right)
}

// MarshalJSON encodes absent Values as null so callers can serialise state
// snapshots. Use IsPresent to tell the cases apart before encoding.
func (v Value) MarshalJSON() ([]byte, error) {
	return json.Marshal(v.Raw())
}

func (v Value) String() string {
	if !v.present {
		return "<absent>"
	}
	if v.raw == nil {
		return "<null>"
	}
	return fmt.Sprint(v.raw)
}

func isComparable(raw any) bool {
	switch raw.(type) {
	case nil, string, bool, int, int8, int16, int32, int64,
		uint, uint8, uint16, uint32, uint64, float32, float64, json.Number:
		return true
	default:
		return false
	}
}

// Get looks up an own entry. A nil Record yields an absent Value.
func (r Record) Get(key string) Value {
	if r == nil {
		return Absent()
	}
	raw, ok := r[key]
	if !ok {
		return Absent()
	}
	return Present(raw)
}

// Has reports whether the record holds an own entry for key.
func (r Record) Has(key string) bool {
	return r.Get(key).IsPresent()
}

// Nested returns the related record stored under key. It reports false when
// the entry is absent, null, or not record-shaped.
func (r Record) Nested(key string) (Record, bool) {
	return AsRecord(r.Get(key).Raw())
}

// NestedPath resolves a related record by relationship path. An exact own key
// wins; otherwise a dotted path is walked one related record per segment.
func (r Record) NestedPath(path string) (Record, bool) {
	if r == nil {
		return nil, false
	}
	if r.Has(path) || !strings.Contains(path, ".") {
		return r.Nested(path)
	}

	current := r
	for _, segment := range strings.Split(path, ".") {
		if segment == "" {
			return nil, false
		}
		next, ok := current.Nested(segment)
		if !ok {
			return nil, false
		}
		current = next
	}
	return current, true
}

// AsRecord converts record-shaped values (Record, map[string]any) into a
// Record. Nil maps are treated as null.
func AsRecord(raw any) (Record, bool) {
	switch typed := raw.(type) {
	case Record:
		if typed == nil {
			return nil, false
		}
		return typed, true
	case map[string]any:
		if typed == nil {
			return nil, false
		}
		return Record(typed), true
	default:
		return nil, false
	}
}

// Decode reads a JSON object into a Record. Numbers are kept as json.Number
// so integer values survive the round trip. A JSON null yields a nil Record.
func Decode(r io.Reader) (Record, error) {
	if r == nil {
		return nil, errors.New("record: reader is nil")
	}
	dec := json.NewDecoder(r)
	dec.UseNumber()

	var raw any
	if err := dec.Decode(&raw); err != nil {
		return nil, fmt.Errorf("record: decode: %w", err)
	}
	if raw == nil {
		return nil, nil
	}
	rec, ok := AsRecord(raw)
	if !ok {
		return nil, fmt.Errorf("record: decode: expected JSON object, got %T", raw)
	}
	return rec, nil
}

// Parse decodes a JSON payload into a Record.
func Parse(data []byte) (Record, error) {
	if len(bytes.TrimSpace(data)) == 0 {
		return nil, errors.New("record: payload is empty")
	}
	return Decode(bytes.NewReader(data))
}
