package storage

import (
	"chat-circle/errors"
	"fmt"
	"time"

	"google.golang.org/protobuf/types/known/structpb"
)

// TimeLayout is fixed width so that lexicographic order is chronological.
const TimeLayout = "2006-01-02T15:04:05.000000000Z"

// Fields is the content of a document.
// Once stored, values are one of: nil, bool, float64, string, []any, map[string]any.
type Fields map[string]any

// Document is a stored record addressed by its full path.
type Document struct {
	ID     string
	Path   string
	Fields Fields
}

func (d Document) String(field string) string {
	s, _ := d.Fields[field].(string)
	return s
}

func (d Document) Int(field string) int {
	f, _ := d.Fields[field].(float64)
	return int(f)
}

func (d Document) Bool(field string) bool {
	b, _ := d.Fields[field].(bool)
	return b
}

func (d Document) Strings(field string) []string {
	values, _ := d.Fields[field].([]any)
	out := make([]string, 0, len(values))
	for _, v := range values {
		if s, ok := v.(string); ok {
			out = append(out, s)
		}
	}
	return out
}

func (d Document) Time(field string) time.Time {
	t, err := time.Parse(TimeLayout, d.String(field))
	if err != nil {
		return time.Time{}
	}
	return t
}

// FormatTime renders t the way it is stored.
func FormatTime(t time.Time) string {
	return t.UTC().Format(TimeLayout)
}

// ArrayUnion appends the values missing from an array field.
type ArrayUnion []any

// ArrayRemove removes every occurrence of the values from an array field.
type ArrayRemove []any

// Increment adds to a numeric field, starting from zero.
type Increment int64

type deleteField struct{}

// DeleteField removes the field from the document.
var DeleteField = deleteField{}

// Normalize converts v to the representation it has once stored.
func Normalize(v any) (any, error) {
	switch value := v.(type) {
	case nil:
		return nil, nil
	case time.Time:
		return FormatTime(value), nil
	case []string:
		out := make([]any, len(value))
		for i, s := range value {
			out[i] = s
		}
		return out, nil
	case []any:
		out := make([]any, len(value))
		for i, item := range value {
			n, err := Normalize(item)
			if err != nil {
				return nil, err
			}
			out[i] = n
		}
		return out, nil
	case Fields:
		return normalizeMap(value)
	case map[string]any:
		return normalizeMap(value)
	}
	pv, err := structpb.NewValue(v)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", errors.ErrInvalidInput, err)
	}
	return pv.AsInterface(), nil
}

func normalizeMap(m map[string]any) (map[string]any, error) {
	out := make(map[string]any, len(m))
	for k, item := range m {
		n, err := Normalize(item)
		if err != nil {
			return nil, err
		}
		out[k] = n
	}
	return out, nil
}

// normalizeFields only accepts plain values, transforms are rejected.
func normalizeFields(fields Fields) (Fields, error) {
	out := make(Fields, len(fields))
	for k, v := range fields {
		switch v.(type) {
		case ArrayUnion, ArrayRemove, Increment, deleteField:
			return nil, fmt.Errorf("%w: transform on %q outside an update", errors.ErrInvalidInput, k)
		}
		n, err := Normalize(v)
		if err != nil {
			return nil, err
		}
		out[k] = n
	}
	return out, nil
}

// applyDeltas merges deltas into the current fields, resolving transforms.
func applyDeltas(current Fields, deltas Fields) (Fields, error) {
	out := make(Fields, len(current)+len(deltas))
	for k, v := range current {
		out[k] = v
	}
	for k, v := range deltas {
		switch delta := v.(type) {
		case deleteField:
			delete(out, k)
		case ArrayUnion:
			existing, _ := out[k].([]any)
			merged := append([]any{}, existing...)
			for _, item := range delta {
				n, err := Normalize(item)
				if err != nil {
					return nil, err
				}
				if !containsValue(merged, n) {
					merged = append(merged, n)
				}
			}
			out[k] = merged
		case ArrayRemove:
			existing, _ := out[k].([]any)
			kept := make([]any, 0, len(existing))
			for _, item := range existing {
				remove := false
				for _, r := range delta {
					n, err := Normalize(r)
					if err != nil {
						return nil, err
					}
					if equalValues(item, n) {
						remove = true
						break
					}
				}
				if !remove {
					kept = append(kept, item)
				}
			}
			out[k] = kept
		case Increment:
			existing, _ := out[k].(float64)
			out[k] = existing + float64(delta)
		default:
			n, err := Normalize(v)
			if err != nil {
				return nil, err
			}
			out[k] = n
		}
	}
	return out, nil
}
