package storage

import (
	"chat-circle/errors"
	"fmt"
	"slices"
	"strings"
)

type Op string

const (
	OpEqual         Op = "=="
	OpNotEqual      Op = "!="
	OpArrayContains Op = "array-contains"
)

type Filter struct {
	Field string
	Op    Op
	Value any
}

// Query selects documents of one collection.
// Limit keeps the first n documents after ordering, or the last n when Tail
// is set; zero means unbounded.
type Query struct {
	Where      []Filter
	OrderBy    string
	Descending bool
	Limit      int
	Tail       bool
}

func Where(field string, op Op, value any) Filter {
	return Filter{Field: field, Op: op, Value: value}
}

// Last orders by field and keeps the n greatest documents, in ascending order.
func Last(field string, n int) Query {
	return Query{OrderBy: field, Limit: n, Tail: true}
}

func (q Query) normalized() (Query, error) {
	out := q
	out.Where = make([]Filter, len(q.Where))
	for i, f := range q.Where {
		switch f.Op {
		case OpEqual, OpNotEqual, OpArrayContains:
		default:
			return Query{}, fmt.Errorf("%w: unsupported operator %q", errors.ErrInvalidInput, f.Op)
		}
		v, err := Normalize(f.Value)
		if err != nil {
			return Query{}, err
		}
		out.Where[i] = Filter{Field: f.Field, Op: f.Op, Value: v}
	}
	return out, nil
}

func (q Query) matches(d Document) bool {
	for _, f := range q.Where {
		value := d.Fields[f.Field]
		switch f.Op {
		case OpEqual:
			if !equalValues(value, f.Value) {
				return false
			}
		case OpNotEqual:
			if equalValues(value, f.Value) {
				return false
			}
		case OpArrayContains:
			items, _ := value.([]any)
			if !containsValue(items, f.Value) {
				return false
			}
		}
	}
	return true
}

// apply sorts then limits.
func (q Query) apply(docs []Document) []Document {
	if q.OrderBy != "" {
		slices.SortStableFunc(docs, func(a, b Document) int {
			c := compareValues(a.Fields[q.OrderBy], b.Fields[q.OrderBy])
			if c == 0 {
				c = strings.Compare(a.ID, b.ID)
			}
			if q.Descending {
				return -c
			}
			return c
		})
	}
	if q.Limit > 0 && len(docs) > q.Limit {
		if q.Tail {
			return docs[len(docs)-q.Limit:]
		}
		return docs[:q.Limit]
	}
	return docs
}

func equalValues(a, b any) bool {
	switch x := a.(type) {
	case []any:
		y, ok := b.([]any)
		if !ok || len(x) != len(y) {
			return false
		}
		for i := range x {
			if !equalValues(x[i], y[i]) {
				return false
			}
		}
		return true
	case map[string]any:
		y, ok := b.(map[string]any)
		if !ok || len(x) != len(y) {
			return false
		}
		for k, v := range x {
			if !equalValues(v, y[k]) {
				return false
			}
		}
		return true
	default:
		return a == b
	}
}

func containsValue(items []any, v any) bool {
	return slices.ContainsFunc(items, func(item any) bool { return equalValues(item, v) })
}

// compareValues orders nil first, then numbers, strings and booleans.
func compareValues(a, b any) int {
	ra, rb := rank(a), rank(b)
	if ra != rb {
		return ra - rb
	}
	switch x := a.(type) {
	case float64:
		y := b.(float64)
		switch {
		case x < y:
			return -1
		case x > y:
			return 1
		}
		return 0
	case string:
		return strings.Compare(x, b.(string))
	case bool:
		y := b.(bool)
		switch {
		case x == y:
			return 0
		case !x:
			return -1
		}
		return 1
	}
	return 0
}

func rank(v any) int {
	switch v.(type) {
	case nil:
		return 0
	case float64:
		return 1
	case string:
		return 2
	case bool:
		return 3
	default:
		return 4
	}
}
