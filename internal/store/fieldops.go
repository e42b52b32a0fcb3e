package store

import (
	"encoding/json"
	"fmt"
	"reflect"
)

// FieldOpKind identifies how a FieldUpdate mutates its field.
type FieldOpKind int

const (
	// OpSet replaces the field value.
	OpSet FieldOpKind = iota
	// OpArrayUnion adds values to an array field, skipping ones already present.
	OpArrayUnion
	// OpArrayRemove removes all occurrences of values from an array field.
	OpArrayRemove
)

// FieldUpdate is one mutation of a top-level document field.
type FieldUpdate struct {
	Field  string
	Op     FieldOpKind
	Value  interface{}
	Values []interface{}
}

// SetField replaces a top-level field with the given value.
func SetField(field string, value interface{}) FieldUpdate {
	return FieldUpdate{Field: field, Op: OpSet, Value: value}
}

// ArrayUnion adds the given values to an array field if not already present.
// Missing fields are treated as empty arrays.
func ArrayUnion(field string, values ...interface{}) FieldUpdate {
	return FieldUpdate{Field: field, Op: OpArrayUnion, Values: values}
}

// ArrayRemove removes the given values from an array field. Removing from a
// missing field is a no-op.
func ArrayRemove(field string, values ...interface{}) FieldUpdate {
	return FieldUpdate{Field: field, Op: OpArrayRemove, Values: values}
}

// ApplyFieldUpdates applies field updates to a raw JSON document body and
// returns the new body. The input is not modified. All updates are applied
// or none; an unknown array-op target type fails the whole batch.
func ApplyFieldUpdates(data []byte, fields []FieldUpdate) ([]byte, error) {
	doc := map[string]interface{}{}
	if len(data) > 0 {
		if err := json.Unmarshal(data, &doc); err != nil {
			return nil, fmt.Errorf("failed to decode document: %w", err)
		}
	}

	for _, f := range fields {
		switch f.Op {
		case OpSet:
			doc[f.Field] = normalizeValue(f.Value)

		case OpArrayUnion:
			arr, err := fieldAsArray(doc, f.Field)
			if err != nil {
				return nil, err
			}
			for _, v := range f.Values {
				nv := normalizeValue(v)
				if !arrayContains(arr, nv) {
					arr = append(arr, nv)
				}
			}
			doc[f.Field] = arr

		case OpArrayRemove:
			arr, err := fieldAsArray(doc, f.Field)
			if err != nil {
				return nil, err
			}
			kept := arr[:0]
			for _, existing := range arr {
				removed := false
				for _, v := range f.Values {
					if jsonEqual(existing, normalizeValue(v)) {
						removed = true
						break
					}
				}
				if !removed {
					kept = append(kept, existing)
				}
			}
			doc[f.Field] = kept

		default:
			return nil, fmt.Errorf("unknown field op %d on %q", f.Op, f.Field)
		}
	}

	out, err := json.Marshal(doc)
	if err != nil {
		return nil, fmt.Errorf("failed to encode document: %w", err)
	}
	return out, nil
}

func fieldAsArray(doc map[string]interface{}, field string) ([]interface{}, error) {
	raw, ok := doc[field]
	if !ok || raw == nil {
		return []interface{}{}, nil
	}
	arr, ok := raw.([]interface{})
	if !ok {
		return nil, fmt.Errorf("field %q is not an array", field)
	}
	return arr, nil
}

func arrayContains(arr []interface{}, value interface{}) bool {
	for _, existing := range arr {
		if jsonEqual(existing, value) {
			return true
		}
	}
	return false
}

// normalizeValue round-trips a value through JSON so comparisons see the
// same representation the decoded document uses (e.g. all numbers become
// float64).
func normalizeValue(value interface{}) interface{} {
	switch value.(type) {
	case nil, string, bool, float64:
		return value
	}
	raw, err := json.Marshal(value)
	if err != nil {
		return value
	}
	var out interface{}
	if err := json.Unmarshal(raw, &out); err != nil {
		return value
	}
	return out
}

func jsonEqual(a, b interface{}) bool {
	return reflect.DeepEqual(a, b)
}
