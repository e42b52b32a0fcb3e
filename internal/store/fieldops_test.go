package store

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func decode(t *testing.T, data []byte) map[string]interface{} {
	t.Helper()
	var doc map[string]interface{}
	require.NoError(t, json.Unmarshal(data, &doc))
	return doc
}

func TestApplyFieldUpdates_Set(t *testing.T) {
	data := []byte(`{"name":"old","count":1}`)

	out, err := ApplyFieldUpdates(data, []FieldUpdate{
		SetField("name", "new"),
		SetField("active", true),
	})
	require.NoError(t, err)

	doc := decode(t, out)
	assert.Equal(t, "new", doc["name"])
	assert.Equal(t, true, doc["active"])
	assert.Equal(t, float64(1), doc["count"])
}

func TestApplyFieldUpdates_ArrayUnion(t *testing.T) {
	tests := []struct {
		name     string
		data     string
		update   FieldUpdate
		expected []interface{}
	}{
		{
			name:     "appends new value",
			data:     `{"ids":["a"]}`,
			update:   ArrayUnion("ids", "b"),
			expected: []interface{}{"a", "b"},
		},
		{
			name:     "skips existing value",
			data:     `{"ids":["a","b"]}`,
			update:   ArrayUnion("ids", "b"),
			expected: []interface{}{"a", "b"},
		},
		{
			name:     "missing field becomes array",
			data:     `{}`,
			update:   ArrayUnion("ids", "a"),
			expected: []interface{}{"a"},
		},
		{
			name:     "multiple values deduplicated",
			data:     `{"ids":["a"]}`,
			update:   ArrayUnion("ids", "a", "b", "b"),
			expected: []interface{}{"a", "b"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := ApplyFieldUpdates([]byte(tt.data), []FieldUpdate{tt.update})
			require.NoError(t, err)
			assert.Equal(t, tt.expected, decode(t, out)["ids"])
		})
	}
}

func TestApplyFieldUpdates_ArrayRemove(t *testing.T) {
	tests := []struct {
		name     string
		data     string
		update   FieldUpdate
		expected []interface{}
	}{
		{
			name:     "removes value",
			data:     `{"ids":["a","b","c"]}`,
			update:   ArrayRemove("ids", "b"),
			expected: []interface{}{"a", "c"},
		},
		{
			name:     "removes all occurrences",
			data:     `{"ids":["a","b","a"]}`,
			update:   ArrayRemove("ids", "a"),
			expected: []interface{}{"b"},
		},
		{
			name:     "absent value is a no-op",
			data:     `{"ids":["a"]}`,
			update:   ArrayRemove("ids", "z"),
			expected: []interface{}{"a"},
		},
		{
			name:     "missing field stays empty",
			data:     `{}`,
			update:   ArrayRemove("ids", "a"),
			expected: []interface{}{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := ApplyFieldUpdates([]byte(tt.data), []FieldUpdate{tt.update})
			require.NoError(t, err)
			assert.Equal(t, tt.expected, decode(t, out)["ids"])
		})
	}
}

func TestApplyFieldUpdates_MoveBetweenSets(t *testing.T) {
	data := []byte(`{"enrolledCourses":["off-1","off-2"],"currentCourses":[]}`)

	out, err := ApplyFieldUpdates(data, []FieldUpdate{
		ArrayRemove("enrolledCourses", "off-1"),
		ArrayUnion("currentCourses", "off-1"),
	})
	require.NoError(t, err)

	doc := decode(t, out)
	assert.Equal(t, []interface{}{"off-2"}, doc["enrolledCourses"])
	assert.Equal(t, []interface{}{"off-1"}, doc["currentCourses"])
}

func TestApplyFieldUpdates_NonArrayField(t *testing.T) {
	_, err := ApplyFieldUpdates([]byte(`{"ids":"not-an-array"}`), []FieldUpdate{
		ArrayUnion("ids", "a"),
	})
	assert.Error(t, err)
}

func TestApplyFieldUpdates_NumberNormalization(t *testing.T) {
	// Values written as ints must match stored JSON numbers.
	out, err := ApplyFieldUpdates([]byte(`{"nums":[1,2]}`), []FieldUpdate{
		ArrayUnion("nums", 2, 3),
	})
	require.NoError(t, err)
	assert.Equal(t, []interface{}{float64(1), float64(2), float64(3)}, decode(t, out)["nums"])
}
