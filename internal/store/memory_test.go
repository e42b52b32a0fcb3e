package store

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testDoc struct {
	Name string   `json:"name"`
	IDs  []string `json:"ids"`
}

func TestMemory_CreateAndGet(t *testing.T) {
	ctx := context.Background()
	st := NewMemory()

	require.NoError(t, st.Create(ctx, "things", "t1", testDoc{Name: "one"}))

	doc, err := st.Get(ctx, "things", "t1")
	require.NoError(t, err)
	assert.Equal(t, "t1", doc.ID)
	assert.Equal(t, int64(1), doc.Version)
	assert.JSONEq(t, `{"name":"one","ids":null}`, string(doc.Data))

	err = st.Create(ctx, "things", "t1", testDoc{Name: "dup"})
	assert.ErrorIs(t, err, ErrAlreadyExists)

	_, err = st.Get(ctx, "things", "missing")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestMemory_Query(t *testing.T) {
	ctx := context.Background()
	st := NewMemory()

	require.NoError(t, st.Create(ctx, "things", "b", testDoc{Name: "x", IDs: []string{"1"}}))
	require.NoError(t, st.Create(ctx, "things", "a", testDoc{Name: "x", IDs: []string{"2"}}))
	require.NoError(t, st.Create(ctx, "things", "c", testDoc{Name: "y", IDs: []string{"1"}}))

	docs, err := st.Query(ctx, "things")
	require.NoError(t, err)
	require.Len(t, docs, 3)
	assert.Equal(t, "a", docs[0].ID)
	assert.Equal(t, "b", docs[1].ID)

	docs, err = st.Query(ctx, "things", Where("name", "x"))
	require.NoError(t, err)
	require.Len(t, docs, 2)

	docs, err = st.Query(ctx, "things", WhereContains("ids", "1"))
	require.NoError(t, err)
	require.Len(t, docs, 2)
	assert.Equal(t, "b", docs[0].ID)
	assert.Equal(t, "c", docs[1].ID)

	docs, err = st.Query(ctx, "things", Where("name", "x"), WhereContains("ids", "1"))
	require.NoError(t, err)
	require.Len(t, docs, 1)
	assert.Equal(t, "b", docs[0].ID)
}

func TestMemory_SetVersioning(t *testing.T) {
	ctx := context.Background()
	st := NewMemory()

	// Upsert without a version check
	require.NoError(t, st.Set(ctx, "things", "t1", testDoc{Name: "v1"}))

	doc, err := st.Get(ctx, "things", "t1")
	require.NoError(t, err)
	assert.Equal(t, int64(1), doc.Version)

	require.NoError(t, st.Set(ctx, "things", "t1", testDoc{Name: "v2"}, WithExpectedVersion(1)))

	// Stale version loses the race
	err = st.Set(ctx, "things", "t1", testDoc{Name: "v3"}, WithExpectedVersion(1))
	assert.ErrorIs(t, err, ErrVersionConflict)

	err = st.Set(ctx, "things", "missing", testDoc{}, WithExpectedVersion(1))
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestMemory_Update(t *testing.T) {
	ctx := context.Background()
	st := NewMemory()

	require.NoError(t, st.Create(ctx, "things", "t1", testDoc{IDs: []string{"a"}}))

	err := st.Update(ctx, "things", "t1", []FieldUpdate{
		ArrayUnion("ids", "b"),
		SetField("name", "renamed"),
	})
	require.NoError(t, err)

	doc, err := st.Get(ctx, "things", "t1")
	require.NoError(t, err)
	assert.Equal(t, int64(2), doc.Version)
	assert.JSONEq(t, `{"name":"renamed","ids":["a","b"]}`, string(doc.Data))

	err = st.Update(ctx, "things", "missing", []FieldUpdate{SetField("name", "x")})
	assert.ErrorIs(t, err, ErrNotFound)

	err = st.Update(ctx, "things", "t1", []FieldUpdate{SetField("name", "x")}, WithExpectedVersion(1))
	assert.ErrorIs(t, err, ErrVersionConflict)
}

func TestMemory_DeleteIdempotent(t *testing.T) {
	ctx := context.Background()
	st := NewMemory()

	require.NoError(t, st.Create(ctx, "things", "t1", testDoc{}))
	require.NoError(t, st.Delete(ctx, "things", "t1"))
	require.NoError(t, st.Delete(ctx, "things", "t1"))

	_, err := st.Get(ctx, "things", "t1")
	assert.ErrorIs(t, err, ErrNotFound)
}
