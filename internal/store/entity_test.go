package store_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/YOHANEKUMWENDA/bookstore-application/internal/store"
)

type TestEntity struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

func setupTestStore(t *testing.T) (*store.Store, func()) {
	t.Helper()

	tmpDir, err := os.MkdirTemp("", "entity-test-*")
	require.NoError(t, err)

	dbPath := filepath.Join(tmpDir, "test.db")
	s, err := store.New(dbPath, nil)
	require.NoError(t, err)

	cleanup := func() {
		_ = s.Close()
		_ = os.RemoveAll(tmpDir)
	}

	return s, cleanup
}

func TestEntity_Create_Success(t *testing.T) {
	s, cleanup := setupTestStore(t)
	defer cleanup()

	entity := store.NewEntity[TestEntity](s, "test:")

	testData := &TestEntity{
		ID:    "1",
		Name:  "John Doe",
		Email: "john@example.com",
	}

	err := entity.Create(context.Background(), "1", testData)
	require.NoError(t, err)

	retrieved, err := entity.Get(context.Background(), "1")
	require.NoError(t, err)
	require.Equal(t, testData.Name, retrieved.Name)
	require.Equal(t, testData.Email, retrieved.Email)
}

func TestEntity_Create_AlreadyExists(t *testing.T) {
	s, cleanup := setupTestStore(t)
	defer cleanup()

	entity := store.NewEntity[TestEntity](s, "test:")

	testData := &TestEntity{ID: "1", Name: "John Doe", Email: "john@example.com"}

	err := entity.Create(context.Background(), "1", testData)
	require.NoError(t, err)

	err = entity.Create(context.Background(), "1", testData)
	require.ErrorIs(t, err, store.ErrAlreadyExists)
}

func TestEntity_Get_NotFound(t *testing.T) {
	s, cleanup := setupTestStore(t)
	defer cleanup()

	entity := store.NewEntity[TestEntity](s, "test:")

	retrieved, err := entity.Get(context.Background(), "nonexistent")
	require.ErrorIs(t, err, store.ErrNotFound)
	require.Nil(t, retrieved)
}

func TestEntity_GetByIndex(t *testing.T) {
	s, cleanup := setupTestStore(t)
	defer cleanup()

	entity := store.NewEntity[TestEntity](s, "test:").
		WithIndex("email", func(e *TestEntity) []string {
			return []string{e.Email}
		})

	testData := &TestEntity{ID: "1", Name: "John Doe", Email: "john@example.com"}
	require.NoError(t, entity.Create(context.Background(), "1", testData))

	retrieved, err := entity.GetByIndex(context.Background(), "email", "john@example.com")
	require.NoError(t, err)
	require.Equal(t, "1", retrieved.ID)

	_, err = entity.GetByIndex(context.Background(), "email", "nobody@example.com")
	require.ErrorIs(t, err, store.ErrNotFound)
}

func TestEntity_IndexConflict(t *testing.T) {
	s, cleanup := setupTestStore(t)
	defer cleanup()

	entity := store.NewEntity[TestEntity](s, "test:").
		WithIndex("email", func(e *TestEntity) []string {
			return []string{e.Email}
		})

	require.NoError(t, entity.Create(context.Background(), "1",
		&TestEntity{ID: "1", Name: "John", Email: "shared@example.com"}))

	err := entity.Create(context.Background(), "2",
		&TestEntity{ID: "2", Name: "Jane", Email: "shared@example.com"})
	require.ErrorIs(t, err, store.ErrAlreadyExists)
}

func TestEntity_Update(t *testing.T) {
	s, cleanup := setupTestStore(t)
	defer cleanup()

	entity := store.NewEntity[TestEntity](s, "test:").
		WithIndex("email", func(e *TestEntity) []string {
			return []string{e.Email}
		})

	require.NoError(t, entity.Create(context.Background(), "1",
		&TestEntity{ID: "1", Name: "John", Email: "john@example.com"}))

	// Change the indexed field; the old index entry should be released
	require.NoError(t, entity.Update(context.Background(), "1",
		&TestEntity{ID: "1", Name: "John", Email: "new@example.com"}))

	retrieved, err := entity.GetByIndex(context.Background(), "email", "new@example.com")
	require.NoError(t, err)
	require.Equal(t, "1", retrieved.ID)

	_, err = entity.GetByIndex(context.Background(), "email", "john@example.com")
	require.ErrorIs(t, err, store.ErrNotFound)
}

func TestEntity_Update_NotFound(t *testing.T) {
	s, cleanup := setupTestStore(t)
	defer cleanup()

	entity := store.NewEntity[TestEntity](s, "test:")

	err := entity.Update(context.Background(), "missing", &TestEntity{ID: "missing"})
	require.ErrorIs(t, err, store.ErrNotFound)
}

func TestEntity_Delete(t *testing.T) {
	s, cleanup := setupTestStore(t)
	defer cleanup()

	entity := store.NewEntity[TestEntity](s, "test:").
		WithIndex("email", func(e *TestEntity) []string {
			return []string{e.Email}
		})

	require.NoError(t, entity.Create(context.Background(), "1",
		&TestEntity{ID: "1", Name: "John", Email: "john@example.com"}))

	require.NoError(t, entity.Delete(context.Background(), "1"))

	_, err := entity.Get(context.Background(), "1")
	require.ErrorIs(t, err, store.ErrNotFound)

	// Index entry is released too
	_, err = entity.GetByIndex(context.Background(), "email", "john@example.com")
	require.ErrorIs(t, err, store.ErrNotFound)

	// Idempotent
	require.NoError(t, entity.Delete(context.Background(), "1"))
}

func TestEntity_List(t *testing.T) {
	s, cleanup := setupTestStore(t)
	defer cleanup()

	entity := store.NewEntity[TestEntity](s, "test:").
		WithIndex("email", func(e *TestEntity) []string {
			return []string{e.Email}
		})

	require.NoError(t, entity.Create(context.Background(), "1",
		&TestEntity{ID: "1", Name: "John", Email: "john@example.com"}))
	require.NoError(t, entity.Create(context.Background(), "2",
		&TestEntity{ID: "2", Name: "Jane", Email: "jane@example.com"}))

	var names []string
	for e, err := range entity.List(context.Background()) {
		require.NoError(t, err)
		names = append(names, e.Name)
	}

	// Index entries must not leak into the listing
	require.Len(t, names, 2)
	require.ElementsMatch(t, []string{"John", "Jane"}, names)
}
