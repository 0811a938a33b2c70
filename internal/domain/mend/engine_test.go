package mend_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/checkmend/checkmend/internal/domain"
	"github.com/checkmend/checkmend/internal/domain/mend"
)

// memStore is an in-memory domain.ArtifactStore for repair tests.
type memStore struct {
	files    map[string]string
	dirs     map[string]bool
	writeErr error
	mkdirErr error
}

func newMemStore() *memStore {
	return &memStore{files: map[string]string{}, dirs: map[string]bool{}}
}

func (m *memStore) Exists(rel string) (bool, error) {
	if _, ok := m.files[rel]; ok {
		return true, nil
	}
	return m.dirs[rel], nil
}

func (m *memStore) IsDir(rel string) (bool, error) { return m.dirs[rel], nil }

func (m *memStore) ReadFile(rel string) ([]byte, error) {
	content, ok := m.files[rel]
	if !ok {
		return nil, errors.New("file does not exist")
	}
	return []byte(content), nil
}

func (m *memStore) WriteFile(rel string, data []byte) error {
	if m.writeErr != nil {
		return m.writeErr
	}
	m.files[rel] = string(data)
	return nil
}

func (m *memStore) MkdirAll(rel string) error {
	if m.mkdirErr != nil {
		return m.mkdirErr
	}
	m.dirs[rel] = true
	return nil
}

func TestApply_CreatesMissingDirectory(t *testing.T) {
	store := newMemStore()
	catalog := domain.Catalog{{Kind: domain.RepairEnsureDir, Path: "d1"}}

	rc := domain.NewRunContext()
	mend.Apply(catalog, store, rc)

	assert.True(t, store.dirs["d1"])
	require.Len(t, rc.Repairs(), 1)
	assert.Equal(t, "Created directory: d1", rc.Repairs()[0].Description)
}

func TestApply_SecondRunIsIdempotent(t *testing.T) {
	store := newMemStore()
	catalog := domain.Catalog{
		{Kind: domain.RepairEnsureDir, Path: "d1"},
		{Kind: domain.RepairEnsureFile, Path: "compose.yml", Content: "version: '3.8'\n"},
	}

	first := domain.NewRunContext()
	mend.Apply(catalog, store, first)
	require.Len(t, first.Repairs(), 2)

	second := domain.NewRunContext()
	mend.Apply(catalog, store, second)

	// Nothing new to do: zero repairs, tree unchanged.
	assert.Empty(t, second.Repairs())
	assert.Empty(t, second.Failures())
	assert.True(t, store.dirs["d1"])
	assert.Equal(t, "version: '3.8'\n", store.files["compose.yml"])
}

func TestApply_WritesDefaultFileContent(t *testing.T) {
	store := newMemStore()
	catalog := domain.Catalog{
		{Kind: domain.RepairEnsureFile, Path: "containerization/docker-compose.bridge.yml",
			Content: "version: '3.8'\n", Description: "Created docker-compose.bridge.yml"},
	}

	rc := domain.NewRunContext()
	mend.Apply(catalog, store, rc)

	assert.Equal(t, "version: '3.8'\n", store.files["containerization/docker-compose.bridge.yml"])
	require.Len(t, rc.Repairs(), 1)
	assert.Equal(t, "Created docker-compose.bridge.yml", rc.Repairs()[0].Description)
}

func TestApply_NeverOverwritesExistingFile(t *testing.T) {
	store := newMemStore()
	store.files["compose.yml"] = "hand-written"
	catalog := domain.Catalog{
		{Kind: domain.RepairEnsureFile, Path: "compose.yml", Content: "template"},
	}

	rc := domain.NewRunContext()
	mend.Apply(catalog, store, rc)

	assert.Equal(t, "hand-written", store.files["compose.yml"])
	assert.Empty(t, rc.Repairs())
}

func TestApply_FailureIsSwallowedAndRecorded(t *testing.T) {
	store := newMemStore()
	store.mkdirErr = errors.New("permission denied")
	catalog := domain.Catalog{
		{Kind: domain.RepairEnsureDir, Path: "d1"},
		{Kind: domain.RepairEnsureFile, Path: "compose.yml", Content: "x"},
	}

	rc := domain.NewRunContext()
	mend.Apply(catalog, store, rc) // must not panic or abort

	// The failed entry is absent from the repair sequence; later entries
	// still ran.
	require.Len(t, rc.Repairs(), 1)
	assert.Equal(t, "Created file: compose.yml", rc.Repairs()[0].Description)

	require.Len(t, rc.Failures(), 1)
	assert.Equal(t, "Created directory: d1", rc.Failures()[0].Description)
	assert.Contains(t, rc.Failures()[0].Reason, "permission denied")
}

func TestApply_UnknownKindIsRecordedAsFailure(t *testing.T) {
	store := newMemStore()
	catalog := domain.Catalog{{Kind: "symlink", Path: "d1"}}

	rc := domain.NewRunContext()
	mend.Apply(catalog, store, rc)

	assert.Empty(t, rc.Repairs())
	require.Len(t, rc.Failures(), 1)
	assert.Contains(t, rc.Failures()[0].Reason, "unknown repair kind")
}
