package classify

import (
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegistry_LoadEmbeddedArtifacts(t *testing.T) {
	reg := NewRegistry()
	require.NoError(t, reg.Load())
	assert.True(t, reg.Loaded())
	assert.Greater(t, reg.Dims(), 0)
	assert.NotEmpty(t, reg.Labels())
}

func TestRegistry_LoadIsIdempotent(t *testing.T) {
	reg := NewRegistry()
	require.NoError(t, reg.Load())
	require.NoError(t, reg.Load())
}

func TestRegistry_ConcurrentLoad(t *testing.T) {
	reg := NewRegistry()

	var wg sync.WaitGroup
	errs := make([]error, 16)
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			errs[i] = reg.Load()
		}(i)
	}
	wg.Wait()

	for _, err := range errs {
		assert.NoError(t, err)
	}
	assert.True(t, reg.Loaded())
}

func TestRegistry_MissingArtifact(t *testing.T) {
	reg := NewRegistry(WithModelDir(t.TempDir()))
	err := reg.Load()
	require.Error(t, err)
	var loadErr *ModelLoadError
	assert.ErrorAs(t, err, &loadErr)
	assert.False(t, reg.Loaded())
}

func TestRegistry_LoadFailureIsNotRetried(t *testing.T) {
	reg := NewRegistry(WithModelDir(t.TempDir()))
	first := reg.Load()
	second := reg.Load()
	require.Error(t, first)
	assert.Equal(t, first, second)
}

func TestRegistry_RejectsVocabularyMismatch(t *testing.T) {
	dir := t.TempDir()
	writeArtifact(t, dir, vocabularyFile, `{"terms": {"python": 0, "docker": 1}, "idf": [1.5]}`)
	writeArtifact(t, dir, modelFile, `{"classes": 2, "dims": 2, "weights": [[1, 0], [0, 1]], "intercepts": [0, 0]}`)
	writeArtifact(t, dir, labelsFile, `{"labels": ["A", "B"]}`)

	err := NewRegistry(WithModelDir(dir)).Load()
	require.Error(t, err)
	var loadErr *ModelLoadError
	require.ErrorAs(t, err, &loadErr)
	assert.Equal(t, vocabularyFile, loadErr.Artifact)
}

func TestRegistry_RejectsDimsMismatch(t *testing.T) {
	dir := t.TempDir()
	writeArtifact(t, dir, vocabularyFile, `{"terms": {"python": 0, "docker": 1}, "idf": [1.5, 1.5]}`)
	writeArtifact(t, dir, modelFile, `{"classes": 2, "dims": 3, "weights": [[1, 0, 0], [0, 1, 0]], "intercepts": [0, 0]}`)
	writeArtifact(t, dir, labelsFile, `{"labels": ["A", "B"]}`)

	err := NewRegistry(WithModelDir(dir)).Load()
	require.Error(t, err)
	var loadErr *ModelLoadError
	require.ErrorAs(t, err, &loadErr)
	assert.Equal(t, modelFile, loadErr.Artifact)
}

func TestRegistry_RejectsMalformedSchema(t *testing.T) {
	dir := t.TempDir()
	writeArtifact(t, dir, vocabularyFile, `{"terms": "not-an-object"}`)
	writeArtifact(t, dir, modelFile, `{"classes": 2, "dims": 1, "weights": [[1], [1]], "intercepts": [0, 0]}`)
	writeArtifact(t, dir, labelsFile, `{"labels": ["A", "B"]}`)

	err := NewRegistry(WithModelDir(dir)).Load()
	require.Error(t, err)
	var loadErr *ModelLoadError
	assert.ErrorAs(t, err, &loadErr)
}

func writeArtifact(t *testing.T, dir, name, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644))
}
