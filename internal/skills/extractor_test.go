package skills

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newExtractor(t *testing.T) *Extractor {
	t.Helper()
	e, err := NewExtractor()
	require.NoError(t, err)
	return e
}

func TestExtract_FindsCuratedSkills(t *testing.T) {
	e := newExtractor(t)
	found := e.Extract("experienced with python and react")
	assert.Contains(t, found, "Python")
	assert.Contains(t, found, "React")
	assert.NotContains(t, found, "Java")
	assert.NotContains(t, found, "Docker")
}

func TestExtract_MultiWordSkills(t *testing.T) {
	e := newExtractor(t)
	found := e.Extract("worked on machine learning and deep learning models")
	assert.Contains(t, found, "Machine Learning")
	assert.Contains(t, found, "Deep Learning")
}

func TestExtract_NoPartialWordMatches(t *testing.T) {
	e := newExtractor(t)
	found := e.Extract("javabeans and pythonic reactive")
	assert.NotContains(t, found, "Java")
	assert.NotContains(t, found, "Python")
	assert.NotContains(t, found, "React")
}

func TestExtract_SpecialCharacterSkills(t *testing.T) {
	e := newExtractor(t)
	found := e.Extract("fluent in c++ and c# with node.js and ui/ux work")
	assert.Contains(t, found, "C++")
	assert.Contains(t, found, "C#")
	assert.Contains(t, found, "Node.js")
	assert.Contains(t, found, "UI/UX")
}

func TestExtract_DeduplicatesVariants(t *testing.T) {
	e := newExtractor(t)
	found := e.Extract("nodejs services alongside node.js tooling")
	count := 0
	for _, s := range found {
		if s == "Node.js" {
			count++
		}
	}
	assert.Equal(t, 1, count)
}

func TestExtract_EmptyResultIsValid(t *testing.T) {
	e := newExtractor(t)
	assert.Empty(t, e.Extract("nothing relevant appears in this sentence"))
}

func TestExtract_Deterministic(t *testing.T) {
	e := newExtractor(t)
	const text = "python react docker kubernetes machine learning"
	assert.Equal(t, e.Extract(text), e.Extract(text))
}

func TestNewExtractorFromJSON_Invalid(t *testing.T) {
	_, err := NewExtractorFromJSON([]byte(`{"skills": []}`))
	assert.Error(t, err)
	_, err = NewExtractorFromJSON([]byte(`not json`))
	assert.Error(t, err)
}
