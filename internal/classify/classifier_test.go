package classify

import (
	"testing"

	"github.com/jonathan/resume-analyzer/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func loadedRegistry(t *testing.T) *Registry {
	t.Helper()
	reg := NewRegistry()
	require.NoError(t, reg.Load())
	return reg
}

func TestExtract_KnownTokensProduceNormalizedVector(t *testing.T) {
	reg := loadedRegistry(t)
	vec, err := NewExtractor(reg).Extract([]string{"docker", "kubernetes", "python"})
	require.NoError(t, err)
	require.Len(t, vec, reg.Dims())

	var norm float64
	for _, v := range vec {
		norm += v * v
	}
	assert.InDelta(t, 1.0, norm, 1e-9)
}

func TestExtract_UnknownTokensIgnored(t *testing.T) {
	reg := loadedRegistry(t)
	vec, err := NewExtractor(reg).Extract([]string{"zzzzz", "qqqqq"})
	require.NoError(t, err)
	for _, v := range vec {
		assert.Zero(t, v)
	}
}

func TestPredict_ConfidentCategory(t *testing.T) {
	reg := loadedRegistry(t)
	ext := NewExtractor(reg)
	clf := NewClassifier(reg)

	vec, err := ext.Extract([]string{"docker", "kubernetes", "terraform", "ansible", "jenkins"})
	require.NoError(t, err)

	pred, err := clf.Predict(vec)
	require.NoError(t, err)
	assert.Equal(t, "DevOps/Infrastructure", pred.Label)
	assert.Greater(t, pred.Confidence, ConfidenceFloor)
	assert.LessOrEqual(t, pred.Confidence, 1.0)
}

func TestPredict_DataScienceText(t *testing.T) {
	reg := loadedRegistry(t)
	vec, err := NewExtractor(reg).Extract([]string{"machine", "learning", "tensorflow", "pandas", "numpy", "python"})
	require.NoError(t, err)

	pred, err := NewClassifier(reg).Predict(vec)
	require.NoError(t, err)
	assert.Equal(t, "Data Science", pred.Label)
}

func TestPredict_EmptyVectorIsUnclassified(t *testing.T) {
	reg := loadedRegistry(t)
	vec, err := NewExtractor(reg).Extract(nil)
	require.NoError(t, err)

	pred, err := NewClassifier(reg).Predict(vec)
	require.NoError(t, err)
	assert.Equal(t, types.UnclassifiedLabel, pred.Label)
	assert.GreaterOrEqual(t, pred.Confidence, 0.0)
	assert.Less(t, pred.Confidence, ConfidenceFloor)
}

func TestPredict_LabelAlwaysKnownOrUnclassified(t *testing.T) {
	reg := loadedRegistry(t)
	known := map[string]bool{types.UnclassifiedLabel: true}
	for _, l := range reg.Labels() {
		known[l] = true
	}

	for _, tokens := range [][]string{
		{"python"},
		{"figma", "wireframes"},
		{"quota", "salesforce", "prospecting"},
		{"nothing", "matches", "here"},
	} {
		vec, err := NewExtractor(reg).Extract(tokens)
		require.NoError(t, err)
		pred, err := NewClassifier(reg).Predict(vec)
		require.NoError(t, err)
		assert.True(t, known[pred.Label], "unexpected label %q", pred.Label)
		assert.GreaterOrEqual(t, pred.Confidence, 0.0)
		assert.LessOrEqual(t, pred.Confidence, 1.0)
	}
}

func TestPredict_DimensionMismatch(t *testing.T) {
	reg := loadedRegistry(t)
	_, err := NewClassifier(reg).Predict(make(FeatureVector, 3))
	assert.Error(t, err)
}
