package classify

import (
	"fmt"
	"math"
)

// FeatureVector is a fixed-length numeric representation of a token sequence.
// Its dimensionality and ordering are defined by the frozen transformer.
type FeatureVector []float64

// Extractor turns canonical tokens into feature vectors using the registry's
// frozen transformer. Extraction is a pure function of the tokens; it never
// mutates registry state.
type Extractor struct {
	reg *Registry
}

// NewExtractor constructs an Extractor backed by the given registry.
func NewExtractor(reg *Registry) *Extractor {
	return &Extractor{reg: reg}
}

// Extract maps tokens to an L2-normalized TF-IDF vector. Tokens outside the
// frozen vocabulary are ignored. The registry must be loaded.
func (e *Extractor) Extract(tokens []string) (FeatureVector, error) {
	if err := e.reg.Load(); err != nil {
		return nil, err
	}

	t := e.reg.transformer
	vec := make(FeatureVector, len(t.Terms))
	for _, tok := range tokens {
		idx, ok := t.Terms[tok]
		if !ok {
			continue
		}
		vec[idx] += t.IDF[idx]
	}

	var norm float64
	for _, v := range vec {
		norm += v * v
	}
	if norm > 0 {
		norm = math.Sqrt(norm)
		for i := range vec {
			vec[i] /= norm
		}
	}
	return vec, nil
}

// checkDims verifies a vector matches the model's expected dimensionality.
func (r *Registry) checkDims(vec FeatureVector) error {
	if len(vec) != r.model.Dims {
		return fmt.Errorf("feature vector has %d dims, model expects %d", len(vec), r.model.Dims)
	}
	return nil
}
