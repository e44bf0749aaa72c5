package classify

import (
	"math"

	"github.com/jonathan/resume-analyzer/internal/types"
)

// ConfidenceFloor is the minimum softmax probability below which a prediction
// is reported as Unclassified instead of a low-confidence guess.
const ConfidenceFloor = 0.15

// Classifier applies the registry's frozen model to feature vectors.
type Classifier struct {
	reg   *Registry
	floor float64
}

// NewClassifier constructs a Classifier backed by the given registry.
func NewClassifier(reg *Registry) *Classifier {
	return &Classifier{reg: reg, floor: ConfidenceFloor}
}

// Predict scores the vector against every known label and returns the best
// one with its softmax-normalized probability as confidence. When no label
// clears the confidence floor the label is Unclassified; an unconfident
// answer is still a result, not an error. The only error case is a vector
// whose dimensionality does not match the model.
func (c *Classifier) Predict(vec FeatureVector) (types.Prediction, error) {
	if err := c.reg.Load(); err != nil {
		return types.Prediction{}, err
	}
	if err := c.reg.checkDims(vec); err != nil {
		return types.Prediction{}, err
	}

	m := c.reg.model
	scores := make([]float64, m.Classes)
	for ci := 0; ci < m.Classes; ci++ {
		s := m.Intercepts[ci]
		row := m.Weights[ci]
		for di, v := range vec {
			if v != 0 {
				s += row[di] * v
			}
		}
		scores[ci] = s
	}

	probs := softmax(scores)
	best := 0
	for ci := 1; ci < len(probs); ci++ {
		if probs[ci] > probs[best] {
			best = ci
		}
	}

	label := c.reg.labels[best]
	confidence := math.Round(probs[best]*100) / 100
	if probs[best] < c.floor {
		label = types.UnclassifiedLabel
	}
	return types.Prediction{Label: label, Confidence: confidence}, nil
}

// softmax converts raw scores to a probability distribution. The max score
// is subtracted first for numerical stability.
func softmax(scores []float64) []float64 {
	max := scores[0]
	for _, s := range scores[1:] {
		if s > max {
			max = s
		}
	}

	probs := make([]float64, len(scores))
	var sum float64
	for i, s := range scores {
		probs[i] = math.Exp(s - max)
		sum += probs[i]
	}
	for i := range probs {
		probs[i] /= sum
	}
	return probs
}
