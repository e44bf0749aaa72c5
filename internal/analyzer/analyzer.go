// Package analyzer composes the preprocessing, classification, skill,
// experience and metrics components into a single analysis pipeline. It is
// the only package the transport layer calls directly.
package analyzer

import (
	"context"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/jonathan/resume-analyzer/internal/classify"
	"github.com/jonathan/resume-analyzer/internal/experience"
	"github.com/jonathan/resume-analyzer/internal/parsing"
	"github.com/jonathan/resume-analyzer/internal/skills"
	"github.com/jonathan/resume-analyzer/internal/textstats"
	"github.com/jonathan/resume-analyzer/internal/types"
)

// Mode selects how much of the pipeline runs.
type Mode string

const (
	// ModeQuick runs normalization, feature extraction and classification only.
	ModeQuick Mode = "quick"
	// ModeDeep runs the full component set.
	ModeDeep Mode = "deep"
)

// maxKeywords bounds the keyword list on deep results.
const maxKeywords = 20

// Input lengths outside this range still analyze fine but are logged, since
// they rarely produce a meaningful classification.
const (
	minUsefulChars = 50
	maxUsefulChars = 10000
)

// Analyzer orchestrates one analysis run per call. It is stateless between
// calls; the model registry it holds is read-only after load.
type Analyzer struct {
	extractor  *classify.Extractor
	classifier *classify.Classifier
	skills     *skills.Extractor
	estimator  *experience.Estimator
	log        *zap.Logger
}

// Option applies a configuration option to the Analyzer.
type Option func(*Analyzer)

// WithLogger sets a custom logger for the analyzer.
func WithLogger(log *zap.Logger) Option {
	return func(a *Analyzer) {
		if log != nil {
			a.log = log
		}
	}
}

// New constructs an Analyzer around a model registry. The registry does not
// have to be loaded yet; the first analysis blocks on the load barrier.
func New(reg *classify.Registry, skillExtractor *skills.Extractor, opts ...Option) *Analyzer {
	a := &Analyzer{
		extractor:  classify.NewExtractor(reg),
		classifier: classify.NewClassifier(reg),
		skills:     skillExtractor,
		estimator:  experience.NewEstimator(),
		log:        zap.NewNop(),
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// Analyze runs the pipeline on raw resume text. The only error surfaced to
// callers for well-formed input is InvalidInputError on empty text; component
// low-information outcomes (no skills found, Unknown experience) are valid
// results. The returned result is immutable.
func (a *Analyzer) Analyze(ctx context.Context, text string, mode Mode) (*types.AnalysisResult, error) {
	start := time.Now()

	sanitized := parsing.Sanitize(text)
	if n := len(sanitized); n > 0 && n < minUsefulChars {
		a.log.Warn("resume text is very short", zap.Int("chars", n))
	} else if n > maxUsefulChars {
		a.log.Warn("resume text is very long", zap.Int("chars", n))
	}
	normText, err := parsing.NormalizeText(sanitized)
	if err != nil {
		return nil, err
	}
	tokens := parsing.Tokenize(normText)

	vec, err := a.extractor.Extract(tokens)
	if err != nil {
		return nil, err
	}
	pred, err := a.classifier.Predict(vec)
	if err != nil {
		return nil, err
	}

	b := newResultBuilder(time.Now().UTC()).
		withPrediction(pred).
		withSource(sanitized)

	if mode == ModeDeep {
		var (
			found    []string
			level    types.ExperienceLevel
			metrics  types.Metrics
			sections []string
		)

		g, _ := errgroup.WithContext(ctx)
		g.Go(func() error {
			found = a.skills.Extract(normText)
			return nil
		})
		g.Go(func() error {
			level = a.estimator.Estimate(sanitized, tokens)
			return nil
		})
		g.Go(func() error {
			metrics = textstats.Compute(sanitized)
			sections = parsing.DetectSections(sanitized)
			return nil
		})
		if err := g.Wait(); err != nil {
			return nil, err
		}

		b.withSkills(found).
			withExperience(level).
			withMetrics(metrics).
			withSections(sections).
			withKeywords(topKeywords(tokens, maxKeywords))
	}

	result := b.withSummary(buildSummary(b.r.JobCategory, b.r.Confidence, b.r.Skills)).build()

	a.log.Debug("analysis completed",
		zap.String("resume_id", result.ResumeID),
		zap.String("mode", string(mode)),
		zap.String("category", result.JobCategory),
		zap.Float64("confidence", result.Confidence),
		zap.Duration("elapsed", time.Since(start)),
	)
	return result, nil
}

// topKeywords returns the first n distinct canonical tokens in order of
// appearance.
func topKeywords(tokens []string, n int) []string {
	seen := make(map[string]struct{}, n)
	out := make([]string, 0, n)
	for _, tok := range tokens {
		if _, dup := seen[tok]; dup {
			continue
		}
		seen[tok] = struct{}{}
		out = append(out, tok)
		if len(out) == n {
			break
		}
	}
	return out
}
