// Package classify owns the frozen classification artifacts: the TF-IDF
// feature transformer, the linear classifier model, and the label decoder.
// Artifacts are loaded exactly once per process and are read-only afterwards,
// so concurrent access needs no further synchronization.
package classify

import (
	"embed"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"sync/atomic"

	"github.com/xeipuuv/gojsonschema"
	"go.uber.org/zap"
)

//go:embed artifacts/*.json
var defaultArtifacts embed.FS

// Artifact file names within the model directory.
const (
	vocabularyFile = "vocabulary.json"
	modelFile      = "model.json"
	labelsFile     = "labels.json"
)

// transformer maps canonical tokens to a fixed-dimensionality TF-IDF vector.
// Vocabulary and idf weights were computed at training time and are frozen.
type transformer struct {
	Terms map[string]int `json:"terms"`
	IDF   []float64      `json:"idf"`
}

// linearModel scores a feature vector against every known label.
type linearModel struct {
	Classes    int         `json:"classes"`
	Dims       int         `json:"dims"`
	Weights    [][]float64 `json:"weights"`
	Intercepts []float64   `json:"intercepts"`
}

// Registry owns the frozen artifacts. The zero value is not usable; construct
// with NewRegistry. Load is a one-time initialization barrier: the first
// caller performs the load, concurrent callers block until it completes, and
// the outcome (including failure) is never recomputed.
type Registry struct {
	dir string
	log *zap.Logger

	once    sync.Once
	loadErr error
	loaded  atomic.Bool

	transformer *transformer
	model       *linearModel
	labels      []string
}

// RegistryOption applies a configuration option to the Registry.
type RegistryOption func(*Registry)

// WithModelDir loads artifacts from the given directory instead of the
// embedded defaults.
func WithModelDir(dir string) RegistryOption {
	return func(r *Registry) {
		r.dir = dir
	}
}

// WithLogger sets a custom logger for the registry.
func WithLogger(log *zap.Logger) RegistryOption {
	return func(r *Registry) {
		if log != nil {
			r.log = log
		}
	}
}

// NewRegistry constructs a Registry. No artifact is touched until Load.
func NewRegistry(opts ...RegistryOption) *Registry {
	r := &Registry{log: zap.NewNop()}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Load loads and validates all artifacts. It is idempotent and safe to call
// concurrently; a failure is fatal and repeated calls return the same error.
func (r *Registry) Load() error {
	r.once.Do(func() {
		r.loadErr = r.load()
		if r.loadErr == nil {
			r.loaded.Store(true)
			r.log.Info("model artifacts loaded",
				zap.Int("vocabulary_size", len(r.transformer.Terms)),
				zap.Int("classes", r.model.Classes),
				zap.String("source", r.source()),
			)
		}
	})
	return r.loadErr
}

// Loaded reports whether all artifacts are loaded and validated.
func (r *Registry) Loaded() bool {
	return r.loaded.Load()
}

// Labels returns the known category names in decoder order.
func (r *Registry) Labels() []string {
	out := make([]string, len(r.labels))
	copy(out, r.labels)
	return out
}

// Dims returns the feature vector dimensionality the model expects.
func (r *Registry) Dims() int {
	if r.model == nil {
		return 0
	}
	return r.model.Dims
}

func (r *Registry) source() string {
	if r.dir != "" {
		return r.dir
	}
	return "embedded"
}

func (r *Registry) load() error {
	var t transformer
	if err := r.loadArtifact(vocabularyFile, vocabularySchema, &t); err != nil {
		return err
	}

	var m linearModel
	if err := r.loadArtifact(modelFile, modelSchema, &m); err != nil {
		return err
	}

	var l struct {
		Labels []string `json:"labels"`
	}
	if err := r.loadArtifact(labelsFile, labelsSchema, &l); err != nil {
		return err
	}

	// Cross-checks: the three artifacts must agree on dimensionality.
	if len(t.IDF) != len(t.Terms) {
		return &ModelLoadError{Artifact: vocabularyFile,
			Err: fmt.Errorf("idf length %d does not match vocabulary size %d", len(t.IDF), len(t.Terms))}
	}
	if m.Dims != len(t.Terms) {
		return &ModelLoadError{Artifact: modelFile,
			Err: fmt.Errorf("model dims %d does not match vocabulary size %d", m.Dims, len(t.Terms))}
	}
	if len(m.Weights) != m.Classes || len(m.Intercepts) != m.Classes {
		return &ModelLoadError{Artifact: modelFile,
			Err: fmt.Errorf("weight rows %d / intercepts %d do not match class count %d",
				len(m.Weights), len(m.Intercepts), m.Classes)}
	}
	for i, row := range m.Weights {
		if len(row) != m.Dims {
			return &ModelLoadError{Artifact: modelFile,
				Err: fmt.Errorf("weight row %d has %d dims, expected %d", i, len(row), m.Dims)}
		}
	}
	if len(l.Labels) != m.Classes {
		return &ModelLoadError{Artifact: labelsFile,
			Err: fmt.Errorf("decoder has %d labels, model has %d classes", len(l.Labels), m.Classes)}
	}

	r.transformer = &t
	r.model = &m
	r.labels = l.Labels
	return nil
}

func (r *Registry) loadArtifact(name, schema string, dst any) error {
	data, err := r.readArtifact(name)
	if err != nil {
		return &ModelLoadError{Artifact: name, Err: err}
	}

	result, err := gojsonschema.Validate(
		gojsonschema.NewStringLoader(schema),
		gojsonschema.NewBytesLoader(data),
	)
	if err != nil {
		return &ModelLoadError{Artifact: name, Err: err}
	}
	if !result.Valid() {
		errs := result.Errors()
		msgs := make([]string, 0, len(errs))
		for _, e := range errs {
			msgs = append(msgs, e.String())
		}
		return &ModelLoadError{Artifact: name,
			Err: fmt.Errorf("schema validation failed: %v", msgs)}
	}

	if err := json.Unmarshal(data, dst); err != nil {
		return &ModelLoadError{Artifact: name, Err: err}
	}
	return nil
}

func (r *Registry) readArtifact(name string) ([]byte, error) {
	if r.dir != "" {
		return os.ReadFile(filepath.Join(r.dir, name))
	}
	return defaultArtifacts.ReadFile("artifacts/" + name)
}
