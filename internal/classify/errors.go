package classify

import "fmt"

// ModelLoadError indicates a frozen artifact is missing or structurally
// incompatible. It is fatal: raised once at startup and never retried.
type ModelLoadError struct {
	Artifact string
	Err      error
}

func (e *ModelLoadError) Error() string {
	return fmt.Sprintf("failed to load model artifact %s: %v", e.Artifact, e.Err)
}

func (e *ModelLoadError) Unwrap() error {
	return e.Err
}
