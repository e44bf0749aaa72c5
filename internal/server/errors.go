package server

import (
	"errors"
	"net/http"

	"github.com/jonathan/resume-analyzer/internal/classify"
	"github.com/jonathan/resume-analyzer/internal/history"
	"github.com/jonathan/resume-analyzer/internal/parsing"
)

// HTTPStatus returns the appropriate HTTP status code for an error.
// Invalid input is the client's to fix; storage failures are retryable;
// everything else is internal.
func HTTPStatus(err error) int {
	var invalidErr *parsing.InvalidInputError
	var storageErr *history.StorageError
	var loadErr *classify.ModelLoadError

	switch {
	case errors.As(err, &invalidErr):
		return http.StatusBadRequest
	case errors.As(err, &storageErr):
		return http.StatusServiceUnavailable
	case errors.As(err, &loadErr):
		return http.StatusInternalServerError
	default:
		return http.StatusInternalServerError
	}
}
