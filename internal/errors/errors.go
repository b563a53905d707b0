// Package errors provides domain-specific error types and sentinel errors
// for improved error handling across the application.
package errors

import (
	"errors"
	"fmt"
)

// Sentinel errors for common scenarios.
// Use errors.Is() to check these errors in your code.
var (
	// ErrEmptyCatalog indicates the catalog service returned no items.
	ErrEmptyCatalog = errors.New("catalog is empty")

	// ErrInvalidSignature indicates the request signature failed verification.
	ErrInvalidSignature = errors.New("invalid request signature")

	// ErrUnknownInteraction indicates an unrecognized interaction type.
	ErrUnknownInteraction = errors.New("unknown interaction type")

	// ErrUnknownAction indicates a component custom ID with an unexpected prefix.
	ErrUnknownAction = errors.New("unknown component action")
)

// CatalogError represents catalog fetch failures with context.
type CatalogError struct {
	URL        string
	StatusCode int
	Err        error
}

func (e *CatalogError) Error() string {
	if e.StatusCode > 0 {
		return fmt.Sprintf("catalog error (url=%s, status=%d): %v", e.URL, e.StatusCode, e.Err)
	}
	return fmt.Sprintf("catalog error (url=%s): %v", e.URL, e.Err)
}

func (e *CatalogError) Unwrap() error {
	return e.Err
}

// NewCatalogError creates a new catalog error.
func NewCatalogError(url string, statusCode int, err error) *CatalogError {
	return &CatalogError{
		URL:        url,
		StatusCode: statusCode,
		Err:        err,
	}
}
