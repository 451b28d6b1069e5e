package domain

import (
	"errors"
)

var (
	// ErrInputRejected signals a lookup query that failed validation.
	ErrInputRejected = errors.New("input rejected")
	// ErrStoreUnavailable signals a dictionary store failure.
	ErrStoreUnavailable = errors.New("dictionary store unavailable")
	// ErrAnalyzerUnavailable signals a missing analyzer binary or stem library.
	ErrAnalyzerUnavailable = errors.New("morphological analyzer unavailable")
	// ErrAnalyzerTimeout signals an analyzer call that exceeded its deadline.
	ErrAnalyzerTimeout = errors.New("morphological analyzer timed out")
	// ErrAnalyzerProcess signals an analyzer process failure.
	ErrAnalyzerProcess = errors.New("morphological analyzer process failed")
	// ErrInvalidParams signals malformed request parameters.
	ErrInvalidParams = errors.New("invalid parameters")
)
