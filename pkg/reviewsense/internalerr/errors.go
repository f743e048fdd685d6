package internalerr

import "errors"

// Sentinel errors for common cases
var (
	ErrInvalidInput  = errors.New("invalid input")
	ErrInvalidConfig = errors.New("invalid configuration")
	ErrAnalysis      = errors.New("analysis failed")
	ErrTagger        = errors.New("part-of-speech tagger failed")
)
