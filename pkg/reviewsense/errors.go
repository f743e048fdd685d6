package reviewsense

import "github.com/cognicore/reviewsense/pkg/reviewsense/internalerr"

// AnalysisErrorMessage is the stable message of every AnalysisError.
const AnalysisErrorMessage = "failed to analyze reviews, please try again"

// AnalysisError reports that an internal step of an analysis failed.
// Callers should treat it as retryable; the underlying fault is kept for
// logging only.
type AnalysisError struct {
	cause error
}

func (e *AnalysisError) Error() string {
	return AnalysisErrorMessage
}

// Unwrap makes errors.Is(err, internalerr.ErrAnalysis) true.
func (e *AnalysisError) Unwrap() error {
	return internalerr.ErrAnalysis
}

// Cause returns the internal fault behind the error.
func (e *AnalysisError) Cause() error {
	return e.cause
}
