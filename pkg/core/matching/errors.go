package matching

import "errors"

// Sentinel errors returned by the matching engine. Callers should test with
// errors.Is since most errors are wrapped with additional context.
var (
	// ErrInvalidResponse indicates a malformed or unrecognized answer for its
	// expected shape (e.g. an unknown age bracket or day token).
	ErrInvalidResponse = errors.New("invalid response")

	// ErrUnknownQuestion indicates a question id outside the dispatch table.
	ErrUnknownQuestion = errors.New("unknown question id")

	// ErrAmbiguousRequirement indicates a role requirement flagged true with
	// no descriptive text to categorize.
	ErrAmbiguousRequirement = errors.New("ambiguous requirement")

	// ErrDatasetLoad indicates a missing or unusable role dataset.
	ErrDatasetLoad = errors.New("dataset load failed")

	// ErrInvalidInputType indicates the wrong shape was passed to a rule.
	ErrInvalidInputType = errors.New("invalid input type")
)
