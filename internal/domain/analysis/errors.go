package analysis

import "errors"

var (
	// ErrMissingAPIKey indicates no classifier credential is configured.
	// It must surface before any network I/O is attempted.
	ErrMissingAPIKey = errors.New("classifier api key is not configured")

	// ErrRequestFailed indicates a transport or provider failure. Provider
	// detail is wrapped for diagnostic logging, never shown to end users.
	ErrRequestFailed = errors.New("classification request failed")

	// ErrEmptyResponse indicates the classifier returned nothing usable.
	ErrEmptyResponse = errors.New("empty response from classifier")

	// ErrInvalidJSON indicates the response could not be parsed after
	// fence stripping.
	ErrInvalidJSON = errors.New("classifier response is not valid json")

	// ErrIncompleteResult indicates score or summary is missing or wrongly
	// typed in an otherwise parseable response.
	ErrIncompleteResult = errors.New("classifier response is missing score or summary")
)

// IsValidationError reports whether err belongs to the validation class
// (empty, unparseable, or incomplete classifier output).
func IsValidationError(err error) bool {
	return errors.Is(err, ErrEmptyResponse) ||
		errors.Is(err, ErrInvalidJSON) ||
		errors.Is(err, ErrIncompleteResult)
}
