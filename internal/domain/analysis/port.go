package analysis

import "context"

// Classifier issues exactly one request per call and returns the raw
// response text. No retry, no streaming, no partial results.
type Classifier interface {
	Classify(ctx context.Context, userInput string) (string, error)
}
