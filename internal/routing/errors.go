package routing

import "errors"

// Domain-specific errors for the routing package.
var (
	// ErrEmbeddingOracle marks an embedding oracle failure. It is fatal
	// for the current Route call: both the semantic fallback and the
	// mandatory similarity audit depend on the utterance vector, so no
	// degraded path exists. Retry policy belongs to the caller.
	ErrEmbeddingOracle = errors.New("embedding oracle failure")
)
