package intent

import "time"

// Intent represents the locally-detected intention of an utterance.
type Intent string

const (
	IntentIdentity   Intent = "IDENTITY"
	IntentProvenance Intent = "PROVENANCE"
	IntentDateTime   Intent = "DATE_TIME"
	IntentNone       Intent = "NONE"
)

// Match is the result of classifying one utterance. Produced fresh per
// utterance; never stored.
type Match struct {
	Intent   Intent
	Response string        // reply text for locally-answered intents, empty for IntentNone
	Delay    time.Duration // artificial latency before the reply is appended
}
