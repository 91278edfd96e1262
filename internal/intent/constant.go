package intent

import "time"

// Canned reply texts.
const (
	ResponseIdentity   = "my name is nova"
	ResponseProvenance = "I was developed by Kartik, Rahul, Manjunath and Prathyaksha."
)

// Artificial reply latencies for canned responses.
const (
	IdentityDelay   = 1000 * time.Millisecond
	ProvenanceDelay = 500 * time.Millisecond
)

// Trigger vocabularies. Matching is case-insensitive substring containment:
// a longer utterance embedding a trigger phrase still matches.
var (
	identityPhrases = []string{
		"what is your name",
		"who are you",
		"what's your name",
	}

	provenancePhrases = []string{
		"who developed you",
		"who made you",
		"who built you",
		"who created you",
	}
)

// dateTimePattern is the word-boundary alternation over the fixed date/time
// vocabulary.
const dateTimePattern = `\b(current time|what time|what's the time|what is the time|current date|what date|what's the date|what is the date|what day is it|date and time|time now)\b`
