package intent

import (
	"regexp"
	"strings"
	"time"

	"nova-assistant/pkg/timephrase"
)

var dateTimeRegexp = regexp.MustCompile(dateTimePattern)

// rule is one entry in the ordered classification table.
type rule struct {
	matches func(lower string) bool
	build   func(lower string) Match
}

// Classifier evaluates an utterance against an ordered rule table.
// Rules are evaluated in fixed priority order and the first match wins:
// identity, provenance, date/time, none.
type Classifier struct {
	resolver *timephrase.Resolver
	now      func() time.Time
	rules    []rule
}

// Classify returns the first matching rule's result for the utterance.
// Pure with respect to classifier state: the same utterance always yields the
// same intent.
func (c *Classifier) Classify(utterance string) Match {
	lower := strings.ToLower(utterance)

	for _, r := range c.rules {
		if r.matches(lower) {
			return r.build(lower)
		}
	}

	return Match{Intent: IntentNone}
}

func (c *Classifier) buildRules() {
	c.rules = []rule{
		{
			matches: func(lower string) bool { return containsAny(lower, identityPhrases) },
			build: func(string) Match {
				return Match{Intent: IntentIdentity, Response: ResponseIdentity, Delay: IdentityDelay}
			},
		},
		{
			matches: func(lower string) bool { return containsAny(lower, provenancePhrases) },
			build: func(string) Match {
				return Match{Intent: IntentProvenance, Response: ResponseProvenance, Delay: ProvenanceDelay}
			},
		},
		{
			matches: dateTimeRegexp.MatchString,
			build: func(lower string) Match {
				q := timephrase.ParseQuery(lower)
				return Match{Intent: IntentDateTime, Response: c.resolver.Resolve(q, c.now())}
			},
		},
	}
}

func containsAny(s string, phrases []string) bool {
	for _, phrase := range phrases {
		if strings.Contains(s, phrase) {
			return true
		}
	}
	return false
}
