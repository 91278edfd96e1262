package intent

import (
	"time"

	"nova-assistant/pkg/timephrase"
)

// New creates a classifier that resolves date/time intents with the given
// resolver.
func New(resolver *timephrase.Resolver) *Classifier {
	return NewWithClock(resolver, time.Now)
}

// NewWithClock creates a classifier with an injected clock, for tests.
func NewWithClock(resolver *timephrase.Resolver, now func() time.Time) *Classifier {
	c := &Classifier{
		resolver: resolver,
		now:      now,
	}
	c.buildRules()
	return c
}
