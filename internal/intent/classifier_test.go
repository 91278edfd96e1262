package intent_test

import (
	"strings"
	"testing"
	"time"

	"nova-assistant/internal/intent"
	"nova-assistant/pkg/timephrase"
)

func newTestClassifier(t *testing.T) *intent.Classifier {
	t.Helper()

	resolver, err := timephrase.New("UTC")
	if err != nil {
		t.Fatalf("failed to create resolver: %v", err)
	}

	// Wednesday, May 1, 2024, 15:30 UTC
	now := func() time.Time { return time.Date(2024, 5, 1, 15, 30, 0, 0, time.UTC) }
	return intent.NewWithClock(resolver, now)
}

func TestClassify_Identity(t *testing.T) {
	c := newTestClassifier(t)

	utterances := []string{
		"what is your name",
		"What Is Your Name?",
		"hey bot, what's your name please",
		"who are you",
		"i was wondering who are you exactly",
	}

	for _, u := range utterances {
		m := c.Classify(u)
		if m.Intent != intent.IntentIdentity {
			t.Errorf("Classify(%q) = %s, want IDENTITY", u, m.Intent)
		}
		if m.Response != intent.ResponseIdentity {
			t.Errorf("Classify(%q) response = %q", u, m.Response)
		}
		if m.Delay != intent.IdentityDelay {
			t.Errorf("Classify(%q) delay = %v", u, m.Delay)
		}
	}
}

func TestClassify_Provenance(t *testing.T) {
	c := newTestClassifier(t)

	utterances := []string{
		"who made you",
		"who developed you",
		"so tell me, who built you?",
		"WHO CREATED YOU",
	}

	for _, u := range utterances {
		m := c.Classify(u)
		if m.Intent != intent.IntentProvenance {
			t.Errorf("Classify(%q) = %s, want PROVENANCE", u, m.Intent)
		}
		if m.Response != intent.ResponseProvenance {
			t.Errorf("Classify(%q) response = %q", u, m.Response)
		}
		if m.Delay != intent.ProvenanceDelay {
			t.Errorf("Classify(%q) delay = %v", u, m.Delay)
		}
	}
}

func TestClassify_DateTime(t *testing.T) {
	c := newTestClassifier(t)

	tests := []struct {
		utterance string
		want      string
	}{
		{"what time is it", "Current time: 3:30 PM"},
		{"time now", "Current time: 3:30 PM"},
		{"what is the date", "Current date: May 1, 2024"},
		{"date and time please", "Current date and time: May 1, 2024, 3:30 PM UTC"},
		{"what day is it", "Today is Wednesday."},
		{"what time is it in tokyo", "Current time: 12:30 AM JST"},
	}

	for _, tt := range tests {
		t.Run(tt.utterance, func(t *testing.T) {
			m := c.Classify(tt.utterance)
			if m.Intent != intent.IntentDateTime {
				t.Fatalf("Classify(%q) = %s, want DATE_TIME", tt.utterance, m.Intent)
			}
			if m.Response != tt.want {
				t.Errorf("Classify(%q) response = %q, want %q", tt.utterance, m.Response, tt.want)
			}
			if m.Delay != 0 {
				t.Errorf("date/time replies carry no artificial delay, got %v", m.Delay)
			}
		})
	}
}

func TestClassify_NoMatch(t *testing.T) {
	c := newTestClassifier(t)

	utterances := []string{
		"tell me a joke",
		"",
		"timely advice would be nice", // "time" alone is not in the bounded vocabulary
		"who made this cake",
	}

	for _, u := range utterances {
		if m := c.Classify(u); m.Intent != intent.IntentNone {
			t.Errorf("Classify(%q) = %s, want NONE", u, m.Intent)
		}
	}
}

func TestClassify_PriorityOrder(t *testing.T) {
	c := newTestClassifier(t)

	// Identity is checked before date/time
	m := c.Classify("what is your name and what time is it")
	if m.Intent != intent.IntentIdentity {
		t.Errorf("identity+datetime utterance classified as %s, want IDENTITY", m.Intent)
	}

	// Provenance is checked before date/time
	m = c.Classify("who made you and what is the date")
	if m.Intent != intent.IntentProvenance {
		t.Errorf("provenance+datetime utterance classified as %s, want PROVENANCE", m.Intent)
	}

	// Date/time-only vocabulary never triggers provenance
	m = c.Classify("what is the date")
	if m.Intent == intent.IntentProvenance {
		t.Errorf("date-only utterance must not classify as PROVENANCE")
	}
}

func TestClassify_Idempotent(t *testing.T) {
	c := newTestClassifier(t)

	for _, u := range []string{"who are you", "what time is it in paris", "tell me a joke"} {
		first := c.Classify(u)
		second := c.Classify(u)
		if first != second {
			t.Errorf("Classify(%q) not idempotent: %+v vs %+v", u, first, second)
		}
	}
}

func TestClassify_DayNameBeforeProfiles(t *testing.T) {
	c := newTestClassifier(t)

	// "what day is it" also matches neither time nor date keyword, but the
	// day-name branch must answer it.
	m := c.Classify("what day is it")
	if !strings.HasPrefix(m.Response, "Today is ") || !strings.HasSuffix(m.Response, ".") {
		t.Errorf("day-name response malformed: %q", m.Response)
	}
}
