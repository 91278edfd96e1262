package timephrase

import (
	"fmt"
	"regexp"
	"strings"
	"time"
)

// Display formats for resolved date/time responses.
const (
	timeFormat     = "3:04 PM"
	dateFormat     = "January 2, 2006"
	dateTimeFormat = "January 2, 2006, 3:04 PM MST"
	zoneFormat     = "MST"
)

// zonePattern captures a free-text location span after "in", "for" or "at".
var zonePattern = regexp.MustCompile(`(?:\bin\b|\bfor\b|\bat\b)\s+([a-z0-9_\-/\s]+)`)

// dayNamePhrase triggers the weekday response and takes precedence over the
// generic time/date profiles.
const dayNamePhrase = "what day is it"

// Resolver formats date/time answers in a default IANA timezone, with
// per-query zone overrides resolved from the utterance.
type Resolver struct {
	location *time.Location
}

// New creates a resolver for the given IANA timezone string, e.g. "America/New_York".
func New(timezone string) (*Resolver, error) {
	loc, err := time.LoadLocation(timezone)
	if err != nil {
		return nil, fmt.Errorf("invalid timezone %q: %w", timezone, err)
	}
	return &Resolver{location: loc}, nil
}

// ParseQuery derives the query flags and zone phrase from a lowercased utterance.
func ParseQuery(utterance string) Query {
	lower := strings.ToLower(utterance)

	q := Query{
		WantsDayName: strings.Contains(lower, dayNamePhrase),
		WantsTime:    strings.Contains(lower, "time") || strings.Contains(lower, "now"),
		WantsDate:    strings.Contains(lower, "date"),
	}

	if m := zonePattern.FindStringSubmatch(lower); m != nil {
		q.ZonePhrase = strings.TrimSpace(m[1])
	}

	return q
}

// ResolveZone maps a location phrase to an IANA zone identifier. Phrases not in
// the table pass through unchanged (the caller may have typed a valid zone);
// an empty phrase resolves to "" meaning the default zone.
func ResolveZone(phrase string) string {
	phrase = strings.ToLower(strings.TrimSpace(phrase))
	if phrase == "" {
		return ""
	}
	if zone, ok := zoneTable[phrase]; ok {
		return zone
	}
	return phrase
}

// Resolve formats the answer sentence for the given query at the given instant.
// Unrecognized zone identifiers silently fall back to the resolver's default
// zone; Resolve never fails.
func (r *Resolver) Resolve(q Query, now time.Time) string {
	loc := r.location
	explicitZone := false

	if zone := ResolveZone(q.ZonePhrase); zone != "" {
		if parsed, err := time.LoadLocation(zone); err == nil {
			loc = parsed
			explicitZone = true
		}
	}

	local := now.In(loc)

	if q.WantsDayName {
		return fmt.Sprintf("Today is %s.", local.Weekday())
	}

	switch {
	case q.WantsTime && !q.WantsDate:
		formatted := local.Format(timeFormat)
		if explicitZone {
			formatted += " " + local.Format(zoneFormat)
		}
		return "Current time: " + formatted
	case q.WantsDate && !q.WantsTime:
		return "Current date: " + local.Format(dateFormat)
	default:
		return "Current date and time: " + local.Format(dateTimeFormat)
	}
}
