package timephrase

// Query describes what a date/time utterance is asking for.
// Derived per utterance; scoped to one resolution call.
type Query struct {
	WantsTime    bool
	WantsDate    bool
	WantsDayName bool
	ZonePhrase   string // raw location/zone span after "in"/"for"/"at", "" if absent
}

// zoneTable maps city names and common abbreviations to IANA zone identifiers.
// Abbreviation mapping is best-effort: ambiguous abbreviations resolve to one
// representative zone.
var zoneTable = map[string]string{
	"new york":      "America/New_York",
	"nyc":           "America/New_York",
	"los angeles":   "America/Los_Angeles",
	"la":            "America/Los_Angeles",
	"san francisco": "America/Los_Angeles",
	"london":        "Europe/London",
	"tokyo":         "Asia/Tokyo",
	"paris":         "Europe/Paris",
	"sydney":        "Australia/Sydney",
	"delhi":         "Asia/Kolkata",
	"india":         "Asia/Kolkata",
	"utc":           "UTC",
	"gmt":           "UTC",
	"pst":           "America/Los_Angeles",
	"est":           "America/New_York",
	"cet":           "Europe/Paris",
	"ist":           "Asia/Kolkata",
}
