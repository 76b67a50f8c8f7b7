package policy

import "regexp"

var (
	emailPattern = regexp.MustCompile(`[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}`)
	// Emirates ID: 784-YYYY-NNNNNNN-N, with or without separators.
	emiratesIDPattern = regexp.MustCompile(`\b784[- ]?\d{4}[- ]?\d{7}[- ]?\d\b`)
	phonePattern      = regexp.MustCompile(`\+?[0-9][0-9\-() ]{7,}[0-9]`)
)

// RedactPII masks contact details and identity numbers that visitors tend to
// paste into the chat while asking about their application. Transcripts are
// stored redacted; the assistant never needs the raw values.
func RedactPII(input string) (redacted string, changed bool) {
	out := input

	next := emailPattern.ReplaceAllString(out, "[REDACTED_EMAIL]")
	changed = changed || next != out
	out = next

	// Run Emirates ID redaction before phone so the 15-digit ID is not
	// half-consumed as a phone number.
	next = emiratesIDPattern.ReplaceAllString(out, "[REDACTED_EMIRATES_ID]")
	changed = changed || next != out
	out = next

	next = phonePattern.ReplaceAllString(out, "[REDACTED_PHONE]")
	changed = changed || next != out
	out = next

	return out, changed
}
