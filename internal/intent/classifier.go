package intent

import "strings"

// Trigger sets for the one-shot visitor classification. Candidate triggers
// are evaluated first: input matching both sets classifies as candidate.
var (
	candidateTriggers = []string{"candidate", "career", "job", "apply", "opportunit"}
	newHireTriggers   = []string{"new hire", "day 1", "first day", "onboarding", "starting"}
)

// Classify inspects free text for classification triggers. It reports the
// detected visitor type and whether any trigger fired. Callers are expected
// to apply the result to the session at most once; Classify itself is
// stateless.
func Classify(text string) (UserType, bool) {
	lower := strings.ToLower(text)
	if containsAny(lower, candidateTriggers) {
		return UserTypeCandidate, true
	}
	if containsAny(lower, newHireTriggers) {
		return UserTypeNewHire, true
	}
	return UserTypeUnset, false
}
