package intent

import (
	"strings"

	"github.com/space42/astra/internal/knowledge"
)

// UserType labels how a visitor was classified for the session.
// The zero value means the visitor has not been classified yet.
type UserType string

const (
	UserTypeUnset     UserType = ""
	UserTypeCandidate UserType = "candidate"
	UserTypeNewHire   UserType = "new-hire"
)

// Reply is the matcher's output for one user input.
type Reply struct {
	Rule string
	Text string
}

// Rule maps trigger keywords to a templated response. Rules are evaluated
// strictly in slice order and the first eligible rule whose keywords appear
// in the lowercased input wins, so the order of the rule table is observable
// behavior.
type Rule struct {
	Name string

	// Keywords are case-insensitive substrings; any one of them firing
	// makes the rule match.
	Keywords []string

	// Audience restricts which session classifications may fire the rule.
	// Empty means the rule applies to every classification, including unset.
	Audience []UserType

	// Mentions widens eligibility: a rule outside the visitor's audience
	// still applies when the input itself contains one of these substrings.
	Mentions []string

	Render func(kb *knowledge.Base) string
}

func (r Rule) eligible(ut UserType, lowerInput string) bool {
	if len(r.Audience) == 0 {
		return true
	}
	for _, a := range r.Audience {
		if a == ut {
			return true
		}
	}
	return containsAny(lowerInput, r.Mentions)
}

func containsAny(lowerInput string, keywords []string) bool {
	for _, kw := range keywords {
		if strings.Contains(lowerInput, kw) {
			return true
		}
	}
	return false
}
