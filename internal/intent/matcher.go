package intent

import (
	"strings"

	"github.com/space42/astra/internal/knowledge"
)

// Matcher evaluates the ordered rule cascade against user input. It carries
// no mutable state: Match is a pure function of the classification, the
// input text, and the immutable knowledge base, so a Matcher can be shared
// across sessions.
type Matcher struct {
	kb    *knowledge.Base
	rules []Rule
}

func NewMatcher(kb *knowledge.Base) *Matcher {
	if kb == nil {
		kb = knowledge.Default()
	}
	return &Matcher{kb: kb, rules: defaultRules()}
}

// Match selects the single response for the given classification and input.
// Matching never fails: when no rule fires, the per-type topic menu is
// returned.
func (m *Matcher) Match(ut UserType, text string) Reply {
	lower := strings.ToLower(text)
	for _, r := range m.rules {
		if !r.eligible(ut, lower) {
			continue
		}
		if !containsAny(lower, r.Keywords) {
			continue
		}
		return Reply{Rule: r.Name, Text: r.Render(m.kb)}
	}
	if ut == UserTypeNewHire {
		return Reply{Rule: "menu_new_hire", Text: newHireMenuResponse(m.kb)}
	}
	return Reply{Rule: "menu_general", Text: generalMenuResponse(m.kb)}
}

// Respond runs one full routing step. For an unclassified session it first
// attempts classification; a successful classification consumes the turn and
// returns the type-specific welcome instead of an intent response. The
// returned UserType is the classification the caller should apply to the
// session (unchanged when no trigger fired).
func (m *Matcher) Respond(ut UserType, text string) (Reply, UserType) {
	if ut == UserTypeUnset {
		if detected, ok := Classify(text); ok {
			return Reply{Rule: "welcome_" + string(detected), Text: WelcomeFor(detected, m.kb)}, detected
		}
	}
	return m.Match(ut, text), ut
}
