package intent

// companyMentions widens the candidate-facing rules to any visitor who
// names the company directly, even before classification.
var companyMentions = []string{"space42", "company"}

// defaultRules returns the response cascade in priority order. The table is
// the single source of truth for precedence: candidate-facing company rules
// first, then new-hire logistics, then the universal smalltalk rules.
func defaultRules() []Rule {
	candidateOnly := []UserType{UserTypeCandidate}
	newHireOnly := []UserType{UserTypeNewHire}

	return []Rule{
		{
			Name:     "company_merger",
			Keywords: []string{"bayanat", "yahsat", "merger"},
			Audience: candidateOnly,
			Mentions: companyMentions,
			Render:   mergerResponse,
		},
		{
			Name:     "unit_space_services",
			Keywords: []string{"space services", "satellite", "satcom"},
			Audience: candidateOnly,
			Mentions: companyMentions,
			Render:   spaceServicesResponse,
		},
		{
			Name:     "unit_smart_solutions",
			Keywords: []string{"smart solutions", "geospatial", "analytics"},
			Audience: candidateOnly,
			Mentions: companyMentions,
			Render:   smartSolutionsResponse,
		},
		{
			Name:     "application_process",
			Keywords: []string{"apply", "application", "how do i"},
			Audience: candidateOnly,
			Mentions: companyMentions,
			Render:   applicationResponse,
		},
		{
			Name:     "day1_checklist",
			Keywords: []string{"checklist", "day 1", "first day"},
			Audience: newHireOnly,
			Render:   checklistResponse,
		},
		{
			Name:     "security_badge",
			Keywords: []string{"badge", "security", "access"},
			Audience: newHireOnly,
			Render:   badgeResponse,
		},
		{
			Name:     "it_setup",
			Keywords: []string{"laptop", "computer", "it ", "equipment"},
			Audience: newHireOnly,
			Render:   itSetupResponse,
		},
		{
			Name:     "headquarters",
			Keywords: []string{"hq", "headquarters", "abu dhabi", "office", "location", "address"},
			Audience: newHireOnly,
			Render:   headquartersResponse,
		},
		{
			Name:     "dress_code",
			Keywords: []string{"dress", "wear", "attire", "clothing"},
			Audience: newHireOnly,
			Render:   dressCodeResponse,
		},
		{
			Name:     "work_hours",
			Keywords: []string{"hours", "time", "schedule", "when"},
			Audience: newHireOnly,
			Render:   workHoursResponse,
		},
		{
			Name:     "greeting",
			Keywords: []string{"hello", "hi", "hey"},
			Render:   greetingResponse,
		},
		{
			Name:     "thanks",
			Keywords: []string{"thank"},
			Render:   thanksResponse,
		},
	}
}
