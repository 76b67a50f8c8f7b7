package knowledge

// Base holds the static company reference tables the assistant answers from.
// Instances are treated as immutable after construction and can be shared
// across sessions without synchronization.
type Base struct {
	Overview       string
	SpaceServices  BusinessUnit
	SmartSolutions BusinessUnit
	Locations      Locations
	Culture        Culture
	Checklist      []ChecklistItem
}

type BusinessUnit struct {
	Name        string
	Description string
	KeyAreas    []string
}

type Locations struct {
	Headquarters string
	Offices      []string
}

type Culture struct {
	DressCode string
	WorkHours string
	Values    []string
}

// ChecklistItem is one Day 1 onboarding step.
type ChecklistItem struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Location    string `json:"location"`
}

// Default returns the Space42 knowledge base.
func Default() *Base {
	return &Base{
		Overview: "Space42 is a UAE-based AI-powered SpaceTech company formed from the merger of Bayanat (geospatial analytics leader) and Yahsat (satellite communications pioneer). We are headquartered in Abu Dhabi.",
		SpaceServices: BusinessUnit{
			Name:        "Space Services",
			Description: "Operates satellite communications, mobility solutions, and managed services. Leverages Yahsat's heritage in satellite operations.",
			KeyAreas: []string{
				"Satellite Communications",
				"Maritime & Aviation Connectivity",
				"Government Communications",
				"Broadband Services",
			},
		},
		SmartSolutions: BusinessUnit{
			Name:        "Smart Solutions",
			Description: "Delivers AI-powered geospatial analytics and smart city solutions. Built on Bayanat's expertise in data analytics.",
			KeyAreas: []string{
				"Geospatial Analytics",
				"Earth Observation",
				"AI/ML for Satellite Data",
				"Smart City Solutions",
			},
		},
		Locations: Locations{
			Headquarters: "Abu Dhabi, UAE - Masdar City",
			Offices:      []string{"Al Yah Satellite Communications Company building in Abu Dhabi"},
		},
		Culture: Culture{
			DressCode: "Business casual is the norm. Smart attire for client meetings.",
			WorkHours: "Sunday to Thursday, 8:00 AM to 5:00 PM (UAE Standard Time)",
			Values:    []string{"Innovation", "Excellence", "Integrity", "Collaboration", "UAE Vision"},
		},
		Checklist: []ChecklistItem{
			{
				ID:          "badge",
				Title:       "Collect Your Security Badge",
				Description: "Visit the Security Office on the ground floor with your ID to collect your access badge.",
				Location:    "Ground Floor, Security Office",
			},
			{
				ID:          "laptop",
				Title:       "Set Up Your Workstation",
				Description: "IT will provide your laptop and help you set up email, VPN, and required software.",
				Location:    "IT Help Desk, Floor 2",
			},
			{
				ID:          "team",
				Title:       "Meet Your Team",
				Description: "Your manager will introduce you to your team members and show you around the office.",
				Location:    "Your Department Area",
			},
			{
				ID:          "hr",
				Title:       "Complete HR Paperwork",
				Description: "Finalize any remaining documentation with the HR team.",
				Location:    "HR Office, Floor 3",
			},
			{
				ID:          "orientation",
				Title:       "Attend New Hire Orientation",
				Description: "Learn about Space42's mission, values, and policies in the welcome session.",
				Location:    "Conference Room A, Floor 1",
			},
		},
	}
}
