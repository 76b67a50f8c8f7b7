package intent

import (
	"fmt"
	"strings"

	"github.com/space42/astra/internal/knowledge"
)

// WelcomeText is the assistant turn every new session is seeded with.
const WelcomeText = "Hi! I'm Astra, your Space42 Guide. 🚀\n\nAre you exploring career opportunities at Space42, or are you a new hire getting ready for Day 1?"

// WelcomeFor returns the one-time greeting emitted when a session is first
// classified. It is distinct from the ordinary intent responses.
func WelcomeFor(ut UserType, kb *knowledge.Base) string {
	switch ut {
	case UserTypeCandidate:
		return fmt.Sprintf("Welcome, future Space42 team member! 🌟\n\nI'm here to help you learn about our exciting opportunities. We have two main business units:\n\n**%s** - Satellite communications & connectivity\n**%s** - AI-powered geospatial analytics\n\nWhat would you like to know more about? You can ask about specific roles, our company culture, or the application process!",
			kb.SpaceServices.Name, kb.SmartSolutions.Name)
	case UserTypeNewHire:
		return "Welcome to Space42! 🎉 Congratulations on joining our mission to transform space technology!\n\nI can help you with:\n• Your Day 1 Checklist\n• Office locations & facilities\n• Company policies & culture\n• Meeting your team\n\nWould you like me to show you your onboarding checklist, or do you have specific questions?"
	default:
		return WelcomeText
	}
}

func mergerResponse(*knowledge.Base) string {
	return "Space42 was formed from the merger of two UAE space industry leaders:\n\n**Bayanat** - A pioneer in geospatial intelligence and AI analytics\n**Yahsat** - The UAE's flagship satellite communications company\n\nThis merger created a unique AI-powered SpaceTech company capable of delivering end-to-end space and smart solutions. We're now one of the region's most ambitious space technology companies!"
}

func spaceServicesResponse(kb *knowledge.Base) string {
	return fmt.Sprintf("**%s** is one of our core business units:\n\n%s\n\n**Key Areas:**\n%s\n\nWe have roles like Satellite Operations Engineer and SatCom Systems Specialist. Would you like to explore specific positions?",
		kb.SpaceServices.Name, kb.SpaceServices.Description, bulletList(kb.SpaceServices.KeyAreas))
}

func smartSolutionsResponse(kb *knowledge.Base) string {
	return fmt.Sprintf("**%s** leverages AI and satellite data:\n\n%s\n\n**Key Areas:**\n%s\n\nRoles include Geospatial Analyst and AI/ML Engineer. Interested in learning more?",
		kb.SmartSolutions.Name, kb.SmartSolutions.Description, bulletList(kb.SmartSolutions.KeyAreas))
}

func applicationResponse(*knowledge.Base) string {
	return "Our application process is unique! 🎯\n\nInstead of just reviewing resumes, we use **Skill-to-Mission Mapping** to match your abilities with the right team:\n\n1. **Upload your CV** (optional)\n2. **Complete a problem-solving challenge**\n3. **Answer written questions**\n4. **Record a voice response**\n5. **AI provides personalized recommendations**\n\nScroll down on the home page to see our open positions and start your application!"
}

func checklistResponse(kb *knowledge.Base) string {
	steps := make([]string, 0, len(kb.Checklist))
	for i, item := range kb.Checklist {
		steps = append(steps, fmt.Sprintf("%d. **%s**\n   📍 %s", i+1, item.Title, item.Location))
	}
	return fmt.Sprintf("Here's your Day 1 Checklist:\n\n%s\n\nWould you like more details about any of these steps?", strings.Join(steps, "\n\n"))
}

func badgeResponse(*knowledge.Base) string {
	return "🔐 **Security Badge Collection**\n\nVisit the Security Office on the Ground Floor with:\n• Your Emirates ID or Passport\n• Signed offer letter\n• Work permit (if applicable)\n\nThe office is open 8 AM - 4 PM, Sunday to Thursday. Your badge grants access to all general areas and your department floor."
}

func itSetupResponse(*knowledge.Base) string {
	return "💻 **IT Setup**\n\nHead to the IT Help Desk on Floor 2. They'll provide:\n• Your laptop with pre-configured software\n• Email and Microsoft 365 access\n• VPN credentials for remote work\n• Slack and internal tools access\n\nBring your badge - they'll need to verify your identity!"
}

func headquartersResponse(*knowledge.Base) string {
	return "📍 **Abu Dhabi Headquarters**\n\nOur main office is located in Masdar City, Abu Dhabi - a hub for sustainable technology and innovation.\n\n**Getting There:**\n• By car: Ample parking available\n• By metro: Masdar City is accessible via the planned metro extension\n• By bus: Multiple routes serve Masdar City\n\nReception is on the ground floor. Don't forget your badge!"
}

func dressCodeResponse(kb *knowledge.Base) string {
	return fmt.Sprintf("👔 **Dress Code at Space42**\n\n%s\n\n**Day-to-day:** Smart casual - collared shirts, blouses, dress pants, closed-toe shoes\n**Client meetings:** Business formal recommended\n**Fridays:** More relaxed, but still professional\n\nWhen in doubt, slightly overdress for your first week!", kb.Culture.DressCode)
}

func workHoursResponse(kb *knowledge.Base) string {
	return fmt.Sprintf("⏰ **Working Hours**\n\n%s\n\n**Flexibility:** We offer flexible working arrangements for most roles. Discuss with your manager.\n**Ramadan hours:** Reduced hours apply during the holy month.\n**Remote work:** Many positions support hybrid arrangements.", kb.Culture.WorkHours)
}

func greetingResponse(*knowledge.Base) string {
	return "Hello! 👋 How can I help you today? Are you a candidate exploring opportunities or a new hire getting ready for your first day?"
}

func thanksResponse(*knowledge.Base) string {
	return "You're welcome! 🌟 Is there anything else you'd like to know about Space42? I'm here to help!"
}

func newHireMenuResponse(*knowledge.Base) string {
	return "I'd be happy to help! You can ask me about:\n• Your Day 1 checklist\n• Office location & facilities\n• Dress code & work hours\n• IT setup & equipment\n• Meeting your team\n\nWhat would you like to know?"
}

func generalMenuResponse(kb *knowledge.Base) string {
	return fmt.Sprintf("Great question! I can tell you about:\n• Space42's business units (%s & %s)\n• The Bayanat + Yahsat merger\n• Available positions\n• Our application process\n\nWhat interests you most?",
		kb.SpaceServices.Name, kb.SmartSolutions.Name)
}

func bulletList(items []string) string {
	lines := make([]string, 0, len(items))
	for _, item := range items {
		lines = append(lines, "• "+item)
	}
	return strings.Join(lines, "\n")
}
