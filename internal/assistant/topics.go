package assistant

// Topic pairs a canonical FAQ question and answer with the keywords that
// trigger it. Topics are matched in slice order and the first match wins, so
// the order below is load-bearing.
type Topic struct {
	ID       string
	Question string
	Answer   string
	Keywords []string
}

func DefaultTopics() []Topic {
	return []Topic{
		{
			ID:       "programs",
			Question: "What programs does Ascent Leadership Academy offer?",
			Answer: `Ascent Leadership Academy offers comprehensive leadership programs including:

• Executive Leadership Development Program (6 months)
• Women in Leadership Bootcamp (3 months)
• Corporate Mentorship Program (4 months)
• Leadership Skills Workshop Series (2 months)
• Personal Branding & Communication Program (3 months)
• Strategic Thinking & Decision Making Course (2 months)

All programs are designed to empower women leaders across various industries.`,
			Keywords: []string{"program", "course", "offer", "available", "what", "services"},
		},
		{
			ID:       "duration",
			Question: "What is the program duration?",
			Answer: `Program durations vary based on the course:

• Executive Leadership Development: 6 months
• Women in Leadership Bootcamp: 3 months
• Corporate Mentorship Program: 4 months
• Leadership Skills Workshop: 2 months
• Personal Branding Program: 3 months
• Strategic Thinking Course: 2 months

Each program includes weekly sessions, practical assignments, and one-on-one mentoring.`,
			Keywords: []string{"duration", "time", "long", "period", "months", "weeks"},
		},
		{
			ID:       "format",
			Question: "Is the program online or offline?",
			Answer: `Ascent Leadership Academy offers flexible learning formats:

• Hybrid Model: Combination of online and offline sessions
• Online Sessions: Live interactive webinars, recorded lectures, virtual group discussions
• Offline Sessions: In-person workshops, networking events, practical exercises
• Location: Physical sessions conducted at our downtown campus
• Flexibility: 70% online, 30% offline for maximum convenience

All sessions are recorded for later review.`,
			Keywords: []string{"online", "offline", "mode", "format", "where", "location"},
		},
		{
			ID:       "certificates",
			Question: "Are certificates provided?",
			Answer: `Yes! Ascent Leadership Academy provides comprehensive certification:

• Official Certificate of Completion for all programs
• Digital badges for LinkedIn profiles
• Industry-recognized credentials
• Continuing Education Units (CEUs) where applicable
• Portfolio of completed projects and case studies
• Letter of recommendation from mentors (upon request)

Certificates are issued upon successful completion of all program requirements.`,
			Keywords: []string{"certificate", "certification", "credential", "badge"},
		},
		{
			ID:       "mentors",
			Question: "Who are the mentors/coaches?",
			Answer: `Our expert mentor team includes:

• Senior executives from Fortune 500 companies
• Successful women entrepreneurs and founders
• Industry leaders with 15+ years of experience
• Certified leadership coaches and consultants
• Former C-suite executives from various sectors
• International speakers and thought leaders

Mentor-to-participant ratio is maintained at 1:8 for personalized attention.
Each participant is assigned a dedicated mentor based on their career goals.`,
			Keywords: []string{"mentor", "coach", "teacher", "instructor", "guide", "expert"},
		},
	}
}
