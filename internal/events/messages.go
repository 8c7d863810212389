package events

import "strings"

type wording struct {
	header   string
	footer   string
	none     string
	fallback string
}

var texts = map[Kind]wording{
	KindEvent: {
		header: "Here are some upcoming events:\n\n",
		footer: "Would you like more details about any of these events or information about other types of events? You can also browse all events in the 'Events' section of Herkey.",
		none:   "I don't have any upcoming events that match your criteria in my records at the moment. You can check the 'Events' section on Herkey to see all current listings. Would you like to know about our general event categories instead?",
		fallback: `Here are some upcoming events:

- Women in Tech Workshop on May 10, 2025 at 2:00 PM
  Learn about the latest technologies and how women are shaping the tech industry.

- Resume Building Workshop on May 15, 2025 at 3:30 PM
  Learn how to create a resume that stands out and showcases your skills effectively.

- Career Transition Webinar on May 20, 2025 at 6:00 PM
  Expert advice on how to successfully navigate career transitions and changes.

- Networking Mixer on May 25, 2025 at 5:00 PM
  Connect with professionals from various industries and expand your network.

- Leadership Skills Workshop on June 1, 2025 at 4:00 PM
  Develop essential leadership skills that will help you advance in your career.

Would you like more details about any of these events or information about other types of events? You can view all events in the 'Events' section of Herkey.`,
	},
	KindSession: {
		header: "Here are some upcoming learning sessions:\n\n",
		footer: "These sessions are designed to help you develop various skills relevant to your career. You can check the 'Sessions' section on Herkey to register for these or explore more available sessions.",
		none:   "I don't have any upcoming sessions in my records at the moment. You can check the 'Sessions' section on Herkey to see all current offerings. Our sessions typically cover topics like career growth, technical skills, work-life balance, interviewing, and negotiation.",
		fallback: `Here are some upcoming learning sessions:

- Career Growth Strategies on May 12, 2025 at 2:00 PM
  Learn effective strategies to accelerate your career growth and advancement.

- Technical Skills Update on May 18, 2025 at 3:30 PM
  Stay updated with the latest technical skills in demand in the job market.

- Work-Life Balance Session on May 22, 2025 at 6:00 PM
  Tips and strategies for maintaining a healthy work-life balance.

- Interviewing Skills Workshop on May 28, 2025 at 5:00 PM
  Master the art of interviewing with practical tips and mock interview sessions.

- Negotiation Tactics Session on June 5, 2025 at 4:00 PM
  Learn effective negotiation strategies for salary discussions and career advancement.

These sessions are designed to help you develop various skills relevant to your career. You can browse and register for these sessions in the 'Sessions' section on Herkey.`,
	},
}

// Format renders the first Top entries. An empty list yields the "nothing
// scheduled" text for the kind.
func Format(kind Kind, entries []Entry) string {
	w := texts[kind]
	if len(entries) == 0 {
		return w.none
	}

	var b strings.Builder
	b.WriteString(w.header)
	for i, e := range entries {
		if i == Top {
			break
		}
		b.WriteString("- " + e.Title + " on " + e.Date + " at " + e.Time + "\n")
		b.WriteString("  " + e.Description + "\n\n")
	}
	b.WriteString(w.footer)
	return b.String()
}

// Fallback is the built-in listing used when the entries file is unavailable.
func Fallback(kind Kind) string {
	return texts[kind].fallback
}
