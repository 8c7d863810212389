package actions

const mentorshipFind = `Although Herkey doesn't have a dedicated "Mentorship" section, you can connect with potential mentors through these platform features:

1. **Network Section**: Browse and connect with professionals in your field. Look for experienced people who might be willing to provide guidance.

2. **Groups**: Join industry or skill-specific groups to meet peers and senior professionals who share your interests.

3. **Sessions & Events**: Participate in sessions and networking events where you can meet potential mentors face-to-face.

4. **Discussions**: Engage in discussions where you can demonstrate your interests and connect with knowledgeable professionals.

When reaching out to potential mentors:
- Be specific about your goals and what you hope to learn
- Respect their time by being prepared for conversations
- Start with a simple coffee chat request before asking for formal mentorship

Would you like tips on how to effectively approach potential mentors?`

const mentorshipBenefits = `The benefits of having a mentor include:

1. Personalized guidance from professionals who have successfully navigated similar career paths

2. Insider knowledge about industry trends and opportunities

3. Feedback on your skills, resume, and interview techniques

4. Expanded professional network through your mentor's connections

5. Support for career transitions, whether you're changing fields or returning after a break

6. Increased confidence in your professional abilities and decisions

7. Accountability for your career goals and development

Research shows that professionals with mentors are more likely to receive promotions and report higher job satisfaction.

You can connect with potential mentors through Herkey's Network, Groups, and by participating actively in Sessions and Discussions.`

const mentorshipTypes = `There are several types of mentoring relationships you can develop through Herkey's platform:

1. **Peer Mentoring**: Connect with colleagues at similar career stages to share experiences and advice.

2. **Industry Mentoring**: Find leaders in specific industries by participating in industry-focused groups and events.

3. **Skill-Based Mentoring**: Connect with experts in particular skills you want to develop.

4. **Career Transition Mentoring**: Find guidance from professionals who have successfully changed careers or returned to work after breaks.

5. **Leadership Mentoring**: Learn from experienced leaders by engaging with them in sessions and groups focused on leadership.

You can identify potential mentors by actively participating in Herkey's events, joining relevant groups, and making meaningful connections through the Network section.

Which type of mentoring relationship are you most interested in developing?`

const mentorshipGeneral = `Herkey supports your professional growth through various networking and learning opportunities that can lead to meaningful mentoring relationships.

While Herkey doesn't have a dedicated "Mentorship" section, you can connect with potential mentors through:

1. **Network Section**: Connect with experienced professionals in your field who might provide guidance.

2. **Groups**: Join communities of professionals with similar interests where you can meet potential mentors.

3. **Sessions & Events**: Participate in learning sessions and networking events to meet industry experts.

4. **Discussions**: Engage in conversations where you can learn from and connect with knowledgeable professionals.

Professional relationships often develop naturally through regular interaction and engagement on the platform. Would you like to know more about how to effectively approach potential mentors or specific ways to utilize Herkey's features for professional growth?`

const biasTechnical = `That's a misconception I'd like to address! Women have consistently proven their excellence in technical roles across the industry.

Research from McKinsey shows that companies with gender-diverse technical teams are 21% more likely to experience above-average profitability. Women like Ada Lovelace (the first computer programmer), Grace Hopper (pioneer of COBOL), and Radia Perlman (inventor of STP) revolutionized computing.

Today, leaders like Fei-Fei Li (AI pioneer), Marian Croak (VoIP inventor with 200+ patents), and Reshma Saujani (Girls Who Code founder) continue to drive innovation in tech.

Would you like to hear about specific programs on Herkey that help women build technical skills?`

const biasLeadership = `I'd like to challenge that perspective! Women have repeatedly demonstrated exceptional leadership capabilities across industries.

Research by Peterson Institute shows companies with 30%+ women in leadership have 15% higher profitability. Leaders like Indra Nooyi (former PepsiCo CEO), Mary Barra (GM CEO), and Kiran Mazumdar-Shaw (Biocon founder) have transformed their industries.

Studies from Harvard Business Review found women leaders score higher in most leadership skills including taking initiative, resilience, and driving results.

Herkey offers resources specifically designed to help women develop leadership skills through sessions and networking opportunities. Would you like me to share some upcoming leadership events?`

const biasGeneral = `I'd like to offer a different perspective! Research consistently shows that gender diversity improves organizational performance across all roles and industries.

A comprehensive study by McKinsey found that companies in the top quartile for gender diversity are 25% more likely to achieve above-average profitability. Women have proven to excel in every field when given equal opportunities and support.

Herkey is dedicated to empowering women in all career paths by providing resources, networking opportunities, and showcasing success stories that break stereotypes and biases.

Would you like to learn about specific success stories of women in your field of interest?`

const (
	pausedMessage     = "I've paused our conversation. What additional details would you like to add?"
	resumedMessage    = "I'm continuing our previous conversation with the new information you've provided."
	noPausedMessage   = "I couldn't find a paused conversation to resume."
	noMatchesPrefix   = "I couldn't find exact matches for your criteria. "
	broadenSuggestion = "Would you like to broaden your search criteria or try a different role?"
)
