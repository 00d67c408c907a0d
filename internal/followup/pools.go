package followup

import "github.com/abhisek/intervu/internal/analysis"

// genericFallback seeds every pool so the selector is total even when no
// topic or type contributes candidates.
const genericFallback = "Could you tell me a bit more about that?"

// topicQuestions gives each detected topic three fixed candidates.
var topicQuestions = map[analysis.Topic][]string{
	analysis.TopicLeadership: {
		"How did you bring the rest of the group along with your decision?",
		"What would your reports say about your leadership style?",
		"When did you last change your mind because of someone you were leading?",
	},
	analysis.TopicTechnical: {
		"What trade-offs did you weigh in that technical decision?",
		"How would you explain that system to a non-technical stakeholder?",
		"What would you build differently if you started over today?",
	},
	analysis.TopicProblem: {
		"How did you first notice the problem?",
		"What options did you rule out before settling on your approach?",
		"How do you know the problem stayed solved?",
	},
	analysis.TopicAchievement: {
		"What part of that result are you personally responsible for?",
		"How did you measure the impact?",
		"What did it take behind the scenes that nobody saw?",
	},
	analysis.TopicCollaboration: {
		"How did you handle disagreement inside the group?",
		"What role do you naturally take in a team?",
		"Who pushed back, and how did you respond?",
	},
	analysis.TopicCommunication: {
		"How did you tailor the message to that audience?",
		"What is the hardest message you have had to deliver?",
		"How do you check that you were actually understood?",
	},
	analysis.TopicLearning: {
		"How have you applied that lesson since?",
		"What did learning that cost you?",
		"What are you deliberately trying to learn right now?",
	},
	analysis.TopicInnovation: {
		"Where did the new idea come from?",
		"How did you convince others to try something unproven?",
		"What was the riskiest assumption in that approach?",
	},
}

var depthList = []string{
	"What happened next?",
	"Can you walk me through your thinking step by step?",
	"What was going on underneath that decision?",
}

var clarificationList = []string{
	"When you say that, what exactly do you mean?",
	"Could you make that concrete with a detail or two?",
	"Which part of that was yours versus the team's?",
}

var supportiveList = []string{
	"That sounds meaningful. What part stands out most to you?",
	"No pressure to be polished. What else comes to mind?",
	"Take your time. What would you add if we slowed down?",
}

var challengeList = []string{
	"What is the strongest argument against the approach you took?",
	"Where could that have gone wrong, and what was your plan if it did?",
	"What would you say to someone who calls that result luck?",
}

var hypotheticalList = []string{
	"If you had half the time, what would you have cut?",
	"Imagine the same situation at ten times the scale. What breaks first?",
	"What would you do if the key person involved had said no?",
}

var evidenceList = []string{
	"What evidence would you point to that it worked?",
	"Can you give me a specific example of that?",
	"What did others say about the outcome?",
}

var reflectionList = []string{
	"Looking back, what would you do differently?",
	"What did that experience teach you about yourself?",
	"How has that changed how you work today?",
}

// Mode extras appended on top of the resolved type's lists.
var hardProbes = []string{
	"Convince me that was the right call and not just the comfortable one.",
	"What uncomfortable feedback did you receive about it?",
}

var gentleProbes = []string{
	"There is no wrong answer here. What felt most meaningful?",
	"Whatever comes to mind first is fine. What stands out?",
}
