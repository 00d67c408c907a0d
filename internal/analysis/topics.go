package analysis

import "strings"

// topicEntry associates a topic with its keyword list.
// Matching is plain case-insensitive substring search, so "deploy" also
// catches "deployment".
type topicEntry struct {
	topic    Topic
	keywords []string
}

// topicTable declaration order fixes the order of the returned topic slice.
var topicTable = []topicEntry{
	{TopicLeadership, []string{"led ", "i lead", "managed", "mentor", "delegated", "supervised", "took charge"}},
	{TopicTechnical, []string{"code", "software", "system", "deploy", "engineer", "api", "database", "infrastructure", "pipeline", "debug"}},
	{TopicProblem, []string{"problem", "issue", "obstacle", "blocker", "broken", "struggl", "stuck"}},
	{TopicAchievement, []string{"achiev", "accomplish", "increased", "improved", "delivered", "exceeded", "award", "%"}},
	{TopicCollaboration, []string{"team", "together", "collaborat", "partner", "cross-functional", "colleague"}},
	{TopicCommunication, []string{"present", "communicat", "explain", "negotiat", "stakeholder", "wrote"}},
	{TopicLearning, []string{"learn", "course", "studied", "taught", "new skill", "read up"}},
	{TopicInnovation, []string{"innovat", "redesign", "new approach", "invent", "creative", "experiment", "prototype"}},
}

// ExtractTopics returns every topic with at least one keyword hit, in table
// order, each at most once.
func ExtractTopics(answer string) []Topic {
	lower := strings.ToLower(answer)
	var topics []Topic
	for _, e := range topicTable {
		for _, kw := range e.keywords {
			if strings.Contains(lower, kw) {
				topics = append(topics, e.topic)
				break
			}
		}
	}
	return topics
}

// TopicKeywords returns the keyword list for a topic, or nil if unknown.
// Exposed for tests asserting the monotonicity of extraction.
func TopicKeywords(t Topic) []string {
	for _, e := range topicTable {
		if e.topic == t {
			return e.keywords
		}
	}
	return nil
}
