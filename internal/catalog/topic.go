package catalog

import "fmt"

// TopicID identifies one of the fixed course topics.
type TopicID string

const (
	TopicArrays     TopicID = "arrays"
	TopicLinkedList TopicID = "linkedlist"
	TopicDoubly     TopicID = "doubly"
	TopicCircular   TopicID = "circular"
	TopicStack      TopicID = "stack"
	TopicQueue      TopicID = "queue"
	TopicTrees      TopicID = "trees"
	TopicBST        TopicID = "bst"
)

// AllTopicIDs returns every topic id in course order.
func AllTopicIDs() []TopicID {
	return []TopicID{
		TopicArrays,
		TopicLinkedList,
		TopicDoubly,
		TopicCircular,
		TopicStack,
		TopicQueue,
		TopicTrees,
		TopicBST,
	}
}

// Valid reports whether id is a member of the closed topic set.
func (id TopicID) Valid() bool {
	switch id {
	case TopicArrays, TopicLinkedList, TopicDoubly, TopicCircular,
		TopicStack, TopicQueue, TopicTrees, TopicBST:
		return true
	default:
		return false
	}
}

// ParseTopicID converts user input (CLI flag, config value) into a TopicID.
func ParseTopicID(s string) (TopicID, error) {
	id := TopicID(s)
	if !id.Valid() {
		return "", fmt.Errorf("unknown topic %q", s)
	}
	return id, nil
}

// Question is a single multiple-choice quiz question.
type Question struct {
	Prompt      string   `json:"question"`
	Options     []string `json:"options"`
	Correct     int      `json:"correct"`
	Explanation string   `json:"explanation"`
}

// IsCorrect reports whether the option at index is the right answer.
func (q Question) IsCorrect(index int) bool {
	return index == q.Correct
}

// Topic is the static descriptor of one course topic.
type Topic struct {
	ID        TopicID    `json:"id"`
	Name      string     `json:"name"`
	Icon      string     `json:"icon"`
	Questions []Question `json:"questions,omitempty"`
}

// HasQuiz reports whether the topic ships a non-empty question list.
func (t Topic) HasQuiz() bool {
	return len(t.Questions) > 0
}
