package levels

import (
	"fmt"
	"sort"

	"gopkg.in/yaml.v3"
)

type Question struct {
	ID          int      `yaml:"id"`
	Text        string   `yaml:"text"`
	Answers     []string `yaml:"answers"`
	Correct     int      `yaml:"correct"`
	Explanation string   `yaml:"explanation"`
	Category    string   `yaml:"category"`
}

// IsCorrect reports whether choice indexes the correct answer.
func (q Question) IsCorrect(choice int) bool {
	return choice == q.Correct
}

// Bank is a read-only question lookup keyed by id.
type Bank struct {
	byID map[int]Question
	ids  []int
}

func NewBank(questions ...Question) (*Bank, error) {
	b := &Bank{byID: make(map[int]Question, len(questions))}
	for _, q := range questions {
		if _, dup := b.byID[q.ID]; dup {
			return nil, fmt.Errorf("levels: duplicate question id %d", q.ID)
		}
		if len(q.Answers) == 0 {
			return nil, fmt.Errorf("levels: question %d has no answers", q.ID)
		}
		if q.Correct < 0 || q.Correct >= len(q.Answers) {
			return nil, fmt.Errorf("levels: question %d correct index %d out of range", q.ID, q.Correct)
		}
		b.byID[q.ID] = q
		b.ids = append(b.ids, q.ID)
	}
	sort.Ints(b.ids)
	return b, nil
}

// ParseBank decodes a question bank document.
func ParseBank(data []byte) (*Bank, error) {
	var doc struct {
		Questions []Question `yaml:"questions"`
	}
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("levels: unmarshal questions: %w", err)
	}
	return NewBank(doc.Questions...)
}

// Lookup returns the question with id. A nil bank resolves nothing.
func (b *Bank) Lookup(id int) (Question, bool) {
	if b == nil || id == 0 {
		return Question{}, false
	}
	q, ok := b.byID[id]
	return q, ok
}

func (b *Bank) Len() int {
	if b == nil {
		return 0
	}
	return len(b.ids)
}

// IDs returns every question id in ascending order.
func (b *Bank) IDs() []int {
	if b == nil {
		return nil
	}
	return append([]int(nil), b.ids...)
}
