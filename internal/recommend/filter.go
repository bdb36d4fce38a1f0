package recommend

import (
	"github.com/abhisek/leetcoach/internal/catalog"
)

// FilterByTopics returns every unsolved question whose topic set intersects
// the ranked topic set. Ordering is left to the scorer.
//
// Every ranked topic must exist in the catalog topic set; an unknown topic
// fails with ErrInvalidTopicReference instead of silently producing an
// empty result.
func FilterByTopics(unsolved []catalog.Question, topics []string, catalogTopics map[string]bool) ([]catalog.Question, error) {
	var unknown []string
	for _, t := range topics {
		if !catalogTopics[t] {
			unknown = append(unknown, t)
		}
	}
	if len(unknown) > 0 {
		return nil, &ErrInvalidTopicReference{Topics: unknown}
	}

	wanted := make(map[string]bool, len(topics))
	for _, t := range topics {
		wanted[t] = true
	}

	var matched []catalog.Question
	for _, q := range unsolved {
		if q.HasAnyTopic(wanted) {
			matched = append(matched, q)
		}
	}
	return matched, nil
}
