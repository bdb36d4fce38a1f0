package catalog

import (
	"context"
	"fmt"
	"strings"
)

// Difficulty is a question difficulty level with the total order
// Easy < Medium < Hard.
type Difficulty string

const (
	Easy   Difficulty = "Easy"
	Medium Difficulty = "Medium"
	Hard   Difficulty = "Hard"
)

// Levels lists all difficulty levels in ascending order.
var Levels = []Difficulty{Easy, Medium, Hard}

// ParseDifficulty parses a difficulty string case-insensitively.
func ParseDifficulty(s string) (Difficulty, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "easy":
		return Easy, nil
	case "medium":
		return Medium, nil
	case "hard":
		return Hard, nil
	}
	return "", fmt.Errorf("unknown difficulty: %q", s)
}

// Rank returns the position of d in the difficulty order (Easy=1, Hard=3).
// Unknown difficulties rank 0, below Easy.
func (d Difficulty) Rank() int {
	switch d {
	case Easy:
		return 1
	case Medium:
		return 2
	case Hard:
		return 3
	}
	return 0
}

// HarderThan reports whether d is strictly harder than other.
func (d Difficulty) HarderThan(other Difficulty) bool {
	return d.Rank() > other.Rank()
}

// Question is an immutable reference-data record for a practice problem.
// ID is the unique question slug (e.g. "two-sum").
type Question struct {
	ID         string
	Difficulty Difficulty
	Topics     []string
}

// Validate checks the invariants the rest of the pipeline relies on:
// non-empty ID, known difficulty, at least one topic.
func (q Question) Validate() error {
	if q.ID == "" {
		return fmt.Errorf("question has empty id")
	}
	if q.Difficulty.Rank() == 0 {
		return fmt.Errorf("question %q has unknown difficulty %q", q.ID, q.Difficulty)
	}
	if len(q.Topics) == 0 {
		return fmt.Errorf("question %q has no topics", q.ID)
	}
	return nil
}

// HasAnyTopic reports whether the question is tagged with any topic in set.
func (q Question) HasAnyTopic(set map[string]bool) bool {
	for _, t := range q.Topics {
		if set[t] {
			return true
		}
	}
	return false
}

// Repo provides read access to the question reference catalog.
type Repo interface {
	// AllTopics returns the full set of topic names across the catalog.
	AllTopics(ctx context.Context) (map[string]bool, error)

	// AllQuestions returns every question in the catalog.
	AllQuestions(ctx context.Context) ([]Question, error)
}
