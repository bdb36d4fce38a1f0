package graph

import (
	"context"
	"fmt"
	"time"

	"github.com/neo4j/neo4j-go-driver/v5/neo4j"

	"github.com/abhisek/leetcoach/internal/catalog"
	"github.com/abhisek/leetcoach/internal/stats"
)

// Store implements the interaction-store read aggregates plus interaction
// logging over a Neo4j knowledge graph of Users, Questions and Topics.
type Store struct {
	client *Client
}

// NewStore creates a Store over an established client.
func NewStore(client *Client) *Store {
	return &Store{client: client}
}

const topicStatsQuery = `
MATCH (u:User {user_id: $user_id})-[i:INTERACTED_WITH]->(q:Question)-[:HAS_TOPIC]->(t:Topic)
RETURN t.name AS topic,
       COUNT(q) AS count,
       SUM(CASE WHEN i.solved = true THEN 1 ELSE 0 END) AS solved,
       SUM(CASE WHEN i.hint_used = true THEN 1 ELSE 0 END) AS hints_used,
       SUM(CASE WHEN i.watched_explanation = true THEN 1 ELSE 0 END) AS watched_explanation`

// TopicStats returns raw per-topic interaction counters for a user.
// Topics the user never attempted are absent; the aggregator unions the
// result with the catalog.
func (s *Store) TopicStats(ctx context.Context, userID string) (map[string]stats.TopicStat, error) {
	records, err := s.read(ctx, "topic stats", topicStatsQuery, map[string]any{"user_id": userID})
	if err != nil {
		return nil, err
	}

	result := make(map[string]stats.TopicStat, len(records))
	for _, rec := range records {
		topic, err := recordString(rec, "topic")
		if err != nil {
			return nil, err
		}
		result[topic] = stats.TopicStat{
			Count:              recordInt(rec, "count"),
			Solved:             recordInt(rec, "solved"),
			HintsUsed:          recordInt(rec, "hints_used"),
			WatchedExplanation: recordInt(rec, "watched_explanation"),
		}
	}
	return result, nil
}

const difficultyStatsQuery = `
MATCH (u:User {user_id: $user_id})-[i:INTERACTED_WITH]->(q:Question)
WITH q.difficulty AS difficulty,
     COUNT(i) AS attempted,
     SUM(CASE WHEN i.solved = true THEN 1 ELSE 0 END) AS solved
RETURN difficulty, attempted, solved`

// DifficultyStats returns attempt/solve counters per difficulty level.
func (s *Store) DifficultyStats(ctx context.Context, userID string) (map[catalog.Difficulty]stats.DifficultyStat, error) {
	records, err := s.read(ctx, "difficulty stats", difficultyStatsQuery, map[string]any{"user_id": userID})
	if err != nil {
		return nil, err
	}

	result := make(map[catalog.Difficulty]stats.DifficultyStat, len(records))
	for _, rec := range records {
		raw, err := recordString(rec, "difficulty")
		if err != nil {
			return nil, err
		}
		level, err := catalog.ParseDifficulty(raw)
		if err != nil {
			return nil, fmt.Errorf("difficulty stats: %w", err)
		}
		result[level] = stats.DifficultyStat{
			Attempted: recordInt(rec, "attempted"),
			Solved:    recordInt(rec, "solved"),
		}
	}
	return result, nil
}

const solvedQuestionsQuery = `
MATCH (u:User {user_id: $user_id})-[i:INTERACTED_WITH]->(q:Question)
WHERE i.solved = true
RETURN q.question_id AS question_id`

// SolvedQuestionIDs returns the set of question IDs the user has solved.
// The unsolved pool is derived by subtracting this from the catalog.
func (s *Store) SolvedQuestionIDs(ctx context.Context, userID string) (map[string]bool, error) {
	records, err := s.read(ctx, "solved questions", solvedQuestionsQuery, map[string]any{"user_id": userID})
	if err != nil {
		return nil, err
	}

	solved := make(map[string]bool, len(records))
	for _, rec := range records {
		id, err := recordString(rec, "question_id")
		if err != nil {
			return nil, err
		}
		solved[id] = true
	}
	return solved, nil
}

const recentlySolvedQuery = `
MATCH (u:User {user_id: $user_id})-[i:INTERACTED_WITH]->(q:Question)-[:HAS_TOPIC]->(t:Topic)
WHERE i.solved = true
WITH q, i, collect(t.name) AS topics
ORDER BY i.date_logged DESC
LIMIT $limit
RETURN q.question_id AS question_id, topics, i.date_logged AS solved_at`

// RecentlySolved returns the user's n most recently solved questions with
// their topics, most recent first.
func (s *Store) RecentlySolved(ctx context.Context, userID string, n int) ([]stats.SolvedQuestion, error) {
	records, err := s.read(ctx, "recently solved", recentlySolvedQuery, map[string]any{
		"user_id": userID,
		"limit":   n,
	})
	if err != nil {
		return nil, err
	}

	recent := make([]stats.SolvedQuestion, 0, len(records))
	for _, rec := range records {
		id, err := recordString(rec, "question_id")
		if err != nil {
			return nil, err
		}
		topics, err := recordStrings(rec, "topics")
		if err != nil {
			return nil, err
		}
		solvedAt, err := recordTime(rec, "solved_at")
		if err != nil {
			return nil, err
		}
		recent = append(recent, stats.SolvedQuestion{
			QuestionID: id,
			Topics:     topics,
			SolvedAt:   solvedAt,
		})
	}
	return recent, nil
}

// Interaction captures one logged attempt at a question.
type Interaction struct {
	Solved             bool
	TimeSpentMinutes   float64
	Attempts           int
	HintUsed           bool
	WatchedExplanation bool
	LoggedAt           time.Time
}

const logInteractionQuery = `
MERGE (u:User {user_id: $user_id})
MERGE (q:Question {question_id: $question_id})
SET q.difficulty = $difficulty

MERGE (u)-[r:INTERACTED_WITH]->(q)
SET r.solved = $solved,
    r.time_spent = $time_spent,
    r.attempts = $attempts,
    r.hint_used = $hint_used,
    r.watched_explanation = $watched_explanation,
    r.date_logged = datetime($date_logged)

WITH q
UNWIND $topics AS topic
    MERGE (t:Topic {name: topic})
    MERGE (q)-[:HAS_TOPIC]->(t)`

// LogInteraction records one attempt at a question, creating the user,
// question and topic nodes as needed.
func (s *Store) LogInteraction(ctx context.Context, userID string, q catalog.Question, in Interaction) error {
	if err := q.Validate(); err != nil {
		return fmt.Errorf("log interaction: %w", err)
	}
	if in.LoggedAt.IsZero() {
		in.LoggedAt = time.Now().UTC()
	}

	callCtx, cancel := context.WithTimeout(ctx, s.client.timeout)
	defer cancel()

	session := s.client.writeSession(callCtx)
	defer session.Close(callCtx)

	_, err := session.ExecuteWrite(callCtx, func(tx neo4j.ManagedTransaction) (any, error) {
		res, err := tx.Run(callCtx, logInteractionQuery, map[string]any{
			"user_id":             userID,
			"question_id":         q.ID,
			"difficulty":          string(q.Difficulty),
			"topics":              q.Topics,
			"solved":              in.Solved,
			"time_spent":          in.TimeSpentMinutes,
			"attempts":            in.Attempts,
			"hint_used":           in.HintUsed,
			"watched_explanation": in.WatchedExplanation,
			"date_logged":         in.LoggedAt.Format(time.RFC3339),
		})
		if err != nil {
			return nil, err
		}
		return nil, res.Err()
	})
	if err != nil {
		return &ErrStoreUnavailable{Op: "log interaction", Err: err}
	}
	return nil
}

// read runs a read query inside a fresh session with the call timeout and
// collects all records. Any driver failure maps to ErrStoreUnavailable.
func (s *Store) read(ctx context.Context, op, query string, params map[string]any) ([]*neo4j.Record, error) {
	callCtx, cancel := context.WithTimeout(ctx, s.client.timeout)
	defer cancel()

	session := s.client.readSession(callCtx)
	defer session.Close(callCtx)

	records, err := session.ExecuteRead(callCtx, func(tx neo4j.ManagedTransaction) (any, error) {
		res, err := tx.Run(callCtx, query, params)
		if err != nil {
			return nil, err
		}
		return res.Collect(callCtx)
	})
	if err != nil {
		return nil, &ErrStoreUnavailable{Op: op, Err: err}
	}
	return records.([]*neo4j.Record), nil
}

// recordInt extracts an integer column, tolerating the driver's int64
// representation. Missing or non-numeric values read as zero and are caught
// by the stat validators downstream.
func recordInt(rec *neo4j.Record, key string) int {
	v, ok := rec.Get(key)
	if !ok {
		return 0
	}
	switch n := v.(type) {
	case int64:
		return int(n)
	case int:
		return n
	}
	return 0
}

func recordString(rec *neo4j.Record, key string) (string, error) {
	v, ok := rec.Get(key)
	if !ok {
		return "", fmt.Errorf("record missing column %q", key)
	}
	s, ok := v.(string)
	if !ok {
		return "", fmt.Errorf("column %q is %T, want string", key, v)
	}
	return s, nil
}

func recordStrings(rec *neo4j.Record, key string) ([]string, error) {
	v, ok := rec.Get(key)
	if !ok {
		return nil, fmt.Errorf("record missing column %q", key)
	}
	raw, ok := v.([]any)
	if !ok {
		return nil, fmt.Errorf("column %q is %T, want list", key, v)
	}
	out := make([]string, 0, len(raw))
	for _, item := range raw {
		s, ok := item.(string)
		if !ok {
			return nil, fmt.Errorf("column %q contains %T, want string", key, item)
		}
		out = append(out, s)
	}
	return out, nil
}

func recordTime(rec *neo4j.Record, key string) (time.Time, error) {
	v, ok := rec.Get(key)
	if !ok {
		return time.Time{}, fmt.Errorf("record missing column %q", key)
	}
	t, ok := v.(time.Time)
	if !ok {
		return time.Time{}, fmt.Errorf("column %q is %T, want time", key, v)
	}
	return t, nil
}
