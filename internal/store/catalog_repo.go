package store

import (
	"context"
	"fmt"

	"github.com/abhisek/leetcoach/ent"
	"github.com/abhisek/leetcoach/ent/question"
	"github.com/abhisek/leetcoach/internal/catalog"
)

// CatalogRepo implements catalog.Repo over the ent question table.
type CatalogRepo struct {
	client *ent.Client
}

// AllTopics returns the union of topic tags across the whole catalog.
func (r *CatalogRepo) AllTopics(ctx context.Context) (map[string]bool, error) {
	rows, err := r.client.Question.Query().All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query catalog topics: %w", err)
	}

	topics := make(map[string]bool)
	for _, row := range rows {
		for _, t := range row.Topics {
			topics[t] = true
		}
	}
	return topics, nil
}

// AllQuestions returns every question in the catalog.
func (r *CatalogRepo) AllQuestions(ctx context.Context) ([]catalog.Question, error) {
	rows, err := r.client.Question.Query().All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query catalog questions: %w", err)
	}

	questions := make([]catalog.Question, 0, len(rows))
	for _, row := range rows {
		d, err := catalog.ParseDifficulty(row.Difficulty)
		if err != nil {
			return nil, fmt.Errorf("catalog row %q: %w", row.Slug, err)
		}
		questions = append(questions, catalog.Question{
			ID:         row.Slug,
			Difficulty: d,
			Topics:     row.Topics,
		})
	}
	return questions, nil
}

// Import upserts questions into the catalog by slug and returns how many
// rows were created (as opposed to refreshed).
func (r *CatalogRepo) Import(ctx context.Context, questions []catalog.Question) (int, error) {
	created := 0
	for _, q := range questions {
		if err := q.Validate(); err != nil {
			return created, err
		}

		exists, err := r.client.Question.Query().
			Where(question.Slug(q.ID)).
			Exist(ctx)
		if err != nil {
			return created, fmt.Errorf("check question %q: %w", q.ID, err)
		}

		if exists {
			_, err = r.client.Question.Update().
				Where(question.Slug(q.ID)).
				SetDifficulty(string(q.Difficulty)).
				SetTopics(q.Topics).
				Save(ctx)
			if err != nil {
				return created, fmt.Errorf("update question %q: %w", q.ID, err)
			}
			continue
		}

		_, err = r.client.Question.Create().
			SetSlug(q.ID).
			SetDifficulty(string(q.Difficulty)).
			SetTopics(q.Topics).
			Save(ctx)
		if err != nil {
			return created, fmt.Errorf("create question %q: %w", q.ID, err)
		}
		created++
	}
	return created, nil
}
