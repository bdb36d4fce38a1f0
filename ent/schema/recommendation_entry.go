package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// RecommendationEntry is the persisted fatigue record for one question
// recommended to one user. It is the only pipeline state that survives
// between runs.
type RecommendationEntry struct {
	ent.Schema
}

func (RecommendationEntry) Fields() []ent.Field {
	return []ent.Field{
		field.String("user_id"),
		field.String("question_id"),
		field.Time("last_recommended_at").
			Comment("When this question was last recommended"),
		field.Int("times_recommended").
			Min(1).
			Comment("How many times this question has been recommended"),
		field.Bool("boost_granted").
			Default(false).
			Comment("Whether the one-time repeat boost has been applied"),
	}
}

func (RecommendationEntry) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("user_id", "question_id").Unique(),
	}
}
