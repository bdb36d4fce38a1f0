package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Question is one entry of the practice-problem reference catalog.
// Catalog rows are immutable reference data; imports upsert by slug.
type Question struct {
	ent.Schema
}

func (Question) Fields() []ent.Field {
	return []ent.Field{
		field.String("slug").
			Unique().
			Immutable().
			Comment("Unique question identifier, e.g. two-sum"),
		field.String("difficulty").
			Comment("Easy, Medium or Hard"),
		field.JSON("topics", []string{}).
			Comment("Topic tags, at least one"),
	}
}

func (Question) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("difficulty"),
	}
}
