package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// RunEvent is the append-only audit record of one recommendation run.
type RunEvent struct {
	ent.Schema
}

func (RunEvent) Mixin() []ent.Mixin {
	return []ent.Mixin{
		EventMixin{},
	}
}

func (RunEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("run_id").
			Unique().
			Immutable().
			Comment("UUID of the pipeline run"),
		field.String("user_id").
			Immutable(),
		field.String("strategy").
			Optional().
			Comment("improve or exploration; empty if the run failed before selection"),
		field.String("state").
			Comment("Final pipeline state: done or failed"),
		field.Int("candidates").
			Default(0).
			Comment("Number of recommendations returned"),
		field.String("error").
			Optional().
			Comment("Failure cause when state is failed"),
	}
}

func (RunEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("user_id"),
	}
}
