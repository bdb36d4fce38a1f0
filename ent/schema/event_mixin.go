package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
	"entgo.io/ent/schema/mixin"
)

// EventMixin carries the ordering fields for append-only event tables: a
// global sequence assigned by the store's counter, and the wall-clock time
// the event was recorded. RunEvent includes it so run records order by one
// monotonic sequence instead of per-table row IDs.
type EventMixin struct {
	mixin.Schema
}

func (EventMixin) Fields() []ent.Field {
	return []ent.Field{
		field.Int64("sequence").
			Unique().
			Immutable().
			Comment("Global monotonic sequence number"),
		field.Time("timestamp").
			Default(time.Now).
			Immutable().
			Comment("When the event was recorded"),
	}
}

func (EventMixin) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("sequence"),
		index.Fields("timestamp"),
	}
}
