// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// QuestionsColumns holds the columns for the "questions" table.
	QuestionsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "slug", Type: field.TypeString, Unique: true},
		{Name: "difficulty", Type: field.TypeString},
		{Name: "topics", Type: field.TypeJSON},
	}
	// QuestionsTable holds the schema information for the "questions" table.
	QuestionsTable = &schema.Table{
		Name:       "questions",
		Columns:    QuestionsColumns,
		PrimaryKey: []*schema.Column{QuestionsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "question_difficulty",
				Unique:  false,
				Columns: []*schema.Column{QuestionsColumns[2]},
			},
		},
	}
	// RecommendationEntriesColumns holds the columns for the "recommendation_entries" table.
	RecommendationEntriesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "user_id", Type: field.TypeString},
		{Name: "question_id", Type: field.TypeString},
		{Name: "last_recommended_at", Type: field.TypeTime},
		{Name: "times_recommended", Type: field.TypeInt},
		{Name: "boost_granted", Type: field.TypeBool, Default: false},
	}
	// RecommendationEntriesTable holds the schema information for the "recommendation_entries" table.
	RecommendationEntriesTable = &schema.Table{
		Name:       "recommendation_entries",
		Columns:    RecommendationEntriesColumns,
		PrimaryKey: []*schema.Column{RecommendationEntriesColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "recommendationentry_user_id_question_id",
				Unique:  true,
				Columns: []*schema.Column{RecommendationEntriesColumns[1], RecommendationEntriesColumns[2]},
			},
		},
	}
	// RunEventsColumns holds the columns for the "run_events" table.
	RunEventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "sequence", Type: field.TypeInt64, Unique: true},
		{Name: "timestamp", Type: field.TypeTime},
		{Name: "run_id", Type: field.TypeString, Unique: true},
		{Name: "user_id", Type: field.TypeString},
		{Name: "strategy", Type: field.TypeString, Nullable: true},
		{Name: "state", Type: field.TypeString},
		{Name: "candidates", Type: field.TypeInt, Default: 0},
		{Name: "error", Type: field.TypeString, Nullable: true},
	}
	// RunEventsTable holds the schema information for the "run_events" table.
	RunEventsTable = &schema.Table{
		Name:       "run_events",
		Columns:    RunEventsColumns,
		PrimaryKey: []*schema.Column{RunEventsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "runevent_sequence",
				Unique:  false,
				Columns: []*schema.Column{RunEventsColumns[1]},
			},
			{
				Name:    "runevent_timestamp",
				Unique:  false,
				Columns: []*schema.Column{RunEventsColumns[2]},
			},
			{
				Name:    "runevent_user_id",
				Unique:  false,
				Columns: []*schema.Column{RunEventsColumns[4]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		QuestionsTable,
		RecommendationEntriesTable,
		RunEventsTable,
	}
)

func init() {
}
