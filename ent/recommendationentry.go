// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/abhisek/leetcoach/ent/recommendationentry"
)

// RecommendationEntry is the model entity for the RecommendationEntry schema.
type RecommendationEntry struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// UserID holds the value of the "user_id" field.
	UserID string `json:"user_id,omitempty"`
	// QuestionID holds the value of the "question_id" field.
	QuestionID string `json:"question_id,omitempty"`
	// When this question was last recommended
	LastRecommendedAt time.Time `json:"last_recommended_at,omitempty"`
	// How many times this question has been recommended
	TimesRecommended int `json:"times_recommended,omitempty"`
	// Whether the one-time repeat boost has been applied
	BoostGranted bool `json:"boost_granted,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*RecommendationEntry) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case recommendationentry.FieldBoostGranted:
			values[i] = new(sql.NullBool)
		case recommendationentry.FieldID, recommendationentry.FieldTimesRecommended:
			values[i] = new(sql.NullInt64)
		case recommendationentry.FieldUserID, recommendationentry.FieldQuestionID:
			values[i] = new(sql.NullString)
		case recommendationentry.FieldLastRecommendedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the RecommendationEntry fields.
func (_m *RecommendationEntry) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case recommendationentry.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case recommendationentry.FieldUserID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field user_id", values[i])
			} else if value.Valid {
				_m.UserID = value.String
			}
		case recommendationentry.FieldQuestionID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field question_id", values[i])
			} else if value.Valid {
				_m.QuestionID = value.String
			}
		case recommendationentry.FieldLastRecommendedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field last_recommended_at", values[i])
			} else if value.Valid {
				_m.LastRecommendedAt = value.Time
			}
		case recommendationentry.FieldTimesRecommended:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field times_recommended", values[i])
			} else if value.Valid {
				_m.TimesRecommended = int(value.Int64)
			}
		case recommendationentry.FieldBoostGranted:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field boost_granted", values[i])
			} else if value.Valid {
				_m.BoostGranted = value.Bool
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the RecommendationEntry.
// This includes values selected through modifiers, order, etc.
func (_m *RecommendationEntry) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this RecommendationEntry.
// Note that you need to call RecommendationEntry.Unwrap() before calling this method if this RecommendationEntry
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *RecommendationEntry) Update() *RecommendationEntryUpdateOne {
	return NewRecommendationEntryClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the RecommendationEntry entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *RecommendationEntry) Unwrap() *RecommendationEntry {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: RecommendationEntry is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *RecommendationEntry) String() string {
	var builder strings.Builder
	builder.WriteString("RecommendationEntry(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("user_id=")
	builder.WriteString(_m.UserID)
	builder.WriteString(", ")
	builder.WriteString("question_id=")
	builder.WriteString(_m.QuestionID)
	builder.WriteString(", ")
	builder.WriteString("last_recommended_at=")
	builder.WriteString(_m.LastRecommendedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("times_recommended=")
	builder.WriteString(fmt.Sprintf("%v", _m.TimesRecommended))
	builder.WriteString(", ")
	builder.WriteString("boost_granted=")
	builder.WriteString(fmt.Sprintf("%v", _m.BoostGranted))
	builder.WriteByte(')')
	return builder.String()
}

// RecommendationEntries is a parsable slice of RecommendationEntry.
type RecommendationEntries []*RecommendationEntry
