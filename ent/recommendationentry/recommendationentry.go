// Code generated by ent, DO NOT EDIT.

package recommendationentry

import (
	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the recommendationentry type in the database.
	Label = "recommendation_entry"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldUserID holds the string denoting the user_id field in the database.
	FieldUserID = "user_id"
	// FieldQuestionID holds the string denoting the question_id field in the database.
	FieldQuestionID = "question_id"
	// FieldLastRecommendedAt holds the string denoting the last_recommended_at field in the database.
	FieldLastRecommendedAt = "last_recommended_at"
	// FieldTimesRecommended holds the string denoting the times_recommended field in the database.
	FieldTimesRecommended = "times_recommended"
	// FieldBoostGranted holds the string denoting the boost_granted field in the database.
	FieldBoostGranted = "boost_granted"
	// Table holds the table name of the recommendationentry in the database.
	Table = "recommendation_entries"
)

// Columns holds all SQL columns for recommendationentry fields.
var Columns = []string{
	FieldID,
	FieldUserID,
	FieldQuestionID,
	FieldLastRecommendedAt,
	FieldTimesRecommended,
	FieldBoostGranted,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// TimesRecommendedValidator is a validator for the "times_recommended" field. It is called by the builders before save.
	TimesRecommendedValidator func(int) error
	// DefaultBoostGranted holds the default value on creation for the "boost_granted" field.
	DefaultBoostGranted bool
)

// OrderOption defines the ordering options for the RecommendationEntry queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByUserID orders the results by the user_id field.
func ByUserID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUserID, opts...).ToFunc()
}

// ByQuestionID orders the results by the question_id field.
func ByQuestionID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldQuestionID, opts...).ToFunc()
}

// ByLastRecommendedAt orders the results by the last_recommended_at field.
func ByLastRecommendedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLastRecommendedAt, opts...).ToFunc()
}

// ByTimesRecommended orders the results by the times_recommended field.
func ByTimesRecommended(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTimesRecommended, opts...).ToFunc()
}

// ByBoostGranted orders the results by the boost_granted field.
func ByBoostGranted(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldBoostGranted, opts...).ToFunc()
}
