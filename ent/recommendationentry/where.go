// Code generated by ent, DO NOT EDIT.

package recommendationentry

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/abhisek/leetcoach/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.RecommendationEntry {
	return predicate.RecommendationEntry(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.RecommendationEntry {
	return predicate.RecommendationEntry(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.RecommendationEntry {
	return predicate.RecommendationEntry(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.RecommendationEntry {
	return predicate.RecommendationEntry(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.RecommendationEntry {
	return predicate.RecommendationEntry(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.RecommendationEntry {
	return predicate.RecommendationEntry(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.RecommendationEntry {
	return predicate.RecommendationEntry(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.RecommendationEntry {
	return predicate.RecommendationEntry(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.RecommendationEntry {
	return predicate.RecommendationEntry(sql.FieldLTE(FieldID, id))
}

// UserID applies equality check predicate on the "user_id" field. It's identical to UserIDEQ.
func UserID(v string) predicate.RecommendationEntry {
	return predicate.RecommendationEntry(sql.FieldEQ(FieldUserID, v))
}

// QuestionID applies equality check predicate on the "question_id" field. It's identical to QuestionIDEQ.
func QuestionID(v string) predicate.RecommendationEntry {
	return predicate.RecommendationEntry(sql.FieldEQ(FieldQuestionID, v))
}

// LastRecommendedAt applies equality check predicate on the "last_recommended_at" field. It's identical to LastRecommendedAtEQ.
func LastRecommendedAt(v time.Time) predicate.RecommendationEntry {
	return predicate.RecommendationEntry(sql.FieldEQ(FieldLastRecommendedAt, v))
}

// TimesRecommended applies equality check predicate on the "times_recommended" field. It's identical to TimesRecommendedEQ.
func TimesRecommended(v int) predicate.RecommendationEntry {
	return predicate.RecommendationEntry(sql.FieldEQ(FieldTimesRecommended, v))
}

// BoostGranted applies equality check predicate on the "boost_granted" field. It's identical to BoostGrantedEQ.
func BoostGranted(v bool) predicate.RecommendationEntry {
	return predicate.RecommendationEntry(sql.FieldEQ(FieldBoostGranted, v))
}

// UserIDEQ applies the EQ predicate on the "user_id" field.
func UserIDEQ(v string) predicate.RecommendationEntry {
	return predicate.RecommendationEntry(sql.FieldEQ(FieldUserID, v))
}

// UserIDNEQ applies the NEQ predicate on the "user_id" field.
func UserIDNEQ(v string) predicate.RecommendationEntry {
	return predicate.RecommendationEntry(sql.FieldNEQ(FieldUserID, v))
}

// UserIDIn applies the In predicate on the "user_id" field.
func UserIDIn(vs ...string) predicate.RecommendationEntry {
	return predicate.RecommendationEntry(sql.FieldIn(FieldUserID, vs...))
}

// UserIDNotIn applies the NotIn predicate on the "user_id" field.
func UserIDNotIn(vs ...string) predicate.RecommendationEntry {
	return predicate.RecommendationEntry(sql.FieldNotIn(FieldUserID, vs...))
}

// UserIDGT applies the GT predicate on the "user_id" field.
func UserIDGT(v string) predicate.RecommendationEntry {
	return predicate.RecommendationEntry(sql.FieldGT(FieldUserID, v))
}

// UserIDGTE applies the GTE predicate on the "user_id" field.
func UserIDGTE(v string) predicate.RecommendationEntry {
	return predicate.RecommendationEntry(sql.FieldGTE(FieldUserID, v))
}

// UserIDLT applies the LT predicate on the "user_id" field.
func UserIDLT(v string) predicate.RecommendationEntry {
	return predicate.RecommendationEntry(sql.FieldLT(FieldUserID, v))
}

// UserIDLTE applies the LTE predicate on the "user_id" field.
func UserIDLTE(v string) predicate.RecommendationEntry {
	return predicate.RecommendationEntry(sql.FieldLTE(FieldUserID, v))
}

// UserIDContains applies the Contains predicate on the "user_id" field.
func UserIDContains(v string) predicate.RecommendationEntry {
	return predicate.RecommendationEntry(sql.FieldContains(FieldUserID, v))
}

// UserIDHasPrefix applies the HasPrefix predicate on the "user_id" field.
func UserIDHasPrefix(v string) predicate.RecommendationEntry {
	return predicate.RecommendationEntry(sql.FieldHasPrefix(FieldUserID, v))
}

// UserIDHasSuffix applies the HasSuffix predicate on the "user_id" field.
func UserIDHasSuffix(v string) predicate.RecommendationEntry {
	return predicate.RecommendationEntry(sql.FieldHasSuffix(FieldUserID, v))
}

// UserIDEqualFold applies the EqualFold predicate on the "user_id" field.
func UserIDEqualFold(v string) predicate.RecommendationEntry {
	return predicate.RecommendationEntry(sql.FieldEqualFold(FieldUserID, v))
}

// UserIDContainsFold applies the ContainsFold predicate on the "user_id" field.
func UserIDContainsFold(v string) predicate.RecommendationEntry {
	return predicate.RecommendationEntry(sql.FieldContainsFold(FieldUserID, v))
}

// QuestionIDEQ applies the EQ predicate on the "question_id" field.
func QuestionIDEQ(v string) predicate.RecommendationEntry {
	return predicate.RecommendationEntry(sql.FieldEQ(FieldQuestionID, v))
}

// QuestionIDNEQ applies the NEQ predicate on the "question_id" field.
func QuestionIDNEQ(v string) predicate.RecommendationEntry {
	return predicate.RecommendationEntry(sql.FieldNEQ(FieldQuestionID, v))
}

// QuestionIDIn applies the In predicate on the "question_id" field.
func QuestionIDIn(vs ...string) predicate.RecommendationEntry {
	return predicate.RecommendationEntry(sql.FieldIn(FieldQuestionID, vs...))
}

// QuestionIDNotIn applies the NotIn predicate on the "question_id" field.
func QuestionIDNotIn(vs ...string) predicate.RecommendationEntry {
	return predicate.RecommendationEntry(sql.FieldNotIn(FieldQuestionID, vs...))
}

// QuestionIDGT applies the GT predicate on the "question_id" field.
func QuestionIDGT(v string) predicate.RecommendationEntry {
	return predicate.RecommendationEntry(sql.FieldGT(FieldQuestionID, v))
}

// QuestionIDGTE applies the GTE predicate on the "question_id" field.
func QuestionIDGTE(v string) predicate.RecommendationEntry {
	return predicate.RecommendationEntry(sql.FieldGTE(FieldQuestionID, v))
}

// QuestionIDLT applies the LT predicate on the "question_id" field.
func QuestionIDLT(v string) predicate.RecommendationEntry {
	return predicate.RecommendationEntry(sql.FieldLT(FieldQuestionID, v))
}

// QuestionIDLTE applies the LTE predicate on the "question_id" field.
func QuestionIDLTE(v string) predicate.RecommendationEntry {
	return predicate.RecommendationEntry(sql.FieldLTE(FieldQuestionID, v))
}

// QuestionIDContains applies the Contains predicate on the "question_id" field.
func QuestionIDContains(v string) predicate.RecommendationEntry {
	return predicate.RecommendationEntry(sql.FieldContains(FieldQuestionID, v))
}

// QuestionIDHasPrefix applies the HasPrefix predicate on the "question_id" field.
func QuestionIDHasPrefix(v string) predicate.RecommendationEntry {
	return predicate.RecommendationEntry(sql.FieldHasPrefix(FieldQuestionID, v))
}

// QuestionIDHasSuffix applies the HasSuffix predicate on the "question_id" field.
func QuestionIDHasSuffix(v string) predicate.RecommendationEntry {
	return predicate.RecommendationEntry(sql.FieldHasSuffix(FieldQuestionID, v))
}

// QuestionIDEqualFold applies the EqualFold predicate on the "question_id" field.
func QuestionIDEqualFold(v string) predicate.RecommendationEntry {
	return predicate.RecommendationEntry(sql.FieldEqualFold(FieldQuestionID, v))
}

// QuestionIDContainsFold applies the ContainsFold predicate on the "question_id" field.
func QuestionIDContainsFold(v string) predicate.RecommendationEntry {
	return predicate.RecommendationEntry(sql.FieldContainsFold(FieldQuestionID, v))
}

// LastRecommendedAtEQ applies the EQ predicate on the "last_recommended_at" field.
func LastRecommendedAtEQ(v time.Time) predicate.RecommendationEntry {
	return predicate.RecommendationEntry(sql.FieldEQ(FieldLastRecommendedAt, v))
}

// LastRecommendedAtNEQ applies the NEQ predicate on the "last_recommended_at" field.
func LastRecommendedAtNEQ(v time.Time) predicate.RecommendationEntry {
	return predicate.RecommendationEntry(sql.FieldNEQ(FieldLastRecommendedAt, v))
}

// LastRecommendedAtIn applies the In predicate on the "last_recommended_at" field.
func LastRecommendedAtIn(vs ...time.Time) predicate.RecommendationEntry {
	return predicate.RecommendationEntry(sql.FieldIn(FieldLastRecommendedAt, vs...))
}

// LastRecommendedAtNotIn applies the NotIn predicate on the "last_recommended_at" field.
func LastRecommendedAtNotIn(vs ...time.Time) predicate.RecommendationEntry {
	return predicate.RecommendationEntry(sql.FieldNotIn(FieldLastRecommendedAt, vs...))
}

// LastRecommendedAtGT applies the GT predicate on the "last_recommended_at" field.
func LastRecommendedAtGT(v time.Time) predicate.RecommendationEntry {
	return predicate.RecommendationEntry(sql.FieldGT(FieldLastRecommendedAt, v))
}

// LastRecommendedAtGTE applies the GTE predicate on the "last_recommended_at" field.
func LastRecommendedAtGTE(v time.Time) predicate.RecommendationEntry {
	return predicate.RecommendationEntry(sql.FieldGTE(FieldLastRecommendedAt, v))
}

// LastRecommendedAtLT applies the LT predicate on the "last_recommended_at" field.
func LastRecommendedAtLT(v time.Time) predicate.RecommendationEntry {
	return predicate.RecommendationEntry(sql.FieldLT(FieldLastRecommendedAt, v))
}

// LastRecommendedAtLTE applies the LTE predicate on the "last_recommended_at" field.
func LastRecommendedAtLTE(v time.Time) predicate.RecommendationEntry {
	return predicate.RecommendationEntry(sql.FieldLTE(FieldLastRecommendedAt, v))
}

// TimesRecommendedEQ applies the EQ predicate on the "times_recommended" field.
func TimesRecommendedEQ(v int) predicate.RecommendationEntry {
	return predicate.RecommendationEntry(sql.FieldEQ(FieldTimesRecommended, v))
}

// TimesRecommendedNEQ applies the NEQ predicate on the "times_recommended" field.
func TimesRecommendedNEQ(v int) predicate.RecommendationEntry {
	return predicate.RecommendationEntry(sql.FieldNEQ(FieldTimesRecommended, v))
}

// TimesRecommendedIn applies the In predicate on the "times_recommended" field.
func TimesRecommendedIn(vs ...int) predicate.RecommendationEntry {
	return predicate.RecommendationEntry(sql.FieldIn(FieldTimesRecommended, vs...))
}

// TimesRecommendedNotIn applies the NotIn predicate on the "times_recommended" field.
func TimesRecommendedNotIn(vs ...int) predicate.RecommendationEntry {
	return predicate.RecommendationEntry(sql.FieldNotIn(FieldTimesRecommended, vs...))
}

// TimesRecommendedGT applies the GT predicate on the "times_recommended" field.
func TimesRecommendedGT(v int) predicate.RecommendationEntry {
	return predicate.RecommendationEntry(sql.FieldGT(FieldTimesRecommended, v))
}

// TimesRecommendedGTE applies the GTE predicate on the "times_recommended" field.
func TimesRecommendedGTE(v int) predicate.RecommendationEntry {
	return predicate.RecommendationEntry(sql.FieldGTE(FieldTimesRecommended, v))
}

// TimesRecommendedLT applies the LT predicate on the "times_recommended" field.
func TimesRecommendedLT(v int) predicate.RecommendationEntry {
	return predicate.RecommendationEntry(sql.FieldLT(FieldTimesRecommended, v))
}

// TimesRecommendedLTE applies the LTE predicate on the "times_recommended" field.
func TimesRecommendedLTE(v int) predicate.RecommendationEntry {
	return predicate.RecommendationEntry(sql.FieldLTE(FieldTimesRecommended, v))
}

// BoostGrantedEQ applies the EQ predicate on the "boost_granted" field.
func BoostGrantedEQ(v bool) predicate.RecommendationEntry {
	return predicate.RecommendationEntry(sql.FieldEQ(FieldBoostGranted, v))
}

// BoostGrantedNEQ applies the NEQ predicate on the "boost_granted" field.
func BoostGrantedNEQ(v bool) predicate.RecommendationEntry {
	return predicate.RecommendationEntry(sql.FieldNEQ(FieldBoostGranted, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.RecommendationEntry) predicate.RecommendationEntry {
	return predicate.RecommendationEntry(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.RecommendationEntry) predicate.RecommendationEntry {
	return predicate.RecommendationEntry(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.RecommendationEntry) predicate.RecommendationEntry {
	return predicate.RecommendationEntry(sql.NotPredicates(p))
}
