// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/abhisek/leetcoach/ent/predicate"
	"github.com/abhisek/leetcoach/ent/recommendationentry"
)

// RecommendationEntryUpdate is the builder for updating RecommendationEntry entities.
type RecommendationEntryUpdate struct {
	config
	hooks    []Hook
	mutation *RecommendationEntryMutation
}

// Where appends a list predicates to the RecommendationEntryUpdate builder.
func (_u *RecommendationEntryUpdate) Where(ps ...predicate.RecommendationEntry) *RecommendationEntryUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetUserID sets the "user_id" field.
func (_u *RecommendationEntryUpdate) SetUserID(v string) *RecommendationEntryUpdate {
	_u.mutation.SetUserID(v)
	return _u
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (_u *RecommendationEntryUpdate) SetNillableUserID(v *string) *RecommendationEntryUpdate {
	if v != nil {
		_u.SetUserID(*v)
	}
	return _u
}

// SetQuestionID sets the "question_id" field.
func (_u *RecommendationEntryUpdate) SetQuestionID(v string) *RecommendationEntryUpdate {
	_u.mutation.SetQuestionID(v)
	return _u
}

// SetNillableQuestionID sets the "question_id" field if the given value is not nil.
func (_u *RecommendationEntryUpdate) SetNillableQuestionID(v *string) *RecommendationEntryUpdate {
	if v != nil {
		_u.SetQuestionID(*v)
	}
	return _u
}

// SetLastRecommendedAt sets the "last_recommended_at" field.
func (_u *RecommendationEntryUpdate) SetLastRecommendedAt(v time.Time) *RecommendationEntryUpdate {
	_u.mutation.SetLastRecommendedAt(v)
	return _u
}

// SetNillableLastRecommendedAt sets the "last_recommended_at" field if the given value is not nil.
func (_u *RecommendationEntryUpdate) SetNillableLastRecommendedAt(v *time.Time) *RecommendationEntryUpdate {
	if v != nil {
		_u.SetLastRecommendedAt(*v)
	}
	return _u
}

// SetTimesRecommended sets the "times_recommended" field.
func (_u *RecommendationEntryUpdate) SetTimesRecommended(v int) *RecommendationEntryUpdate {
	_u.mutation.ResetTimesRecommended()
	_u.mutation.SetTimesRecommended(v)
	return _u
}

// SetNillableTimesRecommended sets the "times_recommended" field if the given value is not nil.
func (_u *RecommendationEntryUpdate) SetNillableTimesRecommended(v *int) *RecommendationEntryUpdate {
	if v != nil {
		_u.SetTimesRecommended(*v)
	}
	return _u
}

// AddTimesRecommended adds value to the "times_recommended" field.
func (_u *RecommendationEntryUpdate) AddTimesRecommended(v int) *RecommendationEntryUpdate {
	_u.mutation.AddTimesRecommended(v)
	return _u
}

// SetBoostGranted sets the "boost_granted" field.
func (_u *RecommendationEntryUpdate) SetBoostGranted(v bool) *RecommendationEntryUpdate {
	_u.mutation.SetBoostGranted(v)
	return _u
}

// SetNillableBoostGranted sets the "boost_granted" field if the given value is not nil.
func (_u *RecommendationEntryUpdate) SetNillableBoostGranted(v *bool) *RecommendationEntryUpdate {
	if v != nil {
		_u.SetBoostGranted(*v)
	}
	return _u
}

// Mutation returns the RecommendationEntryMutation object of the builder.
func (_u *RecommendationEntryUpdate) Mutation() *RecommendationEntryMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *RecommendationEntryUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *RecommendationEntryUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *RecommendationEntryUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *RecommendationEntryUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *RecommendationEntryUpdate) check() error {
	if v, ok := _u.mutation.TimesRecommended(); ok {
		if err := recommendationentry.TimesRecommendedValidator(v); err != nil {
			return &ValidationError{Name: "times_recommended", err: fmt.Errorf(`ent: validator failed for field "RecommendationEntry.times_recommended": %w`, err)}
		}
	}
	return nil
}

func (_u *RecommendationEntryUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(recommendationentry.Table, recommendationentry.Columns, sqlgraph.NewFieldSpec(recommendationentry.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.UserID(); ok {
		_spec.SetField(recommendationentry.FieldUserID, field.TypeString, value)
	}
	if value, ok := _u.mutation.QuestionID(); ok {
		_spec.SetField(recommendationentry.FieldQuestionID, field.TypeString, value)
	}
	if value, ok := _u.mutation.LastRecommendedAt(); ok {
		_spec.SetField(recommendationentry.FieldLastRecommendedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.TimesRecommended(); ok {
		_spec.SetField(recommendationentry.FieldTimesRecommended, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTimesRecommended(); ok {
		_spec.AddField(recommendationentry.FieldTimesRecommended, field.TypeInt, value)
	}
	if value, ok := _u.mutation.BoostGranted(); ok {
		_spec.SetField(recommendationentry.FieldBoostGranted, field.TypeBool, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{recommendationentry.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// RecommendationEntryUpdateOne is the builder for updating a single RecommendationEntry entity.
type RecommendationEntryUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *RecommendationEntryMutation
}

// SetUserID sets the "user_id" field.
func (_u *RecommendationEntryUpdateOne) SetUserID(v string) *RecommendationEntryUpdateOne {
	_u.mutation.SetUserID(v)
	return _u
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (_u *RecommendationEntryUpdateOne) SetNillableUserID(v *string) *RecommendationEntryUpdateOne {
	if v != nil {
		_u.SetUserID(*v)
	}
	return _u
}

// SetQuestionID sets the "question_id" field.
func (_u *RecommendationEntryUpdateOne) SetQuestionID(v string) *RecommendationEntryUpdateOne {
	_u.mutation.SetQuestionID(v)
	return _u
}

// SetNillableQuestionID sets the "question_id" field if the given value is not nil.
func (_u *RecommendationEntryUpdateOne) SetNillableQuestionID(v *string) *RecommendationEntryUpdateOne {
	if v != nil {
		_u.SetQuestionID(*v)
	}
	return _u
}

// SetLastRecommendedAt sets the "last_recommended_at" field.
func (_u *RecommendationEntryUpdateOne) SetLastRecommendedAt(v time.Time) *RecommendationEntryUpdateOne {
	_u.mutation.SetLastRecommendedAt(v)
	return _u
}

// SetNillableLastRecommendedAt sets the "last_recommended_at" field if the given value is not nil.
func (_u *RecommendationEntryUpdateOne) SetNillableLastRecommendedAt(v *time.Time) *RecommendationEntryUpdateOne {
	if v != nil {
		_u.SetLastRecommendedAt(*v)
	}
	return _u
}

// SetTimesRecommended sets the "times_recommended" field.
func (_u *RecommendationEntryUpdateOne) SetTimesRecommended(v int) *RecommendationEntryUpdateOne {
	_u.mutation.ResetTimesRecommended()
	_u.mutation.SetTimesRecommended(v)
	return _u
}

// SetNillableTimesRecommended sets the "times_recommended" field if the given value is not nil.
func (_u *RecommendationEntryUpdateOne) SetNillableTimesRecommended(v *int) *RecommendationEntryUpdateOne {
	if v != nil {
		_u.SetTimesRecommended(*v)
	}
	return _u
}

// AddTimesRecommended adds value to the "times_recommended" field.
func (_u *RecommendationEntryUpdateOne) AddTimesRecommended(v int) *RecommendationEntryUpdateOne {
	_u.mutation.AddTimesRecommended(v)
	return _u
}

// SetBoostGranted sets the "boost_granted" field.
func (_u *RecommendationEntryUpdateOne) SetBoostGranted(v bool) *RecommendationEntryUpdateOne {
	_u.mutation.SetBoostGranted(v)
	return _u
}

// SetNillableBoostGranted sets the "boost_granted" field if the given value is not nil.
func (_u *RecommendationEntryUpdateOne) SetNillableBoostGranted(v *bool) *RecommendationEntryUpdateOne {
	if v != nil {
		_u.SetBoostGranted(*v)
	}
	return _u
}

// Mutation returns the RecommendationEntryMutation object of the builder.
func (_u *RecommendationEntryUpdateOne) Mutation() *RecommendationEntryMutation {
	return _u.mutation
}

// Where appends a list predicates to the RecommendationEntryUpdate builder.
func (_u *RecommendationEntryUpdateOne) Where(ps ...predicate.RecommendationEntry) *RecommendationEntryUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *RecommendationEntryUpdateOne) Select(field string, fields ...string) *RecommendationEntryUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated RecommendationEntry entity.
func (_u *RecommendationEntryUpdateOne) Save(ctx context.Context) (*RecommendationEntry, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *RecommendationEntryUpdateOne) SaveX(ctx context.Context) *RecommendationEntry {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *RecommendationEntryUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *RecommendationEntryUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *RecommendationEntryUpdateOne) check() error {
	if v, ok := _u.mutation.TimesRecommended(); ok {
		if err := recommendationentry.TimesRecommendedValidator(v); err != nil {
			return &ValidationError{Name: "times_recommended", err: fmt.Errorf(`ent: validator failed for field "RecommendationEntry.times_recommended": %w`, err)}
		}
	}
	return nil
}

func (_u *RecommendationEntryUpdateOne) sqlSave(ctx context.Context) (_node *RecommendationEntry, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(recommendationentry.Table, recommendationentry.Columns, sqlgraph.NewFieldSpec(recommendationentry.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "RecommendationEntry.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, recommendationentry.FieldID)
		for _, f := range fields {
			if !recommendationentry.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != recommendationentry.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.UserID(); ok {
		_spec.SetField(recommendationentry.FieldUserID, field.TypeString, value)
	}
	if value, ok := _u.mutation.QuestionID(); ok {
		_spec.SetField(recommendationentry.FieldQuestionID, field.TypeString, value)
	}
	if value, ok := _u.mutation.LastRecommendedAt(); ok {
		_spec.SetField(recommendationentry.FieldLastRecommendedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.TimesRecommended(); ok {
		_spec.SetField(recommendationentry.FieldTimesRecommended, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTimesRecommended(); ok {
		_spec.AddField(recommendationentry.FieldTimesRecommended, field.TypeInt, value)
	}
	if value, ok := _u.mutation.BoostGranted(); ok {
		_spec.SetField(recommendationentry.FieldBoostGranted, field.TypeBool, value)
	}
	_node = &RecommendationEntry{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{recommendationentry.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
