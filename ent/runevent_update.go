// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/abhisek/leetcoach/ent/predicate"
	"github.com/abhisek/leetcoach/ent/runevent"
)

// RunEventUpdate is the builder for updating RunEvent entities.
type RunEventUpdate struct {
	config
	hooks    []Hook
	mutation *RunEventMutation
}

// Where appends a list predicates to the RunEventUpdate builder.
func (_u *RunEventUpdate) Where(ps ...predicate.RunEvent) *RunEventUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetStrategy sets the "strategy" field.
func (_u *RunEventUpdate) SetStrategy(v string) *RunEventUpdate {
	_u.mutation.SetStrategy(v)
	return _u
}

// SetNillableStrategy sets the "strategy" field if the given value is not nil.
func (_u *RunEventUpdate) SetNillableStrategy(v *string) *RunEventUpdate {
	if v != nil {
		_u.SetStrategy(*v)
	}
	return _u
}

// ClearStrategy clears the value of the "strategy" field.
func (_u *RunEventUpdate) ClearStrategy() *RunEventUpdate {
	_u.mutation.ClearStrategy()
	return _u
}

// SetState sets the "state" field.
func (_u *RunEventUpdate) SetState(v string) *RunEventUpdate {
	_u.mutation.SetState(v)
	return _u
}

// SetNillableState sets the "state" field if the given value is not nil.
func (_u *RunEventUpdate) SetNillableState(v *string) *RunEventUpdate {
	if v != nil {
		_u.SetState(*v)
	}
	return _u
}

// SetCandidates sets the "candidates" field.
func (_u *RunEventUpdate) SetCandidates(v int) *RunEventUpdate {
	_u.mutation.ResetCandidates()
	_u.mutation.SetCandidates(v)
	return _u
}

// SetNillableCandidates sets the "candidates" field if the given value is not nil.
func (_u *RunEventUpdate) SetNillableCandidates(v *int) *RunEventUpdate {
	if v != nil {
		_u.SetCandidates(*v)
	}
	return _u
}

// AddCandidates adds value to the "candidates" field.
func (_u *RunEventUpdate) AddCandidates(v int) *RunEventUpdate {
	_u.mutation.AddCandidates(v)
	return _u
}

// SetError sets the "error" field.
func (_u *RunEventUpdate) SetError(v string) *RunEventUpdate {
	_u.mutation.SetError(v)
	return _u
}

// SetNillableError sets the "error" field if the given value is not nil.
func (_u *RunEventUpdate) SetNillableError(v *string) *RunEventUpdate {
	if v != nil {
		_u.SetError(*v)
	}
	return _u
}

// ClearError clears the value of the "error" field.
func (_u *RunEventUpdate) ClearError() *RunEventUpdate {
	_u.mutation.ClearError()
	return _u
}

// Mutation returns the RunEventMutation object of the builder.
func (_u *RunEventUpdate) Mutation() *RunEventMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *RunEventUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *RunEventUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *RunEventUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *RunEventUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *RunEventUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	_spec := sqlgraph.NewUpdateSpec(runevent.Table, runevent.Columns, sqlgraph.NewFieldSpec(runevent.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Strategy(); ok {
		_spec.SetField(runevent.FieldStrategy, field.TypeString, value)
	}
	if _u.mutation.StrategyCleared() {
		_spec.ClearField(runevent.FieldStrategy, field.TypeString)
	}
	if value, ok := _u.mutation.State(); ok {
		_spec.SetField(runevent.FieldState, field.TypeString, value)
	}
	if value, ok := _u.mutation.Candidates(); ok {
		_spec.SetField(runevent.FieldCandidates, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedCandidates(); ok {
		_spec.AddField(runevent.FieldCandidates, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Error(); ok {
		_spec.SetField(runevent.FieldError, field.TypeString, value)
	}
	if _u.mutation.ErrorCleared() {
		_spec.ClearField(runevent.FieldError, field.TypeString)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{runevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// RunEventUpdateOne is the builder for updating a single RunEvent entity.
type RunEventUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *RunEventMutation
}

// SetStrategy sets the "strategy" field.
func (_u *RunEventUpdateOne) SetStrategy(v string) *RunEventUpdateOne {
	_u.mutation.SetStrategy(v)
	return _u
}

// SetNillableStrategy sets the "strategy" field if the given value is not nil.
func (_u *RunEventUpdateOne) SetNillableStrategy(v *string) *RunEventUpdateOne {
	if v != nil {
		_u.SetStrategy(*v)
	}
	return _u
}

// ClearStrategy clears the value of the "strategy" field.
func (_u *RunEventUpdateOne) ClearStrategy() *RunEventUpdateOne {
	_u.mutation.ClearStrategy()
	return _u
}

// SetState sets the "state" field.
func (_u *RunEventUpdateOne) SetState(v string) *RunEventUpdateOne {
	_u.mutation.SetState(v)
	return _u
}

// SetNillableState sets the "state" field if the given value is not nil.
func (_u *RunEventUpdateOne) SetNillableState(v *string) *RunEventUpdateOne {
	if v != nil {
		_u.SetState(*v)
	}
	return _u
}

// SetCandidates sets the "candidates" field.
func (_u *RunEventUpdateOne) SetCandidates(v int) *RunEventUpdateOne {
	_u.mutation.ResetCandidates()
	_u.mutation.SetCandidates(v)
	return _u
}

// SetNillableCandidates sets the "candidates" field if the given value is not nil.
func (_u *RunEventUpdateOne) SetNillableCandidates(v *int) *RunEventUpdateOne {
	if v != nil {
		_u.SetCandidates(*v)
	}
	return _u
}

// AddCandidates adds value to the "candidates" field.
func (_u *RunEventUpdateOne) AddCandidates(v int) *RunEventUpdateOne {
	_u.mutation.AddCandidates(v)
	return _u
}

// SetError sets the "error" field.
func (_u *RunEventUpdateOne) SetError(v string) *RunEventUpdateOne {
	_u.mutation.SetError(v)
	return _u
}

// SetNillableError sets the "error" field if the given value is not nil.
func (_u *RunEventUpdateOne) SetNillableError(v *string) *RunEventUpdateOne {
	if v != nil {
		_u.SetError(*v)
	}
	return _u
}

// ClearError clears the value of the "error" field.
func (_u *RunEventUpdateOne) ClearError() *RunEventUpdateOne {
	_u.mutation.ClearError()
	return _u
}

// Mutation returns the RunEventMutation object of the builder.
func (_u *RunEventUpdateOne) Mutation() *RunEventMutation {
	return _u.mutation
}

// Where appends a list predicates to the RunEventUpdate builder.
func (_u *RunEventUpdateOne) Where(ps ...predicate.RunEvent) *RunEventUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *RunEventUpdateOne) Select(field string, fields ...string) *RunEventUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated RunEvent entity.
func (_u *RunEventUpdateOne) Save(ctx context.Context) (*RunEvent, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *RunEventUpdateOne) SaveX(ctx context.Context) *RunEvent {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *RunEventUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *RunEventUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *RunEventUpdateOne) sqlSave(ctx context.Context) (_node *RunEvent, err error) {
	_spec := sqlgraph.NewUpdateSpec(runevent.Table, runevent.Columns, sqlgraph.NewFieldSpec(runevent.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "RunEvent.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, runevent.FieldID)
		for _, f := range fields {
			if !runevent.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != runevent.FieldID {
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
	if value, ok := _u.mutation.Strategy(); ok {
		_spec.SetField(runevent.FieldStrategy, field.TypeString, value)
	}
	if _u.mutation.StrategyCleared() {
		_spec.ClearField(runevent.FieldStrategy, field.TypeString)
	}
	if value, ok := _u.mutation.State(); ok {
		_spec.SetField(runevent.FieldState, field.TypeString, value)
	}
	if value, ok := _u.mutation.Candidates(); ok {
		_spec.SetField(runevent.FieldCandidates, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedCandidates(); ok {
		_spec.AddField(runevent.FieldCandidates, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Error(); ok {
		_spec.SetField(runevent.FieldError, field.TypeString, value)
	}
	if _u.mutation.ErrorCleared() {
		_spec.ClearField(runevent.FieldError, field.TypeString)
	}
	_node = &RunEvent{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{runevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
