// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/abhisek/leetcoach/ent/recommendationentry"
)

// RecommendationEntryCreate is the builder for creating a RecommendationEntry entity.
type RecommendationEntryCreate struct {
	config
	mutation *RecommendationEntryMutation
	hooks    []Hook
}

// SetUserID sets the "user_id" field.
func (_c *RecommendationEntryCreate) SetUserID(v string) *RecommendationEntryCreate {
	_c.mutation.SetUserID(v)
	return _c
}

// SetQuestionID sets the "question_id" field.
func (_c *RecommendationEntryCreate) SetQuestionID(v string) *RecommendationEntryCreate {
	_c.mutation.SetQuestionID(v)
	return _c
}

// SetLastRecommendedAt sets the "last_recommended_at" field.
func (_c *RecommendationEntryCreate) SetLastRecommendedAt(v time.Time) *RecommendationEntryCreate {
	_c.mutation.SetLastRecommendedAt(v)
	return _c
}

// SetTimesRecommended sets the "times_recommended" field.
func (_c *RecommendationEntryCreate) SetTimesRecommended(v int) *RecommendationEntryCreate {
	_c.mutation.SetTimesRecommended(v)
	return _c
}

// SetBoostGranted sets the "boost_granted" field.
func (_c *RecommendationEntryCreate) SetBoostGranted(v bool) *RecommendationEntryCreate {
	_c.mutation.SetBoostGranted(v)
	return _c
}

// SetNillableBoostGranted sets the "boost_granted" field if the given value is not nil.
func (_c *RecommendationEntryCreate) SetNillableBoostGranted(v *bool) *RecommendationEntryCreate {
	if v != nil {
		_c.SetBoostGranted(*v)
	}
	return _c
}

// Mutation returns the RecommendationEntryMutation object of the builder.
func (_c *RecommendationEntryCreate) Mutation() *RecommendationEntryMutation {
	return _c.mutation
}

// Save creates the RecommendationEntry in the database.
func (_c *RecommendationEntryCreate) Save(ctx context.Context) (*RecommendationEntry, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *RecommendationEntryCreate) SaveX(ctx context.Context) *RecommendationEntry {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *RecommendationEntryCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *RecommendationEntryCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *RecommendationEntryCreate) defaults() {
	if _, ok := _c.mutation.BoostGranted(); !ok {
		v := recommendationentry.DefaultBoostGranted
		_c.mutation.SetBoostGranted(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *RecommendationEntryCreate) check() error {
	if _, ok := _c.mutation.UserID(); !ok {
		return &ValidationError{Name: "user_id", err: errors.New(`ent: missing required field "RecommendationEntry.user_id"`)}
	}
	if _, ok := _c.mutation.QuestionID(); !ok {
		return &ValidationError{Name: "question_id", err: errors.New(`ent: missing required field "RecommendationEntry.question_id"`)}
	}
	if _, ok := _c.mutation.LastRecommendedAt(); !ok {
		return &ValidationError{Name: "last_recommended_at", err: errors.New(`ent: missing required field "RecommendationEntry.last_recommended_at"`)}
	}
	if _, ok := _c.mutation.TimesRecommended(); !ok {
		return &ValidationError{Name: "times_recommended", err: errors.New(`ent: missing required field "RecommendationEntry.times_recommended"`)}
	}
	if v, ok := _c.mutation.TimesRecommended(); ok {
		if err := recommendationentry.TimesRecommendedValidator(v); err != nil {
			return &ValidationError{Name: "times_recommended", err: fmt.Errorf(`ent: validator failed for field "RecommendationEntry.times_recommended": %w`, err)}
		}
	}
	if _, ok := _c.mutation.BoostGranted(); !ok {
		return &ValidationError{Name: "boost_granted", err: errors.New(`ent: missing required field "RecommendationEntry.boost_granted"`)}
	}
	return nil
}

func (_c *RecommendationEntryCreate) sqlSave(ctx context.Context) (*RecommendationEntry, error) {
	if err := _c.check(); err != nil {
		return nil, err
	}
	_node, _spec := _c.createSpec()
	if err := sqlgraph.CreateNode(ctx, _c.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	id := _spec.ID.Value.(int64)
	_node.ID = int(id)
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *RecommendationEntryCreate) createSpec() (*RecommendationEntry, *sqlgraph.CreateSpec) {
	var (
		_node = &RecommendationEntry{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(recommendationentry.Table, sqlgraph.NewFieldSpec(recommendationentry.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.UserID(); ok {
		_spec.SetField(recommendationentry.FieldUserID, field.TypeString, value)
		_node.UserID = value
	}
	if value, ok := _c.mutation.QuestionID(); ok {
		_spec.SetField(recommendationentry.FieldQuestionID, field.TypeString, value)
		_node.QuestionID = value
	}
	if value, ok := _c.mutation.LastRecommendedAt(); ok {
		_spec.SetField(recommendationentry.FieldLastRecommendedAt, field.TypeTime, value)
		_node.LastRecommendedAt = value
	}
	if value, ok := _c.mutation.TimesRecommended(); ok {
		_spec.SetField(recommendationentry.FieldTimesRecommended, field.TypeInt, value)
		_node.TimesRecommended = value
	}
	if value, ok := _c.mutation.BoostGranted(); ok {
		_spec.SetField(recommendationentry.FieldBoostGranted, field.TypeBool, value)
		_node.BoostGranted = value
	}
	return _node, _spec
}

// RecommendationEntryCreateBulk is the builder for creating many RecommendationEntry entities in bulk.
type RecommendationEntryCreateBulk struct {
	config
	err      error
	builders []*RecommendationEntryCreate
}

// Save creates the RecommendationEntry entities in the database.
func (_c *RecommendationEntryCreateBulk) Save(ctx context.Context) ([]*RecommendationEntry, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*RecommendationEntry, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*RecommendationEntryMutation)
				if !ok {
					return nil, fmt.Errorf("unexpected mutation type %T", m)
				}
				if err := builder.check(); err != nil {
					return nil, err
				}
				builder.mutation = mutation
				var err error
				nodes[i], specs[i] = builder.createSpec()
				if i < len(mutators)-1 {
					_, err = mutators[i+1].Mutate(root, _c.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, _c.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
				if specs[i].ID.Value != nil {
					id := specs[i].ID.Value.(int64)
					nodes[i].ID = int(id)
				}
				mutation.done = true
				return nodes[i], nil
			})
			for i := len(builder.hooks) - 1; i >= 0; i-- {
				mut = builder.hooks[i](mut)
			}
			mutators[i] = mut
		}(i, ctx)
	}
	if len(mutators) > 0 {
		if _, err := mutators[0].Mutate(ctx, _c.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (_c *RecommendationEntryCreateBulk) SaveX(ctx context.Context) []*RecommendationEntry {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *RecommendationEntryCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *RecommendationEntryCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
