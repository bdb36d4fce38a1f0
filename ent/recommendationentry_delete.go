// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/abhisek/leetcoach/ent/predicate"
	"github.com/abhisek/leetcoach/ent/recommendationentry"
)

// RecommendationEntryDelete is the builder for deleting a RecommendationEntry entity.
type RecommendationEntryDelete struct {
	config
	hooks    []Hook
	mutation *RecommendationEntryMutation
}

// Where appends a list predicates to the RecommendationEntryDelete builder.
func (_d *RecommendationEntryDelete) Where(ps ...predicate.RecommendationEntry) *RecommendationEntryDelete {
	_d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query and returns how many vertices were deleted.
func (_d *RecommendationEntryDelete) Exec(ctx context.Context) (int, error) {
	return withHooks(ctx, _d.sqlExec, _d.mutation, _d.hooks)
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *RecommendationEntryDelete) ExecX(ctx context.Context) int {
	n, err := _d.Exec(ctx)
	if err != nil {
		panic(err)
	}
	return n
}

func (_d *RecommendationEntryDelete) sqlExec(ctx context.Context) (int, error) {
	_spec := sqlgraph.NewDeleteSpec(recommendationentry.Table, sqlgraph.NewFieldSpec(recommendationentry.FieldID, field.TypeInt))
	if ps := _d.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	affected, err := sqlgraph.DeleteNodes(ctx, _d.driver, _spec)
	if err != nil && sqlgraph.IsConstraintError(err) {
		err = &ConstraintError{msg: err.Error(), wrap: err}
	}
	_d.mutation.done = true
	return affected, err
}

// RecommendationEntryDeleteOne is the builder for deleting a single RecommendationEntry entity.
type RecommendationEntryDeleteOne struct {
	_d *RecommendationEntryDelete
}

// Where appends a list predicates to the RecommendationEntryDelete builder.
func (_d *RecommendationEntryDeleteOne) Where(ps ...predicate.RecommendationEntry) *RecommendationEntryDeleteOne {
	_d._d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query.
func (_d *RecommendationEntryDeleteOne) Exec(ctx context.Context) error {
	n, err := _d._d.Exec(ctx)
	switch {
	case err != nil:
		return err
	case n == 0:
		return &NotFoundError{recommendationentry.Label}
	default:
		return nil
	}
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *RecommendationEntryDeleteOne) ExecX(ctx context.Context) {
	if err := _d.Exec(ctx); err != nil {
		panic(err)
	}
}
