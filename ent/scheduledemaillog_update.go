// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/carpentries/mailflow/ent/predicate"
	"github.com/carpentries/mailflow/ent/scheduledemaillog"
)

// ScheduledEmailLogUpdate is the builder for updating ScheduledEmailLog entities.
type ScheduledEmailLogUpdate struct {
	config
	hooks    []Hook
	mutation *ScheduledEmailLogMutation
}

// Where appends a list predicates to the ScheduledEmailLogUpdate builder.
func (_u *ScheduledEmailLogUpdate) Where(ps ...predicate.ScheduledEmailLog) *ScheduledEmailLogUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// Mutation returns the ScheduledEmailLogMutation object of the builder.
func (_u *ScheduledEmailLogUpdate) Mutation() *ScheduledEmailLogMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *ScheduledEmailLogUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ScheduledEmailLogUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *ScheduledEmailLogUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ScheduledEmailLogUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ScheduledEmailLogUpdate) check() error {
	if _u.mutation.EmailCleared() && len(_u.mutation.EmailIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "ScheduledEmailLog.email"`)
	}
	return nil
}

func (_u *ScheduledEmailLogUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(scheduledemaillog.Table, scheduledemaillog.Columns, sqlgraph.NewFieldSpec(scheduledemaillog.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if _u.mutation.StateBeforeCleared() {
		_spec.ClearField(scheduledemaillog.FieldStateBefore, field.TypeEnum)
	}
	if _u.mutation.AuthorIDCleared() {
		_spec.ClearField(scheduledemaillog.FieldAuthorID, field.TypeInt)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{scheduledemaillog.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// ScheduledEmailLogUpdateOne is the builder for updating a single ScheduledEmailLog entity.
type ScheduledEmailLogUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ScheduledEmailLogMutation
}

// Mutation returns the ScheduledEmailLogMutation object of the builder.
func (_u *ScheduledEmailLogUpdateOne) Mutation() *ScheduledEmailLogMutation {
	return _u.mutation
}

// Where appends a list predicates to the ScheduledEmailLogUpdate builder.
func (_u *ScheduledEmailLogUpdateOne) Where(ps ...predicate.ScheduledEmailLog) *ScheduledEmailLogUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *ScheduledEmailLogUpdateOne) Select(field string, fields ...string) *ScheduledEmailLogUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated ScheduledEmailLog entity.
func (_u *ScheduledEmailLogUpdateOne) Save(ctx context.Context) (*ScheduledEmailLog, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ScheduledEmailLogUpdateOne) SaveX(ctx context.Context) *ScheduledEmailLog {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *ScheduledEmailLogUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ScheduledEmailLogUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ScheduledEmailLogUpdateOne) check() error {
	if _u.mutation.EmailCleared() && len(_u.mutation.EmailIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "ScheduledEmailLog.email"`)
	}
	return nil
}

func (_u *ScheduledEmailLogUpdateOne) sqlSave(ctx context.Context) (_node *ScheduledEmailLog, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(scheduledemaillog.Table, scheduledemaillog.Columns, sqlgraph.NewFieldSpec(scheduledemaillog.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "ScheduledEmailLog.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, scheduledemaillog.FieldID)
		for _, f := range fields {
			if !scheduledemaillog.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != scheduledemaillog.FieldID {
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
	if _u.mutation.StateBeforeCleared() {
		_spec.ClearField(scheduledemaillog.FieldStateBefore, field.TypeEnum)
	}
	if _u.mutation.AuthorIDCleared() {
		_spec.ClearField(scheduledemaillog.FieldAuthorID, field.TypeInt)
	}
	_node = &ScheduledEmailLog{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{scheduledemaillog.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
