// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/carpentries/mailflow/ent/scheduledemail"
	"github.com/carpentries/mailflow/ent/scheduledemaillog"
	"github.com/google/uuid"
)

// ScheduledEmailLogCreate is the builder for creating a ScheduledEmailLog entity.
type ScheduledEmailLogCreate struct {
	config
	mutation *ScheduledEmailLogMutation
	hooks    []Hook
}

// SetDetails sets the "details" field.
func (_c *ScheduledEmailLogCreate) SetDetails(v string) *ScheduledEmailLogCreate {
	_c.mutation.SetDetails(v)
	return _c
}

// SetStateBefore sets the "state_before" field.
func (_c *ScheduledEmailLogCreate) SetStateBefore(v scheduledemaillog.StateBefore) *ScheduledEmailLogCreate {
	_c.mutation.SetStateBefore(v)
	return _c
}

// SetNillableStateBefore sets the "state_before" field if the given value is not nil.
func (_c *ScheduledEmailLogCreate) SetNillableStateBefore(v *scheduledemaillog.StateBefore) *ScheduledEmailLogCreate {
	if v != nil {
		_c.SetStateBefore(*v)
	}
	return _c
}

// SetStateAfter sets the "state_after" field.
func (_c *ScheduledEmailLogCreate) SetStateAfter(v scheduledemaillog.StateAfter) *ScheduledEmailLogCreate {
	_c.mutation.SetStateAfter(v)
	return _c
}

// SetAuthorID sets the "author_id" field.
func (_c *ScheduledEmailLogCreate) SetAuthorID(v int) *ScheduledEmailLogCreate {
	_c.mutation.SetAuthorID(v)
	return _c
}

// SetNillableAuthorID sets the "author_id" field if the given value is not nil.
func (_c *ScheduledEmailLogCreate) SetNillableAuthorID(v *int) *ScheduledEmailLogCreate {
	if v != nil {
		_c.SetAuthorID(*v)
	}
	return _c
}

// SetScheduledEmailID sets the "scheduled_email_id" field.
func (_c *ScheduledEmailLogCreate) SetScheduledEmailID(v uuid.UUID) *ScheduledEmailLogCreate {
	_c.mutation.SetScheduledEmailID(v)
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *ScheduledEmailLogCreate) SetCreatedAt(v time.Time) *ScheduledEmailLogCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *ScheduledEmailLogCreate) SetNillableCreatedAt(v *time.Time) *ScheduledEmailLogCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *ScheduledEmailLogCreate) SetID(v uuid.UUID) *ScheduledEmailLogCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *ScheduledEmailLogCreate) SetNillableID(v *uuid.UUID) *ScheduledEmailLogCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// SetEmailID sets the "email" edge to the ScheduledEmail entity by ID.
func (_c *ScheduledEmailLogCreate) SetEmailID(id uuid.UUID) *ScheduledEmailLogCreate {
	_c.mutation.SetEmailID(id)
	return _c
}

// SetEmail sets the "email" edge to the ScheduledEmail entity.
func (_c *ScheduledEmailLogCreate) SetEmail(v *ScheduledEmail) *ScheduledEmailLogCreate {
	return _c.SetEmailID(v.ID)
}

// Mutation returns the ScheduledEmailLogMutation object of the builder.
func (_c *ScheduledEmailLogCreate) Mutation() *ScheduledEmailLogMutation {
	return _c.mutation
}

// Save creates the ScheduledEmailLog in the database.
func (_c *ScheduledEmailLogCreate) Save(ctx context.Context) (*ScheduledEmailLog, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *ScheduledEmailLogCreate) SaveX(ctx context.Context) *ScheduledEmailLog {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ScheduledEmailLogCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ScheduledEmailLogCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *ScheduledEmailLogCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := scheduledemaillog.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := scheduledemaillog.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *ScheduledEmailLogCreate) check() error {
	if _, ok := _c.mutation.Details(); !ok {
		return &ValidationError{Name: "details", err: errors.New(`ent: missing required field "ScheduledEmailLog.details"`)}
	}
	if v, ok := _c.mutation.Details(); ok {
		if err := scheduledemaillog.DetailsValidator(v); err != nil {
			return &ValidationError{Name: "details", err: fmt.Errorf(`ent: validator failed for field "ScheduledEmailLog.details": %w`, err)}
		}
	}
	if v, ok := _c.mutation.StateBefore(); ok {
		if err := scheduledemaillog.StateBeforeValidator(v); err != nil {
			return &ValidationError{Name: "state_before", err: fmt.Errorf(`ent: validator failed for field "ScheduledEmailLog.state_before": %w`, err)}
		}
	}
	if _, ok := _c.mutation.StateAfter(); !ok {
		return &ValidationError{Name: "state_after", err: errors.New(`ent: missing required field "ScheduledEmailLog.state_after"`)}
	}
	if v, ok := _c.mutation.StateAfter(); ok {
		if err := scheduledemaillog.StateAfterValidator(v); err != nil {
			return &ValidationError{Name: "state_after", err: fmt.Errorf(`ent: validator failed for field "ScheduledEmailLog.state_after": %w`, err)}
		}
	}
	if _, ok := _c.mutation.ScheduledEmailID(); !ok {
		return &ValidationError{Name: "scheduled_email_id", err: errors.New(`ent: missing required field "ScheduledEmailLog.scheduled_email_id"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "ScheduledEmailLog.created_at"`)}
	}
	if len(_c.mutation.EmailIDs()) == 0 {
		return &ValidationError{Name: "email", err: errors.New(`ent: missing required edge "ScheduledEmailLog.email"`)}
	}
	return nil
}

func (_c *ScheduledEmailLogCreate) sqlSave(ctx context.Context) (*ScheduledEmailLog, error) {
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
	if _spec.ID.Value != nil {
		if id, ok := _spec.ID.Value.(*uuid.UUID); ok {
			_node.ID = *id
		} else if err := _node.ID.Scan(_spec.ID.Value); err != nil {
			return nil, err
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *ScheduledEmailLogCreate) createSpec() (*ScheduledEmailLog, *sqlgraph.CreateSpec) {
	var (
		_node = &ScheduledEmailLog{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(scheduledemaillog.Table, sqlgraph.NewFieldSpec(scheduledemaillog.FieldID, field.TypeUUID))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.Details(); ok {
		_spec.SetField(scheduledemaillog.FieldDetails, field.TypeString, value)
		_node.Details = value
	}
	if value, ok := _c.mutation.StateBefore(); ok {
		_spec.SetField(scheduledemaillog.FieldStateBefore, field.TypeEnum, value)
		_node.StateBefore = value
	}
	if value, ok := _c.mutation.StateAfter(); ok {
		_spec.SetField(scheduledemaillog.FieldStateAfter, field.TypeEnum, value)
		_node.StateAfter = value
	}
	if value, ok := _c.mutation.AuthorID(); ok {
		_spec.SetField(scheduledemaillog.FieldAuthorID, field.TypeInt, value)
		_node.AuthorID = &value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(scheduledemaillog.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if nodes := _c.mutation.EmailIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   scheduledemaillog.EmailTable,
			Columns: []string{scheduledemaillog.EmailColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(scheduledemail.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.ScheduledEmailID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// ScheduledEmailLogCreateBulk is the builder for creating many ScheduledEmailLog entities in bulk.
type ScheduledEmailLogCreateBulk struct {
	config
	err      error
	builders []*ScheduledEmailLogCreate
}

// Save creates the ScheduledEmailLog entities in the database.
func (_c *ScheduledEmailLogCreateBulk) Save(ctx context.Context) ([]*ScheduledEmailLog, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*ScheduledEmailLog, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*ScheduledEmailLogMutation)
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
func (_c *ScheduledEmailLogCreateBulk) SaveX(ctx context.Context) []*ScheduledEmailLog {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ScheduledEmailLogCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ScheduledEmailLogCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
