// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/carpentries/mailflow/ent/membership"
	"github.com/carpentries/mailflow/ent/membershiptask"
	"github.com/carpentries/mailflow/ent/person"
)

// MembershipTaskCreate is the builder for creating a MembershipTask entity.
type MembershipTaskCreate struct {
	config
	mutation *MembershipTaskMutation
	hooks    []Hook
}

// SetRole sets the "role" field.
func (_c *MembershipTaskCreate) SetRole(v membershiptask.Role) *MembershipTaskCreate {
	_c.mutation.SetRole(v)
	return _c
}

// SetMembershipID sets the "membership_id" field.
func (_c *MembershipTaskCreate) SetMembershipID(v int) *MembershipTaskCreate {
	_c.mutation.SetMembershipID(v)
	return _c
}

// SetPersonID sets the "person_id" field.
func (_c *MembershipTaskCreate) SetPersonID(v int) *MembershipTaskCreate {
	_c.mutation.SetPersonID(v)
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *MembershipTaskCreate) SetCreatedAt(v time.Time) *MembershipTaskCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *MembershipTaskCreate) SetNillableCreatedAt(v *time.Time) *MembershipTaskCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetMembership sets the "membership" edge to the Membership entity.
func (_c *MembershipTaskCreate) SetMembership(v *Membership) *MembershipTaskCreate {
	return _c.SetMembershipID(v.ID)
}

// SetPerson sets the "person" edge to the Person entity.
func (_c *MembershipTaskCreate) SetPerson(v *Person) *MembershipTaskCreate {
	return _c.SetPersonID(v.ID)
}

// Mutation returns the MembershipTaskMutation object of the builder.
func (_c *MembershipTaskCreate) Mutation() *MembershipTaskMutation {
	return _c.mutation
}

// Save creates the MembershipTask in the database.
func (_c *MembershipTaskCreate) Save(ctx context.Context) (*MembershipTask, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *MembershipTaskCreate) SaveX(ctx context.Context) *MembershipTask {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *MembershipTaskCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *MembershipTaskCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *MembershipTaskCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := membershiptask.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *MembershipTaskCreate) check() error {
	if _, ok := _c.mutation.Role(); !ok {
		return &ValidationError{Name: "role", err: errors.New(`ent: missing required field "MembershipTask.role"`)}
	}
	if v, ok := _c.mutation.Role(); ok {
		if err := membershiptask.RoleValidator(v); err != nil {
			return &ValidationError{Name: "role", err: fmt.Errorf(`ent: validator failed for field "MembershipTask.role": %w`, err)}
		}
	}
	if _, ok := _c.mutation.MembershipID(); !ok {
		return &ValidationError{Name: "membership_id", err: errors.New(`ent: missing required field "MembershipTask.membership_id"`)}
	}
	if _, ok := _c.mutation.PersonID(); !ok {
		return &ValidationError{Name: "person_id", err: errors.New(`ent: missing required field "MembershipTask.person_id"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "MembershipTask.created_at"`)}
	}
	if len(_c.mutation.MembershipIDs()) == 0 {
		return &ValidationError{Name: "membership", err: errors.New(`ent: missing required edge "MembershipTask.membership"`)}
	}
	if len(_c.mutation.PersonIDs()) == 0 {
		return &ValidationError{Name: "person", err: errors.New(`ent: missing required edge "MembershipTask.person"`)}
	}
	return nil
}

func (_c *MembershipTaskCreate) sqlSave(ctx context.Context) (*MembershipTask, error) {
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

func (_c *MembershipTaskCreate) createSpec() (*MembershipTask, *sqlgraph.CreateSpec) {
	var (
		_node = &MembershipTask{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(membershiptask.Table, sqlgraph.NewFieldSpec(membershiptask.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.Role(); ok {
		_spec.SetField(membershiptask.FieldRole, field.TypeEnum, value)
		_node.Role = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(membershiptask.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if nodes := _c.mutation.MembershipIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   membershiptask.MembershipTable,
			Columns: []string{membershiptask.MembershipColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(membership.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.MembershipID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.PersonIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   membershiptask.PersonTable,
			Columns: []string{membershiptask.PersonColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(person.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.PersonID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// MembershipTaskCreateBulk is the builder for creating many MembershipTask entities in bulk.
type MembershipTaskCreateBulk struct {
	config
	err      error
	builders []*MembershipTaskCreate
}

// Save creates the MembershipTask entities in the database.
func (_c *MembershipTaskCreateBulk) Save(ctx context.Context) ([]*MembershipTask, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*MembershipTask, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*MembershipTaskMutation)
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
func (_c *MembershipTaskCreateBulk) SaveX(ctx context.Context) []*MembershipTask {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *MembershipTaskCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *MembershipTaskCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
