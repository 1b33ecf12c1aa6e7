// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/carpentries/mailflow/ent/person"
	"github.com/carpentries/mailflow/ent/trainingprogress"
)

// TrainingProgressCreate is the builder for creating a TrainingProgress entity.
type TrainingProgressCreate struct {
	config
	mutation *TrainingProgressMutation
	hooks    []Hook
}

// SetRequirement sets the "requirement" field.
func (_c *TrainingProgressCreate) SetRequirement(v trainingprogress.Requirement) *TrainingProgressCreate {
	_c.mutation.SetRequirement(v)
	return _c
}

// SetState sets the "state" field.
func (_c *TrainingProgressCreate) SetState(v trainingprogress.State) *TrainingProgressCreate {
	_c.mutation.SetState(v)
	return _c
}

// SetPersonID sets the "person_id" field.
func (_c *TrainingProgressCreate) SetPersonID(v int) *TrainingProgressCreate {
	_c.mutation.SetPersonID(v)
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *TrainingProgressCreate) SetCreatedAt(v time.Time) *TrainingProgressCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *TrainingProgressCreate) SetNillableCreatedAt(v *time.Time) *TrainingProgressCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetPerson sets the "person" edge to the Person entity.
func (_c *TrainingProgressCreate) SetPerson(v *Person) *TrainingProgressCreate {
	return _c.SetPersonID(v.ID)
}

// Mutation returns the TrainingProgressMutation object of the builder.
func (_c *TrainingProgressCreate) Mutation() *TrainingProgressMutation {
	return _c.mutation
}

// Save creates the TrainingProgress in the database.
func (_c *TrainingProgressCreate) Save(ctx context.Context) (*TrainingProgress, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *TrainingProgressCreate) SaveX(ctx context.Context) *TrainingProgress {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *TrainingProgressCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *TrainingProgressCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *TrainingProgressCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := trainingprogress.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *TrainingProgressCreate) check() error {
	if _, ok := _c.mutation.Requirement(); !ok {
		return &ValidationError{Name: "requirement", err: errors.New(`ent: missing required field "TrainingProgress.requirement"`)}
	}
	if v, ok := _c.mutation.Requirement(); ok {
		if err := trainingprogress.RequirementValidator(v); err != nil {
			return &ValidationError{Name: "requirement", err: fmt.Errorf(`ent: validator failed for field "TrainingProgress.requirement": %w`, err)}
		}
	}
	if _, ok := _c.mutation.State(); !ok {
		return &ValidationError{Name: "state", err: errors.New(`ent: missing required field "TrainingProgress.state"`)}
	}
	if v, ok := _c.mutation.State(); ok {
		if err := trainingprogress.StateValidator(v); err != nil {
			return &ValidationError{Name: "state", err: fmt.Errorf(`ent: validator failed for field "TrainingProgress.state": %w`, err)}
		}
	}
	if _, ok := _c.mutation.PersonID(); !ok {
		return &ValidationError{Name: "person_id", err: errors.New(`ent: missing required field "TrainingProgress.person_id"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "TrainingProgress.created_at"`)}
	}
	if len(_c.mutation.PersonIDs()) == 0 {
		return &ValidationError{Name: "person", err: errors.New(`ent: missing required edge "TrainingProgress.person"`)}
	}
	return nil
}

func (_c *TrainingProgressCreate) sqlSave(ctx context.Context) (*TrainingProgress, error) {
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

func (_c *TrainingProgressCreate) createSpec() (*TrainingProgress, *sqlgraph.CreateSpec) {
	var (
		_node = &TrainingProgress{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(trainingprogress.Table, sqlgraph.NewFieldSpec(trainingprogress.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.Requirement(); ok {
		_spec.SetField(trainingprogress.FieldRequirement, field.TypeEnum, value)
		_node.Requirement = value
	}
	if value, ok := _c.mutation.State(); ok {
		_spec.SetField(trainingprogress.FieldState, field.TypeEnum, value)
		_node.State = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(trainingprogress.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if nodes := _c.mutation.PersonIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   trainingprogress.PersonTable,
			Columns: []string{trainingprogress.PersonColumn},
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

// TrainingProgressCreateBulk is the builder for creating many TrainingProgress entities in bulk.
type TrainingProgressCreateBulk struct {
	config
	err      error
	builders []*TrainingProgressCreate
}

// Save creates the TrainingProgress entities in the database.
func (_c *TrainingProgressCreateBulk) Save(ctx context.Context) ([]*TrainingProgress, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*TrainingProgress, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*TrainingProgressMutation)
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
func (_c *TrainingProgressCreateBulk) SaveX(ctx context.Context) []*TrainingProgress {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *TrainingProgressCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *TrainingProgressCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
