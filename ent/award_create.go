// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/carpentries/mailflow/ent/award"
	"github.com/carpentries/mailflow/ent/person"
)

// AwardCreate is the builder for creating a Award entity.
type AwardCreate struct {
	config
	mutation *AwardMutation
	hooks    []Hook
}

// SetBadge sets the "badge" field.
func (_c *AwardCreate) SetBadge(v string) *AwardCreate {
	_c.mutation.SetBadge(v)
	return _c
}

// SetAwarded sets the "awarded" field.
func (_c *AwardCreate) SetAwarded(v time.Time) *AwardCreate {
	_c.mutation.SetAwarded(v)
	return _c
}

// SetNillableAwarded sets the "awarded" field if the given value is not nil.
func (_c *AwardCreate) SetNillableAwarded(v *time.Time) *AwardCreate {
	if v != nil {
		_c.SetAwarded(*v)
	}
	return _c
}

// SetPersonID sets the "person_id" field.
func (_c *AwardCreate) SetPersonID(v int) *AwardCreate {
	_c.mutation.SetPersonID(v)
	return _c
}

// SetPerson sets the "person" edge to the Person entity.
func (_c *AwardCreate) SetPerson(v *Person) *AwardCreate {
	return _c.SetPersonID(v.ID)
}

// Mutation returns the AwardMutation object of the builder.
func (_c *AwardCreate) Mutation() *AwardMutation {
	return _c.mutation
}

// Save creates the Award in the database.
func (_c *AwardCreate) Save(ctx context.Context) (*Award, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *AwardCreate) SaveX(ctx context.Context) *Award {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *AwardCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *AwardCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *AwardCreate) defaults() {
	if _, ok := _c.mutation.Awarded(); !ok {
		v := award.DefaultAwarded()
		_c.mutation.SetAwarded(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *AwardCreate) check() error {
	if _, ok := _c.mutation.Badge(); !ok {
		return &ValidationError{Name: "badge", err: errors.New(`ent: missing required field "Award.badge"`)}
	}
	if v, ok := _c.mutation.Badge(); ok {
		if err := award.BadgeValidator(v); err != nil {
			return &ValidationError{Name: "badge", err: fmt.Errorf(`ent: validator failed for field "Award.badge": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Awarded(); !ok {
		return &ValidationError{Name: "awarded", err: errors.New(`ent: missing required field "Award.awarded"`)}
	}
	if _, ok := _c.mutation.PersonID(); !ok {
		return &ValidationError{Name: "person_id", err: errors.New(`ent: missing required field "Award.person_id"`)}
	}
	if len(_c.mutation.PersonIDs()) == 0 {
		return &ValidationError{Name: "person", err: errors.New(`ent: missing required edge "Award.person"`)}
	}
	return nil
}

func (_c *AwardCreate) sqlSave(ctx context.Context) (*Award, error) {
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

func (_c *AwardCreate) createSpec() (*Award, *sqlgraph.CreateSpec) {
	var (
		_node = &Award{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(award.Table, sqlgraph.NewFieldSpec(award.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.Badge(); ok {
		_spec.SetField(award.FieldBadge, field.TypeString, value)
		_node.Badge = value
	}
	if value, ok := _c.mutation.Awarded(); ok {
		_spec.SetField(award.FieldAwarded, field.TypeTime, value)
		_node.Awarded = value
	}
	if nodes := _c.mutation.PersonIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   award.PersonTable,
			Columns: []string{award.PersonColumn},
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

// AwardCreateBulk is the builder for creating many Award entities in bulk.
type AwardCreateBulk struct {
	config
	err      error
	builders []*AwardCreate
}

// Save creates the Award entities in the database.
func (_c *AwardCreateBulk) Save(ctx context.Context) ([]*Award, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Award, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*AwardMutation)
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
func (_c *AwardCreateBulk) SaveX(ctx context.Context) []*Award {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *AwardCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *AwardCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
