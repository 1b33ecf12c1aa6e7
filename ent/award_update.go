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
	"github.com/carpentries/mailflow/ent/award"
	"github.com/carpentries/mailflow/ent/person"
	"github.com/carpentries/mailflow/ent/predicate"
)

// AwardUpdate is the builder for updating Award entities.
type AwardUpdate struct {
	config
	hooks    []Hook
	mutation *AwardMutation
}

// Where appends a list predicates to the AwardUpdate builder.
func (_u *AwardUpdate) Where(ps ...predicate.Award) *AwardUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetBadge sets the "badge" field.
func (_u *AwardUpdate) SetBadge(v string) *AwardUpdate {
	_u.mutation.SetBadge(v)
	return _u
}

// SetNillableBadge sets the "badge" field if the given value is not nil.
func (_u *AwardUpdate) SetNillableBadge(v *string) *AwardUpdate {
	if v != nil {
		_u.SetBadge(*v)
	}
	return _u
}

// SetAwarded sets the "awarded" field.
func (_u *AwardUpdate) SetAwarded(v time.Time) *AwardUpdate {
	_u.mutation.SetAwarded(v)
	return _u
}

// SetNillableAwarded sets the "awarded" field if the given value is not nil.
func (_u *AwardUpdate) SetNillableAwarded(v *time.Time) *AwardUpdate {
	if v != nil {
		_u.SetAwarded(*v)
	}
	return _u
}

// SetPersonID sets the "person_id" field.
func (_u *AwardUpdate) SetPersonID(v int) *AwardUpdate {
	_u.mutation.SetPersonID(v)
	return _u
}

// SetNillablePersonID sets the "person_id" field if the given value is not nil.
func (_u *AwardUpdate) SetNillablePersonID(v *int) *AwardUpdate {
	if v != nil {
		_u.SetPersonID(*v)
	}
	return _u
}

// SetPerson sets the "person" edge to the Person entity.
func (_u *AwardUpdate) SetPerson(v *Person) *AwardUpdate {
	return _u.SetPersonID(v.ID)
}

// Mutation returns the AwardMutation object of the builder.
func (_u *AwardUpdate) Mutation() *AwardMutation {
	return _u.mutation
}

// ClearPerson clears the "person" edge to the Person entity.
func (_u *AwardUpdate) ClearPerson() *AwardUpdate {
	_u.mutation.ClearPerson()
	return _u
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *AwardUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *AwardUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *AwardUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *AwardUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *AwardUpdate) check() error {
	if v, ok := _u.mutation.Badge(); ok {
		if err := award.BadgeValidator(v); err != nil {
			return &ValidationError{Name: "badge", err: fmt.Errorf(`ent: validator failed for field "Award.badge": %w`, err)}
		}
	}
	if _u.mutation.PersonCleared() && len(_u.mutation.PersonIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Award.person"`)
	}
	return nil
}

func (_u *AwardUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(award.Table, award.Columns, sqlgraph.NewFieldSpec(award.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Badge(); ok {
		_spec.SetField(award.FieldBadge, field.TypeString, value)
	}
	if value, ok := _u.mutation.Awarded(); ok {
		_spec.SetField(award.FieldAwarded, field.TypeTime, value)
	}
	if _u.mutation.PersonCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.PersonIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{award.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// AwardUpdateOne is the builder for updating a single Award entity.
type AwardUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *AwardMutation
}

// SetBadge sets the "badge" field.
func (_u *AwardUpdateOne) SetBadge(v string) *AwardUpdateOne {
	_u.mutation.SetBadge(v)
	return _u
}

// SetNillableBadge sets the "badge" field if the given value is not nil.
func (_u *AwardUpdateOne) SetNillableBadge(v *string) *AwardUpdateOne {
	if v != nil {
		_u.SetBadge(*v)
	}
	return _u
}

// SetAwarded sets the "awarded" field.
func (_u *AwardUpdateOne) SetAwarded(v time.Time) *AwardUpdateOne {
	_u.mutation.SetAwarded(v)
	return _u
}

// SetNillableAwarded sets the "awarded" field if the given value is not nil.
func (_u *AwardUpdateOne) SetNillableAwarded(v *time.Time) *AwardUpdateOne {
	if v != nil {
		_u.SetAwarded(*v)
	}
	return _u
}

// SetPersonID sets the "person_id" field.
func (_u *AwardUpdateOne) SetPersonID(v int) *AwardUpdateOne {
	_u.mutation.SetPersonID(v)
	return _u
}

// SetNillablePersonID sets the "person_id" field if the given value is not nil.
func (_u *AwardUpdateOne) SetNillablePersonID(v *int) *AwardUpdateOne {
	if v != nil {
		_u.SetPersonID(*v)
	}
	return _u
}

// SetPerson sets the "person" edge to the Person entity.
func (_u *AwardUpdateOne) SetPerson(v *Person) *AwardUpdateOne {
	return _u.SetPersonID(v.ID)
}

// Mutation returns the AwardMutation object of the builder.
func (_u *AwardUpdateOne) Mutation() *AwardMutation {
	return _u.mutation
}

// ClearPerson clears the "person" edge to the Person entity.
func (_u *AwardUpdateOne) ClearPerson() *AwardUpdateOne {
	_u.mutation.ClearPerson()
	return _u
}

// Where appends a list predicates to the AwardUpdate builder.
func (_u *AwardUpdateOne) Where(ps ...predicate.Award) *AwardUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *AwardUpdateOne) Select(field string, fields ...string) *AwardUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Award entity.
func (_u *AwardUpdateOne) Save(ctx context.Context) (*Award, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *AwardUpdateOne) SaveX(ctx context.Context) *Award {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *AwardUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *AwardUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *AwardUpdateOne) check() error {
	if v, ok := _u.mutation.Badge(); ok {
		if err := award.BadgeValidator(v); err != nil {
			return &ValidationError{Name: "badge", err: fmt.Errorf(`ent: validator failed for field "Award.badge": %w`, err)}
		}
	}
	if _u.mutation.PersonCleared() && len(_u.mutation.PersonIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Award.person"`)
	}
	return nil
}

func (_u *AwardUpdateOne) sqlSave(ctx context.Context) (_node *Award, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(award.Table, award.Columns, sqlgraph.NewFieldSpec(award.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Award.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, award.FieldID)
		for _, f := range fields {
			if !award.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != award.FieldID {
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
	if value, ok := _u.mutation.Badge(); ok {
		_spec.SetField(award.FieldBadge, field.TypeString, value)
	}
	if value, ok := _u.mutation.Awarded(); ok {
		_spec.SetField(award.FieldAwarded, field.TypeTime, value)
	}
	if _u.mutation.PersonCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.PersonIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &Award{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{award.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
