// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/carpentries/mailflow/ent/person"
	"github.com/carpentries/mailflow/ent/predicate"
	"github.com/carpentries/mailflow/ent/trainingprogress"
)

// TrainingProgressUpdate is the builder for updating TrainingProgress entities.
type TrainingProgressUpdate struct {
	config
	hooks    []Hook
	mutation *TrainingProgressMutation
}

// Where appends a list predicates to the TrainingProgressUpdate builder.
func (_u *TrainingProgressUpdate) Where(ps ...predicate.TrainingProgress) *TrainingProgressUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetRequirement sets the "requirement" field.
func (_u *TrainingProgressUpdate) SetRequirement(v trainingprogress.Requirement) *TrainingProgressUpdate {
	_u.mutation.SetRequirement(v)
	return _u
}

// SetNillableRequirement sets the "requirement" field if the given value is not nil.
func (_u *TrainingProgressUpdate) SetNillableRequirement(v *trainingprogress.Requirement) *TrainingProgressUpdate {
	if v != nil {
		_u.SetRequirement(*v)
	}
	return _u
}

// SetState sets the "state" field.
func (_u *TrainingProgressUpdate) SetState(v trainingprogress.State) *TrainingProgressUpdate {
	_u.mutation.SetState(v)
	return _u
}

// SetNillableState sets the "state" field if the given value is not nil.
func (_u *TrainingProgressUpdate) SetNillableState(v *trainingprogress.State) *TrainingProgressUpdate {
	if v != nil {
		_u.SetState(*v)
	}
	return _u
}

// SetPersonID sets the "person_id" field.
func (_u *TrainingProgressUpdate) SetPersonID(v int) *TrainingProgressUpdate {
	_u.mutation.SetPersonID(v)
	return _u
}

// SetNillablePersonID sets the "person_id" field if the given value is not nil.
func (_u *TrainingProgressUpdate) SetNillablePersonID(v *int) *TrainingProgressUpdate {
	if v != nil {
		_u.SetPersonID(*v)
	}
	return _u
}

// SetPerson sets the "person" edge to the Person entity.
func (_u *TrainingProgressUpdate) SetPerson(v *Person) *TrainingProgressUpdate {
	return _u.SetPersonID(v.ID)
}

// Mutation returns the TrainingProgressMutation object of the builder.
func (_u *TrainingProgressUpdate) Mutation() *TrainingProgressMutation {
	return _u.mutation
}

// ClearPerson clears the "person" edge to the Person entity.
func (_u *TrainingProgressUpdate) ClearPerson() *TrainingProgressUpdate {
	_u.mutation.ClearPerson()
	return _u
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *TrainingProgressUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *TrainingProgressUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *TrainingProgressUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *TrainingProgressUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *TrainingProgressUpdate) check() error {
	if v, ok := _u.mutation.Requirement(); ok {
		if err := trainingprogress.RequirementValidator(v); err != nil {
			return &ValidationError{Name: "requirement", err: fmt.Errorf(`ent: validator failed for field "TrainingProgress.requirement": %w`, err)}
		}
	}
	if v, ok := _u.mutation.State(); ok {
		if err := trainingprogress.StateValidator(v); err != nil {
			return &ValidationError{Name: "state", err: fmt.Errorf(`ent: validator failed for field "TrainingProgress.state": %w`, err)}
		}
	}
	if _u.mutation.PersonCleared() && len(_u.mutation.PersonIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "TrainingProgress.person"`)
	}
	return nil
}

func (_u *TrainingProgressUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(trainingprogress.Table, trainingprogress.Columns, sqlgraph.NewFieldSpec(trainingprogress.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Requirement(); ok {
		_spec.SetField(trainingprogress.FieldRequirement, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.State(); ok {
		_spec.SetField(trainingprogress.FieldState, field.TypeEnum, value)
	}
	if _u.mutation.PersonCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.PersonIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{trainingprogress.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// TrainingProgressUpdateOne is the builder for updating a single TrainingProgress entity.
type TrainingProgressUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *TrainingProgressMutation
}

// SetRequirement sets the "requirement" field.
func (_u *TrainingProgressUpdateOne) SetRequirement(v trainingprogress.Requirement) *TrainingProgressUpdateOne {
	_u.mutation.SetRequirement(v)
	return _u
}

// SetNillableRequirement sets the "requirement" field if the given value is not nil.
func (_u *TrainingProgressUpdateOne) SetNillableRequirement(v *trainingprogress.Requirement) *TrainingProgressUpdateOne {
	if v != nil {
		_u.SetRequirement(*v)
	}
	return _u
}

// SetState sets the "state" field.
func (_u *TrainingProgressUpdateOne) SetState(v trainingprogress.State) *TrainingProgressUpdateOne {
	_u.mutation.SetState(v)
	return _u
}

// SetNillableState sets the "state" field if the given value is not nil.
func (_u *TrainingProgressUpdateOne) SetNillableState(v *trainingprogress.State) *TrainingProgressUpdateOne {
	if v != nil {
		_u.SetState(*v)
	}
	return _u
}

// SetPersonID sets the "person_id" field.
func (_u *TrainingProgressUpdateOne) SetPersonID(v int) *TrainingProgressUpdateOne {
	_u.mutation.SetPersonID(v)
	return _u
}

// SetNillablePersonID sets the "person_id" field if the given value is not nil.
func (_u *TrainingProgressUpdateOne) SetNillablePersonID(v *int) *TrainingProgressUpdateOne {
	if v != nil {
		_u.SetPersonID(*v)
	}
	return _u
}

// SetPerson sets the "person" edge to the Person entity.
func (_u *TrainingProgressUpdateOne) SetPerson(v *Person) *TrainingProgressUpdateOne {
	return _u.SetPersonID(v.ID)
}

// Mutation returns the TrainingProgressMutation object of the builder.
func (_u *TrainingProgressUpdateOne) Mutation() *TrainingProgressMutation {
	return _u.mutation
}

// ClearPerson clears the "person" edge to the Person entity.
func (_u *TrainingProgressUpdateOne) ClearPerson() *TrainingProgressUpdateOne {
	_u.mutation.ClearPerson()
	return _u
}

// Where appends a list predicates to the TrainingProgressUpdate builder.
func (_u *TrainingProgressUpdateOne) Where(ps ...predicate.TrainingProgress) *TrainingProgressUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *TrainingProgressUpdateOne) Select(field string, fields ...string) *TrainingProgressUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated TrainingProgress entity.
func (_u *TrainingProgressUpdateOne) Save(ctx context.Context) (*TrainingProgress, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *TrainingProgressUpdateOne) SaveX(ctx context.Context) *TrainingProgress {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *TrainingProgressUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *TrainingProgressUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *TrainingProgressUpdateOne) check() error {
	if v, ok := _u.mutation.Requirement(); ok {
		if err := trainingprogress.RequirementValidator(v); err != nil {
			return &ValidationError{Name: "requirement", err: fmt.Errorf(`ent: validator failed for field "TrainingProgress.requirement": %w`, err)}
		}
	}
	if v, ok := _u.mutation.State(); ok {
		if err := trainingprogress.StateValidator(v); err != nil {
			return &ValidationError{Name: "state", err: fmt.Errorf(`ent: validator failed for field "TrainingProgress.state": %w`, err)}
		}
	}
	if _u.mutation.PersonCleared() && len(_u.mutation.PersonIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "TrainingProgress.person"`)
	}
	return nil
}

func (_u *TrainingProgressUpdateOne) sqlSave(ctx context.Context) (_node *TrainingProgress, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(trainingprogress.Table, trainingprogress.Columns, sqlgraph.NewFieldSpec(trainingprogress.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "TrainingProgress.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, trainingprogress.FieldID)
		for _, f := range fields {
			if !trainingprogress.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != trainingprogress.FieldID {
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
	if value, ok := _u.mutation.Requirement(); ok {
		_spec.SetField(trainingprogress.FieldRequirement, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.State(); ok {
		_spec.SetField(trainingprogress.FieldState, field.TypeEnum, value)
	}
	if _u.mutation.PersonCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.PersonIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &TrainingProgress{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{trainingprogress.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
