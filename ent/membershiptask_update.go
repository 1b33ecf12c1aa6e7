// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/carpentries/mailflow/ent/membership"
	"github.com/carpentries/mailflow/ent/membershiptask"
	"github.com/carpentries/mailflow/ent/person"
	"github.com/carpentries/mailflow/ent/predicate"
)

// MembershipTaskUpdate is the builder for updating MembershipTask entities.
type MembershipTaskUpdate struct {
	config
	hooks    []Hook
	mutation *MembershipTaskMutation
}

// Where appends a list predicates to the MembershipTaskUpdate builder.
func (_u *MembershipTaskUpdate) Where(ps ...predicate.MembershipTask) *MembershipTaskUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetRole sets the "role" field.
func (_u *MembershipTaskUpdate) SetRole(v membershiptask.Role) *MembershipTaskUpdate {
	_u.mutation.SetRole(v)
	return _u
}

// SetNillableRole sets the "role" field if the given value is not nil.
func (_u *MembershipTaskUpdate) SetNillableRole(v *membershiptask.Role) *MembershipTaskUpdate {
	if v != nil {
		_u.SetRole(*v)
	}
	return _u
}

// SetMembershipID sets the "membership_id" field.
func (_u *MembershipTaskUpdate) SetMembershipID(v int) *MembershipTaskUpdate {
	_u.mutation.SetMembershipID(v)
	return _u
}

// SetNillableMembershipID sets the "membership_id" field if the given value is not nil.
func (_u *MembershipTaskUpdate) SetNillableMembershipID(v *int) *MembershipTaskUpdate {
	if v != nil {
		_u.SetMembershipID(*v)
	}
	return _u
}

// SetPersonID sets the "person_id" field.
func (_u *MembershipTaskUpdate) SetPersonID(v int) *MembershipTaskUpdate {
	_u.mutation.SetPersonID(v)
	return _u
}

// SetNillablePersonID sets the "person_id" field if the given value is not nil.
func (_u *MembershipTaskUpdate) SetNillablePersonID(v *int) *MembershipTaskUpdate {
	if v != nil {
		_u.SetPersonID(*v)
	}
	return _u
}

// SetMembership sets the "membership" edge to the Membership entity.
func (_u *MembershipTaskUpdate) SetMembership(v *Membership) *MembershipTaskUpdate {
	return _u.SetMembershipID(v.ID)
}

// SetPerson sets the "person" edge to the Person entity.
func (_u *MembershipTaskUpdate) SetPerson(v *Person) *MembershipTaskUpdate {
	return _u.SetPersonID(v.ID)
}

// Mutation returns the MembershipTaskMutation object of the builder.
func (_u *MembershipTaskUpdate) Mutation() *MembershipTaskMutation {
	return _u.mutation
}

// ClearMembership clears the "membership" edge to the Membership entity.
func (_u *MembershipTaskUpdate) ClearMembership() *MembershipTaskUpdate {
	_u.mutation.ClearMembership()
	return _u
}

// ClearPerson clears the "person" edge to the Person entity.
func (_u *MembershipTaskUpdate) ClearPerson() *MembershipTaskUpdate {
	_u.mutation.ClearPerson()
	return _u
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *MembershipTaskUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *MembershipTaskUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *MembershipTaskUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *MembershipTaskUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *MembershipTaskUpdate) check() error {
	if v, ok := _u.mutation.Role(); ok {
		if err := membershiptask.RoleValidator(v); err != nil {
			return &ValidationError{Name: "role", err: fmt.Errorf(`ent: validator failed for field "MembershipTask.role": %w`, err)}
		}
	}
	if _u.mutation.MembershipCleared() && len(_u.mutation.MembershipIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "MembershipTask.membership"`)
	}
	if _u.mutation.PersonCleared() && len(_u.mutation.PersonIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "MembershipTask.person"`)
	}
	return nil
}

func (_u *MembershipTaskUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(membershiptask.Table, membershiptask.Columns, sqlgraph.NewFieldSpec(membershiptask.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Role(); ok {
		_spec.SetField(membershiptask.FieldRole, field.TypeEnum, value)
	}
	if _u.mutation.MembershipCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.MembershipIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.PersonCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.PersonIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{membershiptask.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// MembershipTaskUpdateOne is the builder for updating a single MembershipTask entity.
type MembershipTaskUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *MembershipTaskMutation
}

// SetRole sets the "role" field.
func (_u *MembershipTaskUpdateOne) SetRole(v membershiptask.Role) *MembershipTaskUpdateOne {
	_u.mutation.SetRole(v)
	return _u
}

// SetNillableRole sets the "role" field if the given value is not nil.
func (_u *MembershipTaskUpdateOne) SetNillableRole(v *membershiptask.Role) *MembershipTaskUpdateOne {
	if v != nil {
		_u.SetRole(*v)
	}
	return _u
}

// SetMembershipID sets the "membership_id" field.
func (_u *MembershipTaskUpdateOne) SetMembershipID(v int) *MembershipTaskUpdateOne {
	_u.mutation.SetMembershipID(v)
	return _u
}

// SetNillableMembershipID sets the "membership_id" field if the given value is not nil.
func (_u *MembershipTaskUpdateOne) SetNillableMembershipID(v *int) *MembershipTaskUpdateOne {
	if v != nil {
		_u.SetMembershipID(*v)
	}
	return _u
}

// SetPersonID sets the "person_id" field.
func (_u *MembershipTaskUpdateOne) SetPersonID(v int) *MembershipTaskUpdateOne {
	_u.mutation.SetPersonID(v)
	return _u
}

// SetNillablePersonID sets the "person_id" field if the given value is not nil.
func (_u *MembershipTaskUpdateOne) SetNillablePersonID(v *int) *MembershipTaskUpdateOne {
	if v != nil {
		_u.SetPersonID(*v)
	}
	return _u
}

// SetMembership sets the "membership" edge to the Membership entity.
func (_u *MembershipTaskUpdateOne) SetMembership(v *Membership) *MembershipTaskUpdateOne {
	return _u.SetMembershipID(v.ID)
}

// SetPerson sets the "person" edge to the Person entity.
func (_u *MembershipTaskUpdateOne) SetPerson(v *Person) *MembershipTaskUpdateOne {
	return _u.SetPersonID(v.ID)
}

// Mutation returns the MembershipTaskMutation object of the builder.
func (_u *MembershipTaskUpdateOne) Mutation() *MembershipTaskMutation {
	return _u.mutation
}

// ClearMembership clears the "membership" edge to the Membership entity.
func (_u *MembershipTaskUpdateOne) ClearMembership() *MembershipTaskUpdateOne {
	_u.mutation.ClearMembership()
	return _u
}

// ClearPerson clears the "person" edge to the Person entity.
func (_u *MembershipTaskUpdateOne) ClearPerson() *MembershipTaskUpdateOne {
	_u.mutation.ClearPerson()
	return _u
}

// Where appends a list predicates to the MembershipTaskUpdate builder.
func (_u *MembershipTaskUpdateOne) Where(ps ...predicate.MembershipTask) *MembershipTaskUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *MembershipTaskUpdateOne) Select(field string, fields ...string) *MembershipTaskUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated MembershipTask entity.
func (_u *MembershipTaskUpdateOne) Save(ctx context.Context) (*MembershipTask, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *MembershipTaskUpdateOne) SaveX(ctx context.Context) *MembershipTask {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *MembershipTaskUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *MembershipTaskUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *MembershipTaskUpdateOne) check() error {
	if v, ok := _u.mutation.Role(); ok {
		if err := membershiptask.RoleValidator(v); err != nil {
			return &ValidationError{Name: "role", err: fmt.Errorf(`ent: validator failed for field "MembershipTask.role": %w`, err)}
		}
	}
	if _u.mutation.MembershipCleared() && len(_u.mutation.MembershipIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "MembershipTask.membership"`)
	}
	if _u.mutation.PersonCleared() && len(_u.mutation.PersonIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "MembershipTask.person"`)
	}
	return nil
}

func (_u *MembershipTaskUpdateOne) sqlSave(ctx context.Context) (_node *MembershipTask, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(membershiptask.Table, membershiptask.Columns, sqlgraph.NewFieldSpec(membershiptask.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "MembershipTask.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, membershiptask.FieldID)
		for _, f := range fields {
			if !membershiptask.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != membershiptask.FieldID {
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
	if value, ok := _u.mutation.Role(); ok {
		_spec.SetField(membershiptask.FieldRole, field.TypeEnum, value)
	}
	if _u.mutation.MembershipCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.MembershipIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.PersonCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.PersonIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &MembershipTask{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{membershiptask.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
