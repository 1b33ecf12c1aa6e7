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
	"github.com/carpentries/mailflow/ent/membership"
	"github.com/carpentries/mailflow/ent/membershiptask"
	"github.com/carpentries/mailflow/ent/predicate"
)

// MembershipUpdate is the builder for updating Membership entities.
type MembershipUpdate struct {
	config
	hooks    []Hook
	mutation *MembershipMutation
}

// Where appends a list predicates to the MembershipUpdate builder.
func (_u *MembershipUpdate) Where(ps ...predicate.Membership) *MembershipUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetName sets the "name" field.
func (_u *MembershipUpdate) SetName(v string) *MembershipUpdate {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *MembershipUpdate) SetNillableName(v *string) *MembershipUpdate {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetVariant sets the "variant" field.
func (_u *MembershipUpdate) SetVariant(v membership.Variant) *MembershipUpdate {
	_u.mutation.SetVariant(v)
	return _u
}

// SetNillableVariant sets the "variant" field if the given value is not nil.
func (_u *MembershipUpdate) SetNillableVariant(v *membership.Variant) *MembershipUpdate {
	if v != nil {
		_u.SetVariant(*v)
	}
	return _u
}

// SetAgreementStart sets the "agreement_start" field.
func (_u *MembershipUpdate) SetAgreementStart(v time.Time) *MembershipUpdate {
	_u.mutation.SetAgreementStart(v)
	return _u
}

// SetNillableAgreementStart sets the "agreement_start" field if the given value is not nil.
func (_u *MembershipUpdate) SetNillableAgreementStart(v *time.Time) *MembershipUpdate {
	if v != nil {
		_u.SetAgreementStart(*v)
	}
	return _u
}

// SetAgreementEnd sets the "agreement_end" field.
func (_u *MembershipUpdate) SetAgreementEnd(v time.Time) *MembershipUpdate {
	_u.mutation.SetAgreementEnd(v)
	return _u
}

// SetNillableAgreementEnd sets the "agreement_end" field if the given value is not nil.
func (_u *MembershipUpdate) SetNillableAgreementEnd(v *time.Time) *MembershipUpdate {
	if v != nil {
		_u.SetAgreementEnd(*v)
	}
	return _u
}

// SetRolledFromID sets the "rolled_from_id" field.
func (_u *MembershipUpdate) SetRolledFromID(v int) *MembershipUpdate {
	_u.mutation.ResetRolledFromID()
	_u.mutation.SetRolledFromID(v)
	return _u
}

// SetNillableRolledFromID sets the "rolled_from_id" field if the given value is not nil.
func (_u *MembershipUpdate) SetNillableRolledFromID(v *int) *MembershipUpdate {
	if v != nil {
		_u.SetRolledFromID(*v)
	}
	return _u
}

// AddRolledFromID adds value to the "rolled_from_id" field.
func (_u *MembershipUpdate) AddRolledFromID(v int) *MembershipUpdate {
	_u.mutation.AddRolledFromID(v)
	return _u
}

// ClearRolledFromID clears the value of the "rolled_from_id" field.
func (_u *MembershipUpdate) ClearRolledFromID() *MembershipUpdate {
	_u.mutation.ClearRolledFromID()
	return _u
}

// AddMembershipTaskIDs adds the "membership_tasks" edge to the MembershipTask entity by IDs.
func (_u *MembershipUpdate) AddMembershipTaskIDs(ids ...int) *MembershipUpdate {
	_u.mutation.AddMembershipTaskIDs(ids...)
	return _u
}

// AddMembershipTasks adds the "membership_tasks" edges to the MembershipTask entity.
func (_u *MembershipUpdate) AddMembershipTasks(v ...*MembershipTask) *MembershipUpdate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddMembershipTaskIDs(ids...)
}

// Mutation returns the MembershipMutation object of the builder.
func (_u *MembershipUpdate) Mutation() *MembershipMutation {
	return _u.mutation
}

// ClearMembershipTasks clears all "membership_tasks" edges to the MembershipTask entity.
func (_u *MembershipUpdate) ClearMembershipTasks() *MembershipUpdate {
	_u.mutation.ClearMembershipTasks()
	return _u
}

// RemoveMembershipTaskIDs removes the "membership_tasks" edge to MembershipTask entities by IDs.
func (_u *MembershipUpdate) RemoveMembershipTaskIDs(ids ...int) *MembershipUpdate {
	_u.mutation.RemoveMembershipTaskIDs(ids...)
	return _u
}

// RemoveMembershipTasks removes "membership_tasks" edges to MembershipTask entities.
func (_u *MembershipUpdate) RemoveMembershipTasks(v ...*MembershipTask) *MembershipUpdate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveMembershipTaskIDs(ids...)
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *MembershipUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *MembershipUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *MembershipUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *MembershipUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *MembershipUpdate) check() error {
	if v, ok := _u.mutation.Name(); ok {
		if err := membership.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`ent: validator failed for field "Membership.name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Variant(); ok {
		if err := membership.VariantValidator(v); err != nil {
			return &ValidationError{Name: "variant", err: fmt.Errorf(`ent: validator failed for field "Membership.variant": %w`, err)}
		}
	}
	return nil
}

func (_u *MembershipUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(membership.Table, membership.Columns, sqlgraph.NewFieldSpec(membership.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Name(); ok {
		_spec.SetField(membership.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Variant(); ok {
		_spec.SetField(membership.FieldVariant, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.AgreementStart(); ok {
		_spec.SetField(membership.FieldAgreementStart, field.TypeTime, value)
	}
	if value, ok := _u.mutation.AgreementEnd(); ok {
		_spec.SetField(membership.FieldAgreementEnd, field.TypeTime, value)
	}
	if value, ok := _u.mutation.RolledFromID(); ok {
		_spec.SetField(membership.FieldRolledFromID, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedRolledFromID(); ok {
		_spec.AddField(membership.FieldRolledFromID, field.TypeInt, value)
	}
	if _u.mutation.RolledFromIDCleared() {
		_spec.ClearField(membership.FieldRolledFromID, field.TypeInt)
	}
	if _u.mutation.MembershipTasksCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   membership.MembershipTasksTable,
			Columns: []string{membership.MembershipTasksColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(membershiptask.FieldID, field.TypeInt),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedMembershipTasksIDs(); len(nodes) > 0 && !_u.mutation.MembershipTasksCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   membership.MembershipTasksTable,
			Columns: []string{membership.MembershipTasksColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(membershiptask.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.MembershipTasksIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   membership.MembershipTasksTable,
			Columns: []string{membership.MembershipTasksColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(membershiptask.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{membership.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// MembershipUpdateOne is the builder for updating a single Membership entity.
type MembershipUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *MembershipMutation
}

// SetName sets the "name" field.
func (_u *MembershipUpdateOne) SetName(v string) *MembershipUpdateOne {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *MembershipUpdateOne) SetNillableName(v *string) *MembershipUpdateOne {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetVariant sets the "variant" field.
func (_u *MembershipUpdateOne) SetVariant(v membership.Variant) *MembershipUpdateOne {
	_u.mutation.SetVariant(v)
	return _u
}

// SetNillableVariant sets the "variant" field if the given value is not nil.
func (_u *MembershipUpdateOne) SetNillableVariant(v *membership.Variant) *MembershipUpdateOne {
	if v != nil {
		_u.SetVariant(*v)
	}
	return _u
}

// SetAgreementStart sets the "agreement_start" field.
func (_u *MembershipUpdateOne) SetAgreementStart(v time.Time) *MembershipUpdateOne {
	_u.mutation.SetAgreementStart(v)
	return _u
}

// SetNillableAgreementStart sets the "agreement_start" field if the given value is not nil.
func (_u *MembershipUpdateOne) SetNillableAgreementStart(v *time.Time) *MembershipUpdateOne {
	if v != nil {
		_u.SetAgreementStart(*v)
	}
	return _u
}

// SetAgreementEnd sets the "agreement_end" field.
func (_u *MembershipUpdateOne) SetAgreementEnd(v time.Time) *MembershipUpdateOne {
	_u.mutation.SetAgreementEnd(v)
	return _u
}

// SetNillableAgreementEnd sets the "agreement_end" field if the given value is not nil.
func (_u *MembershipUpdateOne) SetNillableAgreementEnd(v *time.Time) *MembershipUpdateOne {
	if v != nil {
		_u.SetAgreementEnd(*v)
	}
	return _u
}

// SetRolledFromID sets the "rolled_from_id" field.
func (_u *MembershipUpdateOne) SetRolledFromID(v int) *MembershipUpdateOne {
	_u.mutation.ResetRolledFromID()
	_u.mutation.SetRolledFromID(v)
	return _u
}

// SetNillableRolledFromID sets the "rolled_from_id" field if the given value is not nil.
func (_u *MembershipUpdateOne) SetNillableRolledFromID(v *int) *MembershipUpdateOne {
	if v != nil {
		_u.SetRolledFromID(*v)
	}
	return _u
}

// AddRolledFromID adds value to the "rolled_from_id" field.
func (_u *MembershipUpdateOne) AddRolledFromID(v int) *MembershipUpdateOne {
	_u.mutation.AddRolledFromID(v)
	return _u
}

// ClearRolledFromID clears the value of the "rolled_from_id" field.
func (_u *MembershipUpdateOne) ClearRolledFromID() *MembershipUpdateOne {
	_u.mutation.ClearRolledFromID()
	return _u
}

// AddMembershipTaskIDs adds the "membership_tasks" edge to the MembershipTask entity by IDs.
func (_u *MembershipUpdateOne) AddMembershipTaskIDs(ids ...int) *MembershipUpdateOne {
	_u.mutation.AddMembershipTaskIDs(ids...)
	return _u
}

// AddMembershipTasks adds the "membership_tasks" edges to the MembershipTask entity.
func (_u *MembershipUpdateOne) AddMembershipTasks(v ...*MembershipTask) *MembershipUpdateOne {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddMembershipTaskIDs(ids...)
}

// Mutation returns the MembershipMutation object of the builder.
func (_u *MembershipUpdateOne) Mutation() *MembershipMutation {
	return _u.mutation
}

// ClearMembershipTasks clears all "membership_tasks" edges to the MembershipTask entity.
func (_u *MembershipUpdateOne) ClearMembershipTasks() *MembershipUpdateOne {
	_u.mutation.ClearMembershipTasks()
	return _u
}

// RemoveMembershipTaskIDs removes the "membership_tasks" edge to MembershipTask entities by IDs.
func (_u *MembershipUpdateOne) RemoveMembershipTaskIDs(ids ...int) *MembershipUpdateOne {
	_u.mutation.RemoveMembershipTaskIDs(ids...)
	return _u
}

// RemoveMembershipTasks removes "membership_tasks" edges to MembershipTask entities.
func (_u *MembershipUpdateOne) RemoveMembershipTasks(v ...*MembershipTask) *MembershipUpdateOne {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveMembershipTaskIDs(ids...)
}

// Where appends a list predicates to the MembershipUpdate builder.
func (_u *MembershipUpdateOne) Where(ps ...predicate.Membership) *MembershipUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *MembershipUpdateOne) Select(field string, fields ...string) *MembershipUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Membership entity.
func (_u *MembershipUpdateOne) Save(ctx context.Context) (*Membership, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *MembershipUpdateOne) SaveX(ctx context.Context) *Membership {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *MembershipUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *MembershipUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *MembershipUpdateOne) check() error {
	if v, ok := _u.mutation.Name(); ok {
		if err := membership.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`ent: validator failed for field "Membership.name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Variant(); ok {
		if err := membership.VariantValidator(v); err != nil {
			return &ValidationError{Name: "variant", err: fmt.Errorf(`ent: validator failed for field "Membership.variant": %w`, err)}
		}
	}
	return nil
}

func (_u *MembershipUpdateOne) sqlSave(ctx context.Context) (_node *Membership, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(membership.Table, membership.Columns, sqlgraph.NewFieldSpec(membership.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Membership.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, membership.FieldID)
		for _, f := range fields {
			if !membership.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != membership.FieldID {
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
	if value, ok := _u.mutation.Name(); ok {
		_spec.SetField(membership.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Variant(); ok {
		_spec.SetField(membership.FieldVariant, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.AgreementStart(); ok {
		_spec.SetField(membership.FieldAgreementStart, field.TypeTime, value)
	}
	if value, ok := _u.mutation.AgreementEnd(); ok {
		_spec.SetField(membership.FieldAgreementEnd, field.TypeTime, value)
	}
	if value, ok := _u.mutation.RolledFromID(); ok {
		_spec.SetField(membership.FieldRolledFromID, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedRolledFromID(); ok {
		_spec.AddField(membership.FieldRolledFromID, field.TypeInt, value)
	}
	if _u.mutation.RolledFromIDCleared() {
		_spec.ClearField(membership.FieldRolledFromID, field.TypeInt)
	}
	if _u.mutation.MembershipTasksCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   membership.MembershipTasksTable,
			Columns: []string{membership.MembershipTasksColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(membershiptask.FieldID, field.TypeInt),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedMembershipTasksIDs(); len(nodes) > 0 && !_u.mutation.MembershipTasksCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   membership.MembershipTasksTable,
			Columns: []string{membership.MembershipTasksColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(membershiptask.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.MembershipTasksIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   membership.MembershipTasksTable,
			Columns: []string{membership.MembershipTasksColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(membershiptask.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &Membership{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{membership.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
