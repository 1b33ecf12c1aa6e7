// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/carpentries/mailflow/ent/award"
	"github.com/carpentries/mailflow/ent/membershiptask"
	"github.com/carpentries/mailflow/ent/person"
	"github.com/carpentries/mailflow/ent/predicate"
	"github.com/carpentries/mailflow/ent/task"
	"github.com/carpentries/mailflow/ent/trainingprogress"
)

// PersonUpdate is the builder for updating Person entities.
type PersonUpdate struct {
	config
	hooks    []Hook
	mutation *PersonMutation
}

// Where appends a list predicates to the PersonUpdate builder.
func (_u *PersonUpdate) Where(ps ...predicate.Person) *PersonUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetPersonal sets the "personal" field.
func (_u *PersonUpdate) SetPersonal(v string) *PersonUpdate {
	_u.mutation.SetPersonal(v)
	return _u
}

// SetNillablePersonal sets the "personal" field if the given value is not nil.
func (_u *PersonUpdate) SetNillablePersonal(v *string) *PersonUpdate {
	if v != nil {
		_u.SetPersonal(*v)
	}
	return _u
}

// SetFamily sets the "family" field.
func (_u *PersonUpdate) SetFamily(v string) *PersonUpdate {
	_u.mutation.SetFamily(v)
	return _u
}

// SetNillableFamily sets the "family" field if the given value is not nil.
func (_u *PersonUpdate) SetNillableFamily(v *string) *PersonUpdate {
	if v != nil {
		_u.SetFamily(*v)
	}
	return _u
}

// ClearFamily clears the value of the "family" field.
func (_u *PersonUpdate) ClearFamily() *PersonUpdate {
	_u.mutation.ClearFamily()
	return _u
}

// SetEmail sets the "email" field.
func (_u *PersonUpdate) SetEmail(v string) *PersonUpdate {
	_u.mutation.SetEmail(v)
	return _u
}

// SetNillableEmail sets the "email" field if the given value is not nil.
func (_u *PersonUpdate) SetNillableEmail(v *string) *PersonUpdate {
	if v != nil {
		_u.SetEmail(*v)
	}
	return _u
}

// ClearEmail clears the value of the "email" field.
func (_u *PersonUpdate) ClearEmail() *PersonUpdate {
	_u.mutation.ClearEmail()
	return _u
}

// AddTaskIDs adds the "tasks" edge to the Task entity by IDs.
func (_u *PersonUpdate) AddTaskIDs(ids ...int) *PersonUpdate {
	_u.mutation.AddTaskIDs(ids...)
	return _u
}

// AddTasks adds the "tasks" edges to the Task entity.
func (_u *PersonUpdate) AddTasks(v ...*Task) *PersonUpdate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddTaskIDs(ids...)
}

// AddAwardIDs adds the "awards" edge to the Award entity by IDs.
func (_u *PersonUpdate) AddAwardIDs(ids ...int) *PersonUpdate {
	_u.mutation.AddAwardIDs(ids...)
	return _u
}

// AddAwards adds the "awards" edges to the Award entity.
func (_u *PersonUpdate) AddAwards(v ...*Award) *PersonUpdate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddAwardIDs(ids...)
}

// AddTrainingProgressIDs adds the "training_progresses" edge to the TrainingProgress entity by IDs.
func (_u *PersonUpdate) AddTrainingProgressIDs(ids ...int) *PersonUpdate {
	_u.mutation.AddTrainingProgressIDs(ids...)
	return _u
}

// AddTrainingProgresses adds the "training_progresses" edges to the TrainingProgress entity.
func (_u *PersonUpdate) AddTrainingProgresses(v ...*TrainingProgress) *PersonUpdate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddTrainingProgressIDs(ids...)
}

// AddMembershipTaskIDs adds the "membership_tasks" edge to the MembershipTask entity by IDs.
func (_u *PersonUpdate) AddMembershipTaskIDs(ids ...int) *PersonUpdate {
	_u.mutation.AddMembershipTaskIDs(ids...)
	return _u
}

// AddMembershipTasks adds the "membership_tasks" edges to the MembershipTask entity.
func (_u *PersonUpdate) AddMembershipTasks(v ...*MembershipTask) *PersonUpdate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddMembershipTaskIDs(ids...)
}

// Mutation returns the PersonMutation object of the builder.
func (_u *PersonUpdate) Mutation() *PersonMutation {
	return _u.mutation
}

// ClearTasks clears all "tasks" edges to the Task entity.
func (_u *PersonUpdate) ClearTasks() *PersonUpdate {
	_u.mutation.ClearTasks()
	return _u
}

// RemoveTaskIDs removes the "tasks" edge to Task entities by IDs.
func (_u *PersonUpdate) RemoveTaskIDs(ids ...int) *PersonUpdate {
	_u.mutation.RemoveTaskIDs(ids...)
	return _u
}

// RemoveTasks removes "tasks" edges to Task entities.
func (_u *PersonUpdate) RemoveTasks(v ...*Task) *PersonUpdate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveTaskIDs(ids...)
}

// ClearAwards clears all "awards" edges to the Award entity.
func (_u *PersonUpdate) ClearAwards() *PersonUpdate {
	_u.mutation.ClearAwards()
	return _u
}

// RemoveAwardIDs removes the "awards" edge to Award entities by IDs.
func (_u *PersonUpdate) RemoveAwardIDs(ids ...int) *PersonUpdate {
	_u.mutation.RemoveAwardIDs(ids...)
	return _u
}

// RemoveAwards removes "awards" edges to Award entities.
func (_u *PersonUpdate) RemoveAwards(v ...*Award) *PersonUpdate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveAwardIDs(ids...)
}

// ClearTrainingProgresses clears all "training_progresses" edges to the TrainingProgress entity.
func (_u *PersonUpdate) ClearTrainingProgresses() *PersonUpdate {
	_u.mutation.ClearTrainingProgresses()
	return _u
}

// RemoveTrainingProgressIDs removes the "training_progresses" edge to TrainingProgress entities by IDs.
func (_u *PersonUpdate) RemoveTrainingProgressIDs(ids ...int) *PersonUpdate {
	_u.mutation.RemoveTrainingProgressIDs(ids...)
	return _u
}

// RemoveTrainingProgresses removes "training_progresses" edges to TrainingProgress entities.
func (_u *PersonUpdate) RemoveTrainingProgresses(v ...*TrainingProgress) *PersonUpdate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveTrainingProgressIDs(ids...)
}

// ClearMembershipTasks clears all "membership_tasks" edges to the MembershipTask entity.
func (_u *PersonUpdate) ClearMembershipTasks() *PersonUpdate {
	_u.mutation.ClearMembershipTasks()
	return _u
}

// RemoveMembershipTaskIDs removes the "membership_tasks" edge to MembershipTask entities by IDs.
func (_u *PersonUpdate) RemoveMembershipTaskIDs(ids ...int) *PersonUpdate {
	_u.mutation.RemoveMembershipTaskIDs(ids...)
	return _u
}

// RemoveMembershipTasks removes "membership_tasks" edges to MembershipTask entities.
func (_u *PersonUpdate) RemoveMembershipTasks(v ...*MembershipTask) *PersonUpdate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveMembershipTaskIDs(ids...)
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *PersonUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *PersonUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *PersonUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *PersonUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *PersonUpdate) check() error {
	if v, ok := _u.mutation.Personal(); ok {
		if err := person.PersonalValidator(v); err != nil {
			return &ValidationError{Name: "personal", err: fmt.Errorf(`ent: validator failed for field "Person.personal": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Family(); ok {
		if err := person.FamilyValidator(v); err != nil {
			return &ValidationError{Name: "family", err: fmt.Errorf(`ent: validator failed for field "Person.family": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Email(); ok {
		if err := person.EmailValidator(v); err != nil {
			return &ValidationError{Name: "email", err: fmt.Errorf(`ent: validator failed for field "Person.email": %w`, err)}
		}
	}
	return nil
}

func (_u *PersonUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(person.Table, person.Columns, sqlgraph.NewFieldSpec(person.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Personal(); ok {
		_spec.SetField(person.FieldPersonal, field.TypeString, value)
	}
	if value, ok := _u.mutation.Family(); ok {
		_spec.SetField(person.FieldFamily, field.TypeString, value)
	}
	if _u.mutation.FamilyCleared() {
		_spec.ClearField(person.FieldFamily, field.TypeString)
	}
	if value, ok := _u.mutation.Email(); ok {
		_spec.SetField(person.FieldEmail, field.TypeString, value)
	}
	if _u.mutation.EmailCleared() {
		_spec.ClearField(person.FieldEmail, field.TypeString)
	}
	if _u.mutation.TasksCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   person.TasksTable,
			Columns: []string{person.TasksColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(task.FieldID, field.TypeInt),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedTasksIDs(); len(nodes) > 0 && !_u.mutation.TasksCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   person.TasksTable,
			Columns: []string{person.TasksColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(task.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.TasksIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   person.TasksTable,
			Columns: []string{person.TasksColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(task.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.AwardsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   person.AwardsTable,
			Columns: []string{person.AwardsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(award.FieldID, field.TypeInt),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedAwardsIDs(); len(nodes) > 0 && !_u.mutation.AwardsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   person.AwardsTable,
			Columns: []string{person.AwardsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(award.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.AwardsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   person.AwardsTable,
			Columns: []string{person.AwardsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(award.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.TrainingProgressesCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   person.TrainingProgressesTable,
			Columns: []string{person.TrainingProgressesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(trainingprogress.FieldID, field.TypeInt),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedTrainingProgressesIDs(); len(nodes) > 0 && !_u.mutation.TrainingProgressesCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   person.TrainingProgressesTable,
			Columns: []string{person.TrainingProgressesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(trainingprogress.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.TrainingProgressesIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   person.TrainingProgressesTable,
			Columns: []string{person.TrainingProgressesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(trainingprogress.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.MembershipTasksCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   person.MembershipTasksTable,
			Columns: []string{person.MembershipTasksColumn},
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
			Table:   person.MembershipTasksTable,
			Columns: []string{person.MembershipTasksColumn},
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
			Table:   person.MembershipTasksTable,
			Columns: []string{person.MembershipTasksColumn},
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
			err = &NotFoundError{person.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// PersonUpdateOne is the builder for updating a single Person entity.
type PersonUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *PersonMutation
}

// SetPersonal sets the "personal" field.
func (_u *PersonUpdateOne) SetPersonal(v string) *PersonUpdateOne {
	_u.mutation.SetPersonal(v)
	return _u
}

// SetNillablePersonal sets the "personal" field if the given value is not nil.
func (_u *PersonUpdateOne) SetNillablePersonal(v *string) *PersonUpdateOne {
	if v != nil {
		_u.SetPersonal(*v)
	}
	return _u
}

// SetFamily sets the "family" field.
func (_u *PersonUpdateOne) SetFamily(v string) *PersonUpdateOne {
	_u.mutation.SetFamily(v)
	return _u
}

// SetNillableFamily sets the "family" field if the given value is not nil.
func (_u *PersonUpdateOne) SetNillableFamily(v *string) *PersonUpdateOne {
	if v != nil {
		_u.SetFamily(*v)
	}
	return _u
}

// ClearFamily clears the value of the "family" field.
func (_u *PersonUpdateOne) ClearFamily() *PersonUpdateOne {
	_u.mutation.ClearFamily()
	return _u
}

// SetEmail sets the "email" field.
func (_u *PersonUpdateOne) SetEmail(v string) *PersonUpdateOne {
	_u.mutation.SetEmail(v)
	return _u
}

// SetNillableEmail sets the "email" field if the given value is not nil.
func (_u *PersonUpdateOne) SetNillableEmail(v *string) *PersonUpdateOne {
	if v != nil {
		_u.SetEmail(*v)
	}
	return _u
}

// ClearEmail clears the value of the "email" field.
func (_u *PersonUpdateOne) ClearEmail() *PersonUpdateOne {
	_u.mutation.ClearEmail()
	return _u
}

// AddTaskIDs adds the "tasks" edge to the Task entity by IDs.
func (_u *PersonUpdateOne) AddTaskIDs(ids ...int) *PersonUpdateOne {
	_u.mutation.AddTaskIDs(ids...)
	return _u
}

// AddTasks adds the "tasks" edges to the Task entity.
func (_u *PersonUpdateOne) AddTasks(v ...*Task) *PersonUpdateOne {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddTaskIDs(ids...)
}

// AddAwardIDs adds the "awards" edge to the Award entity by IDs.
func (_u *PersonUpdateOne) AddAwardIDs(ids ...int) *PersonUpdateOne {
	_u.mutation.AddAwardIDs(ids...)
	return _u
}

// AddAwards adds the "awards" edges to the Award entity.
func (_u *PersonUpdateOne) AddAwards(v ...*Award) *PersonUpdateOne {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddAwardIDs(ids...)
}

// AddTrainingProgressIDs adds the "training_progresses" edge to the TrainingProgress entity by IDs.
func (_u *PersonUpdateOne) AddTrainingProgressIDs(ids ...int) *PersonUpdateOne {
	_u.mutation.AddTrainingProgressIDs(ids...)
	return _u
}

// AddTrainingProgresses adds the "training_progresses" edges to the TrainingProgress entity.
func (_u *PersonUpdateOne) AddTrainingProgresses(v ...*TrainingProgress) *PersonUpdateOne {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddTrainingProgressIDs(ids...)
}

// AddMembershipTaskIDs adds the "membership_tasks" edge to the MembershipTask entity by IDs.
func (_u *PersonUpdateOne) AddMembershipTaskIDs(ids ...int) *PersonUpdateOne {
	_u.mutation.AddMembershipTaskIDs(ids...)
	return _u
}

// AddMembershipTasks adds the "membership_tasks" edges to the MembershipTask entity.
func (_u *PersonUpdateOne) AddMembershipTasks(v ...*MembershipTask) *PersonUpdateOne {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddMembershipTaskIDs(ids...)
}

// Mutation returns the PersonMutation object of the builder.
func (_u *PersonUpdateOne) Mutation() *PersonMutation {
	return _u.mutation
}

// ClearTasks clears all "tasks" edges to the Task entity.
func (_u *PersonUpdateOne) ClearTasks() *PersonUpdateOne {
	_u.mutation.ClearTasks()
	return _u
}

// RemoveTaskIDs removes the "tasks" edge to Task entities by IDs.
func (_u *PersonUpdateOne) RemoveTaskIDs(ids ...int) *PersonUpdateOne {
	_u.mutation.RemoveTaskIDs(ids...)
	return _u
}

// RemoveTasks removes "tasks" edges to Task entities.
func (_u *PersonUpdateOne) RemoveTasks(v ...*Task) *PersonUpdateOne {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveTaskIDs(ids...)
}

// ClearAwards clears all "awards" edges to the Award entity.
func (_u *PersonUpdateOne) ClearAwards() *PersonUpdateOne {
	_u.mutation.ClearAwards()
	return _u
}

// RemoveAwardIDs removes the "awards" edge to Award entities by IDs.
func (_u *PersonUpdateOne) RemoveAwardIDs(ids ...int) *PersonUpdateOne {
	_u.mutation.RemoveAwardIDs(ids...)
	return _u
}

// RemoveAwards removes "awards" edges to Award entities.
func (_u *PersonUpdateOne) RemoveAwards(v ...*Award) *PersonUpdateOne {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveAwardIDs(ids...)
}

// ClearTrainingProgresses clears all "training_progresses" edges to the TrainingProgress entity.
func (_u *PersonUpdateOne) ClearTrainingProgresses() *PersonUpdateOne {
	_u.mutation.ClearTrainingProgresses()
	return _u
}

// RemoveTrainingProgressIDs removes the "training_progresses" edge to TrainingProgress entities by IDs.
func (_u *PersonUpdateOne) RemoveTrainingProgressIDs(ids ...int) *PersonUpdateOne {
	_u.mutation.RemoveTrainingProgressIDs(ids...)
	return _u
}

// RemoveTrainingProgresses removes "training_progresses" edges to TrainingProgress entities.
func (_u *PersonUpdateOne) RemoveTrainingProgresses(v ...*TrainingProgress) *PersonUpdateOne {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveTrainingProgressIDs(ids...)
}

// ClearMembershipTasks clears all "membership_tasks" edges to the MembershipTask entity.
func (_u *PersonUpdateOne) ClearMembershipTasks() *PersonUpdateOne {
	_u.mutation.ClearMembershipTasks()
	return _u
}

// RemoveMembershipTaskIDs removes the "membership_tasks" edge to MembershipTask entities by IDs.
func (_u *PersonUpdateOne) RemoveMembershipTaskIDs(ids ...int) *PersonUpdateOne {
	_u.mutation.RemoveMembershipTaskIDs(ids...)
	return _u
}

// RemoveMembershipTasks removes "membership_tasks" edges to MembershipTask entities.
func (_u *PersonUpdateOne) RemoveMembershipTasks(v ...*MembershipTask) *PersonUpdateOne {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveMembershipTaskIDs(ids...)
}

// Where appends a list predicates to the PersonUpdate builder.
func (_u *PersonUpdateOne) Where(ps ...predicate.Person) *PersonUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *PersonUpdateOne) Select(field string, fields ...string) *PersonUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Person entity.
func (_u *PersonUpdateOne) Save(ctx context.Context) (*Person, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *PersonUpdateOne) SaveX(ctx context.Context) *Person {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *PersonUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *PersonUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *PersonUpdateOne) check() error {
	if v, ok := _u.mutation.Personal(); ok {
		if err := person.PersonalValidator(v); err != nil {
			return &ValidationError{Name: "personal", err: fmt.Errorf(`ent: validator failed for field "Person.personal": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Family(); ok {
		if err := person.FamilyValidator(v); err != nil {
			return &ValidationError{Name: "family", err: fmt.Errorf(`ent: validator failed for field "Person.family": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Email(); ok {
		if err := person.EmailValidator(v); err != nil {
			return &ValidationError{Name: "email", err: fmt.Errorf(`ent: validator failed for field "Person.email": %w`, err)}
		}
	}
	return nil
}

func (_u *PersonUpdateOne) sqlSave(ctx context.Context) (_node *Person, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(person.Table, person.Columns, sqlgraph.NewFieldSpec(person.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Person.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, person.FieldID)
		for _, f := range fields {
			if !person.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != person.FieldID {
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
	if value, ok := _u.mutation.Personal(); ok {
		_spec.SetField(person.FieldPersonal, field.TypeString, value)
	}
	if value, ok := _u.mutation.Family(); ok {
		_spec.SetField(person.FieldFamily, field.TypeString, value)
	}
	if _u.mutation.FamilyCleared() {
		_spec.ClearField(person.FieldFamily, field.TypeString)
	}
	if value, ok := _u.mutation.Email(); ok {
		_spec.SetField(person.FieldEmail, field.TypeString, value)
	}
	if _u.mutation.EmailCleared() {
		_spec.ClearField(person.FieldEmail, field.TypeString)
	}
	if _u.mutation.TasksCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   person.TasksTable,
			Columns: []string{person.TasksColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(task.FieldID, field.TypeInt),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedTasksIDs(); len(nodes) > 0 && !_u.mutation.TasksCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   person.TasksTable,
			Columns: []string{person.TasksColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(task.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.TasksIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   person.TasksTable,
			Columns: []string{person.TasksColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(task.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.AwardsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   person.AwardsTable,
			Columns: []string{person.AwardsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(award.FieldID, field.TypeInt),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedAwardsIDs(); len(nodes) > 0 && !_u.mutation.AwardsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   person.AwardsTable,
			Columns: []string{person.AwardsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(award.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.AwardsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   person.AwardsTable,
			Columns: []string{person.AwardsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(award.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.TrainingProgressesCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   person.TrainingProgressesTable,
			Columns: []string{person.TrainingProgressesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(trainingprogress.FieldID, field.TypeInt),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedTrainingProgressesIDs(); len(nodes) > 0 && !_u.mutation.TrainingProgressesCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   person.TrainingProgressesTable,
			Columns: []string{person.TrainingProgressesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(trainingprogress.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.TrainingProgressesIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   person.TrainingProgressesTable,
			Columns: []string{person.TrainingProgressesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(trainingprogress.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.MembershipTasksCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   person.MembershipTasksTable,
			Columns: []string{person.MembershipTasksColumn},
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
			Table:   person.MembershipTasksTable,
			Columns: []string{person.MembershipTasksColumn},
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
			Table:   person.MembershipTasksTable,
			Columns: []string{person.MembershipTasksColumn},
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
	_node = &Person{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{person.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
