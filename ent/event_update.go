// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/dialect/sql/sqljson"
	"entgo.io/ent/schema/field"
	"github.com/carpentries/mailflow/ent/event"
	"github.com/carpentries/mailflow/ent/organization"
	"github.com/carpentries/mailflow/ent/predicate"
	"github.com/carpentries/mailflow/ent/task"
)

// EventUpdate is the builder for updating Event entities.
type EventUpdate struct {
	config
	hooks    []Hook
	mutation *EventMutation
}

// Where appends a list predicates to the EventUpdate builder.
func (_u *EventUpdate) Where(ps ...predicate.Event) *EventUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetSlug sets the "slug" field.
func (_u *EventUpdate) SetSlug(v string) *EventUpdate {
	_u.mutation.SetSlug(v)
	return _u
}

// SetNillableSlug sets the "slug" field if the given value is not nil.
func (_u *EventUpdate) SetNillableSlug(v *string) *EventUpdate {
	if v != nil {
		_u.SetSlug(*v)
	}
	return _u
}

// SetStartDate sets the "start_date" field.
func (_u *EventUpdate) SetStartDate(v time.Time) *EventUpdate {
	_u.mutation.SetStartDate(v)
	return _u
}

// SetNillableStartDate sets the "start_date" field if the given value is not nil.
func (_u *EventUpdate) SetNillableStartDate(v *time.Time) *EventUpdate {
	if v != nil {
		_u.SetStartDate(*v)
	}
	return _u
}

// ClearStartDate clears the value of the "start_date" field.
func (_u *EventUpdate) ClearStartDate() *EventUpdate {
	_u.mutation.ClearStartDate()
	return _u
}

// SetEndDate sets the "end_date" field.
func (_u *EventUpdate) SetEndDate(v time.Time) *EventUpdate {
	_u.mutation.SetEndDate(v)
	return _u
}

// SetNillableEndDate sets the "end_date" field if the given value is not nil.
func (_u *EventUpdate) SetNillableEndDate(v *time.Time) *EventUpdate {
	if v != nil {
		_u.SetEndDate(*v)
	}
	return _u
}

// ClearEndDate clears the value of the "end_date" field.
func (_u *EventUpdate) ClearEndDate() *EventUpdate {
	_u.mutation.ClearEndDate()
	return _u
}

// SetURL sets the "url" field.
func (_u *EventUpdate) SetURL(v string) *EventUpdate {
	_u.mutation.SetURL(v)
	return _u
}

// SetNillableURL sets the "url" field if the given value is not nil.
func (_u *EventUpdate) SetNillableURL(v *string) *EventUpdate {
	if v != nil {
		_u.SetURL(*v)
	}
	return _u
}

// ClearURL clears the value of the "url" field.
func (_u *EventUpdate) ClearURL() *EventUpdate {
	_u.mutation.ClearURL()
	return _u
}

// SetTags sets the "tags" field.
func (_u *EventUpdate) SetTags(v []string) *EventUpdate {
	_u.mutation.SetTags(v)
	return _u
}

// AppendTags appends value to the "tags" field.
func (_u *EventUpdate) AppendTags(v []string) *EventUpdate {
	_u.mutation.AppendTags(v)
	return _u
}

// ClearTags clears the value of the "tags" field.
func (_u *EventUpdate) ClearTags() *EventUpdate {
	_u.mutation.ClearTags()
	return _u
}

// SetOpenRecruitment sets the "open_recruitment" field.
func (_u *EventUpdate) SetOpenRecruitment(v bool) *EventUpdate {
	_u.mutation.SetOpenRecruitment(v)
	return _u
}

// SetNillableOpenRecruitment sets the "open_recruitment" field if the given value is not nil.
func (_u *EventUpdate) SetNillableOpenRecruitment(v *bool) *EventUpdate {
	if v != nil {
		_u.SetOpenRecruitment(*v)
	}
	return _u
}

// SetAdministratorID sets the "administrator_id" field.
func (_u *EventUpdate) SetAdministratorID(v int) *EventUpdate {
	_u.mutation.SetAdministratorID(v)
	return _u
}

// SetNillableAdministratorID sets the "administrator_id" field if the given value is not nil.
func (_u *EventUpdate) SetNillableAdministratorID(v *int) *EventUpdate {
	if v != nil {
		_u.SetAdministratorID(*v)
	}
	return _u
}

// ClearAdministratorID clears the value of the "administrator_id" field.
func (_u *EventUpdate) ClearAdministratorID() *EventUpdate {
	_u.mutation.ClearAdministratorID()
	return _u
}

// SetAdministrator sets the "administrator" edge to the Organization entity.
func (_u *EventUpdate) SetAdministrator(v *Organization) *EventUpdate {
	return _u.SetAdministratorID(v.ID)
}

// AddEventTaskIDs adds the "event_tasks" edge to the Task entity by IDs.
func (_u *EventUpdate) AddEventTaskIDs(ids ...int) *EventUpdate {
	_u.mutation.AddEventTaskIDs(ids...)
	return _u
}

// AddEventTasks adds the "event_tasks" edges to the Task entity.
func (_u *EventUpdate) AddEventTasks(v ...*Task) *EventUpdate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddEventTaskIDs(ids...)
}

// Mutation returns the EventMutation object of the builder.
func (_u *EventUpdate) Mutation() *EventMutation {
	return _u.mutation
}

// ClearAdministrator clears the "administrator" edge to the Organization entity.
func (_u *EventUpdate) ClearAdministrator() *EventUpdate {
	_u.mutation.ClearAdministrator()
	return _u
}

// ClearEventTasks clears all "event_tasks" edges to the Task entity.
func (_u *EventUpdate) ClearEventTasks() *EventUpdate {
	_u.mutation.ClearEventTasks()
	return _u
}

// RemoveEventTaskIDs removes the "event_tasks" edge to Task entities by IDs.
func (_u *EventUpdate) RemoveEventTaskIDs(ids ...int) *EventUpdate {
	_u.mutation.RemoveEventTaskIDs(ids...)
	return _u
}

// RemoveEventTasks removes "event_tasks" edges to Task entities.
func (_u *EventUpdate) RemoveEventTasks(v ...*Task) *EventUpdate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveEventTaskIDs(ids...)
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *EventUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *EventUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *EventUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *EventUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *EventUpdate) check() error {
	if v, ok := _u.mutation.Slug(); ok {
		if err := event.SlugValidator(v); err != nil {
			return &ValidationError{Name: "slug", err: fmt.Errorf(`ent: validator failed for field "Event.slug": %w`, err)}
		}
	}
	return nil
}

func (_u *EventUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(event.Table, event.Columns, sqlgraph.NewFieldSpec(event.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Slug(); ok {
		_spec.SetField(event.FieldSlug, field.TypeString, value)
	}
	if value, ok := _u.mutation.StartDate(); ok {
		_spec.SetField(event.FieldStartDate, field.TypeTime, value)
	}
	if _u.mutation.StartDateCleared() {
		_spec.ClearField(event.FieldStartDate, field.TypeTime)
	}
	if value, ok := _u.mutation.EndDate(); ok {
		_spec.SetField(event.FieldEndDate, field.TypeTime, value)
	}
	if _u.mutation.EndDateCleared() {
		_spec.ClearField(event.FieldEndDate, field.TypeTime)
	}
	if value, ok := _u.mutation.URL(); ok {
		_spec.SetField(event.FieldURL, field.TypeString, value)
	}
	if _u.mutation.URLCleared() {
		_spec.ClearField(event.FieldURL, field.TypeString)
	}
	if value, ok := _u.mutation.Tags(); ok {
		_spec.SetField(event.FieldTags, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedTags(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, event.FieldTags, value)
		})
	}
	if _u.mutation.TagsCleared() {
		_spec.ClearField(event.FieldTags, field.TypeJSON)
	}
	if value, ok := _u.mutation.OpenRecruitment(); ok {
		_spec.SetField(event.FieldOpenRecruitment, field.TypeBool, value)
	}
	if _u.mutation.AdministratorCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   event.AdministratorTable,
			Columns: []string{event.AdministratorColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(organization.FieldID, field.TypeInt),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.AdministratorIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   event.AdministratorTable,
			Columns: []string{event.AdministratorColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(organization.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.EventTasksCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   event.EventTasksTable,
			Columns: []string{event.EventTasksColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(task.FieldID, field.TypeInt),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedEventTasksIDs(); len(nodes) > 0 && !_u.mutation.EventTasksCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   event.EventTasksTable,
			Columns: []string{event.EventTasksColumn},
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
	if nodes := _u.mutation.EventTasksIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   event.EventTasksTable,
			Columns: []string{event.EventTasksColumn},
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
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{event.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// EventUpdateOne is the builder for updating a single Event entity.
type EventUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *EventMutation
}

// SetSlug sets the "slug" field.
func (_u *EventUpdateOne) SetSlug(v string) *EventUpdateOne {
	_u.mutation.SetSlug(v)
	return _u
}

// SetNillableSlug sets the "slug" field if the given value is not nil.
func (_u *EventUpdateOne) SetNillableSlug(v *string) *EventUpdateOne {
	if v != nil {
		_u.SetSlug(*v)
	}
	return _u
}

// SetStartDate sets the "start_date" field.
func (_u *EventUpdateOne) SetStartDate(v time.Time) *EventUpdateOne {
	_u.mutation.SetStartDate(v)
	return _u
}

// SetNillableStartDate sets the "start_date" field if the given value is not nil.
func (_u *EventUpdateOne) SetNillableStartDate(v *time.Time) *EventUpdateOne {
	if v != nil {
		_u.SetStartDate(*v)
	}
	return _u
}

// ClearStartDate clears the value of the "start_date" field.
func (_u *EventUpdateOne) ClearStartDate() *EventUpdateOne {
	_u.mutation.ClearStartDate()
	return _u
}

// SetEndDate sets the "end_date" field.
func (_u *EventUpdateOne) SetEndDate(v time.Time) *EventUpdateOne {
	_u.mutation.SetEndDate(v)
	return _u
}

// SetNillableEndDate sets the "end_date" field if the given value is not nil.
func (_u *EventUpdateOne) SetNillableEndDate(v *time.Time) *EventUpdateOne {
	if v != nil {
		_u.SetEndDate(*v)
	}
	return _u
}

// ClearEndDate clears the value of the "end_date" field.
func (_u *EventUpdateOne) ClearEndDate() *EventUpdateOne {
	_u.mutation.ClearEndDate()
	return _u
}

// SetURL sets the "url" field.
func (_u *EventUpdateOne) SetURL(v string) *EventUpdateOne {
	_u.mutation.SetURL(v)
	return _u
}

// SetNillableURL sets the "url" field if the given value is not nil.
func (_u *EventUpdateOne) SetNillableURL(v *string) *EventUpdateOne {
	if v != nil {
		_u.SetURL(*v)
	}
	return _u
}

// ClearURL clears the value of the "url" field.
func (_u *EventUpdateOne) ClearURL() *EventUpdateOne {
	_u.mutation.ClearURL()
	return _u
}

// SetTags sets the "tags" field.
func (_u *EventUpdateOne) SetTags(v []string) *EventUpdateOne {
	_u.mutation.SetTags(v)
	return _u
}

// AppendTags appends value to the "tags" field.
func (_u *EventUpdateOne) AppendTags(v []string) *EventUpdateOne {
	_u.mutation.AppendTags(v)
	return _u
}

// ClearTags clears the value of the "tags" field.
func (_u *EventUpdateOne) ClearTags() *EventUpdateOne {
	_u.mutation.ClearTags()
	return _u
}

// SetOpenRecruitment sets the "open_recruitment" field.
func (_u *EventUpdateOne) SetOpenRecruitment(v bool) *EventUpdateOne {
	_u.mutation.SetOpenRecruitment(v)
	return _u
}

// SetNillableOpenRecruitment sets the "open_recruitment" field if the given value is not nil.
func (_u *EventUpdateOne) SetNillableOpenRecruitment(v *bool) *EventUpdateOne {
	if v != nil {
		_u.SetOpenRecruitment(*v)
	}
	return _u
}

// SetAdministratorID sets the "administrator_id" field.
func (_u *EventUpdateOne) SetAdministratorID(v int) *EventUpdateOne {
	_u.mutation.SetAdministratorID(v)
	return _u
}

// SetNillableAdministratorID sets the "administrator_id" field if the given value is not nil.
func (_u *EventUpdateOne) SetNillableAdministratorID(v *int) *EventUpdateOne {
	if v != nil {
		_u.SetAdministratorID(*v)
	}
	return _u
}

// ClearAdministratorID clears the value of the "administrator_id" field.
func (_u *EventUpdateOne) ClearAdministratorID() *EventUpdateOne {
	_u.mutation.ClearAdministratorID()
	return _u
}

// SetAdministrator sets the "administrator" edge to the Organization entity.
func (_u *EventUpdateOne) SetAdministrator(v *Organization) *EventUpdateOne {
	return _u.SetAdministratorID(v.ID)
}

// AddEventTaskIDs adds the "event_tasks" edge to the Task entity by IDs.
func (_u *EventUpdateOne) AddEventTaskIDs(ids ...int) *EventUpdateOne {
	_u.mutation.AddEventTaskIDs(ids...)
	return _u
}

// AddEventTasks adds the "event_tasks" edges to the Task entity.
func (_u *EventUpdateOne) AddEventTasks(v ...*Task) *EventUpdateOne {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddEventTaskIDs(ids...)
}

// Mutation returns the EventMutation object of the builder.
func (_u *EventUpdateOne) Mutation() *EventMutation {
	return _u.mutation
}

// ClearAdministrator clears the "administrator" edge to the Organization entity.
func (_u *EventUpdateOne) ClearAdministrator() *EventUpdateOne {
	_u.mutation.ClearAdministrator()
	return _u
}

// ClearEventTasks clears all "event_tasks" edges to the Task entity.
func (_u *EventUpdateOne) ClearEventTasks() *EventUpdateOne {
	_u.mutation.ClearEventTasks()
	return _u
}

// RemoveEventTaskIDs removes the "event_tasks" edge to Task entities by IDs.
func (_u *EventUpdateOne) RemoveEventTaskIDs(ids ...int) *EventUpdateOne {
	_u.mutation.RemoveEventTaskIDs(ids...)
	return _u
}

// RemoveEventTasks removes "event_tasks" edges to Task entities.
func (_u *EventUpdateOne) RemoveEventTasks(v ...*Task) *EventUpdateOne {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveEventTaskIDs(ids...)
}

// Where appends a list predicates to the EventUpdate builder.
func (_u *EventUpdateOne) Where(ps ...predicate.Event) *EventUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *EventUpdateOne) Select(field string, fields ...string) *EventUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Event entity.
func (_u *EventUpdateOne) Save(ctx context.Context) (*Event, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *EventUpdateOne) SaveX(ctx context.Context) *Event {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *EventUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *EventUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *EventUpdateOne) check() error {
	if v, ok := _u.mutation.Slug(); ok {
		if err := event.SlugValidator(v); err != nil {
			return &ValidationError{Name: "slug", err: fmt.Errorf(`ent: validator failed for field "Event.slug": %w`, err)}
		}
	}
	return nil
}

func (_u *EventUpdateOne) sqlSave(ctx context.Context) (_node *Event, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(event.Table, event.Columns, sqlgraph.NewFieldSpec(event.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Event.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, event.FieldID)
		for _, f := range fields {
			if !event.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != event.FieldID {
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
	if value, ok := _u.mutation.Slug(); ok {
		_spec.SetField(event.FieldSlug, field.TypeString, value)
	}
	if value, ok := _u.mutation.StartDate(); ok {
		_spec.SetField(event.FieldStartDate, field.TypeTime, value)
	}
	if _u.mutation.StartDateCleared() {
		_spec.ClearField(event.FieldStartDate, field.TypeTime)
	}
	if value, ok := _u.mutation.EndDate(); ok {
		_spec.SetField(event.FieldEndDate, field.TypeTime, value)
	}
	if _u.mutation.EndDateCleared() {
		_spec.ClearField(event.FieldEndDate, field.TypeTime)
	}
	if value, ok := _u.mutation.URL(); ok {
		_spec.SetField(event.FieldURL, field.TypeString, value)
	}
	if _u.mutation.URLCleared() {
		_spec.ClearField(event.FieldURL, field.TypeString)
	}
	if value, ok := _u.mutation.Tags(); ok {
		_spec.SetField(event.FieldTags, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedTags(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, event.FieldTags, value)
		})
	}
	if _u.mutation.TagsCleared() {
		_spec.ClearField(event.FieldTags, field.TypeJSON)
	}
	if value, ok := _u.mutation.OpenRecruitment(); ok {
		_spec.SetField(event.FieldOpenRecruitment, field.TypeBool, value)
	}
	if _u.mutation.AdministratorCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   event.AdministratorTable,
			Columns: []string{event.AdministratorColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(organization.FieldID, field.TypeInt),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.AdministratorIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   event.AdministratorTable,
			Columns: []string{event.AdministratorColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(organization.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.EventTasksCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   event.EventTasksTable,
			Columns: []string{event.EventTasksColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(task.FieldID, field.TypeInt),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedEventTasksIDs(); len(nodes) > 0 && !_u.mutation.EventTasksCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   event.EventTasksTable,
			Columns: []string{event.EventTasksColumn},
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
	if nodes := _u.mutation.EventTasksIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   event.EventTasksTable,
			Columns: []string{event.EventTasksColumn},
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
	_node = &Event{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{event.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
