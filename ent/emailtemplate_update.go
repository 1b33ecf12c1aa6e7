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
	"github.com/carpentries/mailflow/ent/emailtemplate"
	"github.com/carpentries/mailflow/ent/predicate"
	"github.com/carpentries/mailflow/ent/scheduledemail"
	"github.com/google/uuid"
)

// EmailTemplateUpdate is the builder for updating EmailTemplate entities.
type EmailTemplateUpdate struct {
	config
	hooks    []Hook
	mutation *EmailTemplateMutation
}

// Where appends a list predicates to the EmailTemplateUpdate builder.
func (_u *EmailTemplateUpdate) Where(ps ...predicate.EmailTemplate) *EmailTemplateUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetName sets the "name" field.
func (_u *EmailTemplateUpdate) SetName(v string) *EmailTemplateUpdate {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *EmailTemplateUpdate) SetNillableName(v *string) *EmailTemplateUpdate {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetSignal sets the "signal" field.
func (_u *EmailTemplateUpdate) SetSignal(v string) *EmailTemplateUpdate {
	_u.mutation.SetSignal(v)
	return _u
}

// SetNillableSignal sets the "signal" field if the given value is not nil.
func (_u *EmailTemplateUpdate) SetNillableSignal(v *string) *EmailTemplateUpdate {
	if v != nil {
		_u.SetSignal(*v)
	}
	return _u
}

// SetActive sets the "active" field.
func (_u *EmailTemplateUpdate) SetActive(v bool) *EmailTemplateUpdate {
	_u.mutation.SetActive(v)
	return _u
}

// SetNillableActive sets the "active" field if the given value is not nil.
func (_u *EmailTemplateUpdate) SetNillableActive(v *bool) *EmailTemplateUpdate {
	if v != nil {
		_u.SetActive(*v)
	}
	return _u
}

// SetFromHeader sets the "from_header" field.
func (_u *EmailTemplateUpdate) SetFromHeader(v string) *EmailTemplateUpdate {
	_u.mutation.SetFromHeader(v)
	return _u
}

// SetNillableFromHeader sets the "from_header" field if the given value is not nil.
func (_u *EmailTemplateUpdate) SetNillableFromHeader(v *string) *EmailTemplateUpdate {
	if v != nil {
		_u.SetFromHeader(*v)
	}
	return _u
}

// SetReplyToHeader sets the "reply_to_header" field.
func (_u *EmailTemplateUpdate) SetReplyToHeader(v string) *EmailTemplateUpdate {
	_u.mutation.SetReplyToHeader(v)
	return _u
}

// SetNillableReplyToHeader sets the "reply_to_header" field if the given value is not nil.
func (_u *EmailTemplateUpdate) SetNillableReplyToHeader(v *string) *EmailTemplateUpdate {
	if v != nil {
		_u.SetReplyToHeader(*v)
	}
	return _u
}

// ClearReplyToHeader clears the value of the "reply_to_header" field.
func (_u *EmailTemplateUpdate) ClearReplyToHeader() *EmailTemplateUpdate {
	_u.mutation.ClearReplyToHeader()
	return _u
}

// SetCcHeader sets the "cc_header" field.
func (_u *EmailTemplateUpdate) SetCcHeader(v []string) *EmailTemplateUpdate {
	_u.mutation.SetCcHeader(v)
	return _u
}

// AppendCcHeader appends value to the "cc_header" field.
func (_u *EmailTemplateUpdate) AppendCcHeader(v []string) *EmailTemplateUpdate {
	_u.mutation.AppendCcHeader(v)
	return _u
}

// ClearCcHeader clears the value of the "cc_header" field.
func (_u *EmailTemplateUpdate) ClearCcHeader() *EmailTemplateUpdate {
	_u.mutation.ClearCcHeader()
	return _u
}

// SetBccHeader sets the "bcc_header" field.
func (_u *EmailTemplateUpdate) SetBccHeader(v []string) *EmailTemplateUpdate {
	_u.mutation.SetBccHeader(v)
	return _u
}

// AppendBccHeader appends value to the "bcc_header" field.
func (_u *EmailTemplateUpdate) AppendBccHeader(v []string) *EmailTemplateUpdate {
	_u.mutation.AppendBccHeader(v)
	return _u
}

// ClearBccHeader clears the value of the "bcc_header" field.
func (_u *EmailTemplateUpdate) ClearBccHeader() *EmailTemplateUpdate {
	_u.mutation.ClearBccHeader()
	return _u
}

// SetSubject sets the "subject" field.
func (_u *EmailTemplateUpdate) SetSubject(v string) *EmailTemplateUpdate {
	_u.mutation.SetSubject(v)
	return _u
}

// SetNillableSubject sets the "subject" field if the given value is not nil.
func (_u *EmailTemplateUpdate) SetNillableSubject(v *string) *EmailTemplateUpdate {
	if v != nil {
		_u.SetSubject(*v)
	}
	return _u
}

// SetBody sets the "body" field.
func (_u *EmailTemplateUpdate) SetBody(v string) *EmailTemplateUpdate {
	_u.mutation.SetBody(v)
	return _u
}

// SetNillableBody sets the "body" field if the given value is not nil.
func (_u *EmailTemplateUpdate) SetNillableBody(v *string) *EmailTemplateUpdate {
	if v != nil {
		_u.SetBody(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *EmailTemplateUpdate) SetUpdatedAt(v time.Time) *EmailTemplateUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// AddScheduledEmailIDs adds the "scheduled_emails" edge to the ScheduledEmail entity by IDs.
func (_u *EmailTemplateUpdate) AddScheduledEmailIDs(ids ...uuid.UUID) *EmailTemplateUpdate {
	_u.mutation.AddScheduledEmailIDs(ids...)
	return _u
}

// AddScheduledEmails adds the "scheduled_emails" edges to the ScheduledEmail entity.
func (_u *EmailTemplateUpdate) AddScheduledEmails(v ...*ScheduledEmail) *EmailTemplateUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddScheduledEmailIDs(ids...)
}

// Mutation returns the EmailTemplateMutation object of the builder.
func (_u *EmailTemplateUpdate) Mutation() *EmailTemplateMutation {
	return _u.mutation
}

// ClearScheduledEmails clears all "scheduled_emails" edges to the ScheduledEmail entity.
func (_u *EmailTemplateUpdate) ClearScheduledEmails() *EmailTemplateUpdate {
	_u.mutation.ClearScheduledEmails()
	return _u
}

// RemoveScheduledEmailIDs removes the "scheduled_emails" edge to ScheduledEmail entities by IDs.
func (_u *EmailTemplateUpdate) RemoveScheduledEmailIDs(ids ...uuid.UUID) *EmailTemplateUpdate {
	_u.mutation.RemoveScheduledEmailIDs(ids...)
	return _u
}

// RemoveScheduledEmails removes "scheduled_emails" edges to ScheduledEmail entities.
func (_u *EmailTemplateUpdate) RemoveScheduledEmails(v ...*ScheduledEmail) *EmailTemplateUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveScheduledEmailIDs(ids...)
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *EmailTemplateUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *EmailTemplateUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *EmailTemplateUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *EmailTemplateUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *EmailTemplateUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := emailtemplate.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *EmailTemplateUpdate) check() error {
	if v, ok := _u.mutation.Name(); ok {
		if err := emailtemplate.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`ent: validator failed for field "EmailTemplate.name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Signal(); ok {
		if err := emailtemplate.SignalValidator(v); err != nil {
			return &ValidationError{Name: "signal", err: fmt.Errorf(`ent: validator failed for field "EmailTemplate.signal": %w`, err)}
		}
	}
	if v, ok := _u.mutation.FromHeader(); ok {
		if err := emailtemplate.FromHeaderValidator(v); err != nil {
			return &ValidationError{Name: "from_header", err: fmt.Errorf(`ent: validator failed for field "EmailTemplate.from_header": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Subject(); ok {
		if err := emailtemplate.SubjectValidator(v); err != nil {
			return &ValidationError{Name: "subject", err: fmt.Errorf(`ent: validator failed for field "EmailTemplate.subject": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Body(); ok {
		if err := emailtemplate.BodyValidator(v); err != nil {
			return &ValidationError{Name: "body", err: fmt.Errorf(`ent: validator failed for field "EmailTemplate.body": %w`, err)}
		}
	}
	return nil
}

func (_u *EmailTemplateUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(emailtemplate.Table, emailtemplate.Columns, sqlgraph.NewFieldSpec(emailtemplate.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Name(); ok {
		_spec.SetField(emailtemplate.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Signal(); ok {
		_spec.SetField(emailtemplate.FieldSignal, field.TypeString, value)
	}
	if value, ok := _u.mutation.Active(); ok {
		_spec.SetField(emailtemplate.FieldActive, field.TypeBool, value)
	}
	if value, ok := _u.mutation.FromHeader(); ok {
		_spec.SetField(emailtemplate.FieldFromHeader, field.TypeString, value)
	}
	if value, ok := _u.mutation.ReplyToHeader(); ok {
		_spec.SetField(emailtemplate.FieldReplyToHeader, field.TypeString, value)
	}
	if _u.mutation.ReplyToHeaderCleared() {
		_spec.ClearField(emailtemplate.FieldReplyToHeader, field.TypeString)
	}
	if value, ok := _u.mutation.CcHeader(); ok {
		_spec.SetField(emailtemplate.FieldCcHeader, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedCcHeader(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, emailtemplate.FieldCcHeader, value)
		})
	}
	if _u.mutation.CcHeaderCleared() {
		_spec.ClearField(emailtemplate.FieldCcHeader, field.TypeJSON)
	}
	if value, ok := _u.mutation.BccHeader(); ok {
		_spec.SetField(emailtemplate.FieldBccHeader, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedBccHeader(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, emailtemplate.FieldBccHeader, value)
		})
	}
	if _u.mutation.BccHeaderCleared() {
		_spec.ClearField(emailtemplate.FieldBccHeader, field.TypeJSON)
	}
	if value, ok := _u.mutation.Subject(); ok {
		_spec.SetField(emailtemplate.FieldSubject, field.TypeString, value)
	}
	if value, ok := _u.mutation.Body(); ok {
		_spec.SetField(emailtemplate.FieldBody, field.TypeString, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(emailtemplate.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.ScheduledEmailsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   emailtemplate.ScheduledEmailsTable,
			Columns: []string{emailtemplate.ScheduledEmailsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(scheduledemail.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedScheduledEmailsIDs(); len(nodes) > 0 && !_u.mutation.ScheduledEmailsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   emailtemplate.ScheduledEmailsTable,
			Columns: []string{emailtemplate.ScheduledEmailsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(scheduledemail.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ScheduledEmailsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   emailtemplate.ScheduledEmailsTable,
			Columns: []string{emailtemplate.ScheduledEmailsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(scheduledemail.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{emailtemplate.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// EmailTemplateUpdateOne is the builder for updating a single EmailTemplate entity.
type EmailTemplateUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *EmailTemplateMutation
}

// SetName sets the "name" field.
func (_u *EmailTemplateUpdateOne) SetName(v string) *EmailTemplateUpdateOne {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *EmailTemplateUpdateOne) SetNillableName(v *string) *EmailTemplateUpdateOne {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetSignal sets the "signal" field.
func (_u *EmailTemplateUpdateOne) SetSignal(v string) *EmailTemplateUpdateOne {
	_u.mutation.SetSignal(v)
	return _u
}

// SetNillableSignal sets the "signal" field if the given value is not nil.
func (_u *EmailTemplateUpdateOne) SetNillableSignal(v *string) *EmailTemplateUpdateOne {
	if v != nil {
		_u.SetSignal(*v)
	}
	return _u
}

// SetActive sets the "active" field.
func (_u *EmailTemplateUpdateOne) SetActive(v bool) *EmailTemplateUpdateOne {
	_u.mutation.SetActive(v)
	return _u
}

// SetNillableActive sets the "active" field if the given value is not nil.
func (_u *EmailTemplateUpdateOne) SetNillableActive(v *bool) *EmailTemplateUpdateOne {
	if v != nil {
		_u.SetActive(*v)
	}
	return _u
}

// SetFromHeader sets the "from_header" field.
func (_u *EmailTemplateUpdateOne) SetFromHeader(v string) *EmailTemplateUpdateOne {
	_u.mutation.SetFromHeader(v)
	return _u
}

// SetNillableFromHeader sets the "from_header" field if the given value is not nil.
func (_u *EmailTemplateUpdateOne) SetNillableFromHeader(v *string) *EmailTemplateUpdateOne {
	if v != nil {
		_u.SetFromHeader(*v)
	}
	return _u
}

// SetReplyToHeader sets the "reply_to_header" field.
func (_u *EmailTemplateUpdateOne) SetReplyToHeader(v string) *EmailTemplateUpdateOne {
	_u.mutation.SetReplyToHeader(v)
	return _u
}

// SetNillableReplyToHeader sets the "reply_to_header" field if the given value is not nil.
func (_u *EmailTemplateUpdateOne) SetNillableReplyToHeader(v *string) *EmailTemplateUpdateOne {
	if v != nil {
		_u.SetReplyToHeader(*v)
	}
	return _u
}

// ClearReplyToHeader clears the value of the "reply_to_header" field.
func (_u *EmailTemplateUpdateOne) ClearReplyToHeader() *EmailTemplateUpdateOne {
	_u.mutation.ClearReplyToHeader()
	return _u
}

// SetCcHeader sets the "cc_header" field.
func (_u *EmailTemplateUpdateOne) SetCcHeader(v []string) *EmailTemplateUpdateOne {
	_u.mutation.SetCcHeader(v)
	return _u
}

// AppendCcHeader appends value to the "cc_header" field.
func (_u *EmailTemplateUpdateOne) AppendCcHeader(v []string) *EmailTemplateUpdateOne {
	_u.mutation.AppendCcHeader(v)
	return _u
}

// ClearCcHeader clears the value of the "cc_header" field.
func (_u *EmailTemplateUpdateOne) ClearCcHeader() *EmailTemplateUpdateOne {
	_u.mutation.ClearCcHeader()
	return _u
}

// SetBccHeader sets the "bcc_header" field.
func (_u *EmailTemplateUpdateOne) SetBccHeader(v []string) *EmailTemplateUpdateOne {
	_u.mutation.SetBccHeader(v)
	return _u
}

// AppendBccHeader appends value to the "bcc_header" field.
func (_u *EmailTemplateUpdateOne) AppendBccHeader(v []string) *EmailTemplateUpdateOne {
	_u.mutation.AppendBccHeader(v)
	return _u
}

// ClearBccHeader clears the value of the "bcc_header" field.
func (_u *EmailTemplateUpdateOne) ClearBccHeader() *EmailTemplateUpdateOne {
	_u.mutation.ClearBccHeader()
	return _u
}

// SetSubject sets the "subject" field.
func (_u *EmailTemplateUpdateOne) SetSubject(v string) *EmailTemplateUpdateOne {
	_u.mutation.SetSubject(v)
	return _u
}

// SetNillableSubject sets the "subject" field if the given value is not nil.
func (_u *EmailTemplateUpdateOne) SetNillableSubject(v *string) *EmailTemplateUpdateOne {
	if v != nil {
		_u.SetSubject(*v)
	}
	return _u
}

// SetBody sets the "body" field.
func (_u *EmailTemplateUpdateOne) SetBody(v string) *EmailTemplateUpdateOne {
	_u.mutation.SetBody(v)
	return _u
}

// SetNillableBody sets the "body" field if the given value is not nil.
func (_u *EmailTemplateUpdateOne) SetNillableBody(v *string) *EmailTemplateUpdateOne {
	if v != nil {
		_u.SetBody(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *EmailTemplateUpdateOne) SetUpdatedAt(v time.Time) *EmailTemplateUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// AddScheduledEmailIDs adds the "scheduled_emails" edge to the ScheduledEmail entity by IDs.
func (_u *EmailTemplateUpdateOne) AddScheduledEmailIDs(ids ...uuid.UUID) *EmailTemplateUpdateOne {
	_u.mutation.AddScheduledEmailIDs(ids...)
	return _u
}

// AddScheduledEmails adds the "scheduled_emails" edges to the ScheduledEmail entity.
func (_u *EmailTemplateUpdateOne) AddScheduledEmails(v ...*ScheduledEmail) *EmailTemplateUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddScheduledEmailIDs(ids...)
}

// Mutation returns the EmailTemplateMutation object of the builder.
func (_u *EmailTemplateUpdateOne) Mutation() *EmailTemplateMutation {
	return _u.mutation
}

// ClearScheduledEmails clears all "scheduled_emails" edges to the ScheduledEmail entity.
func (_u *EmailTemplateUpdateOne) ClearScheduledEmails() *EmailTemplateUpdateOne {
	_u.mutation.ClearScheduledEmails()
	return _u
}

// RemoveScheduledEmailIDs removes the "scheduled_emails" edge to ScheduledEmail entities by IDs.
func (_u *EmailTemplateUpdateOne) RemoveScheduledEmailIDs(ids ...uuid.UUID) *EmailTemplateUpdateOne {
	_u.mutation.RemoveScheduledEmailIDs(ids...)
	return _u
}

// RemoveScheduledEmails removes "scheduled_emails" edges to ScheduledEmail entities.
func (_u *EmailTemplateUpdateOne) RemoveScheduledEmails(v ...*ScheduledEmail) *EmailTemplateUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveScheduledEmailIDs(ids...)
}

// Where appends a list predicates to the EmailTemplateUpdate builder.
func (_u *EmailTemplateUpdateOne) Where(ps ...predicate.EmailTemplate) *EmailTemplateUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *EmailTemplateUpdateOne) Select(field string, fields ...string) *EmailTemplateUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated EmailTemplate entity.
func (_u *EmailTemplateUpdateOne) Save(ctx context.Context) (*EmailTemplate, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *EmailTemplateUpdateOne) SaveX(ctx context.Context) *EmailTemplate {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *EmailTemplateUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *EmailTemplateUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *EmailTemplateUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := emailtemplate.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *EmailTemplateUpdateOne) check() error {
	if v, ok := _u.mutation.Name(); ok {
		if err := emailtemplate.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`ent: validator failed for field "EmailTemplate.name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Signal(); ok {
		if err := emailtemplate.SignalValidator(v); err != nil {
			return &ValidationError{Name: "signal", err: fmt.Errorf(`ent: validator failed for field "EmailTemplate.signal": %w`, err)}
		}
	}
	if v, ok := _u.mutation.FromHeader(); ok {
		if err := emailtemplate.FromHeaderValidator(v); err != nil {
			return &ValidationError{Name: "from_header", err: fmt.Errorf(`ent: validator failed for field "EmailTemplate.from_header": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Subject(); ok {
		if err := emailtemplate.SubjectValidator(v); err != nil {
			return &ValidationError{Name: "subject", err: fmt.Errorf(`ent: validator failed for field "EmailTemplate.subject": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Body(); ok {
		if err := emailtemplate.BodyValidator(v); err != nil {
			return &ValidationError{Name: "body", err: fmt.Errorf(`ent: validator failed for field "EmailTemplate.body": %w`, err)}
		}
	}
	return nil
}

func (_u *EmailTemplateUpdateOne) sqlSave(ctx context.Context) (_node *EmailTemplate, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(emailtemplate.Table, emailtemplate.Columns, sqlgraph.NewFieldSpec(emailtemplate.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "EmailTemplate.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, emailtemplate.FieldID)
		for _, f := range fields {
			if !emailtemplate.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != emailtemplate.FieldID {
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
		_spec.SetField(emailtemplate.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Signal(); ok {
		_spec.SetField(emailtemplate.FieldSignal, field.TypeString, value)
	}
	if value, ok := _u.mutation.Active(); ok {
		_spec.SetField(emailtemplate.FieldActive, field.TypeBool, value)
	}
	if value, ok := _u.mutation.FromHeader(); ok {
		_spec.SetField(emailtemplate.FieldFromHeader, field.TypeString, value)
	}
	if value, ok := _u.mutation.ReplyToHeader(); ok {
		_spec.SetField(emailtemplate.FieldReplyToHeader, field.TypeString, value)
	}
	if _u.mutation.ReplyToHeaderCleared() {
		_spec.ClearField(emailtemplate.FieldReplyToHeader, field.TypeString)
	}
	if value, ok := _u.mutation.CcHeader(); ok {
		_spec.SetField(emailtemplate.FieldCcHeader, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedCcHeader(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, emailtemplate.FieldCcHeader, value)
		})
	}
	if _u.mutation.CcHeaderCleared() {
		_spec.ClearField(emailtemplate.FieldCcHeader, field.TypeJSON)
	}
	if value, ok := _u.mutation.BccHeader(); ok {
		_spec.SetField(emailtemplate.FieldBccHeader, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedBccHeader(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, emailtemplate.FieldBccHeader, value)
		})
	}
	if _u.mutation.BccHeaderCleared() {
		_spec.ClearField(emailtemplate.FieldBccHeader, field.TypeJSON)
	}
	if value, ok := _u.mutation.Subject(); ok {
		_spec.SetField(emailtemplate.FieldSubject, field.TypeString, value)
	}
	if value, ok := _u.mutation.Body(); ok {
		_spec.SetField(emailtemplate.FieldBody, field.TypeString, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(emailtemplate.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.ScheduledEmailsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   emailtemplate.ScheduledEmailsTable,
			Columns: []string{emailtemplate.ScheduledEmailsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(scheduledemail.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedScheduledEmailsIDs(); len(nodes) > 0 && !_u.mutation.ScheduledEmailsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   emailtemplate.ScheduledEmailsTable,
			Columns: []string{emailtemplate.ScheduledEmailsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(scheduledemail.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ScheduledEmailsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   emailtemplate.ScheduledEmailsTable,
			Columns: []string{emailtemplate.ScheduledEmailsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(scheduledemail.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &EmailTemplate{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{emailtemplate.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
