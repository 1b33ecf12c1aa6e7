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
	"github.com/carpentries/mailflow/ent/emailattachment"
	"github.com/carpentries/mailflow/ent/emailtemplate"
	"github.com/carpentries/mailflow/ent/predicate"
	"github.com/carpentries/mailflow/ent/scheduledemail"
	"github.com/carpentries/mailflow/ent/scheduledemaillog"
	"github.com/carpentries/mailflow/pkg/models"
	"github.com/google/uuid"
)

// ScheduledEmailUpdate is the builder for updating ScheduledEmail entities.
type ScheduledEmailUpdate struct {
	config
	hooks    []Hook
	mutation *ScheduledEmailMutation
}

// Where appends a list predicates to the ScheduledEmailUpdate builder.
func (_u *ScheduledEmailUpdate) Where(ps ...predicate.ScheduledEmail) *ScheduledEmailUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetState sets the "state" field.
func (_u *ScheduledEmailUpdate) SetState(v scheduledemail.State) *ScheduledEmailUpdate {
	_u.mutation.SetState(v)
	return _u
}

// SetNillableState sets the "state" field if the given value is not nil.
func (_u *ScheduledEmailUpdate) SetNillableState(v *scheduledemail.State) *ScheduledEmailUpdate {
	if v != nil {
		_u.SetState(*v)
	}
	return _u
}

// SetScheduledAt sets the "scheduled_at" field.
func (_u *ScheduledEmailUpdate) SetScheduledAt(v time.Time) *ScheduledEmailUpdate {
	_u.mutation.SetScheduledAt(v)
	return _u
}

// SetNillableScheduledAt sets the "scheduled_at" field if the given value is not nil.
func (_u *ScheduledEmailUpdate) SetNillableScheduledAt(v *time.Time) *ScheduledEmailUpdate {
	if v != nil {
		_u.SetScheduledAt(*v)
	}
	return _u
}

// SetToHeader sets the "to_header" field.
func (_u *ScheduledEmailUpdate) SetToHeader(v []string) *ScheduledEmailUpdate {
	_u.mutation.SetToHeader(v)
	return _u
}

// AppendToHeader appends value to the "to_header" field.
func (_u *ScheduledEmailUpdate) AppendToHeader(v []string) *ScheduledEmailUpdate {
	_u.mutation.AppendToHeader(v)
	return _u
}

// SetFromHeader sets the "from_header" field.
func (_u *ScheduledEmailUpdate) SetFromHeader(v string) *ScheduledEmailUpdate {
	_u.mutation.SetFromHeader(v)
	return _u
}

// SetNillableFromHeader sets the "from_header" field if the given value is not nil.
func (_u *ScheduledEmailUpdate) SetNillableFromHeader(v *string) *ScheduledEmailUpdate {
	if v != nil {
		_u.SetFromHeader(*v)
	}
	return _u
}

// SetReplyToHeader sets the "reply_to_header" field.
func (_u *ScheduledEmailUpdate) SetReplyToHeader(v string) *ScheduledEmailUpdate {
	_u.mutation.SetReplyToHeader(v)
	return _u
}

// SetNillableReplyToHeader sets the "reply_to_header" field if the given value is not nil.
func (_u *ScheduledEmailUpdate) SetNillableReplyToHeader(v *string) *ScheduledEmailUpdate {
	if v != nil {
		_u.SetReplyToHeader(*v)
	}
	return _u
}

// ClearReplyToHeader clears the value of the "reply_to_header" field.
func (_u *ScheduledEmailUpdate) ClearReplyToHeader() *ScheduledEmailUpdate {
	_u.mutation.ClearReplyToHeader()
	return _u
}

// SetCcHeader sets the "cc_header" field.
func (_u *ScheduledEmailUpdate) SetCcHeader(v []string) *ScheduledEmailUpdate {
	_u.mutation.SetCcHeader(v)
	return _u
}

// AppendCcHeader appends value to the "cc_header" field.
func (_u *ScheduledEmailUpdate) AppendCcHeader(v []string) *ScheduledEmailUpdate {
	_u.mutation.AppendCcHeader(v)
	return _u
}

// ClearCcHeader clears the value of the "cc_header" field.
func (_u *ScheduledEmailUpdate) ClearCcHeader() *ScheduledEmailUpdate {
	_u.mutation.ClearCcHeader()
	return _u
}

// SetBccHeader sets the "bcc_header" field.
func (_u *ScheduledEmailUpdate) SetBccHeader(v []string) *ScheduledEmailUpdate {
	_u.mutation.SetBccHeader(v)
	return _u
}

// AppendBccHeader appends value to the "bcc_header" field.
func (_u *ScheduledEmailUpdate) AppendBccHeader(v []string) *ScheduledEmailUpdate {
	_u.mutation.AppendBccHeader(v)
	return _u
}

// ClearBccHeader clears the value of the "bcc_header" field.
func (_u *ScheduledEmailUpdate) ClearBccHeader() *ScheduledEmailUpdate {
	_u.mutation.ClearBccHeader()
	return _u
}

// SetSubject sets the "subject" field.
func (_u *ScheduledEmailUpdate) SetSubject(v string) *ScheduledEmailUpdate {
	_u.mutation.SetSubject(v)
	return _u
}

// SetNillableSubject sets the "subject" field if the given value is not nil.
func (_u *ScheduledEmailUpdate) SetNillableSubject(v *string) *ScheduledEmailUpdate {
	if v != nil {
		_u.SetSubject(*v)
	}
	return _u
}

// SetBody sets the "body" field.
func (_u *ScheduledEmailUpdate) SetBody(v string) *ScheduledEmailUpdate {
	_u.mutation.SetBody(v)
	return _u
}

// SetNillableBody sets the "body" field if the given value is not nil.
func (_u *ScheduledEmailUpdate) SetNillableBody(v *string) *ScheduledEmailUpdate {
	if v != nil {
		_u.SetBody(*v)
	}
	return _u
}

// SetContextJSON sets the "context_json" field.
func (_u *ScheduledEmailUpdate) SetContextJSON(v map[string]interface{}) *ScheduledEmailUpdate {
	_u.mutation.SetContextJSON(v)
	return _u
}

// SetToHeaderContextJSON sets the "to_header_context_json" field.
func (_u *ScheduledEmailUpdate) SetToHeaderContextJSON(v []models.ToHeaderRef) *ScheduledEmailUpdate {
	_u.mutation.SetToHeaderContextJSON(v)
	return _u
}

// AppendToHeaderContextJSON appends value to the "to_header_context_json" field.
func (_u *ScheduledEmailUpdate) AppendToHeaderContextJSON(v []models.ToHeaderRef) *ScheduledEmailUpdate {
	_u.mutation.AppendToHeaderContextJSON(v)
	return _u
}

// SetTemplateID sets the "template_id" field.
func (_u *ScheduledEmailUpdate) SetTemplateID(v uuid.UUID) *ScheduledEmailUpdate {
	_u.mutation.SetTemplateID(v)
	return _u
}

// SetNillableTemplateID sets the "template_id" field if the given value is not nil.
func (_u *ScheduledEmailUpdate) SetNillableTemplateID(v *uuid.UUID) *ScheduledEmailUpdate {
	if v != nil {
		_u.SetTemplateID(*v)
	}
	return _u
}

// ClearTemplateID clears the value of the "template_id" field.
func (_u *ScheduledEmailUpdate) ClearTemplateID() *ScheduledEmailUpdate {
	_u.mutation.ClearTemplateID()
	return _u
}

// SetRelatedTo sets the "related_to" field.
func (_u *ScheduledEmailUpdate) SetRelatedTo(v scheduledemail.RelatedTo) *ScheduledEmailUpdate {
	_u.mutation.SetRelatedTo(v)
	return _u
}

// SetNillableRelatedTo sets the "related_to" field if the given value is not nil.
func (_u *ScheduledEmailUpdate) SetNillableRelatedTo(v *scheduledemail.RelatedTo) *ScheduledEmailUpdate {
	if v != nil {
		_u.SetRelatedTo(*v)
	}
	return _u
}

// ClearRelatedTo clears the value of the "related_to" field.
func (_u *ScheduledEmailUpdate) ClearRelatedTo() *ScheduledEmailUpdate {
	_u.mutation.ClearRelatedTo()
	return _u
}

// SetRelatedID sets the "related_id" field.
func (_u *ScheduledEmailUpdate) SetRelatedID(v int) *ScheduledEmailUpdate {
	_u.mutation.ResetRelatedID()
	_u.mutation.SetRelatedID(v)
	return _u
}

// SetNillableRelatedID sets the "related_id" field if the given value is not nil.
func (_u *ScheduledEmailUpdate) SetNillableRelatedID(v *int) *ScheduledEmailUpdate {
	if v != nil {
		_u.SetRelatedID(*v)
	}
	return _u
}

// AddRelatedID adds value to the "related_id" field.
func (_u *ScheduledEmailUpdate) AddRelatedID(v int) *ScheduledEmailUpdate {
	_u.mutation.AddRelatedID(v)
	return _u
}

// ClearRelatedID clears the value of the "related_id" field.
func (_u *ScheduledEmailUpdate) ClearRelatedID() *ScheduledEmailUpdate {
	_u.mutation.ClearRelatedID()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *ScheduledEmailUpdate) SetUpdatedAt(v time.Time) *ScheduledEmailUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetTemplate sets the "template" edge to the EmailTemplate entity.
func (_u *ScheduledEmailUpdate) SetTemplate(v *EmailTemplate) *ScheduledEmailUpdate {
	return _u.SetTemplateID(v.ID)
}

// AddLogIDs adds the "logs" edge to the ScheduledEmailLog entity by IDs.
func (_u *ScheduledEmailUpdate) AddLogIDs(ids ...uuid.UUID) *ScheduledEmailUpdate {
	_u.mutation.AddLogIDs(ids...)
	return _u
}

// AddLogs adds the "logs" edges to the ScheduledEmailLog entity.
func (_u *ScheduledEmailUpdate) AddLogs(v ...*ScheduledEmailLog) *ScheduledEmailUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddLogIDs(ids...)
}

// AddAttachmentIDs adds the "attachments" edge to the EmailAttachment entity by IDs.
func (_u *ScheduledEmailUpdate) AddAttachmentIDs(ids ...uuid.UUID) *ScheduledEmailUpdate {
	_u.mutation.AddAttachmentIDs(ids...)
	return _u
}

// AddAttachments adds the "attachments" edges to the EmailAttachment entity.
func (_u *ScheduledEmailUpdate) AddAttachments(v ...*EmailAttachment) *ScheduledEmailUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddAttachmentIDs(ids...)
}

// Mutation returns the ScheduledEmailMutation object of the builder.
func (_u *ScheduledEmailUpdate) Mutation() *ScheduledEmailMutation {
	return _u.mutation
}

// ClearTemplate clears the "template" edge to the EmailTemplate entity.
func (_u *ScheduledEmailUpdate) ClearTemplate() *ScheduledEmailUpdate {
	_u.mutation.ClearTemplate()
	return _u
}

// ClearLogs clears all "logs" edges to the ScheduledEmailLog entity.
func (_u *ScheduledEmailUpdate) ClearLogs() *ScheduledEmailUpdate {
	_u.mutation.ClearLogs()
	return _u
}

// RemoveLogIDs removes the "logs" edge to ScheduledEmailLog entities by IDs.
func (_u *ScheduledEmailUpdate) RemoveLogIDs(ids ...uuid.UUID) *ScheduledEmailUpdate {
	_u.mutation.RemoveLogIDs(ids...)
	return _u
}

// RemoveLogs removes "logs" edges to ScheduledEmailLog entities.
func (_u *ScheduledEmailUpdate) RemoveLogs(v ...*ScheduledEmailLog) *ScheduledEmailUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveLogIDs(ids...)
}

// ClearAttachments clears all "attachments" edges to the EmailAttachment entity.
func (_u *ScheduledEmailUpdate) ClearAttachments() *ScheduledEmailUpdate {
	_u.mutation.ClearAttachments()
	return _u
}

// RemoveAttachmentIDs removes the "attachments" edge to EmailAttachment entities by IDs.
func (_u *ScheduledEmailUpdate) RemoveAttachmentIDs(ids ...uuid.UUID) *ScheduledEmailUpdate {
	_u.mutation.RemoveAttachmentIDs(ids...)
	return _u
}

// RemoveAttachments removes "attachments" edges to EmailAttachment entities.
func (_u *ScheduledEmailUpdate) RemoveAttachments(v ...*EmailAttachment) *ScheduledEmailUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveAttachmentIDs(ids...)
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *ScheduledEmailUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ScheduledEmailUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *ScheduledEmailUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ScheduledEmailUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *ScheduledEmailUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := scheduledemail.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ScheduledEmailUpdate) check() error {
	if v, ok := _u.mutation.State(); ok {
		if err := scheduledemail.StateValidator(v); err != nil {
			return &ValidationError{Name: "state", err: fmt.Errorf(`ent: validator failed for field "ScheduledEmail.state": %w`, err)}
		}
	}
	if v, ok := _u.mutation.FromHeader(); ok {
		if err := scheduledemail.FromHeaderValidator(v); err != nil {
			return &ValidationError{Name: "from_header", err: fmt.Errorf(`ent: validator failed for field "ScheduledEmail.from_header": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Subject(); ok {
		if err := scheduledemail.SubjectValidator(v); err != nil {
			return &ValidationError{Name: "subject", err: fmt.Errorf(`ent: validator failed for field "ScheduledEmail.subject": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Body(); ok {
		if err := scheduledemail.BodyValidator(v); err != nil {
			return &ValidationError{Name: "body", err: fmt.Errorf(`ent: validator failed for field "ScheduledEmail.body": %w`, err)}
		}
	}
	if v, ok := _u.mutation.RelatedTo(); ok {
		if err := scheduledemail.RelatedToValidator(v); err != nil {
			return &ValidationError{Name: "related_to", err: fmt.Errorf(`ent: validator failed for field "ScheduledEmail.related_to": %w`, err)}
		}
	}
	return nil
}

func (_u *ScheduledEmailUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(scheduledemail.Table, scheduledemail.Columns, sqlgraph.NewFieldSpec(scheduledemail.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.State(); ok {
		_spec.SetField(scheduledemail.FieldState, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.ScheduledAt(); ok {
		_spec.SetField(scheduledemail.FieldScheduledAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.ToHeader(); ok {
		_spec.SetField(scheduledemail.FieldToHeader, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedToHeader(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, scheduledemail.FieldToHeader, value)
		})
	}
	if value, ok := _u.mutation.FromHeader(); ok {
		_spec.SetField(scheduledemail.FieldFromHeader, field.TypeString, value)
	}
	if value, ok := _u.mutation.ReplyToHeader(); ok {
		_spec.SetField(scheduledemail.FieldReplyToHeader, field.TypeString, value)
	}
	if _u.mutation.ReplyToHeaderCleared() {
		_spec.ClearField(scheduledemail.FieldReplyToHeader, field.TypeString)
	}
	if value, ok := _u.mutation.CcHeader(); ok {
		_spec.SetField(scheduledemail.FieldCcHeader, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedCcHeader(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, scheduledemail.FieldCcHeader, value)
		})
	}
	if _u.mutation.CcHeaderCleared() {
		_spec.ClearField(scheduledemail.FieldCcHeader, field.TypeJSON)
	}
	if value, ok := _u.mutation.BccHeader(); ok {
		_spec.SetField(scheduledemail.FieldBccHeader, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedBccHeader(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, scheduledemail.FieldBccHeader, value)
		})
	}
	if _u.mutation.BccHeaderCleared() {
		_spec.ClearField(scheduledemail.FieldBccHeader, field.TypeJSON)
	}
	if value, ok := _u.mutation.Subject(); ok {
		_spec.SetField(scheduledemail.FieldSubject, field.TypeString, value)
	}
	if value, ok := _u.mutation.Body(); ok {
		_spec.SetField(scheduledemail.FieldBody, field.TypeString, value)
	}
	if value, ok := _u.mutation.ContextJSON(); ok {
		_spec.SetField(scheduledemail.FieldContextJSON, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.ToHeaderContextJSON(); ok {
		_spec.SetField(scheduledemail.FieldToHeaderContextJSON, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedToHeaderContextJSON(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, scheduledemail.FieldToHeaderContextJSON, value)
		})
	}
	if value, ok := _u.mutation.RelatedTo(); ok {
		_spec.SetField(scheduledemail.FieldRelatedTo, field.TypeEnum, value)
	}
	if _u.mutation.RelatedToCleared() {
		_spec.ClearField(scheduledemail.FieldRelatedTo, field.TypeEnum)
	}
	if value, ok := _u.mutation.RelatedID(); ok {
		_spec.SetField(scheduledemail.FieldRelatedID, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedRelatedID(); ok {
		_spec.AddField(scheduledemail.FieldRelatedID, field.TypeInt, value)
	}
	if _u.mutation.RelatedIDCleared() {
		_spec.ClearField(scheduledemail.FieldRelatedID, field.TypeInt)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(scheduledemail.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.TemplateCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   scheduledemail.TemplateTable,
			Columns: []string{scheduledemail.TemplateColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(emailtemplate.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.TemplateIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   scheduledemail.TemplateTable,
			Columns: []string{scheduledemail.TemplateColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(emailtemplate.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.LogsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   scheduledemail.LogsTable,
			Columns: []string{scheduledemail.LogsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(scheduledemaillog.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedLogsIDs(); len(nodes) > 0 && !_u.mutation.LogsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   scheduledemail.LogsTable,
			Columns: []string{scheduledemail.LogsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(scheduledemaillog.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.LogsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   scheduledemail.LogsTable,
			Columns: []string{scheduledemail.LogsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(scheduledemaillog.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.AttachmentsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   scheduledemail.AttachmentsTable,
			Columns: []string{scheduledemail.AttachmentsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(emailattachment.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedAttachmentsIDs(); len(nodes) > 0 && !_u.mutation.AttachmentsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   scheduledemail.AttachmentsTable,
			Columns: []string{scheduledemail.AttachmentsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(emailattachment.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.AttachmentsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   scheduledemail.AttachmentsTable,
			Columns: []string{scheduledemail.AttachmentsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(emailattachment.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{scheduledemail.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// ScheduledEmailUpdateOne is the builder for updating a single ScheduledEmail entity.
type ScheduledEmailUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ScheduledEmailMutation
}

// SetState sets the "state" field.
func (_u *ScheduledEmailUpdateOne) SetState(v scheduledemail.State) *ScheduledEmailUpdateOne {
	_u.mutation.SetState(v)
	return _u
}

// SetNillableState sets the "state" field if the given value is not nil.
func (_u *ScheduledEmailUpdateOne) SetNillableState(v *scheduledemail.State) *ScheduledEmailUpdateOne {
	if v != nil {
		_u.SetState(*v)
	}
	return _u
}

// SetScheduledAt sets the "scheduled_at" field.
func (_u *ScheduledEmailUpdateOne) SetScheduledAt(v time.Time) *ScheduledEmailUpdateOne {
	_u.mutation.SetScheduledAt(v)
	return _u
}

// SetNillableScheduledAt sets the "scheduled_at" field if the given value is not nil.
func (_u *ScheduledEmailUpdateOne) SetNillableScheduledAt(v *time.Time) *ScheduledEmailUpdateOne {
	if v != nil {
		_u.SetScheduledAt(*v)
	}
	return _u
}

// SetToHeader sets the "to_header" field.
func (_u *ScheduledEmailUpdateOne) SetToHeader(v []string) *ScheduledEmailUpdateOne {
	_u.mutation.SetToHeader(v)
	return _u
}

// AppendToHeader appends value to the "to_header" field.
func (_u *ScheduledEmailUpdateOne) AppendToHeader(v []string) *ScheduledEmailUpdateOne {
	_u.mutation.AppendToHeader(v)
	return _u
}

// SetFromHeader sets the "from_header" field.
func (_u *ScheduledEmailUpdateOne) SetFromHeader(v string) *ScheduledEmailUpdateOne {
	_u.mutation.SetFromHeader(v)
	return _u
}

// SetNillableFromHeader sets the "from_header" field if the given value is not nil.
func (_u *ScheduledEmailUpdateOne) SetNillableFromHeader(v *string) *ScheduledEmailUpdateOne {
	if v != nil {
		_u.SetFromHeader(*v)
	}
	return _u
}

// SetReplyToHeader sets the "reply_to_header" field.
func (_u *ScheduledEmailUpdateOne) SetReplyToHeader(v string) *ScheduledEmailUpdateOne {
	_u.mutation.SetReplyToHeader(v)
	return _u
}

// SetNillableReplyToHeader sets the "reply_to_header" field if the given value is not nil.
func (_u *ScheduledEmailUpdateOne) SetNillableReplyToHeader(v *string) *ScheduledEmailUpdateOne {
	if v != nil {
		_u.SetReplyToHeader(*v)
	}
	return _u
}

// ClearReplyToHeader clears the value of the "reply_to_header" field.
func (_u *ScheduledEmailUpdateOne) ClearReplyToHeader() *ScheduledEmailUpdateOne {
	_u.mutation.ClearReplyToHeader()
	return _u
}

// SetCcHeader sets the "cc_header" field.
func (_u *ScheduledEmailUpdateOne) SetCcHeader(v []string) *ScheduledEmailUpdateOne {
	_u.mutation.SetCcHeader(v)
	return _u
}

// AppendCcHeader appends value to the "cc_header" field.
func (_u *ScheduledEmailUpdateOne) AppendCcHeader(v []string) *ScheduledEmailUpdateOne {
	_u.mutation.AppendCcHeader(v)
	return _u
}

// ClearCcHeader clears the value of the "cc_header" field.
func (_u *ScheduledEmailUpdateOne) ClearCcHeader() *ScheduledEmailUpdateOne {
	_u.mutation.ClearCcHeader()
	return _u
}

// SetBccHeader sets the "bcc_header" field.
func (_u *ScheduledEmailUpdateOne) SetBccHeader(v []string) *ScheduledEmailUpdateOne {
	_u.mutation.SetBccHeader(v)
	return _u
}

// AppendBccHeader appends value to the "bcc_header" field.
func (_u *ScheduledEmailUpdateOne) AppendBccHeader(v []string) *ScheduledEmailUpdateOne {
	_u.mutation.AppendBccHeader(v)
	return _u
}

// ClearBccHeader clears the value of the "bcc_header" field.
func (_u *ScheduledEmailUpdateOne) ClearBccHeader() *ScheduledEmailUpdateOne {
	_u.mutation.ClearBccHeader()
	return _u
}

// SetSubject sets the "subject" field.
func (_u *ScheduledEmailUpdateOne) SetSubject(v string) *ScheduledEmailUpdateOne {
	_u.mutation.SetSubject(v)
	return _u
}

// SetNillableSubject sets the "subject" field if the given value is not nil.
func (_u *ScheduledEmailUpdateOne) SetNillableSubject(v *string) *ScheduledEmailUpdateOne {
	if v != nil {
		_u.SetSubject(*v)
	}
	return _u
}

// SetBody sets the "body" field.
func (_u *ScheduledEmailUpdateOne) SetBody(v string) *ScheduledEmailUpdateOne {
	_u.mutation.SetBody(v)
	return _u
}

// SetNillableBody sets the "body" field if the given value is not nil.
func (_u *ScheduledEmailUpdateOne) SetNillableBody(v *string) *ScheduledEmailUpdateOne {
	if v != nil {
		_u.SetBody(*v)
	}
	return _u
}

// SetContextJSON sets the "context_json" field.
func (_u *ScheduledEmailUpdateOne) SetContextJSON(v map[string]interface{}) *ScheduledEmailUpdateOne {
	_u.mutation.SetContextJSON(v)
	return _u
}

// SetToHeaderContextJSON sets the "to_header_context_json" field.
func (_u *ScheduledEmailUpdateOne) SetToHeaderContextJSON(v []models.ToHeaderRef) *ScheduledEmailUpdateOne {
	_u.mutation.SetToHeaderContextJSON(v)
	return _u
}

// AppendToHeaderContextJSON appends value to the "to_header_context_json" field.
func (_u *ScheduledEmailUpdateOne) AppendToHeaderContextJSON(v []models.ToHeaderRef) *ScheduledEmailUpdateOne {
	_u.mutation.AppendToHeaderContextJSON(v)
	return _u
}

// SetTemplateID sets the "template_id" field.
func (_u *ScheduledEmailUpdateOne) SetTemplateID(v uuid.UUID) *ScheduledEmailUpdateOne {
	_u.mutation.SetTemplateID(v)
	return _u
}

// SetNillableTemplateID sets the "template_id" field if the given value is not nil.
func (_u *ScheduledEmailUpdateOne) SetNillableTemplateID(v *uuid.UUID) *ScheduledEmailUpdateOne {
	if v != nil {
		_u.SetTemplateID(*v)
	}
	return _u
}

// ClearTemplateID clears the value of the "template_id" field.
func (_u *ScheduledEmailUpdateOne) ClearTemplateID() *ScheduledEmailUpdateOne {
	_u.mutation.ClearTemplateID()
	return _u
}

// SetRelatedTo sets the "related_to" field.
func (_u *ScheduledEmailUpdateOne) SetRelatedTo(v scheduledemail.RelatedTo) *ScheduledEmailUpdateOne {
	_u.mutation.SetRelatedTo(v)
	return _u
}

// SetNillableRelatedTo sets the "related_to" field if the given value is not nil.
func (_u *ScheduledEmailUpdateOne) SetNillableRelatedTo(v *scheduledemail.RelatedTo) *ScheduledEmailUpdateOne {
	if v != nil {
		_u.SetRelatedTo(*v)
	}
	return _u
}

// ClearRelatedTo clears the value of the "related_to" field.
func (_u *ScheduledEmailUpdateOne) ClearRelatedTo() *ScheduledEmailUpdateOne {
	_u.mutation.ClearRelatedTo()
	return _u
}

// SetRelatedID sets the "related_id" field.
func (_u *ScheduledEmailUpdateOne) SetRelatedID(v int) *ScheduledEmailUpdateOne {
	_u.mutation.ResetRelatedID()
	_u.mutation.SetRelatedID(v)
	return _u
}

// SetNillableRelatedID sets the "related_id" field if the given value is not nil.
func (_u *ScheduledEmailUpdateOne) SetNillableRelatedID(v *int) *ScheduledEmailUpdateOne {
	if v != nil {
		_u.SetRelatedID(*v)
	}
	return _u
}

// AddRelatedID adds value to the "related_id" field.
func (_u *ScheduledEmailUpdateOne) AddRelatedID(v int) *ScheduledEmailUpdateOne {
	_u.mutation.AddRelatedID(v)
	return _u
}

// ClearRelatedID clears the value of the "related_id" field.
func (_u *ScheduledEmailUpdateOne) ClearRelatedID() *ScheduledEmailUpdateOne {
	_u.mutation.ClearRelatedID()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *ScheduledEmailUpdateOne) SetUpdatedAt(v time.Time) *ScheduledEmailUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetTemplate sets the "template" edge to the EmailTemplate entity.
func (_u *ScheduledEmailUpdateOne) SetTemplate(v *EmailTemplate) *ScheduledEmailUpdateOne {
	return _u.SetTemplateID(v.ID)
}

// AddLogIDs adds the "logs" edge to the ScheduledEmailLog entity by IDs.
func (_u *ScheduledEmailUpdateOne) AddLogIDs(ids ...uuid.UUID) *ScheduledEmailUpdateOne {
	_u.mutation.AddLogIDs(ids...)
	return _u
}

// AddLogs adds the "logs" edges to the ScheduledEmailLog entity.
func (_u *ScheduledEmailUpdateOne) AddLogs(v ...*ScheduledEmailLog) *ScheduledEmailUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddLogIDs(ids...)
}

// AddAttachmentIDs adds the "attachments" edge to the EmailAttachment entity by IDs.
func (_u *ScheduledEmailUpdateOne) AddAttachmentIDs(ids ...uuid.UUID) *ScheduledEmailUpdateOne {
	_u.mutation.AddAttachmentIDs(ids...)
	return _u
}

// AddAttachments adds the "attachments" edges to the EmailAttachment entity.
func (_u *ScheduledEmailUpdateOne) AddAttachments(v ...*EmailAttachment) *ScheduledEmailUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddAttachmentIDs(ids...)
}

// Mutation returns the ScheduledEmailMutation object of the builder.
func (_u *ScheduledEmailUpdateOne) Mutation() *ScheduledEmailMutation {
	return _u.mutation
}

// ClearTemplate clears the "template" edge to the EmailTemplate entity.
func (_u *ScheduledEmailUpdateOne) ClearTemplate() *ScheduledEmailUpdateOne {
	_u.mutation.ClearTemplate()
	return _u
}

// ClearLogs clears all "logs" edges to the ScheduledEmailLog entity.
func (_u *ScheduledEmailUpdateOne) ClearLogs() *ScheduledEmailUpdateOne {
	_u.mutation.ClearLogs()
	return _u
}

// RemoveLogIDs removes the "logs" edge to ScheduledEmailLog entities by IDs.
func (_u *ScheduledEmailUpdateOne) RemoveLogIDs(ids ...uuid.UUID) *ScheduledEmailUpdateOne {
	_u.mutation.RemoveLogIDs(ids...)
	return _u
}

// RemoveLogs removes "logs" edges to ScheduledEmailLog entities.
func (_u *ScheduledEmailUpdateOne) RemoveLogs(v ...*ScheduledEmailLog) *ScheduledEmailUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveLogIDs(ids...)
}

// ClearAttachments clears all "attachments" edges to the EmailAttachment entity.
func (_u *ScheduledEmailUpdateOne) ClearAttachments() *ScheduledEmailUpdateOne {
	_u.mutation.ClearAttachments()
	return _u
}

// RemoveAttachmentIDs removes the "attachments" edge to EmailAttachment entities by IDs.
func (_u *ScheduledEmailUpdateOne) RemoveAttachmentIDs(ids ...uuid.UUID) *ScheduledEmailUpdateOne {
	_u.mutation.RemoveAttachmentIDs(ids...)
	return _u
}

// RemoveAttachments removes "attachments" edges to EmailAttachment entities.
func (_u *ScheduledEmailUpdateOne) RemoveAttachments(v ...*EmailAttachment) *ScheduledEmailUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveAttachmentIDs(ids...)
}

// Where appends a list predicates to the ScheduledEmailUpdate builder.
func (_u *ScheduledEmailUpdateOne) Where(ps ...predicate.ScheduledEmail) *ScheduledEmailUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *ScheduledEmailUpdateOne) Select(field string, fields ...string) *ScheduledEmailUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated ScheduledEmail entity.
func (_u *ScheduledEmailUpdateOne) Save(ctx context.Context) (*ScheduledEmail, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ScheduledEmailUpdateOne) SaveX(ctx context.Context) *ScheduledEmail {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *ScheduledEmailUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ScheduledEmailUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *ScheduledEmailUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := scheduledemail.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ScheduledEmailUpdateOne) check() error {
	if v, ok := _u.mutation.State(); ok {
		if err := scheduledemail.StateValidator(v); err != nil {
			return &ValidationError{Name: "state", err: fmt.Errorf(`ent: validator failed for field "ScheduledEmail.state": %w`, err)}
		}
	}
	if v, ok := _u.mutation.FromHeader(); ok {
		if err := scheduledemail.FromHeaderValidator(v); err != nil {
			return &ValidationError{Name: "from_header", err: fmt.Errorf(`ent: validator failed for field "ScheduledEmail.from_header": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Subject(); ok {
		if err := scheduledemail.SubjectValidator(v); err != nil {
			return &ValidationError{Name: "subject", err: fmt.Errorf(`ent: validator failed for field "ScheduledEmail.subject": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Body(); ok {
		if err := scheduledemail.BodyValidator(v); err != nil {
			return &ValidationError{Name: "body", err: fmt.Errorf(`ent: validator failed for field "ScheduledEmail.body": %w`, err)}
		}
	}
	if v, ok := _u.mutation.RelatedTo(); ok {
		if err := scheduledemail.RelatedToValidator(v); err != nil {
			return &ValidationError{Name: "related_to", err: fmt.Errorf(`ent: validator failed for field "ScheduledEmail.related_to": %w`, err)}
		}
	}
	return nil
}

func (_u *ScheduledEmailUpdateOne) sqlSave(ctx context.Context) (_node *ScheduledEmail, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(scheduledemail.Table, scheduledemail.Columns, sqlgraph.NewFieldSpec(scheduledemail.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "ScheduledEmail.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, scheduledemail.FieldID)
		for _, f := range fields {
			if !scheduledemail.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != scheduledemail.FieldID {
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
	if value, ok := _u.mutation.State(); ok {
		_spec.SetField(scheduledemail.FieldState, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.ScheduledAt(); ok {
		_spec.SetField(scheduledemail.FieldScheduledAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.ToHeader(); ok {
		_spec.SetField(scheduledemail.FieldToHeader, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedToHeader(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, scheduledemail.FieldToHeader, value)
		})
	}
	if value, ok := _u.mutation.FromHeader(); ok {
		_spec.SetField(scheduledemail.FieldFromHeader, field.TypeString, value)
	}
	if value, ok := _u.mutation.ReplyToHeader(); ok {
		_spec.SetField(scheduledemail.FieldReplyToHeader, field.TypeString, value)
	}
	if _u.mutation.ReplyToHeaderCleared() {
		_spec.ClearField(scheduledemail.FieldReplyToHeader, field.TypeString)
	}
	if value, ok := _u.mutation.CcHeader(); ok {
		_spec.SetField(scheduledemail.FieldCcHeader, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedCcHeader(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, scheduledemail.FieldCcHeader, value)
		})
	}
	if _u.mutation.CcHeaderCleared() {
		_spec.ClearField(scheduledemail.FieldCcHeader, field.TypeJSON)
	}
	if value, ok := _u.mutation.BccHeader(); ok {
		_spec.SetField(scheduledemail.FieldBccHeader, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedBccHeader(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, scheduledemail.FieldBccHeader, value)
		})
	}
	if _u.mutation.BccHeaderCleared() {
		_spec.ClearField(scheduledemail.FieldBccHeader, field.TypeJSON)
	}
	if value, ok := _u.mutation.Subject(); ok {
		_spec.SetField(scheduledemail.FieldSubject, field.TypeString, value)
	}
	if value, ok := _u.mutation.Body(); ok {
		_spec.SetField(scheduledemail.FieldBody, field.TypeString, value)
	}
	if value, ok := _u.mutation.ContextJSON(); ok {
		_spec.SetField(scheduledemail.FieldContextJSON, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.ToHeaderContextJSON(); ok {
		_spec.SetField(scheduledemail.FieldToHeaderContextJSON, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedToHeaderContextJSON(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, scheduledemail.FieldToHeaderContextJSON, value)
		})
	}
	if value, ok := _u.mutation.RelatedTo(); ok {
		_spec.SetField(scheduledemail.FieldRelatedTo, field.TypeEnum, value)
	}
	if _u.mutation.RelatedToCleared() {
		_spec.ClearField(scheduledemail.FieldRelatedTo, field.TypeEnum)
	}
	if value, ok := _u.mutation.RelatedID(); ok {
		_spec.SetField(scheduledemail.FieldRelatedID, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedRelatedID(); ok {
		_spec.AddField(scheduledemail.FieldRelatedID, field.TypeInt, value)
	}
	if _u.mutation.RelatedIDCleared() {
		_spec.ClearField(scheduledemail.FieldRelatedID, field.TypeInt)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(scheduledemail.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.TemplateCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   scheduledemail.TemplateTable,
			Columns: []string{scheduledemail.TemplateColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(emailtemplate.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.TemplateIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   scheduledemail.TemplateTable,
			Columns: []string{scheduledemail.TemplateColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(emailtemplate.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.LogsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   scheduledemail.LogsTable,
			Columns: []string{scheduledemail.LogsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(scheduledemaillog.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedLogsIDs(); len(nodes) > 0 && !_u.mutation.LogsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   scheduledemail.LogsTable,
			Columns: []string{scheduledemail.LogsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(scheduledemaillog.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.LogsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   scheduledemail.LogsTable,
			Columns: []string{scheduledemail.LogsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(scheduledemaillog.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.AttachmentsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   scheduledemail.AttachmentsTable,
			Columns: []string{scheduledemail.AttachmentsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(emailattachment.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedAttachmentsIDs(); len(nodes) > 0 && !_u.mutation.AttachmentsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   scheduledemail.AttachmentsTable,
			Columns: []string{scheduledemail.AttachmentsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(emailattachment.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.AttachmentsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   scheduledemail.AttachmentsTable,
			Columns: []string{scheduledemail.AttachmentsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(emailattachment.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &ScheduledEmail{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{scheduledemail.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
