// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/carpentries/mailflow/ent/emailattachment"
	"github.com/carpentries/mailflow/ent/emailtemplate"
	"github.com/carpentries/mailflow/ent/scheduledemail"
	"github.com/carpentries/mailflow/ent/scheduledemaillog"
	"github.com/carpentries/mailflow/pkg/models"
	"github.com/google/uuid"
)

// ScheduledEmailCreate is the builder for creating a ScheduledEmail entity.
type ScheduledEmailCreate struct {
	config
	mutation *ScheduledEmailMutation
	hooks    []Hook
}

// SetState sets the "state" field.
func (_c *ScheduledEmailCreate) SetState(v scheduledemail.State) *ScheduledEmailCreate {
	_c.mutation.SetState(v)
	return _c
}

// SetNillableState sets the "state" field if the given value is not nil.
func (_c *ScheduledEmailCreate) SetNillableState(v *scheduledemail.State) *ScheduledEmailCreate {
	if v != nil {
		_c.SetState(*v)
	}
	return _c
}

// SetScheduledAt sets the "scheduled_at" field.
func (_c *ScheduledEmailCreate) SetScheduledAt(v time.Time) *ScheduledEmailCreate {
	_c.mutation.SetScheduledAt(v)
	return _c
}

// SetToHeader sets the "to_header" field.
func (_c *ScheduledEmailCreate) SetToHeader(v []string) *ScheduledEmailCreate {
	_c.mutation.SetToHeader(v)
	return _c
}

// SetFromHeader sets the "from_header" field.
func (_c *ScheduledEmailCreate) SetFromHeader(v string) *ScheduledEmailCreate {
	_c.mutation.SetFromHeader(v)
	return _c
}

// SetReplyToHeader sets the "reply_to_header" field.
func (_c *ScheduledEmailCreate) SetReplyToHeader(v string) *ScheduledEmailCreate {
	_c.mutation.SetReplyToHeader(v)
	return _c
}

// SetNillableReplyToHeader sets the "reply_to_header" field if the given value is not nil.
func (_c *ScheduledEmailCreate) SetNillableReplyToHeader(v *string) *ScheduledEmailCreate {
	if v != nil {
		_c.SetReplyToHeader(*v)
	}
	return _c
}

// SetCcHeader sets the "cc_header" field.
func (_c *ScheduledEmailCreate) SetCcHeader(v []string) *ScheduledEmailCreate {
	_c.mutation.SetCcHeader(v)
	return _c
}

// SetBccHeader sets the "bcc_header" field.
func (_c *ScheduledEmailCreate) SetBccHeader(v []string) *ScheduledEmailCreate {
	_c.mutation.SetBccHeader(v)
	return _c
}

// SetSubject sets the "subject" field.
func (_c *ScheduledEmailCreate) SetSubject(v string) *ScheduledEmailCreate {
	_c.mutation.SetSubject(v)
	return _c
}

// SetBody sets the "body" field.
func (_c *ScheduledEmailCreate) SetBody(v string) *ScheduledEmailCreate {
	_c.mutation.SetBody(v)
	return _c
}

// SetContextJSON sets the "context_json" field.
func (_c *ScheduledEmailCreate) SetContextJSON(v map[string]interface{}) *ScheduledEmailCreate {
	_c.mutation.SetContextJSON(v)
	return _c
}

// SetToHeaderContextJSON sets the "to_header_context_json" field.
func (_c *ScheduledEmailCreate) SetToHeaderContextJSON(v []models.ToHeaderRef) *ScheduledEmailCreate {
	_c.mutation.SetToHeaderContextJSON(v)
	return _c
}

// SetTemplateID sets the "template_id" field.
func (_c *ScheduledEmailCreate) SetTemplateID(v uuid.UUID) *ScheduledEmailCreate {
	_c.mutation.SetTemplateID(v)
	return _c
}

// SetNillableTemplateID sets the "template_id" field if the given value is not nil.
func (_c *ScheduledEmailCreate) SetNillableTemplateID(v *uuid.UUID) *ScheduledEmailCreate {
	if v != nil {
		_c.SetTemplateID(*v)
	}
	return _c
}

// SetRelatedTo sets the "related_to" field.
func (_c *ScheduledEmailCreate) SetRelatedTo(v scheduledemail.RelatedTo) *ScheduledEmailCreate {
	_c.mutation.SetRelatedTo(v)
	return _c
}

// SetNillableRelatedTo sets the "related_to" field if the given value is not nil.
func (_c *ScheduledEmailCreate) SetNillableRelatedTo(v *scheduledemail.RelatedTo) *ScheduledEmailCreate {
	if v != nil {
		_c.SetRelatedTo(*v)
	}
	return _c
}

// SetRelatedID sets the "related_id" field.
func (_c *ScheduledEmailCreate) SetRelatedID(v int) *ScheduledEmailCreate {
	_c.mutation.SetRelatedID(v)
	return _c
}

// SetNillableRelatedID sets the "related_id" field if the given value is not nil.
func (_c *ScheduledEmailCreate) SetNillableRelatedID(v *int) *ScheduledEmailCreate {
	if v != nil {
		_c.SetRelatedID(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *ScheduledEmailCreate) SetCreatedAt(v time.Time) *ScheduledEmailCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *ScheduledEmailCreate) SetNillableCreatedAt(v *time.Time) *ScheduledEmailCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *ScheduledEmailCreate) SetUpdatedAt(v time.Time) *ScheduledEmailCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *ScheduledEmailCreate) SetNillableUpdatedAt(v *time.Time) *ScheduledEmailCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *ScheduledEmailCreate) SetID(v uuid.UUID) *ScheduledEmailCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *ScheduledEmailCreate) SetNillableID(v *uuid.UUID) *ScheduledEmailCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// SetTemplate sets the "template" edge to the EmailTemplate entity.
func (_c *ScheduledEmailCreate) SetTemplate(v *EmailTemplate) *ScheduledEmailCreate {
	return _c.SetTemplateID(v.ID)
}

// AddLogIDs adds the "logs" edge to the ScheduledEmailLog entity by IDs.
func (_c *ScheduledEmailCreate) AddLogIDs(ids ...uuid.UUID) *ScheduledEmailCreate {
	_c.mutation.AddLogIDs(ids...)
	return _c
}

// AddLogs adds the "logs" edges to the ScheduledEmailLog entity.
func (_c *ScheduledEmailCreate) AddLogs(v ...*ScheduledEmailLog) *ScheduledEmailCreate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddLogIDs(ids...)
}

// AddAttachmentIDs adds the "attachments" edge to the EmailAttachment entity by IDs.
func (_c *ScheduledEmailCreate) AddAttachmentIDs(ids ...uuid.UUID) *ScheduledEmailCreate {
	_c.mutation.AddAttachmentIDs(ids...)
	return _c
}

// AddAttachments adds the "attachments" edges to the EmailAttachment entity.
func (_c *ScheduledEmailCreate) AddAttachments(v ...*EmailAttachment) *ScheduledEmailCreate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddAttachmentIDs(ids...)
}

// Mutation returns the ScheduledEmailMutation object of the builder.
func (_c *ScheduledEmailCreate) Mutation() *ScheduledEmailMutation {
	return _c.mutation
}

// Save creates the ScheduledEmail in the database.
func (_c *ScheduledEmailCreate) Save(ctx context.Context) (*ScheduledEmail, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *ScheduledEmailCreate) SaveX(ctx context.Context) *ScheduledEmail {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ScheduledEmailCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ScheduledEmailCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *ScheduledEmailCreate) defaults() {
	if _, ok := _c.mutation.State(); !ok {
		v := scheduledemail.DefaultState
		_c.mutation.SetState(v)
	}
	if _, ok := _c.mutation.ReplyToHeader(); !ok {
		v := scheduledemail.DefaultReplyToHeader
		_c.mutation.SetReplyToHeader(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := scheduledemail.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := scheduledemail.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := scheduledemail.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *ScheduledEmailCreate) check() error {
	if _, ok := _c.mutation.State(); !ok {
		return &ValidationError{Name: "state", err: errors.New(`ent: missing required field "ScheduledEmail.state"`)}
	}
	if v, ok := _c.mutation.State(); ok {
		if err := scheduledemail.StateValidator(v); err != nil {
			return &ValidationError{Name: "state", err: fmt.Errorf(`ent: validator failed for field "ScheduledEmail.state": %w`, err)}
		}
	}
	if _, ok := _c.mutation.ScheduledAt(); !ok {
		return &ValidationError{Name: "scheduled_at", err: errors.New(`ent: missing required field "ScheduledEmail.scheduled_at"`)}
	}
	if _, ok := _c.mutation.ToHeader(); !ok {
		return &ValidationError{Name: "to_header", err: errors.New(`ent: missing required field "ScheduledEmail.to_header"`)}
	}
	if _, ok := _c.mutation.FromHeader(); !ok {
		return &ValidationError{Name: "from_header", err: errors.New(`ent: missing required field "ScheduledEmail.from_header"`)}
	}
	if v, ok := _c.mutation.FromHeader(); ok {
		if err := scheduledemail.FromHeaderValidator(v); err != nil {
			return &ValidationError{Name: "from_header", err: fmt.Errorf(`ent: validator failed for field "ScheduledEmail.from_header": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Subject(); !ok {
		return &ValidationError{Name: "subject", err: errors.New(`ent: missing required field "ScheduledEmail.subject"`)}
	}
	if v, ok := _c.mutation.Subject(); ok {
		if err := scheduledemail.SubjectValidator(v); err != nil {
			return &ValidationError{Name: "subject", err: fmt.Errorf(`ent: validator failed for field "ScheduledEmail.subject": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Body(); !ok {
		return &ValidationError{Name: "body", err: errors.New(`ent: missing required field "ScheduledEmail.body"`)}
	}
	if v, ok := _c.mutation.Body(); ok {
		if err := scheduledemail.BodyValidator(v); err != nil {
			return &ValidationError{Name: "body", err: fmt.Errorf(`ent: validator failed for field "ScheduledEmail.body": %w`, err)}
		}
	}
	if _, ok := _c.mutation.ContextJSON(); !ok {
		return &ValidationError{Name: "context_json", err: errors.New(`ent: missing required field "ScheduledEmail.context_json"`)}
	}
	if _, ok := _c.mutation.ToHeaderContextJSON(); !ok {
		return &ValidationError{Name: "to_header_context_json", err: errors.New(`ent: missing required field "ScheduledEmail.to_header_context_json"`)}
	}
	if v, ok := _c.mutation.RelatedTo(); ok {
		if err := scheduledemail.RelatedToValidator(v); err != nil {
			return &ValidationError{Name: "related_to", err: fmt.Errorf(`ent: validator failed for field "ScheduledEmail.related_to": %w`, err)}
		}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "ScheduledEmail.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "ScheduledEmail.updated_at"`)}
	}
	return nil
}

func (_c *ScheduledEmailCreate) sqlSave(ctx context.Context) (*ScheduledEmail, error) {
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
	if _spec.ID.Value != nil {
		if id, ok := _spec.ID.Value.(*uuid.UUID); ok {
			_node.ID = *id
		} else if err := _node.ID.Scan(_spec.ID.Value); err != nil {
			return nil, err
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *ScheduledEmailCreate) createSpec() (*ScheduledEmail, *sqlgraph.CreateSpec) {
	var (
		_node = &ScheduledEmail{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(scheduledemail.Table, sqlgraph.NewFieldSpec(scheduledemail.FieldID, field.TypeUUID))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.State(); ok {
		_spec.SetField(scheduledemail.FieldState, field.TypeEnum, value)
		_node.State = value
	}
	if value, ok := _c.mutation.ScheduledAt(); ok {
		_spec.SetField(scheduledemail.FieldScheduledAt, field.TypeTime, value)
		_node.ScheduledAt = value
	}
	if value, ok := _c.mutation.ToHeader(); ok {
		_spec.SetField(scheduledemail.FieldToHeader, field.TypeJSON, value)
		_node.ToHeader = value
	}
	if value, ok := _c.mutation.FromHeader(); ok {
		_spec.SetField(scheduledemail.FieldFromHeader, field.TypeString, value)
		_node.FromHeader = value
	}
	if value, ok := _c.mutation.ReplyToHeader(); ok {
		_spec.SetField(scheduledemail.FieldReplyToHeader, field.TypeString, value)
		_node.ReplyToHeader = value
	}
	if value, ok := _c.mutation.CcHeader(); ok {
		_spec.SetField(scheduledemail.FieldCcHeader, field.TypeJSON, value)
		_node.CcHeader = value
	}
	if value, ok := _c.mutation.BccHeader(); ok {
		_spec.SetField(scheduledemail.FieldBccHeader, field.TypeJSON, value)
		_node.BccHeader = value
	}
	if value, ok := _c.mutation.Subject(); ok {
		_spec.SetField(scheduledemail.FieldSubject, field.TypeString, value)
		_node.Subject = value
	}
	if value, ok := _c.mutation.Body(); ok {
		_spec.SetField(scheduledemail.FieldBody, field.TypeString, value)
		_node.Body = value
	}
	if value, ok := _c.mutation.ContextJSON(); ok {
		_spec.SetField(scheduledemail.FieldContextJSON, field.TypeJSON, value)
		_node.ContextJSON = value
	}
	if value, ok := _c.mutation.ToHeaderContextJSON(); ok {
		_spec.SetField(scheduledemail.FieldToHeaderContextJSON, field.TypeJSON, value)
		_node.ToHeaderContextJSON = value
	}
	if value, ok := _c.mutation.RelatedTo(); ok {
		_spec.SetField(scheduledemail.FieldRelatedTo, field.TypeEnum, value)
		_node.RelatedTo = value
	}
	if value, ok := _c.mutation.RelatedID(); ok {
		_spec.SetField(scheduledemail.FieldRelatedID, field.TypeInt, value)
		_node.RelatedID = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(scheduledemail.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(scheduledemail.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if nodes := _c.mutation.TemplateIDs(); len(nodes) > 0 {
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
		_node.TemplateID = &nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.LogsIDs(); len(nodes) > 0 {
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
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.AttachmentsIDs(); len(nodes) > 0 {
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
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// ScheduledEmailCreateBulk is the builder for creating many ScheduledEmail entities in bulk.
type ScheduledEmailCreateBulk struct {
	config
	err      error
	builders []*ScheduledEmailCreate
}

// Save creates the ScheduledEmail entities in the database.
func (_c *ScheduledEmailCreateBulk) Save(ctx context.Context) ([]*ScheduledEmail, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*ScheduledEmail, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*ScheduledEmailMutation)
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
func (_c *ScheduledEmailCreateBulk) SaveX(ctx context.Context) []*ScheduledEmail {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ScheduledEmailCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ScheduledEmailCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
