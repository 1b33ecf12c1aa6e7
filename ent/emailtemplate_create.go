// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/carpentries/mailflow/ent/emailtemplate"
	"github.com/carpentries/mailflow/ent/scheduledemail"
	"github.com/google/uuid"
)

// EmailTemplateCreate is the builder for creating a EmailTemplate entity.
type EmailTemplateCreate struct {
	config
	mutation *EmailTemplateMutation
	hooks    []Hook
}

// SetName sets the "name" field.
func (_c *EmailTemplateCreate) SetName(v string) *EmailTemplateCreate {
	_c.mutation.SetName(v)
	return _c
}

// SetSignal sets the "signal" field.
func (_c *EmailTemplateCreate) SetSignal(v string) *EmailTemplateCreate {
	_c.mutation.SetSignal(v)
	return _c
}

// SetActive sets the "active" field.
func (_c *EmailTemplateCreate) SetActive(v bool) *EmailTemplateCreate {
	_c.mutation.SetActive(v)
	return _c
}

// SetNillableActive sets the "active" field if the given value is not nil.
func (_c *EmailTemplateCreate) SetNillableActive(v *bool) *EmailTemplateCreate {
	if v != nil {
		_c.SetActive(*v)
	}
	return _c
}

// SetFromHeader sets the "from_header" field.
func (_c *EmailTemplateCreate) SetFromHeader(v string) *EmailTemplateCreate {
	_c.mutation.SetFromHeader(v)
	return _c
}

// SetReplyToHeader sets the "reply_to_header" field.
func (_c *EmailTemplateCreate) SetReplyToHeader(v string) *EmailTemplateCreate {
	_c.mutation.SetReplyToHeader(v)
	return _c
}

// SetNillableReplyToHeader sets the "reply_to_header" field if the given value is not nil.
func (_c *EmailTemplateCreate) SetNillableReplyToHeader(v *string) *EmailTemplateCreate {
	if v != nil {
		_c.SetReplyToHeader(*v)
	}
	return _c
}

// SetCcHeader sets the "cc_header" field.
func (_c *EmailTemplateCreate) SetCcHeader(v []string) *EmailTemplateCreate {
	_c.mutation.SetCcHeader(v)
	return _c
}

// SetBccHeader sets the "bcc_header" field.
func (_c *EmailTemplateCreate) SetBccHeader(v []string) *EmailTemplateCreate {
	_c.mutation.SetBccHeader(v)
	return _c
}

// SetSubject sets the "subject" field.
func (_c *EmailTemplateCreate) SetSubject(v string) *EmailTemplateCreate {
	_c.mutation.SetSubject(v)
	return _c
}

// SetBody sets the "body" field.
func (_c *EmailTemplateCreate) SetBody(v string) *EmailTemplateCreate {
	_c.mutation.SetBody(v)
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *EmailTemplateCreate) SetCreatedAt(v time.Time) *EmailTemplateCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *EmailTemplateCreate) SetNillableCreatedAt(v *time.Time) *EmailTemplateCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *EmailTemplateCreate) SetUpdatedAt(v time.Time) *EmailTemplateCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *EmailTemplateCreate) SetNillableUpdatedAt(v *time.Time) *EmailTemplateCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *EmailTemplateCreate) SetID(v uuid.UUID) *EmailTemplateCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *EmailTemplateCreate) SetNillableID(v *uuid.UUID) *EmailTemplateCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// AddScheduledEmailIDs adds the "scheduled_emails" edge to the ScheduledEmail entity by IDs.
func (_c *EmailTemplateCreate) AddScheduledEmailIDs(ids ...uuid.UUID) *EmailTemplateCreate {
	_c.mutation.AddScheduledEmailIDs(ids...)
	return _c
}

// AddScheduledEmails adds the "scheduled_emails" edges to the ScheduledEmail entity.
func (_c *EmailTemplateCreate) AddScheduledEmails(v ...*ScheduledEmail) *EmailTemplateCreate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddScheduledEmailIDs(ids...)
}

// Mutation returns the EmailTemplateMutation object of the builder.
func (_c *EmailTemplateCreate) Mutation() *EmailTemplateMutation {
	return _c.mutation
}

// Save creates the EmailTemplate in the database.
func (_c *EmailTemplateCreate) Save(ctx context.Context) (*EmailTemplate, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *EmailTemplateCreate) SaveX(ctx context.Context) *EmailTemplate {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *EmailTemplateCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *EmailTemplateCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *EmailTemplateCreate) defaults() {
	if _, ok := _c.mutation.Active(); !ok {
		v := emailtemplate.DefaultActive
		_c.mutation.SetActive(v)
	}
	if _, ok := _c.mutation.ReplyToHeader(); !ok {
		v := emailtemplate.DefaultReplyToHeader
		_c.mutation.SetReplyToHeader(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := emailtemplate.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := emailtemplate.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := emailtemplate.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *EmailTemplateCreate) check() error {
	if _, ok := _c.mutation.Name(); !ok {
		return &ValidationError{Name: "name", err: errors.New(`ent: missing required field "EmailTemplate.name"`)}
	}
	if v, ok := _c.mutation.Name(); ok {
		if err := emailtemplate.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`ent: validator failed for field "EmailTemplate.name": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Signal(); !ok {
		return &ValidationError{Name: "signal", err: errors.New(`ent: missing required field "EmailTemplate.signal"`)}
	}
	if v, ok := _c.mutation.Signal(); ok {
		if err := emailtemplate.SignalValidator(v); err != nil {
			return &ValidationError{Name: "signal", err: fmt.Errorf(`ent: validator failed for field "EmailTemplate.signal": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Active(); !ok {
		return &ValidationError{Name: "active", err: errors.New(`ent: missing required field "EmailTemplate.active"`)}
	}
	if _, ok := _c.mutation.FromHeader(); !ok {
		return &ValidationError{Name: "from_header", err: errors.New(`ent: missing required field "EmailTemplate.from_header"`)}
	}
	if v, ok := _c.mutation.FromHeader(); ok {
		if err := emailtemplate.FromHeaderValidator(v); err != nil {
			return &ValidationError{Name: "from_header", err: fmt.Errorf(`ent: validator failed for field "EmailTemplate.from_header": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Subject(); !ok {
		return &ValidationError{Name: "subject", err: errors.New(`ent: missing required field "EmailTemplate.subject"`)}
	}
	if v, ok := _c.mutation.Subject(); ok {
		if err := emailtemplate.SubjectValidator(v); err != nil {
			return &ValidationError{Name: "subject", err: fmt.Errorf(`ent: validator failed for field "EmailTemplate.subject": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Body(); !ok {
		return &ValidationError{Name: "body", err: errors.New(`ent: missing required field "EmailTemplate.body"`)}
	}
	if v, ok := _c.mutation.Body(); ok {
		if err := emailtemplate.BodyValidator(v); err != nil {
			return &ValidationError{Name: "body", err: fmt.Errorf(`ent: validator failed for field "EmailTemplate.body": %w`, err)}
		}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "EmailTemplate.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "EmailTemplate.updated_at"`)}
	}
	return nil
}

func (_c *EmailTemplateCreate) sqlSave(ctx context.Context) (*EmailTemplate, error) {
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

func (_c *EmailTemplateCreate) createSpec() (*EmailTemplate, *sqlgraph.CreateSpec) {
	var (
		_node = &EmailTemplate{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(emailtemplate.Table, sqlgraph.NewFieldSpec(emailtemplate.FieldID, field.TypeUUID))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.Name(); ok {
		_spec.SetField(emailtemplate.FieldName, field.TypeString, value)
		_node.Name = value
	}
	if value, ok := _c.mutation.Signal(); ok {
		_spec.SetField(emailtemplate.FieldSignal, field.TypeString, value)
		_node.Signal = value
	}
	if value, ok := _c.mutation.Active(); ok {
		_spec.SetField(emailtemplate.FieldActive, field.TypeBool, value)
		_node.Active = value
	}
	if value, ok := _c.mutation.FromHeader(); ok {
		_spec.SetField(emailtemplate.FieldFromHeader, field.TypeString, value)
		_node.FromHeader = value
	}
	if value, ok := _c.mutation.ReplyToHeader(); ok {
		_spec.SetField(emailtemplate.FieldReplyToHeader, field.TypeString, value)
		_node.ReplyToHeader = value
	}
	if value, ok := _c.mutation.CcHeader(); ok {
		_spec.SetField(emailtemplate.FieldCcHeader, field.TypeJSON, value)
		_node.CcHeader = value
	}
	if value, ok := _c.mutation.BccHeader(); ok {
		_spec.SetField(emailtemplate.FieldBccHeader, field.TypeJSON, value)
		_node.BccHeader = value
	}
	if value, ok := _c.mutation.Subject(); ok {
		_spec.SetField(emailtemplate.FieldSubject, field.TypeString, value)
		_node.Subject = value
	}
	if value, ok := _c.mutation.Body(); ok {
		_spec.SetField(emailtemplate.FieldBody, field.TypeString, value)
		_node.Body = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(emailtemplate.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(emailtemplate.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if nodes := _c.mutation.ScheduledEmailsIDs(); len(nodes) > 0 {
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
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// EmailTemplateCreateBulk is the builder for creating many EmailTemplate entities in bulk.
type EmailTemplateCreateBulk struct {
	config
	err      error
	builders []*EmailTemplateCreate
}

// Save creates the EmailTemplate entities in the database.
func (_c *EmailTemplateCreateBulk) Save(ctx context.Context) ([]*EmailTemplate, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*EmailTemplate, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*EmailTemplateMutation)
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
func (_c *EmailTemplateCreateBulk) SaveX(ctx context.Context) []*EmailTemplate {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *EmailTemplateCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *EmailTemplateCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
