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
	"github.com/carpentries/mailflow/ent/scheduledemail"
	"github.com/google/uuid"
)

// EmailAttachmentCreate is the builder for creating a EmailAttachment entity.
type EmailAttachmentCreate struct {
	config
	mutation *EmailAttachmentMutation
	hooks    []Hook
}

// SetFilename sets the "filename" field.
func (_c *EmailAttachmentCreate) SetFilename(v string) *EmailAttachmentCreate {
	_c.mutation.SetFilename(v)
	return _c
}

// SetS3Bucket sets the "s3_bucket" field.
func (_c *EmailAttachmentCreate) SetS3Bucket(v string) *EmailAttachmentCreate {
	_c.mutation.SetS3Bucket(v)
	return _c
}

// SetS3Path sets the "s3_path" field.
func (_c *EmailAttachmentCreate) SetS3Path(v string) *EmailAttachmentCreate {
	_c.mutation.SetS3Path(v)
	return _c
}

// SetPresignedURL sets the "presigned_url" field.
func (_c *EmailAttachmentCreate) SetPresignedURL(v string) *EmailAttachmentCreate {
	_c.mutation.SetPresignedURL(v)
	return _c
}

// SetNillablePresignedURL sets the "presigned_url" field if the given value is not nil.
func (_c *EmailAttachmentCreate) SetNillablePresignedURL(v *string) *EmailAttachmentCreate {
	if v != nil {
		_c.SetPresignedURL(*v)
	}
	return _c
}

// SetPresignedURLExpiration sets the "presigned_url_expiration" field.
func (_c *EmailAttachmentCreate) SetPresignedURLExpiration(v time.Time) *EmailAttachmentCreate {
	_c.mutation.SetPresignedURLExpiration(v)
	return _c
}

// SetNillablePresignedURLExpiration sets the "presigned_url_expiration" field if the given value is not nil.
func (_c *EmailAttachmentCreate) SetNillablePresignedURLExpiration(v *time.Time) *EmailAttachmentCreate {
	if v != nil {
		_c.SetPresignedURLExpiration(*v)
	}
	return _c
}

// SetScheduledEmailID sets the "scheduled_email_id" field.
func (_c *EmailAttachmentCreate) SetScheduledEmailID(v uuid.UUID) *EmailAttachmentCreate {
	_c.mutation.SetScheduledEmailID(v)
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *EmailAttachmentCreate) SetCreatedAt(v time.Time) *EmailAttachmentCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *EmailAttachmentCreate) SetNillableCreatedAt(v *time.Time) *EmailAttachmentCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *EmailAttachmentCreate) SetUpdatedAt(v time.Time) *EmailAttachmentCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *EmailAttachmentCreate) SetNillableUpdatedAt(v *time.Time) *EmailAttachmentCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *EmailAttachmentCreate) SetID(v uuid.UUID) *EmailAttachmentCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *EmailAttachmentCreate) SetNillableID(v *uuid.UUID) *EmailAttachmentCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// SetEmailID sets the "email" edge to the ScheduledEmail entity by ID.
func (_c *EmailAttachmentCreate) SetEmailID(id uuid.UUID) *EmailAttachmentCreate {
	_c.mutation.SetEmailID(id)
	return _c
}

// SetEmail sets the "email" edge to the ScheduledEmail entity.
func (_c *EmailAttachmentCreate) SetEmail(v *ScheduledEmail) *EmailAttachmentCreate {
	return _c.SetEmailID(v.ID)
}

// Mutation returns the EmailAttachmentMutation object of the builder.
func (_c *EmailAttachmentCreate) Mutation() *EmailAttachmentMutation {
	return _c.mutation
}

// Save creates the EmailAttachment in the database.
func (_c *EmailAttachmentCreate) Save(ctx context.Context) (*EmailAttachment, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *EmailAttachmentCreate) SaveX(ctx context.Context) *EmailAttachment {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *EmailAttachmentCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *EmailAttachmentCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *EmailAttachmentCreate) defaults() {
	if _, ok := _c.mutation.PresignedURL(); !ok {
		v := emailattachment.DefaultPresignedURL
		_c.mutation.SetPresignedURL(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := emailattachment.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := emailattachment.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := emailattachment.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *EmailAttachmentCreate) check() error {
	if _, ok := _c.mutation.Filename(); !ok {
		return &ValidationError{Name: "filename", err: errors.New(`ent: missing required field "EmailAttachment.filename"`)}
	}
	if v, ok := _c.mutation.Filename(); ok {
		if err := emailattachment.FilenameValidator(v); err != nil {
			return &ValidationError{Name: "filename", err: fmt.Errorf(`ent: validator failed for field "EmailAttachment.filename": %w`, err)}
		}
	}
	if _, ok := _c.mutation.S3Bucket(); !ok {
		return &ValidationError{Name: "s3_bucket", err: errors.New(`ent: missing required field "EmailAttachment.s3_bucket"`)}
	}
	if v, ok := _c.mutation.S3Bucket(); ok {
		if err := emailattachment.S3BucketValidator(v); err != nil {
			return &ValidationError{Name: "s3_bucket", err: fmt.Errorf(`ent: validator failed for field "EmailAttachment.s3_bucket": %w`, err)}
		}
	}
	if _, ok := _c.mutation.S3Path(); !ok {
		return &ValidationError{Name: "s3_path", err: errors.New(`ent: missing required field "EmailAttachment.s3_path"`)}
	}
	if v, ok := _c.mutation.S3Path(); ok {
		if err := emailattachment.S3PathValidator(v); err != nil {
			return &ValidationError{Name: "s3_path", err: fmt.Errorf(`ent: validator failed for field "EmailAttachment.s3_path": %w`, err)}
		}
	}
	if _, ok := _c.mutation.ScheduledEmailID(); !ok {
		return &ValidationError{Name: "scheduled_email_id", err: errors.New(`ent: missing required field "EmailAttachment.scheduled_email_id"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "EmailAttachment.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "EmailAttachment.updated_at"`)}
	}
	if len(_c.mutation.EmailIDs()) == 0 {
		return &ValidationError{Name: "email", err: errors.New(`ent: missing required edge "EmailAttachment.email"`)}
	}
	return nil
}

func (_c *EmailAttachmentCreate) sqlSave(ctx context.Context) (*EmailAttachment, error) {
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

func (_c *EmailAttachmentCreate) createSpec() (*EmailAttachment, *sqlgraph.CreateSpec) {
	var (
		_node = &EmailAttachment{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(emailattachment.Table, sqlgraph.NewFieldSpec(emailattachment.FieldID, field.TypeUUID))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.Filename(); ok {
		_spec.SetField(emailattachment.FieldFilename, field.TypeString, value)
		_node.Filename = value
	}
	if value, ok := _c.mutation.S3Bucket(); ok {
		_spec.SetField(emailattachment.FieldS3Bucket, field.TypeString, value)
		_node.S3Bucket = value
	}
	if value, ok := _c.mutation.S3Path(); ok {
		_spec.SetField(emailattachment.FieldS3Path, field.TypeString, value)
		_node.S3Path = value
	}
	if value, ok := _c.mutation.PresignedURL(); ok {
		_spec.SetField(emailattachment.FieldPresignedURL, field.TypeString, value)
		_node.PresignedURL = value
	}
	if value, ok := _c.mutation.PresignedURLExpiration(); ok {
		_spec.SetField(emailattachment.FieldPresignedURLExpiration, field.TypeTime, value)
		_node.PresignedURLExpiration = &value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(emailattachment.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(emailattachment.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if nodes := _c.mutation.EmailIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   emailattachment.EmailTable,
			Columns: []string{emailattachment.EmailColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(scheduledemail.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.ScheduledEmailID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// EmailAttachmentCreateBulk is the builder for creating many EmailAttachment entities in bulk.
type EmailAttachmentCreateBulk struct {
	config
	err      error
	builders []*EmailAttachmentCreate
}

// Save creates the EmailAttachment entities in the database.
func (_c *EmailAttachmentCreateBulk) Save(ctx context.Context) ([]*EmailAttachment, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*EmailAttachment, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*EmailAttachmentMutation)
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
func (_c *EmailAttachmentCreateBulk) SaveX(ctx context.Context) []*EmailAttachment {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *EmailAttachmentCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *EmailAttachmentCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
