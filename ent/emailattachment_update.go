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
	"github.com/carpentries/mailflow/ent/emailattachment"
	"github.com/carpentries/mailflow/ent/predicate"
)

// EmailAttachmentUpdate is the builder for updating EmailAttachment entities.
type EmailAttachmentUpdate struct {
	config
	hooks    []Hook
	mutation *EmailAttachmentMutation
}

// Where appends a list predicates to the EmailAttachmentUpdate builder.
func (_u *EmailAttachmentUpdate) Where(ps ...predicate.EmailAttachment) *EmailAttachmentUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetFilename sets the "filename" field.
func (_u *EmailAttachmentUpdate) SetFilename(v string) *EmailAttachmentUpdate {
	_u.mutation.SetFilename(v)
	return _u
}

// SetNillableFilename sets the "filename" field if the given value is not nil.
func (_u *EmailAttachmentUpdate) SetNillableFilename(v *string) *EmailAttachmentUpdate {
	if v != nil {
		_u.SetFilename(*v)
	}
	return _u
}

// SetS3Bucket sets the "s3_bucket" field.
func (_u *EmailAttachmentUpdate) SetS3Bucket(v string) *EmailAttachmentUpdate {
	_u.mutation.SetS3Bucket(v)
	return _u
}

// SetNillableS3Bucket sets the "s3_bucket" field if the given value is not nil.
func (_u *EmailAttachmentUpdate) SetNillableS3Bucket(v *string) *EmailAttachmentUpdate {
	if v != nil {
		_u.SetS3Bucket(*v)
	}
	return _u
}

// SetS3Path sets the "s3_path" field.
func (_u *EmailAttachmentUpdate) SetS3Path(v string) *EmailAttachmentUpdate {
	_u.mutation.SetS3Path(v)
	return _u
}

// SetNillableS3Path sets the "s3_path" field if the given value is not nil.
func (_u *EmailAttachmentUpdate) SetNillableS3Path(v *string) *EmailAttachmentUpdate {
	if v != nil {
		_u.SetS3Path(*v)
	}
	return _u
}

// SetPresignedURL sets the "presigned_url" field.
func (_u *EmailAttachmentUpdate) SetPresignedURL(v string) *EmailAttachmentUpdate {
	_u.mutation.SetPresignedURL(v)
	return _u
}

// SetNillablePresignedURL sets the "presigned_url" field if the given value is not nil.
func (_u *EmailAttachmentUpdate) SetNillablePresignedURL(v *string) *EmailAttachmentUpdate {
	if v != nil {
		_u.SetPresignedURL(*v)
	}
	return _u
}

// ClearPresignedURL clears the value of the "presigned_url" field.
func (_u *EmailAttachmentUpdate) ClearPresignedURL() *EmailAttachmentUpdate {
	_u.mutation.ClearPresignedURL()
	return _u
}

// SetPresignedURLExpiration sets the "presigned_url_expiration" field.
func (_u *EmailAttachmentUpdate) SetPresignedURLExpiration(v time.Time) *EmailAttachmentUpdate {
	_u.mutation.SetPresignedURLExpiration(v)
	return _u
}

// SetNillablePresignedURLExpiration sets the "presigned_url_expiration" field if the given value is not nil.
func (_u *EmailAttachmentUpdate) SetNillablePresignedURLExpiration(v *time.Time) *EmailAttachmentUpdate {
	if v != nil {
		_u.SetPresignedURLExpiration(*v)
	}
	return _u
}

// ClearPresignedURLExpiration clears the value of the "presigned_url_expiration" field.
func (_u *EmailAttachmentUpdate) ClearPresignedURLExpiration() *EmailAttachmentUpdate {
	_u.mutation.ClearPresignedURLExpiration()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *EmailAttachmentUpdate) SetUpdatedAt(v time.Time) *EmailAttachmentUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the EmailAttachmentMutation object of the builder.
func (_u *EmailAttachmentUpdate) Mutation() *EmailAttachmentMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *EmailAttachmentUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *EmailAttachmentUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *EmailAttachmentUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *EmailAttachmentUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *EmailAttachmentUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := emailattachment.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *EmailAttachmentUpdate) check() error {
	if v, ok := _u.mutation.Filename(); ok {
		if err := emailattachment.FilenameValidator(v); err != nil {
			return &ValidationError{Name: "filename", err: fmt.Errorf(`ent: validator failed for field "EmailAttachment.filename": %w`, err)}
		}
	}
	if v, ok := _u.mutation.S3Bucket(); ok {
		if err := emailattachment.S3BucketValidator(v); err != nil {
			return &ValidationError{Name: "s3_bucket", err: fmt.Errorf(`ent: validator failed for field "EmailAttachment.s3_bucket": %w`, err)}
		}
	}
	if v, ok := _u.mutation.S3Path(); ok {
		if err := emailattachment.S3PathValidator(v); err != nil {
			return &ValidationError{Name: "s3_path", err: fmt.Errorf(`ent: validator failed for field "EmailAttachment.s3_path": %w`, err)}
		}
	}
	if _u.mutation.EmailCleared() && len(_u.mutation.EmailIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "EmailAttachment.email"`)
	}
	return nil
}

func (_u *EmailAttachmentUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(emailattachment.Table, emailattachment.Columns, sqlgraph.NewFieldSpec(emailattachment.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Filename(); ok {
		_spec.SetField(emailattachment.FieldFilename, field.TypeString, value)
	}
	if value, ok := _u.mutation.S3Bucket(); ok {
		_spec.SetField(emailattachment.FieldS3Bucket, field.TypeString, value)
	}
	if value, ok := _u.mutation.S3Path(); ok {
		_spec.SetField(emailattachment.FieldS3Path, field.TypeString, value)
	}
	if value, ok := _u.mutation.PresignedURL(); ok {
		_spec.SetField(emailattachment.FieldPresignedURL, field.TypeString, value)
	}
	if _u.mutation.PresignedURLCleared() {
		_spec.ClearField(emailattachment.FieldPresignedURL, field.TypeString)
	}
	if value, ok := _u.mutation.PresignedURLExpiration(); ok {
		_spec.SetField(emailattachment.FieldPresignedURLExpiration, field.TypeTime, value)
	}
	if _u.mutation.PresignedURLExpirationCleared() {
		_spec.ClearField(emailattachment.FieldPresignedURLExpiration, field.TypeTime)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(emailattachment.FieldUpdatedAt, field.TypeTime, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{emailattachment.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// EmailAttachmentUpdateOne is the builder for updating a single EmailAttachment entity.
type EmailAttachmentUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *EmailAttachmentMutation
}

// SetFilename sets the "filename" field.
func (_u *EmailAttachmentUpdateOne) SetFilename(v string) *EmailAttachmentUpdateOne {
	_u.mutation.SetFilename(v)
	return _u
}

// SetNillableFilename sets the "filename" field if the given value is not nil.
func (_u *EmailAttachmentUpdateOne) SetNillableFilename(v *string) *EmailAttachmentUpdateOne {
	if v != nil {
		_u.SetFilename(*v)
	}
	return _u
}

// SetS3Bucket sets the "s3_bucket" field.
func (_u *EmailAttachmentUpdateOne) SetS3Bucket(v string) *EmailAttachmentUpdateOne {
	_u.mutation.SetS3Bucket(v)
	return _u
}

// SetNillableS3Bucket sets the "s3_bucket" field if the given value is not nil.
func (_u *EmailAttachmentUpdateOne) SetNillableS3Bucket(v *string) *EmailAttachmentUpdateOne {
	if v != nil {
		_u.SetS3Bucket(*v)
	}
	return _u
}

// SetS3Path sets the "s3_path" field.
func (_u *EmailAttachmentUpdateOne) SetS3Path(v string) *EmailAttachmentUpdateOne {
	_u.mutation.SetS3Path(v)
	return _u
}

// SetNillableS3Path sets the "s3_path" field if the given value is not nil.
func (_u *EmailAttachmentUpdateOne) SetNillableS3Path(v *string) *EmailAttachmentUpdateOne {
	if v != nil {
		_u.SetS3Path(*v)
	}
	return _u
}

// SetPresignedURL sets the "presigned_url" field.
func (_u *EmailAttachmentUpdateOne) SetPresignedURL(v string) *EmailAttachmentUpdateOne {
	_u.mutation.SetPresignedURL(v)
	return _u
}

// SetNillablePresignedURL sets the "presigned_url" field if the given value is not nil.
func (_u *EmailAttachmentUpdateOne) SetNillablePresignedURL(v *string) *EmailAttachmentUpdateOne {
	if v != nil {
		_u.SetPresignedURL(*v)
	}
	return _u
}

// ClearPresignedURL clears the value of the "presigned_url" field.
func (_u *EmailAttachmentUpdateOne) ClearPresignedURL() *EmailAttachmentUpdateOne {
	_u.mutation.ClearPresignedURL()
	return _u
}

// SetPresignedURLExpiration sets the "presigned_url_expiration" field.
func (_u *EmailAttachmentUpdateOne) SetPresignedURLExpiration(v time.Time) *EmailAttachmentUpdateOne {
	_u.mutation.SetPresignedURLExpiration(v)
	return _u
}

// SetNillablePresignedURLExpiration sets the "presigned_url_expiration" field if the given value is not nil.
func (_u *EmailAttachmentUpdateOne) SetNillablePresignedURLExpiration(v *time.Time) *EmailAttachmentUpdateOne {
	if v != nil {
		_u.SetPresignedURLExpiration(*v)
	}
	return _u
}

// ClearPresignedURLExpiration clears the value of the "presigned_url_expiration" field.
func (_u *EmailAttachmentUpdateOne) ClearPresignedURLExpiration() *EmailAttachmentUpdateOne {
	_u.mutation.ClearPresignedURLExpiration()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *EmailAttachmentUpdateOne) SetUpdatedAt(v time.Time) *EmailAttachmentUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the EmailAttachmentMutation object of the builder.
func (_u *EmailAttachmentUpdateOne) Mutation() *EmailAttachmentMutation {
	return _u.mutation
}

// Where appends a list predicates to the EmailAttachmentUpdate builder.
func (_u *EmailAttachmentUpdateOne) Where(ps ...predicate.EmailAttachment) *EmailAttachmentUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *EmailAttachmentUpdateOne) Select(field string, fields ...string) *EmailAttachmentUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated EmailAttachment entity.
func (_u *EmailAttachmentUpdateOne) Save(ctx context.Context) (*EmailAttachment, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *EmailAttachmentUpdateOne) SaveX(ctx context.Context) *EmailAttachment {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *EmailAttachmentUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *EmailAttachmentUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *EmailAttachmentUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := emailattachment.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *EmailAttachmentUpdateOne) check() error {
	if v, ok := _u.mutation.Filename(); ok {
		if err := emailattachment.FilenameValidator(v); err != nil {
			return &ValidationError{Name: "filename", err: fmt.Errorf(`ent: validator failed for field "EmailAttachment.filename": %w`, err)}
		}
	}
	if v, ok := _u.mutation.S3Bucket(); ok {
		if err := emailattachment.S3BucketValidator(v); err != nil {
			return &ValidationError{Name: "s3_bucket", err: fmt.Errorf(`ent: validator failed for field "EmailAttachment.s3_bucket": %w`, err)}
		}
	}
	if v, ok := _u.mutation.S3Path(); ok {
		if err := emailattachment.S3PathValidator(v); err != nil {
			return &ValidationError{Name: "s3_path", err: fmt.Errorf(`ent: validator failed for field "EmailAttachment.s3_path": %w`, err)}
		}
	}
	if _u.mutation.EmailCleared() && len(_u.mutation.EmailIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "EmailAttachment.email"`)
	}
	return nil
}

func (_u *EmailAttachmentUpdateOne) sqlSave(ctx context.Context) (_node *EmailAttachment, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(emailattachment.Table, emailattachment.Columns, sqlgraph.NewFieldSpec(emailattachment.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "EmailAttachment.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, emailattachment.FieldID)
		for _, f := range fields {
			if !emailattachment.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != emailattachment.FieldID {
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
	if value, ok := _u.mutation.Filename(); ok {
		_spec.SetField(emailattachment.FieldFilename, field.TypeString, value)
	}
	if value, ok := _u.mutation.S3Bucket(); ok {
		_spec.SetField(emailattachment.FieldS3Bucket, field.TypeString, value)
	}
	if value, ok := _u.mutation.S3Path(); ok {
		_spec.SetField(emailattachment.FieldS3Path, field.TypeString, value)
	}
	if value, ok := _u.mutation.PresignedURL(); ok {
		_spec.SetField(emailattachment.FieldPresignedURL, field.TypeString, value)
	}
	if _u.mutation.PresignedURLCleared() {
		_spec.ClearField(emailattachment.FieldPresignedURL, field.TypeString)
	}
	if value, ok := _u.mutation.PresignedURLExpiration(); ok {
		_spec.SetField(emailattachment.FieldPresignedURLExpiration, field.TypeTime, value)
	}
	if _u.mutation.PresignedURLExpirationCleared() {
		_spec.ClearField(emailattachment.FieldPresignedURLExpiration, field.TypeTime)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(emailattachment.FieldUpdatedAt, field.TypeTime, value)
	}
	_node = &EmailAttachment{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{emailattachment.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
