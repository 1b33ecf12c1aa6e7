// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/carpentries/mailflow/ent/award"
	"github.com/carpentries/mailflow/ent/emailattachment"
	"github.com/carpentries/mailflow/ent/emailtemplate"
	"github.com/carpentries/mailflow/ent/event"
	"github.com/carpentries/mailflow/ent/membership"
	"github.com/carpentries/mailflow/ent/membershiptask"
	"github.com/carpentries/mailflow/ent/organization"
	"github.com/carpentries/mailflow/ent/person"
	"github.com/carpentries/mailflow/ent/predicate"
	"github.com/carpentries/mailflow/ent/scheduledemail"
	"github.com/carpentries/mailflow/ent/scheduledemaillog"
	"github.com/carpentries/mailflow/ent/task"
	"github.com/carpentries/mailflow/ent/trainingprogress"
	"github.com/carpentries/mailflow/pkg/models"
	"github.com/google/uuid"
)

const (
	// Operation types.
	OpCreate    = ent.OpCreate
	OpDelete    = ent.OpDelete
	OpDeleteOne = ent.OpDeleteOne
	OpUpdate    = ent.OpUpdate
	OpUpdateOne = ent.OpUpdateOne

	// Node types.
	TypeAward             = "Award"
	TypeEmailAttachment   = "EmailAttachment"
	TypeEmailTemplate     = "EmailTemplate"
	TypeEvent             = "Event"
	TypeMembership        = "Membership"
	TypeMembershipTask    = "MembershipTask"
	TypeOrganization      = "Organization"
	TypePerson            = "Person"
	TypeScheduledEmail    = "ScheduledEmail"
	TypeScheduledEmailLog = "ScheduledEmailLog"
	TypeTask              = "Task"
	TypeTrainingProgress  = "TrainingProgress"
)

// AwardMutation represents an operation that mutates the Award nodes in the graph.
type AwardMutation struct {
	config
	op            Op
	typ           string
	id            *int
	badge         *string
	awarded       *time.Time
	clearedFields map[string]struct{}
	person        *int
	clearedperson bool
	done          bool
	oldValue      func(context.Context) (*Award, error)
	predicates    []predicate.Award
}

var _ ent.Mutation = (*AwardMutation)(nil)

// awardOption allows management of the mutation configuration using functional options.
type awardOption func(*AwardMutation)

// newAwardMutation creates new mutation for the Award entity.
func newAwardMutation(c config, op Op, opts ...awardOption) *AwardMutation {
	m := &AwardMutation{
		config:        c,
		op:            op,
		typ:           TypeAward,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withAwardID sets the ID field of the mutation.
func withAwardID(id int) awardOption {
	return func(m *AwardMutation) {
		var (
			err   error
			once  sync.Once
			value *Award
		)
		m.oldValue = func(ctx context.Context) (*Award, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Award.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withAward sets the old Award of the mutation.
func withAward(node *Award) awardOption {
	return func(m *AwardMutation) {
		m.oldValue = func(context.Context) (*Award, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m AwardMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m AwardMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *AwardMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *AwardMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Award.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetBadge sets the "badge" field.
func (m *AwardMutation) SetBadge(s string) {
	m.badge = &s
}

// Badge returns the value of the "badge" field in the mutation.
func (m *AwardMutation) Badge() (r string, exists bool) {
	v := m.badge
	if v == nil {
		return
	}
	return *v, true
}

// OldBadge returns the old "badge" field's value of the Award entity.
// If the Award object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AwardMutation) OldBadge(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldBadge is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldBadge requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldBadge: %w", err)
	}
	return oldValue.Badge, nil
}

// ResetBadge resets all changes to the "badge" field.
func (m *AwardMutation) ResetBadge() {
	m.badge = nil
}

// SetAwarded sets the "awarded" field.
func (m *AwardMutation) SetAwarded(t time.Time) {
	m.awarded = &t
}

// Awarded returns the value of the "awarded" field in the mutation.
func (m *AwardMutation) Awarded() (r time.Time, exists bool) {
	v := m.awarded
	if v == nil {
		return
	}
	return *v, true
}

// OldAwarded returns the old "awarded" field's value of the Award entity.
// If the Award object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AwardMutation) OldAwarded(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAwarded is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAwarded requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAwarded: %w", err)
	}
	return oldValue.Awarded, nil
}

// ResetAwarded resets all changes to the "awarded" field.
func (m *AwardMutation) ResetAwarded() {
	m.awarded = nil
}

// SetPersonID sets the "person_id" field.
func (m *AwardMutation) SetPersonID(i int) {
	m.person = &i
}

// PersonID returns the value of the "person_id" field in the mutation.
func (m *AwardMutation) PersonID() (r int, exists bool) {
	v := m.person
	if v == nil {
		return
	}
	return *v, true
}

// OldPersonID returns the old "person_id" field's value of the Award entity.
// If the Award object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AwardMutation) OldPersonID(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPersonID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPersonID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPersonID: %w", err)
	}
	return oldValue.PersonID, nil
}

// ResetPersonID resets all changes to the "person_id" field.
func (m *AwardMutation) ResetPersonID() {
	m.person = nil
}

// ClearPerson clears the "person" edge to the Person entity.
func (m *AwardMutation) ClearPerson() {
	m.clearedperson = true
	m.clearedFields[award.FieldPersonID] = struct{}{}
}

// PersonCleared reports if the "person" edge to the Person entity was cleared.
func (m *AwardMutation) PersonCleared() bool {
	return m.clearedperson
}

// PersonIDs returns the "person" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// PersonID instead. It exists only for internal usage by the builders.
func (m *AwardMutation) PersonIDs() (ids []int) {
	if id := m.person; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetPerson resets all changes to the "person" edge.
func (m *AwardMutation) ResetPerson() {
	m.person = nil
	m.clearedperson = false
}

// Where appends a list predicates to the AwardMutation builder.
func (m *AwardMutation) Where(ps ...predicate.Award) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the AwardMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *AwardMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Award, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *AwardMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *AwardMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Award).
func (m *AwardMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *AwardMutation) Fields() []string {
	fields := make([]string, 0, 3)
	if m.badge != nil {
		fields = append(fields, award.FieldBadge)
	}
	if m.awarded != nil {
		fields = append(fields, award.FieldAwarded)
	}
	if m.person != nil {
		fields = append(fields, award.FieldPersonID)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *AwardMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case award.FieldBadge:
		return m.Badge()
	case award.FieldAwarded:
		return m.Awarded()
	case award.FieldPersonID:
		return m.PersonID()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *AwardMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case award.FieldBadge:
		return m.OldBadge(ctx)
	case award.FieldAwarded:
		return m.OldAwarded(ctx)
	case award.FieldPersonID:
		return m.OldPersonID(ctx)
	}
	return nil, fmt.Errorf("unknown Award field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *AwardMutation) SetField(name string, value ent.Value) error {
	switch name {
	case award.FieldBadge:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetBadge(v)
		return nil
	case award.FieldAwarded:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAwarded(v)
		return nil
	case award.FieldPersonID:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPersonID(v)
		return nil
	}
	return fmt.Errorf("unknown Award field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *AwardMutation) AddedFields() []string {
	var fields []string
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *AwardMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *AwardMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown Award numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *AwardMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *AwardMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *AwardMutation) ClearField(name string) error {
	return fmt.Errorf("unknown Award nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *AwardMutation) ResetField(name string) error {
	switch name {
	case award.FieldBadge:
		m.ResetBadge()
		return nil
	case award.FieldAwarded:
		m.ResetAwarded()
		return nil
	case award.FieldPersonID:
		m.ResetPersonID()
		return nil
	}
	return fmt.Errorf("unknown Award field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *AwardMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.person != nil {
		edges = append(edges, award.EdgePerson)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *AwardMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case award.EdgePerson:
		if id := m.person; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *AwardMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *AwardMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *AwardMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedperson {
		edges = append(edges, award.EdgePerson)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *AwardMutation) EdgeCleared(name string) bool {
	switch name {
	case award.EdgePerson:
		return m.clearedperson
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *AwardMutation) ClearEdge(name string) error {
	switch name {
	case award.EdgePerson:
		m.ClearPerson()
		return nil
	}
	return fmt.Errorf("unknown Award unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *AwardMutation) ResetEdge(name string) error {
	switch name {
	case award.EdgePerson:
		m.ResetPerson()
		return nil
	}
	return fmt.Errorf("unknown Award edge %s", name)
}

// EmailAttachmentMutation represents an operation that mutates the EmailAttachment nodes in the graph.
type EmailAttachmentMutation struct {
	config
	op                       Op
	typ                      string
	id                       *uuid.UUID
	filename                 *string
	s3_bucket                *string
	s3_path                  *string
	presigned_url            *string
	presigned_url_expiration *time.Time
	created_at               *time.Time
	updated_at               *time.Time
	clearedFields            map[string]struct{}
	email                    *uuid.UUID
	clearedemail             bool
	done                     bool
	oldValue                 func(context.Context) (*EmailAttachment, error)
	predicates               []predicate.EmailAttachment
}

var _ ent.Mutation = (*EmailAttachmentMutation)(nil)

// emailattachmentOption allows management of the mutation configuration using functional options.
type emailattachmentOption func(*EmailAttachmentMutation)

// newEmailAttachmentMutation creates new mutation for the EmailAttachment entity.
func newEmailAttachmentMutation(c config, op Op, opts ...emailattachmentOption) *EmailAttachmentMutation {
	m := &EmailAttachmentMutation{
		config:        c,
		op:            op,
		typ:           TypeEmailAttachment,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withEmailAttachmentID sets the ID field of the mutation.
func withEmailAttachmentID(id uuid.UUID) emailattachmentOption {
	return func(m *EmailAttachmentMutation) {
		var (
			err   error
			once  sync.Once
			value *EmailAttachment
		)
		m.oldValue = func(ctx context.Context) (*EmailAttachment, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().EmailAttachment.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withEmailAttachment sets the old EmailAttachment of the mutation.
func withEmailAttachment(node *EmailAttachment) emailattachmentOption {
	return func(m *EmailAttachmentMutation) {
		m.oldValue = func(context.Context) (*EmailAttachment, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m EmailAttachmentMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m EmailAttachmentMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of EmailAttachment entities.
func (m *EmailAttachmentMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *EmailAttachmentMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *EmailAttachmentMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().EmailAttachment.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetFilename sets the "filename" field.
func (m *EmailAttachmentMutation) SetFilename(s string) {
	m.filename = &s
}

// Filename returns the value of the "filename" field in the mutation.
func (m *EmailAttachmentMutation) Filename() (r string, exists bool) {
	v := m.filename
	if v == nil {
		return
	}
	return *v, true
}

// OldFilename returns the old "filename" field's value of the EmailAttachment entity.
// If the EmailAttachment object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EmailAttachmentMutation) OldFilename(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFilename is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFilename requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFilename: %w", err)
	}
	return oldValue.Filename, nil
}

// ResetFilename resets all changes to the "filename" field.
func (m *EmailAttachmentMutation) ResetFilename() {
	m.filename = nil
}

// SetS3Bucket sets the "s3_bucket" field.
func (m *EmailAttachmentMutation) SetS3Bucket(s string) {
	m.s3_bucket = &s
}

// S3Bucket returns the value of the "s3_bucket" field in the mutation.
func (m *EmailAttachmentMutation) S3Bucket() (r string, exists bool) {
	v := m.s3_bucket
	if v == nil {
		return
	}
	return *v, true
}

// OldS3Bucket returns the old "s3_bucket" field's value of the EmailAttachment entity.
// If the EmailAttachment object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EmailAttachmentMutation) OldS3Bucket(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldS3Bucket is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldS3Bucket requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldS3Bucket: %w", err)
	}
	return oldValue.S3Bucket, nil
}

// ResetS3Bucket resets all changes to the "s3_bucket" field.
func (m *EmailAttachmentMutation) ResetS3Bucket() {
	m.s3_bucket = nil
}

// SetS3Path sets the "s3_path" field.
func (m *EmailAttachmentMutation) SetS3Path(s string) {
	m.s3_path = &s
}

// S3Path returns the value of the "s3_path" field in the mutation.
func (m *EmailAttachmentMutation) S3Path() (r string, exists bool) {
	v := m.s3_path
	if v == nil {
		return
	}
	return *v, true
}

// OldS3Path returns the old "s3_path" field's value of the EmailAttachment entity.
// If the EmailAttachment object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EmailAttachmentMutation) OldS3Path(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldS3Path is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldS3Path requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldS3Path: %w", err)
	}
	return oldValue.S3Path, nil
}

// ResetS3Path resets all changes to the "s3_path" field.
func (m *EmailAttachmentMutation) ResetS3Path() {
	m.s3_path = nil
}

// SetPresignedURL sets the "presigned_url" field.
func (m *EmailAttachmentMutation) SetPresignedURL(s string) {
	m.presigned_url = &s
}

// PresignedURL returns the value of the "presigned_url" field in the mutation.
func (m *EmailAttachmentMutation) PresignedURL() (r string, exists bool) {
	v := m.presigned_url
	if v == nil {
		return
	}
	return *v, true
}

// OldPresignedURL returns the old "presigned_url" field's value of the EmailAttachment entity.
// If the EmailAttachment object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EmailAttachmentMutation) OldPresignedURL(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPresignedURL is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPresignedURL requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPresignedURL: %w", err)
	}
	return oldValue.PresignedURL, nil
}

// ClearPresignedURL clears the value of the "presigned_url" field.
func (m *EmailAttachmentMutation) ClearPresignedURL() {
	m.presigned_url = nil
	m.clearedFields[emailattachment.FieldPresignedURL] = struct{}{}
}

// PresignedURLCleared returns if the "presigned_url" field was cleared in this mutation.
func (m *EmailAttachmentMutation) PresignedURLCleared() bool {
	_, ok := m.clearedFields[emailattachment.FieldPresignedURL]
	return ok
}

// ResetPresignedURL resets all changes to the "presigned_url" field.
func (m *EmailAttachmentMutation) ResetPresignedURL() {
	m.presigned_url = nil
	delete(m.clearedFields, emailattachment.FieldPresignedURL)
}

// SetPresignedURLExpiration sets the "presigned_url_expiration" field.
func (m *EmailAttachmentMutation) SetPresignedURLExpiration(t time.Time) {
	m.presigned_url_expiration = &t
}

// PresignedURLExpiration returns the value of the "presigned_url_expiration" field in the mutation.
func (m *EmailAttachmentMutation) PresignedURLExpiration() (r time.Time, exists bool) {
	v := m.presigned_url_expiration
	if v == nil {
		return
	}
	return *v, true
}

// OldPresignedURLExpiration returns the old "presigned_url_expiration" field's value of the EmailAttachment entity.
// If the EmailAttachment object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EmailAttachmentMutation) OldPresignedURLExpiration(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPresignedURLExpiration is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPresignedURLExpiration requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPresignedURLExpiration: %w", err)
	}
	return oldValue.PresignedURLExpiration, nil
}

// ClearPresignedURLExpiration clears the value of the "presigned_url_expiration" field.
func (m *EmailAttachmentMutation) ClearPresignedURLExpiration() {
	m.presigned_url_expiration = nil
	m.clearedFields[emailattachment.FieldPresignedURLExpiration] = struct{}{}
}

// PresignedURLExpirationCleared returns if the "presigned_url_expiration" field was cleared in this mutation.
func (m *EmailAttachmentMutation) PresignedURLExpirationCleared() bool {
	_, ok := m.clearedFields[emailattachment.FieldPresignedURLExpiration]
	return ok
}

// ResetPresignedURLExpiration resets all changes to the "presigned_url_expiration" field.
func (m *EmailAttachmentMutation) ResetPresignedURLExpiration() {
	m.presigned_url_expiration = nil
	delete(m.clearedFields, emailattachment.FieldPresignedURLExpiration)
}

// SetScheduledEmailID sets the "scheduled_email_id" field.
func (m *EmailAttachmentMutation) SetScheduledEmailID(u uuid.UUID) {
	m.email = &u
}

// ScheduledEmailID returns the value of the "scheduled_email_id" field in the mutation.
func (m *EmailAttachmentMutation) ScheduledEmailID() (r uuid.UUID, exists bool) {
	v := m.email
	if v == nil {
		return
	}
	return *v, true
}

// OldScheduledEmailID returns the old "scheduled_email_id" field's value of the EmailAttachment entity.
// If the EmailAttachment object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EmailAttachmentMutation) OldScheduledEmailID(ctx context.Context) (v uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldScheduledEmailID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldScheduledEmailID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldScheduledEmailID: %w", err)
	}
	return oldValue.ScheduledEmailID, nil
}

// ResetScheduledEmailID resets all changes to the "scheduled_email_id" field.
func (m *EmailAttachmentMutation) ResetScheduledEmailID() {
	m.email = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *EmailAttachmentMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *EmailAttachmentMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the EmailAttachment entity.
// If the EmailAttachment object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EmailAttachmentMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *EmailAttachmentMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *EmailAttachmentMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *EmailAttachmentMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the EmailAttachment entity.
// If the EmailAttachment object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EmailAttachmentMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *EmailAttachmentMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// SetEmailID sets the "email" edge to the ScheduledEmail entity by id.
func (m *EmailAttachmentMutation) SetEmailID(id uuid.UUID) {
	m.email = &id
}

// ClearEmail clears the "email" edge to the ScheduledEmail entity.
func (m *EmailAttachmentMutation) ClearEmail() {
	m.clearedemail = true
	m.clearedFields[emailattachment.FieldScheduledEmailID] = struct{}{}
}

// EmailCleared reports if the "email" edge to the ScheduledEmail entity was cleared.
func (m *EmailAttachmentMutation) EmailCleared() bool {
	return m.clearedemail
}

// EmailID returns the "email" edge ID in the mutation.
func (m *EmailAttachmentMutation) EmailID() (id uuid.UUID, exists bool) {
	if m.email != nil {
		return *m.email, true
	}
	return
}

// EmailIDs returns the "email" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// EmailID instead. It exists only for internal usage by the builders.
func (m *EmailAttachmentMutation) EmailIDs() (ids []uuid.UUID) {
	if id := m.email; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetEmail resets all changes to the "email" edge.
func (m *EmailAttachmentMutation) ResetEmail() {
	m.email = nil
	m.clearedemail = false
}

// Where appends a list predicates to the EmailAttachmentMutation builder.
func (m *EmailAttachmentMutation) Where(ps ...predicate.EmailAttachment) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the EmailAttachmentMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *EmailAttachmentMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.EmailAttachment, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *EmailAttachmentMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *EmailAttachmentMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (EmailAttachment).
func (m *EmailAttachmentMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *EmailAttachmentMutation) Fields() []string {
	fields := make([]string, 0, 8)
	if m.filename != nil {
		fields = append(fields, emailattachment.FieldFilename)
	}
	if m.s3_bucket != nil {
		fields = append(fields, emailattachment.FieldS3Bucket)
	}
	if m.s3_path != nil {
		fields = append(fields, emailattachment.FieldS3Path)
	}
	if m.presigned_url != nil {
		fields = append(fields, emailattachment.FieldPresignedURL)
	}
	if m.presigned_url_expiration != nil {
		fields = append(fields, emailattachment.FieldPresignedURLExpiration)
	}
	if m.email != nil {
		fields = append(fields, emailattachment.FieldScheduledEmailID)
	}
	if m.created_at != nil {
		fields = append(fields, emailattachment.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, emailattachment.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *EmailAttachmentMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case emailattachment.FieldFilename:
		return m.Filename()
	case emailattachment.FieldS3Bucket:
		return m.S3Bucket()
	case emailattachment.FieldS3Path:
		return m.S3Path()
	case emailattachment.FieldPresignedURL:
		return m.PresignedURL()
	case emailattachment.FieldPresignedURLExpiration:
		return m.PresignedURLExpiration()
	case emailattachment.FieldScheduledEmailID:
		return m.ScheduledEmailID()
	case emailattachment.FieldCreatedAt:
		return m.CreatedAt()
	case emailattachment.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *EmailAttachmentMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case emailattachment.FieldFilename:
		return m.OldFilename(ctx)
	case emailattachment.FieldS3Bucket:
		return m.OldS3Bucket(ctx)
	case emailattachment.FieldS3Path:
		return m.OldS3Path(ctx)
	case emailattachment.FieldPresignedURL:
		return m.OldPresignedURL(ctx)
	case emailattachment.FieldPresignedURLExpiration:
		return m.OldPresignedURLExpiration(ctx)
	case emailattachment.FieldScheduledEmailID:
		return m.OldScheduledEmailID(ctx)
	case emailattachment.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case emailattachment.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown EmailAttachment field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *EmailAttachmentMutation) SetField(name string, value ent.Value) error {
	switch name {
	case emailattachment.FieldFilename:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFilename(v)
		return nil
	case emailattachment.FieldS3Bucket:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetS3Bucket(v)
		return nil
	case emailattachment.FieldS3Path:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetS3Path(v)
		return nil
	case emailattachment.FieldPresignedURL:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPresignedURL(v)
		return nil
	case emailattachment.FieldPresignedURLExpiration:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPresignedURLExpiration(v)
		return nil
	case emailattachment.FieldScheduledEmailID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetScheduledEmailID(v)
		return nil
	case emailattachment.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case emailattachment.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown EmailAttachment field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *EmailAttachmentMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *EmailAttachmentMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *EmailAttachmentMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown EmailAttachment numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *EmailAttachmentMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(emailattachment.FieldPresignedURL) {
		fields = append(fields, emailattachment.FieldPresignedURL)
	}
	if m.FieldCleared(emailattachment.FieldPresignedURLExpiration) {
		fields = append(fields, emailattachment.FieldPresignedURLExpiration)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *EmailAttachmentMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *EmailAttachmentMutation) ClearField(name string) error {
	switch name {
	case emailattachment.FieldPresignedURL:
		m.ClearPresignedURL()
		return nil
	case emailattachment.FieldPresignedURLExpiration:
		m.ClearPresignedURLExpiration()
		return nil
	}
	return fmt.Errorf("unknown EmailAttachment nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *EmailAttachmentMutation) ResetField(name string) error {
	switch name {
	case emailattachment.FieldFilename:
		m.ResetFilename()
		return nil
	case emailattachment.FieldS3Bucket:
		m.ResetS3Bucket()
		return nil
	case emailattachment.FieldS3Path:
		m.ResetS3Path()
		return nil
	case emailattachment.FieldPresignedURL:
		m.ResetPresignedURL()
		return nil
	case emailattachment.FieldPresignedURLExpiration:
		m.ResetPresignedURLExpiration()
		return nil
	case emailattachment.FieldScheduledEmailID:
		m.ResetScheduledEmailID()
		return nil
	case emailattachment.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case emailattachment.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown EmailAttachment field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *EmailAttachmentMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.email != nil {
		edges = append(edges, emailattachment.EdgeEmail)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *EmailAttachmentMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case emailattachment.EdgeEmail:
		if id := m.email; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *EmailAttachmentMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *EmailAttachmentMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *EmailAttachmentMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedemail {
		edges = append(edges, emailattachment.EdgeEmail)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *EmailAttachmentMutation) EdgeCleared(name string) bool {
	switch name {
	case emailattachment.EdgeEmail:
		return m.clearedemail
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *EmailAttachmentMutation) ClearEdge(name string) error {
	switch name {
	case emailattachment.EdgeEmail:
		m.ClearEmail()
		return nil
	}
	return fmt.Errorf("unknown EmailAttachment unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *EmailAttachmentMutation) ResetEdge(name string) error {
	switch name {
	case emailattachment.EdgeEmail:
		m.ResetEmail()
		return nil
	}
	return fmt.Errorf("unknown EmailAttachment edge %s", name)
}

// EmailTemplateMutation represents an operation that mutates the EmailTemplate nodes in the graph.
type EmailTemplateMutation struct {
	config
	op                      Op
	typ                     string
	id                      *uuid.UUID
	name                    *string
	signal                  *string
	active                  *bool
	from_header             *string
	reply_to_header         *string
	cc_header               *[]string
	appendcc_header         []string
	bcc_header              *[]string
	appendbcc_header        []string
	subject                 *string
	body                    *string
	created_at              *time.Time
	updated_at              *time.Time
	clearedFields           map[string]struct{}
	scheduled_emails        map[uuid.UUID]struct{}
	removedscheduled_emails map[uuid.UUID]struct{}
	clearedscheduled_emails bool
	done                    bool
	oldValue                func(context.Context) (*EmailTemplate, error)
	predicates              []predicate.EmailTemplate
}

var _ ent.Mutation = (*EmailTemplateMutation)(nil)

// emailtemplateOption allows management of the mutation configuration using functional options.
type emailtemplateOption func(*EmailTemplateMutation)

// newEmailTemplateMutation creates new mutation for the EmailTemplate entity.
func newEmailTemplateMutation(c config, op Op, opts ...emailtemplateOption) *EmailTemplateMutation {
	m := &EmailTemplateMutation{
		config:        c,
		op:            op,
		typ:           TypeEmailTemplate,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withEmailTemplateID sets the ID field of the mutation.
func withEmailTemplateID(id uuid.UUID) emailtemplateOption {
	return func(m *EmailTemplateMutation) {
		var (
			err   error
			once  sync.Once
			value *EmailTemplate
		)
		m.oldValue = func(ctx context.Context) (*EmailTemplate, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().EmailTemplate.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withEmailTemplate sets the old EmailTemplate of the mutation.
func withEmailTemplate(node *EmailTemplate) emailtemplateOption {
	return func(m *EmailTemplateMutation) {
		m.oldValue = func(context.Context) (*EmailTemplate, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m EmailTemplateMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m EmailTemplateMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of EmailTemplate entities.
func (m *EmailTemplateMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *EmailTemplateMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *EmailTemplateMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().EmailTemplate.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetName sets the "name" field.
func (m *EmailTemplateMutation) SetName(s string) {
	m.name = &s
}

// Name returns the value of the "name" field in the mutation.
func (m *EmailTemplateMutation) Name() (r string, exists bool) {
	v := m.name
	if v == nil {
		return
	}
	return *v, true
}

// OldName returns the old "name" field's value of the EmailTemplate entity.
// If the EmailTemplate object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EmailTemplateMutation) OldName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldName: %w", err)
	}
	return oldValue.Name, nil
}

// ResetName resets all changes to the "name" field.
func (m *EmailTemplateMutation) ResetName() {
	m.name = nil
}

// SetSignal sets the "signal" field.
func (m *EmailTemplateMutation) SetSignal(s string) {
	m.signal = &s
}

// Signal returns the value of the "signal" field in the mutation.
func (m *EmailTemplateMutation) Signal() (r string, exists bool) {
	v := m.signal
	if v == nil {
		return
	}
	return *v, true
}

// OldSignal returns the old "signal" field's value of the EmailTemplate entity.
// If the EmailTemplate object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EmailTemplateMutation) OldSignal(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSignal is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSignal requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSignal: %w", err)
	}
	return oldValue.Signal, nil
}

// ResetSignal resets all changes to the "signal" field.
func (m *EmailTemplateMutation) ResetSignal() {
	m.signal = nil
}

// SetActive sets the "active" field.
func (m *EmailTemplateMutation) SetActive(b bool) {
	m.active = &b
}

// Active returns the value of the "active" field in the mutation.
func (m *EmailTemplateMutation) Active() (r bool, exists bool) {
	v := m.active
	if v == nil {
		return
	}
	return *v, true
}

// OldActive returns the old "active" field's value of the EmailTemplate entity.
// If the EmailTemplate object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EmailTemplateMutation) OldActive(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldActive is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldActive requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldActive: %w", err)
	}
	return oldValue.Active, nil
}

// ResetActive resets all changes to the "active" field.
func (m *EmailTemplateMutation) ResetActive() {
	m.active = nil
}

// SetFromHeader sets the "from_header" field.
func (m *EmailTemplateMutation) SetFromHeader(s string) {
	m.from_header = &s
}

// FromHeader returns the value of the "from_header" field in the mutation.
func (m *EmailTemplateMutation) FromHeader() (r string, exists bool) {
	v := m.from_header
	if v == nil {
		return
	}
	return *v, true
}

// OldFromHeader returns the old "from_header" field's value of the EmailTemplate entity.
// If the EmailTemplate object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EmailTemplateMutation) OldFromHeader(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFromHeader is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFromHeader requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFromHeader: %w", err)
	}
	return oldValue.FromHeader, nil
}

// ResetFromHeader resets all changes to the "from_header" field.
func (m *EmailTemplateMutation) ResetFromHeader() {
	m.from_header = nil
}

// SetReplyToHeader sets the "reply_to_header" field.
func (m *EmailTemplateMutation) SetReplyToHeader(s string) {
	m.reply_to_header = &s
}

// ReplyToHeader returns the value of the "reply_to_header" field in the mutation.
func (m *EmailTemplateMutation) ReplyToHeader() (r string, exists bool) {
	v := m.reply_to_header
	if v == nil {
		return
	}
	return *v, true
}

// OldReplyToHeader returns the old "reply_to_header" field's value of the EmailTemplate entity.
// If the EmailTemplate object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EmailTemplateMutation) OldReplyToHeader(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldReplyToHeader is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldReplyToHeader requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldReplyToHeader: %w", err)
	}
	return oldValue.ReplyToHeader, nil
}

// ClearReplyToHeader clears the value of the "reply_to_header" field.
func (m *EmailTemplateMutation) ClearReplyToHeader() {
	m.reply_to_header = nil
	m.clearedFields[emailtemplate.FieldReplyToHeader] = struct{}{}
}

// ReplyToHeaderCleared returns if the "reply_to_header" field was cleared in this mutation.
func (m *EmailTemplateMutation) ReplyToHeaderCleared() bool {
	_, ok := m.clearedFields[emailtemplate.FieldReplyToHeader]
	return ok
}

// ResetReplyToHeader resets all changes to the "reply_to_header" field.
func (m *EmailTemplateMutation) ResetReplyToHeader() {
	m.reply_to_header = nil
	delete(m.clearedFields, emailtemplate.FieldReplyToHeader)
}

// SetCcHeader sets the "cc_header" field.
func (m *EmailTemplateMutation) SetCcHeader(s []string) {
	m.cc_header = &s
	m.appendcc_header = nil
}

// CcHeader returns the value of the "cc_header" field in the mutation.
func (m *EmailTemplateMutation) CcHeader() (r []string, exists bool) {
	v := m.cc_header
	if v == nil {
		return
	}
	return *v, true
}

// OldCcHeader returns the old "cc_header" field's value of the EmailTemplate entity.
// If the EmailTemplate object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EmailTemplateMutation) OldCcHeader(ctx context.Context) (v []string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCcHeader is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCcHeader requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCcHeader: %w", err)
	}
	return oldValue.CcHeader, nil
}

// AppendCcHeader adds s to the "cc_header" field.
func (m *EmailTemplateMutation) AppendCcHeader(s []string) {
	m.appendcc_header = append(m.appendcc_header, s...)
}

// AppendedCcHeader returns the list of values that were appended to the "cc_header" field in this mutation.
func (m *EmailTemplateMutation) AppendedCcHeader() ([]string, bool) {
	if len(m.appendcc_header) == 0 {
		return nil, false
	}
	return m.appendcc_header, true
}

// ClearCcHeader clears the value of the "cc_header" field.
func (m *EmailTemplateMutation) ClearCcHeader() {
	m.cc_header = nil
	m.appendcc_header = nil
	m.clearedFields[emailtemplate.FieldCcHeader] = struct{}{}
}

// CcHeaderCleared returns if the "cc_header" field was cleared in this mutation.
func (m *EmailTemplateMutation) CcHeaderCleared() bool {
	_, ok := m.clearedFields[emailtemplate.FieldCcHeader]
	return ok
}

// ResetCcHeader resets all changes to the "cc_header" field.
func (m *EmailTemplateMutation) ResetCcHeader() {
	m.cc_header = nil
	m.appendcc_header = nil
	delete(m.clearedFields, emailtemplate.FieldCcHeader)
}

// SetBccHeader sets the "bcc_header" field.
func (m *EmailTemplateMutation) SetBccHeader(s []string) {
	m.bcc_header = &s
	m.appendbcc_header = nil
}

// BccHeader returns the value of the "bcc_header" field in the mutation.
func (m *EmailTemplateMutation) BccHeader() (r []string, exists bool) {
	v := m.bcc_header
	if v == nil {
		return
	}
	return *v, true
}

// OldBccHeader returns the old "bcc_header" field's value of the EmailTemplate entity.
// If the EmailTemplate object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EmailTemplateMutation) OldBccHeader(ctx context.Context) (v []string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldBccHeader is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldBccHeader requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldBccHeader: %w", err)
	}
	return oldValue.BccHeader, nil
}

// AppendBccHeader adds s to the "bcc_header" field.
func (m *EmailTemplateMutation) AppendBccHeader(s []string) {
	m.appendbcc_header = append(m.appendbcc_header, s...)
}

// AppendedBccHeader returns the list of values that were appended to the "bcc_header" field in this mutation.
func (m *EmailTemplateMutation) AppendedBccHeader() ([]string, bool) {
	if len(m.appendbcc_header) == 0 {
		return nil, false
	}
	return m.appendbcc_header, true
}

// ClearBccHeader clears the value of the "bcc_header" field.
func (m *EmailTemplateMutation) ClearBccHeader() {
	m.bcc_header = nil
	m.appendbcc_header = nil
	m.clearedFields[emailtemplate.FieldBccHeader] = struct{}{}
}

// BccHeaderCleared returns if the "bcc_header" field was cleared in this mutation.
func (m *EmailTemplateMutation) BccHeaderCleared() bool {
	_, ok := m.clearedFields[emailtemplate.FieldBccHeader]
	return ok
}

// ResetBccHeader resets all changes to the "bcc_header" field.
func (m *EmailTemplateMutation) ResetBccHeader() {
	m.bcc_header = nil
	m.appendbcc_header = nil
	delete(m.clearedFields, emailtemplate.FieldBccHeader)
}

// SetSubject sets the "subject" field.
func (m *EmailTemplateMutation) SetSubject(s string) {
	m.subject = &s
}

// Subject returns the value of the "subject" field in the mutation.
func (m *EmailTemplateMutation) Subject() (r string, exists bool) {
	v := m.subject
	if v == nil {
		return
	}
	return *v, true
}

// OldSubject returns the old "subject" field's value of the EmailTemplate entity.
// If the EmailTemplate object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EmailTemplateMutation) OldSubject(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSubject is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSubject requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSubject: %w", err)
	}
	return oldValue.Subject, nil
}

// ResetSubject resets all changes to the "subject" field.
func (m *EmailTemplateMutation) ResetSubject() {
	m.subject = nil
}

// SetBody sets the "body" field.
func (m *EmailTemplateMutation) SetBody(s string) {
	m.body = &s
}

// Body returns the value of the "body" field in the mutation.
func (m *EmailTemplateMutation) Body() (r string, exists bool) {
	v := m.body
	if v == nil {
		return
	}
	return *v, true
}

// OldBody returns the old "body" field's value of the EmailTemplate entity.
// If the EmailTemplate object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EmailTemplateMutation) OldBody(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldBody is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldBody requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldBody: %w", err)
	}
	return oldValue.Body, nil
}

// ResetBody resets all changes to the "body" field.
func (m *EmailTemplateMutation) ResetBody() {
	m.body = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *EmailTemplateMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *EmailTemplateMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the EmailTemplate entity.
// If the EmailTemplate object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EmailTemplateMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *EmailTemplateMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *EmailTemplateMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *EmailTemplateMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the EmailTemplate entity.
// If the EmailTemplate object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EmailTemplateMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *EmailTemplateMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// AddScheduledEmailIDs adds the "scheduled_emails" edge to the ScheduledEmail entity by ids.
func (m *EmailTemplateMutation) AddScheduledEmailIDs(ids ...uuid.UUID) {
	if m.scheduled_emails == nil {
		m.scheduled_emails = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		m.scheduled_emails[ids[i]] = struct{}{}
	}
}

// ClearScheduledEmails clears the "scheduled_emails" edge to the ScheduledEmail entity.
func (m *EmailTemplateMutation) ClearScheduledEmails() {
	m.clearedscheduled_emails = true
}

// ScheduledEmailsCleared reports if the "scheduled_emails" edge to the ScheduledEmail entity was cleared.
func (m *EmailTemplateMutation) ScheduledEmailsCleared() bool {
	return m.clearedscheduled_emails
}

// RemoveScheduledEmailIDs removes the "scheduled_emails" edge to the ScheduledEmail entity by IDs.
func (m *EmailTemplateMutation) RemoveScheduledEmailIDs(ids ...uuid.UUID) {
	if m.removedscheduled_emails == nil {
		m.removedscheduled_emails = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		delete(m.scheduled_emails, ids[i])
		m.removedscheduled_emails[ids[i]] = struct{}{}
	}
}

// RemovedScheduledEmails returns the removed IDs of the "scheduled_emails" edge to the ScheduledEmail entity.
func (m *EmailTemplateMutation) RemovedScheduledEmailsIDs() (ids []uuid.UUID) {
	for id := range m.removedscheduled_emails {
		ids = append(ids, id)
	}
	return
}

// ScheduledEmailsIDs returns the "scheduled_emails" edge IDs in the mutation.
func (m *EmailTemplateMutation) ScheduledEmailsIDs() (ids []uuid.UUID) {
	for id := range m.scheduled_emails {
		ids = append(ids, id)
	}
	return
}

// ResetScheduledEmails resets all changes to the "scheduled_emails" edge.
func (m *EmailTemplateMutation) ResetScheduledEmails() {
	m.scheduled_emails = nil
	m.clearedscheduled_emails = false
	m.removedscheduled_emails = nil
}

// Where appends a list predicates to the EmailTemplateMutation builder.
func (m *EmailTemplateMutation) Where(ps ...predicate.EmailTemplate) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the EmailTemplateMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *EmailTemplateMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.EmailTemplate, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *EmailTemplateMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *EmailTemplateMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (EmailTemplate).
func (m *EmailTemplateMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *EmailTemplateMutation) Fields() []string {
	fields := make([]string, 0, 11)
	if m.name != nil {
		fields = append(fields, emailtemplate.FieldName)
	}
	if m.signal != nil {
		fields = append(fields, emailtemplate.FieldSignal)
	}
	if m.active != nil {
		fields = append(fields, emailtemplate.FieldActive)
	}
	if m.from_header != nil {
		fields = append(fields, emailtemplate.FieldFromHeader)
	}
	if m.reply_to_header != nil {
		fields = append(fields, emailtemplate.FieldReplyToHeader)
	}
	if m.cc_header != nil {
		fields = append(fields, emailtemplate.FieldCcHeader)
	}
	if m.bcc_header != nil {
		fields = append(fields, emailtemplate.FieldBccHeader)
	}
	if m.subject != nil {
		fields = append(fields, emailtemplate.FieldSubject)
	}
	if m.body != nil {
		fields = append(fields, emailtemplate.FieldBody)
	}
	if m.created_at != nil {
		fields = append(fields, emailtemplate.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, emailtemplate.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *EmailTemplateMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case emailtemplate.FieldName:
		return m.Name()
	case emailtemplate.FieldSignal:
		return m.Signal()
	case emailtemplate.FieldActive:
		return m.Active()
	case emailtemplate.FieldFromHeader:
		return m.FromHeader()
	case emailtemplate.FieldReplyToHeader:
		return m.ReplyToHeader()
	case emailtemplate.FieldCcHeader:
		return m.CcHeader()
	case emailtemplate.FieldBccHeader:
		return m.BccHeader()
	case emailtemplate.FieldSubject:
		return m.Subject()
	case emailtemplate.FieldBody:
		return m.Body()
	case emailtemplate.FieldCreatedAt:
		return m.CreatedAt()
	case emailtemplate.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *EmailTemplateMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case emailtemplate.FieldName:
		return m.OldName(ctx)
	case emailtemplate.FieldSignal:
		return m.OldSignal(ctx)
	case emailtemplate.FieldActive:
		return m.OldActive(ctx)
	case emailtemplate.FieldFromHeader:
		return m.OldFromHeader(ctx)
	case emailtemplate.FieldReplyToHeader:
		return m.OldReplyToHeader(ctx)
	case emailtemplate.FieldCcHeader:
		return m.OldCcHeader(ctx)
	case emailtemplate.FieldBccHeader:
		return m.OldBccHeader(ctx)
	case emailtemplate.FieldSubject:
		return m.OldSubject(ctx)
	case emailtemplate.FieldBody:
		return m.OldBody(ctx)
	case emailtemplate.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case emailtemplate.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown EmailTemplate field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *EmailTemplateMutation) SetField(name string, value ent.Value) error {
	switch name {
	case emailtemplate.FieldName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetName(v)
		return nil
	case emailtemplate.FieldSignal:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSignal(v)
		return nil
	case emailtemplate.FieldActive:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetActive(v)
		return nil
	case emailtemplate.FieldFromHeader:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFromHeader(v)
		return nil
	case emailtemplate.FieldReplyToHeader:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetReplyToHeader(v)
		return nil
	case emailtemplate.FieldCcHeader:
		v, ok := value.([]string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCcHeader(v)
		return nil
	case emailtemplate.FieldBccHeader:
		v, ok := value.([]string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetBccHeader(v)
		return nil
	case emailtemplate.FieldSubject:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSubject(v)
		return nil
	case emailtemplate.FieldBody:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetBody(v)
		return nil
	case emailtemplate.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case emailtemplate.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown EmailTemplate field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *EmailTemplateMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *EmailTemplateMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *EmailTemplateMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown EmailTemplate numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *EmailTemplateMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(emailtemplate.FieldReplyToHeader) {
		fields = append(fields, emailtemplate.FieldReplyToHeader)
	}
	if m.FieldCleared(emailtemplate.FieldCcHeader) {
		fields = append(fields, emailtemplate.FieldCcHeader)
	}
	if m.FieldCleared(emailtemplate.FieldBccHeader) {
		fields = append(fields, emailtemplate.FieldBccHeader)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *EmailTemplateMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *EmailTemplateMutation) ClearField(name string) error {
	switch name {
	case emailtemplate.FieldReplyToHeader:
		m.ClearReplyToHeader()
		return nil
	case emailtemplate.FieldCcHeader:
		m.ClearCcHeader()
		return nil
	case emailtemplate.FieldBccHeader:
		m.ClearBccHeader()
		return nil
	}
	return fmt.Errorf("unknown EmailTemplate nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *EmailTemplateMutation) ResetField(name string) error {
	switch name {
	case emailtemplate.FieldName:
		m.ResetName()
		return nil
	case emailtemplate.FieldSignal:
		m.ResetSignal()
		return nil
	case emailtemplate.FieldActive:
		m.ResetActive()
		return nil
	case emailtemplate.FieldFromHeader:
		m.ResetFromHeader()
		return nil
	case emailtemplate.FieldReplyToHeader:
		m.ResetReplyToHeader()
		return nil
	case emailtemplate.FieldCcHeader:
		m.ResetCcHeader()
		return nil
	case emailtemplate.FieldBccHeader:
		m.ResetBccHeader()
		return nil
	case emailtemplate.FieldSubject:
		m.ResetSubject()
		return nil
	case emailtemplate.FieldBody:
		m.ResetBody()
		return nil
	case emailtemplate.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case emailtemplate.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown EmailTemplate field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *EmailTemplateMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.scheduled_emails != nil {
		edges = append(edges, emailtemplate.EdgeScheduledEmails)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *EmailTemplateMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case emailtemplate.EdgeScheduledEmails:
		ids := make([]ent.Value, 0, len(m.scheduled_emails))
		for id := range m.scheduled_emails {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *EmailTemplateMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	if m.removedscheduled_emails != nil {
		edges = append(edges, emailtemplate.EdgeScheduledEmails)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *EmailTemplateMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case emailtemplate.EdgeScheduledEmails:
		ids := make([]ent.Value, 0, len(m.removedscheduled_emails))
		for id := range m.removedscheduled_emails {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *EmailTemplateMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedscheduled_emails {
		edges = append(edges, emailtemplate.EdgeScheduledEmails)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *EmailTemplateMutation) EdgeCleared(name string) bool {
	switch name {
	case emailtemplate.EdgeScheduledEmails:
		return m.clearedscheduled_emails
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *EmailTemplateMutation) ClearEdge(name string) error {
	switch name {
	}
	return fmt.Errorf("unknown EmailTemplate unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *EmailTemplateMutation) ResetEdge(name string) error {
	switch name {
	case emailtemplate.EdgeScheduledEmails:
		m.ResetScheduledEmails()
		return nil
	}
	return fmt.Errorf("unknown EmailTemplate edge %s", name)
}

// EventMutation represents an operation that mutates the Event nodes in the graph.
type EventMutation struct {
	config
	op                   Op
	typ                  string
	id                   *int
	slug                 *string
	start_date           *time.Time
	end_date             *time.Time
	url                  *string
	tags                 *[]string
	appendtags           []string
	open_recruitment     *bool
	created_at           *time.Time
	clearedFields        map[string]struct{}
	administrator        *int
	clearedadministrator bool
	event_tasks          map[int]struct{}
	removedevent_tasks   map[int]struct{}
	clearedevent_tasks   bool
	done                 bool
	oldValue             func(context.Context) (*Event, error)
	predicates           []predicate.Event
}

var _ ent.Mutation = (*EventMutation)(nil)

// eventOption allows management of the mutation configuration using functional options.
type eventOption func(*EventMutation)

// newEventMutation creates new mutation for the Event entity.
func newEventMutation(c config, op Op, opts ...eventOption) *EventMutation {
	m := &EventMutation{
		config:        c,
		op:            op,
		typ:           TypeEvent,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withEventID sets the ID field of the mutation.
func withEventID(id int) eventOption {
	return func(m *EventMutation) {
		var (
			err   error
			once  sync.Once
			value *Event
		)
		m.oldValue = func(ctx context.Context) (*Event, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Event.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withEvent sets the old Event of the mutation.
func withEvent(node *Event) eventOption {
	return func(m *EventMutation) {
		m.oldValue = func(context.Context) (*Event, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m EventMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m EventMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *EventMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *EventMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Event.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetSlug sets the "slug" field.
func (m *EventMutation) SetSlug(s string) {
	m.slug = &s
}

// Slug returns the value of the "slug" field in the mutation.
func (m *EventMutation) Slug() (r string, exists bool) {
	v := m.slug
	if v == nil {
		return
	}
	return *v, true
}

// OldSlug returns the old "slug" field's value of the Event entity.
// If the Event object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EventMutation) OldSlug(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSlug is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSlug requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSlug: %w", err)
	}
	return oldValue.Slug, nil
}

// ResetSlug resets all changes to the "slug" field.
func (m *EventMutation) ResetSlug() {
	m.slug = nil
}

// SetStartDate sets the "start_date" field.
func (m *EventMutation) SetStartDate(t time.Time) {
	m.start_date = &t
}

// StartDate returns the value of the "start_date" field in the mutation.
func (m *EventMutation) StartDate() (r time.Time, exists bool) {
	v := m.start_date
	if v == nil {
		return
	}
	return *v, true
}

// OldStartDate returns the old "start_date" field's value of the Event entity.
// If the Event object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EventMutation) OldStartDate(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStartDate is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStartDate requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStartDate: %w", err)
	}
	return oldValue.StartDate, nil
}

// ClearStartDate clears the value of the "start_date" field.
func (m *EventMutation) ClearStartDate() {
	m.start_date = nil
	m.clearedFields[event.FieldStartDate] = struct{}{}
}

// StartDateCleared returns if the "start_date" field was cleared in this mutation.
func (m *EventMutation) StartDateCleared() bool {
	_, ok := m.clearedFields[event.FieldStartDate]
	return ok
}

// ResetStartDate resets all changes to the "start_date" field.
func (m *EventMutation) ResetStartDate() {
	m.start_date = nil
	delete(m.clearedFields, event.FieldStartDate)
}

// SetEndDate sets the "end_date" field.
func (m *EventMutation) SetEndDate(t time.Time) {
	m.end_date = &t
}

// EndDate returns the value of the "end_date" field in the mutation.
func (m *EventMutation) EndDate() (r time.Time, exists bool) {
	v := m.end_date
	if v == nil {
		return
	}
	return *v, true
}

// OldEndDate returns the old "end_date" field's value of the Event entity.
// If the Event object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EventMutation) OldEndDate(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEndDate is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEndDate requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEndDate: %w", err)
	}
	return oldValue.EndDate, nil
}

// ClearEndDate clears the value of the "end_date" field.
func (m *EventMutation) ClearEndDate() {
	m.end_date = nil
	m.clearedFields[event.FieldEndDate] = struct{}{}
}

// EndDateCleared returns if the "end_date" field was cleared in this mutation.
func (m *EventMutation) EndDateCleared() bool {
	_, ok := m.clearedFields[event.FieldEndDate]
	return ok
}

// ResetEndDate resets all changes to the "end_date" field.
func (m *EventMutation) ResetEndDate() {
	m.end_date = nil
	delete(m.clearedFields, event.FieldEndDate)
}

// SetURL sets the "url" field.
func (m *EventMutation) SetURL(s string) {
	m.url = &s
}

// URL returns the value of the "url" field in the mutation.
func (m *EventMutation) URL() (r string, exists bool) {
	v := m.url
	if v == nil {
		return
	}
	return *v, true
}

// OldURL returns the old "url" field's value of the Event entity.
// If the Event object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EventMutation) OldURL(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldURL is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldURL requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldURL: %w", err)
	}
	return oldValue.URL, nil
}

// ClearURL clears the value of the "url" field.
func (m *EventMutation) ClearURL() {
	m.url = nil
	m.clearedFields[event.FieldURL] = struct{}{}
}

// URLCleared returns if the "url" field was cleared in this mutation.
func (m *EventMutation) URLCleared() bool {
	_, ok := m.clearedFields[event.FieldURL]
	return ok
}

// ResetURL resets all changes to the "url" field.
func (m *EventMutation) ResetURL() {
	m.url = nil
	delete(m.clearedFields, event.FieldURL)
}

// SetTags sets the "tags" field.
func (m *EventMutation) SetTags(s []string) {
	m.tags = &s
	m.appendtags = nil
}

// Tags returns the value of the "tags" field in the mutation.
func (m *EventMutation) Tags() (r []string, exists bool) {
	v := m.tags
	if v == nil {
		return
	}
	return *v, true
}

// OldTags returns the old "tags" field's value of the Event entity.
// If the Event object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EventMutation) OldTags(ctx context.Context) (v []string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTags is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTags requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTags: %w", err)
	}
	return oldValue.Tags, nil
}

// AppendTags adds s to the "tags" field.
func (m *EventMutation) AppendTags(s []string) {
	m.appendtags = append(m.appendtags, s...)
}

// AppendedTags returns the list of values that were appended to the "tags" field in this mutation.
func (m *EventMutation) AppendedTags() ([]string, bool) {
	if len(m.appendtags) == 0 {
		return nil, false
	}
	return m.appendtags, true
}

// ClearTags clears the value of the "tags" field.
func (m *EventMutation) ClearTags() {
	m.tags = nil
	m.appendtags = nil
	m.clearedFields[event.FieldTags] = struct{}{}
}

// TagsCleared returns if the "tags" field was cleared in this mutation.
func (m *EventMutation) TagsCleared() bool {
	_, ok := m.clearedFields[event.FieldTags]
	return ok
}

// ResetTags resets all changes to the "tags" field.
func (m *EventMutation) ResetTags() {
	m.tags = nil
	m.appendtags = nil
	delete(m.clearedFields, event.FieldTags)
}

// SetOpenRecruitment sets the "open_recruitment" field.
func (m *EventMutation) SetOpenRecruitment(b bool) {
	m.open_recruitment = &b
}

// OpenRecruitment returns the value of the "open_recruitment" field in the mutation.
func (m *EventMutation) OpenRecruitment() (r bool, exists bool) {
	v := m.open_recruitment
	if v == nil {
		return
	}
	return *v, true
}

// OldOpenRecruitment returns the old "open_recruitment" field's value of the Event entity.
// If the Event object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EventMutation) OldOpenRecruitment(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldOpenRecruitment is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldOpenRecruitment requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldOpenRecruitment: %w", err)
	}
	return oldValue.OpenRecruitment, nil
}

// ResetOpenRecruitment resets all changes to the "open_recruitment" field.
func (m *EventMutation) ResetOpenRecruitment() {
	m.open_recruitment = nil
}

// SetAdministratorID sets the "administrator_id" field.
func (m *EventMutation) SetAdministratorID(i int) {
	m.administrator = &i
}

// AdministratorID returns the value of the "administrator_id" field in the mutation.
func (m *EventMutation) AdministratorID() (r int, exists bool) {
	v := m.administrator
	if v == nil {
		return
	}
	return *v, true
}

// OldAdministratorID returns the old "administrator_id" field's value of the Event entity.
// If the Event object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EventMutation) OldAdministratorID(ctx context.Context) (v *int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAdministratorID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAdministratorID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAdministratorID: %w", err)
	}
	return oldValue.AdministratorID, nil
}

// ClearAdministratorID clears the value of the "administrator_id" field.
func (m *EventMutation) ClearAdministratorID() {
	m.administrator = nil
	m.clearedFields[event.FieldAdministratorID] = struct{}{}
}

// AdministratorIDCleared returns if the "administrator_id" field was cleared in this mutation.
func (m *EventMutation) AdministratorIDCleared() bool {
	_, ok := m.clearedFields[event.FieldAdministratorID]
	return ok
}

// ResetAdministratorID resets all changes to the "administrator_id" field.
func (m *EventMutation) ResetAdministratorID() {
	m.administrator = nil
	delete(m.clearedFields, event.FieldAdministratorID)
}

// SetCreatedAt sets the "created_at" field.
func (m *EventMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *EventMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Event entity.
// If the Event object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EventMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *EventMutation) ResetCreatedAt() {
	m.created_at = nil
}

// ClearAdministrator clears the "administrator" edge to the Organization entity.
func (m *EventMutation) ClearAdministrator() {
	m.clearedadministrator = true
	m.clearedFields[event.FieldAdministratorID] = struct{}{}
}

// AdministratorCleared reports if the "administrator" edge to the Organization entity was cleared.
func (m *EventMutation) AdministratorCleared() bool {
	return m.AdministratorIDCleared() || m.clearedadministrator
}

// AdministratorIDs returns the "administrator" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// AdministratorID instead. It exists only for internal usage by the builders.
func (m *EventMutation) AdministratorIDs() (ids []int) {
	if id := m.administrator; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetAdministrator resets all changes to the "administrator" edge.
func (m *EventMutation) ResetAdministrator() {
	m.administrator = nil
	m.clearedadministrator = false
}

// AddEventTaskIDs adds the "event_tasks" edge to the Task entity by ids.
func (m *EventMutation) AddEventTaskIDs(ids ...int) {
	if m.event_tasks == nil {
		m.event_tasks = make(map[int]struct{})
	}
	for i := range ids {
		m.event_tasks[ids[i]] = struct{}{}
	}
}

// ClearEventTasks clears the "event_tasks" edge to the Task entity.
func (m *EventMutation) ClearEventTasks() {
	m.clearedevent_tasks = true
}

// EventTasksCleared reports if the "event_tasks" edge to the Task entity was cleared.
func (m *EventMutation) EventTasksCleared() bool {
	return m.clearedevent_tasks
}

// RemoveEventTaskIDs removes the "event_tasks" edge to the Task entity by IDs.
func (m *EventMutation) RemoveEventTaskIDs(ids ...int) {
	if m.removedevent_tasks == nil {
		m.removedevent_tasks = make(map[int]struct{})
	}
	for i := range ids {
		delete(m.event_tasks, ids[i])
		m.removedevent_tasks[ids[i]] = struct{}{}
	}
}

// RemovedEventTasks returns the removed IDs of the "event_tasks" edge to the Task entity.
func (m *EventMutation) RemovedEventTasksIDs() (ids []int) {
	for id := range m.removedevent_tasks {
		ids = append(ids, id)
	}
	return
}

// EventTasksIDs returns the "event_tasks" edge IDs in the mutation.
func (m *EventMutation) EventTasksIDs() (ids []int) {
	for id := range m.event_tasks {
		ids = append(ids, id)
	}
	return
}

// ResetEventTasks resets all changes to the "event_tasks" edge.
func (m *EventMutation) ResetEventTasks() {
	m.event_tasks = nil
	m.clearedevent_tasks = false
	m.removedevent_tasks = nil
}

// Where appends a list predicates to the EventMutation builder.
func (m *EventMutation) Where(ps ...predicate.Event) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the EventMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *EventMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Event, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *EventMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *EventMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Event).
func (m *EventMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *EventMutation) Fields() []string {
	fields := make([]string, 0, 8)
	if m.slug != nil {
		fields = append(fields, event.FieldSlug)
	}
	if m.start_date != nil {
		fields = append(fields, event.FieldStartDate)
	}
	if m.end_date != nil {
		fields = append(fields, event.FieldEndDate)
	}
	if m.url != nil {
		fields = append(fields, event.FieldURL)
	}
	if m.tags != nil {
		fields = append(fields, event.FieldTags)
	}
	if m.open_recruitment != nil {
		fields = append(fields, event.FieldOpenRecruitment)
	}
	if m.administrator != nil {
		fields = append(fields, event.FieldAdministratorID)
	}
	if m.created_at != nil {
		fields = append(fields, event.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *EventMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case event.FieldSlug:
		return m.Slug()
	case event.FieldStartDate:
		return m.StartDate()
	case event.FieldEndDate:
		return m.EndDate()
	case event.FieldURL:
		return m.URL()
	case event.FieldTags:
		return m.Tags()
	case event.FieldOpenRecruitment:
		return m.OpenRecruitment()
	case event.FieldAdministratorID:
		return m.AdministratorID()
	case event.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *EventMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case event.FieldSlug:
		return m.OldSlug(ctx)
	case event.FieldStartDate:
		return m.OldStartDate(ctx)
	case event.FieldEndDate:
		return m.OldEndDate(ctx)
	case event.FieldURL:
		return m.OldURL(ctx)
	case event.FieldTags:
		return m.OldTags(ctx)
	case event.FieldOpenRecruitment:
		return m.OldOpenRecruitment(ctx)
	case event.FieldAdministratorID:
		return m.OldAdministratorID(ctx)
	case event.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Event field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *EventMutation) SetField(name string, value ent.Value) error {
	switch name {
	case event.FieldSlug:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSlug(v)
		return nil
	case event.FieldStartDate:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStartDate(v)
		return nil
	case event.FieldEndDate:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEndDate(v)
		return nil
	case event.FieldURL:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetURL(v)
		return nil
	case event.FieldTags:
		v, ok := value.([]string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTags(v)
		return nil
	case event.FieldOpenRecruitment:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetOpenRecruitment(v)
		return nil
	case event.FieldAdministratorID:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAdministratorID(v)
		return nil
	case event.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Event field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *EventMutation) AddedFields() []string {
	var fields []string
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *EventMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *EventMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown Event numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *EventMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(event.FieldStartDate) {
		fields = append(fields, event.FieldStartDate)
	}
	if m.FieldCleared(event.FieldEndDate) {
		fields = append(fields, event.FieldEndDate)
	}
	if m.FieldCleared(event.FieldURL) {
		fields = append(fields, event.FieldURL)
	}
	if m.FieldCleared(event.FieldTags) {
		fields = append(fields, event.FieldTags)
	}
	if m.FieldCleared(event.FieldAdministratorID) {
		fields = append(fields, event.FieldAdministratorID)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *EventMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *EventMutation) ClearField(name string) error {
	switch name {
	case event.FieldStartDate:
		m.ClearStartDate()
		return nil
	case event.FieldEndDate:
		m.ClearEndDate()
		return nil
	case event.FieldURL:
		m.ClearURL()
		return nil
	case event.FieldTags:
		m.ClearTags()
		return nil
	case event.FieldAdministratorID:
		m.ClearAdministratorID()
		return nil
	}
	return fmt.Errorf("unknown Event nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *EventMutation) ResetField(name string) error {
	switch name {
	case event.FieldSlug:
		m.ResetSlug()
		return nil
	case event.FieldStartDate:
		m.ResetStartDate()
		return nil
	case event.FieldEndDate:
		m.ResetEndDate()
		return nil
	case event.FieldURL:
		m.ResetURL()
		return nil
	case event.FieldTags:
		m.ResetTags()
		return nil
	case event.FieldOpenRecruitment:
		m.ResetOpenRecruitment()
		return nil
	case event.FieldAdministratorID:
		m.ResetAdministratorID()
		return nil
	case event.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown Event field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *EventMutation) AddedEdges() []string {
	edges := make([]string, 0, 2)
	if m.administrator != nil {
		edges = append(edges, event.EdgeAdministrator)
	}
	if m.event_tasks != nil {
		edges = append(edges, event.EdgeEventTasks)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *EventMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case event.EdgeAdministrator:
		if id := m.administrator; id != nil {
			return []ent.Value{*id}
		}
	case event.EdgeEventTasks:
		ids := make([]ent.Value, 0, len(m.event_tasks))
		for id := range m.event_tasks {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *EventMutation) RemovedEdges() []string {
	edges := make([]string, 0, 2)
	if m.removedevent_tasks != nil {
		edges = append(edges, event.EdgeEventTasks)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *EventMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case event.EdgeEventTasks:
		ids := make([]ent.Value, 0, len(m.removedevent_tasks))
		for id := range m.removedevent_tasks {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *EventMutation) ClearedEdges() []string {
	edges := make([]string, 0, 2)
	if m.clearedadministrator {
		edges = append(edges, event.EdgeAdministrator)
	}
	if m.clearedevent_tasks {
		edges = append(edges, event.EdgeEventTasks)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *EventMutation) EdgeCleared(name string) bool {
	switch name {
	case event.EdgeAdministrator:
		return m.clearedadministrator
	case event.EdgeEventTasks:
		return m.clearedevent_tasks
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *EventMutation) ClearEdge(name string) error {
	switch name {
	case event.EdgeAdministrator:
		m.ClearAdministrator()
		return nil
	}
	return fmt.Errorf("unknown Event unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *EventMutation) ResetEdge(name string) error {
	switch name {
	case event.EdgeAdministrator:
		m.ResetAdministrator()
		return nil
	case event.EdgeEventTasks:
		m.ResetEventTasks()
		return nil
	}
	return fmt.Errorf("unknown Event edge %s", name)
}

// MembershipMutation represents an operation that mutates the Membership nodes in the graph.
type MembershipMutation struct {
	config
	op                      Op
	typ                     string
	id                      *int
	name                    *string
	variant                 *membership.Variant
	agreement_start         *time.Time
	agreement_end           *time.Time
	rolled_from_id          *int
	addrolled_from_id       *int
	created_at              *time.Time
	clearedFields           map[string]struct{}
	membership_tasks        map[int]struct{}
	removedmembership_tasks map[int]struct{}
	clearedmembership_tasks bool
	done                    bool
	oldValue                func(context.Context) (*Membership, error)
	predicates              []predicate.Membership
}

var _ ent.Mutation = (*MembershipMutation)(nil)

// membershipOption allows management of the mutation configuration using functional options.
type membershipOption func(*MembershipMutation)

// newMembershipMutation creates new mutation for the Membership entity.
func newMembershipMutation(c config, op Op, opts ...membershipOption) *MembershipMutation {
	m := &MembershipMutation{
		config:        c,
		op:            op,
		typ:           TypeMembership,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withMembershipID sets the ID field of the mutation.
func withMembershipID(id int) membershipOption {
	return func(m *MembershipMutation) {
		var (
			err   error
			once  sync.Once
			value *Membership
		)
		m.oldValue = func(ctx context.Context) (*Membership, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Membership.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withMembership sets the old Membership of the mutation.
func withMembership(node *Membership) membershipOption {
	return func(m *MembershipMutation) {
		m.oldValue = func(context.Context) (*Membership, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m MembershipMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m MembershipMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *MembershipMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *MembershipMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Membership.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetName sets the "name" field.
func (m *MembershipMutation) SetName(s string) {
	m.name = &s
}

// Name returns the value of the "name" field in the mutation.
func (m *MembershipMutation) Name() (r string, exists bool) {
	v := m.name
	if v == nil {
		return
	}
	return *v, true
}

// OldName returns the old "name" field's value of the Membership entity.
// If the Membership object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MembershipMutation) OldName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldName: %w", err)
	}
	return oldValue.Name, nil
}

// ResetName resets all changes to the "name" field.
func (m *MembershipMutation) ResetName() {
	m.name = nil
}

// SetVariant sets the "variant" field.
func (m *MembershipMutation) SetVariant(value membership.Variant) {
	m.variant = &value
}

// Variant returns the value of the "variant" field in the mutation.
func (m *MembershipMutation) Variant() (r membership.Variant, exists bool) {
	v := m.variant
	if v == nil {
		return
	}
	return *v, true
}

// OldVariant returns the old "variant" field's value of the Membership entity.
// If the Membership object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MembershipMutation) OldVariant(ctx context.Context) (v membership.Variant, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldVariant is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldVariant requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldVariant: %w", err)
	}
	return oldValue.Variant, nil
}

// ResetVariant resets all changes to the "variant" field.
func (m *MembershipMutation) ResetVariant() {
	m.variant = nil
}

// SetAgreementStart sets the "agreement_start" field.
func (m *MembershipMutation) SetAgreementStart(t time.Time) {
	m.agreement_start = &t
}

// AgreementStart returns the value of the "agreement_start" field in the mutation.
func (m *MembershipMutation) AgreementStart() (r time.Time, exists bool) {
	v := m.agreement_start
	if v == nil {
		return
	}
	return *v, true
}

// OldAgreementStart returns the old "agreement_start" field's value of the Membership entity.
// If the Membership object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MembershipMutation) OldAgreementStart(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAgreementStart is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAgreementStart requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAgreementStart: %w", err)
	}
	return oldValue.AgreementStart, nil
}

// ResetAgreementStart resets all changes to the "agreement_start" field.
func (m *MembershipMutation) ResetAgreementStart() {
	m.agreement_start = nil
}

// SetAgreementEnd sets the "agreement_end" field.
func (m *MembershipMutation) SetAgreementEnd(t time.Time) {
	m.agreement_end = &t
}

// AgreementEnd returns the value of the "agreement_end" field in the mutation.
func (m *MembershipMutation) AgreementEnd() (r time.Time, exists bool) {
	v := m.agreement_end
	if v == nil {
		return
	}
	return *v, true
}

// OldAgreementEnd returns the old "agreement_end" field's value of the Membership entity.
// If the Membership object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MembershipMutation) OldAgreementEnd(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAgreementEnd is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAgreementEnd requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAgreementEnd: %w", err)
	}
	return oldValue.AgreementEnd, nil
}

// ResetAgreementEnd resets all changes to the "agreement_end" field.
func (m *MembershipMutation) ResetAgreementEnd() {
	m.agreement_end = nil
}

// SetRolledFromID sets the "rolled_from_id" field.
func (m *MembershipMutation) SetRolledFromID(i int) {
	m.rolled_from_id = &i
	m.addrolled_from_id = nil
}

// RolledFromID returns the value of the "rolled_from_id" field in the mutation.
func (m *MembershipMutation) RolledFromID() (r int, exists bool) {
	v := m.rolled_from_id
	if v == nil {
		return
	}
	return *v, true
}

// OldRolledFromID returns the old "rolled_from_id" field's value of the Membership entity.
// If the Membership object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MembershipMutation) OldRolledFromID(ctx context.Context) (v *int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRolledFromID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRolledFromID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRolledFromID: %w", err)
	}
	return oldValue.RolledFromID, nil
}

// AddRolledFromID adds i to the "rolled_from_id" field.
func (m *MembershipMutation) AddRolledFromID(i int) {
	if m.addrolled_from_id != nil {
		*m.addrolled_from_id += i
	} else {
		m.addrolled_from_id = &i
	}
}

// AddedRolledFromID returns the value that was added to the "rolled_from_id" field in this mutation.
func (m *MembershipMutation) AddedRolledFromID() (r int, exists bool) {
	v := m.addrolled_from_id
	if v == nil {
		return
	}
	return *v, true
}

// ClearRolledFromID clears the value of the "rolled_from_id" field.
func (m *MembershipMutation) ClearRolledFromID() {
	m.rolled_from_id = nil
	m.addrolled_from_id = nil
	m.clearedFields[membership.FieldRolledFromID] = struct{}{}
}

// RolledFromIDCleared returns if the "rolled_from_id" field was cleared in this mutation.
func (m *MembershipMutation) RolledFromIDCleared() bool {
	_, ok := m.clearedFields[membership.FieldRolledFromID]
	return ok
}

// ResetRolledFromID resets all changes to the "rolled_from_id" field.
func (m *MembershipMutation) ResetRolledFromID() {
	m.rolled_from_id = nil
	m.addrolled_from_id = nil
	delete(m.clearedFields, membership.FieldRolledFromID)
}

// SetCreatedAt sets the "created_at" field.
func (m *MembershipMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *MembershipMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Membership entity.
// If the Membership object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MembershipMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *MembershipMutation) ResetCreatedAt() {
	m.created_at = nil
}

// AddMembershipTaskIDs adds the "membership_tasks" edge to the MembershipTask entity by ids.
func (m *MembershipMutation) AddMembershipTaskIDs(ids ...int) {
	if m.membership_tasks == nil {
		m.membership_tasks = make(map[int]struct{})
	}
	for i := range ids {
		m.membership_tasks[ids[i]] = struct{}{}
	}
}

// ClearMembershipTasks clears the "membership_tasks" edge to the MembershipTask entity.
func (m *MembershipMutation) ClearMembershipTasks() {
	m.clearedmembership_tasks = true
}

// MembershipTasksCleared reports if the "membership_tasks" edge to the MembershipTask entity was cleared.
func (m *MembershipMutation) MembershipTasksCleared() bool {
	return m.clearedmembership_tasks
}

// RemoveMembershipTaskIDs removes the "membership_tasks" edge to the MembershipTask entity by IDs.
func (m *MembershipMutation) RemoveMembershipTaskIDs(ids ...int) {
	if m.removedmembership_tasks == nil {
		m.removedmembership_tasks = make(map[int]struct{})
	}
	for i := range ids {
		delete(m.membership_tasks, ids[i])
		m.removedmembership_tasks[ids[i]] = struct{}{}
	}
}

// RemovedMembershipTasks returns the removed IDs of the "membership_tasks" edge to the MembershipTask entity.
func (m *MembershipMutation) RemovedMembershipTasksIDs() (ids []int) {
	for id := range m.removedmembership_tasks {
		ids = append(ids, id)
	}
	return
}

// MembershipTasksIDs returns the "membership_tasks" edge IDs in the mutation.
func (m *MembershipMutation) MembershipTasksIDs() (ids []int) {
	for id := range m.membership_tasks {
		ids = append(ids, id)
	}
	return
}

// ResetMembershipTasks resets all changes to the "membership_tasks" edge.
func (m *MembershipMutation) ResetMembershipTasks() {
	m.membership_tasks = nil
	m.clearedmembership_tasks = false
	m.removedmembership_tasks = nil
}

// Where appends a list predicates to the MembershipMutation builder.
func (m *MembershipMutation) Where(ps ...predicate.Membership) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the MembershipMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *MembershipMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Membership, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *MembershipMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *MembershipMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Membership).
func (m *MembershipMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *MembershipMutation) Fields() []string {
	fields := make([]string, 0, 6)
	if m.name != nil {
		fields = append(fields, membership.FieldName)
	}
	if m.variant != nil {
		fields = append(fields, membership.FieldVariant)
	}
	if m.agreement_start != nil {
		fields = append(fields, membership.FieldAgreementStart)
	}
	if m.agreement_end != nil {
		fields = append(fields, membership.FieldAgreementEnd)
	}
	if m.rolled_from_id != nil {
		fields = append(fields, membership.FieldRolledFromID)
	}
	if m.created_at != nil {
		fields = append(fields, membership.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *MembershipMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case membership.FieldName:
		return m.Name()
	case membership.FieldVariant:
		return m.Variant()
	case membership.FieldAgreementStart:
		return m.AgreementStart()
	case membership.FieldAgreementEnd:
		return m.AgreementEnd()
	case membership.FieldRolledFromID:
		return m.RolledFromID()
	case membership.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *MembershipMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case membership.FieldName:
		return m.OldName(ctx)
	case membership.FieldVariant:
		return m.OldVariant(ctx)
	case membership.FieldAgreementStart:
		return m.OldAgreementStart(ctx)
	case membership.FieldAgreementEnd:
		return m.OldAgreementEnd(ctx)
	case membership.FieldRolledFromID:
		return m.OldRolledFromID(ctx)
	case membership.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Membership field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *MembershipMutation) SetField(name string, value ent.Value) error {
	switch name {
	case membership.FieldName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetName(v)
		return nil
	case membership.FieldVariant:
		v, ok := value.(membership.Variant)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetVariant(v)
		return nil
	case membership.FieldAgreementStart:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAgreementStart(v)
		return nil
	case membership.FieldAgreementEnd:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAgreementEnd(v)
		return nil
	case membership.FieldRolledFromID:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRolledFromID(v)
		return nil
	case membership.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Membership field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *MembershipMutation) AddedFields() []string {
	var fields []string
	if m.addrolled_from_id != nil {
		fields = append(fields, membership.FieldRolledFromID)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *MembershipMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case membership.FieldRolledFromID:
		return m.AddedRolledFromID()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *MembershipMutation) AddField(name string, value ent.Value) error {
	switch name {
	case membership.FieldRolledFromID:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddRolledFromID(v)
		return nil
	}
	return fmt.Errorf("unknown Membership numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *MembershipMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(membership.FieldRolledFromID) {
		fields = append(fields, membership.FieldRolledFromID)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *MembershipMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *MembershipMutation) ClearField(name string) error {
	switch name {
	case membership.FieldRolledFromID:
		m.ClearRolledFromID()
		return nil
	}
	return fmt.Errorf("unknown Membership nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *MembershipMutation) ResetField(name string) error {
	switch name {
	case membership.FieldName:
		m.ResetName()
		return nil
	case membership.FieldVariant:
		m.ResetVariant()
		return nil
	case membership.FieldAgreementStart:
		m.ResetAgreementStart()
		return nil
	case membership.FieldAgreementEnd:
		m.ResetAgreementEnd()
		return nil
	case membership.FieldRolledFromID:
		m.ResetRolledFromID()
		return nil
	case membership.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown Membership field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *MembershipMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.membership_tasks != nil {
		edges = append(edges, membership.EdgeMembershipTasks)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *MembershipMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case membership.EdgeMembershipTasks:
		ids := make([]ent.Value, 0, len(m.membership_tasks))
		for id := range m.membership_tasks {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *MembershipMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	if m.removedmembership_tasks != nil {
		edges = append(edges, membership.EdgeMembershipTasks)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *MembershipMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case membership.EdgeMembershipTasks:
		ids := make([]ent.Value, 0, len(m.removedmembership_tasks))
		for id := range m.removedmembership_tasks {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *MembershipMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedmembership_tasks {
		edges = append(edges, membership.EdgeMembershipTasks)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *MembershipMutation) EdgeCleared(name string) bool {
	switch name {
	case membership.EdgeMembershipTasks:
		return m.clearedmembership_tasks
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *MembershipMutation) ClearEdge(name string) error {
	switch name {
	}
	return fmt.Errorf("unknown Membership unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *MembershipMutation) ResetEdge(name string) error {
	switch name {
	case membership.EdgeMembershipTasks:
		m.ResetMembershipTasks()
		return nil
	}
	return fmt.Errorf("unknown Membership edge %s", name)
}

// MembershipTaskMutation represents an operation that mutates the MembershipTask nodes in the graph.
type MembershipTaskMutation struct {
	config
	op                Op
	typ               string
	id                *int
	role              *membershiptask.Role
	created_at        *time.Time
	clearedFields     map[string]struct{}
	membership        *int
	clearedmembership bool
	person            *int
	clearedperson     bool
	done              bool
	oldValue          func(context.Context) (*MembershipTask, error)
	predicates        []predicate.MembershipTask
}

var _ ent.Mutation = (*MembershipTaskMutation)(nil)

// membershiptaskOption allows management of the mutation configuration using functional options.
type membershiptaskOption func(*MembershipTaskMutation)

// newMembershipTaskMutation creates new mutation for the MembershipTask entity.
func newMembershipTaskMutation(c config, op Op, opts ...membershiptaskOption) *MembershipTaskMutation {
	m := &MembershipTaskMutation{
		config:        c,
		op:            op,
		typ:           TypeMembershipTask,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withMembershipTaskID sets the ID field of the mutation.
func withMembershipTaskID(id int) membershiptaskOption {
	return func(m *MembershipTaskMutation) {
		var (
			err   error
			once  sync.Once
			value *MembershipTask
		)
		m.oldValue = func(ctx context.Context) (*MembershipTask, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().MembershipTask.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withMembershipTask sets the old MembershipTask of the mutation.
func withMembershipTask(node *MembershipTask) membershiptaskOption {
	return func(m *MembershipTaskMutation) {
		m.oldValue = func(context.Context) (*MembershipTask, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m MembershipTaskMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m MembershipTaskMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *MembershipTaskMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *MembershipTaskMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().MembershipTask.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetRole sets the "role" field.
func (m *MembershipTaskMutation) SetRole(value membershiptask.Role) {
	m.role = &value
}

// Role returns the value of the "role" field in the mutation.
func (m *MembershipTaskMutation) Role() (r membershiptask.Role, exists bool) {
	v := m.role
	if v == nil {
		return
	}
	return *v, true
}

// OldRole returns the old "role" field's value of the MembershipTask entity.
// If the MembershipTask object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MembershipTaskMutation) OldRole(ctx context.Context) (v membershiptask.Role, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRole is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRole requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRole: %w", err)
	}
	return oldValue.Role, nil
}

// ResetRole resets all changes to the "role" field.
func (m *MembershipTaskMutation) ResetRole() {
	m.role = nil
}

// SetMembershipID sets the "membership_id" field.
func (m *MembershipTaskMutation) SetMembershipID(i int) {
	m.membership = &i
}

// MembershipID returns the value of the "membership_id" field in the mutation.
func (m *MembershipTaskMutation) MembershipID() (r int, exists bool) {
	v := m.membership
	if v == nil {
		return
	}
	return *v, true
}

// OldMembershipID returns the old "membership_id" field's value of the MembershipTask entity.
// If the MembershipTask object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MembershipTaskMutation) OldMembershipID(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMembershipID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMembershipID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMembershipID: %w", err)
	}
	return oldValue.MembershipID, nil
}

// ResetMembershipID resets all changes to the "membership_id" field.
func (m *MembershipTaskMutation) ResetMembershipID() {
	m.membership = nil
}

// SetPersonID sets the "person_id" field.
func (m *MembershipTaskMutation) SetPersonID(i int) {
	m.person = &i
}

// PersonID returns the value of the "person_id" field in the mutation.
func (m *MembershipTaskMutation) PersonID() (r int, exists bool) {
	v := m.person
	if v == nil {
		return
	}
	return *v, true
}

// OldPersonID returns the old "person_id" field's value of the MembershipTask entity.
// If the MembershipTask object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MembershipTaskMutation) OldPersonID(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPersonID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPersonID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPersonID: %w", err)
	}
	return oldValue.PersonID, nil
}

// ResetPersonID resets all changes to the "person_id" field.
func (m *MembershipTaskMutation) ResetPersonID() {
	m.person = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *MembershipTaskMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *MembershipTaskMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the MembershipTask entity.
// If the MembershipTask object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MembershipTaskMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *MembershipTaskMutation) ResetCreatedAt() {
	m.created_at = nil
}

// ClearMembership clears the "membership" edge to the Membership entity.
func (m *MembershipTaskMutation) ClearMembership() {
	m.clearedmembership = true
	m.clearedFields[membershiptask.FieldMembershipID] = struct{}{}
}

// MembershipCleared reports if the "membership" edge to the Membership entity was cleared.
func (m *MembershipTaskMutation) MembershipCleared() bool {
	return m.clearedmembership
}

// MembershipIDs returns the "membership" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// MembershipID instead. It exists only for internal usage by the builders.
func (m *MembershipTaskMutation) MembershipIDs() (ids []int) {
	if id := m.membership; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetMembership resets all changes to the "membership" edge.
func (m *MembershipTaskMutation) ResetMembership() {
	m.membership = nil
	m.clearedmembership = false
}

// ClearPerson clears the "person" edge to the Person entity.
func (m *MembershipTaskMutation) ClearPerson() {
	m.clearedperson = true
	m.clearedFields[membershiptask.FieldPersonID] = struct{}{}
}

// PersonCleared reports if the "person" edge to the Person entity was cleared.
func (m *MembershipTaskMutation) PersonCleared() bool {
	return m.clearedperson
}

// PersonIDs returns the "person" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// PersonID instead. It exists only for internal usage by the builders.
func (m *MembershipTaskMutation) PersonIDs() (ids []int) {
	if id := m.person; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetPerson resets all changes to the "person" edge.
func (m *MembershipTaskMutation) ResetPerson() {
	m.person = nil
	m.clearedperson = false
}

// Where appends a list predicates to the MembershipTaskMutation builder.
func (m *MembershipTaskMutation) Where(ps ...predicate.MembershipTask) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the MembershipTaskMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *MembershipTaskMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.MembershipTask, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *MembershipTaskMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *MembershipTaskMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (MembershipTask).
func (m *MembershipTaskMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *MembershipTaskMutation) Fields() []string {
	fields := make([]string, 0, 4)
	if m.role != nil {
		fields = append(fields, membershiptask.FieldRole)
	}
	if m.membership != nil {
		fields = append(fields, membershiptask.FieldMembershipID)
	}
	if m.person != nil {
		fields = append(fields, membershiptask.FieldPersonID)
	}
	if m.created_at != nil {
		fields = append(fields, membershiptask.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *MembershipTaskMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case membershiptask.FieldRole:
		return m.Role()
	case membershiptask.FieldMembershipID:
		return m.MembershipID()
	case membershiptask.FieldPersonID:
		return m.PersonID()
	case membershiptask.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *MembershipTaskMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case membershiptask.FieldRole:
		return m.OldRole(ctx)
	case membershiptask.FieldMembershipID:
		return m.OldMembershipID(ctx)
	case membershiptask.FieldPersonID:
		return m.OldPersonID(ctx)
	case membershiptask.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown MembershipTask field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *MembershipTaskMutation) SetField(name string, value ent.Value) error {
	switch name {
	case membershiptask.FieldRole:
		v, ok := value.(membershiptask.Role)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRole(v)
		return nil
	case membershiptask.FieldMembershipID:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMembershipID(v)
		return nil
	case membershiptask.FieldPersonID:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPersonID(v)
		return nil
	case membershiptask.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown MembershipTask field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *MembershipTaskMutation) AddedFields() []string {
	var fields []string
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *MembershipTaskMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *MembershipTaskMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown MembershipTask numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *MembershipTaskMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *MembershipTaskMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *MembershipTaskMutation) ClearField(name string) error {
	return fmt.Errorf("unknown MembershipTask nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *MembershipTaskMutation) ResetField(name string) error {
	switch name {
	case membershiptask.FieldRole:
		m.ResetRole()
		return nil
	case membershiptask.FieldMembershipID:
		m.ResetMembershipID()
		return nil
	case membershiptask.FieldPersonID:
		m.ResetPersonID()
		return nil
	case membershiptask.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown MembershipTask field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *MembershipTaskMutation) AddedEdges() []string {
	edges := make([]string, 0, 2)
	if m.membership != nil {
		edges = append(edges, membershiptask.EdgeMembership)
	}
	if m.person != nil {
		edges = append(edges, membershiptask.EdgePerson)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *MembershipTaskMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case membershiptask.EdgeMembership:
		if id := m.membership; id != nil {
			return []ent.Value{*id}
		}
	case membershiptask.EdgePerson:
		if id := m.person; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *MembershipTaskMutation) RemovedEdges() []string {
	edges := make([]string, 0, 2)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *MembershipTaskMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *MembershipTaskMutation) ClearedEdges() []string {
	edges := make([]string, 0, 2)
	if m.clearedmembership {
		edges = append(edges, membershiptask.EdgeMembership)
	}
	if m.clearedperson {
		edges = append(edges, membershiptask.EdgePerson)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *MembershipTaskMutation) EdgeCleared(name string) bool {
	switch name {
	case membershiptask.EdgeMembership:
		return m.clearedmembership
	case membershiptask.EdgePerson:
		return m.clearedperson
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *MembershipTaskMutation) ClearEdge(name string) error {
	switch name {
	case membershiptask.EdgeMembership:
		m.ClearMembership()
		return nil
	case membershiptask.EdgePerson:
		m.ClearPerson()
		return nil
	}
	return fmt.Errorf("unknown MembershipTask unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *MembershipTaskMutation) ResetEdge(name string) error {
	switch name {
	case membershiptask.EdgeMembership:
		m.ResetMembership()
		return nil
	case membershiptask.EdgePerson:
		m.ResetPerson()
		return nil
	}
	return fmt.Errorf("unknown MembershipTask edge %s", name)
}

// OrganizationMutation represents an operation that mutates the Organization nodes in the graph.
type OrganizationMutation struct {
	config
	op                         Op
	typ                        string
	id                         *int
	fullname                   *string
	domain                     *string
	created_at                 *time.Time
	clearedFields              map[string]struct{}
	administered_events        map[int]struct{}
	removedadministered_events map[int]struct{}
	clearedadministered_events bool
	done                       bool
	oldValue                   func(context.Context) (*Organization, error)
	predicates                 []predicate.Organization
}

var _ ent.Mutation = (*OrganizationMutation)(nil)

// organizationOption allows management of the mutation configuration using functional options.
type organizationOption func(*OrganizationMutation)

// newOrganizationMutation creates new mutation for the Organization entity.
func newOrganizationMutation(c config, op Op, opts ...organizationOption) *OrganizationMutation {
	m := &OrganizationMutation{
		config:        c,
		op:            op,
		typ:           TypeOrganization,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withOrganizationID sets the ID field of the mutation.
func withOrganizationID(id int) organizationOption {
	return func(m *OrganizationMutation) {
		var (
			err   error
			once  sync.Once
			value *Organization
		)
		m.oldValue = func(ctx context.Context) (*Organization, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Organization.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withOrganization sets the old Organization of the mutation.
func withOrganization(node *Organization) organizationOption {
	return func(m *OrganizationMutation) {
		m.oldValue = func(context.Context) (*Organization, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m OrganizationMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m OrganizationMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *OrganizationMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *OrganizationMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Organization.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetFullname sets the "fullname" field.
func (m *OrganizationMutation) SetFullname(s string) {
	m.fullname = &s
}

// Fullname returns the value of the "fullname" field in the mutation.
func (m *OrganizationMutation) Fullname() (r string, exists bool) {
	v := m.fullname
	if v == nil {
		return
	}
	return *v, true
}

// OldFullname returns the old "fullname" field's value of the Organization entity.
// If the Organization object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *OrganizationMutation) OldFullname(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFullname is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFullname requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFullname: %w", err)
	}
	return oldValue.Fullname, nil
}

// ResetFullname resets all changes to the "fullname" field.
func (m *OrganizationMutation) ResetFullname() {
	m.fullname = nil
}

// SetDomain sets the "domain" field.
func (m *OrganizationMutation) SetDomain(s string) {
	m.domain = &s
}

// Domain returns the value of the "domain" field in the mutation.
func (m *OrganizationMutation) Domain() (r string, exists bool) {
	v := m.domain
	if v == nil {
		return
	}
	return *v, true
}

// OldDomain returns the old "domain" field's value of the Organization entity.
// If the Organization object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *OrganizationMutation) OldDomain(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDomain is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDomain requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDomain: %w", err)
	}
	return oldValue.Domain, nil
}

// ResetDomain resets all changes to the "domain" field.
func (m *OrganizationMutation) ResetDomain() {
	m.domain = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *OrganizationMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *OrganizationMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Organization entity.
// If the Organization object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *OrganizationMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *OrganizationMutation) ResetCreatedAt() {
	m.created_at = nil
}

// AddAdministeredEventIDs adds the "administered_events" edge to the Event entity by ids.
func (m *OrganizationMutation) AddAdministeredEventIDs(ids ...int) {
	if m.administered_events == nil {
		m.administered_events = make(map[int]struct{})
	}
	for i := range ids {
		m.administered_events[ids[i]] = struct{}{}
	}
}

// ClearAdministeredEvents clears the "administered_events" edge to the Event entity.
func (m *OrganizationMutation) ClearAdministeredEvents() {
	m.clearedadministered_events = true
}

// AdministeredEventsCleared reports if the "administered_events" edge to the Event entity was cleared.
func (m *OrganizationMutation) AdministeredEventsCleared() bool {
	return m.clearedadministered_events
}

// RemoveAdministeredEventIDs removes the "administered_events" edge to the Event entity by IDs.
func (m *OrganizationMutation) RemoveAdministeredEventIDs(ids ...int) {
	if m.removedadministered_events == nil {
		m.removedadministered_events = make(map[int]struct{})
	}
	for i := range ids {
		delete(m.administered_events, ids[i])
		m.removedadministered_events[ids[i]] = struct{}{}
	}
}

// RemovedAdministeredEvents returns the removed IDs of the "administered_events" edge to the Event entity.
func (m *OrganizationMutation) RemovedAdministeredEventsIDs() (ids []int) {
	for id := range m.removedadministered_events {
		ids = append(ids, id)
	}
	return
}

// AdministeredEventsIDs returns the "administered_events" edge IDs in the mutation.
func (m *OrganizationMutation) AdministeredEventsIDs() (ids []int) {
	for id := range m.administered_events {
		ids = append(ids, id)
	}
	return
}

// ResetAdministeredEvents resets all changes to the "administered_events" edge.
func (m *OrganizationMutation) ResetAdministeredEvents() {
	m.administered_events = nil
	m.clearedadministered_events = false
	m.removedadministered_events = nil
}

// Where appends a list predicates to the OrganizationMutation builder.
func (m *OrganizationMutation) Where(ps ...predicate.Organization) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the OrganizationMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *OrganizationMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Organization, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *OrganizationMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *OrganizationMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Organization).
func (m *OrganizationMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *OrganizationMutation) Fields() []string {
	fields := make([]string, 0, 3)
	if m.fullname != nil {
		fields = append(fields, organization.FieldFullname)
	}
	if m.domain != nil {
		fields = append(fields, organization.FieldDomain)
	}
	if m.created_at != nil {
		fields = append(fields, organization.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *OrganizationMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case organization.FieldFullname:
		return m.Fullname()
	case organization.FieldDomain:
		return m.Domain()
	case organization.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *OrganizationMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case organization.FieldFullname:
		return m.OldFullname(ctx)
	case organization.FieldDomain:
		return m.OldDomain(ctx)
	case organization.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Organization field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *OrganizationMutation) SetField(name string, value ent.Value) error {
	switch name {
	case organization.FieldFullname:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFullname(v)
		return nil
	case organization.FieldDomain:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDomain(v)
		return nil
	case organization.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Organization field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *OrganizationMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *OrganizationMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *OrganizationMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown Organization numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *OrganizationMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *OrganizationMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *OrganizationMutation) ClearField(name string) error {
	return fmt.Errorf("unknown Organization nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *OrganizationMutation) ResetField(name string) error {
	switch name {
	case organization.FieldFullname:
		m.ResetFullname()
		return nil
	case organization.FieldDomain:
		m.ResetDomain()
		return nil
	case organization.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown Organization field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *OrganizationMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.administered_events != nil {
		edges = append(edges, organization.EdgeAdministeredEvents)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *OrganizationMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case organization.EdgeAdministeredEvents:
		ids := make([]ent.Value, 0, len(m.administered_events))
		for id := range m.administered_events {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *OrganizationMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	if m.removedadministered_events != nil {
		edges = append(edges, organization.EdgeAdministeredEvents)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *OrganizationMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case organization.EdgeAdministeredEvents:
		ids := make([]ent.Value, 0, len(m.removedadministered_events))
		for id := range m.removedadministered_events {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *OrganizationMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedadministered_events {
		edges = append(edges, organization.EdgeAdministeredEvents)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *OrganizationMutation) EdgeCleared(name string) bool {
	switch name {
	case organization.EdgeAdministeredEvents:
		return m.clearedadministered_events
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *OrganizationMutation) ClearEdge(name string) error {
	switch name {
	}
	return fmt.Errorf("unknown Organization unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *OrganizationMutation) ResetEdge(name string) error {
	switch name {
	case organization.EdgeAdministeredEvents:
		m.ResetAdministeredEvents()
		return nil
	}
	return fmt.Errorf("unknown Organization edge %s", name)
}

// PersonMutation represents an operation that mutates the Person nodes in the graph.
type PersonMutation struct {
	config
	op                         Op
	typ                        string
	id                         *int
	personal                   *string
	family                     *string
	email                      *string
	created_at                 *time.Time
	clearedFields              map[string]struct{}
	tasks                      map[int]struct{}
	removedtasks               map[int]struct{}
	clearedtasks               bool
	awards                     map[int]struct{}
	removedawards              map[int]struct{}
	clearedawards              bool
	training_progresses        map[int]struct{}
	removedtraining_progresses map[int]struct{}
	clearedtraining_progresses bool
	membership_tasks           map[int]struct{}
	removedmembership_tasks    map[int]struct{}
	clearedmembership_tasks    bool
	done                       bool
	oldValue                   func(context.Context) (*Person, error)
	predicates                 []predicate.Person
}

var _ ent.Mutation = (*PersonMutation)(nil)

// personOption allows management of the mutation configuration using functional options.
type personOption func(*PersonMutation)

// newPersonMutation creates new mutation for the Person entity.
func newPersonMutation(c config, op Op, opts ...personOption) *PersonMutation {
	m := &PersonMutation{
		config:        c,
		op:            op,
		typ:           TypePerson,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withPersonID sets the ID field of the mutation.
func withPersonID(id int) personOption {
	return func(m *PersonMutation) {
		var (
			err   error
			once  sync.Once
			value *Person
		)
		m.oldValue = func(ctx context.Context) (*Person, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Person.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withPerson sets the old Person of the mutation.
func withPerson(node *Person) personOption {
	return func(m *PersonMutation) {
		m.oldValue = func(context.Context) (*Person, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m PersonMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m PersonMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *PersonMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *PersonMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Person.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetPersonal sets the "personal" field.
func (m *PersonMutation) SetPersonal(s string) {
	m.personal = &s
}

// Personal returns the value of the "personal" field in the mutation.
func (m *PersonMutation) Personal() (r string, exists bool) {
	v := m.personal
	if v == nil {
		return
	}
	return *v, true
}

// OldPersonal returns the old "personal" field's value of the Person entity.
// If the Person object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PersonMutation) OldPersonal(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPersonal is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPersonal requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPersonal: %w", err)
	}
	return oldValue.Personal, nil
}

// ResetPersonal resets all changes to the "personal" field.
func (m *PersonMutation) ResetPersonal() {
	m.personal = nil
}

// SetFamily sets the "family" field.
func (m *PersonMutation) SetFamily(s string) {
	m.family = &s
}

// Family returns the value of the "family" field in the mutation.
func (m *PersonMutation) Family() (r string, exists bool) {
	v := m.family
	if v == nil {
		return
	}
	return *v, true
}

// OldFamily returns the old "family" field's value of the Person entity.
// If the Person object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PersonMutation) OldFamily(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFamily is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFamily requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFamily: %w", err)
	}
	return oldValue.Family, nil
}

// ClearFamily clears the value of the "family" field.
func (m *PersonMutation) ClearFamily() {
	m.family = nil
	m.clearedFields[person.FieldFamily] = struct{}{}
}

// FamilyCleared returns if the "family" field was cleared in this mutation.
func (m *PersonMutation) FamilyCleared() bool {
	_, ok := m.clearedFields[person.FieldFamily]
	return ok
}

// ResetFamily resets all changes to the "family" field.
func (m *PersonMutation) ResetFamily() {
	m.family = nil
	delete(m.clearedFields, person.FieldFamily)
}

// SetEmail sets the "email" field.
func (m *PersonMutation) SetEmail(s string) {
	m.email = &s
}

// Email returns the value of the "email" field in the mutation.
func (m *PersonMutation) Email() (r string, exists bool) {
	v := m.email
	if v == nil {
		return
	}
	return *v, true
}

// OldEmail returns the old "email" field's value of the Person entity.
// If the Person object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PersonMutation) OldEmail(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEmail is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEmail requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEmail: %w", err)
	}
	return oldValue.Email, nil
}

// ClearEmail clears the value of the "email" field.
func (m *PersonMutation) ClearEmail() {
	m.email = nil
	m.clearedFields[person.FieldEmail] = struct{}{}
}

// EmailCleared returns if the "email" field was cleared in this mutation.
func (m *PersonMutation) EmailCleared() bool {
	_, ok := m.clearedFields[person.FieldEmail]
	return ok
}

// ResetEmail resets all changes to the "email" field.
func (m *PersonMutation) ResetEmail() {
	m.email = nil
	delete(m.clearedFields, person.FieldEmail)
}

// SetCreatedAt sets the "created_at" field.
func (m *PersonMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *PersonMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Person entity.
// If the Person object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PersonMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *PersonMutation) ResetCreatedAt() {
	m.created_at = nil
}

// AddTaskIDs adds the "tasks" edge to the Task entity by ids.
func (m *PersonMutation) AddTaskIDs(ids ...int) {
	if m.tasks == nil {
		m.tasks = make(map[int]struct{})
	}
	for i := range ids {
		m.tasks[ids[i]] = struct{}{}
	}
}

// ClearTasks clears the "tasks" edge to the Task entity.
func (m *PersonMutation) ClearTasks() {
	m.clearedtasks = true
}

// TasksCleared reports if the "tasks" edge to the Task entity was cleared.
func (m *PersonMutation) TasksCleared() bool {
	return m.clearedtasks
}

// RemoveTaskIDs removes the "tasks" edge to the Task entity by IDs.
func (m *PersonMutation) RemoveTaskIDs(ids ...int) {
	if m.removedtasks == nil {
		m.removedtasks = make(map[int]struct{})
	}
	for i := range ids {
		delete(m.tasks, ids[i])
		m.removedtasks[ids[i]] = struct{}{}
	}
}

// RemovedTasks returns the removed IDs of the "tasks" edge to the Task entity.
func (m *PersonMutation) RemovedTasksIDs() (ids []int) {
	for id := range m.removedtasks {
		ids = append(ids, id)
	}
	return
}

// TasksIDs returns the "tasks" edge IDs in the mutation.
func (m *PersonMutation) TasksIDs() (ids []int) {
	for id := range m.tasks {
		ids = append(ids, id)
	}
	return
}

// ResetTasks resets all changes to the "tasks" edge.
func (m *PersonMutation) ResetTasks() {
	m.tasks = nil
	m.clearedtasks = false
	m.removedtasks = nil
}

// AddAwardIDs adds the "awards" edge to the Award entity by ids.
func (m *PersonMutation) AddAwardIDs(ids ...int) {
	if m.awards == nil {
		m.awards = make(map[int]struct{})
	}
	for i := range ids {
		m.awards[ids[i]] = struct{}{}
	}
}

// ClearAwards clears the "awards" edge to the Award entity.
func (m *PersonMutation) ClearAwards() {
	m.clearedawards = true
}

// AwardsCleared reports if the "awards" edge to the Award entity was cleared.
func (m *PersonMutation) AwardsCleared() bool {
	return m.clearedawards
}

// RemoveAwardIDs removes the "awards" edge to the Award entity by IDs.
func (m *PersonMutation) RemoveAwardIDs(ids ...int) {
	if m.removedawards == nil {
		m.removedawards = make(map[int]struct{})
	}
	for i := range ids {
		delete(m.awards, ids[i])
		m.removedawards[ids[i]] = struct{}{}
	}
}

// RemovedAwards returns the removed IDs of the "awards" edge to the Award entity.
func (m *PersonMutation) RemovedAwardsIDs() (ids []int) {
	for id := range m.removedawards {
		ids = append(ids, id)
	}
	return
}

// AwardsIDs returns the "awards" edge IDs in the mutation.
func (m *PersonMutation) AwardsIDs() (ids []int) {
	for id := range m.awards {
		ids = append(ids, id)
	}
	return
}

// ResetAwards resets all changes to the "awards" edge.
func (m *PersonMutation) ResetAwards() {
	m.awards = nil
	m.clearedawards = false
	m.removedawards = nil
}

// AddTrainingProgressIDs adds the "training_progresses" edge to the TrainingProgress entity by ids.
func (m *PersonMutation) AddTrainingProgressIDs(ids ...int) {
	if m.training_progresses == nil {
		m.training_progresses = make(map[int]struct{})
	}
	for i := range ids {
		m.training_progresses[ids[i]] = struct{}{}
	}
}

// ClearTrainingProgresses clears the "training_progresses" edge to the TrainingProgress entity.
func (m *PersonMutation) ClearTrainingProgresses() {
	m.clearedtraining_progresses = true
}

// TrainingProgressesCleared reports if the "training_progresses" edge to the TrainingProgress entity was cleared.
func (m *PersonMutation) TrainingProgressesCleared() bool {
	return m.clearedtraining_progresses
}

// RemoveTrainingProgressIDs removes the "training_progresses" edge to the TrainingProgress entity by IDs.
func (m *PersonMutation) RemoveTrainingProgressIDs(ids ...int) {
	if m.removedtraining_progresses == nil {
		m.removedtraining_progresses = make(map[int]struct{})
	}
	for i := range ids {
		delete(m.training_progresses, ids[i])
		m.removedtraining_progresses[ids[i]] = struct{}{}
	}
}

// RemovedTrainingProgresses returns the removed IDs of the "training_progresses" edge to the TrainingProgress entity.
func (m *PersonMutation) RemovedTrainingProgressesIDs() (ids []int) {
	for id := range m.removedtraining_progresses {
		ids = append(ids, id)
	}
	return
}

// TrainingProgressesIDs returns the "training_progresses" edge IDs in the mutation.
func (m *PersonMutation) TrainingProgressesIDs() (ids []int) {
	for id := range m.training_progresses {
		ids = append(ids, id)
	}
	return
}

// ResetTrainingProgresses resets all changes to the "training_progresses" edge.
func (m *PersonMutation) ResetTrainingProgresses() {
	m.training_progresses = nil
	m.clearedtraining_progresses = false
	m.removedtraining_progresses = nil
}

// AddMembershipTaskIDs adds the "membership_tasks" edge to the MembershipTask entity by ids.
func (m *PersonMutation) AddMembershipTaskIDs(ids ...int) {
	if m.membership_tasks == nil {
		m.membership_tasks = make(map[int]struct{})
	}
	for i := range ids {
		m.membership_tasks[ids[i]] = struct{}{}
	}
}

// ClearMembershipTasks clears the "membership_tasks" edge to the MembershipTask entity.
func (m *PersonMutation) ClearMembershipTasks() {
	m.clearedmembership_tasks = true
}

// MembershipTasksCleared reports if the "membership_tasks" edge to the MembershipTask entity was cleared.
func (m *PersonMutation) MembershipTasksCleared() bool {
	return m.clearedmembership_tasks
}

// RemoveMembershipTaskIDs removes the "membership_tasks" edge to the MembershipTask entity by IDs.
func (m *PersonMutation) RemoveMembershipTaskIDs(ids ...int) {
	if m.removedmembership_tasks == nil {
		m.removedmembership_tasks = make(map[int]struct{})
	}
	for i := range ids {
		delete(m.membership_tasks, ids[i])
		m.removedmembership_tasks[ids[i]] = struct{}{}
	}
}

// RemovedMembershipTasks returns the removed IDs of the "membership_tasks" edge to the MembershipTask entity.
func (m *PersonMutation) RemovedMembershipTasksIDs() (ids []int) {
	for id := range m.removedmembership_tasks {
		ids = append(ids, id)
	}
	return
}

// MembershipTasksIDs returns the "membership_tasks" edge IDs in the mutation.
func (m *PersonMutation) MembershipTasksIDs() (ids []int) {
	for id := range m.membership_tasks {
		ids = append(ids, id)
	}
	return
}

// ResetMembershipTasks resets all changes to the "membership_tasks" edge.
func (m *PersonMutation) ResetMembershipTasks() {
	m.membership_tasks = nil
	m.clearedmembership_tasks = false
	m.removedmembership_tasks = nil
}

// Where appends a list predicates to the PersonMutation builder.
func (m *PersonMutation) Where(ps ...predicate.Person) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the PersonMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *PersonMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Person, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *PersonMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *PersonMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Person).
func (m *PersonMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *PersonMutation) Fields() []string {
	fields := make([]string, 0, 4)
	if m.personal != nil {
		fields = append(fields, person.FieldPersonal)
	}
	if m.family != nil {
		fields = append(fields, person.FieldFamily)
	}
	if m.email != nil {
		fields = append(fields, person.FieldEmail)
	}
	if m.created_at != nil {
		fields = append(fields, person.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *PersonMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case person.FieldPersonal:
		return m.Personal()
	case person.FieldFamily:
		return m.Family()
	case person.FieldEmail:
		return m.Email()
	case person.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *PersonMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case person.FieldPersonal:
		return m.OldPersonal(ctx)
	case person.FieldFamily:
		return m.OldFamily(ctx)
	case person.FieldEmail:
		return m.OldEmail(ctx)
	case person.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Person field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *PersonMutation) SetField(name string, value ent.Value) error {
	switch name {
	case person.FieldPersonal:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPersonal(v)
		return nil
	case person.FieldFamily:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFamily(v)
		return nil
	case person.FieldEmail:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEmail(v)
		return nil
	case person.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Person field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *PersonMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *PersonMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *PersonMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown Person numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *PersonMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(person.FieldFamily) {
		fields = append(fields, person.FieldFamily)
	}
	if m.FieldCleared(person.FieldEmail) {
		fields = append(fields, person.FieldEmail)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *PersonMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *PersonMutation) ClearField(name string) error {
	switch name {
	case person.FieldFamily:
		m.ClearFamily()
		return nil
	case person.FieldEmail:
		m.ClearEmail()
		return nil
	}
	return fmt.Errorf("unknown Person nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *PersonMutation) ResetField(name string) error {
	switch name {
	case person.FieldPersonal:
		m.ResetPersonal()
		return nil
	case person.FieldFamily:
		m.ResetFamily()
		return nil
	case person.FieldEmail:
		m.ResetEmail()
		return nil
	case person.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown Person field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *PersonMutation) AddedEdges() []string {
	edges := make([]string, 0, 4)
	if m.tasks != nil {
		edges = append(edges, person.EdgeTasks)
	}
	if m.awards != nil {
		edges = append(edges, person.EdgeAwards)
	}
	if m.training_progresses != nil {
		edges = append(edges, person.EdgeTrainingProgresses)
	}
	if m.membership_tasks != nil {
		edges = append(edges, person.EdgeMembershipTasks)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *PersonMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case person.EdgeTasks:
		ids := make([]ent.Value, 0, len(m.tasks))
		for id := range m.tasks {
			ids = append(ids, id)
		}
		return ids
	case person.EdgeAwards:
		ids := make([]ent.Value, 0, len(m.awards))
		for id := range m.awards {
			ids = append(ids, id)
		}
		return ids
	case person.EdgeTrainingProgresses:
		ids := make([]ent.Value, 0, len(m.training_progresses))
		for id := range m.training_progresses {
			ids = append(ids, id)
		}
		return ids
	case person.EdgeMembershipTasks:
		ids := make([]ent.Value, 0, len(m.membership_tasks))
		for id := range m.membership_tasks {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *PersonMutation) RemovedEdges() []string {
	edges := make([]string, 0, 4)
	if m.removedtasks != nil {
		edges = append(edges, person.EdgeTasks)
	}
	if m.removedawards != nil {
		edges = append(edges, person.EdgeAwards)
	}
	if m.removedtraining_progresses != nil {
		edges = append(edges, person.EdgeTrainingProgresses)
	}
	if m.removedmembership_tasks != nil {
		edges = append(edges, person.EdgeMembershipTasks)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *PersonMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case person.EdgeTasks:
		ids := make([]ent.Value, 0, len(m.removedtasks))
		for id := range m.removedtasks {
			ids = append(ids, id)
		}
		return ids
	case person.EdgeAwards:
		ids := make([]ent.Value, 0, len(m.removedawards))
		for id := range m.removedawards {
			ids = append(ids, id)
		}
		return ids
	case person.EdgeTrainingProgresses:
		ids := make([]ent.Value, 0, len(m.removedtraining_progresses))
		for id := range m.removedtraining_progresses {
			ids = append(ids, id)
		}
		return ids
	case person.EdgeMembershipTasks:
		ids := make([]ent.Value, 0, len(m.removedmembership_tasks))
		for id := range m.removedmembership_tasks {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *PersonMutation) ClearedEdges() []string {
	edges := make([]string, 0, 4)
	if m.clearedtasks {
		edges = append(edges, person.EdgeTasks)
	}
	if m.clearedawards {
		edges = append(edges, person.EdgeAwards)
	}
	if m.clearedtraining_progresses {
		edges = append(edges, person.EdgeTrainingProgresses)
	}
	if m.clearedmembership_tasks {
		edges = append(edges, person.EdgeMembershipTasks)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *PersonMutation) EdgeCleared(name string) bool {
	switch name {
	case person.EdgeTasks:
		return m.clearedtasks
	case person.EdgeAwards:
		return m.clearedawards
	case person.EdgeTrainingProgresses:
		return m.clearedtraining_progresses
	case person.EdgeMembershipTasks:
		return m.clearedmembership_tasks
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *PersonMutation) ClearEdge(name string) error {
	switch name {
	}
	return fmt.Errorf("unknown Person unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *PersonMutation) ResetEdge(name string) error {
	switch name {
	case person.EdgeTasks:
		m.ResetTasks()
		return nil
	case person.EdgeAwards:
		m.ResetAwards()
		return nil
	case person.EdgeTrainingProgresses:
		m.ResetTrainingProgresses()
		return nil
	case person.EdgeMembershipTasks:
		m.ResetMembershipTasks()
		return nil
	}
	return fmt.Errorf("unknown Person edge %s", name)
}

// ScheduledEmailMutation represents an operation that mutates the ScheduledEmail nodes in the graph.
type ScheduledEmailMutation struct {
	config
	op                           Op
	typ                          string
	id                           *uuid.UUID
	state                        *scheduledemail.State
	scheduled_at                 *time.Time
	to_header                    *[]string
	appendto_header              []string
	from_header                  *string
	reply_to_header              *string
	cc_header                    *[]string
	appendcc_header              []string
	bcc_header                   *[]string
	appendbcc_header             []string
	subject                      *string
	body                         *string
	context_json                 *map[string]interface{}
	to_header_context_json       *[]models.ToHeaderRef
	appendto_header_context_json []models.ToHeaderRef
	related_to                   *scheduledemail.RelatedTo
	related_id                   *int
	addrelated_id                *int
	created_at                   *time.Time
	updated_at                   *time.Time
	clearedFields                map[string]struct{}
	template                     *uuid.UUID
	clearedtemplate              bool
	logs                         map[uuid.UUID]struct{}
	removedlogs                  map[uuid.UUID]struct{}
	clearedlogs                  bool
	attachments                  map[uuid.UUID]struct{}
	removedattachments           map[uuid.UUID]struct{}
	clearedattachments           bool
	done                         bool
	oldValue                     func(context.Context) (*ScheduledEmail, error)
	predicates                   []predicate.ScheduledEmail
}

var _ ent.Mutation = (*ScheduledEmailMutation)(nil)

// scheduledemailOption allows management of the mutation configuration using functional options.
type scheduledemailOption func(*ScheduledEmailMutation)

// newScheduledEmailMutation creates new mutation for the ScheduledEmail entity.
func newScheduledEmailMutation(c config, op Op, opts ...scheduledemailOption) *ScheduledEmailMutation {
	m := &ScheduledEmailMutation{
		config:        c,
		op:            op,
		typ:           TypeScheduledEmail,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withScheduledEmailID sets the ID field of the mutation.
func withScheduledEmailID(id uuid.UUID) scheduledemailOption {
	return func(m *ScheduledEmailMutation) {
		var (
			err   error
			once  sync.Once
			value *ScheduledEmail
		)
		m.oldValue = func(ctx context.Context) (*ScheduledEmail, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().ScheduledEmail.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withScheduledEmail sets the old ScheduledEmail of the mutation.
func withScheduledEmail(node *ScheduledEmail) scheduledemailOption {
	return func(m *ScheduledEmailMutation) {
		m.oldValue = func(context.Context) (*ScheduledEmail, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m ScheduledEmailMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m ScheduledEmailMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of ScheduledEmail entities.
func (m *ScheduledEmailMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *ScheduledEmailMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *ScheduledEmailMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().ScheduledEmail.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetState sets the "state" field.
func (m *ScheduledEmailMutation) SetState(s scheduledemail.State) {
	m.state = &s
}

// State returns the value of the "state" field in the mutation.
func (m *ScheduledEmailMutation) State() (r scheduledemail.State, exists bool) {
	v := m.state
	if v == nil {
		return
	}
	return *v, true
}

// OldState returns the old "state" field's value of the ScheduledEmail entity.
// If the ScheduledEmail object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ScheduledEmailMutation) OldState(ctx context.Context) (v scheduledemail.State, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldState is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldState requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldState: %w", err)
	}
	return oldValue.State, nil
}

// ResetState resets all changes to the "state" field.
func (m *ScheduledEmailMutation) ResetState() {
	m.state = nil
}

// SetScheduledAt sets the "scheduled_at" field.
func (m *ScheduledEmailMutation) SetScheduledAt(t time.Time) {
	m.scheduled_at = &t
}

// ScheduledAt returns the value of the "scheduled_at" field in the mutation.
func (m *ScheduledEmailMutation) ScheduledAt() (r time.Time, exists bool) {
	v := m.scheduled_at
	if v == nil {
		return
	}
	return *v, true
}

// OldScheduledAt returns the old "scheduled_at" field's value of the ScheduledEmail entity.
// If the ScheduledEmail object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ScheduledEmailMutation) OldScheduledAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldScheduledAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldScheduledAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldScheduledAt: %w", err)
	}
	return oldValue.ScheduledAt, nil
}

// ResetScheduledAt resets all changes to the "scheduled_at" field.
func (m *ScheduledEmailMutation) ResetScheduledAt() {
	m.scheduled_at = nil
}

// SetToHeader sets the "to_header" field.
func (m *ScheduledEmailMutation) SetToHeader(s []string) {
	m.to_header = &s
	m.appendto_header = nil
}

// ToHeader returns the value of the "to_header" field in the mutation.
func (m *ScheduledEmailMutation) ToHeader() (r []string, exists bool) {
	v := m.to_header
	if v == nil {
		return
	}
	return *v, true
}

// OldToHeader returns the old "to_header" field's value of the ScheduledEmail entity.
// If the ScheduledEmail object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ScheduledEmailMutation) OldToHeader(ctx context.Context) (v []string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldToHeader is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldToHeader requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldToHeader: %w", err)
	}
	return oldValue.ToHeader, nil
}

// AppendToHeader adds s to the "to_header" field.
func (m *ScheduledEmailMutation) AppendToHeader(s []string) {
	m.appendto_header = append(m.appendto_header, s...)
}

// AppendedToHeader returns the list of values that were appended to the "to_header" field in this mutation.
func (m *ScheduledEmailMutation) AppendedToHeader() ([]string, bool) {
	if len(m.appendto_header) == 0 {
		return nil, false
	}
	return m.appendto_header, true
}

// ResetToHeader resets all changes to the "to_header" field.
func (m *ScheduledEmailMutation) ResetToHeader() {
	m.to_header = nil
	m.appendto_header = nil
}

// SetFromHeader sets the "from_header" field.
func (m *ScheduledEmailMutation) SetFromHeader(s string) {
	m.from_header = &s
}

// FromHeader returns the value of the "from_header" field in the mutation.
func (m *ScheduledEmailMutation) FromHeader() (r string, exists bool) {
	v := m.from_header
	if v == nil {
		return
	}
	return *v, true
}

// OldFromHeader returns the old "from_header" field's value of the ScheduledEmail entity.
// If the ScheduledEmail object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ScheduledEmailMutation) OldFromHeader(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFromHeader is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFromHeader requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFromHeader: %w", err)
	}
	return oldValue.FromHeader, nil
}

// ResetFromHeader resets all changes to the "from_header" field.
func (m *ScheduledEmailMutation) ResetFromHeader() {
	m.from_header = nil
}

// SetReplyToHeader sets the "reply_to_header" field.
func (m *ScheduledEmailMutation) SetReplyToHeader(s string) {
	m.reply_to_header = &s
}

// ReplyToHeader returns the value of the "reply_to_header" field in the mutation.
func (m *ScheduledEmailMutation) ReplyToHeader() (r string, exists bool) {
	v := m.reply_to_header
	if v == nil {
		return
	}
	return *v, true
}

// OldReplyToHeader returns the old "reply_to_header" field's value of the ScheduledEmail entity.
// If the ScheduledEmail object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ScheduledEmailMutation) OldReplyToHeader(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldReplyToHeader is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldReplyToHeader requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldReplyToHeader: %w", err)
	}
	return oldValue.ReplyToHeader, nil
}

// ClearReplyToHeader clears the value of the "reply_to_header" field.
func (m *ScheduledEmailMutation) ClearReplyToHeader() {
	m.reply_to_header = nil
	m.clearedFields[scheduledemail.FieldReplyToHeader] = struct{}{}
}

// ReplyToHeaderCleared returns if the "reply_to_header" field was cleared in this mutation.
func (m *ScheduledEmailMutation) ReplyToHeaderCleared() bool {
	_, ok := m.clearedFields[scheduledemail.FieldReplyToHeader]
	return ok
}

// ResetReplyToHeader resets all changes to the "reply_to_header" field.
func (m *ScheduledEmailMutation) ResetReplyToHeader() {
	m.reply_to_header = nil
	delete(m.clearedFields, scheduledemail.FieldReplyToHeader)
}

// SetCcHeader sets the "cc_header" field.
func (m *ScheduledEmailMutation) SetCcHeader(s []string) {
	m.cc_header = &s
	m.appendcc_header = nil
}

// CcHeader returns the value of the "cc_header" field in the mutation.
func (m *ScheduledEmailMutation) CcHeader() (r []string, exists bool) {
	v := m.cc_header
	if v == nil {
		return
	}
	return *v, true
}

// OldCcHeader returns the old "cc_header" field's value of the ScheduledEmail entity.
// If the ScheduledEmail object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ScheduledEmailMutation) OldCcHeader(ctx context.Context) (v []string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCcHeader is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCcHeader requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCcHeader: %w", err)
	}
	return oldValue.CcHeader, nil
}

// AppendCcHeader adds s to the "cc_header" field.
func (m *ScheduledEmailMutation) AppendCcHeader(s []string) {
	m.appendcc_header = append(m.appendcc_header, s...)
}

// AppendedCcHeader returns the list of values that were appended to the "cc_header" field in this mutation.
func (m *ScheduledEmailMutation) AppendedCcHeader() ([]string, bool) {
	if len(m.appendcc_header) == 0 {
		return nil, false
	}
	return m.appendcc_header, true
}

// ClearCcHeader clears the value of the "cc_header" field.
func (m *ScheduledEmailMutation) ClearCcHeader() {
	m.cc_header = nil
	m.appendcc_header = nil
	m.clearedFields[scheduledemail.FieldCcHeader] = struct{}{}
}

// CcHeaderCleared returns if the "cc_header" field was cleared in this mutation.
func (m *ScheduledEmailMutation) CcHeaderCleared() bool {
	_, ok := m.clearedFields[scheduledemail.FieldCcHeader]
	return ok
}

// ResetCcHeader resets all changes to the "cc_header" field.
func (m *ScheduledEmailMutation) ResetCcHeader() {
	m.cc_header = nil
	m.appendcc_header = nil
	delete(m.clearedFields, scheduledemail.FieldCcHeader)
}

// SetBccHeader sets the "bcc_header" field.
func (m *ScheduledEmailMutation) SetBccHeader(s []string) {
	m.bcc_header = &s
	m.appendbcc_header = nil
}

// BccHeader returns the value of the "bcc_header" field in the mutation.
func (m *ScheduledEmailMutation) BccHeader() (r []string, exists bool) {
	v := m.bcc_header
	if v == nil {
		return
	}
	return *v, true
}

// OldBccHeader returns the old "bcc_header" field's value of the ScheduledEmail entity.
// If the ScheduledEmail object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ScheduledEmailMutation) OldBccHeader(ctx context.Context) (v []string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldBccHeader is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldBccHeader requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldBccHeader: %w", err)
	}
	return oldValue.BccHeader, nil
}

// AppendBccHeader adds s to the "bcc_header" field.
func (m *ScheduledEmailMutation) AppendBccHeader(s []string) {
	m.appendbcc_header = append(m.appendbcc_header, s...)
}

// AppendedBccHeader returns the list of values that were appended to the "bcc_header" field in this mutation.
func (m *ScheduledEmailMutation) AppendedBccHeader() ([]string, bool) {
	if len(m.appendbcc_header) == 0 {
		return nil, false
	}
	return m.appendbcc_header, true
}

// ClearBccHeader clears the value of the "bcc_header" field.
func (m *ScheduledEmailMutation) ClearBccHeader() {
	m.bcc_header = nil
	m.appendbcc_header = nil
	m.clearedFields[scheduledemail.FieldBccHeader] = struct{}{}
}

// BccHeaderCleared returns if the "bcc_header" field was cleared in this mutation.
func (m *ScheduledEmailMutation) BccHeaderCleared() bool {
	_, ok := m.clearedFields[scheduledemail.FieldBccHeader]
	return ok
}

// ResetBccHeader resets all changes to the "bcc_header" field.
func (m *ScheduledEmailMutation) ResetBccHeader() {
	m.bcc_header = nil
	m.appendbcc_header = nil
	delete(m.clearedFields, scheduledemail.FieldBccHeader)
}

// SetSubject sets the "subject" field.
func (m *ScheduledEmailMutation) SetSubject(s string) {
	m.subject = &s
}

// Subject returns the value of the "subject" field in the mutation.
func (m *ScheduledEmailMutation) Subject() (r string, exists bool) {
	v := m.subject
	if v == nil {
		return
	}
	return *v, true
}

// OldSubject returns the old "subject" field's value of the ScheduledEmail entity.
// If the ScheduledEmail object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ScheduledEmailMutation) OldSubject(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSubject is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSubject requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSubject: %w", err)
	}
	return oldValue.Subject, nil
}

// ResetSubject resets all changes to the "subject" field.
func (m *ScheduledEmailMutation) ResetSubject() {
	m.subject = nil
}

// SetBody sets the "body" field.
func (m *ScheduledEmailMutation) SetBody(s string) {
	m.body = &s
}

// Body returns the value of the "body" field in the mutation.
func (m *ScheduledEmailMutation) Body() (r string, exists bool) {
	v := m.body
	if v == nil {
		return
	}
	return *v, true
}

// OldBody returns the old "body" field's value of the ScheduledEmail entity.
// If the ScheduledEmail object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ScheduledEmailMutation) OldBody(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldBody is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldBody requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldBody: %w", err)
	}
	return oldValue.Body, nil
}

// ResetBody resets all changes to the "body" field.
func (m *ScheduledEmailMutation) ResetBody() {
	m.body = nil
}

// SetContextJSON sets the "context_json" field.
func (m *ScheduledEmailMutation) SetContextJSON(value map[string]interface{}) {
	m.context_json = &value
}

// ContextJSON returns the value of the "context_json" field in the mutation.
func (m *ScheduledEmailMutation) ContextJSON() (r map[string]interface{}, exists bool) {
	v := m.context_json
	if v == nil {
		return
	}
	return *v, true
}

// OldContextJSON returns the old "context_json" field's value of the ScheduledEmail entity.
// If the ScheduledEmail object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ScheduledEmailMutation) OldContextJSON(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldContextJSON is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldContextJSON requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldContextJSON: %w", err)
	}
	return oldValue.ContextJSON, nil
}

// ResetContextJSON resets all changes to the "context_json" field.
func (m *ScheduledEmailMutation) ResetContextJSON() {
	m.context_json = nil
}

// SetToHeaderContextJSON sets the "to_header_context_json" field.
func (m *ScheduledEmailMutation) SetToHeaderContextJSON(mhr []models.ToHeaderRef) {
	m.to_header_context_json = &mhr
	m.appendto_header_context_json = nil
}

// ToHeaderContextJSON returns the value of the "to_header_context_json" field in the mutation.
func (m *ScheduledEmailMutation) ToHeaderContextJSON() (r []models.ToHeaderRef, exists bool) {
	v := m.to_header_context_json
	if v == nil {
		return
	}
	return *v, true
}

// OldToHeaderContextJSON returns the old "to_header_context_json" field's value of the ScheduledEmail entity.
// If the ScheduledEmail object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ScheduledEmailMutation) OldToHeaderContextJSON(ctx context.Context) (v []models.ToHeaderRef, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldToHeaderContextJSON is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldToHeaderContextJSON requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldToHeaderContextJSON: %w", err)
	}
	return oldValue.ToHeaderContextJSON, nil
}

// AppendToHeaderContextJSON adds mhr to the "to_header_context_json" field.
func (m *ScheduledEmailMutation) AppendToHeaderContextJSON(mhr []models.ToHeaderRef) {
	m.appendto_header_context_json = append(m.appendto_header_context_json, mhr...)
}

// AppendedToHeaderContextJSON returns the list of values that were appended to the "to_header_context_json" field in this mutation.
func (m *ScheduledEmailMutation) AppendedToHeaderContextJSON() ([]models.ToHeaderRef, bool) {
	if len(m.appendto_header_context_json) == 0 {
		return nil, false
	}
	return m.appendto_header_context_json, true
}

// ResetToHeaderContextJSON resets all changes to the "to_header_context_json" field.
func (m *ScheduledEmailMutation) ResetToHeaderContextJSON() {
	m.to_header_context_json = nil
	m.appendto_header_context_json = nil
}

// SetTemplateID sets the "template_id" field.
func (m *ScheduledEmailMutation) SetTemplateID(u uuid.UUID) {
	m.template = &u
}

// TemplateID returns the value of the "template_id" field in the mutation.
func (m *ScheduledEmailMutation) TemplateID() (r uuid.UUID, exists bool) {
	v := m.template
	if v == nil {
		return
	}
	return *v, true
}

// OldTemplateID returns the old "template_id" field's value of the ScheduledEmail entity.
// If the ScheduledEmail object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ScheduledEmailMutation) OldTemplateID(ctx context.Context) (v *uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTemplateID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTemplateID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTemplateID: %w", err)
	}
	return oldValue.TemplateID, nil
}

// ClearTemplateID clears the value of the "template_id" field.
func (m *ScheduledEmailMutation) ClearTemplateID() {
	m.template = nil
	m.clearedFields[scheduledemail.FieldTemplateID] = struct{}{}
}

// TemplateIDCleared returns if the "template_id" field was cleared in this mutation.
func (m *ScheduledEmailMutation) TemplateIDCleared() bool {
	_, ok := m.clearedFields[scheduledemail.FieldTemplateID]
	return ok
}

// ResetTemplateID resets all changes to the "template_id" field.
func (m *ScheduledEmailMutation) ResetTemplateID() {
	m.template = nil
	delete(m.clearedFields, scheduledemail.FieldTemplateID)
}

// SetRelatedTo sets the "related_to" field.
func (m *ScheduledEmailMutation) SetRelatedTo(st scheduledemail.RelatedTo) {
	m.related_to = &st
}

// RelatedTo returns the value of the "related_to" field in the mutation.
func (m *ScheduledEmailMutation) RelatedTo() (r scheduledemail.RelatedTo, exists bool) {
	v := m.related_to
	if v == nil {
		return
	}
	return *v, true
}

// OldRelatedTo returns the old "related_to" field's value of the ScheduledEmail entity.
// If the ScheduledEmail object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ScheduledEmailMutation) OldRelatedTo(ctx context.Context) (v scheduledemail.RelatedTo, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRelatedTo is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRelatedTo requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRelatedTo: %w", err)
	}
	return oldValue.RelatedTo, nil
}

// ClearRelatedTo clears the value of the "related_to" field.
func (m *ScheduledEmailMutation) ClearRelatedTo() {
	m.related_to = nil
	m.clearedFields[scheduledemail.FieldRelatedTo] = struct{}{}
}

// RelatedToCleared returns if the "related_to" field was cleared in this mutation.
func (m *ScheduledEmailMutation) RelatedToCleared() bool {
	_, ok := m.clearedFields[scheduledemail.FieldRelatedTo]
	return ok
}

// ResetRelatedTo resets all changes to the "related_to" field.
func (m *ScheduledEmailMutation) ResetRelatedTo() {
	m.related_to = nil
	delete(m.clearedFields, scheduledemail.FieldRelatedTo)
}

// SetRelatedID sets the "related_id" field.
func (m *ScheduledEmailMutation) SetRelatedID(i int) {
	m.related_id = &i
	m.addrelated_id = nil
}

// RelatedID returns the value of the "related_id" field in the mutation.
func (m *ScheduledEmailMutation) RelatedID() (r int, exists bool) {
	v := m.related_id
	if v == nil {
		return
	}
	return *v, true
}

// OldRelatedID returns the old "related_id" field's value of the ScheduledEmail entity.
// If the ScheduledEmail object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ScheduledEmailMutation) OldRelatedID(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRelatedID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRelatedID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRelatedID: %w", err)
	}
	return oldValue.RelatedID, nil
}

// AddRelatedID adds i to the "related_id" field.
func (m *ScheduledEmailMutation) AddRelatedID(i int) {
	if m.addrelated_id != nil {
		*m.addrelated_id += i
	} else {
		m.addrelated_id = &i
	}
}

// AddedRelatedID returns the value that was added to the "related_id" field in this mutation.
func (m *ScheduledEmailMutation) AddedRelatedID() (r int, exists bool) {
	v := m.addrelated_id
	if v == nil {
		return
	}
	return *v, true
}

// ClearRelatedID clears the value of the "related_id" field.
func (m *ScheduledEmailMutation) ClearRelatedID() {
	m.related_id = nil
	m.addrelated_id = nil
	m.clearedFields[scheduledemail.FieldRelatedID] = struct{}{}
}

// RelatedIDCleared returns if the "related_id" field was cleared in this mutation.
func (m *ScheduledEmailMutation) RelatedIDCleared() bool {
	_, ok := m.clearedFields[scheduledemail.FieldRelatedID]
	return ok
}

// ResetRelatedID resets all changes to the "related_id" field.
func (m *ScheduledEmailMutation) ResetRelatedID() {
	m.related_id = nil
	m.addrelated_id = nil
	delete(m.clearedFields, scheduledemail.FieldRelatedID)
}

// SetCreatedAt sets the "created_at" field.
func (m *ScheduledEmailMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *ScheduledEmailMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the ScheduledEmail entity.
// If the ScheduledEmail object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ScheduledEmailMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *ScheduledEmailMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *ScheduledEmailMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *ScheduledEmailMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the ScheduledEmail entity.
// If the ScheduledEmail object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ScheduledEmailMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *ScheduledEmailMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// ClearTemplate clears the "template" edge to the EmailTemplate entity.
func (m *ScheduledEmailMutation) ClearTemplate() {
	m.clearedtemplate = true
	m.clearedFields[scheduledemail.FieldTemplateID] = struct{}{}
}

// TemplateCleared reports if the "template" edge to the EmailTemplate entity was cleared.
func (m *ScheduledEmailMutation) TemplateCleared() bool {
	return m.TemplateIDCleared() || m.clearedtemplate
}

// TemplateIDs returns the "template" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// TemplateID instead. It exists only for internal usage by the builders.
func (m *ScheduledEmailMutation) TemplateIDs() (ids []uuid.UUID) {
	if id := m.template; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetTemplate resets all changes to the "template" edge.
func (m *ScheduledEmailMutation) ResetTemplate() {
	m.template = nil
	m.clearedtemplate = false
}

// AddLogIDs adds the "logs" edge to the ScheduledEmailLog entity by ids.
func (m *ScheduledEmailMutation) AddLogIDs(ids ...uuid.UUID) {
	if m.logs == nil {
		m.logs = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		m.logs[ids[i]] = struct{}{}
	}
}

// ClearLogs clears the "logs" edge to the ScheduledEmailLog entity.
func (m *ScheduledEmailMutation) ClearLogs() {
	m.clearedlogs = true
}

// LogsCleared reports if the "logs" edge to the ScheduledEmailLog entity was cleared.
func (m *ScheduledEmailMutation) LogsCleared() bool {
	return m.clearedlogs
}

// RemoveLogIDs removes the "logs" edge to the ScheduledEmailLog entity by IDs.
func (m *ScheduledEmailMutation) RemoveLogIDs(ids ...uuid.UUID) {
	if m.removedlogs == nil {
		m.removedlogs = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		delete(m.logs, ids[i])
		m.removedlogs[ids[i]] = struct{}{}
	}
}

// RemovedLogs returns the removed IDs of the "logs" edge to the ScheduledEmailLog entity.
func (m *ScheduledEmailMutation) RemovedLogsIDs() (ids []uuid.UUID) {
	for id := range m.removedlogs {
		ids = append(ids, id)
	}
	return
}

// LogsIDs returns the "logs" edge IDs in the mutation.
func (m *ScheduledEmailMutation) LogsIDs() (ids []uuid.UUID) {
	for id := range m.logs {
		ids = append(ids, id)
	}
	return
}

// ResetLogs resets all changes to the "logs" edge.
func (m *ScheduledEmailMutation) ResetLogs() {
	m.logs = nil
	m.clearedlogs = false
	m.removedlogs = nil
}

// AddAttachmentIDs adds the "attachments" edge to the EmailAttachment entity by ids.
func (m *ScheduledEmailMutation) AddAttachmentIDs(ids ...uuid.UUID) {
	if m.attachments == nil {
		m.attachments = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		m.attachments[ids[i]] = struct{}{}
	}
}

// ClearAttachments clears the "attachments" edge to the EmailAttachment entity.
func (m *ScheduledEmailMutation) ClearAttachments() {
	m.clearedattachments = true
}

// AttachmentsCleared reports if the "attachments" edge to the EmailAttachment entity was cleared.
func (m *ScheduledEmailMutation) AttachmentsCleared() bool {
	return m.clearedattachments
}

// RemoveAttachmentIDs removes the "attachments" edge to the EmailAttachment entity by IDs.
func (m *ScheduledEmailMutation) RemoveAttachmentIDs(ids ...uuid.UUID) {
	if m.removedattachments == nil {
		m.removedattachments = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		delete(m.attachments, ids[i])
		m.removedattachments[ids[i]] = struct{}{}
	}
}

// RemovedAttachments returns the removed IDs of the "attachments" edge to the EmailAttachment entity.
func (m *ScheduledEmailMutation) RemovedAttachmentsIDs() (ids []uuid.UUID) {
	for id := range m.removedattachments {
		ids = append(ids, id)
	}
	return
}

// AttachmentsIDs returns the "attachments" edge IDs in the mutation.
func (m *ScheduledEmailMutation) AttachmentsIDs() (ids []uuid.UUID) {
	for id := range m.attachments {
		ids = append(ids, id)
	}
	return
}

// ResetAttachments resets all changes to the "attachments" edge.
func (m *ScheduledEmailMutation) ResetAttachments() {
	m.attachments = nil
	m.clearedattachments = false
	m.removedattachments = nil
}

// Where appends a list predicates to the ScheduledEmailMutation builder.
func (m *ScheduledEmailMutation) Where(ps ...predicate.ScheduledEmail) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the ScheduledEmailMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *ScheduledEmailMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.ScheduledEmail, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *ScheduledEmailMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *ScheduledEmailMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (ScheduledEmail).
func (m *ScheduledEmailMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *ScheduledEmailMutation) Fields() []string {
	fields := make([]string, 0, 16)
	if m.state != nil {
		fields = append(fields, scheduledemail.FieldState)
	}
	if m.scheduled_at != nil {
		fields = append(fields, scheduledemail.FieldScheduledAt)
	}
	if m.to_header != nil {
		fields = append(fields, scheduledemail.FieldToHeader)
	}
	if m.from_header != nil {
		fields = append(fields, scheduledemail.FieldFromHeader)
	}
	if m.reply_to_header != nil {
		fields = append(fields, scheduledemail.FieldReplyToHeader)
	}
	if m.cc_header != nil {
		fields = append(fields, scheduledemail.FieldCcHeader)
	}
	if m.bcc_header != nil {
		fields = append(fields, scheduledemail.FieldBccHeader)
	}
	if m.subject != nil {
		fields = append(fields, scheduledemail.FieldSubject)
	}
	if m.body != nil {
		fields = append(fields, scheduledemail.FieldBody)
	}
	if m.context_json != nil {
		fields = append(fields, scheduledemail.FieldContextJSON)
	}
	if m.to_header_context_json != nil {
		fields = append(fields, scheduledemail.FieldToHeaderContextJSON)
	}
	if m.template != nil {
		fields = append(fields, scheduledemail.FieldTemplateID)
	}
	if m.related_to != nil {
		fields = append(fields, scheduledemail.FieldRelatedTo)
	}
	if m.related_id != nil {
		fields = append(fields, scheduledemail.FieldRelatedID)
	}
	if m.created_at != nil {
		fields = append(fields, scheduledemail.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, scheduledemail.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *ScheduledEmailMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case scheduledemail.FieldState:
		return m.State()
	case scheduledemail.FieldScheduledAt:
		return m.ScheduledAt()
	case scheduledemail.FieldToHeader:
		return m.ToHeader()
	case scheduledemail.FieldFromHeader:
		return m.FromHeader()
	case scheduledemail.FieldReplyToHeader:
		return m.ReplyToHeader()
	case scheduledemail.FieldCcHeader:
		return m.CcHeader()
	case scheduledemail.FieldBccHeader:
		return m.BccHeader()
	case scheduledemail.FieldSubject:
		return m.Subject()
	case scheduledemail.FieldBody:
		return m.Body()
	case scheduledemail.FieldContextJSON:
		return m.ContextJSON()
	case scheduledemail.FieldToHeaderContextJSON:
		return m.ToHeaderContextJSON()
	case scheduledemail.FieldTemplateID:
		return m.TemplateID()
	case scheduledemail.FieldRelatedTo:
		return m.RelatedTo()
	case scheduledemail.FieldRelatedID:
		return m.RelatedID()
	case scheduledemail.FieldCreatedAt:
		return m.CreatedAt()
	case scheduledemail.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *ScheduledEmailMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case scheduledemail.FieldState:
		return m.OldState(ctx)
	case scheduledemail.FieldScheduledAt:
		return m.OldScheduledAt(ctx)
	case scheduledemail.FieldToHeader:
		return m.OldToHeader(ctx)
	case scheduledemail.FieldFromHeader:
		return m.OldFromHeader(ctx)
	case scheduledemail.FieldReplyToHeader:
		return m.OldReplyToHeader(ctx)
	case scheduledemail.FieldCcHeader:
		return m.OldCcHeader(ctx)
	case scheduledemail.FieldBccHeader:
		return m.OldBccHeader(ctx)
	case scheduledemail.FieldSubject:
		return m.OldSubject(ctx)
	case scheduledemail.FieldBody:
		return m.OldBody(ctx)
	case scheduledemail.FieldContextJSON:
		return m.OldContextJSON(ctx)
	case scheduledemail.FieldToHeaderContextJSON:
		return m.OldToHeaderContextJSON(ctx)
	case scheduledemail.FieldTemplateID:
		return m.OldTemplateID(ctx)
	case scheduledemail.FieldRelatedTo:
		return m.OldRelatedTo(ctx)
	case scheduledemail.FieldRelatedID:
		return m.OldRelatedID(ctx)
	case scheduledemail.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case scheduledemail.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown ScheduledEmail field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ScheduledEmailMutation) SetField(name string, value ent.Value) error {
	switch name {
	case scheduledemail.FieldState:
		v, ok := value.(scheduledemail.State)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetState(v)
		return nil
	case scheduledemail.FieldScheduledAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetScheduledAt(v)
		return nil
	case scheduledemail.FieldToHeader:
		v, ok := value.([]string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetToHeader(v)
		return nil
	case scheduledemail.FieldFromHeader:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFromHeader(v)
		return nil
	case scheduledemail.FieldReplyToHeader:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetReplyToHeader(v)
		return nil
	case scheduledemail.FieldCcHeader:
		v, ok := value.([]string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCcHeader(v)
		return nil
	case scheduledemail.FieldBccHeader:
		v, ok := value.([]string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetBccHeader(v)
		return nil
	case scheduledemail.FieldSubject:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSubject(v)
		return nil
	case scheduledemail.FieldBody:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetBody(v)
		return nil
	case scheduledemail.FieldContextJSON:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetContextJSON(v)
		return nil
	case scheduledemail.FieldToHeaderContextJSON:
		v, ok := value.([]models.ToHeaderRef)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetToHeaderContextJSON(v)
		return nil
	case scheduledemail.FieldTemplateID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTemplateID(v)
		return nil
	case scheduledemail.FieldRelatedTo:
		v, ok := value.(scheduledemail.RelatedTo)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRelatedTo(v)
		return nil
	case scheduledemail.FieldRelatedID:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRelatedID(v)
		return nil
	case scheduledemail.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case scheduledemail.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown ScheduledEmail field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *ScheduledEmailMutation) AddedFields() []string {
	var fields []string
	if m.addrelated_id != nil {
		fields = append(fields, scheduledemail.FieldRelatedID)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *ScheduledEmailMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case scheduledemail.FieldRelatedID:
		return m.AddedRelatedID()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ScheduledEmailMutation) AddField(name string, value ent.Value) error {
	switch name {
	case scheduledemail.FieldRelatedID:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddRelatedID(v)
		return nil
	}
	return fmt.Errorf("unknown ScheduledEmail numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *ScheduledEmailMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(scheduledemail.FieldReplyToHeader) {
		fields = append(fields, scheduledemail.FieldReplyToHeader)
	}
	if m.FieldCleared(scheduledemail.FieldCcHeader) {
		fields = append(fields, scheduledemail.FieldCcHeader)
	}
	if m.FieldCleared(scheduledemail.FieldBccHeader) {
		fields = append(fields, scheduledemail.FieldBccHeader)
	}
	if m.FieldCleared(scheduledemail.FieldTemplateID) {
		fields = append(fields, scheduledemail.FieldTemplateID)
	}
	if m.FieldCleared(scheduledemail.FieldRelatedTo) {
		fields = append(fields, scheduledemail.FieldRelatedTo)
	}
	if m.FieldCleared(scheduledemail.FieldRelatedID) {
		fields = append(fields, scheduledemail.FieldRelatedID)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *ScheduledEmailMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *ScheduledEmailMutation) ClearField(name string) error {
	switch name {
	case scheduledemail.FieldReplyToHeader:
		m.ClearReplyToHeader()
		return nil
	case scheduledemail.FieldCcHeader:
		m.ClearCcHeader()
		return nil
	case scheduledemail.FieldBccHeader:
		m.ClearBccHeader()
		return nil
	case scheduledemail.FieldTemplateID:
		m.ClearTemplateID()
		return nil
	case scheduledemail.FieldRelatedTo:
		m.ClearRelatedTo()
		return nil
	case scheduledemail.FieldRelatedID:
		m.ClearRelatedID()
		return nil
	}
	return fmt.Errorf("unknown ScheduledEmail nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *ScheduledEmailMutation) ResetField(name string) error {
	switch name {
	case scheduledemail.FieldState:
		m.ResetState()
		return nil
	case scheduledemail.FieldScheduledAt:
		m.ResetScheduledAt()
		return nil
	case scheduledemail.FieldToHeader:
		m.ResetToHeader()
		return nil
	case scheduledemail.FieldFromHeader:
		m.ResetFromHeader()
		return nil
	case scheduledemail.FieldReplyToHeader:
		m.ResetReplyToHeader()
		return nil
	case scheduledemail.FieldCcHeader:
		m.ResetCcHeader()
		return nil
	case scheduledemail.FieldBccHeader:
		m.ResetBccHeader()
		return nil
	case scheduledemail.FieldSubject:
		m.ResetSubject()
		return nil
	case scheduledemail.FieldBody:
		m.ResetBody()
		return nil
	case scheduledemail.FieldContextJSON:
		m.ResetContextJSON()
		return nil
	case scheduledemail.FieldToHeaderContextJSON:
		m.ResetToHeaderContextJSON()
		return nil
	case scheduledemail.FieldTemplateID:
		m.ResetTemplateID()
		return nil
	case scheduledemail.FieldRelatedTo:
		m.ResetRelatedTo()
		return nil
	case scheduledemail.FieldRelatedID:
		m.ResetRelatedID()
		return nil
	case scheduledemail.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case scheduledemail.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown ScheduledEmail field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *ScheduledEmailMutation) AddedEdges() []string {
	edges := make([]string, 0, 3)
	if m.template != nil {
		edges = append(edges, scheduledemail.EdgeTemplate)
	}
	if m.logs != nil {
		edges = append(edges, scheduledemail.EdgeLogs)
	}
	if m.attachments != nil {
		edges = append(edges, scheduledemail.EdgeAttachments)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *ScheduledEmailMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case scheduledemail.EdgeTemplate:
		if id := m.template; id != nil {
			return []ent.Value{*id}
		}
	case scheduledemail.EdgeLogs:
		ids := make([]ent.Value, 0, len(m.logs))
		for id := range m.logs {
			ids = append(ids, id)
		}
		return ids
	case scheduledemail.EdgeAttachments:
		ids := make([]ent.Value, 0, len(m.attachments))
		for id := range m.attachments {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *ScheduledEmailMutation) RemovedEdges() []string {
	edges := make([]string, 0, 3)
	if m.removedlogs != nil {
		edges = append(edges, scheduledemail.EdgeLogs)
	}
	if m.removedattachments != nil {
		edges = append(edges, scheduledemail.EdgeAttachments)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *ScheduledEmailMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case scheduledemail.EdgeLogs:
		ids := make([]ent.Value, 0, len(m.removedlogs))
		for id := range m.removedlogs {
			ids = append(ids, id)
		}
		return ids
	case scheduledemail.EdgeAttachments:
		ids := make([]ent.Value, 0, len(m.removedattachments))
		for id := range m.removedattachments {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *ScheduledEmailMutation) ClearedEdges() []string {
	edges := make([]string, 0, 3)
	if m.clearedtemplate {
		edges = append(edges, scheduledemail.EdgeTemplate)
	}
	if m.clearedlogs {
		edges = append(edges, scheduledemail.EdgeLogs)
	}
	if m.clearedattachments {
		edges = append(edges, scheduledemail.EdgeAttachments)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *ScheduledEmailMutation) EdgeCleared(name string) bool {
	switch name {
	case scheduledemail.EdgeTemplate:
		return m.clearedtemplate
	case scheduledemail.EdgeLogs:
		return m.clearedlogs
	case scheduledemail.EdgeAttachments:
		return m.clearedattachments
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *ScheduledEmailMutation) ClearEdge(name string) error {
	switch name {
	case scheduledemail.EdgeTemplate:
		m.ClearTemplate()
		return nil
	}
	return fmt.Errorf("unknown ScheduledEmail unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *ScheduledEmailMutation) ResetEdge(name string) error {
	switch name {
	case scheduledemail.EdgeTemplate:
		m.ResetTemplate()
		return nil
	case scheduledemail.EdgeLogs:
		m.ResetLogs()
		return nil
	case scheduledemail.EdgeAttachments:
		m.ResetAttachments()
		return nil
	}
	return fmt.Errorf("unknown ScheduledEmail edge %s", name)
}

// ScheduledEmailLogMutation represents an operation that mutates the ScheduledEmailLog nodes in the graph.
type ScheduledEmailLogMutation struct {
	config
	op            Op
	typ           string
	id            *uuid.UUID
	details       *string
	state_before  *scheduledemaillog.StateBefore
	state_after   *scheduledemaillog.StateAfter
	author_id     *int
	addauthor_id  *int
	created_at    *time.Time
	clearedFields map[string]struct{}
	email         *uuid.UUID
	clearedemail  bool
	done          bool
	oldValue      func(context.Context) (*ScheduledEmailLog, error)
	predicates    []predicate.ScheduledEmailLog
}

var _ ent.Mutation = (*ScheduledEmailLogMutation)(nil)

// scheduledemaillogOption allows management of the mutation configuration using functional options.
type scheduledemaillogOption func(*ScheduledEmailLogMutation)

// newScheduledEmailLogMutation creates new mutation for the ScheduledEmailLog entity.
func newScheduledEmailLogMutation(c config, op Op, opts ...scheduledemaillogOption) *ScheduledEmailLogMutation {
	m := &ScheduledEmailLogMutation{
		config:        c,
		op:            op,
		typ:           TypeScheduledEmailLog,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withScheduledEmailLogID sets the ID field of the mutation.
func withScheduledEmailLogID(id uuid.UUID) scheduledemaillogOption {
	return func(m *ScheduledEmailLogMutation) {
		var (
			err   error
			once  sync.Once
			value *ScheduledEmailLog
		)
		m.oldValue = func(ctx context.Context) (*ScheduledEmailLog, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().ScheduledEmailLog.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withScheduledEmailLog sets the old ScheduledEmailLog of the mutation.
func withScheduledEmailLog(node *ScheduledEmailLog) scheduledemaillogOption {
	return func(m *ScheduledEmailLogMutation) {
		m.oldValue = func(context.Context) (*ScheduledEmailLog, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m ScheduledEmailLogMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m ScheduledEmailLogMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of ScheduledEmailLog entities.
func (m *ScheduledEmailLogMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *ScheduledEmailLogMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *ScheduledEmailLogMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().ScheduledEmailLog.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetDetails sets the "details" field.
func (m *ScheduledEmailLogMutation) SetDetails(s string) {
	m.details = &s
}

// Details returns the value of the "details" field in the mutation.
func (m *ScheduledEmailLogMutation) Details() (r string, exists bool) {
	v := m.details
	if v == nil {
		return
	}
	return *v, true
}

// OldDetails returns the old "details" field's value of the ScheduledEmailLog entity.
// If the ScheduledEmailLog object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ScheduledEmailLogMutation) OldDetails(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDetails is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDetails requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDetails: %w", err)
	}
	return oldValue.Details, nil
}

// ResetDetails resets all changes to the "details" field.
func (m *ScheduledEmailLogMutation) ResetDetails() {
	m.details = nil
}

// SetStateBefore sets the "state_before" field.
func (m *ScheduledEmailLogMutation) SetStateBefore(sb scheduledemaillog.StateBefore) {
	m.state_before = &sb
}

// StateBefore returns the value of the "state_before" field in the mutation.
func (m *ScheduledEmailLogMutation) StateBefore() (r scheduledemaillog.StateBefore, exists bool) {
	v := m.state_before
	if v == nil {
		return
	}
	return *v, true
}

// OldStateBefore returns the old "state_before" field's value of the ScheduledEmailLog entity.
// If the ScheduledEmailLog object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ScheduledEmailLogMutation) OldStateBefore(ctx context.Context) (v scheduledemaillog.StateBefore, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStateBefore is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStateBefore requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStateBefore: %w", err)
	}
	return oldValue.StateBefore, nil
}

// ClearStateBefore clears the value of the "state_before" field.
func (m *ScheduledEmailLogMutation) ClearStateBefore() {
	m.state_before = nil
	m.clearedFields[scheduledemaillog.FieldStateBefore] = struct{}{}
}

// StateBeforeCleared returns if the "state_before" field was cleared in this mutation.
func (m *ScheduledEmailLogMutation) StateBeforeCleared() bool {
	_, ok := m.clearedFields[scheduledemaillog.FieldStateBefore]
	return ok
}

// ResetStateBefore resets all changes to the "state_before" field.
func (m *ScheduledEmailLogMutation) ResetStateBefore() {
	m.state_before = nil
	delete(m.clearedFields, scheduledemaillog.FieldStateBefore)
}

// SetStateAfter sets the "state_after" field.
func (m *ScheduledEmailLogMutation) SetStateAfter(sa scheduledemaillog.StateAfter) {
	m.state_after = &sa
}

// StateAfter returns the value of the "state_after" field in the mutation.
func (m *ScheduledEmailLogMutation) StateAfter() (r scheduledemaillog.StateAfter, exists bool) {
	v := m.state_after
	if v == nil {
		return
	}
	return *v, true
}

// OldStateAfter returns the old "state_after" field's value of the ScheduledEmailLog entity.
// If the ScheduledEmailLog object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ScheduledEmailLogMutation) OldStateAfter(ctx context.Context) (v scheduledemaillog.StateAfter, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStateAfter is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStateAfter requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStateAfter: %w", err)
	}
	return oldValue.StateAfter, nil
}

// ResetStateAfter resets all changes to the "state_after" field.
func (m *ScheduledEmailLogMutation) ResetStateAfter() {
	m.state_after = nil
}

// SetAuthorID sets the "author_id" field.
func (m *ScheduledEmailLogMutation) SetAuthorID(i int) {
	m.author_id = &i
	m.addauthor_id = nil
}

// AuthorID returns the value of the "author_id" field in the mutation.
func (m *ScheduledEmailLogMutation) AuthorID() (r int, exists bool) {
	v := m.author_id
	if v == nil {
		return
	}
	return *v, true
}

// OldAuthorID returns the old "author_id" field's value of the ScheduledEmailLog entity.
// If the ScheduledEmailLog object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ScheduledEmailLogMutation) OldAuthorID(ctx context.Context) (v *int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAuthorID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAuthorID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAuthorID: %w", err)
	}
	return oldValue.AuthorID, nil
}

// AddAuthorID adds i to the "author_id" field.
func (m *ScheduledEmailLogMutation) AddAuthorID(i int) {
	if m.addauthor_id != nil {
		*m.addauthor_id += i
	} else {
		m.addauthor_id = &i
	}
}

// AddedAuthorID returns the value that was added to the "author_id" field in this mutation.
func (m *ScheduledEmailLogMutation) AddedAuthorID() (r int, exists bool) {
	v := m.addauthor_id
	if v == nil {
		return
	}
	return *v, true
}

// ClearAuthorID clears the value of the "author_id" field.
func (m *ScheduledEmailLogMutation) ClearAuthorID() {
	m.author_id = nil
	m.addauthor_id = nil
	m.clearedFields[scheduledemaillog.FieldAuthorID] = struct{}{}
}

// AuthorIDCleared returns if the "author_id" field was cleared in this mutation.
func (m *ScheduledEmailLogMutation) AuthorIDCleared() bool {
	_, ok := m.clearedFields[scheduledemaillog.FieldAuthorID]
	return ok
}

// ResetAuthorID resets all changes to the "author_id" field.
func (m *ScheduledEmailLogMutation) ResetAuthorID() {
	m.author_id = nil
	m.addauthor_id = nil
	delete(m.clearedFields, scheduledemaillog.FieldAuthorID)
}

// SetScheduledEmailID sets the "scheduled_email_id" field.
func (m *ScheduledEmailLogMutation) SetScheduledEmailID(u uuid.UUID) {
	m.email = &u
}

// ScheduledEmailID returns the value of the "scheduled_email_id" field in the mutation.
func (m *ScheduledEmailLogMutation) ScheduledEmailID() (r uuid.UUID, exists bool) {
	v := m.email
	if v == nil {
		return
	}
	return *v, true
}

// OldScheduledEmailID returns the old "scheduled_email_id" field's value of the ScheduledEmailLog entity.
// If the ScheduledEmailLog object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ScheduledEmailLogMutation) OldScheduledEmailID(ctx context.Context) (v uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldScheduledEmailID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldScheduledEmailID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldScheduledEmailID: %w", err)
	}
	return oldValue.ScheduledEmailID, nil
}

// ResetScheduledEmailID resets all changes to the "scheduled_email_id" field.
func (m *ScheduledEmailLogMutation) ResetScheduledEmailID() {
	m.email = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *ScheduledEmailLogMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *ScheduledEmailLogMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the ScheduledEmailLog entity.
// If the ScheduledEmailLog object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ScheduledEmailLogMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *ScheduledEmailLogMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetEmailID sets the "email" edge to the ScheduledEmail entity by id.
func (m *ScheduledEmailLogMutation) SetEmailID(id uuid.UUID) {
	m.email = &id
}

// ClearEmail clears the "email" edge to the ScheduledEmail entity.
func (m *ScheduledEmailLogMutation) ClearEmail() {
	m.clearedemail = true
	m.clearedFields[scheduledemaillog.FieldScheduledEmailID] = struct{}{}
}

// EmailCleared reports if the "email" edge to the ScheduledEmail entity was cleared.
func (m *ScheduledEmailLogMutation) EmailCleared() bool {
	return m.clearedemail
}

// EmailID returns the "email" edge ID in the mutation.
func (m *ScheduledEmailLogMutation) EmailID() (id uuid.UUID, exists bool) {
	if m.email != nil {
		return *m.email, true
	}
	return
}

// EmailIDs returns the "email" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// EmailID instead. It exists only for internal usage by the builders.
func (m *ScheduledEmailLogMutation) EmailIDs() (ids []uuid.UUID) {
	if id := m.email; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetEmail resets all changes to the "email" edge.
func (m *ScheduledEmailLogMutation) ResetEmail() {
	m.email = nil
	m.clearedemail = false
}

// Where appends a list predicates to the ScheduledEmailLogMutation builder.
func (m *ScheduledEmailLogMutation) Where(ps ...predicate.ScheduledEmailLog) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the ScheduledEmailLogMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *ScheduledEmailLogMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.ScheduledEmailLog, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *ScheduledEmailLogMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *ScheduledEmailLogMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (ScheduledEmailLog).
func (m *ScheduledEmailLogMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *ScheduledEmailLogMutation) Fields() []string {
	fields := make([]string, 0, 6)
	if m.details != nil {
		fields = append(fields, scheduledemaillog.FieldDetails)
	}
	if m.state_before != nil {
		fields = append(fields, scheduledemaillog.FieldStateBefore)
	}
	if m.state_after != nil {
		fields = append(fields, scheduledemaillog.FieldStateAfter)
	}
	if m.author_id != nil {
		fields = append(fields, scheduledemaillog.FieldAuthorID)
	}
	if m.email != nil {
		fields = append(fields, scheduledemaillog.FieldScheduledEmailID)
	}
	if m.created_at != nil {
		fields = append(fields, scheduledemaillog.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *ScheduledEmailLogMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case scheduledemaillog.FieldDetails:
		return m.Details()
	case scheduledemaillog.FieldStateBefore:
		return m.StateBefore()
	case scheduledemaillog.FieldStateAfter:
		return m.StateAfter()
	case scheduledemaillog.FieldAuthorID:
		return m.AuthorID()
	case scheduledemaillog.FieldScheduledEmailID:
		return m.ScheduledEmailID()
	case scheduledemaillog.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *ScheduledEmailLogMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case scheduledemaillog.FieldDetails:
		return m.OldDetails(ctx)
	case scheduledemaillog.FieldStateBefore:
		return m.OldStateBefore(ctx)
	case scheduledemaillog.FieldStateAfter:
		return m.OldStateAfter(ctx)
	case scheduledemaillog.FieldAuthorID:
		return m.OldAuthorID(ctx)
	case scheduledemaillog.FieldScheduledEmailID:
		return m.OldScheduledEmailID(ctx)
	case scheduledemaillog.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown ScheduledEmailLog field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ScheduledEmailLogMutation) SetField(name string, value ent.Value) error {
	switch name {
	case scheduledemaillog.FieldDetails:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDetails(v)
		return nil
	case scheduledemaillog.FieldStateBefore:
		v, ok := value.(scheduledemaillog.StateBefore)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStateBefore(v)
		return nil
	case scheduledemaillog.FieldStateAfter:
		v, ok := value.(scheduledemaillog.StateAfter)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStateAfter(v)
		return nil
	case scheduledemaillog.FieldAuthorID:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAuthorID(v)
		return nil
	case scheduledemaillog.FieldScheduledEmailID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetScheduledEmailID(v)
		return nil
	case scheduledemaillog.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown ScheduledEmailLog field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *ScheduledEmailLogMutation) AddedFields() []string {
	var fields []string
	if m.addauthor_id != nil {
		fields = append(fields, scheduledemaillog.FieldAuthorID)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *ScheduledEmailLogMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case scheduledemaillog.FieldAuthorID:
		return m.AddedAuthorID()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ScheduledEmailLogMutation) AddField(name string, value ent.Value) error {
	switch name {
	case scheduledemaillog.FieldAuthorID:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddAuthorID(v)
		return nil
	}
	return fmt.Errorf("unknown ScheduledEmailLog numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *ScheduledEmailLogMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(scheduledemaillog.FieldStateBefore) {
		fields = append(fields, scheduledemaillog.FieldStateBefore)
	}
	if m.FieldCleared(scheduledemaillog.FieldAuthorID) {
		fields = append(fields, scheduledemaillog.FieldAuthorID)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *ScheduledEmailLogMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *ScheduledEmailLogMutation) ClearField(name string) error {
	switch name {
	case scheduledemaillog.FieldStateBefore:
		m.ClearStateBefore()
		return nil
	case scheduledemaillog.FieldAuthorID:
		m.ClearAuthorID()
		return nil
	}
	return fmt.Errorf("unknown ScheduledEmailLog nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *ScheduledEmailLogMutation) ResetField(name string) error {
	switch name {
	case scheduledemaillog.FieldDetails:
		m.ResetDetails()
		return nil
	case scheduledemaillog.FieldStateBefore:
		m.ResetStateBefore()
		return nil
	case scheduledemaillog.FieldStateAfter:
		m.ResetStateAfter()
		return nil
	case scheduledemaillog.FieldAuthorID:
		m.ResetAuthorID()
		return nil
	case scheduledemaillog.FieldScheduledEmailID:
		m.ResetScheduledEmailID()
		return nil
	case scheduledemaillog.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown ScheduledEmailLog field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *ScheduledEmailLogMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.email != nil {
		edges = append(edges, scheduledemaillog.EdgeEmail)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *ScheduledEmailLogMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case scheduledemaillog.EdgeEmail:
		if id := m.email; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *ScheduledEmailLogMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *ScheduledEmailLogMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *ScheduledEmailLogMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedemail {
		edges = append(edges, scheduledemaillog.EdgeEmail)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *ScheduledEmailLogMutation) EdgeCleared(name string) bool {
	switch name {
	case scheduledemaillog.EdgeEmail:
		return m.clearedemail
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *ScheduledEmailLogMutation) ClearEdge(name string) error {
	switch name {
	case scheduledemaillog.EdgeEmail:
		m.ClearEmail()
		return nil
	}
	return fmt.Errorf("unknown ScheduledEmailLog unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *ScheduledEmailLogMutation) ResetEdge(name string) error {
	switch name {
	case scheduledemaillog.EdgeEmail:
		m.ResetEmail()
		return nil
	}
	return fmt.Errorf("unknown ScheduledEmailLog edge %s", name)
}

// TaskMutation represents an operation that mutates the Task nodes in the graph.
type TaskMutation struct {
	config
	op            Op
	typ           string
	id            *int
	role          *task.Role
	created_at    *time.Time
	clearedFields map[string]struct{}
	event         *int
	clearedevent  bool
	person        *int
	clearedperson bool
	done          bool
	oldValue      func(context.Context) (*Task, error)
	predicates    []predicate.Task
}

var _ ent.Mutation = (*TaskMutation)(nil)

// taskOption allows management of the mutation configuration using functional options.
type taskOption func(*TaskMutation)

// newTaskMutation creates new mutation for the Task entity.
func newTaskMutation(c config, op Op, opts ...taskOption) *TaskMutation {
	m := &TaskMutation{
		config:        c,
		op:            op,
		typ:           TypeTask,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withTaskID sets the ID field of the mutation.
func withTaskID(id int) taskOption {
	return func(m *TaskMutation) {
		var (
			err   error
			once  sync.Once
			value *Task
		)
		m.oldValue = func(ctx context.Context) (*Task, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Task.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withTask sets the old Task of the mutation.
func withTask(node *Task) taskOption {
	return func(m *TaskMutation) {
		m.oldValue = func(context.Context) (*Task, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m TaskMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m TaskMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *TaskMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *TaskMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Task.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetRole sets the "role" field.
func (m *TaskMutation) SetRole(t task.Role) {
	m.role = &t
}

// Role returns the value of the "role" field in the mutation.
func (m *TaskMutation) Role() (r task.Role, exists bool) {
	v := m.role
	if v == nil {
		return
	}
	return *v, true
}

// OldRole returns the old "role" field's value of the Task entity.
// If the Task object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaskMutation) OldRole(ctx context.Context) (v task.Role, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRole is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRole requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRole: %w", err)
	}
	return oldValue.Role, nil
}

// ResetRole resets all changes to the "role" field.
func (m *TaskMutation) ResetRole() {
	m.role = nil
}

// SetEventID sets the "event_id" field.
func (m *TaskMutation) SetEventID(i int) {
	m.event = &i
}

// EventID returns the value of the "event_id" field in the mutation.
func (m *TaskMutation) EventID() (r int, exists bool) {
	v := m.event
	if v == nil {
		return
	}
	return *v, true
}

// OldEventID returns the old "event_id" field's value of the Task entity.
// If the Task object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaskMutation) OldEventID(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEventID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEventID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEventID: %w", err)
	}
	return oldValue.EventID, nil
}

// ResetEventID resets all changes to the "event_id" field.
func (m *TaskMutation) ResetEventID() {
	m.event = nil
}

// SetPersonID sets the "person_id" field.
func (m *TaskMutation) SetPersonID(i int) {
	m.person = &i
}

// PersonID returns the value of the "person_id" field in the mutation.
func (m *TaskMutation) PersonID() (r int, exists bool) {
	v := m.person
	if v == nil {
		return
	}
	return *v, true
}

// OldPersonID returns the old "person_id" field's value of the Task entity.
// If the Task object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaskMutation) OldPersonID(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPersonID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPersonID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPersonID: %w", err)
	}
	return oldValue.PersonID, nil
}

// ResetPersonID resets all changes to the "person_id" field.
func (m *TaskMutation) ResetPersonID() {
	m.person = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *TaskMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *TaskMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Task entity.
// If the Task object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaskMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *TaskMutation) ResetCreatedAt() {
	m.created_at = nil
}

// ClearEvent clears the "event" edge to the Event entity.
func (m *TaskMutation) ClearEvent() {
	m.clearedevent = true
	m.clearedFields[task.FieldEventID] = struct{}{}
}

// EventCleared reports if the "event" edge to the Event entity was cleared.
func (m *TaskMutation) EventCleared() bool {
	return m.clearedevent
}

// EventIDs returns the "event" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// EventID instead. It exists only for internal usage by the builders.
func (m *TaskMutation) EventIDs() (ids []int) {
	if id := m.event; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetEvent resets all changes to the "event" edge.
func (m *TaskMutation) ResetEvent() {
	m.event = nil
	m.clearedevent = false
}

// ClearPerson clears the "person" edge to the Person entity.
func (m *TaskMutation) ClearPerson() {
	m.clearedperson = true
	m.clearedFields[task.FieldPersonID] = struct{}{}
}

// PersonCleared reports if the "person" edge to the Person entity was cleared.
func (m *TaskMutation) PersonCleared() bool {
	return m.clearedperson
}

// PersonIDs returns the "person" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// PersonID instead. It exists only for internal usage by the builders.
func (m *TaskMutation) PersonIDs() (ids []int) {
	if id := m.person; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetPerson resets all changes to the "person" edge.
func (m *TaskMutation) ResetPerson() {
	m.person = nil
	m.clearedperson = false
}

// Where appends a list predicates to the TaskMutation builder.
func (m *TaskMutation) Where(ps ...predicate.Task) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the TaskMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *TaskMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Task, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *TaskMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *TaskMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Task).
func (m *TaskMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *TaskMutation) Fields() []string {
	fields := make([]string, 0, 4)
	if m.role != nil {
		fields = append(fields, task.FieldRole)
	}
	if m.event != nil {
		fields = append(fields, task.FieldEventID)
	}
	if m.person != nil {
		fields = append(fields, task.FieldPersonID)
	}
	if m.created_at != nil {
		fields = append(fields, task.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *TaskMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case task.FieldRole:
		return m.Role()
	case task.FieldEventID:
		return m.EventID()
	case task.FieldPersonID:
		return m.PersonID()
	case task.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *TaskMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case task.FieldRole:
		return m.OldRole(ctx)
	case task.FieldEventID:
		return m.OldEventID(ctx)
	case task.FieldPersonID:
		return m.OldPersonID(ctx)
	case task.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Task field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *TaskMutation) SetField(name string, value ent.Value) error {
	switch name {
	case task.FieldRole:
		v, ok := value.(task.Role)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRole(v)
		return nil
	case task.FieldEventID:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEventID(v)
		return nil
	case task.FieldPersonID:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPersonID(v)
		return nil
	case task.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Task field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *TaskMutation) AddedFields() []string {
	var fields []string
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *TaskMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *TaskMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown Task numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *TaskMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *TaskMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *TaskMutation) ClearField(name string) error {
	return fmt.Errorf("unknown Task nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *TaskMutation) ResetField(name string) error {
	switch name {
	case task.FieldRole:
		m.ResetRole()
		return nil
	case task.FieldEventID:
		m.ResetEventID()
		return nil
	case task.FieldPersonID:
		m.ResetPersonID()
		return nil
	case task.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown Task field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *TaskMutation) AddedEdges() []string {
	edges := make([]string, 0, 2)
	if m.event != nil {
		edges = append(edges, task.EdgeEvent)
	}
	if m.person != nil {
		edges = append(edges, task.EdgePerson)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *TaskMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case task.EdgeEvent:
		if id := m.event; id != nil {
			return []ent.Value{*id}
		}
	case task.EdgePerson:
		if id := m.person; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *TaskMutation) RemovedEdges() []string {
	edges := make([]string, 0, 2)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *TaskMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *TaskMutation) ClearedEdges() []string {
	edges := make([]string, 0, 2)
	if m.clearedevent {
		edges = append(edges, task.EdgeEvent)
	}
	if m.clearedperson {
		edges = append(edges, task.EdgePerson)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *TaskMutation) EdgeCleared(name string) bool {
	switch name {
	case task.EdgeEvent:
		return m.clearedevent
	case task.EdgePerson:
		return m.clearedperson
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *TaskMutation) ClearEdge(name string) error {
	switch name {
	case task.EdgeEvent:
		m.ClearEvent()
		return nil
	case task.EdgePerson:
		m.ClearPerson()
		return nil
	}
	return fmt.Errorf("unknown Task unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *TaskMutation) ResetEdge(name string) error {
	switch name {
	case task.EdgeEvent:
		m.ResetEvent()
		return nil
	case task.EdgePerson:
		m.ResetPerson()
		return nil
	}
	return fmt.Errorf("unknown Task edge %s", name)
}

// TrainingProgressMutation represents an operation that mutates the TrainingProgress nodes in the graph.
type TrainingProgressMutation struct {
	config
	op            Op
	typ           string
	id            *int
	requirement   *trainingprogress.Requirement
	state         *trainingprogress.State
	created_at    *time.Time
	clearedFields map[string]struct{}
	person        *int
	clearedperson bool
	done          bool
	oldValue      func(context.Context) (*TrainingProgress, error)
	predicates    []predicate.TrainingProgress
}

var _ ent.Mutation = (*TrainingProgressMutation)(nil)

// trainingprogressOption allows management of the mutation configuration using functional options.
type trainingprogressOption func(*TrainingProgressMutation)

// newTrainingProgressMutation creates new mutation for the TrainingProgress entity.
func newTrainingProgressMutation(c config, op Op, opts ...trainingprogressOption) *TrainingProgressMutation {
	m := &TrainingProgressMutation{
		config:        c,
		op:            op,
		typ:           TypeTrainingProgress,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withTrainingProgressID sets the ID field of the mutation.
func withTrainingProgressID(id int) trainingprogressOption {
	return func(m *TrainingProgressMutation) {
		var (
			err   error
			once  sync.Once
			value *TrainingProgress
		)
		m.oldValue = func(ctx context.Context) (*TrainingProgress, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().TrainingProgress.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withTrainingProgress sets the old TrainingProgress of the mutation.
func withTrainingProgress(node *TrainingProgress) trainingprogressOption {
	return func(m *TrainingProgressMutation) {
		m.oldValue = func(context.Context) (*TrainingProgress, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m TrainingProgressMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m TrainingProgressMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *TrainingProgressMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *TrainingProgressMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().TrainingProgress.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetRequirement sets the "requirement" field.
func (m *TrainingProgressMutation) SetRequirement(t trainingprogress.Requirement) {
	m.requirement = &t
}

// Requirement returns the value of the "requirement" field in the mutation.
func (m *TrainingProgressMutation) Requirement() (r trainingprogress.Requirement, exists bool) {
	v := m.requirement
	if v == nil {
		return
	}
	return *v, true
}

// OldRequirement returns the old "requirement" field's value of the TrainingProgress entity.
// If the TrainingProgress object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TrainingProgressMutation) OldRequirement(ctx context.Context) (v trainingprogress.Requirement, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRequirement is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRequirement requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRequirement: %w", err)
	}
	return oldValue.Requirement, nil
}

// ResetRequirement resets all changes to the "requirement" field.
func (m *TrainingProgressMutation) ResetRequirement() {
	m.requirement = nil
}

// SetState sets the "state" field.
func (m *TrainingProgressMutation) SetState(t trainingprogress.State) {
	m.state = &t
}

// State returns the value of the "state" field in the mutation.
func (m *TrainingProgressMutation) State() (r trainingprogress.State, exists bool) {
	v := m.state
	if v == nil {
		return
	}
	return *v, true
}

// OldState returns the old "state" field's value of the TrainingProgress entity.
// If the TrainingProgress object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TrainingProgressMutation) OldState(ctx context.Context) (v trainingprogress.State, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldState is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldState requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldState: %w", err)
	}
	return oldValue.State, nil
}

// ResetState resets all changes to the "state" field.
func (m *TrainingProgressMutation) ResetState() {
	m.state = nil
}

// SetPersonID sets the "person_id" field.
func (m *TrainingProgressMutation) SetPersonID(i int) {
	m.person = &i
}

// PersonID returns the value of the "person_id" field in the mutation.
func (m *TrainingProgressMutation) PersonID() (r int, exists bool) {
	v := m.person
	if v == nil {
		return
	}
	return *v, true
}

// OldPersonID returns the old "person_id" field's value of the TrainingProgress entity.
// If the TrainingProgress object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TrainingProgressMutation) OldPersonID(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPersonID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPersonID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPersonID: %w", err)
	}
	return oldValue.PersonID, nil
}

// ResetPersonID resets all changes to the "person_id" field.
func (m *TrainingProgressMutation) ResetPersonID() {
	m.person = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *TrainingProgressMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *TrainingProgressMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the TrainingProgress entity.
// If the TrainingProgress object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TrainingProgressMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *TrainingProgressMutation) ResetCreatedAt() {
	m.created_at = nil
}

// ClearPerson clears the "person" edge to the Person entity.
func (m *TrainingProgressMutation) ClearPerson() {
	m.clearedperson = true
	m.clearedFields[trainingprogress.FieldPersonID] = struct{}{}
}

// PersonCleared reports if the "person" edge to the Person entity was cleared.
func (m *TrainingProgressMutation) PersonCleared() bool {
	return m.clearedperson
}

// PersonIDs returns the "person" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// PersonID instead. It exists only for internal usage by the builders.
func (m *TrainingProgressMutation) PersonIDs() (ids []int) {
	if id := m.person; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetPerson resets all changes to the "person" edge.
func (m *TrainingProgressMutation) ResetPerson() {
	m.person = nil
	m.clearedperson = false
}

// Where appends a list predicates to the TrainingProgressMutation builder.
func (m *TrainingProgressMutation) Where(ps ...predicate.TrainingProgress) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the TrainingProgressMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *TrainingProgressMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.TrainingProgress, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *TrainingProgressMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *TrainingProgressMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (TrainingProgress).
func (m *TrainingProgressMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *TrainingProgressMutation) Fields() []string {
	fields := make([]string, 0, 4)
	if m.requirement != nil {
		fields = append(fields, trainingprogress.FieldRequirement)
	}
	if m.state != nil {
		fields = append(fields, trainingprogress.FieldState)
	}
	if m.person != nil {
		fields = append(fields, trainingprogress.FieldPersonID)
	}
	if m.created_at != nil {
		fields = append(fields, trainingprogress.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *TrainingProgressMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case trainingprogress.FieldRequirement:
		return m.Requirement()
	case trainingprogress.FieldState:
		return m.State()
	case trainingprogress.FieldPersonID:
		return m.PersonID()
	case trainingprogress.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *TrainingProgressMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case trainingprogress.FieldRequirement:
		return m.OldRequirement(ctx)
	case trainingprogress.FieldState:
		return m.OldState(ctx)
	case trainingprogress.FieldPersonID:
		return m.OldPersonID(ctx)
	case trainingprogress.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown TrainingProgress field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *TrainingProgressMutation) SetField(name string, value ent.Value) error {
	switch name {
	case trainingprogress.FieldRequirement:
		v, ok := value.(trainingprogress.Requirement)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRequirement(v)
		return nil
	case trainingprogress.FieldState:
		v, ok := value.(trainingprogress.State)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetState(v)
		return nil
	case trainingprogress.FieldPersonID:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPersonID(v)
		return nil
	case trainingprogress.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown TrainingProgress field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *TrainingProgressMutation) AddedFields() []string {
	var fields []string
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *TrainingProgressMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *TrainingProgressMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown TrainingProgress numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *TrainingProgressMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *TrainingProgressMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *TrainingProgressMutation) ClearField(name string) error {
	return fmt.Errorf("unknown TrainingProgress nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *TrainingProgressMutation) ResetField(name string) error {
	switch name {
	case trainingprogress.FieldRequirement:
		m.ResetRequirement()
		return nil
	case trainingprogress.FieldState:
		m.ResetState()
		return nil
	case trainingprogress.FieldPersonID:
		m.ResetPersonID()
		return nil
	case trainingprogress.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown TrainingProgress field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *TrainingProgressMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.person != nil {
		edges = append(edges, trainingprogress.EdgePerson)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *TrainingProgressMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case trainingprogress.EdgePerson:
		if id := m.person; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *TrainingProgressMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *TrainingProgressMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *TrainingProgressMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedperson {
		edges = append(edges, trainingprogress.EdgePerson)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *TrainingProgressMutation) EdgeCleared(name string) bool {
	switch name {
	case trainingprogress.EdgePerson:
		return m.clearedperson
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *TrainingProgressMutation) ClearEdge(name string) error {
	switch name {
	case trainingprogress.EdgePerson:
		m.ClearPerson()
		return nil
	}
	return fmt.Errorf("unknown TrainingProgress unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *TrainingProgressMutation) ResetEdge(name string) error {
	switch name {
	case trainingprogress.EdgePerson:
		m.ResetPerson()
		return nil
	}
	return fmt.Errorf("unknown TrainingProgress edge %s", name)
}
