// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"log"
	"reflect"

	"github.com/carpentries/mailflow/ent/migrate"
	"github.com/google/uuid"

	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/carpentries/mailflow/ent/award"
	"github.com/carpentries/mailflow/ent/emailattachment"
	"github.com/carpentries/mailflow/ent/emailtemplate"
	"github.com/carpentries/mailflow/ent/event"
	"github.com/carpentries/mailflow/ent/membership"
	"github.com/carpentries/mailflow/ent/membershiptask"
	"github.com/carpentries/mailflow/ent/organization"
	"github.com/carpentries/mailflow/ent/person"
	"github.com/carpentries/mailflow/ent/scheduledemail"
	"github.com/carpentries/mailflow/ent/scheduledemaillog"
	"github.com/carpentries/mailflow/ent/task"
	"github.com/carpentries/mailflow/ent/trainingprogress"
)

// Client is the client that holds all ent builders.
type Client struct {
	config
	// Schema is the client for creating, migrating and dropping schema.
	Schema *migrate.Schema
	// Award is the client for interacting with the Award builders.
	Award *AwardClient
	// EmailAttachment is the client for interacting with the EmailAttachment builders.
	EmailAttachment *EmailAttachmentClient
	// EmailTemplate is the client for interacting with the EmailTemplate builders.
	EmailTemplate *EmailTemplateClient
	// Event is the client for interacting with the Event builders.
	Event *EventClient
	// Membership is the client for interacting with the Membership builders.
	Membership *MembershipClient
	// MembershipTask is the client for interacting with the MembershipTask builders.
	MembershipTask *MembershipTaskClient
	// Organization is the client for interacting with the Organization builders.
	Organization *OrganizationClient
	// Person is the client for interacting with the Person builders.
	Person *PersonClient
	// ScheduledEmail is the client for interacting with the ScheduledEmail builders.
	ScheduledEmail *ScheduledEmailClient
	// ScheduledEmailLog is the client for interacting with the ScheduledEmailLog builders.
	ScheduledEmailLog *ScheduledEmailLogClient
	// Task is the client for interacting with the Task builders.
	Task *TaskClient
	// TrainingProgress is the client for interacting with the TrainingProgress builders.
	TrainingProgress *TrainingProgressClient
}

// NewClient creates a new client configured with the given options.
func NewClient(opts ...Option) *Client {
	client := &Client{config: newConfig(opts...)}
	client.init()
	return client
}

func (c *Client) init() {
	c.Schema = migrate.NewSchema(c.driver)
	c.Award = NewAwardClient(c.config)
	c.EmailAttachment = NewEmailAttachmentClient(c.config)
	c.EmailTemplate = NewEmailTemplateClient(c.config)
	c.Event = NewEventClient(c.config)
	c.Membership = NewMembershipClient(c.config)
	c.MembershipTask = NewMembershipTaskClient(c.config)
	c.Organization = NewOrganizationClient(c.config)
	c.Person = NewPersonClient(c.config)
	c.ScheduledEmail = NewScheduledEmailClient(c.config)
	c.ScheduledEmailLog = NewScheduledEmailLogClient(c.config)
	c.Task = NewTaskClient(c.config)
	c.TrainingProgress = NewTrainingProgressClient(c.config)
}

type (
	// config is the configuration for the client and its builder.
	config struct {
		// driver used for executing database requests.
		driver dialect.Driver
		// debug enable a debug logging.
		debug bool
		// log used for logging on debug mode.
		log func(...any)
		// hooks to execute on mutations.
		hooks *hooks
		// interceptors to execute on queries.
		inters *inters
	}
	// Option function to configure the client.
	Option func(*config)
)

// newConfig creates a new config for the client.
func newConfig(opts ...Option) config {
	cfg := config{log: log.Println, hooks: &hooks{}, inters: &inters{}}
	cfg.options(opts...)
	return cfg
}

// options applies the options on the config object.
func (c *config) options(opts ...Option) {
	for _, opt := range opts {
		opt(c)
	}
	if c.debug {
		c.driver = dialect.Debug(c.driver, c.log)
	}
}

// Debug enables debug logging on the ent.Driver.
func Debug() Option {
	return func(c *config) {
		c.debug = true
	}
}

// Log sets the logging function for debug mode.
func Log(fn func(...any)) Option {
	return func(c *config) {
		c.log = fn
	}
}

// Driver configures the client driver.
func Driver(driver dialect.Driver) Option {
	return func(c *config) {
		c.driver = driver
	}
}

// Open opens a database/sql.DB specified by the driver name and
// the data source name, and returns a new client attached to it.
// Optional parameters can be added for configuring the client.
func Open(driverName, dataSourceName string, options ...Option) (*Client, error) {
	switch driverName {
	case dialect.MySQL, dialect.Postgres, dialect.SQLite:
		drv, err := sql.Open(driverName, dataSourceName)
		if err != nil {
			return nil, err
		}
		return NewClient(append(options, Driver(drv))...), nil
	default:
		return nil, fmt.Errorf("unsupported driver: %q", driverName)
	}
}

// ErrTxStarted is returned when trying to start a new transaction from a transactional client.
var ErrTxStarted = errors.New("ent: cannot start a transaction within a transaction")

// Tx returns a new transactional client. The provided context
// is used until the transaction is committed or rolled back.
func (c *Client) Tx(ctx context.Context) (*Tx, error) {
	if _, ok := c.driver.(*txDriver); ok {
		return nil, ErrTxStarted
	}
	tx, err := newTx(ctx, c.driver)
	if err != nil {
		return nil, fmt.Errorf("ent: starting a transaction: %w", err)
	}
	cfg := c.config
	cfg.driver = tx
	return &Tx{
		ctx:               ctx,
		config:            cfg,
		Award:             NewAwardClient(cfg),
		EmailAttachment:   NewEmailAttachmentClient(cfg),
		EmailTemplate:     NewEmailTemplateClient(cfg),
		Event:             NewEventClient(cfg),
		Membership:        NewMembershipClient(cfg),
		MembershipTask:    NewMembershipTaskClient(cfg),
		Organization:      NewOrganizationClient(cfg),
		Person:            NewPersonClient(cfg),
		ScheduledEmail:    NewScheduledEmailClient(cfg),
		ScheduledEmailLog: NewScheduledEmailLogClient(cfg),
		Task:              NewTaskClient(cfg),
		TrainingProgress:  NewTrainingProgressClient(cfg),
	}, nil
}

// BeginTx returns a transactional client with specified options.
func (c *Client) BeginTx(ctx context.Context, opts *sql.TxOptions) (*Tx, error) {
	if _, ok := c.driver.(*txDriver); ok {
		return nil, errors.New("ent: cannot start a transaction within a transaction")
	}
	tx, err := c.driver.(interface {
		BeginTx(context.Context, *sql.TxOptions) (dialect.Tx, error)
	}).BeginTx(ctx, opts)
	if err != nil {
		return nil, fmt.Errorf("ent: starting a transaction: %w", err)
	}
	cfg := c.config
	cfg.driver = &txDriver{tx: tx, drv: c.driver}
	return &Tx{
		ctx:               ctx,
		config:            cfg,
		Award:             NewAwardClient(cfg),
		EmailAttachment:   NewEmailAttachmentClient(cfg),
		EmailTemplate:     NewEmailTemplateClient(cfg),
		Event:             NewEventClient(cfg),
		Membership:        NewMembershipClient(cfg),
		MembershipTask:    NewMembershipTaskClient(cfg),
		Organization:      NewOrganizationClient(cfg),
		Person:            NewPersonClient(cfg),
		ScheduledEmail:    NewScheduledEmailClient(cfg),
		ScheduledEmailLog: NewScheduledEmailLogClient(cfg),
		Task:              NewTaskClient(cfg),
		TrainingProgress:  NewTrainingProgressClient(cfg),
	}, nil
}

// Debug returns a new debug-client. It's used to get verbose logging on specific operations.
//
//	client.Debug().
//		Award.
//		Query().
//		Count(ctx)
func (c *Client) Debug() *Client {
	if c.debug {
		return c
	}
	cfg := c.config
	cfg.driver = dialect.Debug(c.driver, c.log)
	client := &Client{config: cfg}
	client.init()
	return client
}

// Close closes the database connection and prevents new queries from starting.
func (c *Client) Close() error {
	return c.driver.Close()
}

// Use adds the mutation hooks to all the entity clients.
// In order to add hooks to a specific client, call: `client.Node.Use(...)`.
func (c *Client) Use(hooks ...Hook) {
	for _, n := range []interface{ Use(...Hook) }{
		c.Award, c.EmailAttachment, c.EmailTemplate, c.Event, c.Membership,
		c.MembershipTask, c.Organization, c.Person, c.ScheduledEmail,
		c.ScheduledEmailLog, c.Task, c.TrainingProgress,
	} {
		n.Use(hooks...)
	}
}

// Intercept adds the query interceptors to all the entity clients.
// In order to add interceptors to a specific client, call: `client.Node.Intercept(...)`.
func (c *Client) Intercept(interceptors ...Interceptor) {
	for _, n := range []interface{ Intercept(...Interceptor) }{
		c.Award, c.EmailAttachment, c.EmailTemplate, c.Event, c.Membership,
		c.MembershipTask, c.Organization, c.Person, c.ScheduledEmail,
		c.ScheduledEmailLog, c.Task, c.TrainingProgress,
	} {
		n.Intercept(interceptors...)
	}
}

// Mutate implements the ent.Mutator interface.
func (c *Client) Mutate(ctx context.Context, m Mutation) (Value, error) {
	switch m := m.(type) {
	case *AwardMutation:
		return c.Award.mutate(ctx, m)
	case *EmailAttachmentMutation:
		return c.EmailAttachment.mutate(ctx, m)
	case *EmailTemplateMutation:
		return c.EmailTemplate.mutate(ctx, m)
	case *EventMutation:
		return c.Event.mutate(ctx, m)
	case *MembershipMutation:
		return c.Membership.mutate(ctx, m)
	case *MembershipTaskMutation:
		return c.MembershipTask.mutate(ctx, m)
	case *OrganizationMutation:
		return c.Organization.mutate(ctx, m)
	case *PersonMutation:
		return c.Person.mutate(ctx, m)
	case *ScheduledEmailMutation:
		return c.ScheduledEmail.mutate(ctx, m)
	case *ScheduledEmailLogMutation:
		return c.ScheduledEmailLog.mutate(ctx, m)
	case *TaskMutation:
		return c.Task.mutate(ctx, m)
	case *TrainingProgressMutation:
		return c.TrainingProgress.mutate(ctx, m)
	default:
		return nil, fmt.Errorf("ent: unknown mutation type %T", m)
	}
}

// AwardClient is a client for the Award schema.
type AwardClient struct {
	config
}

// NewAwardClient returns a client for the Award from the given config.
func NewAwardClient(c config) *AwardClient {
	return &AwardClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `award.Hooks(f(g(h())))`.
func (c *AwardClient) Use(hooks ...Hook) {
	c.hooks.Award = append(c.hooks.Award, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `award.Intercept(f(g(h())))`.
func (c *AwardClient) Intercept(interceptors ...Interceptor) {
	c.inters.Award = append(c.inters.Award, interceptors...)
}

// Create returns a builder for creating a Award entity.
func (c *AwardClient) Create() *AwardCreate {
	mutation := newAwardMutation(c.config, OpCreate)
	return &AwardCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Award entities.
func (c *AwardClient) CreateBulk(builders ...*AwardCreate) *AwardCreateBulk {
	return &AwardCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *AwardClient) MapCreateBulk(slice any, setFunc func(*AwardCreate, int)) *AwardCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &AwardCreateBulk{err: fmt.Errorf("calling to AwardClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*AwardCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &AwardCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Award.
func (c *AwardClient) Update() *AwardUpdate {
	mutation := newAwardMutation(c.config, OpUpdate)
	return &AwardUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *AwardClient) UpdateOne(_m *Award) *AwardUpdateOne {
	mutation := newAwardMutation(c.config, OpUpdateOne, withAward(_m))
	return &AwardUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *AwardClient) UpdateOneID(id int) *AwardUpdateOne {
	mutation := newAwardMutation(c.config, OpUpdateOne, withAwardID(id))
	return &AwardUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Award.
func (c *AwardClient) Delete() *AwardDelete {
	mutation := newAwardMutation(c.config, OpDelete)
	return &AwardDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *AwardClient) DeleteOne(_m *Award) *AwardDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *AwardClient) DeleteOneID(id int) *AwardDeleteOne {
	builder := c.Delete().Where(award.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &AwardDeleteOne{builder}
}

// Query returns a query builder for Award.
func (c *AwardClient) Query() *AwardQuery {
	return &AwardQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeAward},
		inters: c.Interceptors(),
	}
}

// Get returns a Award entity by its id.
func (c *AwardClient) Get(ctx context.Context, id int) (*Award, error) {
	return c.Query().Where(award.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *AwardClient) GetX(ctx context.Context, id int) *Award {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryPerson queries the person edge of a Award.
func (c *AwardClient) QueryPerson(_m *Award) *PersonQuery {
	query := (&PersonClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(award.Table, award.FieldID, id),
			sqlgraph.To(person.Table, person.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, award.PersonTable, award.PersonColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *AwardClient) Hooks() []Hook {
	return c.hooks.Award
}

// Interceptors returns the client interceptors.
func (c *AwardClient) Interceptors() []Interceptor {
	return c.inters.Award
}

func (c *AwardClient) mutate(ctx context.Context, m *AwardMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&AwardCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&AwardUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&AwardUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&AwardDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown Award mutation op: %q", m.Op())
	}
}

// EmailAttachmentClient is a client for the EmailAttachment schema.
type EmailAttachmentClient struct {
	config
}

// NewEmailAttachmentClient returns a client for the EmailAttachment from the given config.
func NewEmailAttachmentClient(c config) *EmailAttachmentClient {
	return &EmailAttachmentClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `emailattachment.Hooks(f(g(h())))`.
func (c *EmailAttachmentClient) Use(hooks ...Hook) {
	c.hooks.EmailAttachment = append(c.hooks.EmailAttachment, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `emailattachment.Intercept(f(g(h())))`.
func (c *EmailAttachmentClient) Intercept(interceptors ...Interceptor) {
	c.inters.EmailAttachment = append(c.inters.EmailAttachment, interceptors...)
}

// Create returns a builder for creating a EmailAttachment entity.
func (c *EmailAttachmentClient) Create() *EmailAttachmentCreate {
	mutation := newEmailAttachmentMutation(c.config, OpCreate)
	return &EmailAttachmentCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of EmailAttachment entities.
func (c *EmailAttachmentClient) CreateBulk(builders ...*EmailAttachmentCreate) *EmailAttachmentCreateBulk {
	return &EmailAttachmentCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *EmailAttachmentClient) MapCreateBulk(slice any, setFunc func(*EmailAttachmentCreate, int)) *EmailAttachmentCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &EmailAttachmentCreateBulk{err: fmt.Errorf("calling to EmailAttachmentClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*EmailAttachmentCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &EmailAttachmentCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for EmailAttachment.
func (c *EmailAttachmentClient) Update() *EmailAttachmentUpdate {
	mutation := newEmailAttachmentMutation(c.config, OpUpdate)
	return &EmailAttachmentUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *EmailAttachmentClient) UpdateOne(_m *EmailAttachment) *EmailAttachmentUpdateOne {
	mutation := newEmailAttachmentMutation(c.config, OpUpdateOne, withEmailAttachment(_m))
	return &EmailAttachmentUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *EmailAttachmentClient) UpdateOneID(id uuid.UUID) *EmailAttachmentUpdateOne {
	mutation := newEmailAttachmentMutation(c.config, OpUpdateOne, withEmailAttachmentID(id))
	return &EmailAttachmentUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for EmailAttachment.
func (c *EmailAttachmentClient) Delete() *EmailAttachmentDelete {
	mutation := newEmailAttachmentMutation(c.config, OpDelete)
	return &EmailAttachmentDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *EmailAttachmentClient) DeleteOne(_m *EmailAttachment) *EmailAttachmentDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *EmailAttachmentClient) DeleteOneID(id uuid.UUID) *EmailAttachmentDeleteOne {
	builder := c.Delete().Where(emailattachment.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &EmailAttachmentDeleteOne{builder}
}

// Query returns a query builder for EmailAttachment.
func (c *EmailAttachmentClient) Query() *EmailAttachmentQuery {
	return &EmailAttachmentQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeEmailAttachment},
		inters: c.Interceptors(),
	}
}

// Get returns a EmailAttachment entity by its id.
func (c *EmailAttachmentClient) Get(ctx context.Context, id uuid.UUID) (*EmailAttachment, error) {
	return c.Query().Where(emailattachment.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *EmailAttachmentClient) GetX(ctx context.Context, id uuid.UUID) *EmailAttachment {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryEmail queries the email edge of a EmailAttachment.
func (c *EmailAttachmentClient) QueryEmail(_m *EmailAttachment) *ScheduledEmailQuery {
	query := (&ScheduledEmailClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(emailattachment.Table, emailattachment.FieldID, id),
			sqlgraph.To(scheduledemail.Table, scheduledemail.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, emailattachment.EmailTable, emailattachment.EmailColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *EmailAttachmentClient) Hooks() []Hook {
	return c.hooks.EmailAttachment
}

// Interceptors returns the client interceptors.
func (c *EmailAttachmentClient) Interceptors() []Interceptor {
	return c.inters.EmailAttachment
}

func (c *EmailAttachmentClient) mutate(ctx context.Context, m *EmailAttachmentMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&EmailAttachmentCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&EmailAttachmentUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&EmailAttachmentUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&EmailAttachmentDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown EmailAttachment mutation op: %q", m.Op())
	}
}

// EmailTemplateClient is a client for the EmailTemplate schema.
type EmailTemplateClient struct {
	config
}

// NewEmailTemplateClient returns a client for the EmailTemplate from the given config.
func NewEmailTemplateClient(c config) *EmailTemplateClient {
	return &EmailTemplateClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `emailtemplate.Hooks(f(g(h())))`.
func (c *EmailTemplateClient) Use(hooks ...Hook) {
	c.hooks.EmailTemplate = append(c.hooks.EmailTemplate, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `emailtemplate.Intercept(f(g(h())))`.
func (c *EmailTemplateClient) Intercept(interceptors ...Interceptor) {
	c.inters.EmailTemplate = append(c.inters.EmailTemplate, interceptors...)
}

// Create returns a builder for creating a EmailTemplate entity.
func (c *EmailTemplateClient) Create() *EmailTemplateCreate {
	mutation := newEmailTemplateMutation(c.config, OpCreate)
	return &EmailTemplateCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of EmailTemplate entities.
func (c *EmailTemplateClient) CreateBulk(builders ...*EmailTemplateCreate) *EmailTemplateCreateBulk {
	return &EmailTemplateCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *EmailTemplateClient) MapCreateBulk(slice any, setFunc func(*EmailTemplateCreate, int)) *EmailTemplateCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &EmailTemplateCreateBulk{err: fmt.Errorf("calling to EmailTemplateClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*EmailTemplateCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &EmailTemplateCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for EmailTemplate.
func (c *EmailTemplateClient) Update() *EmailTemplateUpdate {
	mutation := newEmailTemplateMutation(c.config, OpUpdate)
	return &EmailTemplateUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *EmailTemplateClient) UpdateOne(_m *EmailTemplate) *EmailTemplateUpdateOne {
	mutation := newEmailTemplateMutation(c.config, OpUpdateOne, withEmailTemplate(_m))
	return &EmailTemplateUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *EmailTemplateClient) UpdateOneID(id uuid.UUID) *EmailTemplateUpdateOne {
	mutation := newEmailTemplateMutation(c.config, OpUpdateOne, withEmailTemplateID(id))
	return &EmailTemplateUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for EmailTemplate.
func (c *EmailTemplateClient) Delete() *EmailTemplateDelete {
	mutation := newEmailTemplateMutation(c.config, OpDelete)
	return &EmailTemplateDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *EmailTemplateClient) DeleteOne(_m *EmailTemplate) *EmailTemplateDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *EmailTemplateClient) DeleteOneID(id uuid.UUID) *EmailTemplateDeleteOne {
	builder := c.Delete().Where(emailtemplate.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &EmailTemplateDeleteOne{builder}
}

// Query returns a query builder for EmailTemplate.
func (c *EmailTemplateClient) Query() *EmailTemplateQuery {
	return &EmailTemplateQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeEmailTemplate},
		inters: c.Interceptors(),
	}
}

// Get returns a EmailTemplate entity by its id.
func (c *EmailTemplateClient) Get(ctx context.Context, id uuid.UUID) (*EmailTemplate, error) {
	return c.Query().Where(emailtemplate.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *EmailTemplateClient) GetX(ctx context.Context, id uuid.UUID) *EmailTemplate {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryScheduledEmails queries the scheduled_emails edge of a EmailTemplate.
func (c *EmailTemplateClient) QueryScheduledEmails(_m *EmailTemplate) *ScheduledEmailQuery {
	query := (&ScheduledEmailClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(emailtemplate.Table, emailtemplate.FieldID, id),
			sqlgraph.To(scheduledemail.Table, scheduledemail.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, emailtemplate.ScheduledEmailsTable, emailtemplate.ScheduledEmailsColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *EmailTemplateClient) Hooks() []Hook {
	return c.hooks.EmailTemplate
}

// Interceptors returns the client interceptors.
func (c *EmailTemplateClient) Interceptors() []Interceptor {
	return c.inters.EmailTemplate
}

func (c *EmailTemplateClient) mutate(ctx context.Context, m *EmailTemplateMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&EmailTemplateCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&EmailTemplateUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&EmailTemplateUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&EmailTemplateDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown EmailTemplate mutation op: %q", m.Op())
	}
}

// EventClient is a client for the Event schema.
type EventClient struct {
	config
}

// NewEventClient returns a client for the Event from the given config.
func NewEventClient(c config) *EventClient {
	return &EventClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `event.Hooks(f(g(h())))`.
func (c *EventClient) Use(hooks ...Hook) {
	c.hooks.Event = append(c.hooks.Event, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `event.Intercept(f(g(h())))`.
func (c *EventClient) Intercept(interceptors ...Interceptor) {
	c.inters.Event = append(c.inters.Event, interceptors...)
}

// Create returns a builder for creating a Event entity.
func (c *EventClient) Create() *EventCreate {
	mutation := newEventMutation(c.config, OpCreate)
	return &EventCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Event entities.
func (c *EventClient) CreateBulk(builders ...*EventCreate) *EventCreateBulk {
	return &EventCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *EventClient) MapCreateBulk(slice any, setFunc func(*EventCreate, int)) *EventCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &EventCreateBulk{err: fmt.Errorf("calling to EventClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*EventCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &EventCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Event.
func (c *EventClient) Update() *EventUpdate {
	mutation := newEventMutation(c.config, OpUpdate)
	return &EventUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *EventClient) UpdateOne(_m *Event) *EventUpdateOne {
	mutation := newEventMutation(c.config, OpUpdateOne, withEvent(_m))
	return &EventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *EventClient) UpdateOneID(id int) *EventUpdateOne {
	mutation := newEventMutation(c.config, OpUpdateOne, withEventID(id))
	return &EventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Event.
func (c *EventClient) Delete() *EventDelete {
	mutation := newEventMutation(c.config, OpDelete)
	return &EventDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *EventClient) DeleteOne(_m *Event) *EventDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *EventClient) DeleteOneID(id int) *EventDeleteOne {
	builder := c.Delete().Where(event.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &EventDeleteOne{builder}
}

// Query returns a query builder for Event.
func (c *EventClient) Query() *EventQuery {
	return &EventQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeEvent},
		inters: c.Interceptors(),
	}
}

// Get returns a Event entity by its id.
func (c *EventClient) Get(ctx context.Context, id int) (*Event, error) {
	return c.Query().Where(event.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *EventClient) GetX(ctx context.Context, id int) *Event {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryAdministrator queries the administrator edge of a Event.
func (c *EventClient) QueryAdministrator(_m *Event) *OrganizationQuery {
	query := (&OrganizationClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(event.Table, event.FieldID, id),
			sqlgraph.To(organization.Table, organization.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, event.AdministratorTable, event.AdministratorColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryEventTasks queries the event_tasks edge of a Event.
func (c *EventClient) QueryEventTasks(_m *Event) *TaskQuery {
	query := (&TaskClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(event.Table, event.FieldID, id),
			sqlgraph.To(task.Table, task.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, event.EventTasksTable, event.EventTasksColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *EventClient) Hooks() []Hook {
	return c.hooks.Event
}

// Interceptors returns the client interceptors.
func (c *EventClient) Interceptors() []Interceptor {
	return c.inters.Event
}

func (c *EventClient) mutate(ctx context.Context, m *EventMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&EventCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&EventUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&EventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&EventDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown Event mutation op: %q", m.Op())
	}
}

// MembershipClient is a client for the Membership schema.
type MembershipClient struct {
	config
}

// NewMembershipClient returns a client for the Membership from the given config.
func NewMembershipClient(c config) *MembershipClient {
	return &MembershipClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `membership.Hooks(f(g(h())))`.
func (c *MembershipClient) Use(hooks ...Hook) {
	c.hooks.Membership = append(c.hooks.Membership, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `membership.Intercept(f(g(h())))`.
func (c *MembershipClient) Intercept(interceptors ...Interceptor) {
	c.inters.Membership = append(c.inters.Membership, interceptors...)
}

// Create returns a builder for creating a Membership entity.
func (c *MembershipClient) Create() *MembershipCreate {
	mutation := newMembershipMutation(c.config, OpCreate)
	return &MembershipCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Membership entities.
func (c *MembershipClient) CreateBulk(builders ...*MembershipCreate) *MembershipCreateBulk {
	return &MembershipCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *MembershipClient) MapCreateBulk(slice any, setFunc func(*MembershipCreate, int)) *MembershipCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &MembershipCreateBulk{err: fmt.Errorf("calling to MembershipClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*MembershipCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &MembershipCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Membership.
func (c *MembershipClient) Update() *MembershipUpdate {
	mutation := newMembershipMutation(c.config, OpUpdate)
	return &MembershipUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *MembershipClient) UpdateOne(_m *Membership) *MembershipUpdateOne {
	mutation := newMembershipMutation(c.config, OpUpdateOne, withMembership(_m))
	return &MembershipUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *MembershipClient) UpdateOneID(id int) *MembershipUpdateOne {
	mutation := newMembershipMutation(c.config, OpUpdateOne, withMembershipID(id))
	return &MembershipUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Membership.
func (c *MembershipClient) Delete() *MembershipDelete {
	mutation := newMembershipMutation(c.config, OpDelete)
	return &MembershipDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *MembershipClient) DeleteOne(_m *Membership) *MembershipDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *MembershipClient) DeleteOneID(id int) *MembershipDeleteOne {
	builder := c.Delete().Where(membership.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &MembershipDeleteOne{builder}
}

// Query returns a query builder for Membership.
func (c *MembershipClient) Query() *MembershipQuery {
	return &MembershipQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeMembership},
		inters: c.Interceptors(),
	}
}

// Get returns a Membership entity by its id.
func (c *MembershipClient) Get(ctx context.Context, id int) (*Membership, error) {
	return c.Query().Where(membership.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *MembershipClient) GetX(ctx context.Context, id int) *Membership {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryMembershipTasks queries the membership_tasks edge of a Membership.
func (c *MembershipClient) QueryMembershipTasks(_m *Membership) *MembershipTaskQuery {
	query := (&MembershipTaskClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(membership.Table, membership.FieldID, id),
			sqlgraph.To(membershiptask.Table, membershiptask.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, membership.MembershipTasksTable, membership.MembershipTasksColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *MembershipClient) Hooks() []Hook {
	return c.hooks.Membership
}

// Interceptors returns the client interceptors.
func (c *MembershipClient) Interceptors() []Interceptor {
	return c.inters.Membership
}

func (c *MembershipClient) mutate(ctx context.Context, m *MembershipMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&MembershipCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&MembershipUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&MembershipUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&MembershipDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown Membership mutation op: %q", m.Op())
	}
}

// MembershipTaskClient is a client for the MembershipTask schema.
type MembershipTaskClient struct {
	config
}

// NewMembershipTaskClient returns a client for the MembershipTask from the given config.
func NewMembershipTaskClient(c config) *MembershipTaskClient {
	return &MembershipTaskClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `membershiptask.Hooks(f(g(h())))`.
func (c *MembershipTaskClient) Use(hooks ...Hook) {
	c.hooks.MembershipTask = append(c.hooks.MembershipTask, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `membershiptask.Intercept(f(g(h())))`.
func (c *MembershipTaskClient) Intercept(interceptors ...Interceptor) {
	c.inters.MembershipTask = append(c.inters.MembershipTask, interceptors...)
}

// Create returns a builder for creating a MembershipTask entity.
func (c *MembershipTaskClient) Create() *MembershipTaskCreate {
	mutation := newMembershipTaskMutation(c.config, OpCreate)
	return &MembershipTaskCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of MembershipTask entities.
func (c *MembershipTaskClient) CreateBulk(builders ...*MembershipTaskCreate) *MembershipTaskCreateBulk {
	return &MembershipTaskCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *MembershipTaskClient) MapCreateBulk(slice any, setFunc func(*MembershipTaskCreate, int)) *MembershipTaskCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &MembershipTaskCreateBulk{err: fmt.Errorf("calling to MembershipTaskClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*MembershipTaskCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &MembershipTaskCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for MembershipTask.
func (c *MembershipTaskClient) Update() *MembershipTaskUpdate {
	mutation := newMembershipTaskMutation(c.config, OpUpdate)
	return &MembershipTaskUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *MembershipTaskClient) UpdateOne(_m *MembershipTask) *MembershipTaskUpdateOne {
	mutation := newMembershipTaskMutation(c.config, OpUpdateOne, withMembershipTask(_m))
	return &MembershipTaskUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *MembershipTaskClient) UpdateOneID(id int) *MembershipTaskUpdateOne {
	mutation := newMembershipTaskMutation(c.config, OpUpdateOne, withMembershipTaskID(id))
	return &MembershipTaskUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for MembershipTask.
func (c *MembershipTaskClient) Delete() *MembershipTaskDelete {
	mutation := newMembershipTaskMutation(c.config, OpDelete)
	return &MembershipTaskDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *MembershipTaskClient) DeleteOne(_m *MembershipTask) *MembershipTaskDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *MembershipTaskClient) DeleteOneID(id int) *MembershipTaskDeleteOne {
	builder := c.Delete().Where(membershiptask.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &MembershipTaskDeleteOne{builder}
}

// Query returns a query builder for MembershipTask.
func (c *MembershipTaskClient) Query() *MembershipTaskQuery {
	return &MembershipTaskQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeMembershipTask},
		inters: c.Interceptors(),
	}
}

// Get returns a MembershipTask entity by its id.
func (c *MembershipTaskClient) Get(ctx context.Context, id int) (*MembershipTask, error) {
	return c.Query().Where(membershiptask.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *MembershipTaskClient) GetX(ctx context.Context, id int) *MembershipTask {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryMembership queries the membership edge of a MembershipTask.
func (c *MembershipTaskClient) QueryMembership(_m *MembershipTask) *MembershipQuery {
	query := (&MembershipClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(membershiptask.Table, membershiptask.FieldID, id),
			sqlgraph.To(membership.Table, membership.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, membershiptask.MembershipTable, membershiptask.MembershipColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryPerson queries the person edge of a MembershipTask.
func (c *MembershipTaskClient) QueryPerson(_m *MembershipTask) *PersonQuery {
	query := (&PersonClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(membershiptask.Table, membershiptask.FieldID, id),
			sqlgraph.To(person.Table, person.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, membershiptask.PersonTable, membershiptask.PersonColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *MembershipTaskClient) Hooks() []Hook {
	return c.hooks.MembershipTask
}

// Interceptors returns the client interceptors.
func (c *MembershipTaskClient) Interceptors() []Interceptor {
	return c.inters.MembershipTask
}

func (c *MembershipTaskClient) mutate(ctx context.Context, m *MembershipTaskMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&MembershipTaskCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&MembershipTaskUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&MembershipTaskUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&MembershipTaskDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown MembershipTask mutation op: %q", m.Op())
	}
}

// OrganizationClient is a client for the Organization schema.
type OrganizationClient struct {
	config
}

// NewOrganizationClient returns a client for the Organization from the given config.
func NewOrganizationClient(c config) *OrganizationClient {
	return &OrganizationClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `organization.Hooks(f(g(h())))`.
func (c *OrganizationClient) Use(hooks ...Hook) {
	c.hooks.Organization = append(c.hooks.Organization, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `organization.Intercept(f(g(h())))`.
func (c *OrganizationClient) Intercept(interceptors ...Interceptor) {
	c.inters.Organization = append(c.inters.Organization, interceptors...)
}

// Create returns a builder for creating a Organization entity.
func (c *OrganizationClient) Create() *OrganizationCreate {
	mutation := newOrganizationMutation(c.config, OpCreate)
	return &OrganizationCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Organization entities.
func (c *OrganizationClient) CreateBulk(builders ...*OrganizationCreate) *OrganizationCreateBulk {
	return &OrganizationCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *OrganizationClient) MapCreateBulk(slice any, setFunc func(*OrganizationCreate, int)) *OrganizationCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &OrganizationCreateBulk{err: fmt.Errorf("calling to OrganizationClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*OrganizationCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &OrganizationCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Organization.
func (c *OrganizationClient) Update() *OrganizationUpdate {
	mutation := newOrganizationMutation(c.config, OpUpdate)
	return &OrganizationUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *OrganizationClient) UpdateOne(_m *Organization) *OrganizationUpdateOne {
	mutation := newOrganizationMutation(c.config, OpUpdateOne, withOrganization(_m))
	return &OrganizationUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *OrganizationClient) UpdateOneID(id int) *OrganizationUpdateOne {
	mutation := newOrganizationMutation(c.config, OpUpdateOne, withOrganizationID(id))
	return &OrganizationUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Organization.
func (c *OrganizationClient) Delete() *OrganizationDelete {
	mutation := newOrganizationMutation(c.config, OpDelete)
	return &OrganizationDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *OrganizationClient) DeleteOne(_m *Organization) *OrganizationDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *OrganizationClient) DeleteOneID(id int) *OrganizationDeleteOne {
	builder := c.Delete().Where(organization.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &OrganizationDeleteOne{builder}
}

// Query returns a query builder for Organization.
func (c *OrganizationClient) Query() *OrganizationQuery {
	return &OrganizationQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeOrganization},
		inters: c.Interceptors(),
	}
}

// Get returns a Organization entity by its id.
func (c *OrganizationClient) Get(ctx context.Context, id int) (*Organization, error) {
	return c.Query().Where(organization.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *OrganizationClient) GetX(ctx context.Context, id int) *Organization {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryAdministeredEvents queries the administered_events edge of a Organization.
func (c *OrganizationClient) QueryAdministeredEvents(_m *Organization) *EventQuery {
	query := (&EventClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(organization.Table, organization.FieldID, id),
			sqlgraph.To(event.Table, event.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, organization.AdministeredEventsTable, organization.AdministeredEventsColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *OrganizationClient) Hooks() []Hook {
	return c.hooks.Organization
}

// Interceptors returns the client interceptors.
func (c *OrganizationClient) Interceptors() []Interceptor {
	return c.inters.Organization
}

func (c *OrganizationClient) mutate(ctx context.Context, m *OrganizationMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&OrganizationCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&OrganizationUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&OrganizationUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&OrganizationDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown Organization mutation op: %q", m.Op())
	}
}

// PersonClient is a client for the Person schema.
type PersonClient struct {
	config
}

// NewPersonClient returns a client for the Person from the given config.
func NewPersonClient(c config) *PersonClient {
	return &PersonClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `person.Hooks(f(g(h())))`.
func (c *PersonClient) Use(hooks ...Hook) {
	c.hooks.Person = append(c.hooks.Person, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `person.Intercept(f(g(h())))`.
func (c *PersonClient) Intercept(interceptors ...Interceptor) {
	c.inters.Person = append(c.inters.Person, interceptors...)
}

// Create returns a builder for creating a Person entity.
func (c *PersonClient) Create() *PersonCreate {
	mutation := newPersonMutation(c.config, OpCreate)
	return &PersonCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Person entities.
func (c *PersonClient) CreateBulk(builders ...*PersonCreate) *PersonCreateBulk {
	return &PersonCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *PersonClient) MapCreateBulk(slice any, setFunc func(*PersonCreate, int)) *PersonCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &PersonCreateBulk{err: fmt.Errorf("calling to PersonClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*PersonCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &PersonCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Person.
func (c *PersonClient) Update() *PersonUpdate {
	mutation := newPersonMutation(c.config, OpUpdate)
	return &PersonUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *PersonClient) UpdateOne(_m *Person) *PersonUpdateOne {
	mutation := newPersonMutation(c.config, OpUpdateOne, withPerson(_m))
	return &PersonUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *PersonClient) UpdateOneID(id int) *PersonUpdateOne {
	mutation := newPersonMutation(c.config, OpUpdateOne, withPersonID(id))
	return &PersonUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Person.
func (c *PersonClient) Delete() *PersonDelete {
	mutation := newPersonMutation(c.config, OpDelete)
	return &PersonDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *PersonClient) DeleteOne(_m *Person) *PersonDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *PersonClient) DeleteOneID(id int) *PersonDeleteOne {
	builder := c.Delete().Where(person.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &PersonDeleteOne{builder}
}

// Query returns a query builder for Person.
func (c *PersonClient) Query() *PersonQuery {
	return &PersonQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypePerson},
		inters: c.Interceptors(),
	}
}

// Get returns a Person entity by its id.
func (c *PersonClient) Get(ctx context.Context, id int) (*Person, error) {
	return c.Query().Where(person.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *PersonClient) GetX(ctx context.Context, id int) *Person {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryTasks queries the tasks edge of a Person.
func (c *PersonClient) QueryTasks(_m *Person) *TaskQuery {
	query := (&TaskClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(person.Table, person.FieldID, id),
			sqlgraph.To(task.Table, task.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, person.TasksTable, person.TasksColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryAwards queries the awards edge of a Person.
func (c *PersonClient) QueryAwards(_m *Person) *AwardQuery {
	query := (&AwardClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(person.Table, person.FieldID, id),
			sqlgraph.To(award.Table, award.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, person.AwardsTable, person.AwardsColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryTrainingProgresses queries the training_progresses edge of a Person.
func (c *PersonClient) QueryTrainingProgresses(_m *Person) *TrainingProgressQuery {
	query := (&TrainingProgressClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(person.Table, person.FieldID, id),
			sqlgraph.To(trainingprogress.Table, trainingprogress.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, person.TrainingProgressesTable, person.TrainingProgressesColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryMembershipTasks queries the membership_tasks edge of a Person.
func (c *PersonClient) QueryMembershipTasks(_m *Person) *MembershipTaskQuery {
	query := (&MembershipTaskClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(person.Table, person.FieldID, id),
			sqlgraph.To(membershiptask.Table, membershiptask.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, person.MembershipTasksTable, person.MembershipTasksColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *PersonClient) Hooks() []Hook {
	return c.hooks.Person
}

// Interceptors returns the client interceptors.
func (c *PersonClient) Interceptors() []Interceptor {
	return c.inters.Person
}

func (c *PersonClient) mutate(ctx context.Context, m *PersonMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&PersonCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&PersonUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&PersonUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&PersonDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown Person mutation op: %q", m.Op())
	}
}

// ScheduledEmailClient is a client for the ScheduledEmail schema.
type ScheduledEmailClient struct {
	config
}

// NewScheduledEmailClient returns a client for the ScheduledEmail from the given config.
func NewScheduledEmailClient(c config) *ScheduledEmailClient {
	return &ScheduledEmailClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `scheduledemail.Hooks(f(g(h())))`.
func (c *ScheduledEmailClient) Use(hooks ...Hook) {
	c.hooks.ScheduledEmail = append(c.hooks.ScheduledEmail, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `scheduledemail.Intercept(f(g(h())))`.
func (c *ScheduledEmailClient) Intercept(interceptors ...Interceptor) {
	c.inters.ScheduledEmail = append(c.inters.ScheduledEmail, interceptors...)
}

// Create returns a builder for creating a ScheduledEmail entity.
func (c *ScheduledEmailClient) Create() *ScheduledEmailCreate {
	mutation := newScheduledEmailMutation(c.config, OpCreate)
	return &ScheduledEmailCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of ScheduledEmail entities.
func (c *ScheduledEmailClient) CreateBulk(builders ...*ScheduledEmailCreate) *ScheduledEmailCreateBulk {
	return &ScheduledEmailCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *ScheduledEmailClient) MapCreateBulk(slice any, setFunc func(*ScheduledEmailCreate, int)) *ScheduledEmailCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &ScheduledEmailCreateBulk{err: fmt.Errorf("calling to ScheduledEmailClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*ScheduledEmailCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &ScheduledEmailCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for ScheduledEmail.
func (c *ScheduledEmailClient) Update() *ScheduledEmailUpdate {
	mutation := newScheduledEmailMutation(c.config, OpUpdate)
	return &ScheduledEmailUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *ScheduledEmailClient) UpdateOne(_m *ScheduledEmail) *ScheduledEmailUpdateOne {
	mutation := newScheduledEmailMutation(c.config, OpUpdateOne, withScheduledEmail(_m))
	return &ScheduledEmailUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *ScheduledEmailClient) UpdateOneID(id uuid.UUID) *ScheduledEmailUpdateOne {
	mutation := newScheduledEmailMutation(c.config, OpUpdateOne, withScheduledEmailID(id))
	return &ScheduledEmailUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for ScheduledEmail.
func (c *ScheduledEmailClient) Delete() *ScheduledEmailDelete {
	mutation := newScheduledEmailMutation(c.config, OpDelete)
	return &ScheduledEmailDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *ScheduledEmailClient) DeleteOne(_m *ScheduledEmail) *ScheduledEmailDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *ScheduledEmailClient) DeleteOneID(id uuid.UUID) *ScheduledEmailDeleteOne {
	builder := c.Delete().Where(scheduledemail.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &ScheduledEmailDeleteOne{builder}
}

// Query returns a query builder for ScheduledEmail.
func (c *ScheduledEmailClient) Query() *ScheduledEmailQuery {
	return &ScheduledEmailQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeScheduledEmail},
		inters: c.Interceptors(),
	}
}

// Get returns a ScheduledEmail entity by its id.
func (c *ScheduledEmailClient) Get(ctx context.Context, id uuid.UUID) (*ScheduledEmail, error) {
	return c.Query().Where(scheduledemail.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *ScheduledEmailClient) GetX(ctx context.Context, id uuid.UUID) *ScheduledEmail {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryTemplate queries the template edge of a ScheduledEmail.
func (c *ScheduledEmailClient) QueryTemplate(_m *ScheduledEmail) *EmailTemplateQuery {
	query := (&EmailTemplateClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(scheduledemail.Table, scheduledemail.FieldID, id),
			sqlgraph.To(emailtemplate.Table, emailtemplate.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, scheduledemail.TemplateTable, scheduledemail.TemplateColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryLogs queries the logs edge of a ScheduledEmail.
func (c *ScheduledEmailClient) QueryLogs(_m *ScheduledEmail) *ScheduledEmailLogQuery {
	query := (&ScheduledEmailLogClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(scheduledemail.Table, scheduledemail.FieldID, id),
			sqlgraph.To(scheduledemaillog.Table, scheduledemaillog.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, scheduledemail.LogsTable, scheduledemail.LogsColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryAttachments queries the attachments edge of a ScheduledEmail.
func (c *ScheduledEmailClient) QueryAttachments(_m *ScheduledEmail) *EmailAttachmentQuery {
	query := (&EmailAttachmentClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(scheduledemail.Table, scheduledemail.FieldID, id),
			sqlgraph.To(emailattachment.Table, emailattachment.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, scheduledemail.AttachmentsTable, scheduledemail.AttachmentsColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *ScheduledEmailClient) Hooks() []Hook {
	return c.hooks.ScheduledEmail
}

// Interceptors returns the client interceptors.
func (c *ScheduledEmailClient) Interceptors() []Interceptor {
	return c.inters.ScheduledEmail
}

func (c *ScheduledEmailClient) mutate(ctx context.Context, m *ScheduledEmailMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&ScheduledEmailCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&ScheduledEmailUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&ScheduledEmailUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&ScheduledEmailDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown ScheduledEmail mutation op: %q", m.Op())
	}
}

// ScheduledEmailLogClient is a client for the ScheduledEmailLog schema.
type ScheduledEmailLogClient struct {
	config
}

// NewScheduledEmailLogClient returns a client for the ScheduledEmailLog from the given config.
func NewScheduledEmailLogClient(c config) *ScheduledEmailLogClient {
	return &ScheduledEmailLogClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `scheduledemaillog.Hooks(f(g(h())))`.
func (c *ScheduledEmailLogClient) Use(hooks ...Hook) {
	c.hooks.ScheduledEmailLog = append(c.hooks.ScheduledEmailLog, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `scheduledemaillog.Intercept(f(g(h())))`.
func (c *ScheduledEmailLogClient) Intercept(interceptors ...Interceptor) {
	c.inters.ScheduledEmailLog = append(c.inters.ScheduledEmailLog, interceptors...)
}

// Create returns a builder for creating a ScheduledEmailLog entity.
func (c *ScheduledEmailLogClient) Create() *ScheduledEmailLogCreate {
	mutation := newScheduledEmailLogMutation(c.config, OpCreate)
	return &ScheduledEmailLogCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of ScheduledEmailLog entities.
func (c *ScheduledEmailLogClient) CreateBulk(builders ...*ScheduledEmailLogCreate) *ScheduledEmailLogCreateBulk {
	return &ScheduledEmailLogCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *ScheduledEmailLogClient) MapCreateBulk(slice any, setFunc func(*ScheduledEmailLogCreate, int)) *ScheduledEmailLogCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &ScheduledEmailLogCreateBulk{err: fmt.Errorf("calling to ScheduledEmailLogClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*ScheduledEmailLogCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &ScheduledEmailLogCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for ScheduledEmailLog.
func (c *ScheduledEmailLogClient) Update() *ScheduledEmailLogUpdate {
	mutation := newScheduledEmailLogMutation(c.config, OpUpdate)
	return &ScheduledEmailLogUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *ScheduledEmailLogClient) UpdateOne(_m *ScheduledEmailLog) *ScheduledEmailLogUpdateOne {
	mutation := newScheduledEmailLogMutation(c.config, OpUpdateOne, withScheduledEmailLog(_m))
	return &ScheduledEmailLogUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *ScheduledEmailLogClient) UpdateOneID(id uuid.UUID) *ScheduledEmailLogUpdateOne {
	mutation := newScheduledEmailLogMutation(c.config, OpUpdateOne, withScheduledEmailLogID(id))
	return &ScheduledEmailLogUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for ScheduledEmailLog.
func (c *ScheduledEmailLogClient) Delete() *ScheduledEmailLogDelete {
	mutation := newScheduledEmailLogMutation(c.config, OpDelete)
	return &ScheduledEmailLogDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *ScheduledEmailLogClient) DeleteOne(_m *ScheduledEmailLog) *ScheduledEmailLogDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *ScheduledEmailLogClient) DeleteOneID(id uuid.UUID) *ScheduledEmailLogDeleteOne {
	builder := c.Delete().Where(scheduledemaillog.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &ScheduledEmailLogDeleteOne{builder}
}

// Query returns a query builder for ScheduledEmailLog.
func (c *ScheduledEmailLogClient) Query() *ScheduledEmailLogQuery {
	return &ScheduledEmailLogQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeScheduledEmailLog},
		inters: c.Interceptors(),
	}
}

// Get returns a ScheduledEmailLog entity by its id.
func (c *ScheduledEmailLogClient) Get(ctx context.Context, id uuid.UUID) (*ScheduledEmailLog, error) {
	return c.Query().Where(scheduledemaillog.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *ScheduledEmailLogClient) GetX(ctx context.Context, id uuid.UUID) *ScheduledEmailLog {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryEmail queries the email edge of a ScheduledEmailLog.
func (c *ScheduledEmailLogClient) QueryEmail(_m *ScheduledEmailLog) *ScheduledEmailQuery {
	query := (&ScheduledEmailClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(scheduledemaillog.Table, scheduledemaillog.FieldID, id),
			sqlgraph.To(scheduledemail.Table, scheduledemail.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, scheduledemaillog.EmailTable, scheduledemaillog.EmailColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *ScheduledEmailLogClient) Hooks() []Hook {
	return c.hooks.ScheduledEmailLog
}

// Interceptors returns the client interceptors.
func (c *ScheduledEmailLogClient) Interceptors() []Interceptor {
	return c.inters.ScheduledEmailLog
}

func (c *ScheduledEmailLogClient) mutate(ctx context.Context, m *ScheduledEmailLogMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&ScheduledEmailLogCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&ScheduledEmailLogUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&ScheduledEmailLogUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&ScheduledEmailLogDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown ScheduledEmailLog mutation op: %q", m.Op())
	}
}

// TaskClient is a client for the Task schema.
type TaskClient struct {
	config
}

// NewTaskClient returns a client for the Task from the given config.
func NewTaskClient(c config) *TaskClient {
	return &TaskClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `task.Hooks(f(g(h())))`.
func (c *TaskClient) Use(hooks ...Hook) {
	c.hooks.Task = append(c.hooks.Task, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `task.Intercept(f(g(h())))`.
func (c *TaskClient) Intercept(interceptors ...Interceptor) {
	c.inters.Task = append(c.inters.Task, interceptors...)
}

// Create returns a builder for creating a Task entity.
func (c *TaskClient) Create() *TaskCreate {
	mutation := newTaskMutation(c.config, OpCreate)
	return &TaskCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Task entities.
func (c *TaskClient) CreateBulk(builders ...*TaskCreate) *TaskCreateBulk {
	return &TaskCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *TaskClient) MapCreateBulk(slice any, setFunc func(*TaskCreate, int)) *TaskCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &TaskCreateBulk{err: fmt.Errorf("calling to TaskClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*TaskCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &TaskCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Task.
func (c *TaskClient) Update() *TaskUpdate {
	mutation := newTaskMutation(c.config, OpUpdate)
	return &TaskUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *TaskClient) UpdateOne(_m *Task) *TaskUpdateOne {
	mutation := newTaskMutation(c.config, OpUpdateOne, withTask(_m))
	return &TaskUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *TaskClient) UpdateOneID(id int) *TaskUpdateOne {
	mutation := newTaskMutation(c.config, OpUpdateOne, withTaskID(id))
	return &TaskUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Task.
func (c *TaskClient) Delete() *TaskDelete {
	mutation := newTaskMutation(c.config, OpDelete)
	return &TaskDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *TaskClient) DeleteOne(_m *Task) *TaskDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *TaskClient) DeleteOneID(id int) *TaskDeleteOne {
	builder := c.Delete().Where(task.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &TaskDeleteOne{builder}
}

// Query returns a query builder for Task.
func (c *TaskClient) Query() *TaskQuery {
	return &TaskQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeTask},
		inters: c.Interceptors(),
	}
}

// Get returns a Task entity by its id.
func (c *TaskClient) Get(ctx context.Context, id int) (*Task, error) {
	return c.Query().Where(task.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *TaskClient) GetX(ctx context.Context, id int) *Task {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryEvent queries the event edge of a Task.
func (c *TaskClient) QueryEvent(_m *Task) *EventQuery {
	query := (&EventClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(task.Table, task.FieldID, id),
			sqlgraph.To(event.Table, event.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, task.EventTable, task.EventColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryPerson queries the person edge of a Task.
func (c *TaskClient) QueryPerson(_m *Task) *PersonQuery {
	query := (&PersonClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(task.Table, task.FieldID, id),
			sqlgraph.To(person.Table, person.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, task.PersonTable, task.PersonColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *TaskClient) Hooks() []Hook {
	return c.hooks.Task
}

// Interceptors returns the client interceptors.
func (c *TaskClient) Interceptors() []Interceptor {
	return c.inters.Task
}

func (c *TaskClient) mutate(ctx context.Context, m *TaskMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&TaskCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&TaskUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&TaskUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&TaskDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown Task mutation op: %q", m.Op())
	}
}

// TrainingProgressClient is a client for the TrainingProgress schema.
type TrainingProgressClient struct {
	config
}

// NewTrainingProgressClient returns a client for the TrainingProgress from the given config.
func NewTrainingProgressClient(c config) *TrainingProgressClient {
	return &TrainingProgressClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `trainingprogress.Hooks(f(g(h())))`.
func (c *TrainingProgressClient) Use(hooks ...Hook) {
	c.hooks.TrainingProgress = append(c.hooks.TrainingProgress, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `trainingprogress.Intercept(f(g(h())))`.
func (c *TrainingProgressClient) Intercept(interceptors ...Interceptor) {
	c.inters.TrainingProgress = append(c.inters.TrainingProgress, interceptors...)
}

// Create returns a builder for creating a TrainingProgress entity.
func (c *TrainingProgressClient) Create() *TrainingProgressCreate {
	mutation := newTrainingProgressMutation(c.config, OpCreate)
	return &TrainingProgressCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of TrainingProgress entities.
func (c *TrainingProgressClient) CreateBulk(builders ...*TrainingProgressCreate) *TrainingProgressCreateBulk {
	return &TrainingProgressCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *TrainingProgressClient) MapCreateBulk(slice any, setFunc func(*TrainingProgressCreate, int)) *TrainingProgressCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &TrainingProgressCreateBulk{err: fmt.Errorf("calling to TrainingProgressClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*TrainingProgressCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &TrainingProgressCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for TrainingProgress.
func (c *TrainingProgressClient) Update() *TrainingProgressUpdate {
	mutation := newTrainingProgressMutation(c.config, OpUpdate)
	return &TrainingProgressUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *TrainingProgressClient) UpdateOne(_m *TrainingProgress) *TrainingProgressUpdateOne {
	mutation := newTrainingProgressMutation(c.config, OpUpdateOne, withTrainingProgress(_m))
	return &TrainingProgressUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *TrainingProgressClient) UpdateOneID(id int) *TrainingProgressUpdateOne {
	mutation := newTrainingProgressMutation(c.config, OpUpdateOne, withTrainingProgressID(id))
	return &TrainingProgressUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for TrainingProgress.
func (c *TrainingProgressClient) Delete() *TrainingProgressDelete {
	mutation := newTrainingProgressMutation(c.config, OpDelete)
	return &TrainingProgressDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *TrainingProgressClient) DeleteOne(_m *TrainingProgress) *TrainingProgressDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *TrainingProgressClient) DeleteOneID(id int) *TrainingProgressDeleteOne {
	builder := c.Delete().Where(trainingprogress.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &TrainingProgressDeleteOne{builder}
}

// Query returns a query builder for TrainingProgress.
func (c *TrainingProgressClient) Query() *TrainingProgressQuery {
	return &TrainingProgressQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeTrainingProgress},
		inters: c.Interceptors(),
	}
}

// Get returns a TrainingProgress entity by its id.
func (c *TrainingProgressClient) Get(ctx context.Context, id int) (*TrainingProgress, error) {
	return c.Query().Where(trainingprogress.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *TrainingProgressClient) GetX(ctx context.Context, id int) *TrainingProgress {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryPerson queries the person edge of a TrainingProgress.
func (c *TrainingProgressClient) QueryPerson(_m *TrainingProgress) *PersonQuery {
	query := (&PersonClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(trainingprogress.Table, trainingprogress.FieldID, id),
			sqlgraph.To(person.Table, person.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, trainingprogress.PersonTable, trainingprogress.PersonColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *TrainingProgressClient) Hooks() []Hook {
	return c.hooks.TrainingProgress
}

// Interceptors returns the client interceptors.
func (c *TrainingProgressClient) Interceptors() []Interceptor {
	return c.inters.TrainingProgress
}

func (c *TrainingProgressClient) mutate(ctx context.Context, m *TrainingProgressMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&TrainingProgressCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&TrainingProgressUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&TrainingProgressUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&TrainingProgressDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown TrainingProgress mutation op: %q", m.Op())
	}
}

// hooks and interceptors per client, for fast access.
type (
	hooks struct {
		Award, EmailAttachment, EmailTemplate, Event, Membership, MembershipTask,
		Organization, Person, ScheduledEmail, ScheduledEmailLog, Task,
		TrainingProgress []ent.Hook
	}
	inters struct {
		Award, EmailAttachment, EmailTemplate, Event, Membership, MembershipTask,
		Organization, Person, ScheduledEmail, ScheduledEmailLog, Task,
		TrainingProgress []ent.Interceptor
	}
)
