// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"fmt"
	"math"

	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/carpentries/mailflow/ent/membership"
	"github.com/carpentries/mailflow/ent/membershiptask"
	"github.com/carpentries/mailflow/ent/person"
	"github.com/carpentries/mailflow/ent/predicate"
)

// MembershipTaskQuery is the builder for querying MembershipTask entities.
type MembershipTaskQuery struct {
	config
	ctx            *QueryContext
	order          []membershiptask.OrderOption
	inters         []Interceptor
	predicates     []predicate.MembershipTask
	withMembership *MembershipQuery
	withPerson     *PersonQuery
	modifiers      []func(*sql.Selector)
	// intermediate query (i.e. traversal path).
	sql  *sql.Selector
	path func(context.Context) (*sql.Selector, error)
}

// Where adds a new predicate for the MembershipTaskQuery builder.
func (_q *MembershipTaskQuery) Where(ps ...predicate.MembershipTask) *MembershipTaskQuery {
	_q.predicates = append(_q.predicates, ps...)
	return _q
}

// Limit the number of records to be returned by this query.
func (_q *MembershipTaskQuery) Limit(limit int) *MembershipTaskQuery {
	_q.ctx.Limit = &limit
	return _q
}

// Offset to start from.
func (_q *MembershipTaskQuery) Offset(offset int) *MembershipTaskQuery {
	_q.ctx.Offset = &offset
	return _q
}

// Unique configures the query builder to filter duplicate records on query.
// By default, unique is set to true, and can be disabled using this method.
func (_q *MembershipTaskQuery) Unique(unique bool) *MembershipTaskQuery {
	_q.ctx.Unique = &unique
	return _q
}

// Order specifies how the records should be ordered.
func (_q *MembershipTaskQuery) Order(o ...membershiptask.OrderOption) *MembershipTaskQuery {
	_q.order = append(_q.order, o...)
	return _q
}

// QueryMembership chains the current query on the "membership" edge.
func (_q *MembershipTaskQuery) QueryMembership() *MembershipQuery {
	query := (&MembershipClient{config: _q.config}).Query()
	query.path = func(ctx context.Context) (fromU *sql.Selector, err error) {
		if err := _q.prepareQuery(ctx); err != nil {
			return nil, err
		}
		selector := _q.sqlQuery(ctx)
		if err := selector.Err(); err != nil {
			return nil, err
		}
		step := sqlgraph.NewStep(
			sqlgraph.From(membershiptask.Table, membershiptask.FieldID, selector),
			sqlgraph.To(membership.Table, membership.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, membershiptask.MembershipTable, membershiptask.MembershipColumn),
		)
		fromU = sqlgraph.SetNeighbors(_q.driver.Dialect(), step)
		return fromU, nil
	}
	return query
}

// QueryPerson chains the current query on the "person" edge.
func (_q *MembershipTaskQuery) QueryPerson() *PersonQuery {
	query := (&PersonClient{config: _q.config}).Query()
	query.path = func(ctx context.Context) (fromU *sql.Selector, err error) {
		if err := _q.prepareQuery(ctx); err != nil {
			return nil, err
		}
		selector := _q.sqlQuery(ctx)
		if err := selector.Err(); err != nil {
			return nil, err
		}
		step := sqlgraph.NewStep(
			sqlgraph.From(membershiptask.Table, membershiptask.FieldID, selector),
			sqlgraph.To(person.Table, person.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, membershiptask.PersonTable, membershiptask.PersonColumn),
		)
		fromU = sqlgraph.SetNeighbors(_q.driver.Dialect(), step)
		return fromU, nil
	}
	return query
}

// First returns the first MembershipTask entity from the query.
// Returns a *NotFoundError when no MembershipTask was found.
func (_q *MembershipTaskQuery) First(ctx context.Context) (*MembershipTask, error) {
	nodes, err := _q.Limit(1).All(setContextOp(ctx, _q.ctx, ent.OpQueryFirst))
	if err != nil {
		return nil, err
	}
	if len(nodes) == 0 {
		return nil, &NotFoundError{membershiptask.Label}
	}
	return nodes[0], nil
}

// FirstX is like First, but panics if an error occurs.
func (_q *MembershipTaskQuery) FirstX(ctx context.Context) *MembershipTask {
	node, err := _q.First(ctx)
	if err != nil && !IsNotFound(err) {
		panic(err)
	}
	return node
}

// FirstID returns the first MembershipTask ID from the query.
// Returns a *NotFoundError when no MembershipTask ID was found.
func (_q *MembershipTaskQuery) FirstID(ctx context.Context) (id int, err error) {
	var ids []int
	if ids, err = _q.Limit(1).IDs(setContextOp(ctx, _q.ctx, ent.OpQueryFirstID)); err != nil {
		return
	}
	if len(ids) == 0 {
		err = &NotFoundError{membershiptask.Label}
		return
	}
	return ids[0], nil
}

// FirstIDX is like FirstID, but panics if an error occurs.
func (_q *MembershipTaskQuery) FirstIDX(ctx context.Context) int {
	id, err := _q.FirstID(ctx)
	if err != nil && !IsNotFound(err) {
		panic(err)
	}
	return id
}

// Only returns a single MembershipTask entity found by the query, ensuring it only returns one.
// Returns a *NotSingularError when more than one MembershipTask entity is found.
// Returns a *NotFoundError when no MembershipTask entities are found.
func (_q *MembershipTaskQuery) Only(ctx context.Context) (*MembershipTask, error) {
	nodes, err := _q.Limit(2).All(setContextOp(ctx, _q.ctx, ent.OpQueryOnly))
	if err != nil {
		return nil, err
	}
	switch len(nodes) {
	case 1:
		return nodes[0], nil
	case 0:
		return nil, &NotFoundError{membershiptask.Label}
	default:
		return nil, &NotSingularError{membershiptask.Label}
	}
}

// OnlyX is like Only, but panics if an error occurs.
func (_q *MembershipTaskQuery) OnlyX(ctx context.Context) *MembershipTask {
	node, err := _q.Only(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// OnlyID is like Only, but returns the only MembershipTask ID in the query.
// Returns a *NotSingularError when more than one MembershipTask ID is found.
// Returns a *NotFoundError when no entities are found.
func (_q *MembershipTaskQuery) OnlyID(ctx context.Context) (id int, err error) {
	var ids []int
	if ids, err = _q.Limit(2).IDs(setContextOp(ctx, _q.ctx, ent.OpQueryOnlyID)); err != nil {
		return
	}
	switch len(ids) {
	case 1:
		id = ids[0]
	case 0:
		err = &NotFoundError{membershiptask.Label}
	default:
		err = &NotSingularError{membershiptask.Label}
	}
	return
}

// OnlyIDX is like OnlyID, but panics if an error occurs.
func (_q *MembershipTaskQuery) OnlyIDX(ctx context.Context) int {
	id, err := _q.OnlyID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// All executes the query and returns a list of MembershipTasks.
func (_q *MembershipTaskQuery) All(ctx context.Context) ([]*MembershipTask, error) {
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryAll)
	if err := _q.prepareQuery(ctx); err != nil {
		return nil, err
	}
	qr := querierAll[[]*MembershipTask, *MembershipTaskQuery]()
	return withInterceptors[[]*MembershipTask](ctx, _q, qr, _q.inters)
}

// AllX is like All, but panics if an error occurs.
func (_q *MembershipTaskQuery) AllX(ctx context.Context) []*MembershipTask {
	nodes, err := _q.All(ctx)
	if err != nil {
		panic(err)
	}
	return nodes
}

// IDs executes the query and returns a list of MembershipTask IDs.
func (_q *MembershipTaskQuery) IDs(ctx context.Context) (ids []int, err error) {
	if _q.ctx.Unique == nil && _q.path != nil {
		_q.Unique(true)
	}
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryIDs)
	if err = _q.Select(membershiptask.FieldID).Scan(ctx, &ids); err != nil {
		return nil, err
	}
	return ids, nil
}

// IDsX is like IDs, but panics if an error occurs.
func (_q *MembershipTaskQuery) IDsX(ctx context.Context) []int {
	ids, err := _q.IDs(ctx)
	if err != nil {
		panic(err)
	}
	return ids
}

// Count returns the count of the given query.
func (_q *MembershipTaskQuery) Count(ctx context.Context) (int, error) {
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryCount)
	if err := _q.prepareQuery(ctx); err != nil {
		return 0, err
	}
	return withInterceptors[int](ctx, _q, querierCount[*MembershipTaskQuery](), _q.inters)
}

// CountX is like Count, but panics if an error occurs.
func (_q *MembershipTaskQuery) CountX(ctx context.Context) int {
	count, err := _q.Count(ctx)
	if err != nil {
		panic(err)
	}
	return count
}

// Exist returns true if the query has elements in the graph.
func (_q *MembershipTaskQuery) Exist(ctx context.Context) (bool, error) {
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryExist)
	switch _, err := _q.FirstID(ctx); {
	case IsNotFound(err):
		return false, nil
	case err != nil:
		return false, fmt.Errorf("ent: check existence: %w", err)
	default:
		return true, nil
	}
}

// ExistX is like Exist, but panics if an error occurs.
func (_q *MembershipTaskQuery) ExistX(ctx context.Context) bool {
	exist, err := _q.Exist(ctx)
	if err != nil {
		panic(err)
	}
	return exist
}

// Clone returns a duplicate of the MembershipTaskQuery builder, including all associated steps. It can be
// used to prepare common query builders and use them differently after the clone is made.
func (_q *MembershipTaskQuery) Clone() *MembershipTaskQuery {
	if _q == nil {
		return nil
	}
	return &MembershipTaskQuery{
		config:         _q.config,
		ctx:            _q.ctx.Clone(),
		order:          append([]membershiptask.OrderOption{}, _q.order...),
		inters:         append([]Interceptor{}, _q.inters...),
		predicates:     append([]predicate.MembershipTask{}, _q.predicates...),
		withMembership: _q.withMembership.Clone(),
		withPerson:     _q.withPerson.Clone(),
		// clone intermediate query.
		sql:  _q.sql.Clone(),
		path: _q.path,
	}
}

// WithMembership tells the query-builder to eager-load the nodes that are connected to
// the "membership" edge. The optional arguments are used to configure the query builder of the edge.
func (_q *MembershipTaskQuery) WithMembership(opts ...func(*MembershipQuery)) *MembershipTaskQuery {
	query := (&MembershipClient{config: _q.config}).Query()
	for _, opt := range opts {
		opt(query)
	}
	_q.withMembership = query
	return _q
}

// WithPerson tells the query-builder to eager-load the nodes that are connected to
// the "person" edge. The optional arguments are used to configure the query builder of the edge.
func (_q *MembershipTaskQuery) WithPerson(opts ...func(*PersonQuery)) *MembershipTaskQuery {
	query := (&PersonClient{config: _q.config}).Query()
	for _, opt := range opts {
		opt(query)
	}
	_q.withPerson = query
	return _q
}

// GroupBy is used to group vertices by one or more fields/columns.
// It is often used with aggregate functions, like: count, max, mean, min, sum.
//
// Example:
//
//	var v []struct {
//		Role membershiptask.Role `json:"role,omitempty"`
//		Count int `json:"count,omitempty"`
//	}
//
//	client.MembershipTask.Query().
//		GroupBy(membershiptask.FieldRole).
//		Aggregate(ent.Count()).
//		Scan(ctx, &v)
func (_q *MembershipTaskQuery) GroupBy(field string, fields ...string) *MembershipTaskGroupBy {
	_q.ctx.Fields = append([]string{field}, fields...)
	grbuild := &MembershipTaskGroupBy{build: _q}
	grbuild.flds = &_q.ctx.Fields
	grbuild.label = membershiptask.Label
	grbuild.scan = grbuild.Scan
	return grbuild
}

// Select allows the selection one or more fields/columns for the given query,
// instead of selecting all fields in the entity.
//
// Example:
//
//	var v []struct {
//		Role membershiptask.Role `json:"role,omitempty"`
//	}
//
//	client.MembershipTask.Query().
//		Select(membershiptask.FieldRole).
//		Scan(ctx, &v)
func (_q *MembershipTaskQuery) Select(fields ...string) *MembershipTaskSelect {
	_q.ctx.Fields = append(_q.ctx.Fields, fields...)
	sbuild := &MembershipTaskSelect{MembershipTaskQuery: _q}
	sbuild.label = membershiptask.Label
	sbuild.flds, sbuild.scan = &_q.ctx.Fields, sbuild.Scan
	return sbuild
}

// Aggregate returns a MembershipTaskSelect configured with the given aggregations.
func (_q *MembershipTaskQuery) Aggregate(fns ...AggregateFunc) *MembershipTaskSelect {
	return _q.Select().Aggregate(fns...)
}

func (_q *MembershipTaskQuery) prepareQuery(ctx context.Context) error {
	for _, inter := range _q.inters {
		if inter == nil {
			return fmt.Errorf("ent: uninitialized interceptor (forgotten import ent/runtime?)")
		}
		if trv, ok := inter.(Traverser); ok {
			if err := trv.Traverse(ctx, _q); err != nil {
				return err
			}
		}
	}
	for _, f := range _q.ctx.Fields {
		if !membershiptask.ValidColumn(f) {
			return &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
		}
	}
	if _q.path != nil {
		prev, err := _q.path(ctx)
		if err != nil {
			return err
		}
		_q.sql = prev
	}
	return nil
}

func (_q *MembershipTaskQuery) sqlAll(ctx context.Context, hooks ...queryHook) ([]*MembershipTask, error) {
	var (
		nodes       = []*MembershipTask{}
		_spec       = _q.querySpec()
		loadedTypes = [2]bool{
			_q.withMembership != nil,
			_q.withPerson != nil,
		}
	)
	_spec.ScanValues = func(columns []string) ([]any, error) {
		return (*MembershipTask).scanValues(nil, columns)
	}
	_spec.Assign = func(columns []string, values []any) error {
		node := &MembershipTask{config: _q.config}
		nodes = append(nodes, node)
		node.Edges.loadedTypes = loadedTypes
		return node.assignValues(columns, values)
	}
	if len(_q.modifiers) > 0 {
		_spec.Modifiers = _q.modifiers
	}
	for i := range hooks {
		hooks[i](ctx, _spec)
	}
	if err := sqlgraph.QueryNodes(ctx, _q.driver, _spec); err != nil {
		return nil, err
	}
	if len(nodes) == 0 {
		return nodes, nil
	}
	if query := _q.withMembership; query != nil {
		if err := _q.loadMembership(ctx, query, nodes, nil,
			func(n *MembershipTask, e *Membership) { n.Edges.Membership = e }); err != nil {
			return nil, err
		}
	}
	if query := _q.withPerson; query != nil {
		if err := _q.loadPerson(ctx, query, nodes, nil,
			func(n *MembershipTask, e *Person) { n.Edges.Person = e }); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

func (_q *MembershipTaskQuery) loadMembership(ctx context.Context, query *MembershipQuery, nodes []*MembershipTask, init func(*MembershipTask), assign func(*MembershipTask, *Membership)) error {
	ids := make([]int, 0, len(nodes))
	nodeids := make(map[int][]*MembershipTask)
	for i := range nodes {
		fk := nodes[i].MembershipID
		if _, ok := nodeids[fk]; !ok {
			ids = append(ids, fk)
		}
		nodeids[fk] = append(nodeids[fk], nodes[i])
	}
	if len(ids) == 0 {
		return nil
	}
	query.Where(membership.IDIn(ids...))
	neighbors, err := query.All(ctx)
	if err != nil {
		return err
	}
	for _, n := range neighbors {
		nodes, ok := nodeids[n.ID]
		if !ok {
			return fmt.Errorf(`unexpected foreign-key "membership_id" returned %v`, n.ID)
		}
		for i := range nodes {
			assign(nodes[i], n)
		}
	}
	return nil
}
func (_q *MembershipTaskQuery) loadPerson(ctx context.Context, query *PersonQuery, nodes []*MembershipTask, init func(*MembershipTask), assign func(*MembershipTask, *Person)) error {
	ids := make([]int, 0, len(nodes))
	nodeids := make(map[int][]*MembershipTask)
	for i := range nodes {
		fk := nodes[i].PersonID
		if _, ok := nodeids[fk]; !ok {
			ids = append(ids, fk)
		}
		nodeids[fk] = append(nodeids[fk], nodes[i])
	}
	if len(ids) == 0 {
		return nil
	}
	query.Where(person.IDIn(ids...))
	neighbors, err := query.All(ctx)
	if err != nil {
		return err
	}
	for _, n := range neighbors {
		nodes, ok := nodeids[n.ID]
		if !ok {
			return fmt.Errorf(`unexpected foreign-key "person_id" returned %v`, n.ID)
		}
		for i := range nodes {
			assign(nodes[i], n)
		}
	}
	return nil
}

func (_q *MembershipTaskQuery) sqlCount(ctx context.Context) (int, error) {
	_spec := _q.querySpec()
	if len(_q.modifiers) > 0 {
		_spec.Modifiers = _q.modifiers
	}
	_spec.Node.Columns = _q.ctx.Fields
	if len(_q.ctx.Fields) > 0 {
		_spec.Unique = _q.ctx.Unique != nil && *_q.ctx.Unique
	}
	return sqlgraph.CountNodes(ctx, _q.driver, _spec)
}

func (_q *MembershipTaskQuery) querySpec() *sqlgraph.QuerySpec {
	_spec := sqlgraph.NewQuerySpec(membershiptask.Table, membershiptask.Columns, sqlgraph.NewFieldSpec(membershiptask.FieldID, field.TypeInt))
	_spec.From = _q.sql
	if unique := _q.ctx.Unique; unique != nil {
		_spec.Unique = *unique
	} else if _q.path != nil {
		_spec.Unique = true
	}
	if fields := _q.ctx.Fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, membershiptask.FieldID)
		for i := range fields {
			if fields[i] != membershiptask.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, fields[i])
			}
		}
		if _q.withMembership != nil {
			_spec.Node.AddColumnOnce(membershiptask.FieldMembershipID)
		}
		if _q.withPerson != nil {
			_spec.Node.AddColumnOnce(membershiptask.FieldPersonID)
		}
	}
	if ps := _q.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if limit := _q.ctx.Limit; limit != nil {
		_spec.Limit = *limit
	}
	if offset := _q.ctx.Offset; offset != nil {
		_spec.Offset = *offset
	}
	if ps := _q.order; len(ps) > 0 {
		_spec.Order = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	return _spec
}

func (_q *MembershipTaskQuery) sqlQuery(ctx context.Context) *sql.Selector {
	builder := sql.Dialect(_q.driver.Dialect())
	t1 := builder.Table(membershiptask.Table)
	columns := _q.ctx.Fields
	if len(columns) == 0 {
		columns = membershiptask.Columns
	}
	selector := builder.Select(t1.Columns(columns...)...).From(t1)
	if _q.sql != nil {
		selector = _q.sql
		selector.Select(selector.Columns(columns...)...)
	}
	if _q.ctx.Unique != nil && *_q.ctx.Unique {
		selector.Distinct()
	}
	for _, m := range _q.modifiers {
		m(selector)
	}
	for _, p := range _q.predicates {
		p(selector)
	}
	for _, p := range _q.order {
		p(selector)
	}
	if offset := _q.ctx.Offset; offset != nil {
		// limit is mandatory for offset clause. We start
		// with default value, and override it below if needed.
		selector.Offset(*offset).Limit(math.MaxInt32)
	}
	if limit := _q.ctx.Limit; limit != nil {
		selector.Limit(*limit)
	}
	return selector
}

// ForUpdate locks the selected rows against concurrent updates, and prevent them from being
// updated, deleted or "selected ... for update" by other sessions, until the transaction is
// either committed or rolled-back.
func (_q *MembershipTaskQuery) ForUpdate(opts ...sql.LockOption) *MembershipTaskQuery {
	if _q.driver.Dialect() == dialect.Postgres {
		_q.Unique(false)
	}
	_q.modifiers = append(_q.modifiers, func(s *sql.Selector) {
		s.ForUpdate(opts...)
	})
	return _q
}

// ForShare behaves similarly to ForUpdate, except that it acquires a shared mode lock
// on any rows that are read. Other sessions can read the rows, but cannot modify them
// until your transaction commits.
func (_q *MembershipTaskQuery) ForShare(opts ...sql.LockOption) *MembershipTaskQuery {
	if _q.driver.Dialect() == dialect.Postgres {
		_q.Unique(false)
	}
	_q.modifiers = append(_q.modifiers, func(s *sql.Selector) {
		s.ForShare(opts...)
	})
	return _q
}

// MembershipTaskGroupBy is the group-by builder for MembershipTask entities.
type MembershipTaskGroupBy struct {
	selector
	build *MembershipTaskQuery
}

// Aggregate adds the given aggregation functions to the group-by query.
func (_g *MembershipTaskGroupBy) Aggregate(fns ...AggregateFunc) *MembershipTaskGroupBy {
	_g.fns = append(_g.fns, fns...)
	return _g
}

// Scan applies the selector query and scans the result into the given value.
func (_g *MembershipTaskGroupBy) Scan(ctx context.Context, v any) error {
	ctx = setContextOp(ctx, _g.build.ctx, ent.OpQueryGroupBy)
	if err := _g.build.prepareQuery(ctx); err != nil {
		return err
	}
	return scanWithInterceptors[*MembershipTaskQuery, *MembershipTaskGroupBy](ctx, _g.build, _g, _g.build.inters, v)
}

func (_g *MembershipTaskGroupBy) sqlScan(ctx context.Context, root *MembershipTaskQuery, v any) error {
	selector := root.sqlQuery(ctx).Select()
	aggregation := make([]string, 0, len(_g.fns))
	for _, fn := range _g.fns {
		aggregation = append(aggregation, fn(selector))
	}
	if len(selector.SelectedColumns()) == 0 {
		columns := make([]string, 0, len(*_g.flds)+len(_g.fns))
		for _, f := range *_g.flds {
			columns = append(columns, selector.C(f))
		}
		columns = append(columns, aggregation...)
		selector.Select(columns...)
	}
	selector.GroupBy(selector.Columns(*_g.flds...)...)
	if err := selector.Err(); err != nil {
		return err
	}
	rows := &sql.Rows{}
	query, args := selector.Query()
	if err := _g.build.driver.Query(ctx, query, args, rows); err != nil {
		return err
	}
	defer rows.Close()
	return sql.ScanSlice(rows, v)
}

// MembershipTaskSelect is the builder for selecting fields of MembershipTask entities.
type MembershipTaskSelect struct {
	*MembershipTaskQuery
	selector
}

// Aggregate adds the given aggregation functions to the selector query.
func (_s *MembershipTaskSelect) Aggregate(fns ...AggregateFunc) *MembershipTaskSelect {
	_s.fns = append(_s.fns, fns...)
	return _s
}

// Scan applies the selector query and scans the result into the given value.
func (_s *MembershipTaskSelect) Scan(ctx context.Context, v any) error {
	ctx = setContextOp(ctx, _s.ctx, ent.OpQuerySelect)
	if err := _s.prepareQuery(ctx); err != nil {
		return err
	}
	return scanWithInterceptors[*MembershipTaskQuery, *MembershipTaskSelect](ctx, _s.MembershipTaskQuery, _s, _s.inters, v)
}

func (_s *MembershipTaskSelect) sqlScan(ctx context.Context, root *MembershipTaskQuery, v any) error {
	selector := root.sqlQuery(ctx)
	aggregation := make([]string, 0, len(_s.fns))
	for _, fn := range _s.fns {
		aggregation = append(aggregation, fn(selector))
	}
	switch n := len(*_s.selector.flds); {
	case n == 0 && len(aggregation) > 0:
		selector.Select(aggregation...)
	case n != 0 && len(aggregation) > 0:
		selector.AppendSelect(aggregation...)
	}
	rows := &sql.Rows{}
	query, args := selector.Query()
	if err := _s.driver.Query(ctx, query, args, rows); err != nil {
		return err
	}
	defer rows.Close()
	return sql.ScanSlice(rows, v)
}
