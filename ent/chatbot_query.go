// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"database/sql/driver"
	"fmt"
	"math"

	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/lorekeep/lorekeep/ent/buildversion"
	"github.com/lorekeep/lorekeep/ent/chatbot"
	"github.com/lorekeep/lorekeep/ent/chatsession"
	"github.com/lorekeep/lorekeep/ent/dailystat"
	"github.com/lorekeep/lorekeep/ent/document"
	"github.com/lorekeep/lorekeep/ent/predicate"
)

// ChatbotQuery is the builder for querying Chatbot entities.
type ChatbotQuery struct {
	config
	ctx            *QueryContext
	order          []chatbot.OrderOption
	inters         []Interceptor
	predicates     []predicate.Chatbot
	withDocuments  *DocumentQuery
	withVersions   *BuildVersionQuery
	withSessions   *ChatSessionQuery
	withDailyStats *DailyStatQuery
	modifiers      []func(*sql.Selector)
	// intermediate query (i.e. traversal path).
	sql  *sql.Selector
	path func(context.Context) (*sql.Selector, error)
}

// Where adds a new predicate for the ChatbotQuery builder.
func (_q *ChatbotQuery) Where(ps ...predicate.Chatbot) *ChatbotQuery {
	_q.predicates = append(_q.predicates, ps...)
	return _q
}

// Limit the number of records to be returned by this query.
func (_q *ChatbotQuery) Limit(limit int) *ChatbotQuery {
	_q.ctx.Limit = &limit
	return _q
}

// Offset to start from.
func (_q *ChatbotQuery) Offset(offset int) *ChatbotQuery {
	_q.ctx.Offset = &offset
	return _q
}

// Unique configures the query builder to filter duplicate records on query.
// By default, unique is set to true, and can be disabled using this method.
func (_q *ChatbotQuery) Unique(unique bool) *ChatbotQuery {
	_q.ctx.Unique = &unique
	return _q
}

// Order specifies how the records should be ordered.
func (_q *ChatbotQuery) Order(o ...chatbot.OrderOption) *ChatbotQuery {
	_q.order = append(_q.order, o...)
	return _q
}

// QueryDocuments chains the current query on the "documents" edge.
func (_q *ChatbotQuery) QueryDocuments() *DocumentQuery {
	query := (&DocumentClient{config: _q.config}).Query()
	query.path = func(ctx context.Context) (fromU *sql.Selector, err error) {
		if err := _q.prepareQuery(ctx); err != nil {
			return nil, err
		}
		selector := _q.sqlQuery(ctx)
		if err := selector.Err(); err != nil {
			return nil, err
		}
		step := sqlgraph.NewStep(
			sqlgraph.From(chatbot.Table, chatbot.FieldID, selector),
			sqlgraph.To(document.Table, document.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, chatbot.DocumentsTable, chatbot.DocumentsColumn),
		)
		fromU = sqlgraph.SetNeighbors(_q.driver.Dialect(), step)
		return fromU, nil
	}
	return query
}

// QueryVersions chains the current query on the "versions" edge.
func (_q *ChatbotQuery) QueryVersions() *BuildVersionQuery {
	query := (&BuildVersionClient{config: _q.config}).Query()
	query.path = func(ctx context.Context) (fromU *sql.Selector, err error) {
		if err := _q.prepareQuery(ctx); err != nil {
			return nil, err
		}
		selector := _q.sqlQuery(ctx)
		if err := selector.Err(); err != nil {
			return nil, err
		}
		step := sqlgraph.NewStep(
			sqlgraph.From(chatbot.Table, chatbot.FieldID, selector),
			sqlgraph.To(buildversion.Table, buildversion.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, chatbot.VersionsTable, chatbot.VersionsColumn),
		)
		fromU = sqlgraph.SetNeighbors(_q.driver.Dialect(), step)
		return fromU, nil
	}
	return query
}

// QuerySessions chains the current query on the "sessions" edge.
func (_q *ChatbotQuery) QuerySessions() *ChatSessionQuery {
	query := (&ChatSessionClient{config: _q.config}).Query()
	query.path = func(ctx context.Context) (fromU *sql.Selector, err error) {
		if err := _q.prepareQuery(ctx); err != nil {
			return nil, err
		}
		selector := _q.sqlQuery(ctx)
		if err := selector.Err(); err != nil {
			return nil, err
		}
		step := sqlgraph.NewStep(
			sqlgraph.From(chatbot.Table, chatbot.FieldID, selector),
			sqlgraph.To(chatsession.Table, chatsession.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, chatbot.SessionsTable, chatbot.SessionsColumn),
		)
		fromU = sqlgraph.SetNeighbors(_q.driver.Dialect(), step)
		return fromU, nil
	}
	return query
}

// QueryDailyStats chains the current query on the "daily_stats" edge.
func (_q *ChatbotQuery) QueryDailyStats() *DailyStatQuery {
	query := (&DailyStatClient{config: _q.config}).Query()
	query.path = func(ctx context.Context) (fromU *sql.Selector, err error) {
		if err := _q.prepareQuery(ctx); err != nil {
			return nil, err
		}
		selector := _q.sqlQuery(ctx)
		if err := selector.Err(); err != nil {
			return nil, err
		}
		step := sqlgraph.NewStep(
			sqlgraph.From(chatbot.Table, chatbot.FieldID, selector),
			sqlgraph.To(dailystat.Table, dailystat.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, chatbot.DailyStatsTable, chatbot.DailyStatsColumn),
		)
		fromU = sqlgraph.SetNeighbors(_q.driver.Dialect(), step)
		return fromU, nil
	}
	return query
}

// First returns the first Chatbot entity from the query.
// Returns a *NotFoundError when no Chatbot was found.
func (_q *ChatbotQuery) First(ctx context.Context) (*Chatbot, error) {
	nodes, err := _q.Limit(1).All(setContextOp(ctx, _q.ctx, ent.OpQueryFirst))
	if err != nil {
		return nil, err
	}
	if len(nodes) == 0 {
		return nil, &NotFoundError{chatbot.Label}
	}
	return nodes[0], nil
}

// FirstX is like First, but panics if an error occurs.
func (_q *ChatbotQuery) FirstX(ctx context.Context) *Chatbot {
	node, err := _q.First(ctx)
	if err != nil && !IsNotFound(err) {
		panic(err)
	}
	return node
}

// FirstID returns the first Chatbot ID from the query.
// Returns a *NotFoundError when no Chatbot ID was found.
func (_q *ChatbotQuery) FirstID(ctx context.Context) (id string, err error) {
	var ids []string
	if ids, err = _q.Limit(1).IDs(setContextOp(ctx, _q.ctx, ent.OpQueryFirstID)); err != nil {
		return
	}
	if len(ids) == 0 {
		err = &NotFoundError{chatbot.Label}
		return
	}
	return ids[0], nil
}

// FirstIDX is like FirstID, but panics if an error occurs.
func (_q *ChatbotQuery) FirstIDX(ctx context.Context) string {
	id, err := _q.FirstID(ctx)
	if err != nil && !IsNotFound(err) {
		panic(err)
	}
	return id
}

// Only returns a single Chatbot entity found by the query, ensuring it only returns one.
// Returns a *NotSingularError when more than one Chatbot entity is found.
// Returns a *NotFoundError when no Chatbot entities are found.
func (_q *ChatbotQuery) Only(ctx context.Context) (*Chatbot, error) {
	nodes, err := _q.Limit(2).All(setContextOp(ctx, _q.ctx, ent.OpQueryOnly))
	if err != nil {
		return nil, err
	}
	switch len(nodes) {
	case 1:
		return nodes[0], nil
	case 0:
		return nil, &NotFoundError{chatbot.Label}
	default:
		return nil, &NotSingularError{chatbot.Label}
	}
}

// OnlyX is like Only, but panics if an error occurs.
func (_q *ChatbotQuery) OnlyX(ctx context.Context) *Chatbot {
	node, err := _q.Only(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// OnlyID is like Only, but returns the only Chatbot ID in the query.
// Returns a *NotSingularError when more than one Chatbot ID is found.
// Returns a *NotFoundError when no entities are found.
func (_q *ChatbotQuery) OnlyID(ctx context.Context) (id string, err error) {
	var ids []string
	if ids, err = _q.Limit(2).IDs(setContextOp(ctx, _q.ctx, ent.OpQueryOnlyID)); err != nil {
		return
	}
	switch len(ids) {
	case 1:
		id = ids[0]
	case 0:
		err = &NotFoundError{chatbot.Label}
	default:
		err = &NotSingularError{chatbot.Label}
	}
	return
}

// OnlyIDX is like OnlyID, but panics if an error occurs.
func (_q *ChatbotQuery) OnlyIDX(ctx context.Context) string {
	id, err := _q.OnlyID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// All executes the query and returns a list of Chatbots.
func (_q *ChatbotQuery) All(ctx context.Context) ([]*Chatbot, error) {
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryAll)
	if err := _q.prepareQuery(ctx); err != nil {
		return nil, err
	}
	qr := querierAll[[]*Chatbot, *ChatbotQuery]()
	return withInterceptors[[]*Chatbot](ctx, _q, qr, _q.inters)
}

// AllX is like All, but panics if an error occurs.
func (_q *ChatbotQuery) AllX(ctx context.Context) []*Chatbot {
	nodes, err := _q.All(ctx)
	if err != nil {
		panic(err)
	}
	return nodes
}

// IDs executes the query and returns a list of Chatbot IDs.
func (_q *ChatbotQuery) IDs(ctx context.Context) (ids []string, err error) {
	if _q.ctx.Unique == nil && _q.path != nil {
		_q.Unique(true)
	}
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryIDs)
	if err = _q.Select(chatbot.FieldID).Scan(ctx, &ids); err != nil {
		return nil, err
	}
	return ids, nil
}

// IDsX is like IDs, but panics if an error occurs.
func (_q *ChatbotQuery) IDsX(ctx context.Context) []string {
	ids, err := _q.IDs(ctx)
	if err != nil {
		panic(err)
	}
	return ids
}

// Count returns the count of the given query.
func (_q *ChatbotQuery) Count(ctx context.Context) (int, error) {
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryCount)
	if err := _q.prepareQuery(ctx); err != nil {
		return 0, err
	}
	return withInterceptors[int](ctx, _q, querierCount[*ChatbotQuery](), _q.inters)
}

// CountX is like Count, but panics if an error occurs.
func (_q *ChatbotQuery) CountX(ctx context.Context) int {
	count, err := _q.Count(ctx)
	if err != nil {
		panic(err)
	}
	return count
}

// Exist returns true if the query has elements in the graph.
func (_q *ChatbotQuery) Exist(ctx context.Context) (bool, error) {
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
func (_q *ChatbotQuery) ExistX(ctx context.Context) bool {
	exist, err := _q.Exist(ctx)
	if err != nil {
		panic(err)
	}
	return exist
}

// Clone returns a duplicate of the ChatbotQuery builder, including all associated steps. It can be
// used to prepare common query builders and use them differently after the clone is made.
func (_q *ChatbotQuery) Clone() *ChatbotQuery {
	if _q == nil {
		return nil
	}
	return &ChatbotQuery{
		config:         _q.config,
		ctx:            _q.ctx.Clone(),
		order:          append([]chatbot.OrderOption{}, _q.order...),
		inters:         append([]Interceptor{}, _q.inters...),
		predicates:     append([]predicate.Chatbot{}, _q.predicates...),
		withDocuments:  _q.withDocuments.Clone(),
		withVersions:   _q.withVersions.Clone(),
		withSessions:   _q.withSessions.Clone(),
		withDailyStats: _q.withDailyStats.Clone(),
		// clone intermediate query.
		sql:  _q.sql.Clone(),
		path: _q.path,
	}
}

// WithDocuments tells the query-builder to eager-load the nodes that are connected to
// the "documents" edge. The optional arguments are used to configure the query builder of the edge.
func (_q *ChatbotQuery) WithDocuments(opts ...func(*DocumentQuery)) *ChatbotQuery {
	query := (&DocumentClient{config: _q.config}).Query()
	for _, opt := range opts {
		opt(query)
	}
	_q.withDocuments = query
	return _q
}

// WithVersions tells the query-builder to eager-load the nodes that are connected to
// the "versions" edge. The optional arguments are used to configure the query builder of the edge.
func (_q *ChatbotQuery) WithVersions(opts ...func(*BuildVersionQuery)) *ChatbotQuery {
	query := (&BuildVersionClient{config: _q.config}).Query()
	for _, opt := range opts {
		opt(query)
	}
	_q.withVersions = query
	return _q
}

// WithSessions tells the query-builder to eager-load the nodes that are connected to
// the "sessions" edge. The optional arguments are used to configure the query builder of the edge.
func (_q *ChatbotQuery) WithSessions(opts ...func(*ChatSessionQuery)) *ChatbotQuery {
	query := (&ChatSessionClient{config: _q.config}).Query()
	for _, opt := range opts {
		opt(query)
	}
	_q.withSessions = query
	return _q
}

// WithDailyStats tells the query-builder to eager-load the nodes that are connected to
// the "daily_stats" edge. The optional arguments are used to configure the query builder of the edge.
func (_q *ChatbotQuery) WithDailyStats(opts ...func(*DailyStatQuery)) *ChatbotQuery {
	query := (&DailyStatClient{config: _q.config}).Query()
	for _, opt := range opts {
		opt(query)
	}
	_q.withDailyStats = query
	return _q
}

// GroupBy is used to group vertices by one or more fields/columns.
// It is often used with aggregate functions, like: count, max, mean, min, sum.
//
// Example:
//
//	var v []struct {
//		Name string `json:"name,omitempty"`
//		Count int `json:"count,omitempty"`
//	}
//
//	client.Chatbot.Query().
//		GroupBy(chatbot.FieldName).
//		Aggregate(ent.Count()).
//		Scan(ctx, &v)
func (_q *ChatbotQuery) GroupBy(field string, fields ...string) *ChatbotGroupBy {
	_q.ctx.Fields = append([]string{field}, fields...)
	grbuild := &ChatbotGroupBy{build: _q}
	grbuild.flds = &_q.ctx.Fields
	grbuild.label = chatbot.Label
	grbuild.scan = grbuild.Scan
	return grbuild
}

// Select allows the selection one or more fields/columns for the given query,
// instead of selecting all fields in the entity.
//
// Example:
//
//	var v []struct {
//		Name string `json:"name,omitempty"`
//	}
//
//	client.Chatbot.Query().
//		Select(chatbot.FieldName).
//		Scan(ctx, &v)
func (_q *ChatbotQuery) Select(fields ...string) *ChatbotSelect {
	_q.ctx.Fields = append(_q.ctx.Fields, fields...)
	sbuild := &ChatbotSelect{ChatbotQuery: _q}
	sbuild.label = chatbot.Label
	sbuild.flds, sbuild.scan = &_q.ctx.Fields, sbuild.Scan
	return sbuild
}

// Aggregate returns a ChatbotSelect configured with the given aggregations.
func (_q *ChatbotQuery) Aggregate(fns ...AggregateFunc) *ChatbotSelect {
	return _q.Select().Aggregate(fns...)
}

func (_q *ChatbotQuery) prepareQuery(ctx context.Context) error {
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
		if !chatbot.ValidColumn(f) {
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

func (_q *ChatbotQuery) sqlAll(ctx context.Context, hooks ...queryHook) ([]*Chatbot, error) {
	var (
		nodes       = []*Chatbot{}
		_spec       = _q.querySpec()
		loadedTypes = [4]bool{
			_q.withDocuments != nil,
			_q.withVersions != nil,
			_q.withSessions != nil,
			_q.withDailyStats != nil,
		}
	)
	_spec.ScanValues = func(columns []string) ([]any, error) {
		return (*Chatbot).scanValues(nil, columns)
	}
	_spec.Assign = func(columns []string, values []any) error {
		node := &Chatbot{config: _q.config}
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
	if query := _q.withDocuments; query != nil {
		if err := _q.loadDocuments(ctx, query, nodes,
			func(n *Chatbot) { n.Edges.Documents = []*Document{} },
			func(n *Chatbot, e *Document) { n.Edges.Documents = append(n.Edges.Documents, e) }); err != nil {
			return nil, err
		}
	}
	if query := _q.withVersions; query != nil {
		if err := _q.loadVersions(ctx, query, nodes,
			func(n *Chatbot) { n.Edges.Versions = []*BuildVersion{} },
			func(n *Chatbot, e *BuildVersion) { n.Edges.Versions = append(n.Edges.Versions, e) }); err != nil {
			return nil, err
		}
	}
	if query := _q.withSessions; query != nil {
		if err := _q.loadSessions(ctx, query, nodes,
			func(n *Chatbot) { n.Edges.Sessions = []*ChatSession{} },
			func(n *Chatbot, e *ChatSession) { n.Edges.Sessions = append(n.Edges.Sessions, e) }); err != nil {
			return nil, err
		}
	}
	if query := _q.withDailyStats; query != nil {
		if err := _q.loadDailyStats(ctx, query, nodes,
			func(n *Chatbot) { n.Edges.DailyStats = []*DailyStat{} },
			func(n *Chatbot, e *DailyStat) { n.Edges.DailyStats = append(n.Edges.DailyStats, e) }); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

func (_q *ChatbotQuery) loadDocuments(ctx context.Context, query *DocumentQuery, nodes []*Chatbot, init func(*Chatbot), assign func(*Chatbot, *Document)) error {
	fks := make([]driver.Value, 0, len(nodes))
	nodeids := make(map[string]*Chatbot)
	for i := range nodes {
		fks = append(fks, nodes[i].ID)
		nodeids[nodes[i].ID] = nodes[i]
		if init != nil {
			init(nodes[i])
		}
	}
	if len(query.ctx.Fields) > 0 {
		query.ctx.AppendFieldOnce(document.FieldChatbotID)
	}
	query.Where(predicate.Document(func(s *sql.Selector) {
		s.Where(sql.InValues(s.C(chatbot.DocumentsColumn), fks...))
	}))
	neighbors, err := query.All(ctx)
	if err != nil {
		return err
	}
	for _, n := range neighbors {
		fk := n.ChatbotID
		node, ok := nodeids[fk]
		if !ok {
			return fmt.Errorf(`unexpected referenced foreign-key "chatbot_id" returned %v for node %v`, fk, n.ID)
		}
		assign(node, n)
	}
	return nil
}
func (_q *ChatbotQuery) loadVersions(ctx context.Context, query *BuildVersionQuery, nodes []*Chatbot, init func(*Chatbot), assign func(*Chatbot, *BuildVersion)) error {
	fks := make([]driver.Value, 0, len(nodes))
	nodeids := make(map[string]*Chatbot)
	for i := range nodes {
		fks = append(fks, nodes[i].ID)
		nodeids[nodes[i].ID] = nodes[i]
		if init != nil {
			init(nodes[i])
		}
	}
	if len(query.ctx.Fields) > 0 {
		query.ctx.AppendFieldOnce(buildversion.FieldChatbotID)
	}
	query.Where(predicate.BuildVersion(func(s *sql.Selector) {
		s.Where(sql.InValues(s.C(chatbot.VersionsColumn), fks...))
	}))
	neighbors, err := query.All(ctx)
	if err != nil {
		return err
	}
	for _, n := range neighbors {
		fk := n.ChatbotID
		node, ok := nodeids[fk]
		if !ok {
			return fmt.Errorf(`unexpected referenced foreign-key "chatbot_id" returned %v for node %v`, fk, n.ID)
		}
		assign(node, n)
	}
	return nil
}
func (_q *ChatbotQuery) loadSessions(ctx context.Context, query *ChatSessionQuery, nodes []*Chatbot, init func(*Chatbot), assign func(*Chatbot, *ChatSession)) error {
	fks := make([]driver.Value, 0, len(nodes))
	nodeids := make(map[string]*Chatbot)
	for i := range nodes {
		fks = append(fks, nodes[i].ID)
		nodeids[nodes[i].ID] = nodes[i]
		if init != nil {
			init(nodes[i])
		}
	}
	if len(query.ctx.Fields) > 0 {
		query.ctx.AppendFieldOnce(chatsession.FieldChatbotID)
	}
	query.Where(predicate.ChatSession(func(s *sql.Selector) {
		s.Where(sql.InValues(s.C(chatbot.SessionsColumn), fks...))
	}))
	neighbors, err := query.All(ctx)
	if err != nil {
		return err
	}
	for _, n := range neighbors {
		fk := n.ChatbotID
		node, ok := nodeids[fk]
		if !ok {
			return fmt.Errorf(`unexpected referenced foreign-key "chatbot_id" returned %v for node %v`, fk, n.ID)
		}
		assign(node, n)
	}
	return nil
}
func (_q *ChatbotQuery) loadDailyStats(ctx context.Context, query *DailyStatQuery, nodes []*Chatbot, init func(*Chatbot), assign func(*Chatbot, *DailyStat)) error {
	fks := make([]driver.Value, 0, len(nodes))
	nodeids := make(map[string]*Chatbot)
	for i := range nodes {
		fks = append(fks, nodes[i].ID)
		nodeids[nodes[i].ID] = nodes[i]
		if init != nil {
			init(nodes[i])
		}
	}
	if len(query.ctx.Fields) > 0 {
		query.ctx.AppendFieldOnce(dailystat.FieldChatbotID)
	}
	query.Where(predicate.DailyStat(func(s *sql.Selector) {
		s.Where(sql.InValues(s.C(chatbot.DailyStatsColumn), fks...))
	}))
	neighbors, err := query.All(ctx)
	if err != nil {
		return err
	}
	for _, n := range neighbors {
		fk := n.ChatbotID
		node, ok := nodeids[fk]
		if !ok {
			return fmt.Errorf(`unexpected referenced foreign-key "chatbot_id" returned %v for node %v`, fk, n.ID)
		}
		assign(node, n)
	}
	return nil
}

func (_q *ChatbotQuery) sqlCount(ctx context.Context) (int, error) {
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

func (_q *ChatbotQuery) querySpec() *sqlgraph.QuerySpec {
	_spec := sqlgraph.NewQuerySpec(chatbot.Table, chatbot.Columns, sqlgraph.NewFieldSpec(chatbot.FieldID, field.TypeString))
	_spec.From = _q.sql
	if unique := _q.ctx.Unique; unique != nil {
		_spec.Unique = *unique
	} else if _q.path != nil {
		_spec.Unique = true
	}
	if fields := _q.ctx.Fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, chatbot.FieldID)
		for i := range fields {
			if fields[i] != chatbot.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, fields[i])
			}
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

func (_q *ChatbotQuery) sqlQuery(ctx context.Context) *sql.Selector {
	builder := sql.Dialect(_q.driver.Dialect())
	t1 := builder.Table(chatbot.Table)
	columns := _q.ctx.Fields
	if len(columns) == 0 {
		columns = chatbot.Columns
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
func (_q *ChatbotQuery) ForUpdate(opts ...sql.LockOption) *ChatbotQuery {
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
func (_q *ChatbotQuery) ForShare(opts ...sql.LockOption) *ChatbotQuery {
	if _q.driver.Dialect() == dialect.Postgres {
		_q.Unique(false)
	}
	_q.modifiers = append(_q.modifiers, func(s *sql.Selector) {
		s.ForShare(opts...)
	})
	return _q
}

// ChatbotGroupBy is the group-by builder for Chatbot entities.
type ChatbotGroupBy struct {
	selector
	build *ChatbotQuery
}

// Aggregate adds the given aggregation functions to the group-by query.
func (_g *ChatbotGroupBy) Aggregate(fns ...AggregateFunc) *ChatbotGroupBy {
	_g.fns = append(_g.fns, fns...)
	return _g
}

// Scan applies the selector query and scans the result into the given value.
func (_g *ChatbotGroupBy) Scan(ctx context.Context, v any) error {
	ctx = setContextOp(ctx, _g.build.ctx, ent.OpQueryGroupBy)
	if err := _g.build.prepareQuery(ctx); err != nil {
		return err
	}
	return scanWithInterceptors[*ChatbotQuery, *ChatbotGroupBy](ctx, _g.build, _g, _g.build.inters, v)
}

func (_g *ChatbotGroupBy) sqlScan(ctx context.Context, root *ChatbotQuery, v any) error {
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

// ChatbotSelect is the builder for selecting fields of Chatbot entities.
type ChatbotSelect struct {
	*ChatbotQuery
	selector
}

// Aggregate adds the given aggregation functions to the selector query.
func (_s *ChatbotSelect) Aggregate(fns ...AggregateFunc) *ChatbotSelect {
	_s.fns = append(_s.fns, fns...)
	return _s
}

// Scan applies the selector query and scans the result into the given value.
func (_s *ChatbotSelect) Scan(ctx context.Context, v any) error {
	ctx = setContextOp(ctx, _s.ctx, ent.OpQuerySelect)
	if err := _s.prepareQuery(ctx); err != nil {
		return err
	}
	return scanWithInterceptors[*ChatbotQuery, *ChatbotSelect](ctx, _s.ChatbotQuery, _s, _s.inters, v)
}

func (_s *ChatbotSelect) sqlScan(ctx context.Context, root *ChatbotQuery, v any) error {
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
