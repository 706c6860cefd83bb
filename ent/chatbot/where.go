// Code generated by ent, DO NOT EDIT.

package chatbot

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/lorekeep/lorekeep/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.Chatbot {
	return predicate.Chatbot(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.Chatbot {
	return predicate.Chatbot(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.Chatbot {
	return predicate.Chatbot(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.Chatbot {
	return predicate.Chatbot(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.Chatbot {
	return predicate.Chatbot(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.Chatbot {
	return predicate.Chatbot(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.Chatbot {
	return predicate.Chatbot(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.Chatbot {
	return predicate.Chatbot(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.Chatbot {
	return predicate.Chatbot(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.Chatbot {
	return predicate.Chatbot(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.Chatbot {
	return predicate.Chatbot(sql.FieldContainsFold(FieldID, id))
}

// Name applies equality check predicate on the "name" field. It's identical to NameEQ.
func Name(v string) predicate.Chatbot {
	return predicate.Chatbot(sql.FieldEQ(FieldName, v))
}

// Description applies equality check predicate on the "description" field. It's identical to DescriptionEQ.
func Description(v string) predicate.Chatbot {
	return predicate.Chatbot(sql.FieldEQ(FieldDescription, v))
}

// AccessURL applies equality check predicate on the "access_url" field. It's identical to AccessURLEQ.
func AccessURL(v string) predicate.Chatbot {
	return predicate.Chatbot(sql.FieldEQ(FieldAccessURL, v))
}

// ActiveVersion applies equality check predicate on the "active_version" field. It's identical to ActiveVersionEQ.
func ActiveVersion(v int) predicate.Chatbot {
	return predicate.Chatbot(sql.FieldEQ(FieldActiveVersion, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.Chatbot {
	return predicate.Chatbot(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.Chatbot {
	return predicate.Chatbot(sql.FieldEQ(FieldUpdatedAt, v))
}

// NameEQ applies the EQ predicate on the "name" field.
func NameEQ(v string) predicate.Chatbot {
	return predicate.Chatbot(sql.FieldEQ(FieldName, v))
}

// NameNEQ applies the NEQ predicate on the "name" field.
func NameNEQ(v string) predicate.Chatbot {
	return predicate.Chatbot(sql.FieldNEQ(FieldName, v))
}

// NameIn applies the In predicate on the "name" field.
func NameIn(vs ...string) predicate.Chatbot {
	return predicate.Chatbot(sql.FieldIn(FieldName, vs...))
}

// NameNotIn applies the NotIn predicate on the "name" field.
func NameNotIn(vs ...string) predicate.Chatbot {
	return predicate.Chatbot(sql.FieldNotIn(FieldName, vs...))
}

// NameGT applies the GT predicate on the "name" field.
func NameGT(v string) predicate.Chatbot {
	return predicate.Chatbot(sql.FieldGT(FieldName, v))
}

// NameGTE applies the GTE predicate on the "name" field.
func NameGTE(v string) predicate.Chatbot {
	return predicate.Chatbot(sql.FieldGTE(FieldName, v))
}

// NameLT applies the LT predicate on the "name" field.
func NameLT(v string) predicate.Chatbot {
	return predicate.Chatbot(sql.FieldLT(FieldName, v))
}

// NameLTE applies the LTE predicate on the "name" field.
func NameLTE(v string) predicate.Chatbot {
	return predicate.Chatbot(sql.FieldLTE(FieldName, v))
}

// NameContains applies the Contains predicate on the "name" field.
func NameContains(v string) predicate.Chatbot {
	return predicate.Chatbot(sql.FieldContains(FieldName, v))
}

// NameHasPrefix applies the HasPrefix predicate on the "name" field.
func NameHasPrefix(v string) predicate.Chatbot {
	return predicate.Chatbot(sql.FieldHasPrefix(FieldName, v))
}

// NameHasSuffix applies the HasSuffix predicate on the "name" field.
func NameHasSuffix(v string) predicate.Chatbot {
	return predicate.Chatbot(sql.FieldHasSuffix(FieldName, v))
}

// NameEqualFold applies the EqualFold predicate on the "name" field.
func NameEqualFold(v string) predicate.Chatbot {
	return predicate.Chatbot(sql.FieldEqualFold(FieldName, v))
}

// NameContainsFold applies the ContainsFold predicate on the "name" field.
func NameContainsFold(v string) predicate.Chatbot {
	return predicate.Chatbot(sql.FieldContainsFold(FieldName, v))
}

// DescriptionEQ applies the EQ predicate on the "description" field.
func DescriptionEQ(v string) predicate.Chatbot {
	return predicate.Chatbot(sql.FieldEQ(FieldDescription, v))
}

// DescriptionNEQ applies the NEQ predicate on the "description" field.
func DescriptionNEQ(v string) predicate.Chatbot {
	return predicate.Chatbot(sql.FieldNEQ(FieldDescription, v))
}

// DescriptionIn applies the In predicate on the "description" field.
func DescriptionIn(vs ...string) predicate.Chatbot {
	return predicate.Chatbot(sql.FieldIn(FieldDescription, vs...))
}

// DescriptionNotIn applies the NotIn predicate on the "description" field.
func DescriptionNotIn(vs ...string) predicate.Chatbot {
	return predicate.Chatbot(sql.FieldNotIn(FieldDescription, vs...))
}

// DescriptionGT applies the GT predicate on the "description" field.
func DescriptionGT(v string) predicate.Chatbot {
	return predicate.Chatbot(sql.FieldGT(FieldDescription, v))
}

// DescriptionGTE applies the GTE predicate on the "description" field.
func DescriptionGTE(v string) predicate.Chatbot {
	return predicate.Chatbot(sql.FieldGTE(FieldDescription, v))
}

// DescriptionLT applies the LT predicate on the "description" field.
func DescriptionLT(v string) predicate.Chatbot {
	return predicate.Chatbot(sql.FieldLT(FieldDescription, v))
}

// DescriptionLTE applies the LTE predicate on the "description" field.
func DescriptionLTE(v string) predicate.Chatbot {
	return predicate.Chatbot(sql.FieldLTE(FieldDescription, v))
}

// DescriptionContains applies the Contains predicate on the "description" field.
func DescriptionContains(v string) predicate.Chatbot {
	return predicate.Chatbot(sql.FieldContains(FieldDescription, v))
}

// DescriptionHasPrefix applies the HasPrefix predicate on the "description" field.
func DescriptionHasPrefix(v string) predicate.Chatbot {
	return predicate.Chatbot(sql.FieldHasPrefix(FieldDescription, v))
}

// DescriptionHasSuffix applies the HasSuffix predicate on the "description" field.
func DescriptionHasSuffix(v string) predicate.Chatbot {
	return predicate.Chatbot(sql.FieldHasSuffix(FieldDescription, v))
}

// DescriptionIsNil applies the IsNil predicate on the "description" field.
func DescriptionIsNil() predicate.Chatbot {
	return predicate.Chatbot(sql.FieldIsNull(FieldDescription))
}

// DescriptionNotNil applies the NotNil predicate on the "description" field.
func DescriptionNotNil() predicate.Chatbot {
	return predicate.Chatbot(sql.FieldNotNull(FieldDescription))
}

// DescriptionEqualFold applies the EqualFold predicate on the "description" field.
func DescriptionEqualFold(v string) predicate.Chatbot {
	return predicate.Chatbot(sql.FieldEqualFold(FieldDescription, v))
}

// DescriptionContainsFold applies the ContainsFold predicate on the "description" field.
func DescriptionContainsFold(v string) predicate.Chatbot {
	return predicate.Chatbot(sql.FieldContainsFold(FieldDescription, v))
}

// PersonaIsNil applies the IsNil predicate on the "persona" field.
func PersonaIsNil() predicate.Chatbot {
	return predicate.Chatbot(sql.FieldIsNull(FieldPersona))
}

// PersonaNotNil applies the NotNil predicate on the "persona" field.
func PersonaNotNil() predicate.Chatbot {
	return predicate.Chatbot(sql.FieldNotNull(FieldPersona))
}

// AccessURLEQ applies the EQ predicate on the "access_url" field.
func AccessURLEQ(v string) predicate.Chatbot {
	return predicate.Chatbot(sql.FieldEQ(FieldAccessURL, v))
}

// AccessURLNEQ applies the NEQ predicate on the "access_url" field.
func AccessURLNEQ(v string) predicate.Chatbot {
	return predicate.Chatbot(sql.FieldNEQ(FieldAccessURL, v))
}

// AccessURLIn applies the In predicate on the "access_url" field.
func AccessURLIn(vs ...string) predicate.Chatbot {
	return predicate.Chatbot(sql.FieldIn(FieldAccessURL, vs...))
}

// AccessURLNotIn applies the NotIn predicate on the "access_url" field.
func AccessURLNotIn(vs ...string) predicate.Chatbot {
	return predicate.Chatbot(sql.FieldNotIn(FieldAccessURL, vs...))
}

// AccessURLGT applies the GT predicate on the "access_url" field.
func AccessURLGT(v string) predicate.Chatbot {
	return predicate.Chatbot(sql.FieldGT(FieldAccessURL, v))
}

// AccessURLGTE applies the GTE predicate on the "access_url" field.
func AccessURLGTE(v string) predicate.Chatbot {
	return predicate.Chatbot(sql.FieldGTE(FieldAccessURL, v))
}

// AccessURLLT applies the LT predicate on the "access_url" field.
func AccessURLLT(v string) predicate.Chatbot {
	return predicate.Chatbot(sql.FieldLT(FieldAccessURL, v))
}

// AccessURLLTE applies the LTE predicate on the "access_url" field.
func AccessURLLTE(v string) predicate.Chatbot {
	return predicate.Chatbot(sql.FieldLTE(FieldAccessURL, v))
}

// AccessURLContains applies the Contains predicate on the "access_url" field.
func AccessURLContains(v string) predicate.Chatbot {
	return predicate.Chatbot(sql.FieldContains(FieldAccessURL, v))
}

// AccessURLHasPrefix applies the HasPrefix predicate on the "access_url" field.
func AccessURLHasPrefix(v string) predicate.Chatbot {
	return predicate.Chatbot(sql.FieldHasPrefix(FieldAccessURL, v))
}

// AccessURLHasSuffix applies the HasSuffix predicate on the "access_url" field.
func AccessURLHasSuffix(v string) predicate.Chatbot {
	return predicate.Chatbot(sql.FieldHasSuffix(FieldAccessURL, v))
}

// AccessURLEqualFold applies the EqualFold predicate on the "access_url" field.
func AccessURLEqualFold(v string) predicate.Chatbot {
	return predicate.Chatbot(sql.FieldEqualFold(FieldAccessURL, v))
}

// AccessURLContainsFold applies the ContainsFold predicate on the "access_url" field.
func AccessURLContainsFold(v string) predicate.Chatbot {
	return predicate.Chatbot(sql.FieldContainsFold(FieldAccessURL, v))
}

// StatusEQ applies the EQ predicate on the "status" field.
func StatusEQ(v Status) predicate.Chatbot {
	return predicate.Chatbot(sql.FieldEQ(FieldStatus, v))
}

// StatusNEQ applies the NEQ predicate on the "status" field.
func StatusNEQ(v Status) predicate.Chatbot {
	return predicate.Chatbot(sql.FieldNEQ(FieldStatus, v))
}

// StatusIn applies the In predicate on the "status" field.
func StatusIn(vs ...Status) predicate.Chatbot {
	return predicate.Chatbot(sql.FieldIn(FieldStatus, vs...))
}

// StatusNotIn applies the NotIn predicate on the "status" field.
func StatusNotIn(vs ...Status) predicate.Chatbot {
	return predicate.Chatbot(sql.FieldNotIn(FieldStatus, vs...))
}

// ActiveVersionEQ applies the EQ predicate on the "active_version" field.
func ActiveVersionEQ(v int) predicate.Chatbot {
	return predicate.Chatbot(sql.FieldEQ(FieldActiveVersion, v))
}

// ActiveVersionNEQ applies the NEQ predicate on the "active_version" field.
func ActiveVersionNEQ(v int) predicate.Chatbot {
	return predicate.Chatbot(sql.FieldNEQ(FieldActiveVersion, v))
}

// ActiveVersionIn applies the In predicate on the "active_version" field.
func ActiveVersionIn(vs ...int) predicate.Chatbot {
	return predicate.Chatbot(sql.FieldIn(FieldActiveVersion, vs...))
}

// ActiveVersionNotIn applies the NotIn predicate on the "active_version" field.
func ActiveVersionNotIn(vs ...int) predicate.Chatbot {
	return predicate.Chatbot(sql.FieldNotIn(FieldActiveVersion, vs...))
}

// ActiveVersionGT applies the GT predicate on the "active_version" field.
func ActiveVersionGT(v int) predicate.Chatbot {
	return predicate.Chatbot(sql.FieldGT(FieldActiveVersion, v))
}

// ActiveVersionGTE applies the GTE predicate on the "active_version" field.
func ActiveVersionGTE(v int) predicate.Chatbot {
	return predicate.Chatbot(sql.FieldGTE(FieldActiveVersion, v))
}

// ActiveVersionLT applies the LT predicate on the "active_version" field.
func ActiveVersionLT(v int) predicate.Chatbot {
	return predicate.Chatbot(sql.FieldLT(FieldActiveVersion, v))
}

// ActiveVersionLTE applies the LTE predicate on the "active_version" field.
func ActiveVersionLTE(v int) predicate.Chatbot {
	return predicate.Chatbot(sql.FieldLTE(FieldActiveVersion, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.Chatbot {
	return predicate.Chatbot(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.Chatbot {
	return predicate.Chatbot(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.Chatbot {
	return predicate.Chatbot(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.Chatbot {
	return predicate.Chatbot(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.Chatbot {
	return predicate.Chatbot(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.Chatbot {
	return predicate.Chatbot(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.Chatbot {
	return predicate.Chatbot(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.Chatbot {
	return predicate.Chatbot(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.Chatbot {
	return predicate.Chatbot(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.Chatbot {
	return predicate.Chatbot(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.Chatbot {
	return predicate.Chatbot(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.Chatbot {
	return predicate.Chatbot(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.Chatbot {
	return predicate.Chatbot(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.Chatbot {
	return predicate.Chatbot(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.Chatbot {
	return predicate.Chatbot(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.Chatbot {
	return predicate.Chatbot(sql.FieldLTE(FieldUpdatedAt, v))
}

// HasDocuments applies the HasEdge predicate on the "documents" edge.
func HasDocuments() predicate.Chatbot {
	return predicate.Chatbot(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, DocumentsTable, DocumentsColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasDocumentsWith applies the HasEdge predicate on the "documents" edge with a given conditions (other predicates).
func HasDocumentsWith(preds ...predicate.Document) predicate.Chatbot {
	return predicate.Chatbot(func(s *sql.Selector) {
		step := newDocumentsStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasVersions applies the HasEdge predicate on the "versions" edge.
func HasVersions() predicate.Chatbot {
	return predicate.Chatbot(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, VersionsTable, VersionsColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasVersionsWith applies the HasEdge predicate on the "versions" edge with a given conditions (other predicates).
func HasVersionsWith(preds ...predicate.BuildVersion) predicate.Chatbot {
	return predicate.Chatbot(func(s *sql.Selector) {
		step := newVersionsStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasSessions applies the HasEdge predicate on the "sessions" edge.
func HasSessions() predicate.Chatbot {
	return predicate.Chatbot(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, SessionsTable, SessionsColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasSessionsWith applies the HasEdge predicate on the "sessions" edge with a given conditions (other predicates).
func HasSessionsWith(preds ...predicate.ChatSession) predicate.Chatbot {
	return predicate.Chatbot(func(s *sql.Selector) {
		step := newSessionsStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasDailyStats applies the HasEdge predicate on the "daily_stats" edge.
func HasDailyStats() predicate.Chatbot {
	return predicate.Chatbot(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, DailyStatsTable, DailyStatsColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasDailyStatsWith applies the HasEdge predicate on the "daily_stats" edge with a given conditions (other predicates).
func HasDailyStatsWith(preds ...predicate.DailyStat) predicate.Chatbot {
	return predicate.Chatbot(func(s *sql.Selector) {
		step := newDailyStatsStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Chatbot) predicate.Chatbot {
	return predicate.Chatbot(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Chatbot) predicate.Chatbot {
	return predicate.Chatbot(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Chatbot) predicate.Chatbot {
	return predicate.Chatbot(sql.NotPredicates(p))
}
