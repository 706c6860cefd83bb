// Code generated by ent, DO NOT EDIT.

package buildversion

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/lorekeep/lorekeep/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.BuildVersion {
	return predicate.BuildVersion(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.BuildVersion {
	return predicate.BuildVersion(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.BuildVersion {
	return predicate.BuildVersion(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.BuildVersion {
	return predicate.BuildVersion(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.BuildVersion {
	return predicate.BuildVersion(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.BuildVersion {
	return predicate.BuildVersion(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.BuildVersion {
	return predicate.BuildVersion(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.BuildVersion {
	return predicate.BuildVersion(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.BuildVersion {
	return predicate.BuildVersion(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.BuildVersion {
	return predicate.BuildVersion(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.BuildVersion {
	return predicate.BuildVersion(sql.FieldContainsFold(FieldID, id))
}

// ChatbotID applies equality check predicate on the "chatbot_id" field. It's identical to ChatbotIDEQ.
func ChatbotID(v string) predicate.BuildVersion {
	return predicate.BuildVersion(sql.FieldEQ(FieldChatbotID, v))
}

// Version applies equality check predicate on the "version" field. It's identical to VersionEQ.
func Version(v int) predicate.BuildVersion {
	return predicate.BuildVersion(sql.FieldEQ(FieldVersion, v))
}

// ActivatedAt applies equality check predicate on the "activated_at" field. It's identical to ActivatedAtEQ.
func ActivatedAt(v time.Time) predicate.BuildVersion {
	return predicate.BuildVersion(sql.FieldEQ(FieldActivatedAt, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.BuildVersion {
	return predicate.BuildVersion(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.BuildVersion {
	return predicate.BuildVersion(sql.FieldEQ(FieldUpdatedAt, v))
}

// ChatbotIDEQ applies the EQ predicate on the "chatbot_id" field.
func ChatbotIDEQ(v string) predicate.BuildVersion {
	return predicate.BuildVersion(sql.FieldEQ(FieldChatbotID, v))
}

// ChatbotIDNEQ applies the NEQ predicate on the "chatbot_id" field.
func ChatbotIDNEQ(v string) predicate.BuildVersion {
	return predicate.BuildVersion(sql.FieldNEQ(FieldChatbotID, v))
}

// ChatbotIDIn applies the In predicate on the "chatbot_id" field.
func ChatbotIDIn(vs ...string) predicate.BuildVersion {
	return predicate.BuildVersion(sql.FieldIn(FieldChatbotID, vs...))
}

// ChatbotIDNotIn applies the NotIn predicate on the "chatbot_id" field.
func ChatbotIDNotIn(vs ...string) predicate.BuildVersion {
	return predicate.BuildVersion(sql.FieldNotIn(FieldChatbotID, vs...))
}

// ChatbotIDGT applies the GT predicate on the "chatbot_id" field.
func ChatbotIDGT(v string) predicate.BuildVersion {
	return predicate.BuildVersion(sql.FieldGT(FieldChatbotID, v))
}

// ChatbotIDGTE applies the GTE predicate on the "chatbot_id" field.
func ChatbotIDGTE(v string) predicate.BuildVersion {
	return predicate.BuildVersion(sql.FieldGTE(FieldChatbotID, v))
}

// ChatbotIDLT applies the LT predicate on the "chatbot_id" field.
func ChatbotIDLT(v string) predicate.BuildVersion {
	return predicate.BuildVersion(sql.FieldLT(FieldChatbotID, v))
}

// ChatbotIDLTE applies the LTE predicate on the "chatbot_id" field.
func ChatbotIDLTE(v string) predicate.BuildVersion {
	return predicate.BuildVersion(sql.FieldLTE(FieldChatbotID, v))
}

// ChatbotIDContains applies the Contains predicate on the "chatbot_id" field.
func ChatbotIDContains(v string) predicate.BuildVersion {
	return predicate.BuildVersion(sql.FieldContains(FieldChatbotID, v))
}

// ChatbotIDHasPrefix applies the HasPrefix predicate on the "chatbot_id" field.
func ChatbotIDHasPrefix(v string) predicate.BuildVersion {
	return predicate.BuildVersion(sql.FieldHasPrefix(FieldChatbotID, v))
}

// ChatbotIDHasSuffix applies the HasSuffix predicate on the "chatbot_id" field.
func ChatbotIDHasSuffix(v string) predicate.BuildVersion {
	return predicate.BuildVersion(sql.FieldHasSuffix(FieldChatbotID, v))
}

// ChatbotIDEqualFold applies the EqualFold predicate on the "chatbot_id" field.
func ChatbotIDEqualFold(v string) predicate.BuildVersion {
	return predicate.BuildVersion(sql.FieldEqualFold(FieldChatbotID, v))
}

// ChatbotIDContainsFold applies the ContainsFold predicate on the "chatbot_id" field.
func ChatbotIDContainsFold(v string) predicate.BuildVersion {
	return predicate.BuildVersion(sql.FieldContainsFold(FieldChatbotID, v))
}

// VersionEQ applies the EQ predicate on the "version" field.
func VersionEQ(v int) predicate.BuildVersion {
	return predicate.BuildVersion(sql.FieldEQ(FieldVersion, v))
}

// VersionNEQ applies the NEQ predicate on the "version" field.
func VersionNEQ(v int) predicate.BuildVersion {
	return predicate.BuildVersion(sql.FieldNEQ(FieldVersion, v))
}

// VersionIn applies the In predicate on the "version" field.
func VersionIn(vs ...int) predicate.BuildVersion {
	return predicate.BuildVersion(sql.FieldIn(FieldVersion, vs...))
}

// VersionNotIn applies the NotIn predicate on the "version" field.
func VersionNotIn(vs ...int) predicate.BuildVersion {
	return predicate.BuildVersion(sql.FieldNotIn(FieldVersion, vs...))
}

// VersionGT applies the GT predicate on the "version" field.
func VersionGT(v int) predicate.BuildVersion {
	return predicate.BuildVersion(sql.FieldGT(FieldVersion, v))
}

// VersionGTE applies the GTE predicate on the "version" field.
func VersionGTE(v int) predicate.BuildVersion {
	return predicate.BuildVersion(sql.FieldGTE(FieldVersion, v))
}

// VersionLT applies the LT predicate on the "version" field.
func VersionLT(v int) predicate.BuildVersion {
	return predicate.BuildVersion(sql.FieldLT(FieldVersion, v))
}

// VersionLTE applies the LTE predicate on the "version" field.
func VersionLTE(v int) predicate.BuildVersion {
	return predicate.BuildVersion(sql.FieldLTE(FieldVersion, v))
}

// StatusEQ applies the EQ predicate on the "status" field.
func StatusEQ(v Status) predicate.BuildVersion {
	return predicate.BuildVersion(sql.FieldEQ(FieldStatus, v))
}

// StatusNEQ applies the NEQ predicate on the "status" field.
func StatusNEQ(v Status) predicate.BuildVersion {
	return predicate.BuildVersion(sql.FieldNEQ(FieldStatus, v))
}

// StatusIn applies the In predicate on the "status" field.
func StatusIn(vs ...Status) predicate.BuildVersion {
	return predicate.BuildVersion(sql.FieldIn(FieldStatus, vs...))
}

// StatusNotIn applies the NotIn predicate on the "status" field.
func StatusNotIn(vs ...Status) predicate.BuildVersion {
	return predicate.BuildVersion(sql.FieldNotIn(FieldStatus, vs...))
}

// ActivatedAtEQ applies the EQ predicate on the "activated_at" field.
func ActivatedAtEQ(v time.Time) predicate.BuildVersion {
	return predicate.BuildVersion(sql.FieldEQ(FieldActivatedAt, v))
}

// ActivatedAtNEQ applies the NEQ predicate on the "activated_at" field.
func ActivatedAtNEQ(v time.Time) predicate.BuildVersion {
	return predicate.BuildVersion(sql.FieldNEQ(FieldActivatedAt, v))
}

// ActivatedAtIn applies the In predicate on the "activated_at" field.
func ActivatedAtIn(vs ...time.Time) predicate.BuildVersion {
	return predicate.BuildVersion(sql.FieldIn(FieldActivatedAt, vs...))
}

// ActivatedAtNotIn applies the NotIn predicate on the "activated_at" field.
func ActivatedAtNotIn(vs ...time.Time) predicate.BuildVersion {
	return predicate.BuildVersion(sql.FieldNotIn(FieldActivatedAt, vs...))
}

// ActivatedAtGT applies the GT predicate on the "activated_at" field.
func ActivatedAtGT(v time.Time) predicate.BuildVersion {
	return predicate.BuildVersion(sql.FieldGT(FieldActivatedAt, v))
}

// ActivatedAtGTE applies the GTE predicate on the "activated_at" field.
func ActivatedAtGTE(v time.Time) predicate.BuildVersion {
	return predicate.BuildVersion(sql.FieldGTE(FieldActivatedAt, v))
}

// ActivatedAtLT applies the LT predicate on the "activated_at" field.
func ActivatedAtLT(v time.Time) predicate.BuildVersion {
	return predicate.BuildVersion(sql.FieldLT(FieldActivatedAt, v))
}

// ActivatedAtLTE applies the LTE predicate on the "activated_at" field.
func ActivatedAtLTE(v time.Time) predicate.BuildVersion {
	return predicate.BuildVersion(sql.FieldLTE(FieldActivatedAt, v))
}

// ActivatedAtIsNil applies the IsNil predicate on the "activated_at" field.
func ActivatedAtIsNil() predicate.BuildVersion {
	return predicate.BuildVersion(sql.FieldIsNull(FieldActivatedAt))
}

// ActivatedAtNotNil applies the NotNil predicate on the "activated_at" field.
func ActivatedAtNotNil() predicate.BuildVersion {
	return predicate.BuildVersion(sql.FieldNotNull(FieldActivatedAt))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.BuildVersion {
	return predicate.BuildVersion(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.BuildVersion {
	return predicate.BuildVersion(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.BuildVersion {
	return predicate.BuildVersion(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.BuildVersion {
	return predicate.BuildVersion(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.BuildVersion {
	return predicate.BuildVersion(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.BuildVersion {
	return predicate.BuildVersion(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.BuildVersion {
	return predicate.BuildVersion(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.BuildVersion {
	return predicate.BuildVersion(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.BuildVersion {
	return predicate.BuildVersion(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.BuildVersion {
	return predicate.BuildVersion(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.BuildVersion {
	return predicate.BuildVersion(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.BuildVersion {
	return predicate.BuildVersion(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.BuildVersion {
	return predicate.BuildVersion(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.BuildVersion {
	return predicate.BuildVersion(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.BuildVersion {
	return predicate.BuildVersion(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.BuildVersion {
	return predicate.BuildVersion(sql.FieldLTE(FieldUpdatedAt, v))
}

// HasChatbot applies the HasEdge predicate on the "chatbot" edge.
func HasChatbot() predicate.BuildVersion {
	return predicate.BuildVersion(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, ChatbotTable, ChatbotColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasChatbotWith applies the HasEdge predicate on the "chatbot" edge with a given conditions (other predicates).
func HasChatbotWith(preds ...predicate.Chatbot) predicate.BuildVersion {
	return predicate.BuildVersion(func(s *sql.Selector) {
		step := newChatbotStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.BuildVersion) predicate.BuildVersion {
	return predicate.BuildVersion(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.BuildVersion) predicate.BuildVersion {
	return predicate.BuildVersion(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.BuildVersion) predicate.BuildVersion {
	return predicate.BuildVersion(sql.NotPredicates(p))
}
