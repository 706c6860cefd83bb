// Code generated by ent, DO NOT EDIT.

package dailystat

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/lorekeep/lorekeep/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.DailyStat {
	return predicate.DailyStat(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.DailyStat {
	return predicate.DailyStat(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.DailyStat {
	return predicate.DailyStat(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.DailyStat {
	return predicate.DailyStat(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.DailyStat {
	return predicate.DailyStat(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.DailyStat {
	return predicate.DailyStat(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.DailyStat {
	return predicate.DailyStat(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.DailyStat {
	return predicate.DailyStat(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.DailyStat {
	return predicate.DailyStat(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.DailyStat {
	return predicate.DailyStat(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.DailyStat {
	return predicate.DailyStat(sql.FieldContainsFold(FieldID, id))
}

// ChatbotID applies equality check predicate on the "chatbot_id" field. It's identical to ChatbotIDEQ.
func ChatbotID(v string) predicate.DailyStat {
	return predicate.DailyStat(sql.FieldEQ(FieldChatbotID, v))
}

// Date applies equality check predicate on the "date" field. It's identical to DateEQ.
func Date(v time.Time) predicate.DailyStat {
	return predicate.DailyStat(sql.FieldEQ(FieldDate, v))
}

// SessionCount applies equality check predicate on the "session_count" field. It's identical to SessionCountEQ.
func SessionCount(v int) predicate.DailyStat {
	return predicate.DailyStat(sql.FieldEQ(FieldSessionCount, v))
}

// MessageCount applies equality check predicate on the "message_count" field. It's identical to MessageCountEQ.
func MessageCount(v int) predicate.DailyStat {
	return predicate.DailyStat(sql.FieldEQ(FieldMessageCount, v))
}

// TotalResponseTimeMs applies equality check predicate on the "total_response_time_ms" field. It's identical to TotalResponseTimeMsEQ.
func TotalResponseTimeMs(v int64) predicate.DailyStat {
	return predicate.DailyStat(sql.FieldEQ(FieldTotalResponseTimeMs, v))
}

// InputTokens applies equality check predicate on the "input_tokens" field. It's identical to InputTokensEQ.
func InputTokens(v int64) predicate.DailyStat {
	return predicate.DailyStat(sql.FieldEQ(FieldInputTokens, v))
}

// OutputTokens applies equality check predicate on the "output_tokens" field. It's identical to OutputTokensEQ.
func OutputTokens(v int64) predicate.DailyStat {
	return predicate.DailyStat(sql.FieldEQ(FieldOutputTokens, v))
}

// RetrievalCount applies equality check predicate on the "retrieval_count" field. It's identical to RetrievalCountEQ.
func RetrievalCount(v int64) predicate.DailyStat {
	return predicate.DailyStat(sql.FieldEQ(FieldRetrievalCount, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.DailyStat {
	return predicate.DailyStat(sql.FieldEQ(FieldUpdatedAt, v))
}

// ChatbotIDEQ applies the EQ predicate on the "chatbot_id" field.
func ChatbotIDEQ(v string) predicate.DailyStat {
	return predicate.DailyStat(sql.FieldEQ(FieldChatbotID, v))
}

// ChatbotIDNEQ applies the NEQ predicate on the "chatbot_id" field.
func ChatbotIDNEQ(v string) predicate.DailyStat {
	return predicate.DailyStat(sql.FieldNEQ(FieldChatbotID, v))
}

// ChatbotIDIn applies the In predicate on the "chatbot_id" field.
func ChatbotIDIn(vs ...string) predicate.DailyStat {
	return predicate.DailyStat(sql.FieldIn(FieldChatbotID, vs...))
}

// ChatbotIDNotIn applies the NotIn predicate on the "chatbot_id" field.
func ChatbotIDNotIn(vs ...string) predicate.DailyStat {
	return predicate.DailyStat(sql.FieldNotIn(FieldChatbotID, vs...))
}

// ChatbotIDGT applies the GT predicate on the "chatbot_id" field.
func ChatbotIDGT(v string) predicate.DailyStat {
	return predicate.DailyStat(sql.FieldGT(FieldChatbotID, v))
}

// ChatbotIDGTE applies the GTE predicate on the "chatbot_id" field.
func ChatbotIDGTE(v string) predicate.DailyStat {
	return predicate.DailyStat(sql.FieldGTE(FieldChatbotID, v))
}

// ChatbotIDLT applies the LT predicate on the "chatbot_id" field.
func ChatbotIDLT(v string) predicate.DailyStat {
	return predicate.DailyStat(sql.FieldLT(FieldChatbotID, v))
}

// ChatbotIDLTE applies the LTE predicate on the "chatbot_id" field.
func ChatbotIDLTE(v string) predicate.DailyStat {
	return predicate.DailyStat(sql.FieldLTE(FieldChatbotID, v))
}

// ChatbotIDContains applies the Contains predicate on the "chatbot_id" field.
func ChatbotIDContains(v string) predicate.DailyStat {
	return predicate.DailyStat(sql.FieldContains(FieldChatbotID, v))
}

// ChatbotIDHasPrefix applies the HasPrefix predicate on the "chatbot_id" field.
func ChatbotIDHasPrefix(v string) predicate.DailyStat {
	return predicate.DailyStat(sql.FieldHasPrefix(FieldChatbotID, v))
}

// ChatbotIDHasSuffix applies the HasSuffix predicate on the "chatbot_id" field.
func ChatbotIDHasSuffix(v string) predicate.DailyStat {
	return predicate.DailyStat(sql.FieldHasSuffix(FieldChatbotID, v))
}

// ChatbotIDEqualFold applies the EqualFold predicate on the "chatbot_id" field.
func ChatbotIDEqualFold(v string) predicate.DailyStat {
	return predicate.DailyStat(sql.FieldEqualFold(FieldChatbotID, v))
}

// ChatbotIDContainsFold applies the ContainsFold predicate on the "chatbot_id" field.
func ChatbotIDContainsFold(v string) predicate.DailyStat {
	return predicate.DailyStat(sql.FieldContainsFold(FieldChatbotID, v))
}

// DateEQ applies the EQ predicate on the "date" field.
func DateEQ(v time.Time) predicate.DailyStat {
	return predicate.DailyStat(sql.FieldEQ(FieldDate, v))
}

// DateNEQ applies the NEQ predicate on the "date" field.
func DateNEQ(v time.Time) predicate.DailyStat {
	return predicate.DailyStat(sql.FieldNEQ(FieldDate, v))
}

// DateIn applies the In predicate on the "date" field.
func DateIn(vs ...time.Time) predicate.DailyStat {
	return predicate.DailyStat(sql.FieldIn(FieldDate, vs...))
}

// DateNotIn applies the NotIn predicate on the "date" field.
func DateNotIn(vs ...time.Time) predicate.DailyStat {
	return predicate.DailyStat(sql.FieldNotIn(FieldDate, vs...))
}

// DateGT applies the GT predicate on the "date" field.
func DateGT(v time.Time) predicate.DailyStat {
	return predicate.DailyStat(sql.FieldGT(FieldDate, v))
}

// DateGTE applies the GTE predicate on the "date" field.
func DateGTE(v time.Time) predicate.DailyStat {
	return predicate.DailyStat(sql.FieldGTE(FieldDate, v))
}

// DateLT applies the LT predicate on the "date" field.
func DateLT(v time.Time) predicate.DailyStat {
	return predicate.DailyStat(sql.FieldLT(FieldDate, v))
}

// DateLTE applies the LTE predicate on the "date" field.
func DateLTE(v time.Time) predicate.DailyStat {
	return predicate.DailyStat(sql.FieldLTE(FieldDate, v))
}

// SessionCountEQ applies the EQ predicate on the "session_count" field.
func SessionCountEQ(v int) predicate.DailyStat {
	return predicate.DailyStat(sql.FieldEQ(FieldSessionCount, v))
}

// SessionCountNEQ applies the NEQ predicate on the "session_count" field.
func SessionCountNEQ(v int) predicate.DailyStat {
	return predicate.DailyStat(sql.FieldNEQ(FieldSessionCount, v))
}

// SessionCountIn applies the In predicate on the "session_count" field.
func SessionCountIn(vs ...int) predicate.DailyStat {
	return predicate.DailyStat(sql.FieldIn(FieldSessionCount, vs...))
}

// SessionCountNotIn applies the NotIn predicate on the "session_count" field.
func SessionCountNotIn(vs ...int) predicate.DailyStat {
	return predicate.DailyStat(sql.FieldNotIn(FieldSessionCount, vs...))
}

// SessionCountGT applies the GT predicate on the "session_count" field.
func SessionCountGT(v int) predicate.DailyStat {
	return predicate.DailyStat(sql.FieldGT(FieldSessionCount, v))
}

// SessionCountGTE applies the GTE predicate on the "session_count" field.
func SessionCountGTE(v int) predicate.DailyStat {
	return predicate.DailyStat(sql.FieldGTE(FieldSessionCount, v))
}

// SessionCountLT applies the LT predicate on the "session_count" field.
func SessionCountLT(v int) predicate.DailyStat {
	return predicate.DailyStat(sql.FieldLT(FieldSessionCount, v))
}

// SessionCountLTE applies the LTE predicate on the "session_count" field.
func SessionCountLTE(v int) predicate.DailyStat {
	return predicate.DailyStat(sql.FieldLTE(FieldSessionCount, v))
}

// MessageCountEQ applies the EQ predicate on the "message_count" field.
func MessageCountEQ(v int) predicate.DailyStat {
	return predicate.DailyStat(sql.FieldEQ(FieldMessageCount, v))
}

// MessageCountNEQ applies the NEQ predicate on the "message_count" field.
func MessageCountNEQ(v int) predicate.DailyStat {
	return predicate.DailyStat(sql.FieldNEQ(FieldMessageCount, v))
}

// MessageCountIn applies the In predicate on the "message_count" field.
func MessageCountIn(vs ...int) predicate.DailyStat {
	return predicate.DailyStat(sql.FieldIn(FieldMessageCount, vs...))
}

// MessageCountNotIn applies the NotIn predicate on the "message_count" field.
func MessageCountNotIn(vs ...int) predicate.DailyStat {
	return predicate.DailyStat(sql.FieldNotIn(FieldMessageCount, vs...))
}

// MessageCountGT applies the GT predicate on the "message_count" field.
func MessageCountGT(v int) predicate.DailyStat {
	return predicate.DailyStat(sql.FieldGT(FieldMessageCount, v))
}

// MessageCountGTE applies the GTE predicate on the "message_count" field.
func MessageCountGTE(v int) predicate.DailyStat {
	return predicate.DailyStat(sql.FieldGTE(FieldMessageCount, v))
}

// MessageCountLT applies the LT predicate on the "message_count" field.
func MessageCountLT(v int) predicate.DailyStat {
	return predicate.DailyStat(sql.FieldLT(FieldMessageCount, v))
}

// MessageCountLTE applies the LTE predicate on the "message_count" field.
func MessageCountLTE(v int) predicate.DailyStat {
	return predicate.DailyStat(sql.FieldLTE(FieldMessageCount, v))
}

// TotalResponseTimeMsEQ applies the EQ predicate on the "total_response_time_ms" field.
func TotalResponseTimeMsEQ(v int64) predicate.DailyStat {
	return predicate.DailyStat(sql.FieldEQ(FieldTotalResponseTimeMs, v))
}

// TotalResponseTimeMsNEQ applies the NEQ predicate on the "total_response_time_ms" field.
func TotalResponseTimeMsNEQ(v int64) predicate.DailyStat {
	return predicate.DailyStat(sql.FieldNEQ(FieldTotalResponseTimeMs, v))
}

// TotalResponseTimeMsIn applies the In predicate on the "total_response_time_ms" field.
func TotalResponseTimeMsIn(vs ...int64) predicate.DailyStat {
	return predicate.DailyStat(sql.FieldIn(FieldTotalResponseTimeMs, vs...))
}

// TotalResponseTimeMsNotIn applies the NotIn predicate on the "total_response_time_ms" field.
func TotalResponseTimeMsNotIn(vs ...int64) predicate.DailyStat {
	return predicate.DailyStat(sql.FieldNotIn(FieldTotalResponseTimeMs, vs...))
}

// TotalResponseTimeMsGT applies the GT predicate on the "total_response_time_ms" field.
func TotalResponseTimeMsGT(v int64) predicate.DailyStat {
	return predicate.DailyStat(sql.FieldGT(FieldTotalResponseTimeMs, v))
}

// TotalResponseTimeMsGTE applies the GTE predicate on the "total_response_time_ms" field.
func TotalResponseTimeMsGTE(v int64) predicate.DailyStat {
	return predicate.DailyStat(sql.FieldGTE(FieldTotalResponseTimeMs, v))
}

// TotalResponseTimeMsLT applies the LT predicate on the "total_response_time_ms" field.
func TotalResponseTimeMsLT(v int64) predicate.DailyStat {
	return predicate.DailyStat(sql.FieldLT(FieldTotalResponseTimeMs, v))
}

// TotalResponseTimeMsLTE applies the LTE predicate on the "total_response_time_ms" field.
func TotalResponseTimeMsLTE(v int64) predicate.DailyStat {
	return predicate.DailyStat(sql.FieldLTE(FieldTotalResponseTimeMs, v))
}

// InputTokensEQ applies the EQ predicate on the "input_tokens" field.
func InputTokensEQ(v int64) predicate.DailyStat {
	return predicate.DailyStat(sql.FieldEQ(FieldInputTokens, v))
}

// InputTokensNEQ applies the NEQ predicate on the "input_tokens" field.
func InputTokensNEQ(v int64) predicate.DailyStat {
	return predicate.DailyStat(sql.FieldNEQ(FieldInputTokens, v))
}

// InputTokensIn applies the In predicate on the "input_tokens" field.
func InputTokensIn(vs ...int64) predicate.DailyStat {
	return predicate.DailyStat(sql.FieldIn(FieldInputTokens, vs...))
}

// InputTokensNotIn applies the NotIn predicate on the "input_tokens" field.
func InputTokensNotIn(vs ...int64) predicate.DailyStat {
	return predicate.DailyStat(sql.FieldNotIn(FieldInputTokens, vs...))
}

// InputTokensGT applies the GT predicate on the "input_tokens" field.
func InputTokensGT(v int64) predicate.DailyStat {
	return predicate.DailyStat(sql.FieldGT(FieldInputTokens, v))
}

// InputTokensGTE applies the GTE predicate on the "input_tokens" field.
func InputTokensGTE(v int64) predicate.DailyStat {
	return predicate.DailyStat(sql.FieldGTE(FieldInputTokens, v))
}

// InputTokensLT applies the LT predicate on the "input_tokens" field.
func InputTokensLT(v int64) predicate.DailyStat {
	return predicate.DailyStat(sql.FieldLT(FieldInputTokens, v))
}

// InputTokensLTE applies the LTE predicate on the "input_tokens" field.
func InputTokensLTE(v int64) predicate.DailyStat {
	return predicate.DailyStat(sql.FieldLTE(FieldInputTokens, v))
}

// OutputTokensEQ applies the EQ predicate on the "output_tokens" field.
func OutputTokensEQ(v int64) predicate.DailyStat {
	return predicate.DailyStat(sql.FieldEQ(FieldOutputTokens, v))
}

// OutputTokensNEQ applies the NEQ predicate on the "output_tokens" field.
func OutputTokensNEQ(v int64) predicate.DailyStat {
	return predicate.DailyStat(sql.FieldNEQ(FieldOutputTokens, v))
}

// OutputTokensIn applies the In predicate on the "output_tokens" field.
func OutputTokensIn(vs ...int64) predicate.DailyStat {
	return predicate.DailyStat(sql.FieldIn(FieldOutputTokens, vs...))
}

// OutputTokensNotIn applies the NotIn predicate on the "output_tokens" field.
func OutputTokensNotIn(vs ...int64) predicate.DailyStat {
	return predicate.DailyStat(sql.FieldNotIn(FieldOutputTokens, vs...))
}

// OutputTokensGT applies the GT predicate on the "output_tokens" field.
func OutputTokensGT(v int64) predicate.DailyStat {
	return predicate.DailyStat(sql.FieldGT(FieldOutputTokens, v))
}

// OutputTokensGTE applies the GTE predicate on the "output_tokens" field.
func OutputTokensGTE(v int64) predicate.DailyStat {
	return predicate.DailyStat(sql.FieldGTE(FieldOutputTokens, v))
}

// OutputTokensLT applies the LT predicate on the "output_tokens" field.
func OutputTokensLT(v int64) predicate.DailyStat {
	return predicate.DailyStat(sql.FieldLT(FieldOutputTokens, v))
}

// OutputTokensLTE applies the LTE predicate on the "output_tokens" field.
func OutputTokensLTE(v int64) predicate.DailyStat {
	return predicate.DailyStat(sql.FieldLTE(FieldOutputTokens, v))
}

// RetrievalCountEQ applies the EQ predicate on the "retrieval_count" field.
func RetrievalCountEQ(v int64) predicate.DailyStat {
	return predicate.DailyStat(sql.FieldEQ(FieldRetrievalCount, v))
}

// RetrievalCountNEQ applies the NEQ predicate on the "retrieval_count" field.
func RetrievalCountNEQ(v int64) predicate.DailyStat {
	return predicate.DailyStat(sql.FieldNEQ(FieldRetrievalCount, v))
}

// RetrievalCountIn applies the In predicate on the "retrieval_count" field.
func RetrievalCountIn(vs ...int64) predicate.DailyStat {
	return predicate.DailyStat(sql.FieldIn(FieldRetrievalCount, vs...))
}

// RetrievalCountNotIn applies the NotIn predicate on the "retrieval_count" field.
func RetrievalCountNotIn(vs ...int64) predicate.DailyStat {
	return predicate.DailyStat(sql.FieldNotIn(FieldRetrievalCount, vs...))
}

// RetrievalCountGT applies the GT predicate on the "retrieval_count" field.
func RetrievalCountGT(v int64) predicate.DailyStat {
	return predicate.DailyStat(sql.FieldGT(FieldRetrievalCount, v))
}

// RetrievalCountGTE applies the GTE predicate on the "retrieval_count" field.
func RetrievalCountGTE(v int64) predicate.DailyStat {
	return predicate.DailyStat(sql.FieldGTE(FieldRetrievalCount, v))
}

// RetrievalCountLT applies the LT predicate on the "retrieval_count" field.
func RetrievalCountLT(v int64) predicate.DailyStat {
	return predicate.DailyStat(sql.FieldLT(FieldRetrievalCount, v))
}

// RetrievalCountLTE applies the LTE predicate on the "retrieval_count" field.
func RetrievalCountLTE(v int64) predicate.DailyStat {
	return predicate.DailyStat(sql.FieldLTE(FieldRetrievalCount, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.DailyStat {
	return predicate.DailyStat(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.DailyStat {
	return predicate.DailyStat(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.DailyStat {
	return predicate.DailyStat(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.DailyStat {
	return predicate.DailyStat(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.DailyStat {
	return predicate.DailyStat(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.DailyStat {
	return predicate.DailyStat(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.DailyStat {
	return predicate.DailyStat(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.DailyStat {
	return predicate.DailyStat(sql.FieldLTE(FieldUpdatedAt, v))
}

// HasChatbot applies the HasEdge predicate on the "chatbot" edge.
func HasChatbot() predicate.DailyStat {
	return predicate.DailyStat(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, ChatbotTable, ChatbotColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasChatbotWith applies the HasEdge predicate on the "chatbot" edge with a given conditions (other predicates).
func HasChatbotWith(preds ...predicate.Chatbot) predicate.DailyStat {
	return predicate.DailyStat(func(s *sql.Selector) {
		step := newChatbotStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.DailyStat) predicate.DailyStat {
	return predicate.DailyStat(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.DailyStat) predicate.DailyStat {
	return predicate.DailyStat(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.DailyStat) predicate.DailyStat {
	return predicate.DailyStat(sql.NotPredicates(p))
}
