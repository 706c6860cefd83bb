package models

import "github.com/lorekeep/lorekeep/ent"

// StatsResponse aggregates tenant usage over a day window
type StatsResponse struct {
	ChatbotID          string           `json:"chatbot_id"`
	Days               int              `json:"days"`
	SessionCount       int              `json:"session_count"`
	MessageCount       int              `json:"message_count"`
	InputTokens        int64            `json:"input_tokens"`
	OutputTokens       int64            `json:"output_tokens"`
	RetrievalCount     int64            `json:"retrieval_count"`
	AvgResponseTimeMs  int64            `json:"avg_response_time_ms"`
	P50ResponseTimeMs  int              `json:"p50_response_time_ms"`
	P95ResponseTimeMs  int              `json:"p95_response_time_ms"`
	Daily              []*ent.DailyStat `json:"daily"`
}
