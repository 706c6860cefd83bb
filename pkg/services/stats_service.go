package services

import (
	"context"
	"fmt"
	"slices"
	"time"

	"github.com/google/uuid"

	"github.com/lorekeep/lorekeep/ent"
	"github.com/lorekeep/lorekeep/ent/chatsession"
	"github.com/lorekeep/lorekeep/ent/dailystat"
	entmsg "github.com/lorekeep/lorekeep/ent/message"
	"github.com/lorekeep/lorekeep/pkg/models"
)

const (
	defaultStatsDays = 7
	maxStatsDays     = 365
)

// StatsService aggregates per-tenant usage. Counters live in daily_stats
// rows maintained synchronously with message writes; percentiles come from
// the messages table directly.
type StatsService struct {
	client *ent.Client
}

// NewStatsService creates a new StatsService.
func NewStatsService(client *ent.Client) *StatsService {
	return &StatsService{client: client}
}

// GetStats returns totals and latency percentiles over the trailing day
// window, inclusive of today.
func (s *StatsService) GetStats(httpCtx context.Context, chatbotID string, days int) (*models.StatsResponse, error) {
	if days <= 0 {
		days = defaultStatsDays
	}
	if days > maxStatsDays {
		days = maxStatsDays
	}

	ctx, cancel := context.WithTimeout(httpCtx, 10*time.Second)
	defer cancel()

	if _, err := s.client.Chatbot.Get(ctx, chatbotID); err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get chatbot: %w", err)
	}

	since := dayStart(time.Now().UTC()).AddDate(0, 0, -(days - 1))

	daily, err := s.client.DailyStat.Query().
		Where(
			dailystat.ChatbotID(chatbotID),
			dailystat.DateGTE(since),
		).
		Order(ent.Asc(dailystat.FieldDate)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load daily stats: %w", err)
	}

	resp := &models.StatsResponse{
		ChatbotID: chatbotID,
		Days:      days,
		Daily:     daily,
	}
	for _, d := range daily {
		resp.SessionCount += d.SessionCount
		resp.MessageCount += d.MessageCount
		resp.InputTokens += d.InputTokens
		resp.OutputTokens += d.OutputTokens
		resp.RetrievalCount += d.RetrievalCount
	}

	// Latency percentiles are not additive, so they come straight from the
	// assistant messages in the window.
	times, err := s.client.Message.Query().
		Where(
			entmsg.HasSessionWith(chatsession.ChatbotID(chatbotID)),
			entmsg.RoleEQ(entmsg.RoleAssistant),
			entmsg.Failed(false),
			entmsg.CreatedAtGTE(since),
			entmsg.ResponseTimeMsGT(0),
		).
		Select(entmsg.FieldResponseTimeMs).
		Ints(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load response times: %w", err)
	}

	if len(times) > 0 {
		slices.Sort(times)
		var sum int64
		for _, t := range times {
			sum += int64(t)
		}
		resp.AvgResponseTimeMs = sum / int64(len(times))
		resp.P50ResponseTimeMs = percentile(times, 50)
		resp.P95ResponseTimeMs = percentile(times, 95)
	}

	return resp, nil
}

// RebuildDailyStats recomputes one (chatbot, day) row from the messages
// table and overwrites the counters, repairing any drift. Returns the
// rebuilt row.
func (s *StatsService) RebuildDailyStats(ctx context.Context, chatbotID string, date time.Time) (*ent.DailyStat, error) {
	from := dayStart(date.UTC())
	to := from.AddDate(0, 0, 1)

	msgs, err := s.client.Message.Query().
		Where(
			entmsg.HasSessionWith(chatsession.ChatbotID(chatbotID)),
			entmsg.CreatedAtGTE(from),
			entmsg.CreatedAtLT(to),
		).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load messages: %w", err)
	}

	var (
		messageCount  int
		responseTime  int64
		inputTokens   int64
		outputTokens  int64
		retrievals    int64
		sessionsInDay = map[string]bool{}
	)
	for _, m := range msgs {
		messageCount++
		sessionsInDay[m.SessionID] = true
		if m.Role == entmsg.RoleAssistant {
			responseTime += int64(m.ResponseTimeMs)
			inputTokens += int64(m.InputTokens)
			outputTokens += int64(m.OutputTokens)
			retrievals += int64(m.RetrievalCount)
		}
	}

	// A session counts toward the day its first message landed on, matching
	// the synchronous increment on first-message persistence.
	sessionCount := 0
	for sessionID := range sessionsInDay {
		earlier, err := s.client.Message.Query().
			Where(
				entmsg.SessionID(sessionID),
				entmsg.CreatedAtLT(from),
			).
			Exist(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to check session start: %w", err)
		}
		if !earlier {
			sessionCount++
		}
	}

	err = s.client.DailyStat.Create().
		SetID(uuid.New().String()).
		SetChatbotID(chatbotID).
		SetDate(from).
		SetSessionCount(sessionCount).
		SetMessageCount(messageCount).
		SetTotalResponseTimeMs(responseTime).
		SetInputTokens(inputTokens).
		SetOutputTokens(outputTokens).
		SetRetrievalCount(retrievals).
		OnConflictColumns(dailystat.FieldChatbotID, dailystat.FieldDate).
		Update(func(u *ent.DailyStatUpsert) {
			u.SetSessionCount(sessionCount)
			u.SetMessageCount(messageCount)
			u.SetTotalResponseTimeMs(responseTime)
			u.SetInputTokens(inputTokens)
			u.SetOutputTokens(outputTokens)
			u.SetRetrievalCount(retrievals)
			u.SetUpdatedAt(time.Now())
		}).
		Exec(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to upsert daily stats: %w", err)
	}

	row, err := s.client.DailyStat.Query().
		Where(
			dailystat.ChatbotID(chatbotID),
			dailystat.Date(from),
		).
		Only(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load rebuilt daily stats: %w", err)
	}
	return row, nil
}

// percentile returns the nearest-rank percentile of a sorted slice.
func percentile(sorted []int, p int) int {
	if len(sorted) == 0 {
		return 0
	}
	rank := (len(sorted)*p + 99) / 100
	if rank < 1 {
		rank = 1
	}
	return sorted[rank-1]
}

// dayStart truncates a time to UTC midnight.
func dayStart(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
