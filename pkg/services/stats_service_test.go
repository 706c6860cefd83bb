package services

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lorekeep/lorekeep/ent"
	"github.com/lorekeep/lorekeep/ent/chatbot"
	entmsg "github.com/lorekeep/lorekeep/ent/message"
	"github.com/lorekeep/lorekeep/test/util"
)

func seedStatsSession(t *testing.T, client *ent.Client, botID string) *ent.ChatSession {
	t.Helper()
	sess, err := client.ChatSession.Create().
		SetID(uuid.New().String()).
		SetChatbotID(botID).
		SetExpiresAt(time.Now().Add(time.Hour)).
		Save(context.Background())
	require.NoError(t, err)
	return sess
}

type statsMsg struct {
	role           entmsg.Role
	createdAt      time.Time
	responseTimeMs int
	inputTokens    int
	outputTokens   int
	retrievals     int
}

func seedStatsMessage(t *testing.T, client *ent.Client, sessionID string, m statsMsg) {
	t.Helper()
	_, err := client.Message.Create().
		SetID(uuid.New().String()).
		SetSessionID(sessionID).
		SetRole(m.role).
		SetContent("text").
		SetCreatedAt(m.createdAt).
		SetResponseTimeMs(m.responseTimeMs).
		SetInputTokens(m.inputTokens).
		SetOutputTokens(m.outputTokens).
		SetRetrievalCount(m.retrievals).
		Save(context.Background())
	require.NoError(t, err)
}

func TestRebuildDailyStats(t *testing.T) {
	client, _ := util.SetupTestDatabase(t)
	svc := NewStatsService(client)
	ctx := context.Background()

	bot := seedBot(t, client, chatbot.StatusActive, 1)
	day := time.Date(2026, 8, 20, 0, 0, 0, 0, time.UTC)

	// Session started yesterday, continued into the target day.
	earlier := seedStatsSession(t, client, bot.ID)
	seedStatsMessage(t, client, earlier.ID, statsMsg{
		role: entmsg.RoleUser, createdAt: day.Add(-6 * time.Hour),
	})
	seedStatsMessage(t, client, earlier.ID, statsMsg{
		role: entmsg.RoleUser, createdAt: day.Add(2 * time.Hour),
	})
	seedStatsMessage(t, client, earlier.ID, statsMsg{
		role: entmsg.RoleAssistant, createdAt: day.Add(2*time.Hour + time.Second),
		responseTimeMs: 900, inputTokens: 50, outputTokens: 10, retrievals: 1,
	})

	// Session whose first message lands on the target day.
	fresh := seedStatsSession(t, client, bot.ID)
	seedStatsMessage(t, client, fresh.ID, statsMsg{
		role: entmsg.RoleUser, createdAt: day.Add(10 * time.Hour),
	})
	seedStatsMessage(t, client, fresh.ID, statsMsg{
		role: entmsg.RoleAssistant, createdAt: day.Add(10*time.Hour + time.Second),
		responseTimeMs: 1100, inputTokens: 70, outputTokens: 20, retrievals: 1,
	})

	row, err := svc.RebuildDailyStats(ctx, bot.ID, day)
	require.NoError(t, err)

	assert.Equal(t, 1, row.SessionCount, "only the session that started this day counts")
	assert.Equal(t, 4, row.MessageCount)
	assert.Equal(t, int64(2000), row.TotalResponseTimeMs)
	assert.Equal(t, int64(120), row.InputTokens)
	assert.Equal(t, int64(30), row.OutputTokens)
	assert.Equal(t, int64(2), row.RetrievalCount)

	// Rebuilding again is a no-op overwrite, not an accumulation.
	row, err = svc.RebuildDailyStats(ctx, bot.ID, day)
	require.NoError(t, err)
	assert.Equal(t, 4, row.MessageCount)
}

func TestGetStats(t *testing.T) {
	client, _ := util.SetupTestDatabase(t)
	svc := NewStatsService(client)
	ctx := context.Background()

	bot := seedBot(t, client, chatbot.StatusActive, 1)
	sess := seedStatsSession(t, client, bot.ID)

	now := time.Now().UTC()
	responseTimes := []int{200, 400, 600, 800, 1000}
	for _, rt := range responseTimes {
		seedStatsMessage(t, client, sess.ID, statsMsg{
			role: entmsg.RoleUser, createdAt: now,
		})
		seedStatsMessage(t, client, sess.ID, statsMsg{
			role: entmsg.RoleAssistant, createdAt: now,
			responseTimeMs: rt, inputTokens: 10, outputTokens: 5, retrievals: 1,
		})
	}
	_, err := svc.RebuildDailyStats(ctx, bot.ID, now)
	require.NoError(t, err)

	resp, err := svc.GetStats(ctx, bot.ID, 7)
	require.NoError(t, err)

	assert.Equal(t, 7, resp.Days)
	assert.Equal(t, 1, resp.SessionCount)
	assert.Equal(t, 10, resp.MessageCount)
	assert.Equal(t, int64(50), resp.InputTokens)
	assert.Equal(t, int64(25), resp.OutputTokens)
	assert.Equal(t, int64(5), resp.RetrievalCount)
	assert.Equal(t, int64(600), resp.AvgResponseTimeMs)
	assert.Equal(t, 600, resp.P50ResponseTimeMs)
	assert.Equal(t, 1000, resp.P95ResponseTimeMs)
	require.Len(t, resp.Daily, 1)
}

func TestGetStats_WindowExcludesOlderDays(t *testing.T) {
	client, _ := util.SetupTestDatabase(t)
	svc := NewStatsService(client)
	ctx := context.Background()

	bot := seedBot(t, client, chatbot.StatusActive, 1)
	sess := seedStatsSession(t, client, bot.ID)

	old := time.Now().UTC().AddDate(0, 0, -10)
	seedStatsMessage(t, client, sess.ID, statsMsg{
		role: entmsg.RoleAssistant, createdAt: old,
		responseTimeMs: 5000, inputTokens: 99, outputTokens: 99, retrievals: 9,
	})
	_, err := svc.RebuildDailyStats(ctx, bot.ID, old)
	require.NoError(t, err)

	resp, err := svc.GetStats(ctx, bot.ID, 7)
	require.NoError(t, err)
	assert.Zero(t, resp.MessageCount)
	assert.Zero(t, resp.P95ResponseTimeMs)
	assert.Empty(t, resp.Daily)
}

func TestGetStats_UnknownChatbot(t *testing.T) {
	client, _ := util.SetupTestDatabase(t)
	svc := NewStatsService(client)

	_, err := svc.GetStats(context.Background(), "missing", 7)
	assert.ErrorIs(t, err, ErrNotFound)
}
