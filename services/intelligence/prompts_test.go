package ai

import (
	"testing"
	"time"

	"calendxr/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildChatPromptGroundsOnEvents(t *testing.T) {
	events := []models.CalendarEvent{
		{
			Title:    "Design review",
			Location: "Room 4",
			Start:    time.Date(2026, time.March, 2, 10, 0, 0, 0, time.UTC),
			End:      time.Date(2026, time.March, 2, 11, 0, 0, 0, time.UTC),
		},
	}
	chatCtx := &models.ChatContext{Turns: []models.ChatMessage{
		{Role: "user", Content: "What do I have on Monday?"},
		{Role: "model", Content: "A design review at 10 AM."},
	}}

	prompt := buildChatPrompt(events, chatCtx, "Where is it?")

	assert.Contains(t, prompt, "Design review")
	assert.Contains(t, prompt, "Room 4")
	assert.Contains(t, prompt, "What do I have on Monday?")
	assert.Contains(t, prompt, "Where is it?")
	assert.Contains(t, prompt, "based solely on these events")
}

func TestBuildChatPromptNoEvents(t *testing.T) {
	prompt := buildChatPrompt(nil, &models.ChatContext{}, "Am I free tomorrow?")
	assert.Contains(t, prompt, "(no upcoming events)")
}

func TestBuildAnalysisPrompt(t *testing.T) {
	payload := models.AnalysisPayload{
		Users: []models.UserScheduleSummary{
			{
				Name:       "Alice",
				Email:      "alice@example.com",
				EventCount: 1,
				BusyTimes: []models.BusyInterval{{
					Label: "standup",
					Start: time.Date(2026, time.March, 2, 9, 0, 0, 0, time.UTC),
					End:   time.Date(2026, time.March, 2, 10, 0, 0, 0, time.UTC),
				}},
			},
		},
		FreeSlots: []models.FreeSlotView{{
			User:          "Alice",
			Start:         time.Date(2026, time.March, 2, 10, 0, 0, 0, time.UTC),
			End:           time.Date(2026, time.March, 2, 18, 0, 0, 0, time.UTC),
			DurationHours: 8,
		}},
		LookAheadDays: 7,
	}

	prompt := buildAnalysisPrompt(payload, time.Date(2026, time.March, 2, 8, 0, 0, 0, time.UTC))

	assert.Contains(t, prompt, "Today is Monday, March 2, 2026")
	assert.Contains(t, prompt, "next 7 days")
	assert.Contains(t, prompt, "Alice (alice@example.com)")
	assert.Contains(t, prompt, "standup")
	assert.Contains(t, prompt, "(8 hours)")
	assert.Contains(t, prompt, "overlapping free times")
}

func TestParseEventDraft(t *testing.T) {
	raw := `{"title": "Spring Concert", "description": "Campus orchestra", "location": "Main Hall",
		"start": "2026-04-10T18:00:00+09:00", "end": "2026-04-10T20:00:00+09:00"}`

	draft, err := parseEventDraft(raw)
	require.NoError(t, err)
	assert.Equal(t, "Spring Concert", draft.Title)
	assert.Equal(t, "Main Hall", draft.Location)
	assert.Equal(t, 2*time.Hour, draft.End.Sub(draft.Start))
}

func TestParseEventDraftStripsCodeFence(t *testing.T) {
	raw := "```json\n{\"title\": \"Talk\", \"start\": \"2026-04-10T18:00:00Z\", \"end\": \"2026-04-10T19:00:00Z\"}\n```"

	draft, err := parseEventDraft(raw)
	require.NoError(t, err)
	assert.Equal(t, "Talk", draft.Title)
}

func TestParseEventDraftRejectsBadOutput(t *testing.T) {
	_, err := parseEventDraft("No event information was found.")
	assert.Error(t, err)

	_, err = parseEventDraft(`{"title": "", "start": "2026-04-10T18:00:00Z", "end": "2026-04-10T19:00:00Z"}`)
	assert.Error(t, err)

	_, err = parseEventDraft(`{"title": "Backwards", "start": "2026-04-10T19:00:00Z", "end": "2026-04-10T18:00:00Z"}`)
	assert.Error(t, err)
}
