package ai

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"calendxr/models"
	"calendxr/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// maxContextTurns bounds how much conversation history is replayed into the
// prompt.
const maxContextTurns = 20

// AIService is the language-model collaborator: chat over a user's schedule,
// prose analysis of group schedules, and flyer-to-event extraction.
type AIService interface {
	Chat(ctx context.Context, req models.ChatRequest, events []models.CalendarEvent) (*models.ChatResponse, error)
	AnalyzeSchedules(ctx context.Context, payload models.AnalysisPayload) (string, error)
	ExtractEvent(ctx context.Context, ocrText string) (*models.EventDraft, error)
}

// DefaultAIService is the Gemini-backed implementation.
type DefaultAIService struct {
	client   *GeminiClient
	ctxStore *RedisContextStore
	now      func() time.Time
}

func NewDefaultAIService(client *GeminiClient, ctxStore *RedisContextStore) *DefaultAIService {
	return &DefaultAIService{
		client:   client,
		ctxStore: ctxStore,
		now:      time.Now,
	}
}

// Chat answers one calendar question, grounded on the caller's upcoming
// events, carrying conversation state across turns via the context store.
func (s *DefaultAIService) Chat(ctx context.Context, req models.ChatRequest, events []models.CalendarEvent) (*models.ChatResponse, error) {
	conversationID := req.ConversationID
	if conversationID == "" {
		conversationID = uuid.NewString()
	}

	chatCtx, err := s.ctxStore.Get(ctx, conversationID)
	if err != nil {
		// A lost conversation context degrades to a fresh one.
		utils.GetLogger().Warn("Failed to load chat context", zap.Error(err))
		chatCtx = &models.ChatContext{}
	}

	reply, err := s.client.GenerateContent(ctx, buildChatPrompt(events, chatCtx, req.Message))
	if err != nil {
		return nil, fmt.Errorf("chat generation failed: %w", err)
	}

	chatCtx.Turns = append(chatCtx.Turns,
		models.ChatMessage{Role: "user", Content: req.Message},
		models.ChatMessage{Role: "model", Content: reply},
	)
	if len(chatCtx.Turns) > maxContextTurns {
		chatCtx.Turns = chatCtx.Turns[len(chatCtx.Turns)-maxContextTurns:]
	}
	if err := s.ctxStore.Set(ctx, conversationID, chatCtx); err != nil {
		utils.GetLogger().Warn("Failed to save chat context", zap.Error(err))
	}

	return &models.ChatResponse{Reply: reply, ConversationID: conversationID}, nil
}

// AnalyzeSchedules forwards the structured schedule payload and returns the
// model's prose recommendations. Satisfies scheduler.ScheduleAnalyzer.
func (s *DefaultAIService) AnalyzeSchedules(ctx context.Context, payload models.AnalysisPayload) (string, error) {
	analysis, err := s.client.GenerateContent(ctx, buildAnalysisPrompt(payload, s.now()))
	if err != nil {
		return "", fmt.Errorf("schedule analysis failed: %w", err)
	}
	return analysis, nil
}

// ExtractEvent turns OCR text from a flyer into an event draft.
func (s *DefaultAIService) ExtractEvent(ctx context.Context, ocrText string) (*models.EventDraft, error) {
	raw, err := s.client.GenerateContent(ctx, buildExtractionPrompt(ocrText))
	if err != nil {
		return nil, fmt.Errorf("event extraction failed: %w", err)
	}

	draft, err := parseEventDraft(raw)
	if err != nil {
		return nil, fmt.Errorf("event extraction returned unusable output: %w", err)
	}
	draft.ID = uuid.NewString()
	draft.SourceText = ocrText
	return draft, nil
}

// parseEventDraft decodes the model's JSON reply, tolerating stray code
// fences despite the prompt asking for none.
func parseEventDraft(raw string) (*models.EventDraft, error) {
	cleaned := strings.TrimSpace(raw)
	cleaned = strings.TrimPrefix(cleaned, "```json")
	cleaned = strings.TrimPrefix(cleaned, "```")
	cleaned = strings.TrimSuffix(cleaned, "```")
	cleaned = strings.TrimSpace(cleaned)

	var draft models.EventDraft
	if err := json.Unmarshal([]byte(cleaned), &draft); err != nil {
		return nil, fmt.Errorf("decode draft JSON: %w", err)
	}
	if draft.Title == "" {
		return nil, fmt.Errorf("draft has no title")
	}
	if draft.Start.IsZero() || draft.End.IsZero() || !draft.Start.Before(draft.End) {
		return nil, fmt.Errorf("draft has invalid date range")
	}
	return &draft, nil
}
