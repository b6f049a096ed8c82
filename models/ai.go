package models

// ChatRequest is one chatbot turn about the user's schedule.
type ChatRequest struct {
	Message        string `json:"message" binding:"required"`
	ConversationID string `json:"conversationId"`
}

// ChatResponse carries the assistant reply and the conversation id the
// client should echo back on the next turn.
type ChatResponse struct {
	Reply          string `json:"reply"`
	ConversationID string `json:"conversationId"`
}

// ChatContext is the persisted state of one conversation.
type ChatContext struct {
	UserID string        `json:"userId"`
	Turns  []ChatMessage `json:"turns"`
}

// ChatMessage is one prior exchange turn.
type ChatMessage struct {
	Role    string `json:"role"` // "user" or "model"
	Content string `json:"content"`
}

// UserScheduleSummary is the per-user section of the analysis payload sent
// to the summarization collaborator.
type UserScheduleSummary struct {
	Name       string         `json:"name"`
	Email      string         `json:"email"`
	EventCount int            `json:"eventCount"`
	BusyTimes  []BusyInterval `json:"busyTimes"`
}

// AnalysisPayload is the structured schedule data the summarization
// collaborator receives alongside the natural-language instruction.
type AnalysisPayload struct {
	Users         []UserScheduleSummary `json:"users"`
	FreeSlots     []FreeSlotView        `json:"freeSlots"`
	LookAheadDays int                   `json:"lookAheadDays"`
}
