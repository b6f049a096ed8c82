package ai

import (
	"fmt"
	"strings"
	"time"

	"calendxr/models"
)

const displayTimeLayout = "Mon Jan 2, 2006 3:04 PM"

// buildChatPrompt assembles one chatbot turn: the calendar grounding, any
// prior turns from the conversation context, and the new user message.
func buildChatPrompt(events []models.CalendarEvent, chatCtx *models.ChatContext, message string) string {
	var sb strings.Builder
	sb.WriteString("You are a helpful assistant specialized in calendar management. ")
	sb.WriteString("You have access to the following events from the user's calendar:\n")
	if len(events) == 0 {
		sb.WriteString("(no upcoming events)\n")
	}
	for _, ev := range events {
		fmt.Fprintf(&sb, "- %s: %s - %s", ev.Title,
			ev.Start.Format(displayTimeLayout), ev.End.Format(displayTimeLayout))
		if ev.Location != "" {
			fmt.Fprintf(&sb, " at %s", ev.Location)
		}
		sb.WriteString("\n")
	}
	sb.WriteString("Please answer any calendar-related questions based solely on these events.\n")

	for _, turn := range chatCtx.Turns {
		fmt.Fprintf(&sb, "\n%s: %s", turn.Role, turn.Content)
	}
	fmt.Fprintf(&sb, "\nuser: %s\nmodel:", message)
	return sb.String()
}

// analysisInstruction is the natural-language ask attached to the structured
// schedule payload.
const analysisInstruction = "Based on the schedule data provided, what are the best times for a meeting? " +
	"Please find overlapping free times where all users are available, and suggest the top 3 options. " +
	"Consider business hours (9 AM - 5 PM) as preferred times."

// buildAnalysisPrompt renders the summarization request: per-user busy
// times, the free slots, and the instruction.
func buildAnalysisPrompt(payload models.AnalysisPayload, today time.Time) string {
	var sb strings.Builder
	sb.WriteString("You are a scheduling assistant. Analyze the following user schedule data and provide suggestions for optimal meeting times.\n\n")
	fmt.Fprintf(&sb, "Today is %s. You are analyzing schedules for the next %d days.\n\n",
		today.Format("Monday, January 2, 2006"), payload.LookAheadDays)

	sb.WriteString("USER SCHEDULES:\n")
	for _, user := range payload.Users {
		fmt.Fprintf(&sb, "User: %s (%s)\nTotal Events: %d\nBusy Times: ", user.Name, user.Email, user.EventCount)
		lines := make([]string, 0, len(user.BusyTimes))
		for _, busy := range user.BusyTimes {
			lines = append(lines, fmt.Sprintf("%s: %s - %s", busy.Label,
				busy.Start.Format(displayTimeLayout), busy.End.Format(displayTimeLayout)))
		}
		sb.WriteString(strings.Join(lines, ", "))
		sb.WriteString("\n\n")
	}

	sb.WriteString("AVAILABLE TIME SLOTS:\n")
	for _, slot := range payload.FreeSlots {
		fmt.Fprintf(&sb, "%s: %s - %s (%d hours)\n", slot.User,
			slot.Start.Format(displayTimeLayout), slot.End.Format(displayTimeLayout), slot.DurationHours)
	}

	sb.WriteString("\nPlease format your response with markdown for readability. ")
	sb.WriteString("Focus on finding overlapping free times where all users are available.\n\n")
	sb.WriteString(analysisInstruction)
	return sb.String()
}

// buildExtractionPrompt asks the model to turn OCR text from a flyer into a
// strict JSON event draft.
func buildExtractionPrompt(ocrText string) string {
	var sb strings.Builder
	sb.WriteString("Please extract the event date, time, and location from the following text. ")
	sb.WriteString("Ensure that your response follows the given conditions.\n")
	sb.WriteString("# Conditions:\n")
	sb.WriteString("- Provide a title.\n")
	sb.WriteString("- The date range should be clearly specified.\n")
	sb.WriteString("- Timestamps must be RFC 3339, e.g. 2026-03-02T18:00:00+09:00.\n")
	sb.WriteString("# Input Text:\n")
	sb.WriteString(ocrText)
	sb.WriteString("\n#\n")
	sb.WriteString("# The output should be in the following JSON format (Don't put it in a code block):\n")
	sb.WriteString(`{"title": "...", "description": "...", "location": "...", "start": "YYYY-MM-DDThh:mm:ss+hh:mm", "end": "YYYY-MM-DDThh:mm:ss+hh:mm"}`)
	sb.WriteString("\n")
	return sb.String()
}
