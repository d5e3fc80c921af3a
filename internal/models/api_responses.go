package models

import (
	"time"

	"neurosync/internal/chat"
	"neurosync/internal/triage"
)

// ClassifyResponse is the result of classifying one message.
type ClassifyResponse struct {
	Tier         triage.Tier `json:"tier"`
	ResponseText string      `json:"responseText"`
	Suggestions  []string    `json:"suggestions"`
	Urgent       bool        `json:"urgent"`
}

// NewClassifyResponse flattens a triage result for the API.
func NewClassifyResponse(r triage.Result) ClassifyResponse {
	return ClassifyResponse{
		Tier:         r.Tier,
		ResponseText: r.Response.Message,
		Suggestions:  r.Response.Suggestions,
		Urgent:       r.Urgent(),
	}
}

// ChatResponse carries the updated conversation back to the client that owns it.
type ChatResponse struct {
	Conversation  *chat.Conversation `json:"conversation"`
	Reply         chat.Message       `json:"reply"`
	TypingDelayMS int64              `json:"typing_delay_ms"`
}

// LikeResponse contains a post's like count after liking it.
type LikeResponse struct {
	PostID string `json:"post_id"`
	Likes  int    `json:"likes"`
}

// HealthResponse reports service liveness.
type HealthResponse struct {
	Status    string    `json:"status"`
	StartedAt time.Time `json:"started_at"`
	Uptime    string    `json:"uptime"`
}
