// Package dto defines the HTTP request and response bodies of the mood feature.
package dto

import "time"

// SaveMoodReq is the body of POST /api/mood.
type SaveMoodReq struct {
	Email    string   `json:"email" binding:"required"`
	Mood     string   `json:"mood" binding:"required"`
	Triggers []string `json:"triggers"`
}

// MoodRes is one entry as returned to clients. The owner is not echoed.
type MoodRes struct {
	Mood      string    `json:"mood"`
	Triggers  []string  `json:"triggers"`
	CreatedAt time.Time `json:"created_at"`
}

// SaveMoodRes is returned by a successful save.
type SaveMoodRes struct {
	Message string  `json:"message"`
	Mood    MoodRes `json:"mood"`
}

// HistoryRes is the body of GET /api/mood/history.
type HistoryRes struct {
	MoodHistory   []MoodRes      `json:"moodHistory"`
	TriggerCounts map[string]int `json:"triggerCounts"`
}
