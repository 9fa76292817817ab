package model

import "time"

// Briefing represents one generated daily briefing for a user.
// At most one row exists per (user, date).
type Briefing struct {
	ID         int64          `json:"id"`
	UserID     int64          `json:"user"`
	Date       time.Time      `json:"date"`
	ScriptText string         `json:"script_text"`
	VideoURL   string         `json:"video_url"`
	Metadata   map[string]any `json:"metadata"`
	CreatedAt  time.Time      `json:"created_at"`
}
