package model

import "time"

// Job represents a job posting.
type Job struct {
	ID          int64     `json:"id"`
	Company     string    `json:"company"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	City        string    `json:"city"`
	Latitude    *float64  `json:"latitude"`
	Longitude   *float64  `json:"longitude"`
	Tags        []string  `json:"tags"`
	LinkURL     string    `json:"link_url"`
	PostedBy    *int64    `json:"posted_by"`
	CreatedAt   time.Time `json:"created_at"`
}

// JobCreateRequest is the API request body for posting a job.
type JobCreateRequest struct {
	Company     string   `json:"company"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	City        string   `json:"city"`
	Latitude    *float64 `json:"latitude"`
	Longitude   *float64 `json:"longitude"`
	Tags        []string `json:"tags"`
	LinkURL     string   `json:"link_url"`
}
