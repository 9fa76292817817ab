package model

import "time"

// Opportunity represents a scholarship, grant or internship posting.
type Opportunity struct {
	ID          int64     `json:"id"`
	Org         string    `json:"org"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Category    string    `json:"category"`
	City        string    `json:"city"`
	Latitude    *float64  `json:"latitude"`
	Longitude   *float64  `json:"longitude"`
	Tags        []string  `json:"tags"`
	LinkURL     string    `json:"link_url"`
	PostedBy    *int64    `json:"posted_by"`
	CreatedAt   time.Time `json:"created_at"`
}

// OpportunityCreateRequest is the API request body for posting an opportunity.
type OpportunityCreateRequest struct {
	Org         string   `json:"org"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Category    string   `json:"category"`
	City        string   `json:"city"`
	Latitude    *float64 `json:"latitude"`
	Longitude   *float64 `json:"longitude"`
	Tags        []string `json:"tags"`
	LinkURL     string   `json:"link_url"`
}
