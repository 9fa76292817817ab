package model

import "time"

// Content type tags for feed content rows.
const (
	ContentTypeNews        = "NEWS"
	ContentTypeJob         = "JOB"
	ContentTypeOpportunity = "OPPORTUNITY"
	ContentTypeVideo       = "VIDEO"
	ContentTypeAd          = "AD"
)

// FeedContentTypes are the kinds storable as feed content rows. "AD" is a
// rendering tag only; advertisements live in their own store.
var FeedContentTypes = map[string]bool{
	ContentTypeNews:        true,
	ContentTypeJob:         true,
	ContentTypeOpportunity: true,
	ContentTypeVideo:       true,
}

// FeedContent represents a news or video item in the content store.
type FeedContent struct {
	ID          int64     `json:"id"`
	ContentType string    `json:"content_type"`
	Title       string    `json:"title"`
	Body        string    `json:"body"`
	SourceURL   string    `json:"source_url"`
	Tags        []string  `json:"tags"`
	City        string    `json:"city"`
	Latitude    *float64  `json:"latitude"`
	Longitude   *float64  `json:"longitude"`
	VideoURL    string    `json:"video_url"`
	CreatedAt   time.Time `json:"created_at"`
}

// Location returns the item's coordinate pair, or nil if either component
// is absent.
func (c *FeedContent) Location() *Location {
	if c.Latitude == nil || c.Longitude == nil {
		return nil
	}
	return &Location{Lat: *c.Latitude, Lon: *c.Longitude}
}

// FeedCard is the common display projection for a feed entry. Both ranked
// content items and interleaved ad cards serialize to this shape; ad cards
// carry ContentType "AD" and no ID.
type FeedCard struct {
	ID          int64    `json:"id,omitempty"`
	ContentType string   `json:"content_type"`
	Title       string   `json:"title"`
	Body        string   `json:"body"`
	SourceURL   string   `json:"source_url"`
	Tags        []string `json:"tags,omitempty"`
	City        string   `json:"city"`
	Latitude    *float64 `json:"latitude"`
	Longitude   *float64 `json:"longitude"`
	VideoURL    string   `json:"video_url,omitempty"`
	CreatedAt   string   `json:"created_at"`
}

// Card projects a content row into the common display shape.
func (c *FeedContent) Card() FeedCard {
	return FeedCard{
		ID:          c.ID,
		ContentType: c.ContentType,
		Title:       c.Title,
		Body:        c.Body,
		SourceURL:   c.SourceURL,
		Tags:        c.Tags,
		City:        c.City,
		Latitude:    c.Latitude,
		Longitude:   c.Longitude,
		VideoURL:    c.VideoURL,
		CreatedAt:   c.CreatedAt.Format(time.RFC3339),
	}
}

// RankedCard is a transient (score, item) pair produced during feed
// composition. Never persisted.
type RankedCard struct {
	Rank float64
	Item FeedContent
}

// FeedResponse is the API response for the personalized feed.
type FeedResponse struct {
	Items []FeedCard `json:"items"`
}

// ContentCreateRequest is the API request body for creating a feed content row.
type ContentCreateRequest struct {
	ContentType string   `json:"content_type"`
	Title       string   `json:"title"`
	Body        string   `json:"body"`
	SourceURL   string   `json:"source_url"`
	Tags        []string `json:"tags"`
	City        string   `json:"city"`
	Latitude    *float64 `json:"latitude"`
	Longitude   *float64 `json:"longitude"`
	VideoURL    string   `json:"video_url"`
}
