package model

import "time"

// Advertisement represents a sponsored item that can be interleaved into the
// personalized feed.
type Advertisement struct {
	ID         int64     `json:"id"`
	Title      string    `json:"title"`
	Body       string    `json:"body"`
	Category   string    `json:"category"`
	City       string    `json:"city"`
	Latitude   *float64  `json:"latitude"`
	Longitude  *float64  `json:"longitude"`
	Tags       []string  `json:"tags"`
	LinkURL    string    `json:"link_url"`
	BidCPM     float64   `json:"bid_cpm"`
	BidCPC     float64   `json:"bid_cpc"`
	Enabled    bool      `json:"enabled"`
	Advertiser *int64    `json:"advertiser"`
	CreatedAt  time.Time `json:"created_at"`
}

// Card projects an advertisement into the common feed card shape.
// Ad cards carry no rank score and no content ID.
func (a *Advertisement) Card() FeedCard {
	return FeedCard{
		ContentType: ContentTypeAd,
		Title:       a.Title,
		Body:        a.Body,
		SourceURL:   a.LinkURL,
		City:        a.City,
		Latitude:    a.Latitude,
		Longitude:   a.Longitude,
		CreatedAt:   a.CreatedAt.Format(time.RFC3339),
	}
}
