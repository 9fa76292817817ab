package model

import "time"

// User represents an AwasarHub member profile used for feed personalization.
type User struct {
	ID          int64     `json:"id"`
	Username    string    `json:"username"`
	City        string    `json:"city,omitempty"`
	Country     string    `json:"country,omitempty"`
	Headline    string    `json:"headline,omitempty"`
	Bio         string    `json:"bio,omitempty"`
	Latitude    *float64  `json:"latitude,omitempty"`
	Longitude   *float64  `json:"longitude,omitempty"`
	Interests   []string  `json:"interests"`
	StreakCount int       `json:"streakCount"`
	CreatedAt   time.Time `json:"-"`
}

// Location is a plain (lat, lon) coordinate pair in degrees.
type Location struct {
	Lat float64
	Lon float64
}

// Location returns the user's coordinate pair, or nil if either component
// was never set.
func (u *User) Location() *Location {
	if u.Latitude == nil || u.Longitude == nil {
		return nil
	}
	return &Location{Lat: *u.Latitude, Lon: *u.Longitude}
}

// ProfileUpdateRequest is the API request body for updating the caller's profile.
type ProfileUpdateRequest struct {
	City      *string  `json:"city"`
	Country   *string  `json:"country"`
	Headline  *string  `json:"headline"`
	Bio       *string  `json:"bio"`
	Latitude  *float64 `json:"latitude"`
	Longitude *float64 `json:"longitude"`
	Interests []string `json:"interests"`
}

// StatsResponse is the API response for global platform statistics.
type StatsResponse struct {
	TotalUsers         int            `json:"totalUsers"`
	TotalContent       int            `json:"totalContent"`
	TotalJobs          int            `json:"totalJobs"`
	TotalOpportunities int            `json:"totalOpportunities"`
	TotalEngagements   int            `json:"totalEngagements"`
	ActionBreakdown    map[string]int `json:"actionBreakdown"`
}
