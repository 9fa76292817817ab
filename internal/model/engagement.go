package model

import "time"

// Engagement actions recorded in the log.
const (
	ActionView   = "view"
	ActionClick  = "click"
	ActionApply  = "apply"
	ActionSkip   = "skip"
	ActionLike   = "like"
	ActionRepost = "repost"
	ActionShare  = "share"
)

// ValidActions are all recognized engagement log actions.
var ValidActions = map[string]bool{
	ActionView:   true,
	ActionClick:  true,
	ActionApply:  true,
	ActionSkip:   true,
	ActionLike:   true,
	ActionRepost: true,
	ActionShare:  true,
}

// ToggleableActions are the actions accepted by the engagement action
// endpoint. "like" toggles; "repost" and "share" always append.
var ToggleableActions = map[string]bool{
	ActionLike:   true,
	ActionRepost: true,
	ActionShare:  true,
}

// Toggle statuses reported by the engagement action endpoint.
const (
	StatusLiked   = "liked"
	StatusUnliked = "unliked"
	StatusLogged  = "logged"
)

// Type tags used for engagement refs on postings. These are free-form
// strings, not foreign keys; the feed tags its cards with the same values.
const (
	RefTypeJob         = "job"
	RefTypeOpportunity = "opportunity"
)

// ContentRef is the weak reference joining engagement records to content.
// It is a plain (type tag, numeric id) pair with no foreign-key semantics:
// content may be deleted while log rows referencing it remain.
type ContentRef struct {
	Type string `json:"content_type"`
	ID   int64  `json:"content_id"`
}

// EngagementLog is one immutable record of a user action on a content item.
type EngagementLog struct {
	ID        int64     `json:"id"`
	UserID    int64     `json:"user"`
	Ref       ContentRef
	Action    string    `json:"action"`
	CreatedAt time.Time `json:"created_at"`
}

// Comment is one immutable comment on a content item.
type Comment struct {
	ID          int64     `json:"id"`
	UserID      int64     `json:"user"`
	Username    string    `json:"username,omitempty"`
	ContentType string    `json:"content_type"`
	ContentID   int64     `json:"content_id"`
	Text        string    `json:"text"`
	CreatedAt   time.Time `json:"created_at"`
}

// EngagementCounts holds the viewer-independent counters for one content ref.
type EngagementCounts struct {
	Likes    int `json:"likes"`
	Comments int `json:"comments"`
	Reposts  int `json:"reposts"`
	Shares   int `json:"shares"`
}

// EngagementStats is EngagementCounts plus the requesting viewer's like state.
type EngagementStats struct {
	EngagementCounts
	LikedByUser bool `json:"liked_by_user"`
}

// ActionRequest is the API request body for the engagement action endpoint.
type ActionRequest struct {
	ContentType string `json:"content_type"`
	ContentID   int64  `json:"content_id"`
	Action      string `json:"action"`
}

// ActionResponse reports the resulting toggle state.
type ActionResponse struct {
	Status string `json:"status"`
}

// CommentCreateRequest is the API request body for posting a comment.
type CommentCreateRequest struct {
	ContentType string `json:"content_type"`
	ContentID   int64  `json:"content_id"`
	Text        string `json:"text"`
}

// LogRequest is the API request body for the raw feed engagement log endpoint.
type LogRequest struct {
	ContentType string `json:"content_type"`
	ContentID   int64  `json:"content_id"`
	Action      string `json:"action"`
}

// PostCard is the serialized projection of a job or opportunity in the
// global feed, annotated with engagement counters.
type PostCard struct {
	ID          int64     `json:"id"`
	Type        string    `json:"type"`
	Title       string    `json:"title"`
	Company     string    `json:"company,omitempty"`
	Org         string    `json:"org,omitempty"`
	Description string    `json:"description"`
	Category    string    `json:"category,omitempty"`
	City        string    `json:"city"`
	Latitude    *float64  `json:"latitude"`
	Longitude   *float64  `json:"longitude"`
	Tags        []string  `json:"tags"`
	LinkURL     string    `json:"link_url"`
	PostedBy    *int64    `json:"posted_by"`
	CreatedAt   time.Time `json:"created_at"`
	EngagementStats
}

// PostFeedResponse is the API response for the global feed.
type PostFeedResponse struct {
	Items []PostCard `json:"items"`
}
