package middleware

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v3"
)

// Field length limits matching database schema constraints.
const (
	MaxContentTypeLen = 32   // engagement_log.content_type VARCHAR(32)
	MaxActionLen      = 16   // engagement_log.action VARCHAR(16)
	MaxTitleLen       = 255  // feed_content.title VARCHAR(255)
	MaxCityLen        = 120  // feed_content.city VARCHAR(120)
	MaxCommentLen     = 2000 // comments.text, enforced at the edge
)

var (
	// contentTypeRe matches content type tags: letters, digits, underscore.
	// The tag is an opaque join key, not an enum; only its shape is checked.
	contentTypeRe = regexp.MustCompile(`^[A-Za-z][A-Za-z0-9_]*$`)
	// actionRe matches engagement action names.
	actionRe = regexp.MustCompile(`^[a-z_]+$`)
)

// ErrorResponse is a helper that returns a standard API error response.
func ErrorResponse(c fiber.Ctx, status int, code, message string) error {
	return c.Status(status).JSON(fiber.Map{
		"error": fiber.Map{
			"code":    code,
			"message": message,
		},
	})
}

// ValidateUserID parses the numeric user ID carried in the X-User-ID header.
func ValidateUserID(raw string) (int64, string) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return 0, "user id is required"
	}
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, "user id must be a positive integer"
	}
	return id, ""
}

// ValidateContentType checks that a content type tag is well-formed.
func ValidateContentType(tag string) (string, string) {
	tag = strings.TrimSpace(tag)
	if tag == "" {
		return "", "content_type is required"
	}
	if len(tag) > MaxContentTypeLen {
		return "", "content_type must be at most 32 characters"
	}
	if !contentTypeRe.MatchString(tag) {
		return "", "content_type contains invalid characters"
	}
	return tag, ""
}

// ValidateContentID checks that a content ID is a positive integer.
func ValidateContentID(id int64) string {
	if id <= 0 {
		return "content_id must be a positive integer"
	}
	return ""
}

// ValidateAction checks that an action name is well-formed. Whether the
// action is in the recognized set is decided by the service layer.
func ValidateAction(action string) (string, string) {
	action = strings.TrimSpace(strings.ToLower(action))
	if action == "" {
		return "", "action is required"
	}
	if len(action) > MaxActionLen {
		return "", "action must be at most 16 characters"
	}
	if !actionRe.MatchString(action) {
		return "", "action contains invalid characters"
	}
	return action, ""
}

// ValidateCommentText trims a comment body and enforces the length limit.
func ValidateCommentText(text string) (string, string) {
	text = strings.TrimSpace(text)
	if text == "" {
		return "", "text is required"
	}
	if len(text) > MaxCommentLen {
		return "", "text must be at most 2000 characters"
	}
	return text, ""
}

// ValidateCoordinates checks an optional coordinate pair. Both halves must be
// present together and within range.
func ValidateCoordinates(lat, lon *float64) string {
	if lat == nil && lon == nil {
		return ""
	}
	if lat == nil || lon == nil {
		return "latitude and longitude must be provided together"
	}
	if *lat < -90 || *lat > 90 {
		return "latitude must be between -90 and 90"
	}
	if *lon < -180 || *lon > 180 {
		return "longitude must be between -180 and 180"
	}
	return ""
}

// ValidateTitle trims a title and enforces the length limit.
func ValidateTitle(title string) (string, string) {
	title = strings.TrimSpace(title)
	if title == "" {
		return "", "title is required"
	}
	if len(title) > MaxTitleLen {
		return "", "title must be at most 255 characters"
	}
	return title, ""
}
