package handler

import (
	"errors"
	"strconv"

	"github.com/gofiber/fiber/v3"
	"github.com/jackc/pgx/v5"

	"github.com/khemprogrammer/AwasarHub/internal/middleware"
	"github.com/khemprogrammer/AwasarHub/internal/model"
	"github.com/khemprogrammer/AwasarHub/internal/repository"
	"github.com/khemprogrammer/AwasarHub/internal/service"
)

type FeedHandler struct {
	feed       *service.FeedService
	engagement *service.EngagementService
	users      *service.UserService
	content    *repository.ContentRepo
}

func NewFeedHandler(
	feed *service.FeedService,
	engagement *service.EngagementService,
	users *service.UserService,
	content *repository.ContentRepo,
) *FeedHandler {
	return &FeedHandler{feed: feed, engagement: engagement, users: users, content: content}
}

// viewerID extracts the numeric user ID from the X-User-ID header.
func viewerID(c fiber.Ctx) (int64, string) {
	return middleware.ValidateUserID(c.Get("X-User-ID"))
}

// List handles GET /api/feed
func (h *FeedHandler) List(c fiber.Ctx) error {
	items, err := h.content.ListAll(c.Context())
	if err != nil {
		return middleware.ErrorResponse(c, fiber.StatusInternalServerError, "INTERNAL_ERROR", "Failed to list feed content")
	}
	if items == nil {
		items = []model.FeedContent{}
	}
	return c.JSON(items)
}

// GetByID handles GET /api/feed/:id
func (h *FeedHandler) GetByID(c fiber.Ctx) error {
	id, err := strconv.ParseInt(c.Params("id"), 10, 64)
	if err != nil || id <= 0 {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, "INVALID_FIELD", "id must be a positive integer")
	}

	item, err := h.content.FindByID(c.Context(), id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return middleware.ErrorResponse(c, fiber.StatusNotFound, "NOT_FOUND", "Content not found")
		}
		return middleware.ErrorResponse(c, fiber.StatusInternalServerError, "INTERNAL_ERROR", "Failed to load feed content")
	}
	return c.JSON(item)
}

// Create handles POST /api/feed
func (h *FeedHandler) Create(c fiber.Ctx) error {
	var req model.ContentCreateRequest
	if err := c.Bind().JSON(&req); err != nil {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, "INVALID_BODY", "Invalid request body")
	}

	if !model.FeedContentTypes[req.ContentType] {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, "INVALID_FIELD",
			"content_type must be one of: NEWS, JOB, OPPORTUNITY, VIDEO")
	}
	title, errMsg := middleware.ValidateTitle(req.Title)
	if errMsg != "" {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, "INVALID_FIELD", errMsg)
	}
	req.Title = title
	if errMsg := middleware.ValidateCoordinates(req.Latitude, req.Longitude); errMsg != "" {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, "INVALID_FIELD", errMsg)
	}

	item, err := h.content.Create(c.Context(), req)
	if err != nil {
		return middleware.ErrorResponse(c, fiber.StatusInternalServerError, "INTERNAL_ERROR", "Failed to create feed content")
	}
	return c.Status(fiber.StatusCreated).JSON(item)
}

// Personalized handles GET /api/feed/personalized
func (h *FeedHandler) Personalized(c fiber.Ctx) error {
	userID, errMsg := viewerID(c)
	if errMsg != "" {
		return middleware.ErrorResponse(c, fiber.StatusUnauthorized, "UNAUTHENTICATED", "X-User-ID header is required")
	}

	viewer, err := h.users.Lookup(c.Context(), userID)
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			return middleware.ErrorResponse(c, fiber.StatusNotFound, "NOT_FOUND", "User not found")
		}
		return middleware.ErrorResponse(c, fiber.StatusInternalServerError, "INTERNAL_ERROR", "Failed to load viewer profile")
	}

	resp, err := h.feed.Personalized(c.Context(), viewer)
	if err != nil {
		return middleware.ErrorResponse(c, fiber.StatusInternalServerError, "INTERNAL_ERROR", "Failed to compose feed")
	}

	Metrics.FeedRequests.WithLabelValues("personalized").Inc()
	return c.JSON(resp)
}

// Global handles GET /api/feed/global_feed
func (h *FeedHandler) Global(c fiber.Ctx) error {
	// Anonymous viewers get liked_by_user = false throughout.
	userID, _ := viewerID(c)

	resp, err := h.feed.Global(c.Context(), userID)
	if err != nil {
		return middleware.ErrorResponse(c, fiber.StatusInternalServerError, "INTERNAL_ERROR", "Failed to compose global feed")
	}

	Metrics.FeedRequests.WithLabelValues("global").Inc()
	return c.JSON(resp)
}

// Log handles POST /api/feed/log
func (h *FeedHandler) Log(c fiber.Ctx) error {
	userID, errMsg := viewerID(c)
	if errMsg != "" {
		return middleware.ErrorResponse(c, fiber.StatusUnauthorized, "UNAUTHENTICATED", "X-User-ID header is required")
	}

	var req model.LogRequest
	if err := c.Bind().JSON(&req); err != nil {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, "INVALID_BODY", "Invalid request body")
	}

	if req.Action != "" {
		action, errMsg := middleware.ValidateAction(req.Action)
		if errMsg != "" {
			return middleware.ErrorResponse(c, fiber.StatusBadRequest, "INVALID_FIELD", errMsg)
		}
		req.Action = action
	}
	if req.ContentType != "" {
		tag, errMsg := middleware.ValidateContentType(req.ContentType)
		if errMsg != "" {
			return middleware.ErrorResponse(c, fiber.StatusBadRequest, "INVALID_FIELD", errMsg)
		}
		req.ContentType = tag
	}

	if err := h.engagement.Log(c.Context(), userID, req); err != nil {
		switch {
		case errors.Is(err, model.ErrMissingFields):
			return middleware.ErrorResponse(c, fiber.StatusBadRequest, "MISSING_FIELDS", "content_id and action required")
		case errors.Is(err, model.ErrInvalidAction):
			return middleware.ErrorResponse(c, fiber.StatusBadRequest, "INVALID_ACTION", err.Error())
		}
		return middleware.ErrorResponse(c, fiber.StatusInternalServerError, "INTERNAL_ERROR", "Failed to log engagement")
	}

	Metrics.EngagementActions.WithLabelValues(req.Action).Inc()
	return c.JSON(fiber.Map{"status": "ok"})
}
