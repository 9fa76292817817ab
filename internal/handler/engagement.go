package handler

import (
	"errors"
	"strconv"

	"github.com/gofiber/fiber/v3"

	"github.com/khemprogrammer/AwasarHub/internal/middleware"
	"github.com/khemprogrammer/AwasarHub/internal/model"
	"github.com/khemprogrammer/AwasarHub/internal/service"
)

type EngagementHandler struct {
	svc *service.EngagementService
}

func NewEngagementHandler(svc *service.EngagementService) *EngagementHandler {
	return &EngagementHandler{svc: svc}
}

// Action handles POST /api/engagement/action
func (h *EngagementHandler) Action(c fiber.Ctx) error {
	userID, errMsg := viewerID(c)
	if errMsg != "" {
		return middleware.ErrorResponse(c, fiber.StatusUnauthorized, "UNAUTHENTICATED", "X-User-ID header is required")
	}

	var req model.ActionRequest
	if err := c.Bind().JSON(&req); err != nil {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, "INVALID_BODY", "Invalid request body")
	}

	if req.ContentType != "" {
		tag, errMsg := middleware.ValidateContentType(req.ContentType)
		if errMsg != "" {
			return middleware.ErrorResponse(c, fiber.StatusBadRequest, "INVALID_FIELD", errMsg)
		}
		req.ContentType = tag
	}
	if req.Action != "" {
		action, errMsg := middleware.ValidateAction(req.Action)
		if errMsg != "" {
			return middleware.ErrorResponse(c, fiber.StatusBadRequest, "INVALID_FIELD", errMsg)
		}
		req.Action = action
	}

	resp, err := h.svc.Toggle(c.Context(), userID, req)
	if err != nil {
		switch {
		case errors.Is(err, model.ErrMissingFields):
			return middleware.ErrorResponse(c, fiber.StatusBadRequest, "MISSING_FIELDS", "content_type, content_id and action are required")
		case errors.Is(err, model.ErrInvalidAction):
			return middleware.ErrorResponse(c, fiber.StatusBadRequest, "INVALID_ACTION",
				"Invalid action. Must be one of: like, repost, share")
		}
		return middleware.ErrorResponse(c, fiber.StatusInternalServerError, "INTERNAL_ERROR", "Failed to process engagement action")
	}

	Metrics.EngagementActions.WithLabelValues(req.Action).Inc()
	return c.JSON(resp)
}

// ListComments handles GET /api/engagement/comments?content_type=X&content_id=N
func (h *EngagementHandler) ListComments(c fiber.Ctx) error {
	ref := commentRef(c)

	comments, err := h.svc.ListComments(c.Context(), ref)
	if err != nil {
		return middleware.ErrorResponse(c, fiber.StatusInternalServerError, "INTERNAL_ERROR", "Failed to list comments")
	}
	return c.JSON(comments)
}

// CreateComment handles POST /api/engagement/comments
func (h *EngagementHandler) CreateComment(c fiber.Ctx) error {
	userID, errMsg := viewerID(c)
	if errMsg != "" {
		return middleware.ErrorResponse(c, fiber.StatusUnauthorized, "UNAUTHENTICATED", "X-User-ID header is required")
	}

	var req model.CommentCreateRequest
	if err := c.Bind().JSON(&req); err != nil {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, "INVALID_BODY", "Invalid request body")
	}

	if req.ContentType != "" {
		tag, errMsg := middleware.ValidateContentType(req.ContentType)
		if errMsg != "" {
			return middleware.ErrorResponse(c, fiber.StatusBadRequest, "INVALID_FIELD", errMsg)
		}
		req.ContentType = tag
	}
	if req.Text != "" {
		text, errMsg := middleware.ValidateCommentText(req.Text)
		if errMsg != "" {
			return middleware.ErrorResponse(c, fiber.StatusBadRequest, "INVALID_FIELD", errMsg)
		}
		req.Text = text
	}

	comment, err := h.svc.CreateComment(c.Context(), userID, req)
	if err != nil {
		if errors.Is(err, model.ErrMissingFields) {
			return middleware.ErrorResponse(c, fiber.StatusBadRequest, "MISSING_FIELDS", "content_type, content_id and text are required")
		}
		return middleware.ErrorResponse(c, fiber.StatusInternalServerError, "INTERNAL_ERROR", "Failed to create comment")
	}

	return c.Status(fiber.StatusCreated).JSON(comment)
}

// commentRef builds the (possibly incomplete) content ref from query params.
// An incomplete ref yields an empty comment list, not an error.
func commentRef(c fiber.Ctx) model.ContentRef {
	ref := model.ContentRef{}
	if tag, errMsg := middleware.ValidateContentType(fiber.Query[string](c, "content_type")); errMsg == "" {
		ref.Type = tag
	}
	if id, err := strconv.ParseInt(fiber.Query[string](c, "content_id"), 10, 64); err == nil && id > 0 {
		ref.ID = id
	}
	return ref
}
