package service

import (
	"context"
	"fmt"
	"log"
	"strings"

	"github.com/khemprogrammer/AwasarHub/internal/model"
	"github.com/khemprogrammer/AwasarHub/internal/repository"
)

// EngagementService aggregates social counters across content types and
// handles the like/repost/share action endpoint.
type EngagementService struct {
	repo  *repository.EngagementRepo
	cache *CacheService
}

func NewEngagementService(repo *repository.EngagementRepo, cache *CacheService) *EngagementService {
	return &EngagementService{repo: repo, cache: cache}
}

// Toggle processes an engagement action request. "like" alternates between
// creating and deleting the active like record; "repost" and "share" always
// append a new record.
func (s *EngagementService) Toggle(ctx context.Context, userID int64, req model.ActionRequest) (*model.ActionResponse, error) {
	if req.ContentType == "" || req.ContentID == 0 || req.Action == "" {
		return nil, fmt.Errorf("%w: content_type, content_id and action are required", model.ErrMissingFields)
	}
	if !model.ToggleableActions[req.Action] {
		return nil, fmt.Errorf("%w: %s", model.ErrInvalidAction, req.Action)
	}

	ref := model.ContentRef{Type: req.ContentType, ID: req.ContentID}

	var status string
	if req.Action == model.ActionLike {
		liked, err := s.repo.ToggleLike(ctx, userID, ref)
		if err != nil {
			return nil, err
		}
		status = model.StatusUnliked
		if liked {
			status = model.StatusLiked
		}
	} else {
		if err := s.repo.Append(ctx, userID, ref, req.Action); err != nil {
			return nil, err
		}
		status = model.StatusLogged
	}

	s.invalidate(ctx, ref)
	return &model.ActionResponse{Status: status}, nil
}

// Log appends one raw engagement record from the feed log endpoint. Any
// recognized action is accepted here, including view/click/apply/skip.
func (s *EngagementService) Log(ctx context.Context, userID int64, req model.LogRequest) error {
	if req.ContentID == 0 || req.Action == "" {
		return fmt.Errorf("%w: content_id and action are required", model.ErrMissingFields)
	}
	if !model.ValidActions[req.Action] {
		return fmt.Errorf("%w: %s", model.ErrInvalidAction, req.Action)
	}

	ref := model.ContentRef{Type: req.ContentType, ID: req.ContentID}
	if err := s.repo.Append(ctx, userID, ref, req.Action); err != nil {
		return err
	}
	s.invalidate(ctx, ref)
	return nil
}

// StatsFor computes per-ref engagement stats for the given viewer. Counters
// come from the cache where warm, otherwise from one batched log scan; the
// viewer's like state is always read fresh. A viewerID of 0 means anonymous
// and yields liked_by_user = false throughout. Refs with no records at all
// resolve to zero counts.
func (s *EngagementService) StatsFor(ctx context.Context, refs []model.ContentRef, viewerID int64) (map[model.ContentRef]model.EngagementStats, error) {
	stats := make(map[model.ContentRef]model.EngagementStats, len(refs))
	if len(refs) == 0 {
		return stats, nil
	}

	cold := make([]model.ContentRef, 0, len(refs))
	for _, ref := range refs {
		cached, err := s.cache.GetCounts(ctx, ref)
		if err != nil {
			log.Printf("cache: counts get error: %v", err)
		}
		if cached != nil {
			stats[ref] = model.EngagementStats{EngagementCounts: *cached}
			continue
		}
		cold = append(cold, ref)
	}

	if len(cold) > 0 {
		counts, err := s.repo.CountsFor(ctx, cold)
		if err != nil {
			return nil, fmt.Errorf("%w: engagement counts: %v", model.ErrLookupFailure, err)
		}
		for _, ref := range cold {
			c := counts[ref] // zero value for orphaned/unengaged refs
			stats[ref] = model.EngagementStats{EngagementCounts: c}
			if err := s.cache.SetCounts(ctx, ref, c); err != nil {
				log.Printf("cache: counts set error: %v", err)
			}
		}
	}

	liked, err := s.repo.LikedBy(ctx, viewerID, refs)
	if err != nil {
		return nil, fmt.Errorf("%w: like state: %v", model.ErrLookupFailure, err)
	}
	for ref := range liked {
		st := stats[ref]
		st.LikedByUser = true
		stats[ref] = st
	}

	return stats, nil
}

// ListComments returns the comments for one content ref, newest first.
// An incomplete ref is not an error: it resolves to an empty list.
func (s *EngagementService) ListComments(ctx context.Context, ref model.ContentRef) ([]model.Comment, error) {
	if ref.Type == "" || ref.ID == 0 {
		return []model.Comment{}, nil
	}
	return s.repo.ListComments(ctx, ref)
}

// CreateComment stores a new comment by the given user.
func (s *EngagementService) CreateComment(ctx context.Context, userID int64, req model.CommentCreateRequest) (*model.Comment, error) {
	text := strings.TrimSpace(req.Text)
	if req.ContentType == "" || req.ContentID == 0 || text == "" {
		return nil, fmt.Errorf("%w: content_type, content_id and text are required", model.ErrMissingFields)
	}

	ref := model.ContentRef{Type: req.ContentType, ID: req.ContentID}
	comment, err := s.repo.CreateComment(ctx, userID, ref, text)
	if err != nil {
		return nil, err
	}

	s.invalidate(ctx, ref)
	return comment, nil
}

func (s *EngagementService) invalidate(ctx context.Context, ref model.ContentRef) {
	if err := s.cache.InvalidateCounts(ctx, ref); err != nil {
		log.Printf("cache: invalidate counts error: %v", err)
	}
}
