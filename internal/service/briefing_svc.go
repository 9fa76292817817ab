package service

import (
	"context"
	"time"

	"github.com/khemprogrammer/AwasarHub/internal/model"
	"github.com/khemprogrammer/AwasarHub/internal/repository"
)

// BriefingService serves the daily AI briefing for a user, creating the
// day's placeholder row on first access.
type BriefingService struct {
	repo *repository.BriefingRepo
}

func NewBriefingService(repo *repository.BriefingRepo) *BriefingService {
	return &BriefingService{repo: repo}
}

// Daily returns today's briefing for the viewer. The metadata snapshot
// records the interests the briefing was prepared against.
func (s *BriefingService) Daily(ctx context.Context, viewer *model.User) (*model.Briefing, error) {
	today := time.Now().UTC().Truncate(24 * time.Hour)
	metadata := map[string]any{"interests": viewer.Interests}
	return s.repo.GetOrCreateDaily(ctx, viewer.ID, today, metadata)
}
