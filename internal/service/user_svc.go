package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/khemprogrammer/AwasarHub/internal/model"
	"github.com/khemprogrammer/AwasarHub/internal/repository"
)

type UserService struct {
	repo *repository.UserRepo
}

func NewUserService(repo *repository.UserRepo) *UserService {
	return &UserService{repo: repo}
}

// Lookup returns the profile for a given user ID.
func (s *UserService) Lookup(ctx context.Context, userID int64) (*model.User, error) {
	u, err := s.repo.FindByID(ctx, userID)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, fmt.Errorf("%w: user %d", model.ErrNotFound, userID)
	}
	if err != nil {
		return nil, err
	}
	return u, nil
}

// UpdateProfile applies a partial update to the caller's own profile.
// Interests are the viewer's interest tags; comparison downstream is
// case-insensitive so they are stored as provided.
func (s *UserService) UpdateProfile(ctx context.Context, userID int64, req model.ProfileUpdateRequest) (*model.User, error) {
	u, err := s.repo.UpdateProfile(ctx, userID, req)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, fmt.Errorf("%w: user %d", model.ErrNotFound, userID)
	}
	if err != nil {
		return nil, err
	}
	return u, nil
}

// GetStats returns aggregate platform statistics.
func (s *UserService) GetStats(ctx context.Context) (*model.StatsResponse, error) {
	return s.repo.GetStats(ctx)
}
