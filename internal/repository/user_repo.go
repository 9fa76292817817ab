package repository

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/khemprogrammer/AwasarHub/internal/model"
)

type UserRepo struct {
	pool *pgxpool.Pool
}

func NewUserRepo(pool *pgxpool.Pool) *UserRepo {
	return &UserRepo{pool: pool}
}

// FindByID returns a single user profile.
func (r *UserRepo) FindByID(ctx context.Context, id int64) (*model.User, error) {
	var u model.User
	err := r.pool.QueryRow(ctx, `
		SELECT id, username, city, country, headline, bio,
		       latitude, longitude, interests, streak_count, created_at
		FROM users
		WHERE id = $1`, id).Scan(
		&u.ID, &u.Username, &u.City, &u.Country, &u.Headline, &u.Bio,
		&u.Latitude, &u.Longitude, &u.Interests, &u.StreakCount, &u.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	if u.Interests == nil {
		u.Interests = []string{}
	}
	return &u, nil
}

// UpdateProfile applies a partial profile update and returns the stored row.
// Nil pointer fields are left untouched; a non-nil Interests slice replaces
// the whole interest set.
func (r *UserRepo) UpdateProfile(ctx context.Context, id int64, req model.ProfileUpdateRequest) (*model.User, error) {
	_, err := r.pool.Exec(ctx, `
		UPDATE users SET
			city      = COALESCE($2, city),
			country   = COALESCE($3, country),
			headline  = COALESCE($4, headline),
			bio       = COALESCE($5, bio),
			latitude  = COALESCE($6, latitude),
			longitude = COALESCE($7, longitude),
			interests = COALESCE($8, interests)
		WHERE id = $1`,
		id, req.City, req.Country, req.Headline, req.Bio,
		req.Latitude, req.Longitude, req.Interests)
	if err != nil {
		return nil, err
	}
	return r.FindByID(ctx, id)
}

// GetStats returns aggregate platform statistics across all stores.
func (r *UserRepo) GetStats(ctx context.Context) (*model.StatsResponse, error) {
	query := `
		SELECT
			(SELECT COUNT(*) FROM users) AS total_users,
			(SELECT COUNT(*) FROM feed_content) AS total_content,
			(SELECT COUNT(*) FROM jobs) AS total_jobs,
			(SELECT COUNT(*) FROM opportunities) AS total_opportunities,
			(SELECT COUNT(*) FROM engagement_log) AS total_engagements`

	var stats model.StatsResponse
	err := r.pool.QueryRow(ctx, query).Scan(
		&stats.TotalUsers, &stats.TotalContent, &stats.TotalJobs,
		&stats.TotalOpportunities, &stats.TotalEngagements,
	)
	if err != nil {
		return nil, err
	}

	rows, err := r.pool.Query(ctx, `
		SELECT action, COUNT(*) AS total
		FROM engagement_log
		GROUP BY action
		ORDER BY total DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	stats.ActionBreakdown = make(map[string]int)
	for rows.Next() {
		var action string
		var count int
		if err := rows.Scan(&action, &count); err != nil {
			return nil, err
		}
		stats.ActionBreakdown[action] = count
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return &stats, nil
}
