package repository

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/khemprogrammer/AwasarHub/internal/model"
)

type OpportunityRepo struct {
	pool *pgxpool.Pool
}

func NewOpportunityRepo(pool *pgxpool.Pool) *OpportunityRepo {
	return &OpportunityRepo{pool: pool}
}

// ListAll returns every opportunity posting, newest first.
func (r *OpportunityRepo) ListAll(ctx context.Context) ([]model.Opportunity, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT id, org, title, description, category, city, latitude, longitude,
		       tags, link_url, posted_by, created_at
		FROM opportunities
		ORDER BY created_at DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var opps []model.Opportunity
	for rows.Next() {
		var o model.Opportunity
		err := rows.Scan(
			&o.ID, &o.Org, &o.Title, &o.Description, &o.Category, &o.City,
			&o.Latitude, &o.Longitude, &o.Tags, &o.LinkURL, &o.PostedBy, &o.CreatedAt,
		)
		if err != nil {
			return nil, err
		}
		opps = append(opps, o)
	}
	return opps, rows.Err()
}

// Create inserts a new opportunity posting for the given poster.
func (r *OpportunityRepo) Create(ctx context.Context, postedBy int64, req model.OpportunityCreateRequest) (*model.Opportunity, error) {
	o := model.Opportunity{
		Org:         req.Org,
		Title:       req.Title,
		Description: req.Description,
		Category:    req.Category,
		City:        req.City,
		Latitude:    req.Latitude,
		Longitude:   req.Longitude,
		Tags:        req.Tags,
		LinkURL:     req.LinkURL,
		PostedBy:    &postedBy,
	}
	if o.Tags == nil {
		o.Tags = []string{}
	}
	err := r.pool.QueryRow(ctx, `
		INSERT INTO opportunities (org, title, description, category, city, latitude, longitude, tags, link_url, posted_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING id, created_at`,
		o.Org, o.Title, o.Description, o.Category, o.City, o.Latitude, o.Longitude,
		o.Tags, o.LinkURL, postedBy).Scan(&o.ID, &o.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &o, nil
}
