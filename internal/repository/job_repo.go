package repository

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/khemprogrammer/AwasarHub/internal/model"
)

type JobRepo struct {
	pool *pgxpool.Pool
}

func NewJobRepo(pool *pgxpool.Pool) *JobRepo {
	return &JobRepo{pool: pool}
}

// ListAll returns every job posting, newest first.
func (r *JobRepo) ListAll(ctx context.Context) ([]model.Job, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT id, company, title, description, city, latitude, longitude,
		       tags, link_url, posted_by, created_at
		FROM jobs
		ORDER BY created_at DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var jobs []model.Job
	for rows.Next() {
		var j model.Job
		err := rows.Scan(
			&j.ID, &j.Company, &j.Title, &j.Description, &j.City,
			&j.Latitude, &j.Longitude, &j.Tags, &j.LinkURL, &j.PostedBy, &j.CreatedAt,
		)
		if err != nil {
			return nil, err
		}
		jobs = append(jobs, j)
	}
	return jobs, rows.Err()
}

// Create inserts a new job posting for the given poster.
func (r *JobRepo) Create(ctx context.Context, postedBy int64, req model.JobCreateRequest) (*model.Job, error) {
	j := model.Job{
		Company:     req.Company,
		Title:       req.Title,
		Description: req.Description,
		City:        req.City,
		Latitude:    req.Latitude,
		Longitude:   req.Longitude,
		Tags:        req.Tags,
		LinkURL:     req.LinkURL,
		PostedBy:    &postedBy,
	}
	if j.Tags == nil {
		j.Tags = []string{}
	}
	err := r.pool.QueryRow(ctx, `
		INSERT INTO jobs (company, title, description, city, latitude, longitude, tags, link_url, posted_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING id, created_at`,
		j.Company, j.Title, j.Description, j.City, j.Latitude, j.Longitude,
		j.Tags, j.LinkURL, postedBy).Scan(&j.ID, &j.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &j, nil
}
