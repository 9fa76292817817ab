package repository

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/khemprogrammer/AwasarHub/internal/model"
)

type ContentRepo struct {
	pool *pgxpool.Pool
}

func NewContentRepo(pool *pgxpool.Pool) *ContentRepo {
	return &ContentRepo{pool: pool}
}

// ListAll returns every feed content row, newest first. This enumeration
// order is also the tie-break for equal rank scores downstream.
func (r *ContentRepo) ListAll(ctx context.Context) ([]model.FeedContent, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT id, content_type, title, body, source_url, tags, city,
		       latitude, longitude, video_url, created_at
		FROM feed_content
		ORDER BY created_at DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []model.FeedContent
	for rows.Next() {
		var c model.FeedContent
		err := rows.Scan(
			&c.ID, &c.ContentType, &c.Title, &c.Body, &c.SourceURL, &c.Tags,
			&c.City, &c.Latitude, &c.Longitude, &c.VideoURL, &c.CreatedAt,
		)
		if err != nil {
			return nil, err
		}
		items = append(items, c)
	}
	return items, rows.Err()
}

// FindByID returns a single content row.
func (r *ContentRepo) FindByID(ctx context.Context, id int64) (*model.FeedContent, error) {
	var c model.FeedContent
	err := r.pool.QueryRow(ctx, `
		SELECT id, content_type, title, body, source_url, tags, city,
		       latitude, longitude, video_url, created_at
		FROM feed_content
		WHERE id = $1`, id).Scan(
		&c.ID, &c.ContentType, &c.Title, &c.Body, &c.SourceURL, &c.Tags,
		&c.City, &c.Latitude, &c.Longitude, &c.VideoURL, &c.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &c, nil
}

// Create inserts a new content row and returns it.
func (r *ContentRepo) Create(ctx context.Context, req model.ContentCreateRequest) (*model.FeedContent, error) {
	c := model.FeedContent{
		ContentType: req.ContentType,
		Title:       req.Title,
		Body:        req.Body,
		SourceURL:   req.SourceURL,
		Tags:        req.Tags,
		City:        req.City,
		Latitude:    req.Latitude,
		Longitude:   req.Longitude,
		VideoURL:    req.VideoURL,
	}
	if c.Tags == nil {
		c.Tags = []string{}
	}
	err := r.pool.QueryRow(ctx, `
		INSERT INTO feed_content (content_type, title, body, source_url, tags, city, latitude, longitude, video_url)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING id, created_at`,
		c.ContentType, c.Title, c.Body, c.SourceURL, c.Tags, c.City,
		c.Latitude, c.Longitude, c.VideoURL).Scan(&c.ID, &c.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &c, nil
}
