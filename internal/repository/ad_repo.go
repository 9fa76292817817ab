package repository

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/khemprogrammer/AwasarHub/internal/model"
)

type AdRepo struct {
	pool *pgxpool.Pool
}

func NewAdRepo(pool *pgxpool.Pool) *AdRepo {
	return &AdRepo{pool: pool}
}

// ListEnabled returns up to limit enabled advertisements in insertion order.
// The feed composer consumes them in this order when filling ad slots.
func (r *AdRepo) ListEnabled(ctx context.Context, limit int) ([]model.Advertisement, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT id, title, body, category, city, latitude, longitude, tags,
		       link_url, bid_cpm, bid_cpc, enabled, advertiser_id, created_at
		FROM advertisements
		WHERE enabled = true
		ORDER BY id
		LIMIT $1`, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var ads []model.Advertisement
	for rows.Next() {
		var a model.Advertisement
		err := rows.Scan(
			&a.ID, &a.Title, &a.Body, &a.Category, &a.City, &a.Latitude, &a.Longitude,
			&a.Tags, &a.LinkURL, &a.BidCPM, &a.BidCPC, &a.Enabled, &a.Advertiser, &a.CreatedAt,
		)
		if err != nil {
			return nil, err
		}
		ads = append(ads, a)
	}
	return ads, rows.Err()
}
