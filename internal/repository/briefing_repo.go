package repository

import (
	"context"
	"encoding/json"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/khemprogrammer/AwasarHub/internal/model"
)

type BriefingRepo struct {
	pool *pgxpool.Pool
}

func NewBriefingRepo(pool *pgxpool.Pool) *BriefingRepo {
	return &BriefingRepo{pool: pool}
}

// GetOrCreateDaily returns the user's briefing for the given date, creating a
// placeholder row on first access. The (user_id, briefing_date) pair is
// unique, so concurrent first requests resolve to the same row.
func (r *BriefingRepo) GetOrCreateDaily(ctx context.Context, userID int64, day time.Time, metadata map[string]any) (*model.Briefing, error) {
	meta, err := json.Marshal(metadata)
	if err != nil {
		return nil, err
	}

	_, err = r.pool.Exec(ctx, `
		INSERT INTO briefings (user_id, briefing_date, script_text, video_url, metadata)
		VALUES ($1, $2, 'Your briefing is being prepared.', '', $3)
		ON CONFLICT (user_id, briefing_date) DO NOTHING`,
		userID, day, meta)
	if err != nil {
		return nil, err
	}

	var b model.Briefing
	var rawMeta []byte
	err = r.pool.QueryRow(ctx, `
		SELECT id, user_id, briefing_date, script_text, video_url, metadata, created_at
		FROM briefings
		WHERE user_id = $1 AND briefing_date = $2`,
		userID, day).Scan(&b.ID, &b.UserID, &b.Date, &b.ScriptText, &b.VideoURL, &rawMeta, &b.CreatedAt)
	if err != nil {
		return nil, err
	}

	if len(rawMeta) > 0 {
		if err := json.Unmarshal(rawMeta, &b.Metadata); err != nil {
			return nil, err
		}
	}
	return &b, nil
}
