package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/khemprogrammer/AwasarHub/internal/model"
)

type EngagementRepo struct {
	pool *pgxpool.Pool
}

func NewEngagementRepo(pool *pgxpool.Pool) *EngagementRepo {
	return &EngagementRepo{pool: pool}
}

// ToggleLike flips the caller's like state for a content ref atomically.
// Returns true if the call created a like, false if it removed one.
//
// The existing like row is locked with FOR UPDATE before the delete-or-insert
// so two concurrent toggles from the same user serialize instead of racing
// into duplicate rows; the schema additionally carries a partial unique index
// on (user_id, content_type, content_id) WHERE action = 'like'.
func (r *EngagementRepo) ToggleLike(ctx context.Context, userID int64, ref model.ContentRef) (bool, error) {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return false, err
	}
	defer tx.Rollback(ctx)

	var existingID int64
	err = tx.QueryRow(ctx, `
		SELECT id FROM engagement_log
		WHERE user_id = $1 AND content_type = $2 AND content_id = $3 AND action = 'like'
		FOR UPDATE`,
		userID, ref.Type, ref.ID).Scan(&existingID)

	liked := false
	switch {
	case err == nil:
		_, err = tx.Exec(ctx, `DELETE FROM engagement_log WHERE id = $1`, existingID)
		if err != nil {
			return false, err
		}
	case errors.Is(err, pgx.ErrNoRows):
		_, err = tx.Exec(ctx, `
			INSERT INTO engagement_log (user_id, content_type, content_id, action)
			VALUES ($1, $2, $3, 'like')`,
			userID, ref.Type, ref.ID)
		if err != nil {
			return false, err
		}
		liked = true
	default:
		return false, err
	}

	// Wake the counter worker so the cached counts get refreshed.
	_, err = tx.Exec(ctx, `SELECT pg_notify('engagement_changes', $1)`, notifyPayload(ref))
	if err != nil {
		return false, err
	}

	return liked, tx.Commit(ctx)
}

// Append inserts one engagement record. Used for the non-toggling actions;
// duplicates are expected (two reposts are two records).
func (r *EngagementRepo) Append(ctx context.Context, userID int64, ref model.ContentRef, action string) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	_, err = tx.Exec(ctx, `
		INSERT INTO engagement_log (user_id, content_type, content_id, action)
		VALUES ($1, $2, $3, $4)`,
		userID, ref.Type, ref.ID, action)
	if err != nil {
		return err
	}

	_, err = tx.Exec(ctx, `SELECT pg_notify('engagement_changes', $1)`, notifyPayload(ref))
	if err != nil {
		return err
	}

	return tx.Commit(ctx)
}

// CountsFor returns the like/repost/share counters for a set of content refs
// in one batched query, plus comment counts from the comments table. Refs
// with no matching rows are simply absent from the result; callers treat
// absence as zero counts (orphaned refs never error).
func (r *EngagementRepo) CountsFor(ctx context.Context, refs []model.ContentRef) (map[model.ContentRef]model.EngagementCounts, error) {
	counts := make(map[model.ContentRef]model.EngagementCounts, len(refs))
	if len(refs) == 0 {
		return counts, nil
	}

	types, ids := refArrays(refs)

	rows, err := r.pool.Query(ctx, `
		SELECT content_type, content_id, action, COUNT(*)
		FROM engagement_log
		WHERE action IN ('like', 'repost', 'share')
		  AND (content_type, content_id) IN (SELECT unnest($1::text[]), unnest($2::bigint[]))
		GROUP BY content_type, content_id, action`,
		types, ids)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var ref model.ContentRef
		var action string
		var n int
		if err := rows.Scan(&ref.Type, &ref.ID, &action, &n); err != nil {
			return nil, err
		}
		c := counts[ref]
		switch action {
		case model.ActionLike:
			c.Likes = n
		case model.ActionRepost:
			c.Reposts = n
		case model.ActionShare:
			c.Shares = n
		}
		counts[ref] = c
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	commentRows, err := r.pool.Query(ctx, `
		SELECT content_type, content_id, COUNT(*)
		FROM comments
		WHERE (content_type, content_id) IN (SELECT unnest($1::text[]), unnest($2::bigint[]))
		GROUP BY content_type, content_id`,
		types, ids)
	if err != nil {
		return nil, err
	}
	defer commentRows.Close()

	for commentRows.Next() {
		var ref model.ContentRef
		var n int
		if err := commentRows.Scan(&ref.Type, &ref.ID, &n); err != nil {
			return nil, err
		}
		c := counts[ref]
		c.Comments = n
		counts[ref] = c
	}
	return counts, commentRows.Err()
}

// LikedBy returns the subset of refs the given user has an active like on.
func (r *EngagementRepo) LikedBy(ctx context.Context, userID int64, refs []model.ContentRef) (map[model.ContentRef]bool, error) {
	liked := make(map[model.ContentRef]bool, len(refs))
	if userID == 0 || len(refs) == 0 {
		return liked, nil
	}

	types, ids := refArrays(refs)

	rows, err := r.pool.Query(ctx, `
		SELECT DISTINCT content_type, content_id
		FROM engagement_log
		WHERE user_id = $1 AND action = 'like'
		  AND (content_type, content_id) IN (SELECT unnest($2::text[]), unnest($3::bigint[]))`,
		userID, types, ids)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var ref model.ContentRef
		if err := rows.Scan(&ref.Type, &ref.ID); err != nil {
			return nil, err
		}
		liked[ref] = true
	}
	return liked, rows.Err()
}

// ListComments returns the comments for one content ref, newest first.
func (r *EngagementRepo) ListComments(ctx context.Context, ref model.ContentRef) ([]model.Comment, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT c.id, c.user_id, COALESCE(u.username, ''), c.content_type, c.content_id, c.text, c.created_at
		FROM comments c
		LEFT JOIN users u ON u.id = c.user_id
		WHERE c.content_type = $1 AND c.content_id = $2
		ORDER BY c.created_at DESC`,
		ref.Type, ref.ID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	comments := []model.Comment{}
	for rows.Next() {
		var c model.Comment
		err := rows.Scan(&c.ID, &c.UserID, &c.Username, &c.ContentType, &c.ContentID, &c.Text, &c.CreatedAt)
		if err != nil {
			return nil, err
		}
		comments = append(comments, c)
	}
	return comments, rows.Err()
}

// CreateComment inserts one comment and returns the stored row.
func (r *EngagementRepo) CreateComment(ctx context.Context, userID int64, ref model.ContentRef, text string) (*model.Comment, error) {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer tx.Rollback(ctx)

	c := model.Comment{
		UserID:      userID,
		ContentType: ref.Type,
		ContentID:   ref.ID,
		Text:        text,
	}
	err = tx.QueryRow(ctx, `
		INSERT INTO comments (user_id, content_type, content_id, text)
		VALUES ($1, $2, $3, $4)
		RETURNING id, created_at`,
		userID, ref.Type, ref.ID, text).Scan(&c.ID, &c.CreatedAt)
	if err != nil {
		return nil, err
	}

	_, err = tx.Exec(ctx, `SELECT pg_notify('engagement_changes', $1)`, notifyPayload(ref))
	if err != nil {
		return nil, err
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, err
	}
	return &c, nil
}

func refArrays(refs []model.ContentRef) ([]string, []int64) {
	types := make([]string, len(refs))
	ids := make([]int64, len(refs))
	for i, ref := range refs {
		types[i] = ref.Type
		ids[i] = ref.ID
	}
	return types, ids
}

func notifyPayload(ref model.ContentRef) string {
	return fmt.Sprintf("%s:%d", ref.Type, ref.ID)
}
