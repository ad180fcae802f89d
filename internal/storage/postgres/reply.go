package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"

	"github.com/inkwell-blog/inkwell/internal/entities"
	"github.com/inkwell-blog/inkwell/internal/storage"
)

type replyDTO struct {
	ID          string         `db:"id"`
	CommentID   string         `db:"comment_id"`
	Author      string         `db:"author"`
	Mention     sql.NullString `db:"mention"`
	Content     string         `db:"content"`
	Likes       uint32         `db:"likes"`
	Dislikes    uint32         `db:"dislikes"`
	Impressions uint32         `db:"impressions"`
	CreatedAt   time.Time      `db:"created_at"`
	UpdatedAt   time.Time      `db:"updated_at"`
}

func (d replyDTO) toEntity() *entities.Reply {
	out := &entities.Reply{
		ID:          d.ID,
		CommentID:   d.CommentID,
		Author:      d.Author,
		Content:     d.Content,
		Likes:       d.Likes,
		Dislikes:    d.Dislikes,
		Impressions: d.Impressions,
		CreatedAt:   d.CreatedAt,
		UpdatedAt:   d.UpdatedAt,
	}

	if d.Mention.Valid {
		out.Mention = &d.Mention.String
	}

	return out
}

const replyColumns = `id, comment_id, author, mention, content, likes, dislikes, impressions, created_at, updated_at`

func (s pg) CreateReply(ctx context.Context, p *storage.CreateReplyParams) (*entities.Reply, error) {
	var d replyDTO

	var mention sql.NullString
	if p.Mention != nil {
		mention = sql.NullString{String: *p.Mention, Valid: true}
	}

	if err := sqlx.GetContext(ctx, s.ext, &d, `
			INSERT INTO reply(id, comment_id, author, mention, content)
			VALUES($1, $2, $3, $4, $5)
			RETURNING `+replyColumns,
		p.ID, p.CommentID, p.Author, mention, p.Content,
	); err != nil {
		return nil, fmt.Errorf("failed to exec: %w", err)
	}

	return d.toEntity(), nil
}

func (s pg) GetReply(ctx context.Context, id string) (*entities.Reply, error) {
	var d replyDTO

	if err := sqlx.GetContext(ctx, s.ext, &d,
		`SELECT `+replyColumns+` FROM reply WHERE id = $1`, id,
	); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, storage.ErrNotFound
		}

		return nil, fmt.Errorf("failed to query: %w", err)
	}

	return d.toEntity(), nil
}

func (s pg) ListReplies(ctx context.Context, commentID string) ([]*entities.Reply, error) {
	var dd []*replyDTO

	if err := sqlx.SelectContext(ctx, s.ext, &dd,
		`SELECT `+replyColumns+` FROM reply WHERE comment_id = $1 ORDER BY created_at`, commentID,
	); err != nil {
		return nil, fmt.Errorf("failed to query: %w", err)
	}

	out := make([]*entities.Reply, len(dd))
	for i, d := range dd {
		out[i] = d.toEntity()
	}

	return out, nil
}

func (s pg) DeleteReply(ctx context.Context, id string) error {
	res, err := s.ext.ExecContext(ctx, `
			WITH r AS (DELETE FROM reply_reaction WHERE reply_id = $1)
			DELETE FROM reply WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to exec: %w", err)
	}

	if c, _ := res.RowsAffected(); c == 0 {
		return storage.ErrNotFound
	}

	return nil
}

func (s pg) DeleteRepliesByComment(ctx context.Context, commentIDs []string) error {
	if len(commentIDs) == 0 {
		return nil
	}

	if _, err := s.ext.ExecContext(ctx,
		`WITH del AS (DELETE FROM reply WHERE comment_id = ANY($1::uuid[]) RETURNING id)
		DELETE FROM reply_reaction WHERE reply_id IN (SELECT id FROM del)`,
		pq.Array(commentIDs),
	); err != nil {
		return fmt.Errorf("failed to exec: %w", err)
	}

	return nil
}

func (s pg) DeleteRepliesByAuthor(ctx context.Context, author string) error {
	if _, err := s.ext.ExecContext(ctx,
		`WITH del AS (DELETE FROM reply WHERE author = $1 RETURNING id)
		DELETE FROM reply_reaction WHERE reply_id IN (SELECT id FROM del)`, author,
	); err != nil {
		return fmt.Errorf("failed to exec: %w", err)
	}

	return nil
}

func (s pg) AddReplyReaction(ctx context.Context, replyID, userID string, w entities.ReactionWeight) error {
	res, err := s.ext.ExecContext(ctx, `
			WITH ins AS (
				INSERT INTO reply_reaction(reply_id, user_id, weight)
				SELECT $1, $2, $3 WHERE EXISTS (SELECT FROM reply WHERE id = $1)
				ON CONFLICT DO NOTHING
				RETURNING 1
			)
			UPDATE reply SET
				likes = likes + CASE WHEN $3 = 1 THEN 1 ELSE 0 END,
				dislikes = dislikes + CASE WHEN $3 = -1 THEN 1 ELSE 0 END
			WHERE id = $1 AND EXISTS (SELECT FROM ins)`,
		replyID, userID, int8(w),
	)
	if err != nil {
		return fmt.Errorf("failed to exec: %w", err)
	}

	if c, _ := res.RowsAffected(); c == 0 {
		return storage.ErrReactionExists
	}

	return nil
}

func (s pg) RemoveReplyReaction(ctx context.Context, replyID, userID string, w entities.ReactionWeight) error {
	res, err := s.ext.ExecContext(ctx, `
			WITH del AS (
				DELETE FROM reply_reaction
				WHERE reply_id = $1 AND user_id = $2 AND weight = $3
				RETURNING 1
			)
			UPDATE reply SET
				likes = GREATEST(likes - CASE WHEN $3 = 1 THEN 1 ELSE 0 END, 0),
				dislikes = GREATEST(dislikes - CASE WHEN $3 = -1 THEN 1 ELSE 0 END, 0)
			WHERE id = $1 AND EXISTS (SELECT FROM del)`,
		replyID, userID, int8(w),
	)
	if err != nil {
		return fmt.Errorf("failed to exec: %w", err)
	}

	if c, _ := res.RowsAffected(); c == 0 {
		return storage.ErrNoReaction
	}

	return nil
}

func (s pg) RetractReplyReactions(ctx context.Context, userID string) error {
	if _, err := s.ext.ExecContext(ctx, `
			WITH del AS (
				DELETE FROM reply_reaction WHERE user_id = $1
				RETURNING reply_id, weight
			)
			UPDATE reply SET
				likes = GREATEST(reply.likes - CASE WHEN del.weight = 1 THEN 1 ELSE 0 END, 0),
				dislikes = GREATEST(reply.dislikes - CASE WHEN del.weight = -1 THEN 1 ELSE 0 END, 0)
			FROM del WHERE reply.id = del.reply_id`,
		userID,
	); err != nil {
		return fmt.Errorf("failed to exec: %w", err)
	}

	return nil
}

func (s pg) AddReplyImpressions(ctx context.Context, ids ...string) error {
	if len(ids) == 0 {
		return nil
	}

	if _, err := s.ext.ExecContext(ctx,
		`UPDATE reply SET impressions = impressions + d.n
		FROM (SELECT id, COUNT(*) AS n FROM unnest($1::uuid[]) AS id GROUP BY id) AS d
		WHERE reply.id = d.id`,
		pq.Array(ids),
	); err != nil {
		return fmt.Errorf("failed to exec: %w", err)
	}

	return nil
}
