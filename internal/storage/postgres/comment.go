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

type commentDTO struct {
	ID          string    `db:"id"`
	PostID      string    `db:"post_id"`
	Author      string    `db:"author"`
	Content     string    `db:"content"`
	Likes       uint32    `db:"likes"`
	Dislikes    uint32    `db:"dislikes"`
	Impressions uint32    `db:"impressions"`
	CreatedAt   time.Time `db:"created_at"`
	UpdatedAt   time.Time `db:"updated_at"`
}

func (d commentDTO) toEntity() *entities.Comment {
	return &entities.Comment{
		ID:          d.ID,
		PostID:      d.PostID,
		Author:      d.Author,
		Content:     d.Content,
		Likes:       d.Likes,
		Dislikes:    d.Dislikes,
		Impressions: d.Impressions,
		CreatedAt:   d.CreatedAt,
		UpdatedAt:   d.UpdatedAt,
	}
}

const commentColumns = `id, post_id, author, content, likes, dislikes, impressions, created_at, updated_at`

func (s pg) CreateComment(ctx context.Context, p *storage.CreateCommentParams) (*entities.Comment, error) {
	var d commentDTO

	if err := sqlx.GetContext(ctx, s.ext, &d, `
			INSERT INTO comment(id, post_id, author, content)
			VALUES($1, $2, $3, $4)
			RETURNING `+commentColumns,
		p.ID, p.PostID, p.Author, p.Content,
	); err != nil {
		return nil, fmt.Errorf("failed to exec: %w", err)
	}

	return d.toEntity(), nil
}

func (s pg) GetComment(ctx context.Context, id string) (*entities.Comment, error) {
	var d commentDTO

	if err := sqlx.GetContext(ctx, s.ext, &d,
		`SELECT `+commentColumns+` FROM comment WHERE id = $1`, id,
	); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, storage.ErrNotFound
		}

		return nil, fmt.Errorf("failed to query: %w", err)
	}

	return d.toEntity(), nil
}

func (s pg) ListComments(ctx context.Context, postID string) ([]*entities.Comment, error) {
	var dd []*commentDTO

	if err := sqlx.SelectContext(ctx, s.ext, &dd,
		`SELECT `+commentColumns+` FROM comment WHERE post_id = $1 ORDER BY created_at`, postID,
	); err != nil {
		return nil, fmt.Errorf("failed to query: %w", err)
	}

	out := make([]*entities.Comment, len(dd))
	for i, d := range dd {
		out[i] = d.toEntity()
	}

	return out, nil
}

func (s pg) UpdateComment(ctx context.Context, id, content string) (*entities.Comment, error) {
	var d commentDTO

	if err := sqlx.GetContext(ctx, s.ext, &d, `
			UPDATE comment SET content = $2, updated_at = now()
			WHERE id = $1
			RETURNING `+commentColumns,
		id, content,
	); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, storage.ErrNotFound
		}

		return nil, fmt.Errorf("failed to exec: %w", err)
	}

	return d.toEntity(), nil
}

func (s pg) DeleteComment(ctx context.Context, id string) error {
	res, err := s.ext.ExecContext(ctx, `
			WITH r AS (DELETE FROM comment_reaction WHERE comment_id = $1)
			DELETE FROM comment WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to exec: %w", err)
	}

	if c, _ := res.RowsAffected(); c == 0 {
		return storage.ErrNotFound
	}

	return nil
}

func (s pg) DeleteCommentsByPost(ctx context.Context, postIDs []string) ([]string, error) {
	if len(postIDs) == 0 {
		return nil, nil
	}

	var ids []string

	if err := sqlx.SelectContext(ctx, s.ext, &ids,
		`WITH del AS (DELETE FROM comment WHERE post_id = ANY($1::uuid[]) RETURNING id),
			r AS (DELETE FROM comment_reaction WHERE comment_id IN (SELECT id FROM del))
		SELECT id FROM del`,
		pq.Array(postIDs),
	); err != nil {
		return nil, fmt.Errorf("failed to exec: %w", err)
	}

	return ids, nil
}

// DeleteCommentsByAuthor deletes and returns the author's comments. The
// returned rows carry the parent post ids the deletion cascade needs for
// comment-counter decrements.
func (s pg) DeleteCommentsByAuthor(ctx context.Context, author string) ([]*entities.Comment, error) {
	var dd []*commentDTO

	if err := sqlx.SelectContext(ctx, s.ext, &dd,
		`WITH del AS (DELETE FROM comment WHERE author = $1 RETURNING `+commentColumns+`),
			r AS (DELETE FROM comment_reaction WHERE comment_id IN (SELECT id FROM del))
		SELECT `+commentColumns+` FROM del`, author,
	); err != nil {
		return nil, fmt.Errorf("failed to exec: %w", err)
	}

	out := make([]*entities.Comment, len(dd))
	for i, d := range dd {
		out[i] = d.toEntity()
	}

	return out, nil
}

func (s pg) AddCommentReaction(ctx context.Context, commentID, userID string, w entities.ReactionWeight) error {
	res, err := s.ext.ExecContext(ctx, `
			WITH ins AS (
				INSERT INTO comment_reaction(comment_id, user_id, weight)
				SELECT $1, $2, $3 WHERE EXISTS (SELECT FROM comment WHERE id = $1)
				ON CONFLICT DO NOTHING
				RETURNING 1
			)
			UPDATE comment SET
				likes = likes + CASE WHEN $3 = 1 THEN 1 ELSE 0 END,
				dislikes = dislikes + CASE WHEN $3 = -1 THEN 1 ELSE 0 END
			WHERE id = $1 AND EXISTS (SELECT FROM ins)`,
		commentID, userID, int8(w),
	)
	if err != nil {
		return fmt.Errorf("failed to exec: %w", err)
	}

	if c, _ := res.RowsAffected(); c == 0 {
		return storage.ErrReactionExists
	}

	return nil
}

func (s pg) RemoveCommentReaction(ctx context.Context, commentID, userID string, w entities.ReactionWeight) error {
	res, err := s.ext.ExecContext(ctx, `
			WITH del AS (
				DELETE FROM comment_reaction
				WHERE comment_id = $1 AND user_id = $2 AND weight = $3
				RETURNING 1
			)
			UPDATE comment SET
				likes = GREATEST(likes - CASE WHEN $3 = 1 THEN 1 ELSE 0 END, 0),
				dislikes = GREATEST(dislikes - CASE WHEN $3 = -1 THEN 1 ELSE 0 END, 0)
			WHERE id = $1 AND EXISTS (SELECT FROM del)`,
		commentID, userID, int8(w),
	)
	if err != nil {
		return fmt.Errorf("failed to exec: %w", err)
	}

	if c, _ := res.RowsAffected(); c == 0 {
		return storage.ErrNoReaction
	}

	return nil
}

func (s pg) GetCommentReactions(ctx context.Context, reactedBy string, ids ...string) (map[string]entities.ReactionWeight, error) {
	ids = stringsUnique(ids)

	var rr []struct {
		CommentID string `db:"comment_id"`
		Weight    int8   `db:"weight"`
	}

	if err := sqlx.SelectContext(ctx, s.ext, &rr, `
			SELECT comment_id, weight FROM comment_reaction
			WHERE user_id = $1 AND comment_id = ANY($2::uuid[])`,
		reactedBy, pq.Array(ids),
	); err != nil {
		return nil, fmt.Errorf("failed to query: %w", err)
	}

	out := make(map[string]entities.ReactionWeight, len(rr))
	for _, r := range rr {
		out[r.CommentID] = entities.ReactionWeight(r.Weight)
	}

	return out, nil
}

func (s pg) RetractCommentReactions(ctx context.Context, userID string) error {
	if _, err := s.ext.ExecContext(ctx, `
			WITH del AS (
				DELETE FROM comment_reaction WHERE user_id = $1
				RETURNING comment_id, weight
			)
			UPDATE comment SET
				likes = GREATEST(comment.likes - CASE WHEN del.weight = 1 THEN 1 ELSE 0 END, 0),
				dislikes = GREATEST(comment.dislikes - CASE WHEN del.weight = -1 THEN 1 ELSE 0 END, 0)
			FROM del WHERE comment.id = del.comment_id`,
		userID,
	); err != nil {
		return fmt.Errorf("failed to exec: %w", err)
	}

	return nil
}

func (s pg) AddCommentImpressions(ctx context.Context, ids ...string) error {
	if len(ids) == 0 {
		return nil
	}

	if _, err := s.ext.ExecContext(ctx,
		`UPDATE comment SET impressions = impressions + d.n
		FROM (SELECT id, COUNT(*) AS n FROM unnest($1::uuid[]) AS id GROUP BY id) AS d
		WHERE comment.id = d.id`,
		pq.Array(ids),
	); err != nil {
		return fmt.Errorf("failed to exec: %w", err)
	}

	return nil
}
