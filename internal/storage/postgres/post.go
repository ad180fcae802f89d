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

type postDTO struct {
	ID          string    `db:"id"`
	Author      string    `db:"author"`
	ContentPt   string    `db:"content_pt"`
	ContentEn   string    `db:"content_en"`
	Likes       uint32    `db:"likes"`
	Comments    uint32    `db:"comments"`
	Impressions uint32    `db:"impressions"`
	CreatedAt   time.Time `db:"created_at"`
	UpdatedAt   time.Time `db:"updated_at"`
}

func (d postDTO) toEntity() *entities.Post {
	return &entities.Post{
		ID:          d.ID,
		Author:      d.Author,
		ContentPt:   d.ContentPt,
		ContentEn:   d.ContentEn,
		Likes:       d.Likes,
		Comments:    d.Comments,
		Impressions: d.Impressions,
		CreatedAt:   d.CreatedAt,
		UpdatedAt:   d.UpdatedAt,
	}
}

const postColumns = `id, author, content_pt, content_en, likes, comments, impressions, created_at, updated_at`

func (s pg) CreatePost(ctx context.Context, p *storage.CreatePostParams) (*entities.Post, error) {
	var d postDTO

	if err := sqlx.GetContext(ctx, s.ext, &d, `
			INSERT INTO post(id, author, content_pt, content_en)
			VALUES($1, $2, $3, $4)
			RETURNING `+postColumns,
		p.ID, p.Author, p.ContentPt, p.ContentEn,
	); err != nil {
		return nil, fmt.Errorf("failed to exec: %w", err)
	}

	return d.toEntity(), nil
}

func (s pg) GetPost(ctx context.Context, id string) (*entities.Post, error) {
	var d postDTO

	if err := sqlx.GetContext(ctx, s.ext, &d,
		`SELECT `+postColumns+` FROM post WHERE id = $1`, id,
	); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, storage.ErrNotFound
		}

		return nil, fmt.Errorf("failed to query: %w", err)
	}

	return d.toEntity(), nil
}

func (s pg) ListPosts(ctx context.Context) ([]*entities.Post, error) {
	var dd []*postDTO

	if err := sqlx.SelectContext(ctx, s.ext, &dd,
		`SELECT `+postColumns+` FROM post ORDER BY created_at DESC`,
	); err != nil {
		return nil, fmt.Errorf("failed to query: %w", err)
	}

	out := make([]*entities.Post, len(dd))
	for i, d := range dd {
		out[i] = d.toEntity()
	}

	return out, nil
}

func (s pg) UpdatePost(ctx context.Context, id string, p *storage.UpdatePostParams) (*entities.Post, error) {
	var d postDTO

	if err := sqlx.GetContext(ctx, s.ext, &d, `
			UPDATE post SET content_pt = $2, content_en = $3, updated_at = now()
			WHERE id = $1
			RETURNING `+postColumns,
		id, p.ContentPt, p.ContentEn,
	); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, storage.ErrNotFound
		}

		return nil, fmt.Errorf("failed to exec: %w", err)
	}

	return d.toEntity(), nil
}

func (s pg) DeletePost(ctx context.Context, id string) error {
	res, err := s.ext.ExecContext(ctx, `
			WITH l AS (DELETE FROM post_like WHERE post_id = $1)
			DELETE FROM post WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to exec: %w", err)
	}

	if c, _ := res.RowsAffected(); c == 0 {
		return storage.ErrNotFound
	}

	return nil
}

func (s pg) DeletePostsByAuthor(ctx context.Context, author string) ([]string, error) {
	var ids []string

	if err := sqlx.SelectContext(ctx, s.ext, &ids,
		`WITH del AS (DELETE FROM post WHERE author = $1 RETURNING id),
			l AS (DELETE FROM post_like WHERE post_id IN (SELECT id FROM del))
		SELECT id FROM del`, author,
	); err != nil {
		return nil, fmt.Errorf("failed to exec: %w", err)
	}

	return ids, nil
}

// AddPostLike adds the user to the post's membership set and bumps the likes
// counter as one atomic statement. The insert is guarded by the post's
// existence so a like racing a post deletion can not leave an orphaned
// membership row.
func (s pg) AddPostLike(ctx context.Context, postID, userID string) error {
	res, err := s.ext.ExecContext(ctx, `
			WITH ins AS (
				INSERT INTO post_like(post_id, user_id)
				SELECT $1, $2 WHERE EXISTS (SELECT FROM post WHERE id = $1)
				ON CONFLICT DO NOTHING
				RETURNING 1
			)
			UPDATE post SET likes = likes + 1
			WHERE id = $1 AND EXISTS (SELECT FROM ins)`,
		postID, userID,
	)
	if err != nil {
		return fmt.Errorf("failed to exec: %w", err)
	}

	if c, _ := res.RowsAffected(); c == 0 {
		return storage.ErrReactionExists
	}

	return nil
}

func (s pg) RemovePostLike(ctx context.Context, postID, userID string) error {
	res, err := s.ext.ExecContext(ctx, `
			WITH del AS (
				DELETE FROM post_like WHERE post_id = $1 AND user_id = $2
				RETURNING 1
			)
			UPDATE post SET likes = GREATEST(likes - 1, 0)
			WHERE id = $1 AND EXISTS (SELECT FROM del)`,
		postID, userID,
	)
	if err != nil {
		return fmt.Errorf("failed to exec: %w", err)
	}

	if c, _ := res.RowsAffected(); c == 0 {
		return storage.ErrNoReaction
	}

	return nil
}

func (s pg) GetPostLikes(ctx context.Context, likedBy string, ids ...string) (map[string]bool, error) {
	ids = stringsUnique(ids)

	var liked []string

	if err := sqlx.SelectContext(ctx, s.ext, &liked, `
			SELECT post_id FROM post_like
			WHERE user_id = $1 AND post_id = ANY($2::uuid[])`,
		likedBy, pq.Array(ids),
	); err != nil {
		return nil, fmt.Errorf("failed to query: %w", err)
	}

	out := make(map[string]bool, len(liked))
	for _, id := range liked {
		out[id] = true
	}

	return out, nil
}

// RetractPostLikes removes the user from every post's membership set,
// decrementing each affected likes counter. One statement, one decrement per
// membership row.
func (s pg) RetractPostLikes(ctx context.Context, userID string) error {
	if _, err := s.ext.ExecContext(ctx, `
			WITH del AS (
				DELETE FROM post_like WHERE user_id = $1
				RETURNING post_id
			)
			UPDATE post SET likes = GREATEST(post.likes - 1, 0)
			FROM del WHERE post.id = del.post_id`,
		userID,
	); err != nil {
		return fmt.Errorf("failed to exec: %w", err)
	}

	return nil
}

func (s pg) IncPostComments(ctx context.Context, id string) error {
	res, err := s.ext.ExecContext(ctx,
		`UPDATE post SET comments = comments + 1 WHERE id = $1`, id,
	)
	if err != nil {
		return fmt.Errorf("failed to exec: %w", err)
	}

	if c, _ := res.RowsAffected(); c == 0 {
		return storage.ErrNotFound
	}

	return nil
}

func (s pg) DecPostComments(ctx context.Context, id string, n uint32) error {
	res, err := s.ext.ExecContext(ctx,
		`UPDATE post SET comments = GREATEST(comments - $2, 0) WHERE id = $1`,
		id, int32(n),
	)
	if err != nil {
		return fmt.Errorf("failed to exec: %w", err)
	}

	if c, _ := res.RowsAffected(); c == 0 {
		return storage.ErrNotFound
	}

	return nil
}

func (s pg) AddPostImpressions(ctx context.Context, ids ...string) error {
	if len(ids) == 0 {
		return nil
	}

	if _, err := s.ext.ExecContext(ctx,
		`UPDATE post SET impressions = impressions + d.n
		FROM (SELECT id, COUNT(*) AS n FROM unnest($1::uuid[]) AS id GROUP BY id) AS d
		WHERE post.id = d.id`,
		pq.Array(ids),
	); err != nil {
		return fmt.Errorf("failed to exec: %w", err)
	}

	return nil
}
