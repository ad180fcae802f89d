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

type imageDTO struct {
	ID        string    `db:"id"`
	Author    string    `db:"author"`
	PostID    string    `db:"post_id"`
	Name      string    `db:"name"`
	Data      string    `db:"data"`
	CreatedAt time.Time `db:"created_at"`
}

func (d imageDTO) toEntity() *entities.Image {
	return &entities.Image{
		ID:        d.ID,
		Author:    d.Author,
		PostID:    d.PostID,
		Name:      d.Name,
		Data:      d.Data,
		CreatedAt: d.CreatedAt,
	}
}

const imageColumns = `id, author, post_id, name, data, created_at`

func (s pg) CreateImage(ctx context.Context, p *storage.CreateImageParams) (*entities.Image, error) {
	var d imageDTO

	if err := sqlx.GetContext(ctx, s.ext, &d, `
			INSERT INTO image(id, author, post_id, name, data)
			VALUES($1, $2, $3, $4, $5)
			RETURNING `+imageColumns,
		p.ID, p.Author, p.PostID, p.Name, p.Data,
	); err != nil {
		if isUniqueViolation(err) {
			return nil, storage.ErrAlreadyExists
		}

		return nil, fmt.Errorf("failed to exec: %w", err)
	}

	return d.toEntity(), nil
}

func (s pg) GetImage(ctx context.Context, id string) (*entities.Image, error) {
	var d imageDTO

	if err := sqlx.GetContext(ctx, s.ext, &d,
		`SELECT `+imageColumns+` FROM image WHERE id = $1`, id,
	); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, storage.ErrNotFound
		}

		return nil, fmt.Errorf("failed to query: %w", err)
	}

	return d.toEntity(), nil
}

func (s pg) ListPostImages(ctx context.Context, postID string) ([]*entities.Image, error) {
	var dd []*imageDTO

	if err := sqlx.SelectContext(ctx, s.ext, &dd,
		`SELECT `+imageColumns+` FROM image WHERE post_id = $1 ORDER BY created_at`, postID,
	); err != nil {
		return nil, fmt.Errorf("failed to query: %w", err)
	}

	out := make([]*entities.Image, len(dd))
	for i, d := range dd {
		out[i] = d.toEntity()
	}

	return out, nil
}

func (s pg) DeleteImage(ctx context.Context, id string) error {
	res, err := s.ext.ExecContext(ctx, `DELETE FROM image WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to exec: %w", err)
	}

	if c, _ := res.RowsAffected(); c == 0 {
		return storage.ErrNotFound
	}

	return nil
}

func (s pg) DeleteImagesByPost(ctx context.Context, postIDs []string) error {
	if len(postIDs) == 0 {
		return nil
	}

	if _, err := s.ext.ExecContext(ctx,
		`DELETE FROM image WHERE post_id = ANY($1::uuid[])`,
		pq.Array(postIDs),
	); err != nil {
		return fmt.Errorf("failed to exec: %w", err)
	}

	return nil
}

func (s pg) DeleteImagesByAuthor(ctx context.Context, author string) error {
	if _, err := s.ext.ExecContext(ctx,
		`DELETE FROM image WHERE author = $1`, author,
	); err != nil {
		return fmt.Errorf("failed to exec: %w", err)
	}

	return nil
}
