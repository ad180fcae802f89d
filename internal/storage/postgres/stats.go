package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/inkwell-blog/inkwell/internal/storage"
)

func (s pg) GetPlatformStats(ctx context.Context) (*storage.PlatformStats, error) {
	var d struct {
		Users    uint32 `db:"users"`
		Posts    uint32 `db:"posts"`
		Comments uint32 `db:"comments"`
		Replies  uint32 `db:"replies"`
	}

	if err := sqlx.GetContext(ctx, s.ext, &d, `
			SELECT
				(SELECT count(*) FROM "user") AS users,
				(SELECT count(*) FROM post) AS posts,
				(SELECT count(*) FROM comment) AS comments,
				(SELECT count(*) FROM reply) AS replies`,
	); err != nil {
		return nil, fmt.Errorf("failed to query: %w", err)
	}

	return &storage.PlatformStats{
		Users:    d.Users,
		Posts:    d.Posts,
		Comments: d.Comments,
		Replies:  d.Replies,
	}, nil
}
