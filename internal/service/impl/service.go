// Package impl is implementation of service interface.
package impl

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/inkwell-blog/inkwell/internal/entities"
	"github.com/inkwell-blog/inkwell/internal/service"
	"github.com/inkwell-blog/inkwell/internal/storage"
)

// srv ...
type srv struct {
	s storage.Storage
	r service.ImpressionRecorder
}

// New creates new instance of service.
func New(s storage.Storage, r service.ImpressionRecorder) service.Service {
	return srv{
		s: s,
		r: r,
	}
}

func validateIDs(ids ...string) error {
	for _, id := range ids {
		if _, err := uuid.Parse(id); err != nil {
			return service.ErrInvalidID
		}
	}

	return nil
}

func (s srv) getUser(ctx context.Context, id string) (*entities.User, error) {
	u, err := s.s.GetUser(ctx, id)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, service.ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}

	return u, nil
}

func (s srv) getPost(ctx context.Context, id string) (*entities.Post, error) {
	p, err := s.s.GetPost(ctx, id)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, service.ErrPostNotFound
		}
		return nil, fmt.Errorf("failed to get post: %w", err)
	}

	return p, nil
}

// getComment resolves the comment and checks it belongs to the given post.
// A comment reachable under the wrong post id is reported as missing.
func (s srv) getComment(ctx context.Context, postID, commentID string) (*entities.Comment, error) {
	c, err := s.s.GetComment(ctx, commentID)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, service.ErrCommentNotFound
		}
		return nil, fmt.Errorf("failed to get comment: %w", err)
	}

	if c.PostID != postID {
		return nil, service.ErrCommentNotFound
	}

	return c, nil
}

func (s srv) getReply(ctx context.Context, commentID, replyID string) (*entities.Reply, error) {
	r, err := s.s.GetReply(ctx, replyID)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, service.ErrReplyNotFound
		}
		return nil, fmt.Errorf("failed to get reply: %w", err)
	}

	if r.CommentID != commentID {
		return nil, service.ErrReplyNotFound
	}

	return r, nil
}

func (s srv) GetPlatformStats(ctx context.Context) (*storage.PlatformStats, error) {
	st, err := s.s.GetPlatformStats(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get stats: %w", err)
	}

	return st, nil
}
