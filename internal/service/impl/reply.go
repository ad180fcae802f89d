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

func (s srv) CreateReply(ctx context.Context, actorID, postID, commentID string, mention *string, content string) (*entities.Reply, error) {
	if err := validateIDs(actorID, postID, commentID); err != nil {
		return nil, err
	}

	if mention != nil {
		if err := validateIDs(*mention); err != nil {
			return nil, err
		}
	}

	if content == "" {
		return nil, service.ErrMissingContent
	}

	if _, err := s.getPost(ctx, postID); err != nil {
		return nil, err
	}

	if _, err := s.getComment(ctx, postID, commentID); err != nil {
		return nil, err
	}

	reply, err := s.s.CreateReply(ctx, &storage.CreateReplyParams{
		ID:        uuid.New().String(),
		CommentID: commentID,
		Author:    actorID,
		Mention:   mention,
		Content:   content,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create reply: %w", err)
	}

	return reply, nil
}

func (s srv) ListReplies(ctx context.Context, postID, commentID string) ([]*entities.Reply, error) {
	if err := validateIDs(postID, commentID); err != nil {
		return nil, err
	}

	if _, err := s.getPost(ctx, postID); err != nil {
		return nil, err
	}

	if _, err := s.getComment(ctx, postID, commentID); err != nil {
		return nil, err
	}

	replies, err := s.s.ListReplies(ctx, commentID)
	if err != nil {
		return nil, fmt.Errorf("failed to list replies: %w", err)
	}

	ids := make([]string, len(replies))
	for i, r := range replies {
		ids[i] = r.ID
	}
	s.r.Replies(ids...)

	return replies, nil
}

func (s srv) GetReply(ctx context.Context, postID, commentID, replyID string) (*entities.Reply, error) {
	if err := validateIDs(postID, commentID, replyID); err != nil {
		return nil, err
	}

	if _, err := s.getPost(ctx, postID); err != nil {
		return nil, err
	}

	if _, err := s.getComment(ctx, postID, commentID); err != nil {
		return nil, err
	}

	reply, err := s.getReply(ctx, commentID, replyID)
	if err != nil {
		return nil, err
	}

	s.r.Replies(reply.ID)

	return reply, nil
}

func (s srv) DeleteReply(ctx context.Context, actorID, postID, commentID, replyID string) error {
	if err := validateIDs(actorID, postID, commentID, replyID); err != nil {
		return err
	}

	if _, err := s.getPost(ctx, postID); err != nil {
		return err
	}

	if _, err := s.getComment(ctx, postID, commentID); err != nil {
		return err
	}

	reply, err := s.getReply(ctx, commentID, replyID)
	if err != nil {
		return err
	}

	if reply.Author != actorID {
		return service.ErrCannotDeleteReply
	}

	if err := s.s.DeleteReply(ctx, replyID); err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return service.ErrReplyNotFound
		}
		return fmt.Errorf("failed to delete reply: %w", err)
	}

	return nil
}

func (s srv) reactToReply(ctx context.Context, actorID, postID, commentID, replyID string, w entities.ReactionWeight) error {
	if err := validateIDs(actorID, postID, commentID, replyID); err != nil {
		return err
	}

	if _, err := s.getPost(ctx, postID); err != nil {
		return err
	}

	if _, err := s.getComment(ctx, postID, commentID); err != nil {
		return err
	}

	if _, err := s.getReply(ctx, commentID, replyID); err != nil {
		return err
	}

	if err := s.s.RemoveReplyReaction(ctx, replyID, actorID, w.Opposite()); err != nil &&
		!errors.Is(err, storage.ErrNoReaction) {
		return fmt.Errorf("failed to remove opposite reaction: %w", err)
	}

	if err := s.s.AddReplyReaction(ctx, replyID, actorID, w); err != nil {
		if errors.Is(err, storage.ErrReactionExists) {
			if w == entities.Like {
				return service.ErrAlreadyLikedReply
			}
			return service.ErrAlreadyDislikedReply
		}
		return fmt.Errorf("failed to add reaction: %w", err)
	}

	return nil
}

func (s srv) unreactToReply(ctx context.Context, actorID, postID, commentID, replyID string, w entities.ReactionWeight) error {
	if err := validateIDs(actorID, postID, commentID, replyID); err != nil {
		return err
	}

	if _, err := s.getPost(ctx, postID); err != nil {
		return err
	}

	if _, err := s.getComment(ctx, postID, commentID); err != nil {
		return err
	}

	if _, err := s.getReply(ctx, commentID, replyID); err != nil {
		return err
	}

	if err := s.s.RemoveReplyReaction(ctx, replyID, actorID, w); err != nil {
		if errors.Is(err, storage.ErrNoReaction) {
			if w == entities.Like {
				return service.ErrHaveNotLikedReply
			}
			return service.ErrHaveNotDislikedReply
		}
		return fmt.Errorf("failed to remove reaction: %w", err)
	}

	return nil
}

func (s srv) LikeReply(ctx context.Context, actorID, postID, commentID, replyID string) error {
	return s.reactToReply(ctx, actorID, postID, commentID, replyID, entities.Like)
}

func (s srv) DislikeReply(ctx context.Context, actorID, postID, commentID, replyID string) error {
	return s.reactToReply(ctx, actorID, postID, commentID, replyID, entities.Dislike)
}

func (s srv) UnlikeReply(ctx context.Context, actorID, postID, commentID, replyID string) error {
	return s.unreactToReply(ctx, actorID, postID, commentID, replyID, entities.Like)
}

func (s srv) UndislikeReply(ctx context.Context, actorID, postID, commentID, replyID string) error {
	return s.unreactToReply(ctx, actorID, postID, commentID, replyID, entities.Dislike)
}
