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

// CreateComment inserts the comment first and bumps the post's counter
// after. A crash in between undercounts, which a clamped decrement can
// absorb, while the opposite order could leave a counter with no comment
// behind it.
func (s srv) CreateComment(ctx context.Context, actorID, postID, content string) (*entities.Comment, error) {
	if err := validateIDs(actorID, postID); err != nil {
		return nil, err
	}

	if content == "" {
		return nil, service.ErrMissingContent
	}

	if _, err := s.getPost(ctx, postID); err != nil {
		return nil, err
	}

	comment, err := s.s.CreateComment(ctx, &storage.CreateCommentParams{
		ID:      uuid.New().String(),
		PostID:  postID,
		Author:  actorID,
		Content: content,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create comment: %w", err)
	}

	if err := s.s.IncPostComments(ctx, postID); err != nil {
		return nil, fmt.Errorf("failed to inc post comments: %w", err)
	}

	return comment, nil
}

func (s srv) ListComments(ctx context.Context, postID string) ([]*entities.Comment, error) {
	if err := validateIDs(postID); err != nil {
		return nil, err
	}

	if _, err := s.getPost(ctx, postID); err != nil {
		return nil, err
	}

	comments, err := s.s.ListComments(ctx, postID)
	if err != nil {
		return nil, fmt.Errorf("failed to list comments: %w", err)
	}

	ids := make([]string, len(comments))
	for i, c := range comments {
		ids[i] = c.ID
	}
	s.r.Comments(ids...)

	return comments, nil
}

func (s srv) GetComment(ctx context.Context, postID, commentID string) (*entities.Comment, error) {
	if err := validateIDs(postID, commentID); err != nil {
		return nil, err
	}

	if _, err := s.getPost(ctx, postID); err != nil {
		return nil, err
	}

	comment, err := s.getComment(ctx, postID, commentID)
	if err != nil {
		return nil, err
	}

	s.r.Comments(comment.ID)

	return comment, nil
}

func (s srv) EditComment(ctx context.Context, actorID, postID, commentID, content string) (*entities.Comment, error) {
	if err := validateIDs(actorID, postID, commentID); err != nil {
		return nil, err
	}

	if content == "" {
		return nil, service.ErrMissingContent
	}

	if _, err := s.getPost(ctx, postID); err != nil {
		return nil, err
	}

	comment, err := s.getComment(ctx, postID, commentID)
	if err != nil {
		return nil, err
	}

	if comment.Author != actorID {
		return nil, service.ErrCannotEditComment
	}

	updated, err := s.s.UpdateComment(ctx, commentID, content)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, service.ErrCommentNotFound
		}
		return nil, fmt.Errorf("failed to update comment: %w", err)
	}

	return updated, nil
}

func (s srv) DeleteComment(ctx context.Context, actorID, postID, commentID string) error {
	if err := validateIDs(actorID, postID, commentID); err != nil {
		return err
	}

	if _, err := s.getPost(ctx, postID); err != nil {
		return err
	}

	comment, err := s.getComment(ctx, postID, commentID)
	if err != nil {
		return err
	}

	if comment.Author != actorID {
		return service.ErrCannotDeleteComment
	}

	if err := s.s.DeleteComment(ctx, commentID); err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return service.ErrCommentNotFound
		}
		return fmt.Errorf("failed to delete comment: %w", err)
	}

	if err := s.s.DecPostComments(ctx, postID, 1); err != nil {
		return fmt.Errorf("failed to dec post comments: %w", err)
	}

	if err := s.s.DeleteRepliesByComment(ctx, []string{commentID}); err != nil {
		return fmt.Errorf("failed to delete comment replies: %w", err)
	}

	return nil
}

// reactToComment moves the actor to the wanted side of the reaction pair.
// An opposite reaction is retracted first, then the wanted one is added
// conditionally, so the actor holds at most one reaction at any point.
func (s srv) reactToComment(ctx context.Context, actorID, postID, commentID string, w entities.ReactionWeight) error {
	if err := validateIDs(actorID, postID, commentID); err != nil {
		return err
	}

	if _, err := s.getPost(ctx, postID); err != nil {
		return err
	}

	if _, err := s.getComment(ctx, postID, commentID); err != nil {
		return err
	}

	if err := s.s.RemoveCommentReaction(ctx, commentID, actorID, w.Opposite()); err != nil &&
		!errors.Is(err, storage.ErrNoReaction) {
		return fmt.Errorf("failed to remove opposite reaction: %w", err)
	}

	if err := s.s.AddCommentReaction(ctx, commentID, actorID, w); err != nil {
		if errors.Is(err, storage.ErrReactionExists) {
			if w == entities.Like {
				return service.ErrAlreadyLikedComment
			}
			return service.ErrAlreadyDislikedComment
		}
		return fmt.Errorf("failed to add reaction: %w", err)
	}

	return nil
}

func (s srv) unreactToComment(ctx context.Context, actorID, postID, commentID string, w entities.ReactionWeight) error {
	if err := validateIDs(actorID, postID, commentID); err != nil {
		return err
	}

	if _, err := s.getPost(ctx, postID); err != nil {
		return err
	}

	if _, err := s.getComment(ctx, postID, commentID); err != nil {
		return err
	}

	if err := s.s.RemoveCommentReaction(ctx, commentID, actorID, w); err != nil {
		if errors.Is(err, storage.ErrNoReaction) {
			if w == entities.Like {
				return service.ErrHaveNotLikedComment
			}
			return service.ErrHaveNotDislikedComment
		}
		return fmt.Errorf("failed to remove reaction: %w", err)
	}

	return nil
}

func (s srv) GetCommentReactions(ctx context.Context, userID string, commentIDs ...string) (map[string]entities.ReactionWeight, error) {
	if err := validateIDs(userID); err != nil {
		return nil, err
	}

	rr, err := s.s.GetCommentReactions(ctx, userID, commentIDs...)
	if err != nil {
		return nil, fmt.Errorf("failed to get comment reactions: %w", err)
	}

	return rr, nil
}

func (s srv) LikeComment(ctx context.Context, actorID, postID, commentID string) error {
	return s.reactToComment(ctx, actorID, postID, commentID, entities.Like)
}

func (s srv) DislikeComment(ctx context.Context, actorID, postID, commentID string) error {
	return s.reactToComment(ctx, actorID, postID, commentID, entities.Dislike)
}

func (s srv) UnlikeComment(ctx context.Context, actorID, postID, commentID string) error {
	return s.unreactToComment(ctx, actorID, postID, commentID, entities.Like)
}

func (s srv) UndislikeComment(ctx context.Context, actorID, postID, commentID string) error {
	return s.unreactToComment(ctx, actorID, postID, commentID, entities.Dislike)
}
