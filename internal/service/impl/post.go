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

func (s srv) CreatePost(ctx context.Context, authorID string, p service.PostContent) (*entities.Post, error) {
	if err := validateIDs(authorID); err != nil {
		return nil, err
	}

	if p.ContentPt == "" && p.ContentEn == "" {
		return nil, service.ErrMissingContent
	}

	if _, err := s.getUser(ctx, authorID); err != nil {
		return nil, err
	}

	post, err := s.s.CreatePost(ctx, &storage.CreatePostParams{
		ID:        uuid.New().String(),
		Author:    authorID,
		ContentPt: p.ContentPt,
		ContentEn: p.ContentEn,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create post: %w", err)
	}

	return post, nil
}

func (s srv) GetPost(ctx context.Context, postID string) (*entities.Post, error) {
	if err := validateIDs(postID); err != nil {
		return nil, err
	}

	post, err := s.getPost(ctx, postID)
	if err != nil {
		return nil, err
	}

	s.r.Posts(post.ID)

	return post, nil
}

func (s srv) ListPosts(ctx context.Context) ([]*entities.Post, error) {
	posts, err := s.s.ListPosts(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list posts: %w", err)
	}

	ids := make([]string, len(posts))
	for i, p := range posts {
		ids[i] = p.ID
	}
	s.r.Posts(ids...)

	return posts, nil
}

func (s srv) UpdatePost(ctx context.Context, actorID, postID string, p service.PostContent) (*entities.Post, error) {
	if err := validateIDs(actorID, postID); err != nil {
		return nil, err
	}

	post, err := s.getPost(ctx, postID)
	if err != nil {
		return nil, err
	}

	if post.Author != actorID {
		return nil, service.ErrCannotEditPost
	}

	updated, err := s.s.UpdatePost(ctx, postID, &storage.UpdatePostParams{
		ContentPt: p.ContentPt,
		ContentEn: p.ContentEn,
	})
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, service.ErrPostNotFound
		}
		return nil, fmt.Errorf("failed to update post: %w", err)
	}

	return updated, nil
}

// DeletePost removes the post and cascades over its comments, replies,
// reactions and images. The post row goes first so readers can not observe
// children of a post that is about to disappear.
func (s srv) DeletePost(ctx context.Context, actorID, postID string) error {
	if err := validateIDs(actorID, postID); err != nil {
		return err
	}

	post, err := s.getPost(ctx, postID)
	if err != nil {
		return err
	}

	if post.Author != actorID {
		return service.ErrCannotDeletePost
	}

	if err := s.s.DeletePost(ctx, postID); err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return service.ErrPostNotFound
		}
		return fmt.Errorf("failed to delete post: %w", err)
	}

	commentIDs, err := s.s.DeleteCommentsByPost(ctx, []string{postID})
	if err != nil {
		return fmt.Errorf("failed to delete post comments: %w", err)
	}

	if err := s.s.DeleteRepliesByComment(ctx, commentIDs); err != nil {
		return fmt.Errorf("failed to delete post replies: %w", err)
	}

	if err := s.s.DeleteImagesByPost(ctx, []string{postID}); err != nil {
		return fmt.Errorf("failed to delete post images: %w", err)
	}

	return nil
}

func (s srv) LikePost(ctx context.Context, actorID, postID string) error {
	if err := validateIDs(actorID, postID); err != nil {
		return err
	}

	if _, err := s.getPost(ctx, postID); err != nil {
		return err
	}

	if err := s.s.AddPostLike(ctx, postID, actorID); err != nil {
		if errors.Is(err, storage.ErrReactionExists) {
			return service.ErrAlreadyLikedPost
		}
		return fmt.Errorf("failed to add like: %w", err)
	}

	return nil
}

func (s srv) GetPostLikes(ctx context.Context, userID string, postIDs ...string) (map[string]bool, error) {
	if err := validateIDs(userID); err != nil {
		return nil, err
	}

	likes, err := s.s.GetPostLikes(ctx, userID, postIDs...)
	if err != nil {
		return nil, fmt.Errorf("failed to get post likes: %w", err)
	}

	return likes, nil
}

func (s srv) UnlikePost(ctx context.Context, actorID, postID string) error {
	if err := validateIDs(actorID, postID); err != nil {
		return err
	}

	if _, err := s.getPost(ctx, postID); err != nil {
		return err
	}

	if err := s.s.RemovePostLike(ctx, postID, actorID); err != nil {
		if errors.Is(err, storage.ErrNoReaction) {
			return service.ErrHaveNotLikedPost
		}
		return fmt.Errorf("failed to remove like: %w", err)
	}

	return nil
}
