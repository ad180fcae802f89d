package impl

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/inkwell-blog/inkwell/internal/entities"
	"github.com/inkwell-blog/inkwell/internal/service"
	"github.com/inkwell-blog/inkwell/internal/storage"
)

func (s srv) CreateUser(ctx context.Context, p service.CreateUserParams) (*entities.User, error) {
	if _, err := s.s.GetUserByEmail(ctx, p.Email); err == nil {
		return nil, service.ErrEmailInUse
	} else if !errors.Is(err, storage.ErrNotFound) {
		return nil, fmt.Errorf("failed to check email: %w", err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(p.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	u, err := s.s.CreateUser(ctx, &storage.CreateUserParams{
		ID:           uuid.New().String(),
		Username:     p.Username,
		Email:        p.Email,
		Name:         p.Name,
		Lastname:     p.Lastname,
		PasswordHash: string(hash),
	})
	if err != nil {
		if errors.Is(err, storage.ErrAlreadyExists) {
			return nil, service.ErrUsernameInUse
		}
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	return u, nil
}

func (s srv) VerifyCredentials(ctx context.Context, email, password string) (*entities.User, error) {
	u, err := s.s.GetUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, service.ErrIncorrectCredentials
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password)); err != nil {
		return nil, service.ErrIncorrectCredentials
	}

	return u, nil
}

func (s srv) GetUser(ctx context.Context, userID string) (*entities.User, error) {
	if err := validateIDs(userID); err != nil {
		return nil, err
	}

	return s.getUser(ctx, userID)
}

func (s srv) UpdateUser(ctx context.Context, userID string, p service.UpdateUserParams) (*entities.User, error) {
	if err := validateIDs(userID); err != nil {
		return nil, err
	}

	u, err := s.s.UpdateUser(ctx, userID, &storage.UpdateUserParams{
		Name:     p.Name,
		Lastname: p.Lastname,
	})
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, service.ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to update user: %w", err)
	}

	return u, nil
}

// DeleteUser erases the user and everything the user touched. The order is
// chosen so a crash midway leaves overcounted counters at worst, never a
// child pointing at a deleted parent:
//
//  1. the user's posts go first, with their comments, replies and images;
//  2. the user's comments on surviving posts, with their replies and the
//     parents' comment counters;
//  3. the user's replies on surviving comments;
//  4. the user's reactions, retracted with counter decrements;
//  5. the user's remaining images and the user row itself.
func (s srv) DeleteUser(ctx context.Context, userID string) error {
	if err := validateIDs(userID); err != nil {
		return err
	}

	if _, err := s.getUser(ctx, userID); err != nil {
		return err
	}

	postIDs, err := s.s.DeletePostsByAuthor(ctx, userID)
	if err != nil {
		return fmt.Errorf("failed to delete posts: %w", err)
	}

	commentIDs, err := s.s.DeleteCommentsByPost(ctx, postIDs)
	if err != nil {
		return fmt.Errorf("failed to delete posts' comments: %w", err)
	}

	if err := s.s.DeleteRepliesByComment(ctx, commentIDs); err != nil {
		return fmt.Errorf("failed to delete posts' replies: %w", err)
	}

	if err := s.s.DeleteImagesByPost(ctx, postIDs); err != nil {
		return fmt.Errorf("failed to delete posts' images: %w", err)
	}

	comments, err := s.s.DeleteCommentsByAuthor(ctx, userID)
	if err != nil {
		return fmt.Errorf("failed to delete comments: %w", err)
	}

	authored := make([]string, len(comments))
	perPost := make(map[string]uint32)
	for i, c := range comments {
		authored[i] = c.ID
		perPost[c.PostID]++
	}

	if err := s.s.DeleteRepliesByComment(ctx, authored); err != nil {
		return fmt.Errorf("failed to delete comments' replies: %w", err)
	}

	for postID, n := range perPost {
		if err := s.s.DecPostComments(ctx, postID, n); err != nil {
			return fmt.Errorf("failed to dec post comments: %w", err)
		}
	}

	if err := s.s.DeleteRepliesByAuthor(ctx, userID); err != nil {
		return fmt.Errorf("failed to delete replies: %w", err)
	}

	if err := s.s.RetractPostLikes(ctx, userID); err != nil {
		return fmt.Errorf("failed to retract post likes: %w", err)
	}

	if err := s.s.RetractCommentReactions(ctx, userID); err != nil {
		return fmt.Errorf("failed to retract comment reactions: %w", err)
	}

	if err := s.s.RetractReplyReactions(ctx, userID); err != nil {
		return fmt.Errorf("failed to retract reply reactions: %w", err)
	}

	if err := s.s.DeleteImagesByAuthor(ctx, userID); err != nil {
		return fmt.Errorf("failed to delete images: %w", err)
	}

	if err := s.s.DeleteUser(ctx, userID); err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return service.ErrUserNotFound
		}
		return fmt.Errorf("failed to delete user: %w", err)
	}

	return nil
}
