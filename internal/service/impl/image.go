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

func (s srv) UploadImage(ctx context.Context, actorID, postID, name, data string) (*entities.Image, error) {
	if err := validateIDs(actorID, postID); err != nil {
		return nil, err
	}

	if name == "" || data == "" {
		return nil, service.ErrMissingImage
	}

	if _, err := s.getPost(ctx, postID); err != nil {
		return nil, err
	}

	img, err := s.s.CreateImage(ctx, &storage.CreateImageParams{
		ID:     uuid.New().String(),
		Author: actorID,
		PostID: postID,
		Name:   name,
		Data:   data,
	})
	if err != nil {
		if errors.Is(err, storage.ErrAlreadyExists) {
			return nil, service.ErrImageExists
		}
		return nil, fmt.Errorf("failed to create image: %w", err)
	}

	return img, nil
}

func (s srv) ListPostImages(ctx context.Context, postID string) ([]*entities.Image, error) {
	if err := validateIDs(postID); err != nil {
		return nil, err
	}

	if _, err := s.getPost(ctx, postID); err != nil {
		return nil, err
	}

	images, err := s.s.ListPostImages(ctx, postID)
	if err != nil {
		return nil, fmt.Errorf("failed to list images: %w", err)
	}

	return images, nil
}

func (s srv) DeleteImage(ctx context.Context, actorID, postID, imageID string) error {
	if err := validateIDs(actorID, postID, imageID); err != nil {
		return err
	}

	if _, err := s.getPost(ctx, postID); err != nil {
		return err
	}

	img, err := s.s.GetImage(ctx, imageID)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return service.ErrImageNotFound
		}
		return fmt.Errorf("failed to get image: %w", err)
	}

	if img.Author != actorID {
		return service.ErrCannotDeleteImage
	}

	if err := s.s.DeleteImage(ctx, imageID); err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return service.ErrImageNotFound
		}
		return fmt.Errorf("failed to delete image: %w", err)
	}

	return nil
}
