// Package service contains interface for service business-logic.
package service

import (
	"context"

	"github.com/inkwell-blog/inkwell/internal/entities"
	"github.com/inkwell-blog/inkwell/internal/storage"
)

// ImpressionRecorder accepts ids of entities that were just returned by a
// read. Recording is best-effort: implementations must never block the
// caller and may drop batches under pressure.
type ImpressionRecorder interface {
	Posts(ids ...string)
	Comments(ids ...string)
	Replies(ids ...string)
}

// Service is the interaction engine. Mutating operations validate ids,
// check existence along the Post→Comment→Reply chain, authorize the actor
// and then apply one or more conditional atomic updates on storage.
type Service interface {
	CreateUser(ctx context.Context, p CreateUserParams) (*entities.User, error)
	VerifyCredentials(ctx context.Context, email, password string) (*entities.User, error)
	GetUser(ctx context.Context, userID string) (*entities.User, error)
	UpdateUser(ctx context.Context, userID string, p UpdateUserParams) (*entities.User, error)
	DeleteUser(ctx context.Context, userID string) error

	CreatePost(ctx context.Context, authorID string, p PostContent) (*entities.Post, error)
	GetPost(ctx context.Context, postID string) (*entities.Post, error)
	ListPosts(ctx context.Context) ([]*entities.Post, error)
	UpdatePost(ctx context.Context, actorID, postID string, p PostContent) (*entities.Post, error)
	DeletePost(ctx context.Context, actorID, postID string) error
	LikePost(ctx context.Context, actorID, postID string) error
	UnlikePost(ctx context.Context, actorID, postID string) error
	GetPostLikes(ctx context.Context, userID string, postIDs ...string) (map[string]bool, error)

	CreateComment(ctx context.Context, actorID, postID, content string) (*entities.Comment, error)
	ListComments(ctx context.Context, postID string) ([]*entities.Comment, error)
	GetComment(ctx context.Context, postID, commentID string) (*entities.Comment, error)
	EditComment(ctx context.Context, actorID, postID, commentID, content string) (*entities.Comment, error)
	DeleteComment(ctx context.Context, actorID, postID, commentID string) error
	LikeComment(ctx context.Context, actorID, postID, commentID string) error
	DislikeComment(ctx context.Context, actorID, postID, commentID string) error
	UnlikeComment(ctx context.Context, actorID, postID, commentID string) error
	UndislikeComment(ctx context.Context, actorID, postID, commentID string) error
	GetCommentReactions(ctx context.Context, userID string, commentIDs ...string) (map[string]entities.ReactionWeight, error)

	CreateReply(ctx context.Context, actorID, postID, commentID string, mention *string, content string) (*entities.Reply, error)
	ListReplies(ctx context.Context, postID, commentID string) ([]*entities.Reply, error)
	GetReply(ctx context.Context, postID, commentID, replyID string) (*entities.Reply, error)
	DeleteReply(ctx context.Context, actorID, postID, commentID, replyID string) error
	LikeReply(ctx context.Context, actorID, postID, commentID, replyID string) error
	DislikeReply(ctx context.Context, actorID, postID, commentID, replyID string) error
	UnlikeReply(ctx context.Context, actorID, postID, commentID, replyID string) error
	UndislikeReply(ctx context.Context, actorID, postID, commentID, replyID string) error

	UploadImage(ctx context.Context, actorID, postID, name, data string) (*entities.Image, error)
	ListPostImages(ctx context.Context, postID string) ([]*entities.Image, error)
	DeleteImage(ctx context.Context, actorID, postID, imageID string) error

	GetPlatformStats(ctx context.Context) (*storage.PlatformStats, error)
}

// CreateUserParams ...
type CreateUserParams struct {
	Username string
	Email    string
	Name     string
	Lastname string
	Password string
}

// UpdateUserParams ...
type UpdateUserParams struct {
	Name     string
	Lastname string
}

// PostContent carries the post's locale variants.
type PostContent struct {
	ContentPt string
	ContentEn string
}
