// Package storage contains a storage interface.
package storage

import (
	"context"
	"fmt"

	"github.com/inkwell-blog/inkwell/internal/entities"
)

//go:generate mockgen -destination=./mock/storage.go -package=mock -source=storage.go

// ErrNotFound ...
var ErrNotFound = fmt.Errorf("not found")

// ErrAlreadyExists is returned when an insert violates a uniqueness rule
// (username, email, image name).
var ErrAlreadyExists = fmt.Errorf("already exists")

// ErrReactionExists is returned by a conditional reaction insert whose
// predicate ("actor not in the membership set") does not hold.
var ErrReactionExists = fmt.Errorf("reaction already exists")

// ErrNoReaction is returned by a conditional reaction removal whose
// predicate ("actor in the membership set") does not hold.
var ErrNoReaction = fmt.Errorf("reaction does not exist")

// Storage provides methods for interacting with database.
//
// Every Add*/Remove* reaction method is a conditional atomic update: the
// membership change and the counter change are applied by a single statement,
// or not at all. Batch methods (Retract*, Delete*By*) are multi-row and
// carry no cross-row atomicity guarantee.
type Storage interface {
	CreateUser(ctx context.Context, p *CreateUserParams) (*entities.User, error)
	GetUser(ctx context.Context, id string) (*entities.User, error)
	GetUserByEmail(ctx context.Context, email string) (*entities.User, error)
	UpdateUser(ctx context.Context, id string, p *UpdateUserParams) (*entities.User, error)
	DeleteUser(ctx context.Context, id string) error

	CreatePost(ctx context.Context, p *CreatePostParams) (*entities.Post, error)
	GetPost(ctx context.Context, id string) (*entities.Post, error)
	ListPosts(ctx context.Context) ([]*entities.Post, error)
	UpdatePost(ctx context.Context, id string, p *UpdatePostParams) (*entities.Post, error)
	DeletePost(ctx context.Context, id string) error
	DeletePostsByAuthor(ctx context.Context, author string) ([]string, error)

	AddPostLike(ctx context.Context, postID, userID string) error
	RemovePostLike(ctx context.Context, postID, userID string) error
	GetPostLikes(ctx context.Context, likedBy string, ids ...string) (map[string]bool, error)
	RetractPostLikes(ctx context.Context, userID string) error

	IncPostComments(ctx context.Context, id string) error
	DecPostComments(ctx context.Context, id string, n uint32) error

	CreateComment(ctx context.Context, p *CreateCommentParams) (*entities.Comment, error)
	GetComment(ctx context.Context, id string) (*entities.Comment, error)
	ListComments(ctx context.Context, postID string) ([]*entities.Comment, error)
	UpdateComment(ctx context.Context, id, content string) (*entities.Comment, error)
	DeleteComment(ctx context.Context, id string) error
	DeleteCommentsByPost(ctx context.Context, postIDs []string) ([]string, error)
	DeleteCommentsByAuthor(ctx context.Context, author string) ([]*entities.Comment, error)

	AddCommentReaction(ctx context.Context, commentID, userID string, w entities.ReactionWeight) error
	RemoveCommentReaction(ctx context.Context, commentID, userID string, w entities.ReactionWeight) error
	GetCommentReactions(ctx context.Context, reactedBy string, ids ...string) (map[string]entities.ReactionWeight, error)
	RetractCommentReactions(ctx context.Context, userID string) error

	CreateReply(ctx context.Context, p *CreateReplyParams) (*entities.Reply, error)
	GetReply(ctx context.Context, id string) (*entities.Reply, error)
	ListReplies(ctx context.Context, commentID string) ([]*entities.Reply, error)
	DeleteReply(ctx context.Context, id string) error
	DeleteRepliesByComment(ctx context.Context, commentIDs []string) error
	DeleteRepliesByAuthor(ctx context.Context, author string) error

	AddReplyReaction(ctx context.Context, replyID, userID string, w entities.ReactionWeight) error
	RemoveReplyReaction(ctx context.Context, replyID, userID string, w entities.ReactionWeight) error
	RetractReplyReactions(ctx context.Context, userID string) error

	CreateImage(ctx context.Context, p *CreateImageParams) (*entities.Image, error)
	GetImage(ctx context.Context, id string) (*entities.Image, error)
	ListPostImages(ctx context.Context, postID string) ([]*entities.Image, error)
	DeleteImage(ctx context.Context, id string) error
	DeleteImagesByPost(ctx context.Context, postIDs []string) error
	DeleteImagesByAuthor(ctx context.Context, author string) error

	AddPostImpressions(ctx context.Context, ids ...string) error
	AddCommentImpressions(ctx context.Context, ids ...string) error
	AddReplyImpressions(ctx context.Context, ids ...string) error

	GetPlatformStats(ctx context.Context) (*PlatformStats, error)
}

// CreateUserParams ...
type CreateUserParams struct {
	ID           string
	Username     string
	Email        string
	Name         string
	Lastname     string
	PasswordHash string
}

// UpdateUserParams ...
type UpdateUserParams struct {
	Name     string
	Lastname string
}

// CreatePostParams ...
type CreatePostParams struct {
	ID        string
	Author    string
	ContentPt string
	ContentEn string
}

// UpdatePostParams ...
type UpdatePostParams struct {
	ContentPt string
	ContentEn string
}

// CreateCommentParams ...
type CreateCommentParams struct {
	ID      string
	PostID  string
	Author  string
	Content string
}

// CreateReplyParams ...
type CreateReplyParams struct {
	ID        string
	CommentID string
	Author    string
	Mention   *string
	Content   string
}

// CreateImageParams ...
type CreateImageParams struct {
	ID     string
	Author string
	PostID string
	Name   string
	Data   string
}

// PlatformStats ...
type PlatformStats struct {
	Users    uint32
	Posts    uint32
	Comments uint32
	Replies  uint32
}
