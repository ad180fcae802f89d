// Package entities contains main entities of service.
package entities

import (
	"time"
)

// Post is a blog post with denormalized interaction counters.
// Likes always equals the cardinality of the post_like membership set,
// Comments always equals the count of the post's comments.
type Post struct {
	ID          string
	Author      string
	ContentPt   string
	ContentEn   string
	Likes       uint32
	Comments    uint32
	Impressions uint32
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// Comment belongs to a post. A user holds at most one of {like, dislike} on it.
type Comment struct {
	ID          string
	PostID      string
	Author      string
	Content     string
	Likes       uint32
	Dislikes    uint32
	Impressions uint32
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// Reply belongs to a comment. Mention is a weak reference to the user being
// replied to, it may outlive that user until the deletion cascade retracts it.
type Reply struct {
	ID          string
	CommentID   string
	Author      string
	Mention     *string
	Content     string
	Likes       uint32
	Dislikes    uint32
	Impressions uint32
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// User ...
type User struct {
	ID           string
	Username     string
	Email        string
	Name         string
	Lastname     string
	PasswordHash string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// Image is a post attachment, removed together with its post or author.
type Image struct {
	ID        string
	Author    string
	PostID    string
	Name      string
	Data      string
	CreatedAt time.Time
}

// ReactionWeight ...
type ReactionWeight int8

const (
	// Like ...
	Like ReactionWeight = 1
	// Dislike ...
	Dislike ReactionWeight = -1
)

// Opposite returns the mutually exclusive counterpart of the weight.
func (w ReactionWeight) Opposite() ReactionWeight {
	return -w
}
