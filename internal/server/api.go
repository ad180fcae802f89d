package server

import (
	"time"

	"github.com/inkwell-blog/inkwell/internal/entities"
	"github.com/inkwell-blog/inkwell/internal/storage"
)

// Error ...
// swagger:model
type Error struct {
	Error string `json:"error"`
	Code  string `json:"code,omitempty"`
}

// RegisterRequest ...
type RegisterRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Name     string `json:"name"`
	Lastname string `json:"lastname"`
	Password string `json:"password"`
}

// LoginRequest ...
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// TokenResponse ...
type TokenResponse struct {
	Token string `json:"token"`
}

// User ...
type User struct {
	ID        string    `json:"id"`
	Username  string    `json:"username"`
	Email     string    `json:"email"`
	Name      string    `json:"name"`
	Lastname  string    `json:"lastname"`
	CreatedAt time.Time `json:"created_at"`
}

// UpdateUserRequest ...
type UpdateUserRequest struct {
	Name     string `json:"name"`
	Lastname string `json:"lastname"`
}

// PostRequest ...
type PostRequest struct {
	ContentPt string `json:"content_pt"`
	ContentEn string `json:"content_en"`
}

// Post ...
type Post struct {
	ID          string    `json:"id"`
	Author      string    `json:"author"`
	ContentPt   string    `json:"content_pt"`
	ContentEn   string    `json:"content_en"`
	Likes       uint32    `json:"likes"`
	Comments    uint32    `json:"comments"`
	Impressions uint32    `json:"impressions"`
	Liked       *bool     `json:"liked,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// ListPostsResponse ...
// swagger:model
type ListPostsResponse struct {
	Posts []Post `json:"posts"`
}

// CommentRequest ...
type CommentRequest struct {
	Content string `json:"content"`
}

// Comment ...
type Comment struct {
	ID          string    `json:"id"`
	PostID      string    `json:"post_id"`
	Author      string    `json:"author"`
	Content     string    `json:"content"`
	Likes       uint32    `json:"likes"`
	Dislikes    uint32    `json:"dislikes"`
	Impressions uint32    `json:"impressions"`
	// Reaction is 1 for a like, -1 for a dislike of the requestedBy user.
	Reaction  *int8     `json:"reaction,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// ReplyRequest ...
type ReplyRequest struct {
	Content string  `json:"content"`
	Mention *string `json:"mention,omitempty"`
}

// Reply ...
type Reply struct {
	ID          string    `json:"id"`
	CommentID   string    `json:"comment_id"`
	Author      string    `json:"author"`
	Mention     *string   `json:"mention,omitempty"`
	Content     string    `json:"content"`
	Likes       uint32    `json:"likes"`
	Dislikes    uint32    `json:"dislikes"`
	Impressions uint32    `json:"impressions"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// UploadImageRequest ...
type UploadImageRequest struct {
	Name string `json:"name"`
	Data string `json:"data"`
}

// Image ...
type Image struct {
	ID        string    `json:"id"`
	Author    string    `json:"author"`
	PostID    string    `json:"post_id"`
	Name      string    `json:"name"`
	Data      string    `json:"data"`
	CreatedAt time.Time `json:"created_at"`
}

// StatsResponse ...
// swagger:model
type StatsResponse struct {
	Users    uint32 `json:"users"`
	Posts    uint32 `json:"posts"`
	Comments uint32 `json:"comments"`
	Replies  uint32 `json:"replies"`
}

func toUser(u *entities.User) User {
	return User{
		ID:        u.ID,
		Username:  u.Username,
		Email:     u.Email,
		Name:      u.Name,
		Lastname:  u.Lastname,
		CreatedAt: u.CreatedAt,
	}
}

func toPost(p *entities.Post, likes map[string]bool) Post {
	out := Post{
		ID:          p.ID,
		Author:      p.Author,
		ContentPt:   p.ContentPt,
		ContentEn:   p.ContentEn,
		Likes:       p.Likes,
		Comments:    p.Comments,
		Impressions: p.Impressions,
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
	}

	if likes != nil {
		liked := likes[p.ID]
		out.Liked = &liked
	}

	return out
}

func toComment(c *entities.Comment, reactions map[string]entities.ReactionWeight) Comment {
	out := Comment{
		ID:          c.ID,
		PostID:      c.PostID,
		Author:      c.Author,
		Content:     c.Content,
		Likes:       c.Likes,
		Dislikes:    c.Dislikes,
		Impressions: c.Impressions,
		CreatedAt:   c.CreatedAt,
		UpdatedAt:   c.UpdatedAt,
	}

	if w, ok := reactions[c.ID]; ok {
		r := int8(w)
		out.Reaction = &r
	}

	return out
}

func toReply(r *entities.Reply) Reply {
	return Reply{
		ID:          r.ID,
		CommentID:   r.CommentID,
		Author:      r.Author,
		Mention:     r.Mention,
		Content:     r.Content,
		Likes:       r.Likes,
		Dislikes:    r.Dislikes,
		Impressions: r.Impressions,
		CreatedAt:   r.CreatedAt,
		UpdatedAt:   r.UpdatedAt,
	}
}

func toImage(i *entities.Image) Image {
	return Image{
		ID:        i.ID,
		Author:    i.Author,
		PostID:    i.PostID,
		Name:      i.Name,
		Data:      i.Data,
		CreatedAt: i.CreatedAt,
	}
}

func toStats(s *storage.PlatformStats) StatsResponse {
	return StatsResponse{
		Users:    s.Users,
		Posts:    s.Posts,
		Comments: s.Comments,
		Replies:  s.Replies,
	}
}
