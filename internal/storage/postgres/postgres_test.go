//+build integration

package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"sync"
	"testing"

	m "github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/inkwell-blog/inkwell/internal/entities"
	"github.com/inkwell-blog/inkwell/internal/storage"
)

var (
	db  *sql.DB
	ctx = context.Background()
	s   storage.Storage
)

func TestMain(m *testing.M) {
	shutdown := setup()

	s = New(db)

	code := m.Run()
	shutdown()
	os.Exit(code)
}

func setup() func() {
	req := testcontainers.ContainerRequest{
		Image:        "postgres:12",
		Env:          map[string]string{"POSTGRES_PASSWORD": "root"},
		ExposedPorts: []string{"5432/tcp"},
		WaitingFor:   wait.ForListeningPort("5432/tcp"),
	}
	c, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: req,
	})
	if err != nil {
		logrus.WithError(err).Fatalf("failed to create container")
	}

	if err := c.Start(ctx); err != nil {
		logrus.WithError(err).Fatal("failed to start container")
	}

	host, err := c.Host(ctx)
	if err != nil {
		logrus.WithError(err).Fatal("failed to get host")
	}

	port, err := c.MappedPort(ctx, "5432")
	if err != nil {
		logrus.WithError(err).Fatal("failed to map port")
	}

	dsn := fmt.Sprintf("host=%s port=%d user=postgres password=root sslmode=disable", host, port.Int())

	db, err = sql.Open("postgres", dsn)
	if err != nil {
		logrus.WithError(err).Fatal("failed to open connection")
	}

	if err := db.Ping(); err != nil {
		logrus.WithError(err).Fatal("failed to ping postgres")
	}

	shutdownFn := func() {
		if c != nil {
			c.Terminate(ctx)
		}
	}

	migrate("postgres", "root", host, "postgres", port.Int())

	return shutdownFn
}

func migrate(username, password, hostname, dbname string, port int) {
	_, currFile, _, ok := runtime.Caller(0)
	if !ok {
		logrus.Fatal("failed to get current file location")
	}

	migrations := filepath.Join(currFile, "../../../../scripts/migrations/postgres/")

	migrator, err := m.New(
		fmt.Sprintf("file://%s", migrations),
		fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=disable",
			username, password, hostname, port, dbname),
	)
	if err != nil {
		logrus.WithError(err).Fatal("failed to create migrator")
	}
	defer migrator.Close()

	if err := migrator.Up(); err != nil {
		logrus.WithError(err).Fatal("failed to migrate")
	}
}

func cleanup(t *testing.T) {
	for _, table := range []string{"reply_reaction", "reply", "comment_reaction", "comment", "post_like", "image", "post", `"user"`} {
		_, err := db.ExecContext(ctx, `DELETE FROM `+table)
		require.NoError(t, err)
	}
}

func createTestUser(t *testing.T) *entities.User {
	id := uuid.New().String()
	u, err := s.CreateUser(ctx, &storage.CreateUserParams{
		ID:           id,
		Username:     "user-" + id,
		Email:        id + "@example.com",
		Name:         "name",
		Lastname:     "lastname",
		PasswordHash: "hash",
	})
	require.NoError(t, err)
	return u
}

func createTestPost(t *testing.T, author string) *entities.Post {
	p, err := s.CreatePost(ctx, &storage.CreatePostParams{
		ID:        uuid.New().String(),
		Author:    author,
		ContentPt: "ola",
		ContentEn: "hello",
	})
	require.NoError(t, err)
	return p
}

func createTestComment(t *testing.T, postID, author string) *entities.Comment {
	c, err := s.CreateComment(ctx, &storage.CreateCommentParams{
		ID:      uuid.New().String(),
		PostID:  postID,
		Author:  author,
		Content: "comment",
	})
	require.NoError(t, err)
	return c
}

func createTestReply(t *testing.T, commentID, author string) *entities.Reply {
	r, err := s.CreateReply(ctx, &storage.CreateReplyParams{
		ID:        uuid.New().String(),
		CommentID: commentID,
		Author:    author,
		Content:   "reply",
	})
	require.NoError(t, err)
	return r
}

func TestPg_CreateUser(t *testing.T) {
	defer cleanup(t)

	u := createTestUser(t)
	assert.Equal(t, "name", u.Name)
	assert.False(t, u.CreatedAt.IsZero())

	got, err := s.GetUser(ctx, u.ID)
	require.NoError(t, err)
	assert.Equal(t, u, got)

	got, err = s.GetUserByEmail(ctx, u.Email)
	require.NoError(t, err)
	assert.Equal(t, u, got)

	_, err = s.CreateUser(ctx, &storage.CreateUserParams{
		ID:       uuid.New().String(),
		Username: u.Username,
		Email:    "other@example.com",
	})
	assert.True(t, errors.Is(err, storage.ErrAlreadyExists))
}

func TestPg_GetUser_NotFound(t *testing.T) {
	defer cleanup(t)

	_, err := s.GetUser(ctx, uuid.New().String())
	assert.True(t, errors.Is(err, storage.ErrNotFound))

	_, err = s.GetUserByEmail(ctx, "missing@example.com")
	assert.True(t, errors.Is(err, storage.ErrNotFound))
}

func TestPg_UpdateUser(t *testing.T) {
	defer cleanup(t)

	u := createTestUser(t)

	got, err := s.UpdateUser(ctx, u.ID, &storage.UpdateUserParams{Name: "new", Lastname: "newer"})
	require.NoError(t, err)
	assert.Equal(t, "new", got.Name)
	assert.Equal(t, "newer", got.Lastname)

	_, err = s.UpdateUser(ctx, uuid.New().String(), &storage.UpdateUserParams{})
	assert.True(t, errors.Is(err, storage.ErrNotFound))
}

func TestPg_CreatePost(t *testing.T) {
	defer cleanup(t)

	u := createTestUser(t)
	p := createTestPost(t, u.ID)

	assert.Equal(t, "ola", p.ContentPt)
	assert.Equal(t, "hello", p.ContentEn)
	assert.Zero(t, p.Likes)
	assert.Zero(t, p.Comments)
	assert.Zero(t, p.Impressions)

	got, err := s.GetPost(ctx, p.ID)
	require.NoError(t, err)
	assert.Equal(t, p, got)
}

func TestPg_ListPosts(t *testing.T) {
	defer cleanup(t)

	u := createTestUser(t)
	first := createTestPost(t, u.ID)
	second := createTestPost(t, u.ID)

	pp, err := s.ListPosts(ctx)
	require.NoError(t, err)
	require.Len(t, pp, 2)

	// newest first
	ids := []string{pp[0].ID, pp[1].ID}
	assert.Contains(t, ids, first.ID)
	assert.Contains(t, ids, second.ID)
	assert.False(t, pp[0].CreatedAt.Before(pp[1].CreatedAt))
}

func TestPg_DeletePost(t *testing.T) {
	defer cleanup(t)

	u := createTestUser(t)
	p := createTestPost(t, u.ID)

	require.NoError(t, s.AddPostLike(ctx, p.ID, u.ID))
	require.NoError(t, s.DeletePost(ctx, p.ID))

	_, err := s.GetPost(ctx, p.ID)
	assert.True(t, errors.Is(err, storage.ErrNotFound))

	// membership rows go with the post
	var c int
	require.NoError(t, db.QueryRowContext(ctx, `SELECT COUNT(*) FROM post_like`).Scan(&c))
	assert.Zero(t, c)

	assert.True(t, errors.Is(s.DeletePost(ctx, p.ID), storage.ErrNotFound))
}

func TestPg_AddPostLike(t *testing.T) {
	defer cleanup(t)

	u := createTestUser(t)
	p := createTestPost(t, u.ID)

	require.NoError(t, s.AddPostLike(ctx, p.ID, u.ID))

	got, err := s.GetPost(ctx, p.ID)
	require.NoError(t, err)
	assert.EqualValues(t, 1, got.Likes)

	// second like from the same user must not pass
	assert.True(t, errors.Is(s.AddPostLike(ctx, p.ID, u.ID), storage.ErrReactionExists))

	got, err = s.GetPost(ctx, p.ID)
	require.NoError(t, err)
	assert.EqualValues(t, 1, got.Likes)
}

func TestPg_AddPostLike_Concurrent(t *testing.T) {
	defer cleanup(t)

	u := createTestUser(t)
	p := createTestPost(t, u.ID)

	const n = 16

	var wg sync.WaitGroup
	var mu sync.Mutex
	var succeeded int

	for i := 0; i < n; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()

			err := s.AddPostLike(ctx, p.ID, u.ID)
			if err == nil {
				mu.Lock()
				succeeded++
				mu.Unlock()
				return
			}
			assert.True(t, errors.Is(err, storage.ErrReactionExists))
		}()
	}
	wg.Wait()

	assert.Equal(t, 1, succeeded)

	got, err := s.GetPost(ctx, p.ID)
	require.NoError(t, err)
	assert.EqualValues(t, 1, got.Likes)
}

func TestPg_RemovePostLike(t *testing.T) {
	defer cleanup(t)

	u := createTestUser(t)
	p := createTestPost(t, u.ID)

	assert.True(t, errors.Is(s.RemovePostLike(ctx, p.ID, u.ID), storage.ErrNoReaction))

	require.NoError(t, s.AddPostLike(ctx, p.ID, u.ID))
	require.NoError(t, s.RemovePostLike(ctx, p.ID, u.ID))

	got, err := s.GetPost(ctx, p.ID)
	require.NoError(t, err)
	assert.Zero(t, got.Likes)
}

func TestPg_GetPostLikes(t *testing.T) {
	defer cleanup(t)

	u := createTestUser(t)
	liked := createTestPost(t, u.ID)
	other := createTestPost(t, u.ID)

	require.NoError(t, s.AddPostLike(ctx, liked.ID, u.ID))

	likes, err := s.GetPostLikes(ctx, u.ID, liked.ID, other.ID)
	require.NoError(t, err)
	assert.True(t, likes[liked.ID])
	assert.False(t, likes[other.ID])
}

func TestPg_RetractPostLikes(t *testing.T) {
	defer cleanup(t)

	u := createTestUser(t)
	u2 := createTestUser(t)
	p1 := createTestPost(t, u.ID)
	p2 := createTestPost(t, u.ID)

	require.NoError(t, s.AddPostLike(ctx, p1.ID, u.ID))
	require.NoError(t, s.AddPostLike(ctx, p2.ID, u.ID))
	require.NoError(t, s.AddPostLike(ctx, p2.ID, u2.ID))

	require.NoError(t, s.RetractPostLikes(ctx, u.ID))

	got, err := s.GetPost(ctx, p1.ID)
	require.NoError(t, err)
	assert.Zero(t, got.Likes)

	got, err = s.GetPost(ctx, p2.ID)
	require.NoError(t, err)
	assert.EqualValues(t, 1, got.Likes)
}

func TestPg_PostCommentsCounter(t *testing.T) {
	defer cleanup(t)

	u := createTestUser(t)
	p := createTestPost(t, u.ID)

	require.NoError(t, s.IncPostComments(ctx, p.ID))
	require.NoError(t, s.IncPostComments(ctx, p.ID))

	got, err := s.GetPost(ctx, p.ID)
	require.NoError(t, err)
	assert.EqualValues(t, 2, got.Comments)

	// decrement is clamped at zero
	require.NoError(t, s.DecPostComments(ctx, p.ID, 5))

	got, err = s.GetPost(ctx, p.ID)
	require.NoError(t, err)
	assert.Zero(t, got.Comments)

	assert.True(t, errors.Is(s.IncPostComments(ctx, uuid.New().String()), storage.ErrNotFound))
}

func TestPg_CommentReactions(t *testing.T) {
	defer cleanup(t)

	u := createTestUser(t)
	p := createTestPost(t, u.ID)
	c := createTestComment(t, p.ID, u.ID)

	require.NoError(t, s.AddCommentReaction(ctx, c.ID, u.ID, entities.Like))

	got, err := s.GetComment(ctx, c.ID)
	require.NoError(t, err)
	assert.EqualValues(t, 1, got.Likes)
	assert.Zero(t, got.Dislikes)

	// one reaction per user, no matter the weight
	assert.True(t, errors.Is(s.AddCommentReaction(ctx, c.ID, u.ID, entities.Dislike), storage.ErrReactionExists))

	// removal is weight-specific
	assert.True(t, errors.Is(s.RemoveCommentReaction(ctx, c.ID, u.ID, entities.Dislike), storage.ErrNoReaction))
	require.NoError(t, s.RemoveCommentReaction(ctx, c.ID, u.ID, entities.Like))

	got, err = s.GetComment(ctx, c.ID)
	require.NoError(t, err)
	assert.Zero(t, got.Likes)

	require.NoError(t, s.AddCommentReaction(ctx, c.ID, u.ID, entities.Dislike))

	rr, err := s.GetCommentReactions(ctx, u.ID, c.ID)
	require.NoError(t, err)
	assert.Equal(t, entities.Dislike, rr[c.ID])
}

func TestPg_RetractCommentReactions(t *testing.T) {
	defer cleanup(t)

	u := createTestUser(t)
	p := createTestPost(t, u.ID)
	liked := createTestComment(t, p.ID, u.ID)
	disliked := createTestComment(t, p.ID, u.ID)

	require.NoError(t, s.AddCommentReaction(ctx, liked.ID, u.ID, entities.Like))
	require.NoError(t, s.AddCommentReaction(ctx, disliked.ID, u.ID, entities.Dislike))

	require.NoError(t, s.RetractCommentReactions(ctx, u.ID))

	got, err := s.GetComment(ctx, liked.ID)
	require.NoError(t, err)
	assert.Zero(t, got.Likes)

	got, err = s.GetComment(ctx, disliked.ID)
	require.NoError(t, err)
	assert.Zero(t, got.Dislikes)
}

func TestPg_DeleteCommentsByPost(t *testing.T) {
	defer cleanup(t)

	u := createTestUser(t)
	p := createTestPost(t, u.ID)
	c1 := createTestComment(t, p.ID, u.ID)
	c2 := createTestComment(t, p.ID, u.ID)

	require.NoError(t, s.AddCommentReaction(ctx, c1.ID, u.ID, entities.Like))

	ids, err := s.DeleteCommentsByPost(ctx, []string{p.ID})
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{c1.ID, c2.ID}, ids)

	var cnt int
	require.NoError(t, db.QueryRowContext(ctx, `SELECT COUNT(*) FROM comment_reaction`).Scan(&cnt))
	assert.Zero(t, cnt)
}

func TestPg_DeleteCommentsByAuthor(t *testing.T) {
	defer cleanup(t)

	u := createTestUser(t)
	other := createTestUser(t)
	p := createTestPost(t, other.ID)
	mine := createTestComment(t, p.ID, u.ID)
	createTestComment(t, p.ID, other.ID)

	cc, err := s.DeleteCommentsByAuthor(ctx, u.ID)
	require.NoError(t, err)
	require.Len(t, cc, 1)
	assert.Equal(t, mine.ID, cc[0].ID)
	assert.Equal(t, p.ID, cc[0].PostID)

	comments, err := s.ListComments(ctx, p.ID)
	require.NoError(t, err)
	assert.Len(t, comments, 1)
}

func TestPg_Replies(t *testing.T) {
	defer cleanup(t)

	u := createTestUser(t)
	p := createTestPost(t, u.ID)
	c := createTestComment(t, p.ID, u.ID)
	r := createTestReply(t, c.ID, u.ID)

	assert.Nil(t, r.Mention)

	got, err := s.GetReply(ctx, r.ID)
	require.NoError(t, err)
	assert.Equal(t, r, got)

	rr, err := s.ListReplies(ctx, c.ID)
	require.NoError(t, err)
	require.Len(t, rr, 1)

	require.NoError(t, s.AddReplyReaction(ctx, r.ID, u.ID, entities.Like))
	assert.True(t, errors.Is(s.AddReplyReaction(ctx, r.ID, u.ID, entities.Like), storage.ErrReactionExists))

	got, err = s.GetReply(ctx, r.ID)
	require.NoError(t, err)
	assert.EqualValues(t, 1, got.Likes)

	require.NoError(t, s.DeleteReply(ctx, r.ID))
	_, err = s.GetReply(ctx, r.ID)
	assert.True(t, errors.Is(err, storage.ErrNotFound))

	var cnt int
	require.NoError(t, db.QueryRowContext(ctx, `SELECT COUNT(*) FROM reply_reaction`).Scan(&cnt))
	assert.Zero(t, cnt)
}

func TestPg_CreateReply_Mention(t *testing.T) {
	defer cleanup(t)

	u := createTestUser(t)
	p := createTestPost(t, u.ID)
	c := createTestComment(t, p.ID, u.ID)

	mention := u.ID
	r, err := s.CreateReply(ctx, &storage.CreateReplyParams{
		ID:        uuid.New().String(),
		CommentID: c.ID,
		Author:    u.ID,
		Mention:   &mention,
		Content:   "reply",
	})
	require.NoError(t, err)
	require.NotNil(t, r.Mention)
	assert.Equal(t, mention, *r.Mention)
}

func TestPg_DeleteRepliesByComment(t *testing.T) {
	defer cleanup(t)

	u := createTestUser(t)
	p := createTestPost(t, u.ID)
	c := createTestComment(t, p.ID, u.ID)
	createTestReply(t, c.ID, u.ID)
	createTestReply(t, c.ID, u.ID)

	require.NoError(t, s.DeleteRepliesByComment(ctx, []string{c.ID}))

	rr, err := s.ListReplies(ctx, c.ID)
	require.NoError(t, err)
	assert.Empty(t, rr)
}

func TestPg_Images(t *testing.T) {
	defer cleanup(t)

	u := createTestUser(t)
	p := createTestPost(t, u.ID)

	img, err := s.CreateImage(ctx, &storage.CreateImageParams{
		ID:     uuid.New().String(),
		Author: u.ID,
		PostID: p.ID,
		Name:   "pic.png",
		Data:   "data:image/png;base64,xyz",
	})
	require.NoError(t, err)

	_, err = s.CreateImage(ctx, &storage.CreateImageParams{
		ID:     uuid.New().String(),
		Author: u.ID,
		PostID: p.ID,
		Name:   "pic.png",
		Data:   "data:image/png;base64,abc",
	})
	assert.True(t, errors.Is(err, storage.ErrAlreadyExists))

	ii, err := s.ListPostImages(ctx, p.ID)
	require.NoError(t, err)
	require.Len(t, ii, 1)
	assert.Equal(t, img.ID, ii[0].ID)

	require.NoError(t, s.DeleteImage(ctx, img.ID))
	assert.True(t, errors.Is(s.DeleteImage(ctx, img.ID), storage.ErrNotFound))
}

func TestPg_AddImpressions(t *testing.T) {
	defer cleanup(t)

	u := createTestUser(t)
	p := createTestPost(t, u.ID)

	// duplicates in one batch count separately
	require.NoError(t, s.AddPostImpressions(ctx, p.ID, p.ID, p.ID))

	got, err := s.GetPost(ctx, p.ID)
	require.NoError(t, err)
	assert.EqualValues(t, 3, got.Impressions)
}

func TestPg_DeletePostsByAuthor(t *testing.T) {
	defer cleanup(t)

	u := createTestUser(t)
	other := createTestUser(t)
	mine := createTestPost(t, u.ID)
	theirs := createTestPost(t, other.ID)

	require.NoError(t, s.AddPostLike(ctx, mine.ID, other.ID))

	ids, err := s.DeletePostsByAuthor(ctx, u.ID)
	require.NoError(t, err)
	assert.Equal(t, []string{mine.ID}, ids)

	_, err = s.GetPost(ctx, theirs.ID)
	require.NoError(t, err)

	var cnt int
	require.NoError(t, db.QueryRowContext(ctx, `SELECT COUNT(*) FROM post_like`).Scan(&cnt))
	assert.Zero(t, cnt)
}

func TestPg_DeleteUser(t *testing.T) {
	defer cleanup(t)

	u := createTestUser(t)

	require.NoError(t, s.DeleteUser(ctx, u.ID))

	_, err := s.GetUser(ctx, u.ID)
	assert.True(t, errors.Is(err, storage.ErrNotFound))

	assert.True(t, errors.Is(s.DeleteUser(ctx, u.ID), storage.ErrNotFound))
}

func TestPg_GetPlatformStats(t *testing.T) {
	defer cleanup(t)

	u := createTestUser(t)
	p := createTestPost(t, u.ID)
	c := createTestComment(t, p.ID, u.ID)
	createTestReply(t, c.ID, u.ID)

	st, err := s.GetPlatformStats(ctx)
	require.NoError(t, err)
	assert.Equal(t, &storage.PlatformStats{
		Users:    1,
		Posts:    1,
		Comments: 1,
		Replies:  1,
	}, st)
}
