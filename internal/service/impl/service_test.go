package impl

import (
	"context"
	"errors"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/inkwell-blog/inkwell/internal/entities"
	"github.com/inkwell-blog/inkwell/internal/service"
	"github.com/inkwell-blog/inkwell/internal/storage"
	storagemock "github.com/inkwell-blog/inkwell/internal/storage/mock"
)

var (
	ctx = context.Background()

	testUserID    = "11111111-1111-1111-1111-111111111111"
	testActorID   = "22222222-2222-2222-2222-222222222222"
	testPostID    = "33333333-3333-3333-3333-333333333333"
	testCommentID = "44444444-4444-4444-4444-444444444444"
	testReplyID   = "55555555-5555-5555-5555-555555555555"

	errTest = errors.New("test")
)

// recorderStub collects submitted ids instead of flushing them anywhere.
type recorderStub struct {
	posts    []string
	comments []string
	replies  []string
}

func (r *recorderStub) Posts(ids ...string)    { r.posts = append(r.posts, ids...) }
func (r *recorderStub) Comments(ids ...string) { r.comments = append(r.comments, ids...) }
func (r *recorderStub) Replies(ids ...string)  { r.replies = append(r.replies, ids...) }

func newTestService(t *testing.T) (service.Service, *storagemock.MockStorage, *recorderStub) {
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	st := storagemock.NewMockStorage(ctrl)
	rec := &recorderStub{}

	return New(st, rec), st, rec
}

func TestSrv_CreateUser(t *testing.T) {
	s, st, _ := newTestService(t)

	st.EXPECT().GetUserByEmail(ctx, "new@example.com").Return(nil, storage.ErrNotFound)
	st.EXPECT().CreateUser(ctx, gomock.Any()).DoAndReturn(
		func(_ context.Context, p *storage.CreateUserParams) (*entities.User, error) {
			assert.Equal(t, "neo", p.Username)
			assert.Equal(t, "new@example.com", p.Email)
			require.NoError(t, bcrypt.CompareHashAndPassword([]byte(p.PasswordHash), []byte("secret")))
			return &entities.User{ID: p.ID, Username: p.Username, Email: p.Email}, nil
		})

	u, err := s.CreateUser(ctx, service.CreateUserParams{
		Username: "neo",
		Email:    "new@example.com",
		Password: "secret",
	})
	require.NoError(t, err)
	assert.Equal(t, "neo", u.Username)
}

func TestSrv_CreateUser_EmailInUse(t *testing.T) {
	s, st, _ := newTestService(t)

	st.EXPECT().GetUserByEmail(ctx, "taken@example.com").Return(&entities.User{ID: testUserID}, nil)

	_, err := s.CreateUser(ctx, service.CreateUserParams{Email: "taken@example.com", Password: "secret"})
	assert.True(t, errors.Is(err, service.ErrEmailInUse))
}

func TestSrv_CreateUser_UsernameInUse(t *testing.T) {
	s, st, _ := newTestService(t)

	st.EXPECT().GetUserByEmail(ctx, gomock.Any()).Return(nil, storage.ErrNotFound)
	st.EXPECT().CreateUser(ctx, gomock.Any()).Return(nil, storage.ErrAlreadyExists)

	_, err := s.CreateUser(ctx, service.CreateUserParams{Username: "neo", Email: "new@example.com", Password: "secret"})
	assert.True(t, errors.Is(err, service.ErrUsernameInUse))
}

func TestSrv_VerifyCredentials(t *testing.T) {
	s, st, _ := newTestService(t)

	hash, err := bcrypt.GenerateFromPassword([]byte("secret"), bcrypt.MinCost)
	require.NoError(t, err)

	st.EXPECT().GetUserByEmail(ctx, "u@example.com").Times(2).
		Return(&entities.User{ID: testUserID, PasswordHash: string(hash)}, nil)

	u, err := s.VerifyCredentials(ctx, "u@example.com", "secret")
	require.NoError(t, err)
	assert.Equal(t, testUserID, u.ID)

	_, err = s.VerifyCredentials(ctx, "u@example.com", "wrong")
	assert.True(t, errors.Is(err, service.ErrIncorrectCredentials))
}

func TestSrv_VerifyCredentials_UnknownEmail(t *testing.T) {
	s, st, _ := newTestService(t)

	st.EXPECT().GetUserByEmail(ctx, "ghost@example.com").Return(nil, storage.ErrNotFound)

	_, err := s.VerifyCredentials(ctx, "ghost@example.com", "secret")
	assert.True(t, errors.Is(err, service.ErrIncorrectCredentials))
}

func TestSrv_GetUser_InvalidID(t *testing.T) {
	s, _, _ := newTestService(t)

	_, err := s.GetUser(ctx, "not-an-uuid")
	assert.True(t, errors.Is(err, service.ErrInvalidID))
}

func TestSrv_CreatePost(t *testing.T) {
	s, st, _ := newTestService(t)

	st.EXPECT().GetUser(ctx, testActorID).Return(&entities.User{ID: testActorID}, nil)
	st.EXPECT().CreatePost(ctx, gomock.Any()).DoAndReturn(
		func(_ context.Context, p *storage.CreatePostParams) (*entities.Post, error) {
			assert.Equal(t, testActorID, p.Author)
			assert.Equal(t, "ola", p.ContentPt)
			return &entities.Post{ID: p.ID, Author: p.Author, ContentPt: p.ContentPt}, nil
		})

	p, err := s.CreatePost(ctx, testActorID, service.PostContent{ContentPt: "ola"})
	require.NoError(t, err)
	assert.Equal(t, testActorID, p.Author)
}

func TestSrv_CreatePost_MissingContent(t *testing.T) {
	s, _, _ := newTestService(t)

	_, err := s.CreatePost(ctx, testActorID, service.PostContent{})
	assert.True(t, errors.Is(err, service.ErrMissingContent))
}

func TestSrv_GetPost_RecordsImpression(t *testing.T) {
	s, st, rec := newTestService(t)

	st.EXPECT().GetPost(ctx, testPostID).Return(&entities.Post{ID: testPostID}, nil)

	_, err := s.GetPost(ctx, testPostID)
	require.NoError(t, err)
	assert.Equal(t, []string{testPostID}, rec.posts)
}

func TestSrv_ListPosts_RecordsImpressions(t *testing.T) {
	s, st, rec := newTestService(t)

	st.EXPECT().ListPosts(ctx).Return([]*entities.Post{{ID: testPostID}, {ID: testCommentID}}, nil)

	pp, err := s.ListPosts(ctx)
	require.NoError(t, err)
	assert.Len(t, pp, 2)
	assert.Equal(t, []string{testPostID, testCommentID}, rec.posts)
}

func TestSrv_UpdatePost_Forbidden(t *testing.T) {
	s, st, _ := newTestService(t)

	st.EXPECT().GetPost(ctx, testPostID).Return(&entities.Post{ID: testPostID, Author: testUserID}, nil)

	_, err := s.UpdatePost(ctx, testActorID, testPostID, service.PostContent{ContentEn: "hi"})
	assert.True(t, errors.Is(err, service.ErrCannotEditPost))
}

func TestSrv_DeletePost(t *testing.T) {
	s, st, _ := newTestService(t)

	st.EXPECT().GetPost(ctx, testPostID).Return(&entities.Post{ID: testPostID, Author: testActorID}, nil)
	gomock.InOrder(
		st.EXPECT().DeletePost(ctx, testPostID).Return(nil),
		st.EXPECT().DeleteCommentsByPost(ctx, []string{testPostID}).Return([]string{testCommentID}, nil),
		st.EXPECT().DeleteRepliesByComment(ctx, []string{testCommentID}).Return(nil),
		st.EXPECT().DeleteImagesByPost(ctx, []string{testPostID}).Return(nil),
	)

	require.NoError(t, s.DeletePost(ctx, testActorID, testPostID))
}

func TestSrv_DeletePost_Forbidden(t *testing.T) {
	s, st, _ := newTestService(t)

	st.EXPECT().GetPost(ctx, testPostID).Return(&entities.Post{ID: testPostID, Author: testUserID}, nil)

	err := s.DeletePost(ctx, testActorID, testPostID)
	assert.True(t, errors.Is(err, service.ErrCannotDeletePost))
}

func TestSrv_LikePost(t *testing.T) {
	tt := []struct {
		name     string
		storeErr error
		want     error
	}{
		{
			name: "success",
		},
		{
			name:     "already liked",
			storeErr: storage.ErrReactionExists,
			want:     service.ErrAlreadyLikedPost,
		},
		{
			name:     "storage error",
			storeErr: errTest,
			want:     errTest,
		},
	}

	for i := range tt {
		tc := tt[i]
		t.Run(tc.name, func(t *testing.T) {
			s, st, _ := newTestService(t)

			st.EXPECT().GetPost(ctx, testPostID).Return(&entities.Post{ID: testPostID}, nil)
			st.EXPECT().AddPostLike(ctx, testPostID, testActorID).Return(tc.storeErr)

			err := s.LikePost(ctx, testActorID, testPostID)
			if tc.want == nil {
				assert.NoError(t, err)
			} else {
				assert.True(t, errors.Is(err, tc.want))
			}
		})
	}
}

func TestSrv_UnlikePost_NotLiked(t *testing.T) {
	s, st, _ := newTestService(t)

	st.EXPECT().GetPost(ctx, testPostID).Return(&entities.Post{ID: testPostID}, nil)
	st.EXPECT().RemovePostLike(ctx, testPostID, testActorID).Return(storage.ErrNoReaction)

	err := s.UnlikePost(ctx, testActorID, testPostID)
	assert.True(t, errors.Is(err, service.ErrHaveNotLikedPost))
}

func TestSrv_LikePost_PostNotFound(t *testing.T) {
	s, st, _ := newTestService(t)

	st.EXPECT().GetPost(ctx, testPostID).Return(nil, storage.ErrNotFound)

	err := s.LikePost(ctx, testActorID, testPostID)
	assert.True(t, errors.Is(err, service.ErrPostNotFound))
}

func TestSrv_CreateComment(t *testing.T) {
	s, st, _ := newTestService(t)

	st.EXPECT().GetPost(ctx, testPostID).Return(&entities.Post{ID: testPostID}, nil)
	gomock.InOrder(
		st.EXPECT().CreateComment(ctx, gomock.Any()).DoAndReturn(
			func(_ context.Context, p *storage.CreateCommentParams) (*entities.Comment, error) {
				assert.Equal(t, testPostID, p.PostID)
				assert.Equal(t, testActorID, p.Author)
				return &entities.Comment{ID: p.ID, PostID: p.PostID, Author: p.Author, Content: p.Content}, nil
			}),
		st.EXPECT().IncPostComments(ctx, testPostID).Return(nil),
	)

	c, err := s.CreateComment(ctx, testActorID, testPostID, "nice post")
	require.NoError(t, err)
	assert.Equal(t, "nice post", c.Content)
}

func TestSrv_CreateComment_MissingContent(t *testing.T) {
	s, _, _ := newTestService(t)

	_, err := s.CreateComment(ctx, testActorID, testPostID, "")
	assert.True(t, errors.Is(err, service.ErrMissingContent))
}

func TestSrv_GetComment_WrongPost(t *testing.T) {
	s, st, _ := newTestService(t)

	st.EXPECT().GetPost(ctx, testPostID).Return(&entities.Post{ID: testPostID}, nil)
	st.EXPECT().GetComment(ctx, testCommentID).Return(&entities.Comment{
		ID:     testCommentID,
		PostID: testReplyID, // belongs to another post
	}, nil)

	_, err := s.GetComment(ctx, testPostID, testCommentID)
	assert.True(t, errors.Is(err, service.ErrCommentNotFound))
}

func TestSrv_DeleteComment(t *testing.T) {
	s, st, _ := newTestService(t)

	st.EXPECT().GetPost(ctx, testPostID).Return(&entities.Post{ID: testPostID}, nil)
	st.EXPECT().GetComment(ctx, testCommentID).Return(&entities.Comment{
		ID:     testCommentID,
		PostID: testPostID,
		Author: testActorID,
	}, nil)
	gomock.InOrder(
		st.EXPECT().DeleteComment(ctx, testCommentID).Return(nil),
		st.EXPECT().DecPostComments(ctx, testPostID, uint32(1)).Return(nil),
		st.EXPECT().DeleteRepliesByComment(ctx, []string{testCommentID}).Return(nil),
	)

	require.NoError(t, s.DeleteComment(ctx, testActorID, testPostID, testCommentID))
}

func TestSrv_DeleteComment_Forbidden(t *testing.T) {
	s, st, _ := newTestService(t)

	st.EXPECT().GetPost(ctx, testPostID).Return(&entities.Post{ID: testPostID}, nil)
	st.EXPECT().GetComment(ctx, testCommentID).Return(&entities.Comment{
		ID:     testCommentID,
		PostID: testPostID,
		Author: testUserID,
	}, nil)

	err := s.DeleteComment(ctx, testActorID, testPostID, testCommentID)
	assert.True(t, errors.Is(err, service.ErrCannotDeleteComment))
}

func TestSrv_LikeComment(t *testing.T) {
	tt := []struct {
		name      string
		removeErr error
		addErr    error
		want      error
	}{
		{
			name:      "fresh like",
			removeErr: storage.ErrNoReaction,
		},
		{
			name: "switch from dislike",
		},
		{
			name:      "already liked",
			removeErr: storage.ErrNoReaction,
			addErr:    storage.ErrReactionExists,
			want:      service.ErrAlreadyLikedComment,
		},
	}

	for i := range tt {
		tc := tt[i]
		t.Run(tc.name, func(t *testing.T) {
			s, st, _ := newTestService(t)

			st.EXPECT().GetPost(ctx, testPostID).Return(&entities.Post{ID: testPostID}, nil)
			st.EXPECT().GetComment(ctx, testCommentID).Return(&entities.Comment{
				ID:     testCommentID,
				PostID: testPostID,
			}, nil)
			st.EXPECT().RemoveCommentReaction(ctx, testCommentID, testActorID, entities.Dislike).Return(tc.removeErr)
			st.EXPECT().AddCommentReaction(ctx, testCommentID, testActorID, entities.Like).Return(tc.addErr)

			err := s.LikeComment(ctx, testActorID, testPostID, testCommentID)
			if tc.want == nil {
				assert.NoError(t, err)
			} else {
				assert.True(t, errors.Is(err, tc.want))
			}
		})
	}
}

func TestSrv_UndislikeComment_NotDisliked(t *testing.T) {
	s, st, _ := newTestService(t)

	st.EXPECT().GetPost(ctx, testPostID).Return(&entities.Post{ID: testPostID}, nil)
	st.EXPECT().GetComment(ctx, testCommentID).Return(&entities.Comment{
		ID:     testCommentID,
		PostID: testPostID,
	}, nil)
	st.EXPECT().RemoveCommentReaction(ctx, testCommentID, testActorID, entities.Dislike).Return(storage.ErrNoReaction)

	err := s.UndislikeComment(ctx, testActorID, testPostID, testCommentID)
	assert.True(t, errors.Is(err, service.ErrHaveNotDislikedComment))
}

func TestSrv_ListComments_RecordsImpressions(t *testing.T) {
	s, st, rec := newTestService(t)

	st.EXPECT().GetPost(ctx, testPostID).Return(&entities.Post{ID: testPostID}, nil)
	st.EXPECT().ListComments(ctx, testPostID).Return([]*entities.Comment{{ID: testCommentID, PostID: testPostID}}, nil)

	_, err := s.ListComments(ctx, testPostID)
	require.NoError(t, err)
	assert.Equal(t, []string{testCommentID}, rec.comments)
}

func TestSrv_CreateReply(t *testing.T) {
	s, st, _ := newTestService(t)

	st.EXPECT().GetPost(ctx, testPostID).Return(&entities.Post{ID: testPostID}, nil)
	st.EXPECT().GetComment(ctx, testCommentID).Return(&entities.Comment{
		ID:     testCommentID,
		PostID: testPostID,
	}, nil)
	st.EXPECT().CreateReply(ctx, gomock.Any()).DoAndReturn(
		func(_ context.Context, p *storage.CreateReplyParams) (*entities.Reply, error) {
			assert.Equal(t, testCommentID, p.CommentID)
			require.NotNil(t, p.Mention)
			assert.Equal(t, testUserID, *p.Mention)
			return &entities.Reply{ID: p.ID, CommentID: p.CommentID, Author: p.Author, Mention: p.Mention}, nil
		})

	mention := testUserID
	r, err := s.CreateReply(ctx, testActorID, testPostID, testCommentID, &mention, "me too")
	require.NoError(t, err)
	assert.Equal(t, testCommentID, r.CommentID)
}

func TestSrv_CreateReply_InvalidMention(t *testing.T) {
	s, _, _ := newTestService(t)

	mention := "not-an-uuid"
	_, err := s.CreateReply(ctx, testActorID, testPostID, testCommentID, &mention, "me too")
	assert.True(t, errors.Is(err, service.ErrInvalidID))
}

func TestSrv_GetReply_WrongComment(t *testing.T) {
	s, st, _ := newTestService(t)

	st.EXPECT().GetPost(ctx, testPostID).Return(&entities.Post{ID: testPostID}, nil)
	st.EXPECT().GetComment(ctx, testCommentID).Return(&entities.Comment{
		ID:     testCommentID,
		PostID: testPostID,
	}, nil)
	st.EXPECT().GetReply(ctx, testReplyID).Return(&entities.Reply{
		ID:        testReplyID,
		CommentID: testUserID, // belongs to another comment
	}, nil)

	_, err := s.GetReply(ctx, testPostID, testCommentID, testReplyID)
	assert.True(t, errors.Is(err, service.ErrReplyNotFound))
}

func TestSrv_DislikeReply_AlreadyDisliked(t *testing.T) {
	s, st, _ := newTestService(t)

	st.EXPECT().GetPost(ctx, testPostID).Return(&entities.Post{ID: testPostID}, nil)
	st.EXPECT().GetComment(ctx, testCommentID).Return(&entities.Comment{
		ID:     testCommentID,
		PostID: testPostID,
	}, nil)
	st.EXPECT().GetReply(ctx, testReplyID).Return(&entities.Reply{
		ID:        testReplyID,
		CommentID: testCommentID,
	}, nil)
	st.EXPECT().RemoveReplyReaction(ctx, testReplyID, testActorID, entities.Like).Return(storage.ErrNoReaction)
	st.EXPECT().AddReplyReaction(ctx, testReplyID, testActorID, entities.Dislike).Return(storage.ErrReactionExists)

	err := s.DislikeReply(ctx, testActorID, testPostID, testCommentID, testReplyID)
	assert.True(t, errors.Is(err, service.ErrAlreadyDislikedReply))
}

func TestSrv_DeleteUser(t *testing.T) {
	s, st, _ := newTestService(t)

	st.EXPECT().GetUser(ctx, testUserID).Return(&entities.User{ID: testUserID}, nil)
	gomock.InOrder(
		st.EXPECT().DeletePostsByAuthor(ctx, testUserID).Return([]string{testPostID}, nil),
		st.EXPECT().DeleteCommentsByPost(ctx, []string{testPostID}).Return([]string{testCommentID}, nil),
		st.EXPECT().DeleteRepliesByComment(ctx, []string{testCommentID}).Return(nil),
		st.EXPECT().DeleteImagesByPost(ctx, []string{testPostID}).Return(nil),
		st.EXPECT().DeleteCommentsByAuthor(ctx, testUserID).Return([]*entities.Comment{
			{ID: testReplyID, PostID: testActorID},
		}, nil),
		st.EXPECT().DeleteRepliesByComment(ctx, []string{testReplyID}).Return(nil),
		st.EXPECT().DecPostComments(ctx, testActorID, uint32(1)).Return(nil),
		st.EXPECT().DeleteRepliesByAuthor(ctx, testUserID).Return(nil),
		st.EXPECT().RetractPostLikes(ctx, testUserID).Return(nil),
		st.EXPECT().RetractCommentReactions(ctx, testUserID).Return(nil),
		st.EXPECT().RetractReplyReactions(ctx, testUserID).Return(nil),
		st.EXPECT().DeleteImagesByAuthor(ctx, testUserID).Return(nil),
		st.EXPECT().DeleteUser(ctx, testUserID).Return(nil),
	)

	require.NoError(t, s.DeleteUser(ctx, testUserID))
}

func TestSrv_UploadImage(t *testing.T) {
	s, st, _ := newTestService(t)

	st.EXPECT().GetPost(ctx, testPostID).Return(&entities.Post{ID: testPostID}, nil)
	st.EXPECT().CreateImage(ctx, gomock.Any()).DoAndReturn(
		func(_ context.Context, p *storage.CreateImageParams) (*entities.Image, error) {
			assert.Equal(t, testActorID, p.Author)
			assert.Equal(t, "pic.png", p.Name)
			return &entities.Image{ID: p.ID, Author: p.Author, PostID: p.PostID, Name: p.Name}, nil
		})

	img, err := s.UploadImage(ctx, testActorID, testPostID, "pic.png", "data:image/png;base64,xyz")
	require.NoError(t, err)
	assert.Equal(t, "pic.png", img.Name)
}

func TestSrv_UploadImage_Missing(t *testing.T) {
	s, _, _ := newTestService(t)

	_, err := s.UploadImage(ctx, testActorID, testPostID, "", "data")
	assert.True(t, errors.Is(err, service.ErrMissingImage))

	_, err = s.UploadImage(ctx, testActorID, testPostID, "pic.png", "")
	assert.True(t, errors.Is(err, service.ErrMissingImage))
}

func TestSrv_UploadImage_Duplicate(t *testing.T) {
	s, st, _ := newTestService(t)

	st.EXPECT().GetPost(ctx, testPostID).Return(&entities.Post{ID: testPostID}, nil)
	st.EXPECT().CreateImage(ctx, gomock.Any()).Return(nil, storage.ErrAlreadyExists)

	_, err := s.UploadImage(ctx, testActorID, testPostID, "pic.png", "data")
	assert.True(t, errors.Is(err, service.ErrImageExists))
}

func TestSrv_DeleteImage_Forbidden(t *testing.T) {
	s, st, _ := newTestService(t)

	st.EXPECT().GetPost(ctx, testPostID).Return(&entities.Post{ID: testPostID}, nil)
	st.EXPECT().GetImage(ctx, testReplyID).Return(&entities.Image{ID: testReplyID, Author: testUserID}, nil)

	err := s.DeleteImage(ctx, testActorID, testPostID, testReplyID)
	assert.True(t, errors.Is(err, service.ErrCannotDeleteImage))
}

func TestSrv_GetPlatformStats(t *testing.T) {
	s, st, _ := newTestService(t)

	st.EXPECT().GetPlatformStats(ctx).Return(&storage.PlatformStats{Users: 2, Posts: 5}, nil)

	got, err := s.GetPlatformStats(ctx)
	require.NoError(t, err)
	assert.EqualValues(t, 2, got.Users)
}
