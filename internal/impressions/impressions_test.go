package impressions

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	storagemock "github.com/inkwell-blog/inkwell/internal/storage/mock"
)

var errTest = errors.New("test")

func TestRecorder_Run(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	s := storagemock.NewMockStorage(ctrl)

	r := New(s, 10, 10*time.Millisecond)

	flushed := make(chan struct{})
	s.EXPECT().AddPostImpressions(gomock.Any(), "a", "b", "a").DoAndReturn(
		func(_ context.Context, _ ...string) error {
			close(flushed)
			return nil
		})

	r.Posts("a", "b")
	r.Posts("a")

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error)
	go func() {
		done <- r.Run(ctx)
	}()

	select {
	case <-flushed:
	case <-time.After(time.Second):
		t.Fatal("flush timed out")
	}

	cancel()
	require.NoError(t, <-done)
}

func TestRecorder_Submit_QueueFull(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	r := New(storagemock.NewMockStorage(ctrl), 1, time.Minute)

	r.Posts("a")
	r.Posts("b") // dropped

	assert.Len(t, r.queue, 1)
}

func TestRecorder_Submit_Empty(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	r := New(storagemock.NewMockStorage(ctrl), 1, time.Minute)

	r.Posts()
	r.Comments()
	r.Replies()

	assert.Empty(t, r.queue)
}

func TestRecorder_flush_Error(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	s := storagemock.NewMockStorage(ctrl)
	s.EXPECT().AddCommentImpressions(gomock.Any(), "a").Return(errTest)
	s.EXPECT().AddReplyImpressions(gomock.Any(), "b").Return(nil)

	r := New(s, 1, time.Minute)

	// an error on one kind must not prevent the others
	r.flush(context.Background(), map[kind][]string{
		kindComment: {"a"},
		kindReply:   {"b"},
	})
}
