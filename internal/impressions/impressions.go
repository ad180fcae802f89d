// Package impressions turns read events into counter increments without
// slowing the reads down. Submissions go into a bounded queue and a single
// background worker flushes them in batches; when the queue is full the
// event is dropped.
package impressions

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/inkwell-blog/inkwell/internal/storage"
)

var log = logrus.WithField("package", "impressions")

type kind int

const (
	kindPost kind = iota
	kindComment
	kindReply
)

type event struct {
	kind kind
	ids  []string
}

// Recorder is an asynchronous impression counter.
type Recorder struct {
	s storage.Storage

	interval time.Duration
	queue    chan event
}

// New creates new instance of Recorder. queueSize bounds the number of
// pending submissions, interval is how often the worker flushes.
func New(s storage.Storage, queueSize int, interval time.Duration) *Recorder {
	return &Recorder{
		s:        s,
		interval: interval,
		queue:    make(chan event, queueSize),
	}
}

// Posts ...
func (r *Recorder) Posts(ids ...string) { r.submit(kindPost, ids) }

// Comments ...
func (r *Recorder) Comments(ids ...string) { r.submit(kindComment, ids) }

// Replies ...
func (r *Recorder) Replies(ids ...string) { r.submit(kindReply, ids) }

func (r *Recorder) submit(k kind, ids []string) {
	if len(ids) == 0 {
		return
	}

	select {
	case r.queue <- event{kind: k, ids: ids}:
	default:
		log.WithField("count", len(ids)).Warn("queue is full, impressions dropped")
	}
}

// Run consumes the queue until ctx is cancelled. Pending events are
// flushed on every tick so all increments for one entity collapse into a
// single statement.
func (r *Recorder) Run(ctx context.Context) error {
	t := time.NewTicker(r.interval)
	defer t.Stop()

	pending := map[kind][]string{}

	for {
		select {
		case <-ctx.Done():
			r.flush(context.Background(), pending)
			return nil
		case e := <-r.queue:
			pending[e.kind] = append(pending[e.kind], e.ids...)
		case <-t.C:
			r.flush(ctx, pending)
			pending = map[kind][]string{}
		}
	}
}

func (r *Recorder) flush(ctx context.Context, pending map[kind][]string) {
	for k, ids := range pending {
		if len(ids) == 0 {
			continue
		}

		var err error
		switch k {
		case kindPost:
			err = r.s.AddPostImpressions(ctx, ids...)
		case kindComment:
			err = r.s.AddCommentImpressions(ctx, ids...)
		case kindReply:
			err = r.s.AddReplyImpressions(ctx, ids...)
		}

		if err != nil {
			log.WithField("count", len(ids)).WithError(err).Error("failed to flush impressions")
		}
	}
}
