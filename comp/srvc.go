package comp

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/jonboulle/clockwork"
	"github.com/llmarena/backend/judge"
)

// Options bound the timing and retention behavior of every session the
// service creates.
type Options struct {
	Duration    time.Duration // total competition budget
	Tick        time.Duration // scheduler / countdown interval
	TurnTimeout time.Duration // upper bound on one judge call
	FeedCap     int           // retained submissions per session
}

func DefaultOptions() Options {
	return Options{
		Duration:    300 * time.Second,
		Tick:        time.Second,
		TurnTimeout: 240 * time.Second,
		FeedCap:     20,
	}
}

// fill replaces zero values with defaults so callers can override only what
// they care about.
func (o Options) fill() Options {
	def := DefaultOptions()
	if o.Duration == 0 {
		o.Duration = def.Duration
	}
	if o.Tick == 0 {
		o.Tick = def.Tick
	}
	if o.TurnTimeout == 0 {
		o.TurnTimeout = def.TurnTimeout
	}
	if o.FeedCap == 0 {
		o.FeedCap = def.FeedCap
	}
	return o
}

// CompSrvc owns all live competition sessions. Each session runs its own
// single-writer loop; the service only routes calls to the right session.
type CompSrvc struct {
	judge judge.Client
	clock clockwork.Clock
	opts  Options

	mu    sync.RWMutex
	comps map[uuid.UUID]*session

	ctx    context.Context
	cancel context.CancelFunc
}

func NewCompSrvc(judgeClient judge.Client, clock clockwork.Clock, opts Options) *CompSrvc {
	ctx, cancel := context.WithCancel(context.Background())
	return &CompSrvc{
		judge:  judgeClient,
		clock:  clock,
		opts:   opts.fill(),
		comps:  make(map[uuid.UUID]*session),
		ctx:    ctx,
		cancel: cancel,
	}
}

// Close stops every session loop and aborts in-flight judge calls.
func (s *CompSrvc) Close() {
	s.cancel()
}

func (s *CompSrvc) getSession(compID uuid.UUID) (*session, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	sess, ok := s.comps[compID]
	if !ok {
		return nil, ErrCompNotFound()
	}
	return sess, nil
}
