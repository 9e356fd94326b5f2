package comp

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/jonboulle/clockwork"
	"github.com/llmarena/backend/comp/compdomain"
	"github.com/llmarena/backend/judge"
	"golang.org/x/exp/rand"
)

// sessionState is owned exclusively by the session's run loop. Everything
// else talks to it through the apply channel, one transition at a time.
type sessionState struct {
	active       bool
	remaining    int // seconds until the competition ends
	problems     []compdomain.Problem
	participants []compdomain.Participant
	feed         []compdomain.Submission // newest first, capped
	listeners    []chan FeedUpdate
}

type session struct {
	id        uuid.UUID
	startedAt time.Time
	clock     clockwork.Clock
	judge     judge.Client
	opts      Options
	rng       *rand.Rand

	apply chan func(*sessionState)

	ctx    context.Context
	cancel context.CancelFunc
}

func newSession(
	parentCtx context.Context,
	clock clockwork.Clock,
	judgeClient judge.Client,
	opts Options,
	problems []compdomain.Problem,
	participants []compdomain.Participant,
) *session {
	ctx, cancel := context.WithCancel(parentCtx)
	now := clock.Now()
	s := &session{
		id:        uuid.New(),
		startedAt: now,
		clock:     clock,
		judge:     judgeClient,
		opts:      opts,
		rng:       rand.New(rand.NewSource(uint64(now.UnixNano()))),
		apply:     make(chan func(*sessionState), 64),
		ctx:       ctx,
		cancel:    cancel,
	}
	st := &sessionState{
		active:       true,
		remaining:    int(opts.Duration / time.Second),
		problems:     problems,
		participants: participants,
		feed:         make([]compdomain.Submission, 0, opts.FeedCap),
	}
	go s.run(st)
	return s
}

// run is the session's single writer. State transitions arrive either as
// apply functions or as scheduler ticks; nothing mutates sessionState
// outside this goroutine.
func (s *session) run(st *sessionState) {
	ticker := s.clock.NewTicker(s.opts.Tick)
	defer ticker.Stop()

	for {
		select {
		case <-s.ctx.Done():
			return
		case fn := <-s.apply:
			fn(st)
		case <-ticker.Chan():
			if !st.active {
				continue
			}
			st.remaining--
			if st.remaining <= 0 {
				st.remaining = 0
				st.active = false
				// terminal: the countdown never resumes
				ticker.Stop()
				slog.Default().Info("competition finished", "comp_id", s.id)
				continue
			}
			s.scheduleTurns(st)
		}
	}
}

// post hands a state transition to the run loop without waiting for it.
func (s *session) post(fn func(*sessionState)) {
	select {
	case s.apply <- fn:
	case <-s.ctx.Done():
	}
}

// read runs fn on the run loop and waits until it has been applied. fn must
// copy out whatever it needs; the state itself never escapes the loop.
func (s *session) read(ctx context.Context, fn func(*sessionState)) error {
	done := make(chan struct{})
	wrapped := func(st *sessionState) {
		fn(st)
		close(done)
	}
	select {
	case s.apply <- wrapped:
	case <-ctx.Done():
		return ctx.Err()
	case <-s.ctx.Done():
		return s.ctx.Err()
	}
	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// scheduleTurns launches one turn per idle participant. Runs on the run
// loop, so it sees the latest state rather than a per-tick snapshot.
func (s *session) scheduleTurns(st *sessionState) {
	for i := range st.participants {
		p := &st.participants[i]
		if p.Processing {
			continue
		}
		unsolved := p.Unsolved(st.problems)
		if len(unsolved) == 0 {
			// solved everything; never scheduled again
			continue
		}
		problemID := unsolved[s.rng.Intn(len(unsolved))]

		p.Processing = true
		p.CurrentProblem = &problemID

		subm := compdomain.Submission{
			UUID:          uuid.New(),
			ParticipantID: p.ID,
			Model:         p.Model,
			ProblemID:     problemID,
			Status:        compdomain.StatusQueued,
			CreatedAt:     s.clock.Now(),
		}
		s.appendToFeed(st, subm)

		req := judge.Request{
			ContestantID: p.ID,
			Model:        p.Model,
			ProblemID:    problemID,
			Leaderboard:  compdomain.JudgeSnapshot(st.participants, st.problems),
		}
		go s.runTurn(p.ID, problemID, subm.UUID, req)
	}
}
