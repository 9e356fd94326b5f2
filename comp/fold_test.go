package comp

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jonboulle/clockwork"
	"github.com/llmarena/backend/comp/compdomain"
	"github.com/llmarena/backend/judge"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/exp/rand"
)

type blockingJudge struct{}

func (blockingJudge) Problems(ctx context.Context, n int) ([]compdomain.Problem, error) {
	<-ctx.Done()
	return nil, ctx.Err()
}

func (blockingJudge) Judge(ctx context.Context, req judge.Request) (*judge.Verdict, error) {
	<-ctx.Done()
	return nil, ctx.Err()
}

func newTestSession(t *testing.T) (*session, *sessionState) {
	t.Helper()
	clock := clockwork.NewFakeClock()
	ctx, cancel := context.WithCancel(context.Background())
	t.Cleanup(cancel)
	s := &session{
		id:        uuid.New(),
		startedAt: clock.Now(),
		clock:     clock,
		judge:     blockingJudge{},
		opts:      DefaultOptions(),
		rng:       rand.New(rand.NewSource(1)),
		apply:     make(chan func(*sessionState), 64),
		ctx:       ctx,
		cancel:    cancel,
	}
	st := &sessionState{
		active:    true,
		remaining: 300,
		problems: []compdomain.Problem{
			{ID: "latam2023/B", Name: "Blackboard Game"},
			{ID: "latam2020/N", Name: "Non-Integer Donuts"},
		},
		participants: []compdomain.Participant{
			{
				ID:    "contestant-1",
				Model: "o3-mini",
				Problems: map[string]compdomain.ProblemStatus{
					"latam2023/B": {},
					"latam2020/N": {},
				},
			},
		},
	}
	return s, st
}

func TestFoldAcceptedSetsScorePenaltyAndReleases(t *testing.T) {
	s, st := newTestSession(t)
	fakeClock := s.clock.(*clockwork.FakeClock)

	problemID := "latam2023/B"
	st.participants[0].Processing = true
	st.participants[0].CurrentProblem = &problemID
	subm := compdomain.Submission{
		UUID:          uuid.New(),
		ParticipantID: "contestant-1",
		ProblemID:     problemID,
		Status:        compdomain.StatusQueued,
		CreatedAt:     s.clock.Now(),
	}
	s.appendToFeed(st, subm)

	fakeClock.Advance(42 * time.Second)
	s.foldTurn(st, "contestant-1", problemID, subm.UUID,
		compdomain.StatusAccepted, "", nil)

	p := st.participants[0]
	assert.Equal(t, 1, p.Score)
	assert.Equal(t, p.SolvedCount(), p.Score)
	assert.Equal(t, 42*time.Second, p.Penalty)
	assert.False(t, p.Processing)
	assert.Nil(t, p.CurrentProblem)

	ps := p.Problems[problemID]
	assert.Equal(t, 1, ps.Attempts)
	assert.True(t, ps.Accepted)
	require.NotNil(t, ps.AcceptedAt)

	assert.Equal(t, compdomain.StatusAccepted, st.feed[0].Status)
}

func TestFoldRepeatedAcceptedDoesNotGrowPenalty(t *testing.T) {
	s, st := newTestSession(t)
	fakeClock := s.clock.(*clockwork.FakeClock)

	problemID := "latam2023/B"
	fakeClock.Advance(10 * time.Second)
	s.foldTurn(st, "contestant-1", problemID, uuid.New(),
		compdomain.StatusAccepted, "", nil)
	penaltyAfterFirst := st.participants[0].Penalty

	fakeClock.Advance(50 * time.Second)
	s.foldTurn(st, "contestant-1", problemID, uuid.New(),
		compdomain.StatusAccepted, "", nil)

	p := st.participants[0]
	assert.Equal(t, penaltyAfterFirst, p.Penalty)
	assert.Equal(t, 1, p.Score)
	assert.Equal(t, 2, p.Problems[problemID].Attempts)
}

func TestFoldRejectedIncrementsAttemptsOnly(t *testing.T) {
	s, st := newTestSession(t)

	problemID := "latam2020/N"
	s.foldTurn(st, "contestant-1", problemID, uuid.New(),
		compdomain.StatusWrongAnswer, "", nil)

	p := st.participants[0]
	assert.Equal(t, 0, p.Score)
	assert.Equal(t, time.Duration(0), p.Penalty)
	assert.Equal(t, 1, p.Problems[problemID].Attempts)
	assert.False(t, p.Problems[problemID].Accepted)
	assert.Nil(t, p.Problems[problemID].AcceptedAt)
}

func TestFeedCapEvictsOldest(t *testing.T) {
	s, st := newTestSession(t)

	first := compdomain.Submission{UUID: uuid.New(), ProblemID: "first"}
	s.appendToFeed(st, first)
	for i := 0; i < s.opts.FeedCap+5; i++ {
		s.appendToFeed(st, compdomain.Submission{UUID: uuid.New()})
	}

	assert.Len(t, st.feed, s.opts.FeedCap)
	for _, subm := range st.feed {
		assert.NotEqual(t, first.UUID, subm.UUID, "oldest entry should be evicted")
	}
}

func TestScheduleSkipsProcessingAndSolvedParticipants(t *testing.T) {
	s, st := newTestSession(t)

	st.participants = append(st.participants,
		compdomain.Participant{
			ID:    "contestant-2",
			Model: "o1",
			Problems: map[string]compdomain.ProblemStatus{
				"latam2023/B": {Accepted: true, Attempts: 1},
				"latam2020/N": {Accepted: true, Attempts: 2},
			},
		},
		compdomain.Participant{
			ID:         "contestant-3",
			Model:      "gemini-1.5-pro",
			Processing: true,
			Problems: map[string]compdomain.ProblemStatus{
				"latam2023/B": {},
				"latam2020/N": {},
			},
		},
	)

	s.scheduleTurns(st)

	// only contestant-1 is idle with unsolved problems
	require.Len(t, st.feed, 1)
	assert.Equal(t, "contestant-1", st.feed[0].ParticipantID)
	assert.Equal(t, compdomain.StatusQueued, st.feed[0].Status)
	assert.True(t, st.participants[0].Processing)
	require.NotNil(t, st.participants[0].CurrentProblem)

	// solved participant stays idle and generates no submission
	assert.False(t, st.participants[1].Processing)
}

func TestLeaderboardOrdering(t *testing.T) {
	participants := []compdomain.Participant{
		{
			ID:      "p1",
			Penalty: 500 * time.Millisecond,
			Problems: map[string]compdomain.ProblemStatus{
				"a": {Accepted: true}, "b": {Accepted: true}, "c": {Accepted: true},
			},
		},
		{
			ID:      "p2",
			Penalty: 200 * time.Millisecond,
			Problems: map[string]compdomain.ProblemStatus{
				"a": {Accepted: true}, "b": {Accepted: true}, "c": {Accepted: true},
			},
		},
		{
			ID:      "p3",
			Penalty: 900 * time.Millisecond,
			Problems: map[string]compdomain.ProblemStatus{
				"a": {Accepted: true}, "b": {}, "c": {},
			},
		},
	}

	rows := Leaderboard(participants)
	require.Len(t, rows, 3)
	assert.Equal(t, "p2", rows[0].ParticipantID)
	assert.Equal(t, "p1", rows[1].ParticipantID)
	assert.Equal(t, "p3", rows[2].ParticipantID)
}

func TestLeaderboardRecomputesScoreDefensively(t *testing.T) {
	participants := []compdomain.Participant{
		{
			ID:    "p1",
			Score: 99, // stale denormalized value
			Problems: map[string]compdomain.ProblemStatus{
				"a": {Accepted: true}, "b": {},
			},
		},
	}
	rows := Leaderboard(participants)
	assert.Equal(t, 1, rows[0].Score)
}
