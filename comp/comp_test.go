package comp_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jonboulle/clockwork"
	"github.com/llmarena/backend/comp"
	"github.com/llmarena/backend/comp/compdomain"
	"github.com/llmarena/backend/judge"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeJudge struct {
	judgeFn func(ctx context.Context, req judge.Request) (*judge.Verdict, error)
}

func (f *fakeJudge) Problems(ctx context.Context, n int) ([]compdomain.Problem, error) {
	return nil, nil
}

func (f *fakeJudge) Judge(ctx context.Context, req judge.Request) (*judge.Verdict, error) {
	return f.judgeFn(ctx, req)
}

func verdictJudge(status string) *fakeJudge {
	return &fakeJudge{
		judgeFn: func(ctx context.Context, req judge.Request) (*judge.Verdict, error) {
			return &judge.Verdict{Status: status}, nil
		},
	}
}

func hangingJudge() *fakeJudge {
	return &fakeJudge{
		judgeFn: func(ctx context.Context, req judge.Request) (*judge.Verdict, error) {
			<-ctx.Done()
			return nil, ctx.Err()
		},
	}
}

func defaultParams() comp.NewCompParams {
	return comp.NewCompParams{
		Problems: []compdomain.Problem{
			{ID: "latam2023/B", Name: "Blackboard Game"},
			{ID: "latam2020/N", Name: "Non-Integer Donuts"},
		},
		Participants: []comp.NewParticipant{
			{ID: "contestant-1", Model: "o3-mini"},
		},
	}
}

func TestCreateCompValidation(t *testing.T) {
	srvc := comp.NewCompSrvc(verdictJudge("ACCEPTED"), clockwork.NewFakeClock(), comp.Options{})
	defer srvc.Close()

	ctx := context.Background()

	_, err := srvc.CreateComp(ctx, comp.NewCompParams{})
	assert.Error(t, err)

	params := defaultParams()
	params.Participants = nil
	_, err = srvc.CreateComp(ctx, params)
	assert.Error(t, err)

	params = defaultParams()
	params.Problems = append(params.Problems, params.Problems[0])
	_, err = srvc.CreateComp(ctx, params)
	assert.Error(t, err)

	params = defaultParams()
	params.Participants[0].Model = "gpt-2"
	_, err = srvc.CreateComp(ctx, params)
	assert.Error(t, err)

	_, err = srvc.CreateComp(ctx, defaultParams())
	assert.NoError(t, err)
}

func TestCountdownReachesZeroAndHalts(t *testing.T) {
	clock := clockwork.NewFakeClock()
	srvc := comp.NewCompSrvc(verdictJudge("WRONG_ANSWER"), clock,
		comp.Options{Duration: 3 * time.Second})
	defer srvc.Close()

	ctx := context.Background()
	compID, err := srvc.CreateComp(ctx, defaultParams())
	require.NoError(t, err)

	// wait for the session loop's ticker to be registered
	clock.BlockUntil(1)

	for i := 1; i <= 3; i++ {
		clock.Advance(time.Second)
		want := 3 - i
		require.Eventually(t, func() bool {
			view, err := srvc.GetComp(ctx, compID)
			return err == nil && view.Remaining == want
		}, 2*time.Second, 10*time.Millisecond, "tick %d", i)
	}

	view, err := srvc.GetComp(ctx, compID)
	require.NoError(t, err)
	assert.False(t, view.Active)
	assert.Equal(t, 0, view.Remaining)

	subms, err := srvc.ListSubms(ctx, compID)
	require.NoError(t, err)
	feedLen := len(subms)

	// an inactive competition schedules no further turns
	clock.Advance(10 * time.Second)
	time.Sleep(50 * time.Millisecond)
	subms, err = srvc.ListSubms(ctx, compID)
	require.NoError(t, err)
	assert.Len(t, subms, feedLen)
}

func TestAcceptedFlowSolvesEverythingThenIdles(t *testing.T) {
	clock := clockwork.NewFakeClock()
	srvc := comp.NewCompSrvc(verdictJudge("ACCEPTED"), clock, comp.Options{})
	defer srvc.Close()

	ctx := context.Background()
	compID, err := srvc.CreateComp(ctx, defaultParams())
	require.NoError(t, err)

	clock.BlockUntil(1)
	clock.Advance(time.Second)

	require.Eventually(t, func() bool {
		view, err := srvc.GetComp(ctx, compID)
		return err == nil && view.Leaderboard[0].Score == 1
	}, 2*time.Second, 10*time.Millisecond)

	clock.Advance(time.Second)

	require.Eventually(t, func() bool {
		view, err := srvc.GetComp(ctx, compID)
		return err == nil && view.Leaderboard[0].Score == 2
	}, 2*time.Second, 10*time.Millisecond)

	view, err := srvc.GetComp(ctx, compID)
	require.NoError(t, err)
	assert.Greater(t, view.Leaderboard[0].Penalty, time.Duration(0))

	subms, err := srvc.ListSubms(ctx, compID)
	require.NoError(t, err)
	feedLen := len(subms)

	// fully solved participant is never scheduled again
	for i := 0; i < 5; i++ {
		clock.Advance(time.Second)
	}
	time.Sleep(50 * time.Millisecond)
	subms, err = srvc.ListSubms(ctx, compID)
	require.NoError(t, err)
	assert.Len(t, subms, feedLen)
}

func TestTurnTimeoutReleasesParticipant(t *testing.T) {
	clock := clockwork.NewFakeClock()
	srvc := comp.NewCompSrvc(hangingJudge(), clock,
		comp.Options{Duration: 600 * time.Second})
	defer srvc.Close()

	ctx := context.Background()
	params := defaultParams()
	params.Problems = params.Problems[:1]
	compID, err := srvc.CreateComp(ctx, params)
	require.NoError(t, err)

	clock.BlockUntil(1)
	clock.Advance(time.Second)

	require.Eventually(t, func() bool {
		subms, err := srvc.ListSubms(ctx, compID)
		return err == nil && len(subms) == 1 &&
			subms[0].Status == compdomain.StatusQueued
	}, 2*time.Second, 10*time.Millisecond)

	// the turn's timeout timer and the re-armed ticker are both waiting
	clock.BlockUntil(2)
	clock.Advance(240 * time.Second)

	require.Eventually(t, func() bool {
		subms, err := srvc.ListSubms(ctx, compID)
		if err != nil {
			return false
		}
		for _, subm := range subms {
			if subm.Status == compdomain.StatusTimeLimit {
				return true
			}
		}
		return false
	}, 2*time.Second, 10*time.Millisecond)

	// participant came back to idle and got scheduled again: either a fresh
	// queued submission exists or the next tick will create one
	clock.Advance(time.Second)
	require.Eventually(t, func() bool {
		subms, err := srvc.ListSubms(ctx, compID)
		return err == nil && len(subms) >= 2
	}, 2*time.Second, 10*time.Millisecond)
}

func TestJudgeErrorMapsToOtherAndReleases(t *testing.T) {
	clock := clockwork.NewFakeClock()
	failing := &fakeJudge{
		judgeFn: func(ctx context.Context, req judge.Request) (*judge.Verdict, error) {
			return nil, context.DeadlineExceeded
		},
	}
	srvc := comp.NewCompSrvc(failing, clock, comp.Options{})
	defer srvc.Close()

	ctx := context.Background()
	compID, err := srvc.CreateComp(ctx, defaultParams())
	require.NoError(t, err)

	clock.BlockUntil(1)
	clock.Advance(time.Second)

	require.Eventually(t, func() bool {
		subms, err := srvc.ListSubms(ctx, compID)
		return err == nil && len(subms) == 1 &&
			subms[0].Status == compdomain.StatusOther
	}, 2*time.Second, 10*time.Millisecond)

	view, err := srvc.GetComp(ctx, compID)
	require.NoError(t, err)
	assert.Equal(t, 0, view.Leaderboard[0].Score)

	// failed turn released the participant; the next tick schedules again
	clock.Advance(time.Second)
	require.Eventually(t, func() bool {
		subms, err := srvc.ListSubms(ctx, compID)
		return err == nil && len(subms) == 2
	}, 2*time.Second, 10*time.Millisecond)
}

func TestFeedSubscription(t *testing.T) {
	clock := clockwork.NewFakeClock()
	srvc := comp.NewCompSrvc(verdictJudge("COMPILATION_ERROR"), clock, comp.Options{})
	defer srvc.Close()

	ctx := context.Background()
	compID, err := srvc.CreateComp(ctx, defaultParams())
	require.NoError(t, err)

	updates, unsubscribe, err := srvc.SubscribeFeed(ctx, compID)
	require.NoError(t, err)
	defer unsubscribe()

	clock.BlockUntil(1)
	clock.Advance(time.Second)

	var created, updated bool
	deadline := time.After(2 * time.Second)
	for !(created && updated) {
		select {
		case update := <-updates:
			if update.Created != nil {
				assert.Equal(t, compdomain.StatusQueued, update.Created.Status)
				created = true
			}
			if update.Updated != nil {
				assert.Equal(t, compdomain.StatusCompileError, update.Updated.Status)
				updated = true
			}
		case <-deadline:
			t.Fatal("did not receive feed updates in time")
		}
	}
}

func TestGetCompUnknownID(t *testing.T) {
	srvc := comp.NewCompSrvc(verdictJudge("ACCEPTED"), clockwork.NewFakeClock(), comp.Options{})
	defer srvc.Close()

	compID, err := srvc.CreateComp(context.Background(), defaultParams())
	require.NoError(t, err)

	_, err = srvc.GetComp(context.Background(), compID)
	assert.NoError(t, err)

	_, err = srvc.ListSubms(context.Background(), uuid.New())
	assert.Error(t, err)
}
