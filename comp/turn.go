package comp

import (
	"context"
	"log/slog"

	"github.com/google/uuid"
	"github.com/llmarena/backend/comp/compdomain"
	"github.com/llmarena/backend/judge"
)

// runTurn drives one participant's attempt at one problem: a single judge
// call raced against the turn timeout. It never touches session state
// directly; the outcome is folded in through the apply channel. Errors stop
// here: whatever happens, the participant is released back to idle.
func (s *session) runTurn(participantID, problemID string, submID uuid.UUID, req judge.Request) {
	ctx, cancel := context.WithCancel(s.ctx)
	defer cancel()

	type judgeRes struct {
		verdict *judge.Verdict
		err     error
	}
	resCh := make(chan judgeRes, 1)
	go func() {
		verdict, err := s.judge.Judge(ctx, req)
		resCh <- judgeRes{verdict: verdict, err: err}
	}()

	var status compdomain.SubmStatus
	var detail string
	var tests []compdomain.TestCaseRes

	select {
	case res := <-resCh:
		if res.err != nil {
			slog.Default().Warn("turn failed",
				"comp_id", s.id,
				"participant", participantID,
				"problem", problemID,
				"error", res.err)
			status = compdomain.StatusOther
		} else {
			status, detail = compdomain.ParseVerdictStatus(res.verdict.Status)
			tests = mapTestCases(res.verdict.TestCases)
		}
	case <-s.clock.After(s.opts.TurnTimeout):
		// abort the in-flight judge request rather than leaking it
		cancel()
		slog.Default().Warn("turn timed out",
			"comp_id", s.id,
			"participant", participantID,
			"problem", problemID)
		status = compdomain.StatusTimeLimit
	case <-s.ctx.Done():
		return
	}

	s.post(func(st *sessionState) {
		s.foldTurn(st, participantID, problemID, submID, status, detail, tests)
	})
}

// foldTurn applies one finished turn to the session state. Runs on the run
// loop.
func (s *session) foldTurn(
	st *sessionState,
	participantID, problemID string,
	submID uuid.UUID,
	status compdomain.SubmStatus,
	detail string,
	tests []compdomain.TestCaseRes,
) {
	for i := range st.feed {
		if st.feed[i].UUID != submID {
			continue
		}
		st.feed[i].Status = status
		st.feed[i].Detail = detail
		st.feed[i].TestCases = tests
		notifyListeners(st, FeedUpdate{Updated: cloneSubm(st.feed[i])})
		break
	}

	for i := range st.participants {
		p := &st.participants[i]
		if p.ID != participantID {
			continue
		}
		ps := p.Problems[problemID]
		ps.Attempts++
		if status == compdomain.StatusAccepted && !ps.Accepted {
			ps.Accepted = true
			now := s.clock.Now()
			ps.AcceptedAt = &now
			// penalty grows only on the first acceptance of a problem
			p.Penalty += now.Sub(s.startedAt)
		}
		p.Problems[problemID] = ps
		p.Score = p.SolvedCount()
		p.Processing = false
		p.CurrentProblem = nil
		break
	}
}

func mapTestCases(wire []judge.TestCaseRes) []compdomain.TestCaseRes {
	if len(wire) == 0 {
		return nil
	}
	res := make([]compdomain.TestCaseRes, len(wire))
	for i, tc := range wire {
		status, _ := compdomain.ParseVerdictStatus(tc.Verdict)
		res[i] = compdomain.TestCaseRes{
			Input:    tc.TestCase,
			Expected: tc.ExpectedOutput,
			Actual:   tc.ActualOutput,
			Status:   status,
		}
	}
	return res
}
