package comp

import (
	"context"

	"github.com/google/uuid"
	"github.com/llmarena/backend/comp/compdomain"
)

// CompView is a consistent copy of one session's externally visible state.
type CompView struct {
	CompID      uuid.UUID
	Active      bool
	Remaining   int // seconds
	Problems    []compdomain.Problem
	Leaderboard []Row
}

// GetComp returns the current session view: countdown, problem set and the
// derived leaderboard.
func (s *CompSrvc) GetComp(ctx context.Context, compID uuid.UUID) (CompView, error) {
	sess, err := s.getSession(compID)
	if err != nil {
		return CompView{}, err
	}

	var view CompView
	err = sess.read(ctx, func(st *sessionState) {
		view = CompView{
			CompID:      sess.id,
			Active:      st.active,
			Remaining:   st.remaining,
			Problems:    append([]compdomain.Problem(nil), st.problems...),
			Leaderboard: Leaderboard(st.participants),
		}
	})
	if err != nil {
		return CompView{}, err
	}
	return view, nil
}

// ListSubms returns the retained submission feed, newest first.
func (s *CompSrvc) ListSubms(ctx context.Context, compID uuid.UUID) ([]compdomain.Submission, error) {
	sess, err := s.getSession(compID)
	if err != nil {
		return nil, err
	}

	var subms []compdomain.Submission
	err = sess.read(ctx, func(st *sessionState) {
		subms = make([]compdomain.Submission, len(st.feed))
		for i, subm := range st.feed {
			subms[i] = *cloneSubm(subm)
		}
	})
	if err != nil {
		return nil, err
	}
	return subms, nil
}
