package comp

import (
	"context"
	"log/slog"

	"github.com/google/uuid"
	"github.com/llmarena/backend/comp/compdomain"
	"github.com/llmarena/backend/modellist"
)

// NewParticipant pairs a contestant id with the model that plays it.
type NewParticipant struct {
	ID    string
	Model string
}

// NewCompParams is the untrusted session bootstrap input.
type NewCompParams struct {
	Problems     []compdomain.Problem
	Participants []NewParticipant
}

func (p NewCompParams) validate() error {
	if len(p.Problems) == 0 {
		return ErrNoProblems()
	}
	if len(p.Participants) == 0 {
		return ErrNoParticipants()
	}
	problemIDs := make(map[string]bool, len(p.Problems))
	for _, problem := range p.Problems {
		if problem.ID == "" {
			return ErrEmptyID()
		}
		if problemIDs[problem.ID] {
			return ErrDuplicateProblem(problem.ID)
		}
		problemIDs[problem.ID] = true
	}
	participantIDs := make(map[string]bool, len(p.Participants))
	for _, participant := range p.Participants {
		if participant.ID == "" {
			return ErrEmptyID()
		}
		if participantIDs[participant.ID] {
			return ErrDuplicateParticipant(participant.ID)
		}
		participantIDs[participant.ID] = true
		if _, err := modellist.GetModelByID(participant.Model); err != nil {
			return err
		}
	}
	return nil
}

// CreateComp validates the bootstrap input, builds the initial session state
// with one zero-valued problem status per problem per participant, and
// starts the session's countdown and scheduling loop.
func (s *CompSrvc) CreateComp(ctx context.Context, params NewCompParams) (uuid.UUID, error) {
	if err := params.validate(); err != nil {
		return uuid.Nil, err
	}

	problems := append([]compdomain.Problem(nil), params.Problems...)
	participants := make([]compdomain.Participant, len(params.Participants))
	for i, np := range params.Participants {
		statuses := make(map[string]compdomain.ProblemStatus, len(problems))
		for _, problem := range problems {
			statuses[problem.ID] = compdomain.ProblemStatus{}
		}
		participants[i] = compdomain.Participant{
			ID:       np.ID,
			Model:    np.Model,
			Problems: statuses,
		}
	}

	sess := newSession(s.ctx, s.clock, s.judge, s.opts, problems, participants)

	s.mu.Lock()
	s.comps[sess.id] = sess
	s.mu.Unlock()

	slog.Default().Info("competition created",
		"comp_id", sess.id,
		"problems", len(problems),
		"participants", len(participants))

	return sess.id, nil
}
