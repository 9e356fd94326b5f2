package compdomain

import (
	"time"

	"github.com/google/uuid"
)

// Problem is one task of the competition. The problem set is fixed for the
// lifetime of a session.
type Problem struct {
	ID   string
	Name string
}

// ProblemStatus tracks one participant's progress on one problem.
type ProblemStatus struct {
	Attempts   int
	Accepted   bool
	AcceptedAt *time.Time
}

// Participant is one competing model instance. Score and Penalty are derived
// from Problems but kept denormalized the way the leaderboard reads them.
type Participant struct {
	ID             string
	Model          string
	Score          int
	Penalty        time.Duration
	Processing     bool
	CurrentProblem *string
	Problems       map[string]ProblemStatus
}

// SolvedCount recomputes the score from the problem status map.
func (p Participant) SolvedCount() int {
	count := 0
	for _, st := range p.Problems {
		if st.Accepted {
			count++
		}
	}
	return count
}

// Unsolved returns the ids of problems this participant has not solved yet,
// restricted to the given problem set.
func (p Participant) Unsolved(problems []Problem) []string {
	res := make([]string, 0)
	for _, problem := range problems {
		if !p.Problems[problem.ID].Accepted {
			res = append(res, problem.ID)
		}
	}
	return res
}

// TestCaseRes is the outcome of one judge test case, truncated by the judge
// for display.
type TestCaseRes struct {
	Input    string
	Expected string
	Actual   string
	Status   SubmStatus
}

// Submission is one attempt by one participant at one problem.
type Submission struct {
	UUID          uuid.UUID
	ParticipantID string
	Model         string
	ProblemID     string
	Status        SubmStatus
	Detail        string // runtime error detail, e.g. "SIGSEGV"
	TestCases     []TestCaseRes
	CreatedAt     time.Time
}
