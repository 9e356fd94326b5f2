package http

import (
	"time"

	"github.com/llmarena/backend/comp"
	"github.com/llmarena/backend/comp/compdomain"
)

type ProblemView struct {
	ProblemID string `json:"problem_id"`
	Name      string `json:"name"`
}

type ProblemStatusView struct {
	Attempts   int        `json:"attempts"`
	Accepted   bool       `json:"accepted"`
	AcceptedAt *time.Time `json:"accepted_at,omitempty"`
}

type LeaderboardRowView struct {
	ContestantID   string                       `json:"contestant_id"`
	Model          string                       `json:"model"`
	Score          int                          `json:"score"`
	PenaltyMs      int64                        `json:"penalty_ms"`
	Processing     bool                         `json:"processing"`
	CurrentProblem *string                      `json:"current_problem,omitempty"`
	Problems       map[string]ProblemStatusView `json:"problems"`
}

type CompView struct {
	CompID       string               `json:"comp_id"`
	Active       bool                 `json:"active"`
	RemainingSec int                  `json:"remaining_sec"`
	Problems     []ProblemView        `json:"problems"`
	Leaderboard  []LeaderboardRowView `json:"leaderboard"`
}

type TestCaseView struct {
	Input    string `json:"test_case"`
	Expected string `json:"expected_output"`
	Actual   string `json:"actual_output"`
	Status   string `json:"status"`
}

type SubmView struct {
	SubmUUID     string         `json:"subm_uuid"`
	ContestantID string         `json:"contestant_id"`
	Model        string         `json:"model"`
	ProblemID    string         `json:"problem_id"`
	Status       string         `json:"status"`
	Detail       string         `json:"detail,omitempty"`
	TestCases    []TestCaseView `json:"test_cases,omitempty"`
	CreatedAt    time.Time      `json:"created_at"`
}

func mapProblem(p compdomain.Problem) ProblemView {
	return ProblemView{ProblemID: p.ID, Name: p.Name}
}

func mapRow(row comp.Row) LeaderboardRowView {
	problems := make(map[string]ProblemStatusView, len(row.Problems))
	for id, st := range row.Problems {
		problems[id] = ProblemStatusView{
			Attempts:   st.Attempts,
			Accepted:   st.Accepted,
			AcceptedAt: st.AcceptedAt,
		}
	}
	return LeaderboardRowView{
		ContestantID:   row.ParticipantID,
		Model:          row.Model,
		Score:          row.Score,
		PenaltyMs:      row.Penalty.Milliseconds(),
		Processing:     row.Processing,
		CurrentProblem: row.CurrentProblem,
		Problems:       problems,
	}
}

func mapComp(view comp.CompView) CompView {
	problems := make([]ProblemView, len(view.Problems))
	for i, p := range view.Problems {
		problems[i] = mapProblem(p)
	}
	rows := make([]LeaderboardRowView, len(view.Leaderboard))
	for i, row := range view.Leaderboard {
		rows[i] = mapRow(row)
	}
	return CompView{
		CompID:       view.CompID.String(),
		Active:       view.Active,
		RemainingSec: view.Remaining,
		Problems:     problems,
		Leaderboard:  rows,
	}
}

func mapSubm(subm compdomain.Submission) SubmView {
	var tests []TestCaseView
	for _, tc := range subm.TestCases {
		tests = append(tests, TestCaseView{
			Input:    tc.Input,
			Expected: tc.Expected,
			Actual:   tc.Actual,
			Status:   string(tc.Status),
		})
	}
	return SubmView{
		SubmUUID:     subm.UUID.String(),
		ContestantID: subm.ParticipantID,
		Model:        subm.Model,
		ProblemID:    subm.ProblemID,
		Status:       string(subm.Status),
		Detail:       subm.Detail,
		TestCases:    tests,
		CreatedAt:    subm.CreatedAt,
	}
}
