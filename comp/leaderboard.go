package comp

import (
	"sort"
	"time"

	"github.com/llmarena/backend/comp/compdomain"
)

// Row is one leaderboard entry. Rank is positional: rows come back already
// ordered, nothing stores a rank.
type Row struct {
	ParticipantID  string
	Model          string
	Score          int
	Penalty        time.Duration
	Processing     bool
	CurrentProblem *string
	Problems       map[string]compdomain.ProblemStatus
}

// Leaderboard derives the ordered standings from a participant list. The
// score is recomputed from the problem status map rather than trusted, and
// ties break on lower penalty.
func Leaderboard(participants []compdomain.Participant) []Row {
	rows := make([]Row, len(participants))
	for i, p := range participants {
		problems := make(map[string]compdomain.ProblemStatus, len(p.Problems))
		for id, st := range p.Problems {
			problems[id] = st
		}
		rows[i] = Row{
			ParticipantID:  p.ID,
			Model:          p.Model,
			Score:          p.SolvedCount(),
			Penalty:        p.Penalty,
			Processing:     p.Processing,
			CurrentProblem: p.CurrentProblem,
			Problems:       problems,
		}
	}
	sort.SliceStable(rows, func(i, j int) bool {
		if rows[i].Score != rows[j].Score {
			return rows[i].Score > rows[j].Score
		}
		return rows[i].Penalty < rows[j].Penalty
	})
	return rows
}
