package compdomain

// acceptedMarker is the value the external judge expects for a solved
// problem in the leaderboard snapshot. Unsolved problems carry the attempt
// count instead.
const acceptedMarker = "aceptado"

// JudgeSnapshot builds the compact leaderboard view sent along with every
// code-generation request so the judge's orchestrator sees competitive
// context: participant id -> problem id -> "aceptado" or attempt count.
func JudgeSnapshot(participants []Participant, problems []Problem) map[string]map[string]any {
	snapshot := make(map[string]map[string]any, len(participants))
	for _, p := range participants {
		row := make(map[string]any, len(problems))
		for _, problem := range problems {
			st := p.Problems[problem.ID]
			if st.Accepted {
				row[problem.ID] = acceptedMarker
			} else {
				row[problem.ID] = st.Attempts
			}
		}
		snapshot[p.ID] = row
	}
	return snapshot
}
