package judge

// Request is the body of one code-generation/judging call. Leaderboard is
// the compact competitive-context snapshot: participant id -> problem id ->
// "aceptado" or attempt count.
type Request struct {
	ContestantID string                    `json:"contestant_id"`
	Model        string                    `json:"model"`
	ProblemID    string                    `json:"problem_id"`
	Leaderboard  map[string]map[string]any `json:"leaderboard"`
}

// TestCaseRes is one judge test case result as returned on the wire. The
// judge truncates inputs and outputs for display.
type TestCaseRes struct {
	TestCase       string `json:"test_case"`
	ExpectedOutput string `json:"expected_output"`
	ActualOutput   string `json:"actual_output"`
	Verdict        string `json:"verdict"`
}

// Verdict is the outcome classification for one submission attempt.
type Verdict struct {
	Status       string        `json:"status"`
	TestCases    []TestCaseRes `json:"test_cases"`
	ErrorMessage *string       `json:"error_message,omitempty"`
}

// Response is the body returned by the code-generation endpoint.
type Response struct {
	SubmissionID string  `json:"submission_id"`
	Verdict      Verdict `json:"verdict"`
	ErrorMessage *string `json:"error_message,omitempty"`
}

// problemInfo is the wire shape of one entry of the problem-list endpoint.
// Some judge deployments send "problem_name" instead of "name".
type problemInfo struct {
	ProblemID   string `json:"problem_id"`
	Name        string `json:"name"`
	ProblemName string `json:"problem_name"`
}

func (p problemInfo) displayName() string {
	if p.Name != "" {
		return p.Name
	}
	return p.ProblemName
}
