package compdomain_test

import (
	"testing"

	"github.com/llmarena/backend/comp/compdomain"
	"github.com/stretchr/testify/assert"
)

func TestParseVerdictStatusKnown(t *testing.T) {
	status, detail := compdomain.ParseVerdictStatus("ACCEPTED")
	assert.Equal(t, compdomain.StatusAccepted, status)
	assert.Empty(t, detail)

	status, detail = compdomain.ParseVerdictStatus("WRONG_ANSWER")
	assert.Equal(t, compdomain.StatusWrongAnswer, status)
	assert.Empty(t, detail)
}

func TestParseVerdictStatusRuntimeErrorVariants(t *testing.T) {
	for raw, detail := range map[string]string{
		"RUNTIME_ERROR_SIGSEGV":  "SIGSEGV",
		"RUNTIME_ERROR_SIGXFSZ":  "SIGXFSZ",
		"RUNTIME_ERROR_SIGFPE":   "SIGFPE",
		"RUNTIME_ERROR_SIGABRT":  "SIGABRT",
		"RUNTIME_ERROR_NZEC":     "NZEC",
		"RUNTIME_ERROR_OTHER":    "OTHER",
		"RUNTIME_ERROR_SEGFAULT": "SEGFAULT",
	} {
		status, got := compdomain.ParseVerdictStatus(raw)
		assert.Equal(t, compdomain.StatusRuntimeError, status, raw)
		assert.Equal(t, detail, got, raw)
	}
}

func TestParseVerdictStatusUnknownMapsToOther(t *testing.T) {
	status, detail := compdomain.ParseVerdictStatus("SOMETHING_NEW")
	assert.Equal(t, compdomain.StatusOther, status)
	assert.Empty(t, detail)
}

func TestJudgeSnapshot(t *testing.T) {
	problems := []compdomain.Problem{
		{ID: "latam2023/B", Name: "B"},
		{ID: "latam2023/D", Name: "D"},
	}
	participants := []compdomain.Participant{
		{
			ID: "contestant-1",
			Problems: map[string]compdomain.ProblemStatus{
				"latam2023/B": {Attempts: 3, Accepted: true},
				"latam2023/D": {Attempts: 2},
			},
		},
	}

	snapshot := compdomain.JudgeSnapshot(participants, problems)
	assert.Equal(t, "aceptado", snapshot["contestant-1"]["latam2023/B"])
	assert.Equal(t, 2, snapshot["contestant-1"]["latam2023/D"])
}
