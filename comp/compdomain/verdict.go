package compdomain

import "strings"

// SubmStatus is the lifecycle status of a submission.
type SubmStatus string

const (
	StatusQueued       SubmStatus = "QUEUED"
	StatusProcessing   SubmStatus = "PROCESSING"
	StatusAccepted     SubmStatus = "ACCEPTED"
	StatusWrongAnswer  SubmStatus = "WRONG_ANSWER"
	StatusTimeLimit    SubmStatus = "TIME_LIMIT"
	StatusMemoryLimit  SubmStatus = "MEMORY_LIMIT"
	StatusCompileError SubmStatus = "COMPILATION_ERROR"
	StatusRuntimeError SubmStatus = "RUNTIME_ERROR"
	StatusOther        SubmStatus = "OTHER"
)

// runtimeErrorPrefix tags runtime error variants on the wire, e.g.
// "RUNTIME_ERROR_SIGSEGV" or "RUNTIME_ERROR_NZEC".
const runtimeErrorPrefix = "RUNTIME_ERROR_"

// IsFinal reports whether the status is terminal for a submission.
func (s SubmStatus) IsFinal() bool {
	switch s {
	case StatusQueued, StatusProcessing:
		return false
	}
	return true
}

// ParseVerdictStatus maps the external judge's status string to a SubmStatus
// plus an optional detail payload. Runtime error variants collapse into
// StatusRuntimeError with the suffix as detail; anything unrecognized maps
// to StatusOther.
func ParseVerdictStatus(raw string) (SubmStatus, string) {
	if strings.HasPrefix(raw, runtimeErrorPrefix) {
		return StatusRuntimeError, strings.TrimPrefix(raw, runtimeErrorPrefix)
	}
	switch SubmStatus(raw) {
	case StatusQueued, StatusProcessing, StatusAccepted, StatusWrongAnswer,
		StatusTimeLimit, StatusMemoryLimit, StatusCompileError, StatusOther:
		return SubmStatus(raw), ""
	}
	return StatusOther, ""
}
