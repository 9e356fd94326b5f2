package comp

import (
	"net/http"

	"github.com/llmarena/backend/srvcerror"
)

const ErrCodeCompNotFound = "competition_not_found"

func ErrCompNotFound() *srvcerror.Error {
	return srvcerror.New(
		ErrCodeCompNotFound,
		"competition not found",
	).SetHttpStatusCode(http.StatusNotFound)
}

const ErrCodeNoProblems = "no_problems"

func ErrNoProblems() *srvcerror.Error {
	return srvcerror.New(
		ErrCodeNoProblems,
		"competition needs at least one problem",
	).SetHttpStatusCode(http.StatusBadRequest)
}

const ErrCodeNoParticipants = "no_participants"

func ErrNoParticipants() *srvcerror.Error {
	return srvcerror.New(
		ErrCodeNoParticipants,
		"competition needs at least one participant",
	).SetHttpStatusCode(http.StatusBadRequest)
}

const ErrCodeDuplicateProblem = "duplicate_problem"

func ErrDuplicateProblem(id string) *srvcerror.Error {
	return srvcerror.New(
		ErrCodeDuplicateProblem,
		"duplicate problem id: "+id,
	).SetHttpStatusCode(http.StatusBadRequest)
}

const ErrCodeDuplicateParticipant = "duplicate_participant"

func ErrDuplicateParticipant(id string) *srvcerror.Error {
	return srvcerror.New(
		ErrCodeDuplicateParticipant,
		"duplicate participant id: "+id,
	).SetHttpStatusCode(http.StatusBadRequest)
}

const ErrCodeEmptyID = "empty_identifier"

func ErrEmptyID() *srvcerror.Error {
	return srvcerror.New(
		ErrCodeEmptyID,
		"problem and participant identifiers must be non-empty",
	).SetHttpStatusCode(http.StatusBadRequest)
}
