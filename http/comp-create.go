package http

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/llmarena/backend/comp"
	"github.com/llmarena/backend/comp/compdomain"
	"github.com/llmarena/backend/httpjson"
)

func (httpserver *HttpServer) createComp(w http.ResponseWriter, r *http.Request) {
	type participantReq struct {
		ContestantID string `json:"contestant_id"`
		Model        string `json:"model"`
	}
	type createCompRequest struct {
		NumProblems  int              `json:"num_problems"`
		Problems     []ProblemView    `json:"problems"`
		Participants []participantReq `json:"participants"`
	}

	var request createCompRequest
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		http.Error(w, http.StatusText(http.StatusBadRequest), http.StatusBadRequest)
		return
	}

	slog.Default().Info(
		"create comp request",
		"num_problems", request.NumProblems,
		"problems", len(request.Problems),
		"participants", len(request.Participants),
	)

	problems := make([]compdomain.Problem, len(request.Problems))
	for i, p := range request.Problems {
		problems[i] = compdomain.Problem{ID: p.ProblemID, Name: p.Name}
	}

	// no explicit problem set: fetch a random one from the judge backend.
	// this is the one bootstrap step where failure blocks the caller.
	if len(problems) == 0 && request.NumProblems > 0 {
		fetched, err := httpserver.judgeClnt.Problems(r.Context(), request.NumProblems)
		if err != nil {
			httpjson.HandleError(slog.Default(), w, err)
			return
		}
		problems = fetched
	}

	participants := make([]comp.NewParticipant, len(request.Participants))
	for i, p := range request.Participants {
		if p.ContestantID == "" {
			p.ContestantID = fmt.Sprintf("contestant-%d", i+1)
		}
		participants[i] = comp.NewParticipant{ID: p.ContestantID, Model: p.Model}
	}

	compID, err := httpserver.compSrvc.CreateComp(r.Context(), comp.NewCompParams{
		Problems:     problems,
		Participants: participants,
	})
	if err != nil {
		httpjson.HandleError(slog.Default(), w, err)
		return
	}

	type createCompResponse struct {
		CompID string `json:"comp_id"`
	}
	httpjson.WriteSuccessJson(w, createCompResponse{CompID: compID.String()})
}
