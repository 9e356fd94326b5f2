package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
)

// apiClient is a thin client for the arena backend's HTTP surface.
type apiClient struct {
	baseUrl string
	doer    *http.Client
}

func newApiClient(baseUrl string) *apiClient {
	return &apiClient{
		baseUrl: baseUrl,
		doer:    &http.Client{},
	}
}

type envelope struct {
	Status  string          `json:"status"`
	Data    json.RawMessage `json:"data"`
	ErrMsg  string          `json:"message"`
	ErrCode string          `json:"code"`
}

func (c *apiClient) do(method, path string, body any, out any) error {
	var reqBody *bytes.Reader
	if body != nil {
		marshalled, err := json.Marshal(body)
		if err != nil {
			return err
		}
		reqBody = bytes.NewReader(marshalled)
	} else {
		reqBody = bytes.NewReader(nil)
	}

	req, err := http.NewRequest(method, c.baseUrl+path, reqBody)
	if err != nil {
		return err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.doer.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	var env envelope
	if err := json.NewDecoder(resp.Body).Decode(&env); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}
	if env.Status != "success" {
		return fmt.Errorf("server error: %s (%s)", env.ErrMsg, env.ErrCode)
	}
	if out != nil {
		return json.Unmarshal(env.Data, out)
	}
	return nil
}

type problemView struct {
	ProblemID string `json:"problem_id"`
	Name      string `json:"name"`
}

type leaderboardRowView struct {
	ContestantID   string  `json:"contestant_id"`
	Model          string  `json:"model"`
	Score          int     `json:"score"`
	PenaltyMs      int64   `json:"penalty_ms"`
	Processing     bool    `json:"processing"`
	CurrentProblem *string `json:"current_problem"`
}

type compView struct {
	CompID       string               `json:"comp_id"`
	Active       bool                 `json:"active"`
	RemainingSec int                  `json:"remaining_sec"`
	Problems     []problemView        `json:"problems"`
	Leaderboard  []leaderboardRowView `json:"leaderboard"`
}

type submView struct {
	SubmUUID     string `json:"subm_uuid"`
	ContestantID string `json:"contestant_id"`
	Model        string `json:"model"`
	ProblemID    string `json:"problem_id"`
	Status       string `json:"status"`
	Detail       string `json:"detail"`
}

func (c *apiClient) createComp(numProblems int, models []string) (string, error) {
	participants := make([]map[string]string, len(models))
	for i, model := range models {
		participants[i] = map[string]string{
			"contestant_id": fmt.Sprintf("contestant-%d", i+1),
			"model":         model,
		}
	}
	var resp struct {
		CompID string `json:"comp_id"`
	}
	err := c.do(http.MethodPost, "/competitions", map[string]any{
		"num_problems": numProblems,
		"participants": participants,
	}, &resp)
	if err != nil {
		return "", err
	}
	return resp.CompID, nil
}

func (c *apiClient) getComp(compID string) (*compView, error) {
	var view compView
	if err := c.do(http.MethodGet, "/competitions/"+compID, nil, &view); err != nil {
		return nil, err
	}
	return &view, nil
}

func (c *apiClient) listSubms(compID string) ([]submView, error) {
	var subms []submView
	if err := c.do(http.MethodGet, "/competitions/"+compID+"/submissions", nil, &subms); err != nil {
		return nil, err
	}
	return subms, nil
}
