package judge

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"github.com/llmarena/backend/comp/compdomain"
	"goa.design/clue/log"
)

// Client talks to the external judging backend: problem retrieval and the
// code-generation/judging endpoint. The backend owns sandboxing, judge
// dispatch and LLM orchestration; this side only sees the two endpoints.
type Client interface {
	Problems(ctx context.Context, n int) ([]compdomain.Problem, error)
	Judge(ctx context.Context, req Request) (*Verdict, error)
}

type HttpClient struct {
	baseUrl string
	doer    *http.Client
}

// NewHttpClient returns a client for the judge backend at baseUrl, e.g.
// "http://localhost:8000/api". Per-call deadlines come from the caller's
// context, so the underlying http.Client carries no timeout of its own.
func NewHttpClient(baseUrl string) *HttpClient {
	return &HttpClient{
		baseUrl: baseUrl,
		doer:    &http.Client{},
	}
}

// Problems fetches n random problems from the judge backend.
func (c *HttpClient) Problems(ctx context.Context, n int) ([]compdomain.Problem, error) {
	endpoint := fmt.Sprintf("%s/problems?%s", c.baseUrl,
		url.Values{"num_problems": []string{strconv.Itoa(n)}}.Encode())

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build problem list request: %w", err)
	}

	resp, err := c.doer.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch problem list: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, ErrJudgeStatus(resp.StatusCode)
	}

	var infos []problemInfo
	if err := json.NewDecoder(resp.Body).Decode(&infos); err != nil {
		return nil, fmt.Errorf("failed to decode problem list: %w", err)
	}

	problems := make([]compdomain.Problem, len(infos))
	for i, info := range infos {
		problems[i] = compdomain.Problem{
			ID:   info.ProblemID,
			Name: info.displayName(),
		}
	}
	return problems, nil
}

// Judge issues exactly one code-generation/judging request. The caller is
// expected to bound the call with a context deadline; cancelling the context
// aborts the underlying request.
func (c *HttpClient) Judge(ctx context.Context, judgeReq Request) (*Verdict, error) {
	body, err := json.Marshal(judgeReq)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal judge request: %w", err)
	}

	log.Printf(ctx, "judge.generate contestant=%s model=%s problem=%s",
		judgeReq.ContestantID, judgeReq.Model, judgeReq.ProblemID)

	endpoint := fmt.Sprintf("%s/generate", c.baseUrl)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint,
		bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("failed to build judge request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.doer.Do(req)
	if err != nil {
		return nil, fmt.Errorf("judge request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		log.Errorf(ctx, ErrJudgeStatus(resp.StatusCode),
			"judge returned status %d", resp.StatusCode)
		return nil, ErrJudgeStatus(resp.StatusCode)
	}

	var response Response
	if err := json.NewDecoder(resp.Body).Decode(&response); err != nil {
		return nil, fmt.Errorf("failed to decode judge response: %w", err)
	}

	return &response.Verdict, nil
}
