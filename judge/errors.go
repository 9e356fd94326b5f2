package judge

import (
	"fmt"
	"net/http"

	"github.com/llmarena/backend/srvcerror"
)

const ErrCodeJudgeUnavailable = "judge_unavailable"

func ErrJudgeStatus(statusCode int) *srvcerror.Error {
	return srvcerror.New(
		ErrCodeJudgeUnavailable,
		"judging backend is unavailable",
	).SetDebug(fmt.Errorf("judge responded with status %d", statusCode)).
		SetHttpStatusCode(http.StatusBadGateway)
}
