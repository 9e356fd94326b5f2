package modellist

import (
	"net/http"

	"github.com/llmarena/backend/srvcerror"
)

const ErrCodeInvalidModel = "invalid_model"

func ErrInvalidModel() *srvcerror.Error {
	return srvcerror.New(
		ErrCodeInvalidModel,
		"unknown language model",
	).SetHttpStatusCode(http.StatusBadRequest)
}
