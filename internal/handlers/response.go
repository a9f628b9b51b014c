package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	types "github.com/yungbote/kanban-backend/internal/domain"
)

type APIError struct {
	Message string `json:"message"`
	Code    string `json:"code,omitempty"`
}

type ErrorEnvelope struct {
	Error APIError `json:"error"`
}

func RespondError(c *gin.Context, status int, code string, err error) {
	msg := "unknown error"
	if err != nil {
		msg = err.Error()
	}
	c.JSON(status, ErrorEnvelope{
		Error: APIError{
			Message: msg,
			Code:    code,
		},
	})
}

// StatusFor maps a repository result code onto its HTTP status.
func StatusFor(resp types.Response) int {
	switch resp {
	case types.ResponseCreated:
		return http.StatusCreated
	case types.ResponseUpdated:
		return http.StatusOK
	case types.ResponseDeleted:
		return http.StatusNoContent
	case types.ResponseNotFound:
		return http.StatusNotFound
	case types.ResponseConflict:
		return http.StatusConflict
	case types.ResponseBadRequest:
		return http.StatusBadRequest
	}
	return http.StatusInternalServerError
}

// respondResult is the shared tail of every mutating handler: 500 on a store
// failure, otherwise the result code's status with an optional payload.
func respondResult(c *gin.Context, resp types.Response, err error, payload any) {
	if err != nil {
		RespondError(c, http.StatusInternalServerError, "store_error", err)
		return
	}
	status := StatusFor(resp)
	if status == http.StatusNoContent || payload == nil {
		c.Status(status)
		return
	}
	c.JSON(status, payload)
}

// pathID parses the :id segment, answering 400 itself when malformed.
func pathID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		RespondError(c, http.StatusBadRequest, "invalid_id", err)
		return 0, false
	}
	return id, true
}
