package responses

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"samadhan-setu/services/reel-api/internal/domain/reel"
)

// ErrorResponse is the single JSON error shape the API emits.
type ErrorResponse struct {
	Error string `json:"error"`
}

// HandleError converts a pipeline error into exactly one JSON error
// response. Anything that is not a PipelineError is reported as a
// generic internal error; the cause stays in the logs.
func HandleError(c *gin.Context, err error) {
	var pipeErr *reel.PipelineError
	if errors.As(err, &pipeErr) {
		c.AbortWithStatusJSON(pipeErr.HTTPStatus(), ErrorResponse{Error: pipeErr.Public})
		return
	}
	c.AbortWithStatusJSON(http.StatusInternalServerError, ErrorResponse{Error: "Internal server error"})
}
