package httpserver

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"ventas-dashboard/internal/backend"
	"ventas-dashboard/internal/domain"
)

func errorBody(message string) gin.H {
	return gin.H{"message": message}
}

// writeError maps service errors to a status and a {"message": ...} body.
func writeError(c *gin.Context, logger *log.Logger, err error) {
	var (
		vErr   *domain.ValidationError
		subErr *domain.SubmissionError
		apiErr *backend.APIError
	)
	switch {
	case errors.As(err, &vErr):
		body := errorBody(vErr.Error())
		if vErr.Field != "" {
			body["field"] = vErr.Field
		}
		c.JSON(http.StatusBadRequest, body)
	case errors.As(err, &subErr):
		status := http.StatusBadGateway
		if backend.IsClientError(subErr.Err) {
			status = http.StatusUnprocessableEntity
		}
		logger.Printf("http: %s %s submission failed: %v", c.Request.Method, c.FullPath(), err)
		c.JSON(status, errorBody(subErr.Message))
	case errors.Is(err, domain.ErrNotFound):
		c.JSON(http.StatusNotFound, errorBody(upstreamMessage(err, "not found")))
	case errors.Is(err, domain.ErrUnauthorized):
		c.JSON(http.StatusUnauthorized, errorBody(upstreamMessage(err, err.Error())))
	case errors.Is(err, domain.ErrAlreadyExists):
		c.JSON(http.StatusConflict, errorBody("already exists"))
	case errors.As(err, &apiErr):
		status := http.StatusBadGateway
		if backend.IsClientError(apiErr) {
			status = apiErr.StatusCode
		}
		msg := apiErr.UserMessage()
		if msg == "" {
			msg = http.StatusText(status)
		}
		c.JSON(status, errorBody(msg))
	default:
		logger.Printf("http: %s %s error=%v", c.Request.Method, c.FullPath(), err)
		c.JSON(http.StatusInternalServerError, errorBody("internal error"))
	}
}

// upstreamMessage prefers the inventory API's own wording over def.
func upstreamMessage(err error, def string) string {
	var apiErr *backend.APIError
	if errors.As(err, &apiErr) && apiErr.UserMessage() != "" {
		return apiErr.UserMessage()
	}
	return def
}

func badRequest(c *gin.Context, message string) {
	c.JSON(http.StatusBadRequest, errorBody(message))
}
