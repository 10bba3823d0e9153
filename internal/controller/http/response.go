package http

import (
	"errors"
	"net/http"

	"vidtube/internal/usecase"
	"vidtube/pkg/logger"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Response is the envelope every successful endpoint returns.
type Response struct {
	StatusCode int         `json:"statusCode"`
	Data       interface{} `json:"data"`
	Message    string      `json:"message"`
	Success    bool        `json:"success"`
}

// ErrorResponse is the envelope every failed endpoint returns.
type ErrorResponse struct {
	StatusCode int      `json:"statusCode"`
	Message    string   `json:"message"`
	Success    bool     `json:"success"`
	Errors     []string `json:"errors"`
}

func respond(c *gin.Context, status int, data interface{}, message string) {
	c.JSON(status, Response{
		StatusCode: status,
		Data:       data,
		Message:    message,
		Success:    true,
	})
}

// fail records the error and stops the handler chain; the body is written
// by ErrorHandler, never by the handler itself.
func fail(c *gin.Context, err error) {
	_ = c.Error(err)
	c.Abort()
}

// ErrorHandler is the single error boundary. It translates whatever a
// handler signalled into the uniform error envelope, defaulting to 500.
func ErrorHandler(log *logger.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) == 0 {
			return
		}

		err := c.Errors.Last().Err

		status := http.StatusInternalServerError
		message := "Internal Server Error"

		var appErr *usecase.Error
		if errors.As(err, &appErr) {
			status = appErr.Status
			message = appErr.Message
		} else {
			log.Error("Unhandled error on %s %s: %v", c.Request.Method, c.Request.URL.Path, err)
		}

		c.JSON(status, ErrorResponse{
			StatusCode: status,
			Message:    message,
			Success:    false,
			Errors:     []string{},
		})
	}
}

// objectIDParam is the uniform id-shape guard for path parameters naming
// an entity. A malformed id never reaches the persistence layer.
func objectIDParam(c *gin.Context, name string) (string, bool) {
	id := c.Param(name)
	if _, err := primitive.ObjectIDFromHex(id); err != nil {
		fail(c, usecase.BadRequest("Invalid "+name))
		return "", false
	}
	return id, true
}
