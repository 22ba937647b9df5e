package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/jcleow/birding-express-swe1/internal/service"
)

// HandleServiceError maps business errors to HTTP statuses and renders
// the generic error view. Internal errors are logged here and never leak
// detail to the client.
func HandleServiceError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrAuthenticationFailed):
		renderError(c, http.StatusForbidden, "Sorry you entered the wrong username and/or password")
	case errors.Is(err, service.ErrForbidden):
		renderError(c, http.StatusForbidden, "You are not allowed to do that")
	case errors.Is(err, service.ErrNoteNotFound),
		errors.Is(err, service.ErrUserNotFound),
		errors.Is(err, service.ErrSpeciesNotFound):
		renderError(c, http.StatusNotFound, "Not found")
	case errors.Is(err, service.ErrRegistrationFailed):
		renderError(c, http.StatusBadRequest, "Registration failed")
	case errors.Is(err, service.ErrInvalidInput):
		renderError(c, http.StatusBadRequest, "Invalid input")
	default:
		logrus.WithError(err).Error("Unhandled internal server error")
		renderError(c, http.StatusInternalServerError, "An unexpected error occurred")
	}
}

func renderError(c *gin.Context, code int, message string) {
	c.HTML(code, "error.html", gin.H{"message": message})
}

// renderBadRequest rejects malformed or missing form fields before any
// query is attempted.
func renderBadRequest(c *gin.Context, message string) {
	renderError(c, http.StatusBadRequest, message)
}
