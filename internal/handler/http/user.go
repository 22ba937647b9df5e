package http

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/jcleow/birding-express-swe1/internal/middleware"
	"github.com/jcleow/birding-express-swe1/internal/service"
)

// UserHandler serves the dashboard redirect and the per-user sighting
// page.
type UserHandler struct {
	userService *service.UserService
}

// NewUserHandler creates a UserHandler.
func NewUserHandler(userService *service.UserService) *UserHandler {
	return &UserHandler{userService: userService}
}

// Dashboard resolves the logged-in username to a user id and redirects to
// that user's sighting page.
func (h *UserHandler) Dashboard(c *gin.Context) {
	username, ok := middleware.SessionUsername(c)
	if !ok {
		renderError(c, http.StatusForbidden, "Sorry you entered the wrong username and/or password")
		return
	}

	userID, err := h.userService.DashboardUserID(c.Request.Context(), username)
	if err != nil {
		HandleServiceError(c, err)
		return
	}
	c.Redirect(http.StatusFound, "/users/"+strconv.FormatUint(uint64(userID), 10))
}

// Sightings renders one user's sightings with the species filter
// dropdown. The optional species_name query narrows the list.
func (h *UserHandler) Sightings(c *gin.Context) {
	userID, ok := pathID(c, "id")
	if !ok {
		renderBadRequest(c, "Invalid user id")
		return
	}

	page, err := h.userService.Sightings(c.Request.Context(), userID, c.Query("species_name"))
	if err != nil {
		HandleServiceError(c, err)
		return
	}

	data := gin.H{
		"user":      page.User,
		"sightings": page.Sightings,
		"listView":  page.SpeciesList,
	}
	if page.Selected != nil {
		data["selectedSpeciesData"] = page.Selected
	}
	c.HTML(http.StatusOK, "user_sightings.html", withSession(c, data))
}
