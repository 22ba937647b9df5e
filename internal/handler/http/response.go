// Package http holds the gin request handlers. Handlers bind and validate
// forms, call services, and hand a rendering object to the template layer.
package http

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/jcleow/birding-express-swe1/internal/middleware"
)

// withSession copies the logged-in identity into the rendering object so
// every view can adjust its navbar.
func withSession(c *gin.Context, data gin.H) gin.H {
	if username, ok := middleware.SessionUsername(c); ok {
		data["loggedInUser"] = username
	}
	if userID, ok := middleware.SessionUserID(c); ok {
		data["loggedInUserId"] = userID
	}
	return data
}

// pathID parses a numeric :id path parameter.
func pathID(c *gin.Context, name string) (uint, bool) {
	raw := c.Param(name)
	id, err := strconv.ParseUint(raw, 10, 32)
	if err != nil || id == 0 {
		return 0, false
	}
	return uint(id), true
}
