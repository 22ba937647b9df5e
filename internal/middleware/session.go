// Package middleware holds the gin middleware: the cookie session
// contract, the login guard and the Redis rate limiter.
package middleware

import (
	"crypto/subtle"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/jcleow/birding-express-swe1/internal/service"
)

// Cookie names of the session triple. The three values are set together
// on login/signup and cleared together on logout.
const (
	CookieUser = "loggedInUser"
	CookieID   = "loggedInUserId"
	CookieHash = "loggedInHash"
)

// Context keys populated by Session for downstream handlers.
const (
	CtxUserID   = "user_id"
	CtxUsername = "username"
	CtxDigest   = "session_digest"
)

// Session attaches the cookie identity to the request context. A request
// counts as logged in only when all three cookies are present and the
// digest recomputes from the presented id with the server salt; anything
// else is treated as anonymous rather than rejected, because most routes
// are public.
func Session(hasher *service.Hasher) gin.HandlerFunc {
	if hasher == nil {
		panic("Hasher cannot be nil for Session middleware")
	}

	return func(c *gin.Context) {
		username, errUser := c.Cookie(CookieUser)
		idStr, errID := c.Cookie(CookieID)
		digest, errHash := c.Cookie(CookieHash)
		if errUser != nil || errID != nil || errHash != nil {
			c.Next()
			return
		}

		userID, err := strconv.ParseUint(idStr, 10, 32)
		if err != nil || userID == 0 {
			logrus.WithField("cookie_id", idStr).Warn("Session: malformed user id cookie")
			c.Next()
			return
		}

		expected := hasher.UserIDDigest(uint(userID))
		if subtle.ConstantTimeCompare([]byte(expected), []byte(digest)) != 1 {
			logrus.WithField("user_id", userID).Warn("Session: digest does not recompute, ignoring cookies")
			c.Next()
			return
		}

		c.Set(CtxUserID, uint(userID))
		c.Set(CtxUsername, username)
		c.Set(CtxDigest, digest)
		c.Next()
	}
}

// RequireLogin aborts with 403 and the generic error view when Session
// did not establish an identity.
func RequireLogin() gin.HandlerFunc {
	return func(c *gin.Context) {
		if _, ok := c.Get(CtxUserID); !ok {
			c.HTML(http.StatusForbidden, "error.html", gin.H{"message": "You must be logged in to do that"})
			c.Abort()
			return
		}
		c.Next()
	}
}

// SessionUserID returns the authenticated user id, or false when the
// request is anonymous.
func SessionUserID(c *gin.Context) (uint, bool) {
	v, ok := c.Get(CtxUserID)
	if !ok {
		return 0, false
	}
	id, ok := v.(uint)
	return id, ok
}

// SessionUsername returns the authenticated username, or false.
func SessionUsername(c *gin.Context) (string, bool) {
	v, ok := c.Get(CtxUsername)
	if !ok {
		return "", false
	}
	name, ok := v.(string)
	return name, ok
}

// SessionDigest returns the presented identity digest, or false.
func SessionDigest(c *gin.Context) (string, bool) {
	v, ok := c.Get(CtxDigest)
	if !ok {
		return "", false
	}
	digest, ok := v.(string)
	return digest, ok
}
