package middleware_test

import (
	"html/template"
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jcleow/birding-express-swe1/internal/middleware"
	"github.com/jcleow/birding-express-swe1/internal/service"
)

func errorTemplate(t *testing.T) *template.Template {
	t.Helper()
	tmpl, err := template.New("error.html").Parse("{{.message}}")
	require.NoError(t, err)
	return tmpl
}

func newTestHasher(t *testing.T) *service.Hasher {
	t.Helper()
	hasher, err := service.NewHasher("test-salt")
	require.NoError(t, err)
	return hasher
}

// sessionProbe mounts Session plus a handler that reports what identity,
// if any, the middleware attached to the request.
func sessionProbe(hasher *service.Hasher) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(middleware.Session(hasher))
	router.GET("/probe", func(c *gin.Context) {
		userID, ok := middleware.SessionUserID(c)
		if !ok {
			c.String(http.StatusOK, "anonymous")
			return
		}
		username, _ := middleware.SessionUsername(c)
		c.String(http.StatusOK, "user=%s id=%d", username, userID)
	})
	return router
}

func addSessionCookies(req *http.Request, username string, userID uint, digest string) {
	req.AddCookie(&http.Cookie{Name: middleware.CookieUser, Value: username})
	req.AddCookie(&http.Cookie{Name: middleware.CookieID, Value: strconv.FormatUint(uint64(userID), 10)})
	req.AddCookie(&http.Cookie{Name: middleware.CookieHash, Value: digest})
}

func TestSession_ValidTripleIdentifiesRequest(t *testing.T) {
	hasher := newTestHasher(t)
	router := sessionProbe(hasher)

	req := httptest.NewRequest(http.MethodGet, "/probe", nil)
	addSessionCookies(req, "alice", 7, hasher.UserIDDigest(7))
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "user=alice id=7", w.Body.String())
}

func TestSession_NoCookiesIsAnonymous(t *testing.T) {
	router := sessionProbe(newTestHasher(t))

	req := httptest.NewRequest(http.MethodGet, "/probe", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, "anonymous", w.Body.String())
}

func TestSession_MissingOneCookieIsAnonymous(t *testing.T) {
	hasher := newTestHasher(t)
	router := sessionProbe(hasher)

	// Hash cookie missing; the other two alone must not count.
	req := httptest.NewRequest(http.MethodGet, "/probe", nil)
	req.AddCookie(&http.Cookie{Name: middleware.CookieUser, Value: "alice"})
	req.AddCookie(&http.Cookie{Name: middleware.CookieID, Value: "7"})
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, "anonymous", w.Body.String())
}

func TestSession_TamperedIDIsAnonymous(t *testing.T) {
	hasher := newTestHasher(t)
	router := sessionProbe(hasher)

	// Digest was issued for user 7; the id cookie claims 8.
	req := httptest.NewRequest(http.MethodGet, "/probe", nil)
	addSessionCookies(req, "alice", 8, hasher.UserIDDigest(7))
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, "anonymous", w.Body.String())
}

func TestSession_MalformedIDIsAnonymous(t *testing.T) {
	hasher := newTestHasher(t)
	router := sessionProbe(hasher)

	req := httptest.NewRequest(http.MethodGet, "/probe", nil)
	req.AddCookie(&http.Cookie{Name: middleware.CookieUser, Value: "alice"})
	req.AddCookie(&http.Cookie{Name: middleware.CookieID, Value: "not-a-number"})
	req.AddCookie(&http.Cookie{Name: middleware.CookieHash, Value: hasher.UserIDDigest(7)})
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, "anonymous", w.Body.String())
}

func TestRequireLogin_AnonymousForbidden(t *testing.T) {
	hasher := newTestHasher(t)
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.SetHTMLTemplate(errorTemplate(t))
	router.Use(middleware.Session(hasher))
	reached := false
	router.GET("/guarded", middleware.RequireLogin(), func(c *gin.Context) {
		reached = true
		c.Status(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodGet, "/guarded", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.False(t, reached, "handler must not run for an anonymous request")
}

func TestRequireLogin_LoggedInPasses(t *testing.T) {
	hasher := newTestHasher(t)
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.SetHTMLTemplate(errorTemplate(t))
	router.Use(middleware.Session(hasher))
	router.GET("/guarded", middleware.RequireLogin(), func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodGet, "/guarded", nil)
	addSessionCookies(req, "alice", 7, hasher.UserIDDigest(7))
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
}
