package http

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/jcleow/birding-express-swe1/internal/middleware"
	"github.com/jcleow/birding-express-swe1/internal/service"
)

// AuthHandler serves signup, login and logout.
type AuthHandler struct {
	authService *service.AuthService
}

// NewAuthHandler creates an AuthHandler.
func NewAuthHandler(authService *service.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

// SignupRequest binds the signup form.
type SignupRequest struct {
	FirstName     string `form:"first_name" binding:"required"`
	LastName      string `form:"last_name" binding:"required"`
	Address       string `form:"address"`
	ZipCode       string `form:"zip_code"`
	ContactNumber string `form:"contact_number"`
	EmailAddress  string `form:"email_address" binding:"omitempty,email"`
	Username      string `form:"username" binding:"required,min=3,max=50"`
	Password      string `form:"password" binding:"required,min=6"`
}

// SignupForm renders the signup form.
func (h *AuthHandler) SignupForm(c *gin.Context) {
	c.HTML(http.StatusOK, "signup.html", withSession(c, gin.H{}))
}

// Signup creates the account and logs the new user straight in by setting
// the session cookie triple.
func (h *AuthHandler) Signup(c *gin.Context) {
	var req SignupRequest
	if err := c.ShouldBind(&req); err != nil {
		logrus.WithError(err).Warn("Handler.Signup: invalid input")
		renderBadRequest(c, "All signup fields must be filled in correctly")
		return
	}

	user, session, err := h.authService.Signup(c.Request.Context(), service.SignupInput{
		FirstName:     req.FirstName,
		LastName:      req.LastName,
		Address:       req.Address,
		ZipCode:       req.ZipCode,
		ContactNumber: req.ContactNumber,
		EmailAddress:  req.EmailAddress,
		Username:      req.Username,
		Password:      req.Password,
	})
	if err != nil {
		HandleServiceError(c, err)
		return
	}

	setSessionCookies(c, session)
	logrus.WithField("user_id", user.ID).Info("Handler.Signup: user registered")
	c.HTML(http.StatusOK, "success_login.html", withSession(c, gin.H{"username": session.Username}))
}

// LoginRequest binds the login form.
type LoginRequest struct {
	Username string `form:"username" binding:"required"`
	Password string `form:"password" binding:"required"`
}

// LoginForm renders the login form.
func (h *AuthHandler) LoginForm(c *gin.Context) {
	c.HTML(http.StatusOK, "login.html", withSession(c, gin.H{}))
}

// Login authenticates and redirects to the dashboard.
func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBind(&req); err != nil {
		logrus.WithError(err).Warn("Handler.Login: invalid input")
		renderBadRequest(c, "Username and password are required")
		return
	}

	session, err := h.authService.Login(c.Request.Context(), req.Username, req.Password)
	if err != nil {
		HandleServiceError(c, err)
		return
	}

	setSessionCookies(c, session)
	c.Redirect(http.StatusFound, "/user-dashboard")
}

// Logout clears all three session cookies unconditionally. There is no
// server-side session store, so nothing else to revoke.
func (h *AuthHandler) Logout(c *gin.Context) {
	clearSessionCookies(c)
	c.Redirect(http.StatusFound, "/")
}

func setSessionCookies(c *gin.Context, session service.Session) {
	c.SetCookie(middleware.CookieHash, session.Digest, 0, "/", "", false, true)
	c.SetCookie(middleware.CookieUser, session.Username, 0, "/", "", false, true)
	c.SetCookie(middleware.CookieID, strconv.FormatUint(uint64(session.UserID), 10), 0, "/", "", false, true)
}

func clearSessionCookies(c *gin.Context) {
	c.SetCookie(middleware.CookieHash, "", -1, "/", "", false, true)
	c.SetCookie(middleware.CookieUser, "", -1, "/", "", false, true)
	c.SetCookie(middleware.CookieID, "", -1, "/", "", false, true)
}
