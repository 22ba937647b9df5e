package service

import (
	"context"
	"errors"

	"github.com/sirupsen/logrus"

	"github.com/jcleow/birding-express-swe1/internal/domain"
	"github.com/jcleow/birding-express-swe1/internal/repository"
)

// Session is the three-value identity triple carried in cookies:
// a plain username, a plain numeric user id, and the salted digest of
// that id. A request is authenticated only when all three are present
// and the digest recomputes from the id.
//
// This is a bearer credential, not a real session: the digest is a pure
// function of id and salt, with no expiry and no server-side state.
// Existing clients depend on the cookie names and values, so the
// contract cannot change without breaking them.
type Session struct {
	Username string
	UserID   uint
	Digest   string
}

// SignupInput carries the validated signup form fields.
type SignupInput struct {
	FirstName     string
	LastName      string
	Address       string
	ZipCode       string
	ContactNumber string
	EmailAddress  string
	Username      string
	Password      string
}

// AuthService handles signup, login and session issuance.
type AuthService struct {
	userRepo repository.UserRepository
	hasher   *Hasher
}

// NewAuthService creates an AuthService.
func NewAuthService(userRepo repository.UserRepository, hasher *Hasher) *AuthService {
	if userRepo == nil {
		panic("UserRepository cannot be nil for AuthService")
	}
	if hasher == nil {
		panic("Hasher cannot be nil for AuthService")
	}
	return &AuthService{userRepo: userRepo, hasher: hasher}
}

// Signup creates the account and immediately issues a session for it.
func (s *AuthService) Signup(ctx context.Context, in SignupInput) (*domain.User, Session, error) {
	logCtx := logrus.WithField("username", in.Username)

	if in.Username == "" || in.Password == "" {
		return nil, Session{}, ErrInvalidInput
	}

	user := &domain.User{
		FirstName:     in.FirstName,
		LastName:      in.LastName,
		Address:       in.Address,
		ZipCode:       in.ZipCode,
		ContactNumber: in.ContactNumber,
		EmailAddress:  in.EmailAddress,
		Username:      in.Username,
		Password:      s.hasher.PasswordDigest(in.Password),
	}

	if err := s.userRepo.Save(ctx, user); err != nil {
		if errors.Is(err, repository.ErrDuplicateEntry) {
			logCtx.WithError(err).Warn("Signup failed: duplicate entry")
			return nil, Session{}, ErrRegistrationFailed
		}
		logCtx.WithError(err).Error("Database error during signup")
		return nil, Session{}, ErrInternalServer
	}

	session := s.issueSession(user.ID, user.Username)
	logCtx.WithField("user_id", user.ID).Info("User signed up successfully")
	user.Password = ""
	return user, session, nil
}

// Login authenticates by password digest lookup and issues a session.
// The session carries the *submitted* username, not the stored one;
// downstream pages expect that value, so the mismatch is logged rather
// than corrected.
func (s *AuthService) Login(ctx context.Context, username, password string) (Session, error) {
	logCtx := logrus.WithField("username", username)

	user, err := s.userRepo.FindByPasswordDigest(ctx, s.hasher.PasswordDigest(password))
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			logCtx.Warn("Login attempt failed: no matching credential")
		} else {
			logCtx.WithError(err).Warn("Login attempt failed: error finding user")
		}
		// Identical response whether username or password was wrong.
		return Session{}, ErrAuthenticationFailed
	}
	if user == nil {
		logCtx.Warn("Login attempt failed: repository returned nil user without error")
		return Session{}, ErrAuthenticationFailed
	}

	if user.Username != username {
		logCtx.WithField("stored_username", user.Username).
			Warn("Login: submitted username differs from stored one; session keeps the submitted value")
	}

	session := s.issueSession(user.ID, username)
	logCtx.WithField("user_id", user.ID).Info("User logged in successfully")
	return session, nil
}

func (s *AuthService) issueSession(userID uint, username string) Session {
	return Session{
		Username: username,
		UserID:   userID,
		Digest:   s.hasher.UserIDDigest(userID),
	}
}
