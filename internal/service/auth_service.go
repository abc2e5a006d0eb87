package service

import (
	"strings"

	"go.uber.org/zap"

	"github.com/spec-kit/incubtek-portal/internal/auth"
	"github.com/spec-kit/incubtek-portal/internal/domain"
	"github.com/spec-kit/incubtek-portal/internal/navigation"
	"github.com/spec-kit/incubtek-portal/internal/state"
	apperrors "github.com/spec-kit/incubtek-portal/pkg/util/errorutil"
)

// InvalidCredentialsMessage is returned for every failed login.
const InvalidCredentialsMessage = "Email ou mot de passe incorrect."

// AuthService coordinates login.
type AuthService struct {
	store    *state.Store
	tokenMgr *auth.TokenManager
	logger   *zap.Logger
}

// AuthDependencies encapsulates requirements for auth service.
type AuthDependencies struct {
	Store  *state.Store
	Tokens *auth.TokenManager
	Logger *zap.Logger
}

// LoginResult is a session plus the view the user lands on.
type LoginResult struct {
	User    domain.User
	Session domain.Session
	Landing navigation.View
}

// NewAuthService builds the service.
func NewAuthService(deps AuthDependencies) *AuthService {
	return &AuthService{store: deps.Store, tokenMgr: deps.Tokens, logger: nopLogger(deps.Logger)}
}

// Login checks credentials. Unknown emails, accounts without a password and
// wrong passwords fail identically.
func (s *AuthService) Login(email, password string) (LoginResult, error) {
	user, ok := s.store.UserByEmail(strings.TrimSpace(email))
	if !ok || !user.HasCredential() {
		return LoginResult{}, apperrors.NewUnauthorized(InvalidCredentialsMessage)
	}
	if err := auth.ComparePassword(user.PasswordHash, password); err != nil {
		s.logger.Info("login rejected", zap.String("user_id", user.ID))
		return LoginResult{}, apperrors.NewUnauthorized(InvalidCredentialsMessage)
	}

	token, exp, err := s.tokenMgr.GenerateToken(user.ID, user.Role)
	if err != nil {
		return LoginResult{}, apperrors.NewInternalError(err)
	}
	s.logger.Info("login succeeded", zap.String("user_id", user.ID), zap.String("role", string(user.Role)))
	return LoginResult{
		User:    user,
		Session: domain.Session{Token: token, UserID: user.ID, Role: user.Role, ExpiresAt: exp},
		Landing: navigation.Landing(user.Role),
	}, nil
}
