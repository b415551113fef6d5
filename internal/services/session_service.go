package services

import (
	"crypto/subtle"
	"fmt"
	"time"

	"clefmusic-api/internal/models"
	"clefmusic-api/internal/sessions"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// SessionService owns the session lifecycle: sign-in (customer or the
// reserved admin singleton), sign-up, session lookup, and sign-out.
type SessionService struct {
	accounts      *AccountService
	tokens        *TokenService
	store         sessions.Store
	mailer        *Mailer
	logger        zerolog.Logger
	adminEmail    string
	adminPassword string
}

func NewSessionService(
	accounts *AccountService,
	tokens *TokenService,
	store sessions.Store,
	mailer *Mailer,
	logger zerolog.Logger,
	adminEmail, adminPassword string,
) *SessionService {
	if adminPassword == "" {
		logger.Warn().Msg("ADMIN_PASSWORD not set, admin sign-in disabled")
	}
	return &SessionService{
		accounts:      accounts,
		tokens:        tokens,
		store:         store,
		mailer:        mailer,
		logger:        logger,
		adminEmail:    adminEmail,
		adminPassword: adminPassword,
	}
}

func (s *SessionService) IsAdmin(email string) bool {
	return email == s.adminEmail
}

func (s *SessionService) SignIn(req *models.SignInRequest) (*models.AuthResponse, error) {
	if s.IsAdmin(req.Email) {
		return s.signInAdmin(req)
	}

	account, err := s.accounts.Authenticate(req.Email, req.Password)
	if err != nil {
		return nil, err
	}

	return s.establish(account, models.RoleCustomer)
}

func (s *SessionService) signInAdmin(req *models.SignInRequest) (*models.AuthResponse, error) {
	if s.adminPassword == "" ||
		subtle.ConstantTimeCompare([]byte(req.Password), []byte(s.adminPassword)) != 1 {
		s.logger.Warn().Str("email", req.Email).Msg("Failed admin sign-in attempt")
		return nil, ErrInvalidCredentials
	}

	// The admin identity is synthetic; it has no accounts row.
	account := &models.Account{
		ID:        "admin",
		FirstName: "Admin",
		LastName:  "User",
		Email:     s.adminEmail,
		Status:    string(models.AccountStatusActive),
		LastLogin: time.Now().UTC(),
	}

	resp, err := s.establish(account, models.RoleAdmin)
	if err != nil {
		return nil, err
	}

	if s.mailer != nil && s.mailer.Enabled() {
		go func() {
			if err := s.mailer.NotifyAdminLogin(s.adminEmail, time.Now().UTC()); err != nil {
				s.logger.Warn().Err(err).Msg("Admin login notification failed")
			}
		}()
	}

	s.logger.Info().Str("email", s.adminEmail).Msg("Admin signed in")
	return resp, nil
}

func (s *SessionService) SignUp(req *models.SignUpRequest) (*models.AuthResponse, error) {
	account, err := s.accounts.Register(req)
	if err != nil {
		return nil, err
	}

	return s.establish(account, models.RoleCustomer)
}

func (s *SessionService) establish(account *models.Account, role models.Role) (*models.AuthResponse, error) {
	sessionID := uuid.NewString()
	entry := sessions.Entry{
		AccountID: account.ID,
		Email:     account.Email,
		Role:      string(role),
		CreatedAt: time.Now().UTC(),
	}

	if err := s.store.Put(sessionID, entry, s.tokens.TTL()); err != nil {
		s.logger.Error().Err(err).Msg("Error storing session")
		return nil, fmt.Errorf("failed to store session: %w", err)
	}

	token, err := s.tokens.Generate(account.ID, account.Email, string(role), sessionID)
	if err != nil {
		return nil, fmt.Errorf("failed to generate token: %w", err)
	}

	return &models.AuthResponse{
		Account: account,
		Role:    role,
		Token:   token,
	}, nil
}

// Current returns the active session for the given id, or ErrNoSession.
func (s *SessionService) Current(sessionID string) (*models.Session, error) {
	entry, ok, err := s.store.Get(sessionID)
	if err != nil {
		return nil, fmt.Errorf("failed to read session: %w", err)
	}
	if !ok {
		return nil, ErrNoSession
	}

	return &models.Session{
		ID:        sessionID,
		AccountID: entry.AccountID,
		Email:     entry.Email,
		Role:      models.Role(entry.Role),
		CreatedAt: entry.CreatedAt,
	}, nil
}

// SignOut removes the session. Signing out an already-absent session is a
// no-op, so repeated calls succeed.
func (s *SessionService) SignOut(sessionID string) error {
	if err := s.store.Delete(sessionID); err != nil {
		s.logger.Error().Err(err).Str("session_id", sessionID).Msg("Error deleting session")
		return fmt.Errorf("failed to delete session: %w", err)
	}
	return nil
}
