package service

import (
	"context"
	"crypto/md5"
	"errors"
	"fmt"
	"strings"
	"time"

	"taskmanager/internal/logger"
	"taskmanager/internal/models"
	"taskmanager/internal/repository"

	"golang.org/x/crypto/bcrypt"
)

// AuthConfig carries the token and admin settings the auth flows need.
type AuthConfig struct {
	SigningKey    string
	TokenTTL      time.Duration
	ActivationTTL time.Duration
	AdminEmail    string
}

// AuthService handles user auth logic
type AuthService struct {
	users  repository.UserRepo
	tokens *TokenService
	cfg    AuthConfig
	log    *logger.Logger
}

func NewAuthService(users repository.UserRepo, tokens *TokenService, cfg AuthConfig, log *logger.Logger) *AuthService {
	return &AuthService{users: users, tokens: tokens, cfg: cfg, log: log}
}

// Register creates an account. The email/username pre-check is advisory;
// a UNIQUE violation from the store is reported the same way.
func (s *AuthService) Register(ctx context.Context, in RegisterInput) (*models.User, error) {
	in.Email = strings.TrimSpace(in.Email)
	in.Username = strings.TrimSpace(in.Username)
	in.Name = strings.TrimSpace(in.Name)
	if in.Email == "" || in.Username == "" || in.Name == "" {
		return nil, fmt.Errorf("%w: email, username and name are required", ErrValidation)
	}
	hash, err := hashPassword(in.Password)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrValidation, err)
	}

	taken, err := s.users.EmailOrUsernameTaken(ctx, in.Email, in.Username, 0)
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, ErrConflict
	}

	u := models.User{
		Name:         in.Name,
		Username:     in.Username,
		Email:        in.Email,
		PasswordHash: hash,
		Avatar:       gravatarURL(in.Email),
		IsAdmin:      s.isAdminEmail(in.Email),
	}
	id, err := s.users.Create(ctx, u)
	if err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return nil, ErrConflict
		}
		return nil, err
	}
	u.ID = id
	return &u, nil
}

// Login checks the password and issues a bearer token.
func (s *AuthService) Login(ctx context.Context, email, password string) (*models.User, string, error) {
	u, err := s.users.GetByEmail(ctx, strings.TrimSpace(email))
	if err != nil {
		return nil, "", err
	}
	if u == nil {
		return nil, "", ErrInvalidCredentials
	}
	if err := verifyPassword(u.PasswordHash, password); err != nil {
		return nil, "", ErrInvalidCredentials
	}

	token, err := s.tokens.Issue(Identity{ID: u.ID, Email: u.Email}, PurposeAuth, s.cfg.TokenTTL)
	if err != nil {
		return nil, "", err
	}
	return u, token, nil
}

// Authenticate resolves a bearer token to the current user record. The
// lookup matches id and email, so tokens of deleted accounts or of accounts
// whose email changed are rejected.
func (s *AuthService) Authenticate(ctx context.Context, accessToken string) (*models.User, error) {
	id, err := s.tokens.Verify(accessToken, PurposeAuth)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrUnauthenticated, err)
	}
	u, err := s.users.GetByIDAndEmail(ctx, id.ID, id.Email)
	if err != nil {
		return nil, err
	}
	if u == nil {
		return nil, fmt.Errorf("%w: user %d no longer matches token", ErrUnauthenticated, id.ID)
	}
	return u, nil
}

// IssueActivationToken returns a token that activates userID when posted
// back by that user.
func (s *AuthService) IssueActivationToken(ctx context.Context, caller *models.User, userID int) (string, error) {
	target, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return "", err
	}
	if target == nil {
		return "", fmt.Errorf("%w: user %d", ErrNotFound, userID)
	}
	if err := authorize(UserAccess(caller, target.ID)); err != nil {
		return "", err
	}
	return s.tokens.Issue(Identity{ID: target.ID, Email: target.Email}, PurposeActivation, s.cfg.ActivationTTL)
}

// Activate marks caller as activated if token was issued for caller.
func (s *AuthService) Activate(ctx context.Context, caller *models.User, token string) (*models.User, error) {
	id, err := s.tokens.Verify(token, PurposeActivation)
	if err != nil {
		return nil, fmt.Errorf("%w: activation token: %v", ErrValidation, err)
	}
	if id.ID != caller.ID || id.Email != caller.Email {
		return nil, ErrForbidden
	}
	if err := s.users.SetActivated(ctx, caller.ID); err != nil {
		return nil, err
	}
	activated := *caller
	activated.Activated = true
	return &activated, nil
}

func (s *AuthService) isAdminEmail(email string) bool {
	return s.cfg.AdminEmail != "" && strings.EqualFold(email, s.cfg.AdminEmail)
}

// gravatarURL derives the avatar from the normalized email.
func gravatarURL(email string) string {
	sum := md5.Sum([]byte(strings.ToLower(strings.TrimSpace(email))))
	return fmt.Sprintf("https://secure.gravatar.com/avatar/%x?s=100&d=identicon&r=g", sum)
}

// helper: hash password safely
func hashPassword(password string) (string, error) {
	if strings.TrimSpace(password) == "" {
		return "", errors.New("password is empty")
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("hash password: %w", err)
	}
	return string(hash), nil
}

// helper: verify password against hash
func verifyPassword(hash, password string) error {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
}
