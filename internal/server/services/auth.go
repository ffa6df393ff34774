// Package services contains server-side business logic. This file implements
// AuthService: account creation, password login and restore, session token
// refresh, and linking accounts to an external (Telegram) identity.
package services

import (
	"context"
	"crypto/subtle"
	"errors"
	"fmt"
	"strings"

	"github.com/dmitrijs2005/authkeeper/internal/common"
	"github.com/dmitrijs2005/authkeeper/internal/dbx"
	"github.com/dmitrijs2005/authkeeper/internal/server/auth"
	"github.com/dmitrijs2005/authkeeper/internal/server/config"
	"github.com/dmitrijs2005/authkeeper/internal/server/models"
	"github.com/dmitrijs2005/authkeeper/internal/server/repositories/repomanager"
	"github.com/dmitrijs2005/authkeeper/internal/server/repositories/users"
)

// Session is a user together with a freshly issued session token.
type Session struct {
	User  *models.User
	Token string
}

// AuthService implements the authentication and account-linking operations.
// It holds no per-request state; store access is read-then-write with no
// transaction, so concurrent writes to one login are last-write-wins.
type AuthService struct {
	db          dbx.DBTX
	repomanager repomanager.RepositoryManager
	hasher      auth.PasswordHasher
	sessions    *auth.SessionCodec
	authMarker  string
}

// NewAuthService constructs an AuthService from repositories and server config.
func NewAuthService(db dbx.DBTX, m repomanager.RepositoryManager, hasher auth.PasswordHasher, cfg *config.Config) *AuthService {
	return &AuthService{
		db:          db,
		repomanager: m,
		hasher:      hasher,
		sessions: auth.NewSessionCodec(
			[]byte(cfg.SecretKey),
			cfg.Issuer,
			cfg.Audience,
			cfg.SessionTokenValidityDuration,
		),
		authMarker: cfg.AuthMarker,
	}
}

// CreateAccount registers a new login. A taken login yields ErrorAlreadyExists.
func (s *AuthService) CreateAccount(ctx context.Context, login, name, password string) (*Session, error) {
	user := &models.User{Login: login, Name: name, PasswordHash: s.hasher.Hash(password)}
	u, err := s.users().Create(ctx, user)
	if err != nil {
		if errors.Is(err, common.ErrorAlreadyExists) {
			return nil, common.ErrorAlreadyExists
		}
		return nil, internal("error creating user", err)
	}
	return s.newSession(u)
}

// Login checks the password digest against the stored one. Unknown logins and
// mismatches are both reported as ErrorIncorrectCredentials.
func (s *AuthService) Login(ctx context.Context, login, password string) (*Session, error) {
	u, err := s.findByLogin(ctx, login)
	if err != nil {
		return nil, err
	}
	if !s.checkPassword(u.PasswordHash, s.hasher.Hash(password)) {
		return nil, common.ErrorIncorrectCredentials
	}
	return s.newSession(u)
}

// RestorePassword overwrites the stored digest. The old password is not checked.
func (s *AuthService) RestorePassword(ctx context.Context, login, newPassword string) (*Session, error) {
	u, err := s.findByLogin(ctx, login)
	if err != nil {
		return nil, err
	}
	updated, err := s.users().Update(ctx, u.Login, u.Name, s.hasher.Hash(newPassword))
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return nil, common.ErrorIncorrectCredentials
		}
		return nil, internal("error updating user", err)
	}
	return s.newSession(updated)
}

// GenerateLinkToken resolves the bearer header and returns a link token
// carrying the caller's login and password digest.
func (s *AuthService) GenerateLinkToken(ctx context.Context, header string) (string, error) {
	u, err := s.resolveHeader(ctx, header)
	if err != nil {
		return "", err
	}
	token, err := auth.EncodeLinkToken(u.Login, u.PasswordHash)
	if err != nil {
		return "", internal("error encoding link token", err)
	}
	return token, nil
}

// Authenticate resolves the bearer header and re-issues a session token.
func (s *AuthService) Authenticate(ctx context.Context, header string) (*Session, error) {
	u, err := s.resolveHeader(ctx, header)
	if err != nil {
		return nil, err
	}
	return s.newSession(u)
}

// LinkExternalID binds externalID to the account named by linkToken.
// A nil externalID clears the link. The digest comparison here is
// case-insensitive, unlike Login.
func (s *AuthService) LinkExternalID(ctx context.Context, linkToken string, externalID *int64) (*Session, error) {
	lt, err := auth.DecodeLinkToken(linkToken)
	if err != nil {
		return nil, common.ErrorIncorrectCredentials
	}
	u, err := s.findByLogin(ctx, lt.Login)
	if err != nil {
		return nil, err
	}
	if !strings.EqualFold(u.PasswordHash, lt.Password) {
		return nil, common.ErrorIncorrectCredentials
	}

	if u.ExternalID != nil && externalID != nil && *u.ExternalID != *externalID {
		return nil, common.ErrorAlreadyExists
	}
	if sameExternalID(u.ExternalID, externalID) {
		return s.newSession(u)
	}

	linked, err := s.users().SetExternalID(ctx, u.Login, externalID)
	if err != nil {
		// A vanished record is reported the same way as a taken id.
		if errors.Is(err, common.ErrorAlreadyExists) || errors.Is(err, common.ErrorNotFound) {
			return nil, common.ErrorAlreadyExists
		}
		return nil, internal("error linking user", err)
	}
	return s.newSession(linked)
}

// LoginByExternalID issues a session for the account linked to externalID.
func (s *AuthService) LoginByExternalID(ctx context.Context, externalID int64) (*Session, error) {
	u, err := s.users().GetUserByExternalID(ctx, externalID)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return nil, common.ErrorIncorrectCredentials
		}
		return nil, internal("error searching user", err)
	}
	return s.newSession(u)
}

// UnlinkExternalID clears the link held by externalID. It reports true only
// when a linked record was found and cleared.
func (s *AuthService) UnlinkExternalID(ctx context.Context, externalID int64) bool {
	repo := s.users()
	u, err := repo.GetUserByExternalID(ctx, externalID)
	if err != nil {
		return false
	}
	if _, err := repo.SetExternalID(ctx, u.Login, nil); err != nil {
		return false
	}
	return true
}

// --- helpers below ---

func (s *AuthService) users() users.Repository { return s.repomanager.Users(s.db) }

func (s *AuthService) findByLogin(ctx context.Context, login string) (*models.User, error) {
	u, err := s.users().GetUserByLogin(ctx, login)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return nil, common.ErrorIncorrectCredentials
		}
		return nil, internal("error searching user", err)
	}
	return u, nil
}

// resolveHeader maps a bearer header value to its stored user. A missing,
// empty or unverifiable value is ErrorUnauthenticated; a verified token for
// an unknown login is ErrorIncorrectCredentials.
func (s *AuthService) resolveHeader(ctx context.Context, header string) (*models.User, error) {
	token := strings.TrimPrefix(header, s.authMarker)
	if token == "" {
		return nil, common.ErrorUnauthenticated
	}
	login, err := s.sessions.Resolve(token)
	if err != nil {
		return nil, common.ErrorUnauthenticated
	}
	return s.findByLogin(ctx, login)
}

func (s *AuthService) newSession(u *models.User) (*Session, error) {
	token, err := s.sessions.Issue(u.Login)
	if err != nil {
		return nil, internal("error issuing session token", err)
	}
	return &Session{User: u, Token: token}, nil
}

func (s *AuthService) checkPassword(stored, candidate string) bool {
	return subtle.ConstantTimeCompare([]byte(stored), []byte(candidate)) == 1
}

func sameExternalID(a, b *int64) bool {
	if a == nil || b == nil {
		return a == b
	}
	return *a == *b
}

func internal(msg string, err error) error {
	return fmt.Errorf("%w: %s: %w", common.ErrorInternal, msg, err)
}
