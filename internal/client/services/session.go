package services

import (
	"context"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/nattavat/prdir/internal/client/models"
	"github.com/nattavat/prdir/internal/client/store"
	"github.com/nattavat/prdir/internal/common"
	"github.com/nattavat/prdir/internal/logging"
)

// sessionValidity bounds how long a persisted login survives restarts.
const sessionValidity = 30 * 24 * time.Hour

// sessionClaims is the actor snapshot carried in a persisted session token.
type sessionClaims struct {
	jwt.RegisteredClaims
	UserID   string `json:"uid"`
	Username string `json:"username"`
	Name     string `json:"name"`
	Role     string `json:"role"`
}

// SessionService persists the logged-in actor across restarts.
//
// The snapshot is stored as an HMAC-signed token so a hand-edited local
// database cannot silently escalate the persisted role; a token that fails
// verification is treated as no session at all.
type SessionService struct {
	store *store.Store
	log   logging.Logger
	now   func() time.Time
}

func NewSessionService(st *store.Store, log logging.Logger) *SessionService {
	return &SessionService{store: st, log: log, now: time.Now}
}

// Save signs and persists the actor snapshot.
func (s *SessionService) Save(ctx context.Context, user models.User) error {
	secret, err := s.store.SessionSecret(ctx)
	if err != nil {
		return err
	}

	claims := sessionClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(s.now()),
			ExpiresAt: jwt.NewNumericDate(s.now().Add(sessionValidity)),
		},
		UserID:   user.ID,
		Username: user.Username,
		Name:     user.Name,
		Role:     string(user.Role),
	}

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(secret)
	if err != nil {
		return err
	}
	return s.store.SaveSessionToken(ctx, token)
}

// Restore returns the persisted actor snapshot. It reports
// common.ErrInvalidToken when no session is stored or the token does not
// verify (tampered, expired, or signed with a different install secret).
func (s *SessionService) Restore(ctx context.Context) (models.User, error) {
	tokenString := s.store.SessionToken(ctx)
	if tokenString == "" {
		return models.User{}, common.ErrInvalidToken
	}

	secret, err := s.store.SessionSecret(ctx)
	if err != nil {
		return models.User{}, err
	}

	claims := &sessionClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (any, error) {
		return secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil || !token.Valid {
		s.log.Warn(ctx, "discarding unverifiable session token")
		_ = s.store.ClearSessionToken(ctx)
		return models.User{}, common.ErrInvalidToken
	}

	return models.User{
		ID:       claims.UserID,
		Username: claims.Username,
		Name:     claims.Name,
		Role:     models.Role(claims.Role),
	}, nil
}

// Clear drops the persisted session.
func (s *SessionService) Clear(ctx context.Context) error {
	return s.store.ClearSessionToken(ctx)
}
