package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/AKACHI-4/WeTube/db"
	"github.com/AKACHI-4/WeTube/models"
	jwt "github.com/golang-jwt/jwt/v4"
	"go.mongodb.org/mongo-driver/v2/bson"
)

// TokenKind selects which secret and lifetime a token is signed and
// verified with. A token signed as one kind never verifies as the
// other.
type TokenKind string

const (
	TokenAccess  TokenKind = "access"
	TokenRefresh TokenKind = "refresh"
)

// TokenConfig carries the two secrets and lifetimes for the token
// pair. It is injected at construction; nothing reads the environment
// after startup.
type TokenConfig struct {
	AccessSecret  string
	RefreshSecret string
	AccessTTL     time.Duration
	RefreshTTL    time.Duration
}

// Claims is the signed claim set: the user identifier, the token kind
// and the registered expiry fields.
type Claims struct {
	UserID    string `json:"user_id"`
	TokenType string `json:"typ"`
	jwt.RegisteredClaims
}

// AuthService signs and verifies the token pair, persists the single
// valid refresh token per user, and handles rotation and logout.
type AuthService struct {
	cfg TokenConfig
	db  db.Database
}

func NewAuthService(cfg TokenConfig, database db.Database) *AuthService {
	return &AuthService{cfg: cfg, db: database}
}

// AccessTTL reports the access token lifetime, used for cookie expiry.
func (s *AuthService) AccessTTL() time.Duration { return s.cfg.AccessTTL }

// RefreshTTL reports the refresh token lifetime, used for cookie expiry.
func (s *AuthService) RefreshTTL() time.Duration { return s.cfg.RefreshTTL }

func (s *AuthService) secret(kind TokenKind) (string, time.Duration) {
	if kind == TokenRefresh {
		return s.cfg.RefreshSecret, s.cfg.RefreshTTL
	}
	return s.cfg.AccessSecret, s.cfg.AccessTTL
}

// SignToken produces a signed, self-contained token of the given kind
// for the user.
func (s *AuthService) SignToken(kind TokenKind, userID bson.ObjectID) (string, error) {
	secret, ttl := s.secret(kind)
	now := time.Now()

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		UserID:    userID.Hex(),
		TokenType: string(kind),
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	})

	signed, err := token.SignedString([]byte(secret))
	if err != nil {
		slog.Error("failed to sign token", "error", err, "kind", kind, "user_id", userID.Hex())
		return "", err
	}
	return signed, nil
}

// VerifyToken validates signature, expiry and kind, and returns the
// embedded user identifier. It fails closed: any structural, signature
// or expiry problem is a rejection, never a partial payload.
func (s *AuthService) VerifyToken(kind TokenKind, token string) (bson.ObjectID, error) {
	secret, _ := s.secret(kind)

	parsed, err := jwt.ParseWithClaims(token, &Claims{}, func(t *jwt.Token) (interface{}, error) {
		// Make sure that the token method conform to "SigningMethodHMAC"
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return []byte(secret), nil
	})
	if err != nil {
		return bson.ObjectID{}, err
	}

	claims, ok := parsed.Claims.(*Claims)
	if !ok || !parsed.Valid {
		return bson.ObjectID{}, errors.New("invalid token claims")
	}
	if claims.TokenType != string(kind) {
		return bson.ObjectID{}, fmt.Errorf("unexpected token type: %s", claims.TokenType)
	}

	return models.ParseID(claims.UserID)
}

// Issue signs a fresh token pair for the user and persists the refresh
// token onto the user record, superseding any previous one. On a
// persistence failure no tokens are returned.
func (s *AuthService) Issue(ctx context.Context, userID bson.ObjectID) (models.TokenPair, error) {
	if _, err := s.db.GetUser(ctx, userID); err != nil {
		if errors.Is(err, db.ErrNotFound) {
			return models.TokenPair{}, models.ErrNotFound("user does not exist")
		}
		slog.Error("failed to load user for token issue", "error", err, "user_id", userID.Hex())
		return models.TokenPair{}, models.ErrInternal("something went wrong while generating tokens")
	}

	access, err := s.SignToken(TokenAccess, userID)
	if err != nil {
		return models.TokenPair{}, models.ErrInternal("something went wrong while generating tokens")
	}
	refresh, err := s.SignToken(TokenRefresh, userID)
	if err != nil {
		return models.TokenPair{}, models.ErrInternal("something went wrong while generating tokens")
	}

	if err := s.db.UpdateRefreshToken(ctx, userID, &refresh); err != nil {
		slog.Error("failed to persist refresh token", "error", err, "user_id", userID.Hex())
		return models.TokenPair{}, models.ErrInternal("something went wrong while generating tokens")
	}

	return models.TokenPair{AccessToken: access, RefreshToken: refresh}, nil
}

// Authenticate resolves an access token into the user it belongs to,
// loaded without credential fields. Every failure collapses to the same
// unauthorized error so callers cannot distinguish a forged token from
// an expired one.
func (s *AuthService) Authenticate(ctx context.Context, token string) (models.User, error) {
	userID, err := s.VerifyToken(TokenAccess, token)
	if err != nil {
		return models.User{}, models.ErrUnauthorized("invalid access token")
	}

	user, err := s.db.GetUserPublic(ctx, userID)
	if err != nil {
		return models.User{}, models.ErrUnauthorized("invalid access token")
	}
	return user, nil
}

// Rotate exchanges a still-valid refresh token for a fresh pair. The
// presented token must verify cryptographically AND match the value
// stored on the user record byte-for-byte; the second check is what
// invalidates a token after rotation or logout.
func (s *AuthService) Rotate(ctx context.Context, presented string) (models.TokenPair, error) {
	if presented == "" {
		return models.TokenPair{}, models.ErrUnauthorized("missing refresh token")
	}

	userID, err := s.VerifyToken(TokenRefresh, presented)
	if err != nil {
		return models.TokenPair{}, models.ErrUnauthorized("invalid refresh token")
	}

	user, err := s.db.GetUser(ctx, userID)
	if err != nil {
		// same message as a bad signature; which check failed is not
		// revealed
		if errors.Is(err, db.ErrNotFound) {
			return models.TokenPair{}, models.ErrUnauthorized("invalid refresh token")
		}
		slog.Error("failed to load user for token rotation", "error", err, "user_id", userID.Hex())
		return models.TokenPair{}, models.ErrInternal("something went wrong, please try again later")
	}

	if user.RefreshToken == "" || user.RefreshToken != presented {
		return models.TokenPair{}, models.ErrUnauthorized("refresh token is expired or used")
	}

	return s.Issue(ctx, userID)
}

// Logout clears the stored refresh token, revoking any outstanding one.
func (s *AuthService) Logout(ctx context.Context, userID bson.ObjectID) error {
	if err := s.db.UpdateRefreshToken(ctx, userID, nil); err != nil {
		slog.Error("failed to clear refresh token", "error", err, "user_id", userID.Hex())
		return models.ErrInternal("something went wrong, please try again later")
	}
	return nil
}
